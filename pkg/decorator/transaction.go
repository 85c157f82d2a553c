// Package decorator provides decorator patterns for cross-cutting concerns in the application.
// Every mutating ledger operation (account creation, deposit, withdrawal) runs through a
// Decorator so that notification, structured logging and metrics are applied uniformly
// instead of being repeated inside each operation.
package decorator

// Decorator defines the interface for wrapping ledger operations.
//
// Example usage:
//
//	d := decorator.Chain(
//	    decorator.NewNotifier(os.Stdout),
//	    decorator.NewLogging(logger),
//	)
//	err := d.Execute("Deposit", func() error {
//	    // Business logic only
//	    return nil
//	})
type Decorator interface {
	// Execute runs the operation identified by label and returns its error unchanged.
	// Post-action behavior runs whether the operation succeeded or not.
	Execute(label string, operation func() error) error
}

// Func adapts an ordinary function to the Decorator interface.
type Func func(label string, operation func() error) error

// Execute calls f(label, operation).
func (f Func) Execute(label string, operation func() error) error {
	return f(label, operation)
}

// Noop runs the operation without any extra behavior.
type Noop struct{}

// Execute runs operation.
func (Noop) Execute(_ string, operation func() error) error {
	return operation()
}

type chain []Decorator

// Chain composes decorators into one. The first decorator is the outermost,
// so its post-action behavior runs last. Nil entries are skipped.
func Chain(decorators ...Decorator) Decorator {
	c := make(chain, 0, len(decorators))
	for _, d := range decorators {
		if d != nil {
			c = append(c, d)
		}
	}
	if len(c) == 0 {
		return Noop{}
	}
	if len(c) == 1 {
		return c[0]
	}
	return c
}

func (c chain) Execute(label string, operation func() error) error {
	wrapped := operation
	for i := len(c) - 1; i >= 0; i-- {
		d, next := c[i], wrapped
		wrapped = func() error {
			return d.Execute(label, next)
		}
	}
	return wrapped()
}
