package config

// Log configures the process logger.
type Log struct {
	Level      int    `envconfig:"LEVEL" default:"0"`
	Format     string `envconfig:"FORMAT" default:"text" validate:"oneof=json text"`
	TimeFormat string `envconfig:"TIME_FORMAT" default:"2006-01-02 15:04:05" validate:"required"`
	Prefix     string `envconfig:"PREFIX" default:"[minibank]"`
}

// Ledger configures how accounts notify and how reports render.
type Ledger struct {
	CurrencySymbol string `envconfig:"CURRENCY_SYMBOL" default:"R$" validate:"required"`
	TimeFormat     string `envconfig:"TIME_FORMAT" default:"2006-01-02 15:04:05" validate:"required"`
	Notify         bool   `envconfig:"NOTIFY" default:"true"`
}

// Metrics configures the prometheus recorder.
type Metrics struct {
	Enabled   bool   `envconfig:"ENABLED" default:"false"`
	Namespace string `envconfig:"NAMESPACE" default:"minibank" validate:"required_if=Enabled true"`
}

// App is the root configuration.
type App struct {
	Env     string   `envconfig:"APP_ENV" default:"development" validate:"oneof=development test production"`
	Log     *Log     `envconfig:"LOG" validate:"required"`
	Ledger  *Ledger  `envconfig:"LEDGER" validate:"required"`
	Metrics *Metrics `envconfig:"METRICS" validate:"required"`
}
