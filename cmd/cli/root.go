package main

import (
	"fmt"
	"io"
	"runtime"

	"github.com/spf13/cobra"
)

// Set at build time with -ldflags "-X main.Version=...".
var (
	Version   = "v0.1.0"
	GitCommit = "unknown"
)

func versionInfo() string {
	return fmt.Sprintf(
		"Version: %s\nGit Commit: %s\nGo Version: %s\nOS/Arch: %s/%s",
		Version,
		GitCommit,
		runtime.Version(),
		runtime.GOOS,
		runtime.GOARCH,
	)
}

type rootOptions struct {
	envFile string
	out     io.Writer
	logOut  io.Writer
}

func newRootCmd(out, logOut io.Writer) *cobra.Command {
	opts := &rootOptions{out: out, logOut: logOut}

	root := &cobra.Command{
		Use:           "minibank",
		Short:         "In-memory banking ledger",
		Long:          "minibank records deposits and withdrawals on accounts and reports bank balances.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.SetOut(out)
	root.SetErr(logOut)
	root.PersistentFlags().StringVar(&opts.envFile, "env-file", ".env", "environment file to load")

	root.AddCommand(
		newDemoCmd(opts),
		newVersionCmd(),
	)
	return root
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Run: func(cmd *cobra.Command, _ []string) {
			cmd.Println(versionInfo())
		},
	}
}
