package main

import (
	"os"

	log "github.com/charmbracelet/log"
)

func main() {
	if err := newRootCmd(os.Stdout, os.Stderr).Execute(); err != nil {
		log.Fatal(err)
	}
}
