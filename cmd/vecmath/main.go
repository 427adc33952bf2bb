// Package main provides the vecmath CLI entry point.
package main

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

var version = "dev"

func main() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	if err := newRootCmd(os.Stdout).Execute(); err != nil {
		log.Error().Err(err).Msg("vecmath failed")
		os.Exit(1)
	}
}
