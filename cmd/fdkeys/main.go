// Command fdkeys finds the candidate keys of relations described by files of
// functional dependencies.
//
// Usage:
//
//	fdkeys keys FILE...            list the candidate keys of each file
//	fdkeys closure FILE ATTRS      print the closure of ATTRS, like A,B
//	fdkeys superkey FILE ATTRS     tell whether ATTRS is a superkey
//	fdkeys deps FILE               print the dependencies as a table
//	fdkeys version
//
// See package github.com/jonlawlor/fdkeys/fdfile for the file formats.
package main

import (
	"os"

	"github.com/rs/zerolog"
)

const cmdName = "fdkeys"

// version is set at build time with -ldflags "-X main.version=..."
var version = "dev"

func main() {
	rootCmd := newRootCommand(os.Stdout, os.Stderr)
	if err := rootCmd.Execute(); err != nil {
		log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, NoColor: true})
		log.Fatal().Err(err).Msg(cmdName + " execution failed")
	}
}
