// Package main prints a signed session-record cookie for local development.
package main

import (
	"flag"
	"os"
	"time"

	"github.com/vinylcourses/coursehub/internal/platform/config"
	"github.com/vinylcourses/coursehub/internal/tools/sessiontoken"
)

func main() {
	cfg, err := sessiontoken.ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		config.Exitf("parse flags: %v", err)
	}
	if err := sessiontoken.Run(cfg, os.Stdout, time.Now); err != nil {
		config.Exitf("mint session token: %v", err)
	}
}
