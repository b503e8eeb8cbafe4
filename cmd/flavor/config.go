package main

import (
	"os"

	"gopkg.in/urfave/cli.v1"

	"github.com/flavor-lang/flavor/internal/config"
)

var dumpConfigCommand = cli.Command{
	Name:        "dumpconfig",
	Usage:       "Show configuration values",
	Description: `The dumpconfig command prints the effective settings as TOML, after the config file and flags are applied.`,
	Action:      dumpConfig,
}

func dumpConfig(ctx *cli.Context) error {
	return config.Encode(os.Stdout, settings)
}
