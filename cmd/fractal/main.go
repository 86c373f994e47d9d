package main

import (
	"os"

	"github.com/pterm/pterm"
	"github.com/urfave/cli/v2"

	"github.com/fractalglobal/utils/configuration"
	"github.com/fractalglobal/utils/logging"
	"github.com/fractalglobal/utils/logo"
	"github.com/fractalglobal/utils/stdoutwriter"
)

const usage = `Fractal CLI tool validates and creates Fractal Global wallet addresses and computes Fractal Global Credits amounts.
The configuration file is optional. FRACTAL_* variables from the .env file and the environment override it.`

const envFile = ".env"

func main() {
	var config string
	var quiet bool

	configurator := func() (configuration.Configuration, error) {
		cfg := configuration.Default()
		if config != "" {
			var err error
			cfg, err = configuration.Read(config)
			if err != nil {
				return cfg, err
			}
		}
		return configuration.ApplyEnv(cfg, envFile)
	}

	setup := func() (configuration.Configuration, logging.Helper, error) {
		cfg, err := configurator()
		if err != nil {
			return cfg, logging.Helper{}, err
		}
		callOnLogErr := func(err error) {
			pterm.Error.Printf("logger failed: %s\n", err)
		}
		return cfg, logging.New(cfg.Logger, callOnLogErr, stdoutwriter.Logger{}), nil
	}

	app := &cli.App{
		Name:  "fractal",
		Usage: usage,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "config",
				Aliases:     []string{"c"},
				Usage:       "Load configuration from `FILE`",
				Destination: &config,
			},
			&cli.BoolFlag{
				Name:        "quiet",
				Aliases:     []string{"q"},
				Usage:       "Do not display the banner.",
				Destination: &quiet,
			},
		},
		Before: func(_ *cli.Context) error {
			if !quiet {
				logo.Display()
			}
			return nil
		},
		Commands: []*cli.Command{
			addressCommand(setup),
			amountCommand(setup),
		},
	}

	if err := app.Run(os.Args); err != nil {
		pterm.Error.Println(err.Error())
		os.Exit(1)
	}
}
