package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/pterm/pterm"
	"github.com/urfave/cli/v2"

	"github.com/fractalglobal/utils/amount"
	"github.com/fractalglobal/utils/logger"
)

func amountCommand(setup setupFunc) *cli.Command {
	var precision, width int
	return &cli.Command{
		Name:    "amount",
		Aliases: []string{"m"},
		Usage:   "Formats and computes Fractal Global Credits amounts.",
		Subcommands: []*cli.Command{
			{
				Name:      "format",
				Aliases:   []string{"f"},
				Usage:     "Prints amounts with the given precision and width.",
				ArgsUsage: "AMOUNT...",
				Flags: []cli.Flag{
					&cli.IntFlag{
						Name:        "precision",
						Aliases:     []string{"p"},
						Usage:       "Decimal places, overrides the display precision of the configuration.",
						Destination: &precision,
					},
					&cli.IntFlag{
						Name:        "width",
						Aliases:     []string{"w"},
						Usage:       "Minimal width, padded with zeros on the left.",
						Destination: &width,
					},
				},
				Action: func(cCtx *cli.Context) error {
					cfg, log, err := setup()
					if err != nil {
						return err
					}
					display := cfg.Display
					if cCtx.IsSet("precision") {
						display.Precision = precision
					}
					lines, err := formatAmounts(log, display, width, cCtx.Args().Slice())
					if err != nil {
						return err
					}
					for _, l := range lines {
						pterm.Println(l)
					}
					return nil
				},
			},
			{
				Name:      "sum",
				Aliases:   []string{"s"},
				Usage:     "Adds amounts.",
				ArgsUsage: "AMOUNT...",
				Action: func(cCtx *cli.Context) error {
					cfg, log, err := setup()
					if err != nil {
						return err
					}
					total, err := sumAmounts(log, cCtx.Args().Slice())
					if err != nil {
						return err
					}
					pterm.Success.Println(cfg.Display.FormatAmount(total))
					return nil
				},
			},
			{
				Name:      "sub",
				Usage:     "Subtracts the second amount from the first one.",
				ArgsUsage: "MINUEND SUBTRAHEND",
				Action: func(cCtx *cli.Context) error {
					cfg, log, err := setup()
					if err != nil {
						return err
					}
					if cCtx.NArg() != 2 {
						return errors.New("please provide exactly two amounts")
					}
					diff, err := subAmounts(log, cCtx.Args().Get(0), cCtx.Args().Get(1))
					if err != nil {
						return err
					}
					pterm.Success.Println(cfg.Display.FormatAmount(diff))
					return nil
				},
			},
		},
	}
}

func parseAmounts(log logger.Logger, inputs []string) ([]amount.Amount, error) {
	if len(inputs) == 0 {
		return nil, errors.New("please provide at least one amount")
	}
	amounts := make([]amount.Amount, 0, len(inputs))
	for _, in := range inputs {
		a, err := amount.Parse(in)
		if err != nil {
			log.Warn(err.Error())
			return nil, err
		}
		amounts = append(amounts, a)
	}
	return amounts, nil
}

func formatAmounts(log logger.Logger, display amount.DisplayConfig, width int, inputs []string) ([]string, error) {
	amounts, err := parseAmounts(log, inputs)
	if err != nil {
		return nil, err
	}
	lines := make([]string, 0, len(amounts))
	for _, a := range amounts {
		s := a.Text(display.Precision)
		if n := width - len(s); n > 0 {
			s = strings.Repeat("0", n) + s
		}
		if display.ShowSymbol {
			s = fmt.Sprintf("%c %s", amount.Symbol, s)
		}
		lines = append(lines, s)
	}
	return lines, nil
}

func sumAmounts(log logger.Logger, inputs []string) (amount.Amount, error) {
	amounts, err := parseAmounts(log, inputs)
	if err != nil {
		return amount.Amount{}, err
	}
	total, err := amount.Sum(amounts...)
	if err != nil {
		log.Error(err.Error())
		return amount.Amount{}, err
	}
	log.Debug(fmt.Sprintf("sum of %d amounts is %s", len(amounts), total))
	return total, nil
}

func subAmounts(log logger.Logger, minuend, subtrahend string) (amount.Amount, error) {
	amounts, err := parseAmounts(log, []string{minuend, subtrahend})
	if err != nil {
		return amount.Amount{}, err
	}
	diff, err := amounts[0].Sub(amounts[1])
	if err != nil {
		log.Error(err.Error())
		return amount.Amount{}, err
	}
	return diff, nil
}
