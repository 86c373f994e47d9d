package main

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"

	"github.com/pterm/pterm"
	"github.com/urfave/cli/v2"

	"github.com/fractalglobal/utils/configuration"
	"github.com/fractalglobal/utils/logger"
	"github.com/fractalglobal/utils/logging"
	"github.com/fractalglobal/utils/wallet"
	"github.com/fractalglobal/utils/walletaddress"
)

type setupFunc func() (configuration.Configuration, logging.Helper, error)

func addressCommand(setup setupFunc) *cli.Command {
	var pem string
	return &cli.Command{
		Name:    "address",
		Aliases: []string{"a"},
		Usage:   "Validates, creates and derives wallet addresses.",
		Subcommands: []*cli.Command{
			{
				Name:      "check",
				Aliases:   []string{"c"},
				Usage:     "Validates wallet addresses and prints their raw bytes.",
				ArgsUsage: "ADDRESS...",
				Action: func(cCtx *cli.Context) error {
					_, log, err := setup()
					if err != nil {
						return err
					}
					rows, err := checkAddresses(log, cCtx.Args().Slice())
					if renderErr := pterm.DefaultTable.WithHasHeader().WithData(rows).Render(); renderErr != nil {
						return renderErr
					}
					return err
				},
			},
			{
				Name:    "new",
				Aliases: []string{"n"},
				Usage:   "Creates a random wallet address, or a new key pair saved to PEM files and its derived address.",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:        "pem",
						Aliases:     []string{"p"},
						Usage:       "Save the new key pair to PEM `FILE` path 'path/to/wallet', written as 'wallet' and 'wallet.pub'.",
						Destination: &pem,
					},
				},
				Action: func(_ *cli.Context) error {
					_, log, err := setup()
					if err != nil {
						return err
					}
					a, err := newAddress(log, pem)
					if err != nil {
						return err
					}
					pterm.Success.Println(a.String())
					return nil
				},
			},
			{
				Name:    "derive",
				Aliases: []string{"d"},
				Usage:   "Derives the wallet address of the key pair stored in PEM files.",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:        "pem",
						Aliases:     []string{"p"},
						Usage:       "Load the key pair from PEM `FILE` path 'path/to/wallet'.",
						Required:    true,
						Destination: &pem,
					},
				},
				Action: func(_ *cli.Context) error {
					_, log, err := setup()
					if err != nil {
						return err
					}
					a, err := deriveAddress(log, pem)
					if err != nil {
						return err
					}
					pterm.Success.Println(a.String())
					return nil
				},
			},
		},
	}
}

// checkAddresses returns a table with a header row and one row per input.
// The error counts the invalid addresses.
func checkAddresses(log logger.Logger, inputs []string) (pterm.TableData, error) {
	rows := pterm.TableData{{"address", "valid", "raw / reason"}}
	if len(inputs) == 0 {
		return rows, errors.New("please provide at least one address")
	}
	var invalid int
	for _, in := range inputs {
		a, err := walletaddress.Parse(in)
		if err != nil {
			invalid++
			log.Warn(err.Error())
			rows = append(rows, []string{in, "no", err.Error()})
			continue
		}
		log.Debug(fmt.Sprintf("address %s is valid", a))
		rows = append(rows, []string{in, "yes", hex.EncodeToString(a.Raw())})
	}
	if invalid > 0 {
		return rows, fmt.Errorf("%d of %d addresses are invalid", invalid, len(inputs))
	}
	return rows, nil
}

func newAddress(log logger.Logger, pem string) (walletaddress.WalletAddress, error) {
	if pem == "" {
		a, err := walletaddress.Random(rand.Reader)
		if err != nil {
			return a, err
		}
		log.Info(fmt.Sprintf("created random address %s", a))
		return a, nil
	}

	w, err := wallet.New()
	if err != nil {
		return walletaddress.WalletAddress{}, err
	}
	if err := w.SaveToPem(pem); err != nil {
		return walletaddress.WalletAddress{}, err
	}
	a, err := w.Address()
	if err != nil {
		return a, err
	}
	log.Info(fmt.Sprintf("created key pair %s with address %s", pem, a))
	return a, nil
}

func deriveAddress(log logger.Logger, pem string) (walletaddress.WalletAddress, error) {
	w, err := wallet.ReadFromPem(pem)
	if err != nil {
		return walletaddress.WalletAddress{}, err
	}
	a, err := w.Address()
	if err != nil {
		return a, err
	}
	log.Debug(fmt.Sprintf("derived address %s from %s", a, pem))
	return a, nil
}
