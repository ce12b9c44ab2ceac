package cli

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"
)

func accountCommand(a *app) *cli.Command {
	return &cli.Command{
		Name:  "account",
		Usage: "Inspect the wallet session.",
		Commands: []*cli.Command{
			{
				Name:        "show",
				Description: "Show the active wallet account.",
				Usage:       "Connects to the wallet and prints the active account.",
				Action: a.withSession(false, func(_ context.Context, c *cli.Command) error {
					account, ok := a.wallet.CurrentAccount()
					if !ok {
						fmt.Fprintln(c.Root().Writer, a.wallet.State())
						return nil
					}

					fmt.Fprintf(c.Root().Writer, "%s (%s)\n", account.Hex(), a.wallet.State())
					return nil
				}),
			},
		},
	}
}
