package cli

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"
)

func managerCommand(a *app) *cli.Command {
	return &cli.Command{
		Name:  "manager",
		Usage: "Select or provision the escrow manager contract.",
		Commands: []*cli.Command{
			deployManagerCommand(a),
			attachManagerCommand(a),
			defaultManagerCommand(a),
			showManagerCommand(a),
		},
	}
}

// deployManagerCommand provisions a new manager signed by the active account.
//
// Usage example:
//
//	escrowctl manager deploy
func deployManagerCommand(a *app) *cli.Command {
	return &cli.Command{
		Name:        "deploy",
		Description: "Deploy a new escrow manager contract and make it the active one.",
		Usage:       "Deploys a manager with the active account and waits until it is mined.",
		Action: a.withSession(false, func(ctx context.Context, c *cli.Command) error {
			handle, err := a.registry.Deploy(ctx)
			if err != nil {
				return err
			}

			fmt.Fprintf(c.Root().Writer, "manager deployed at %s\n", handle.Address().Hex())
			return nil
		}),
	}
}

// attachManagerCommand makes an existing manager the active one.
//
// Usage example:
//
//	escrowctl manager attach --address 0xABC123...
func attachManagerCommand(a *app) *cli.Command {
	return &cli.Command{
		Name:        "attach",
		Description: "Attach to an existing escrow manager contract.",
		Usage:       "Checks the address hosts a manager and makes it the active one.",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "address",
				Usage:    "Manager contract address",
				Required: true,
			},
		},
		Action: a.withSession(false, func(ctx context.Context, c *cli.Command) error {
			handle, err := a.registry.Attach(ctx, c.String("address"))
			if err != nil {
				return err
			}

			fmt.Fprintf(c.Root().Writer, "attached to manager %s\n", handle.Address().Hex())
			return nil
		}),
	}
}

// defaultManagerCommand attaches to the configured well-known manager.
//
// Usage example:
//
//	escrowctl manager default
func defaultManagerCommand(a *app) *cli.Command {
	return &cli.Command{
		Name:        "default",
		Description: "Attach to the configured default escrow manager contract.",
		Usage:       "Uses the manager set in ESCROW_DEFAULT_MANAGER.",
		Action: a.withSession(false, func(ctx context.Context, c *cli.Command) error {
			handle, err := a.registry.UseDefault(ctx)
			if err != nil {
				return err
			}

			fmt.Fprintf(c.Root().Writer, "attached to default manager %s\n", handle.Address().Hex())
			return nil
		}),
	}
}

func showManagerCommand(a *app) *cli.Command {
	return &cli.Command{
		Name:        "show",
		Description: "Show the manager remembered from the last session.",
		Usage:       "Prints the active manager address and how many escrows it holds.",
		Action: a.withSession(false, func(ctx context.Context, c *cli.Command) error {
			handle, err := a.registry.Resolve(ctx)
			if err != nil {
				return err
			}

			if handle == nil {
				fmt.Fprintln(c.Root().Writer, "no manager selected")
				return nil
			}

			fmt.Fprintf(c.Root().Writer, "manager %s (%d escrows)\n", handle.Address().Hex(), len(a.escrows.Escrows()))
			return nil
		}),
	}
}
