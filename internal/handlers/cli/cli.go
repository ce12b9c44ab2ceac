package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/gabapcia/escrowctl/internal/escrow"
	"github.com/gabapcia/escrowctl/internal/escrowcoord"
	"github.com/gabapcia/escrowctl/internal/managerregistry"
	"github.com/gabapcia/escrowctl/internal/walletsession"

	"github.com/urfave/cli/v3"
)

const (
	accountFlag = "account"
	managerFlag = "manager"
)

// ErrNoManagerSelected is returned by escrow commands when no manager was
// given, none was remembered from an earlier session and no default is
// configured.
var ErrNoManagerSelected = fmt.Errorf("%w: pass --%s or configure ESCROW_DEFAULT_MANAGER", escrow.ErrNoManager, managerFlag)

// AccountSwitcher changes the wallet's active account.
type AccountSwitcher interface {
	SwitchHex(ctx context.Context, account string) error
}

type app struct {
	wallet   walletsession.Service
	switcher AccountSwitcher
	registry managerregistry.Service
	escrows  escrowcoord.Service
}

// Run executes the escrowctl command line against the given services.
//
// Commands:
//
//   - `manager deploy|attach|default|show`: select or provision the manager contract.
//   - `escrow list|create|approve`: work with the escrows of the active manager.
//   - `account show`: print the active wallet account.
//
// Failures are prefixed with their class (invalid input, not authorized, or
// network or transaction failure).
func Run(ctx context.Context, ws walletsession.Service, sw AccountSwitcher, mr managerregistry.Service, ec escrowcoord.Service) error {
	cmd := newCommand(&app{
		wallet:   ws,
		switcher: sw,
		registry: mr,
		escrows:  ec,
	})

	return classify(cmd.Run(ctx, os.Args))
}

func newCommand(a *app) *cli.Command {
	return &cli.Command{
		EnableShellCompletion: true,
		Name:                  "escrowctl",
		Description:           "Command-line client for escrow manager contracts.",
		Usage:                 "escrowctl [global flags] [command] [flags]",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  accountFlag,
				Usage: "Wallet account to act as (defaults to the first configured key)",
			},
			&cli.StringFlag{
				Name:    managerFlag,
				Usage:   "Manager contract the escrow commands act on (defaults to the remembered or configured one)",
				Sources: cli.EnvVars("ESCROW_MANAGER"),
			},
		},
		Commands: []*cli.Command{
			managerCommand(a),
			escrowCommand(a),
			accountCommand(a),
		},
	}
}

// withSession connects the wallet and starts the registry and coordinator
// around run. With resolve set, a manager is attached first (see
// selectManager).
func (a *app) withSession(resolve bool, run cli.ActionFunc) cli.ActionFunc {
	return func(ctx context.Context, c *cli.Command) error {
		if account := c.String(accountFlag); account != "" {
			if err := a.switcher.SwitchHex(ctx, account); err != nil {
				return err
			}
		}

		if _, err := a.wallet.Connect(ctx); err != nil {
			return err
		}
		defer a.wallet.Close()

		if err := a.registry.Start(ctx); err != nil {
			return err
		}
		defer a.registry.Close()

		if err := a.escrows.Start(ctx); err != nil {
			return err
		}
		defer a.escrows.Close()

		if resolve {
			if err := a.selectManager(ctx, c.String(managerFlag)); err != nil {
				return err
			}
		}

		return run(ctx, c)
	}
}

// selectManager attaches the manager escrow commands act on: the one given
// with --manager, else the one remembered for the network, else the
// configured default. Having none of them is ErrNoManagerSelected.
func (a *app) selectManager(ctx context.Context, address string) error {
	if address != "" {
		_, err := a.registry.Attach(ctx, address)
		return err
	}

	handle, err := a.registry.Resolve(ctx)
	if err != nil {
		return err
	}

	if handle != nil {
		return nil
	}

	_, err = a.registry.UseDefault(ctx)
	if errors.Is(err, managerregistry.ErrNoDefaultManager) {
		return ErrNoManagerSelected
	}

	return err
}

func classify(err error) error {
	if err == nil {
		return nil
	}

	kind := escrow.Classify(err)
	if kind == escrow.KindUnknown {
		return err
	}

	return fmt.Errorf("%s: %w", kind, err)
}
