package cli

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/gabapcia/escrowctl/internal/escrow"
	"github.com/gabapcia/escrowctl/internal/escrowcoord"
	"github.com/gabapcia/escrowctl/internal/escrowinput"

	"github.com/urfave/cli/v3"
)

func escrowCommand(a *app) *cli.Command {
	return &cli.Command{
		Name:  "escrow",
		Usage: "List, create and approve escrows of the active manager.",
		Commands: []*cli.Command{
			listEscrowsCommand(a),
			createEscrowCommand(a),
			approveEscrowCommand(a),
		},
	}
}

func listEscrowsCommand(a *app) *cli.Command {
	return &cli.Command{
		Name:        "list",
		Description: "List every escrow held by the active manager.",
		Usage:       "Reads the escrows from the ledger, newest first.",
		Action: a.withSession(true, func(ctx context.Context, c *cli.Command) error {
			if err := a.escrows.Load(ctx); err != nil {
				return err
			}

			for _, record := range a.escrows.Escrows() {
				printEscrow(c.Root().Writer, record, a.escrows.ApprovalState(record.ID))
			}

			return nil
		}),
	}
}

// createEscrowCommand funds a new escrow from the active account.
//
// Usage example:
//
//	escrowctl escrow create --amount 1.5 --arbiter 0xABC... --beneficiary 0xDEF...
func createEscrowCommand(a *app) *cli.Command {
	return &cli.Command{
		Name:        "create",
		Description: "Create an escrow funded by the active account.",
		Usage:       "Validates the input, submits the escrow and waits until it is mined.",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "amount",
				Usage:    "Amount to lock, in --unit",
				Required: true,
			},
			&cli.StringFlag{
				Name:  "unit",
				Usage: "Unit of --amount (wei, kwei, mwei, gwei, szabo, finney, ether)",
				Value: string(escrow.UnitEther),
			},
			&cli.StringFlag{
				Name:     "arbiter",
				Usage:    "Account allowed to approve the release",
				Required: true,
			},
			&cli.StringFlag{
				Name:     "beneficiary",
				Usage:    "Account receiving the funds on approval",
				Required: true,
			},
		},
		Action: a.withSession(true, func(ctx context.Context, c *cli.Command) error {
			params, err := escrowinput.Validate(escrowinput.Input{
				Amount:      c.String("amount"),
				Unit:        c.String("unit"),
				Arbiter:     c.String("arbiter"),
				Beneficiary: c.String("beneficiary"),
			})
			if err != nil {
				return err
			}

			record, err := a.escrows.Create(ctx, params)
			if err != nil {
				return err
			}

			fmt.Fprintf(c.Root().Writer, "created escrow %s\n", record.ID)
			return nil
		}),
	}
}

// approveEscrowCommand releases an escrow. It blocks until the Approved event
// is observed or the confirmation timeout expires.
//
// Usage example:
//
//	escrowctl --account 0xARB... escrow approve --id 3
func approveEscrowCommand(a *app) *cli.Command {
	return &cli.Command{
		Name:        "approve",
		Description: "Approve an escrow as its arbiter.",
		Usage:       "Submits the approval and waits for the ledger to confirm it.",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "id",
				Usage:    "Escrow id",
				Required: true,
			},
		},
		Action: a.withSession(true, func(ctx context.Context, c *cli.Command) error {
			id := c.String("id")

			err := a.escrows.Approve(ctx, id)
			if errors.Is(err, escrow.ErrConfirmationTimeout) {
				fmt.Fprintf(c.Root().Writer, "escrow %s %s\n", id, escrowcoord.ApprovalStalled)
			}

			if err != nil {
				return err
			}

			fmt.Fprintf(c.Root().Writer, "escrow %s approved\n", id)
			return nil
		}),
	}
}

func printEscrow(w io.Writer, r escrow.Record, state escrowcoord.ApprovalState) {
	status := "awaiting approval"
	switch {
	case r.IsApproved:
		status = escrowcoord.ApprovalConfirmed.String()
	case state != escrowcoord.ApprovalNone:
		status = state.String()
	}

	fmt.Fprintf(w, "%s\tvalue=%s ETH\tdepositor=%s\tarbiter=%s\tbeneficiary=%s\tstatus=%s\n",
		r.ID, r.ValueInEther(), r.Depositor.Hex(), r.Arbiter.Hex(), r.Beneficiary.Hex(), status)
}
