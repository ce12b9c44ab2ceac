package ethereum

import (
	"context"
	"fmt"
	"math/big"
	"time"

	"github.com/gabapcia/escrowctl/internal/escrow"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// manager is a bound escrow manager contract.
type manager struct {
	address      common.Address
	contract     *bind.BoundContract
	backend      Backend
	tracer       trace.Tracer
	pollInterval time.Duration
}

var _ escrow.Manager = (*manager)(nil)

func (m *manager) Address() common.Address {
	return m.address
}

func (m *manager) escrowIDs(ctx context.Context) ([]*big.Int, error) {
	var out []interface{}
	if err := m.contract.Call(&bind.CallOpts{Context: ctx}, &out, methodEscrowIDs); err != nil {
		return nil, err
	}

	return *abi.ConvertType(out[0], new([]*big.Int)).(*[]*big.Int), nil
}

func (m *manager) escrowByID(ctx context.Context, id *big.Int) (escrow.Record, error) {
	var out []interface{}
	if err := m.contract.Call(&bind.CallOpts{Context: ctx}, &out, methodEscrow, id); err != nil {
		return escrow.Record{}, err
	}

	return escrow.Record{
		ID:          id.String(),
		Depositor:   *abi.ConvertType(out[0], new(common.Address)).(*common.Address),
		Arbiter:     *abi.ConvertType(out[1], new(common.Address)).(*common.Address),
		Beneficiary: *abi.ConvertType(out[2], new(common.Address)).(*common.Address),
		Value:       *abi.ConvertType(out[3], new(*big.Int)).(**big.Int),
		IsApproved:  *abi.ConvertType(out[4], new(bool)).(*bool),
	}, nil
}

func (m *manager) ListEscrows(ctx context.Context) ([]escrow.Record, error) {
	ctx, span := m.tracer.Start(ctx, "manager.ListEscrows", trace.WithAttributes(attribute.String("manager.address", m.address.Hex())))
	defer span.End()

	ids, err := m.escrowIDs(ctx)
	if err != nil {
		return nil, recordError(span, err)
	}

	records := make([]escrow.Record, 0, len(ids))
	for _, id := range ids {
		record, err := m.escrowByID(ctx, id)
		if err != nil {
			return nil, recordError(span, fmt.Errorf("escrow %s: %w", id, err))
		}

		records = append(records, record)
	}

	span.SetAttributes(attribute.Int("escrow.count", len(records)))
	return records, nil
}

func (m *manager) CreateEscrow(ctx context.Context, signer escrow.Signer, params escrow.Params) (string, error) {
	ctx, span := m.tracer.Start(ctx, "manager.CreateEscrow", trace.WithAttributes(attribute.String("manager.address", m.address.Hex())))
	defer span.End()

	opts := signer.TransactOpts(ctx)
	opts.Value = new(big.Int).Set(params.Amount)

	tx, err := m.contract.Transact(opts, methodCreateEscrow, params.Arbiter, params.Beneficiary)
	if err != nil {
		return "", recordError(span, err)
	}

	receipt, err := m.waitMined(ctx, tx)
	if err != nil {
		return "", recordError(span, err)
	}

	id, err := m.createdID(receipt)
	if err != nil {
		return "", recordError(span, err)
	}

	span.SetAttributes(attribute.String("escrow.id", id))
	return id, nil
}

func (m *manager) ApproveEscrow(ctx context.Context, signer escrow.Signer, id string) (common.Hash, error) {
	ctx, span := m.tracer.Start(ctx, "manager.ApproveEscrow", trace.WithAttributes(
		attribute.String("manager.address", m.address.Hex()),
		attribute.String("escrow.id", id),
	))
	defer span.End()

	escrowID, err := parseID(id)
	if err != nil {
		return common.Hash{}, recordError(span, err)
	}

	tx, err := m.contract.Transact(signer.TransactOpts(ctx), methodApprove, escrowID)
	if err != nil {
		return common.Hash{}, recordError(span, err)
	}

	return tx.Hash(), nil
}

func (m *manager) waitMined(ctx context.Context, tx *types.Transaction) (*types.Receipt, error) {
	receipt, err := bind.WaitMined(ctx, m.backend, tx)
	if err != nil {
		return nil, err
	}

	if receipt.Status != types.ReceiptStatusSuccessful {
		return nil, fmt.Errorf("%w: %s", ErrReverted, tx.Hash().Hex())
	}

	return receipt, nil
}

// createdID extracts the escrow id from the Created log the manager emitted.
func (m *manager) createdID(receipt *types.Receipt) (string, error) {
	created := managerABI.Events[eventCreated]

	for _, log := range receipt.Logs {
		if log.Address != m.address || len(log.Topics) == 0 || log.Topics[0] != created.ID {
			continue
		}

		var ev createdLog
		if err := m.contract.UnpackLog(&ev, eventCreated, *log); err != nil {
			return "", err
		}

		return ev.Id.String(), nil
	}

	return "", fmt.Errorf("%w: %s", ErrNoEvent, eventCreated)
}

func parseID(id string) (*big.Int, error) {
	v, ok := new(big.Int).SetString(id, 10)
	if !ok || v.Sign() < 0 || v.BitLen() > 256 {
		return nil, fmt.Errorf("%w: %q", ErrInvalidID, id)
	}

	return v, nil
}
