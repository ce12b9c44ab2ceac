package ethereum

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/gabapcia/escrowctl/internal/escrow"
	"github.com/gabapcia/escrowctl/internal/managerregistry"
	"github.com/gabapcia/escrowctl/internal/pkg/logger"
	"github.com/gabapcia/escrowctl/internal/pkg/resilience/retry"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const tracerName = "github.com/gabapcia/escrowctl/internal/infra/blockchain/ethereum"

// defaultPollInterval is how often Approved logs are polled on endpoints
// without subscriptions.
const defaultPollInterval = 4 * time.Second

var (
	ErrNoBytecode = errors.New("manager bytecode not configured")
	ErrNoCode     = errors.New("no contract code at address")
	ErrReverted   = errors.New("transaction reverted")
	ErrNoEvent    = errors.New("expected event not found in receipt")
	ErrInvalidID  = fmt.Errorf("%w: escrow id is not a uint256", escrow.ErrInvalidInput)
)

type config struct {
	bytecode     []byte
	pollInterval time.Duration
	retry        retry.Retry
}

// Option configures a Ledger.
type Option func(*config)

// WithBytecode sets the creation code used by Deploy.
func WithBytecode(code []byte) Option {
	return func(c *config) {
		c.bytecode = code
	}
}

// WithPollInterval sets the Approved log polling interval.
func WithPollInterval(d time.Duration) Option {
	return func(c *config) {
		c.pollInterval = d
	}
}

// WithRetry sets the policy for read-only node calls made by the adapter.
func WithRetry(r retry.Retry) Option {
	return func(c *config) {
		c.retry = r
	}
}

// Ledger deploys and binds manager contracts on one network.
type Ledger struct {
	cfg     config
	backend Backend
	tracer  trace.Tracer
}

var _ managerregistry.Ledger = (*Ledger)(nil)

// New returns a Ledger talking to backend.
func New(backend Backend, opts ...Option) *Ledger {
	cfg := config{
		pollInterval: defaultPollInterval,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	if cfg.retry == nil {
		cfg.retry = retry.New(retry.WithRetryIf(retry.NotCanceled))
	}

	return &Ledger{
		cfg:     cfg,
		backend: backend,
		tracer:  otel.Tracer(tracerName),
	}
}

// LoadBytecode reads hex encoded creation code from path.
func LoadBytecode(path string) ([]byte, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	code := common.FromHex(strings.TrimSpace(string(raw)))
	if len(code) == 0 {
		return nil, fmt.Errorf("%s: %w", path, ErrNoBytecode)
	}

	return code, nil
}

func (l *Ledger) Deploy(ctx context.Context, signer escrow.Signer) (escrow.Manager, error) {
	ctx, span := l.tracer.Start(ctx, "ledger.Deploy")
	defer span.End()

	if len(l.cfg.bytecode) == 0 {
		return nil, ErrNoBytecode
	}

	opts := signer.TransactOpts(ctx)
	address, tx, contract, err := bind.DeployContract(opts, managerABI, l.cfg.bytecode, l.backend)
	if err != nil {
		return nil, recordError(span, err)
	}

	logger.Info(ctx, "manager deployment submitted", "tx.hash", tx.Hash().Hex(), "manager.address", address.Hex())

	if _, err := bind.WaitDeployed(ctx, l.backend, tx); err != nil {
		return nil, recordError(span, err)
	}

	span.SetAttributes(attribute.String("manager.address", address.Hex()))
	return l.newManager(address, contract), nil
}

func (l *Ledger) Attach(ctx context.Context, address common.Address) (escrow.Manager, error) {
	ctx, span := l.tracer.Start(ctx, "ledger.Attach", trace.WithAttributes(attribute.String("manager.address", address.Hex())))
	defer span.End()

	err := l.cfg.retry.Execute(ctx, func() error {
		code, err := l.backend.CodeAt(ctx, address, nil)
		if err != nil {
			return err
		}

		if len(code) == 0 {
			return retry.Permanent(ErrNoCode)
		}

		return nil
	})
	if err != nil {
		return nil, recordError(span, err)
	}

	contract := bind.NewBoundContract(address, managerABI, l.backend, l.backend, l.backend)
	m := l.newManager(address, contract)

	if _, err := m.escrowIDs(ctx); err != nil {
		return nil, recordError(span, fmt.Errorf("check %s: %w", methodEscrowIDs, err))
	}

	return m, nil
}

func (l *Ledger) newManager(address common.Address, contract *bind.BoundContract) *manager {
	return &manager{
		address:      address,
		contract:     contract,
		backend:      l.backend,
		tracer:       l.tracer,
		pollInterval: l.cfg.pollInterval,
	}
}

func recordError(span trace.Span, err error) error {
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
	return err
}
