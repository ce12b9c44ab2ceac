package main

import (
	"context"
	"fmt"
	"math/big"
	"os"
	"os/signal"
	"syscall"

	"github.com/gabapcia/escrowctl/internal/config"
	"github.com/gabapcia/escrowctl/internal/escrowcoord"
	"github.com/gabapcia/escrowctl/internal/handlers/cli"
	"github.com/gabapcia/escrowctl/internal/infra/blockchain/ethereum"
	"github.com/gabapcia/escrowctl/internal/infra/storage/memory"
	"github.com/gabapcia/escrowctl/internal/infra/storage/redis"
	"github.com/gabapcia/escrowctl/internal/infra/wallet/keyed"
	"github.com/gabapcia/escrowctl/internal/managerregistry"
	"github.com/gabapcia/escrowctl/internal/pkg/logger"
	"github.com/gabapcia/escrowctl/internal/pkg/resilience/retry"
	"github.com/gabapcia/escrowctl/internal/pkg/telemetry"
	transporthttp "github.com/gabapcia/escrowctl/internal/pkg/transport/http"
	"github.com/gabapcia/escrowctl/internal/walletsession"

	"github.com/ethereum/go-ethereum/common"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}

	if cfg.Telemetry.Enabled {
		shutdown, err := telemetry.Init(ctx, cfg.Telemetry.ServiceName)
		if err != nil {
			return fmt.Errorf("telemetry: %w", err)
		}
		defer shutdown(context.WithoutCancel(ctx))
	}

	if err := logger.Init(logger.WithLevel(cfg.LogLevel)); err != nil {
		return fmt.Errorf("logger: %w", err)
	}
	defer logger.Sync()

	httpClient := transporthttp.NewStandardClient(
		transporthttp.WithTimeout(cfg.HTTP.Timeout),
		transporthttp.WithRetryMax(cfg.HTTP.RetryMax),
	)

	client, err := ethereum.Dial(ctx, cfg.RPCURL, httpClient)
	if err != nil {
		return fmt.Errorf("dial %s: %w", cfg.RPCURL, err)
	}
	defer client.Close()

	chainID := big.NewInt(cfg.ChainID)
	if chainID.Sign() == 0 {
		if chainID, err = client.ChainID(ctx); err != nil {
			return fmt.Errorf("chain id: %w", err)
		}
	}

	wallet, err := keyed.New(chainID, cfg.PrivateKeys...)
	if err != nil {
		return fmt.Errorf("wallet: %w", err)
	}

	loadRetry := retry.New(
		retry.WithAttempts(cfg.LoadRetry.Attempts),
		retry.WithDelay(cfg.LoadRetry.Delay),
		retry.WithRetryIf(retry.NotCanceled),
	)

	ledgerOpts := []ethereum.Option{
		ethereum.WithPollInterval(cfg.PollInterval),
		ethereum.WithRetry(loadRetry),
	}
	if cfg.ManagerBytecode != "" {
		code, err := ethereum.LoadBytecode(cfg.ManagerBytecode)
		if err != nil {
			return fmt.Errorf("manager bytecode: %w", err)
		}

		ledgerOpts = append(ledgerOpts, ethereum.WithBytecode(code))
	}

	addressBook, closeBook, err := newAddressBook(ctx, cfg)
	if err != nil {
		return fmt.Errorf("address book: %w", err)
	}
	defer closeBook()

	var registryOpts []managerregistry.Option
	if cfg.DefaultManager != "" {
		registryOpts = append(registryOpts, managerregistry.WithDefaultAddress(common.HexToAddress(cfg.DefaultManager)))
	}

	session := walletsession.New(wallet)
	registry := managerregistry.New(ethereum.New(client, ledgerOpts...), addressBook, session, registryOpts...)
	coordinator := escrowcoord.New(registry, session,
		escrowcoord.WithConfirmationTimeout(cfg.ConfirmationTimeout),
		escrowcoord.WithRetry(loadRetry),
	)

	return cli.Run(ctx, session, wallet, registry, coordinator)
}

// newAddressBook uses Redis when configured and an in-memory book otherwise.
func newAddressBook(ctx context.Context, cfg config.Config) (managerregistry.AddressBook, func(), error) {
	if cfg.Redis.Addr == "" {
		return memory.NewAddressBook(), func() {}, nil
	}

	client, err := redis.NewClient(ctx, cfg.Redis.Addr,
		redis.WithCredentials(cfg.Redis.Username, cfg.Redis.Password),
		redis.WithDB(cfg.Redis.DB),
		redis.WithDialTimeout(cfg.Redis.DialTimeout),
		redis.WithKeyPrefix(cfg.Redis.KeyPrefix),
	)
	if err != nil {
		return nil, nil, err
	}

	return client.AddressBook(cfg.Network), func() { _ = client.Close() }, nil
}
