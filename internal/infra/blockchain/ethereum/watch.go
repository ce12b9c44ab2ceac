package ethereum

import (
	"context"
	"errors"
	"math/big"
	"time"

	"github.com/gabapcia/escrowctl/internal/escrow"
	"github.com/gabapcia/escrowctl/internal/pkg/logger"
	"github.com/gabapcia/escrowctl/internal/pkg/x/chflow"

	geth "github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/event"
	"github.com/ethereum/go-ethereum/rpc"
)

// WatchApproved streams Approved events for id. Websocket and IPC endpoints
// use a log subscription; HTTP endpoints fall back to polling FilterLogs from
// the block current at subscription time.
func (m *manager) WatchApproved(ctx context.Context, id string, sink chan<- escrow.ApprovedEvent) (event.Subscription, error) {
	escrowID, err := parseID(id)
	if err != nil {
		return nil, err
	}

	logs, sub, err := m.contract.WatchLogs(&bind.WatchOpts{Context: ctx}, eventApproved, []interface{}{escrowID})
	if errors.Is(err, rpc.ErrNotificationsUnsupported) {
		logger.Debug(ctx, "log subscriptions unsupported, polling approvals", "escrow.id", id)
		return m.pollApproved(ctx, escrowID, sink)
	}

	if err != nil {
		return nil, err
	}

	return event.NewSubscription(func(quit <-chan struct{}) error {
		defer sub.Unsubscribe()

		for {
			select {
			case log := <-logs:
				ev, ok := m.approvedEvent(log)
				if !ok {
					continue
				}

				select {
				case sink <- ev:
				case <-quit:
					return nil
				}

			case err := <-sub.Err():
				return err

			case <-quit:
				return nil
			}
		}
	}), nil
}

func (m *manager) pollApproved(ctx context.Context, id *big.Int, sink chan<- escrow.ApprovedEvent) (event.Subscription, error) {
	from, err := m.backend.BlockNumber(ctx)
	if err != nil {
		return nil, err
	}

	query, err := m.approvedQuery(id)
	if err != nil {
		return nil, err
	}

	return event.NewSubscription(func(quit <-chan struct{}) error {
		ctx, cancel := context.WithCancel(ctx)
		defer cancel()

		go func() {
			select {
			case <-quit:
				cancel()
			case <-ctx.Done():
			}
		}()

		ticker := time.NewTicker(m.pollInterval)
		defer ticker.Stop()

		for {
			head, err := m.backend.BlockNumber(ctx)
			if err == nil && head >= from {
				query.FromBlock = new(big.Int).SetUint64(from)
				query.ToBlock = new(big.Int).SetUint64(head)

				var logs []types.Log
				logs, err = m.backend.FilterLogs(ctx, query)
				if err == nil {
					from = head + 1

					for _, log := range logs {
						ev, ok := m.approvedEvent(log)
						if ok && !chflow.Send(ctx, sink, ev) {
							return nil
						}
					}
				}
			}

			if err != nil && ctx.Err() == nil {
				logger.Warn(ctx, "failed to poll approvals", "manager.address", m.address.Hex(), "error", err)
			}

			if _, ok := chflow.Receive(ctx, ticker.C); !ok {
				return nil
			}
		}
	}), nil
}

func (m *manager) approvedQuery(id *big.Int) (geth.FilterQuery, error) {
	topics, err := abi.MakeTopics(
		[]interface{}{managerABI.Events[eventApproved].ID},
		[]interface{}{id},
	)
	if err != nil {
		return geth.FilterQuery{}, err
	}

	return geth.FilterQuery{
		Addresses: []common.Address{m.address},
		Topics:    topics,
	}, nil
}

func (m *manager) approvedEvent(log types.Log) (escrow.ApprovedEvent, bool) {
	if log.Removed {
		return escrow.ApprovedEvent{}, false
	}

	var ev approvedLog
	if err := m.contract.UnpackLog(&ev, eventApproved, log); err != nil {
		logger.Warn(context.Background(), "ignoring malformed approval log", "tx.hash", log.TxHash.Hex(), "error", err)
		return escrow.ApprovedEvent{}, false
	}

	return escrow.ApprovedEvent{
		ID:          ev.Id.String(),
		TxHash:      log.TxHash,
		BlockNumber: log.BlockNumber,
	}, true
}
