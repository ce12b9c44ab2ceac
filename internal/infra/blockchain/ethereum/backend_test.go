package ethereum

import (
	"context"
	"errors"
	"math/big"
	"sync"
	"sync/atomic"

	"github.com/gabapcia/escrowctl/internal/escrow"

	geth "github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/event"
)

var (
	depositor   = common.HexToAddress("0x00000000000000000000000000000000000000a1")
	arbiter     = common.HexToAddress("0x00000000000000000000000000000000000000b2")
	beneficiary = common.HexToAddress("0x00000000000000000000000000000000000000c3")
	managerAddr = common.HexToAddress("0x1111111111111111111111111111111111111111")
)

// testSigner signs nothing; the fake backend accepts unsigned transactions.
type testSigner struct {
	account common.Address
	nonce   atomic.Uint64
}

func (s *testSigner) Account() common.Address {
	return s.account
}

func (s *testSigner) TransactOpts(ctx context.Context) *bind.TransactOpts {
	return &bind.TransactOpts{
		From:     s.account,
		Nonce:    new(big.Int).SetUint64(s.nonce.Add(1)),
		GasPrice: big.NewInt(1),
		GasLimit: 1_000_000,
		Context:  ctx,
		Signer: func(_ common.Address, tx *types.Transaction) (*types.Transaction, error) {
			return tx, nil
		},
	}
}

var _ escrow.Signer = (*testSigner)(nil)

// fakeBackend emulates a node hosting one manager contract.
type fakeBackend struct {
	mu sync.Mutex

	head     uint64
	code     map[common.Address][]byte
	escrows  []escrow.Record
	sent     []*types.Transaction
	receipts map[common.Hash]*types.Receipt
	logs     []types.Log

	revert       bool
	callErr      error
	subscribeErr error
	subscribed   chan<- types.Log
}

func newFakeBackend() *fakeBackend {
	return &fakeBackend{
		head:     10,
		code:     map[common.Address][]byte{managerAddr: {0x60, 0x80}},
		receipts: make(map[common.Hash]*types.Receipt),
	}
}

var _ Backend = (*fakeBackend)(nil)

func (f *fakeBackend) CodeAt(_ context.Context, contract common.Address, _ *big.Int) ([]byte, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.code[contract], nil
}

func (f *fakeBackend) CallContract(_ context.Context, call geth.CallMsg, _ *big.Int) ([]byte, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.callErr != nil {
		return nil, f.callErr
	}

	method, err := managerABI.MethodById(call.Data[:4])
	if err != nil {
		return nil, err
	}

	switch method.Name {
	case methodEscrowIDs:
		ids := make([]*big.Int, 0, len(f.escrows))
		for _, e := range f.escrows {
			id, _ := new(big.Int).SetString(e.ID, 10)
			ids = append(ids, id)
		}

		return method.Outputs.Pack(ids)

	case methodEscrow:
		args, err := method.Inputs.Unpack(call.Data[4:])
		if err != nil {
			return nil, err
		}

		id := args[0].(*big.Int).String()
		for _, e := range f.escrows {
			if e.ID == id {
				return method.Outputs.Pack(e.Depositor, e.Arbiter, e.Beneficiary, e.Value, e.IsApproved)
			}
		}

		return nil, errors.New("execution reverted: unknown escrow")
	}

	return nil, errors.New("execution reverted")
}

func (f *fakeBackend) HeaderByNumber(context.Context, *big.Int) (*types.Header, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	return &types.Header{Number: new(big.Int).SetUint64(f.head)}, nil
}

func (f *fakeBackend) PendingCodeAt(ctx context.Context, account common.Address) ([]byte, error) {
	return f.CodeAt(ctx, account, nil)
}

func (f *fakeBackend) PendingNonceAt(context.Context, common.Address) (uint64, error) {
	return 0, nil
}

func (f *fakeBackend) SuggestGasPrice(context.Context) (*big.Int, error) {
	return big.NewInt(1), nil
}

func (f *fakeBackend) SuggestGasTipCap(context.Context) (*big.Int, error) {
	return big.NewInt(1), nil
}

func (f *fakeBackend) EstimateGas(context.Context, geth.CallMsg) (uint64, error) {
	return 1_000_000, nil
}

func (f *fakeBackend) SendTransaction(_ context.Context, tx *types.Transaction) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.sent = append(f.sent, tx)
	f.head++

	receipt := &types.Receipt{
		Status:      types.ReceiptStatusSuccessful,
		TxHash:      tx.Hash(),
		BlockNumber: new(big.Int).SetUint64(f.head),
	}
	if f.revert {
		receipt.Status = types.ReceiptStatusFailed
	}

	switch {
	case tx.To() == nil:
		receipt.ContractAddress = crypto.CreateAddress(depositor, tx.Nonce())
		f.code[receipt.ContractAddress] = []byte{0x60, 0x80}

	default:
		method, err := managerABI.MethodById(tx.Data()[:4])
		if err != nil {
			return err
		}

		if method.Name == methodCreateEscrow {
			args, err := method.Inputs.Unpack(tx.Data()[4:])
			if err != nil {
				return err
			}

			id := big.NewInt(int64(len(f.escrows)))
			record := escrow.Record{
				ID:          id.String(),
				Depositor:   depositor,
				Arbiter:     args[0].(common.Address),
				Beneficiary: args[1].(common.Address),
				Value:       tx.Value(),
			}
			f.escrows = append(f.escrows, record)

			data, err := managerABI.Events[eventCreated].Inputs.NonIndexed().Pack(record.Arbiter, record.Beneficiary, record.Value)
			if err != nil {
				return err
			}

			receipt.Logs = append(receipt.Logs, &types.Log{
				Address: *tx.To(),
				Topics: []common.Hash{
					managerABI.Events[eventCreated].ID,
					common.BigToHash(id),
					common.BytesToHash(depositor.Bytes()),
				},
				Data:        data,
				TxHash:      tx.Hash(),
				BlockNumber: f.head,
			})
		}
	}

	f.receipts[tx.Hash()] = receipt
	return nil
}

func (f *fakeBackend) TransactionReceipt(_ context.Context, hash common.Hash) (*types.Receipt, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	receipt, ok := f.receipts[hash]
	if !ok {
		return nil, geth.NotFound
	}

	return receipt, nil
}

func (f *fakeBackend) FilterLogs(_ context.Context, q geth.FilterQuery) ([]types.Log, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var out []types.Log
	for _, log := range f.logs {
		if log.BlockNumber < q.FromBlock.Uint64() || log.BlockNumber > q.ToBlock.Uint64() {
			continue
		}

		if len(q.Topics) > 1 && len(q.Topics[1]) > 0 && log.Topics[1] != q.Topics[1][0] {
			continue
		}

		out = append(out, log)
	}

	return out, nil
}

func (f *fakeBackend) SubscribeFilterLogs(_ context.Context, _ geth.FilterQuery, ch chan<- types.Log) (geth.Subscription, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.subscribeErr != nil {
		return nil, f.subscribeErr
	}

	f.subscribed = ch
	return event.NewSubscription(func(quit <-chan struct{}) error {
		<-quit
		return nil
	}), nil
}

func (f *fakeBackend) BlockNumber(context.Context) (uint64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.head, nil
}

// emitApproved appends an Approved log for id in a new block.
func (f *fakeBackend) emitApproved(id int64) types.Log {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.head++
	log := types.Log{
		Address:     managerAddr,
		Topics:      []common.Hash{managerABI.Events[eventApproved].ID, common.BigToHash(big.NewInt(id))},
		BlockNumber: f.head,
		TxHash:      crypto.Keccak256Hash(big.NewInt(id).Bytes()),
	}
	f.logs = append(f.logs, log)

	return log
}

func (f *fakeBackend) subscription() chan<- types.Log {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.subscribed
}
