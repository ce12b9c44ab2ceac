// Package keyed is a wallet provider backed by raw private keys. It stands in
// for a browser or hardware wallet on the command line: every held account
// can sign, and Switch changes the active one the way a user would in a wallet
// UI.
package keyed

import (
	"context"
	"crypto/ecdsa"
	"errors"
	"fmt"
	"math/big"
	"slices"
	"strings"
	"sync"

	"github.com/gabapcia/escrowctl/internal/escrow"
	"github.com/gabapcia/escrowctl/internal/pkg/logger"
	"github.com/gabapcia/escrowctl/internal/pkg/x/listeners"
	"github.com/gabapcia/escrowctl/internal/walletsession"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
)

var (
	ErrNoKeys         = errors.New("no private keys configured")
	ErrUnknownAccount = fmt.Errorf("%w: account is not held by this wallet", escrow.ErrInvalidInput)
)

type Wallet struct {
	chainID *big.Int

	mu       sync.RWMutex
	keys     map[common.Address]*ecdsa.PrivateKey
	accounts []common.Address

	handlers listeners.List[[]common.Address]
}

var _ walletsession.Provider = (*Wallet)(nil)

// New loads hex encoded private keys, with or without a 0x prefix. The first
// key is the initially active account.
func New(chainID *big.Int, hexKeys ...string) (*Wallet, error) {
	if len(hexKeys) == 0 {
		return nil, ErrNoKeys
	}

	w := &Wallet{
		chainID: new(big.Int).Set(chainID),
		keys:    make(map[common.Address]*ecdsa.PrivateKey, len(hexKeys)),
	}

	for i, raw := range hexKeys {
		key, err := crypto.HexToECDSA(strings.TrimPrefix(strings.TrimSpace(raw), "0x"))
		if err != nil {
			return nil, fmt.Errorf("private key %d: %w", i, err)
		}

		account := crypto.PubkeyToAddress(key.PublicKey)
		if _, ok := w.keys[account]; ok {
			continue
		}

		w.keys[account] = key
		w.accounts = append(w.accounts, account)
	}

	return w, nil
}

// Accounts lists held accounts, active first.
func (w *Wallet) Accounts() []common.Address {
	w.mu.RLock()
	defer w.mu.RUnlock()

	return slices.Clone(w.accounts)
}

func (w *Wallet) RequestAccounts(_ context.Context) ([]common.Address, error) {
	return w.Accounts(), nil
}

func (w *Wallet) Signer(_ context.Context, account common.Address) (escrow.Signer, error) {
	w.mu.RLock()
	key, ok := w.keys[account]
	w.mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownAccount, account.Hex())
	}

	opts, err := bind.NewKeyedTransactorWithChainID(key, w.chainID)
	if err != nil {
		return nil, err
	}

	return &signer{opts: opts}, nil
}

func (w *Wallet) SubscribeAccountsChanged(handler walletsession.AccountsHandler) func() {
	return w.handlers.Add(handler)
}

// Switch makes account the active one and notifies subscribers before
// returning. Switching to the already active account notifies nobody.
func (w *Wallet) Switch(ctx context.Context, account common.Address) error {
	w.mu.Lock()
	i := slices.Index(w.accounts, account)
	if i < 0 {
		w.mu.Unlock()
		return fmt.Errorf("%w: %s", ErrUnknownAccount, account.Hex())
	}

	if i == 0 {
		w.mu.Unlock()
		return nil
	}

	w.accounts = slices.Delete(w.accounts, i, i+1)
	w.accounts = slices.Insert(w.accounts, 0, account)
	accounts := slices.Clone(w.accounts)
	w.mu.Unlock()

	logger.Debug(ctx, "keyed wallet switched account", "account.address", account.Hex())

	w.handlers.Notify(ctx, accounts)
	return nil
}

// SwitchHex is Switch for a hex address, as typed on the command line.
func (w *Wallet) SwitchHex(ctx context.Context, account string) error {
	if !common.IsHexAddress(account) {
		return fmt.Errorf("%w: %q", ErrUnknownAccount, account)
	}

	return w.Switch(ctx, common.HexToAddress(account))
}

// Lock stops exposing accounts; subscribers see an empty list.
func (w *Wallet) Lock(ctx context.Context) {
	w.handlers.Notify(ctx, nil)
}

type signer struct {
	opts *bind.TransactOpts
}

func (s *signer) Account() common.Address {
	return s.opts.From
}

// TransactOpts returns a copy bound to ctx so callers may set Value freely.
func (s *signer) TransactOpts(ctx context.Context) *bind.TransactOpts {
	opts := *s.opts
	opts.Context = ctx
	return &opts
}
