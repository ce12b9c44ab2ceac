// Package memory keeps the last known manager address for the lifetime of the
// process. It backs sessions that run without Redis.
package memory

import (
	"context"
	"sync"

	"github.com/gabapcia/escrowctl/internal/managerregistry"

	"github.com/ethereum/go-ethereum/common"
)

type AddressBook struct {
	mu      sync.RWMutex
	address *common.Address
}

var _ managerregistry.AddressBook = (*AddressBook)(nil)

// NewAddressBook returns an empty book.
func NewAddressBook() *AddressBook {
	return &AddressBook{}
}

func (b *AddressBook) RememberManager(_ context.Context, address common.Address) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.address = &address
	return nil
}

func (b *AddressBook) LastManager(_ context.Context) (common.Address, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if b.address == nil {
		return common.Address{}, managerregistry.ErrNoKnownManager
	}

	return *b.address, nil
}
