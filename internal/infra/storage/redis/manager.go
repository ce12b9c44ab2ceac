package redis

import (
	"context"
	"errors"
	"fmt"

	"github.com/gabapcia/escrowctl/internal/managerregistry"

	"github.com/ethereum/go-ethereum/common"
	redis "github.com/redis/go-redis/v9"
)

// managerKey returns the key holding the last manager of network.
//
// Format: "{prefix}:manager:{network}"
func managerKey(prefix, network string) string {
	return fmt.Sprintf("%s:manager:%s", prefix, network)
}

// addressBook is a managerregistry.AddressBook scoped to one network.
type addressBook struct {
	conn redis.Cmdable
	key  string
}

var _ managerregistry.AddressBook = (*addressBook)(nil)

// AddressBook returns the manager address book of network.
func (c *Client) AddressBook(network string) managerregistry.AddressBook {
	return &addressBook{
		conn: c.conn,
		key:  managerKey(c.keyPrefix, network),
	}
}

// RememberManager overwrites the stored address.
func (b *addressBook) RememberManager(ctx context.Context, address common.Address) error {
	return b.conn.Set(ctx, b.key, address.Hex(), 0).Err()
}

// LastManager returns managerregistry.ErrNoKnownManager when the key is
// missing or holds something that is not an address.
func (b *addressBook) LastManager(ctx context.Context) (common.Address, error) {
	raw, err := b.conn.Get(ctx, b.key).Result()
	if errors.Is(err, redis.Nil) {
		return common.Address{}, managerregistry.ErrNoKnownManager
	}

	if err != nil {
		return common.Address{}, err
	}

	if !common.IsHexAddress(raw) {
		return common.Address{}, fmt.Errorf("%w: %s holds %q", managerregistry.ErrNoKnownManager, b.key, raw)
	}

	return common.HexToAddress(raw), nil
}
