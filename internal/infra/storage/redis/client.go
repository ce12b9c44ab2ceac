// Package redis keeps the manager address book in Redis, so a later escrowctl
// run on the same network resumes against the manager the previous run used.
// Every network gets its own key under a shared prefix, which lets several
// clients or environments share one database.
package redis

import (
	"context"
	"time"

	redis "github.com/redis/go-redis/v9"
)

// DefaultKeyPrefix namespaces the keys written by escrowctl.
const DefaultKeyPrefix = "escrow"

// Option configures the connection behind the address books.
type Option func(*options)

type options struct {
	redis     redis.Options
	keyPrefix string
}

// WithCredentials authenticates with an ACL user, or with the legacy
// password when username is empty.
func WithCredentials(username, password string) Option {
	return func(o *options) {
		o.redis.Username = username
		o.redis.Password = password
	}
}

// WithDB selects the logical database holding the address books.
func WithDB(db int) Option {
	return func(o *options) {
		o.redis.DB = db
	}
}

// WithDialTimeout bounds how long connecting may take. A client that cannot
// reach Redis fails at start instead of on the first lookup.
func WithDialTimeout(d time.Duration) Option {
	return func(o *options) {
		o.redis.DialTimeout = d
	}
}

// WithKeyPrefix overrides DefaultKeyPrefix. Empty prefixes are ignored.
func WithKeyPrefix(prefix string) Option {
	return func(o *options) {
		if prefix != "" {
			o.keyPrefix = prefix
		}
	}
}

func newOptions(addr string, opts ...Option) options {
	o := options{
		redis:     redis.Options{Addr: addr},
		keyPrefix: DefaultKeyPrefix,
	}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// Client is a Redis connection handing out per-network address books.
type Client struct {
	conn      *redis.Client
	keyPrefix string
}

// NewClient connects to addr and pings it, so a misconfigured store is
// reported before any manager is resolved.
func NewClient(ctx context.Context, addr string, opts ...Option) (*Client, error) {
	o := newOptions(addr, opts...)

	conn := redis.NewClient(&o.redis)
	if err := conn.Ping(ctx).Err(); err != nil {
		_ = conn.Close()
		return nil, err
	}

	return &Client{
		conn:      conn,
		keyPrefix: o.keyPrefix,
	}, nil
}

// Close releases the connection. Address books handed out stop working.
func (c *Client) Close() error {
	return c.conn.Close()
}
