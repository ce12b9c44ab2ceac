// Package ethereum implements the ledger side of escrowctl on go-ethereum: it
// deploys and binds manager contracts, reads escrows, submits transactions and
// streams Approved events.
package ethereum

import (
	"context"
	"net/http"

	geth "github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/ethereum/go-ethereum/rpc"
)

// Backend is the node API the adapter needs. *ethclient.Client satisfies it.
type Backend interface {
	bind.ContractBackend
	bind.DeployBackend
	geth.BlockNumberReader
}

var _ Backend = (*ethclient.Client)(nil)

// Dial connects to the node at url. HTTP endpoints go through httpClient,
// which lets callers plug in the retrying transport.
func Dial(ctx context.Context, url string, httpClient *http.Client) (*ethclient.Client, error) {
	var opts []rpc.ClientOption
	if httpClient != nil {
		opts = append(opts, rpc.WithHTTPClient(httpClient))
	}

	c, err := rpc.DialOptions(ctx, url, opts...)
	if err != nil {
		return nil, err
	}

	return ethclient.NewClient(c), nil
}
