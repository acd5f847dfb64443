// Package ethereum provides the JSON-RPC client and signing wallet used by the
// ethereum application service.
package ethereum

import (
	"context"

	"github.com/ethereum/go-ethereum/ethclient"
)

// Dial connects to an Ethereum JSON-RPC endpoint. For HTTP endpoints no
// round-trip happens until the first call, so a reachable node is not required
// at startup.
func Dial(ctx context.Context, rawURL string) (*ethclient.Client, error) {
	return ethclient.DialContext(ctx, rawURL)
}
