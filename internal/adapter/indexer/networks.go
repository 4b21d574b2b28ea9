package indexer

import (
	"context"
	"fmt"

	"github.com/iho/ledgerexplorer/internal/domain"
)

// Networks routes every call to the Client of the requested network.
// It implements usecase.OutputSource and usecase.OutputDetailResolver.
type Networks struct {
	clients map[string]*Client
}

// NewNetworks creates a Networks serving the given clients keyed by network name.
func NewNetworks(clients map[string]*Client) *Networks {
	return &Networks{clients: clients}
}

// Client returns the Client configured for network.
func (n *Networks) Client(network string) (*Client, error) {
	c, ok := n.clients[network]
	if !ok {
		return nil, fmt.Errorf("no indexer configured for %q: %w", network, domain.ErrNetworkNotFound)
	}
	return c, nil
}

// ListOutputs lists the ledger updates of address on network.
func (n *Networks) ListOutputs(ctx context.Context, network, address string, since uint32) ([]domain.RawOutputRef, error) {
	c, err := n.Client(network)
	if err != nil {
		return nil, err
	}
	return c.ListOutputs(ctx, network, address, since)
}

// ListLedgerUpdates lists the ledger updates of address on network with their milestone indexes.
func (n *Networks) ListLedgerUpdates(ctx context.Context, network, address string, since uint32) ([]domain.LedgerUpdate, error) {
	c, err := n.Client(network)
	if err != nil {
		return nil, err
	}
	return c.ListLedgerUpdates(ctx, address, since)
}

// ResolveOutput fetches an output of network from that network's node.
func (n *Networks) ResolveOutput(ctx context.Context, network, outputID string) (*domain.OutputDetail, error) {
	c, err := n.Client(network)
	if err != nil {
		return nil, err
	}
	return c.ResolveOutput(ctx, network, outputID)
}
