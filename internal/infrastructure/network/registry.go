package network

import (
	"context"
	"fmt"
	"sort"

	"github.com/iho/ledgerexplorer/internal/domain"
)

// Protocols understood by the explorer.
const (
	ProtocolStardust  = "stardust"
	ProtocolChrysalis = "chrysalis"
)

// Known lists every network the explorer can be configured for.
var Known = []domain.Network{
	{
		Name:                  "mainnet",
		Label:                 "IOTA Mainnet",
		Protocol:              ProtocolStardust,
		Token:                 domain.TokenInfo{Decimals: 6, Unit: "IOTA", Subunit: "micro"},
		SupportsHistoryExport: true,
	},
	{
		Name:                  "shimmer",
		Label:                 "Shimmer",
		Protocol:              ProtocolStardust,
		Token:                 domain.TokenInfo{Decimals: 6, Unit: "SMR", Subunit: "glow"},
		SupportsHistoryExport: true,
	},
	{
		Name:                  "testnet",
		Label:                 "Shimmer Testnet",
		Protocol:              ProtocolStardust,
		Token:                 domain.TokenInfo{Decimals: 6, Unit: "SMR", Subunit: "glow"},
		SupportsHistoryExport: true,
	},
	{
		Name:     "chrysalis",
		Label:    "IOTA Legacy",
		Protocol: ProtocolChrysalis,
		Token:    domain.TokenInfo{Decimals: 6, Unit: "IOTA", Subunit: "i"},
	},
}

// Registry holds the networks enabled for this instance.
// It implements usecase.TokenInfoProvider.
type Registry struct {
	networks map[string]domain.Network
}

// NewRegistry creates a Registry enabling the named networks.
// Every name must be one of Known.
func NewRegistry(names ...string) (*Registry, error) {
	known := make(map[string]domain.Network, len(Known))
	for _, n := range Known {
		known[n.Name] = n
	}

	r := &Registry{networks: make(map[string]domain.Network, len(names))}
	for _, name := range names {
		n, ok := known[name]
		if !ok {
			return nil, fmt.Errorf("%w: %s", domain.ErrNetworkNotFound, name)
		}
		r.networks[name] = n
	}

	return r, nil
}

// Network returns the enabled network called name.
func (r *Registry) Network(name string) (domain.Network, error) {
	n, ok := r.networks[name]
	if !ok {
		return domain.Network{}, fmt.Errorf("%w: %s", domain.ErrNetworkNotFound, name)
	}
	return n, nil
}

// Networks returns the enabled networks sorted by name.
func (r *Registry) Networks() []domain.Network {
	out := make([]domain.Network, 0, len(r.networks))
	for _, n := range r.networks {
		out = append(out, n)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// TokenInfo returns the token conventions of a network that supports history export.
func (r *Registry) TokenInfo(_ context.Context, name string) (domain.TokenInfo, error) {
	n, err := r.Network(name)
	if err != nil {
		return domain.TokenInfo{}, err
	}
	if !n.SupportsHistoryExport {
		return domain.TokenInfo{}, fmt.Errorf("%w: %s", domain.ErrHistoryExportUnsupported, name)
	}
	return n.Token, nil
}
