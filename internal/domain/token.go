package domain

// TokenInfo describes the base token of a network.
type TokenInfo struct {
	Decimals uint8
	Unit     string
	Subunit  string
}

// BaseUnit returns the name used for raw, unshifted amounts.
func (t TokenInfo) BaseUnit() string {
	if t.Subunit != "" {
		return t.Subunit
	}
	return t.Unit
}

// Network is a ledger network the explorer knows about.
type Network struct {
	Name                  string
	Label                 string
	Protocol              string
	Token                 TokenInfo
	SupportsHistoryExport bool
}
