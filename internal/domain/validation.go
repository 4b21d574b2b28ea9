package domain

import (
	"fmt"
	"regexp"
	"strings"
)

// Validation constants
const (
	MaxAddressLength = 128
	MinAddressLength = 8
)

// Bech32 data part alphabet, preceded by a human readable part and the "1" separator.
var addressRegex = regexp.MustCompile(`^[a-z]{1,16}1[qpzry9x8gf2tvdw0s3jn54khce6mua7l]+$`)

// ValidateAddress validates a bech32 encoded address.
func ValidateAddress(address string) error {
	address = strings.TrimSpace(address)

	if len(address) < MinAddressLength {
		return fmt.Errorf("%w: address is too short", ErrInvalidAddress)
	}

	if len(address) > MaxAddressLength {
		return fmt.Errorf("%w: address exceeds %d characters", ErrInvalidAddress, MaxAddressLength)
	}

	if !addressRegex.MatchString(strings.ToLower(address)) {
		return fmt.Errorf("%w: %s is not a bech32 address", ErrInvalidAddress, address)
	}

	return nil
}
