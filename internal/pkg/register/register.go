package register

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Bank identifies one of the two register address spaces exposed by the
// inverter.
type Bank string

// Constants of Bank
const (
	Holding Bank = "HR"
	Input   Bank = "IR"
)

// Identity addresses a single 16-bit register within a bank. The zero offset
// is a real register, and offsets without a static definition are still valid
// cache keys.
type Identity struct {
	Bank   Bank
	Offset uint16
}

// HR is shorthand for a holding register identity
func HR(offset uint16) Identity {
	return Identity{Bank: Holding, Offset: offset}
}

// IR is shorthand for an input register identity
func IR(offset uint16) Identity {
	return Identity{Bank: Input, Offset: offset}
}

// String returns the canonical serialized form, e.g. HR(13)
func (id Identity) String() string {
	return fmt.Sprintf("%s(%d)", id.Bank, id.Offset)
}

// Parse errors. ErrUnknownBank ends a deserialization, ErrBadOffset only
// drops the entry carrying it.
var (
	ErrUnknownBank = errors.New("unknown register bank")
	ErrBadOffset   = errors.New("unparsable register offset")
)

// ParseIdentity reads the canonical HR(13) form, or the legacy HR:13 form
// written by older snapshots. The parenthesized form wins when both
// separators appear.
func ParseIdentity(key string) (Identity, error) {
	var abbrev, offset string
	if i := strings.IndexByte(key, '('); i >= 0 {
		abbrev = key[:i]
		offset = strings.TrimSuffix(key[i+1:], ")")
	} else if i := strings.IndexByte(key, ':'); i >= 0 {
		abbrev = key[:i]
		offset = key[i+1:]
	} else {
		abbrev = key
	}

	var bank Bank
	switch Bank(abbrev) {
	case Holding, Input:
		bank = Bank(abbrev)
	default:
		return Identity{}, fmt.Errorf("%w: %q", ErrUnknownBank, key)
	}

	n, err := strconv.ParseUint(offset, 10, 16)
	if err != nil {
		return Identity{}, fmt.Errorf("%w: %q", ErrBadOffset, key)
	}

	return Identity{Bank: bank, Offset: uint16(n)}, nil
}
