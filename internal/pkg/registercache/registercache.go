// Package registercache stores the raw 16-bit words read back from a device,
// keyed by register identity. Words are kept verbatim and decoded on demand,
// so the raw store is the single source of truth; nothing derived is cached.
package registercache

import (
	"fmt"
	"log"
	"strings"
	"sync"
	"time"

	"github.com/britkat1980/givenergy-modbus/internal/pkg/register"
)

// MissingRegisterError reports a composition read of a register that was
// never populated. An absent register is not the same as one holding zero.
type MissingRegisterError struct {
	ID register.Identity
}

func (e MissingRegisterError) Error() string {
	return fmt.Sprintf("register %s missing from cache", e.ID)
}

// MalformedKeyError reports a serialized key whose bank abbreviation is not
// recognized. It fails the whole deserialization.
type MalformedKeyError struct {
	Key string
}

func (e MalformedKeyError) Error() string {
	return fmt.Sprintf("malformed register key %q", e.Key)
}

// Cache is a mutable store of raw register words. The mutex guards the map
// and is held across the multi-register composition reads, so a concurrent
// writer can never tear a pair of related words mid-read.
type Cache struct {
	mux       sync.Mutex
	registers map[register.Identity]uint16
}

// New returns an empty Cache.
func New() *Cache {
	return &Cache{registers: make(map[register.Identity]uint16)}
}

// FromSnapshot returns a Cache pre-populated with the given raw words.
func FromSnapshot(entries map[register.Identity]uint16) *Cache {
	c := New()
	for id, raw := range entries {
		c.registers[id] = raw
	}
	return c
}

// Get returns the stored raw word verbatim. It never decodes. The second
// return distinguishes an absent register from one storing zero.
func (c *Cache) Get(id register.Identity) (uint16, bool) {
	c.mux.Lock()
	defer c.mux.Unlock()
	raw, ok := c.registers[id]
	return raw, ok
}

// Set inserts or overwrites one raw word. Identities without a static
// definition are accepted and stored verbatim.
func (c *Cache) Set(id register.Identity, raw uint16) {
	c.mux.Lock()
	defer c.mux.Unlock()
	c.registers[id] = raw
}

// SetBank bulk-inserts the result of one bank read, offset to raw word.
func (c *Cache) SetBank(bank register.Bank, registers map[uint16]uint16) {
	c.mux.Lock()
	defer c.mux.Unlock()
	for offset, raw := range registers {
		c.registers[register.Identity{Bank: bank, Offset: offset}] = raw
	}
}

// Len returns the number of stored registers.
func (c *Cache) Len() int {
	c.mux.Lock()
	defer c.mux.Unlock()
	return len(c.registers)
}

// Snapshot returns a copy of the stored identity to raw word mapping.
func (c *Cache) Snapshot() map[register.Identity]uint16 {
	c.mux.Lock()
	defer c.mux.Unlock()
	out := make(map[register.Identity]uint16, len(c.registers))
	for id, raw := range c.registers {
		out[id] = raw
	}
	return out
}

// ToString concatenates the big-endian bytes of the given registers in call
// order, drops anything that is not alphanumeric and upper-cases the rest.
// Serial numbers are spread across registers this way.
func (c *Cache) ToString(ids ...register.Identity) (string, error) {
	c.mux.Lock()
	defer c.mux.Unlock()
	var b strings.Builder
	for _, id := range ids {
		raw, ok := c.registers[id]
		if !ok {
			return "", MissingRegisterError{id}
		}
		b.WriteByte(byte(raw >> 8))
		b.WriteByte(byte(raw))
	}
	return scrub(b.String()), nil
}

// ToHexString concatenates each register as four lowercase hex digits, then
// strips and upper-cases like ToString. A zero word anywhere is treated as an
// unset placeholder and collapses the whole result to "".
func (c *Cache) ToHexString(ids ...register.Identity) (string, error) {
	c.mux.Lock()
	defer c.mux.Unlock()
	var b strings.Builder
	for _, id := range ids {
		raw, ok := c.registers[id]
		if !ok {
			return "", MissingRegisterError{id}
		}
		if raw == 0 {
			return "", nil
		}
		fmt.Fprintf(&b, "%04x", raw)
	}
	return scrub(b.String()), nil
}

// ToDUint8 splits each register into its high byte then low byte, preserving
// call order. The result always holds two bytes per register given.
func (c *Cache) ToDUint8(ids ...register.Identity) ([]uint8, error) {
	c.mux.Lock()
	defer c.mux.Unlock()
	out := make([]uint8, 0, 2*len(ids))
	for _, id := range ids {
		raw, ok := c.registers[id]
		if !ok {
			return nil, MissingRegisterError{id}
		}
		out = append(out, uint8(raw>>8), uint8(raw))
	}
	return out, nil
}

// ToUint32 combines two registers into an unsigned 32-bit int. The raw words
// are combined directly; scaling, if any, is the caller's business.
func (c *Cache) ToUint32(high, low register.Identity) (uint32, error) {
	c.mux.Lock()
	defer c.mux.Unlock()
	h, ok := c.registers[high]
	if !ok {
		return 0, MissingRegisterError{high}
	}
	l, ok := c.registers[low]
	if !ok {
		return 0, MissingRegisterError{low}
	}
	return uint32(h)<<16 + uint32(l), nil
}

// ToTimeSlot decodes a packed start/end register pair into a TimeSlot.
func (c *Cache) ToTimeSlot(start, end register.Identity) (register.TimeSlot, error) {
	c.mux.Lock()
	defer c.mux.Unlock()
	s, ok := c.registers[start]
	if !ok {
		return register.TimeSlot{}, MissingRegisterError{start}
	}
	e, ok := c.registers[end]
	if !ok {
		return register.TimeSlot{}, MissingRegisterError{end}
	}
	return register.TimeSlotFromRepr(s, e), nil
}

// sentinelTime is the earliest timestamp the device clock can represent.
var sentinelTime = time.Date(2000, time.January, 1, 0, 0, 0, 0, time.UTC)

// ToDateTime assembles the device clock from six registers; the year word
// counts from 2000, and month and day read as 1 when their register was never
// seen. Device clocks are routinely corrupt in the field, so any other
// missing register or out-of-range field is logged and swallowed into the
// year-2000 sentinel. Callers never observe an error from this path.
func (c *Cache) ToDateTime(year, month, day, hour, minute, second register.Identity) time.Time {
	c.mux.Lock()
	defer c.mux.Unlock()

	y, ok := c.registers[year]
	if !ok {
		return datetimeSentinel(MissingRegisterError{year})
	}
	mo, ok := c.registers[month]
	if !ok {
		mo = 1
	}
	d, ok := c.registers[day]
	if !ok {
		d = 1
	}
	h, ok := c.registers[hour]
	if !ok {
		return datetimeSentinel(MissingRegisterError{hour})
	}
	mi, ok := c.registers[minute]
	if !ok {
		return datetimeSentinel(MissingRegisterError{minute})
	}
	s, ok := c.registers[second]
	if !ok {
		return datetimeSentinel(MissingRegisterError{second})
	}

	if mo < 1 || mo > 12 || d < 1 || d > 31 || h > 23 || mi > 59 || s > 59 {
		return datetimeSentinel(fmt.Errorf("fields out of range: %d-%d-%d %d:%d:%d", y, mo, d, h, mi, s))
	}
	t := time.Date(2000+int(y), time.Month(mo), int(d), int(h), int(mi), int(s), 0, time.UTC)
	if t.Day() != int(d) || t.Month() != time.Month(mo) {
		// time.Date normalized an impossible calendar day, e.g. Feb 30
		return datetimeSentinel(fmt.Errorf("no such calendar day: %d-%d-%d", y, mo, d))
	}
	return t
}

func datetimeSentinel(cause error) time.Time {
	log.Printf("[RegisterCache] device clock unreadable (%v), using sentinel", cause)
	return sentinelTime
}

// scrub drops non-alphanumeric bytes and upper-cases the rest.
func scrub(s string) string {
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= '0' && c <= '9', c >= 'A' && c <= 'Z':
			b.WriteByte(c)
		case c >= 'a' && c <= 'z':
			b.WriteByte(c - 'a' + 'A')
		}
	}
	return b.String()
}
