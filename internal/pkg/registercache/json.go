package registercache

import (
	"encoding/json"
	"errors"

	"github.com/britkat1980/givenergy-modbus/internal/pkg/register"
)

// Flat returns the cache as the interchange mapping: canonical identity text
// to raw word. Entry order carries no meaning.
func (c *Cache) Flat() map[string]uint16 {
	c.mux.Lock()
	defer c.mux.Unlock()
	return c.flat()
}

func (c *Cache) flat() map[string]uint16 {
	out := make(map[string]uint16, len(c.registers))
	for id, raw := range c.registers {
		out[id.String()] = raw
	}
	return out
}

// MarshalJSON writes the interchange form, a JSON object keyed by HR(n) and
// IR(n) with the raw words as values.
func (c *Cache) MarshalJSON() ([]byte, error) {
	c.mux.Lock()
	defer c.mux.Unlock()
	return json.Marshal(c.flat())
}

// UnmarshalJSON replaces the cache contents with a parsed interchange form.
// The legacy HR:n key spelling is accepted. A key with an unrecognized bank
// fails the whole parse with MalformedKeyError; a key whose offset does not
// parse is dropped and parsing continues, so snapshots written by newer
// software with keys we do not understand still load.
func (c *Cache) UnmarshalJSON(data []byte) error {
	var flat map[string]uint16
	if err := json.Unmarshal(data, &flat); err != nil {
		return err
	}

	registers := make(map[register.Identity]uint16, len(flat))
	for key, raw := range flat {
		id, err := register.ParseIdentity(key)
		switch {
		case errors.Is(err, register.ErrBadOffset):
			continue
		case err != nil:
			return MalformedKeyError{Key: key}
		}
		registers[id] = raw
	}

	c.mux.Lock()
	defer c.mux.Unlock()
	c.registers = registers
	return nil
}

// FromJSON parses a serialized cache.
func FromJSON(data []byte) (*Cache, error) {
	c := New()
	if err := json.Unmarshal(data, c); err != nil {
		return nil, err
	}
	return c, nil
}
