package registercache

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/britkat1980/givenergy-modbus/internal/pkg/register"
	"gotest.tools/assert"
)

func TestMarshalKeys(t *testing.T) {
	c := FromSnapshot(map[register.Identity]uint16{
		register.HR(13): 21313,
		register.IR(0):  1,
	})

	data, err := json.Marshal(c)
	assert.NilError(t, err)

	var flat map[string]uint16
	assert.NilError(t, json.Unmarshal(data, &flat))
	assert.Equal(t, 2, len(flat))
	assert.Equal(t, uint16(21313), flat["HR(13)"])
	assert.Equal(t, uint16(1), flat["IR(0)"])
}

func TestRoundTrip(t *testing.T) {
	original := newTestCache()
	original.Set(register.HR(9999), 7) // undefined registers round-trip too

	data, err := json.Marshal(original)
	assert.NilError(t, err)

	restored, err := FromJSON(data)
	assert.NilError(t, err)

	want := original.Snapshot()
	got := restored.Snapshot()
	assert.Equal(t, len(want), len(got))
	for id, raw := range want {
		restoredRaw, ok := got[id]
		assert.Assert(t, ok, "lost %s", id)
		assert.Equal(t, raw, restoredRaw)
	}
}

func TestUnmarshalLegacyKeys(t *testing.T) {
	c, err := FromJSON([]byte(`{"HR:13": 21313, "IR:041": 222}`))
	assert.NilError(t, err)

	raw, ok := c.Get(register.HR(13))
	assert.Assert(t, ok)
	assert.Equal(t, uint16(21313), raw)

	raw, ok = c.Get(register.IR(41))
	assert.Assert(t, ok)
	assert.Equal(t, uint16(222), raw)
}

func TestUnmarshalUnknownBankFailsParse(t *testing.T) {
	_, err := FromJSON([]byte(`{"HR(1)": 1, "XX(5)": 2}`))
	var malformed MalformedKeyError
	assert.Assert(t, errors.As(err, &malformed))
	assert.Equal(t, "XX(5)", malformed.Key)
}

func TestUnmarshalBadOffsetDropsEntry(t *testing.T) {
	c, err := FromJSON([]byte(`{"HR(abc)": 1, "HR(5)": 42}`))
	assert.NilError(t, err, "an unparsable offset is tolerated, not fatal")
	assert.Equal(t, 1, c.Len())

	raw, ok := c.Get(register.HR(5))
	assert.Assert(t, ok)
	assert.Equal(t, uint16(42), raw)
}

func TestUnmarshalReplacesContents(t *testing.T) {
	c := New()
	c.Set(register.HR(1), 1)
	assert.NilError(t, json.Unmarshal([]byte(`{"IR(2)": 2}`), c))
	assert.Equal(t, 1, c.Len())
	_, ok := c.Get(register.HR(1))
	assert.Assert(t, !ok)
}

func TestFlat(t *testing.T) {
	flat := newTestCache().Flat()
	assert.Equal(t, len(holdingFixture)+len(inputFixture), len(flat))
	assert.Equal(t, uint16(8193), flat["HR(0)"])
	assert.Equal(t, uint16(2367), flat["IR(5)"])
}
