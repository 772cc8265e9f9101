package plant

import (
	"testing"
	"time"

	"github.com/britkat1980/givenergy-modbus/internal/pkg/msg"
	"github.com/britkat1980/givenergy-modbus/internal/pkg/register"
	"github.com/britkat1980/givenergy-modbus/internal/pkg/registercache"
	"github.com/google/uuid"
	"gotest.tools/assert"
)

func TestNewPlant(t *testing.T) {
	p, err := New()
	assert.NilError(t, err)

	cache, ok := p.Cache(InverterAddr)
	assert.Assert(t, ok, "inverter cache exists from the start")
	assert.Equal(t, 0, cache.Len())
}

func TestUpdateRoutesIntoCache(t *testing.T) {
	p, err := New()
	assert.NilError(t, err)

	p.Update(InverterAddr, register.Holding, map[uint16]uint16{13: 21313})
	p.Update(InverterAddr, register.Input, map[uint16]uint16{5: 2367})

	cache, ok := p.Cache(InverterAddr)
	assert.Assert(t, ok)
	raw, ok := cache.Get(register.HR(13))
	assert.Assert(t, ok)
	assert.Equal(t, uint16(21313), raw)
	raw, ok = cache.Get(register.IR(5))
	assert.Assert(t, ok)
	assert.Equal(t, uint16(2367), raw)
}

func TestUpdateCreatesBatteryCache(t *testing.T) {
	p, err := New()
	assert.NilError(t, err)

	p.Update(0x33, register.Input, map[uint16]uint16{59: 4})

	cache, ok := p.Cache(0x33)
	assert.Assert(t, ok)
	raw, ok := cache.Get(register.IR(59))
	assert.Assert(t, ok)
	assert.Equal(t, uint16(4), raw)

	addrs := p.Addresses()
	assert.Equal(t, 2, len(addrs))
	assert.Equal(t, byte(InverterAddr), addrs[0])
	assert.Equal(t, byte(0x33), addrs[1])
}

func TestCloudAndAppAddressesRemap(t *testing.T) {
	p, err := New()
	assert.NilError(t, err)

	p.Update(0x11, register.Holding, map[uint16]uint16{0: 8193})
	p.Update(0x00, register.Holding, map[uint16]uint16{1: 3})

	// both updates land on the inverter's own address
	assert.Equal(t, 1, len(p.Addresses()))
	cache, ok := p.Cache(InverterAddr)
	assert.Assert(t, ok)
	assert.Equal(t, 2, cache.Len())
}

func TestSubscribeReceivesUpdates(t *testing.T) {
	p, err := New()
	assert.NilError(t, err)

	pid, err := uuid.NewUUID()
	assert.NilError(t, err)
	ch, err := p.Subscribe(pid, msg.Update)
	assert.NilError(t, err)

	p.Update(InverterAddr, register.Holding, map[uint16]uint16{13: 21313})

	select {
	case m := <-ch:
		assert.Equal(t, p.PID(), m.PID())
		update, ok := m.Payload().(Update)
		assert.Assert(t, ok)
		assert.Equal(t, byte(InverterAddr), update.Addr)
		assert.Equal(t, uint16(21313), update.Registers["HR(13)"])
	case <-time.After(time.Second):
		t.Fatal("no update broadcast")
	}
}

func TestLoadSnapshot(t *testing.T) {
	p, err := New()
	assert.NilError(t, err)

	cache := registercache.FromSnapshot(map[register.Identity]uint16{
		register.HR(0): 8193,
	})
	p.LoadSnapshot(InverterAddr, cache)

	got, ok := p.Cache(InverterAddr)
	assert.Assert(t, ok)
	assert.Equal(t, 1, got.Len())
}
