// Package plant tracks one register cache per device answering on the wire:
// the inverter itself plus any batteries behind it. It does not interpret
// register contents beyond routing them into the right cache.
package plant

import (
	"log"
	"sort"
	"sync"

	"github.com/britkat1980/givenergy-modbus/internal/pkg/msg"
	"github.com/britkat1980/givenergy-modbus/internal/pkg/register"
	"github.com/britkat1980/givenergy-modbus/internal/pkg/registercache"
	"github.com/google/uuid"
)

// Device addressing quirks. Updates relayed by the vendor cloud (0x11) or the
// mobile app (0x00) describe the inverter, which answers at 0x32; batteries
// answer at 0x32+n.
const (
	InverterAddr = 0x32
	cloudAddr    = 0x11
	appAddr      = 0x00
)

// Update is the payload broadcast after a cache mutation: one device's
// flattened register snapshot.
type Update struct {
	Addr      byte              `json:"Addr"`
	Registers map[string]uint16 `json:"Registers"`
}

// Plant owns the register caches for every device it has seen.
type Plant struct {
	mux    *sync.Mutex
	pid    uuid.UUID
	caches map[byte]*registercache.Cache
	pubsub *msg.PubSub
}

// New returns a Plant with an empty cache ready for the inverter address.
func New() (*Plant, error) {
	pid, err := uuid.NewUUID()
	if err != nil {
		return nil, err
	}
	return &Plant{
		mux:    &sync.Mutex{},
		pid:    pid,
		caches: map[byte]*registercache.Cache{InverterAddr: registercache.New()},
		pubsub: msg.NewPublisher(pid),
	}, nil
}

// PID is a getter for the plant PID
func (p *Plant) PID() uuid.UUID {
	return p.pid
}

// Subscribe returns a read only channel carrying cache updates.
func (p *Plant) Subscribe(pid uuid.UUID, topic msg.Topic) (<-chan msg.Msg, error) {
	return p.pubsub.Subscribe(pid, topic)
}

// Unsubscribe closes the broadcast channels associated with the pid parameter.
func (p *Plant) Unsubscribe(pid uuid.UUID) {
	p.pubsub.Unsubscribe(pid)
}

// Cache returns the register cache for a device address.
func (p *Plant) Cache(addr byte) (*registercache.Cache, bool) {
	addr = normalizeAddr(addr)
	p.mux.Lock()
	defer p.mux.Unlock()
	c, ok := p.caches[addr]
	return c, ok
}

// Addresses returns the device addresses seen so far, ascending.
func (p *Plant) Addresses() []byte {
	p.mux.Lock()
	defer p.mux.Unlock()
	addrs := make([]byte, 0, len(p.caches))
	for addr := range p.caches {
		addrs = append(addrs, addr)
	}
	sort.Slice(addrs, func(i, j int) bool { return addrs[i] < addrs[j] })
	return addrs
}

// Update routes one bank read into the cache for addr, creating the cache the
// first time an address is seen, then broadcasts the device's new snapshot.
func (p *Plant) Update(addr byte, bank register.Bank, registers map[uint16]uint16) {
	addr = normalizeAddr(addr)

	p.mux.Lock()
	cache, ok := p.caches[addr]
	if !ok {
		log.Printf("[Plant] first sight of device 0x%02x", addr)
		cache = registercache.New()
		p.caches[addr] = cache
	}
	p.mux.Unlock()

	cache.SetBank(bank, registers)
	p.pubsub.Publish(msg.Update, Update{Addr: addr, Registers: cache.Flat()})
}

// LoadSnapshot replaces the cache for addr with a pre-populated one.
func (p *Plant) LoadSnapshot(addr byte, cache *registercache.Cache) {
	addr = normalizeAddr(addr)
	p.mux.Lock()
	p.caches[addr] = cache
	p.mux.Unlock()
	p.pubsub.Publish(msg.Update, Update{Addr: addr, Registers: cache.Flat()})
}

func normalizeAddr(addr byte) byte {
	if addr == cloudAddr || addr == appAddr {
		return InverterAddr
	}
	return addr
}
