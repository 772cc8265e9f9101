package msg

import (
	"sync"

	"github.com/google/uuid"
)

// Topic partitions a publisher's traffic
type Topic int

// Constants of Topic
const (
	Update Topic = iota
	Snapshot
)

// Publisher is an interface for objects that allow subscribtion to their events
type Publisher interface {
	Subscribe(pid uuid.UUID, topic Topic) (<-chan Msg, error)
	Unsubscribe(pid uuid.UUID)
}

// Msg is the envelope broadcast to subscribers
type Msg struct {
	sender  uuid.UUID
	topic   Topic
	payload interface{}
}

// New is the Msg factory function
func New(sender uuid.UUID, topic Topic, payload interface{}) Msg {
	return Msg{sender, topic, payload}
}

// PID returns the sender's PID
func (m Msg) PID() uuid.UUID {
	return m.sender
}

// Topic returns the message topic
func (m Msg) Topic() Topic {
	return m.topic
}

// Payload returns the message data
func (m Msg) Payload() interface{} {
	return m.payload
}

// PubSub fans messages out to subscribers by topic. Sends never block: a
// subscriber that is not draining its channel misses messages.
type PubSub struct {
	mux        *sync.Mutex
	pid        uuid.UUID
	subscriber map[Topic]map[uuid.UUID]chan<- Msg
}

// NewPublisher is the PubSub factory function
func NewPublisher(pid uuid.UUID) *PubSub {
	return &PubSub{
		mux:        &sync.Mutex{},
		pid:        pid,
		subscriber: make(map[Topic]map[uuid.UUID]chan<- Msg),
	}
}

// Subscribe returns a read only channel carrying the publisher's messages on
// one topic.
func (p *PubSub) Subscribe(pid uuid.UUID, topic Topic) (<-chan Msg, error) {
	p.mux.Lock()
	defer p.mux.Unlock()
	ch := make(chan Msg, 1)
	if _, ok := p.subscriber[topic]; !ok {
		p.subscriber[topic] = make(map[uuid.UUID]chan<- Msg)
	}
	p.subscriber[topic][pid] = ch
	return ch, nil
}

// Unsubscribe closes and removes the channels associated with pid.
func (p *PubSub) Unsubscribe(pid uuid.UUID) {
	p.mux.Lock()
	defer p.mux.Unlock()
	for _, subs := range p.subscriber {
		if ch, ok := subs[pid]; ok {
			delete(subs, pid)
			close(ch)
		}
	}
}

// Publish broadcasts a payload to every subscriber of the topic.
func (p *PubSub) Publish(topic Topic, payload interface{}) {
	p.mux.Lock()
	defer p.mux.Unlock()
	for _, ch := range p.subscriber[topic] {
		select {
		case ch <- New(p.pid, topic, payload):
		default:
		}
	}
}
