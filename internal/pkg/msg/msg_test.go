package msg

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"gotest.tools/v3/assert"
)

func TestSubscribe(t *testing.T) {
	pidPub, err := uuid.NewUUID()
	assert.NilError(t, err)

	pidSub1, err := uuid.NewUUID()
	assert.NilError(t, err)

	pidSub2, err := uuid.NewUUID()
	assert.NilError(t, err)

	pubsub := NewPublisher(pidPub)
	ch1, err := pubsub.Subscribe(pidSub1, Update)
	assert.NilError(t, err)
	ch2, err := pubsub.Subscribe(pidSub2, Update)
	assert.NilError(t, err)

	pubsub.Publish(Update, "payload")

	for _, ch := range []<-chan Msg{ch1, ch2} {
		select {
		case incoming := <-ch:
			assert.Equal(t, pidPub, incoming.PID())
			assert.Equal(t, Update, incoming.Topic())
			assert.Equal(t, "payload", incoming.Payload())
		case <-time.After(time.Second):
			t.Fatal("subscriber did not recieve the published value")
		}
	}
}

func TestTopicsArePartitioned(t *testing.T) {
	pidPub, _ := uuid.NewUUID()
	pidSub, _ := uuid.NewUUID()

	pubsub := NewPublisher(pidPub)
	ch, err := pubsub.Subscribe(pidSub, Snapshot)
	assert.NilError(t, err)

	pubsub.Publish(Update, "wrong topic")

	select {
	case <-ch:
		t.Fatal("snapshot subscriber saw an update message")
	case <-time.After(50 * time.Millisecond):
	}
}

func TestUnsubscribe(t *testing.T) {
	pidPub, _ := uuid.NewUUID()
	pidSub, _ := uuid.NewUUID()

	pubsub := NewPublisher(pidPub)
	ch, err := pubsub.Subscribe(pidSub, Update)
	assert.NilError(t, err)

	pubsub.Unsubscribe(pidSub)

	_, open := <-ch
	assert.Assert(t, !open, "unsubscribe closes the channel")
}

func TestPublishNeverBlocks(t *testing.T) {
	pidPub, _ := uuid.NewUUID()
	pidSub, _ := uuid.NewUUID()

	pubsub := NewPublisher(pidPub)
	_, err := pubsub.Subscribe(pidSub, Update)
	assert.NilError(t, err)

	// nobody drains the channel; publishes past the buffer are dropped
	for i := 0; i < 10; i++ {
		pubsub.Publish(Update, i)
	}
}
