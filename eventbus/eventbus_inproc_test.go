package eventbus_test

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"photoscript/eventbus"
)

func TestInProcPublishSubscribe(t *testing.T) {
	bus := eventbus.NewInProcEventBus()
	defer bus.Close()

	topic := eventbus.NewTopic("test.jobs")
	received := make(chan eventbus.Event, 1)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		_ = bus.Subscribe(ctx, "group", topic, func(_ context.Context, e eventbus.Event) error {
			received <- e
			return nil
		})
	}()

	payload, _ := json.Marshal(map[string]string{"job_id": "abc"})
	err := bus.Publish(ctx, topic.Base(), eventbus.Event{ID: "e1", Payload: payload})
	assert.NoError(t, err)

	select {
	case e := <-received:
		assert.Equal(t, "e1", e.ID)
		assert.JSONEq(t, `{"job_id":"abc"}`, string(e.Payload))
	case <-time.After(2 * time.Second):
		t.Fatal("event not delivered")
	}
}

func TestInProcHandlerFailureGoesToDLQ(t *testing.T) {
	bus := eventbus.NewInProcEventBus()
	defer bus.Close()

	topic := eventbus.NewTopic("test.failing")
	dead := make(chan eventbus.Event, 1)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		_ = bus.Subscribe(ctx, "group", topic, func(_ context.Context, e eventbus.Event) error {
			return errors.New("boom")
		})
	}()
	go func() {
		_ = bus.Subscribe(ctx, "group", eventbus.NewTopic(topic.DLQ()), func(_ context.Context, e eventbus.Event) error {
			dead <- e
			return nil
		})
	}()

	err := bus.Publish(ctx, topic.Base(), eventbus.Event{ID: "e2"})
	assert.NoError(t, err)

	select {
	case e := <-dead:
		assert.Equal(t, "e2", e.ID)
		assert.Equal(t, "boom", e.LastError)
	case <-time.After(2 * time.Second):
		t.Fatal("event not routed to dlq")
	}
}

// DLQ 구독자가 없어도 소비 루프는 멈추지 않아야 한다.
func TestInProcFullDLQDoesNotBlockConsumer(t *testing.T) {
	bus := eventbus.NewInProcEventBus()
	defer bus.Close()

	topic := eventbus.NewTopic("test.overflow")

	const total = 80 // DLQ 채널 버퍼(64)보다 많이
	var handled int64
	done := make(chan struct{})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		_ = bus.Subscribe(ctx, "group", topic, func(_ context.Context, e eventbus.Event) error {
			if atomic.AddInt64(&handled, 1) == total {
				close(done)
			}
			return errors.New("boom")
		})
	}()

	for i := 0; i < total; i++ {
		err := bus.Publish(ctx, topic.Base(), eventbus.Event{ID: strconv.Itoa(i)})
		assert.NoError(t, err)
	}

	select {
	case <-done:
		assert.Equal(t, int64(total), atomic.LoadInt64(&handled))
	case <-time.After(5 * time.Second):
		t.Fatalf("consumer stalled after %d of %d events", atomic.LoadInt64(&handled), total)
	}
}

func TestTopicDLQName(t *testing.T) {
	topic := eventbus.NewTopic("photoscript.qa.jobs")
	assert.Equal(t, "photoscript.qa.jobs", topic.Base())
	assert.Equal(t, "photoscript.qa.jobs.dlq", topic.DLQ())
}
