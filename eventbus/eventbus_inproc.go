package eventbus

import (
	"context"
	"sync"

	"photoscript/logger"
)

// InProcEventBus는 Kafka 없이 단일 프로세스 안에서 동작하는 EventBus 구현체입니다.
// 브로커가 설정되지 않은 개발/단일 바이너리 배포와 테스트에서 사용합니다.
type InProcEventBus struct {
	mu     sync.Mutex
	chans  map[string]chan Event
	closed bool
}

func NewInProcEventBus() *InProcEventBus {
	return &InProcEventBus{chans: make(map[string]chan Event)}
}

func (b *InProcEventBus) channel(topic string) chan Event {
	b.mu.Lock()
	defer b.mu.Unlock()
	ch, ok := b.chans[topic]
	if !ok {
		ch = make(chan Event, 64)
		b.chans[topic] = ch
	}
	return ch
}

func (b *InProcEventBus) Publish(ctx context.Context, topic string, event Event) error {
	select {
	case b.channel(topic) <- event:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// publishNoWait 는 채널이 가득 차면 이벤트를 버린다. DLQ 구독자가 없는
// 단일 프로세스 배포에서 소비 루프가 DLQ 발행에 막히면 안 된다.
func (b *InProcEventBus) publishNoWait(topic string, event Event) bool {
	select {
	case b.channel(topic) <- event:
		return true
	default:
		return false
	}
}

// Subscribe는 토픽 채널을 소비하며 컨텍스트가 취소될 때까지 블록합니다.
// 실패한 이벤트는 Kafka 구현과 동일하게 DLQ 토픽으로 이동합니다.
func (b *InProcEventBus) Subscribe(ctx context.Context, _ string, topic Topic, handler EventHandler) error {
	ch := b.channel(topic.Base())
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case event := <-ch:
			if err := handler(ctx, event); err != nil {
				logger.Log.Errorf("이벤트 처리 실패 (id=%s): %v", event.ID, err)
				event.LastError = err.Error()
				if !b.publishNoWait(topic.DLQ(), event) {
					logger.Log.Errorf("DLQ 가득 참, 이벤트 폐기 (id=%s)", event.ID)
				}
			}
		}
	}
}

func (b *InProcEventBus) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.closed = true
}
