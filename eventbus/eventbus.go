package eventbus

import (
	"context"
	"encoding/json"
	"errors"
)

// Topic은 토픽의 기본 이름과 DLQ 토픽 이름을 관리합니다.
type Topic struct {
	base string
}

func NewTopic(base string) Topic {
	return Topic{base: base}
}

func (t Topic) Base() string {
	return t.base
}

// DLQ는 DLQ 토픽 이름을 반환합니다 (예: my_topic.dlq).
// 핸들러가 실패한 이벤트는 재시도 없이 DLQ 로 이동합니다.
func (t Topic) DLQ() string {
	return t.base + ".dlq"
}

// Event는 메시지의 페이로드로 사용되는 구조체입니다.
type Event struct {
	ID        string          `json:"id"`
	Payload   json.RawMessage `json:"payload"`
	LastError string          `json:"last_error,omitempty"`
}

// EventHandler는 이벤트 처리 함수의 시그니처입니다.
type EventHandler func(ctx context.Context, event Event) error

// EventBus 인터페이스는 이벤트 발행 및 구독의 추상화를 정의합니다.
// QA 검증 작업 디스패치에 사용되며, 실패한 작업은 자동 재시도하지 않고
// DLQ 로만 보냅니다.
type EventBus interface {
	Publish(ctx context.Context, topic string, event Event) error
	// Subscribe는 기본 토픽을 구독하여 메인 로직을 실행합니다.
	// 컨텍스트가 취소될 때까지 블록합니다.
	Subscribe(ctx context.Context, groupID string, topic Topic, handler EventHandler) error
	Close()
}

// ErrPublishFailed는 이벤트 발행에 실패했을 때 반환되는 오류입니다.
var ErrPublishFailed = errors.New("이벤트 발행 실패")
