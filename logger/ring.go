package logger

import (
	"sync"

	"github.com/gookit/slog"
)

// RingSink 는 최근 로그 레코드를 고정 개수만큼 보관하는 슬로그 핸들러다.
// 진단 조회용으로 전역 로거에 추가로 붙일 수 있다.
type RingSink struct {
	mu   sync.Mutex
	buf  []string
	next int
	full bool
}

// NewRingSink 는 최대 capacity 개의 메시지를 보관하는 RingSink 를 생성한다.
func NewRingSink(capacity int) *RingSink {
	if capacity <= 0 {
		capacity = 256
	}
	return &RingSink{buf: make([]string, capacity)}
}

func (s *RingSink) IsHandling(level slog.Level) bool { return true }

func (s *RingSink) Handle(record *slog.Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.buf[s.next] = record.Level.Name() + " " + record.Message
	s.next = (s.next + 1) % len(s.buf)
	if s.next == 0 {
		s.full = true
	}
	return nil
}

func (s *RingSink) Close() error { return nil }
func (s *RingSink) Flush() error { return nil }

// Snapshot 은 보관 중인 메시지를 오래된 순서로 복사해 반환한다.
func (s *RingSink) Snapshot() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []string
	if s.full {
		out = append(out, s.buf[s.next:]...)
	}
	out = append(out, s.buf[:s.next]...)

	kept := make([]string, 0, len(out))
	for _, m := range out {
		if m != "" {
			kept = append(kept, m)
		}
	}
	return kept
}

// Attach 는 전역 로거에 싱크를 추가한다. 전역 로거가 gookit/slog 가 아니면 무시한다.
func (s *RingSink) Attach() {
	if lg, ok := Log.(*slog.Logger); ok {
		lg.AddHandler(s)
	}
}
