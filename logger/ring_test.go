package logger_test

import (
	"fmt"
	"testing"

	"github.com/gookit/slog"
	"github.com/stretchr/testify/assert"

	"photoscript/logger"
)

func record(msg string) *slog.Record {
	return &slog.Record{Level: slog.InfoLevel, Message: msg}
}

func TestRingSinkKeepsRecentMessages(t *testing.T) {
	sink := logger.NewRingSink(3)
	assert.Empty(t, sink.Snapshot())

	assert.NoError(t, sink.Handle(record("one")))
	assert.NoError(t, sink.Handle(record("two")))

	snap := sink.Snapshot()
	assert.Len(t, snap, 2)
	assert.Contains(t, snap[0], "one")
	assert.Contains(t, snap[1], "two")
}

func TestRingSinkWrapsAround(t *testing.T) {
	sink := logger.NewRingSink(3)
	for i := 1; i <= 5; i++ {
		assert.NoError(t, sink.Handle(record(fmt.Sprintf("msg-%d", i))))
	}

	snap := sink.Snapshot()
	assert.Len(t, snap, 3)
	// oldest first, only the last three survive
	assert.Contains(t, snap[0], "msg-3")
	assert.Contains(t, snap[1], "msg-4")
	assert.Contains(t, snap[2], "msg-5")
}

func TestRingSinkHandlesAllLevels(t *testing.T) {
	sink := logger.NewRingSink(4)
	assert.True(t, sink.IsHandling(slog.DebugLevel))
	assert.True(t, sink.IsHandling(slog.ErrorLevel))
}
