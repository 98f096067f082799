package services_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"photoscript/models"
	"photoscript/services"
)

// 검증 입력은 편집된 세그먼트들이어야 하고, 원본 스크립트는 세그먼트가
// 없을 때만 쓰여야 한다.
func TestAssembleScriptJoinsSegmentsInOrder(t *testing.T) {
	segs := []models.Segment{
		{Order: 1.0, Text: "첫 번째 문단."},
		{Order: 2.0, Text: "두 번째 문단."},
		{Order: 3.0, Text: "세 번째 문단."},
	}
	got := services.AssembleScript(segs, "원본 스크립트")
	assert.Equal(t, "첫 번째 문단.\n\n두 번째 문단.\n\n세 번째 문단.", got)
}

func TestAssembleScriptFallsBackToRawScript(t *testing.T) {
	got := services.AssembleScript(nil, "원본 스크립트")
	assert.Equal(t, "원본 스크립트", got)
}

func TestAssembleScriptReflectsEdits(t *testing.T) {
	segs := []models.Segment{
		{Order: 1.0, Text: "수정된 문단."},
	}
	got := services.AssembleScript(segs, "원본 스크립트")
	assert.Equal(t, "수정된 문단.", got)
}
