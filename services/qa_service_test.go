package services_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"photoscript/services"
)

func TestGuidelineCustomWins(t *testing.T) {
	svc := services.NewQAService("", "gemini-2.0-flash", "")
	assert.Equal(t, "my rules", svc.Guideline("my rules"))
	assert.Equal(t, "trimmed", svc.Guideline("  trimmed  "))
}

func TestGuidelineFallsBackToDefault(t *testing.T) {
	svc := services.NewQAService("", "gemini-2.0-flash", "")
	got := svc.Guideline("")
	assert.Equal(t, services.DEFAULT_GUIDELINE, got)
	assert.Contains(t, got, "Hook")
	assert.Contains(t, got, "Wrap-up")
}

func TestGuidelineReadsConfiguredFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "guideline.md")
	assert.NoError(t, os.WriteFile(path, []byte("file guideline"), 0o644))

	svc := services.NewQAService("", "gemini-2.0-flash", path)
	assert.Equal(t, "file guideline", svc.Guideline(""))
	// custom still wins over the file
	assert.Equal(t, "override", svc.Guideline("override"))
}

func TestGuidelineMissingFileFallsBack(t *testing.T) {
	svc := services.NewQAService("", "gemini-2.0-flash", "/nonexistent/guideline.md")
	assert.Equal(t, services.DEFAULT_GUIDELINE, svc.Guideline(""))
}
