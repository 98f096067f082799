package services

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"google.golang.org/genai"

	"photoscript/models"
)

// DEFAULT_GUIDELINE 은 커스텀 가이드라인이 없을 때 적용되는 5블록 구조 기준이다.
const DEFAULT_GUIDELINE = `A well-structured short-form script has five blocks, in order:
1. Hook: the first 1-2 sentences grab attention with a question, claim or surprise.
2. Context: briefly establish why the topic matters to the viewer.
3. Promise/Outline: state what the viewer will get by the end.
4. Body: deliver the content in a clear progression, one idea per beat.
5. Wrap-up: restate the payoff and close with a call to action or punchline.
A script may compress blocks but must not skip the Hook or the Wrap-up.`

const QA_SYSTEM_INSTRUCTION = `
You are a script quality reviewer for short-form video scripts. You receive a guideline, a script, and optionally extra reviewer notes.
Diagnose the script against the guideline, check its structure, and produce a corrected version that fixes the problems while preserving the author's voice and language.
The response MUST be a valid JSON object with these keys:
1.  diagnosis: {"problems": [string], "strengths": [string]}
2.  structure_check: {"has_hook": bool, "has_context": bool, "has_promise_outline": bool, "has_body": bool, "has_wrapup": bool, "overall_pass": bool, "comments": string}
3.  corrected_script: the full corrected script as one string, paragraphs separated by blank lines.
4.  change_logs: [{"segment_index": int, "change_type": string, "description": string}] where segment_index is the zero-based paragraph index and change_type is one of "수정", "추가", "삭제".
You MUST NOT wrap the JSON output in a markdown code block (e.g. ` + "```json ... ```" + `). The response should contain ONLY the raw JSON string.
`

// QAService runs the LLM validation+correction pass over a project script and
// returns the structured result. It is synchronous; QAJobService wraps it for
// background execution.
type QAService struct {
	apiKey        string
	model         string
	guidelineFile string
}

func NewQAService(apiKey, model, guidelineFile string) *QAService {
	return &QAService{apiKey: apiKey, model: model, guidelineFile: guidelineFile}
}

// Guideline resolves the active guideline: the custom one from the request,
// then the configured guideline file, then the built-in default.
func (s *QAService) Guideline(custom string) string {
	if g := strings.TrimSpace(custom); g != "" {
		return g
	}
	if s.guidelineFile != "" {
		if b, err := os.ReadFile(s.guidelineFile); err == nil && len(strings.TrimSpace(string(b))) > 0 {
			return string(b)
		}
	}
	return DEFAULT_GUIDELINE
}

// Validate runs one review pass. additionalPrompt carries reviewer notes,
// customGuideline overrides the default guideline for this run only.
func (s *QAService) Validate(ctx context.Context, script, additionalPrompt, customGuideline string) (*models.QAResult, error) {
	if strings.TrimSpace(script) == "" {
		return nil, fmt.Errorf("%w: script is empty", ErrValidation)
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey: s.apiKey,
	})
	if err != nil {
		return nil, err
	}

	var b strings.Builder
	b.WriteString("Guideline:\n")
	b.WriteString(s.Guideline(customGuideline))
	b.WriteString("\n\nScript:\n")
	b.WriteString(script)
	if notes := strings.TrimSpace(additionalPrompt); notes != "" {
		b.WriteString("\n\nReviewer notes:\n")
		b.WriteString(notes)
	}

	result, err := client.Models.GenerateContent(
		ctx,
		s.model,
		genai.Text(b.String()),
		&genai.GenerateContentConfig{
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: QA_SYSTEM_INSTRUCTION}}},
		},
	)
	if err != nil {
		return nil, err
	}

	var out models.QAResult
	if err := json.Unmarshal([]byte(result.Text()), &out); err != nil {
		return nil, fmt.Errorf("qa response parse failed: %w", err)
	}
	if strings.TrimSpace(out.CorrectedScript) == "" {
		return nil, fmt.Errorf("qa response has no corrected script")
	}
	out.Model = s.model
	if result.UsageMetadata != nil {
		out.InputTokens = int(result.UsageMetadata.PromptTokenCount)
		out.OutputTokens = int(result.UsageMetadata.CandidatesTokenCount)
	}
	return &out, nil
}
