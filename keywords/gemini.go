package keywords

import (
	"context"
	"encoding/json"
	"fmt"

	"google.golang.org/genai"
)

const EXTRACT_SYSTEM_INSTRUCTION = `
You are a keyword extraction assistant for a script-to-visuals tool. Analyze the provided script segment and produce search terms for stock image/video providers.
The response MUST be a valid JSON object with two keys:
1.  scene_gloss: One short English sentence describing the visual scene implied by the segment.
2.  keywords: An array of concrete, visual English keywords or short phrases (e.g. "sunset beach", "coffee shop", "business meeting"). Exclude generic words (e.g. "person", "good", "thing", "idea"). Return at most the number of keywords requested in the prompt.
You MUST NOT wrap the JSON output in a markdown code block (e.g. ` + "```json ... ```" + `). The response should contain ONLY the raw JSON string.
`

// Gemini 는 LLM 기반 키워드 추출 전략이다. 실패는 호출측에서
// ExtractionError 로 다뤄지며 자동 재시도하지 않는다.
type Gemini struct {
	apiKey string
	model  string
}

func NewGemini(apiKey, model string) *Gemini {
	return &Gemini{apiKey: apiKey, model: model}
}

func (g *Gemini) Name() string { return "gemini" }

func (g *Gemini) Extract(ctx context.Context, text string, max int) (Result, error) {
	max = clampMax(max)

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey: g.apiKey,
	})
	if err != nil {
		return Result{}, err
	}

	prompt := fmt.Sprintf("Extract up to %d keywords.\n\nSegment:\n%s", max, text)
	result, err := client.Models.GenerateContent(
		ctx,
		g.model,
		genai.Text(prompt),
		&genai.GenerateContentConfig{
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: EXTRACT_SYSTEM_INSTRUCTION}}},
		},
	)
	if err != nil {
		return Result{}, err
	}

	var out Result
	if err := json.Unmarshal([]byte(result.Text()), &out); err != nil {
		return Result{}, err
	}
	if len(out.Keywords) > max {
		out.Keywords = out.Keywords[:max]
	}
	if len(out.Keywords) == 0 {
		return Result{}, fmt.Errorf("gemini: no keywords extracted")
	}
	return out, nil
}
