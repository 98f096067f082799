package services

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"google.golang.org/genai"

	"photoscript/logger"
	"photoscript/repositories"
	"photoscript/webpage"
)

// TextGenMode 는 블록 텍스트 생성 모드다.
type TextGenMode string

const (
	ModeLink    TextGenMode = "link"    // 프롬프트의 URL 본문을 요약해 생성
	ModeSearch  TextGenMode = "search"  // 검색 의도 프롬프트로 생성
	ModeEnhance TextGenMode = "enhance" // 기본: 주변 세그먼트 맥락으로 다듬기
)

var urlRe = regexp.MustCompile(`https?://[^\s]+`)

// searchTriggers 는 검색 모드를 유발하는 프롬프트 키워드다.
var searchTriggers = []string{
	"검색", "찾아", "알아봐", "조사",
	"search", "find", "look up", "research",
}

// DetectMode classifies a generation prompt. Priority is fixed: a URL always
// wins, then a search trigger word, then the default enhance mode. Pure
// function of the prompt text.
func DetectMode(prompt string) (TextGenMode, string) {
	if url := urlRe.FindString(prompt); url != "" {
		return ModeLink, strings.TrimRight(url, ".,;)\"'")
	}
	lower := strings.ToLower(prompt)
	for _, trigger := range searchTriggers {
		if strings.Contains(lower, trigger) {
			return ModeSearch, ""
		}
	}
	return ModeEnhance, ""
}

const TEXTGEN_SYSTEM_INSTRUCTION = `
You are a script writing assistant for short-form videos. You receive an instruction, optional source material, and optional neighboring script segments for context.
Write ONE script segment that fulfills the instruction and flows naturally between the neighbors. Match the language and tone of the neighbors when present.
The response MUST be a valid JSON object with one key:
1.  text: the generated segment text as a single string, no markdown.
You MUST NOT wrap the JSON output in a markdown code block (e.g. ` + "```json ... ```" + `). The response should contain ONLY the raw JSON string.
`

// TextGenService generates segment text from a user prompt. Link prompts are
// grounded on the extracted page body; search and enhance prompts carry the
// neighboring segments so the result fits the surrounding script.
type TextGenService struct {
	segments *repositories.SegmentRepository

	apiKey      string
	model       string
	useHeadless bool
	chromePath  string
}

func NewTextGenService(segments *repositories.SegmentRepository, apiKey, model string, useHeadless bool, chromePath string) *TextGenService {
	return &TextGenService{
		segments:    segments,
		apiKey:      apiKey,
		model:       model,
		useHeadless: useHeadless,
		chromePath:  chromePath,
	}
}

// GenerateResult carries the generated text and how the prompt was read.
type GenerateResult struct {
	Mode TextGenMode `json:"mode"`
	Text string      `json:"text"`
}

// Generate produces text for a (possibly new) segment of the project.
// segmentHexID may be empty when generating for an insert; neighbor context
// is then omitted.
func (s *TextGenService) Generate(ctx context.Context, projectHexID, segmentHexID, prompt string) (*GenerateResult, error) {
	prompt = strings.TrimSpace(prompt)
	if prompt == "" {
		return nil, fmt.Errorf("%w: prompt is empty", ErrValidation)
	}
	mode, url := DetectMode(prompt)

	var source string
	if mode == ModeLink {
		body, err := s.fetchBody(ctx, url)
		if err != nil {
			return nil, err
		}
		source = body
	}

	prev, next, err := s.neighbors(ctx, projectHexID, segmentHexID)
	if err != nil {
		return nil, err
	}

	text, err := s.callModel(ctx, mode, prompt, source, prev, next)
	if err != nil {
		return nil, err
	}
	return &GenerateResult{Mode: mode, Text: text}, nil
}

// fetchBody pulls and extracts the page text, rendering with a headless
// browser when configured (JS-heavy pages) and falling back to a static GET.
func (s *TextGenService) fetchBody(ctx context.Context, url string) (string, error) {
	var htmlStr string
	var err error
	if s.useHeadless {
		htmlStr, err = webpage.RenderHTML(ctx, url, s.chromePath)
		if err != nil {
			logger.Log.Warnf("headless render failed for %s, falling back to static fetch: %v", url, err)
			htmlStr, err = webpage.FetchHTML(ctx, url)
		}
	} else {
		htmlStr, err = webpage.FetchHTML(ctx, url)
	}
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrExtraction, err)
	}
	body, err := webpage.ExtractText(htmlStr, url)
	if err != nil || strings.TrimSpace(body) == "" {
		return "", fmt.Errorf("%w: page has no extractable text", ErrExtraction)
	}
	return body, nil
}

// neighbors loads the segments directly above and below the target segment
// by order. Empty strings when the segment is unknown or at an edge.
func (s *TextGenService) neighbors(ctx context.Context, projectHexID, segmentHexID string) (prev, next string, err error) {
	if segmentHexID == "" {
		return "", "", nil
	}
	segID, err := parseID(segmentHexID)
	if err != nil {
		return "", "", err
	}
	projectID, err := parseID(projectHexID)
	if err != nil {
		return "", "", err
	}
	all, err := s.segments.ListByProject(ctx, projectID)
	if err != nil {
		return "", "", err
	}
	for i, seg := range all {
		if seg.ID != segID {
			continue
		}
		if i > 0 {
			prev = all[i-1].Text
		}
		if i < len(all)-1 {
			next = all[i+1].Text
		}
		return prev, next, nil
	}
	return "", "", fmt.Errorf("%w: segment %s not in project", ErrNotFound, segmentHexID)
}

func (s *TextGenService) callModel(ctx context.Context, mode TextGenMode, prompt, source, prev, next string) (string, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey: s.apiKey,
	})
	if err != nil {
		return "", err
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Mode: %s\n\nInstruction:\n%s\n", mode, prompt)
	if source != "" {
		b.WriteString("\nSource material:\n")
		b.WriteString(source)
		b.WriteString("\n")
	}
	if prev != "" {
		b.WriteString("\nPrevious segment:\n")
		b.WriteString(prev)
		b.WriteString("\n")
	}
	if next != "" {
		b.WriteString("\nNext segment:\n")
		b.WriteString(next)
		b.WriteString("\n")
	}

	result, err := client.Models.GenerateContent(
		ctx,
		s.model,
		genai.Text(b.String()),
		&genai.GenerateContentConfig{
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: TEXTGEN_SYSTEM_INSTRUCTION}}},
		},
	)
	if err != nil {
		return "", err
	}

	var out struct {
		Text string `json:"text"`
	}
	if err := json.Unmarshal([]byte(result.Text()), &out); err != nil {
		return "", fmt.Errorf("textgen response parse failed: %w", err)
	}
	if strings.TrimSpace(out.Text) == "" {
		return "", fmt.Errorf("textgen response has no text")
	}
	return out.Text, nil
}
