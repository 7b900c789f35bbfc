package extract

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"task-management/internal/model"
	"task-management/pkg/datemath"
	"task-management/pkg/llmprovider"
)

// ErrUnparseable is returned when the model answer is not a JSON object.
var ErrUnparseable = errors.New("extract: model returned unparseable output")

// Generator is satisfied by *llmprovider.Manager.
type Generator interface {
	GenerateContent(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error)
}

// LLM runs the model-assisted pass.
type LLM struct {
	gen Generator
}

// NewLLM creates the model pass over gen.
func NewLLM(gen Generator) *LLM {
	return &LLM{gen: gen}
}

// rawDraft mirrors the answer before validation.
type rawDraft struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Priority    *string `json:"priority"`
	Category    *string `json:"category"`
	Deadline    *string `json:"deadline"`
}

// Extract asks the model for a draft. Invalid enum values and deadlines
// come back as nil fields rather than errors.
func (l *LLM) Extract(ctx context.Context, transcript string, now time.Time) (Draft, error) {
	resp, err := l.gen.GenerateContent(ctx, &llmprovider.Request{
		SystemInstruction: &llmprovider.Message{Role: "system", Text: systemPrompt(now)},
		Messages:          []llmprovider.Message{{Role: "user", Text: userPrompt(transcript)}},
		Temperature:       0,
		ResponseSchema:    draftSchema,
		SchemaName:        schemaName,
	})
	if err != nil {
		return Draft{}, err
	}

	var raw rawDraft
	if err := json.Unmarshal([]byte(sanitizeJSON(resp.Text())), &raw); err != nil {
		return Draft{}, fmt.Errorf("%w: %v", ErrUnparseable, err)
	}

	return validate(raw, datemath.NewParserInLocation(now.Location())), nil
}

func validate(raw rawDraft, parser *datemath.Parser) Draft {
	d := Draft{
		Title:       ptr(clean(raw.Title)),
		Description: ptr(clean(raw.Description)),
	}

	if p := strings.ToLower(clean(raw.Priority)); model.IsPriorityLabel(p) {
		d.Priority = ptr(p)
	}
	if c := strings.ToLower(clean(raw.Category)); isCategory(c) {
		d.Category = ptr(c)
	}
	if t, ok := parser.ParseDate(clean(raw.Deadline)); ok {
		d.Deadline = ptr(parser.FormatDate(t))
	}
	return d
}

func clean(s *string) string {
	if s == nil {
		return ""
	}
	v := strings.TrimSpace(*s)
	if strings.EqualFold(v, "null") {
		return ""
	}
	return v
}

// sanitizeJSON strips code fences and surrounding prose from a model answer.
func sanitizeJSON(s string) string {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(s, "```")

	start := strings.Index(s, "{")
	end := strings.LastIndex(s, "}")
	if start >= 0 && end > start {
		return s[start : end+1]
	}
	return strings.TrimSpace(s)
}
