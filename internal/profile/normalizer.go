package profile

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/tripagent/tripagent/internal/ai"
)

// ErrEmptyInput is returned by Normalize when the raw answer is blank.
var ErrEmptyInput = errors.New("empty input")

// Strategy extracts one category's value from free text.
type Strategy interface {
	Name() string
	Extract(ctx context.Context, c Category, text string) (Answer, error)
}

// Normalizer turns a raw answer into a typed Answer by trying its
// strategies in order. With a model available that is AI first, then
// patterns; without one, patterns alone.
type Normalizer struct {
	strategies []Strategy
	client     ai.Client
}

// NewNormalizer builds a normalizer. A nil client skips AI extraction.
func NewNormalizer(client ai.Client) *Normalizer {
	n := &Normalizer{client: client}
	if client != nil {
		n.strategies = append(n.strategies, &AIExtraction{Client: client})
	}
	n.strategies = append(n.strategies, PatternExtraction{})
	return n
}

// Normalize extracts the category's value from raw text. A strategy
// error falls through to the next strategy; when nothing matches, the
// returned Answer is unspecified with a nil error.
func (n *Normalizer) Normalize(ctx context.Context, c Category, raw string) (Answer, error) {
	text := strings.TrimSpace(raw)
	if text == "" {
		return Answer{Category: c, Source: SourceUnspecified}, ErrEmptyInput
	}

	last := Answer{Category: c, Source: SourceUnspecified, Raw: text}
	for _, s := range n.strategies {
		a, err := s.Extract(ctx, c, text)
		if err != nil {
			continue
		}
		if a.Source.Specified() {
			return a, nil
		}
		last = a
	}
	return last, nil
}

// FollowupQuestion asks the model to rephrase the category's question
// after an answer it could not use. Falls back to the stock question
// when no model is available or the call fails.
func (n *Normalizer) FollowupQuestion(ctx context.Context, c Category, previous string) string {
	if n.client == nil {
		return c.Question()
	}
	ctx, cancel := context.WithTimeout(ctx, extractionTimeout)
	defer cancel()

	system := "You are a friendly travel agent gathering trip preferences. Reply with a single short question and nothing else."
	user := fmt.Sprintf(
		"The traveler said: %q. I still need their %s to plan the trip. Ask a natural, conversational follow-up question for it. Friendly, not robotic.",
		previous, strings.ToLower(c.Label()),
	)
	q, err := n.client.Complete(ctx, system, user)
	if err != nil || strings.TrimSpace(q) == "" {
		return c.Question()
	}
	return strings.TrimSpace(q)
}

const extractionTimeout = 15 * time.Second

// AIExtraction asks a model for the category's value and then validates
// that value with the same parsers the pattern strategy uses.
type AIExtraction struct {
	Client  ai.Client
	Timeout time.Duration
}

func (e *AIExtraction) Name() string { return "ai" }

// extractionResult is the reply shape the prompt demands. Value is
// untyped because models answer numbers as numbers and null for
// missing.
type extractionResult struct {
	Value              any    `json:"extracted_value"`
	Confidence         string `json:"confidence"`
	NeedsClarification bool   `json:"needs_clarification"`
}

func (r extractionResult) valueString() string {
	switch v := r.Value.(type) {
	case string:
		return strings.TrimSpace(v)
	case float64:
		if v == math.Trunc(v) {
			return strconv.FormatInt(int64(v), 10)
		}
		return strconv.FormatFloat(v, 'f', -1, 64)
	}
	return ""
}

func (e *AIExtraction) Extract(ctx context.Context, c Category, text string) (Answer, error) {
	timeout := e.Timeout
	if timeout <= 0 {
		timeout = extractionTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	reply, err := e.Client.CompleteJSON(ctx, extractionPrompt(c), text)
	if err != nil {
		return Answer{}, err
	}
	obj, err := ai.ExtractJSONObject(reply)
	if err != nil {
		return Answer{}, fmt.Errorf("extraction reply: %w", err)
	}
	var res extractionResult
	if err := json.Unmarshal([]byte(obj), &res); err != nil {
		return Answer{}, fmt.Errorf("extraction reply: %w", err)
	}

	value := res.valueString()
	if res.NeedsClarification || value == "" || strings.EqualFold(value, "null") {
		return Answer{}, fmt.Errorf("%s not stated", strings.ToLower(c.Label()))
	}
	a, ok := parseCategory(c, value)
	if !ok {
		return Answer{}, fmt.Errorf("cannot read %q as %s", value, strings.ToLower(c.Label()))
	}
	a.Source = SourceAI
	a.Raw = text
	return a, nil
}

func extractionPrompt(c Category) string {
	return fmt.Sprintf(`You are a travel preference extraction assistant. Extract the traveler's %s from their message.

Return exactly this JSON format:
{"extracted_value": "value", "confidence": "high/medium/low", "needs_clarification": true/false}

%s

Do NOT infer or assume information. Only extract what is explicitly stated. If the information is unclear, missing, or not explicitly mentioned, set needs_clarification to true and extracted_value to null. Be conservative and ask for clarification rather than guessing.`,
		strings.ToLower(c.Label()), extractionHint(c))
}

func extractionHint(c Category) string {
	switch c {
	case CategoryDestination:
		return "Extract a city, country, or region name. Only if explicitly mentioned."
	case CategoryBudget:
		return `Extract an amount or range in dollars (for example "2000" or "1500-3000"), or a tier word like "cheap", "moderate", "luxury". Only if clearly specified.`
	case CategoryDuration:
		return `Extract the trip length, for example "7 days" or "2 weeks". Only if explicitly mentioned.`
	case CategoryStyle:
		return "Extract one travel style: romantic, adventure, relaxation, cultural, family, budget, or luxury. Only if clearly indicated."
	case CategoryGroup:
		return `Extract the number of travelers, or a word like "solo", "couple", "family", "group". Only if explicitly mentioned.`
	case CategorySeason:
		return `Extract a season ("spring", "summer", "fall", "winter"), a month, or "year-round". Only if explicitly mentioned.`
	}
	return ""
}

// PatternExtraction runs the deterministic keyword and regex parsers.
// It never errors; a non-match is an unspecified Answer.
type PatternExtraction struct{}

func (PatternExtraction) Name() string { return "pattern" }

func (PatternExtraction) Extract(_ context.Context, c Category, text string) (Answer, error) {
	a, ok := parseCategory(c, text)
	a.Raw = text
	if !ok {
		a.Source = SourceUnspecified
		return a, nil
	}
	a.Source = SourcePattern
	return a, nil
}
