package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/ppiankov/contractlens/internal/model"
)

// Recognizer asks the model for named entities
type Recognizer struct {
	gen     Generator
	timeout time.Duration
}

// NewRecognizer returns nil when gen is nil, so callers can skip recognition
func NewRecognizer(gen Generator, timeout time.Duration) *Recognizer {
	if gen == nil {
		return nil
	}
	return &Recognizer{gen: gen, timeout: timeout}
}

// Recognize returns organizations, persons and locations named in the text
func (r *Recognizer) Recognize(ctx context.Context, text string) (*model.NamedEntities, error) {
	if r == nil {
		return nil, ErrUnavailable
	}
	out, err := call(ctx, r.gen, r.timeout, EntityExtractionSystem, EntityPrompt(text))
	if err != nil {
		return nil, err
	}
	return ParseEntities(out)
}

// ParseEntities decodes the JSON object in a model reply, tolerating code fences and prose around it
func ParseEntities(reply string) (*model.NamedEntities, error) {
	start := strings.Index(reply, "{")
	end := strings.LastIndex(reply, "}")
	if start < 0 || end < start {
		return nil, fmt.Errorf("parse entities: no JSON object in reply")
	}

	var named model.NamedEntities
	if err := json.Unmarshal([]byte(reply[start:end+1]), &named); err != nil {
		return nil, fmt.Errorf("parse entities: %w", err)
	}
	named.Organizations = clean(named.Organizations)
	named.Persons = clean(named.Persons)
	named.Locations = clean(named.Locations)
	return &named, nil
}

func clean(values []string) []string {
	var out []string
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}
