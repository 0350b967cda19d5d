package llm

import (
	"context"
	"fmt"
)

// Waiter blocks until a keyed request may proceed
type Waiter interface {
	Wait(ctx context.Context, key string) error
}

type throttled struct {
	Generator
	waiter Waiter
}

// Throttle paces Generate calls through waiter, keyed by the provider name.
// A nil gen or waiter returns gen unchanged.
func Throttle(gen Generator, waiter Waiter) Generator {
	if gen == nil || waiter == nil {
		return gen
	}
	return &throttled{Generator: gen, waiter: waiter}
}

func (t *throttled) Generate(ctx context.Context, system, prompt string) (*Response, error) {
	if err := t.waiter.Wait(ctx, t.Name()); err != nil {
		return nil, fmt.Errorf("%s rate limit: %w", t.Name(), err)
	}
	return t.Generator.Generate(ctx, system, prompt)
}
