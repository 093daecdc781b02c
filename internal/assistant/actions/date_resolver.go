package actions

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/cleitonmarx/symbiont-ai-toolchat/internal/domain"
)

// DateResolverParams are the resolve_date arguments.
type DateResolverParams struct {
	Text     string `json:"text"`
	Timezone string `json:"timezone,omitempty"`
}

// ResolvedDate is the resolve_date result.
type ResolvedDate struct {
	Date     string `json:"date"`
	Weekday  string `json:"weekday"`
	Timezone string `json:"timezone"`
}

// DateResolverAction resolves date phrases relative to the current time.
type DateResolverAction struct {
	timeProvider domain.CurrentTimeProvider
}

// NewDateResolverAction creates a new instance of DateResolverAction.
func NewDateResolverAction(timeProvider domain.CurrentTimeProvider) DateResolverAction {
	return DateResolverAction{
		timeProvider: timeProvider,
	}
}

// Name returns the registered tool name.
func (DateResolverAction) Name() string {
	return "resolve_date"
}

// Invoke executes DateResolverAction.
func (a DateResolverAction) Invoke(ctx context.Context, params DateResolverParams) (any, error) {
	text := strings.TrimSpace(params.Text)
	if text == "" {
		return nil, fmt.Errorf("text cannot be empty")
	}

	loc := time.UTC
	if tz := strings.TrimSpace(params.Timezone); tz != "" {
		l, err := time.LoadLocation(tz)
		if err != nil {
			return nil, fmt.Errorf("invalid timezone %q: %w", tz, err)
		}
		loc = l
	}

	now := a.timeProvider.Now()
	date, ok := resolveDatePhrase(text, now, loc)
	if !ok {
		return nil, fmt.Errorf("no date found in %q", text)
	}

	return ResolvedDate{
		Date:     date.Format(time.DateOnly),
		Weekday:  date.Weekday().String(),
		Timezone: loc.String(),
	}, nil
}
