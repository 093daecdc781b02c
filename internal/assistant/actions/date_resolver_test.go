package actions

import (
	"context"
	"testing"
	"time"

	"github.com/cleitonmarx/symbiont-ai-toolchat/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDateResolverAction(t *testing.T) {
	fixedTime := time.Date(2026, 1, 27, 10, 0, 0, 0, time.UTC) // Tuesday

	tests := map[string]struct {
		params       DateResolverParams
		expectNow    bool
		expectedDate ResolvedDate
		expectedErr  string
	}{
		"tomorrow": {
			params:       DateResolverParams{Text: "remind me tomorrow"},
			expectNow:    true,
			expectedDate: ResolvedDate{Date: "2026-01-28", Weekday: "Wednesday", Timezone: "UTC"},
		},
		"next-friday": {
			params:       DateResolverParams{Text: "next friday"},
			expectNow:    true,
			expectedDate: ResolvedDate{Date: "2026-01-30", Weekday: "Friday", Timezone: "UTC"},
		},
		"iso-date-with-timezone": {
			params:       DateResolverParams{Text: "on 2026-02-15", Timezone: "Europe/Paris"},
			expectNow:    true,
			expectedDate: ResolvedDate{Date: "2026-02-15", Weekday: "Sunday", Timezone: "Europe/Paris"},
		},
		"no-date": {
			params:      DateResolverParams{Text: "whenever you like"},
			expectNow:   true,
			expectedErr: "no date found",
		},
		"empty-text": {
			params:      DateResolverParams{Text: ""},
			expectedErr: "text cannot be empty",
		},
		"invalid-timezone": {
			params:      DateResolverParams{Text: "today", Timezone: "Mars/Olympus"},
			expectedErr: "invalid timezone",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			timeProvider := domain.NewMockCurrentTimeProvider(t)
			if tt.expectNow {
				timeProvider.EXPECT().Now().Return(fixedTime).Once()
			}

			action := NewDateResolverAction(timeProvider)
			assert.Equal(t, "resolve_date", action.Name())

			got, err := action.Invoke(context.Background(), tt.params)
			if tt.expectedErr != "" {
				assert.ErrorContains(t, err, tt.expectedErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expectedDate, got)
		})
	}
}
