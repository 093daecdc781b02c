package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToolChoice_Validate(t *testing.T) {
	catalog := []ToolDescriptor{{Name: "get_weather"}, {Name: "resolve_date"}}

	tests := map[string]struct {
		choice  ToolChoice
		wantErr bool
	}{
		"auto":            {choice: AutoToolChoice()},
		"none":            {choice: ToolChoice{Mode: ToolChoiceMode_None}},
		"required":        {choice: ToolChoice{Mode: ToolChoiceMode_Required}},
		"forced-known":    {choice: ForcedToolChoice("resolve_date")},
		"forced-unknown":  {choice: ForcedToolChoice("delete_everything"), wantErr: true},
		"unsupported":     {choice: ToolChoice{Mode: "sometimes"}, wantErr: true},
		"empty-mode-fail": {choice: ToolChoice{}, wantErr: true},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			err := tt.choice.Validate(catalog)
			if tt.wantErr {
				assert.Equal(t, ErrorKind_Validation, ErrorKindOf(err))
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestChatUsage_Add(t *testing.T) {
	total := ChatUsage{PromptTokens: 10, CompletionTokens: 2, TotalTokens: 12}.
		Add(ChatUsage{PromptTokens: 20, CompletionTokens: 5, TotalTokens: 25})

	assert.Equal(t, ChatUsage{PromptTokens: 30, CompletionTokens: 7, TotalTokens: 37}, total)
}
