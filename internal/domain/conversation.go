package domain

import (
	"strings"
)

// ChatRole represents the role of a conversation entry
type ChatRole string

const (
	ChatRole_User      ChatRole = "user"
	ChatRole_Assistant ChatRole = "assistant"
	ChatRole_Tool      ChatRole = "tool"
	ChatRole_System    ChatRole = "system"
)

// ConversationEntry is one role-tagged entry of a conversation.
// ToolCalls is only set on assistant entries, ToolCallID only on tool entries.
type ConversationEntry struct {
	Role       ChatRole          `json:"role"`
	Content    string            `json:"content"`
	ToolCalls  []ToolCallRequest `json:"tool_calls,omitempty"`
	ToolCallID string            `json:"tool_call_id,omitempty"`
}

// IsToolCallRequest returns true when the entry is an assistant entry asking for tools.
func (e ConversationEntry) IsToolCallRequest() bool {
	return e.Role == ChatRole_Assistant && len(e.ToolCalls) > 0
}

// NewUserEntry builds a user entry. Blank content is rejected.
func NewUserEntry(content string) (ConversationEntry, error) {
	if strings.TrimSpace(content) == "" {
		return ConversationEntry{}, NewValidationErr("user message cannot be empty")
	}
	return ConversationEntry{
		Role:    ChatRole_User,
		Content: content,
	}, nil
}

// NewAssistantToolCallsEntry builds the assistant entry that records requested tool calls.
func NewAssistantToolCallsEntry(calls []ToolCallRequest) (ConversationEntry, error) {
	if len(calls) == 0 {
		return ConversationEntry{}, NewValidationErr("assistant tool calls entry requires at least one tool call")
	}
	for _, c := range calls {
		if strings.TrimSpace(c.ID) == "" {
			return ConversationEntry{}, NewValidationErr("tool call id cannot be empty")
		}
		if strings.TrimSpace(c.Name) == "" {
			return ConversationEntry{}, NewValidationErr("tool call name cannot be empty")
		}
	}

	copied := make([]ToolCallRequest, len(calls))
	copy(copied, calls)
	return ConversationEntry{
		Role:      ChatRole_Assistant,
		ToolCalls: copied,
	}, nil
}

// NewAssistantFinalEntry builds the terminal assistant entry carrying the answer.
func NewAssistantFinalEntry(content string) ConversationEntry {
	return ConversationEntry{
		Role:    ChatRole_Assistant,
		Content: content,
	}
}

// NewToolResultEntry builds a tool entry answering the given tool call id.
func NewToolResultEntry(toolCallID string, value any, encoding ResultEncoding) (ConversationEntry, error) {
	if strings.TrimSpace(toolCallID) == "" {
		return ConversationEntry{}, NewValidationErr("tool call id cannot be empty")
	}

	content, err := EncodeToolResult(value, encoding)
	if err != nil {
		return ConversationEntry{}, err
	}

	return ConversationEntry{
		Role:       ChatRole_Tool,
		Content:    content,
		ToolCallID: toolCallID,
	}, nil
}
