package domain

import (
	"errors"
	"fmt"
)

// ErrorKind identifies the variant of a domain error.
type ErrorKind string

const (
	ErrorKind_Unknown            ErrorKind = "unknown"
	ErrorKind_Validation         ErrorKind = "validation"
	ErrorKind_Serialization      ErrorKind = "serialization"
	ErrorKind_EmptyResponse      ErrorKind = "empty_response"
	ErrorKind_UnknownTool        ErrorKind = "unknown_tool"
	ErrorKind_ArgumentDecode     ErrorKind = "argument_decode"
	ErrorKind_Handler            ErrorKind = "handler"
	ErrorKind_Transport          ErrorKind = "transport"
	ErrorKind_ToolExecution      ErrorKind = "tool_execution"
	ErrorKind_Cancelled          ErrorKind = "cancelled"
	ErrorKind_RoundLimitExceeded ErrorKind = "round_limit_exceeded"
	ErrorKind_NotFound           ErrorKind = "not_found"
)

// errors.go defines domain-specific error types.
type domainErr struct {
	kind    ErrorKind
	message string
	cause   error
}

// Error returns the error message.
func (e domainErr) Error() string {
	if e.cause != nil {
		return e.message + ": " + e.cause.Error()
	}
	return e.message
}

// Kind returns the error variant.
func (e domainErr) Kind() ErrorKind {
	return e.kind
}

// Unwrap returns the wrapped cause, if any.
func (e domainErr) Unwrap() error {
	return e.cause
}

// ErrorKindOf returns the kind of the outermost domain error in err's chain.
func ErrorKindOf(err error) ErrorKind {
	var kinded interface{ Kind() ErrorKind }
	if errors.As(err, &kinded) {
		return kinded.Kind()
	}
	return ErrorKind_Unknown
}

// NotFoundErr represents an error when a requested entity is not found.
type NotFoundErr struct {
	domainErr
}

// NewNotFoundErr creates a new NotFoundErr with the given message.
func NewNotFoundErr(message string) *NotFoundErr {
	return &NotFoundErr{
		domainErr: domainErr{kind: ErrorKind_NotFound, message: message},
	}
}

// ValidationErr represents an error when validation fails.
type ValidationErr struct {
	domainErr
}

// NewValidationErr creates a new ValidationErr with the given message.
func NewValidationErr(message string) *ValidationErr {
	return &ValidationErr{
		domainErr: domainErr{kind: ErrorKind_Validation, message: message},
	}
}

// SerializationErr represents a value that cannot be encoded for the wire.
type SerializationErr struct {
	domainErr
}

// NewSerializationErr creates a new SerializationErr.
func NewSerializationErr(message string, cause error) *SerializationErr {
	return &SerializationErr{
		domainErr: domainErr{kind: ErrorKind_Serialization, message: message, cause: cause},
	}
}

// EmptyResponseErr represents a model response without a usable choice.
type EmptyResponseErr struct {
	domainErr
}

// NewEmptyResponseErr creates a new EmptyResponseErr with the given message.
func NewEmptyResponseErr(message string) *EmptyResponseErr {
	return &EmptyResponseErr{
		domainErr: domainErr{kind: ErrorKind_EmptyResponse, message: message},
	}
}

// UnknownToolErr represents a lookup of a tool name that is not registered.
type UnknownToolErr struct {
	domainErr
	ToolName string
}

// NewUnknownToolErr creates a new UnknownToolErr for the given tool name.
func NewUnknownToolErr(toolName string) *UnknownToolErr {
	return &UnknownToolErr{
		domainErr: domainErr{kind: ErrorKind_UnknownTool, message: fmt.Sprintf("unknown tool %q", toolName)},
		ToolName:  toolName,
	}
}

// ArgumentDecodeErr represents tool arguments that do not match the tool parameters.
type ArgumentDecodeErr struct {
	domainErr
	ToolName string
}

// NewArgumentDecodeErr creates a new ArgumentDecodeErr.
func NewArgumentDecodeErr(toolName string, cause error) *ArgumentDecodeErr {
	return &ArgumentDecodeErr{
		domainErr: domainErr{
			kind:    ErrorKind_ArgumentDecode,
			message: fmt.Sprintf("invalid arguments for tool %q", toolName),
			cause:   cause,
		},
		ToolName: toolName,
	}
}

// HandlerErr represents a failure returned by a tool handler.
type HandlerErr struct {
	domainErr
	ToolName string
}

// NewHandlerErr creates a new HandlerErr.
func NewHandlerErr(toolName string, cause error) *HandlerErr {
	return &HandlerErr{
		domainErr: domainErr{
			kind:    ErrorKind_Handler,
			message: fmt.Sprintf("tool %q failed", toolName),
			cause:   cause,
		},
		ToolName: toolName,
	}
}

// TransportErr represents a failure of the chat transport.
type TransportErr struct {
	domainErr
}

// NewTransportErr creates a new TransportErr wrapping the given cause.
func NewTransportErr(cause error) *TransportErr {
	return &TransportErr{
		domainErr: domainErr{kind: ErrorKind_Transport, message: "chat transport failed", cause: cause},
	}
}

// ToolExecutionErr wraps a failure of one tool call in a dispatch batch.
type ToolExecutionErr struct {
	domainErr
	ToolCallID string
	ToolName   string
}

// NewToolExecutionErr creates a new ToolExecutionErr.
func NewToolExecutionErr(toolCallID, toolName string, cause error) *ToolExecutionErr {
	return &ToolExecutionErr{
		domainErr: domainErr{
			kind:    ErrorKind_ToolExecution,
			message: fmt.Sprintf("tool call %q (%s) failed", toolCallID, toolName),
			cause:   cause,
		},
		ToolCallID: toolCallID,
		ToolName:   toolName,
	}
}

// CancelledErr represents a run aborted by its context.
type CancelledErr struct {
	domainErr
}

// NewCancelledErr creates a new CancelledErr wrapping the context error.
func NewCancelledErr(cause error) *CancelledErr {
	return &CancelledErr{
		domainErr: domainErr{kind: ErrorKind_Cancelled, message: "run cancelled", cause: cause},
	}
}

// RoundLimitExceededErr represents a run that kept requesting tools past its round cap.
type RoundLimitExceededErr struct {
	domainErr
	MaxRounds int
}

// NewRoundLimitExceededErr creates a new RoundLimitExceededErr.
func NewRoundLimitExceededErr(maxRounds int) *RoundLimitExceededErr {
	return &RoundLimitExceededErr{
		domainErr: domainErr{
			kind:    ErrorKind_RoundLimitExceeded,
			message: fmt.Sprintf("round limit of %d exceeded", maxRounds),
		},
		MaxRounds: maxRounds,
	}
}
