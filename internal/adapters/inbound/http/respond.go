package http

import (
	"encoding/json"
	"net/http"

	"github.com/cleitonmarx/symbiont-ai-toolchat/internal/domain"
)

// StatusClientClosedRequest is reported when the caller went away before the run finished.
const StatusClientClosedRequest = 499

// ErrorResp is the JSON body of every error response.
type ErrorResp struct {
	Error Error `json:"error"`
}

// Error describes a failed request.
type Error struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func respondJSON(w http.ResponseWriter, statusCode int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(payload)
}

func respondError(w http.ResponseWriter, err error) {
	statusCode, errResp := toError(err)
	respondJSON(w, statusCode, errResp)
}

func badRequest(w http.ResponseWriter, message string) {
	respondJSON(w, http.StatusBadRequest, ErrorResp{
		Error: Error{Code: string(domain.ErrorKind_Validation), Message: message},
	})
}

// toError maps a domain error to its HTTP status and response body.
// Errors without a domain kind are not exposed to the caller.
func toError(err error) (int, ErrorResp) {
	kind := domain.ErrorKindOf(err)
	errResp := ErrorResp{
		Error: Error{Code: string(kind), Message: err.Error()},
	}

	switch kind {
	case domain.ErrorKind_Validation, domain.ErrorKind_UnknownTool, domain.ErrorKind_ArgumentDecode:
		return http.StatusBadRequest, errResp
	case domain.ErrorKind_NotFound:
		return http.StatusNotFound, errResp
	case domain.ErrorKind_RoundLimitExceeded, domain.ErrorKind_ToolExecution:
		return http.StatusUnprocessableEntity, errResp
	case domain.ErrorKind_Transport, domain.ErrorKind_EmptyResponse:
		return http.StatusBadGateway, errResp
	case domain.ErrorKind_Cancelled:
		return StatusClientClosedRequest, errResp
	case domain.ErrorKind_Serialization, domain.ErrorKind_Handler:
		return http.StatusInternalServerError, errResp
	default:
		errResp.Error.Message = "internal server error"
		return http.StatusInternalServerError, errResp
	}
}
