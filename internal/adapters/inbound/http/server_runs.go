package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/cleitonmarx/symbiont-ai-toolchat/internal/usecases"
	"github.com/google/uuid"
)

// CreateRun executes one orchestration run and returns its answer.
func (api ToolChatServer) CreateRun(w http.ResponseWriter, r *http.Request) {
	var req CreateRunReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		badRequest(w, fmt.Sprintf("invalid request body: %v", err))
		return
	}

	var opts []usecases.RunOption
	if req.Tools != nil {
		catalog, err := api.Dispatcher.Lookup(*req.Tools...)
		if err != nil {
			respondError(w, err)
			return
		}
		opts = append(opts, usecases.WithToolCatalog(catalog...))
	}
	if req.ToolChoice != nil {
		choice, err := toToolChoice(*req.ToolChoice)
		if err != nil {
			respondError(w, err)
			return
		}
		opts = append(opts, usecases.WithToolChoice(choice))
	}
	if req.MaxRounds != nil {
		opts = append(opts, usecases.WithMaxRounds(*req.MaxRounds))
	}
	if req.Temperature != nil {
		opts = append(opts, usecases.WithTemperature(*req.Temperature))
	}

	result, err := api.RunConversationUseCase.Execute(r.Context(), req.Message, req.Model, opts...)
	if err != nil {
		api.Logger.Printf("ToolChatServer: run failed: %v", err)
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, toRunResp(result))
}

// GetRun returns the audit record of a run.
func (api ToolChatServer) GetRun(w http.ResponseWriter, r *http.Request) {
	runID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		badRequest(w, fmt.Sprintf("invalid run id: %v", err))
		return
	}

	record, err := api.GetRunUseCase.Query(r.Context(), runID)
	if err != nil {
		api.Logger.Printf("ToolChatServer: error getting run %s: %v", runID, err)
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, toRunRecordResp(record))
}

// ListTools returns the catalog of registered tools.
func (api ToolChatServer) ListTools(w http.ResponseWriter, r *http.Request) {
	tools, err := api.ListToolsUseCase.Query(r.Context())
	if err != nil {
		api.Logger.Printf("ToolChatServer: error listing tools: %v", err)
		respondError(w, err)
		return
	}

	resp := ListToolsResp{Items: make([]Tool, 0, len(tools))}
	for _, t := range tools {
		resp.Items = append(resp.Items, toTool(t))
	}
	respondJSON(w, http.StatusOK, resp)
}

// Healthz reports that the server accepts requests.
func (api ToolChatServer) Healthz(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
