// Package server exposes the allocation run as a small HTTP API.
package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"github.com/quantfield/collateral-allocator/internal/allocator"
	"github.com/quantfield/collateral-allocator/internal/input"
	"github.com/quantfield/collateral-allocator/pkg/constants"
)

type handler struct {
	logger        *zap.Logger
	runner        *allocator.Runner
	maxUploadSize int64
	version       string
}

// NewHandler constructs the HTTP handler that serves the allocation API.
func NewHandler(logger *zap.Logger, runner *allocator.Runner, maxUploadSize int64, version string) http.Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	if maxUploadSize <= 0 {
		maxUploadSize = constants.DefaultMaxUploadSizeBytes
	}

	trimmedVersion := strings.TrimSpace(version)
	if trimmedVersion == "" {
		trimmedVersion = "dev"
	}

	h := &handler{logger: logger, runner: runner, maxUploadSize: maxUploadSize, version: trimmedVersion}

	mux := http.NewServeMux()

	// Allocation API endpoint (JSON payload body)
	mux.HandleFunc("/api/allocate", h.handleAllocate)

	// Version endpoint for client metadata
	mux.HandleFunc("/api/version", h.handleVersion)

	return mux
}

type errorResponse struct {
	Error string `json:"error"`
}

func (h *handler) handleAllocate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		h.writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, h.maxUploadSize))
	if err != nil {
		h.writeError(w, http.StatusRequestEntityTooLarge, fmt.Sprintf("payload exceeds %d bytes", h.maxUploadSize))
		return
	}

	var portfolio input.Portfolio
	if err := json.Unmarshal(body, &portfolio); err != nil {
		h.writeError(w, http.StatusBadRequest, fmt.Sprintf("malformed payload: %v", err))
		return
	}

	result, err := h.runner.Run(&portfolio)
	if err != nil {
		if errors.Is(err, allocator.ErrInvalidInput) {
			h.writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		h.logger.Error("allocation run failed",
			zap.String("op", "server.handleAllocate"),
			zap.Error(err),
		)
		h.writeError(w, http.StatusInternalServerError, "allocation run failed")
		return
	}

	// Infeasible and unbounded are successful runs with a status payload.
	h.writeJSON(w, http.StatusOK, result)
}

func (h *handler) handleVersion(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		h.writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	h.writeJSON(w, http.StatusOK, map[string]string{"version": h.version})
}

func (h *handler) writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		h.logger.Error("failed to encode response",
			zap.String("op", "server.writeJSON"),
			zap.Error(err),
		)
	}
}

func (h *handler) writeError(w http.ResponseWriter, status int, msg string) {
	h.writeJSON(w, status, errorResponse{Error: msg})
}
