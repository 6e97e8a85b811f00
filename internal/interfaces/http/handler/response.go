package handler

import "github.com/comunidad/backend/internal/interfaces/http/dto"

// APIResponse is the typed response envelope used only for OpenAPI
// annotations; runtime responses are built by the dto package.
// @Description Standard API response wrapper with typed data field
type APIResponse[T any] struct {
	Success bool           `json:"success"`
	Data    T              `json:"data,omitempty"`
	Error   *dto.ErrorInfo `json:"error,omitempty"`
	Meta    *dto.Meta      `json:"meta,omitempty"`
}

// ErrorResponse documents the error envelope.
// @Description Standard error response
type ErrorResponse struct {
	Success bool           `json:"success" example:"false"`
	Error   *dto.ErrorInfo `json:"error,omitempty"`
}

// SuccessResponse documents a bare success envelope.
// @Description Simple success response without data
type SuccessResponse struct {
	Success bool `json:"success" example:"true"`
}

// SyncCountData reports how many products a sync run refreshed.
// @Description Sync run result
type SyncCountData struct {
	SyncedCount int `json:"synced_count"`
}
