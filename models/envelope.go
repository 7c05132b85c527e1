package models

// Envelope wraps a single record, or just a message when Data is nil
type Envelope[T any] struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Data    T      `json:"data,omitempty"`
}

// ListEnvelope is returned by every listing endpoint
type ListEnvelope[T any] struct {
	Success bool `json:"success"`
	Count   int  `json:"count"`
	Data    []T  `json:"data"`
}

func NewList[T any](rows []T) ListEnvelope[T] {
	if rows == nil {
		rows = []T{}
	}
	return ListEnvelope[T]{Success: true, Count: len(rows), Data: rows}
}

type ErrorEnvelope struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Error   string `json:"error,omitempty"`
	Field   string `json:"field,omitempty"`
}

type AuthResponse struct {
	Success bool     `json:"success"`
	Message string   `json:"message"`
	UserID  uint     `json:"userId,omitempty"`
	Token   string   `json:"token,omitempty"`
	Role    UserRole `json:"role,omitempty"`
}

type UploadResponse struct {
	Success  bool   `json:"success"`
	FilePath string `json:"filePath"`
}
