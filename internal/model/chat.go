package model

// ChatRequest is the request body for the chat endpoint.
type ChatRequest struct {
	Query  string `json:"query"`
	UserID string `json:"user_id"`
}

// ChatResponse is the assembled response for a single chat request.
type ChatResponse struct {
	Response             string  `json:"response"`
	YouTubeVideos        []Video `json:"youtube_videos"`
	ModelUsed            string  `json:"model_used"`
	ModelSelectionReason string  `json:"model_selection_reason"`
	UserID               string  `json:"user_id"`
}

// HistoryRequest is the request body for the history endpoint.
type HistoryRequest struct {
	UserID string `json:"user_id"`
	Limit  int    `json:"limit,omitempty"`
}

// HistoryResponse is the response for the history endpoint.
type HistoryResponse struct {
	History []Entry `json:"history"`
	UserID  string  `json:"user_id"`
}

// StatusResponse is the response for the status endpoint.
type StatusResponse struct {
	Status          string   `json:"status"`
	AvailableModels []string `json:"available_models"`
	DefaultModel    string   `json:"default_model"`
	AutoSelection   bool     `json:"auto_selection"`
}
