package model

// RoutingDecision is the outcome of backend selection for a single query.
// It is recomputed per request and never persisted.
type RoutingDecision struct {
	Backend string `json:"backend"`
	Reason  string `json:"reason"`
}

// Video is a single recommended video, deduplicated by VideoID within a
// response and not persisted beyond the response metadata count.
type Video struct {
	Title       string `json:"title"`
	VideoID     string `json:"video_id"`
	URL         string `json:"url"`
	Description string `json:"description"`
	Channel     string `json:"channel"`
}
