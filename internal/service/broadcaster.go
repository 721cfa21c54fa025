package service

// Event types pushed to attempt subscribers
const (
	EventSectionScored = "section_scored"
	EventResultReady   = "result_ready"
)

// Broadcaster interface for WebSocket broadcasting (avoids import cycle)
type Broadcaster interface {
	BroadcastToSession(sessionID string, msgType string, payload interface{})
	DisconnectSession(sessionID string)
}
