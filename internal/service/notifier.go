package service

// Notifier interface for WebSocket event delivery (avoids import cycle)
type Notifier interface {
	Notify(assessmentID string, msgType string, payload interface{})
}
