package ws

import (
	"encoding/json"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
)

type AnalysisCompletedEvent struct {
	Type      string `json:"type"`
	ResumeID  string `json:"resume_id"`
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
}

var defaultHub atomic.Pointer[Hub]

func SetDefaultHub(h *Hub) {
	defaultHub.Store(h)
}

// NotifyAnalysisCompleted pushes an analysis-finished event to the owner's
// connected clients. A nil hub (no server running) is a no-op.
func NotifyAnalysisCompleted(userID, resumeID uuid.UUID, status string) {
	h := defaultHub.Load()
	if h == nil || userID == uuid.Nil {
		return
	}

	evt := AnalysisCompletedEvent{
		Type:      "analysis_completed",
		ResumeID:  resumeID.String(),
		Status:    status,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}
	b, err := json.Marshal(evt)
	if err != nil {
		return
	}

	h.Broadcast(userID, b)
}
