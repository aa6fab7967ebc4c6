package service

// Broadcaster interface for WebSocket broadcasting (avoids import cycle)
type Broadcaster interface {
	BroadcastToSession(sessionID string, msgType string, payload interface{})
	BroadcastToCounselors(msgType string, payload interface{})
	DisconnectSession(sessionID string)
}

// Event types pushed to websocket subscribers
const (
	EventSessionStarted       = "session_started"
	EventQuestionAnswered     = "question_answered"
	EventAnswerReverted       = "answer_reverted"
	EventAssessmentCompleted  = "assessment_completed"
	EventRecommendationsReady = "recommendations_ready"
)

type nopBroadcaster struct{}

func (nopBroadcaster) BroadcastToSession(string, string, interface{}) {}
func (nopBroadcaster) BroadcastToCounselors(string, interface{})      {}
func (nopBroadcaster) DisconnectSession(string)                       {}
