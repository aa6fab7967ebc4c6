package model

import "time"

// SessionStatus is the lifecycle state of an assessment session
type SessionStatus string

const (
	SessionFresh      SessionStatus = "fresh"
	SessionInProgress SessionStatus = "in_progress"
	SessionComplete   SessionStatus = "complete"
)

// AssessmentSession is the host-side metadata for one student's quiz run.
// The answers themselves are stored separately as a flat raw map.
type AssessmentSession struct {
	ID             string         `json:"id" bson:"_id"`
	StudentID      string         `json:"studentId" bson:"studentId"`
	Profile        StudentProfile `json:"profile" bson:"profile"`
	CatalogVersion string         `json:"catalogVersion" bson:"catalogVersion"`
	Status         SessionStatus  `json:"status" bson:"status"`
	CreatedAt      time.Time      `json:"createdAt" bson:"createdAt"`
	UpdatedAt      time.Time      `json:"updatedAt" bson:"updatedAt"`
	CompletedAt    *time.Time     `json:"completedAt,omitempty" bson:"completedAt,omitempty"`
}

// AssessmentResult is the persisted outcome of a completed session
type AssessmentResult struct {
	SessionID       string            `json:"sessionId" bson:"_id"`
	StudentID       string            `json:"studentId" bson:"studentId"`
	Profile         StudentProfile    `json:"profile" bson:"profile"`
	CatalogVersion  string            `json:"catalogVersion" bson:"catalogVersion"`
	Scores          ScoreVector       `json:"scores" bson:"scores"`
	TopDimensions   []Dimension       `json:"topDimensions" bson:"topDimensions"`
	Recommendations []Recommendation  `json:"recommendations" bson:"recommendations"`
	AnswerCount     int               `json:"answerCount" bson:"answerCount"`
	Answers         map[string]string `json:"answers" bson:"answers"` // raw flat map at completion
	CompletedAt     time.Time         `json:"completedAt" bson:"completedAt"`
}

// Progress describes where a session stands for a client
type Progress struct {
	SessionID string        `json:"sessionId"`
	Status    SessionStatus `json:"status"`
	Answered  int           `json:"answered"`
	Cap       int           `json:"cap"`
	Next      *Question     `json:"next,omitempty"`
	Scores    ScoreVector   `json:"scores"`
}

// CohortSummary aggregates completed results for counselors
type CohortSummary struct {
	ClassLevel         ClassLevel       `json:"classLevel,omitempty"`
	Results            int              `json:"results"`
	AverageScores      ScoreVector      `json:"averageScores"`
	TopDimensionCounts []DimensionCount `json:"topDimensionCounts"`
	LatestCompletedAt  *time.Time       `json:"latestCompletedAt,omitempty"`
}

// DimensionCount is how many results had Dimension as their strongest interest
type DimensionCount struct {
	Dimension Dimension `json:"dimension" bson:"_id"`
	Count     int       `json:"count" bson:"count"`
}

// AnswerRecord is the persisted form of one answer-log entry. Hosts store the
// records in log order next to the flat answer map so that undo can follow
// the order answers were given. Replaced is the answer this one displaced,
// and ReplacedIndex the log position it held.
type AnswerRecord struct {
	QuestionID    string        `json:"questionId"`
	Raw           string        `json:"raw"`
	Replaced      *AnswerRecord `json:"replaced,omitempty"`
	ReplacedIndex int           `json:"replacedIndex,omitempty"`
}
