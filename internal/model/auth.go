package model

import (
	"bytes"

	"github.com/goccy/go-json"
	"github.com/golang-jwt/jwt/v5"
)

// CounselorClaims are JWT claims for counselor authentication
type CounselorClaims struct {
	CounselorID string `json:"counselorId"`
	jwt.RegisteredClaims
}

// StudentClaims are JWT claims for session-scoped student tokens
type StudentClaims struct {
	SessionID string `json:"sessionId"`
	StudentID string `json:"studentId"`
	jwt.RegisteredClaims
}

// LoginRequest is the request body for counselor login
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse is returned after successful login
type LoginResponse struct {
	Token       string `json:"token"`
	CounselorID string `json:"counselorId"`
}

// StartRequest opens a new assessment session
type StartRequest struct {
	StudentID string         `json:"studentId" validate:"required,max=128"`
	Profile   StudentProfile `json:"profile" validate:"required"`
}

// StartResponse carries the session token used for every later call
type StartResponse struct {
	SessionID string   `json:"sessionId"`
	Token     string   `json:"token"`
	Progress  Progress `json:"progress"`
}

// AnswerRequest submits the answer for one question. Answer is either a JSON
// string holding the raw persisted form ("opt_a", "7") or the JSON value itself
// (["a","b"], {"coding": 8}).
type AnswerRequest struct {
	QuestionID string          `json:"questionId" validate:"required"`
	Answer     json.RawMessage `json:"answer" validate:"required"`
}

// Raw returns the answer in its persisted string form
func (r AnswerRequest) Raw() (string, error) {
	trimmed := bytes.TrimSpace(r.Answer)
	if len(trimmed) > 0 && trimmed[0] == '"' {
		var s string
		if err := json.Unmarshal(trimmed, &s); err != nil {
			return "", err
		}
		return s, nil
	}
	return string(trimmed), nil
}
