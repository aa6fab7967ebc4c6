package handler

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog"

	"careercompass/internal/model"
	"careercompass/internal/service"
	"careercompass/internal/transport/rest/middleware"
)

// CounselorHandler handles counselor-only reporting endpoints
type CounselorHandler struct {
	svc *service.AssessmentService
	log zerolog.Logger
}

// NewCounselorHandler creates a new counselor handler
func NewCounselorHandler(svc *service.AssessmentService, log zerolog.Logger) *CounselorHandler {
	return &CounselorHandler{svc: svc, log: log}
}

// StudentResults handles GET /v1/students/{studentId}/results
// @Summary A student's results
// @Tags Counselor
// @Produce json
// @Param studentId path string true "Student ID"
// @Success 200 {array} model.AssessmentResult
// @Security BearerAuth
// @Router /v1/students/{studentId}/results [get]
func (h *CounselorHandler) StudentResults(w http.ResponseWriter, r *http.Request) {
	studentID := mux.Vars(r)["studentId"]
	h.audit(r, studentID, "results")
	results, err := h.svc.StudentResults(r.Context(), studentID)
	if err != nil {
		writeServiceError(w, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, results)
}

// StudentSessions handles GET /v1/students/{studentId}/sessions
// @Summary A student's sessions, finished or not
// @Tags Counselor
// @Produce json
// @Param studentId path string true "Student ID"
// @Success 200 {array} model.AssessmentSession
// @Security BearerAuth
// @Router /v1/students/{studentId}/sessions [get]
func (h *CounselorHandler) StudentSessions(w http.ResponseWriter, r *http.Request) {
	studentID := mux.Vars(r)["studentId"]
	h.audit(r, studentID, "sessions")
	sessions, err := h.svc.StudentSessions(r.Context(), studentID)
	if err != nil {
		writeServiceError(w, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, sessions)
}

// QuestionStats handles GET /v1/stats/questions
// @Summary Per-question answer, undo and rejection counts
// @Tags Counselor
// @Produce json
// @Success 200 {array} cache.QuestionStats
// @Security BearerAuth
// @Router /v1/stats/questions [get]
func (h *CounselorHandler) QuestionStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.svc.QuestionStats(r.Context())
	if err != nil {
		writeServiceError(w, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, stats)
}

// CohortSummary handles GET /v1/stats/cohort
// @Summary Average interest profile and strongest-dimension counts across finished assessments
// @Tags Counselor
// @Produce json
// @Param classLevel query string false "Only results from this class level (class_10, class_12)"
// @Success 200 {object} model.CohortSummary
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /v1/stats/cohort [get]
func (h *CounselorHandler) CohortSummary(w http.ResponseWriter, r *http.Request) {
	level := model.ClassLevel(r.URL.Query().Get("classLevel"))
	if level != "" && !level.Valid() {
		writeError(w, http.StatusBadRequest, "unknown class level")
		return
	}
	summary, err := h.svc.CohortSummary(r.Context(), level)
	if err != nil {
		writeServiceError(w, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, summary)
}

// audit records which counselor read a student's records
func (h *CounselorHandler) audit(r *http.Request, studentID, what string) {
	h.log.Info().
		Str("counselor_id", middleware.GetCounselorID(r.Context())).
		Str("student_id", studentID).
		Str("read", what).
		Msg("Counselor viewed student records")
}
