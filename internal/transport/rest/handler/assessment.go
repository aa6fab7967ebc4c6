package handler

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog"

	"careercompass/internal/model"
	"careercompass/internal/service"
)

// AssessmentHandler handles the student quiz endpoints
type AssessmentHandler struct {
	svc *service.AssessmentService
	log zerolog.Logger
}

// NewAssessmentHandler creates a new assessment handler
func NewAssessmentHandler(svc *service.AssessmentService, log zerolog.Logger) *AssessmentHandler {
	return &AssessmentHandler{svc: svc, log: log}
}

// Start handles POST /v1/assessments
// @Summary Start an assessment
// @Description Opens a session and returns its token and the first question
// @Tags Assessments
// @Accept json
// @Produce json
// @Param body body model.StartRequest true "Student and profile"
// @Success 201 {object} model.StartResponse
// @Failure 400 {object} ErrorResponse
// @Router /v1/assessments [post]
func (h *AssessmentHandler) Start(w http.ResponseWriter, r *http.Request) {
	var req model.StartRequest
	if err := decode(r, &req); err != nil {
		writeServiceError(w, h.log, err)
		return
	}

	resp, err := h.svc.Start(r.Context(), &req)
	if err != nil {
		writeServiceError(w, h.log, err)
		return
	}
	writeJSON(w, http.StatusCreated, resp)
}

// Current handles GET /v1/assessments/{id}/question
// @Summary Current question
// @Tags Assessments
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} model.Progress
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /v1/assessments/{id}/question [get]
func (h *AssessmentHandler) Current(w http.ResponseWriter, r *http.Request) {
	p, err := h.svc.Current(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeServiceError(w, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

// Answer handles POST /v1/assessments/{id}/answers
// @Summary Submit an answer
// @Description Records an answer and returns the next question. Shape errors are 422.
// @Tags Assessments
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param body body model.AnswerRequest true "Answer"
// @Success 200 {object} model.Progress
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse
// @Security BearerAuth
// @Router /v1/assessments/{id}/answers [post]
func (h *AssessmentHandler) Answer(w http.ResponseWriter, r *http.Request) {
	var req model.AnswerRequest
	if err := decode(r, &req); err != nil {
		writeServiceError(w, h.log, err)
		return
	}

	p, err := h.svc.Answer(r.Context(), mux.Vars(r)["id"], &req)
	if err != nil {
		writeServiceError(w, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

// Undo handles POST /v1/assessments/{id}/undo
// @Summary Undo the last answer
// @Tags Assessments
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} model.Progress
// @Failure 409 {object} ErrorResponse
// @Security BearerAuth
// @Router /v1/assessments/{id}/undo [post]
func (h *AssessmentHandler) Undo(w http.ResponseWriter, r *http.Request) {
	p, err := h.svc.Undo(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeServiceError(w, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

// Finish handles POST /v1/assessments/{id}/finish
// @Summary Finish and get recommendations
// @Tags Assessments
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} model.AssessmentResult
// @Failure 409 {object} ErrorResponse
// @Security BearerAuth
// @Router /v1/assessments/{id}/finish [post]
func (h *AssessmentHandler) Finish(w http.ResponseWriter, r *http.Request) {
	result, err := h.svc.Finish(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeServiceError(w, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

// Result handles GET /v1/assessments/{id}/result
// @Summary Stored result
// @Tags Assessments
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} model.AssessmentResult
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /v1/assessments/{id}/result [get]
func (h *AssessmentHandler) Result(w http.ResponseWriter, r *http.Request) {
	result, err := h.svc.Result(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeServiceError(w, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}
