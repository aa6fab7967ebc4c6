package handler

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog"

	"careercompass/internal/model"
	"careercompass/internal/service"
)

const defaultTrendingLimit = 10

// CourseHandler handles course catalog endpoints
type CourseHandler struct {
	svc *service.CourseService
	log zerolog.Logger
}

// NewCourseHandler creates a new course handler
func NewCourseHandler(svc *service.CourseService, log zerolog.Logger) *CourseHandler {
	return &CourseHandler{svc: svc, log: log}
}

// List handles GET /v1/courses
// @Summary List courses
// @Tags Courses
// @Produce json
// @Param classLevel query string false "Only courses open to this class level (class_10, class_12)"
// @Success 200 {array} model.Course
// @Failure 400 {object} ErrorResponse
// @Router /v1/courses [get]
func (h *CourseHandler) List(w http.ResponseWriter, r *http.Request) {
	level := model.ClassLevel(r.URL.Query().Get("classLevel"))
	if level != "" && !level.Valid() {
		writeError(w, http.StatusBadRequest, "unknown class level")
		return
	}
	writeJSON(w, http.StatusOK, h.svc.List(level))
}

// Get handles GET /v1/courses/{courseId}
// @Summary Get a course
// @Tags Courses
// @Produce json
// @Param courseId path string true "Course ID"
// @Success 200 {object} model.Course
// @Failure 404 {object} ErrorResponse
// @Router /v1/courses/{courseId} [get]
func (h *CourseHandler) Get(w http.ResponseWriter, r *http.Request) {
	c := h.svc.GetByID(mux.Vars(r)["courseId"])
	if c == nil {
		writeError(w, http.StatusNotFound, "course not found")
		return
	}
	writeJSON(w, http.StatusOK, c)
}

// Trending handles GET /v1/courses/trending
// @Summary Most often top-recommended courses
// @Tags Courses
// @Produce json
// @Param limit query int false "Max entries (default 10)"
// @Success 200 {array} service.TrendingCourse
// @Router /v1/courses/trending [get]
func (h *CourseHandler) Trending(w http.ResponseWriter, r *http.Request) {
	limit := defaultTrendingLimit
	if s := r.URL.Query().Get("limit"); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil || n <= 0 || n > 100 {
			writeError(w, http.StatusBadRequest, "limit must be between 1 and 100")
			return
		}
		limit = n
	}

	entries, err := h.svc.Trending(r.Context(), limit)
	if err != nil {
		writeServiceError(w, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, entries)
}
