package rest

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	"careercompass/internal/service"
	"careercompass/internal/transport/rest/handler"
	"careercompass/internal/transport/rest/middleware"
	"careercompass/internal/transport/ws"
)

// Container holds all dependencies for the router
type Container struct {
	AuthService       *service.AuthService
	AssessmentService *service.AssessmentService
	CourseService     *service.CourseService
	WSHandler         *ws.Handler
	RateLimiter       *middleware.RateLimiter // nil disables rate limiting
	CORSOrigins       []string
	Logger            zerolog.Logger
}

// NewRouter creates the API router with all endpoints
func NewRouter(c *Container) http.Handler {
	r := mux.NewRouter()

	authHandler := handler.NewAuthHandler(c.AuthService, c.Logger)
	assessmentHandler := handler.NewAssessmentHandler(c.AssessmentService, c.Logger)
	courseHandler := handler.NewCourseHandler(c.CourseService, c.Logger)
	counselorHandler := handler.NewCounselorHandler(c.AssessmentService, c.Logger)

	authMW := middleware.NewAuthMiddleware(c.AuthService)

	r.Use(middleware.CORS(c.CORSOrigins))
	r.Use(middleware.Metrics)

	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	}).Methods("GET")
	r.Handle("/metrics", promhttp.Handler()).Methods("GET")
	r.PathPrefix("/swagger/").Handler(httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
		httpSwagger.DocExpansion("list"),
	)).Methods("GET")

	v1 := r.PathPrefix("/v1").Subrouter()
	if c.RateLimiter != nil {
		v1.Use(c.RateLimiter.Middleware)
	}

	// Public routes
	v1.HandleFunc("/auth/login", authHandler.Login).Methods("POST", "OPTIONS")
	v1.HandleFunc("/assessments", assessmentHandler.Start).Methods("POST", "OPTIONS")
	v1.HandleFunc("/courses", courseHandler.List).Methods("GET", "OPTIONS")
	v1.HandleFunc("/courses/trending", courseHandler.Trending).Methods("GET", "OPTIONS")
	v1.HandleFunc("/courses/{courseId}", courseHandler.Get).Methods("GET", "OPTIONS")

	// WebSocket routes (token in query param)
	if c.WSHandler != nil {
		v1.HandleFunc("/ws/assessments/{id}", c.WSHandler.SessionWS).Methods("GET")
		v1.HandleFunc("/ws/counselor", c.WSHandler.CounselorWS).Methods("GET")
	}

	// Session routes (the session's student token, or a counselor)
	sessionRoutes := v1.PathPrefix("/assessments/{id}").Subrouter()
	sessionRoutes.Use(authMW.RequireSession)

	sessionRoutes.HandleFunc("/question", assessmentHandler.Current).Methods("GET", "OPTIONS")
	sessionRoutes.HandleFunc("/answers", assessmentHandler.Answer).Methods("POST", "OPTIONS")
	sessionRoutes.HandleFunc("/undo", assessmentHandler.Undo).Methods("POST", "OPTIONS")
	sessionRoutes.HandleFunc("/finish", assessmentHandler.Finish).Methods("POST", "OPTIONS")
	sessionRoutes.HandleFunc("/result", assessmentHandler.Result).Methods("GET", "OPTIONS")

	// Counselor routes
	counselorRoutes := v1.NewRoute().Subrouter()
	counselorRoutes.Use(authMW.RequireCounselor)

	counselorRoutes.HandleFunc("/students/{studentId}/results", counselorHandler.StudentResults).Methods("GET", "OPTIONS")
	counselorRoutes.HandleFunc("/students/{studentId}/sessions", counselorHandler.StudentSessions).Methods("GET", "OPTIONS")
	counselorRoutes.HandleFunc("/stats/questions", counselorHandler.QuestionStats).Methods("GET", "OPTIONS")
	counselorRoutes.HandleFunc("/stats/cohort", counselorHandler.CohortSummary).Methods("GET", "OPTIONS")

	return r
}
