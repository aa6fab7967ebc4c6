package service

import (
	"context"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog"

	"careercompass/internal/catalog"
	"careercompass/internal/config"
	"careercompass/internal/localstore"
	"careercompass/internal/matcher"
	"careercompass/internal/model"
	"careercompass/internal/service/servicetest"
	"careercompass/internal/session"
)

type fixture struct {
	svc       *AssessmentService
	auth      *AuthService
	courses   *CourseService
	store     *localstore.Store
	cache     *servicetest.SessionCache
	repo      *servicetest.SessionRepo
	results   *servicetest.ResultRepo
	trending  *servicetest.Trending
	stats     *servicetest.Stats
	broadcast *servicetest.Broadcaster
}

func testAuthConfig() config.AuthConfig {
	return config.AuthConfig{
		CounselorUsername: "counselor",
		CounselorPassword: "open-sesame",
		JWTSecret:         "test-secret-0123456789",
		StudentTokenTTL:   time.Hour,
	}
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	bank, err := catalog.DefaultBank()
	if err != nil {
		t.Fatal(err)
	}
	courses, err := catalog.DefaultCourseCatalog()
	if err != nil {
		t.Fatal(err)
	}
	store, err := localstore.OpenInMemory()
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { store.Close() })

	f := &fixture{
		auth:      NewAuthService(testAuthConfig()),
		store:     store,
		cache:     servicetest.NewSessionCache(),
		repo:      servicetest.NewSessionRepo(),
		results:   servicetest.NewResultRepo(),
		trending:  servicetest.NewTrending(),
		stats:     servicetest.NewStats(),
		broadcast: &servicetest.Broadcaster{},
	}
	f.courses = NewCourseService(courses, f.trending)
	f.svc = NewAssessmentService(
		session.NewMachine(bank),
		matcher.New(matcher.DefaultWeights()),
		f.courses,
		store,
		f.cache,
		f.repo,
		f.results,
		f.trending,
		f.stats,
		f.auth,
		zerolog.Nop(),
	)
	f.svc.SetBroadcaster(f.broadcast)
	return f
}

// rawRequest wraps the persisted raw form of an answer as a JSON string
func rawRequest(t *testing.T, questionID string, a model.Answer) *model.AnswerRequest {
	t.Helper()
	raw, err := model.EncodeAnswer(a)
	if err != nil {
		t.Fatal(err)
	}
	quoted, err := json.Marshal(raw)
	if err != nil {
		t.Fatal(err)
	}
	return &model.AnswerRequest{QuestionID: questionID, Answer: quoted}
}

func startSession(t *testing.T, f *fixture) *model.StartResponse {
	t.Helper()
	marks := 78.0
	resp, err := f.svc.Start(context.Background(), &model.StartRequest{
		StudentID: "stu-42",
		Profile:   model.StudentProfile{ClassLevel: model.Class12, Stream: model.StreamScience, Marks: &marks},
	})
	if err != nil {
		t.Fatalf("start: %v", err)
	}
	return resp
}

// answerAll answers every next question until the session is complete
func answerAll(t *testing.T, f *fixture, id string, p *model.Progress) *model.Progress {
	t.Helper()
	for steps := 0; p.Next != nil; steps++ {
		if steps > session.MaxAnswers {
			t.Fatal("session never completed")
		}
		var err error
		p, err = f.svc.Answer(context.Background(), id, rawRequest(t, p.Next.ID, servicetest.FirstAnswer(p.Next)))
		if err != nil {
			t.Fatalf("answer: %v", err)
		}
	}
	return p
}
