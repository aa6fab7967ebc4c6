package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"careercompass/internal/cache"
	"careercompass/internal/matcher"
	"careercompass/internal/metrics"
	"careercompass/internal/model"
	"careercompass/internal/repository"
	"careercompass/internal/session"
	"careercompass/internal/validation"
)

var (
	ErrSessionNotFound   = errors.New("assessment session not found")
	ErrSessionFinished   = errors.New("assessment already finished")
	ErrSessionIncomplete = errors.New("assessment is not complete yet")
	ErrNothingToUndo     = errors.New("no answer to undo")
	ErrResultNotFound    = errors.New("assessment result not found")
)

// AnswerStore persists each session's flat raw-answer map and, beside it, the
// answer log that keeps the order answers were given. The redis answer cache
// and the badger local store both implement it.
type AnswerStore interface {
	Load(ctx context.Context, sessionID string) (map[string]string, error)
	Put(ctx context.Context, sessionID, questionID, raw string) error
	Remove(ctx context.Context, sessionID, questionID string) error
	Clear(ctx context.Context, sessionID string) error
	LoadLog(ctx context.Context, sessionID string) ([]model.AnswerRecord, error)
	SaveLog(ctx context.Context, sessionID string, log []model.AnswerRecord) error
}

// AssessmentService runs assessment sessions over the state machine. It keeps
// no session state in memory: every call resumes from the answer store.
type AssessmentService struct {
	machine     *session.Machine
	matcher     *matcher.Matcher
	courses     *CourseService
	answers     AnswerStore
	sessions    cache.SessionCache
	sessionRepo repository.SessionRepo
	results     repository.ResultRepo
	trending    cache.TrendingCache
	stats       cache.QuestionStatsCache
	auth        *AuthService
	broadcaster Broadcaster
	log         zerolog.Logger

	locksMu sync.Mutex
	locks   map[string]*sessionLock
	now     func() time.Time
}

type sessionLock struct {
	mu   sync.Mutex
	refs int
}

// NewAssessmentService creates a new assessment service
func NewAssessmentService(
	machine *session.Machine,
	m *matcher.Matcher,
	courses *CourseService,
	answers AnswerStore,
	sessions cache.SessionCache,
	sessionRepo repository.SessionRepo,
	results repository.ResultRepo,
	trending cache.TrendingCache,
	stats cache.QuestionStatsCache,
	auth *AuthService,
	log zerolog.Logger,
) *AssessmentService {
	return &AssessmentService{
		machine:     machine,
		matcher:     m,
		courses:     courses,
		answers:     answers,
		sessions:    sessions,
		sessionRepo: sessionRepo,
		results:     results,
		trending:    trending,
		stats:       stats,
		auth:        auth,
		broadcaster: nopBroadcaster{},
		log:         log,
		locks:       make(map[string]*sessionLock),
		now:         time.Now,
	}
}

// SetBroadcaster sets the broadcaster for WebSocket events
func (s *AssessmentService) SetBroadcaster(b Broadcaster) {
	s.broadcaster = b
}

// lock serialises calls for one session so the answer cap and undo always see
// the latest stored answers. An entry lives only while some call holds or
// waits for it.
func (s *AssessmentService) lock(id string) func() {
	s.locksMu.Lock()
	l := s.locks[id]
	if l == nil {
		l = &sessionLock{}
		s.locks[id] = l
	}
	l.refs++
	s.locksMu.Unlock()

	l.mu.Lock()
	return func() {
		l.mu.Unlock()
		s.locksMu.Lock()
		l.refs--
		if l.refs == 0 {
			delete(s.locks, id)
		}
		s.locksMu.Unlock()
	}
}

// Start opens a session for a student and returns its token and first question
func (s *AssessmentService) Start(ctx context.Context, req *model.StartRequest) (*model.StartResponse, error) {
	if err := validation.ValidateStruct(req); err != nil {
		return nil, err
	}

	now := s.now().UTC()
	sess := &model.AssessmentSession{
		ID:             uuid.New().String(),
		StudentID:      req.StudentID,
		Profile:        req.Profile,
		CatalogVersion: s.machine.Bank().Version(),
		Status:         model.SessionFresh,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if err := s.sessionRepo.Create(ctx, sess); err != nil {
		return nil, fmt.Errorf("failed to record session: %w", err)
	}
	if err := s.sessions.Set(ctx, sess); err != nil {
		return nil, fmt.Errorf("failed to cache session: %w", err)
	}

	token, err := s.auth.GenerateStudentToken(sess.ID, sess.StudentID)
	if err != nil {
		return nil, err
	}

	metrics.SessionsStarted.Inc()
	s.log.Info().Str("session_id", sess.ID).Str("student_id", sess.StudentID).
		Str("class_level", string(sess.Profile.ClassLevel)).Msg("assessment started")

	progress := s.progress(sess.ID, s.machine.Initialize())
	s.broadcaster.BroadcastToCounselors(EventSessionStarted, map[string]interface{}{
		"sessionId": sess.ID,
		"studentId": sess.StudentID,
		"profile":   sess.Profile,
	})

	return &model.StartResponse{
		SessionID: sess.ID,
		Token:     token,
		Progress:  progress,
	}, nil
}

// Session returns the session metadata, falling back to MongoDB when the
// cached copy has expired.
func (s *AssessmentService) Session(ctx context.Context, id string) (*model.AssessmentSession, error) {
	sess, err := s.sessions.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to read session: %w", err)
	}
	if sess != nil {
		return sess, nil
	}

	sess, err = s.sessionRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to read session: %w", err)
	}
	if sess == nil {
		return nil, ErrSessionNotFound
	}
	if err := s.sessions.Set(ctx, sess); err != nil {
		s.log.Warn().Err(err).Str("session_id", id).Msg("failed to re-cache session")
	}
	return sess, nil
}

// restore resumes the state machine from the stored answers in the order
// they were given. Stored answers that no longer fit their question are
// dropped from the store and the session continues without them.
func (s *AssessmentService) restore(ctx context.Context, sess *model.AssessmentSession) (session.State, error) {
	raw, err := s.answers.Load(ctx, sess.ID)
	if err != nil {
		return session.State{}, err
	}
	log, err := s.answers.LoadLog(ctx, sess.ID)
	if err != nil {
		return session.State{}, err
	}
	if sess.CatalogVersion != s.machine.Bank().Version() {
		s.log.Warn().Str("session_id", sess.ID).
			Str("session_catalog", sess.CatalogVersion).
			Str("catalog", s.machine.Bank().Version()).
			Msg("resuming session across catalog versions")
	}

	state, err := s.machine.ResumeLog(raw, log)
	var corrupt *model.CorruptSessionError
	if errors.As(err, &corrupt) {
		metrics.CorruptResumes.Inc()
		s.log.Warn().Str("session_id", sess.ID).Strs("dropped", corrupt.Dropped).Msg("dropped unreadable answers")
		for _, id := range corrupt.Dropped {
			if err := s.answers.Remove(ctx, sess.ID, id); err != nil {
				return session.State{}, err
			}
		}
		return state, nil
	}
	return state, err
}

func (s *AssessmentService) progress(id string, state session.State) model.Progress {
	return model.Progress{
		SessionID: id,
		Status:    s.machine.Status(state),
		Answered:  state.Count(),
		Cap:       session.MaxAnswers,
		Next:      s.machine.Next(state),
		Scores:    s.machine.Score(state),
	}
}

// Current returns the next question and running progress
func (s *AssessmentService) Current(ctx context.Context, id string) (*model.Progress, error) {
	sess, err := s.Session(ctx, id)
	if err != nil {
		return nil, err
	}
	if sess.Status == model.SessionComplete {
		return s.finishedProgress(ctx, id)
	}
	state, err := s.restore(ctx, sess)
	if err != nil {
		return nil, fmt.Errorf("failed to resume session: %w", err)
	}
	p := s.progress(id, state)
	return &p, nil
}

// finishedProgress reports a finished session from its stored result; its
// answers have left the answer store by then
func (s *AssessmentService) finishedProgress(ctx context.Context, id string) (*model.Progress, error) {
	result, err := s.Result(ctx, id)
	if err != nil {
		return nil, err
	}
	return &model.Progress{
		SessionID: id,
		Status:    model.SessionComplete,
		Answered:  result.AnswerCount,
		Cap:       session.MaxAnswers,
		Scores:    result.Scores,
	}, nil
}

// Answer records one answer and returns the updated progress. Any question of
// the catalog may be answered; answering one again replaces the earlier answer.
func (s *AssessmentService) Answer(ctx context.Context, id string, req *model.AnswerRequest) (*model.Progress, error) {
	if err := validation.ValidateStruct(req); err != nil {
		return nil, err
	}
	defer s.lock(id)()

	sess, err := s.Session(ctx, id)
	if err != nil {
		return nil, err
	}
	if sess.Status == model.SessionComplete {
		return nil, ErrSessionFinished
	}

	q, ok := s.machine.Bank().Question(req.QuestionID)
	if !ok {
		metrics.RecordAnswer("", metrics.OutcomeRejected)
		return nil, fmt.Errorf("%w: %q", model.ErrUnknownQuestion, req.QuestionID)
	}

	raw, err := req.Raw()
	if err != nil {
		return nil, s.invalid(ctx, q, &model.AnswerShapeError{QuestionID: q.ID, Kind: q.Kind, Reason: "answer is not valid JSON"})
	}
	answer, err := model.DecodeAnswer(q, raw)
	if err != nil {
		return nil, s.invalid(ctx, q, err)
	}

	state, err := s.restore(ctx, sess)
	if err != nil {
		return nil, fmt.Errorf("failed to resume session: %w", err)
	}
	next, err := s.machine.Advance(state, q.ID, answer)
	if err != nil {
		metrics.RecordAnswer(string(q.Kind), metrics.OutcomeRejected)
		return nil, err
	}

	normalized, err := model.EncodeAnswer(answer)
	if err != nil {
		return nil, err
	}
	if err := s.answers.Put(ctx, id, q.ID, normalized); err != nil {
		return nil, err
	}
	if err := s.saveLog(ctx, id, next); err != nil {
		return nil, err
	}

	metrics.RecordAnswer(string(q.Kind), metrics.OutcomeAccepted)
	if err := s.stats.IncrementAnswered(ctx, q.ID); err != nil {
		s.log.Warn().Err(err).Str("question_id", q.ID).Msg("failed to update question stats")
	}

	progress := s.progress(id, next)
	s.touch(ctx, sess, progress.Status)
	s.publish(sess, EventQuestionAnswered, q.ID, progress)
	return &progress, nil
}

func (s *AssessmentService) invalid(ctx context.Context, q *model.Question, err error) error {
	metrics.RecordAnswer(string(q.Kind), metrics.OutcomeInvalid)
	if serr := s.stats.IncrementInvalid(ctx, q.ID); serr != nil {
		s.log.Warn().Err(serr).Str("question_id", q.ID).Msg("failed to update question stats")
	}
	return err
}

// Undo removes the most recent answer. When that answer replaced an earlier
// one to the same question, the earlier answer is restored.
func (s *AssessmentService) Undo(ctx context.Context, id string) (*model.Progress, error) {
	defer s.lock(id)()

	sess, err := s.Session(ctx, id)
	if err != nil {
		return nil, err
	}
	if sess.Status == model.SessionComplete {
		return nil, ErrSessionFinished
	}

	state, err := s.restore(ctx, sess)
	if err != nil {
		return nil, fmt.Errorf("failed to resume session: %w", err)
	}
	next, removed, ok := s.machine.Revert(state)
	if !ok {
		return nil, ErrNothingToUndo
	}

	if err := s.syncAnswer(ctx, id, next, removed.QuestionID); err != nil {
		return nil, err
	}
	if err := s.saveLog(ctx, id, next); err != nil {
		return nil, err
	}

	metrics.UndoTotal.Inc()
	if err := s.stats.IncrementReverted(ctx, removed.QuestionID); err != nil {
		s.log.Warn().Err(err).Str("question_id", removed.QuestionID).Msg("failed to update question stats")
	}

	progress := s.progress(id, next)
	s.touch(ctx, sess, progress.Status)
	s.publish(sess, EventAnswerReverted, removed.QuestionID, progress)
	return &progress, nil
}

// syncAnswer makes the store agree with state for one question: a restored
// earlier answer is written back, otherwise the answer is removed.
func (s *AssessmentService) syncAnswer(ctx context.Context, id string, state session.State, questionID string) error {
	if a, ok := state.Answers()[questionID]; ok {
		raw, err := model.EncodeAnswer(a)
		if err != nil {
			return err
		}
		return s.answers.Put(ctx, id, questionID, raw)
	}
	return s.answers.Remove(ctx, id, questionID)
}

func (s *AssessmentService) saveLog(ctx context.Context, id string, state session.State) error {
	log, err := s.machine.Journal(state)
	if err != nil {
		return err
	}
	return s.answers.SaveLog(ctx, id, log)
}

func (s *AssessmentService) touch(ctx context.Context, sess *model.AssessmentSession, status model.SessionStatus) {
	if status == model.SessionComplete {
		// Finish owns the transition to complete
		status = model.SessionInProgress
	}
	sess.Status = status
	sess.UpdatedAt = s.now().UTC()
	if err := s.sessions.Set(ctx, sess); err != nil {
		s.log.Warn().Err(err).Str("session_id", sess.ID).Msg("failed to refresh session")
	}
}

func (s *AssessmentService) publish(sess *model.AssessmentSession, event, questionID string, p model.Progress) {
	s.broadcaster.BroadcastToSession(sess.ID, event, p)
	s.broadcaster.BroadcastToCounselors(event, map[string]interface{}{
		"sessionId":  sess.ID,
		"studentId":  sess.StudentID,
		"questionId": questionID,
		"answered":   p.Answered,
		"status":     p.Status,
	})
}

// Finish scores a complete session, matches courses and stores the result.
// Finishing an already finished session returns the stored result.
func (s *AssessmentService) Finish(ctx context.Context, id string) (*model.AssessmentResult, error) {
	defer s.lock(id)()

	sess, err := s.Session(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing, err := s.results.GetBySessionID(ctx, id); err != nil {
		return nil, fmt.Errorf("failed to read result: %w", err)
	} else if existing != nil {
		return existing, nil
	}

	state, err := s.restore(ctx, sess)
	if err != nil {
		return nil, fmt.Errorf("failed to resume session: %w", err)
	}
	if !s.machine.IsComplete(state) {
		return nil, fmt.Errorf("%w: %d answered, next is %s", ErrSessionIncomplete, state.Count(), s.machine.Next(state).ID)
	}

	start := s.now()
	scores := s.machine.Score(state)
	recs := s.matcher.Match(scores, sess.Profile, s.courses.Catalog().All())
	metrics.ObserveRecommendation(start)

	flat, err := s.machine.Flatten(state)
	if err != nil {
		return nil, err
	}

	completedAt := s.now().UTC()
	result := &model.AssessmentResult{
		SessionID:       sess.ID,
		StudentID:       sess.StudentID,
		Profile:         sess.Profile,
		CatalogVersion:  s.machine.Bank().Version(),
		Scores:          scores,
		TopDimensions:   scores.Top(3),
		Recommendations: recs,
		AnswerCount:     state.Count(),
		Answers:         flat,
		CompletedAt:     completedAt,
	}
	if err := s.results.Save(ctx, result); err != nil {
		return nil, fmt.Errorf("failed to save result: %w", err)
	}

	if err := s.sessionRepo.UpdateStatus(ctx, id, model.SessionComplete); err != nil {
		s.log.Warn().Err(err).Str("session_id", id).Msg("failed to mark session complete")
	}
	sess.Status = model.SessionComplete
	sess.UpdatedAt = completedAt
	sess.CompletedAt = &completedAt
	if err := s.sessions.Set(ctx, sess); err != nil {
		s.log.Warn().Err(err).Str("session_id", id).Msg("failed to refresh session")
	}

	// The result holds the answers now
	if err := s.answers.Clear(ctx, id); err != nil {
		s.log.Warn().Err(err).Str("session_id", id).Msg("failed to clear stored answers")
	}

	if len(recs) > 0 {
		if err := s.trending.Bump(ctx, recs[0].CourseID); err != nil {
			s.log.Warn().Err(err).Str("course_id", recs[0].CourseID).Msg("failed to update trending courses")
		}
	}

	metrics.SessionsCompleted.Inc()
	s.log.Info().Str("session_id", id).Int("answers", result.AnswerCount).
		Int("recommendations", len(recs)).Msg("assessment completed")

	s.broadcaster.BroadcastToSession(id, EventRecommendationsReady, result)
	s.broadcaster.BroadcastToCounselors(EventAssessmentCompleted, map[string]interface{}{
		"sessionId":     id,
		"studentId":     sess.StudentID,
		"topDimensions": result.TopDimensions,
		"topCourses":    topCourseIDs(recs, 3),
	})
	s.broadcaster.DisconnectSession(id)
	return result, nil
}

func topCourseIDs(recs []model.Recommendation, n int) []string {
	if len(recs) < n {
		n = len(recs)
	}
	ids := make([]string, n)
	for i := 0; i < n; i++ {
		ids[i] = recs[i].CourseID
	}
	return ids
}

// Result returns the stored result of a finished session
func (s *AssessmentService) Result(ctx context.Context, id string) (*model.AssessmentResult, error) {
	result, err := s.results.GetBySessionID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to read result: %w", err)
	}
	if result == nil {
		return nil, ErrResultNotFound
	}
	return result, nil
}

// StudentResults returns every result recorded for a student, newest first
func (s *AssessmentService) StudentResults(ctx context.Context, studentID string) ([]*model.AssessmentResult, error) {
	return s.results.GetByStudentID(ctx, studentID)
}

// CohortSummary aggregates finished results, for every class level when
// class is empty
func (s *AssessmentService) CohortSummary(ctx context.Context, class model.ClassLevel) (*model.CohortSummary, error) {
	summary, err := s.results.Summary(ctx, class)
	if err != nil {
		return nil, fmt.Errorf("failed to summarize results: %w", err)
	}
	return summary, nil
}

// StudentSessions returns every session a student opened, newest first
func (s *AssessmentService) StudentSessions(ctx context.Context, studentID string) ([]*model.AssessmentSession, error) {
	return s.sessionRepo.GetByStudentID(ctx, studentID)
}

// QuestionStats returns per-question tallies in catalog order
func (s *AssessmentService) QuestionStats(ctx context.Context) ([]cache.QuestionStats, error) {
	ordered := s.machine.Bank().Ordered()
	ids := make([]string, len(ordered))
	for i, q := range ordered {
		ids[i] = q.ID
	}
	return s.stats.Get(ctx, ids)
}
