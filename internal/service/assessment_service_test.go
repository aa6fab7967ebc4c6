package service

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"sync"
	"testing"
	"time"

	"careercompass/internal/model"
	"careercompass/internal/service/servicetest"
	"careercompass/internal/session"
	"careercompass/internal/validation"
)

func TestStartReturnsFirstBaselineQuestion(t *testing.T) {
	f := newFixture(t)
	resp := startSession(t, f)

	if resp.Progress.Status != model.SessionFresh || resp.Progress.Answered != 0 {
		t.Fatalf("unexpected progress %+v", resp.Progress)
	}
	if resp.Progress.Next == nil || resp.Progress.Next.ID != "b_weekend" {
		t.Fatalf("expected b_weekend first, got %+v", resp.Progress.Next)
	}
	if resp.Progress.Cap != session.MaxAnswers {
		t.Fatalf("expected cap %d, got %d", session.MaxAnswers, resp.Progress.Cap)
	}

	claims, err := f.auth.ValidateStudentToken(resp.Token)
	if err != nil {
		t.Fatalf("token: %v", err)
	}
	if claims.SessionID != resp.SessionID || claims.StudentID != "stu-42" {
		t.Fatalf("unexpected claims %+v", claims)
	}
	if _, ok := f.repo.Data[resp.SessionID]; !ok {
		t.Fatal("session not recorded durably")
	}
	if f.broadcast.Count(servicetest.Counselors, EventSessionStarted) != 1 {
		t.Fatal("counselors not notified")
	}
}

func TestStartValidatesRequest(t *testing.T) {
	f := newFixture(t)
	_, err := f.svc.Start(context.Background(), &model.StartRequest{
		StudentID: "stu-1",
		Profile:   model.StudentProfile{ClassLevel: "class_9"},
	})
	var verr *validation.Error
	if !errors.As(err, &verr) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestAnswerToCompletionAndFinish(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	resp := startSession(t, f)
	id := resp.SessionID

	if _, err := f.svc.Finish(ctx, id); !errors.Is(err, ErrSessionIncomplete) {
		t.Fatalf("expected ErrSessionIncomplete, got %v", err)
	}

	p := answerAll(t, f, id, &resp.Progress)
	if p.Status != model.SessionComplete || p.Answered > session.MaxAnswers {
		t.Fatalf("unexpected final progress %+v", p)
	}

	stored, _ := f.store.Load(ctx, id)
	if len(stored) != p.Answered {
		t.Fatalf("expected %d stored answers, got %d", p.Answered, len(stored))
	}

	result, err := f.svc.Finish(ctx, id)
	if err != nil {
		t.Fatalf("finish: %v", err)
	}
	if result.AnswerCount != p.Answered || len(result.Answers) != p.Answered {
		t.Fatalf("result does not reflect answers: %+v", result)
	}
	if len(result.Recommendations) == 0 {
		t.Fatal("expected recommendations")
	}
	for _, r := range result.Recommendations {
		c := f.courses.GetByID(r.CourseID)
		if c == nil || !c.EligibleFor(model.Class12) {
			t.Fatalf("ineligible course %s recommended", r.CourseID)
		}
	}
	if result.Scores != p.Scores {
		t.Fatalf("finished scores %+v differ from running %+v", result.Scores, p.Scores)
	}
	if f.trending.Counts[result.Recommendations[0].CourseID] != 1 {
		t.Fatal("trending tally not bumped for the top course")
	}
	if f.repo.Data[id].Status != model.SessionComplete {
		t.Fatal("durable session not marked complete")
	}
	if f.broadcast.Count(id, EventRecommendationsReady) != 1 {
		t.Fatal("session not notified of recommendations")
	}

	again, err := f.svc.Finish(ctx, id)
	if err != nil || again != result || f.results.Saves != 1 {
		t.Fatalf("finish should be idempotent: err=%v saves=%d", err, f.results.Saves)
	}

	if _, err := f.svc.Answer(ctx, id, rawRequest(t, "b_weekend", model.SingleChoice{OptionID: "build"})); !errors.Is(err, ErrSessionFinished) {
		t.Fatalf("expected ErrSessionFinished, got %v", err)
	}
	cur, err := f.svc.Current(ctx, id)
	if err != nil || cur.Status != model.SessionComplete || cur.Next != nil {
		t.Fatalf("unexpected current after finish: %+v, %v", cur, err)
	}
	if cur.Answered != result.AnswerCount || cur.Scores != result.Scores {
		t.Fatalf("current after finish should report the result, got %+v", cur)
	}

	if stored, _ := f.store.Load(ctx, id); len(stored) != 0 {
		t.Fatalf("answers should leave the store once the result is saved, got %v", stored)
	}
	if log, _ := f.store.LoadLog(ctx, id); log != nil {
		t.Fatalf("answer log should leave the store once the result is saved, got %v", log)
	}
	if len(f.broadcast.Disconnected) != 1 || f.broadcast.Disconnected[0] != id {
		t.Fatalf("expected the session's subscribers disconnected, got %v", f.broadcast.Disconnected)
	}
}

func TestAnswerRejectsBadInput(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	id := startSession(t, f).SessionID

	_, err := f.svc.Answer(ctx, id, rawRequest(t, "no_such_question", model.SingleChoice{OptionID: "x"}))
	if !errors.Is(err, model.ErrUnknownQuestion) {
		t.Fatalf("expected ErrUnknownQuestion, got %v", err)
	}

	_, err = f.svc.Answer(ctx, id, &model.AnswerRequest{QuestionID: "b_puzzles", Answer: []byte(`"eleven"`)})
	if !errors.Is(err, model.ErrInvalidAnswerShape) {
		t.Fatalf("expected ErrInvalidAnswerShape, got %v", err)
	}
	_, err = f.svc.Answer(ctx, id, &model.AnswerRequest{QuestionID: "b_puzzles", Answer: []byte(`11`)})
	if !errors.Is(err, model.ErrInvalidAnswerShape) {
		t.Fatalf("expected out-of-range slider to be rejected, got %v", err)
	}
	if f.stats.Data["b_puzzles"].Invalid != 2 {
		t.Fatalf("expected two invalid tallies, got %+v", f.stats.Data["b_puzzles"])
	}

	stored, _ := f.store.Load(ctx, id)
	if len(stored) != 0 {
		t.Fatalf("rejected answers must not be stored, got %v", stored)
	}
}

func TestAnswerAcceptsJSONValue(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	id := startSession(t, f).SessionID

	p, err := f.svc.Answer(ctx, id, &model.AnswerRequest{QuestionID: "b_puzzles", Answer: []byte(` 7 `)})
	if err != nil {
		t.Fatalf("answer: %v", err)
	}
	if p.Answered != 1 || p.Status != model.SessionInProgress {
		t.Fatalf("unexpected progress %+v", p)
	}
	stored, _ := f.store.Load(ctx, id)
	if stored["b_puzzles"] != "7" {
		t.Fatalf("expected normalized raw 7, got %q", stored["b_puzzles"])
	}
}

func TestUndo(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	resp := startSession(t, f)
	id := resp.SessionID

	if _, err := f.svc.Undo(ctx, id); !errors.Is(err, ErrNothingToUndo) {
		t.Fatalf("expected ErrNothingToUndo, got %v", err)
	}

	q := resp.Progress.Next
	p, err := f.svc.Answer(ctx, id, rawRequest(t, q.ID, servicetest.FirstAnswer(q)))
	if err != nil {
		t.Fatal(err)
	}
	second := p.Next
	if _, err := f.svc.Answer(ctx, id, rawRequest(t, second.ID, servicetest.FirstAnswer(second))); err != nil {
		t.Fatal(err)
	}

	p, err = f.svc.Undo(ctx, id)
	if err != nil {
		t.Fatalf("undo: %v", err)
	}
	if p.Answered != 1 || p.Next == nil || p.Next.ID != second.ID {
		t.Fatalf("expected to be asked %s again, got %+v", second.ID, p)
	}
	stored, _ := f.store.Load(ctx, id)
	if _, ok := stored[second.ID]; ok || len(stored) != 1 {
		t.Fatalf("undone answer still stored: %v", stored)
	}
	if f.stats.Data[second.ID].Reverted != 1 {
		t.Fatal("revert not tallied")
	}
	if f.broadcast.Count(id, EventAnswerReverted) != 1 {
		t.Fatal("session not notified of the undo")
	}
}

func TestCorruptStoredAnswerIsDropped(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	id := startSession(t, f).SessionID

	_ = f.store.Put(ctx, id, "b_weekend", "build")
	_ = f.store.Put(ctx, id, "b_puzzles", "eleven")

	p, err := f.svc.Current(ctx, id)
	if err != nil {
		t.Fatalf("current should degrade gracefully, got %v", err)
	}
	if p.Answered != 1 {
		t.Fatalf("expected the corrupt answer to be dropped, got %d answered", p.Answered)
	}
	stored, _ := f.store.Load(ctx, id)
	if _, ok := stored["b_puzzles"]; ok {
		t.Fatal("corrupt answer left in the store")
	}
}

func TestSessionFallsBackToDurableRecord(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	id := startSession(t, f).SessionID

	_ = f.cache.Delete(ctx, id)
	if _, err := f.svc.Current(ctx, id); err != nil {
		t.Fatalf("current: %v", err)
	}
	if _, ok := f.cache.Data[id]; !ok {
		t.Fatal("session not re-cached")
	}

	if _, err := f.svc.Current(ctx, "missing"); !errors.Is(err, ErrSessionNotFound) {
		t.Fatalf("expected ErrSessionNotFound, got %v", err)
	}
}

func TestResultLookups(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	resp := startSession(t, f)

	if _, err := f.svc.Result(ctx, resp.SessionID); !errors.Is(err, ErrResultNotFound) {
		t.Fatalf("expected ErrResultNotFound, got %v", err)
	}

	answerAll(t, f, resp.SessionID, &resp.Progress)
	if _, err := f.svc.Finish(ctx, resp.SessionID); err != nil {
		t.Fatal(err)
	}

	results, err := f.svc.StudentResults(ctx, "stu-42")
	if err != nil || len(results) != 1 || results[0].SessionID != resp.SessionID {
		t.Fatalf("unexpected student results %v, %v", results, err)
	}
	sessions, err := f.svc.StudentSessions(ctx, "stu-42")
	if err != nil || len(sessions) != 1 {
		t.Fatalf("unexpected student sessions %v, %v", sessions, err)
	}

	stats, err := f.svc.QuestionStats(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if stats[0].QuestionID != "b_weekend" || stats[0].Answered != 1 {
		t.Fatalf("unexpected first stats row %+v", stats[0])
	}
}

func TestCohortSummary(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	empty, err := f.svc.CohortSummary(ctx, "")
	if err != nil || empty.Results != 0 || len(empty.TopDimensionCounts) != 0 || empty.LatestCompletedAt != nil {
		t.Fatalf("unexpected empty summary %+v, %v", empty, err)
	}

	at := time.Date(2026, 5, 4, 9, 0, 0, 0, time.UTC)
	for i, r := range []struct {
		class  model.ClassLevel
		scores model.ScoreVector
		top    model.Dimension
	}{
		{model.Class12, model.ScoreVector{Investigative: 30, Realistic: 10}, model.Investigative},
		{model.Class12, model.ScoreVector{Investigative: 20, Artistic: 5}, model.Investigative},
		{model.Class10, model.ScoreVector{Social: 25}, model.Social},
	} {
		id := fmt.Sprintf("s%d", i)
		f.results.Data[id] = &model.AssessmentResult{
			SessionID:     id,
			Profile:       model.StudentProfile{ClassLevel: r.class},
			Scores:        r.scores,
			TopDimensions: []model.Dimension{r.top},
			CompletedAt:   at.Add(time.Duration(i) * time.Hour),
		}
	}

	all, err := f.svc.CohortSummary(ctx, "")
	if err != nil {
		t.Fatal(err)
	}
	if all.Results != 3 || all.AverageScores.Investigative != 16.7 || all.AverageScores.Social != 8.3 {
		t.Fatalf("unexpected totals %+v", all)
	}
	want := []model.DimensionCount{{Dimension: model.Investigative, Count: 2}, {Dimension: model.Social, Count: 1}}
	if len(all.TopDimensionCounts) != 2 || all.TopDimensionCounts[0] != want[0] || all.TopDimensionCounts[1] != want[1] {
		t.Fatalf("unexpected dimension counts %+v", all.TopDimensionCounts)
	}
	if !all.LatestCompletedAt.Equal(at.Add(2 * time.Hour)) {
		t.Fatalf("unexpected latest %v", all.LatestCompletedAt)
	}

	class12, err := f.svc.CohortSummary(ctx, model.Class12)
	if err != nil {
		t.Fatal(err)
	}
	if class12.Results != 2 || class12.AverageScores.Investigative != 25 || class12.AverageScores.Social != 0 {
		t.Fatalf("unexpected class_12 summary %+v", class12)
	}
}

func TestUndoFollowsAnswerOrder(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	resp := startSession(t, f)
	id := resp.SessionID

	// Far enough into the optional rotation that answer order and catalog
	// order disagree.
	var (
		p        = &resp.Progress
		answered []string
		before   []model.ScoreVector
	)
	for len(answered) < 17 {
		before = append(before, p.Scores)
		q := p.Next
		var err error
		p, err = f.svc.Answer(ctx, id, rawRequest(t, q.ID, servicetest.FirstAnswer(q)))
		if err != nil {
			t.Fatalf("answer %s: %v", q.ID, err)
		}
		answered = append(answered, q.ID)
	}

	for step := 1; step <= 3; step++ {
		p, err := f.svc.Undo(ctx, id)
		if err != nil {
			t.Fatalf("undo %d: %v", step, err)
		}
		n := len(answered) - step
		stored, _ := f.store.Load(ctx, id)
		if _, ok := stored[answered[n]]; ok {
			t.Fatalf("undo %d should remove %s, the latest answer", step, answered[n])
		}
		for _, qid := range answered[:n] {
			if _, ok := stored[qid]; !ok {
				t.Fatalf("undo %d removed %s instead of %s", step, qid, answered[n])
			}
		}
		if p.Answered != n || p.Scores != before[n] {
			t.Fatalf("undo %d: expected %d answers with scores %+v, got %+v", step, n, before[n], p)
		}
	}
}

func TestUndoRestoresReplacedAnswer(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	resp := startSession(t, f)
	id := resp.SessionID

	first := resp.Progress.Next
	p, err := f.svc.Answer(ctx, id, rawRequest(t, first.ID, servicetest.FirstAnswer(first)))
	if err != nil {
		t.Fatal(err)
	}
	if _, err := f.svc.Answer(ctx, id, rawRequest(t, p.Next.ID, servicetest.FirstAnswer(p.Next))); err != nil {
		t.Fatal(err)
	}
	original, _ := f.store.Load(ctx, id)

	changed := model.SingleChoice{OptionID: first.Options[1].ID}
	if _, err := f.svc.Answer(ctx, id, rawRequest(t, first.ID, changed)); err != nil {
		t.Fatal(err)
	}
	if stored, _ := f.store.Load(ctx, id); stored[first.ID] != first.Options[1].ID {
		t.Fatalf("expected the changed answer stored, got %q", stored[first.ID])
	}

	p, err = f.svc.Undo(ctx, id)
	if err != nil {
		t.Fatal(err)
	}
	stored, _ := f.store.Load(ctx, id)
	if !reflect.DeepEqual(stored, original) || p.Answered != 2 {
		t.Fatalf("expected %v back after undo, got %v (%d answered)", original, stored, p.Answered)
	}
}

func TestSessionLocksAreReleased(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	resp := startSession(t, f)
	id := resp.SessionID
	q := resp.Progress.Next
	req := rawRequest(t, q.ID, servicetest.FirstAnswer(q))

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := f.svc.Answer(ctx, id, req); err != nil {
				t.Error(err)
			}
		}()
	}
	wg.Wait()

	if p, err := f.svc.Current(ctx, id); err != nil || p.Answered != 1 {
		t.Fatalf("expected one answer after concurrent repeats, got %+v, %v", p, err)
	}
	f.svc.locksMu.Lock()
	defer f.svc.locksMu.Unlock()
	if len(f.svc.locks) != 0 {
		t.Fatalf("expected no session locks once calls return, got %d", len(f.svc.locks))
	}
}
