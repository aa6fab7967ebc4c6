package cli

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"careercompass/internal/catalog"
	"careercompass/internal/localstore"
	"careercompass/internal/matcher"
	"careercompass/internal/model"
	"careercompass/internal/service/servicetest"
	"careercompass/internal/session"
)

// script answers every question with a valid answer, undoing after the
// questions listed in undoAfter, and quits once quitAt answers are recorded.
type script struct {
	undoAfter map[int]bool
	quitAt    int
	undone    map[int]bool
	count     int
}

func (s *script) ask(q *model.Question, canUndo bool) (model.Answer, bool, error) {
	if s.quitAt > 0 && s.count >= s.quitAt {
		return nil, false, errQuit
	}
	if canUndo && s.undoAfter[s.count] && !s.undone[s.count] {
		s.undone[s.count] = true
		s.count--
		return nil, true, nil
	}
	s.count++
	return servicetest.FirstAnswer(q), false, nil
}

func newTaker(t *testing.T, store *localstore.Store) *taker {
	t.Helper()
	bank, err := catalog.DefaultBank()
	if err != nil {
		t.Fatal(err)
	}
	profile, _ := buildProfile("class_12", "science", 85)
	return &taker{
		machine: session.NewMachine(bank),
		store:   store,
		sess:    &model.AssessmentSession{ID: "local-1", Profile: profile},
		out:     &bytes.Buffer{},
		log:     zerolog.Nop(),
	}
}

func TestTakerQuitAndResume(t *testing.T) {
	store, err := localstore.OpenInMemory()
	if err != nil {
		t.Fatal(err)
	}
	defer store.Close()
	ctx := context.Background()

	first := newTaker(t, store)
	s := &script{undoAfter: map[int]bool{2: true}, quitAt: 4, undone: map[int]bool{}}
	first.ask = s.ask

	state, err := first.run(ctx, first.machine.Initialize())
	if err != errQuit {
		t.Fatalf("expected quit, got %v", err)
	}
	if state.Count() != 4 {
		t.Fatalf("expected 4 answers before quitting, got %d", state.Count())
	}

	saved, _ := store.Load(ctx, "local-1")
	if len(saved) != 4 {
		t.Fatalf("expected 4 saved answers, got %v", saved)
	}

	second := newTaker(t, store)
	second.ask = (&script{undone: map[int]bool{}}).ask
	resumed, err := second.resume(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if resumed.Count() != 4 {
		t.Fatalf("expected resume to restore 4 answers, got %d", resumed.Count())
	}

	done, err := second.run(ctx, resumed)
	if err != nil {
		t.Fatal(err)
	}
	if !second.machine.IsComplete(done) {
		t.Fatal("expected a complete session")
	}
	saved, _ = store.Load(ctx, "local-1")
	if len(saved) != done.Count() {
		t.Fatalf("store has %d answers, state has %d", len(saved), done.Count())
	}
}

func TestTakerUndoAfterResumeRemovesLastAnswer(t *testing.T) {
	store, err := localstore.OpenInMemory()
	if err != nil {
		t.Fatal(err)
	}
	defer store.Close()
	ctx := context.Background()

	first := newTaker(t, store)
	first.ask = (&script{quitAt: 17, undone: map[int]bool{}}).ask
	state, err := first.run(ctx, first.machine.Initialize())
	if err != errQuit {
		t.Fatalf("expected quit, got %v", err)
	}
	last, ok := state.Last()
	if !ok {
		t.Fatal("expected answers before quitting")
	}
	want, _, _ := first.machine.Revert(state)

	second := newTaker(t, store)
	resumed, err := second.resume(ctx)
	if err != nil {
		t.Fatal(err)
	}
	undone, err := second.undo(ctx, resumed)
	if err != nil {
		t.Fatal(err)
	}
	if undone.Answered(last.QuestionID) {
		t.Fatalf("expected %s to be undone", last.QuestionID)
	}
	if undone.Count() != 16 || second.machine.Score(undone) != first.machine.Score(want) {
		t.Fatalf("got %d answers scoring %v", undone.Count(), second.machine.Score(undone))
	}
	saved, _ := store.Load(ctx, "local-1")
	if _, ok := saved[last.QuestionID]; ok {
		t.Fatalf("expected %s to leave the store", last.QuestionID)
	}
	log, _ := store.LoadLog(ctx, "local-1")
	if len(log) != 16 {
		t.Fatalf("expected the saved log to shrink to 16, got %d", len(log))
	}
}

func TestTakerResumeDropsCorruptAnswers(t *testing.T) {
	store, err := localstore.OpenInMemory()
	if err != nil {
		t.Fatal(err)
	}
	defer store.Close()
	ctx := context.Background()

	tk := newTaker(t, store)
	first := tk.machine.Next(tk.machine.Initialize())
	raw, _ := model.EncodeAnswer(servicetest.FirstAnswer(first))
	_ = store.Put(ctx, "local-1", first.ID, raw)
	_ = store.Put(ctx, "local-1", "b_puzzles", "eleven")

	state, err := tk.resume(ctx)
	if err != nil {
		t.Fatalf("corrupt answers should not fail resume: %v", err)
	}
	if state.Count() != 1 {
		t.Fatalf("expected one usable answer, got %d", state.Count())
	}
	saved, _ := store.Load(ctx, "local-1")
	if _, ok := saved["b_puzzles"]; ok {
		t.Fatal("expected the corrupt answer to be removed")
	}
}

func TestUndoRestoresReplacedAnswer(t *testing.T) {
	store, err := localstore.OpenInMemory()
	if err != nil {
		t.Fatal(err)
	}
	defer store.Close()
	ctx := context.Background()

	tk := newTaker(t, store)
	q := tk.machine.Next(tk.machine.Initialize())
	if len(q.Options) < 2 {
		t.Skip("first question has a single option")
	}

	state, _ := tk.machine.Advance(tk.machine.Initialize(), q.ID, model.SingleChoice{OptionID: q.Options[0].ID})
	_ = store.Put(ctx, "local-1", q.ID, q.Options[0].ID)
	state, _ = tk.machine.Advance(state, q.ID, model.SingleChoice{OptionID: q.Options[1].ID})
	_ = store.Put(ctx, "local-1", q.ID, q.Options[1].ID)

	state, err = tk.undo(ctx, state)
	if err != nil {
		t.Fatal(err)
	}
	saved, _ := store.Load(ctx, "local-1")
	if saved[q.ID] != q.Options[0].ID || state.Count() != 1 {
		t.Fatalf("expected the earlier answer back, got %v", saved)
	}
}

func TestWriteResult(t *testing.T) {
	var buf bytes.Buffer
	scores := model.ScoreVector{Investigative: 20, Realistic: 10}
	recs := matcher.New(matcher.DefaultWeights()).Match(scores, model.StudentProfile{ClassLevel: model.Class12}, catalog.DefaultCourses())

	writeResult(&buf, scores, recs, 3)
	out := buf.String()
	if !strings.Contains(out, "Top 3 courses") || !strings.Contains(out, recs[0].Name) {
		t.Fatalf("unexpected output:\n%s", out)
	}

	buf.Reset()
	writeResult(&buf, scores, recs, -1)
	if !strings.Contains(buf.String(), "Top 0 courses") {
		t.Fatalf("expected negative top to clamp to zero:\n%s", buf.String())
	}
}
