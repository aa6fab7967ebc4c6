package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/manifoldco/promptui"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"careercompass/internal/catalog"
	"careercompass/internal/localstore"
	"careercompass/internal/logging"
	"careercompass/internal/matcher"
	"careercompass/internal/model"
	"careercompass/internal/session"
)

const undoLabel = "<< Undo previous answer"

var errQuit = errors.New("quit requested")

var takeCmd = &cobra.Command{
	Use:   "take",
	Short: "Take the assessment; progress is saved after every answer",
	RunE:  runTake,
}

func init() {
	rootCmd.AddCommand(takeCmd)

	takeCmd.Flags().String("session", "", "resume a saved session (default: start a new one)")
	takeCmd.Flags().String("class", string(model.Class12), "class level: class_10 or class_12")
	takeCmd.Flags().String("stream", "", "declared stream: science, commerce, arts or vocational")
	takeCmd.Flags().Float64("marks", -1, "latest percentage; ignored when negative")
	takeCmd.Flags().Int("top", 5, "number of recommendations to show")
}

// asker collects one answer for q; undo reports the student chose to go back
type asker func(q *model.Question, canUndo bool) (a model.Answer, undo bool, err error)

// taker drives one session against the local store
type taker struct {
	machine *session.Machine
	store   *localstore.Store
	sess    *model.AssessmentSession
	ask     asker
	out     io.Writer
	log     zerolog.Logger
}

func runTake(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	log := logging.Component("take")

	bank, err := catalog.DefaultBank()
	if err != nil {
		return err
	}
	courses, err := catalog.DefaultCourseCatalog()
	if err != nil {
		return err
	}

	store, err := localstore.Open(cfg.LocalStore.Path)
	if err != nil {
		return err
	}
	defer store.Close()

	sess, err := loadOrCreate(ctx, cmd, store, bank.Version())
	if err != nil {
		return err
	}
	if sess.CatalogVersion != bank.Version() {
		log.Warn().Str("saved", sess.CatalogVersion).Str("current", bank.Version()).
			Msg("session was started on a different question catalog")
	}

	t := &taker{
		machine: session.NewMachine(bank),
		store:   store,
		sess:    sess,
		out:     cmd.OutOrStdout(),
		log:     log,
	}
	t.ask = t.prompt

	state, err := t.resume(ctx)
	if err != nil {
		return err
	}
	state, err = t.run(ctx, state)
	if err != nil && !errors.Is(err, errQuit) {
		return err
	}
	if !t.machine.IsComplete(state) {
		fmt.Fprintf(t.out, "\nProgress saved (%d answered). Resume with: %s take --session %s\n", state.Count(), app, sess.ID)
		return nil
	}

	top, _ := cmd.Flags().GetInt("top")
	m := matcher.New(cfg.Matcher, matcher.WithLogger(logging.Component("matcher")))
	scores := t.machine.Score(state)
	recs := m.Match(scores, sess.Profile, courses.All())
	writeResult(t.out, scores, recs, top)

	now := time.Now().UTC()
	sess.Status = model.SessionComplete
	sess.UpdatedAt = now
	sess.CompletedAt = &now
	return store.SaveSession(ctx, sess)
}

func loadOrCreate(ctx context.Context, cmd *cobra.Command, store *localstore.Store, version string) (*model.AssessmentSession, error) {
	if id, _ := cmd.Flags().GetString("session"); id != "" {
		sess, err := store.GetSession(ctx, id)
		if err != nil {
			return nil, fmt.Errorf("session %s: %w", id, err)
		}
		return sess, nil
	}

	class, _ := cmd.Flags().GetString("class")
	stream, _ := cmd.Flags().GetString("stream")
	marks, _ := cmd.Flags().GetFloat64("marks")
	profile, err := buildProfile(class, stream, marks)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	sess := &model.AssessmentSession{
		ID:             uuid.New().String(),
		StudentID:      "local",
		Profile:        profile,
		CatalogVersion: version,
		Status:         model.SessionFresh,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := store.SaveSession(ctx, sess); err != nil {
		return nil, err
	}
	return sess, nil
}

func buildProfile(class, stream string, marks float64) (model.StudentProfile, error) {
	p := model.StudentProfile{ClassLevel: model.ClassLevel(class), Stream: model.Stream(stream)}
	if !p.ClassLevel.Valid() {
		return p, fmt.Errorf("unknown class level %q", class)
	}
	if p.Stream != "" && !p.Stream.Valid() {
		return p, fmt.Errorf("unknown stream %q", stream)
	}
	if marks >= 0 {
		if marks > 100 {
			return p, fmt.Errorf("marks must be at most 100")
		}
		p.Marks = &marks
	}
	return p, nil
}

// resume rebuilds the state from the store in answer order, deleting answers
// that no longer fit
func (t *taker) resume(ctx context.Context) (session.State, error) {
	saved, err := t.store.Load(ctx, t.sess.ID)
	if err != nil {
		return session.State{}, err
	}
	log, err := t.store.LoadLog(ctx, t.sess.ID)
	if err != nil {
		return session.State{}, err
	}
	state, err := t.machine.ResumeLog(saved, log)

	var corrupt *model.CorruptSessionError
	if errors.As(err, &corrupt) {
		t.log.Warn().Strs("dropped", corrupt.Dropped).Msg("discarding saved answers that no longer fit their questions")
		for _, id := range corrupt.Dropped {
			if err := t.store.Remove(ctx, t.sess.ID, id); err != nil {
				return state, err
			}
		}
		return state, nil
	}
	return state, err
}

// run asks questions until the session completes or the student quits
func (t *taker) run(ctx context.Context, state session.State) (session.State, error) {
	for {
		q := t.machine.Next(state)
		if q == nil {
			return state, nil
		}

		fmt.Fprintf(t.out, "\n[%d/%d] %s\n", state.Count()+1, session.MaxAnswers, q.Text)
		a, undo, err := t.ask(q, state.Count() > 0)
		if err != nil {
			return state, err
		}

		if undo {
			state, err = t.undo(ctx, state)
			if err != nil {
				return state, err
			}
			continue
		}

		next, err := t.machine.Advance(state, q.ID, a)
		if err != nil {
			fmt.Fprintln(t.out, err)
			continue
		}
		raw, err := model.EncodeAnswer(a)
		if err != nil {
			return state, err
		}
		if err := t.store.Put(ctx, t.sess.ID, q.ID, raw); err != nil {
			return state, err
		}
		if err := t.saveLog(ctx, next); err != nil {
			return state, err
		}
		state = next
		t.log.Debug().Str("question_id", q.ID).Int("answered", state.Count()).Msg("answer saved")
	}
}

func (t *taker) undo(ctx context.Context, state session.State) (session.State, error) {
	next, removed, ok := t.machine.Revert(state)
	if !ok {
		return state, nil
	}
	if a, ok := next.Answers()[removed.QuestionID]; ok {
		raw, err := model.EncodeAnswer(a)
		if err != nil {
			return state, err
		}
		if err := t.store.Put(ctx, t.sess.ID, removed.QuestionID, raw); err != nil {
			return state, err
		}
	} else if err := t.store.Remove(ctx, t.sess.ID, removed.QuestionID); err != nil {
		return state, err
	}
	return next, t.saveLog(ctx, next)
}

func (t *taker) saveLog(ctx context.Context, state session.State) error {
	log, err := t.machine.Journal(state)
	if err != nil {
		return err
	}
	return t.store.SaveLog(ctx, t.sess.ID, log)
}

// prompt is the interactive asker
func (t *taker) prompt(q *model.Question, canUndo bool) (model.Answer, bool, error) {
	if q.Kind == model.KindSingleChoice || q.Kind == model.KindScenario {
		items := make([]string, 0, len(q.Options)+1)
		for _, o := range q.Options {
			items = append(items, o.Label)
		}
		if canUndo {
			items = append(items, undoLabel)
		}
		sel := promptui.Select{Label: "Choose", Items: items, Size: len(items)}
		idx, _, err := sel.Run()
		if err != nil {
			return nil, false, promptErr(err)
		}
		if idx == len(q.Options) {
			return nil, true, nil
		}
		a, err := parseAnswer(q, fmt.Sprint(idx+1))
		return a, false, err
	}

	writeChoices(t.out, q)
	label := hint(q)
	if canUndo {
		label += " (" + undoInput + " to undo)"
	}
	p := promptui.Prompt{
		Label: label,
		Validate: func(s string) error {
			if canUndo && strings.TrimSpace(s) == undoInput {
				return nil
			}
			_, err := parseAnswer(q, s)
			return err
		},
	}
	s, err := p.Run()
	if err != nil {
		return nil, false, promptErr(err)
	}
	if strings.TrimSpace(s) == undoInput {
		return nil, true, nil
	}
	a, err := parseAnswer(q, s)
	return a, false, err
}

func promptErr(err error) error {
	if errors.Is(err, promptui.ErrInterrupt) || errors.Is(err, promptui.ErrEOF) {
		return errQuit
	}
	return err
}

func writeResult(w io.Writer, scores model.ScoreVector, recs []model.Recommendation, top int) {
	fmt.Fprintln(w, "\nYour interest profile")
	peak := 0.0
	for _, d := range model.Dimensions {
		peak = math.Max(peak, scores.Get(d))
	}
	for _, d := range model.Dimensions {
		bar := 0
		if peak > 0 {
			bar = int(math.Round(scores.Get(d) / peak * 30))
		}
		fmt.Fprintf(w, "  %-14s %6.1f %s\n", d.Title(), scores.Get(d), strings.Repeat("#", bar))
	}

	top = max(0, min(top, len(recs)))
	fmt.Fprintf(w, "\nTop %d courses\n", top)
	for i, r := range recs[:top] {
		fmt.Fprintf(w, "  %d. %s (%s) %.1f\n", i+1, r.Name, r.Stream.Title(), r.Score)
		for _, reason := range r.Reasons {
			fmt.Fprintf(w, "     - %s\n", reason)
		}
	}
}
