// Package session implements the adaptive question-selection state machine.
//
// A State is an immutable append-only log of answers. Every transition returns
// a new State, so concurrent sessions never share mutable data and the running
// score is always recomputed from the log rather than updated in place.
package session

import (
	"fmt"

	"careercompass/internal/catalog"
	"careercompass/internal/model"
	"careercompass/internal/scoring"
)

// MaxAnswers is the hard cap on answered questions per session.
const MaxAnswers = 20

// Entry is one log record
type Entry struct {
	QuestionID string
	Answer     model.Answer
	Delta      model.ScoreVector // contribution when the answer was recorded

	replaced *replacement
}

// replacement remembers the entry an Advance displaced so Revert can put it back
type replacement struct {
	entry Entry
	index int
}

// State is a session's answer log. The zero value is a fresh session.
type State struct {
	entries []Entry
}

// Count is the number of answered questions; always equal to the log length
func (s State) Count() int { return len(s.entries) }

// Entries returns a copy of the log in order
func (s State) Entries() []Entry {
	return append([]Entry(nil), s.entries...)
}

// Last returns the most recent entry
func (s State) Last() (Entry, bool) {
	if len(s.entries) == 0 {
		return Entry{}, false
	}
	return s.entries[len(s.entries)-1], true
}

// Answered reports whether the log holds an answer for id
func (s State) Answered(id string) bool {
	return s.indexOf(id) >= 0
}

// Answers returns the current answer per question id
func (s State) Answers() map[string]model.Answer {
	out := make(map[string]model.Answer, len(s.entries))
	for _, e := range s.entries {
		out[e.QuestionID] = e.Answer
	}
	return out
}

func (s State) indexOf(id string) int {
	for i, e := range s.entries {
		if e.QuestionID == id {
			return i
		}
	}
	return -1
}

func (s State) scoringEntries() []scoring.Entry {
	out := make([]scoring.Entry, len(s.entries))
	for i, e := range s.entries {
		out[i] = scoring.Entry{QuestionID: e.QuestionID, Answer: e.Answer}
	}
	return out
}

// Machine drives sessions over one validated question bank. It holds no
// per-session data and is safe for concurrent use.
type Machine struct {
	bank *catalog.QuestionBank
}

func NewMachine(bank *catalog.QuestionBank) *Machine {
	return &Machine{bank: bank}
}

// Bank returns the question bank the machine selects from
func (m *Machine) Bank() *catalog.QuestionBank { return m.bank }

// Initialize returns a fresh session
func (m *Machine) Initialize() State {
	return State{}
}

// Next returns the next question to ask, or nil when the session is complete.
//
// Precedence: unanswered baseline questions in declaration order; then the
// first unanswered member of the first activated deep-dive group; then one
// question at a time from academic, values, skills and learning-style in
// rotation. Activations are evaluated against the answers as they are now.
func (m *Machine) Next(s State) *model.Question {
	if s.Count() >= MaxAnswers {
		return nil
	}

	for _, q := range m.bank.Baseline() {
		if !s.Answered(q.ID) {
			return q
		}
	}

	answers := s.Answers()
	for _, g := range m.bank.Groups() {
		if !g.Activation.Satisfied(answers) {
			continue
		}
		for _, q := range g.Questions {
			if !s.Answered(q.ID) {
				return q
			}
		}
	}

	// The rotation position is derived from the log so that Revert and
	// Resume reproduce it without extra state.
	start := m.optionalCount(s) % len(model.OptionalPartitions)
	for i := range model.OptionalPartitions {
		p := model.OptionalPartitions[(start+i)%len(model.OptionalPartitions)]
		for _, q := range m.bank.Optional(p) {
			if !s.Answered(q.ID) {
				return q
			}
		}
	}
	return nil
}

func (m *Machine) optionalCount(s State) int {
	n := 0
	for _, e := range s.entries {
		if q, ok := m.bank.Question(e.QuestionID); ok && q.Partition.Optional() {
			n++
		}
	}
	return n
}

// IsComplete is the single completion predicate: nothing left to ask, or the
// hard cap reached.
func (m *Machine) IsComplete(s State) bool {
	return s.Count() >= MaxAnswers || m.Next(s) == nil
}

// Status classifies the session for hosts
func (m *Machine) Status(s State) model.SessionStatus {
	switch {
	case m.IsComplete(s):
		return model.SessionComplete
	case s.Count() == 0:
		return model.SessionFresh
	default:
		return model.SessionInProgress
	}
}

// Advance records answer a for questionID and returns the new state. An
// existing answer for the same question is removed first so the log reflects
// the latest touch. Any catalog question may be answered, not only Next.
func (m *Machine) Advance(s State, questionID string, a model.Answer) (State, error) {
	q, ok := m.bank.Question(questionID)
	if !ok {
		return s, fmt.Errorf("%w: %q", model.ErrUnknownQuestion, questionID)
	}
	if err := model.CheckAnswer(q, a); err != nil {
		return s, err
	}

	idx := s.indexOf(questionID)
	if idx < 0 && s.Count() >= MaxAnswers {
		return s, fmt.Errorf("%w: %d answers recorded", model.ErrSessionComplete, s.Count())
	}

	entries := make([]Entry, 0, len(s.entries)+1)
	entry := Entry{QuestionID: questionID, Answer: a, Delta: scoring.Contribution(q, a)}
	if idx >= 0 {
		entries = append(entries, s.entries[:idx]...)
		entries = append(entries, s.entries[idx+1:]...)
		entry.replaced = &replacement{entry: s.entries[idx], index: idx}
	} else {
		entries = append(entries, s.entries...)
	}
	entries = append(entries, entry)

	return State{entries: entries}, nil
}

// Revert removes the last log entry. If that entry replaced an earlier answer
// to the same question, the earlier answer is restored at its old position.
// On an empty log the state is returned unchanged and ok is false.
func (m *Machine) Revert(s State) (next State, removed Entry, ok bool) {
	if len(s.entries) == 0 {
		return s, Entry{}, false
	}

	removed = s.entries[len(s.entries)-1]
	entries := append([]Entry(nil), s.entries[:len(s.entries)-1]...)

	if r := removed.replaced; r != nil {
		at := min(r.index, len(entries))
		entries = append(entries, Entry{})
		copy(entries[at+1:], entries[at:])
		entries[at] = r.entry
	}
	removed.replaced = nil

	return State{entries: entries}, removed, true
}

// Score recomputes the interest vector from the full log
func (m *Machine) Score(s State) model.ScoreVector {
	return scoring.Aggregate(m.bank, s.scoringEntries())
}

// Resume rebuilds a session from the host's flat raw-answer map, replaying it
// in canonical catalog order so map iteration order never matters. Ids the
// bank does not know are ignored; replay stops at MaxAnswers. Saved answers
// whose shape no longer fits their question are dropped, and the usable state
// is returned together with a *model.CorruptSessionError listing them.
func (m *Machine) Resume(saved map[string]string) (State, error) {
	var (
		entries []Entry
		corrupt *model.CorruptSessionError
	)

	for _, q := range m.bank.Ordered() {
		raw, ok := saved[q.ID]
		if !ok {
			continue
		}
		if len(entries) >= MaxAnswers {
			break
		}

		a, err := model.DecodeAnswer(q, raw)
		if err != nil {
			if corrupt == nil {
				corrupt = &model.CorruptSessionError{}
			}
			corrupt.Dropped = append(corrupt.Dropped, q.ID)
			corrupt.Causes = append(corrupt.Causes, err)
			continue
		}
		entries = append(entries, Entry{QuestionID: q.ID, Answer: a, Delta: scoring.Contribution(q, a)})
	}

	s := State{entries: entries}
	if corrupt != nil {
		return s, corrupt
	}
	return s, nil
}

// Flatten renders the state as the host's flat raw-answer map
func (m *Machine) Flatten(s State) (map[string]string, error) {
	out := make(map[string]string, len(s.entries))
	for _, e := range s.entries {
		raw, err := model.EncodeAnswer(e.Answer)
		if err != nil {
			return nil, fmt.Errorf("failed to flatten %s: %w", e.QuestionID, err)
		}
		out[e.QuestionID] = raw
	}
	return out, nil
}

// Journal renders the log in order, with replacement links, for hosts that
// persist it next to the flat map
func (m *Machine) Journal(s State) ([]model.AnswerRecord, error) {
	out := make([]model.AnswerRecord, len(s.entries))
	for i, e := range s.entries {
		r, err := journalRecord(e)
		if err != nil {
			return nil, err
		}
		out[i] = r
	}
	return out, nil
}

func journalRecord(e Entry) (model.AnswerRecord, error) {
	raw, err := model.EncodeAnswer(e.Answer)
	if err != nil {
		return model.AnswerRecord{}, fmt.Errorf("failed to journal %s: %w", e.QuestionID, err)
	}
	r := model.AnswerRecord{QuestionID: e.QuestionID, Raw: raw}
	if e.replaced != nil {
		prev, err := journalRecord(e.replaced.entry)
		if err != nil {
			return model.AnswerRecord{}, err
		}
		r.Replaced = &prev
		r.ReplacedIndex = e.replaced.index
	}
	return r, nil
}

// ResumeLog resumes from the flat map like Resume, then restores the order
// and replacement links recorded by Journal. A record counts only when its
// answer is still the stored one; entries no record accounts for keep their
// canonical order ahead of the journaled ones. Errors are those of Resume.
func (m *Machine) ResumeLog(saved map[string]string, log []model.AnswerRecord) (State, error) {
	s, err := m.Resume(saved)
	if len(log) == 0 {
		return s, err
	}

	pos := make(map[string]int, len(s.entries))
	for i, e := range s.entries {
		pos[e.QuestionID] = i
	}

	journaled := make([]Entry, 0, len(s.entries))
	seen := make(map[string]bool, len(log))
	for _, r := range log {
		i, ok := pos[r.QuestionID]
		if !ok || seen[r.QuestionID] || saved[r.QuestionID] != r.Raw {
			continue
		}
		seen[r.QuestionID] = true
		e := s.entries[i]
		e.replaced = m.replacementFrom(r)
		journaled = append(journaled, e)
	}

	entries := make([]Entry, 0, len(s.entries))
	for _, e := range s.entries {
		if !seen[e.QuestionID] {
			entries = append(entries, e)
		}
	}
	entries = append(entries, journaled...)
	return State{entries: entries}, err
}

// replacementFrom rebuilds the displaced-answer chain of r; a displaced answer
// that no longer decodes ends the chain
func (m *Machine) replacementFrom(r model.AnswerRecord) *replacement {
	if r.Replaced == nil {
		return nil
	}
	q, ok := m.bank.Question(r.QuestionID)
	if !ok {
		return nil
	}
	a, err := model.DecodeAnswer(q, r.Replaced.Raw)
	if err != nil {
		return nil
	}
	return &replacement{
		entry: Entry{
			QuestionID: r.QuestionID,
			Answer:     a,
			Delta:      scoring.Contribution(q, a),
			replaced:   m.replacementFrom(*r.Replaced),
		},
		index: r.ReplacedIndex,
	}
}
