// Package localstore persists offline quiz runs in an embedded badger
// database so an interrupted terminal session can be resumed.
package localstore

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/dgraph-io/badger/v4"
	"github.com/goccy/go-json"

	"careercompass/internal/model"
)

const (
	answerKeyPrefix  = "answer:"
	logKeyPrefix     = "log:"
	sessionKeyPrefix = "session:"
)

var ErrSessionNotFound = errors.New("local session not found")

// Store keeps raw answers and session metadata in badger. It satisfies the
// same answer-store contract as the redis cache.
type Store struct {
	db *badger.DB
}

// Open opens (or creates) the store at path
func Open(path string) (*Store, error) {
	opts := badger.DefaultOptions(path)
	opts.Logger = nil
	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open local store %s: %w", path, err)
	}
	return &Store{db: db}, nil
}

// OpenInMemory opens a store that lives only as long as the process
func OpenInMemory() (*Store, error) {
	opts := badger.DefaultOptions("").WithInMemory(true)
	opts.Logger = nil
	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open in-memory store: %w", err)
	}
	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

func answerPrefix(sessionID string) []byte {
	return []byte(answerKeyPrefix + sessionID + ":")
}

func answerKey(sessionID, questionID string) []byte {
	return []byte(answerKeyPrefix + sessionID + ":" + questionID)
}

// Load returns the session's raw answers, empty when none exist
func (s *Store) Load(_ context.Context, sessionID string) (map[string]string, error) {
	out := make(map[string]string)
	prefix := answerPrefix(sessionID)

	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = prefix
		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			item := it.Item()
			questionID := strings.TrimPrefix(string(item.Key()), string(prefix))
			err := item.Value(func(val []byte) error {
				out[questionID] = string(val)
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("load answers: %w", err)
	}
	return out, nil
}

func (s *Store) Put(_ context.Context, sessionID, questionID, raw string) error {
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set(answerKey(sessionID, questionID), []byte(raw))
	})
}

func (s *Store) Remove(_ context.Context, sessionID, questionID string) error {
	return s.db.Update(func(txn *badger.Txn) error {
		err := txn.Delete(answerKey(sessionID, questionID))
		if errors.Is(err, badger.ErrKeyNotFound) {
			return nil
		}
		return err
	})
}

// Clear drops the session's answers and metadata
func (s *Store) Clear(_ context.Context, sessionID string) error {
	if err := s.db.DropPrefix(answerPrefix(sessionID)); err != nil {
		return fmt.Errorf("drop answers: %w", err)
	}
	return s.db.Update(func(txn *badger.Txn) error {
		for _, key := range []string{logKeyPrefix + sessionID, sessionKeyPrefix + sessionID} {
			err := txn.Delete([]byte(key))
			if err != nil && !errors.Is(err, badger.ErrKeyNotFound) {
				return err
			}
		}
		return nil
	})
}

// LoadLog returns the session's answer log, nil when none exists
func (s *Store) LoadLog(_ context.Context, sessionID string) ([]model.AnswerRecord, error) {
	var log []model.AnswerRecord
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(logKeyPrefix + sessionID))
		if errors.Is(err, badger.ErrKeyNotFound) {
			return nil
		}
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, &log)
		})
	})
	if err != nil {
		return nil, fmt.Errorf("load answer log: %w", err)
	}
	return log, nil
}

// SaveLog replaces the session's answer log
func (s *Store) SaveLog(_ context.Context, sessionID string, log []model.AnswerRecord) error {
	data, err := json.Marshal(log)
	if err != nil {
		return fmt.Errorf("marshal answer log: %w", err)
	}
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(logKeyPrefix+sessionID), data)
	})
}

// SaveSession stores the session metadata
func (s *Store) SaveSession(_ context.Context, session *model.AssessmentSession) error {
	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("marshal session: %w", err)
	}
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(sessionKeyPrefix+session.ID), data)
	})
}

// GetSession returns ErrSessionNotFound for an unknown id
func (s *Store) GetSession(_ context.Context, id string) (*model.AssessmentSession, error) {
	var session model.AssessmentSession
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(sessionKeyPrefix + id))
		if errors.Is(err, badger.ErrKeyNotFound) {
			return ErrSessionNotFound
		}
		if err != nil {
			return fmt.Errorf("get session: %w", err)
		}
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, &session)
		})
	})
	if err != nil {
		return nil, err
	}
	return &session, nil
}

// Sessions lists every stored session id in key order
func (s *Store) Sessions(_ context.Context) ([]string, error) {
	var ids []string
	prefix := []byte(sessionKeyPrefix)
	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = false
		opts.Prefix = prefix
		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			ids = append(ids, strings.TrimPrefix(string(it.Item().Key()), sessionKeyPrefix))
		}
		return nil
	})
	return ids, err
}
