package chat

import (
	"fmt"
	"os"
	"path/filepath"

	json "github.com/goccy/go-json"
	"go.uber.org/zap"
)

// Storage keys, mirroring the web client's local-storage entries.
const (
	historyKey    = "chatHistory"
	firstVisitKey = "isFirstVisit"
)

// Store persists the conversation history and the first-visit flag between
// restarts. Corrupt stored data is discarded, never fatal.
type Store interface {
	LoadHistory() ([]Message, bool)
	SaveHistory(messages []Message) error
	LoadFirstVisit() bool
	SaveFirstVisit(firstVisit bool) error
	Clear() error
}

type fileStore struct {
	dir    string
	logger *zap.Logger
}

// NewFileStore keeps one JSON file per storage key under dir.
func NewFileStore(dir string, logger *zap.Logger) (Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating data dir: %w", err)
	}
	return &fileStore{dir: dir, logger: logger}, nil
}

func (s *fileStore) path(key string) string {
	return filepath.Join(s.dir, key+".json")
}

func (s *fileStore) LoadHistory() ([]Message, bool) {
	data, err := os.ReadFile(s.path(historyKey))
	if err != nil {
		return nil, false
	}

	var messages []Message
	if err := json.Unmarshal(data, &messages); err != nil {
		// Unparseable history is dropped and replaced by the welcome
		// message on the next save.
		s.logger.Warn("discarding corrupt chat history", zap.Error(err))
		os.Remove(s.path(historyKey))
		return nil, false
	}
	return messages, true
}

func (s *fileStore) SaveHistory(messages []Message) error {
	data, err := json.Marshal(messages)
	if err != nil {
		return fmt.Errorf("marshaling chat history: %w", err)
	}
	return os.WriteFile(s.path(historyKey), data, 0o644)
}

func (s *fileStore) LoadFirstVisit() bool {
	data, err := os.ReadFile(s.path(firstVisitKey))
	if err != nil {
		return true
	}
	var firstVisit bool
	if err := json.Unmarshal(data, &firstVisit); err != nil {
		s.logger.Warn("discarding corrupt first-visit flag", zap.Error(err))
		os.Remove(s.path(firstVisitKey))
		return true
	}
	return firstVisit
}

func (s *fileStore) SaveFirstVisit(firstVisit bool) error {
	data, err := json.Marshal(firstVisit)
	if err != nil {
		return err
	}
	return os.WriteFile(s.path(firstVisitKey), data, 0o644)
}

func (s *fileStore) Clear() error {
	if err := os.Remove(s.path(historyKey)); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

// memoryStore backs tests and runs without a writable data directory.
type memoryStore struct {
	messages   []Message
	hasHistory bool
	firstVisit bool
}

func NewMemoryStore() Store {
	return &memoryStore{firstVisit: true}
}

func (s *memoryStore) LoadHistory() ([]Message, bool) {
	if !s.hasHistory {
		return nil, false
	}
	out := make([]Message, len(s.messages))
	copy(out, s.messages)
	return out, true
}

func (s *memoryStore) SaveHistory(messages []Message) error {
	s.messages = make([]Message, len(messages))
	copy(s.messages, messages)
	s.hasHistory = true
	return nil
}

func (s *memoryStore) LoadFirstVisit() bool { return s.firstVisit }

func (s *memoryStore) SaveFirstVisit(firstVisit bool) error {
	s.firstVisit = firstVisit
	return nil
}

func (s *memoryStore) Clear() error {
	s.messages = nil
	s.hasHistory = false
	return nil
}
