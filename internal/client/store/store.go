package store

import (
	"context"
	"slices"
	"sync"

	"github.com/dmitrijs2005/filedesk/internal/client/client"
	"github.com/dmitrijs2005/filedesk/internal/client/models"
	"github.com/dmitrijs2005/filedesk/internal/logging"
)

// State is a point-in-time view of the store. Err is empty when there is no
// error.
type State struct {
	Files   []models.FileRecord
	Loading bool
	Err     string
}

type FileStore struct {
	client client.Client
	logger logging.Logger

	mu    sync.RWMutex
	state State

	subMu   sync.Mutex
	subs    map[int]func(State)
	nextSub int
}

func New(c client.Client, logger logging.Logger) *FileStore {
	return &FileStore{
		client: c,
		logger: logger,
		state:  State{Files: []models.FileRecord{}},
		subs:   make(map[int]func(State)),
	}
}

// FetchFiles replaces the list with the backend's. On failure the list is
// kept and Err is set.
func (s *FileStore) FetchFiles(ctx context.Context) {
	s.begin()
	defer s.setLoading(false)

	files, err := s.client.ListFiles(ctx)
	if err != nil {
		s.logger.Error(ctx, "fetch files failed", "error", err)
		s.setError(messageOf(err, client.MsgFetchFailed))
		return
	}
	s.setFiles(files)
}

// DeleteFile deletes id on the backend and, on success, refetches the list
// once. Nothing is removed locally.
func (s *FileStore) DeleteFile(ctx context.Context, id string) {
	if !s.deleteFile(ctx, id) {
		return
	}
	s.FetchFiles(ctx)
}

func (s *FileStore) deleteFile(ctx context.Context, id string) bool {
	s.begin()
	defer s.setLoading(false)

	if err := s.client.DeleteFile(ctx, id); err != nil {
		s.logger.Error(ctx, "delete file failed", "id", id, "error", err)
		s.setError(messageOf(err, client.MsgDeleteFailed))
		return false
	}
	return true
}

func (s *FileStore) begin() {
	s.setError("")
	s.setLoading(true)
}

// Files returns a copy of the current list.
func (s *FileStore) Files() []models.FileRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.state.Files)
}

func (s *FileStore) Loading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.Loading
}

func (s *FileStore) Err() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.Err
}

func (s *FileStore) Snapshot() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshotLocked()
}

func (s *FileStore) snapshotLocked() State {
	st := s.state
	st.Files = slices.Clone(s.state.Files)
	return st
}

// Subscribe registers fn to receive a snapshot after every state change.
// Calls happen on the goroutine running the action.
func (s *FileStore) Subscribe(fn func(State)) (unsubscribe func()) {
	s.subMu.Lock()
	id := s.nextSub
	s.nextSub++
	s.subs[id] = fn
	s.subMu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			s.subMu.Lock()
			delete(s.subs, id)
			s.subMu.Unlock()
		})
	}
}

func (s *FileStore) setFiles(files []models.FileRecord) {
	if files == nil {
		files = []models.FileRecord{}
	}
	s.mutate(func(st *State) { st.Files = files })
}

func (s *FileStore) setLoading(v bool) {
	s.mutate(func(st *State) { st.Loading = v })
}

func (s *FileStore) setError(msg string) {
	s.mutate(func(st *State) { st.Err = msg })
}

func (s *FileStore) mutate(fn func(*State)) {
	s.mu.Lock()
	fn(&s.state)
	snap := s.snapshotLocked()
	s.mu.Unlock()

	s.subMu.Lock()
	subs := make([]func(State), 0, len(s.subs))
	for _, sub := range s.subs {
		subs = append(subs, sub)
	}
	s.subMu.Unlock()

	for _, sub := range subs {
		sub(snap)
	}
}

func messageOf(err error, fallback string) string {
	if msg := err.Error(); msg != "" {
		return msg
	}
	return fallback
}
