package roster

import (
	"errors"
	"sync"

	"github.com/google/uuid"

	"github.com/shiftflow/roster-api-go/pkg/models"
)

// ErrSessionNotFound is returned for unknown or expired session ids
var ErrSessionNotFound = errors.New("session not found")

// Store is the in-process session registry. Sessions are transient by
// design: they live only in memory and die with the process. The store
// serializes all access to its sessions, which keeps every roster mutation
// single-threaded the way the engine expects.
type Store struct {
	mu       sync.Mutex
	sessions map[string]*Session
}

// NewStore creates an empty session store
func NewStore() *Store {
	return &Store{sessions: make(map[string]*Session)}
}

// Create registers a new session and returns its id
func (st *Store) Create(sess *Session) string {
	st.mu.Lock()
	defer st.mu.Unlock()
	id := uuid.NewString()
	st.sessions[id] = sess
	return id
}

// With runs fn with exclusive access to the session. fn must not call
// back into the store.
func (st *Store) With(id string, fn func(*Session) error) error {
	st.mu.Lock()
	defer st.mu.Unlock()
	sess, ok := st.sessions[id]
	if !ok {
		return ErrSessionNotFound
	}
	return fn(sess)
}

// SetAnalysis stores an analysis result on the session. Overlapping
// requests are not ordered: whichever completes last wins, matching the
// fire-and-forget contract of the analyze step. Results for deleted
// sessions are dropped.
func (st *Store) SetAnalysis(id string, res *models.AnalysisResult) {
	_ = st.With(id, func(sess *Session) error {
		sess.Analysis = res
		return nil
	})
}

// Delete removes a session from the store
func (st *Store) Delete(id string) {
	st.mu.Lock()
	defer st.mu.Unlock()
	delete(st.sessions, id)
}
