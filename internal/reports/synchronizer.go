package reports

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"github.com/vkstore/resume-dashboard/internal/api"
	"github.com/vkstore/resume-dashboard/internal/types"
)

// SignInMessage is surfaced when a screen mounts without a session.
const SignInMessage = "Please sign in to view your reports."

// RecentCount is how many reports the dashboard shows.
const RecentCount = 3

// State is the synchronizer's lifecycle position.
type State int

const (
	// Loading is the initial state; a fetch has not settled yet.
	Loading State = iota
	// Ready means the in-memory collection reflects the last settled fetch.
	Ready
	// Error means the last fetch failed; the collection is empty.
	Error
)

// Gateway is the slice of the API the synchronizer depends on. Both calls
// settle without Go errors; failures arrive as data.
type Gateway interface {
	ListReports(ctx context.Context, email string) api.Envelope
	DeleteReport(ctx context.Context, id string) types.Status
}

// Synchronizer owns the in-memory report collection for one screen instance.
// Fetch and delete settle independently; whichever lands last wins the
// collection. After Close, late results are discarded without effect.
type Synchronizer struct {
	gateway    Gateway
	identifier string
	logger     *zap.Logger

	mu      sync.Mutex
	state   State
	reports []types.Report
	message string
	closed  bool
}

// NewSynchronizer creates a synchronizer for one identifier in Loading state.
// The identifier may be empty; Load then fails fast without touching the API.
func NewSynchronizer(gateway Gateway, identifier string, logger *zap.Logger) *Synchronizer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Synchronizer{
		gateway:    gateway,
		identifier: identifier,
		logger:     logger,
		state:      Loading,
	}
}

// Load fetches and normalizes the collection. With no identifier it reaches
// Error immediately and never calls the gateway.
func (s *Synchronizer) Load(ctx context.Context) {
	if s.identifier == "" {
		s.settle(Error, nil, SignInMessage)
		return
	}

	envelope := s.gateway.ListReports(ctx, s.identifier)
	collection, message, ok := Normalize(envelope)
	if !ok {
		s.logger.Info("report fetch failed",
			zap.String("identifier", s.identifier), zap.String("message", message))
		s.settle(Error, nil, message)
		return
	}
	s.settle(Ready, collection, "")
}

// Delete asks the server to remove one report and, only on a confirmed true
// status, filters the matching entry out of the local collection in a single
// order-preserving pass. On failure the collection is untouched and the
// server's message is returned. Deleting an id the collection does not hold
// is a local no-op.
func (s *Synchronizer) Delete(ctx context.Context, id string) types.Status {
	status := s.gateway.DeleteReport(ctx, id)
	if !status.Status {
		return status
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return status
	}
	kept := s.reports[:0:0]
	for _, r := range s.reports {
		if !r.ID.Equals(id) {
			kept = append(kept, r)
		}
	}
	s.reports = kept
	return status
}

// settle records a fetch outcome unless the synchronizer was closed first.
func (s *Synchronizer) settle(state State, collection []types.Report, message string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.state = state
	s.reports = collection
	s.message = message
}

// Close marks the consuming screen as torn down. Later fetch results and
// delete reconciliations become no-ops.
func (s *Synchronizer) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
}

// State returns the current lifecycle state.
func (s *Synchronizer) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Message returns the error message, empty unless State is Error.
func (s *Synchronizer) Message() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.message
}

// Reports returns the collection in server order.
func (s *Synchronizer) Reports() []types.Report {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.reports
}

// Recent returns the first RecentCount reports in server order. The server's
// ordering is trusted verbatim; no client-side sort happens.
func (s *Synchronizer) Recent() []types.Report {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.reports) <= RecentCount {
		return s.reports
	}
	return s.reports[:RecentCount]
}

// Find returns the report whose id matches the given string, comparing
// canonical forms so a numeric wire id matches its string rendering.
func (s *Synchronizer) Find(id string) (types.Report, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, r := range s.reports {
		if r.ID.Equals(id) {
			return r, true
		}
	}
	return types.Report{}, false
}
