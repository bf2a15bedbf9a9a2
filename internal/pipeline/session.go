package pipeline

import (
	"context"
	"errors"
	"log/slog"
	"slices"
	"sync"

	"github.com/georeads/georeads/internal/aggregate"
	"github.com/georeads/georeads/internal/authors"
	"github.com/georeads/georeads/internal/domain"
	"github.com/georeads/georeads/internal/id"
	"github.com/georeads/georeads/internal/shelf"
)

// FetchErrorMessage is the single message shown when a resolution fails.
const FetchErrorMessage = "Error fetching nationalities"

// Session errors.
var (
	ErrResolveInProgress = errors.New("pipeline: resolution already in progress")
	ErrNotIdle           = errors.New("pipeline: session holds a result, reset before resolving again")
	ErrStaleResult       = errors.New("pipeline: author set changed during resolution")
)

// Snapshot is an immutable view of a session.
type Snapshot struct {
	State    domain.ResolutionState
	RunID    string
	Shelves  []string
	Authors  []domain.AuthorName
	Records  []domain.NormalizedNationalityRecord
	Counts   domain.CountryCountMap
	Unmapped []string
	Cached   int
	Error    string
}

// Session holds one user's reading log and the state of its nationality
// resolution. At most one resolution runs at a time, and a result is only
// kept if the author set it was computed for is still current.
type Session struct {
	resolver *Resolver
	logger   *slog.Logger

	mu         sync.Mutex
	rows       []domain.RawRow
	shelves    domain.ShelfSelection
	authors    []domain.AuthorName
	generation uint64

	state    domain.ResolutionState
	runID    string
	records  []domain.NormalizedNationalityRecord
	counts   domain.CountryCountMap
	unmapped []string
	cached   int
	errMsg   string
}

// NewSession creates an idle session with the default shelf selection.
func NewSession(resolver *Resolver, logger *slog.Logger) *Session {
	return &Session{
		resolver: resolver,
		logger:   logger,
		shelves:  shelf.DefaultSelection(),
		authors:  []domain.AuthorName{},
		state:    domain.ResolutionIdle,
		counts:   domain.CountryCountMap{},
	}
}

// SetRows replaces the uploaded rows and re-derives the author set.
func (s *Session) SetRows(rows []domain.RawRow) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rows = slices.Clone(rows)
	s.rederiveLocked()
}

// SetShelves replaces the shelf selection and re-derives the author set.
// Selecting the shelves already in effect changes nothing.
func (s *Session) SetShelves(sel domain.ShelfSelection) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if sel.Equal(s.shelves) {
		return
	}
	s.shelves = sel
	s.rederiveLocked()
}

// Authors returns a copy of the current author set.
func (s *Session) Authors() []domain.AuthorName {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.authors)
}

// State returns the current resolution state.
func (s *Session) State() domain.ResolutionState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Snapshot returns a copy of the session's current view.
func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

// Reset returns a finished session to Idle, keeping its author set. It is a
// no-op while a resolution is in flight or when nothing has finished.
func (s *Session) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.state.Terminal() {
		return
	}
	s.clearResultLocked()
	s.state = domain.ResolutionIdle
}

// Resolve runs one resolution for the current author set. It is only legal
// from Idle. The lookup happens without holding the session lock; if the
// author set changes meanwhile the result is discarded with ErrStaleResult.
func (s *Session) Resolve(ctx context.Context) (Snapshot, error) {
	s.mu.Lock()
	if !s.state.CanResolve() {
		err := ErrResolveInProgress
		if s.state.Terminal() {
			err = ErrNotIdle
		}
		s.mu.Unlock()
		return Snapshot{}, err
	}

	runID, err := id.NewRunID()
	if err != nil {
		s.mu.Unlock()
		return Snapshot{}, err
	}

	authorSnapshot := slices.Clone(s.authors)
	generation := s.generation
	s.state = domain.ResolutionResolving
	s.runID = runID
	s.mu.Unlock()

	logger := s.logger.With("run_id", runID, "authors", len(authorSnapshot))
	logger.Debug("resolving nationalities")

	outcome, resolveErr := s.resolver.Resolve(ctx, authorSnapshot)

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.generation != generation {
		logger.Debug("discarding stale resolution")
		return s.snapshotLocked(), ErrStaleResult
	}

	if resolveErr != nil {
		logger.Error("nationality resolution failed", "error", resolveErr)
		s.clearResultLocked()
		s.state = domain.ResolutionFailed
		s.errMsg = FetchErrorMessage
		return s.snapshotLocked(), resolveErr
	}

	s.records = outcome.Records
	s.counts = aggregate.Aggregate(outcome.Records)
	s.unmapped = outcome.Unmapped
	s.cached = outcome.Cached
	s.errMsg = ""
	s.state = domain.ResolutionResolved

	logger.Info("nationalities resolved",
		"countries", len(s.counts),
		"attributed", s.counts.Total(),
		"unmapped", len(s.unmapped),
		"cached", s.cached,
	)
	return s.snapshotLocked(), nil
}

// rederiveLocked recomputes the author set and drops any result. A
// resolution in flight will find the generation changed and discard itself.
func (s *Session) rederiveLocked() {
	s.authors = authors.Extract(shelf.Filter(s.rows, s.shelves))
	s.generation++
	s.clearResultLocked()
	s.state = domain.ResolutionIdle
}

func (s *Session) clearResultLocked() {
	s.runID = ""
	s.records = nil
	s.counts = domain.CountryCountMap{}
	s.unmapped = nil
	s.cached = 0
	s.errMsg = ""
}

func (s *Session) snapshotLocked() Snapshot {
	return Snapshot{
		State:    s.state,
		RunID:    s.runID,
		Shelves:  s.shelves.Shelves(),
		Authors:  slices.Clone(s.authors),
		Records:  slices.Clone(s.records),
		Counts:   s.counts.Clone(),
		Unmapped: slices.Clone(s.unmapped),
		Cached:   s.cached,
		Error:    s.errMsg,
	}
}
