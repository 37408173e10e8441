package planner

import (
	"context"
	"encoding/json"
	"errors"
	"sort"
	"sync"

	"go.uber.org/zap"
)

// DefaultStorageKey is the fixed key the whole plan is persisted under.
const DefaultStorageKey = "dayPlannerPlan"

// ErrBlobNotFound is returned by BlobStore.Load when nothing was saved under the key yet.
var ErrBlobNotFound = errors.New("blob not found")

// BlobStore is a key-value store holding opaque blobs.
type BlobStore interface {
	Load(ctx context.Context, key string) ([]byte, error)
	Save(ctx context.Context, key string, data []byte) error
}

// Store is the date-keyed plan. It is loaded once from a BlobStore and writes the
// whole map back after every mutation. Write failures are logged and never undo
// the in-memory change.
type Store struct {
	mu     sync.Mutex
	plan   Plan
	nextID int64

	blobs  BlobStore
	key    string
	logger *zap.Logger
}

func NewStore(ctx context.Context, blobs BlobStore, key string, logger *zap.Logger) *Store {
	if key == "" {
		key = DefaultStorageKey
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &Store{
		blobs:  blobs,
		key:    key,
		logger: logger,
	}
	s.plan = s.load(ctx)
	s.nextID = maxID(s.plan) + 1
	return s
}

func (s *Store) load(ctx context.Context) Plan {
	if s.blobs == nil {
		return Plan{}
	}
	raw, err := s.blobs.Load(ctx, s.key)
	if err != nil {
		if !errors.Is(err, ErrBlobNotFound) {
			s.logger.Warn("loading saved plan failed, starting empty", zap.String("key", s.key), zap.Error(err))
		}
		return Plan{}
	}
	if len(raw) == 0 {
		return Plan{}
	}

	var plan Plan
	if err := json.Unmarshal(raw, &plan); err != nil || plan == nil {
		s.logger.Warn("saved plan is malformed, starting empty", zap.String("key", s.key), zap.Error(err))
		return Plan{}
	}
	for date, items := range plan {
		if len(items) == 0 {
			delete(plan, date)
		}
	}
	s.logger.Info("plan loaded", zap.Int("dates", len(plan)))
	return plan
}

// persist must be called with s.mu held.
func (s *Store) persist(ctx context.Context) {
	if s.blobs == nil {
		return
	}
	raw, err := json.Marshal(s.plan)
	if err != nil {
		s.logger.Error("encoding plan failed", zap.Error(err))
		return
	}
	if err := s.blobs.Save(ctx, s.key, raw); err != nil {
		s.logger.Error("saving plan failed", zap.String("key", s.key), zap.Error(err))
	}
}

// mutate runs fn on the date's list and stores the result, dropping the key when
// the list becomes empty. fn reports whether it changed anything; only changes are persisted.
func (s *Store) mutate(ctx context.Context, date string, fn func(items []PlanItem) ([]PlanItem, bool)) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	items, changed := fn(s.plan[date])
	if !changed {
		return false
	}
	if len(items) == 0 {
		delete(s.plan, date)
	} else {
		s.plan[date] = items
	}
	s.persist(ctx)
	return true
}

// assignID must be called with s.mu held.
func (s *Store) assignID() int64 {
	id := s.nextID
	s.nextID++
	return id
}

// Items returns a copy of the date's ordered items.
func (s *Store) Items(date string) []PlanItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	return cloneItems(s.plan[date])
}

// Snapshot returns a deep copy of the whole plan.
func (s *Store) Snapshot() Plan {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.plan.clone()
}

// Dates returns the planned dates in ascending order.
func (s *Store) Dates() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	dates := make([]string, 0, len(s.plan))
	for d := range s.plan {
		dates = append(dates, d)
	}
	sort.Strings(dates)
	return dates
}

func maxID(p Plan) int64 {
	var max int64
	for _, items := range p {
		for _, it := range items {
			if it.ID > max {
				max = it.ID
			}
		}
	}
	return max
}
