package dataset

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"golang.org/x/sync/singleflight"

	"leadlens/internal/model"
)

// ErrDataLoad wraps any failure to load or map the static datasets. It is
// fatal for the request that hits it; a later call may retry the load.
var ErrDataLoad = errors.New("dataset load failed")

// State is the load lifecycle of the store.
type State string

const (
	StateUninitialized State = "uninitialized"
	StateLoading       State = "loading"
	StateReady         State = "ready"
	StateFailed        State = "failed"
)

// Store caches the parsed datasets for the life of the process. The first
// caller triggers the load; concurrent callers share that single in-flight
// load and all see its outcome. A failed load is retried by the next call.
type Store struct {
	source Source
	group  singleflight.Group

	mu       sync.RWMutex
	state    State
	tiers    []model.Tier
	levelOne []model.LevelOneQuestion
	levelTwo map[int]map[string]string // level -> capability -> raw cell text
}

func NewStore(source Source) *Store {
	return &Store{source: source, state: StateUninitialized}
}

// State reports the current load lifecycle state.
func (s *Store) State() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// Ensure loads the datasets if they are not loaded yet. At most one load is
// in flight at a time; every waiter shares its result.
func (s *Store) Ensure(ctx context.Context) error {
	s.mu.RLock()
	ready := s.state == StateReady
	s.mu.RUnlock()
	if ready {
		return nil
	}

	_, err, _ := s.group.Do("load", func() (any, error) {
		s.setState(StateLoading)

		raw, err := s.source.Load(ctx)
		if err != nil {
			s.setState(StateFailed)
			return nil, fmt.Errorf("%w: %v", ErrDataLoad, err)
		}

		tiers, err := mapTiers(raw.Tiers)
		if err != nil {
			s.setState(StateFailed)
			return nil, fmt.Errorf("%w: %v", ErrDataLoad, err)
		}
		levelTwo, err := mapLevelTwo(raw.LevelTwo)
		if err != nil {
			s.setState(StateFailed)
			return nil, fmt.Errorf("%w: %v", ErrDataLoad, err)
		}
		levelOne := parseLevelOne(raw.LevelOne)

		s.mu.Lock()
		s.tiers = tiers
		s.levelOne = levelOne
		s.levelTwo = levelTwo
		s.state = StateReady
		s.mu.Unlock()
		return nil, nil
	})
	return err
}

func (s *Store) setState(state State) {
	s.mu.Lock()
	s.state = state
	s.mu.Unlock()
}

// Tiers returns the responsibility-level reference table.
func (s *Store) Tiers(ctx context.Context) ([]model.Tier, error) {
	if err := s.Ensure(ctx); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.tiers, nil
}

// LevelOne returns every parsed Level-One question.
func (s *Store) LevelOne(ctx context.Context) ([]model.LevelOneQuestion, error) {
	if err := s.Ensure(ctx); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.levelOne, nil
}

// LevelOneForCapability returns the Level-One questions for one
// (capability, level) pair, in dataset order. Absence is an empty result.
func (s *Store) LevelOneForCapability(ctx context.Context, capability string, level int) ([]model.LevelOneQuestion, error) {
	all, err := s.LevelOne(ctx)
	if err != nil {
		return nil, err
	}
	var out []model.LevelOneQuestion
	for _, q := range all {
		if q.Capability == capability && q.Level == level {
			out = append(out, q)
		}
	}
	return out, nil
}

// LevelOneByLevel groups the Level-One questions for a level by capability
// area. A level that does not parse to an integer yields an empty result,
// not an error.
func (s *Store) LevelOneByLevel(ctx context.Context, level string) ([]model.CapabilityQuestions, error) {
	if err := s.Ensure(ctx); err != nil {
		return nil, err
	}
	return groupByArea(s.snapshotLevelOne(), level), nil
}

func (s *Store) snapshotLevelOne() []model.LevelOneQuestion {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.levelOne
}

// LevelTwo returns the deep-dive themes for a (capability, level) pair. A
// missing level or capability is an expected empty result, never an error,
// so the flow controller can skip a deep dive without aborting the run.
func (s *Store) LevelTwo(ctx context.Context, capability string, level int) ([]model.LevelTwoTheme, error) {
	if err := s.Ensure(ctx); err != nil {
		return nil, err
	}
	s.mu.RLock()
	cells := s.levelTwo[level]
	content := cells[canonicalCapability(capability)]
	s.mu.RUnlock()
	if content == "" {
		return nil, nil
	}
	return parseThemes(capability, level, content), nil
}
