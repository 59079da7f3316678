package session

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/nikmy/meowcal/pkg/calendar"
	"github.com/nikmy/meowcal/pkg/errors"
	"github.com/nikmy/meowcal/pkg/logger"
)

var ErrNotMounted = errors.Error("session: widget is not mounted")

const (
	DefaultIdle  = 30 * time.Minute
	DefaultSweep = time.Minute
)

// Config controls eviction of idle widgets. Zero values take the defaults,
// a negative value turns eviction off.
type Config struct {
	Idle  time.Duration `yaml:"idle"`
	Sweep time.Duration `yaml:"sweep"`
}

func (c Config) withDefaults() Config {
	if c.Idle == 0 {
		c.Idle = DefaultIdle
	}
	if c.Sweep == 0 {
		c.Sweep = DefaultSweep
	}
	return c
}

// Instance is one mounted widget plus what its host remembers about it.
type Instance struct {
	ID       string
	Widget   *calendar.Widget
	Selected time.Time

	mu       sync.Mutex
	lastSeen time.Time
}

// Factory builds the widget of a freshly mounted instance.
type Factory func(inst *Instance) (*calendar.Widget, error)

func NewStore(cfg Config, factory Factory, log logger.Logger) *Store {
	cfg = cfg.withDefaults()
	return &Store{
		instances: make(map[string]*Instance),
		factory:   factory,
		idle:      cfg.Idle,
		sweep:     cfg.Sweep,
		now:       time.Now,
		log:       log.With("sessions"),
	}
}

type Store struct {
	mu        sync.Mutex
	instances map[string]*Instance

	factory Factory
	idle    time.Duration
	sweep   time.Duration
	now     func() time.Time
	log     logger.Logger
}

func (s *Store) Mount() (string, error) {
	inst := &Instance{ID: uuid.NewString(), lastSeen: s.now()}

	w, err := s.factory(inst)
	if err != nil {
		return "", errors.WrapFail(err, "build widget")
	}
	inst.Widget = w

	s.mu.Lock()
	s.instances[inst.ID] = inst
	s.mu.Unlock()

	s.log.Debugf("mounted %s", inst.ID)
	return inst.ID, nil
}

// Do runs fn with exclusive access to the instance.
func (s *Store) Do(id string, fn func(inst *Instance) error) error {
	s.mu.Lock()
	inst, ok := s.instances[id]
	s.mu.Unlock()

	if !ok {
		return ErrNotMounted
	}

	inst.mu.Lock()
	defer inst.mu.Unlock()

	inst.lastSeen = s.now()
	return fn(inst)
}

func (s *Store) Unmount(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, ok := s.instances[id]
	delete(s.instances, id)
	return ok
}

func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.instances)
}

// Run evicts idle instances until ctx is done. It returns immediately when
// eviction is turned off.
func (s *Store) Run(ctx context.Context) error {
	if s.idle <= 0 || s.sweep <= 0 {
		return nil
	}

	ticker := time.NewTicker(s.sweep)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			if n := s.evict(); n > 0 {
				s.log.Infof("evicted %d idle widgets", n)
			}
		case <-ctx.Done():
			return nil
		}
	}
}

func (s *Store) evict() int {
	deadline := s.now().Add(-s.idle)

	s.mu.Lock()
	defer s.mu.Unlock()

	evicted := 0
	for id, inst := range s.instances {
		if !inst.mu.TryLock() {
			continue
		}
		stale := inst.lastSeen.Before(deadline)
		inst.mu.Unlock()

		if stale {
			delete(s.instances, id)
			evicted++
		}
	}
	return evicted
}
