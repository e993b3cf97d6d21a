// Package memory implements the storage contract against plain in-process
// maps. Handlers run on separate goroutines, so a single mutex guards every
// counter increment and map write.
package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"officehub/internal/models"
)

// Store holds all entities in maps keyed by id. Ids are per-entity monotonic
// counters starting at 1 and are never reused, even after deletes.
type Store struct {
	mu sync.Mutex

	users      map[int]models.User
	projects   map[int]models.Project
	tasks      map[int]models.Task
	employees  map[int]models.Employee
	finances   map[int]models.Finance
	attendance map[int]models.Attendance

	nextID map[string]int
}

// New constructs an empty store. Each test or process gets its own isolated
// instance; there is no package-level state.
func New() *Store {
	return &Store{
		users:      make(map[int]models.User),
		projects:   make(map[int]models.Project),
		tasks:      make(map[int]models.Task),
		employees:  make(map[int]models.Employee),
		finances:   make(map[int]models.Finance),
		attendance: make(map[int]models.Attendance),
		nextID: map[string]int{
			"users":      1,
			"projects":   1,
			"tasks":      1,
			"employees":  1,
			"finances":   1,
			"attendance": 1,
		},
	}
}

// Close is a no-op; the store has no external resources.
func (s *Store) Close() error { return nil }

// next hands out the next id for an entity. Callers must hold s.mu.
func (s *Store) next(entity string) int {
	id := s.nextID[entity]
	s.nextID[entity]++
	return id
}

// GetUser returns the user by id, or nil when absent.
func (s *Store) GetUser(_ context.Context, id int) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if u, ok := s.users[id]; ok {
		return &u, nil
	}
	return nil, nil
}

// GetUserByUsername returns the user with the given username, or nil.
func (s *Store) GetUserByUsername(_ context.Context, username string) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.Username == username {
			return &u, nil
		}
	}
	return nil, nil
}

// CreateUser stores a new user, enforcing username uniqueness.
func (s *Store) CreateUser(_ context.Context, u models.User) (models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, existing := range s.users {
		if existing.Username == u.Username {
			return models.User{}, fmt.Errorf("username %q already taken", u.Username)
		}
	}
	u.ID = s.next("users")
	s.users[u.ID] = u
	return u, nil
}

// sortedByID returns map values ordered by ascending id, which for monotonic
// counters equals insertion order.
func sortedByID[T any](m map[int]T, id func(T) int) []T {
	out := make([]T, 0, len(m))
	for _, v := range m {
		out = append(out, v)
	}
	sort.Slice(out, func(i, j int) bool { return id(out[i]) < id(out[j]) })
	return out
}
