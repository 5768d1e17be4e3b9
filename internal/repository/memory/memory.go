// Package memory holds in-process implementations of the repository
// interfaces. They back the APP_STORE=memory dev mode and the test suite,
// and are safe for concurrent handlers (a single RWMutex per store, which
// is all the serialization this workload needs).
package memory

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/2400031249Gowtham/Certification-Trackerr/internal/models"
	"github.com/2400031249Gowtham/Certification-Trackerr/internal/repository"
)

func NewRepositories() repository.Repositories {
	return repository.Repositories{
		Users:          NewUsers(),
		Certifications: NewCertifications(),
	}
}

type usersStore struct {
	mu      sync.RWMutex
	byID    map[string]models.User
	byName  map[string]string // username -> id
	ordered []string          // ids in insertion order
}

func NewUsers() repository.Users {
	return &usersStore{
		byID:   make(map[string]models.User),
		byName: make(map[string]string),
	}
}

func (s *usersStore) Create(_ context.Context, u models.User) (models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.byName[u.Username]; exists {
		return models.User{}, repository.ErrUsernameTaken
	}
	u.ID = uuid.NewString()
	u.CreatedAt = time.Now().UTC()
	s.byID[u.ID] = u
	s.byName[u.Username] = u.ID
	s.ordered = append(s.ordered, u.ID)
	return u, nil
}

func (s *usersStore) GetByID(_ context.Context, id string) (models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	u, ok := s.byID[id]
	if !ok {
		return models.User{}, repository.ErrNotFound
	}
	return u, nil
}

func (s *usersStore) GetByUsername(_ context.Context, username string) (models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	id, ok := s.byName[username]
	if !ok {
		return models.User{}, repository.ErrNotFound
	}
	return s.byID[id], nil
}

func (s *usersStore) List(_ context.Context) ([]models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.User, 0, len(s.ordered))
	for _, id := range s.ordered {
		out = append(out, s.byID[id])
	}
	return out, nil
}

func (s *usersStore) Count(_ context.Context) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.ordered), nil
}

type certsStore struct {
	mu    sync.RWMutex
	certs []models.Certification // insertion order
	index map[string]int         // id -> position in certs
}

func NewCertifications() repository.Certifications {
	return &certsStore{index: make(map[string]int)}
}

func (s *certsStore) List(_ context.Context) ([]models.Certification, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Certification, len(s.certs))
	copy(out, s.certs)
	return out, nil
}

func (s *certsStore) ListByUser(_ context.Context, userID string) ([]models.Certification, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Certification, 0)
	if userID == "" {
		return out, nil
	}
	for i := range s.certs {
		if s.certs[i].UserID == userID {
			out = append(out, s.certs[i])
		}
	}
	return out, nil
}

func (s *certsStore) GetByID(_ context.Context, id string) (models.Certification, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	i, ok := s.index[id]
	if !ok {
		return models.Certification{}, repository.ErrNotFound
	}
	return s.certs[i], nil
}

func (s *certsStore) Create(_ context.Context, c models.Certification) (models.Certification, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c.ID = uuid.NewString()
	now := time.Now().UTC()
	c.CreatedAt = now
	c.UpdatedAt = now
	s.index[c.ID] = len(s.certs)
	s.certs = append(s.certs, c)
	return c, nil
}

func (s *certsStore) Update(_ context.Context, id string, patch models.CertificationPatch) (models.Certification, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	i, ok := s.index[id]
	if !ok {
		return models.Certification{}, repository.ErrNotFound
	}
	c := s.certs[i]
	patch.Apply(&c)
	c.ID = id // the id itself is never patchable
	c.UpdatedAt = time.Now().UTC()
	s.certs[i] = c
	return c, nil
}

func (s *certsStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	i, ok := s.index[id]
	if !ok {
		return nil // idempotent by design choice
	}
	s.certs = append(s.certs[:i], s.certs[i+1:]...)
	delete(s.index, id)
	for j := i; j < len(s.certs); j++ {
		s.index[s.certs[j].ID] = j
	}
	return nil
}
