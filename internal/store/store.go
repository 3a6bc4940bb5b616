// Package store owns the patient and incident collections. Every mutation is
// applied in memory and then written through to the durable substrate as a
// full snapshot of the affected collection before the call returns.
package store

import (
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"dental-center-management/internal/metrics"
	"dental-center-management/internal/model"
	"dental-center-management/internal/storage"
)

type Store struct {
	mu        sync.RWMutex
	patients  []model.Patient
	incidents []model.Incident

	kv  storage.KV
	log *logrus.Logger
	met *metrics.Metrics
	now func() time.Time
}

// New loads both collections from the substrate, seeding defaults when an
// entry is absent or unreadable. A corrupt entry must not fail startup: it is
// treated as absent and overwritten by the seed snapshot.
func New(kv storage.KV, log *logrus.Logger, met *metrics.Metrics) (*Store, error) {
	s := &Store{kv: kv, log: log, met: met, now: time.Now}

	patients, ok := loadEntry[model.Patient](kv, log, storage.KeyPatients)
	if !ok {
		patients = model.SeedPatients()
		if err := s.persist(storage.KeyPatients, patients); err != nil {
			return nil, fmt.Errorf("seed patients: %w", err)
		}
	}
	incidents, ok := loadEntry[model.Incident](kv, log, storage.KeyIncidents)
	if !ok {
		incidents = model.SeedIncidents()
		if err := s.persist(storage.KeyIncidents, incidents); err != nil {
			return nil, fmt.Errorf("seed incidents: %w", err)
		}
	}

	s.patients = patients
	s.incidents = incidents
	return s, nil
}

func loadEntry[T any](kv storage.KV, log *logrus.Logger, key string) ([]T, bool) {
	payload, ok, err := kv.Get(key)
	if err != nil {
		log.WithError(err).WithField("key", key).Warn("read durable entry, falling back to seed")
		return nil, false
	}
	if !ok {
		return nil, false
	}
	var out []T
	if err := json.Unmarshal(payload, &out); err != nil {
		log.WithError(err).WithField("key", key).Warn("corrupt durable entry, falling back to seed")
		return nil, false
	}
	return out, true
}

func (s *Store) persist(key string, v any) error {
	payload, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	if err := s.kv.Put(key, payload); err != nil {
		return fmt.Errorf("persist %s: %w", key, err)
	}
	return nil
}

func newID(prefix string) string {
	return prefix + "-" + uuid.New().String()
}

// Patients returns the collection in insertion order. The result is a copy;
// mutating it does not touch store state.
func (s *Store) Patients() []model.Patient {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.Patient, len(s.patients))
	for i, p := range s.patients {
		out[i] = p.Clone()
	}
	return out
}

// Incidents returns the collection in insertion order, deep-copied.
func (s *Store) Incidents() []model.Incident {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.Incident, len(s.incidents))
	for i, in := range s.incidents {
		out[i] = in.Clone()
	}
	return out
}

func (s *Store) count(entity, op string) {
	s.met.Mutations.WithLabelValues(entity, op).Inc()
}
