package store

import (
	"dental-center-management/internal/model"
	"dental-center-management/internal/storage"
)

// AddIncident assigns an identifier and creation timestamp and writes the
// incident snapshot through. The patient reference is deliberately not
// checked: the original system accepts orphaned incidents, and rejecting them
// here would change observable behavior. It is logged so the gap is visible.
func (s *Store) AddIncident(draft model.IncidentDraft) (*model.Incident, error) {
	if err := draft.Validate(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.hasPatientLocked(draft.PatientID) {
		s.log.WithField("patient_id", draft.PatientID).Warn("incident references unknown patient")
	}

	in := model.Incident{
		ID:              newID("i"),
		PatientID:       draft.PatientID,
		Title:           draft.Title,
		Description:     draft.Description,
		Comments:        draft.Comments,
		AppointmentDate: draft.AppointmentDate,
		Cost:            draft.Cost,
		Treatment:       draft.Treatment,
		Status:          draft.Status,
		NextDate:        draft.NextDate,
		Files:           append([]model.FileAttachment{}, draft.Files...),
		CreatedAt:       s.now().UTC(),
	}
	s.incidents = append(s.incidents, in)
	if err := s.persist(storage.KeyIncidents, s.incidents); err != nil {
		return nil, err
	}
	s.count("incident", "add")
	out := in.Clone()
	return &out, nil
}

// UpdateIncident merges the patch into the record with the given id. Unknown
// ids are silent no-ops, same as patients.
func (s *Store) UpdateIncident(id string, patch model.IncidentPatch) error {
	if err := patch.Validate(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.incidents {
		if s.incidents[i].ID != id {
			continue
		}
		patch.Apply(&s.incidents[i])
		if err := s.persist(storage.KeyIncidents, s.incidents); err != nil {
			return err
		}
		s.count("incident", "update")
		return nil
	}
	s.log.WithField("incident_id", id).Debug("update for unknown incident ignored")
	return nil
}

// DeleteIncident removes the record with the given id; no-op if absent.
func (s *Store) DeleteIncident(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	incidents := s.incidents[:0:0]
	for _, in := range s.incidents {
		if in.ID != id {
			incidents = append(incidents, in)
		}
	}
	s.incidents = incidents
	if err := s.persist(storage.KeyIncidents, s.incidents); err != nil {
		return err
	}
	s.count("incident", "delete")
	return nil
}

// PatientIncidents returns every incident owned by patientID in collection
// order. Pure read; results are deep copies.
func (s *Store) PatientIncidents(patientID string) []model.Incident {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []model.Incident
	for _, in := range s.incidents {
		if in.PatientID == patientID {
			out = append(out, in.Clone())
		}
	}
	return out
}

func (s *Store) hasPatientLocked(id string) bool {
	for _, p := range s.patients {
		if p.ID == id {
			return true
		}
	}
	return false
}
