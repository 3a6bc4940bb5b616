package store

import (
	"dental-center-management/internal/model"
	"dental-center-management/internal/storage"
)

// AddPatient assigns an identifier and creation timestamp, appends the record
// and writes the patient snapshot through.
func (s *Store) AddPatient(draft model.PatientDraft) (*model.Patient, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p := model.Patient{
		ID:               newID("p"),
		Name:             draft.Name,
		DOB:              draft.DOB,
		Contact:          draft.Contact,
		Email:            draft.Email,
		Address:          draft.Address,
		HealthInfo:       draft.HealthInfo,
		BloodGroup:       draft.BloodGroup,
		Allergies:        draft.Allergies,
		EmergencyContact: draft.EmergencyContact,
		CreatedAt:        s.now().UTC(),
	}
	s.patients = append(s.patients, p)
	if err := s.persist(storage.KeyPatients, s.patients); err != nil {
		return nil, err
	}
	s.count("patient", "add")
	out := p.Clone()
	return &out, nil
}

// UpdatePatient merges the patch into the record with the given id. An
// unknown id is a silent no-op, not an error; the portal's forms never
// distinguish the two.
func (s *Store) UpdatePatient(id string, patch model.PatientPatch) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.patients {
		if s.patients[i].ID != id {
			continue
		}
		patch.Apply(&s.patients[i])
		if err := s.persist(storage.KeyPatients, s.patients); err != nil {
			return err
		}
		s.count("patient", "update")
		return nil
	}
	s.log.WithField("patient_id", id).Debug("update for unknown patient ignored")
	return nil
}

// DeletePatient removes the record and cascades to every incident owned by
// it, persisting both collections in the same logical operation. Incidents
// are filtered even when the patient itself is absent, so orphans referencing
// the id are swept too.
func (s *Store) DeletePatient(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	patients := s.patients[:0:0]
	for _, p := range s.patients {
		if p.ID != id {
			patients = append(patients, p)
		}
	}
	incidents := s.incidents[:0:0]
	for _, in := range s.incidents {
		if in.PatientID != id {
			incidents = append(incidents, in)
		}
	}

	s.patients = patients
	s.incidents = incidents
	if err := s.persist(storage.KeyPatients, s.patients); err != nil {
		return err
	}
	if err := s.persist(storage.KeyIncidents, s.incidents); err != nil {
		return err
	}
	s.count("patient", "delete")
	return nil
}
