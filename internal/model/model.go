package model

import (
	"errors"
	"fmt"
	"time"
)

// Role of an authenticated portal identity.
type Role string

const (
	RoleAdmin   Role = "Admin"
	RolePatient Role = "Patient"
)

// IncidentStatus tracks a treatment event through its lifecycle.
type IncidentStatus string

const (
	StatusScheduled  IncidentStatus = "Scheduled"
	StatusInProgress IncidentStatus = "In Progress"
	StatusCompleted  IncidentStatus = "Completed"
	StatusCancelled  IncidentStatus = "Cancelled"
)

// Valid reports whether s is one of the four known statuses.
func (s IncidentStatus) Valid() bool {
	switch s {
	case StatusScheduled, StatusInProgress, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

var (
	ErrInvalidStatus = errors.New("invalid incident status")
	ErrNegativeCost  = errors.New("cost must be non-negative")
)

// User is an authenticated identity. PatientID is set iff Role is Patient and
// points at the patient record the identity may see.
type User struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	Role      Role   `json:"role"`
	PatientID string `json:"patientId,omitempty"`
}

// Patient is a clinic patient record. DOB is a date-only string as entered in
// the intake form; it is never used for arithmetic.
type Patient struct {
	ID               string    `json:"id"`
	Name             string    `json:"name"`
	DOB              string    `json:"dob"`
	Contact          string    `json:"contact"`
	Email            string    `json:"email,omitempty"`
	Address          string    `json:"address,omitempty"`
	HealthInfo       string    `json:"healthInfo"`
	BloodGroup       string    `json:"bloodGroup,omitempty"`
	Allergies        string    `json:"allergies,omitempty"`
	EmergencyContact string    `json:"emergencyContact,omitempty"`
	CreatedAt        time.Time `json:"createdAt"`
}

// Incident is a scheduled or completed appointment/treatment event owned by a
// patient. Attachments are embedded; they have no life of their own.
type Incident struct {
	ID              string           `json:"id"`
	PatientID       string           `json:"patientId"`
	Title           string           `json:"title"`
	Description     string           `json:"description"`
	Comments        string           `json:"comments"`
	AppointmentDate time.Time        `json:"appointmentDate"`
	Cost            *float64         `json:"cost,omitempty"`
	Treatment       string           `json:"treatment,omitempty"`
	Status          IncidentStatus   `json:"status"`
	NextDate        *time.Time       `json:"nextDate,omitempty"`
	Files           []FileAttachment `json:"files"`
	CreatedAt       time.Time        `json:"createdAt"`
}

// FileAttachment is a self-contained upload: Content is a data URL embedding
// the MIME type and a base64 payload, so the file can be reconstructed for
// download without any external storage.
type FileAttachment struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Type    string `json:"type"`
	Content string `json:"url"`
	Size    int64  `json:"size"`
}

// PatientDraft carries the caller-supplied fields of a new patient; the store
// assigns ID and CreatedAt.
type PatientDraft struct {
	Name             string
	DOB              string
	Contact          string
	Email            string
	Address          string
	HealthInfo       string
	BloodGroup       string
	Allergies        string
	EmergencyContact string
}

// IncidentDraft carries the caller-supplied fields of a new incident.
type IncidentDraft struct {
	PatientID       string
	Title           string
	Description     string
	Comments        string
	AppointmentDate time.Time
	Cost            *float64
	Treatment       string
	Status          IncidentStatus
	NextDate        *time.Time
	Files           []FileAttachment
}

// Validate checks the draft's enum and range constraints.
func (d IncidentDraft) Validate() error {
	if !d.Status.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidStatus, d.Status)
	}
	if d.Cost != nil && *d.Cost < 0 {
		return ErrNegativeCost
	}
	return nil
}

// PatientPatch is a field-level partial update. Nil fields are left untouched.
type PatientPatch struct {
	Name             *string
	DOB              *string
	Contact          *string
	Email            *string
	Address          *string
	HealthInfo       *string
	BloodGroup       *string
	Allergies        *string
	EmergencyContact *string
}

// Apply merges the patch into p.
func (pp PatientPatch) Apply(p *Patient) {
	if pp.Name != nil {
		p.Name = *pp.Name
	}
	if pp.DOB != nil {
		p.DOB = *pp.DOB
	}
	if pp.Contact != nil {
		p.Contact = *pp.Contact
	}
	if pp.Email != nil {
		p.Email = *pp.Email
	}
	if pp.Address != nil {
		p.Address = *pp.Address
	}
	if pp.HealthInfo != nil {
		p.HealthInfo = *pp.HealthInfo
	}
	if pp.BloodGroup != nil {
		p.BloodGroup = *pp.BloodGroup
	}
	if pp.Allergies != nil {
		p.Allergies = *pp.Allergies
	}
	if pp.EmergencyContact != nil {
		p.EmergencyContact = *pp.EmergencyContact
	}
}

// IncidentPatch is a field-level partial update for an incident. A non-nil
// Files pointer replaces the whole attachment sequence, matching how the
// appointment form resubmits its file list.
type IncidentPatch struct {
	PatientID       *string
	Title           *string
	Description     *string
	Comments        *string
	AppointmentDate *time.Time
	Cost            *float64
	Treatment       *string
	Status          *IncidentStatus
	NextDate        *time.Time
	Files           *[]FileAttachment
}

// Validate checks the patch's enum and range constraints.
func (ip IncidentPatch) Validate() error {
	if ip.Status != nil && !ip.Status.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidStatus, *ip.Status)
	}
	if ip.Cost != nil && *ip.Cost < 0 {
		return ErrNegativeCost
	}
	return nil
}

// Apply merges the patch into in.
func (ip IncidentPatch) Apply(in *Incident) {
	if ip.PatientID != nil {
		in.PatientID = *ip.PatientID
	}
	if ip.Title != nil {
		in.Title = *ip.Title
	}
	if ip.Description != nil {
		in.Description = *ip.Description
	}
	if ip.Comments != nil {
		in.Comments = *ip.Comments
	}
	if ip.AppointmentDate != nil {
		in.AppointmentDate = *ip.AppointmentDate
	}
	if ip.Cost != nil {
		c := *ip.Cost
		in.Cost = &c
	}
	if ip.Treatment != nil {
		in.Treatment = *ip.Treatment
	}
	if ip.Status != nil {
		in.Status = *ip.Status
	}
	if ip.NextDate != nil {
		d := *ip.NextDate
		in.NextDate = &d
	}
	if ip.Files != nil {
		in.Files = append([]FileAttachment(nil), (*ip.Files)...)
	}
}

// Clone returns a copy of p. Patients hold no reference fields today; the
// method exists so store reads never alias internal state.
func (p Patient) Clone() Patient { return p }

// Clone returns a deep copy of in, including attachments.
func (in Incident) Clone() Incident {
	out := in
	if in.Cost != nil {
		c := *in.Cost
		out.Cost = &c
	}
	if in.NextDate != nil {
		d := *in.NextDate
		out.NextDate = &d
	}
	out.Files = append([]FileAttachment(nil), in.Files...)
	return out
}
