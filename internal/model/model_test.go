package model_test

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"dental-center-management/internal/model"
)

func strptr(s string) *string { return &s }

func TestStatusValid(t *testing.T) {
	for _, s := range []model.IncidentStatus{
		model.StatusScheduled, model.StatusInProgress, model.StatusCompleted, model.StatusCancelled,
	} {
		if !s.Valid() {
			t.Errorf("%q should be valid", s)
		}
	}
	for _, s := range []model.IncidentStatus{"", "scheduled", "Done", "IN PROGRESS"} {
		if s.Valid() {
			t.Errorf("%q should be invalid", s)
		}
	}
}

func TestPatientPatchMergesOnlySetFields(t *testing.T) {
	p := model.SeedPatients()[0]
	orig := p

	model.PatientPatch{Email: strptr("new@entnt.in"), Allergies: strptr("Ibuprofen")}.Apply(&p)

	if p.Email != "new@entnt.in" || p.Allergies != "Ibuprofen" {
		t.Fatalf("patched fields not applied: %+v", p)
	}
	p.Email, p.Allergies = orig.Email, orig.Allergies
	if p != orig {
		t.Fatalf("untouched fields changed: %+v vs %+v", p, orig)
	}
}

func TestIncidentPatchReplacesFileSequence(t *testing.T) {
	in := model.SeedIncidents()[0] // i1, one attachment
	newFiles := []model.FileAttachment{
		{ID: "f-a", Name: "a.png"},
		{ID: "f-b", Name: "b.png"},
	}

	model.IncidentPatch{Files: &newFiles}.Apply(&in)
	if len(in.Files) != 2 || in.Files[0].ID != "f-a" {
		t.Fatalf("file sequence not replaced: %+v", in.Files)
	}

	// the incident must own its copy
	newFiles[0].ID = "mutated"
	if in.Files[0].ID == "mutated" {
		t.Fatal("patch aliased caller slice")
	}
}

func TestIncidentPatchValidate(t *testing.T) {
	bad := model.IncidentStatus("Bogus")
	if err := (model.IncidentPatch{Status: &bad}).Validate(); err == nil {
		t.Fatal("want invalid status error")
	}
	neg := -1.0
	if err := (model.IncidentPatch{Cost: &neg}).Validate(); err == nil {
		t.Fatal("want negative cost error")
	}
	ok := model.StatusCompleted
	c := 10.0
	if err := (model.IncidentPatch{Status: &ok, Cost: &c}).Validate(); err != nil {
		t.Fatalf("valid patch rejected: %v", err)
	}
}

func TestIncidentCloneIsDeep(t *testing.T) {
	in := model.SeedIncidents()[0]
	cp := in.Clone()

	*cp.Cost = 999
	cp.Files[0].Name = "mutated"
	if *in.Cost == 999 || in.Files[0].Name == "mutated" {
		t.Fatal("clone shares state with original")
	}
}

func TestIncidentJSONShape(t *testing.T) {
	in := model.SeedIncidents()[4] // i5: no cost, no nextDate, no files content
	b, err := json.Marshal(in)
	if err != nil {
		t.Fatal(err)
	}
	s := string(b)

	// optional absent fields stay out of the document; files is always an array
	if strings.Contains(s, `"cost"`) || strings.Contains(s, `"nextDate"`) {
		t.Fatalf("absent optionals serialized: %s", s)
	}
	if !strings.Contains(s, `"files":[]`) {
		t.Fatalf("files must serialize as an empty array: %s", s)
	}
	if !strings.Contains(s, `"patientId":"p1"`) {
		t.Fatalf("unexpected field naming: %s", s)
	}

	var back model.Incident
	if err := json.Unmarshal(b, &back); err != nil {
		t.Fatal(err)
	}
	if !back.AppointmentDate.Equal(in.AppointmentDate) || back.Status != in.Status {
		t.Fatalf("round trip mismatch: %+v vs %+v", back, in)
	}
}

func TestSeedDataIntegrity(t *testing.T) {
	patients := model.SeedPatients()
	incidents := model.SeedIncidents()

	ids := map[string]bool{}
	for _, p := range patients {
		if ids[p.ID] {
			t.Fatalf("duplicate patient id %s", p.ID)
		}
		ids[p.ID] = true
	}
	for _, in := range incidents {
		if !in.Status.Valid() {
			t.Fatalf("seed incident %s has invalid status", in.ID)
		}
		if in.Cost != nil && *in.Cost < 0 {
			t.Fatalf("seed incident %s has negative cost", in.ID)
		}
		if !ids[in.PatientID] {
			t.Fatalf("seed incident %s references unknown patient %s", in.ID, in.PatientID)
		}
	}
	for _, u := range model.SeedUsers {
		if _, ok := model.SeedPasswords[u.Email]; !ok {
			t.Fatalf("seed user %s has no password", u.Email)
		}
		if u.Role == model.RolePatient && !ids[u.PatientID] {
			t.Fatalf("seed user %s references unknown patient %s", u.Email, u.PatientID)
		}
	}

	// callers own the returned slices
	patients[0].Name = "mutated"
	if model.SeedPatients()[0].Name == "mutated" {
		t.Fatal("SeedPatients returns shared state")
	}
}

func TestSeedTimestampsAreUTC(t *testing.T) {
	for _, in := range model.SeedIncidents() {
		if in.AppointmentDate.Location() != time.UTC {
			t.Fatalf("seed incident %s has non-UTC appointment date", in.ID)
		}
	}
}
