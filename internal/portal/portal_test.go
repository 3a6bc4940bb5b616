package portal_test

import (
	"context"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/sirupsen/logrus"

	"dental-center-management/internal/files"
	"dental-center-management/internal/model"
	"dental-center-management/internal/portal"
	"dental-center-management/internal/storage"
)

func setup(t *testing.T) *portal.Portal {
	t.Helper()
	log := logrus.New()
	log.SetOutput(io.Discard)
	p, err := portal.New(portal.Options{
		KV:            storage.NewMemory(),
		SessionSecret: "test-secret",
		Logger:        log,
	})
	if err != nil {
		t.Fatalf("new portal: %v", err)
	}
	t.Cleanup(func() { _ = p.Close() })
	return p
}

func TestMutationsAreImmediatelyVisible(t *testing.T) {
	p := setup(t)

	created, err := p.AddPatient(model.PatientDraft{Name: "Ann", DOB: "2000-01-01", Contact: "555"})
	if err != nil {
		t.Fatalf("add: %v", err)
	}

	found := false
	for _, pat := range p.Patients() {
		if pat.ID == created.ID {
			found = true
		}
	}
	if !found {
		t.Fatal("committed mutation not visible to the next read")
	}
}

func TestWatchTicksOnEveryCommittedChange(t *testing.T) {
	p := setup(t)

	ch, cancel := p.Watch()
	defer cancel()

	drain := func() bool {
		select {
		case <-ch:
			return true
		case <-time.After(time.Second):
			return false
		}
	}

	if _, err := p.AddPatient(model.PatientDraft{Name: "Ann", Contact: "1"}); err != nil {
		t.Fatal(err)
	}
	if !drain() {
		t.Fatal("no tick after AddPatient")
	}

	if !p.Login("admin@entnt.in", "admin123") {
		t.Fatal("login failed")
	}
	if !drain() {
		t.Fatal("no tick after login")
	}

	// a failed login commits nothing and must not tick
	p.Login("admin@entnt.in", "wrong")
	select {
	case <-ch:
		t.Fatal("tick after failed login")
	case <-time.After(50 * time.Millisecond):
	}

	cancel()
	p.Logout()
	select {
	case <-ch:
		t.Fatal("tick after cancel")
	case <-time.After(50 * time.Millisecond):
	}
}

func TestVisibleIncidentsScopedByRole(t *testing.T) {
	p := setup(t)

	if got := p.VisibleIncidents(); got != nil {
		t.Fatalf("logged-out caller sees %d incidents, want none", len(got))
	}

	p.Login("john@entnt.in", "patient123")
	mine := p.VisibleIncidents()
	own := p.PatientIncidents("p1")
	if len(mine) != len(own) {
		t.Fatalf("patient sees %d incidents, own record has %d", len(mine), len(own))
	}
	for i := range mine {
		if mine[i].ID != own[i].ID {
			t.Fatalf("scoped read mismatch at %d", i)
		}
	}

	p.Logout()
	p.Login("admin@entnt.in", "admin123")
	if got, want := len(p.VisibleIncidents()), len(p.Incidents()); got != want {
		t.Fatalf("admin sees %d incidents, want all %d", got, want)
	}
}

func TestCascadeDeleteThroughFacade(t *testing.T) {
	p := setup(t)

	if err := p.DeletePatient("p1"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	for _, in := range p.Incidents() {
		if in.PatientID == "p1" {
			t.Fatalf("incident %s survived cascade", in.ID)
		}
	}
	if got := len(p.PatientIncidents("p1")); got != 0 {
		t.Fatalf("want no incidents for deleted patient, got %d", got)
	}
}

func TestUploadAndAttachFlow(t *testing.T) {
	p := setup(t)

	res := <-p.UploadFile(context.Background(), files.Input{
		Name:   "xray.jpg",
		Type:   "image/jpeg",
		Reader: strings.NewReader("rawbytes"),
	})
	if res.Err != nil {
		t.Fatalf("upload: %v", res.Err)
	}

	atts := []model.FileAttachment{*res.Attachment}
	if err := p.UpdateIncident("i5", model.IncidentPatch{Files: &atts}); err != nil {
		t.Fatalf("attach: %v", err)
	}

	for _, in := range p.Incidents() {
		if in.ID != "i5" {
			continue
		}
		if len(in.Files) != 1 || in.Files[0].Name != "xray.jpg" {
			t.Fatalf("attachment not stored: %+v", in.Files)
		}
		mt, data, err := files.Decode(in.Files[0].Content)
		if err != nil || mt != "image/jpeg" || string(data) != "rawbytes" {
			t.Fatalf("stored attachment does not reconstruct: %v %q %q", err, mt, data)
		}
		return
	}
	t.Fatal("incident i5 missing")
}

func TestStatePersistsAcrossPortals(t *testing.T) {
	kv := storage.NewMemory()
	log := logrus.New()
	log.SetOutput(io.Discard)
	opts := portal.Options{KV: kv, SessionSecret: "test-secret", Logger: log}

	p1, err := portal.New(opts)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := p1.AddPatient(model.PatientDraft{Name: "Ann", Contact: "1"}); err != nil {
		t.Fatal(err)
	}
	p1.Login("admin@entnt.in", "admin123")

	p2, err := portal.New(opts)
	if err != nil {
		t.Fatal(err)
	}
	if got := len(p2.Patients()); got != 4 {
		t.Fatalf("want 4 patients after restart, got %d", got)
	}
	u := p2.User()
	if u == nil || u.Role != model.RoleAdmin {
		t.Fatalf("session not restored: %+v", u)
	}
}
