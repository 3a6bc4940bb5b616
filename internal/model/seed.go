package model

import "time"

// Seed identities and demo credentials. Passwords are plaintext here because
// this is a fixed demo table; the session store hashes them at startup and
// never compares plaintext.
var SeedUsers = []User{
	{ID: "1", Role: RoleAdmin, Email: "admin@entnt.in"},
	{ID: "2", Role: RolePatient, Email: "john@entnt.in", PatientID: "p1"},
	{ID: "3", Role: RolePatient, Email: "jane@entnt.in", PatientID: "p2"},
	{ID: "4", Role: RolePatient, Email: "bob@entnt.in", PatientID: "p3"},
}

// SeedPasswords maps seed emails to their demo passwords, case-sensitive.
var SeedPasswords = map[string]string{
	"admin@entnt.in": "admin123",
	"john@entnt.in":  "patient123",
	"jane@entnt.in":  "patient123",
	"bob@entnt.in":   "patient123",
}

func ts(year int, month time.Month, day, hour, min int) time.Time {
	return time.Date(year, month, day, hour, min, 0, 0, time.UTC)
}

func tsp(year int, month time.Month, day, hour, min int) *time.Time {
	t := ts(year, month, day, hour, min)
	return &t
}

func cost(v float64) *float64 { return &v }

// SeedPatients returns the default patient records used when no durable state
// exists yet. A fresh slice each call; callers own the result.
func SeedPatients() []Patient {
	return []Patient{
		{
			ID:               "p1",
			Name:             "John Doe",
			DOB:              "1990-05-10",
			Contact:          "1234567890",
			Email:            "john@entnt.in",
			Address:          "123 Main St, New York, NY 10001",
			HealthInfo:       "No known allergies. Regular dental checkups.",
			BloodGroup:       "O+",
			Allergies:        "None",
			EmergencyContact: "9876543210",
			CreatedAt:        ts(2024, time.January, 15, 10, 0),
		},
		{
			ID:               "p2",
			Name:             "Jane Smith",
			DOB:              "1985-08-22",
			Contact:          "2345678901",
			Email:            "jane@entnt.in",
			Address:          "456 Oak Ave, Los Angeles, CA 90210",
			HealthInfo:       "Diabetic, takes medication daily. History of gum disease.",
			BloodGroup:       "A+",
			Allergies:        "Penicillin, Latex",
			EmergencyContact: "8765432109",
			CreatedAt:        ts(2024, time.February, 10, 14, 30),
		},
		{
			ID:               "p3",
			Name:             "Bob Johnson",
			DOB:              "1978-12-03",
			Contact:          "3456789012",
			Email:            "bob@entnt.in",
			Address:          "789 Pine Rd, Chicago, IL 60601",
			HealthInfo:       "High blood pressure, previous root canal treatment.",
			BloodGroup:       "B-",
			Allergies:        "Latex, Aspirin",
			EmergencyContact: "7654321098",
			CreatedAt:        ts(2024, time.March, 5, 9, 15),
		},
	}
}

// SeedIncidents returns the default treatment records. A fresh slice each
// call; callers own the result.
func SeedIncidents() []Incident {
	return []Incident{
		{
			ID:              "i1",
			PatientID:       "p1",
			Title:           "Routine Cleaning",
			Description:     "Regular dental cleaning and fluoride treatment",
			Comments:        "Patient has excellent oral hygiene. No issues found.",
			AppointmentDate: ts(2024, time.July, 15, 10, 0),
			Cost:            cost(120),
			Treatment:       "Professional cleaning, fluoride application, oral health assessment",
			Status:          StatusCompleted,
			Files: []FileAttachment{
				{
					ID:      "f1",
					Name:    "cleaning_invoice.pdf",
					Type:    "application/pdf",
					Content: "data:application/pdf;base64,JVBERi0xLjQKJdPr6eEKMSAwIG9iago8PAovVHlwZSAvQ2F0YWxvZwovUGFnZXMgMiAwIFIKPj4KZW5kb2JqCjIgMCBvYmoKPDwKL1R5cGUgL1BhZ2VzCi9LaWRzIFszIDAgUl0KL0NvdW50IDEKPD4KZW5kb2JqCjMgMCBvYmoKPDwKL1R5cGUgL1BhZ2UKL1BhcmVudCAyIDAgUgovTWVkaWFCb3ggWzAgMCA2MTIgNzkyXQovQ29udGVudHMgNCAwIFIKPj4KZW5kb2JqCjQgMCBvYmoKPDwKL0xlbmd0aCA0NAo+PgpzdHJlYW0KQJQL0+4BXQJKQ4AJZlhZgMZgJgBhBwC6ZwJoATM4oZvJU5ZAH0Ak8BkBg8ACCAA8AEQAVABMAEoARABDACEAAAA8eNoBXkJT8M8Acxwyk8lgASkB8DYGZAAgOhYZgcHQGgJLaWJVAELc2sSXZP8GZBBBIKzSzqAJc8sEDRsZGcCAQGAgID8yNdoAAkAALNAQQ4e8tKQcAAAaAFCCM0ZCZQgHJQJ7VXQJTABGQAR2AAAAVgAQBgAIZBEKJApAAQAAaGRZeU1m3jOAA8dkBmY7oGAQfHJgJQKChAIHkJGCAOgOyZcUmAALAZgIAAdEAUADQAFAZEaAJAQYRAR2CAAyAAaCAUADQAFAAEAFQARABUAFQARAAD2CyAAAQAVABEAFYH5JHgA=",
					Size:    12480,
				},
			},
			CreatedAt: ts(2024, time.June, 1, 10, 0),
		},
		{
			ID:              "i2",
			PatientID:       "p1",
			Title:           "Tooth Sensitivity Treatment",
			Description:     "Treatment for cold sensitivity in upper molar",
			Comments:        "Applied desensitizing gel. Patient reports improvement.",
			AppointmentDate: ts(2024, time.August, 1, 14, 30),
			Cost:            cost(80),
			Treatment:       "Desensitizing treatment, fluoride varnish application",
			Status:          StatusCompleted,
			NextDate:        tsp(2024, time.September, 15, 14, 30),
			Files:           []FileAttachment{},
			CreatedAt:       ts(2024, time.June, 15, 14, 0),
		},
		{
			ID:              "i3",
			PatientID:       "p2",
			Title:           "Composite Filling",
			Description:     "Small cavity filling in lower left molar",
			Comments:        "Patient tolerated procedure well. No complications.",
			AppointmentDate: ts(2024, time.August, 10, 11, 0),
			Cost:            cost(150),
			Treatment:       "Composite resin filling, bite adjustment",
			Status:          StatusCompleted,
			Files: []FileAttachment{
				{
					ID:      "f2",
					Name:    "xray_before.jpg",
					Type:    "image/jpeg",
					Content: "data:image/jpeg;base64,/9j/4AAQSkZJRgABAQAAAQABAAD/2wBDAAYEBQYFBAYGBQYHBwYIChAKCgkJChQODwwQFxQYGBcUFhYaHSUfGhsjHBYWICwgIyYnKSopGR8tMC0oMCUoKSj/2wBDAQcHBwoIChMKChMoGhYaKCgoKCgoKCgoKCgoKCgoKCgoKCgoKCgoKCgoKCgoKCgoKCgoKCgoKCgoKCgoKCgoKCj/wAARCAABAAEDASIAAhEBAxEB/8QAFQABAQAAAAAAAAAAAAAAAAAAAAv/xAAUEAEAAAAAAAAAAAAAAAAAAAAA/8QAFQEBAQAAAAAAAAAAAAAAAAAAAAX/xAAUEQEAAAAAAAAAAAAAAAAAAAAA/9oADAMBAAIRAxEAPwCdABmX/9k=",
					Size:    2048,
				},
			},
			CreatedAt: ts(2024, time.June, 20, 11, 0),
		},
		{
			ID:              "i4",
			PatientID:       "p3",
			Title:           "Root Canal Treatment - Session 1",
			Description:     "Initial root canal procedure for infected tooth #14",
			Comments:        "Infection present, cleaned canals, temporary filling placed.",
			AppointmentDate: ts(2024, time.July, 30, 9, 0),
			Cost:            cost(400),
			Treatment:       "Root canal cleaning, disinfection, temporary filling",
			Status:          StatusCompleted,
			NextDate:        tsp(2024, time.August, 15, 9, 0),
			Files:           []FileAttachment{},
			CreatedAt:       ts(2024, time.June, 25, 9, 0),
		},
		{
			ID:              "i5",
			PatientID:       "p1",
			Title:           "Teeth Whitening",
			Description:     "Professional teeth whitening treatment",
			Comments:        "Patient very satisfied with results.",
			AppointmentDate: ts(2024, time.September, 15, 14, 30),
			Status:          StatusScheduled,
			Files:           []FileAttachment{},
			CreatedAt:       ts(2024, time.July, 1, 14, 0),
		},
		{
			ID:              "i6",
			PatientID:       "p2",
			Title:           "Periodontal Maintenance",
			Description:     "Deep cleaning and gum health assessment",
			Comments:        "Gum inflammation reduced significantly.",
			AppointmentDate: ts(2024, time.August, 20, 10, 0),
			Status:          StatusScheduled,
			Files:           []FileAttachment{},
			CreatedAt:       ts(2024, time.July, 5, 10, 0),
		},
	}
}
