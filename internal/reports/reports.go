// Package reports computes the read-side statistics the dashboards, report
// page and calendar render. Everything here is a pure function over copies of
// the collections; nothing mutates store state.
package reports

import (
	"sort"
	"time"

	"dental-center-management/internal/model"
)

// Upcoming returns incidents whose appointment time is at or after now,
// soonest first. The boundary is inclusive: an appointment happening this
// instant is still upcoming.
func Upcoming(incidents []model.Incident, now time.Time) []model.Incident {
	var out []model.Incident
	for _, in := range incidents {
		if !in.AppointmentDate.Before(now) {
			out = append(out, in)
		}
	}
	sortByDateAsc(out)
	return out
}

// Past returns incidents strictly before now, most recent first.
func Past(incidents []model.Incident, now time.Time) []model.Incident {
	var out []model.Incident
	for _, in := range incidents {
		if in.AppointmentDate.Before(now) {
			out = append(out, in)
		}
	}
	sortByDateDesc(out)
	return out
}

// DashboardSummary is the admin landing view.
type DashboardSummary struct {
	TotalPatients    int
	UpcomingCount    int
	NextAppointments []model.Incident // soonest first, capped
	CompletedCount   int
	InProgressCount  int
	ScheduledCount   int
	TotalRevenue     float64
}

// Summarize builds the admin dashboard numbers. Upcoming excludes cancelled
// appointments; revenue is the cost sum over completed treatments.
func Summarize(patients []model.Patient, incidents []model.Incident, now time.Time, nextN int) DashboardSummary {
	sum := DashboardSummary{TotalPatients: len(patients)}

	var upcoming []model.Incident
	for _, in := range incidents {
		switch in.Status {
		case model.StatusCompleted:
			sum.CompletedCount++
			if in.Cost != nil {
				sum.TotalRevenue += *in.Cost
			}
		case model.StatusInProgress:
			sum.InProgressCount++
		case model.StatusScheduled:
			sum.ScheduledCount++
		}
		if !in.AppointmentDate.Before(now) && in.Status != model.StatusCancelled {
			upcoming = append(upcoming, in)
		}
	}
	sum.UpcomingCount = len(upcoming)
	sortByDateAsc(upcoming)
	if len(upcoming) > nextN {
		upcoming = upcoming[:nextN]
	}
	sum.NextAppointments = upcoming
	return sum
}

// PatientSummary is the patient landing view, scoped to one patient record.
type PatientSummary struct {
	Upcoming       []model.Incident // soonest first
	Recent         []model.Incident // most recent first, capped
	CompletedCount int
	TotalSpent     float64 // cost sum over completed treatments
}

func SummarizePatient(incidents []model.Incident, patientID string, now time.Time, recentN int) PatientSummary {
	var own []model.Incident
	for _, in := range incidents {
		if in.PatientID == patientID {
			own = append(own, in)
		}
	}

	var sum PatientSummary
	for _, in := range own {
		if !in.AppointmentDate.Before(now) && in.Status != model.StatusCancelled {
			sum.Upcoming = append(sum.Upcoming, in)
		}
		if in.Status == model.StatusCompleted {
			sum.CompletedCount++
			if in.Cost != nil {
				sum.TotalSpent += *in.Cost
			}
		}
	}
	sortByDateAsc(sum.Upcoming)

	recent := append([]model.Incident(nil), own...)
	sortByDateDesc(recent)
	if len(recent) > recentN {
		recent = recent[:recentN]
	}
	sum.Recent = recent
	return sum
}

// StatusBreakdown counts incidents per status, for the report page's pie
// chart.
func StatusBreakdown(incidents []model.Incident) map[model.IncidentStatus]int {
	out := make(map[model.IncidentStatus]int, 4)
	for _, in := range incidents {
		out[in.Status]++
	}
	return out
}

// MonthRevenue is one bar of the trailing revenue chart. Only completed
// treatments count toward revenue and visits.
type MonthRevenue struct {
	Year    int
	Month   time.Month
	Revenue float64
	Visits  int
}

// MonthlyRevenue aggregates completed treatments by calendar month for the
// window ending at now, oldest month first. Buckets are derived from the
// first of each month; stepping back from now itself would skip months when
// now falls on day 29-31.
func MonthlyRevenue(incidents []model.Incident, now time.Time, months int) []MonthRevenue {
	out := make([]MonthRevenue, 0, months)
	for i := months - 1; i >= 0; i-- {
		m := time.Date(now.Year(), now.Month()-time.Month(i), 1, 0, 0, 0, 0, now.Location())
		mr := MonthRevenue{Year: m.Year(), Month: m.Month()}
		for _, in := range incidents {
			if in.Status != model.StatusCompleted {
				continue
			}
			d := in.AppointmentDate
			if d.Year() == mr.Year && d.Month() == mr.Month {
				mr.Visits++
				if in.Cost != nil {
					mr.Revenue += *in.Cost
				}
			}
		}
		out = append(out, mr)
	}
	return out
}

// TreatmentCount is one row of the treatment-frequency table.
type TreatmentCount struct {
	Title string
	Count int
}

// TreatmentFrequency returns the most common treatment titles, descending,
// capped at topN. Ties break alphabetically so the order is stable.
func TreatmentFrequency(incidents []model.Incident, topN int) []TreatmentCount {
	counts := make(map[string]int)
	for _, in := range incidents {
		counts[in.Title]++
	}
	out := make([]TreatmentCount, 0, len(counts))
	for title, n := range counts {
		out = append(out, TreatmentCount{Title: title, Count: n})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Title < out[j].Title
	})
	if len(out) > topN {
		out = out[:topN]
	}
	return out
}

// PatientActivity is one row of the top-patients table.
type PatientActivity struct {
	Patient model.Patient
	Visits  int
	Revenue float64 // over completed treatments only
}

// TopPatients ranks patients by visit count, descending, capped at topN.
func TopPatients(patients []model.Patient, incidents []model.Incident, topN int) []PatientActivity {
	out := make([]PatientActivity, 0, len(patients))
	for _, p := range patients {
		pa := PatientActivity{Patient: p}
		for _, in := range incidents {
			if in.PatientID != p.ID {
				continue
			}
			pa.Visits++
			if in.Status == model.StatusCompleted && in.Cost != nil {
				pa.Revenue += *in.Cost
			}
		}
		out = append(out, pa)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Visits != out[j].Visits {
			return out[i].Visits > out[j].Visits
		}
		return out[i].Patient.Name < out[j].Patient.Name
	})
	if len(out) > topN {
		out = out[:topN]
	}
	return out
}

// MonthGrid maps day-of-month to that day's appointments, soonest first, for
// the calendar view.
func MonthGrid(incidents []model.Incident, year int, month time.Month) map[int][]model.Incident {
	out := make(map[int][]model.Incident)
	for _, in := range incidents {
		d := in.AppointmentDate
		if d.Year() == year && d.Month() == month {
			out[d.Day()] = append(out[d.Day()], in)
		}
	}
	for day := range out {
		sortByDateAsc(out[day])
	}
	return out
}

func sortByDateAsc(ins []model.Incident) {
	sort.SliceStable(ins, func(i, j int) bool {
		return ins[i].AppointmentDate.Before(ins[j].AppointmentDate)
	})
}

func sortByDateDesc(ins []model.Incident) {
	sort.SliceStable(ins, func(i, j int) bool {
		return ins[j].AppointmentDate.Before(ins[i].AppointmentDate)
	})
}
