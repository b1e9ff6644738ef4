package schedule

import (
	"time"

	"github.com/fahrudins/school-lab-booking/internal/model"
)

// LabStatus is the live occupancy of one lab at a point in time.
type LabStatus struct {
	Lab      model.Lab      `json:"lab"`
	Occupied bool           `json:"occupied"`
	Booking  *model.Booking `json:"booking,omitempty"`
}

// LiveStatus resolves, for every lab, the approved booking in progress at
// the given date and HH:MM clock time.  Both interval bounds are inclusive:
// a booking ending at 10:00 still shows as live at exactly 10:00.  When the
// data contains overlapping approved bookings (possible through the admin
// override), the first match in store order wins; that tie-break is
// deliberate, not an error.
func LiveStatus(bookings []model.Booking, date, hhmm string) []LabStatus {
	out := make([]LabStatus, 0, len(model.Labs))
	for _, lab := range model.Labs {
		st := LabStatus{Lab: lab}
		for i := range bookings {
			b := &bookings[i]
			if b.Status != model.StatusApproved || b.Lab != lab || b.Date != date {
				continue
			}
			if hhmm >= b.StartTime && hhmm <= b.EndTime {
				st.Occupied = true
				st.Booking = b
				break
			}
		}
		out = append(out, st)
	}
	return out
}

// Now returns the wall-clock date and HH:MM pair used for live-status
// queries.  Split out so handlers and tests share one formatting.
func Now() (date, hhmm string) {
	t := time.Now()
	return t.Format("2006-01-02"), t.Format("15:04")
}
