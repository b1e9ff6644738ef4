package model

// Lab identifies one of the two fixed computer labs that can be booked.
// The values double as display names; the school has exactly two labs and
// they are not managed resources, so an enum is sufficient.
type Lab string

const (
	Lab1 Lab = "Lab 1 (Multimedia)"
	Lab2 Lab = "Lab 2 (Network/Code)"
)

// Labs lists every bookable lab in a stable order.  The live-status
// resolver and the browse endpoints iterate this slice.
var Labs = []Lab{Lab1, Lab2}

// ValidLab reports whether s names a known lab.
func ValidLab(s string) bool {
	for _, l := range Labs {
		if string(l) == s {
			return true
		}
	}
	return false
}

// Status is the lifecycle state of a booking.  A booking is created
// Pending (or Approved when an admin files it directly) and is only ever
// mutated by a status transition; bookings are never deleted.
type Status string

const (
	StatusPending  Status = "Pending"
	StatusApproved Status = "Approved"
	StatusRejected Status = "Rejected"
)

// Booking is a request to occupy a lab for a class group (rombel) during a
// date/time slot.  Date is a YYYY-MM-DD calendar date and StartTime/EndTime
// are zero-padded same-day HH:MM wall-clock strings, which keeps interval
// comparisons a plain lexicographic compare.
//
// Fields:
//  ID          – unique identifier (UUID).
//  TeacherName – teacher requesting the slot.
//  Subject     – subject taught during the slot.
//  RombelID    – identifier of the class group; "generated" for AI-filled rows.
//  RombelName  – display name of the class group, denormalized for exports.
//  Lab         – which lab is requested.
//  Date        – calendar date, YYYY-MM-DD.
//  StartTime   – slot start, HH:MM, must be < EndTime.
//  EndTime     – slot end, HH:MM.
//  Status      – Pending | Approved | Rejected.
//  Notes       – optional free text.
type Booking struct {
	ID          string `json:"id"`
	TeacherName string `json:"teacher_name"`
	Subject     string `json:"subject"`
	RombelID    string `json:"rombel_id"`
	RombelName  string `json:"rombel_name"`
	Lab         Lab    `json:"lab"`
	Date        string `json:"date"`
	StartTime   string `json:"start_time"`
	EndTime     string `json:"end_time"`
	Status      Status `json:"status"`
	Notes       string `json:"notes,omitempty"`
}
