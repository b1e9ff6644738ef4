// Package schedule contains the pure booking logic: conflict detection for
// candidate bookings and the live occupancy derivation for the dashboard.
// Nothing in this package performs I/O; callers pass in the relevant slice
// of bookings and get a value back.
package schedule

import (
	"errors"
	"fmt"

	"github.com/fahrudins/school-lab-booking/internal/model"
)

// Candidate is a booking request being checked before it is committed.
type Candidate struct {
	TeacherName string    `json:"teacher_name"`
	Subject     string    `json:"subject"`
	RombelID    string    `json:"rombel_id"`
	Lab         model.Lab `json:"lab"`
	Date        string    `json:"date"`
	StartTime   string    `json:"start_time"`
	EndTime     string    `json:"end_time"`
	Notes       string    `json:"notes"`
}

// Conflict describes one approved booking that collides with a candidate.
type Conflict struct {
	BookingID   string `json:"booking_id"`
	Description string `json:"description"`
}

var (
	ErrMissingFields = errors.New("teacher name, subject and rombel are required")
	ErrUnknownLab    = errors.New("unknown lab")
	ErrBadDate       = errors.New("date must be YYYY-MM-DD")
	ErrBadInterval   = errors.New("start time must be before end time")
)

// Overlaps reports whether the half-open intervals [aStart,aEnd) and
// [bStart,bEnd) intersect.  Times are zero-padded HH:MM strings, so the
// lexicographic compare is also the chronological one.
func Overlaps(aStart, aEnd, bStart, bEnd string) bool {
	return aStart < bEnd && bStart < aEnd
}

// Conflicts returns one entry per approved booking that shares the
// candidate's lab and date and overlaps its time interval.  An empty result
// means the candidate is safe to commit.  Only Approved bookings count;
// pending and rejected requests do not block a slot.
func Conflicts(approved []model.Booking, cand Candidate) []Conflict {
	var out []Conflict
	for _, b := range approved {
		if b.Status != model.StatusApproved {
			continue
		}
		if b.Lab != cand.Lab || b.Date != cand.Date {
			continue
		}
		if !Overlaps(cand.StartTime, cand.EndTime, b.StartTime, b.EndTime) {
			continue
		}
		out = append(out, Conflict{
			BookingID: b.ID,
			Description: fmt.Sprintf("%s is already booked %s-%s on %s by %s (%s, %s)",
				b.Lab, b.StartTime, b.EndTime, b.Date, b.TeacherName, b.RombelName, b.Subject),
		})
	}
	return out
}

// ValidateCandidate checks the request before any conflict analysis runs.
// Validation failures are reported synchronously and mutate nothing.
func ValidateCandidate(cand Candidate) error {
	if cand.TeacherName == "" || cand.Subject == "" || cand.RombelID == "" {
		return ErrMissingFields
	}
	if !model.ValidLab(string(cand.Lab)) {
		return ErrUnknownLab
	}
	if !validDate(cand.Date) {
		return ErrBadDate
	}
	if !ValidTime(cand.StartTime) || !ValidTime(cand.EndTime) || cand.StartTime >= cand.EndTime {
		return ErrBadInterval
	}
	return nil
}

func validDate(s string) bool {
	if len(s) != 10 || s[4] != '-' || s[7] != '-' {
		return false
	}
	for i, c := range s {
		if i == 4 || i == 7 {
			continue
		}
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}

// ValidTime reports whether s is a zero-padded wall-clock HH:MM between
// 00:00 and 23:59.  Every time that enters the system must pass this check,
// otherwise lexicographic interval comparisons break down.
func ValidTime(s string) bool {
	if len(s) != 5 || s[2] != ':' {
		return false
	}
	for i, c := range s {
		if i == 2 {
			continue
		}
		if c < '0' || c > '9' {
			return false
		}
	}
	// the range check bounds the hour; minutes need their own cap at 59
	return s[3] <= '5' && s >= "00:00" && s <= "23:59"
}
