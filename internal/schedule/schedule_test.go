package schedule

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fahrudins/school-lab-booking/internal/model"
)

func approvedBooking(id string, lab model.Lab, date, start, end string) model.Booking {
	return model.Booking{
		ID:          id,
		TeacherName: "Pak Budi",
		Subject:     "Informatika",
		RombelID:    "X-TJKT-1",
		RombelName:  "X TJKT 1",
		Lab:         lab,
		Date:        date,
		StartTime:   start,
		EndTime:     end,
		Status:      model.StatusApproved,
	}
}

func TestOverlaps(t *testing.T) {
	cases := []struct {
		name                       string
		aStart, aEnd, bStart, bEnd string
		want                       bool
	}{
		{"contained", "09:00", "09:30", "08:00", "10:00", true},
		{"identical", "08:00", "10:00", "08:00", "10:00", true},
		{"partial head", "07:00", "08:30", "08:00", "10:00", true},
		{"partial tail", "09:30", "11:00", "08:00", "10:00", true},
		{"back to back", "10:00", "11:00", "08:00", "10:00", false},
		{"disjoint", "12:00", "13:00", "08:00", "10:00", false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Overlaps(tc.aStart, tc.aEnd, tc.bStart, tc.bEnd))
			// overlap is symmetric
			assert.Equal(t, tc.want, Overlaps(tc.bStart, tc.bEnd, tc.aStart, tc.aEnd))
		})
	}
}

func TestConflicts_SameLabSameDate(t *testing.T) {
	store := []model.Booking{approvedBooking("b1", model.Lab1, "2024-01-01", "08:00", "10:00")}

	cand := Candidate{
		TeacherName: "Bu Siti",
		Subject:     "Desain Digital",
		RombelID:    "XI-Busana-1",
		Lab:         model.Lab1,
		Date:        "2024-01-01",
		StartTime:   "09:00",
		EndTime:     "09:30",
	}
	conflicts := Conflicts(store, cand)
	require.Len(t, conflicts, 1)
	assert.Equal(t, "b1", conflicts[0].BookingID)
	assert.Contains(t, conflicts[0].Description, "08:00-10:00")
	assert.Contains(t, conflicts[0].Description, "Pak Budi")
}

func TestConflicts_OtherLabIsSafe(t *testing.T) {
	store := []model.Booking{approvedBooking("b1", model.Lab1, "2024-01-01", "08:00", "10:00")}

	cand := Candidate{
		TeacherName: "Bu Siti",
		Subject:     "Desain Digital",
		RombelID:    "XI-Busana-1",
		Lab:         model.Lab2,
		Date:        "2024-01-01",
		StartTime:   "09:00",
		EndTime:     "09:30",
	}
	assert.Empty(t, Conflicts(store, cand))
}

func TestConflicts_IgnoresNonApproved(t *testing.T) {
	pending := approvedBooking("b1", model.Lab1, "2024-01-01", "08:00", "10:00")
	pending.Status = model.StatusPending
	rejected := approvedBooking("b2", model.Lab1, "2024-01-01", "08:00", "10:00")
	rejected.Status = model.StatusRejected

	cand := Candidate{
		TeacherName: "Bu Siti",
		Subject:     "Informatika",
		RombelID:    "X-TKR-1",
		Lab:         model.Lab1,
		Date:        "2024-01-01",
		StartTime:   "08:30",
		EndTime:     "09:30",
	}
	assert.Empty(t, Conflicts([]model.Booking{pending, rejected}, cand))
}

func TestConflicts_OtherDateIsSafe(t *testing.T) {
	store := []model.Booking{approvedBooking("b1", model.Lab1, "2024-01-01", "08:00", "10:00")}
	cand := Candidate{
		TeacherName: "Bu Siti",
		Subject:     "Informatika",
		RombelID:    "X-TKR-1",
		Lab:         model.Lab1,
		Date:        "2024-01-02",
		StartTime:   "08:30",
		EndTime:     "09:30",
	}
	assert.Empty(t, Conflicts(store, cand))
}

func TestValidateCandidate(t *testing.T) {
	valid := Candidate{
		TeacherName: "Bu Siti",
		Subject:     "Informatika",
		RombelID:    "X-TKR-1",
		Lab:         model.Lab1,
		Date:        "2024-01-01",
		StartTime:   "08:00",
		EndTime:     "09:30",
	}
	require.NoError(t, ValidateCandidate(valid))

	missing := valid
	missing.Subject = ""
	assert.ErrorIs(t, ValidateCandidate(missing), ErrMissingFields)

	badLab := valid
	badLab.Lab = "Lab 3"
	assert.ErrorIs(t, ValidateCandidate(badLab), ErrUnknownLab)

	badDate := valid
	badDate.Date = "01-01-2024"
	assert.ErrorIs(t, ValidateCandidate(badDate), ErrBadDate)

	inverted := valid
	inverted.StartTime, inverted.EndTime = "10:00", "08:00"
	assert.ErrorIs(t, ValidateCandidate(inverted), ErrBadInterval)

	zero := valid
	zero.StartTime, zero.EndTime = "08:00", "08:00"
	assert.ErrorIs(t, ValidateCandidate(zero), ErrBadInterval)

	badClock := valid
	badClock.EndTime = "8:30"
	assert.ErrorIs(t, ValidateCandidate(badClock), ErrBadInterval)

	// minutes above 59 are not a wall-clock time even though the string
	// compares below "23:59"
	badMinutes := valid
	badMinutes.StartTime = "08:75"
	assert.ErrorIs(t, ValidateCandidate(badMinutes), ErrBadInterval)

	badEndMinutes := valid
	badEndMinutes.EndTime = "09:60"
	assert.ErrorIs(t, ValidateCandidate(badEndMinutes), ErrBadInterval)
}

func TestValidTime(t *testing.T) {
	for _, ok := range []string{"00:00", "07:05", "23:59", "10:30"} {
		assert.True(t, ValidTime(ok), ok)
	}
	for _, bad := range []string{"7:00", "08:75", "09:60", "24:00", "0800", "08:0a", ""} {
		assert.False(t, ValidTime(bad), bad)
	}
}

func TestLiveStatus_InclusiveBounds(t *testing.T) {
	store := []model.Booking{approvedBooking("b1", model.Lab1, "2024-01-01", "08:00", "10:00")}

	inside := LiveStatus(store, "2024-01-01", "09:00")
	require.Len(t, inside, 2)
	assert.True(t, inside[0].Occupied)
	require.NotNil(t, inside[0].Booking)
	assert.Equal(t, "b1", inside[0].Booking.ID)
	assert.False(t, inside[1].Occupied)

	atStart := LiveStatus(store, "2024-01-01", "08:00")
	assert.True(t, atStart[0].Occupied)

	// upper bound is inclusive: still live at exactly 10:00
	atEnd := LiveStatus(store, "2024-01-01", "10:00")
	assert.True(t, atEnd[0].Occupied)

	after := LiveStatus(store, "2024-01-01", "10:01")
	assert.False(t, after[0].Occupied)
	assert.Nil(t, after[0].Booking)
}

func TestLiveStatus_SkipsPendingAndOtherDates(t *testing.T) {
	pending := approvedBooking("b1", model.Lab1, "2024-01-01", "08:00", "10:00")
	pending.Status = model.StatusPending
	otherDay := approvedBooking("b2", model.Lab1, "2024-01-02", "08:00", "10:00")

	got := LiveStatus([]model.Booking{pending, otherDay}, "2024-01-01", "09:00")
	assert.False(t, got[0].Occupied)
}

func TestLiveStatus_FirstMatchWins(t *testing.T) {
	// overlapping approved bookings can exist via the admin override; the
	// resolver picks the first in store order
	first := approvedBooking("b1", model.Lab1, "2024-01-01", "08:00", "10:00")
	second := approvedBooking("b2", model.Lab1, "2024-01-01", "09:00", "11:00")

	got := LiveStatus([]model.Booking{first, second}, "2024-01-01", "09:30")
	require.True(t, got[0].Occupied)
	assert.Equal(t, "b1", got[0].Booking.ID)
}
