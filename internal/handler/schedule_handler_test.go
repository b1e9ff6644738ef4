package handler

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fahrudins/school-lab-booking/internal/ai"
	"github.com/fahrudins/school-lab-booking/internal/model"
	"github.com/fahrudins/school-lab-booking/internal/schedule"
	"github.com/fahrudins/school-lab-booking/internal/store"
)

func TestLabs(t *testing.T) {
	h := NewScheduleHandler(store.New(), nil)
	c, rec := newCtx(http.MethodGet, "/v1/labs", "")
	require.NoError(t, h.Labs(c))

	var resp struct {
		Labs []model.Lab `json:"labs"`
	}
	decodeJSON(t, rec, &resp)
	assert.Equal(t, model.Labs, resp.Labs)
}

func TestLiveStatus_Overrides(t *testing.T) {
	s := store.New()
	s.AddBooking(model.Booking{
		TeacherName: "Pak Budi", Lab: model.Lab1, Date: "2030-05-10",
		StartTime: "08:00", EndTime: "10:00", Status: model.StatusApproved,
	})
	h := NewScheduleHandler(s, nil)

	c, rec := newCtx(http.MethodGet, "/v1/labs/status?date=2030-05-10&at=09:00", "")
	require.NoError(t, h.LiveStatus(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Date string               `json:"date"`
		Time string               `json:"time"`
		Labs []schedule.LabStatus `json:"labs"`
	}
	decodeJSON(t, rec, &resp)
	assert.Equal(t, "2030-05-10", resp.Date)
	assert.Equal(t, "09:00", resp.Time)
	require.Len(t, resp.Labs, len(model.Labs))
	for _, st := range resp.Labs {
		if st.Lab == model.Lab1 {
			assert.True(t, st.Occupied)
			require.NotNil(t, st.Booking)
			assert.Equal(t, "Pak Budi", st.Booking.TeacherName)
		} else {
			assert.False(t, st.Occupied)
		}
	}
}

func TestGenerate_CommitsValidRows(t *testing.T) {
	s := store.New()
	// this slot is already taken; the matching generated row must be skipped
	s.AddBooking(model.Booking{Lab: model.Lab1, Date: "2030-05-10", StartTime: "08:00", EndTime: "09:00", Status: model.StatusApproved})

	gen := stubGenerator{enabled: true, rows: []ai.GeneratedBooking{
		{TeacherName: "Bu Rina", Subject: "Desain", RombelName: "X TKR 1", LabID: "Lab 2 (Network/Code)", StartTime: "07:00", EndTime: "08:30"},
		{TeacherName: "Pak Eko", Subject: "Jaringan", RombelName: "XI TJKT 2", LabID: "Lab 1 (Multimedia)", StartTime: "08:00", EndTime: "09:00"}, // duplicate slot
		{TeacherName: "Bu Ani", Subject: "CAD", RombelName: "X TKR 2", LabID: "Lab 9", StartTime: "09:00", EndTime: "10:00"},                      // unknown lab
		{TeacherName: "Pak Dar", Subject: "Basis Data", RombelName: "XII TJKT 1", LabID: "Lab 1 (Multimedia)", StartTime: "11:00", EndTime: "10:00"}, // inverted
		{TeacherName: "Bu Ida", Subject: "Informatika", RombelName: "X TJKT 2", LabID: "Lab 2 (Network/Code)", StartTime: "7:00", EndTime: "08:30"},    // unpadded hour
		{TeacherName: "Pak Ali", Subject: "Jaringan", RombelName: "XI TKR 1", LabID: "Lab 2 (Network/Code)", StartTime: "13:00", EndTime: "13:75"},     // minutes past 59
	}}
	h := NewScheduleHandler(s, gen)

	c, rec := newCtx(http.MethodPost, "/v1/schedule/generate", `{"date":"2030-05-10"}`)
	require.NoError(t, h.Generate(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Generated []model.Booking `json:"generated"`
	}
	decodeJSON(t, rec, &resp)
	require.Len(t, resp.Generated, 1)
	b := resp.Generated[0]
	assert.Equal(t, "Bu Rina", b.TeacherName)
	assert.Equal(t, model.StatusApproved, b.Status)
	assert.Equal(t, "generated", b.RombelID)

	// only the committed row was added next to the existing booking
	assert.Len(t, s.BookingsOn("2030-05-10"), 2)
}

func TestGenerate_DisabledOrFailing(t *testing.T) {
	cases := map[string]Generator{
		"nil collaborator": nil,
		"disabled":         stubGenerator{enabled: false},
		"failing":          stubGenerator{enabled: true, err: assert.AnError},
	}
	for name, gen := range cases {
		t.Run(name, func(t *testing.T) {
			h := NewScheduleHandler(store.New(), gen)
			c, rec := newCtx(http.MethodPost, "/v1/schedule/generate", `{"date":"2030-05-10"}`)
			require.NoError(t, h.Generate(c))
			require.Equal(t, http.StatusOK, rec.Code)

			var resp struct {
				Generated []model.Booking `json:"generated"`
			}
			decodeJSON(t, rec, &resp)
			assert.Empty(t, resp.Generated)
		})
	}
}

func TestGenerate_DateRequired(t *testing.T) {
	h := NewScheduleHandler(store.New(), nil)
	c, rec := newCtx(http.MethodPost, "/v1/schedule/generate", `{}`)
	require.NoError(t, h.Generate(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
