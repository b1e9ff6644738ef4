package store

import (
	"fmt"
	"time"

	"github.com/fahrudins/school-lab-booking/internal/model"
)

// SchoolName appears on exports and in the printable schedule header.
const SchoolName = "SMK Bina Nusantara"

// Seed loads the static rombel catalogue, the default accounts and a small
// demo schedule for today.  Seed passwords are bcrypt-hashed on the way in;
// the defaults are meant to be changed by the admin after first login.
func (s *Store) Seed(bcryptCost int) error {
	s.mu.Lock()
	s.rombels = buildRombels()
	s.mu.Unlock()

	seedAccounts := []struct {
		username, password, name, role string
	}{
		{DefaultAdminUsername, "admin", "Administrator Lab", model.RoleAdmin},
		{"Salsa", "guru", "Ibu Salsa", model.RoleTeacher},
		{"guru2", "123", "Bu Siti", model.RoleTeacher},
	}
	for _, a := range seedAccounts {
		if _, err := s.AddAccount(a.username, a.password, a.name, a.role, bcryptCost); err != nil {
			return fmt.Errorf("seed account %s: %w", a.username, err)
		}
	}

	today := time.Now().Format("2006-01-02")
	s.AddBooking(model.Booking{
		TeacherName: "Pak Budi",
		Subject:     "Dasar Kejuruan TJKT",
		RombelID:    "X-TJKT-1",
		RombelName:  "X TJKT 1",
		Lab:         model.Lab1,
		Date:        today,
		StartTime:   "08:00",
		EndTime:     "10:00",
		Status:      model.StatusApproved,
		Notes:       "Instalasi OS",
	})
	s.AddBooking(model.Booking{
		TeacherName: "Bu Siti",
		Subject:     "Desain Digital",
		RombelID:    "XI-Busana-1",
		RombelName:  "XI Busana",
		Lab:         model.Lab2,
		Date:        today,
		StartTime:   "08:00",
		EndTime:     "09:30",
		Status:      model.StatusApproved,
		Notes:       "Pola Digital",
	})
	s.AddBooking(model.Booking{
		TeacherName: "Pak Asep",
		Subject:     "Simulasi Digital",
		RombelID:    "X-TKR-2",
		RombelName:  "X TKR 2",
		Lab:         model.Lab1,
		Date:        today,
		StartTime:   "10:30",
		EndTime:     "12:00",
		Status:      model.StatusPending,
		Notes:       "Ujian Praktik",
	})
	return nil
}

// buildRombels generates the class groups: three parallel classes per grade
// for TKR and TJKT, one per grade for Busana and Perhotelan.
func buildRombels() []model.Rombel {
	grades := []string{"X", "XI", "XII"}
	var out []model.Rombel

	big := []struct{ dept, abbr string }{
		{"Teknik Kendaraan Ringan", "TKR"},
		{"Teknik Jaringan Komputer", "TJKT"},
	}
	for _, d := range big {
		for _, g := range grades {
			for i := 1; i <= 3; i++ {
				out = append(out, model.Rombel{
					ID:           fmt.Sprintf("%s-%s-%d", g, d.abbr, i),
					Name:         fmt.Sprintf("%s %s %d", g, d.abbr, i),
					Department:   d.dept,
					Grade:        g,
					StudentCount: 32,
				})
			}
		}
	}
	for _, dept := range []string{"Busana", "Perhotelan"} {
		for _, g := range grades {
			out = append(out, model.Rombel{
				ID:           fmt.Sprintf("%s-%s-1", g, dept),
				Name:         fmt.Sprintf("%s %s", g, dept),
				Department:   dept,
				Grade:        g,
				StudentCount: 30,
			})
		}
	}
	return out
}
