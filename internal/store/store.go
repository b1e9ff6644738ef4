// Package store owns all mutable application state: bookings, accounts,
// the rombel catalogue and refresh-token sessions.  Every mutation goes
// through a named command on Store so callers cannot bypass the invariants.
// State is held only in memory and is lost on restart.
package store

import (
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/fahrudins/school-lab-booking/internal/model"
	"github.com/fahrudins/school-lab-booking/internal/utils"
)

// DefaultAdminUsername names the protected account that can never be
// removed, so the system always has at least one admin login.
const DefaultAdminUsername = "admin"

var (
	ErrUsernameTaken      = errors.New("username already exists")
	ErrProtectedAccount   = errors.New("the default admin account cannot be removed")
	ErrAccountNotFound    = errors.New("account not found")
	ErrBookingNotFound    = errors.New("booking not found")
	ErrInvalidTransition  = errors.New("only pending bookings can be decided")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

type refreshEntry struct {
	accountID string
	expiresAt time.Time
}

// Store is the single state owner.  Handlers receive it by reference; the
// HTTP server is concurrent, so reads and writes are guarded by one RWMutex.
type Store struct {
	mu       sync.RWMutex
	bookings []model.Booking
	accounts []model.Account
	rombels  []model.Rombel
	sessions map[string]refreshEntry // refresh token hash -> session
}

// New returns an empty store.  Use Seed to load the school's reference data
// and default accounts.
func New() *Store {
	return &Store{sessions: make(map[string]refreshEntry)}
}

// ----- bookings -----

// AddBooking appends a booking.  The caller decides the initial status:
// Pending for teacher requests, Approved for admin-created bookings (the
// admin path deliberately bypasses the conflict checker).  A missing ID is
// filled with a UUID.  The stored copy is returned.
func (s *Store) AddBooking(b model.Booking) model.Booking {
	if b.ID == "" {
		b.ID = uuid.NewString()
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.bookings = append(s.bookings, b)
	return b
}

// SetBookingStatus transitions a booking to the given status and changes no
// other field.  Without force only Pending bookings may be decided; force
// is the admin override that re-decides a settled booking.
func (s *Store) SetBookingStatus(id string, status model.Status, force bool) (model.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.bookings {
		if s.bookings[i].ID != id {
			continue
		}
		if !force && s.bookings[i].Status != model.StatusPending {
			return model.Booking{}, ErrInvalidTransition
		}
		s.bookings[i].Status = status
		return s.bookings[i], nil
	}
	return model.Booking{}, ErrBookingNotFound
}

// BookingByID returns a copy of the booking with the given id.
func (s *Store) BookingByID(id string) (model.Booking, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, b := range s.bookings {
		if b.ID == id {
			return b, nil
		}
	}
	return model.Booking{}, ErrBookingNotFound
}

// BookingsOn returns the bookings for one calendar date sorted by start
// time, matching the dashboard's day view.
func (s *Store) BookingsOn(date string) []model.Booking {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []model.Booking
	for _, b := range s.bookings {
		if b.Date == date {
			out = append(out, b)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].StartTime < out[j].StartTime })
	return out
}

// Bookings returns a copy of every booking in insertion order.
func (s *Store) Bookings() []model.Booking {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.Booking, len(s.bookings))
	copy(out, s.bookings)
	return out
}

// ApprovedBookings returns all Approved bookings in insertion order.  The
// conflict checker and the live-status resolver operate on this view.
func (s *Store) ApprovedBookings() []model.Booking {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []model.Booking
	for _, b := range s.bookings {
		if b.Status == model.StatusApproved {
			out = append(out, b)
		}
	}
	return out
}

// HasBookingAt reports whether some booking already occupies the exact
// lab/date/start triple.  The AI auto-fill uses this to drop duplicates
// before committing generated rows.
func (s *Store) HasBookingAt(lab model.Lab, date, start string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, b := range s.bookings {
		if b.Lab == lab && b.Date == date && b.StartTime == start {
			return true
		}
	}
	return false
}

// ----- accounts -----

// AddAccount creates an account with a bcrypt-hashed password.  The
// username must be unique; on collision nothing is stored.
func (s *Store) AddAccount(username, password, name, role string, bcryptCost int) (model.Account, error) {
	hash, err := utils.HashPassword(password, bcryptCost)
	if err != nil {
		return model.Account{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, a := range s.accounts {
		if a.Username == username {
			return model.Account{}, ErrUsernameTaken
		}
	}
	acc := model.Account{
		ID:           uuid.NewString(),
		Username:     username,
		PasswordHash: hash,
		Name:         name,
		Role:         role,
	}
	s.accounts = append(s.accounts, acc)
	return acc, nil
}

// RemoveAccount deletes an account by id.  The default admin is protected:
// the delete is refused and the list stays unchanged.
func (s *Store) RemoveAccount(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, a := range s.accounts {
		if a.ID != id {
			continue
		}
		if a.Username == DefaultAdminUsername {
			return ErrProtectedAccount
		}
		s.accounts = append(s.accounts[:i], s.accounts[i+1:]...)
		return nil
	}
	return ErrAccountNotFound
}

// Accounts returns a copy of all accounts.
func (s *Store) Accounts() []model.Account {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.Account, len(s.accounts))
	copy(out, s.accounts)
	return out
}

// AccountByID returns the account with the given id.
func (s *Store) AccountByID(id string) (model.Account, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, a := range s.accounts {
		if a.ID == id {
			return a, nil
		}
	}
	return model.Account{}, ErrAccountNotFound
}

// Authenticate verifies a username/password pair.  Unknown username and
// wrong password both come back as ErrInvalidCredentials; callers must not
// reveal which one failed.  The account is copied out under the read lock;
// only the slow bcrypt compare runs unlocked, on the copy.
func (s *Store) Authenticate(username, password string) (model.Account, error) {
	s.mu.RLock()
	var acc model.Account
	var found bool
	for i := range s.accounts {
		if s.accounts[i].Username == username {
			acc = s.accounts[i]
			found = true
			break
		}
	}
	s.mu.RUnlock()
	if !found || !utils.VerifyPassword(acc.PasswordHash, password) {
		return model.Account{}, ErrInvalidCredentials
	}
	return acc, nil
}

// ----- refresh-token sessions -----

// StoreRefresh records a refresh token hash for an account.  Sessions live
// only in memory, so a restart logs everyone out.
func (s *Store) StoreRefresh(accountID, tokenHash string, exp time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[tokenHash] = refreshEntry{accountID: accountID, expiresAt: exp}
}

// ValidateRefresh returns the owning account id for a live token hash.
func (s *Store) ValidateRefresh(tokenHash string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	e, ok := s.sessions[tokenHash]
	if !ok || time.Now().UTC().After(e.expiresAt) {
		return "", ErrInvalidCredentials
	}
	return e.accountID, nil
}

// RevokeRefresh drops a single session.
func (s *Store) RevokeRefresh(tokenHash string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, tokenHash)
}

// RevokeAllForAccount drops every session belonging to an account.
func (s *Store) RevokeAllForAccount(accountID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for h, e := range s.sessions {
		if e.accountID == accountID {
			delete(s.sessions, h)
		}
	}
}

// ----- rombels -----

// Rombels returns the static class-group catalogue.
func (s *Store) Rombels() []model.Rombel {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.Rombel, len(s.rombels))
	copy(out, s.rombels)
	return out
}

// RombelByID looks up a class group by id.
func (s *Store) RombelByID(id string) (model.Rombel, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, r := range s.rombels {
		if r.ID == id {
			return r, true
		}
	}
	return model.Rombel{}, false
}
