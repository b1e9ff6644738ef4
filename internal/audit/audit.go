// Package audit keeps a write-only MySQL trail of booking status decisions.
// The in-memory store stays the system of record; audit rows are never read
// back by the service.  The trail is optional and every insert failure is
// logged and swallowed so an unavailable database cannot break a decision.
package audit

import (
	"context"
	"database/sql"
	"log"
	"time"

	"github.com/fahrudins/school-lab-booking/internal/model"
)

// Trail records decisions.  A nil Trail (or one built over a nil DB) is a
// no-op, which is how the feature stays disabled when no audit database is
// configured.
type Trail struct {
	db *sql.DB
}

// New wraps an open database handle.  Pass nil to disable the trail.
func New(db *sql.DB) *Trail { return &Trail{db: db} }

// Enabled reports whether a database is attached.
func (t *Trail) Enabled() bool { return t != nil && t.db != nil }

// EnsureSchema creates the audit table when missing.  Called once at
// startup; failure disables the trail rather than aborting the service.
func (t *Trail) EnsureSchema(ctx context.Context) error {
	if !t.Enabled() {
		return nil
	}
	const ddl = `CREATE TABLE IF NOT EXISTS booking_decisions (
		id BIGINT UNSIGNED AUTO_INCREMENT PRIMARY KEY,
		booking_id VARCHAR(64) NOT NULL,
		lab VARCHAR(64) NOT NULL,
		booking_date CHAR(10) NOT NULL,
		start_time CHAR(5) NOT NULL,
		end_time CHAR(5) NOT NULL,
		from_status VARCHAR(16) NOT NULL,
		to_status VARCHAR(16) NOT NULL,
		decided_by VARCHAR(128) NOT NULL,
		decided_at DATETIME NOT NULL
	)`
	_, err := t.db.ExecContext(ctx, ddl)
	return err
}

// RecordDecision appends one row for a status transition.  Best effort:
// errors are logged, never returned.
func (t *Trail) RecordDecision(ctx context.Context, b model.Booking, from model.Status, decidedBy string) {
	if !t.Enabled() {
		return
	}
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	_, err := t.db.ExecContext(ctx,
		`INSERT INTO booking_decisions
		 (booking_id, lab, booking_date, start_time, end_time, from_status, to_status, decided_by, decided_at)
		 VALUES (?,?,?,?,?,?,?,?,?)`,
		b.ID, string(b.Lab), b.Date, b.StartTime, b.EndTime,
		string(from), string(b.Status), decidedBy, time.Now().UTC())
	if err != nil {
		log.Printf("audit: record decision for booking %s failed: %v", b.ID, err)
	}
}
