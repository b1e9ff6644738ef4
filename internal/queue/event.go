// Package queue defines message payloads exchanged over the message broker.
package queue

// BookingDecidedEvent is published whenever an admin decides a booking
// (approve or reject).  It carries enough information for downstream
// consumers to log or notify without reaching into the in-memory store.
type BookingDecidedEvent struct {
	BookingID   string `json:"booking_id"`
	Lab         string `json:"lab"`
	Date        string `json:"date"`
	StartTime   string `json:"start_time"`
	EndTime     string `json:"end_time"`
	TeacherName string `json:"teacher_name"`
	RombelName  string `json:"rombel_name"`
	Subject     string `json:"subject"`
	Status      string `json:"status"`
	DecidedBy   string `json:"decided_by"`
	DecidedAt   string `json:"decided_at"`
}
