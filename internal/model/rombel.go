package model

// Rombel is a class group (rombongan belajar), the scheduling unit that
// requests lab time.  Rombels are static reference data: they are seeded at
// startup and never mutated afterwards.
//
// Fields:
//  ID           – stable identifier, e.g. "X-TJKT-1".
//  Name         – display name, e.g. "X TJKT 1".
//  Department   – full department name.
//  Grade        – grade level (X, XI, XII).
//  StudentCount – number of students in the group.
type Rombel struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Department   string `json:"department"`
	Grade        string `json:"grade"`
	StudentCount int    `json:"student_count"`
}
