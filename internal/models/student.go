package models

import "time"

type Student struct {
	ID        string    `json:"id" db:"id"`
	Name      string    `json:"name" db:"name"`
	Subject   string    `json:"subject" db:"subject"`
	Marks     int       `json:"marks" db:"marks"`
	TeacherID string    `json:"teacher_id" db:"teacher_id"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// UpsertOutcome reports whether an upsert inserted a new record or
// overwrote the marks of an existing one.
type UpsertOutcome int

const (
	UpsertCreated UpsertOutcome = iota
	UpsertUpdated
)

func (o UpsertOutcome) String() string {
	if o == UpsertCreated {
		return "created"
	}
	return "updated"
}
