package model

import "time"

const (
	TableName  = "booking_notes"
	EntityName = "booking_note"

	FieldID        = "id"
	FieldBookingID = "booking_id"
	FieldNoteText  = "note_text"
	FieldCreatedAt = "created_at"
)

// Note is append-only: rows are inserted and deleted, never updated.
type Note struct {
	ID        string    `db:"id"`
	BookingID string    `db:"booking_id"`
	NoteText  string    `db:"note_text"`
	CreatedAt time.Time `db:"created_at"`
}
