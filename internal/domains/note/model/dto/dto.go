package dto

import (
	"checkinhq/internal/domains/note/model"
	"checkinhq/shared/timezone"
	"time"

	"github.com/google/uuid"
)

type AddNoteRequest struct {
	NoteText string `json:"note_text" validate:"required,max=2000"`
}

func (r *AddNoteRequest) ToModel(bookingID string) model.Note {
	return model.Note{
		ID:        uuid.NewString(),
		BookingID: bookingID,
		NoteText:  r.NoteText,
		CreatedAt: timezone.Now(),
	}
}

type NoteResponse struct {
	ID        string    `json:"id"`
	BookingID string    `json:"booking_id"`
	NoteText  string    `json:"note_text"`
	CreatedAt time.Time `json:"created_at"`
}

func (r *NoteResponse) FromModel(model model.Note) {
	r.ID = model.ID
	r.BookingID = model.BookingID
	r.NoteText = model.NoteText
	r.CreatedAt = model.CreatedAt
}

type ListNotesResponse struct {
	Notes []NoteResponse `json:"notes"`
}

func (r *ListNotesResponse) FromModels(models []model.Note) {
	r.Notes = make([]NoteResponse, len(models))
	for i, mod := range models {
		r.Notes[i].FromModel(mod)
	}
}
