package model

import (
	"checkinhq/shared/model"
	"time"
)

const (
	TableName  = "bookings"
	EntityName = "booking"

	FieldID                  = "id"
	FieldUserID              = "user_id"
	FieldGuestName           = "guest_name"
	FieldPhoneNumber         = "phone_number"
	FieldCheckInDate         = "check_in_date"
	FieldCheckOutDate        = "check_out_date"
	FieldPropertyDestination = "property_destination"
	FieldStatus              = "status"
	FieldCurrency            = "currency"
	FieldTotalAmount         = "total_amount"
	FieldDepositAmount       = "deposit_amount"
	FieldNotes               = "notes"
	FieldLastContactedAt     = "last_contacted_at"
	FieldFollowUpDone        = "follow_up_done"
)

type Booking struct {
	ID                  string     `db:"id"`
	UserID              string     `db:"user_id"`
	GuestName           string     `db:"guest_name"`
	PhoneNumber         *string    `db:"phone_number"`
	CheckInDate         time.Time  `db:"check_in_date"`
	CheckOutDate        time.Time  `db:"check_out_date"`
	PropertyDestination *string    `db:"property_destination"`
	Status              string     `db:"status"`
	Currency            string     `db:"currency"`
	TotalAmount         *float64   `db:"total_amount"`
	DepositAmount       *float64   `db:"deposit_amount"`
	Notes               *string    `db:"notes"`
	LastContactedAt     *time.Time `db:"last_contacted_at"`
	FollowUpDone        bool       `db:"follow_up_done"`
	model.Metadata
}
