package dto

import (
	"checkinhq/internal/domains/booking/model"
	"checkinhq/shared"
	"checkinhq/shared/constant"
	gDto "checkinhq/shared/dto"
	gModel "checkinhq/shared/model"
	"checkinhq/shared/timezone"
	"time"

	"github.com/google/uuid"
)

type CreateBookingRequest struct {
	GuestName           string   `json:"guest_name"           validate:"required,max=100"`
	PhoneNumber         *string  `json:"phone_number"         validate:"omitempty,max=30"`
	CheckInDate         string   `json:"check_in_date"        validate:"required"`
	CheckOutDate        string   `json:"check_out_date"       validate:"required"`
	PropertyDestination *string  `json:"property_destination" validate:"omitempty,max=200"`
	Status              string   `json:"status"               validate:"omitempty,oneof=Inquiry Quoted 'Deposit Paid' Confirmed 'Checked In' 'Checked Out'"`
	Currency            string   `json:"currency"             validate:"omitempty,oneof=USD UGX KES TZS EUR GBP"`
	TotalAmount         *float64 `json:"total_amount"         validate:"omitempty,gte=0"`
	DepositAmount       *float64 `json:"deposit_amount"       validate:"omitempty,gte=0"`
	Notes               *string  `json:"notes"`
}

func (c *CreateBookingRequest) ToModel(userID string) (model.Booking, error) {
	checkIn, err := time.Parse(constant.DateOnlyFormat, c.CheckInDate)
	if err != nil {
		return model.Booking{}, err
	}

	checkOut, err := time.Parse(constant.DateOnlyFormat, c.CheckOutDate)
	if err != nil {
		return model.Booking{}, err
	}

	status := c.Status
	if status == "" {
		status = constant.BookingStatusInquiry
	}

	currency := c.Currency
	if currency == "" {
		currency = "USD"
	}

	now := timezone.Now()

	return model.Booking{
		ID:                  uuid.NewString(),
		UserID:              userID,
		GuestName:           c.GuestName,
		PhoneNumber:         c.PhoneNumber,
		CheckInDate:         checkIn,
		CheckOutDate:        checkOut,
		PropertyDestination: c.PropertyDestination,
		Status:              status,
		Currency:            currency,
		TotalAmount:         c.TotalAmount,
		DepositAmount:       c.DepositAmount,
		Notes:               c.Notes,
		LastContactedAt:     &now,
		FollowUpDone:        false,
		Metadata: gModel.Metadata{
			CreatedAt:  now,
			ModifiedAt: now,
			CreatedBy:  userID,
			ModifiedBy: userID,
		},
	}, nil
}

type UpdateBookingRequest struct {
	GuestName           *string  `db:"guest_name"           json:"guest_name"           validate:"omitempty,max=100"`
	PhoneNumber         *string  `db:"phone_number"         json:"phone_number"         validate:"omitempty,max=30"`
	CheckInDate         *string  `json:"check_in_date"                                  validate:"omitempty"`
	CheckOutDate        *string  `json:"check_out_date"                                 validate:"omitempty"`
	PropertyDestination *string  `db:"property_destination" json:"property_destination" validate:"omitempty,max=200"`
	Status              *string  `db:"status"               json:"status"               validate:"omitempty,oneof=Inquiry Quoted 'Deposit Paid' Confirmed 'Checked In' 'Checked Out'"`
	Currency            *string  `db:"currency"             json:"currency"             validate:"omitempty,oneof=USD UGX KES TZS EUR GBP"`
	TotalAmount         *float64 `db:"total_amount"         json:"total_amount"         validate:"omitempty,gte=0"`
	DepositAmount       *float64 `db:"deposit_amount"       json:"deposit_amount"       validate:"omitempty,gte=0"`
	Notes               *string  `db:"notes"                json:"notes"`
	FollowUpDone        *bool    `db:"follow_up_done"       json:"follow_up_done"`
}

type UpdateLastContactedRequest struct {
	LastContactedAt time.Time `db:"last_contacted_at" json:"last_contacted_at" validate:"required"`
}

type BookingResponse struct {
	ID                  string     `json:"id"`
	UserID              string     `json:"user_id"`
	GuestName           string     `json:"guest_name"`
	PhoneNumber         *string    `json:"phone_number,omitempty"`
	CheckInDate         string     `json:"check_in_date"`
	CheckOutDate        string     `json:"check_out_date"`
	PropertyDestination *string    `json:"property_destination,omitempty"`
	Status              string     `json:"status"`
	Currency            string     `json:"currency"`
	TotalAmount         *float64   `json:"total_amount,omitempty"`
	DepositAmount       *float64   `json:"deposit_amount,omitempty"`
	Notes               *string    `json:"notes,omitempty"`
	LastContactedAt     *time.Time `json:"last_contacted_at,omitempty"`
	FollowUpDone        bool       `json:"follow_up_done"`
	gDto.Metadata
}

func (r *BookingResponse) FromModel(model model.Booking) {
	r.ID = model.ID
	r.UserID = model.UserID
	r.GuestName = model.GuestName
	r.PhoneNumber = model.PhoneNumber
	r.CheckInDate = model.CheckInDate.Format(constant.DateOnlyFormat)
	r.CheckOutDate = model.CheckOutDate.Format(constant.DateOnlyFormat)
	r.PropertyDestination = model.PropertyDestination
	r.Status = model.Status
	r.Currency = model.Currency
	r.TotalAmount = model.TotalAmount
	r.DepositAmount = model.DepositAmount
	r.Notes = model.Notes
	r.LastContactedAt = model.LastContactedAt
	r.FollowUpDone = model.FollowUpDone
	r.Metadata.FromModel(model.Metadata)
}

type GetBookingsResponse struct {
	Bookings  []BookingResponse `json:"bookings"`
	TotalPage int               `json:"total_page"`
	TotalData int               `json:"total_data"`
}

func (r *GetBookingsResponse) FromModels(models []model.Booking, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Bookings = make([]BookingResponse, len(models))
	for i, mod := range models {
		r.Bookings[i].FromModel(mod)
	}
}

type TodayDashboardResponse struct {
	Arrivals        []BookingResponse `json:"arrivals"`
	Checkouts       []BookingResponse `json:"checkouts"`
	FollowUpsNeeded []BookingResponse `json:"follow_ups_needed"`
	PaymentsPending []BookingResponse `json:"payments_pending"`
}

func toResponses(models []model.Booking) []BookingResponse {
	responses := make([]BookingResponse, len(models))
	for i, mod := range models {
		responses[i].FromModel(mod)
	}

	return responses
}

func (r *TodayDashboardResponse) FromModels(arrivals, checkouts, followUps, payments []model.Booking) {
	r.Arrivals = toResponses(arrivals)
	r.Checkouts = toResponses(checkouts)
	r.FollowUpsNeeded = toResponses(followUps)
	r.PaymentsPending = toResponses(payments)
}
