package dto

import (
	"checkinhq/infras/pesapal"
	"checkinhq/internal/domains/payment/model"
	"checkinhq/shared/constant"
	gModel "checkinhq/shared/model"
	"checkinhq/shared/timezone"
	"time"

	"github.com/google/uuid"
)

type SubscribeRequest struct {
	Plan string `json:"plan" validate:"required,oneof=monthly yearly"`
}

func (r *SubscribeRequest) ToModel(userID, orderID string, order *pesapal.OrderResponse, amount float64) model.Payment {
	now := timezone.Now()

	return model.Payment{
		ID:              uuid.NewString(),
		UserID:          userID,
		OrderID:         orderID,
		OrderTrackingID: order.OrderTrackingID,
		Amount:          amount,
		Currency:        "KES",
		Status:          constant.PaymentStatusPending,
		PlanType:        r.Plan,
		Metadata: gModel.Metadata{
			CreatedAt:  now,
			ModifiedAt: now,
			CreatedBy:  userID,
			ModifiedBy: userID,
		},
	}
}

type SubscribeResponse struct {
	OrderID         string  `json:"order_id"`
	OrderTrackingID string  `json:"order_tracking_id"`
	RedirectURL     string  `json:"redirect_url"`
	Amount          float64 `json:"amount"`
	Currency        string  `json:"currency"`
	Plan            string  `json:"plan"`
}

type PaymentResponse struct {
	ID               string    `json:"id"`
	OrderID          string    `json:"order_id"`
	OrderTrackingID  string    `json:"order_tracking_id"`
	Amount           float64   `json:"amount"`
	Currency         string    `json:"currency"`
	Status           string    `json:"status"`
	Plan             string    `json:"plan"`
	PaymentMethod    *string   `json:"payment_method,omitempty"`
	ConfirmationCode *string   `json:"confirmation_code,omitempty"`
	CreatedAt        time.Time `json:"created_at"`
}

func (r *PaymentResponse) FromModel(model model.Payment) {
	r.ID = model.ID
	r.OrderID = model.OrderID
	r.OrderTrackingID = model.OrderTrackingID
	r.Amount = model.Amount
	r.Currency = model.Currency
	r.Status = model.Status
	r.Plan = model.PlanType
	r.PaymentMethod = model.PaymentMethod
	r.ConfirmationCode = model.ConfirmationCode
	r.CreatedAt = model.CreatedAt
}

// PaymentCompletedEvent notifies downstream consumers of an activated
// subscription.
type PaymentCompletedEvent struct {
	PaymentID       string    `json:"payment_id"`
	UserID          string    `json:"user_id"`
	OrderTrackingID string    `json:"order_tracking_id"`
	Plan            string    `json:"plan"`
	Amount          float64   `json:"amount"`
	Currency        string    `json:"currency"`
	CompletedAt     time.Time `json:"completed_at"`
}
