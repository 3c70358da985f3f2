package model

import (
	"checkinhq/shared/model"
)

const (
	TableName  = "payments"
	EntityName = "payment"

	FieldID               = "id"
	FieldUserID           = "user_id"
	FieldOrderID          = "order_id"
	FieldOrderTrackingID  = "order_tracking_id"
	FieldAmount           = "amount"
	FieldCurrency         = "currency"
	FieldStatus           = "status"
	FieldPlanType         = "plan_type"
	FieldPaymentMethod    = "payment_method"
	FieldConfirmationCode = "confirmation_code"
)

type Payment struct {
	ID               string  `db:"id"`
	UserID           string  `db:"user_id"`
	OrderID          string  `db:"order_id"`
	OrderTrackingID  string  `db:"order_tracking_id"`
	Amount           float64 `db:"amount"`
	Currency         string  `db:"currency"`
	Status           string  `db:"status"`
	PlanType         string  `db:"plan_type"`
	PaymentMethod    *string `db:"payment_method"`
	ConfirmationCode *string `db:"confirmation_code"`
	model.Metadata
}
