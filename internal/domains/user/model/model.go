package model

import (
	"checkinhq/shared/model"
	"time"
)

const (
	TableName  = "users"
	EntityName = "user"

	FieldID                    = "id"
	FieldEmail                 = "email"
	FieldPassword              = "password"
	FieldFullName              = "full_name"
	FieldBusinessType          = "business_type"
	FieldRole                  = "role"
	FieldIsVerified            = "is_verified"
	FieldVerificationToken     = "verification_token"
	FieldResetToken            = "reset_token"
	FieldResetTokenExpires     = "reset_token_expires"
	FieldTrialStartedAt        = "trial_started_at"
	FieldTrialExpiresAt        = "trial_expires_at"
	FieldSubscriptionStatus    = "subscription_status"
	FieldSubscriptionExpiresAt = "subscription_expires_at"
	FieldLastLoginAt           = "last_login_at"
)

type User struct {
	ID                    string     `db:"id"`
	Email                 string     `db:"email"`
	Password              string     `db:"password"`
	FullName              *string    `db:"full_name"`
	BusinessType          *string    `db:"business_type"`
	Role                  string     `db:"role"`
	IsVerified            bool       `db:"is_verified"`
	VerificationToken     *string    `db:"verification_token"`
	ResetToken            *string    `db:"reset_token"`
	ResetTokenExpires     *time.Time `db:"reset_token_expires"`
	TrialStartedAt        *time.Time `db:"trial_started_at"`
	TrialExpiresAt        *time.Time `db:"trial_expires_at"`
	SubscriptionStatus    string     `db:"subscription_status"`
	SubscriptionExpiresAt *time.Time `db:"subscription_expires_at"`
	LastLoginAt           *time.Time `db:"last_login_at"`
	model.Metadata
}
