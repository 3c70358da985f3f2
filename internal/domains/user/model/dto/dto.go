package dto

import (
	"checkinhq/internal/domains/user/model"
	gDto "checkinhq/shared/dto"
	"time"
)

type UserResponse struct {
	ID                 string     `json:"id"`
	Email              string     `json:"email"`
	FullName           *string    `json:"full_name,omitempty"`
	BusinessType       *string    `json:"business_type,omitempty"`
	Role               string     `json:"role"`
	IsVerified         bool       `json:"is_verified"`
	SubscriptionStatus string     `json:"subscription_status"`
	TrialExpiresAt     *time.Time `json:"trial_expires_at,omitempty"`
	LastLoginAt        *time.Time `json:"last_login_at,omitempty"`
	gDto.Metadata
}

func (r *UserResponse) FromModel(model model.User) {
	r.ID = model.ID
	r.Email = model.Email
	r.FullName = model.FullName
	r.BusinessType = model.BusinessType
	r.Role = model.Role
	r.IsVerified = model.IsVerified
	r.SubscriptionStatus = model.SubscriptionStatus
	r.TrialExpiresAt = model.TrialExpiresAt
	r.LastLoginAt = model.LastLoginAt
	r.Metadata.FromModel(model.Metadata)
}
