package dto

import (
	"checkinhq/internal/domains/subscription/policy"
	userModel "checkinhq/internal/domains/user/model"
	"time"
)

type StatusResponse struct {
	SubscriptionStatus string     `json:"subscription_status"`
	TrialExpiresAt     *time.Time `json:"trial_expires_at,omitempty"`
	TrialExpired       bool       `json:"trial_expired"`
	DaysRemaining      int        `json:"days_remaining"`
	HasActiveAccess    bool       `json:"has_active_access"`
	IsAdmin            bool       `json:"is_admin"`
}

func (r *StatusResponse) FromDecision(decision policy.Decision, isAdmin bool) {
	r.SubscriptionStatus = decision.Status
	r.TrialExpiresAt = decision.TrialExpiresAt
	r.TrialExpired = decision.TrialExpired
	r.DaysRemaining = decision.DaysRemaining
	r.HasActiveAccess = decision.Allowed
	r.IsAdmin = isAdmin
}

type SubscriberResponse struct {
	ID                 string     `json:"id"`
	Email              string     `json:"email"`
	FullName           *string    `json:"full_name,omitempty"`
	BusinessType       *string    `json:"business_type,omitempty"`
	SubscriptionStatus string     `json:"subscription_status"`
	TrialExpiresAt     *time.Time `json:"trial_expires_at,omitempty"`
	TrialExpired       bool       `json:"trial_expired"`
	LastLoginAt        *time.Time `json:"last_login_at,omitempty"`
	CreatedAt          time.Time  `json:"created_at"`
}

func (r *SubscriberResponse) FromModel(model userModel.User, now time.Time) {
	r.ID = model.ID
	r.Email = model.Email
	r.FullName = model.FullName
	r.BusinessType = model.BusinessType
	r.SubscriptionStatus = model.SubscriptionStatus
	r.TrialExpiresAt = model.TrialExpiresAt
	r.TrialExpired = model.TrialExpiresAt != nil && model.TrialExpiresAt.Before(now)
	r.LastLoginAt = model.LastLoginAt
	r.CreatedAt = model.CreatedAt
}

type ListSubscribersResponse struct {
	Users []SubscriberResponse `json:"users"`
}

func (r *ListSubscribersResponse) FromModels(models []userModel.User, now time.Time) {
	r.Users = make([]SubscriberResponse, len(models))
	for i, mod := range models {
		r.Users[i].FromModel(mod, now)
	}
}

type UpdateStatusRequest struct {
	SubscriptionStatus string `db:"subscription_status" json:"subscription_status" validate:"required,oneof=trial active expired"`
}
