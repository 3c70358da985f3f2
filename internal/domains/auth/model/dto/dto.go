package dto

import (
	"checkinhq/infras/jwt"
	userModel "checkinhq/internal/domains/user/model"
	usrDto "checkinhq/internal/domains/user/model/dto"
	"checkinhq/shared/constant"
	gModel "checkinhq/shared/model"
	"checkinhq/shared/timezone"
	"time"

	"github.com/google/uuid"
)

type RegisterRequest struct {
	Email        string  `json:"email"                   validate:"required,email"`
	Password     string  `json:"password"                validate:"required,min=8"`
	FullName     *string `json:"full_name,omitempty"`
	BusinessType *string `json:"business_type,omitempty" validate:"omitempty,oneof=airbnb tour"`
}

// ToUserModel seeds the trial window: status trial, expiry trialDays out.
func (r *RegisterRequest) ToUserModel(hashedPassword, verificationToken string, trialDays int) userModel.User {
	now := timezone.Now()
	trialExpiresAt := now.Add(time.Duration(trialDays) * constant.HoursPerDay * time.Hour)

	return userModel.User{
		ID:                 uuid.NewString(),
		Email:              r.Email,
		Password:           hashedPassword,
		FullName:           r.FullName,
		BusinessType:       r.BusinessType,
		Role:               constant.RoleHost,
		IsVerified:         false,
		VerificationToken:  &verificationToken,
		TrialStartedAt:     &now,
		TrialExpiresAt:     &trialExpiresAt,
		SubscriptionStatus: constant.SubscriptionStatusTrial,
		Metadata: gModel.Metadata{
			CreatedAt:  now,
			ModifiedAt: now,
			CreatedBy:  constant.ContextSystem,
			ModifiedBy: constant.ContextSystem,
		},
	}
}

type RegisterResponse struct {
	User         usrDto.UserResponse `json:"user"`
	AccessToken  string              `json:"access_token"`
	RefreshToken string              `json:"refresh_token"`
	ExpiresIn    int64               `json:"expires_in"`
}

func (r *RegisterResponse) FromModel(model userModel.User, tokenPair *jwt.TokenPair) {
	r.User.FromModel(model)
	r.AccessToken = tokenPair.AccessToken
	r.RefreshToken = tokenPair.RefreshToken
	r.ExpiresIn = tokenPair.ExpiresIn
}

type LoginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type LoginResponse struct {
	User         usrDto.UserResponse `json:"user"`
	AccessToken  string              `json:"access_token"`
	RefreshToken string              `json:"refresh_token"`
	ExpiresIn    int64               `json:"expires_in"`
}

func (l *LoginResponse) FromModel(model userModel.User, tokenPair *jwt.TokenPair) {
	l.User.FromModel(model)
	l.AccessToken = tokenPair.AccessToken
	l.RefreshToken = tokenPair.RefreshToken
	l.ExpiresIn = tokenPair.ExpiresIn
}

type UpdateLastLoginRequest struct {
	LastLoginAt time.Time `db:"last_login_at" json:"last_login_at" validate:"required"`
}

type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

type RefreshTokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    int64  `json:"expires_in"`
}

func (r *RefreshTokenResponse) FromTokenPair(tokenPair *jwt.TokenPair) {
	r.AccessToken = tokenPair.AccessToken
	r.RefreshToken = tokenPair.RefreshToken
	r.ExpiresIn = tokenPair.ExpiresIn
}

type VerifyEmailRequest struct {
	Token string `json:"token" validate:"required"`
}

type ForgotPasswordRequest struct {
	Email string `json:"email" validate:"required,email"`
}

type ResetPasswordRequest struct {
	Token    string `json:"token"    validate:"required"`
	Password string `json:"password" validate:"required,min=8"`
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password" validate:"required"`
	NewPassword     string `json:"new_password"     validate:"required,min=8"`
}

type UpdatePasswordRequest struct {
	Password string `db:"password" json:"password" validate:"required,min=8"`
}

// UserRegisteredEvent is published so the notification service can send the
// verification mail.
type UserRegisteredEvent struct {
	UserID            string    `json:"user_id"`
	Email             string    `json:"email"`
	FullName          *string   `json:"full_name,omitempty"`
	VerificationToken string    `json:"verification_token"`
	RegisteredAt      time.Time `json:"registered_at"`
}

// PasswordResetRequestedEvent carries the reset token for mail delivery.
type PasswordResetRequestedEvent struct {
	UserID      string    `json:"user_id"`
	Email       string    `json:"email"`
	ResetToken  string    `json:"reset_token"`
	RequestedAt time.Time `json:"requested_at"`
}
