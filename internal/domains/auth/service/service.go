package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"checkinhq/config"
	"checkinhq/infras/jwt"
	"checkinhq/infras/kafka"
	"checkinhq/infras/otel"
	"checkinhq/internal/domains/auth/model/dto"
	userModel "checkinhq/internal/domains/user/model"
	userDto "checkinhq/internal/domains/user/model/dto"
	userRepo "checkinhq/internal/domains/user/repository"
	"checkinhq/shared"
	"checkinhq/shared/constant"
	gDto "checkinhq/shared/dto"
	"checkinhq/shared/failure"
	"checkinhq/shared/password"
	"checkinhq/shared/timezone"
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
)

const resetTokenTTL = time.Hour

type Auth interface {
	Register(ctx context.Context, req dto.RegisterRequest) (dto.RegisterResponse, error)
	Login(ctx context.Context, req dto.LoginRequest) (dto.LoginResponse, error)
	RefreshToken(ctx context.Context, req dto.RefreshTokenRequest) (dto.RefreshTokenResponse, error)
	Profile(ctx context.Context, userID string) (userDto.UserResponse, error)
	VerifyEmail(ctx context.Context, req dto.VerifyEmailRequest) error
	ResendVerification(ctx context.Context, userID string) error
	ForgotPassword(ctx context.Context, req dto.ForgotPasswordRequest) error
	ResetPassword(ctx context.Context, req dto.ResetPasswordRequest) error
	ChangePassword(ctx context.Context, req dto.ChangePasswordRequest, userID string) error
}

type serviceImpl struct {
	userRepo   userRepo.User
	cfg        *config.Config
	otel       otel.Otel
	jwtService jwt.JWT
	producer   kafka.Producer
}

func New(userRepo userRepo.User, cfg *config.Config, otel otel.Otel, jwt jwt.JWT, producer kafka.Producer) Auth {
	return &serviceImpl{
		userRepo:   userRepo,
		cfg:        cfg,
		otel:       otel,
		jwtService: jwt,
		producer:   producer,
	}
}

func (s *serviceImpl) Register(ctx context.Context, req dto.RegisterRequest) (res dto.RegisterResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Register")
	defer scope.End()
	defer scope.TraceIfError(err)

	exists, err := s.userRepo.Exist(ctx, filterByEmail(req.Email))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if user exists")

		return res, fmt.Errorf("failed to check if user exists: %w", err)
	}

	if exists {
		return res, failure.BadRequestFromString("email already registered")
	}

	hashedPassword, err := password.Hash(req.Password)
	if err != nil {
		log.Error().Err(err).Msg("failed to hash password")

		return res, fmt.Errorf("failed to hash password: %w", err)
	}

	verificationToken, err := randomToken()
	if err != nil {
		log.Error().Err(err).Msg("failed to generate verification token")

		return res, fmt.Errorf("failed to generate verification token: %w", err)
	}

	user := req.ToUserModel(hashedPassword, verificationToken, s.cfg.App.TrialDays)

	if err = s.userRepo.Insert(ctx, user); err != nil {
		log.Error().Err(err).Msg("failed to create user")

		return res, fmt.Errorf("failed to create user: %w", err)
	}

	tokenPair, err := s.jwtService.GenerateTokenPair(user.ID, user.Email, user.Role)
	if err != nil {
		log.Error().Err(err).Msg("failed to generate tokens")

		return res, fmt.Errorf("failed to generate tokens: %w", err)
	}

	s.publishUserRegistered(ctx, user, verificationToken)

	res.FromModel(user, tokenPair)

	return res, nil
}

func (s *serviceImpl) Login(ctx context.Context, req dto.LoginRequest) (res dto.LoginResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Login")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, err := s.userRepo.Get(ctx, filterByEmail(req.Email))
	if err != nil || user.ID == "" {
		log.Warn().Str("email", req.Email).Msg("login attempt with non-existent email")

		return res, failure.BadRequestFromString("invalid email or password")
	}

	if err := password.Verify(req.Password, user.Password); err != nil {
		log.Warn().Str("email", req.Email).Msg("login attempt with wrong password")

		return res, failure.BadRequestFromString("invalid email or password")
	}

	tokenPair, err := s.jwtService.GenerateTokenPair(user.ID, user.Email, user.Role)
	if err != nil {
		log.Error().Err(err).Msg("failed to generate tokens")

		return res, fmt.Errorf("failed to generate tokens: %w", err)
	}

	now := timezone.Now()
	lastLogin := dto.UpdateLastLoginRequest{LastLoginAt: now}

	if err := s.userRepo.Update(ctx, shared.TransformFields(lastLogin, user.ID), filterByEmail(req.Email)); err != nil {
		log.Warn().Err(err).Str("user_id", user.ID).Msg("failed to update last login")

		return res, fmt.Errorf("failed to update last login: %w", err)
	}

	user.LastLoginAt = &now

	res.FromModel(user, tokenPair)

	return res, nil
}

func (s *serviceImpl) RefreshToken(ctx context.Context, req dto.RefreshTokenRequest) (res dto.RefreshTokenResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".RefreshToken")
	defer scope.End()
	defer scope.TraceIfError(err)

	tokenPair, err := s.jwtService.RefreshTokens(req.RefreshToken)
	if err != nil {
		log.Warn().Err(err).Msg("failed to refresh tokens")

		return res, failure.Unauthorized("invalid refresh token")
	}

	res.FromTokenPair(tokenPair)

	return res, nil
}

func (s *serviceImpl) Profile(ctx context.Context, userID string) (res userDto.UserResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Profile")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, err := s.userRepo.Get(ctx, shared.FilterByID(userID, userModel.FieldID, userModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get user")

		return res, fmt.Errorf("failed to get user: %w", err)
	}

	if user.ID == "" {
		return res, failure.NotFound("user not found")
	}

	res.FromModel(user)

	return res, nil
}

func (s *serviceImpl) VerifyEmail(ctx context.Context, req dto.VerifyEmailRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".VerifyEmail")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, err := s.userRepo.Get(ctx, filterByField(userModel.FieldVerificationToken, req.Token))
	if err != nil {
		log.Error().Err(err).Msg("failed to look up verification token")

		return fmt.Errorf("failed to look up verification token: %w", err)
	}

	if user.ID == "" {
		return failure.BadRequestFromString("invalid verification token")
	}

	update := map[string]any{
		userModel.FieldIsVerified:        true,
		userModel.FieldVerificationToken: nil,
		constant.FieldModifiedAt:         timezone.Now(),
		constant.FieldModifiedBy:         user.ID,
	}

	if err = s.userRepo.Update(ctx, update, shared.FilterByID(user.ID, userModel.FieldID, userModel.TableName)); err != nil {
		log.Error().Err(err).Str("user_id", user.ID).Msg("failed to verify email")

		return fmt.Errorf("failed to verify email: %w", err)
	}

	return nil
}

func (s *serviceImpl) ResendVerification(ctx context.Context, userID string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ResendVerification")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, err := s.userRepo.Get(ctx, shared.FilterByID(userID, userModel.FieldID, userModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get user")

		return fmt.Errorf("failed to get user: %w", err)
	}

	if user.ID == "" {
		return failure.NotFound("user not found")
	}

	if user.IsVerified {
		return failure.BadRequestFromString("email already verified")
	}

	verificationToken, err := randomToken()
	if err != nil {
		log.Error().Err(err).Msg("failed to generate verification token")

		return fmt.Errorf("failed to generate verification token: %w", err)
	}

	update := map[string]any{
		userModel.FieldVerificationToken: verificationToken,
		constant.FieldModifiedAt:         timezone.Now(),
		constant.FieldModifiedBy:         user.ID,
	}

	if err = s.userRepo.Update(ctx, update, shared.FilterByID(user.ID, userModel.FieldID, userModel.TableName)); err != nil {
		log.Error().Err(err).Str("user_id", user.ID).Msg("failed to store verification token")

		return fmt.Errorf("failed to store verification token: %w", err)
	}

	s.publishUserRegistered(ctx, user, verificationToken)

	return nil
}

// ForgotPassword never reveals whether the email exists.
func (s *serviceImpl) ForgotPassword(ctx context.Context, req dto.ForgotPasswordRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ForgotPassword")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, err := s.userRepo.Get(ctx, filterByEmail(req.Email))
	if err != nil {
		log.Error().Err(err).Msg("failed to look up email")

		return fmt.Errorf("failed to look up email: %w", err)
	}

	if user.ID == "" {
		log.Info().Str("email", req.Email).Msg("password reset requested for unknown email")

		return nil
	}

	resetToken, err := randomToken()
	if err != nil {
		log.Error().Err(err).Msg("failed to generate reset token")

		return fmt.Errorf("failed to generate reset token: %w", err)
	}

	now := timezone.Now()
	update := map[string]any{
		userModel.FieldResetToken:        resetToken,
		userModel.FieldResetTokenExpires: now.Add(resetTokenTTL),
		constant.FieldModifiedAt:         now,
		constant.FieldModifiedBy:         user.ID,
	}

	if err = s.userRepo.Update(ctx, update, shared.FilterByID(user.ID, userModel.FieldID, userModel.TableName)); err != nil {
		log.Error().Err(err).Str("user_id", user.ID).Msg("failed to store reset token")

		return fmt.Errorf("failed to store reset token: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		event := kafka.Message{
			Key: user.ID,
			Value: dto.PasswordResetRequestedEvent{
				UserID:      user.ID,
				Email:       user.Email,
				ResetToken:  resetToken,
				RequestedAt: now,
			},
		}

		if err := s.producer.SendMessages(c, s.cfg.Kafka.Topics.UserEvents, event); err != nil {
			log.Error().Err(err).Str("user_id", user.ID).Msg("failed to publish password reset event")
		}
	}()

	return nil
}

func (s *serviceImpl) ResetPassword(ctx context.Context, req dto.ResetPasswordRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ResetPassword")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, err := s.userRepo.Get(ctx, filterByField(userModel.FieldResetToken, req.Token))
	if err != nil {
		log.Error().Err(err).Msg("failed to look up reset token")

		return fmt.Errorf("failed to look up reset token: %w", err)
	}

	if user.ID == "" || user.ResetTokenExpires == nil || user.ResetTokenExpires.Before(timezone.Now()) {
		return failure.BadRequestFromString("invalid or expired reset token")
	}

	hashedPassword, err := password.Hash(req.Password)
	if err != nil {
		log.Error().Err(err).Msg("failed to hash password")

		return fmt.Errorf("failed to hash password: %w", err)
	}

	update := map[string]any{
		userModel.FieldPassword:          hashedPassword,
		userModel.FieldResetToken:        nil,
		userModel.FieldResetTokenExpires: nil,
		constant.FieldModifiedAt:         timezone.Now(),
		constant.FieldModifiedBy:         user.ID,
	}

	if err = s.userRepo.Update(ctx, update, shared.FilterByID(user.ID, userModel.FieldID, userModel.TableName)); err != nil {
		log.Error().Err(err).Str("user_id", user.ID).Msg("failed to reset password")

		return fmt.Errorf("failed to reset password: %w", err)
	}

	return nil
}

func (s *serviceImpl) ChangePassword(ctx context.Context, req dto.ChangePasswordRequest, userID string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ChangePassword")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := shared.FilterByID(userID, userModel.FieldID, userModel.TableName)

	user, err := s.userRepo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get user")

		return fmt.Errorf("failed to get user: %w", err)
	}

	if user.ID == "" {
		return failure.NotFound("user not found")
	}

	if err := password.Verify(req.CurrentPassword, user.Password); err != nil {
		return failure.BadRequestFromString("current password is incorrect")
	}

	hashedPassword, err := password.Hash(req.NewPassword)
	if err != nil {
		log.Error().Err(err).Msg("failed to hash new password")

		return fmt.Errorf("failed to hash new password: %w", err)
	}

	updatePassword := dto.UpdatePasswordRequest{Password: hashedPassword}

	if err = s.userRepo.Update(ctx, shared.TransformFields(updatePassword, userID), filter); err != nil {
		log.Error().Err(err).Msg("failed to update password")

		return fmt.Errorf("failed to update password: %w", err)
	}

	return nil
}

func (s *serviceImpl) publishUserRegistered(ctx context.Context, user userModel.User, verificationToken string) {
	go func() {
		c := context.WithoutCancel(ctx)

		event := kafka.Message{
			Key: user.ID,
			Value: dto.UserRegisteredEvent{
				UserID:            user.ID,
				Email:             user.Email,
				FullName:          user.FullName,
				VerificationToken: verificationToken,
				RegisteredAt:      timezone.Now(),
			},
		}

		if err := s.producer.SendMessages(c, s.cfg.Kafka.Topics.UserEvents, event); err != nil {
			log.Error().Err(err).Str("user_id", user.ID).Msg("failed to publish user registered event")
		}
	}()
}

func randomToken() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to read random bytes: %w", err)
	}

	return hex.EncodeToString(buf), nil
}

func filterByEmail(email string) gDto.FilterGroup {
	return filterByField(userModel.FieldEmail, email)
}

func filterByField(field, value string) gDto.FilterGroup {
	return gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    field,
				Operator: gDto.FilterOperatorEq,
				Value:    value,
				Table:    userModel.TableName,
			},
		},
	}
}
