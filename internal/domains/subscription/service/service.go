package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"checkinhq/infras/otel"
	"checkinhq/internal/domains/subscription/model/dto"
	"checkinhq/internal/domains/subscription/policy"
	userModel "checkinhq/internal/domains/user/model"
	userRepo "checkinhq/internal/domains/user/repository"
	"checkinhq/shared"
	"checkinhq/shared/constant"
	gDto "checkinhq/shared/dto"
	"checkinhq/shared/failure"
	"checkinhq/shared/timezone"
	"context"
	"fmt"

	"github.com/rs/zerolog/log"
)

type Subscription interface {
	GetStatus(ctx context.Context, userID string) (dto.StatusResponse, error)
	ListSubscribers(ctx context.Context, params gDto.QueryParams) (dto.ListSubscribersResponse, error)
	Activate(ctx context.Context, userID string) error
	Deactivate(ctx context.Context, userID string) error
	Toggle(ctx context.Context, userID string) (dto.StatusResponse, error)
}

type serviceImpl struct {
	userRepo userRepo.User
	otel     otel.Otel
}

func New(userRepo userRepo.User, otel otel.Otel) Subscription {
	return &serviceImpl{
		userRepo: userRepo,
		otel:     otel,
	}
}

func (s *serviceImpl) GetStatus(ctx context.Context, userID string) (res dto.StatusResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetStatus")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, err := s.getUser(ctx, userID)
	if err != nil {
		return res, err
	}

	decision := policy.Evaluate(policy.Input{
		Role:               user.Role,
		SubscriptionStatus: user.SubscriptionStatus,
		TrialExpiresAt:     user.TrialExpiresAt,
	}, timezone.Now())

	res.FromDecision(decision, user.Role == constant.RoleAdmin)

	return res, nil
}

func (s *serviceImpl) ListSubscribers(ctx context.Context, params gDto.QueryParams) (res dto.ListSubscribersResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ListSubscribers")
	defer scope.End()
	defer scope.TraceIfError(err)

	users, err := s.userRepo.GetAll(ctx, params, gDto.FilterGroup{})
	if err != nil {
		log.Error().Err(err).Msg("failed to list subscribers")

		return res, fmt.Errorf("failed to list subscribers: %w", err)
	}

	res.FromModels(users, timezone.Now())

	return res, nil
}

func (s *serviceImpl) Activate(ctx context.Context, userID string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Activate")
	defer scope.End()
	defer scope.TraceIfError(err)

	return s.setStatus(ctx, userID, constant.SubscriptionStatusActive)
}

func (s *serviceImpl) Deactivate(ctx context.Context, userID string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Deactivate")
	defer scope.End()
	defer scope.TraceIfError(err)

	return s.setStatus(ctx, userID, constant.SubscriptionStatusExpired)
}

// Toggle flips active to expired and anything else to active.
func (s *serviceImpl) Toggle(ctx context.Context, userID string) (res dto.StatusResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Toggle")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, err := s.getUser(ctx, userID)
	if err != nil {
		return res, err
	}

	next := constant.SubscriptionStatusActive
	if user.SubscriptionStatus == constant.SubscriptionStatusActive {
		next = constant.SubscriptionStatusExpired
	}

	if err = s.setStatus(ctx, userID, next); err != nil {
		return res, err
	}

	user.SubscriptionStatus = next

	decision := policy.Evaluate(policy.Input{
		Role:               user.Role,
		SubscriptionStatus: user.SubscriptionStatus,
		TrialExpiresAt:     user.TrialExpiresAt,
	}, timezone.Now())

	res.FromDecision(decision, user.Role == constant.RoleAdmin)

	return res, nil
}

func (s *serviceImpl) getUser(ctx context.Context, userID string) (userModel.User, error) {
	user, err := s.userRepo.Get(ctx, shared.FilterByID(userID, userModel.FieldID, userModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get user")

		return user, fmt.Errorf("failed to get user: %w", err)
	}

	if user.ID == "" {
		return user, failure.NotFound("user not found")
	}

	return user, nil
}

func (s *serviceImpl) setStatus(ctx context.Context, userID, status string) error {
	actor, _ := ctx.Value(constant.ContextKeyUserID).(string)
	if actor == "" {
		actor = constant.ContextSystem
	}

	filter := shared.FilterByID(userID, userModel.FieldID, userModel.TableName)

	exist, err := s.userRepo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if user exists")

		return fmt.Errorf("failed to check if user exists: %w", err)
	}

	if !exist {
		return failure.NotFound("user not found")
	}

	update := dto.UpdateStatusRequest{SubscriptionStatus: status}

	if err = s.userRepo.Update(ctx, shared.TransformFields(update, actor), filter); err != nil {
		log.Error().Err(err).Str("user_id", userID).Msg("failed to update subscription status")

		return fmt.Errorf("failed to update subscription status: %w", err)
	}

	return nil
}
