package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"checkinhq/config"
	"checkinhq/infras/kafka"
	"checkinhq/infras/otel"
	"checkinhq/infras/pesapal"
	"checkinhq/internal/domains/payment/model"
	"checkinhq/internal/domains/payment/model/dto"
	"checkinhq/internal/domains/payment/repository"
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

const (
	monthlyPriceKES = 1000
	yearlyPriceKES  = 10000
)

type Payment interface {
	Subscribe(ctx context.Context, req dto.SubscribeRequest, userID string) (dto.SubscribeResponse, error)
	HandleIPN(ctx context.Context, orderTrackingID string) error
	Verify(ctx context.Context, orderTrackingID, userID string) (dto.PaymentResponse, error)
}

type serviceImpl struct {
	repo     repository.Payment
	userRepo userRepo.User
	gateway  pesapal.Client
	cfg      *config.Config
	otel     otel.Otel
	producer kafka.Producer
}

func New(repo repository.Payment, userRepo userRepo.User, gateway pesapal.Client, cfg *config.Config, otel otel.Otel, producer kafka.Producer) Payment {
	return &serviceImpl{
		repo:     repo,
		userRepo: userRepo,
		gateway:  gateway,
		cfg:      cfg,
		otel:     otel,
		producer: producer,
	}
}

func (s *serviceImpl) Subscribe(ctx context.Context, req dto.SubscribeRequest, userID string) (res dto.SubscribeResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Subscribe")
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

	amount := float64(monthlyPriceKES)
	if req.Plan == constant.PlanYearly {
		amount = float64(yearlyPriceKES)
	}

	orderID := fmt.Sprintf("CHECKIN-%s-%d", userID, timezone.Now().Unix())

	order, err := s.gateway.SubmitOrder(ctx, pesapal.OrderRequest{
		ID:             orderID,
		Currency:       "KES",
		Amount:         amount,
		Description:    fmt.Sprintf("CheckinHQ %s subscription", req.Plan),
		CallbackURL:    s.cfg.App.FrontendURL + "/payment/callback",
		NotificationID: s.cfg.Pesapal.IPNID,
		BillingAddress: pesapal.Billing{
			EmailAddress: user.Email,
		},
	})
	if err != nil {
		log.Error().Err(err).Str("order_id", orderID).Msg("failed to submit payment order")

		return res, fmt.Errorf("failed to submit payment order: %w", err)
	}

	payment := req.ToModel(userID, orderID, order, amount)

	if err = s.repo.Insert(ctx, payment); err != nil {
		log.Error().Err(err).Str("order_id", orderID).Msg("failed to persist payment")

		return res, fmt.Errorf("failed to persist payment: %w", err)
	}

	res = dto.SubscribeResponse{
		OrderID:         orderID,
		OrderTrackingID: order.OrderTrackingID,
		RedirectURL:     order.RedirectURL,
		Amount:          amount,
		Currency:        payment.Currency,
		Plan:            req.Plan,
	}

	return res, nil
}

// HandleIPN processes a gateway notification. Errors are logged, never
// returned: the caller answers 200 to the gateway regardless.
func (s *serviceImpl) HandleIPN(ctx context.Context, orderTrackingID string) error {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".HandleIPN")
	defer scope.End()

	status, err := s.gateway.GetTransactionStatus(ctx, orderTrackingID)
	if err != nil {
		log.Error().Err(err).Str("order_tracking_id", orderTrackingID).Msg("failed to query transaction status")

		return nil
	}

	payment, err := s.repo.Get(ctx, filterByTrackingID(orderTrackingID))
	if err != nil || payment.ID == "" {
		log.Error().Err(err).Str("order_tracking_id", orderTrackingID).Msg("payment not found for notification")

		return nil
	}

	if err = s.applyGatewayStatus(ctx, payment, status); err != nil {
		log.Error().Err(err).Str("payment_id", payment.ID).Msg("failed to apply gateway status")
	}

	return nil
}

func (s *serviceImpl) Verify(ctx context.Context, orderTrackingID, userID string) (res dto.PaymentResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Verify")
	defer scope.End()
	defer scope.TraceIfError(err)

	payment, err := s.repo.Get(ctx, filterByTrackingID(orderTrackingID))
	if err != nil {
		log.Error().Err(err).Str("order_tracking_id", orderTrackingID).Msg("failed to get payment")

		return res, fmt.Errorf("failed to get payment: %w", err)
	}

	if payment.ID == "" || payment.UserID != userID {
		return res, failure.NotFound("payment not found")
	}

	// A pending payment may have completed without the notification landing.
	if payment.Status == constant.PaymentStatusPending {
		status, gwErr := s.gateway.GetTransactionStatus(ctx, orderTrackingID)
		if gwErr != nil {
			log.Warn().Err(gwErr).Str("order_tracking_id", orderTrackingID).Msg("failed to query transaction status")
		} else if err = s.applyGatewayStatus(ctx, payment, status); err != nil {
			return res, err
		} else if status.Completed() {
			payment.Status = constant.PaymentStatusCompleted
			payment.PaymentMethod = &status.PaymentMethod
			payment.ConfirmationCode = &status.ConfirmationCode
		}
	}

	res.FromModel(payment)

	return res, nil
}

// applyGatewayStatus updates the payment row and, on completion, activates
// the user's subscription exactly once.
func (s *serviceImpl) applyGatewayStatus(ctx context.Context, payment model.Payment, status *pesapal.TransactionStatus) error {
	if payment.Status == constant.PaymentStatusCompleted {
		return nil
	}

	newStatus := constant.PaymentStatusPending
	if status.Completed() {
		newStatus = constant.PaymentStatusCompleted
	} else if status.StatusDescription == "FAILED" || status.StatusDescription == "INVALID" {
		newStatus = constant.PaymentStatusFailed
	}

	now := timezone.Now()
	update := map[string]any{
		model.FieldStatus:           newStatus,
		model.FieldPaymentMethod:    status.PaymentMethod,
		model.FieldConfirmationCode: status.ConfirmationCode,
		constant.FieldModifiedAt:    now,
		constant.FieldModifiedBy:    payment.UserID,
	}

	if err := s.repo.Update(ctx, update, shared.FilterByID(payment.ID, model.FieldID, model.TableName)); err != nil {
		return fmt.Errorf("failed to update payment: %w", err)
	}

	if newStatus != constant.PaymentStatusCompleted {
		return nil
	}

	expiresAt := now.AddDate(0, 1, 0)
	if payment.PlanType == constant.PlanYearly {
		expiresAt = now.AddDate(1, 0, 0)
	}

	userUpdate := map[string]any{
		userModel.FieldSubscriptionStatus:    constant.SubscriptionStatusActive,
		userModel.FieldSubscriptionExpiresAt: expiresAt,
		constant.FieldModifiedAt:             now,
		constant.FieldModifiedBy:             payment.UserID,
	}

	if err := s.userRepo.Update(ctx, userUpdate, shared.FilterByID(payment.UserID, userModel.FieldID, userModel.TableName)); err != nil {
		return fmt.Errorf("failed to activate subscription: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		event := kafka.Message{
			Key: payment.UserID,
			Value: dto.PaymentCompletedEvent{
				PaymentID:       payment.ID,
				UserID:          payment.UserID,
				OrderTrackingID: payment.OrderTrackingID,
				Plan:            payment.PlanType,
				Amount:          payment.Amount,
				Currency:        payment.Currency,
				CompletedAt:     now,
			},
		}

		if err := s.producer.SendMessages(c, s.cfg.Kafka.Topics.PaymentEvents, event); err != nil {
			log.Error().Err(err).Str("payment_id", payment.ID).Msg("failed to publish payment completed event")
		}
	}()

	return nil
}

func filterByTrackingID(orderTrackingID string) gDto.FilterGroup {
	return gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldOrderTrackingID,
				Operator: gDto.FilterOperatorEq,
				Value:    orderTrackingID,
				Table:    model.TableName,
			},
		},
	}
}
