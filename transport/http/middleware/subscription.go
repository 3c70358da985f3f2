package middleware

import (
	"checkinhq/infras/otel"
	"checkinhq/internal/domains/subscription/policy"
	userModel "checkinhq/internal/domains/user/model"
	userRepository "checkinhq/internal/domains/user/repository"
	"checkinhq/shared"
	"checkinhq/shared/constant"
	"checkinhq/shared/failure"
	"checkinhq/shared/logger"
	"checkinhq/transport/http/response"
	"net/http"
	"time"
)

// Subscription gates booking features behind an active trial or subscription.
type Subscription interface {
	RequireActive(http.Handler) http.Handler
}

type subscriptionImpl struct {
	userRepo userRepository.User
	otel     otel.Otel
}

func NewSubscriptionMiddleware(userRepo userRepository.User, otel otel.Otel) Subscription {
	return &subscriptionImpl{
		userRepo: userRepo,
		otel:     otel,
	}
}

type deniedPayload struct {
	Error              string     `json:"error"`
	Message            string     `json:"message"`
	TrialExpired       bool       `json:"trial_expired"`
	SubscriptionStatus string     `json:"subscription_status"`
	TrialExpiresAt     *time.Time `json:"trial_expires_at,omitempty"`
}

// RequireActive loads the authenticated user and evaluates the access policy.
// A lookup failure denies access rather than letting requests through with an
// unverified subscription state.
func (m *subscriptionImpl) RequireActive(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		ctx := request.Context()
		ctx, scope := m.otel.NewScope(ctx, constant.OtelHandlerScopeName, "subscription.middleware")

		userID, _ := ctx.Value(constant.ContextKeyUserID).(string)
		if userID == "" {
			err := failure.Unauthorized("Authentication required")
			response.WithError(writer, err)

			scope.TraceError(err)
			scope.End()

			return
		}

		user, err := m.userRepo.Get(ctx, shared.FilterByID(userID, userModel.FieldID, userModel.TableName))
		if err != nil {
			logger.ErrorWithStack(err)

			err := failure.InternalErrorFromString("unable to verify subscription status")
			response.WithError(writer, err)

			scope.TraceError(err)
			scope.End()

			return
		}

		if user.ID == "" {
			err := failure.Unauthorized("User not found")
			response.WithError(writer, err)

			scope.TraceError(err)
			scope.End()

			return
		}

		decision := policy.Evaluate(policy.Input{
			Role:               user.Role,
			SubscriptionStatus: user.SubscriptionStatus,
			TrialExpiresAt:     user.TrialExpiresAt,
		}, time.Now())

		if !decision.Allowed {
			scope.SetAttributes(map[string]any{
				"subscription.status": decision.Status,
				"reason":              "subscription_inactive",
			})
			scope.End()

			response.WithPayload(writer, http.StatusForbidden, deniedPayload{
				Error:              "Subscription required",
				Message:            "Your trial has expired. Please subscribe to continue using the service.",
				TrialExpired:       decision.TrialExpired,
				SubscriptionStatus: decision.Status,
				TrialExpiresAt:     decision.TrialExpiresAt,
			})

			return
		}

		scope.End()
		next.ServeHTTP(writer, request.WithContext(ctx))
	})
}
