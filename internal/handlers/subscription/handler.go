package subscription

import (
	"checkinhq/infras/otel"
	"checkinhq/internal/domains/subscription/service"
	"checkinhq/shared/constant"
	gDto "checkinhq/shared/dto"
	"checkinhq/shared/failure"
	"checkinhq/transport/http/middleware"
	"checkinhq/transport/http/response"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service    service.Subscription
	middleware middleware.AuthRole
	otel       otel.Otel
}

func New(service service.Subscription, authRole middleware.AuthRole, otel otel.Otel) Handler {
	return Handler{
		service:    service,
		middleware: authRole,
		otel:       otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/subscription", func(routerGroup chi.Router) {
		routerGroup.Use(handler.middleware.Auth)

		routerGroup.Get("/status", handler.GetStatus)

		routerGroup.Group(func(r chi.Router) {
			r.Use(handler.middleware.RBAC)
			r.Get("/users", handler.ListSubscribers)
			r.Post("/activate/{userID}", handler.Activate)
			r.Post("/deactivate/{userID}", handler.Deactivate)
			r.Post("/toggle/{userID}", handler.Toggle)
		})
	})
}

// GetStatus returns the caller's subscription and trial state.
// @Summary Get subscription status
// @Description Retrieve the caller's subscription status, trial expiry and days remaining.
// @Tags Subscription
// @Produce json
// @Success 200 {object} response.Data[dto.StatusResponse] "Subscription status"
// @Failure 401 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/subscription/status [get]
// @Security BearerAuth
func (handler *Handler) GetStatus(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetStatus")
	defer scope.End()

	userID, ok := ctx.Value(constant.ContextKeyUserID).(string)
	if !ok || userID == "" {
		err := failure.Unauthorized("Authentication required")
		scope.TraceError(err)

		response.WithError(w, err)

		return
	}

	res, err := handler.service.GetStatus(ctx, userID)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to fetch subscription status")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// ListSubscribers returns all non-admin users and their subscription state.
// @Summary List subscribers
// @Description Retrieve all users with their subscription and trial state. Admin only.
// @Tags Subscription
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Success 200 {object} response.Data[dto.ListSubscribersResponse] "Subscriber list"
// @Failure 401 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/subscription/users [get]
// @Security BearerAuth
func (handler *Handler) ListSubscribers(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ListSubscribers")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	res, err := handler.service.ListSubscribers(ctx, queryParams)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to list subscribers")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// Activate grants a user an active subscription.
// @Summary Activate a user's subscription
// @Description Set a user's subscription status to active. Admin only.
// @Tags Subscription
// @Produce json
// @Param userID path string true "User ID"
// @Success 200 {object} response.Message "Subscription activated"
// @Failure 401 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/subscription/activate/{userID} [post]
// @Security BearerAuth
func (handler *Handler) Activate(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Activate")
	defer scope.End()

	userID := chi.URLParam(r, "userID")

	if err := handler.service.Activate(ctx, userID); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to activate subscription")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Subscription activated for user " + userID)

	response.WithMessage(w, http.StatusOK, "Subscription activated")
}

// Deactivate revokes a user's subscription.
// @Summary Deactivate a user's subscription
// @Description Set a user's subscription status to expired. Admin only.
// @Tags Subscription
// @Produce json
// @Param userID path string true "User ID"
// @Success 200 {object} response.Message "Subscription deactivated"
// @Failure 401 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/subscription/deactivate/{userID} [post]
// @Security BearerAuth
func (handler *Handler) Deactivate(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Deactivate")
	defer scope.End()

	userID := chi.URLParam(r, "userID")

	if err := handler.service.Deactivate(ctx, userID); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to deactivate subscription")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Subscription deactivated for user " + userID)

	response.WithMessage(w, http.StatusOK, "Subscription deactivated")
}

// Toggle flips a user's subscription between active and expired.
// @Summary Toggle a user's subscription
// @Description Flip a user's subscription status: active becomes expired, anything else becomes active. Admin only.
// @Tags Subscription
// @Produce json
// @Param userID path string true "User ID"
// @Success 200 {object} response.Data[dto.StatusResponse] "Updated subscription status"
// @Failure 401 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/subscription/toggle/{userID} [post]
// @Security BearerAuth
func (handler *Handler) Toggle(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Toggle")
	defer scope.End()

	userID := chi.URLParam(r, "userID")

	res, err := handler.service.Toggle(ctx, userID)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to toggle subscription")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Subscription toggled for user " + userID)

	response.WithJSON(w, http.StatusOK, res)
}
