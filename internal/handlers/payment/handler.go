package payment

import (
	"checkinhq/infras/otel"
	"checkinhq/internal/domains/payment/model/dto"
	"checkinhq/internal/domains/payment/service"
	"checkinhq/shared/constant"
	"checkinhq/shared/failure"
	"checkinhq/shared/validator"
	"checkinhq/transport/http/middleware"
	"checkinhq/transport/http/response"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service    service.Payment
	middleware middleware.AuthRole
	otel       otel.Otel
}

func New(service service.Payment, authRole middleware.AuthRole, otel otel.Otel) Handler {
	return Handler{
		service:    service,
		middleware: authRole,
		otel:       otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/payments", func(routerGroup chi.Router) {
		routerGroup.Get("/ipn", handler.HandleIPN)

		routerGroup.Group(func(r chi.Router) {
			r.Use(handler.middleware.Auth)
			r.Post("/subscribe", handler.Subscribe)
			r.Get("/verify/{orderTrackingID}", handler.Verify)
		})
	})
}

// Subscribe initiates a subscription payment with the gateway.
// @Summary Subscribe to a plan
// @Description Create a pending payment and return the gateway redirect URL.
// @Tags Payment
// @Accept json
// @Produce json
// @Param request body dto.SubscribeRequest true "Subscribe Request"
// @Success 201 {object} response.Data[dto.SubscribeResponse] "Payment initiated"
// @Failure 400 {object} response.Error
// @Failure 401 {object} response.Error
// @Failure 502 {object} response.Error
// @Router /v1/payments/subscribe [post]
// @Security BearerAuth
func (handler *Handler) Subscribe(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Subscribe")
	defer scope.End()

	userID, ok := ctx.Value(constant.ContextKeyUserID).(string)
	if !ok || userID == "" {
		err := failure.Unauthorized("Authentication required")
		scope.TraceError(err)

		response.WithError(w, err)

		return
	}

	req := dto.SubscribeRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.Subscribe(ctx, req, userID)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to initiate subscription payment")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Payment initiated for user " + userID)

	response.WithJSON(w, http.StatusCreated, res)
}

// HandleIPN receives asynchronous payment notifications from the gateway.
// The gateway expects a 200 regardless of processing outcome; failures are
// logged and reconciled later via Verify.
// @Summary Payment gateway IPN callback
// @Description Process an instant payment notification from the gateway.
// @Tags Payment
// @Produce json
// @Param OrderTrackingId query string true "Order tracking ID"
// @Param OrderMerchantReference query string false "Merchant reference"
// @Success 200 {object} response.Message "Notification received"
// @Router /v1/payments/ipn [get]
func (handler *Handler) HandleIPN(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".HandleIPN")
	defer scope.End()

	orderTrackingID := r.URL.Query().Get("OrderTrackingId")

	if err := handler.service.HandleIPN(ctx, orderTrackingID); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("order_tracking_id", orderTrackingID).Msg("failed to process payment notification")
	}

	response.WithMessage(w, http.StatusOK, "Notification received")
}

// Verify checks a payment's status and finalizes it if completed.
// @Summary Verify a payment
// @Description Fetch a payment by its tracking ID, reconciling with the gateway when still pending.
// @Tags Payment
// @Produce json
// @Param orderTrackingID path string true "Order tracking ID"
// @Success 200 {object} response.Data[dto.PaymentResponse] "Payment details"
// @Failure 401 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/payments/verify/{orderTrackingID} [get]
// @Security BearerAuth
func (handler *Handler) Verify(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Verify")
	defer scope.End()

	userID, ok := ctx.Value(constant.ContextKeyUserID).(string)
	if !ok || userID == "" {
		err := failure.Unauthorized("Authentication required")
		scope.TraceError(err)

		response.WithError(w, err)

		return
	}

	orderTrackingID := chi.URLParam(r, "orderTrackingID")

	res, err := handler.service.Verify(ctx, orderTrackingID, userID)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to verify payment")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}
