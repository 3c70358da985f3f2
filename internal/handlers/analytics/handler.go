package analytics

import (
	"checkinhq/infras/otel"
	"checkinhq/internal/domains/analytics/service"
	"checkinhq/shared/constant"
	"checkinhq/shared/failure"
	"checkinhq/transport/http/middleware"
	"checkinhq/transport/http/response"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service      service.Analytics
	middleware   middleware.AuthRole
	subscription middleware.Subscription
	otel         otel.Otel
}

func New(service service.Analytics, authRole middleware.AuthRole, subscription middleware.Subscription, otel otel.Otel) Handler {
	return Handler{
		service:      service,
		middleware:   authRole,
		subscription: subscription,
		otel:         otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/analytics", func(routerGroup chi.Router) {
		routerGroup.Group(func(r chi.Router) {
			r.Use(handler.middleware.Auth)
			r.Use(handler.subscription.RequireActive)
			r.Get("/host", handler.HostSnapshot)
		})

		routerGroup.Group(func(r chi.Router) {
			r.Use(handler.middleware.Auth)
			r.Use(handler.middleware.RBAC)
			r.Get("/admin", handler.AdminDashboard)
		})
	})
}

// HostSnapshot returns the caller's monthly performance summary.
// @Summary Get host analytics snapshot
// @Description Retrieve this month's booking count, deposit total and follow-up rate for the caller.
// @Tags Analytics
// @Produce json
// @Success 200 {object} response.Data[dto.HostSnapshotResponse] "Host snapshot"
// @Failure 401 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/analytics/host [get]
// @Security BearerAuth
func (handler *Handler) HostSnapshot(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".HostSnapshot")
	defer scope.End()

	userID, ok := ctx.Value(constant.ContextKeyUserID).(string)
	if !ok || userID == "" {
		err := failure.Unauthorized("Authentication required")
		scope.TraceError(err)

		response.WithError(w, err)

		return
	}

	res, err := handler.service.HostSnapshot(ctx, userID)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to fetch host snapshot")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// AdminDashboard returns platform-wide usage metrics.
// @Summary Get admin dashboard
// @Description Retrieve platform-wide activity counters, weekly trends and per-user statistics.
// @Tags Analytics
// @Produce json
// @Success 200 {object} response.Data[dto.AdminDashboardResponse] "Admin dashboard"
// @Failure 401 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/analytics/admin [get]
// @Security BearerAuth
func (handler *Handler) AdminDashboard(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".AdminDashboard")
	defer scope.End()

	res, err := handler.service.AdminDashboard(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to fetch admin dashboard")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}
