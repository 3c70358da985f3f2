package booking

import (
	"checkinhq/infras/otel"
	"checkinhq/internal/domains/booking/model"
	"checkinhq/internal/domains/booking/model/dto"
	"checkinhq/internal/domains/booking/service"
	noteDto "checkinhq/internal/domains/note/model/dto"
	"checkinhq/shared"
	"checkinhq/shared/constant"
	gDto "checkinhq/shared/dto"
	"checkinhq/shared/failure"
	"checkinhq/shared/validator"
	"checkinhq/transport/http/middleware"
	"checkinhq/transport/http/response"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service      service.Booking
	middleware   middleware.AuthRole
	subscription middleware.Subscription
	otel         otel.Otel
}

func New(service service.Booking, authRole middleware.AuthRole, subscription middleware.Subscription, otel otel.Otel) Handler {
	return Handler{
		service:      service,
		middleware:   authRole,
		subscription: subscription,
		otel:         otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/bookings", func(routerGroup chi.Router) {
		routerGroup.Use(handler.middleware.Auth)
		routerGroup.Use(handler.subscription.RequireActive)

		routerGroup.Post("/", handler.CreateBooking)
		routerGroup.Get("/", handler.GetBookings)
		routerGroup.Get("/count", handler.CountBookings)
		routerGroup.Get("/dashboard/today", handler.TodayDashboard)
		routerGroup.Get("/{id}", handler.GetBookingByID)
		routerGroup.Patch("/{id}", handler.UpdateBooking)
		routerGroup.Delete("/{id}", handler.DeleteBooking)
		routerGroup.Post("/{id}/contact", handler.MarkContacted)
		routerGroup.Post("/{id}/notes", handler.AddNote)
		routerGroup.Get("/{id}/notes", handler.ListNotes)
		routerGroup.Delete("/{id}/notes/{noteID}", handler.DeleteNote)
	})
}

// CreateBooking handles the creation of a new booking.
// @Summary Create a new booking
// @Description Create a new guest booking with the provided details.
// @Tags Booking
// @Accept json
// @Produce json
// @Param request body dto.CreateBookingRequest true "Create Booking Request"
// @Success 201 {object} response.Data[dto.BookingResponse] "Booking created successfully"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bookings [post]
// @Security BearerAuth
func (handler *Handler) CreateBooking(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateBooking")
	defer scope.End()

	userID, ok := ctx.Value(constant.ContextKeyUserID).(string)
	if !ok || userID == "" {
		err := failure.Unauthorized("Authentication required")
		scope.TraceError(err)

		response.WithError(writer, err)

		return
	}

	req := dto.CreateBookingRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	res, err := handler.service.Create(ctx, req, userID)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create booking")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Booking created successfully by user " + userID)

	response.WithJSON(writer, http.StatusCreated, res)
}

// GetBookings retrieves the caller's bookings based on query parameters.
// @Summary Get all bookings
// @Description Retrieve the caller's bookings with optional filtering and pagination.
// @Tags Booking
// @Accept json
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param status query string false "Filter by status"
// @Param guest_name query string false "Filter by guest name (partial match)"
// @Param check_in_from query string false "Filter by check-in date from (YYYY-MM-DD)"
// @Param check_in_to query string false "Filter by check-in date to (YYYY-MM-DD)"
// @Param contacted query bool false "Filter by whether the guest has been contacted"
// @Success 200 {object} response.Data[dto.GetBookingsResponse] "List of bookings"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bookings [get]
// @Security BearerAuth
func (handler *Handler) GetBookings(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetBookings")
	defer scope.End()

	userID, ok := ctx.Value(constant.ContextKeyUserID).(string)
	if !ok || userID == "" {
		err := failure.Unauthorized("Authentication required")
		scope.TraceError(err)

		response.WithError(w, err)

		return
	}

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	filterGroup := buildBookingFilter(r)

	res, err := handler.service.GetAll(ctx, queryParams, filterGroup, userID)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to fetch bookings")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// CountBookings returns the number of bookings matching the filters.
// @Summary Count bookings
// @Description Count the caller's bookings matching the given filters.
// @Tags Booking
// @Produce json
// @Param status query string false "Filter by status"
// @Success 200 {object} response.Data[int] "Booking count"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bookings/count [get]
// @Security BearerAuth
func (handler *Handler) CountBookings(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CountBookings")
	defer scope.End()

	userID, ok := ctx.Value(constant.ContextKeyUserID).(string)
	if !ok || userID == "" {
		err := failure.Unauthorized("Authentication required")
		scope.TraceError(err)

		response.WithError(w, err)

		return
	}

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, false)

	filterGroup := buildBookingFilter(r)
	filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
		Field:    model.FieldUserID,
		Operator: gDto.FilterOperatorEq,
		Value:    userID,
		Table:    model.TableName,
	})

	count, err := handler.service.Count(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to count bookings")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, count)
}

// TodayDashboard returns today's arrivals, departures and action lists.
// @Summary Get today's dashboard
// @Description Retrieve today's arrivals, check-outs, follow-ups needed and pending payments.
// @Tags Booking
// @Produce json
// @Success 200 {object} response.Data[dto.TodayDashboardResponse] "Today's dashboard"
// @Failure 500 {object} response.Error
// @Router /v1/bookings/dashboard/today [get]
// @Security BearerAuth
func (handler *Handler) TodayDashboard(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".TodayDashboard")
	defer scope.End()

	userID, ok := ctx.Value(constant.ContextKeyUserID).(string)
	if !ok || userID == "" {
		err := failure.Unauthorized("Authentication required")
		scope.TraceError(err)

		response.WithError(w, err)

		return
	}

	res, err := handler.service.TodayDashboard(ctx, userID)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to fetch today's dashboard")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// GetBookingByID retrieves a single booking.
// @Summary Get a booking by ID
// @Description Retrieve a booking owned by the caller.
// @Tags Booking
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} response.Data[dto.BookingResponse] "Booking details"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bookings/{id} [get]
// @Security BearerAuth
func (handler *Handler) GetBookingByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetBookingByID")
	defer scope.End()

	userID, ok := ctx.Value(constant.ContextKeyUserID).(string)
	if !ok || userID == "" {
		err := failure.Unauthorized("Authentication required")
		scope.TraceError(err)

		response.WithError(w, err)

		return
	}

	id := chi.URLParam(r, "id")

	res, err := handler.service.Get(ctx, id, userID)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to fetch booking")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// UpdateBooking applies a partial update to a booking.
// @Summary Update a booking
// @Description Update fields of a booking owned by the caller.
// @Tags Booking
// @Accept json
// @Produce json
// @Param id path string true "Booking ID"
// @Param request body dto.UpdateBookingRequest true "Update Booking Request"
// @Success 200 {object} response.Message "Booking updated successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bookings/{id} [patch]
// @Security BearerAuth
func (handler *Handler) UpdateBooking(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateBooking")
	defer scope.End()

	userID, ok := ctx.Value(constant.ContextKeyUserID).(string)
	if !ok || userID == "" {
		err := failure.Unauthorized("Authentication required")
		scope.TraceError(err)

		response.WithError(w, err)

		return
	}

	id := chi.URLParam(r, "id")

	req := dto.UpdateBookingRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Update(ctx, req, id, userID); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update booking")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Booking updated successfully")

	response.WithMessage(w, http.StatusOK, "Booking updated successfully")
}

// DeleteBooking removes a booking.
// @Summary Delete a booking
// @Description Delete a booking owned by the caller.
// @Tags Booking
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} response.Message "Booking deleted successfully"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bookings/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteBooking(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteBooking")
	defer scope.End()

	userID, ok := ctx.Value(constant.ContextKeyUserID).(string)
	if !ok || userID == "" {
		err := failure.Unauthorized("Authentication required")
		scope.TraceError(err)

		response.WithError(w, err)

		return
	}

	id := chi.URLParam(r, "id")

	if err := handler.service.Delete(ctx, id, userID); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete booking")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Booking deleted successfully")

	response.WithMessage(w, http.StatusOK, "Booking deleted successfully")
}

// MarkContacted records a follow-up touch on a booking.
// @Summary Mark a booking as contacted
// @Description Record that the guest was contacted, resetting the follow-up timer.
// @Tags Booking
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} response.Message "Booking marked as contacted"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bookings/{id}/contact [post]
// @Security BearerAuth
func (handler *Handler) MarkContacted(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".MarkContacted")
	defer scope.End()

	userID, ok := ctx.Value(constant.ContextKeyUserID).(string)
	if !ok || userID == "" {
		err := failure.Unauthorized("Authentication required")
		scope.TraceError(err)

		response.WithError(w, err)

		return
	}

	id := chi.URLParam(r, "id")

	if err := handler.service.MarkContacted(ctx, id, userID); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to mark booking as contacted")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, "Booking marked as contacted")
}

// AddNote appends a note to a booking.
// @Summary Add a note to a booking
// @Description Append a free-form note to a booking owned by the caller.
// @Tags Booking
// @Accept json
// @Produce json
// @Param id path string true "Booking ID"
// @Param request body noteDto.AddNoteRequest true "Add Note Request"
// @Success 201 {object} response.Data[noteDto.NoteResponse] "Note added successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bookings/{id}/notes [post]
// @Security BearerAuth
func (handler *Handler) AddNote(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".AddNote")
	defer scope.End()

	userID, ok := ctx.Value(constant.ContextKeyUserID).(string)
	if !ok || userID == "" {
		err := failure.Unauthorized("Authentication required")
		scope.TraceError(err)

		response.WithError(w, err)

		return
	}

	bookingID := chi.URLParam(r, "id")

	req := noteDto.AddNoteRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.AddNote(ctx, req, bookingID, userID)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to add note")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusCreated, res)
}

// ListNotes returns the notes attached to a booking.
// @Summary List booking notes
// @Description Retrieve all notes attached to a booking owned by the caller.
// @Tags Booking
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} response.Data[noteDto.ListNotesResponse] "Booking notes"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bookings/{id}/notes [get]
// @Security BearerAuth
func (handler *Handler) ListNotes(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ListNotes")
	defer scope.End()

	userID, ok := ctx.Value(constant.ContextKeyUserID).(string)
	if !ok || userID == "" {
		err := failure.Unauthorized("Authentication required")
		scope.TraceError(err)

		response.WithError(w, err)

		return
	}

	bookingID := chi.URLParam(r, "id")

	res, err := handler.service.ListNotes(ctx, bookingID, userID)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to list notes")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// DeleteNote removes a note from a booking.
// @Summary Delete a booking note
// @Description Delete a note attached to a booking owned by the caller.
// @Tags Booking
// @Produce json
// @Param id path string true "Booking ID"
// @Param noteID path string true "Note ID"
// @Success 200 {object} response.Message "Note deleted successfully"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bookings/{id}/notes/{noteID} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteNote(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteNote")
	defer scope.End()

	userID, ok := ctx.Value(constant.ContextKeyUserID).(string)
	if !ok || userID == "" {
		err := failure.Unauthorized("Authentication required")
		scope.TraceError(err)

		response.WithError(w, err)

		return
	}

	bookingID := chi.URLParam(r, "id")
	noteID := chi.URLParam(r, "noteID")

	if err := handler.service.DeleteNote(ctx, noteID, bookingID, userID); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete note")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, "Note deleted successfully")
}

func buildBookingFilter(r *http.Request) gDto.FilterGroup {
	status := r.URL.Query().Get(model.FieldStatus)
	guestName := r.URL.Query().Get(model.FieldGuestName)
	checkInFrom := r.URL.Query().Get("check_in_from")
	checkInTo := r.URL.Query().Get("check_in_to")

	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters:  []any{},
	}

	// Only add filters if the values are non-empty
	if status != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldStatus,
			Operator: gDto.FilterOperatorEq,
			Value:    status,
			Table:    model.TableName,
		})
	}

	if guestName != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldGuestName,
			Operator: gDto.FilterOperatorLike,
			Value:    guestName,
			Table:    model.TableName,
		})
	}

	if checkInFrom != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldCheckInDate,
			Operator: gDto.FilterOperatorGreaterEq,
			Value:    checkInFrom,
			Table:    model.TableName,
		})
	}

	if checkInTo != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldCheckInDate,
			Operator: gDto.FilterOperatorLessEq,
			Value:    checkInTo,
			Table:    model.TableName,
		})
	}

	if contacted := shared.ConvertStringToBool(r.URL.Query().Get("contacted")); contacted != nil {
		operator := gDto.FilterIsNull
		if *contacted {
			operator = gDto.FilterIsNotNull
		}

		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldLastContactedAt,
			Operator: operator,
			Table:    model.TableName,
		})
	}

	return filterGroup
}
