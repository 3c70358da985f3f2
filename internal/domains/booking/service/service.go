package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"checkinhq/config"
	"checkinhq/infras/otel"
	"checkinhq/internal/domains/booking/model"
	"checkinhq/internal/domains/booking/model/dto"
	"checkinhq/internal/domains/booking/repository"
	noteModel "checkinhq/internal/domains/note/model"
	noteDto "checkinhq/internal/domains/note/model/dto"
	noteRepo "checkinhq/internal/domains/note/repository"
	"checkinhq/shared"
	"checkinhq/shared/cache"
	"checkinhq/shared/constant"
	gDto "checkinhq/shared/dto"
	"checkinhq/shared/failure"
	"checkinhq/shared/timezone"
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
)

const (
	cacheGetBooking    = "booking:get"
	cacheGetAllBooking = "booking:gets"
	cacheCountBooking  = "booking:count"

	followUpsLimit = 20
)

type Booking interface {
	Create(ctx context.Context, req dto.CreateBookingRequest, userID string) (dto.BookingResponse, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup, userID string) (dto.GetBookingsResponse, error)
	Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (int, error)
	Get(ctx context.Context, id, userID string) (dto.BookingResponse, error)
	Update(ctx context.Context, req dto.UpdateBookingRequest, id, userID string) error
	Delete(ctx context.Context, id, userID string) error
	MarkContacted(ctx context.Context, id, userID string) error
	TodayDashboard(ctx context.Context, userID string) (dto.TodayDashboardResponse, error)
	AddNote(ctx context.Context, req noteDto.AddNoteRequest, bookingID, userID string) (noteDto.NoteResponse, error)
	ListNotes(ctx context.Context, bookingID, userID string) (noteDto.ListNotesResponse, error)
	DeleteNote(ctx context.Context, noteID, bookingID, userID string) error
}

type serviceImpl struct {
	repo     repository.Booking
	noteRepo noteRepo.Note
	cfg      *config.Config
	cache    cache.RedisCache
	otel     otel.Otel
}

func New(repo repository.Booking, noteRepo noteRepo.Note, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Booking {
	return &serviceImpl{
		repo:     repo,
		noteRepo: noteRepo,
		cfg:      cfg,
		cache:    cache,
		otel:     otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateBookingRequest, userID string) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = validateDeposit(req.TotalAmount, req.DepositAmount); err != nil {
		return res, err
	}

	booking, err := req.ToModel(userID)
	if err != nil {
		return res, failure.BadRequestFromString("invalid date format, expected YYYY-MM-DD")
	}

	if booking.CheckOutDate.Before(booking.CheckInDate) {
		return res, failure.BadRequestFromString("check-out date cannot be before check-in date")
	}

	if err = s.repo.Insert(ctx, booking); err != nil {
		log.Error().Err(err).Msg("failed to create booking")

		return res, fmt.Errorf("failed to create booking: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllBooking)
		shared.InvalidateCaches(c, s.cache, cacheCountBooking)
	}()

	res.FromModel(booking)

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup, userID string) (res dto.GetBookingsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter.Filters = append(filter.Filters, ownerFilter(userID).Filters...)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllBooking, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for bookings")

		return res, nil
	}

	total, err := s.Count(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count bookings")

		return res, fmt.Errorf("failed to count bookings: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get bookings")

		return res, fmt.Errorf("failed to get bookings: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save bookings to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Count")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheCountBooking, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for booking count")

		return res, nil
	}

	res, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count bookings")

		return res, fmt.Errorf("failed to count bookings: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save booking count to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id, userID string) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetBooking, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil && res.UserID == userID {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for booking")

		return res, nil
	}

	booking, err := s.getOwned(ctx, id, userID)
	if err != nil {
		return dto.BookingResponse{}, err
	}

	res.FromModel(booking)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save booking to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateBookingRequest, id, userID string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer scope.TraceIfError(err)

	booking, err := s.getOwned(ctx, id, userID)
	if err != nil {
		return err
	}

	total := booking.TotalAmount
	if req.TotalAmount != nil {
		total = req.TotalAmount
	}

	deposit := booking.DepositAmount
	if req.DepositAmount != nil {
		deposit = req.DepositAmount
	}

	if err = validateDeposit(total, deposit); err != nil {
		return err
	}

	updatedFields := shared.TransformFields(req, userID)

	if req.CheckInDate != nil {
		checkIn, parseErr := time.Parse(constant.DateOnlyFormat, *req.CheckInDate)
		if parseErr != nil {
			return failure.BadRequestFromString("invalid date format, expected YYYY-MM-DD")
		}

		updatedFields[model.FieldCheckInDate] = checkIn
	}

	if req.CheckOutDate != nil {
		checkOut, parseErr := time.Parse(constant.DateOnlyFormat, *req.CheckOutDate)
		if parseErr != nil {
			return failure.BadRequestFromString("invalid date format, expected YYYY-MM-DD")
		}

		updatedFields[model.FieldCheckOutDate] = checkOut
	}

	if err = s.repo.Update(ctx, updatedFields, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Str("booking_id", id).Msg("failed to update booking")

		return fmt.Errorf("failed to update booking: %w", err)
	}

	s.invalidate(ctx, id)

	return nil
}

func (s *serviceImpl) Delete(ctx context.Context, id, userID string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer scope.TraceIfError(err)

	if _, err = s.getOwned(ctx, id, userID); err != nil {
		return err
	}

	if err = s.repo.Delete(ctx, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Str("booking_id", id).Msg("failed to delete booking")

		return fmt.Errorf("failed to delete booking: %w", err)
	}

	s.invalidate(ctx, id)

	return nil
}

// MarkContacted stamps last_contacted_at, resetting the follow-up clock.
func (s *serviceImpl) MarkContacted(ctx context.Context, id, userID string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".MarkContacted")
	defer scope.End()
	defer scope.TraceIfError(err)

	if _, err = s.getOwned(ctx, id, userID); err != nil {
		return err
	}

	contacted := dto.UpdateLastContactedRequest{LastContactedAt: timezone.Now()}

	if err = s.repo.Update(ctx, shared.TransformFields(contacted, userID), shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Str("booking_id", id).Msg("failed to mark booking contacted")

		return fmt.Errorf("failed to mark booking contacted: %w", err)
	}

	s.invalidate(ctx, id)

	return nil
}

func (s *serviceImpl) TodayDashboard(ctx context.Context, userID string) (res dto.TodayDashboardResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".TodayDashboard")
	defer scope.End()
	defer scope.TraceIfError(err)

	now := timezone.Now()

	arrivals, err := s.repo.ArrivalsOn(ctx, userID, now)
	if err != nil {
		log.Error().Err(err).Msg("failed to get arrivals")

		return res, fmt.Errorf("failed to get arrivals: %w", err)
	}

	checkouts, err := s.repo.CheckoutsOn(ctx, userID, now)
	if err != nil {
		log.Error().Err(err).Msg("failed to get checkouts")

		return res, fmt.Errorf("failed to get checkouts: %w", err)
	}

	followUps, err := s.repo.FollowUpsNeeded(ctx, userID, now.Add(-constant.FollowUpWindow), followUpsLimit)
	if err != nil {
		log.Error().Err(err).Msg("failed to get follow ups")

		return res, fmt.Errorf("failed to get follow ups: %w", err)
	}

	payments, err := s.repo.PaymentsPending(ctx, userID)
	if err != nil {
		log.Error().Err(err).Msg("failed to get pending payments")

		return res, fmt.Errorf("failed to get pending payments: %w", err)
	}

	res.FromModels(arrivals, checkouts, followUps, payments)

	return res, nil
}

func (s *serviceImpl) AddNote(ctx context.Context, req noteDto.AddNoteRequest, bookingID, userID string) (res noteDto.NoteResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".AddNote")
	defer scope.End()
	defer scope.TraceIfError(err)

	if _, err = s.getOwned(ctx, bookingID, userID); err != nil {
		return res, err
	}

	note := req.ToModel(bookingID)

	if err = s.noteRepo.Insert(ctx, note); err != nil {
		log.Error().Err(err).Str("booking_id", bookingID).Msg("failed to add note")

		return res, fmt.Errorf("failed to add note: %w", err)
	}

	res.FromModel(note)

	return res, nil
}

func (s *serviceImpl) ListNotes(ctx context.Context, bookingID, userID string) (res noteDto.ListNotesResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ListNotes")
	defer scope.End()
	defer scope.TraceIfError(err)

	if _, err = s.getOwned(ctx, bookingID, userID); err != nil {
		return res, err
	}

	params := gDto.QueryParams{
		SortBy:  noteModel.FieldCreatedAt,
		SortDir: "DESC",
	}

	notes, err := s.noteRepo.GetAll(ctx, params, shared.FilterByID(bookingID, noteModel.FieldBookingID, noteModel.TableName))
	if err != nil {
		log.Error().Err(err).Str("booking_id", bookingID).Msg("failed to list notes")

		return res, fmt.Errorf("failed to list notes: %w", err)
	}

	res.FromModels(notes)

	return res, nil
}

func (s *serviceImpl) DeleteNote(ctx context.Context, noteID, bookingID, userID string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".DeleteNote")
	defer scope.End()
	defer scope.TraceIfError(err)

	if _, err = s.getOwned(ctx, bookingID, userID); err != nil {
		return err
	}

	note, err := s.noteRepo.Get(ctx, shared.FilterByID(noteID, noteModel.FieldID, noteModel.TableName))
	if err != nil {
		log.Error().Err(err).Str("note_id", noteID).Msg("failed to get note")

		return fmt.Errorf("failed to get note: %w", err)
	}

	if note.ID == "" || note.BookingID != bookingID {
		return failure.NotFound("note not found")
	}

	if err = s.noteRepo.Delete(ctx, shared.FilterByID(noteID, noteModel.FieldID, noteModel.TableName)); err != nil {
		log.Error().Err(err).Str("note_id", noteID).Msg("failed to delete note")

		return fmt.Errorf("failed to delete note: %w", err)
	}

	return nil
}

// getOwned loads a booking and hides other tenants' rows behind a 404.
func (s *serviceImpl) getOwned(ctx context.Context, id, userID string) (model.Booking, error) {
	booking, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Str("booking_id", id).Msg("failed to get booking")

		return booking, fmt.Errorf("failed to get booking: %w", err)
	}

	if booking.ID == "" || booking.UserID != userID {
		return booking, failure.NotFound("booking not found")
	}

	return booking, nil
}

func (s *serviceImpl) invalidate(ctx context.Context, id string) {
	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetBooking, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete booking from cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllBooking)
		shared.InvalidateCaches(c, s.cache, cacheCountBooking)
	}()
}

func validateDeposit(total, deposit *float64) error {
	if total != nil && deposit != nil && *deposit > *total {
		return failure.BadRequestFromString("deposit amount cannot exceed total amount")
	}

	return nil
}

func ownerFilter(userID string) gDto.FilterGroup {
	return shared.FilterByID(userID, model.FieldUserID, model.TableName)
}
