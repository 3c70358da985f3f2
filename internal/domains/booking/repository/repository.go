package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"checkinhq/infras/otel"
	"checkinhq/infras/postgres"
	"checkinhq/internal/domains/booking/model"
	"checkinhq/shared/constant"
	gDto "checkinhq/shared/dto"
	"checkinhq/shared/logger"
	gRepo "checkinhq/shared/repository"
	"context"
	"fmt"
	"time"
)

type Booking interface {
	Insert(ctx context.Context, model model.Booking) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Booking, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Booking, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error

	ArrivalsOn(ctx context.Context, userID string, day time.Time) ([]model.Booking, error)
	CheckoutsOn(ctx context.Context, userID string, day time.Time) ([]model.Booking, error)
	FollowUpsNeeded(ctx context.Context, userID string, cutoff time.Time, limit int) ([]model.Booking, error)
	PaymentsPending(ctx context.Context, userID string) ([]model.Booking, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Booking]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Booking {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Booking](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

func (repo *repositoryImpl) ArrivalsOn(ctx context.Context, userID string, day time.Time) ([]model.Booking, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".booking.ArrivalsOn")
	defer scope.End()

	query := `SELECT * FROM bookings WHERE user_id = $1 AND check_in_date = $2 ORDER BY guest_name ASC`
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	var bookings []model.Booking

	err := repo.db.Read.SelectContext(ctx, &bookings, query, userID, day.Format(constant.DateOnlyFormat))
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return nil, fmt.Errorf("failed to get arrivals (booking): %w", err)
	}

	return bookings, nil
}

func (repo *repositoryImpl) CheckoutsOn(ctx context.Context, userID string, day time.Time) ([]model.Booking, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".booking.CheckoutsOn")
	defer scope.End()

	query := `SELECT * FROM bookings WHERE user_id = $1 AND check_out_date = $2 ORDER BY guest_name ASC`
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	var bookings []model.Booking

	err := repo.db.Read.SelectContext(ctx, &bookings, query, userID, day.Format(constant.DateOnlyFormat))
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return nil, fmt.Errorf("failed to get checkouts (booking): %w", err)
	}

	return bookings, nil
}

// FollowUpsNeeded returns bookings not checked out whose last contact is
// missing or older than the cutoff, oldest contact first.
func (repo *repositoryImpl) FollowUpsNeeded(ctx context.Context, userID string, cutoff time.Time, limit int) ([]model.Booking, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".booking.FollowUpsNeeded")
	defer scope.End()

	query := `SELECT * FROM bookings
		WHERE user_id = $1
		  AND status <> $2
		  AND (last_contacted_at IS NULL OR last_contacted_at < $3)
		ORDER BY last_contacted_at ASC NULLS FIRST
		LIMIT $4`
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	var bookings []model.Booking

	err := repo.db.Read.SelectContext(ctx, &bookings, query, userID, constant.BookingStatusCheckedOut, cutoff, limit)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return nil, fmt.Errorf("failed to get follow ups (booking): %w", err)
	}

	return bookings, nil
}

func (repo *repositoryImpl) PaymentsPending(ctx context.Context, userID string) ([]model.Booking, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".booking.PaymentsPending")
	defer scope.End()

	query := `SELECT * FROM bookings
		WHERE user_id = $1
		  AND status IN ($2, $3, $4)
		  AND (deposit_amount IS NULL OR total_amount IS NULL OR deposit_amount < total_amount)
		ORDER BY check_in_date ASC`
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	var bookings []model.Booking

	err := repo.db.Read.SelectContext(ctx, &bookings, query, userID,
		constant.BookingStatusQuoted, constant.BookingStatusDepositPaid, constant.BookingStatusConfirmed)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return nil, fmt.Errorf("failed to get pending payments (booking): %w", err)
	}

	return bookings, nil
}
