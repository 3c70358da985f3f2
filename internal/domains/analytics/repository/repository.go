package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"checkinhq/infras/otel"
	"checkinhq/infras/postgres"
	"checkinhq/internal/domains/analytics/model"
	"checkinhq/shared/constant"
	"checkinhq/shared/logger"
	"context"
	"fmt"
	"time"
)

// Analytics runs the time-windowed rollups. The queries do not fit the
// generic repository, every read goes to the read connection directly.
type Analytics interface {
	MonthlyTotals(ctx context.Context, userID string, now time.Time) (model.MonthlyTotals, error)
	FollowUpCounts(ctx context.Context, userID string, cutoff time.Time) (model.FollowUpCounts, error)
	WeeklyCounters(ctx context.Context, since time.Time) (model.WeeklyCounters, error)
	WeeklyTrends(ctx context.Context, weeks int) ([]model.WeeklyTrend, error)
	UserStats(ctx context.Context, since time.Time) ([]model.UserStat, error)
}

type repositoryImpl struct {
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Analytics {
	return &repositoryImpl{
		db:   db,
		otel: otel,
	}
}

// MonthlyTotals counts bookings and sums deposits for the calendar month of
// now, not a rolling 30-day window.
func (repo *repositoryImpl) MonthlyTotals(ctx context.Context, userID string, now time.Time) (res model.MonthlyTotals, err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".analytics.MonthlyTotals")
	defer scope.End()

	query := `SELECT COUNT(*) AS bookings_count,
		COALESCE(SUM(deposit_amount), 0) AS deposits_sum
		FROM bookings
		WHERE user_id = $1
		  AND date_trunc('month', created_at) = date_trunc('month', $2::timestamptz)`
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	err = repo.db.Read.GetContext(ctx, &res, query, userID, now)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return res, fmt.Errorf("failed to get monthly totals (analytics): %w", err)
	}

	return res, nil
}

// FollowUpCounts measures the needing-attention set: not checked out and not
// contacted since the cutoff.
func (repo *repositoryImpl) FollowUpCounts(ctx context.Context, userID string, cutoff time.Time) (res model.FollowUpCounts, err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".analytics.FollowUpCounts")
	defer scope.End()

	query := `SELECT COUNT(*) FILTER (WHERE follow_up_done) AS completed,
		COUNT(*) AS total
		FROM bookings
		WHERE user_id = $1
		  AND status <> $2
		  AND (last_contacted_at IS NULL OR last_contacted_at < $3)`
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	err = repo.db.Read.GetContext(ctx, &res, query, userID, constant.BookingStatusCheckedOut, cutoff)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return res, fmt.Errorf("failed to get follow up counts (analytics): %w", err)
	}

	return res, nil
}

func (repo *repositoryImpl) WeeklyCounters(ctx context.Context, since time.Time) (res model.WeeklyCounters, err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".analytics.WeeklyCounters")
	defer scope.End()

	query := `SELECT
		(SELECT COUNT(DISTINCT id) FROM users
			WHERE role <> $1 AND last_login_at >= $2) AS active_hosts,
		(SELECT COUNT(*) FROM bookings WHERE created_at >= $2) AS bookings_this_week,
		(SELECT COALESCE(SUM(deposit_amount), 0) FROM bookings
			WHERE created_at >= $2) AS deposits_this_week,
		(SELECT COUNT(*) FROM bookings
			WHERE follow_up_done AND modified_at >= $2) AS follow_ups_completed_this_week`
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	err = repo.db.Read.GetContext(ctx, &res, query, constant.RoleAdmin, since)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return res, fmt.Errorf("failed to get weekly counters (analytics): %w", err)
	}

	return res, nil
}

// WeeklyTrends groups by ISO weeks (date_trunc 'week' starts Monday) and
// returns the most recent weeks first. Callers re-sort ascending.
func (repo *repositoryImpl) WeeklyTrends(ctx context.Context, weeks int) (res []model.WeeklyTrend, err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".analytics.WeeklyTrends")
	defer scope.End()

	query := `SELECT date_trunc('week', created_at) AS week_start,
		COUNT(*) AS bookings_count,
		COALESCE(SUM(deposit_amount), 0) AS deposits_sum
		FROM bookings
		GROUP BY week_start
		ORDER BY week_start DESC
		LIMIT $1`
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	err = repo.db.Read.SelectContext(ctx, &res, query, weeks)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return nil, fmt.Errorf("failed to get weekly trends (analytics): %w", err)
	}

	return res, nil
}

func (repo *repositoryImpl) UserStats(ctx context.Context, since time.Time) (res []model.UserStat, err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".analytics.UserStats")
	defer scope.End()

	query := `SELECT u.id AS user_id, u.email, u.full_name, u.last_login_at, u.trial_expires_at,
		COUNT(b.id) AS total_bookings,
		COALESCE(SUM(b.deposit_amount), 0) AS total_deposits,
		COUNT(b.id) FILTER (WHERE b.created_at >= $1) AS bookings_this_week,
		COALESCE(SUM(b.deposit_amount) FILTER (WHERE b.created_at >= $1), 0) AS deposits_this_week,
		COUNT(b.id) FILTER (WHERE b.follow_up_done AND b.modified_at >= $1) AS follow_ups_this_week,
		MAX(b.created_at) AS last_booking_date
		FROM users u
		LEFT JOIN bookings b ON b.user_id = u.id
		WHERE u.role <> $2
		GROUP BY u.id, u.email, u.full_name, u.last_login_at, u.trial_expires_at
		ORDER BY total_bookings DESC, u.last_login_at DESC NULLS LAST, u.id ASC`
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	err = repo.db.Read.SelectContext(ctx, &res, query, since, constant.RoleAdmin)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return nil, fmt.Errorf("failed to get user stats (analytics): %w", err)
	}

	return res, nil
}
