package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"checkinhq/config"
	"checkinhq/infras/otel"
	"checkinhq/internal/domains/analytics/model/dto"
	"checkinhq/internal/domains/analytics/repository"
	"checkinhq/shared"
	"checkinhq/shared/cache"
	"checkinhq/shared/constant"
	"checkinhq/shared/failure"
	"checkinhq/shared/timezone"
	"context"
	"math"
	"slices"

	"github.com/rs/zerolog/log"
)

const (
	cacheHostSnapshot   = "analytics:host"
	cacheAdminDashboard = "analytics:admin"

	trendWeeks = 4
)

type Analytics interface {
	HostSnapshot(ctx context.Context, userID string) (dto.HostSnapshotResponse, error)
	AdminDashboard(ctx context.Context) (dto.AdminDashboardResponse, error)
}

type serviceImpl struct {
	repo  repository.Analytics
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
}

func New(repo repository.Analytics, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Analytics {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
	}
}

func (s *serviceImpl) HostSnapshot(ctx context.Context, userID string) (res dto.HostSnapshotResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".HostSnapshot")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheHostSnapshot, userID)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for host snapshot")

		return res, nil
	}

	now := timezone.Now()

	monthly, err := s.repo.MonthlyTotals(ctx, userID, now)
	if err != nil {
		log.Error().Err(err).Str("user_id", userID).Msg("failed to get monthly totals")

		return res, failure.InternalErrorFromString("failed to fetch analytics")
	}

	followUps, err := s.repo.FollowUpCounts(ctx, userID, now.Add(-constant.FollowUpWindow))
	if err != nil {
		log.Error().Err(err).Str("user_id", userID).Msg("failed to get follow up counts")

		return res, failure.InternalErrorFromString("failed to fetch analytics")
	}

	res.MonthlyBookings = monthly.BookingsCount
	res.MonthlyDeposits = monthly.DepositsSum
	res.FollowUpRate = followUpRate(followUps.Completed, followUps.Total)

	s.saveCache(ctx, cacheKey, res)

	return res, nil
}

func (s *serviceImpl) AdminDashboard(ctx context.Context) (res dto.AdminDashboardResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".AdminDashboard")
	defer scope.End()
	defer scope.TraceIfError(err)

	err = s.cache.Get(ctx, cacheAdminDashboard, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheAdminDashboard).Msg("cache hit for admin dashboard")

		return res, nil
	}

	now := timezone.Now()
	since := now.Add(-constant.ActiveHostWindow)

	counters, err := s.repo.WeeklyCounters(ctx, since)
	if err != nil {
		log.Error().Err(err).Msg("failed to get weekly counters")

		return res, failure.InternalErrorFromString("failed to fetch analytics")
	}

	trends, err := s.repo.WeeklyTrends(ctx, trendWeeks)
	if err != nil {
		log.Error().Err(err).Msg("failed to get weekly trends")

		return res, failure.InternalErrorFromString("failed to fetch analytics")
	}

	stats, err := s.repo.UserStats(ctx, since)
	if err != nil {
		log.Error().Err(err).Msg("failed to get user stats")

		return res, failure.InternalErrorFromString("failed to fetch analytics")
	}

	res.ActiveHosts = counters.ActiveHosts
	res.BookingsThisWeek = counters.BookingsThisWeek
	res.DepositsThisWeek = counters.DepositsThisWeek
	res.FollowUpsCompletedThisWeek = counters.FollowUpsCompletedThisWeek

	if counters.ActiveHosts > 0 {
		hosts := float64(counters.ActiveHosts)
		res.AvgBookingsPerHost = round1(float64(counters.BookingsThisWeek) / hosts)
		res.AvgRevenuePerHost = round2(counters.DepositsThisWeek / hosts)
	}

	// The query picks the most recent weeks; the payload is oldest first.
	slices.Reverse(trends)

	res.WeeklyTrends = make([]dto.WeeklyTrendResponse, len(trends))
	for i, trend := range trends {
		res.WeeklyTrends[i].FromModel(trend)
	}

	res.UserStats = make([]dto.UserStatResponse, len(stats))
	for i, stat := range stats {
		res.UserStats[i].FromModel(stat, now)
	}

	s.saveCache(ctx, cacheAdminDashboard, res)

	return res, nil
}

func (s *serviceImpl) saveCache(ctx context.Context, key string, value any) {
	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, key, value, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Str("cacheKey", key).Msg("failed to save analytics to cache")
		}
	}()
}

// followUpRate is completed/total as a percentage, one decimal, 0 when the
// needing-attention set is empty.
func followUpRate(completed, total int) float64 {
	if total == 0 {
		return 0
	}

	return round1(float64(completed) / float64(total) * 100)
}

func round1(value float64) float64 {
	return math.Round(value*10) / 10
}

func round2(value float64) float64 {
	return math.Round(value*100) / 100
}
