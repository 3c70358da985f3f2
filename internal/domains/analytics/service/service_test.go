package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"checkinhq/config"
	"checkinhq/infras/otel/mocks"
	analyticsMocks "checkinhq/internal/domains/analytics/mocks"
	"checkinhq/internal/domains/analytics/model"
	"checkinhq/internal/domains/analytics/service"
	cacheMocks "checkinhq/shared/cache/mocks"
)

func newTestService(t *testing.T) (service.Analytics, *analyticsMocks.MockAnalytics) {
	t.Helper()

	ctrl := gomock.NewController(t)

	mockRepo := analyticsMocks.NewMockAnalytics(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockOtel := mocks.NewOtel()

	mockCache.EXPECT().
		Get(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(errors.New("cache miss")).
		AnyTimes()

	mockCache.EXPECT().
		Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil).
		AnyTimes()

	cfg := &config.Config{}
	cfg.Cache.TTL = 60

	svc := service.New(mockRepo, cfg, mockCache, mockOtel)

	return svc, mockRepo
}

func TestAnalyticsService_HostSnapshot(t *testing.T) {
	svc, mockRepo := newTestService(t)

	tests := []struct {
		name      string
		setupMock func()
		wantErr   bool
		want      func(t *testing.T, res map[string]float64)
	}{
		{
			name: "computes follow up rate",
			setupMock: func() {
				mockRepo.EXPECT().
					MonthlyTotals(gomock.Any(), "host-id-123", gomock.Any()).
					Return(model.MonthlyTotals{BookingsCount: 12, DepositsSum: 3400.50}, nil)

				mockRepo.EXPECT().
					FollowUpCounts(gomock.Any(), "host-id-123", gomock.Any()).
					Return(model.FollowUpCounts{Completed: 2, Total: 3}, nil)
			},
			want: func(t *testing.T, res map[string]float64) {
				assert.Equal(t, float64(12), res["bookings"])
				assert.Equal(t, 3400.50, res["deposits"])
				assert.Equal(t, 66.7, res["rate"])
			},
		},
		{
			name: "rate is zero when nothing needs attention",
			setupMock: func() {
				mockRepo.EXPECT().
					MonthlyTotals(gomock.Any(), "host-id-123", gomock.Any()).
					Return(model.MonthlyTotals{}, nil)

				mockRepo.EXPECT().
					FollowUpCounts(gomock.Any(), "host-id-123", gomock.Any()).
					Return(model.FollowUpCounts{}, nil)
			},
			want: func(t *testing.T, res map[string]float64) {
				assert.Equal(t, float64(0), res["rate"])
			},
		},
		{
			name: "monthly totals error",
			setupMock: func() {
				mockRepo.EXPECT().
					MonthlyTotals(gomock.Any(), "host-id-123", gomock.Any()).
					Return(model.MonthlyTotals{}, errors.New("db error"))
			},
			wantErr: true,
		},
		{
			name: "follow up counts error",
			setupMock: func() {
				mockRepo.EXPECT().
					MonthlyTotals(gomock.Any(), "host-id-123", gomock.Any()).
					Return(model.MonthlyTotals{}, nil)

				mockRepo.EXPECT().
					FollowUpCounts(gomock.Any(), "host-id-123", gomock.Any()).
					Return(model.FollowUpCounts{}, errors.New("db error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			result, err := svc.HostSnapshot(context.Background(), "host-id-123")

			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			assert.NoError(t, err)

			if tt.want != nil {
				tt.want(t, map[string]float64{
					"bookings": float64(result.MonthlyBookings),
					"deposits": result.MonthlyDeposits,
					"rate":     result.FollowUpRate,
				})
			}
		})
	}
}

func TestAnalyticsService_AdminDashboard(t *testing.T) {
	svc, mockRepo := newTestService(t)

	weekOne := time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)
	weekTwo := weekOne.Add(7 * 24 * time.Hour)

	t.Run("computes averages and orders trends oldest first", func(t *testing.T) {
		mockRepo.EXPECT().
			WeeklyCounters(gomock.Any(), gomock.Any()).
			Return(model.WeeklyCounters{
				ActiveHosts:                4,
				BookingsThisWeek:           10,
				DepositsThisWeek:           1000,
				FollowUpsCompletedThisWeek: 3,
			}, nil)

		// Query returns most recent week first.
		mockRepo.EXPECT().
			WeeklyTrends(gomock.Any(), gomock.Any()).
			Return([]model.WeeklyTrend{
				{WeekStart: weekTwo, BookingsCount: 6},
				{WeekStart: weekOne, BookingsCount: 4},
			}, nil)

		mockRepo.EXPECT().
			UserStats(gomock.Any(), gomock.Any()).
			Return([]model.UserStat{{UserID: "host-id-123", Email: "host@example.com"}}, nil)

		result, err := svc.AdminDashboard(context.Background())

		assert.NoError(t, err)
		assert.Equal(t, 4, result.ActiveHosts)
		assert.Equal(t, 2.5, result.AvgBookingsPerHost)
		assert.Equal(t, float64(250), result.AvgRevenuePerHost)
		assert.Len(t, result.WeeklyTrends, 2)
		assert.Equal(t, 4, result.WeeklyTrends[0].BookingsCount)
		assert.Equal(t, 6, result.WeeklyTrends[1].BookingsCount)
		assert.Len(t, result.UserStats, 1)
	})

	t.Run("averages are zero without active hosts", func(t *testing.T) {
		mockRepo.EXPECT().
			WeeklyCounters(gomock.Any(), gomock.Any()).
			Return(model.WeeklyCounters{}, nil)

		mockRepo.EXPECT().
			WeeklyTrends(gomock.Any(), gomock.Any()).
			Return([]model.WeeklyTrend{}, nil)

		mockRepo.EXPECT().
			UserStats(gomock.Any(), gomock.Any()).
			Return([]model.UserStat{}, nil)

		result, err := svc.AdminDashboard(context.Background())

		assert.NoError(t, err)
		assert.Zero(t, result.AvgBookingsPerHost)
		assert.Zero(t, result.AvgRevenuePerHost)
	})

	t.Run("counters error", func(t *testing.T) {
		mockRepo.EXPECT().
			WeeklyCounters(gomock.Any(), gomock.Any()).
			Return(model.WeeklyCounters{}, errors.New("db error"))

		_, err := svc.AdminDashboard(context.Background())

		assert.Error(t, err)
	})
}
