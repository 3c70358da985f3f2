package dto

import (
	"checkinhq/internal/domains/analytics/model"
	"time"
)

const weekLabelFormat = "Jan 02"

type HostSnapshotResponse struct {
	MonthlyBookings int     `json:"monthly_bookings"`
	MonthlyDeposits float64 `json:"monthly_deposits"`
	FollowUpRate    float64 `json:"follow_up_rate"`
}

type WeeklyTrendResponse struct {
	WeekLabel     string  `json:"week_label"`
	BookingsCount int     `json:"bookings_count"`
	DepositsSum   float64 `json:"deposits_sum"`
}

func (r *WeeklyTrendResponse) FromModel(model model.WeeklyTrend) {
	r.WeekLabel = model.WeekStart.Format(weekLabelFormat)
	r.BookingsCount = model.BookingsCount
	r.DepositsSum = model.DepositsSum
}

type UserStatResponse struct {
	UserID            string     `json:"user_id"`
	Email             string     `json:"email"`
	FullName          *string    `json:"full_name,omitempty"`
	TotalBookings     int        `json:"total_bookings"`
	TotalDeposits     float64    `json:"total_deposits"`
	BookingsThisWeek  int        `json:"bookings_this_week"`
	DepositsThisWeek  float64    `json:"deposits_this_week"`
	FollowUpsThisWeek int        `json:"follow_ups_this_week"`
	LastBookingDate   *time.Time `json:"last_booking_date,omitempty"`
	LastLoginAt       *time.Time `json:"last_login_at,omitempty"`
	TrialExpired      bool       `json:"trial_expired"`
}

func (r *UserStatResponse) FromModel(model model.UserStat, now time.Time) {
	r.UserID = model.UserID
	r.Email = model.Email
	r.FullName = model.FullName
	r.TotalBookings = model.TotalBookings
	r.TotalDeposits = model.TotalDeposits
	r.BookingsThisWeek = model.BookingsThisWeek
	r.DepositsThisWeek = model.DepositsThisWeek
	r.FollowUpsThisWeek = model.FollowUpsThisWeek
	r.LastBookingDate = model.LastBookingDate
	r.LastLoginAt = model.LastLoginAt
	r.TrialExpired = model.TrialExpiresAt != nil && model.TrialExpiresAt.Before(now)
}

type AdminDashboardResponse struct {
	ActiveHosts                int                   `json:"active_hosts"`
	BookingsThisWeek           int                   `json:"bookings_this_week"`
	DepositsThisWeek           float64               `json:"deposits_this_week"`
	FollowUpsCompletedThisWeek int                   `json:"follow_ups_completed_this_week"`
	AvgBookingsPerHost         float64               `json:"avg_bookings_per_host"`
	AvgRevenuePerHost          float64               `json:"avg_revenue_per_host"`
	WeeklyTrends               []WeeklyTrendResponse `json:"weekly_trends"`
	UserStats                  []UserStatResponse    `json:"user_stats"`
}
