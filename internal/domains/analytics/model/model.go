package model

import "time"

// Row shapes for the aggregation queries. These are query projections, not
// tables, so they bypass the generic repository.

type MonthlyTotals struct {
	BookingsCount int     `db:"bookings_count"`
	DepositsSum   float64 `db:"deposits_sum"`
}

type FollowUpCounts struct {
	Completed int `db:"completed"`
	Total     int `db:"total"`
}

type WeeklyCounters struct {
	ActiveHosts                int     `db:"active_hosts"`
	BookingsThisWeek           int     `db:"bookings_this_week"`
	DepositsThisWeek           float64 `db:"deposits_this_week"`
	FollowUpsCompletedThisWeek int     `db:"follow_ups_completed_this_week"`
}

type WeeklyTrend struct {
	WeekStart     time.Time `db:"week_start"`
	BookingsCount int       `db:"bookings_count"`
	DepositsSum   float64   `db:"deposits_sum"`
}

type UserStat struct {
	UserID            string     `db:"user_id"`
	Email             string     `db:"email"`
	FullName          *string    `db:"full_name"`
	LastLoginAt       *time.Time `db:"last_login_at"`
	TrialExpiresAt    *time.Time `db:"trial_expires_at"`
	TotalBookings     int        `db:"total_bookings"`
	TotalDeposits     float64    `db:"total_deposits"`
	BookingsThisWeek  int        `db:"bookings_this_week"`
	DepositsThisWeek  float64    `db:"deposits_this_week"`
	FollowUpsThisWeek int        `db:"follow_ups_this_week"`
	LastBookingDate   *time.Time `db:"last_booking_date"`
}
