// Package policy decides whether a user may reach booking features.
// It is pure: callers load the user and supply the clock.
package policy

import (
	"checkinhq/shared/constant"
	"math"
	"time"
)

type Input struct {
	Role               string
	SubscriptionStatus string
	TrialExpiresAt     *time.Time
}

type Decision struct {
	Allowed        bool
	TrialExpired   bool
	DaysRemaining  int
	Status         string
	TrialExpiresAt *time.Time
}

func IsAdmin(input Input) bool {
	return input.Role == constant.RoleAdmin
}

// Evaluate maps subscription state and the current time to an access decision.
// Admin is an absolute override. An active subscription always allows. For
// everyone else access holds while the trial has not expired; a null expiry
// means the trial was never bounded and access is unlimited.
func Evaluate(input Input, now time.Time) Decision {
	decision := Decision{
		Status:         input.SubscriptionStatus,
		TrialExpiresAt: input.TrialExpiresAt,
	}

	if IsAdmin(input) {
		decision.Allowed = true
		decision.DaysRemaining = daysRemaining(input.TrialExpiresAt, now)

		return decision
	}

	if input.SubscriptionStatus == constant.SubscriptionStatusActive {
		decision.Allowed = true
		decision.DaysRemaining = daysRemaining(input.TrialExpiresAt, now)

		return decision
	}

	decision.TrialExpired = input.TrialExpiresAt != nil && input.TrialExpiresAt.Before(now)
	decision.Allowed = !decision.TrialExpired
	decision.DaysRemaining = daysRemaining(input.TrialExpiresAt, now)

	return decision
}

// daysRemaining is never negative and is 0 exactly when the trial has ended
// or was never bounded.
func daysRemaining(trialExpiresAt *time.Time, now time.Time) int {
	if trialExpiresAt == nil {
		return 0
	}

	remaining := trialExpiresAt.Sub(now)
	if remaining <= 0 {
		return 0
	}

	return int(math.Ceil(remaining.Hours() / constant.HoursPerDay))
}
