package policy_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"checkinhq/internal/domains/subscription/policy"
	"checkinhq/shared/constant"
)

func TestEvaluate(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name              string
		input             policy.Input
		wantAllowed       bool
		wantTrialExpired  bool
		wantDaysRemaining int
	}{
		{
			name: "admin allowed regardless of expired trial",
			input: policy.Input{
				Role:               constant.RoleAdmin,
				SubscriptionStatus: constant.SubscriptionStatusExpired,
				TrialExpiresAt:     timePtr(now.Add(-48 * time.Hour)),
			},
			wantAllowed:       true,
			wantTrialExpired:  false,
			wantDaysRemaining: 0,
		},
		{
			name: "active subscription allowed with expired trial",
			input: policy.Input{
				Role:               constant.RoleHost,
				SubscriptionStatus: constant.SubscriptionStatusActive,
				TrialExpiresAt:     timePtr(now.Add(-time.Hour)),
			},
			wantAllowed:       true,
			wantTrialExpired:  false,
			wantDaysRemaining: 0,
		},
		{
			name: "trial with future expiry allowed",
			input: policy.Input{
				Role:               constant.RoleHost,
				SubscriptionStatus: constant.SubscriptionStatusTrial,
				TrialExpiresAt:     timePtr(now.Add(30 * 24 * time.Hour)),
			},
			wantAllowed:       true,
			wantTrialExpired:  false,
			wantDaysRemaining: 30,
		},
		{
			name: "partial day remaining rounds up",
			input: policy.Input{
				Role:               constant.RoleHost,
				SubscriptionStatus: constant.SubscriptionStatusTrial,
				TrialExpiresAt:     timePtr(now.Add(25 * time.Hour)),
			},
			wantAllowed:       true,
			wantTrialExpired:  false,
			wantDaysRemaining: 2,
		},
		{
			name: "nil expiry never denies",
			input: policy.Input{
				Role:               constant.RoleHost,
				SubscriptionStatus: constant.SubscriptionStatusTrial,
				TrialExpiresAt:     nil,
			},
			wantAllowed:       true,
			wantTrialExpired:  false,
			wantDaysRemaining: 0,
		},
		{
			name: "expired trial denied",
			input: policy.Input{
				Role:               constant.RoleHost,
				SubscriptionStatus: constant.SubscriptionStatusTrial,
				TrialExpiresAt:     timePtr(now.Add(-time.Hour)),
			},
			wantAllowed:       false,
			wantTrialExpired:  true,
			wantDaysRemaining: 0,
		},
		{
			name: "expired status with expired trial denied",
			input: policy.Input{
				Role:               constant.RoleHost,
				SubscriptionStatus: constant.SubscriptionStatusExpired,
				TrialExpiresAt:     timePtr(now.Add(-30 * 24 * time.Hour)),
			},
			wantAllowed:       false,
			wantTrialExpired:  true,
			wantDaysRemaining: 0,
		},
		{
			name: "days remaining never negative",
			input: policy.Input{
				Role:               constant.RoleHost,
				SubscriptionStatus: constant.SubscriptionStatusTrial,
				TrialExpiresAt:     timePtr(now.Add(-365 * 24 * time.Hour)),
			},
			wantAllowed:       false,
			wantTrialExpired:  true,
			wantDaysRemaining: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			decision := policy.Evaluate(tt.input, now)

			assert.Equal(t, tt.wantAllowed, decision.Allowed)
			assert.Equal(t, tt.wantTrialExpired, decision.TrialExpired)
			assert.Equal(t, tt.wantDaysRemaining, decision.DaysRemaining)
			assert.Equal(t, tt.input.SubscriptionStatus, decision.Status)
			assert.Equal(t, tt.input.TrialExpiresAt, decision.TrialExpiresAt)
		})
	}
}

func TestIsAdmin(t *testing.T) {
	assert.True(t, policy.IsAdmin(policy.Input{Role: constant.RoleAdmin}))
	assert.False(t, policy.IsAdmin(policy.Input{Role: constant.RoleHost}))
	assert.False(t, policy.IsAdmin(policy.Input{}))
}

func timePtr(t time.Time) *time.Time {
	return &t
}
