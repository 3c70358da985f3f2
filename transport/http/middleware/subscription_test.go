package middleware_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"checkinhq/infras/otel/mocks"
	userMocks "checkinhq/internal/domains/user/mocks"
	userModel "checkinhq/internal/domains/user/model"
	"checkinhq/shared/constant"
	"checkinhq/transport/http/middleware"
)

func TestSubscriptionMiddleware_RequireActive(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUserRepo := userMocks.NewMockUser(ctrl)
	mockOtel := mocks.NewOtel()

	mw := middleware.NewSubscriptionMiddleware(mockUserRepo, mockOtel)

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	futureExpiry := time.Now().Add(10 * 24 * time.Hour)
	pastExpiry := time.Now().Add(-time.Hour)

	tests := []struct {
		name       string
		userID     string
		setupMock  func()
		wantStatus int
	}{
		{
			name:   "trial user passes through",
			userID: "user-id-123",
			setupMock: func() {
				mockUserRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(userModel.User{
						ID:                 "user-id-123",
						Role:               constant.RoleHost,
						SubscriptionStatus: constant.SubscriptionStatusTrial,
						TrialExpiresAt:     &futureExpiry,
					}, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name:   "expired trial denied",
			userID: "user-id-123",
			setupMock: func() {
				mockUserRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(userModel.User{
						ID:                 "user-id-123",
						Role:               constant.RoleHost,
						SubscriptionStatus: constant.SubscriptionStatusTrial,
						TrialExpiresAt:     &pastExpiry,
					}, nil)
			},
			wantStatus: http.StatusForbidden,
		},
		{
			name:   "admin with expired trial passes through",
			userID: "admin-id-123",
			setupMock: func() {
				mockUserRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(userModel.User{
						ID:                 "admin-id-123",
						Role:               constant.RoleAdmin,
						SubscriptionStatus: constant.SubscriptionStatusExpired,
						TrialExpiresAt:     &pastExpiry,
					}, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name:       "missing user context",
			userID:     "",
			setupMock:  func() {},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:   "lookup failure denies access",
			userID: "user-id-123",
			setupMock: func() {
				mockUserRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(userModel.User{}, errors.New("db unavailable"))
			},
			wantStatus: http.StatusInternalServerError,
		},
		{
			name:   "unknown user rejected",
			userID: "user-id-123",
			setupMock: func() {
				mockUserRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(userModel.User{}, nil)
			},
			wantStatus: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			req := httptest.NewRequest(http.MethodGet, "/v1/bookings", nil)
			if tt.userID != "" {
				ctx := context.WithValue(req.Context(), constant.ContextKeyUserID, tt.userID)
				req = req.WithContext(ctx)
			}

			recorder := httptest.NewRecorder()

			mw.RequireActive(next).ServeHTTP(recorder, req)

			assert.Equal(t, tt.wantStatus, recorder.Code)
		})
	}
}

func TestSubscriptionMiddleware_DeniedPayload(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUserRepo := userMocks.NewMockUser(ctrl)
	mockOtel := mocks.NewOtel()

	mw := middleware.NewSubscriptionMiddleware(mockUserRepo, mockOtel)

	pastExpiry := time.Now().Add(-time.Hour)

	mockUserRepo.EXPECT().
		Get(gomock.Any(), gomock.Any()).
		Return(userModel.User{
			ID:                 "user-id-123",
			Role:               constant.RoleHost,
			SubscriptionStatus: constant.SubscriptionStatusTrial,
			TrialExpiresAt:     &pastExpiry,
		}, nil)

	req := httptest.NewRequest(http.MethodGet, "/v1/bookings", nil)
	ctx := context.WithValue(req.Context(), constant.ContextKeyUserID, "user-id-123")
	req = req.WithContext(ctx)

	recorder := httptest.NewRecorder()

	mw.RequireActive(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("expected request to be blocked")
	})).ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusForbidden, recorder.Code)

	var payload map[string]any
	err := json.Unmarshal(recorder.Body.Bytes(), &payload)

	assert.NoError(t, err)
	assert.Equal(t, "Subscription required", payload["error"])
	assert.Equal(t, true, payload["trial_expired"])
	assert.Equal(t, constant.SubscriptionStatusTrial, payload["subscription_status"])
	assert.NotEmpty(t, payload["message"])
}
