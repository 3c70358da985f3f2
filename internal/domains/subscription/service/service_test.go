package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"checkinhq/infras/otel/mocks"
	"checkinhq/internal/domains/subscription/service"
	userMocks "checkinhq/internal/domains/user/mocks"
	userModel "checkinhq/internal/domains/user/model"
	"checkinhq/shared/constant"
	gDto "checkinhq/shared/dto"
	"checkinhq/shared/timezone"
)

func newTestService(t *testing.T) (service.Subscription, *userMocks.MockUser) {
	t.Helper()

	ctrl := gomock.NewController(t)

	mockUserRepo := userMocks.NewMockUser(ctrl)
	mockOtel := mocks.NewOtel()

	svc := service.New(mockUserRepo, mockOtel)

	return svc, mockUserRepo
}

func hostUser(status string, trialExpiresAt *time.Time) userModel.User {
	return userModel.User{
		ID:                 "user-id-123",
		Email:              "host@example.com",
		Role:               constant.RoleHost,
		SubscriptionStatus: status,
		TrialExpiresAt:     trialExpiresAt,
	}
}

func TestSubscriptionService_GetStatus(t *testing.T) {
	svc, mockUserRepo := newTestService(t)

	futureExpiry := timezone.Now().Add(10 * 24 * time.Hour)
	pastExpiry := timezone.Now().Add(-time.Hour)

	tests := []struct {
		name       string
		setupMock  func()
		wantErr    bool
		wantAccess bool
		wantStatus string
	}{
		{
			name: "trial user has access",
			setupMock: func() {
				mockUserRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(hostUser(constant.SubscriptionStatusTrial, &futureExpiry), nil)
			},
			wantAccess: true,
			wantStatus: constant.SubscriptionStatusTrial,
		},
		{
			name: "expired trial denied",
			setupMock: func() {
				mockUserRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(hostUser(constant.SubscriptionStatusTrial, &pastExpiry), nil)
			},
			wantAccess: false,
			wantStatus: constant.SubscriptionStatusTrial,
		},
		{
			name: "admin always has access",
			setupMock: func() {
				admin := hostUser(constant.SubscriptionStatusExpired, &pastExpiry)
				admin.Role = constant.RoleAdmin

				mockUserRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(admin, nil)
			},
			wantAccess: true,
			wantStatus: constant.SubscriptionStatusExpired,
		},
		{
			name: "user not found",
			setupMock: func() {
				mockUserRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(userModel.User{}, nil)
			},
			wantErr: true,
		},
		{
			name: "repository error",
			setupMock: func() {
				mockUserRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(userModel.User{}, errors.New("db error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			result, err := svc.GetStatus(context.Background(), "user-id-123")

			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.wantAccess, result.HasActiveAccess)
			assert.Equal(t, tt.wantStatus, result.SubscriptionStatus)
		})
	}
}

func TestSubscriptionService_ListSubscribers(t *testing.T) {
	svc, mockUserRepo := newTestService(t)

	pastExpiry := timezone.Now().Add(-time.Hour)

	t.Run("marks expired trials", func(t *testing.T) {
		users := []userModel.User{
			hostUser(constant.SubscriptionStatusTrial, &pastExpiry),
			hostUser(constant.SubscriptionStatusActive, nil),
		}

		mockUserRepo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(users, nil)

		result, err := svc.ListSubscribers(context.Background(), gDto.QueryParams{})

		assert.NoError(t, err)
		assert.Len(t, result.Users, 2)
		assert.True(t, result.Users[0].TrialExpired)
		assert.False(t, result.Users[1].TrialExpired)
	})

	t.Run("repository error", func(t *testing.T) {
		mockUserRepo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, errors.New("db error"))

		_, err := svc.ListSubscribers(context.Background(), gDto.QueryParams{})

		assert.Error(t, err)
	})
}

func TestSubscriptionService_Activate(t *testing.T) {
	svc, mockUserRepo := newTestService(t)

	tests := []struct {
		name      string
		setupMock func()
		wantErr   bool
	}{
		{
			name: "successful activation",
			setupMock: func() {
				mockUserRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)

				mockUserRepo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)
			},
			wantErr: false,
		},
		{
			name: "user not found",
			setupMock: func() {
				mockUserRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, nil)
			},
			wantErr: true,
		},
		{
			name: "update error",
			setupMock: func() {
				mockUserRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)

				mockUserRepo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("update error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			err := svc.Activate(context.Background(), "user-id-123")

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestSubscriptionService_Deactivate(t *testing.T) {
	svc, mockUserRepo := newTestService(t)

	t.Run("successful deactivation", func(t *testing.T) {
		mockUserRepo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(true, nil)

		mockUserRepo.EXPECT().
			Update(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil)

		err := svc.Deactivate(context.Background(), "user-id-123")

		assert.NoError(t, err)
	})
}

func TestSubscriptionService_Toggle(t *testing.T) {
	svc, mockUserRepo := newTestService(t)

	tests := []struct {
		name       string
		setupMock  func()
		wantErr    bool
		wantStatus string
	}{
		{
			name: "active flips to expired",
			setupMock: func() {
				mockUserRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(hostUser(constant.SubscriptionStatusActive, nil), nil)

				mockUserRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)

				mockUserRepo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)
			},
			wantStatus: constant.SubscriptionStatusExpired,
		},
		{
			name: "trial flips to active",
			setupMock: func() {
				mockUserRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(hostUser(constant.SubscriptionStatusTrial, nil), nil)

				mockUserRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)

				mockUserRepo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)
			},
			wantStatus: constant.SubscriptionStatusActive,
		},
		{
			name: "expired flips to active",
			setupMock: func() {
				mockUserRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(hostUser(constant.SubscriptionStatusExpired, nil), nil)

				mockUserRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)

				mockUserRepo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)
			},
			wantStatus: constant.SubscriptionStatusActive,
		},
		{
			name: "user not found",
			setupMock: func() {
				mockUserRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(userModel.User{}, nil)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			result, err := svc.Toggle(context.Background(), "user-id-123")

			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.wantStatus, result.SubscriptionStatus)
		})
	}
}
