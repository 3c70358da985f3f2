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
	bookingMocks "checkinhq/internal/domains/booking/mocks"
	"checkinhq/internal/domains/booking/model"
	"checkinhq/internal/domains/booking/model/dto"
	"checkinhq/internal/domains/booking/service"
	noteMocks "checkinhq/internal/domains/note/mocks"
	noteModel "checkinhq/internal/domains/note/model"
	noteDto "checkinhq/internal/domains/note/model/dto"
	cacheMocks "checkinhq/shared/cache/mocks"
	"checkinhq/shared/constant"
	gDto "checkinhq/shared/dto"
	"checkinhq/shared/timezone"
)

const testUserID = "host-id-123"

func newTestService(t *testing.T) (service.Booking, *bookingMocks.MockBooking, *noteMocks.MockNote) {
	t.Helper()

	ctrl := gomock.NewController(t)

	mockRepo := bookingMocks.NewMockBooking(ctrl)
	mockNoteRepo := noteMocks.NewMockNote(ctrl)
	mockCache := newPermissiveCache(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}
	cfg.Cache.TTL = 60

	svc := service.New(mockRepo, mockNoteRepo, cfg, mockCache, mockOtel)

	return svc, mockRepo, mockNoteRepo
}

func ownedBooking() model.Booking {
	now := timezone.Now()

	return model.Booking{
		ID:           "booking-id-123",
		UserID:       testUserID,
		GuestName:    "Jane Guest",
		CheckInDate:  now,
		CheckOutDate: now.Add(48 * time.Hour),
		Status:       constant.BookingStatusConfirmed,
		Currency:     "USD",
	}
}

func TestBookingService_Create(t *testing.T) {
	svc, mockRepo, _ := newTestService(t)

	tests := []struct {
		name      string
		req       dto.CreateBookingRequest
		setupMock func()
		wantErr   bool
	}{
		{
			name: "successful creation with defaults",
			req: dto.CreateBookingRequest{
				GuestName:    "Jane Guest",
				CheckInDate:  "2025-07-01",
				CheckOutDate: "2025-07-05",
			},
			setupMock: func() {
				mockRepo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(nil)
			},
			wantErr: false,
		},
		{
			name: "deposit exceeding total rejected",
			req: dto.CreateBookingRequest{
				GuestName:     "Jane Guest",
				CheckInDate:   "2025-07-01",
				CheckOutDate:  "2025-07-05",
				TotalAmount:   floatPtr(100),
				DepositAmount: floatPtr(150),
			},
			setupMock: func() {},
			wantErr:   true,
		},
		{
			name: "check-out before check-in rejected",
			req: dto.CreateBookingRequest{
				GuestName:    "Jane Guest",
				CheckInDate:  "2025-07-05",
				CheckOutDate: "2025-07-01",
			},
			setupMock: func() {},
			wantErr:   true,
		},
		{
			name: "invalid date format rejected",
			req: dto.CreateBookingRequest{
				GuestName:    "Jane Guest",
				CheckInDate:  "01/07/2025",
				CheckOutDate: "2025-07-05",
			},
			setupMock: func() {},
			wantErr:   true,
		},
		{
			name: "insert error",
			req: dto.CreateBookingRequest{
				GuestName:    "Jane Guest",
				CheckInDate:  "2025-07-01",
				CheckOutDate: "2025-07-05",
			},
			setupMock: func() {
				mockRepo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(errors.New("insert error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			result, err := svc.Create(context.Background(), tt.req, testUserID)

			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			assert.NoError(t, err)
			assert.NotEmpty(t, result.ID)
			assert.Equal(t, testUserID, result.UserID)
			assert.Equal(t, constant.BookingStatusInquiry, result.Status)
			assert.Equal(t, "USD", result.Currency)
		})
	}
}

func TestBookingService_GetAll(t *testing.T) {
	svc, mockRepo, _ := newTestService(t)

	t.Run("returns paginated bookings", func(t *testing.T) {
		mockRepo.EXPECT().
			Count(gomock.Any(), gomock.Any()).
			Return(1, nil)

		mockRepo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			Return([]model.Booking{ownedBooking()}, nil)

		result, err := svc.GetAll(context.Background(), gDto.QueryParams{Limit: 10}, gDto.FilterGroup{}, testUserID)

		assert.NoError(t, err)
		assert.Len(t, result.Bookings, 1)
		assert.Equal(t, 1, result.TotalData)
		assert.Equal(t, 1, result.TotalPage)
	})

	t.Run("repository error", func(t *testing.T) {
		mockRepo.EXPECT().
			Count(gomock.Any(), gomock.Any()).
			Return(1, nil)

		mockRepo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, errors.New("db error"))

		_, err := svc.GetAll(context.Background(), gDto.QueryParams{Limit: 10}, gDto.FilterGroup{}, testUserID)

		assert.Error(t, err)
	})
}

func TestBookingService_Get(t *testing.T) {
	svc, mockRepo, _ := newTestService(t)

	tests := []struct {
		name      string
		setupMock func()
		wantErr   bool
	}{
		{
			name: "owner sees booking",
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(ownedBooking(), nil)
			},
			wantErr: false,
		},
		{
			name: "other tenant's booking hidden",
			setupMock: func() {
				other := ownedBooking()
				other.UserID = "someone-else"

				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(other, nil)
			},
			wantErr: true,
		},
		{
			name: "booking not found",
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Booking{}, nil)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			result, err := svc.Get(context.Background(), "booking-id-123", testUserID)

			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, "booking-id-123", result.ID)
		})
	}
}

func TestBookingService_Update(t *testing.T) {
	svc, mockRepo, _ := newTestService(t)

	tests := []struct {
		name      string
		req       dto.UpdateBookingRequest
		setupMock func()
		wantErr   bool
	}{
		{
			name: "successful update",
			req: dto.UpdateBookingRequest{
				Status: stringPtr(constant.BookingStatusCheckedIn),
			},
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(ownedBooking(), nil)

				mockRepo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)
			},
			wantErr: false,
		},
		{
			name: "deposit exceeding existing total rejected",
			req: dto.UpdateBookingRequest{
				DepositAmount: floatPtr(500),
			},
			setupMock: func() {
				booking := ownedBooking()
				booking.TotalAmount = floatPtr(100)

				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(booking, nil)
			},
			wantErr: true,
		},
		{
			name: "other tenant's booking hidden",
			req: dto.UpdateBookingRequest{
				Status: stringPtr(constant.BookingStatusCheckedIn),
			},
			setupMock: func() {
				other := ownedBooking()
				other.UserID = "someone-else"

				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(other, nil)
			},
			wantErr: true,
		},
		{
			name: "invalid check-in date format rejected",
			req: dto.UpdateBookingRequest{
				CheckInDate: stringPtr("07/01/2025"),
			},
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(ownedBooking(), nil)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			err := svc.Update(context.Background(), tt.req, "booking-id-123", testUserID)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestBookingService_Delete(t *testing.T) {
	svc, mockRepo, _ := newTestService(t)

	t.Run("successful delete", func(t *testing.T) {
		mockRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(ownedBooking(), nil)

		mockRepo.EXPECT().
			Delete(gomock.Any(), gomock.Any()).
			Return(nil)

		err := svc.Delete(context.Background(), "booking-id-123", testUserID)

		assert.NoError(t, err)
	})

	t.Run("other tenant's booking hidden", func(t *testing.T) {
		other := ownedBooking()
		other.UserID = "someone-else"

		mockRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(other, nil)

		err := svc.Delete(context.Background(), "booking-id-123", testUserID)

		assert.Error(t, err)
	})
}

func TestBookingService_MarkContacted(t *testing.T) {
	svc, mockRepo, _ := newTestService(t)

	t.Run("stamps last contacted", func(t *testing.T) {
		mockRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(ownedBooking(), nil)

		mockRepo.EXPECT().
			Update(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil)

		err := svc.MarkContacted(context.Background(), "booking-id-123", testUserID)

		assert.NoError(t, err)
	})

	t.Run("booking not found", func(t *testing.T) {
		mockRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(model.Booking{}, nil)

		err := svc.MarkContacted(context.Background(), "booking-id-123", testUserID)

		assert.Error(t, err)
	})
}

func TestBookingService_TodayDashboard(t *testing.T) {
	svc, mockRepo, _ := newTestService(t)

	t.Run("aggregates sections", func(t *testing.T) {
		arrival := ownedBooking()
		checkout := ownedBooking()
		checkout.ID = "booking-id-456"

		mockRepo.EXPECT().
			ArrivalsOn(gomock.Any(), testUserID, gomock.Any()).
			Return([]model.Booking{arrival}, nil)

		mockRepo.EXPECT().
			CheckoutsOn(gomock.Any(), testUserID, gomock.Any()).
			Return([]model.Booking{checkout}, nil)

		mockRepo.EXPECT().
			FollowUpsNeeded(gomock.Any(), testUserID, gomock.Any(), gomock.Any()).
			Return([]model.Booking{}, nil)

		mockRepo.EXPECT().
			PaymentsPending(gomock.Any(), testUserID).
			Return([]model.Booking{}, nil)

		result, err := svc.TodayDashboard(context.Background(), testUserID)

		assert.NoError(t, err)
		assert.Len(t, result.Arrivals, 1)
		assert.Len(t, result.Checkouts, 1)
		assert.Empty(t, result.FollowUpsNeeded)
		assert.Empty(t, result.PaymentsPending)
	})

	t.Run("arrivals error", func(t *testing.T) {
		mockRepo.EXPECT().
			ArrivalsOn(gomock.Any(), testUserID, gomock.Any()).
			Return(nil, errors.New("db error"))

		_, err := svc.TodayDashboard(context.Background(), testUserID)

		assert.Error(t, err)
	})
}

func TestBookingService_Notes(t *testing.T) {
	svc, mockRepo, mockNoteRepo := newTestService(t)

	ownedNote := noteModel.Note{
		ID:        "note-id-123",
		BookingID: "booking-id-123",
		NoteText:  "guest prefers late checkout",
		CreatedAt: timezone.Now(),
	}

	t.Run("add note to owned booking", func(t *testing.T) {
		mockRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(ownedBooking(), nil)

		mockNoteRepo.EXPECT().
			Insert(gomock.Any(), gomock.Any()).
			Return(nil)

		result, err := svc.AddNote(context.Background(), noteDto.AddNoteRequest{NoteText: "guest prefers late checkout"}, "booking-id-123", testUserID)

		assert.NoError(t, err)
		assert.Equal(t, "booking-id-123", result.BookingID)
		assert.Equal(t, "guest prefers late checkout", result.NoteText)
	})

	t.Run("add note to other tenant's booking hidden", func(t *testing.T) {
		other := ownedBooking()
		other.UserID = "someone-else"

		mockRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(other, nil)

		_, err := svc.AddNote(context.Background(), noteDto.AddNoteRequest{NoteText: "text"}, "booking-id-123", testUserID)

		assert.Error(t, err)
	})

	t.Run("list notes", func(t *testing.T) {
		mockRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(ownedBooking(), nil)

		mockNoteRepo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			Return([]noteModel.Note{ownedNote}, nil)

		result, err := svc.ListNotes(context.Background(), "booking-id-123", testUserID)

		assert.NoError(t, err)
		assert.Len(t, result.Notes, 1)
	})

	t.Run("delete note", func(t *testing.T) {
		mockRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(ownedBooking(), nil)

		mockNoteRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(ownedNote, nil)

		mockNoteRepo.EXPECT().
			Delete(gomock.Any(), gomock.Any()).
			Return(nil)

		err := svc.DeleteNote(context.Background(), "note-id-123", "booking-id-123", testUserID)

		assert.NoError(t, err)
	})

	t.Run("delete note from different booking hidden", func(t *testing.T) {
		foreignNote := ownedNote
		foreignNote.BookingID = "booking-id-789"

		mockRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(ownedBooking(), nil)

		mockNoteRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(foreignNote, nil)

		err := svc.DeleteNote(context.Background(), "note-id-123", "booking-id-123", testUserID)

		assert.Error(t, err)
	})
}

// newPermissiveCache always misses and swallows the async saves and
// invalidations fired from goroutines.
func newPermissiveCache(ctrl *gomock.Controller) *cacheMocks.MockRedisCache {
	mockCache := cacheMocks.NewMockRedisCache(ctrl)

	mockCache.EXPECT().
		Get(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(errors.New("cache miss")).
		AnyTimes()

	mockCache.EXPECT().
		Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil).
		AnyTimes()

	mockCache.EXPECT().
		Delete(gomock.Any(), gomock.Any()).
		Return(nil).
		AnyTimes()

	mockCache.EXPECT().
		Clear(gomock.Any(), gomock.Any()).
		Return(nil).
		AnyTimes()

	return mockCache
}

func stringPtr(s string) *string {
	return &s
}

func floatPtr(f float64) *float64 {
	return &f
}
