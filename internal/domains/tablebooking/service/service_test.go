package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	otelMocks "hotelhills/infras/otel/mocks"
	guestMocks "hotelhills/internal/domains/guest/mocks"
	tableMocks "hotelhills/internal/domains/table/mocks"
	tableBookingMocks "hotelhills/internal/domains/tablebooking/mocks"
	"hotelhills/internal/domains/tablebooking/model"
	"hotelhills/internal/domains/tablebooking/model/dto"
	"hotelhills/internal/domains/tablebooking/service"
	gDto "hotelhills/shared/dto"
	"hotelhills/shared/failure"
)

func TestTableBookingService(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := tableBookingMocks.NewMockTableBooking(ctrl)
	mockTables := tableMocks.NewMockTable(ctrl)
	mockGuests := guestMocks.NewMockGuest(ctrl)

	svc := service.New(mockRepo, mockTables, mockGuests, otelMocks.NewOtel())
	ctx := context.Background()

	req := dto.CreateTableBookingRequest{
		TableID:     "7c1d2e01-9a7c-4a52-8b0e-4f579d510b9f",
		GuestID:     "3f0b6a1e-5c5d-4e0a-8f0c-6a2b9d4e7c02",
		BookingTime: "2024-06-01T19:30",
	}

	t.Run("table does not exist", func(t *testing.T) {
		mockTables.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)

		_, err := svc.Create(ctx, req)

		assert.Equal(t, "table does not exist", err.Error())
		assert.Equal(t, 400, failure.GetCode(err))
	})

	t.Run("create returns the expanded booking", func(t *testing.T) {
		mockTables.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
		mockGuests.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
		mockRepo.EXPECT().
			Insert(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, booking model.TableBooking) error {
				assert.Equal(t, model.StatusReserved, booking.Status)
				assert.Equal(t, 19, booking.BookingTime.Hour())
				assert.Equal(t, 30, booking.BookingTime.Minute())

				return nil
			})
		mockRepo.EXPECT().GetDetail(gomock.Any(), gomock.Any()).Return(model.TableBookingDetail{
			TableBooking: model.TableBooking{ID: "tb1", TableID: req.TableID, GuestID: req.GuestID, BookingTime: time.Now(), Status: model.StatusReserved},
			TableNumber:  "T4",
			GuestName:    "Ana",
		}, nil)

		res, err := svc.Create(ctx, req)

		require.NoError(t, err)
		assert.Equal(t, "T4", res.Table.Number)
		assert.Equal(t, "Ana", res.Guest.Name)
	})

	t.Run("update parses booking time", func(t *testing.T) {
		mockRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
		mockRepo.EXPECT().
			Update(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, fields map[string]any, _ gDto.FilterGroup) error {
				bookingTime, ok := fields[model.FieldBookingTime].(time.Time)
				require.True(t, ok)
				assert.Equal(t, 20, bookingTime.Hour())
				assert.Equal(t, model.StatusCompleted, fields[model.FieldStatus])

				return nil
			})
		mockRepo.EXPECT().GetDetail(gomock.Any(), gomock.Any()).Return(model.TableBookingDetail{TableBooking: model.TableBooking{ID: "tb1"}}, nil)

		_, err := svc.Update(ctx, dto.UpdateTableBookingRequest{BookingTime: "2024-06-01T20:00", Status: model.StatusCompleted}, "tb1")

		assert.NoError(t, err)
	})

	t.Run("get missing", func(t *testing.T) {
		mockRepo.EXPECT().GetDetail(gomock.Any(), gomock.Any()).Return(model.TableBookingDetail{}, nil)

		_, err := svc.Get(ctx, "missing")

		assert.True(t, failure.IsNotFound(err))
	})
}
