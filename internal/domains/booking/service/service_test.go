package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	otelMocks "hotelhills/infras/otel/mocks"
	bookingMocks "hotelhills/internal/domains/booking/mocks"
	"hotelhills/internal/domains/booking/model"
	"hotelhills/internal/domains/booking/model/dto"
	"hotelhills/internal/domains/booking/service"
	guestMocks "hotelhills/internal/domains/guest/mocks"
	roomMocks "hotelhills/internal/domains/room/mocks"
	gDto "hotelhills/shared/dto"
	"hotelhills/shared/failure"
	"hotelhills/shared/timezone"
)

const (
	roomID  = "9a7c1a52-3b0e-4f57-9d51-0b9f7c1d2e01"
	guestID = "3f0b6a1e-5c5d-4e0a-8f0c-6a2b9d4e7c02"
)

type fixture struct {
	svc   service.Booking
	repo  *bookingMocks.MockBooking
	rooms *roomMocks.MockRoom
	guest *guestMocks.MockGuest
}

func newFixture(t *testing.T) fixture {
	t.Helper()

	ctrl := gomock.NewController(t)

	f := fixture{
		repo:  bookingMocks.NewMockBooking(ctrl),
		rooms: roomMocks.NewMockRoom(ctrl),
		guest: guestMocks.NewMockGuest(ctrl),
	}
	f.svc = service.New(f.repo, f.rooms, f.guest, otelMocks.NewOtel())

	return f
}

func sampleDetail(id string) model.BookingDetail {
	checkIn, _ := timezone.ParseFlexible("2024-03-01T14:00")
	checkOut, _ := timezone.ParseFlexible("2024-03-04T10:00")

	return model.BookingDetail{
		Booking: model.Booking{
			ID:       id,
			RoomID:   roomID,
			GuestID:  guestID,
			CheckIn:  checkIn,
			CheckOut: checkOut,
			Status:   model.StatusBooked,
		},
		RoomNumber: "101",
		RoomPrice:  100,
		GuestName:  "Ana",
	}
}

func TestBookingService_Create(t *testing.T) {
	validReq := dto.CreateBookingRequest{
		RoomID:   roomID,
		GuestID:  guestID,
		CheckIn:  "2024-03-01T14:00",
		CheckOut: "2024-03-04T10:00",
	}

	t.Run("creates and returns expanded booking", func(t *testing.T) {
		f := newFixture(t)

		var inserted model.Booking

		f.rooms.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
		f.guest.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
		f.repo.EXPECT().
			Insert(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, booking model.Booking) error {
				inserted = booking

				return nil
			})
		f.repo.EXPECT().
			GetDetail(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ gDto.FilterGroup) (model.BookingDetail, error) {
				return sampleDetail(inserted.ID), nil
			})

		res, err := f.svc.Create(context.Background(), validReq)

		require.NoError(t, err)
		assert.Equal(t, model.StatusBooked, inserted.Status)
		assert.Equal(t, inserted.ID, res.ID)
		assert.Equal(t, "101", res.Room.Number)
		assert.Equal(t, "Ana", res.Guest.Name)
	})

	t.Run("check out before check in", func(t *testing.T) {
		f := newFixture(t)

		req := validReq
		req.CheckOut = "2024-02-28"

		_, err := f.svc.Create(context.Background(), req)

		assert.Equal(t, 400, failure.GetCode(err))
	})

	t.Run("room does not exist", func(t *testing.T) {
		f := newFixture(t)

		f.rooms.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)

		_, err := f.svc.Create(context.Background(), validReq)

		require.Error(t, err)
		assert.Equal(t, 400, failure.GetCode(err))
		assert.Equal(t, "room does not exist", err.Error())
	})

	t.Run("guest does not exist", func(t *testing.T) {
		f := newFixture(t)

		f.rooms.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
		f.guest.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)

		_, err := f.svc.Create(context.Background(), validReq)

		assert.Equal(t, "guest does not exist", err.Error())
	})
}

func TestBookingService_Update(t *testing.T) {
	t.Run("merges check out with stored check in", func(t *testing.T) {
		f := newFixture(t)
		current := sampleDetail("b1").Booking

		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(current, nil)
		f.repo.EXPECT().
			Update(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, fields map[string]any, _ gDto.FilterGroup) error {
				checkOut, ok := fields[model.FieldCheckOut].(time.Time)
				require.True(t, ok)
				assert.Equal(t, 6, checkOut.Day())
				assert.NotContains(t, fields, model.FieldCheckIn)

				return nil
			})
		f.repo.EXPECT().GetDetail(gomock.Any(), gomock.Any()).Return(sampleDetail("b1"), nil)

		_, err := f.svc.Update(context.Background(), dto.UpdateBookingRequest{CheckOut: "2024-03-06"}, "b1")

		assert.NoError(t, err)
	})

	t.Run("rejects check out earlier than stored check in", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(sampleDetail("b1").Booking, nil)

		_, err := f.svc.Update(context.Background(), dto.UpdateBookingRequest{CheckOut: "2024-02-01"}, "b1")

		assert.Equal(t, 400, failure.GetCode(err))
	})

	t.Run("missing booking", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Booking{}, nil)

		_, err := f.svc.Update(context.Background(), dto.UpdateBookingRequest{Status: model.StatusCheckedIn}, "b1")

		assert.True(t, failure.IsNotFound(err))
	})

	t.Run("empty request", func(t *testing.T) {
		f := newFixture(t)

		_, err := f.svc.Update(context.Background(), dto.UpdateBookingRequest{}, "b1")

		assert.ErrorIs(t, err, failure.EmptyUpdateRequest)
	})
}

func TestBookingService_GetAll(t *testing.T) {
	f := newFixture(t)

	f.repo.EXPECT().Count(gomock.Any(), gomock.Any()).Return(1, nil)
	f.repo.EXPECT().GetAllDetail(gomock.Any(), gomock.Any(), gomock.Any()).Return([]model.BookingDetail{sampleDetail("b1")}, nil)

	res, err := f.svc.GetAll(context.Background(), gDto.QueryParams{Page: 1, Limit: 10}, gDto.FilterGroup{})

	require.NoError(t, err)
	require.Len(t, res.Bookings, 1)
	assert.Equal(t, roomID, res.Bookings[0].Room.ID)
	assert.Equal(t, 1, res.TotalPage)
}

func TestBookingService_Delete(t *testing.T) {
	f := newFixture(t)

	f.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
	f.repo.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(failure.StillReferenced)

	err := f.svc.Delete(context.Background(), "b1")

	assert.Equal(t, 409, failure.GetCode(err))
}
