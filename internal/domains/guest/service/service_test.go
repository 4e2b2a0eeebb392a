package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"hotelhills/config"
	otelMocks "hotelhills/infras/otel/mocks"
	guestMocks "hotelhills/internal/domains/guest/mocks"
	"hotelhills/internal/domains/guest/model"
	"hotelhills/internal/domains/guest/model/dto"
	"hotelhills/internal/domains/guest/service"
	cacheMocks "hotelhills/shared/cache/mocks"
	gDto "hotelhills/shared/dto"
	"hotelhills/shared/failure"
)

func TestGuestService(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := guestMocks.NewMockGuest(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)

	cfg := &config.Config{}
	cfg.Cache.TTL = 300

	mockCache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	mockCache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	mockCache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	svc := service.New(mockRepo, cfg, mockCache, otelMocks.NewOtel())
	ctx := context.Background()

	t.Run("create", func(t *testing.T) {
		mockRepo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(nil)

		res, err := svc.Create(ctx, dto.CreateGuestRequest{Name: "Ana", Phone: "+62811", Email: "ana@example.com"})

		time.Sleep(10 * time.Millisecond)

		require.NoError(t, err)
		assert.NotEmpty(t, res.ID)
		assert.Equal(t, "Ana", res.Name)
	})

	t.Run("create fails", func(t *testing.T) {
		mockRepo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(errors.New("database error"))

		_, err := svc.Create(ctx, dto.CreateGuestRequest{Name: "Ana", Phone: "+62811"})

		assert.Error(t, err)
	})

	t.Run("update with empty body", func(t *testing.T) {
		_, err := svc.Update(ctx, dto.UpdateGuestRequest{}, "guest-id")

		assert.ErrorIs(t, err, failure.EmptyUpdateRequest)
	})

	t.Run("update phone", func(t *testing.T) {
		mockRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
		mockRepo.EXPECT().
			Update(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, fields map[string]any, _ gDto.FilterGroup) error {
				assert.Equal(t, "+62822", fields[model.FieldPhone])
				assert.NotContains(t, fields, model.FieldName)

				return nil
			})
		mockRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Guest{ID: "guest-id", Name: "Ana", Phone: "+62822"}, nil)

		res, err := svc.Update(ctx, dto.UpdateGuestRequest{Phone: "+62822"}, "guest-id")

		time.Sleep(10 * time.Millisecond)

		require.NoError(t, err)
		assert.Equal(t, "+62822", res.Phone)
	})

	t.Run("delete referenced guest", func(t *testing.T) {
		mockRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
		mockRepo.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(failure.StillReferenced)

		err := svc.Delete(ctx, "guest-id")

		assert.Equal(t, 409, failure.GetCode(err))
	})
}

func TestGuestService_DeleteClearsRoomCache(t *testing.T) {
	ctrl := gomock.NewController(t)

	mockRepo := guestMocks.NewMockGuest(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)

	roomsCleared := make(chan struct{})

	mockCache.EXPECT().
		Clear(gomock.Any(), "room:*").
		DoAndReturn(func(context.Context, string) error {
			close(roomsCleared)

			return nil
		})
	mockCache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	mockCache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	mockRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
	mockRepo.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil)

	svc := service.New(mockRepo, &config.Config{}, mockCache, otelMocks.NewOtel())

	require.NoError(t, svc.Delete(context.Background(), "guest-id"))

	select {
	case <-roomsCleared:
	case <-time.After(time.Second):
		t.Fatal("room cache was not cleared after deleting the guest")
	}
}
