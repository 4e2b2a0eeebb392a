package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"hotelhills/config"
	otelMocks "hotelhills/infras/otel/mocks"
	banquetMocks "hotelhills/internal/domains/banquet/mocks"
	"hotelhills/internal/domains/banquet/model"
	"hotelhills/internal/domains/banquet/model/dto"
	"hotelhills/internal/domains/banquet/service"
	cacheMocks "hotelhills/shared/cache/mocks"
	"hotelhills/shared/failure"
)

func TestBanquetService(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := banquetMocks.NewMockBanquet(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockCache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	mockCache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	svc := service.New(mockRepo, &config.Config{}, mockCache, otelMocks.NewOtel())
	price := 1500.0

	t.Run("create defaults to available", func(t *testing.T) {
		mockRepo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(nil)

		res, err := svc.Create(context.Background(), dto.CreateBanquetRequest{Name: "Grand Hall", Capacity: 200, Price: &price})

		time.Sleep(10 * time.Millisecond)

		require.NoError(t, err)
		assert.Equal(t, model.StatusAvailable, res.Status)
		assert.Equal(t, 200, res.Capacity)
	})

	t.Run("update missing banquet", func(t *testing.T) {
		mockRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)

		_, err := svc.Update(context.Background(), dto.UpdateBanquetRequest{Capacity: 150}, "missing")

		assert.True(t, failure.IsNotFound(err))
	})

	t.Run("delete", func(t *testing.T) {
		mockRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
		mockRepo.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil)

		err := svc.Delete(context.Background(), "b1")

		time.Sleep(10 * time.Millisecond)

		assert.NoError(t, err)
	})
}
