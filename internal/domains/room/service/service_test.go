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
	roomMocks "hotelhills/internal/domains/room/mocks"
	"hotelhills/internal/domains/room/model"
	"hotelhills/internal/domains/room/model/dto"
	"hotelhills/internal/domains/room/service"
	cacheMocks "hotelhills/shared/cache/mocks"
	gDto "hotelhills/shared/dto"
	"hotelhills/shared/failure"
	gModel "hotelhills/shared/model"
	"hotelhills/shared/timezone"
)

func setup(t *testing.T) (service.Room, *roomMocks.MockRoom, *cacheMocks.MockRedisCache) {
	t.Helper()

	ctrl := gomock.NewController(t)

	mockRepo := roomMocks.NewMockRoom(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)

	cfg := &config.Config{}
	cfg.Cache.TTL = 300

	mockCache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	mockCache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	mockCache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	return service.New(mockRepo, cfg, mockCache, otelMocks.NewOtel()), mockRepo, mockCache
}

func sampleRoom() model.Room {
	return model.Room{
		ID:       "5b0d0f2e-8a4c-4c61-9d0c-1f1f1f1f1f1f",
		Number:   "101",
		Type:     "deluxe",
		Status:   model.StatusAvailable,
		Price:    120.5,
		Metadata: gModel.NewMetadata(timezone.Now()),
	}
}

func TestRoomService_Create(t *testing.T) {
	price := 120.5

	tests := []struct {
		name      string
		req       dto.CreateRoomRequest
		setupMock func(repo *roomMocks.MockRoom)
		wantErr   bool
	}{
		{
			name: "successful creation defaults status",
			req:  dto.CreateRoomRequest{Number: "101", Type: "deluxe", Price: &price},
			setupMock: func(repo *roomMocks.MockRoom) {
				repo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, room model.Room) error {
						assert.Equal(t, model.StatusAvailable, room.Status)
						assert.NotEmpty(t, room.ID)

						return nil
					})
			},
		},
		{
			name: "duplicate number",
			req:  dto.CreateRoomRequest{Number: "101", Type: "deluxe", Price: &price},
			setupMock: func(repo *roomMocks.MockRoom) {
				repo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(failure.Conflict("room already exists"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, repo, _ := setup(t)
			tt.setupMock(repo)

			res, err := svc.Create(context.Background(), tt.req)

			time.Sleep(10 * time.Millisecond)

			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, "101", res.Number)
			assert.Equal(t, model.StatusAvailable, res.Status)
			assert.InDelta(t, price, res.Price, 0.001)
		})
	}
}

func TestRoomService_Get(t *testing.T) {
	room := sampleRoom()

	t.Run("cache hit skips repository", func(t *testing.T) {
		svc, _, mockCache := setup(t)

		mockCache.EXPECT().
			Get(gomock.Any(), "room:get:"+room.ID, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, dest any) error {
				dest.(*dto.RoomResponse).ID = room.ID

				return nil
			})

		res, err := svc.Get(context.Background(), room.ID)

		require.NoError(t, err)
		assert.Equal(t, room.ID, res.ID)
	})

	t.Run("cache miss reads repository", func(t *testing.T) {
		svc, repo, mockCache := setup(t)

		mockCache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("cache miss"))
		repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(room, nil)

		res, err := svc.Get(context.Background(), room.ID)

		time.Sleep(10 * time.Millisecond)

		require.NoError(t, err)
		assert.Equal(t, room.Number, res.Number)
	})

	t.Run("not found", func(t *testing.T) {
		svc, repo, mockCache := setup(t)

		mockCache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("cache miss"))
		repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Room{}, nil)

		_, err := svc.Get(context.Background(), room.ID)

		assert.True(t, failure.IsNotFound(err))
	})
}

func TestRoomService_GetAll(t *testing.T) {
	svc, repo, mockCache := setup(t)

	mockCache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("cache miss")).Times(2)
	repo.EXPECT().Count(gomock.Any(), gomock.Any()).Return(3, nil)
	repo.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return([]model.Room{sampleRoom(), sampleRoom()}, nil)

	res, err := svc.GetAll(context.Background(), gDto.QueryParams{Page: 1, Limit: 2}, gDto.FilterGroup{})

	time.Sleep(10 * time.Millisecond)

	require.NoError(t, err)
	assert.Len(t, res.Rooms, 2)
	assert.Equal(t, 3, res.TotalData)
	assert.Equal(t, 2, res.TotalPage)
}

func TestRoomService_Update(t *testing.T) {
	room := sampleRoom()
	empty := ""

	t.Run("empty request", func(t *testing.T) {
		svc, _, _ := setup(t)

		_, err := svc.Update(context.Background(), dto.UpdateRoomRequest{}, room.ID)

		assert.ErrorIs(t, err, failure.EmptyUpdateRequest)
	})

	t.Run("room not found", func(t *testing.T) {
		svc, repo, _ := setup(t)

		repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)

		_, err := svc.Update(context.Background(), dto.UpdateRoomRequest{Status: model.StatusMaintenance}, room.ID)

		assert.True(t, failure.IsNotFound(err))
	})

	t.Run("detaches guest and returns fresh record", func(t *testing.T) {
		svc, repo, _ := setup(t)

		updated := room
		updated.Status = model.StatusMaintenance

		repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
		repo.EXPECT().
			Update(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, fields map[string]any, _ gDto.FilterGroup) error {
				assert.Equal(t, model.StatusMaintenance, fields[model.FieldStatus])
				assert.Contains(t, fields, model.FieldGuestID)
				assert.Nil(t, fields[model.FieldGuestID])

				return nil
			})
		repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(updated, nil)

		res, err := svc.Update(context.Background(), dto.UpdateRoomRequest{Status: model.StatusMaintenance, GuestID: &empty}, room.ID)

		time.Sleep(10 * time.Millisecond)

		require.NoError(t, err)
		assert.Equal(t, model.StatusMaintenance, res.Status)
	})
}

func TestRoomService_Delete(t *testing.T) {
	room := sampleRoom()

	t.Run("not found", func(t *testing.T) {
		svc, repo, _ := setup(t)

		repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)

		err := svc.Delete(context.Background(), room.ID)

		assert.True(t, failure.IsNotFound(err))
	})

	t.Run("still referenced", func(t *testing.T) {
		svc, repo, _ := setup(t)

		repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
		repo.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(failure.StillReferenced)

		err := svc.Delete(context.Background(), room.ID)

		assert.ErrorIs(t, err, failure.StillReferenced)
	})

	t.Run("success", func(t *testing.T) {
		svc, repo, _ := setup(t)

		repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
		repo.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil)

		err := svc.Delete(context.Background(), room.ID)

		time.Sleep(10 * time.Millisecond)

		assert.NoError(t, err)
	})
}
