package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"hotelhills/config"
	otelMocks "hotelhills/infras/otel/mocks"
	tableMocks "hotelhills/internal/domains/table/mocks"
	"hotelhills/internal/domains/table/model"
	"hotelhills/internal/domains/table/model/dto"
	"hotelhills/internal/domains/table/service"
	cacheMocks "hotelhills/shared/cache/mocks"
	"hotelhills/shared/failure"
)

func TestTableService_Get(t *testing.T) {
	tests := []struct {
		name      string
		setupMock func(repo *tableMocks.MockTable, cache *cacheMocks.MockRedisCache)
		want      dto.TableResponse
		wantCode  int
	}{
		{
			name: "from cache",
			setupMock: func(_ *tableMocks.MockTable, cache *cacheMocks.MockRedisCache) {
				cache.EXPECT().
					Get(gomock.Any(), "table:get:t1", gomock.Any()).
					DoAndReturn(func(_ context.Context, _ string, dest any) error {
						*dest.(*dto.TableResponse) = dto.TableResponse{ID: "t1", Number: "T1", Capacity: 4}

						return nil
					})
			},
			want: dto.TableResponse{ID: "t1", Number: "T1", Capacity: 4},
		},
		{
			name: "from repository",
			setupMock: func(repo *tableMocks.MockTable, cache *cacheMocks.MockRedisCache) {
				cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("cache miss"))
				cache.EXPECT().Save(gomock.Any(), "table:get:t1", gomock.Any(), 300).Return(nil).AnyTimes()
				repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Table{ID: "t1", Number: "T1", Capacity: 4, Status: model.StatusAvailable}, nil)
			},
			want: dto.TableResponse{ID: "t1", Number: "T1", Capacity: 4, Status: model.StatusAvailable},
		},
		{
			name: "missing",
			setupMock: func(repo *tableMocks.MockTable, cache *cacheMocks.MockRedisCache) {
				cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("cache miss"))
				repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Table{}, nil)
			},
			wantCode: 404,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)

			mockRepo := tableMocks.NewMockTable(ctrl)
			mockCache := cacheMocks.NewMockRedisCache(ctrl)

			cfg := &config.Config{}
			cfg.Cache.TTL = 300

			tt.setupMock(mockRepo, mockCache)

			svc := service.New(mockRepo, cfg, mockCache, otelMocks.NewOtel())

			res, err := svc.Get(context.Background(), "t1")

			time.Sleep(10 * time.Millisecond)

			if tt.wantCode != 0 {
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.want.ID, res.ID)
			assert.Equal(t, tt.want.Number, res.Number)
			assert.Equal(t, tt.want.Capacity, res.Capacity)
			assert.Equal(t, tt.want.Status, res.Status)
		})
	}
}
