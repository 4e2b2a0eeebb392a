package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"

	"hotelhills/config"
	"hotelhills/infras/otel"
	"hotelhills/internal/domains/banquet/model"
	"hotelhills/internal/domains/banquet/model/dto"
	"hotelhills/internal/domains/banquet/repository"
	"hotelhills/shared"
	"hotelhills/shared/cache"
	"hotelhills/shared/constant"
	gDto "hotelhills/shared/dto"
	"hotelhills/shared/failure"
	"hotelhills/shared/timezone"

	"github.com/rs/zerolog/log"
)

const (
	cacheGetBanquet    = "banquet:get"
	cacheGetAllBanquet = "banquet:gets"
	cacheCountBanquet  = "banquet:count"
)

type Banquet interface {
	Create(ctx context.Context, req dto.CreateBanquetRequest) (dto.BanquetResponse, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetBanquetsResponse, error)
	Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (int, error)
	Get(ctx context.Context, id string) (dto.BanquetResponse, error)
	Update(ctx context.Context, req dto.UpdateBanquetRequest, id string) (dto.BanquetResponse, error)
	Delete(ctx context.Context, id string) error
}

type serviceImpl struct {
	repo  repository.Banquet
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
}

func New(repo repository.Banquet, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Banquet {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateBanquetRequest) (res dto.BanquetResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Banquet.Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	banquet := req.ToModel(timezone.Now())

	if err = s.repo.Insert(ctx, banquet); err != nil {
		log.Error().Err(err).Msg("failed to create banquet")

		return res, fmt.Errorf("failed to create banquet: %w", err)
	}

	s.invalidateLists(ctx)

	res.FromModel(banquet)

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetBanquetsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Banquet.GetAll")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllBanquet, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for banquets")

		return res, nil
	}

	total, err := s.Count(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count banquets")

		return res, fmt.Errorf("failed to count banquets: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get banquets")

		return res, fmt.Errorf("failed to get banquets: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save banquets to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Banquet.Count")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	cacheKey := shared.BuildCacheKeyWithQuery(cacheCountBanquet, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for banquet count")

		return res, nil
	}

	res, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count banquets")

		return res, fmt.Errorf("failed to count banquets: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save banquet count to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.BanquetResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Banquet.Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	cacheKey := shared.BuildCacheKey(cacheGetBanquet, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for banquet")

		return res, nil
	}

	banquet, err := s.fetch(ctx, id)
	if err != nil {
		return res, err
	}

	res.FromModel(banquet)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save banquet to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateBanquetRequest, id string) (res dto.BanquetResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Banquet.Update")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if req == (dto.UpdateBanquetRequest{}) {
		return res, failure.EmptyUpdateRequest
	}

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check banquet existence")

		return res, fmt.Errorf("failed to check if banquet exists: %w", err)
	}

	if !exist {
		return res, failure.NotFound("banquet not found") // nolint:wrapcheck
	}

	if err = s.repo.Update(ctx, shared.TransformFields(req), filter); err != nil {
		log.Error().Err(err).Msg("failed to update banquet")

		return res, fmt.Errorf("failed to update banquet: %w", err)
	}

	s.invalidate(ctx, id)

	banquet, err := s.fetch(ctx, id)
	if err != nil {
		return res, err
	}

	res.FromModel(banquet)

	return res, nil
}

func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Banquet.Delete")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if banquet exists")

		return fmt.Errorf("failed to check if banquet exists: %w", err)
	}

	if !exist {
		return failure.NotFound("banquet not found") // nolint:wrapcheck
	}

	if err = s.repo.Delete(ctx, filter); err != nil {
		log.Error().Err(err).Msg("failed to delete banquet")

		return fmt.Errorf("failed to delete banquet: %w", err)
	}

	s.invalidate(ctx, id)

	return nil
}

func (s *serviceImpl) fetch(ctx context.Context, id string) (model.Banquet, error) {
	banquet, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get banquet")

		return banquet, fmt.Errorf("failed to get banquet: %w", err)
	}

	if banquet.ID == constant.Empty {
		return banquet, failure.NotFound("banquet not found") // nolint:wrapcheck
	}

	return banquet, nil
}

func (s *serviceImpl) invalidate(ctx context.Context, id string) {
	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetBanquet, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete banquet from cache")
		}
	}()

	s.invalidateLists(ctx)
}

func (s *serviceImpl) invalidateLists(ctx context.Context) {
	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllBanquet)
		shared.InvalidateCaches(c, s.cache, cacheCountBanquet)
	}()
}
