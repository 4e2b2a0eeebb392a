package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"

	"hotelhills/infras/otel"
	"hotelhills/internal/domains/kot/model"
	"hotelhills/internal/domains/kot/model/dto"
	"hotelhills/internal/domains/kot/repository"
	tableModel "hotelhills/internal/domains/table/model"
	tableRepo "hotelhills/internal/domains/table/repository"
	"hotelhills/shared"
	"hotelhills/shared/constant"
	gDto "hotelhills/shared/dto"
	"hotelhills/shared/failure"
	"hotelhills/shared/timezone"

	"github.com/rs/zerolog/log"
)

type KOT interface {
	Create(ctx context.Context, req dto.CreateKOTRequest) (dto.KOTResponse, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetKOTsResponse, error)
	Get(ctx context.Context, id string) (dto.KOTResponse, error)
	Update(ctx context.Context, req dto.UpdateKOTRequest, id string) (dto.KOTResponse, error)
	Delete(ctx context.Context, id string) error
}

type serviceImpl struct {
	repo      repository.KOT
	tableRepo tableRepo.Table
	otel      otel.Otel
}

func New(repo repository.KOT, tableRepo tableRepo.Table, otel otel.Otel) KOT {
	return &serviceImpl{
		repo:      repo,
		tableRepo: tableRepo,
		otel:      otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateKOTRequest) (res dto.KOTResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".KOT.Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = s.checkTable(ctx, req.TableID); err != nil {
		return res, err
	}

	kot := req.ToModel(timezone.Now())

	if err = s.repo.Insert(ctx, kot); err != nil {
		log.Error().Err(err).Msg("failed to create kot")

		return res, fmt.Errorf("failed to create kot: %w", err)
	}

	return s.Get(ctx, kot.ID)
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetKOTsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".KOT.GetAll")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count kots")

		return res, fmt.Errorf("failed to count kots: %w", err)
	}

	details, err := s.repo.GetAllDetail(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get kots")

		return res, fmt.Errorf("failed to get kots: %w", err)
	}

	res.FromModels(details, total, req.Limit)

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.KOTResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".KOT.Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	detail, err := s.repo.GetDetail(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get kot")

		return res, fmt.Errorf("failed to get kot: %w", err)
	}

	if detail.ID == constant.Empty {
		return res, failure.NotFound("kot not found") // nolint:wrapcheck
	}

	res.FromModel(detail)

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateKOTRequest, id string) (res dto.KOTResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".KOT.Update")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if req.IsEmpty() {
		return res, failure.EmptyUpdateRequest
	}

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if kot exists")

		return res, fmt.Errorf("failed to check if kot exists: %w", err)
	}

	if !exist {
		return res, failure.NotFound("kot not found") // nolint:wrapcheck
	}

	if req.TableID != constant.Empty {
		if err = s.checkTable(ctx, req.TableID); err != nil {
			return res, err
		}
	}

	updatedFields := req.Fields()
	updatedFields[constant.FieldModifiedAt] = timezone.Now()

	if err = s.repo.Update(ctx, updatedFields, filter); err != nil {
		log.Error().Err(err).Msg("failed to update kot")

		return res, fmt.Errorf("failed to update kot: %w", err)
	}

	return s.Get(ctx, id)
}

func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".KOT.Delete")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if kot exists")

		return fmt.Errorf("failed to check if kot exists: %w", err)
	}

	if !exist {
		return failure.NotFound("kot not found") // nolint:wrapcheck
	}

	if err = s.repo.Delete(ctx, filter); err != nil {
		log.Error().Err(err).Msg("failed to delete kot")

		return fmt.Errorf("failed to delete kot: %w", err)
	}

	return nil
}

func (s *serviceImpl) checkTable(ctx context.Context, tableID string) error {
	exist, err := s.tableRepo.Exist(ctx, shared.FilterByID(tableID, tableModel.FieldID, tableModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if table exists")

		return fmt.Errorf("failed to check if table exists: %w", err)
	}

	if !exist {
		return failure.BadRequestFromString("table does not exist") // nolint:wrapcheck
	}

	return nil
}
