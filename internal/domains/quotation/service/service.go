package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"

	"hotelhills/infras/otel"
	"hotelhills/internal/domains/quotation/model"
	"hotelhills/internal/domains/quotation/model/dto"
	"hotelhills/internal/domains/quotation/repository"
	banquetBookingModel "hotelhills/internal/domains/banquetbooking/model"
	banquetBookingRepo "hotelhills/internal/domains/banquetbooking/repository"
	"hotelhills/shared"
	"hotelhills/shared/constant"
	gDto "hotelhills/shared/dto"
	"hotelhills/shared/failure"
	"hotelhills/shared/timezone"

	"github.com/rs/zerolog/log"
)

type Quotation interface {
	Create(ctx context.Context, req dto.CreateQuotationRequest) (dto.QuotationResponse, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetQuotationsResponse, error)
	Get(ctx context.Context, id string) (dto.QuotationResponse, error)
	Update(ctx context.Context, req dto.UpdateQuotationRequest, id string) (dto.QuotationResponse, error)
	Delete(ctx context.Context, id string) error
}

type serviceImpl struct {
	repo               repository.Quotation
	banquetBookingRepo banquetBookingRepo.BanquetBooking
	otel               otel.Otel
}

func New(repo repository.Quotation, banquetBookingRepo banquetBookingRepo.BanquetBooking, otel otel.Otel) Quotation {
	return &serviceImpl{
		repo:               repo,
		banquetBookingRepo: banquetBookingRepo,
		otel:               otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateQuotationRequest) (res dto.QuotationResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Quotation.Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = s.checkBanquetBooking(ctx, req.BanquetBookingID); err != nil {
		return res, err
	}

	quotation := req.ToModel(timezone.Now())

	if err = s.repo.Insert(ctx, quotation); err != nil {
		log.Error().Err(err).Msg("failed to create quotation")

		return res, fmt.Errorf("failed to create quotation: %w", err)
	}

	return s.Get(ctx, quotation.ID)
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetQuotationsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Quotation.GetAll")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count quotations")

		return res, fmt.Errorf("failed to count quotations: %w", err)
	}

	details, err := s.repo.GetAllDetail(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get quotations")

		return res, fmt.Errorf("failed to get quotations: %w", err)
	}

	res.FromModels(details, total, req.Limit)

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.QuotationResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Quotation.Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	detail, err := s.repo.GetDetail(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get quotation")

		return res, fmt.Errorf("failed to get quotation: %w", err)
	}

	if detail.ID == constant.Empty {
		return res, failure.NotFound("quotation not found") // nolint:wrapcheck
	}

	res.FromModel(detail)

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateQuotationRequest, id string) (res dto.QuotationResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Quotation.Update")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if req == (dto.UpdateQuotationRequest{}) {
		return res, failure.EmptyUpdateRequest
	}

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if quotation exists")

		return res, fmt.Errorf("failed to check if quotation exists: %w", err)
	}

	if !exist {
		return res, failure.NotFound("quotation not found") // nolint:wrapcheck
	}

	if req.BanquetBookingID != constant.Empty {
		if err = s.checkBanquetBooking(ctx, req.BanquetBookingID); err != nil {
			return res, err
		}
	}

	if err = s.repo.Update(ctx, shared.TransformFields(req), filter); err != nil {
		log.Error().Err(err).Msg("failed to update quotation")

		return res, fmt.Errorf("failed to update quotation: %w", err)
	}

	return s.Get(ctx, id)
}

func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Quotation.Delete")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if quotation exists")

		return fmt.Errorf("failed to check if quotation exists: %w", err)
	}

	if !exist {
		return failure.NotFound("quotation not found") // nolint:wrapcheck
	}

	if err = s.repo.Delete(ctx, filter); err != nil {
		log.Error().Err(err).Msg("failed to delete quotation")

		return fmt.Errorf("failed to delete quotation: %w", err)
	}

	return nil
}

func (s *serviceImpl) checkBanquetBooking(ctx context.Context, banquetBookingID string) error {
	exist, err := s.banquetBookingRepo.Exist(ctx, shared.FilterByID(banquetBookingID, banquetBookingModel.FieldID, banquetBookingModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if banquet booking exists")

		return fmt.Errorf("failed to check if banquet booking exists: %w", err)
	}

	if !exist {
		return failure.BadRequestFromString("banquet booking does not exist") // nolint:wrapcheck
	}

	return nil
}
