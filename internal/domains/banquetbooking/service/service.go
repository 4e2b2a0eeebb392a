package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"

	"hotelhills/infras/otel"
	guestModel "hotelhills/internal/domains/guest/model"
	guestRepo "hotelhills/internal/domains/guest/repository"
	banquetModel "hotelhills/internal/domains/banquet/model"
	banquetRepo "hotelhills/internal/domains/banquet/repository"
	"hotelhills/internal/domains/banquetbooking/model"
	"hotelhills/internal/domains/banquetbooking/model/dto"
	"hotelhills/internal/domains/banquetbooking/repository"
	"hotelhills/shared"
	"hotelhills/shared/constant"
	gDto "hotelhills/shared/dto"
	"hotelhills/shared/failure"
	"hotelhills/shared/timezone"

	"github.com/rs/zerolog/log"
)

type BanquetBooking interface {
	Create(ctx context.Context, req dto.CreateBanquetBookingRequest) (dto.BanquetBookingResponse, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetBanquetBookingsResponse, error)
	Get(ctx context.Context, id string) (dto.BanquetBookingResponse, error)
	Update(ctx context.Context, req dto.UpdateBanquetBookingRequest, id string) (dto.BanquetBookingResponse, error)
	Delete(ctx context.Context, id string) error
}

type serviceImpl struct {
	repo        repository.BanquetBooking
	banquetRepo banquetRepo.Banquet
	guestRepo   guestRepo.Guest
	otel        otel.Otel
}

func New(repo repository.BanquetBooking, banquetRepo banquetRepo.Banquet, guestRepo guestRepo.Guest, otel otel.Otel) BanquetBooking {
	return &serviceImpl{
		repo:        repo,
		banquetRepo: banquetRepo,
		guestRepo:   guestRepo,
		otel:        otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateBanquetBookingRequest) (res dto.BanquetBookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".BanquetBooking.Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	booking, err := req.ToModel(timezone.Now())
	if err != nil {
		return res, failure.BadRequest(err) // nolint:wrapcheck
	}

	if err = s.checkReferences(ctx, booking.BanquetID, booking.GuestID); err != nil {
		return res, err
	}

	if err = s.repo.Insert(ctx, booking); err != nil {
		log.Error().Err(err).Msg("failed to create banquet booking")

		return res, fmt.Errorf("failed to create banquet booking: %w", err)
	}

	return s.Get(ctx, booking.ID)
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetBanquetBookingsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".BanquetBooking.GetAll")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count banquet bookings")

		return res, fmt.Errorf("failed to count banquet bookings: %w", err)
	}

	details, err := s.repo.GetAllDetail(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get banquet bookings")

		return res, fmt.Errorf("failed to get banquet bookings: %w", err)
	}

	res.FromModels(details, total, req.Limit)

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.BanquetBookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".BanquetBooking.Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	detail, err := s.repo.GetDetail(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get banquet booking")

		return res, fmt.Errorf("failed to get banquet booking: %w", err)
	}

	if detail.ID == constant.Empty {
		return res, failure.NotFound("banquet booking not found") // nolint:wrapcheck
	}

	res.FromModel(detail)

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateBanquetBookingRequest, id string) (res dto.BanquetBookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".BanquetBooking.Update")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if req == (dto.UpdateBanquetBookingRequest{}) {
		return res, failure.EmptyUpdateRequest
	}

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if banquet booking exists")

		return res, fmt.Errorf("failed to check if banquet booking exists: %w", err)
	}

	if !exist {
		return res, failure.NotFound("banquet booking not found") // nolint:wrapcheck
	}

	updatedFields := shared.TransformFields(req)

	if req.EventDate != constant.Empty {
		eventDate, err := timezone.ParseFlexible(req.EventDate)
		if err != nil {
			return res, failure.BadRequest(err) // nolint:wrapcheck
		}

		updatedFields[model.FieldEventDate] = eventDate
	}

	if err = s.checkReferences(ctx, req.BanquetID, req.GuestID); err != nil {
		return res, err
	}

	if err = s.repo.Update(ctx, updatedFields, filter); err != nil {
		log.Error().Err(err).Msg("failed to update banquet booking")

		return res, fmt.Errorf("failed to update banquet booking: %w", err)
	}

	return s.Get(ctx, id)
}

func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".BanquetBooking.Delete")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if banquet booking exists")

		return fmt.Errorf("failed to check if banquet booking exists: %w", err)
	}

	if !exist {
		return failure.NotFound("banquet booking not found") // nolint:wrapcheck
	}

	if err = s.repo.Delete(ctx, filter); err != nil {
		log.Error().Err(err).Msg("failed to delete banquet booking")

		return fmt.Errorf("failed to delete banquet booking: %w", err)
	}

	return nil
}

func (s *serviceImpl) checkReferences(ctx context.Context, banquetID, guestID string) error {
	if banquetID != constant.Empty {
		exist, err := s.banquetRepo.Exist(ctx, shared.FilterByID(banquetID, banquetModel.FieldID, banquetModel.TableName))
		if err != nil {
			return fmt.Errorf("failed to check if banquet exists: %w", err)
		}

		if !exist {
			return failure.BadRequestFromString("banquet does not exist") // nolint:wrapcheck
		}
	}

	if guestID != constant.Empty {
		exist, err := s.guestRepo.Exist(ctx, shared.FilterByID(guestID, guestModel.FieldID, guestModel.TableName))
		if err != nil {
			return fmt.Errorf("failed to check if guest exists: %w", err)
		}

		if !exist {
			return failure.BadRequestFromString("guest does not exist") // nolint:wrapcheck
		}
	}

	return nil
}
