package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"

	"hotelhills/infras/otel"
	guestModel "hotelhills/internal/domains/guest/model"
	guestRepo "hotelhills/internal/domains/guest/repository"
	tableModel "hotelhills/internal/domains/table/model"
	tableRepo "hotelhills/internal/domains/table/repository"
	"hotelhills/internal/domains/tablebooking/model"
	"hotelhills/internal/domains/tablebooking/model/dto"
	"hotelhills/internal/domains/tablebooking/repository"
	"hotelhills/shared"
	"hotelhills/shared/constant"
	gDto "hotelhills/shared/dto"
	"hotelhills/shared/failure"
	"hotelhills/shared/timezone"

	"github.com/rs/zerolog/log"
)

type TableBooking interface {
	Create(ctx context.Context, req dto.CreateTableBookingRequest) (dto.TableBookingResponse, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetTableBookingsResponse, error)
	Get(ctx context.Context, id string) (dto.TableBookingResponse, error)
	Update(ctx context.Context, req dto.UpdateTableBookingRequest, id string) (dto.TableBookingResponse, error)
	Delete(ctx context.Context, id string) error
}

type serviceImpl struct {
	repo      repository.TableBooking
	tableRepo tableRepo.Table
	guestRepo guestRepo.Guest
	otel      otel.Otel
}

func New(repo repository.TableBooking, tableRepo tableRepo.Table, guestRepo guestRepo.Guest, otel otel.Otel) TableBooking {
	return &serviceImpl{
		repo:      repo,
		tableRepo: tableRepo,
		guestRepo: guestRepo,
		otel:      otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateTableBookingRequest) (res dto.TableBookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".TableBooking.Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	booking, err := req.ToModel(timezone.Now())
	if err != nil {
		return res, failure.BadRequest(err) // nolint:wrapcheck
	}

	if err = s.checkReferences(ctx, booking.TableID, booking.GuestID); err != nil {
		return res, err
	}

	if err = s.repo.Insert(ctx, booking); err != nil {
		log.Error().Err(err).Msg("failed to create table booking")

		return res, fmt.Errorf("failed to create table booking: %w", err)
	}

	return s.Get(ctx, booking.ID)
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetTableBookingsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".TableBooking.GetAll")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count table bookings")

		return res, fmt.Errorf("failed to count table bookings: %w", err)
	}

	details, err := s.repo.GetAllDetail(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get table bookings")

		return res, fmt.Errorf("failed to get table bookings: %w", err)
	}

	res.FromModels(details, total, req.Limit)

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.TableBookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".TableBooking.Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	detail, err := s.repo.GetDetail(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get table booking")

		return res, fmt.Errorf("failed to get table booking: %w", err)
	}

	if detail.ID == constant.Empty {
		return res, failure.NotFound("table booking not found") // nolint:wrapcheck
	}

	res.FromModel(detail)

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateTableBookingRequest, id string) (res dto.TableBookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".TableBooking.Update")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if req == (dto.UpdateTableBookingRequest{}) {
		return res, failure.EmptyUpdateRequest
	}

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if table booking exists")

		return res, fmt.Errorf("failed to check if table booking exists: %w", err)
	}

	if !exist {
		return res, failure.NotFound("table booking not found") // nolint:wrapcheck
	}

	updatedFields := shared.TransformFields(req)

	if req.BookingTime != constant.Empty {
		bookingTime, err := timezone.ParseFlexible(req.BookingTime)
		if err != nil {
			return res, failure.BadRequest(err) // nolint:wrapcheck
		}

		updatedFields[model.FieldBookingTime] = bookingTime
	}

	if err = s.checkReferences(ctx, req.TableID, req.GuestID); err != nil {
		return res, err
	}

	if err = s.repo.Update(ctx, updatedFields, filter); err != nil {
		log.Error().Err(err).Msg("failed to update table booking")

		return res, fmt.Errorf("failed to update table booking: %w", err)
	}

	return s.Get(ctx, id)
}

func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".TableBooking.Delete")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if table booking exists")

		return fmt.Errorf("failed to check if table booking exists: %w", err)
	}

	if !exist {
		return failure.NotFound("table booking not found") // nolint:wrapcheck
	}

	if err = s.repo.Delete(ctx, filter); err != nil {
		log.Error().Err(err).Msg("failed to delete table booking")

		return fmt.Errorf("failed to delete table booking: %w", err)
	}

	return nil
}

func (s *serviceImpl) checkReferences(ctx context.Context, tableID, guestID string) error {
	if tableID != constant.Empty {
		exist, err := s.tableRepo.Exist(ctx, shared.FilterByID(tableID, tableModel.FieldID, tableModel.TableName))
		if err != nil {
			return fmt.Errorf("failed to check if table exists: %w", err)
		}

		if !exist {
			return failure.BadRequestFromString("table does not exist") // nolint:wrapcheck
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
