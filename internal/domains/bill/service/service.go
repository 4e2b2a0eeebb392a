package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"path"
	"time"

	"hotelhills/config"
	"hotelhills/infras/kafka"
	"hotelhills/infras/otel"
	"hotelhills/infras/s3"
	"hotelhills/internal/domains/bill/model"
	"hotelhills/internal/domains/bill/model/dto"
	"hotelhills/internal/domains/bill/repository"
	bookingModel "hotelhills/internal/domains/booking/model"
	bookingRepo "hotelhills/internal/domains/booking/repository"
	"hotelhills/shared"
	"hotelhills/shared/constant"
	gDto "hotelhills/shared/dto"
	"hotelhills/shared/failure"
	"hotelhills/shared/timezone"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

const receiptExtension = ".json"

var errTotalOutOfRange = failure.BadRequestFromString("bill total exceeds the largest billable amount")

type Bill interface {
	Generate(ctx context.Context, req dto.GenerateBillRequest) (dto.BillResponse, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetBillsResponse, error)
	Get(ctx context.Context, id string) (dto.BillResponse, error)
}

type serviceImpl struct {
	repo        repository.Bill
	bookingRepo bookingRepo.Booking
	kafka       kafka.Client
	s3          s3.S3
	cfg         *config.Config
	otel        otel.Otel
}

func New(repo repository.Bill, bookingRepo bookingRepo.Booking, kafka kafka.Client, s3 s3.S3, cfg *config.Config, otel otel.Otel) Bill {
	return &serviceImpl{
		repo:        repo,
		bookingRepo: bookingRepo,
		kafka:       kafka,
		s3:          s3,
		cfg:         cfg,
		otel:        otel,
	}
}

// Generate prices the stay and persists a new bill. Every call inserts a new row.
func (s *serviceImpl) Generate(ctx context.Context, req dto.GenerateBillRequest) (res dto.BillResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Bill.Generate")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	stay, err := s.bookingRepo.GetDetail(ctx, shared.FilterByID(req.BookingID, bookingModel.FieldID, bookingModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking")

		return res, fmt.Errorf("failed to get booking: %w", err)
	}

	if stay.ID == constant.Empty {
		return res, failure.NotFound("booking not found") // nolint:wrapcheck
	}

	if stay.RoomID == constant.Empty || stay.GuestID == constant.Empty {
		return res, failure.BadRequestFromString("booking has no room or guest") // nolint:wrapcheck
	}

	charge := Calculate(stay.CheckIn, stay.CheckOut, stay.RoomPrice, req.AdditionalCharges.Float64())
	if math.Abs(charge.RoomCharge) > constant.MaxAmount || math.Abs(charge.Total) > constant.MaxAmount {
		return res, errTotalOutOfRange
	}

	bill := newBill(stay, charge, timezone.Now())

	scope.SetAttributes(map[string]any{
		"bill.id":     bill.ID,
		"bill.nights": bill.Nights,
		"bill.total":  bill.Total,
	})

	if err = s.repo.Insert(ctx, bill); err != nil {
		log.Error().Err(err).Msg("failed to create bill")

		return res, fmt.Errorf("failed to create bill: %w", err)
	}

	res.FromModel(model.BillDetail{
		Bill:            bill,
		BookingCheckIn:  stay.CheckIn,
		BookingCheckOut: stay.CheckOut,
		BookingStatus:   stay.Status,
		GuestName:       stay.GuestName,
		GuestPhone:      stay.GuestPhone,
		GuestEmail:      stay.GuestEmail,
		GuestAddress:    stay.GuestAddress,
		RoomNumber:      stay.RoomNumber,
		RoomType:        stay.RoomType,
		RoomStatus:      stay.RoomStatus,
		RoomPrice:       stay.RoomPrice,
	})

	s.announce(ctx, bill, res)

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetBillsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Bill.GetAll")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count bills")

		return res, fmt.Errorf("failed to count bills: %w", err)
	}

	details, err := s.repo.GetAllDetail(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get bills")

		return res, fmt.Errorf("failed to get bills: %w", err)
	}

	res.FromModels(details, total, req.Limit)

	return res, nil
}

// Get reads the bill joined with the current stay, guest and room.
func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.BillResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Bill.Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	detail, err := s.repo.GetDetail(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get bill")

		return res, fmt.Errorf("failed to get bill: %w", err)
	}

	if detail.ID == constant.Empty {
		return res, failure.NotFound("bill not found") // nolint:wrapcheck
	}

	res.FromModel(detail)

	return res, nil
}

// announce publishes the bill event and archives the receipt. Failures are only logged.
func (s *serviceImpl) announce(ctx context.Context, bill model.Bill, receipt dto.BillResponse) {
	if !s.cfg.Kafka.Enable && !s.cfg.External.S3.Enable {
		return
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if s.cfg.Kafka.Enable {
			var event dto.BillGeneratedEvent
			event.FromModel(bill)

			err := s.kafka.SendMessages(c, s.cfg.Kafka.Topic.BillGenerated, kafka.Message{Key: bill.ID, Value: event})
			if err != nil {
				log.Error().Err(err).Str("bill_id", bill.ID).Msg("failed to publish bill event")
			}
		}

		if s.cfg.External.S3.Enable {
			data, err := json.Marshal(receipt)
			if err != nil {
				log.Error().Err(err).Str("bill_id", bill.ID).Msg("failed to encode bill receipt")

				return
			}

			url, err := s.s3.Put(c, s3.Object{
				Key:         path.Join(s.cfg.External.S3.ReceiptDir, bill.ID+receiptExtension),
				ContentType: constant.ContentTypeJSON,
				Body:        data,
				Metadata: map[string]string{
					model.FieldBookingID: bill.BookingID,
					model.FieldGuestID:   bill.GuestID,
				},
			})
			if err != nil {
				log.Error().Err(err).Str("bill_id", bill.ID).Msg("failed to archive bill receipt")

				return
			}

			log.Info().Str("bill_id", bill.ID).Str("url", url).Msg("bill receipt archived")
		}
	}()
}

func newBill(stay bookingModel.BookingDetail, charge Charge, now time.Time) model.Bill {
	return model.Bill{
		ID:                uuid.NewString(),
		BookingID:         stay.ID,
		GuestID:           stay.GuestID,
		RoomID:            stay.RoomID,
		Nights:            charge.Nights,
		RoomCharge:        charge.RoomCharge,
		AdditionalCharges: charge.AdditionalCharges,
		Total:             charge.Total,
		CreatedAt:         now,
	}
}
