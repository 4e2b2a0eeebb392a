package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	otelMocks "hotelhills/infras/otel/mocks"
	banquetBookingMocks "hotelhills/internal/domains/banquetbooking/mocks"
	quotationMocks "hotelhills/internal/domains/quotation/mocks"
	"hotelhills/internal/domains/quotation/model"
	"hotelhills/internal/domains/quotation/model/dto"
	"hotelhills/internal/domains/quotation/service"
	gDto "hotelhills/shared/dto"
	"hotelhills/shared/failure"
)

func TestQuotationService(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := quotationMocks.NewMockQuotation(ctrl)
	mockBookings := banquetBookingMocks.NewMockBanquetBooking(ctrl)
	svc := service.New(mockRepo, mockBookings, otelMocks.NewOtel())

	amount := 2500.0
	req := dto.CreateQuotationRequest{
		BanquetBookingID: "8e1f3c2a-1b0f-4e11-9e55-0d2c8f7e6a0b",
		Amount:           &amount,
		Details:          "Dinner for 120 guests",
	}

	t.Run("banquet booking missing", func(t *testing.T) {
		mockBookings.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)

		_, err := svc.Create(context.Background(), req)

		require.Error(t, err)
		assert.Equal(t, "banquet booking does not exist", err.Error())
	})

	t.Run("create defaults to pending", func(t *testing.T) {
		mockBookings.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
		mockRepo.EXPECT().
			Insert(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, quotation model.Quotation) error {
				assert.Equal(t, model.StatusPending, quotation.Status)
				assert.InDelta(t, 2500.0, quotation.Amount, 0.001)

				return nil
			})
		mockRepo.EXPECT().GetDetail(gomock.Any(), gomock.Any()).Return(model.QuotationDetail{
			Quotation:     model.Quotation{ID: "q1", BanquetBookingID: req.BanquetBookingID, Amount: amount, Status: model.StatusPending},
			BookingStatus: "booked",
		}, nil)

		res, err := svc.Create(context.Background(), req)

		require.NoError(t, err)
		assert.Equal(t, req.BanquetBookingID, res.BanquetBooking.ID)
		assert.Equal(t, "booked", res.BanquetBooking.Status)
	})

	t.Run("approve", func(t *testing.T) {
		mockRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
		mockRepo.EXPECT().
			Update(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, fields map[string]any, _ gDto.FilterGroup) error {
				assert.Equal(t, model.StatusApproved, fields[model.FieldStatus])

				return nil
			})
		mockRepo.EXPECT().GetDetail(gomock.Any(), gomock.Any()).Return(model.QuotationDetail{Quotation: model.Quotation{ID: "q1", Status: model.StatusApproved}}, nil)

		res, err := svc.Update(context.Background(), dto.UpdateQuotationRequest{Status: model.StatusApproved}, "q1")

		require.NoError(t, err)
		assert.Equal(t, model.StatusApproved, res.Status)
	})

	t.Run("update missing", func(t *testing.T) {
		mockRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)

		_, err := svc.Update(context.Background(), dto.UpdateQuotationRequest{Details: "changed"}, "q404")

		assert.True(t, failure.IsNotFound(err))
	})
}
