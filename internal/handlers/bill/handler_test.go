package bill_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	otelMocks "hotelhills/infras/otel/mocks"
	"hotelhills/internal/domains/bill/model/dto"
	billMocks "hotelhills/internal/domains/bill/service/mocks"
	"hotelhills/internal/handlers/bill"
	gDto "hotelhills/shared/dto"
	"hotelhills/shared/failure"
)

const (
	stayID = "0d2c8f7e-6a0b-4f3e-9e55-3c2a1b0f9e11"
	billID = "5b6e2d1c-3f4a-4b8c-9d0e-1f2a3b4c5d6e"
)

func setup(t *testing.T) (*billMocks.MockBill, http.Handler) {
	t.Helper()

	ctrl := gomock.NewController(t)
	svc := billMocks.NewMockBill(ctrl)

	handler := bill.New(svc, otelMocks.NewOtel())
	router := chi.NewRouter()
	handler.Router(router)

	return svc, router
}

func serve(router http.Handler, method, target, body string) *httptest.ResponseRecorder {
	request := httptest.NewRequest(method, target, strings.NewReader(body))
	request.Header.Set("Content-Type", "application/json")

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, request)

	return recorder
}

func decodeError(t *testing.T, recorder *httptest.ResponseRecorder) string {
	t.Helper()

	var body struct {
		Error string `json:"error"`
	}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))

	return body.Error
}

func TestHandler_GenerateBill(t *testing.T) {
	t.Run("returns 201 with the generated bill", func(t *testing.T) {
		svc, router := setup(t)

		svc.EXPECT().
			Generate(gomock.Any(), dto.GenerateBillRequest{BookingID: stayID, AdditionalCharges: 50}).
			Return(dto.BillResponse{ID: billID, Nights: 3, RoomCharge: 300, AdditionalCharges: 50, Total: 350}, nil)

		recorder := serve(router, http.MethodPost, "/bills/generate", `{"stayId":"`+stayID+`","additionalCharges":"50"}`)

		assert.Equal(t, http.StatusCreated, recorder.Code)

		var body struct {
			Data dto.BillResponse `json:"data"`
		}
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
		assert.Equal(t, billID, body.Data.ID)
		assert.Equal(t, 3, body.Data.Nights)
		assert.InDelta(t, 350.0, body.Data.Total, 0.001)
	})

	t.Run("missing stay id is a 400 without calling the service", func(t *testing.T) {
		_, router := setup(t)

		recorder := serve(router, http.MethodPost, "/bills/generate", `{"additional_charges":10}`)

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
		assert.Equal(t, "booking_id is required", decodeError(t, recorder))
	})

	t.Run("non numeric additional charges is a 400", func(t *testing.T) {
		_, router := setup(t)

		recorder := serve(router, http.MethodPost, "/bills/generate", `{"booking_id":"`+stayID+`","additional_charges":"ten"}`)

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
		assert.Contains(t, decodeError(t, recorder), "additional_charges must be a number")
	})

	t.Run("negative additional charges is a 400", func(t *testing.T) {
		_, router := setup(t)

		recorder := serve(router, http.MethodPost, "/bills/generate", `{"booking_id":"`+stayID+`","additional_charges":-1}`)

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})

	t.Run("charges beyond the money column are a 400", func(t *testing.T) {
		for _, charges := range []string{"1e12", "1e308", `"10000000000"`} {
			_, router := setup(t)

			recorder := serve(router, http.MethodPost, "/bills/generate", `{"booking_id":"`+stayID+`","additional_charges":`+charges+`}`)

			assert.Equal(t, http.StatusBadRequest, recorder.Code, charges)
			assert.Equal(t, "additional_charges must be less than or equal to 9999999999.99", decodeError(t, recorder))
		}
	})

	t.Run("unknown stay is a 404", func(t *testing.T) {
		svc, router := setup(t)

		svc.EXPECT().
			Generate(gomock.Any(), gomock.Any()).
			Return(dto.BillResponse{}, failure.NotFound("booking not found"))

		recorder := serve(router, http.MethodPost, "/bills/generate", `{"booking_id":"`+stayID+`"}`)

		assert.Equal(t, http.StatusNotFound, recorder.Code)
		assert.Equal(t, "booking not found", decodeError(t, recorder))
	})
}

func TestHandler_GetBillByID(t *testing.T) {
	t.Run("returns the bill", func(t *testing.T) {
		svc, router := setup(t)

		svc.EXPECT().Get(gomock.Any(), billID).Return(dto.BillResponse{ID: billID}, nil)

		recorder := serve(router, http.MethodGet, "/bills/"+billID, "")

		assert.Equal(t, http.StatusOK, recorder.Code)
	})

	t.Run("malformed id is a 400", func(t *testing.T) {
		_, router := setup(t)

		recorder := serve(router, http.MethodGet, "/bills/42", "")

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
		assert.Equal(t, "id must be a valid UUID", decodeError(t, recorder))
	})

	t.Run("unknown bill is a 404", func(t *testing.T) {
		svc, router := setup(t)

		svc.EXPECT().Get(gomock.Any(), billID).Return(dto.BillResponse{}, failure.NotFound("bill not found"))

		recorder := serve(router, http.MethodGet, "/bills/"+billID, "")

		assert.Equal(t, http.StatusNotFound, recorder.Code)
	})
}

func TestHandler_GetBills(t *testing.T) {
	t.Run("applies the id filters", func(t *testing.T) {
		svc, router := setup(t)

		svc.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, params gDto.QueryParams, filter gDto.FilterGroup) (dto.GetBillsResponse, error) {
				assert.Equal(t, 2, params.Page)
				require.Len(t, filter.Filters, 1)

				f, ok := filter.Filters[0].(gDto.Filter)
				require.True(t, ok)
				assert.Equal(t, "booking_id", f.Field)
				assert.Equal(t, stayID, f.Value)

				return dto.GetBillsResponse{Bills: []dto.BillResponse{{ID: billID}}, TotalData: 1, TotalPage: 1}, nil
			})

		recorder := serve(router, http.MethodGet, "/bills?page=2&booking_id="+stayID, "")

		assert.Equal(t, http.StatusOK, recorder.Code)
	})

	t.Run("malformed filter id is a 400", func(t *testing.T) {
		_, router := setup(t)

		recorder := serve(router, http.MethodGet, "/bills?guest_id=abc", "")

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
		assert.Equal(t, "guest_id must be a valid UUID", decodeError(t, recorder))
	})
}

func TestHandler_GenerateBill_Tracing(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := billMocks.NewMockBill(ctrl)
	recorder := otelMocks.NewOtel()

	handler := bill.New(svc, recorder)
	router := chi.NewRouter()
	handler.Router(router)

	notFound := failure.NotFound("booking not found")
	svc.EXPECT().Generate(gomock.Any(), gomock.Any()).Return(dto.BillResponse{}, notFound)

	serve(router, http.MethodPost, "/bills/generate", `{"booking_id":"`+stayID+`"}`)

	scope := recorder.Scope("handler.GenerateBill")
	require.NotNil(t, scope)
	assert.True(t, scope.Ended())
	assert.Equal(t, []error{notFound}, scope.Errors())
	assert.Empty(t, scope.Events())
}
