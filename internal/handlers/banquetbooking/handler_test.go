package banquetbooking_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	otelMocks "hotelhills/infras/otel/mocks"
	"hotelhills/internal/domains/banquetbooking/model/dto"
	banquetBookingMocks "hotelhills/internal/domains/banquetbooking/service/mocks"
	"hotelhills/internal/handlers/banquetbooking"
	gDto "hotelhills/shared/dto"
	"hotelhills/shared/failure"
)

const banquetBookingID = "6e7f8a9b-0c1d-4e2f-9a4b-5c6d7e8f9a0b"

func setup(t *testing.T) (*banquetBookingMocks.MockBanquetBooking, http.Handler) {
	t.Helper()

	ctrl := gomock.NewController(t)
	svc := banquetBookingMocks.NewMockBanquetBooking(ctrl)

	handler := banquetbooking.New(svc, otelMocks.NewOtel())
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

func TestHandler_CreateBanquetBooking(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		svcErr   error
		wantCode int
		wantErr  string
	}{
		{name: "created", body: `{"banquet_id":"6a7b8c9d-0e1f-4a2b-8c3d-4e5f6a7b8c9d","guest_id":"7b8c9d0e-1f2a-4b3c-9d4e-5f6a7b8c9d0e","event_date":"2024-06-15"}`, wantCode: http.StatusCreated},
		{name: "missing guest", body: `{"banquet_id":"6a7b8c9d-0e1f-4a2b-8c3d-4e5f6a7b8c9d","event_date":"2024-06-15"}`, wantCode: http.StatusBadRequest, wantErr: "guest_id is required"},
		{name: "event date in words", body: `{"banquet_id":"6a7b8c9d-0e1f-4a2b-8c3d-4e5f6a7b8c9d","guest_id":"7b8c9d0e-1f2a-4b3c-9d4e-5f6a7b8c9d0e","event_date":"next june"}`, wantCode: http.StatusBadRequest, wantErr: "event_date must be a date (2006-01-02) or date-time (RFC3339 or 2006-01-02T15:04)"},
		{name: "unknown banquet", body: `{"banquet_id":"6a7b8c9d-0e1f-4a2b-8c3d-4e5f6a7b8c9d","guest_id":"7b8c9d0e-1f2a-4b3c-9d4e-5f6a7b8c9d0e","event_date":"2024-06-15"}`, svcErr: failure.BadRequestFromString("banquet not found"), wantCode: http.StatusBadRequest, wantErr: "banquet not found"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, router := setup(t)

			if tt.wantErr == "" || tt.svcErr != nil {
				svc.EXPECT().Create(gomock.Any(), gomock.Any()).Return(dto.BanquetBookingResponse{ID: banquetBookingID}, tt.svcErr)
			}

			recorder := serve(router, http.MethodPost, "/banquet-bookings", tt.body)

			assert.Equal(t, tt.wantCode, recorder.Code)

			if tt.wantErr != "" {
				assert.JSONEq(t, `{"error":"`+tt.wantErr+`"}`, recorder.Body.String())
			}
		})
	}
}

func TestHandler_GetBanquetBookings(t *testing.T) {
	t.Run("builds filters from the query", func(t *testing.T) {
		svc, router := setup(t)

		svc.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, params gDto.QueryParams, filter gDto.FilterGroup) (dto.GetBanquetBookingsResponse, error) {
				assert.Equal(t, 1, params.Page)
				require.Len(t, filter.Filters, 3)

				got := map[string]any{}
				for _, f := range filter.Filters {
					field, ok := f.(gDto.Filter)
					require.True(t, ok)
					got[field.Field] = field.Value
				}

				assert.Equal(t, map[string]any{"banquet_id": "6a7b8c9d-0e1f-4a2b-8c3d-4e5f6a7b8c9d", "guest_id": "7b8c9d0e-1f2a-4b3c-9d4e-5f6a7b8c9d0e", "status": "booked"}, got)

				return dto.GetBanquetBookingsResponse{TotalData: 0, TotalPage: 1}, nil
			})

		recorder := serve(router, http.MethodGet, "/banquet-bookings?banquet_id=6a7b8c9d-0e1f-4a2b-8c3d-4e5f6a7b8c9d&guest_id=7b8c9d0e-1f2a-4b3c-9d4e-5f6a7b8c9d0e&status=booked", "")

		assert.Equal(t, http.StatusOK, recorder.Code)
	})

	t.Run("malformed reference filter", func(t *testing.T) {
		_, router := setup(t)

		recorder := serve(router, http.MethodGet, "/banquet-bookings?guest_id=abc", "")

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
		assert.JSONEq(t, `{"error":"guest_id must be a valid UUID"}`, recorder.Body.String())
	})
}

func TestHandler_BanquetBookingByID(t *testing.T) {
	tests := []struct {
		name     string
		method   string
		target   string
		body     string
		expect   func(svc *banquetBookingMocks.MockBanquetBooking)
		wantCode int
		wantBody string
	}{
		{
			name:   "get",
			method: http.MethodGet,
			target: "/banquet-bookings/" + banquetBookingID,
			expect: func(svc *banquetBookingMocks.MockBanquetBooking) {
				svc.EXPECT().Get(gomock.Any(), banquetBookingID).Return(dto.BanquetBookingResponse{ID: banquetBookingID}, nil)
			},
			wantCode: http.StatusOK,
		},
		{
			name:   "get unknown",
			method: http.MethodGet,
			target: "/banquet-bookings/" + banquetBookingID,
			expect: func(svc *banquetBookingMocks.MockBanquetBooking) {
				svc.EXPECT().Get(gomock.Any(), banquetBookingID).Return(dto.BanquetBookingResponse{}, failure.NotFound("banquet booking not found"))
			},
			wantCode: http.StatusNotFound,
			wantBody: `{"error":"banquet booking not found"}`,
		},
		{
			name:     "malformed id",
			method:   http.MethodDelete,
			target:   "/banquet-bookings/wedding",
			expect:   func(*banquetBookingMocks.MockBanquetBooking) {},
			wantCode: http.StatusBadRequest,
			wantBody: `{"error":"id must be a valid UUID"}`,
		},
		{
			name:   "put",
			method: http.MethodPut,
			target: "/banquet-bookings/" + banquetBookingID,
			body:   `{"status":"cancelled"}`,
			expect: func(svc *banquetBookingMocks.MockBanquetBooking) {
				svc.EXPECT().Update(gomock.Any(), dto.UpdateBanquetBookingRequest{Status: "cancelled"}, banquetBookingID).Return(dto.BanquetBookingResponse{ID: banquetBookingID}, nil)
			},
			wantCode: http.StatusOK,
		},
		{
			name:     "invalid update",
			method:   http.MethodPatch,
			target:   "/banquet-bookings/" + banquetBookingID,
			body:     `{"banquet_id":"hall"}`,
			expect:   func(*banquetBookingMocks.MockBanquetBooking) {},
			wantCode: http.StatusBadRequest,
			wantBody: `{"error":"banquet_id must be a valid UUID"}`,
		},
		{
			name:   "empty update",
			method: http.MethodPatch,
			target: "/banquet-bookings/" + banquetBookingID,
			body:   `{}`,
			expect: func(svc *banquetBookingMocks.MockBanquetBooking) {
				svc.EXPECT().Update(gomock.Any(), dto.UpdateBanquetBookingRequest{}, banquetBookingID).Return(dto.BanquetBookingResponse{}, failure.EmptyUpdateRequest)
			},
			wantCode: http.StatusBadRequest,
			wantBody: `{"error":"update request cannot be empty"}`,
		},
		{
			name:   "delete",
			method: http.MethodDelete,
			target: "/banquet-bookings/" + banquetBookingID,
			expect: func(svc *banquetBookingMocks.MockBanquetBooking) {
				svc.EXPECT().Delete(gomock.Any(), banquetBookingID).Return(nil)
			},
			wantCode: http.StatusOK,
			wantBody: `{"message":"Banquet booking deleted successfully"}`,
		},
		{
			name:   "delete referenced",
			method: http.MethodDelete,
			target: "/banquet-bookings/" + banquetBookingID,
			expect: func(svc *banquetBookingMocks.MockBanquetBooking) {
				svc.EXPECT().Delete(gomock.Any(), banquetBookingID).Return(failure.StillReferenced)
			},
			wantCode: http.StatusConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, router := setup(t)
			tt.expect(svc)

			recorder := serve(router, tt.method, tt.target, tt.body)

			assert.Equal(t, tt.wantCode, recorder.Code)

			if tt.wantBody != "" {
				assert.JSONEq(t, tt.wantBody, recorder.Body.String())
			}
		})
	}
}
