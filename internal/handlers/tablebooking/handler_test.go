package tablebooking_test

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
	"hotelhills/internal/domains/tablebooking/model/dto"
	tableBookingMocks "hotelhills/internal/domains/tablebooking/service/mocks"
	"hotelhills/internal/handlers/tablebooking"
	gDto "hotelhills/shared/dto"
	"hotelhills/shared/failure"
)

const tableBookingID = "4c5d6e7f-8a9b-4c0d-9e2f-3a4b5c6d7e8f"

func setup(t *testing.T) (*tableBookingMocks.MockTableBooking, http.Handler) {
	t.Helper()

	ctrl := gomock.NewController(t)
	svc := tableBookingMocks.NewMockTableBooking(ctrl)

	handler := tablebooking.New(svc, otelMocks.NewOtel())
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

func TestHandler_CreateTableBooking(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		svcErr   error
		wantCode int
		wantErr  string
	}{
		{name: "created", body: `{"table_id":"6a7b8c9d-0e1f-4a2b-8c3d-4e5f6a7b8c9d","guest_id":"7b8c9d0e-1f2a-4b3c-9d4e-5f6a7b8c9d0e","booking_time":"2024-05-01T19:30"}`, wantCode: http.StatusCreated},
		{name: "malformed table id", body: `{"table_id":"t1","guest_id":"7b8c9d0e-1f2a-4b3c-9d4e-5f6a7b8c9d0e","booking_time":"2024-05-01T19:30"}`, wantCode: http.StatusBadRequest, wantErr: "table_id must be a valid UUID"},
		{name: "missing booking time", body: `{"table_id":"6a7b8c9d-0e1f-4a2b-8c3d-4e5f6a7b8c9d","guest_id":"7b8c9d0e-1f2a-4b3c-9d4e-5f6a7b8c9d0e"}`, wantCode: http.StatusBadRequest, wantErr: "booking_time is required"},
		{name: "unknown table", body: `{"table_id":"6a7b8c9d-0e1f-4a2b-8c3d-4e5f6a7b8c9d","guest_id":"7b8c9d0e-1f2a-4b3c-9d4e-5f6a7b8c9d0e","booking_time":"2024-05-01"}`, svcErr: failure.BadRequestFromString("table not found"), wantCode: http.StatusBadRequest, wantErr: "table not found"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, router := setup(t)

			if tt.wantErr == "" || tt.svcErr != nil {
				svc.EXPECT().Create(gomock.Any(), gomock.Any()).Return(dto.TableBookingResponse{ID: tableBookingID}, tt.svcErr)
			}

			recorder := serve(router, http.MethodPost, "/table-bookings", tt.body)

			assert.Equal(t, tt.wantCode, recorder.Code)

			if tt.wantErr != "" {
				assert.JSONEq(t, `{"error":"`+tt.wantErr+`"}`, recorder.Body.String())
			}
		})
	}
}

func TestHandler_GetTableBookings(t *testing.T) {
	t.Run("builds filters from the query", func(t *testing.T) {
		svc, router := setup(t)

		svc.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, params gDto.QueryParams, filter gDto.FilterGroup) (dto.GetTableBookingsResponse, error) {
				assert.Equal(t, 1, params.Page)
				require.Len(t, filter.Filters, 3)

				got := map[string]any{}
				for _, f := range filter.Filters {
					field, ok := f.(gDto.Filter)
					require.True(t, ok)
					got[field.Field] = field.Value
				}

				assert.Equal(t, map[string]any{"table_id": "6a7b8c9d-0e1f-4a2b-8c3d-4e5f6a7b8c9d", "guest_id": "7b8c9d0e-1f2a-4b3c-9d4e-5f6a7b8c9d0e", "status": "reserved"}, got)

				return dto.GetTableBookingsResponse{TotalData: 0, TotalPage: 1}, nil
			})

		recorder := serve(router, http.MethodGet, "/table-bookings?table_id=6a7b8c9d-0e1f-4a2b-8c3d-4e5f6a7b8c9d&guest_id=7b8c9d0e-1f2a-4b3c-9d4e-5f6a7b8c9d0e&status=reserved", "")

		assert.Equal(t, http.StatusOK, recorder.Code)
	})

	t.Run("malformed reference filter", func(t *testing.T) {
		_, router := setup(t)

		recorder := serve(router, http.MethodGet, "/table-bookings?table_id=abc", "")

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
		assert.JSONEq(t, `{"error":"table_id must be a valid UUID"}`, recorder.Body.String())
	})
}

func TestHandler_TableBookingByID(t *testing.T) {
	tests := []struct {
		name     string
		method   string
		target   string
		body     string
		expect   func(svc *tableBookingMocks.MockTableBooking)
		wantCode int
		wantBody string
	}{
		{
			name:   "get",
			method: http.MethodGet,
			target: "/table-bookings/" + tableBookingID,
			expect: func(svc *tableBookingMocks.MockTableBooking) {
				svc.EXPECT().Get(gomock.Any(), tableBookingID).Return(dto.TableBookingResponse{ID: tableBookingID}, nil)
			},
			wantCode: http.StatusOK,
		},
		{
			name:   "get unknown",
			method: http.MethodGet,
			target: "/table-bookings/" + tableBookingID,
			expect: func(svc *tableBookingMocks.MockTableBooking) {
				svc.EXPECT().Get(gomock.Any(), tableBookingID).Return(dto.TableBookingResponse{}, failure.NotFound("table booking not found"))
			},
			wantCode: http.StatusNotFound,
			wantBody: `{"error":"table booking not found"}`,
		},
		{
			name:     "malformed id",
			method:   http.MethodDelete,
			target:   "/table-bookings/7",
			expect:   func(*tableBookingMocks.MockTableBooking) {},
			wantCode: http.StatusBadRequest,
			wantBody: `{"error":"id must be a valid UUID"}`,
		},
		{
			name:   "put",
			method: http.MethodPut,
			target: "/table-bookings/" + tableBookingID,
			body:   `{"status":"completed"}`,
			expect: func(svc *tableBookingMocks.MockTableBooking) {
				svc.EXPECT().Update(gomock.Any(), dto.UpdateTableBookingRequest{Status: "completed"}, tableBookingID).Return(dto.TableBookingResponse{ID: tableBookingID}, nil)
			},
			wantCode: http.StatusOK,
		},
		{
			name:     "invalid update",
			method:   http.MethodPatch,
			target:   "/table-bookings/" + tableBookingID,
			body:     `{"booking_time":"tonight"}`,
			expect:   func(*tableBookingMocks.MockTableBooking) {},
			wantCode: http.StatusBadRequest,
			wantBody: `{"error":"booking_time must be a date (2006-01-02) or date-time (RFC3339 or 2006-01-02T15:04)"}`,
		},
		{
			name:   "empty update",
			method: http.MethodPatch,
			target: "/table-bookings/" + tableBookingID,
			body:   `{}`,
			expect: func(svc *tableBookingMocks.MockTableBooking) {
				svc.EXPECT().Update(gomock.Any(), dto.UpdateTableBookingRequest{}, tableBookingID).Return(dto.TableBookingResponse{}, failure.EmptyUpdateRequest)
			},
			wantCode: http.StatusBadRequest,
			wantBody: `{"error":"update request cannot be empty"}`,
		},
		{
			name:   "delete",
			method: http.MethodDelete,
			target: "/table-bookings/" + tableBookingID,
			expect: func(svc *tableBookingMocks.MockTableBooking) {
				svc.EXPECT().Delete(gomock.Any(), tableBookingID).Return(nil)
			},
			wantCode: http.StatusOK,
			wantBody: `{"message":"Table booking deleted successfully"}`,
		},
		{
			name:   "delete referenced",
			method: http.MethodDelete,
			target: "/table-bookings/" + tableBookingID,
			expect: func(svc *tableBookingMocks.MockTableBooking) {
				svc.EXPECT().Delete(gomock.Any(), tableBookingID).Return(failure.StillReferenced)
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
