package kot_test

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
	"hotelhills/internal/domains/kot/model/dto"
	kotMocks "hotelhills/internal/domains/kot/service/mocks"
	"hotelhills/internal/handlers/kot"
	gDto "hotelhills/shared/dto"
	"hotelhills/shared/failure"
)

const kotID = "5d6e7f8a-9b0c-4d1e-8f3a-4b5c6d7e8f9a"

func setup(t *testing.T) (*kotMocks.MockKOT, http.Handler) {
	t.Helper()

	ctrl := gomock.NewController(t)
	svc := kotMocks.NewMockKOT(ctrl)

	handler := kot.New(svc, otelMocks.NewOtel())
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

func TestHandler_CreateKOT(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		svcErr   error
		wantCode int
		wantErr  string
	}{
		{name: "created", body: `{"table_id":"6a7b8c9d-0e1f-4a2b-8c3d-4e5f6a7b8c9d","items":[{"name":"Soto","quantity":2}]}`, wantCode: http.StatusCreated},
		{name: "no items", body: `{"table_id":"6a7b8c9d-0e1f-4a2b-8c3d-4e5f6a7b8c9d","items":[]}`, wantCode: http.StatusBadRequest, wantErr: "items must contain at least 1 item(s)"},
		{name: "item without quantity", body: `{"table_id":"6a7b8c9d-0e1f-4a2b-8c3d-4e5f6a7b8c9d","items":[{"name":"Soto"}]}`, wantCode: http.StatusBadRequest, wantErr: "quantity is required"},
		{name: "unknown status", body: `{"table_id":"6a7b8c9d-0e1f-4a2b-8c3d-4e5f6a7b8c9d","items":[{"name":"Soto","quantity":1}],"status":"cold"}`, wantCode: http.StatusBadRequest, wantErr: "status must be one of pending in-progress served"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, router := setup(t)

			if tt.wantErr == "" || tt.svcErr != nil {
				svc.EXPECT().Create(gomock.Any(), gomock.Any()).Return(dto.KOTResponse{ID: kotID}, tt.svcErr)
			}

			recorder := serve(router, http.MethodPost, "/kots", tt.body)

			assert.Equal(t, tt.wantCode, recorder.Code)

			if tt.wantErr != "" {
				assert.JSONEq(t, `{"error":"`+tt.wantErr+`"}`, recorder.Body.String())
			}
		})
	}
}

func TestHandler_GetKOTs(t *testing.T) {
	t.Run("builds filters from the query", func(t *testing.T) {
		svc, router := setup(t)

		svc.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, params gDto.QueryParams, filter gDto.FilterGroup) (dto.GetKOTsResponse, error) {
				assert.Equal(t, 1, params.Page)
				require.Len(t, filter.Filters, 2)

				got := map[string]any{}
				for _, f := range filter.Filters {
					field, ok := f.(gDto.Filter)
					require.True(t, ok)
					got[field.Field] = field.Value
				}

				assert.Equal(t, map[string]any{"table_id": "6a7b8c9d-0e1f-4a2b-8c3d-4e5f6a7b8c9d", "status": "pending"}, got)

				return dto.GetKOTsResponse{TotalData: 0, TotalPage: 1}, nil
			})

		recorder := serve(router, http.MethodGet, "/kots?table_id=6a7b8c9d-0e1f-4a2b-8c3d-4e5f6a7b8c9d&status=pending", "")

		assert.Equal(t, http.StatusOK, recorder.Code)
	})

	t.Run("malformed reference filter", func(t *testing.T) {
		_, router := setup(t)

		recorder := serve(router, http.MethodGet, "/kots?table_id=abc", "")

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
		assert.JSONEq(t, `{"error":"table_id must be a valid UUID"}`, recorder.Body.String())
	})
}

func TestHandler_KOTByID(t *testing.T) {
	tests := []struct {
		name     string
		method   string
		target   string
		body     string
		expect   func(svc *kotMocks.MockKOT)
		wantCode int
		wantBody string
	}{
		{
			name:   "get",
			method: http.MethodGet,
			target: "/kots/" + kotID,
			expect: func(svc *kotMocks.MockKOT) {
				svc.EXPECT().Get(gomock.Any(), kotID).Return(dto.KOTResponse{ID: kotID}, nil)
			},
			wantCode: http.StatusOK,
		},
		{
			name:   "get unknown",
			method: http.MethodGet,
			target: "/kots/" + kotID,
			expect: func(svc *kotMocks.MockKOT) {
				svc.EXPECT().Get(gomock.Any(), kotID).Return(dto.KOTResponse{}, failure.NotFound("KOT not found"))
			},
			wantCode: http.StatusNotFound,
			wantBody: `{"error":"KOT not found"}`,
		},
		{
			name:     "malformed id",
			method:   http.MethodDelete,
			target:   "/kots/kot-1",
			expect:   func(*kotMocks.MockKOT) {},
			wantCode: http.StatusBadRequest,
			wantBody: `{"error":"id must be a valid UUID"}`,
		},
		{
			name:   "put",
			method: http.MethodPut,
			target: "/kots/" + kotID,
			body:   `{"status":"served"}`,
			expect: func(svc *kotMocks.MockKOT) {
				svc.EXPECT().Update(gomock.Any(), dto.UpdateKOTRequest{Status: "served"}, kotID).Return(dto.KOTResponse{ID: kotID}, nil)
			},
			wantCode: http.StatusOK,
		},
		{
			name:     "invalid update",
			method:   http.MethodPatch,
			target:   "/kots/" + kotID,
			body:     `{"items":[{"name":"Soto","quantity":0}]}`,
			expect:   func(*kotMocks.MockKOT) {},
			wantCode: http.StatusBadRequest,
			wantBody: `{"error":"quantity is required"}`,
		},
		{
			name:   "empty update",
			method: http.MethodPatch,
			target: "/kots/" + kotID,
			body:   `{}`,
			expect: func(svc *kotMocks.MockKOT) {
				svc.EXPECT().Update(gomock.Any(), dto.UpdateKOTRequest{}, kotID).Return(dto.KOTResponse{}, failure.EmptyUpdateRequest)
			},
			wantCode: http.StatusBadRequest,
			wantBody: `{"error":"update request cannot be empty"}`,
		},
		{
			name:   "delete",
			method: http.MethodDelete,
			target: "/kots/" + kotID,
			expect: func(svc *kotMocks.MockKOT) {
				svc.EXPECT().Delete(gomock.Any(), kotID).Return(nil)
			},
			wantCode: http.StatusOK,
			wantBody: `{"message":"KOT deleted successfully"}`,
		},
		{
			name:   "delete referenced",
			method: http.MethodDelete,
			target: "/kots/" + kotID,
			expect: func(svc *kotMocks.MockKOT) {
				svc.EXPECT().Delete(gomock.Any(), kotID).Return(failure.StillReferenced)
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
