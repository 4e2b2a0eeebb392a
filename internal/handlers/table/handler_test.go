package table_test

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
	"hotelhills/internal/domains/table/model/dto"
	tableMocks "hotelhills/internal/domains/table/service/mocks"
	"hotelhills/internal/handlers/table"
	gDto "hotelhills/shared/dto"
	"hotelhills/shared/failure"
)

const tableID = "1f2e3d4c-5b6a-4798-8a7b-6c5d4e3f2a1b"

func setup(t *testing.T) (*tableMocks.MockTable, http.Handler) {
	t.Helper()

	ctrl := gomock.NewController(t)
	svc := tableMocks.NewMockTable(ctrl)

	handler := table.New(svc, otelMocks.NewOtel())
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

func TestHandler_CreateTable(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		svcErr   error
		wantCode int
		wantErr  string
	}{
		{name: "created", body: `{"number":"T1","capacity":4}`, wantCode: http.StatusCreated},
		{name: "missing capacity", body: `{"number":"T1"}`, wantCode: http.StatusBadRequest, wantErr: "capacity is required"},
		{name: "unknown status", body: `{"number":"T1","capacity":4,"status":"broken"}`, wantCode: http.StatusBadRequest, wantErr: "status must be one of available reserved occupied"},
		{name: "duplicate number", body: `{"number":"T1","capacity":4}`, svcErr: failure.Conflict("table already exists"), wantCode: http.StatusConflict, wantErr: "table already exists"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, router := setup(t)

			if tt.wantErr == "" || tt.svcErr != nil {
				svc.EXPECT().Create(gomock.Any(), gomock.Any()).Return(dto.TableResponse{ID: tableID}, tt.svcErr)
			}

			recorder := serve(router, http.MethodPost, "/tables", tt.body)

			assert.Equal(t, tt.wantCode, recorder.Code)

			if tt.wantErr != "" {
				assert.JSONEq(t, `{"error":"`+tt.wantErr+`"}`, recorder.Body.String())
			}
		})
	}
}

func TestHandler_GetTables(t *testing.T) {
	t.Run("builds filters from the query", func(t *testing.T) {
		svc, router := setup(t)

		svc.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, params gDto.QueryParams, filter gDto.FilterGroup) (dto.GetTablesResponse, error) {
				assert.Equal(t, 1, params.Page)
				require.Len(t, filter.Filters, 1)

				got := map[string]any{}
				for _, f := range filter.Filters {
					field, ok := f.(gDto.Filter)
					require.True(t, ok)
					got[field.Field] = field.Value
				}

				assert.Equal(t, map[string]any{"status": "occupied"}, got)

				return dto.GetTablesResponse{TotalData: 0, TotalPage: 1}, nil
			})

		recorder := serve(router, http.MethodGet, "/tables?status=occupied", "")

		assert.Equal(t, http.StatusOK, recorder.Code)
	})
}

func TestHandler_TableByID(t *testing.T) {
	tests := []struct {
		name     string
		method   string
		target   string
		body     string
		expect   func(svc *tableMocks.MockTable)
		wantCode int
		wantBody string
	}{
		{
			name:   "get",
			method: http.MethodGet,
			target: "/tables/" + tableID,
			expect: func(svc *tableMocks.MockTable) {
				svc.EXPECT().Get(gomock.Any(), tableID).Return(dto.TableResponse{ID: tableID}, nil)
			},
			wantCode: http.StatusOK,
		},
		{
			name:   "get unknown",
			method: http.MethodGet,
			target: "/tables/" + tableID,
			expect: func(svc *tableMocks.MockTable) {
				svc.EXPECT().Get(gomock.Any(), tableID).Return(dto.TableResponse{}, failure.NotFound("table not found"))
			},
			wantCode: http.StatusNotFound,
			wantBody: `{"error":"table not found"}`,
		},
		{
			name:     "malformed id",
			method:   http.MethodDelete,
			target:   "/tables/T1",
			expect:   func(*tableMocks.MockTable) {},
			wantCode: http.StatusBadRequest,
			wantBody: `{"error":"id must be a valid UUID"}`,
		},
		{
			name:   "put",
			method: http.MethodPut,
			target: "/tables/" + tableID,
			body:   `{"capacity":6}`,
			expect: func(svc *tableMocks.MockTable) {
				svc.EXPECT().Update(gomock.Any(), dto.UpdateTableRequest{Capacity: 6}, tableID).Return(dto.TableResponse{ID: tableID}, nil)
			},
			wantCode: http.StatusOK,
		},
		{
			name:     "invalid update",
			method:   http.MethodPatch,
			target:   "/tables/" + tableID,
			body:     `{"capacity":0,"status":"gone"}`,
			expect:   func(*tableMocks.MockTable) {},
			wantCode: http.StatusBadRequest,
			wantBody: `{"error":"status must be one of available reserved occupied"}`,
		},
		{
			name:   "empty update",
			method: http.MethodPatch,
			target: "/tables/" + tableID,
			body:   `{}`,
			expect: func(svc *tableMocks.MockTable) {
				svc.EXPECT().Update(gomock.Any(), dto.UpdateTableRequest{}, tableID).Return(dto.TableResponse{}, failure.EmptyUpdateRequest)
			},
			wantCode: http.StatusBadRequest,
			wantBody: `{"error":"update request cannot be empty"}`,
		},
		{
			name:   "delete",
			method: http.MethodDelete,
			target: "/tables/" + tableID,
			expect: func(svc *tableMocks.MockTable) {
				svc.EXPECT().Delete(gomock.Any(), tableID).Return(nil)
			},
			wantCode: http.StatusOK,
			wantBody: `{"message":"Table deleted successfully"}`,
		},
		{
			name:   "delete referenced",
			method: http.MethodDelete,
			target: "/tables/" + tableID,
			expect: func(svc *tableMocks.MockTable) {
				svc.EXPECT().Delete(gomock.Any(), tableID).Return(failure.StillReferenced)
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
