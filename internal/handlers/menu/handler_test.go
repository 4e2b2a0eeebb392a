package menu_test

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
	"hotelhills/internal/domains/menu/model/dto"
	menuMocks "hotelhills/internal/domains/menu/service/mocks"
	"hotelhills/internal/handlers/menu"
	gDto "hotelhills/shared/dto"
	"hotelhills/shared/failure"
)

const menuID = "2a3b4c5d-6e7f-4a8b-9c0d-1e2f3a4b5c6d"

func setup(t *testing.T) (*menuMocks.MockMenu, http.Handler) {
	t.Helper()

	ctrl := gomock.NewController(t)
	svc := menuMocks.NewMockMenu(ctrl)

	handler := menu.New(svc, otelMocks.NewOtel())
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

func TestHandler_CreateMenuItem(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		svcErr   error
		wantCode int
		wantErr  string
	}{
		{name: "created", body: `{"name":"Soto","price":4.5,"category":"soup"}`, wantCode: http.StatusCreated},
		{name: "missing price", body: `{"name":"Soto"}`, wantCode: http.StatusBadRequest, wantErr: "price is required"},
		{name: "price beyond the money column", body: `{"name":"Soto","price":1e12}`, wantCode: http.StatusBadRequest, wantErr: "price must be less than or equal to 9999999999.99"},
		{name: "price given as text", body: `{"name":"Soto","price":"cheap"}`, wantCode: http.StatusBadRequest, wantErr: "price must be a number"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, router := setup(t)

			if tt.wantErr == "" || tt.svcErr != nil {
				svc.EXPECT().Create(gomock.Any(), gomock.Any()).Return(dto.MenuResponse{ID: menuID}, tt.svcErr)
			}

			recorder := serve(router, http.MethodPost, "/menu", tt.body)

			assert.Equal(t, tt.wantCode, recorder.Code)

			if tt.wantErr != "" {
				assert.JSONEq(t, `{"error":"`+tt.wantErr+`"}`, recorder.Body.String())
			}
		})
	}
}

func TestHandler_GetMenuItems(t *testing.T) {
	t.Run("builds filters from the query", func(t *testing.T) {
		svc, router := setup(t)

		svc.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, params gDto.QueryParams, filter gDto.FilterGroup) (dto.GetMenuItemsResponse, error) {
				assert.Equal(t, 1, params.Page)
				require.Len(t, filter.Filters, 2)

				got := map[string]any{}
				for _, f := range filter.Filters {
					field, ok := f.(gDto.Filter)
					require.True(t, ok)
					got[field.Field] = field.Value
				}

				assert.Equal(t, map[string]any{"name": "soto", "category": "soup"}, got)

				return dto.GetMenuItemsResponse{TotalData: 0, TotalPage: 1}, nil
			})

		recorder := serve(router, http.MethodGet, "/menu?name=soto&category=soup", "")

		assert.Equal(t, http.StatusOK, recorder.Code)
	})
}

func TestHandler_MenuItemByID(t *testing.T) {
	tests := []struct {
		name     string
		method   string
		target   string
		body     string
		expect   func(svc *menuMocks.MockMenu)
		wantCode int
		wantBody string
	}{
		{
			name:   "get",
			method: http.MethodGet,
			target: "/menu/" + menuID,
			expect: func(svc *menuMocks.MockMenu) {
				svc.EXPECT().Get(gomock.Any(), menuID).Return(dto.MenuResponse{ID: menuID}, nil)
			},
			wantCode: http.StatusOK,
		},
		{
			name:   "get unknown",
			method: http.MethodGet,
			target: "/menu/" + menuID,
			expect: func(svc *menuMocks.MockMenu) {
				svc.EXPECT().Get(gomock.Any(), menuID).Return(dto.MenuResponse{}, failure.NotFound("menu item not found"))
			},
			wantCode: http.StatusNotFound,
			wantBody: `{"error":"menu item not found"}`,
		},
		{
			name:     "malformed id",
			method:   http.MethodDelete,
			target:   "/menu/soup",
			expect:   func(*menuMocks.MockMenu) {},
			wantCode: http.StatusBadRequest,
			wantBody: `{"error":"id must be a valid UUID"}`,
		},
		{
			name:   "put",
			method: http.MethodPut,
			target: "/menu/" + menuID,
			body:   `{"category":"main"}`,
			expect: func(svc *menuMocks.MockMenu) {
				svc.EXPECT().Update(gomock.Any(), dto.UpdateMenuRequest{Category: "main"}, menuID).Return(dto.MenuResponse{ID: menuID}, nil)
			},
			wantCode: http.StatusOK,
		},
		{
			name:     "invalid update",
			method:   http.MethodPatch,
			target:   "/menu/" + menuID,
			body:     `{"price":-1}`,
			expect:   func(*menuMocks.MockMenu) {},
			wantCode: http.StatusBadRequest,
			wantBody: `{"error":"price must be greater than or equal to 0"}`,
		},
		{
			name:   "empty update",
			method: http.MethodPatch,
			target: "/menu/" + menuID,
			body:   `{}`,
			expect: func(svc *menuMocks.MockMenu) {
				svc.EXPECT().Update(gomock.Any(), dto.UpdateMenuRequest{}, menuID).Return(dto.MenuResponse{}, failure.EmptyUpdateRequest)
			},
			wantCode: http.StatusBadRequest,
			wantBody: `{"error":"update request cannot be empty"}`,
		},
		{
			name:   "delete",
			method: http.MethodDelete,
			target: "/menu/" + menuID,
			expect: func(svc *menuMocks.MockMenu) {
				svc.EXPECT().Delete(gomock.Any(), menuID).Return(nil)
			},
			wantCode: http.StatusOK,
			wantBody: `{"message":"Menu item deleted successfully"}`,
		},
		{
			name:   "delete referenced",
			method: http.MethodDelete,
			target: "/menu/" + menuID,
			expect: func(svc *menuMocks.MockMenu) {
				svc.EXPECT().Delete(gomock.Any(), menuID).Return(failure.StillReferenced)
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
