package tablebooking

import (
	"net/http"

	"hotelhills/infras/otel"
	"hotelhills/internal/domains/tablebooking/model"
	"hotelhills/internal/domains/tablebooking/model/dto"
	"hotelhills/internal/domains/tablebooking/service"
	"hotelhills/shared/constant"
	gDto "hotelhills/shared/dto"
	"hotelhills/shared/validator"
	"hotelhills/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.TableBooking
	otel    otel.Otel
}

func New(service service.TableBooking, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/table-bookings", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateTableBooking)
		routerGroup.Get("/", handler.GetTableBookings)
		routerGroup.Get("/{id}", handler.GetTableBookingByID)
		routerGroup.Put("/{id}", handler.UpdateTableBooking)
		routerGroup.Patch("/{id}", handler.UpdateTableBooking)
		routerGroup.Delete("/{id}", handler.DeleteTableBooking)
	})
}

// CreateTableBooking handles the creation of a new table booking.
// @Summary Create a new table booking
// @Description Reserve a restaurant table for a guest at booking_time.
// @Tags TableBooking
// @Accept json
// @Produce json
// @Param request body dto.CreateTableBookingRequest true "Create Table booking Request"
// @Success 201 {object} response.Data[dto.TableBookingResponse] "Table booking created"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /table-bookings [post]
func (handler *Handler) CreateTableBooking(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateTableBooking")
	defer scope.End()

	req := dto.CreateTableBookingRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(writer, err)

		return
	}

	tableBooking, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create table booking")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Table booking created successfully")

	response.WithJSON(writer, http.StatusCreated, tableBooking)
}

// GetTableBookings retrieves all table bookings based on query parameters.
// @Summary Get all table bookings
// @Description Retrieve all table reservations with their table and guest expanded.
// @Tags TableBooking
// @Accept json
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param table_id query string false "Filter by table ID"
// @Param guest_id query string false "Filter by guest ID"
// @Param status query string false "Filter by status"
// @Success 200 {object} response.Data[dto.GetTableBookingsResponse] "List of table bookings"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /table-bookings [get]
func (handler *Handler) GetTableBookings(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetTableBookings")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	query := r.URL.Query()

	for _, param := range []string{model.FieldTableID, model.FieldGuestID} {
		if err := validator.ValidateParam(param, query.Get(param), "omitempty,uuid"); err != nil {
			scope.TraceError(err)
			response.WithError(w, err)

			return
		}
	}

	filterGroup := gDto.NewFilterGroup()
	filterGroup.AppendIfPresent(gDto.Filter{
		Field:    model.FieldTableID,
		Operator: gDto.FilterOperatorEq,
		Value:    query.Get(model.FieldTableID),
		Table:    model.TableName,
	})
	filterGroup.AppendIfPresent(gDto.Filter{
		Field:    model.FieldGuestID,
		Operator: gDto.FilterOperatorEq,
		Value:    query.Get(model.FieldGuestID),
		Table:    model.TableName,
	})
	filterGroup.AppendIfPresent(gDto.Filter{
		Field:    model.FieldStatus,
		Operator: gDto.FilterOperatorEq,
		Value:    query.Get(model.FieldStatus),
		Table:    model.TableName,
	})

	tableBookings, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get table bookings")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Table bookings retrieved successfully")

	response.WithJSON(w, http.StatusOK, tableBookings)
}

// GetTableBookingByID retrieves a table booking by its ID.
// @Summary Get a table booking by ID
// @Description Retrieve a table reservation with its table and guest expanded.
// @Tags TableBooking
// @Accept json
// @Produce json
// @Param id path string true "Table booking ID"
// @Success 200 {object} response.Data[dto.TableBookingResponse] "Table booking details"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /table-bookings/{id} [get]
func (handler *Handler) GetTableBookingByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetTableBookingByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := validator.ValidateID(id); err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	tableBooking, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get table booking by ID")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Table booking retrieved successfully")

	response.WithJSON(w, http.StatusOK, tableBooking)
}

// UpdateTableBooking updates an existing table booking by its ID.
// @Summary Update a table booking by ID
// @Description Update only the provided fields of a table reservation.
// @Tags TableBooking
// @Accept json
// @Produce json
// @Param id path string true "Table booking ID"
// @Param request body dto.UpdateTableBookingRequest true "Update Table booking Request"
// @Success 200 {object} response.Data[dto.TableBookingResponse] "Updated table booking"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /table-bookings/{id} [put]
func (handler *Handler) UpdateTableBooking(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateTableBooking")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := validator.ValidateID(id); err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	req := dto.UpdateTableBookingRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(w, err)

		return
	}

	tableBooking, err := handler.service.Update(ctx, req, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update table booking")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Table booking updated successfully")

	response.WithJSON(w, http.StatusOK, tableBooking)
}

// DeleteTableBooking deletes a table booking by its ID.
// @Summary Delete a table booking by ID
// @Description Delete a table reservation.
// @Tags TableBooking
// @Accept json
// @Produce json
// @Param id path string true "Table booking ID"
// @Success 200 {object} response.Message "Table booking deleted successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /table-bookings/{id} [delete]
func (handler *Handler) DeleteTableBooking(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteTableBooking")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := validator.ValidateID(id); err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	if err := handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete table booking")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Table booking deleted successfully")

	response.WithMessage(w, http.StatusOK, "Table booking deleted successfully")
}
