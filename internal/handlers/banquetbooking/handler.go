package banquetbooking

import (
	"net/http"

	"hotelhills/infras/otel"
	"hotelhills/internal/domains/banquetbooking/model"
	"hotelhills/internal/domains/banquetbooking/model/dto"
	"hotelhills/internal/domains/banquetbooking/service"
	"hotelhills/shared/constant"
	gDto "hotelhills/shared/dto"
	"hotelhills/shared/validator"
	"hotelhills/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.BanquetBooking
	otel    otel.Otel
}

func New(service service.BanquetBooking, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/banquet-bookings", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateBanquetBooking)
		routerGroup.Get("/", handler.GetBanquetBookings)
		routerGroup.Get("/{id}", handler.GetBanquetBookingByID)
		routerGroup.Put("/{id}", handler.UpdateBanquetBooking)
		routerGroup.Patch("/{id}", handler.UpdateBanquetBooking)
		routerGroup.Delete("/{id}", handler.DeleteBanquetBooking)
	})
}

// CreateBanquetBooking handles the creation of a new banquet booking.
// @Summary Create a new banquet booking
// @Description Book a banquet hall for a guest on event_date.
// @Tags BanquetBooking
// @Accept json
// @Produce json
// @Param request body dto.CreateBanquetBookingRequest true "Create Banquet booking Request"
// @Success 201 {object} response.Data[dto.BanquetBookingResponse] "Banquet booking created"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /banquet-bookings [post]
func (handler *Handler) CreateBanquetBooking(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateBanquetBooking")
	defer scope.End()

	req := dto.CreateBanquetBookingRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(writer, err)

		return
	}

	banquetBooking, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create banquet booking")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Banquet booking created successfully")

	response.WithJSON(writer, http.StatusCreated, banquetBooking)
}

// GetBanquetBookings retrieves all banquet bookings based on query parameters.
// @Summary Get all banquet bookings
// @Description Retrieve all banquet bookings with their hall and guest expanded.
// @Tags BanquetBooking
// @Accept json
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param banquet_id query string false "Filter by banquet ID"
// @Param guest_id query string false "Filter by guest ID"
// @Param status query string false "Filter by status"
// @Success 200 {object} response.Data[dto.GetBanquetBookingsResponse] "List of banquet bookings"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /banquet-bookings [get]
func (handler *Handler) GetBanquetBookings(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetBanquetBookings")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	query := r.URL.Query()

	for _, param := range []string{model.FieldBanquetID, model.FieldGuestID} {
		if err := validator.ValidateParam(param, query.Get(param), "omitempty,uuid"); err != nil {
			scope.TraceError(err)
			response.WithError(w, err)

			return
		}
	}

	filterGroup := gDto.NewFilterGroup()
	filterGroup.AppendIfPresent(gDto.Filter{
		Field:    model.FieldBanquetID,
		Operator: gDto.FilterOperatorEq,
		Value:    query.Get(model.FieldBanquetID),
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

	banquetBookings, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get banquet bookings")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Banquet bookings retrieved successfully")

	response.WithJSON(w, http.StatusOK, banquetBookings)
}

// GetBanquetBookingByID retrieves a banquet booking by its ID.
// @Summary Get a banquet booking by ID
// @Description Retrieve a banquet booking with its hall and guest expanded.
// @Tags BanquetBooking
// @Accept json
// @Produce json
// @Param id path string true "Banquet booking ID"
// @Success 200 {object} response.Data[dto.BanquetBookingResponse] "Banquet booking details"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /banquet-bookings/{id} [get]
func (handler *Handler) GetBanquetBookingByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetBanquetBookingByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := validator.ValidateID(id); err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	banquetBooking, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get banquet booking by ID")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Banquet booking retrieved successfully")

	response.WithJSON(w, http.StatusOK, banquetBooking)
}

// UpdateBanquetBooking updates an existing banquet booking by its ID.
// @Summary Update a banquet booking by ID
// @Description Update only the provided fields of a banquet booking.
// @Tags BanquetBooking
// @Accept json
// @Produce json
// @Param id path string true "Banquet booking ID"
// @Param request body dto.UpdateBanquetBookingRequest true "Update Banquet booking Request"
// @Success 200 {object} response.Data[dto.BanquetBookingResponse] "Updated banquet booking"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /banquet-bookings/{id} [put]
func (handler *Handler) UpdateBanquetBooking(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateBanquetBooking")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := validator.ValidateID(id); err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	req := dto.UpdateBanquetBookingRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(w, err)

		return
	}

	banquetBooking, err := handler.service.Update(ctx, req, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update banquet booking")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Banquet booking updated successfully")

	response.WithJSON(w, http.StatusOK, banquetBooking)
}

// DeleteBanquetBooking deletes a banquet booking by its ID.
// @Summary Delete a banquet booking by ID
// @Description Delete a banquet booking. Bookings still referenced by quotations cannot be deleted.
// @Tags BanquetBooking
// @Accept json
// @Produce json
// @Param id path string true "Banquet booking ID"
// @Success 200 {object} response.Message "Banquet booking deleted successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /banquet-bookings/{id} [delete]
func (handler *Handler) DeleteBanquetBooking(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteBanquetBooking")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := validator.ValidateID(id); err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	if err := handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete banquet booking")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Banquet booking deleted successfully")

	response.WithMessage(w, http.StatusOK, "Banquet booking deleted successfully")
}
