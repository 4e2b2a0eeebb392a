package quotation

import (
	"net/http"

	"hotelhills/infras/otel"
	"hotelhills/internal/domains/quotation/model"
	"hotelhills/internal/domains/quotation/model/dto"
	"hotelhills/internal/domains/quotation/service"
	"hotelhills/shared/constant"
	gDto "hotelhills/shared/dto"
	"hotelhills/shared/validator"
	"hotelhills/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Quotation
	otel    otel.Otel
}

func New(service service.Quotation, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/quotations", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateQuotation)
		routerGroup.Get("/", handler.GetQuotations)
		routerGroup.Get("/{id}", handler.GetQuotationByID)
		routerGroup.Put("/{id}", handler.UpdateQuotation)
		routerGroup.Patch("/{id}", handler.UpdateQuotation)
		routerGroup.Delete("/{id}", handler.DeleteQuotation)
	})
}

// CreateQuotation handles the creation of a new quotation.
// @Summary Create a new quotation
// @Description Create a price quotation for a banquet booking. Status defaults to pending.
// @Tags Quotation
// @Accept json
// @Produce json
// @Param request body dto.CreateQuotationRequest true "Create Quotation Request"
// @Success 201 {object} response.Data[dto.QuotationResponse] "Quotation created"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /quotations [post]
func (handler *Handler) CreateQuotation(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateQuotation")
	defer scope.End()

	req := dto.CreateQuotationRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(writer, err)

		return
	}

	quotation, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create quotation")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Quotation created successfully")

	response.WithJSON(writer, http.StatusCreated, quotation)
}

// GetQuotations retrieves all quotations based on query parameters.
// @Summary Get all quotations
// @Description Retrieve all quotations with their banquet booking expanded.
// @Tags Quotation
// @Accept json
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param banquet_booking_id query string false "Filter by banquet booking ID"
// @Param status query string false "Filter by status"
// @Success 200 {object} response.Data[dto.GetQuotationsResponse] "List of quotations"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /quotations [get]
func (handler *Handler) GetQuotations(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetQuotations")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	query := r.URL.Query()

	for _, param := range []string{model.FieldBanquetBookingID} {
		if err := validator.ValidateParam(param, query.Get(param), "omitempty,uuid"); err != nil {
			scope.TraceError(err)
			response.WithError(w, err)

			return
		}
	}

	filterGroup := gDto.NewFilterGroup()
	filterGroup.AppendIfPresent(gDto.Filter{
		Field:    model.FieldBanquetBookingID,
		Operator: gDto.FilterOperatorEq,
		Value:    query.Get(model.FieldBanquetBookingID),
		Table:    model.TableName,
	})
	filterGroup.AppendIfPresent(gDto.Filter{
		Field:    model.FieldStatus,
		Operator: gDto.FilterOperatorEq,
		Value:    query.Get(model.FieldStatus),
		Table:    model.TableName,
	})

	quotations, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get quotations")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Quotations retrieved successfully")

	response.WithJSON(w, http.StatusOK, quotations)
}

// GetQuotationByID retrieves a quotation by its ID.
// @Summary Get a quotation by ID
// @Description Retrieve a quotation with its banquet booking expanded.
// @Tags Quotation
// @Accept json
// @Produce json
// @Param id path string true "Quotation ID"
// @Success 200 {object} response.Data[dto.QuotationResponse] "Quotation details"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /quotations/{id} [get]
func (handler *Handler) GetQuotationByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetQuotationByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := validator.ValidateID(id); err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	quotation, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get quotation by ID")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Quotation retrieved successfully")

	response.WithJSON(w, http.StatusOK, quotation)
}

// UpdateQuotation updates an existing quotation by its ID.
// @Summary Update a quotation by ID
// @Description Update only the provided fields of a quotation.
// @Tags Quotation
// @Accept json
// @Produce json
// @Param id path string true "Quotation ID"
// @Param request body dto.UpdateQuotationRequest true "Update Quotation Request"
// @Success 200 {object} response.Data[dto.QuotationResponse] "Updated quotation"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /quotations/{id} [put]
func (handler *Handler) UpdateQuotation(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateQuotation")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := validator.ValidateID(id); err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	req := dto.UpdateQuotationRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(w, err)

		return
	}

	quotation, err := handler.service.Update(ctx, req, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update quotation")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Quotation updated successfully")

	response.WithJSON(w, http.StatusOK, quotation)
}

// DeleteQuotation deletes a quotation by its ID.
// @Summary Delete a quotation by ID
// @Description Delete a quotation.
// @Tags Quotation
// @Accept json
// @Produce json
// @Param id path string true "Quotation ID"
// @Success 200 {object} response.Message "Quotation deleted successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /quotations/{id} [delete]
func (handler *Handler) DeleteQuotation(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteQuotation")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := validator.ValidateID(id); err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	if err := handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete quotation")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Quotation deleted successfully")

	response.WithMessage(w, http.StatusOK, "Quotation deleted successfully")
}
