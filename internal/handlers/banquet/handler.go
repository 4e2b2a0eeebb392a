package banquet

import (
	"net/http"

	"hotelhills/infras/otel"
	"hotelhills/internal/domains/banquet/model"
	"hotelhills/internal/domains/banquet/model/dto"
	"hotelhills/internal/domains/banquet/service"
	"hotelhills/shared/constant"
	gDto "hotelhills/shared/dto"
	"hotelhills/shared/validator"
	"hotelhills/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Banquet
	otel    otel.Otel
}

func New(service service.Banquet, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/banquets", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateBanquet)
		routerGroup.Get("/", handler.GetBanquets)
		routerGroup.Get("/{id}", handler.GetBanquetByID)
		routerGroup.Put("/{id}", handler.UpdateBanquet)
		routerGroup.Patch("/{id}", handler.UpdateBanquet)
		routerGroup.Delete("/{id}", handler.DeleteBanquet)
	})
}

// CreateBanquet handles the creation of a new banquet.
// @Summary Create a new banquet
// @Description Create a new banquet hall. Status defaults to available.
// @Tags Banquet
// @Accept json
// @Produce json
// @Param request body dto.CreateBanquetRequest true "Create Banquet Request"
// @Success 201 {object} response.Data[dto.BanquetResponse] "Banquet created"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /banquets [post]
func (handler *Handler) CreateBanquet(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateBanquet")
	defer scope.End()

	req := dto.CreateBanquetRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(writer, err)

		return
	}

	banquet, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create banquet")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Banquet created successfully")

	response.WithJSON(writer, http.StatusCreated, banquet)
}

// GetBanquets retrieves all banquets based on query parameters.
// @Summary Get all banquets
// @Description Retrieve all banquet halls with optional filtering and pagination.
// @Tags Banquet
// @Accept json
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param status query string false "Filter by status"
// @Success 200 {object} response.Data[dto.GetBanquetsResponse] "List of banquets"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /banquets [get]
func (handler *Handler) GetBanquets(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetBanquets")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	query := r.URL.Query()

	filterGroup := gDto.NewFilterGroup()
	filterGroup.AppendIfPresent(gDto.Filter{
		Field:    model.FieldStatus,
		Operator: gDto.FilterOperatorEq,
		Value:    query.Get(model.FieldStatus),
		Table:    model.TableName,
	})

	banquets, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get banquets")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Banquets retrieved successfully")

	response.WithJSON(w, http.StatusOK, banquets)
}

// GetBanquetByID retrieves a banquet by its ID.
// @Summary Get a banquet by ID
// @Description Retrieve a banquet hall by its unique identifier.
// @Tags Banquet
// @Accept json
// @Produce json
// @Param id path string true "Banquet ID"
// @Success 200 {object} response.Data[dto.BanquetResponse] "Banquet details"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /banquets/{id} [get]
func (handler *Handler) GetBanquetByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetBanquetByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := validator.ValidateID(id); err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	banquet, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get banquet by ID")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Banquet retrieved successfully")

	response.WithJSON(w, http.StatusOK, banquet)
}

// UpdateBanquet updates an existing banquet by its ID.
// @Summary Update a banquet by ID
// @Description Update only the provided fields of a banquet hall.
// @Tags Banquet
// @Accept json
// @Produce json
// @Param id path string true "Banquet ID"
// @Param request body dto.UpdateBanquetRequest true "Update Banquet Request"
// @Success 200 {object} response.Data[dto.BanquetResponse] "Updated banquet"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /banquets/{id} [put]
func (handler *Handler) UpdateBanquet(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateBanquet")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := validator.ValidateID(id); err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	req := dto.UpdateBanquetRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(w, err)

		return
	}

	banquet, err := handler.service.Update(ctx, req, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update banquet")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Banquet updated successfully")

	response.WithJSON(w, http.StatusOK, banquet)
}

// DeleteBanquet deletes a banquet by its ID.
// @Summary Delete a banquet by ID
// @Description Delete a banquet hall. Halls still referenced by bookings cannot be deleted.
// @Tags Banquet
// @Accept json
// @Produce json
// @Param id path string true "Banquet ID"
// @Success 200 {object} response.Message "Banquet deleted successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /banquets/{id} [delete]
func (handler *Handler) DeleteBanquet(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteBanquet")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := validator.ValidateID(id); err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	if err := handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete banquet")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Banquet deleted successfully")

	response.WithMessage(w, http.StatusOK, "Banquet deleted successfully")
}
