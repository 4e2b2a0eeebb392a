package kot

import (
	"net/http"

	"hotelhills/infras/otel"
	"hotelhills/internal/domains/kot/model"
	"hotelhills/internal/domains/kot/model/dto"
	"hotelhills/internal/domains/kot/service"
	"hotelhills/shared/constant"
	gDto "hotelhills/shared/dto"
	"hotelhills/shared/validator"
	"hotelhills/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.KOT
	otel    otel.Otel
}

func New(service service.KOT, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/kots", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateKOT)
		routerGroup.Get("/", handler.GetKOTs)
		routerGroup.Get("/{id}", handler.GetKOTByID)
		routerGroup.Put("/{id}", handler.UpdateKOT)
		routerGroup.Patch("/{id}", handler.UpdateKOT)
		routerGroup.Delete("/{id}", handler.DeleteKOT)
	})
}

// CreateKOT handles the creation of a new KOT.
// @Summary Create a new KOT
// @Description Create a kitchen order ticket for a table with at least one item.
// @Tags KOT
// @Accept json
// @Produce json
// @Param request body dto.CreateKOTRequest true "Create KOT Request"
// @Success 201 {object} response.Data[dto.KOTResponse] "KOT created"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /kots [post]
func (handler *Handler) CreateKOT(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateKOT")
	defer scope.End()

	req := dto.CreateKOTRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(writer, err)

		return
	}

	kot, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create KOT")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("KOT created successfully")

	response.WithJSON(writer, http.StatusCreated, kot)
}

// GetKOTs retrieves all KOTs based on query parameters.
// @Summary Get all KOTs
// @Description Retrieve all kitchen order tickets with their table expanded.
// @Tags KOT
// @Accept json
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param table_id query string false "Filter by table ID"
// @Param status query string false "Filter by status"
// @Success 200 {object} response.Data[dto.GetKOTsResponse] "List of KOTs"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /kots [get]
func (handler *Handler) GetKOTs(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetKOTs")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	query := r.URL.Query()

	for _, param := range []string{model.FieldTableID} {
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
		Field:    model.FieldStatus,
		Operator: gDto.FilterOperatorEq,
		Value:    query.Get(model.FieldStatus),
		Table:    model.TableName,
	})

	kots, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get KOTs")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("KOTs retrieved successfully")

	response.WithJSON(w, http.StatusOK, kots)
}

// GetKOTByID retrieves a KOT by its ID.
// @Summary Get a KOT by ID
// @Description Retrieve a kitchen order ticket with its table expanded.
// @Tags KOT
// @Accept json
// @Produce json
// @Param id path string true "KOT ID"
// @Success 200 {object} response.Data[dto.KOTResponse] "KOT details"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /kots/{id} [get]
func (handler *Handler) GetKOTByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetKOTByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := validator.ValidateID(id); err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	kot, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get KOT by ID")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("KOT retrieved successfully")

	response.WithJSON(w, http.StatusOK, kot)
}

// UpdateKOT updates an existing KOT by its ID.
// @Summary Update a KOT by ID
// @Description Update only the provided fields of a kitchen order ticket. Items replace the existing list.
// @Tags KOT
// @Accept json
// @Produce json
// @Param id path string true "KOT ID"
// @Param request body dto.UpdateKOTRequest true "Update KOT Request"
// @Success 200 {object} response.Data[dto.KOTResponse] "Updated KOT"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /kots/{id} [put]
func (handler *Handler) UpdateKOT(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateKOT")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := validator.ValidateID(id); err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	req := dto.UpdateKOTRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(w, err)

		return
	}

	kot, err := handler.service.Update(ctx, req, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update KOT")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("KOT updated successfully")

	response.WithJSON(w, http.StatusOK, kot)
}

// DeleteKOT deletes a KOT by its ID.
// @Summary Delete a KOT by ID
// @Description Delete a kitchen order ticket.
// @Tags KOT
// @Accept json
// @Produce json
// @Param id path string true "KOT ID"
// @Success 200 {object} response.Message "KOT deleted successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /kots/{id} [delete]
func (handler *Handler) DeleteKOT(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteKOT")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := validator.ValidateID(id); err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	if err := handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete KOT")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("KOT deleted successfully")

	response.WithMessage(w, http.StatusOK, "KOT deleted successfully")
}
