package bill

import (
	"net/http"

	"hotelhills/infras/otel"
	"hotelhills/internal/domains/bill/model"
	"hotelhills/internal/domains/bill/model/dto"
	"hotelhills/internal/domains/bill/service"
	"hotelhills/shared/constant"
	gDto "hotelhills/shared/dto"
	"hotelhills/shared/validator"
	"hotelhills/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Bill
	otel    otel.Otel
}

func New(service service.Bill, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/bills", func(routerGroup chi.Router) {
		routerGroup.Post("/generate", handler.GenerateBill)
		routerGroup.Get("/", handler.GetBills)
		routerGroup.Get("/{id}", handler.GetBillByID)
	})
}

// GenerateBill prices a stay and persists a new bill.
// @Summary Generate a bill for a stay
// @Description Computes nights (rounded up to whole days) times the room rate plus additional charges.
// @Description Each call creates a new bill, even for a stay that was already billed.
// @Tags Bill
// @Accept json
// @Produce json
// @Param request body dto.GenerateBillRequest true "Generate Bill Request (booking_id, stayId or bookingId)"
// @Success 201 {object} response.Data[dto.BillResponse] "Generated bill"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /bills/generate [post]
func (handler *Handler) GenerateBill(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GenerateBill")
	defer scope.End()

	req := dto.GenerateBillRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(writer, err)

		return
	}

	bill, err := handler.service.Generate(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("booking_id", req.BookingID).Msg("failed to generate bill")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Bill generated successfully")

	response.WithJSON(writer, http.StatusCreated, bill)
}

// GetBills retrieves all bills based on query parameters.
// @Summary Get all bills
// @Description Retrieve all bills with stay, guest and room expanded to their current values.
// @Tags Bill
// @Accept json
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param booking_id query string false "Filter by booking ID"
// @Param guest_id query string false "Filter by guest ID"
// @Param room_id query string false "Filter by room ID"
// @Success 200 {object} response.Data[dto.GetBillsResponse] "List of bills"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /bills [get]
func (handler *Handler) GetBills(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetBills")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	query := r.URL.Query()
	filterGroup := gDto.NewFilterGroup()

	for _, field := range []string{model.FieldBookingID, model.FieldGuestID, model.FieldRoomID} {
		value := query.Get(field)

		if err := validator.ValidateParam(field, value, "omitempty,uuid"); err != nil {
			scope.TraceError(err)
			response.WithError(w, err)

			return
		}

		filterGroup.AppendIfPresent(gDto.Filter{
			Field:    field,
			Operator: gDto.FilterOperatorEq,
			Value:    value,
			Table:    model.TableName,
		})
	}

	bills, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get bills")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Bills retrieved successfully")

	response.WithJSON(w, http.StatusOK, bills)
}

// GetBillByID retrieves a bill by its ID.
// @Summary Get a bill by ID
// @Description Retrieve a bill with its stay, guest and room expanded to their current values.
// @Tags Bill
// @Accept json
// @Produce json
// @Param id path string true "Bill ID"
// @Success 200 {object} response.Data[dto.BillResponse] "Bill details"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /bills/{id} [get]
func (handler *Handler) GetBillByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetBillByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := validator.ValidateID(id); err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	bill, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get bill by ID")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Bill retrieved successfully")

	response.WithJSON(w, http.StatusOK, bill)
}
