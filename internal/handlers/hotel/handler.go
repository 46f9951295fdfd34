package hotel

import (
	"net/http"
	"strconv"

	"hotelier/infras/otel"
	"hotelier/internal/domains/hotel/model"
	"hotelier/internal/domains/hotel/model/dto"
	"hotelier/internal/domains/hotel/service"
	"hotelier/shared/constant"
	gDto "hotelier/shared/dto"
	"hotelier/shared/failure"
	"hotelier/shared/validator"
	"hotelier/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Hotel
	otel    otel.Otel
}

func New(service service.Hotel, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/hotels", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateHotel)
		routerGroup.Get("/", handler.GetHotels)
		routerGroup.Get("/specific", handler.GetHotel)
		routerGroup.Put("/category", handler.UpdateCategory)
		routerGroup.Delete("/", handler.DeleteHotel)
	})
}

// CreateHotel registers a new hotel in the chain.
// @Summary Create a hotel
// @Tags Hotel
// @Accept json
// @Produce json
// @Param request body dto.CreateHotelRequest true "Create Hotel Request"
// @Success 201 {object} response.Message "Hotel created successfully"
// @Failure 400 {object} response.Error
// @Failure 409 {object} response.Error
// @Router /v1/hotels [post]
// @Security BearerAuth
func (handler *Handler) CreateHotel(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateHotel")
	defer scope.End()

	req := dto.CreateHotelRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	if err := handler.service.Create(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create hotel")

		response.WithError(writer, err)

		return
	}

	response.WithMessage(writer, http.StatusCreated, "Hotel created successfully")
}

// GetHotels lists hotels with optional filters and pagination.
// @Summary Get all hotels
// @Tags Hotel
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param city query string false "Filter by city (substring)"
// @Param company_name query string false "Filter by chain (substring)"
// @Param category query int false "Filter by category"
// @Success 200 {object} response.Data[dto.GetHotelsResponse] "List of hotels"
// @Router /v1/hotels [get]
func (handler *Handler) GetHotels(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetHotels")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(request, true)

	city := request.URL.Query().Get(model.FieldCity)
	companyName := request.URL.Query().Get(model.FieldCompanyName)
	category := request.URL.Query().Get(model.FieldCategory)

	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters:  []any{},
	}

	if city != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldCity,
			Operator: gDto.FilterOperatorLike,
			Value:    city,
			Table:    model.TableName,
		})
	}

	if companyName != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldCompanyName,
			Operator: gDto.FilterOperatorLike,
			Value:    companyName,
			Table:    model.TableName,
		})
	}

	if category != "" {
		if categoryInt, err := strconv.Atoi(category); err == nil {
			filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
				Field:    model.FieldCategory,
				Operator: gDto.FilterOperatorEq,
				Value:    categoryInt,
				Table:    model.TableName,
			})
		}
	}

	hotels, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get hotels")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, hotels)
}

// GetHotel retrieves one hotel by its composite key.
// @Summary Get a specific hotel
// @Tags Hotel
// @Produce json
// @Param hotel_id query int true "Hotel number"
// @Param company_name query string true "Chain name"
// @Success 200 {object} response.Data[dto.HotelResponse] "Hotel details"
// @Failure 404 {object} response.Error
// @Router /v1/hotels/specific [get]
func (handler *Handler) GetHotel(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetHotel")
	defer scope.End()

	hotelID, err := strconv.Atoi(request.URL.Query().Get(constant.FieldHotelID))
	if err != nil {
		response.WithError(writer, failure.BadRequestFromString("hotel_id must be an integer"))

		return
	}

	companyName := request.URL.Query().Get(constant.FieldCompanyName)
	if companyName == "" {
		response.WithError(writer, failure.BadRequestFromString("company_name is required"))

		return
	}

	hotel, err := handler.service.Get(ctx, hotelID, companyName)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get hotel")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, hotel)
}

// UpdateCategory updates a hotel's star category.
// @Summary Update hotel category
// @Tags Hotel
// @Accept json
// @Produce json
// @Param request body dto.UpdateHotelCategoryRequest true "Update Category Request"
// @Success 200 {object} response.Message "Hotel category updated successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/hotels/category [put]
// @Security BearerAuth
func (handler *Handler) UpdateCategory(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateCategory")
	defer scope.End()

	req := dto.UpdateHotelCategoryRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	if err := handler.service.UpdateCategory(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update hotel category")

		response.WithError(writer, err)

		return
	}

	response.WithMessage(writer, http.StatusOK, "Hotel category updated successfully")
}

// DeleteHotel removes a hotel by its composite key.
// @Summary Delete a hotel
// @Tags Hotel
// @Accept json
// @Produce json
// @Param request body dto.DeleteHotelRequest true "Delete Hotel Request"
// @Success 200 {object} response.Message "Hotel deleted successfully"
// @Failure 404 {object} response.Error
// @Router /v1/hotels [delete]
// @Security BearerAuth
func (handler *Handler) DeleteHotel(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteHotel")
	defer scope.End()

	req := dto.DeleteHotelRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	if err := handler.service.Delete(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete hotel")

		response.WithError(writer, err)

		return
	}

	response.WithMessage(writer, http.StatusOK, "Hotel deleted successfully")
}
