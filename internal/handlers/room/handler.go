package room

import (
	"net/http"
	"strconv"

	"hotelier/infras/otel"
	"hotelier/internal/domains/room/model"
	"hotelier/internal/domains/room/model/dto"
	"hotelier/internal/domains/room/service"
	"hotelier/shared/constant"
	gDto "hotelier/shared/dto"
	"hotelier/shared/failure"
	"hotelier/shared/validator"
	"hotelier/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Room
	otel    otel.Otel
}

func New(service service.Room, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/rooms", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateRoom)
		routerGroup.Get("/", handler.GetRooms)
		routerGroup.Get("/specific", handler.GetRoom)
		routerGroup.Get("/available", handler.GetCurrentlyFreeRooms)
		routerGroup.Put("/price", handler.UpdatePrice)
		routerGroup.Put("/capacity", handler.UpdateCapacity)
		routerGroup.Put("/viewtype", handler.UpdateViewType)
		routerGroup.Delete("/", handler.DeleteRoom)
	})
}

// CreateRoom registers a new room in a hotel.
// @Summary Create a room
// @Tags Room
// @Accept json
// @Produce json
// @Param request body dto.CreateRoomRequest true "Create Room Request"
// @Success 201 {object} response.Message "Room created successfully"
// @Failure 400 {object} response.Error
// @Failure 409 {object} response.Error
// @Router /v1/rooms [post]
// @Security BearerAuth
func (handler *Handler) CreateRoom(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateRoom")
	defer scope.End()

	req := dto.CreateRoomRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	if err := handler.service.Create(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create room")

		response.WithError(writer, err)

		return
	}

	response.WithMessage(writer, http.StatusCreated, "Room created successfully")
}

// GetRooms lists rooms with optional filters and pagination.
// @Summary Get all rooms
// @Tags Room
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param hotel_id query int false "Filter by hotel number"
// @Param company_name query string false "Filter by chain"
// @Success 200 {object} response.Data[dto.GetRoomsResponse] "List of rooms"
// @Router /v1/rooms [get]
func (handler *Handler) GetRooms(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetRooms")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(request, true)

	hotelID := request.URL.Query().Get(model.FieldHotelID)
	companyName := request.URL.Query().Get(model.FieldCompanyName)

	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters:  []any{},
	}

	if hotelID != "" {
		if hotelIDInt, err := strconv.Atoi(hotelID); err == nil {
			filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
				Field:    model.FieldHotelID,
				Operator: gDto.FilterOperatorEq,
				Value:    hotelIDInt,
				Table:    model.TableName,
			})
		}
	}

	if companyName != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldCompanyName,
			Operator: gDto.FilterOperatorEq,
			Value:    companyName,
			Table:    model.TableName,
		})
	}

	rooms, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get rooms")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, rooms)
}

// GetRoom retrieves one room by its composite key.
// @Summary Get a specific room
// @Tags Room
// @Produce json
// @Param room_number query int true "Room number"
// @Param hotel_id query int true "Hotel number"
// @Param company_name query string true "Chain name"
// @Success 200 {object} response.Data[dto.RoomResponse] "Room details"
// @Failure 404 {object} response.Error
// @Router /v1/rooms/specific [get]
func (handler *Handler) GetRoom(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetRoom")
	defer scope.End()

	roomNumber, err := strconv.Atoi(request.URL.Query().Get(constant.FieldRoomNumber))
	if err != nil {
		response.WithError(writer, failure.BadRequestFromString("room_number must be an integer"))

		return
	}

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

	room, err := handler.service.Get(ctx, roomNumber, hotelID, companyName)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get room")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, room)
}

// GetCurrentlyFreeRooms lists rooms with no booking spanning today.
// @Summary Get currently free rooms
// @Tags Room
// @Produce json
// @Success 200 {object} response.Data[dto.GetRoomsResponse] "List of free rooms"
// @Router /v1/rooms/available [get]
func (handler *Handler) GetCurrentlyFreeRooms(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetCurrentlyFreeRooms")
	defer scope.End()

	rooms, err := handler.service.FindCurrentlyFree(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get currently free rooms")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, rooms)
}

// UpdatePrice updates a room's nightly price.
// @Summary Update room price
// @Tags Room
// @Accept json
// @Produce json
// @Param request body dto.UpdateRoomPriceRequest true "Update Price Request"
// @Success 200 {object} response.Message "Room price updated successfully"
// @Failure 404 {object} response.Error
// @Router /v1/rooms/price [put]
// @Security BearerAuth
func (handler *Handler) UpdatePrice(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdatePrice")
	defer scope.End()

	req := dto.UpdateRoomPriceRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	if err := handler.service.UpdatePrice(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update room price")

		response.WithError(writer, err)

		return
	}

	response.WithMessage(writer, http.StatusOK, "Room price updated successfully")
}

// UpdateCapacity updates a room's capacity label.
// @Summary Update room capacity
// @Tags Room
// @Accept json
// @Produce json
// @Param request body dto.UpdateRoomCapacityRequest true "Update Capacity Request"
// @Success 200 {object} response.Message "Room capacity updated successfully"
// @Failure 404 {object} response.Error
// @Router /v1/rooms/capacity [put]
// @Security BearerAuth
func (handler *Handler) UpdateCapacity(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateCapacity")
	defer scope.End()

	req := dto.UpdateRoomCapacityRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	if err := handler.service.UpdateCapacity(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update room capacity")

		response.WithError(writer, err)

		return
	}

	response.WithMessage(writer, http.StatusOK, "Room capacity updated successfully")
}

// UpdateViewType updates a room's view type.
// @Summary Update room view type
// @Tags Room
// @Accept json
// @Produce json
// @Param request body dto.UpdateRoomViewTypeRequest true "Update View Type Request"
// @Success 200 {object} response.Message "Room view type updated successfully"
// @Failure 404 {object} response.Error
// @Router /v1/rooms/viewtype [put]
// @Security BearerAuth
func (handler *Handler) UpdateViewType(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateViewType")
	defer scope.End()

	req := dto.UpdateRoomViewTypeRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	if err := handler.service.UpdateViewType(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update room view type")

		response.WithError(writer, err)

		return
	}

	response.WithMessage(writer, http.StatusOK, "Room view type updated successfully")
}

// DeleteRoom removes a room by its composite key.
// @Summary Delete a room
// @Tags Room
// @Accept json
// @Produce json
// @Param request body dto.DeleteRoomRequest true "Delete Room Request"
// @Success 200 {object} response.Message "Room deleted successfully"
// @Failure 404 {object} response.Error
// @Router /v1/rooms [delete]
// @Security BearerAuth
func (handler *Handler) DeleteRoom(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteRoom")
	defer scope.End()

	req := dto.DeleteRoomRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	if err := handler.service.Delete(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete room")

		response.WithError(writer, err)

		return
	}

	response.WithMessage(writer, http.StatusOK, "Room deleted successfully")
}
