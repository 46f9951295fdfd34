package dashboard

import (
	"net/http"
	"strconv"

	"hotelier/infras/otel"
	bookingService "hotelier/internal/domains/booking/service"
	rentingService "hotelier/internal/domains/renting/service"
	roomDto "hotelier/internal/domains/room/model/dto"
	roomService "hotelier/internal/domains/room/service"
	"hotelier/shared/constant"
	"hotelier/shared/validator"
	"hotelier/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	roomService    roomService.Room
	bookingService bookingService.Booking
	rentingService rentingService.Renting
	otel           otel.Otel
}

func New(roomService roomService.Room, bookingService bookingService.Booking, rentingService rentingService.Renting, otel otel.Otel) Handler {
	return Handler{
		roomService:    roomService,
		bookingService: bookingService,
		rentingService: rentingService,
		otel:           otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/dashboard", func(routerGroup chi.Router) {
		routerGroup.Get("/available-rooms", handler.GetAvailableRooms)
		routerGroup.Get("/customer/bookings", handler.GetCustomerBookings)
		routerGroup.Get("/employee/rentals", handler.GetEmployeeRentals)
	})
}

// GetAvailableRooms runs the availability search.
// @Summary Search available rooms
// @Description List rooms free for the whole requested range. All filters are optional and combined with AND; without a date pair every room matches the remaining filters.
// @Tags Dashboard
// @Produce json
// @Param start_date query string false "Start date (YYYY-MM-DD, paired with end_date)"
// @Param end_date query string false "End date (YYYY-MM-DD, exclusive)"
// @Param capacity query string false "Capacity (substring)"
// @Param city query string false "City (substring)"
// @Param company_name query string false "Chain (substring)"
// @Param category query int false "Hotel category"
// @Param total_rooms query int false "Minimum hotel size"
// @Param min_price query number false "Minimum price"
// @Param max_price query number false "Maximum price"
// @Success 200 {object} response.Data[roomDto.GetAvailableRoomsResponse] "Available rooms"
// @Failure 400 {object} response.Error
// @Router /v1/dashboard/available-rooms [get]
// @Security BearerAuth
func (handler *Handler) GetAvailableRooms(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetAvailableRooms")
	defer scope.End()

	query := request.URL.Query()

	req := roomDto.AvailabilityRequest{
		StartDate:   query.Get("start_date"),
		EndDate:     query.Get("end_date"),
		Capacity:    query.Get("capacity"),
		City:        query.Get("city"),
		CompanyName: query.Get("company_name"),
	}

	if category := query.Get("category"); category != "" {
		if categoryInt, err := strconv.Atoi(category); err == nil {
			req.Category = categoryInt
		}
	}

	if totalRooms := query.Get("total_rooms"); totalRooms != "" {
		if totalRoomsInt, err := strconv.Atoi(totalRooms); err == nil {
			req.TotalRooms = totalRoomsInt
		}
	}

	if minPrice := query.Get("min_price"); minPrice != "" {
		if minPriceFloat, err := strconv.ParseFloat(minPrice, 64); err == nil {
			req.MinPrice = minPriceFloat
		}
	}

	if maxPrice := query.Get("max_price"); maxPrice != "" {
		if maxPriceFloat, err := strconv.ParseFloat(maxPrice, 64); err == nil {
			req.MaxPrice = maxPriceFloat
		}
	}

	if err := validator.ValidateStruct(&req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate availability query")

		response.WithError(writer, err)

		return
	}

	rooms, err := handler.roomService.FindAvailable(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to find available rooms")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, rooms)
}

// GetCustomerBookings lists the calling customer's bookings.
// @Summary Get my bookings
// @Tags Dashboard
// @Produce json
// @Success 200 {object} response.Data[dto.GetCustomerBookingsResponse] "Customer bookings"
// @Failure 401 {object} response.Error
// @Router /v1/dashboard/customer/bookings [get]
// @Security BearerAuth
func (handler *Handler) GetCustomerBookings(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetCustomerBookings")
	defer scope.End()

	bookings, err := handler.bookingService.ListForCustomer(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get customer bookings")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, bookings)
}

// GetEmployeeRentals lists the rentals processed by the calling employee.
// @Summary Get my rentals
// @Tags Dashboard
// @Produce json
// @Success 200 {object} response.Data[dto.GetEmployeeRentalsResponse] "Employee rentals"
// @Failure 401 {object} response.Error
// @Router /v1/dashboard/employee/rentals [get]
// @Security BearerAuth
func (handler *Handler) GetEmployeeRentals(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetEmployeeRentals")
	defer scope.End()

	rentals, err := handler.rentingService.ListForEmployee(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get employee rentals")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, rentals)
}
