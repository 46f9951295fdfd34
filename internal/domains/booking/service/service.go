package service

import (
	"context"
	"fmt"

	"hotelier/config"
	"hotelier/infras/kafka"
	"hotelier/infras/otel"
	"hotelier/infras/postgres"
	"hotelier/internal/domains/booking/model"
	"hotelier/internal/domains/booking/model/dto"
	"hotelier/internal/domains/booking/repository"
	employeeModel "hotelier/internal/domains/employee/model"
	employeeRepo "hotelier/internal/domains/employee/repository"
	paymentModel "hotelier/internal/domains/payment/model"
	paymentRepo "hotelier/internal/domains/payment/repository"
	rentingModel "hotelier/internal/domains/renting/model"
	rentingDto "hotelier/internal/domains/renting/model/dto"
	rentingRepo "hotelier/internal/domains/renting/repository"
	roomModel "hotelier/internal/domains/room/model"
	roomRepo "hotelier/internal/domains/room/repository"
	"hotelier/shared"
	"hotelier/shared/constant"
	gDto "hotelier/shared/dto"
	"hotelier/shared/failure"
	gModel "hotelier/shared/model"
	"hotelier/shared/timezone"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
)

type Booking interface {
	Create(ctx context.Context, req dto.CreateBookingRequest) (dto.BookingResponse, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetBookingsResponse, error)
	ListForCustomer(ctx context.Context) (dto.GetCustomerBookingsResponse, error)
	Convert(ctx context.Context, bookingID string, req dto.ConvertBookingRequest) (rentingDto.RentingResponse, error)
	WalkIn(ctx context.Context, req dto.WalkInRentingRequest) (rentingDto.RentingResponse, error)
}

type serviceImpl struct {
	repo         repository.Booking
	roomRepo     roomRepo.Room
	employeeRepo employeeRepo.Employee
	rentingRepo  rentingRepo.Renting
	paymentRepo  paymentRepo.Payment
	txRunner     postgres.TxRunner
	broker       kafka.Client
	cfg          *config.Config
	otel         otel.Otel
}

func New(
	repo repository.Booking,
	roomRepo roomRepo.Room,
	employeeRepo employeeRepo.Employee,
	rentingRepo rentingRepo.Renting,
	paymentRepo paymentRepo.Payment,
	txRunner postgres.TxRunner,
	broker kafka.Client,
	cfg *config.Config,
	otel otel.Otel,
) Booking {
	return &serviceImpl{
		repo:         repo,
		roomRepo:     roomRepo,
		employeeRepo: employeeRepo,
		rentingRepo:  rentingRepo,
		paymentRepo:  paymentRepo,
		txRunner:     txRunner,
		broker:       broker,
		cfg:          cfg,
		otel:         otel,
	}
}

// Create reserves a room for the calling customer. The room must exist;
// overlapping reservations are not rejected here, availability search is
// the only overlap gate.
func (s *serviceImpl) Create(ctx context.Context, req dto.CreateBookingRequest) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	customerID, ok := ctx.Value(constant.ContextKeyUserID).(string)
	if !ok || customerID == "" {
		return res, failure.Unauthorized("missing customer identity") // nolint:wrapcheck
	}

	roomExists, err := s.roomRepo.Exist(ctx, shared.FilterByRoomKey(req.RoomNumber, req.HotelID, req.CompanyName, roomModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if room exists")

		return res, fmt.Errorf("failed to check if room exists: %w", err)
	}

	if !roomExists {
		return res, failure.BadRequestFromString("room does not exist") // nolint:wrapcheck
	}

	booking, err := req.ToModel(customerID, customerID)
	if err != nil {
		return res, err // nolint:wrapcheck
	}

	if err = s.repo.Insert(ctx, booking); err != nil {
		log.Error().Err(err).Msg("failed to create booking")

		return res, fmt.Errorf("failed to create booking: %w", err)
	}

	s.publishEvent(ctx, dto.BookingEvent{
		Event:       constant.EventBookingCreated,
		BookingID:   booking.BookingID,
		RoomNumber:  booking.RoomNumber,
		HotelID:     booking.HotelID,
		CompanyName: booking.CompanyName,
		CustomerID:  booking.CustomerID,
		OccurredAt:  timezone.Now().Format(constant.DateFormat),
	})

	res.FromModel(booking)

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetBookingsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count bookings")

		return res, fmt.Errorf("failed to count bookings: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get bookings")

		return res, fmt.Errorf("failed to get bookings: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	return res, nil
}

func (s *serviceImpl) ListForCustomer(ctx context.Context) (res dto.GetCustomerBookingsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ListForCustomer")
	defer scope.End()
	defer scope.TraceIfError(err)

	customerID, ok := ctx.Value(constant.ContextKeyUserID).(string)
	if !ok || customerID == "" {
		return res, failure.Unauthorized("missing customer identity") // nolint:wrapcheck
	}

	bookings, err := s.repo.ListForCustomer(ctx, customerID)
	if err != nil {
		log.Error().Err(err).Msg("failed to list bookings for customer")

		return res, fmt.Errorf("failed to list bookings for customer: %w", err)
	}

	res.FromModels(bookings)

	return res, nil
}

// Convert turns a RESERVED booking into a renting. The renting insert,
// the guarded status flip and the optional payment commit or roll back
// together; when the guarded update reports zero rows another conversion
// already won and the caller gets not-found.
func (s *serviceImpl) Convert(ctx context.Context, bookingID string, req dto.ConvertBookingRequest) (res rentingDto.RentingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Convert")
	defer scope.End()
	defer scope.TraceIfError(err)

	if req.Partial() {
		return res, failure.BadRequestFromString("payment_amount and payment_method must be provided together") // nolint:wrapcheck
	}

	booking, err := s.repo.Get(ctx, shared.FilterByID(bookingID, model.FieldBookingID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking")

		return res, fmt.Errorf("failed to get booking: %w", err)
	}

	if booking.BookingID == constant.Empty || booking.Status != constant.BookingStatusReserved {
		return res, failure.NotFound("no reserved booking found") // nolint:wrapcheck
	}

	employee, err := s.resolveEmployee(ctx)
	if err != nil {
		return res, err // nolint:wrapcheck
	}

	if booking.HotelID != employee.HotelID || booking.CompanyName != employee.CompanyName {
		return res, failure.Forbidden("booking belongs to another hotel") // nolint:wrapcheck
	}

	renting := rentingModel.Renting{
		RentalID:     uuid.NewString(),
		BookingID:    &booking.BookingID,
		RoomNumber:   booking.RoomNumber,
		HotelID:      booking.HotelID,
		CompanyName:  booking.CompanyName,
		CustomerID:   booking.CustomerID,
		EmployeeID:   employee.EmployeeID,
		RentalDate:   timezone.Now(),
		CheckoutDate: booking.EndDate,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  employee.EmployeeID,
			ModifiedBy: employee.EmployeeID,
		},
	}

	err = s.txRunner.WithTransaction(ctx, func(tx *sqlx.Tx) error {
		if err := s.rentingRepo.InsertTx(ctx, tx, renting); err != nil {
			return fmt.Errorf("failed to insert renting: %w", err)
		}

		rows, err := s.repo.MarkRentedTx(ctx, tx, booking.BookingID, employee.EmployeeID)
		if err != nil {
			return fmt.Errorf("failed to mark booking as rented: %w", err)
		}

		if rows == 0 {
			// Another conversion committed first.
			return failure.NotFound("no reserved booking found") // nolint:wrapcheck
		}

		if req.Provided() {
			if err := s.insertPaymentTx(ctx, tx, renting.RentalID, employee.EmployeeID, req.PaymentDetails); err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		log.Error().Err(err).Str("booking_id", bookingID).Msg("failed to convert booking")

		return res, err // nolint:wrapcheck
	}

	event := dto.BookingEvent{
		Event:       constant.EventBookingConverted,
		BookingID:   booking.BookingID,
		RentalID:    renting.RentalID,
		RoomNumber:  renting.RoomNumber,
		HotelID:     renting.HotelID,
		CompanyName: renting.CompanyName,
		CustomerID:  renting.CustomerID,
		OccurredAt:  timezone.Now().Format(constant.DateFormat),
	}
	if req.Provided() {
		event.Amount = *req.PaymentAmount
	}

	s.publishEvent(ctx, event)

	res.FromModel(renting)

	return res, nil
}

// WalkIn rents a room directly, with no prior booking. The renting and
// the optional payment commit together.
func (s *serviceImpl) WalkIn(ctx context.Context, req dto.WalkInRentingRequest) (res rentingDto.RentingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".WalkIn")
	defer scope.End()
	defer scope.TraceIfError(err)

	if req.Partial() {
		return res, failure.BadRequestFromString("payment_amount and payment_method must be provided together") // nolint:wrapcheck
	}

	startDate, endDate, err := req.ParseDates()
	if err != nil {
		return res, err // nolint:wrapcheck
	}

	employee, err := s.resolveEmployee(ctx)
	if err != nil {
		return res, err // nolint:wrapcheck
	}

	// The renting lands in the employee's hotel; an explicit hotel key in
	// the body may only confirm that.
	if (req.HotelID != 0 && req.HotelID != employee.HotelID) ||
		(req.CompanyName != "" && req.CompanyName != employee.CompanyName) {
		return res, failure.Forbidden("room belongs to another hotel") // nolint:wrapcheck
	}

	roomExists, err := s.roomRepo.Exist(ctx, shared.FilterByRoomKey(req.RoomNumber, employee.HotelID, employee.CompanyName, roomModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if room exists")

		return res, fmt.Errorf("failed to check if room exists: %w", err)
	}

	if !roomExists {
		return res, failure.BadRequestFromString("room does not exist") // nolint:wrapcheck
	}

	renting := rentingModel.Renting{
		RentalID:     uuid.NewString(),
		BookingID:    nil,
		RoomNumber:   req.RoomNumber,
		HotelID:      employee.HotelID,
		CompanyName:  employee.CompanyName,
		CustomerID:   req.CustomerID,
		EmployeeID:   employee.EmployeeID,
		RentalDate:   startDate,
		CheckoutDate: endDate,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  employee.EmployeeID,
			ModifiedBy: employee.EmployeeID,
		},
	}

	err = s.txRunner.WithTransaction(ctx, func(tx *sqlx.Tx) error {
		if err := s.rentingRepo.InsertTx(ctx, tx, renting); err != nil {
			return fmt.Errorf("failed to insert renting: %w", err)
		}

		if req.Provided() {
			if err := s.insertPaymentTx(ctx, tx, renting.RentalID, employee.EmployeeID, req.PaymentDetails); err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to create walk-in renting")

		return res, err // nolint:wrapcheck
	}

	event := dto.BookingEvent{
		Event:       constant.EventRentingWalkIn,
		RentalID:    renting.RentalID,
		RoomNumber:  renting.RoomNumber,
		HotelID:     renting.HotelID,
		CompanyName: renting.CompanyName,
		CustomerID:  renting.CustomerID,
		OccurredAt:  timezone.Now().Format(constant.DateFormat),
	}
	if req.Provided() {
		event.Amount = *req.PaymentAmount
	}

	s.publishEvent(ctx, event)

	res.FromModel(renting)

	return res, nil
}

func (s *serviceImpl) resolveEmployee(ctx context.Context) (employeeModel.Employee, error) {
	employeeID, ok := ctx.Value(constant.ContextKeyUserID).(string)
	if !ok || employeeID == "" {
		return employeeModel.Employee{}, failure.Unauthorized("missing employee identity") // nolint:wrapcheck
	}

	employee, err := s.employeeRepo.Get(ctx, shared.FilterByID(employeeID, employeeModel.FieldEmployeeID, employeeModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get employee")

		return employeeModel.Employee{}, fmt.Errorf("failed to get employee: %w", err)
	}

	if employee.EmployeeID == constant.Empty {
		return employeeModel.Employee{}, failure.NotFound("employee not found") // nolint:wrapcheck
	}

	return employee, nil
}

func (s *serviceImpl) insertPaymentTx(ctx context.Context, tx *sqlx.Tx, rentalID, user string, details dto.PaymentDetails) error {
	payment := paymentModel.Payment{
		PaymentID: uuid.NewString(),
		RentalID:  rentalID,
		Amount:    *details.PaymentAmount,
		Method:    details.PaymentMethod,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}

	if err := s.paymentRepo.InsertTx(ctx, tx, payment); err != nil {
		return fmt.Errorf("failed to insert payment: %w", err)
	}

	return nil
}

// publishEvent emits a lifecycle event after the write committed.
// Publishing is fire-and-forget; a broker failure never fails the
// request.
func (s *serviceImpl) publishEvent(ctx context.Context, event dto.BookingEvent) {
	go func() {
		c := context.WithoutCancel(ctx)

		msg := kafka.Message{Key: event.Event, Value: event}
		if err := s.broker.SendMessages(c, constant.TopicBookingEvents, msg); err != nil {
			log.Error().Err(err).Str("event", event.Event).Msg("failed to publish booking event")
		}
	}()
}
