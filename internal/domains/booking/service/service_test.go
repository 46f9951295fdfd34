package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/jmoiron/sqlx"
	kafkaGo "github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"hotelier/config"
	"hotelier/infras/kafka"
	"hotelier/infras/otel/mocks"
	bookingMocks "hotelier/internal/domains/booking/mocks"
	"hotelier/internal/domains/booking/model"
	"hotelier/internal/domains/booking/model/dto"
	"hotelier/internal/domains/booking/service"
	employeeMocks "hotelier/internal/domains/employee/mocks"
	employeeModel "hotelier/internal/domains/employee/model"
	paymentMocks "hotelier/internal/domains/payment/mocks"
	rentingMocks "hotelier/internal/domains/renting/mocks"
	roomMocks "hotelier/internal/domains/room/mocks"
	"hotelier/shared/constant"
	"hotelier/shared/failure"
)

// silentBroker swallows lifecycle events so publishing never races the
// mock controller.
type silentBroker struct{}

func (b *silentBroker) SendMessages(_ context.Context, _ string, _ ...kafka.Message) error {
	return nil
}

func (b *silentBroker) Consume(_ context.Context, _, _ string, _ func(message kafkaGo.Message)) {
}

func (b *silentBroker) Reader(_, _ string) *kafkaGo.Reader {
	return nil
}

// passthroughTxRunner runs the transactional function with a nil tx so
// repository mocks see the same call shape as production code.
type passthroughTxRunner struct{}

func (r *passthroughTxRunner) WithTransaction(_ context.Context, fn func(tx *sqlx.Tx) error) error {
	return fn(nil)
}

type bookingServiceMocks struct {
	repo     *bookingMocks.MockBooking
	room     *roomMocks.MockRoom
	employee *employeeMocks.MockEmployee
	renting  *rentingMocks.MockRenting
	payment  *paymentMocks.MockPayment
}

func newBookingService(t *testing.T) (service.Booking, bookingServiceMocks) {
	t.Helper()

	ctrl := gomock.NewController(t)

	m := bookingServiceMocks{
		repo:     bookingMocks.NewMockBooking(ctrl),
		room:     roomMocks.NewMockRoom(ctrl),
		employee: employeeMocks.NewMockEmployee(ctrl),
		renting:  rentingMocks.NewMockRenting(ctrl),
		payment:  paymentMocks.NewMockPayment(ctrl),
	}

	svc := service.New(
		m.repo,
		m.room,
		m.employee,
		m.renting,
		m.payment,
		&passthroughTxRunner{},
		&silentBroker{},
		&config.Config{},
		mocks.NewOtel(),
	)

	return svc, m
}

func customerContext(customerID string) context.Context {
	return context.WithValue(context.Background(), constant.ContextKeyUserID, customerID)
}

func employeeContext(employeeID string) context.Context {
	return context.WithValue(context.Background(), constant.ContextKeyUserID, employeeID)
}

func floatPtr(f float64) *float64 {
	return &f
}

func reservedBooking() model.Booking {
	return model.Booking{
		BookingID:   "booking-1",
		RoomNumber:  101,
		HotelID:     3,
		CompanyName: "Marriott",
		CustomerID:  "customer-1",
		StartDate:   time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC),
		EndDate:     time.Date(2026, 9, 4, 0, 0, 0, 0, time.UTC),
		Status:      constant.BookingStatusReserved,
	}
}

func hotelEmployee() employeeModel.Employee {
	return employeeModel.Employee{
		EmployeeID:  "employee-1",
		HotelID:     3,
		CompanyName: "Marriott",
	}
}

func TestBookingService_Create(t *testing.T) {
	validReq := dto.CreateBookingRequest{
		RoomNumber:  101,
		HotelID:     3,
		CompanyName: "Marriott",
		StartDate:   "2026-09-01",
		EndDate:     "2026-09-04",
	}

	tests := []struct {
		name      string
		ctx       context.Context
		req       dto.CreateBookingRequest
		setupMock func(m bookingServiceMocks)
		wantErr   bool
		wantCode  int
	}{
		{
			name: "successful booking",
			ctx:  customerContext("customer-1"),
			req:  validReq,
			setupMock: func(m bookingServiceMocks) {
				m.room.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)

				m.repo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(nil)
			},
		},
		{
			name:      "missing customer identity",
			ctx:       context.Background(),
			req:       validReq,
			setupMock: func(m bookingServiceMocks) {},
			wantErr:   true,
			wantCode:  http.StatusUnauthorized,
		},
		{
			name: "room does not exist",
			ctx:  customerContext("customer-1"),
			req:  validReq,
			setupMock: func(m bookingServiceMocks) {
				m.room.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, nil)
			},
			wantErr:  true,
			wantCode: http.StatusBadRequest,
		},
		{
			name: "end date not after start date",
			ctx:  customerContext("customer-1"),
			req: dto.CreateBookingRequest{
				RoomNumber:  101,
				HotelID:     3,
				CompanyName: "Marriott",
				StartDate:   "2026-09-04",
				EndDate:     "2026-09-04",
			},
			setupMock: func(m bookingServiceMocks) {
				m.room.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)
			},
			wantErr:  true,
			wantCode: http.StatusBadRequest,
		},
		{
			name: "room lookup error",
			ctx:  customerContext("customer-1"),
			req:  validReq,
			setupMock: func(m bookingServiceMocks) {
				m.room.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, errors.New("db error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, m := newBookingService(t)
			tt.setupMock(m)

			res, err := svc.Create(tt.ctx, tt.req)

			if tt.wantErr {
				assert.Error(t, err)

				if tt.wantCode != 0 {
					assert.Equal(t, tt.wantCode, failure.GetCode(err))
				}

				return
			}

			assert.NoError(t, err)
			assert.NotEmpty(t, res.BookingID)
			assert.Equal(t, constant.BookingStatusReserved, res.Status)
			assert.Equal(t, "customer-1", res.CustomerID)
			assert.Equal(t, "2026-09-01", res.StartDate)
			assert.Equal(t, "2026-09-04", res.EndDate)
		})
	}
}

func TestBookingService_Convert(t *testing.T) {
	tests := []struct {
		name      string
		ctx       context.Context
		req       dto.ConvertBookingRequest
		setupMock func(m bookingServiceMocks)
		wantErr   bool
		wantCode  int
	}{
		{
			name: "successful conversion without payment",
			ctx:  employeeContext("employee-1"),
			req:  dto.ConvertBookingRequest{},
			setupMock: func(m bookingServiceMocks) {
				m.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(reservedBooking(), nil)

				m.employee.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(hotelEmployee(), nil)

				m.renting.EXPECT().
					InsertTx(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)

				m.repo.EXPECT().
					MarkRentedTx(gomock.Any(), gomock.Any(), "booking-1", "employee-1").
					Return(int64(1), nil)
			},
		},
		{
			name: "successful conversion with payment",
			ctx:  employeeContext("employee-1"),
			req: dto.ConvertBookingRequest{
				PaymentDetails: dto.PaymentDetails{
					PaymentAmount: floatPtr(450),
					PaymentMethod: constant.PaymentMethodCredit,
				},
			},
			setupMock: func(m bookingServiceMocks) {
				m.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(reservedBooking(), nil)

				m.employee.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(hotelEmployee(), nil)

				m.renting.EXPECT().
					InsertTx(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)

				m.repo.EXPECT().
					MarkRentedTx(gomock.Any(), gomock.Any(), "booking-1", "employee-1").
					Return(int64(1), nil)

				m.payment.EXPECT().
					InsertTx(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)
			},
		},
		{
			name: "partial payment rejected",
			ctx:  employeeContext("employee-1"),
			req: dto.ConvertBookingRequest{
				PaymentDetails: dto.PaymentDetails{
					PaymentAmount: floatPtr(450),
				},
			},
			setupMock: func(m bookingServiceMocks) {},
			wantErr:   true,
			wantCode:  http.StatusBadRequest,
		},
		{
			name: "booking not found",
			ctx:  employeeContext("employee-1"),
			req:  dto.ConvertBookingRequest{},
			setupMock: func(m bookingServiceMocks) {
				m.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Booking{}, nil)
			},
			wantErr:  true,
			wantCode: http.StatusNotFound,
		},
		{
			name: "booking already rented",
			ctx:  employeeContext("employee-1"),
			req:  dto.ConvertBookingRequest{},
			setupMock: func(m bookingServiceMocks) {
				booking := reservedBooking()
				booking.Status = constant.BookingStatusRented

				m.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(booking, nil)
			},
			wantErr:  true,
			wantCode: http.StatusNotFound,
		},
		{
			name: "booking belongs to another hotel",
			ctx:  employeeContext("employee-1"),
			req:  dto.ConvertBookingRequest{},
			setupMock: func(m bookingServiceMocks) {
				m.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(reservedBooking(), nil)

				employee := hotelEmployee()
				employee.HotelID = 9

				m.employee.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(employee, nil)
			},
			wantErr:  true,
			wantCode: http.StatusForbidden,
		},
		{
			name: "employee not found",
			ctx:  employeeContext("employee-1"),
			req:  dto.ConvertBookingRequest{},
			setupMock: func(m bookingServiceMocks) {
				m.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(reservedBooking(), nil)

				m.employee.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(employeeModel.Employee{}, nil)
			},
			wantErr:  true,
			wantCode: http.StatusNotFound,
		},
		{
			name: "concurrent conversion already won",
			ctx:  employeeContext("employee-1"),
			req:  dto.ConvertBookingRequest{},
			setupMock: func(m bookingServiceMocks) {
				m.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(reservedBooking(), nil)

				m.employee.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(hotelEmployee(), nil)

				m.renting.EXPECT().
					InsertTx(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)

				m.repo.EXPECT().
					MarkRentedTx(gomock.Any(), gomock.Any(), "booking-1", "employee-1").
					Return(int64(0), nil)
			},
			wantErr:  true,
			wantCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, m := newBookingService(t)
			tt.setupMock(m)

			res, err := svc.Convert(tt.ctx, "booking-1", tt.req)

			if tt.wantErr {
				assert.Error(t, err)

				if tt.wantCode != 0 {
					assert.Equal(t, tt.wantCode, failure.GetCode(err))
				}

				return
			}

			assert.NoError(t, err)
			assert.NotEmpty(t, res.RentalID)

			if assert.NotNil(t, res.BookingID) {
				assert.Equal(t, "booking-1", *res.BookingID)
			}

			assert.Equal(t, "employee-1", res.EmployeeID)
			assert.Equal(t, "customer-1", res.CustomerID)

			// Round trip: the renting checks out when the booking would have ended.
			assert.Equal(t, "2026-09-04", res.CheckoutDate)
		})
	}
}

func TestBookingService_WalkIn(t *testing.T) {
	validReq := dto.WalkInRentingRequest{
		RoomNumber:  101,
		HotelID:     3,
		CompanyName: "Marriott",
		CustomerID:  "customer-1",
		StartDate:   "2026-09-01",
		EndDate:     "2026-09-03",
	}

	tests := []struct {
		name      string
		ctx       context.Context
		req       dto.WalkInRentingRequest
		setupMock func(m bookingServiceMocks)
		wantErr   bool
		wantCode  int
	}{
		{
			name: "successful walk-in without payment",
			ctx:  employeeContext("employee-1"),
			req:  validReq,
			setupMock: func(m bookingServiceMocks) {
				m.employee.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(hotelEmployee(), nil)

				m.room.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)

				m.renting.EXPECT().
					InsertTx(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)
			},
		},
		{
			name: "successful walk-in with payment",
			ctx:  employeeContext("employee-1"),
			req: func() dto.WalkInRentingRequest {
				req := validReq
				req.PaymentAmount = floatPtr(300)
				req.PaymentMethod = constant.PaymentMethodCash

				return req
			}(),
			setupMock: func(m bookingServiceMocks) {
				m.employee.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(hotelEmployee(), nil)

				m.room.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)

				m.renting.EXPECT().
					InsertTx(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)

				m.payment.EXPECT().
					InsertTx(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)
			},
		},
		{
			name: "partial payment rejected",
			ctx:  employeeContext("employee-1"),
			req: func() dto.WalkInRentingRequest {
				req := validReq
				req.PaymentMethod = constant.PaymentMethodCash

				return req
			}(),
			setupMock: func(m bookingServiceMocks) {},
			wantErr:   true,
			wantCode:  http.StatusBadRequest,
		},
		{
			name: "room in another hotel",
			ctx:  employeeContext("employee-1"),
			req: func() dto.WalkInRentingRequest {
				req := validReq
				req.HotelID = 9

				return req
			}(),
			setupMock: func(m bookingServiceMocks) {
				m.employee.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(hotelEmployee(), nil)
			},
			wantErr:  true,
			wantCode: http.StatusForbidden,
		},
		{
			name: "room does not exist",
			ctx:  employeeContext("employee-1"),
			req:  validReq,
			setupMock: func(m bookingServiceMocks) {
				m.employee.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(hotelEmployee(), nil)

				m.room.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, nil)
			},
			wantErr:  true,
			wantCode: http.StatusBadRequest,
		},
		{
			name: "invalid date range",
			ctx:  employeeContext("employee-1"),
			req: func() dto.WalkInRentingRequest {
				req := validReq
				req.EndDate = "2026-09-01"

				return req
			}(),
			setupMock: func(m bookingServiceMocks) {},
			wantErr:   true,
			wantCode:  http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, m := newBookingService(t)
			tt.setupMock(m)

			res, err := svc.WalkIn(tt.ctx, tt.req)

			if tt.wantErr {
				assert.Error(t, err)

				if tt.wantCode != 0 {
					assert.Equal(t, tt.wantCode, failure.GetCode(err))
				}

				return
			}

			assert.NoError(t, err)
			assert.NotEmpty(t, res.RentalID)
			assert.Nil(t, res.BookingID)
			assert.Equal(t, "2026-09-01", res.RentalDate)
			assert.Equal(t, "2026-09-03", res.CheckoutDate)
		})
	}

	t.Run("hotel key comes from the employee", func(t *testing.T) {
		svc, m := newBookingService(t)

		req := validReq
		req.HotelID = 0
		req.CompanyName = ""

		m.employee.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(hotelEmployee(), nil)

		m.room.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(true, nil)

		m.renting.EXPECT().
			InsertTx(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil)

		res, err := svc.WalkIn(employeeContext("employee-1"), req)

		assert.NoError(t, err)
		assert.Equal(t, 3, res.HotelID)
		assert.Equal(t, "Marriott", res.CompanyName)
	})
}

func TestBookingService_ListForCustomer(t *testing.T) {
	t.Run("missing identity", func(t *testing.T) {
		svc, _ := newBookingService(t)

		_, err := svc.ListForCustomer(context.Background())

		assert.Error(t, err)
		assert.Equal(t, http.StatusUnauthorized, failure.GetCode(err))
	})

	t.Run("returns customer bookings", func(t *testing.T) {
		svc, m := newBookingService(t)

		m.repo.EXPECT().
			ListForCustomer(gomock.Any(), "customer-1").
			Return([]model.CustomerBooking{
				{
					BookingID:   "booking-1",
					RoomNumber:  101,
					HotelID:     3,
					CompanyName: "Marriott",
					Price:       150,
					City:        "Ottawa",
					StartDate:   time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC),
					EndDate:     time.Date(2026, 9, 4, 0, 0, 0, 0, time.UTC),
					Status:      constant.BookingStatusReserved,
				},
			}, nil)

		res, err := svc.ListForCustomer(customerContext("customer-1"))

		assert.NoError(t, err)
		assert.Equal(t, 1, res.TotalData)
		assert.Equal(t, "Ottawa", res.Bookings[0].City)
		assert.Equal(t, "2026-09-01", res.Bookings[0].StartDate)
	})
}
