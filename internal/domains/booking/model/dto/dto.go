package dto

import (
	"time"

	"hotelier/internal/domains/booking/model"
	"hotelier/shared"
	"hotelier/shared/constant"
	gDto "hotelier/shared/dto"
	"hotelier/shared/failure"
	gModel "hotelier/shared/model"
	"hotelier/shared/timezone"

	"github.com/google/uuid"
)

type CreateBookingRequest struct {
	RoomNumber  int    `json:"room_number"  validate:"required,gte=1"`
	HotelID     int    `json:"hotel_id"     validate:"required,gte=1"`
	CompanyName string `json:"company_name" validate:"required,max=100"`
	StartDate   string `json:"start_date"   validate:"required"`
	EndDate     string `json:"end_date"     validate:"required"`
}

func (c *CreateBookingRequest) ToModel(customerID, user string) (model.Booking, error) {
	startDate, err := time.Parse(constant.DateOnlyFormat, c.StartDate)
	if err != nil {
		return model.Booking{}, failure.BadRequestFromString("invalid start_date format, expected YYYY-MM-DD")
	}

	endDate, err := time.Parse(constant.DateOnlyFormat, c.EndDate)
	if err != nil {
		return model.Booking{}, failure.BadRequestFromString("invalid end_date format, expected YYYY-MM-DD")
	}

	if !endDate.After(startDate) {
		return model.Booking{}, failure.BadRequestFromString("end_date must be after start_date")
	}

	return model.Booking{
		BookingID:   uuid.NewString(),
		RoomNumber:  c.RoomNumber,
		HotelID:     c.HotelID,
		CompanyName: c.CompanyName,
		CustomerID:  customerID,
		StartDate:   startDate,
		EndDate:     endDate,
		Status:      constant.BookingStatusReserved,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}, nil
}

// PaymentDetails is the optional payment slice of a conversion or
// walk-in. Amount and Method come together or not at all.
type PaymentDetails struct {
	PaymentAmount *float64 `json:"payment_amount" validate:"omitempty,gte=0"`
	PaymentMethod string   `json:"payment_method" validate:"omitempty,oneof=cash credit debit"`
}

// Provided reports whether both payment fields are present.
func (p *PaymentDetails) Provided() bool {
	return p.PaymentAmount != nil && p.PaymentMethod != ""
}

// Partial reports whether exactly one of the two payment fields is set.
func (p *PaymentDetails) Partial() bool {
	return (p.PaymentAmount != nil) != (p.PaymentMethod != "")
}

type ConvertBookingRequest struct {
	PaymentDetails
}

// WalkInRentingRequest opens a renting with no prior booking. The hotel
// key comes from the calling employee; a body that carries one anyway
// must match it.
type WalkInRentingRequest struct {
	RoomNumber  int    `json:"room_number"  validate:"required,gte=1"`
	HotelID     int    `json:"hotel_id"     validate:"omitempty,gte=1"`
	CompanyName string `json:"company_name" validate:"omitempty,max=100"`
	CustomerID  string `json:"customer_id"  validate:"required,uuid"`
	StartDate   string `json:"start_date"   validate:"required"`
	EndDate     string `json:"end_date"     validate:"required"`
	PaymentDetails
}

func (w *WalkInRentingRequest) ParseDates() (start, end time.Time, err error) {
	start, err = time.Parse(constant.DateOnlyFormat, w.StartDate)
	if err != nil {
		return start, end, failure.BadRequestFromString("invalid start_date format, expected YYYY-MM-DD")
	}

	end, err = time.Parse(constant.DateOnlyFormat, w.EndDate)
	if err != nil {
		return start, end, failure.BadRequestFromString("invalid end_date format, expected YYYY-MM-DD")
	}

	if !end.After(start) {
		return start, end, failure.BadRequestFromString("end_date must be after start_date")
	}

	return start, end, nil
}

type BookingResponse struct {
	BookingID   string `json:"booking_id"`
	RoomNumber  int    `json:"room_number"`
	HotelID     int    `json:"hotel_id"`
	CompanyName string `json:"company_name"`
	CustomerID  string `json:"customer_id"`
	StartDate   string `json:"start_date"`
	EndDate     string `json:"end_date"`
	Status      string `json:"status"`
	gDto.Metadata
}

func (r *BookingResponse) FromModel(model model.Booking) {
	r.BookingID = model.BookingID
	r.RoomNumber = model.RoomNumber
	r.HotelID = model.HotelID
	r.CompanyName = model.CompanyName
	r.CustomerID = model.CustomerID
	r.StartDate = model.StartDate.Format(constant.DateOnlyFormat)
	r.EndDate = model.EndDate.Format(constant.DateOnlyFormat)
	r.Status = model.Status
	r.Metadata.FromModel(model.Metadata)
}

type GetBookingsResponse struct {
	Bookings  []BookingResponse `json:"bookings"`
	TotalPage int               `json:"total_page"`
	TotalData int               `json:"total_data"`
}

func (r *GetBookingsResponse) FromModels(models []model.Booking, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Bookings = make([]BookingResponse, len(models))
	for i, mod := range models {
		r.Bookings[i].FromModel(mod)
	}
}

type CustomerBookingResponse struct {
	BookingID   string  `json:"booking_id"`
	RoomNumber  int     `json:"room_number"`
	HotelID     int     `json:"hotel_id"`
	CompanyName string  `json:"company_name"`
	Price       float64 `json:"price"`
	City        string  `json:"city"`
	StartDate   string  `json:"start_date"`
	EndDate     string  `json:"end_date"`
	Status      string  `json:"status"`
}

func (r *CustomerBookingResponse) FromModel(model model.CustomerBooking) {
	r.BookingID = model.BookingID
	r.RoomNumber = model.RoomNumber
	r.HotelID = model.HotelID
	r.CompanyName = model.CompanyName
	r.Price = model.Price
	r.City = model.City
	r.StartDate = model.StartDate.Format(constant.DateOnlyFormat)
	r.EndDate = model.EndDate.Format(constant.DateOnlyFormat)
	r.Status = model.Status
}

type GetCustomerBookingsResponse struct {
	Bookings  []CustomerBookingResponse `json:"bookings"`
	TotalData int                       `json:"total_data"`
}

func (r *GetCustomerBookingsResponse) FromModels(models []model.CustomerBooking) {
	r.TotalData = len(models)

	r.Bookings = make([]CustomerBookingResponse, len(models))
	for i, mod := range models {
		r.Bookings[i].FromModel(mod)
	}
}

// BookingEvent is the lifecycle payload published to the event stream.
type BookingEvent struct {
	Event       string  `json:"event"`
	BookingID   string  `json:"booking_id,omitempty"`
	RentalID    string  `json:"rental_id,omitempty"`
	RoomNumber  int     `json:"room_number"`
	HotelID     int     `json:"hotel_id"`
	CompanyName string  `json:"company_name"`
	CustomerID  string  `json:"customer_id"`
	OccurredAt  string  `json:"occurred_at"`
	Amount      float64 `json:"amount,omitempty"`
}
