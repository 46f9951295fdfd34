package dto

import (
	"hotelier/internal/domains/renting/model"
	"hotelier/shared/constant"
	gDto "hotelier/shared/dto"
)

type RentingResponse struct {
	RentalID     string  `json:"rental_id"`
	BookingID    *string `json:"booking_id,omitempty"`
	RoomNumber   int     `json:"room_number"`
	HotelID      int     `json:"hotel_id"`
	CompanyName  string  `json:"company_name"`
	CustomerID   string  `json:"customer_id"`
	EmployeeID   string  `json:"employee_id"`
	RentalDate   string  `json:"rental_date"`
	CheckoutDate string  `json:"checkout_date"`
	gDto.Metadata
}

func (r *RentingResponse) FromModel(model model.Renting) {
	r.RentalID = model.RentalID
	r.BookingID = model.BookingID
	r.RoomNumber = model.RoomNumber
	r.HotelID = model.HotelID
	r.CompanyName = model.CompanyName
	r.CustomerID = model.CustomerID
	r.EmployeeID = model.EmployeeID
	r.RentalDate = model.RentalDate.Format(constant.DateOnlyFormat)
	r.CheckoutDate = model.CheckoutDate.Format(constant.DateOnlyFormat)
	r.Metadata.FromModel(model.Metadata)
}

type EmployeeRentalResponse struct {
	RentalID          string  `json:"rental_id"`
	BookingID         *string `json:"booking_id,omitempty"`
	RoomNumber        int     `json:"room_number"`
	HotelID           int     `json:"hotel_id"`
	CompanyName       string  `json:"company_name"`
	CustomerID        string  `json:"customer_id"`
	CustomerFirstName string  `json:"customer_first_name"`
	CustomerLastName  string  `json:"customer_last_name"`
	City              string  `json:"city"`
	RentalDate        string  `json:"rental_date"`
	CheckoutDate      string  `json:"checkout_date"`
}

func (r *EmployeeRentalResponse) FromModel(model model.EmployeeRental) {
	r.RentalID = model.RentalID
	r.BookingID = model.BookingID
	r.RoomNumber = model.RoomNumber
	r.HotelID = model.HotelID
	r.CompanyName = model.CompanyName
	r.CustomerID = model.CustomerID
	r.CustomerFirstName = model.CustomerFirstName
	r.CustomerLastName = model.CustomerLastName
	r.City = model.City
	r.RentalDate = model.RentalDate.Format(constant.DateOnlyFormat)
	r.CheckoutDate = model.CheckoutDate.Format(constant.DateOnlyFormat)
}

type GetEmployeeRentalsResponse struct {
	Rentals   []EmployeeRentalResponse `json:"rentals"`
	TotalData int                      `json:"total_data"`
}

func (r *GetEmployeeRentalsResponse) FromModels(models []model.EmployeeRental) {
	r.TotalData = len(models)

	r.Rentals = make([]EmployeeRentalResponse, len(models))
	for i, mod := range models {
		r.Rentals[i].FromModel(mod)
	}
}
