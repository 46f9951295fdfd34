package dto

import (
	"time"

	"hotelier/internal/domains/room/model"
	"hotelier/internal/domains/room/repository"
	"hotelier/shared"
	"hotelier/shared/constant"
	gDto "hotelier/shared/dto"
	"hotelier/shared/failure"
	gModel "hotelier/shared/model"
	"hotelier/shared/timezone"
)

type CreateRoomRequest struct {
	RoomNumber  int     `json:"room_number"  validate:"required,gte=1"`
	HotelID     int     `json:"hotel_id"     validate:"required,gte=1"`
	CompanyName string  `json:"company_name" validate:"required,max=100"`
	Price       float64 `json:"price"        validate:"required,gte=0"`
	Capacity    string  `json:"capacity"     validate:"required,max=50"`
	ViewType    string  `json:"view_type"    validate:"omitempty,max=50"`
	Expandable  bool    `json:"expandable"   validate:"omitempty"`
}

func (c *CreateRoomRequest) ToModel(user string) model.Room {
	return model.Room{
		RoomNumber:  c.RoomNumber,
		HotelID:     c.HotelID,
		CompanyName: c.CompanyName,
		Price:       c.Price,
		Capacity:    c.Capacity,
		ViewType:    c.ViewType,
		Expandable:  c.Expandable,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdateRoomPriceRequest struct {
	RoomNumber  int     `json:"room_number"  validate:"required,gte=1"`
	HotelID     int     `json:"hotel_id"     validate:"required,gte=1"`
	CompanyName string  `json:"company_name" validate:"required"`
	Price       float64 `db:"price"          json:"price" validate:"required,gte=0"`
}

type UpdateRoomCapacityRequest struct {
	RoomNumber  int    `json:"room_number"  validate:"required,gte=1"`
	HotelID     int    `json:"hotel_id"     validate:"required,gte=1"`
	CompanyName string `json:"company_name" validate:"required"`
	Capacity    string `db:"capacity"       json:"capacity" validate:"required,max=50"`
}

type UpdateRoomViewTypeRequest struct {
	RoomNumber  int    `json:"room_number"  validate:"required,gte=1"`
	HotelID     int    `json:"hotel_id"     validate:"required,gte=1"`
	CompanyName string `json:"company_name" validate:"required"`
	ViewType    string `db:"view_type"      json:"view_type" validate:"required,max=50"`
}

type DeleteRoomRequest struct {
	RoomNumber  int    `json:"room_number"  validate:"required,gte=1"`
	HotelID     int    `json:"hotel_id"     validate:"required,gte=1"`
	CompanyName string `json:"company_name" validate:"required"`
}

// AvailabilityRequest carries the room search query. Every filter is
// optional; the YYYY-MM-DD dates come as a pair, and without them the
// search imposes no booking constraint.
type AvailabilityRequest struct {
	StartDate   string  `json:"start_date"   validate:"omitempty"`
	EndDate     string  `json:"end_date"     validate:"omitempty"`
	Capacity    string  `json:"capacity"     validate:"omitempty,max=50"`
	City        string  `json:"city"         validate:"omitempty,max=100"`
	CompanyName string  `json:"company_name" validate:"omitempty,max=100"`
	Category    int     `json:"category"     validate:"omitempty,gte=1,lte=5"`
	TotalRooms  int     `json:"total_rooms"  validate:"omitempty,gte=1"`
	MinPrice    float64 `json:"min_price"    validate:"omitempty,gte=0"`
	MaxPrice    float64 `json:"max_price"    validate:"omitempty,gte=0"`
}

func (a *AvailabilityRequest) ToCriteria() (repository.AvailabilityCriteria, error) {
	var startDate, endDate time.Time

	if (a.StartDate == "") != (a.EndDate == "") {
		return repository.AvailabilityCriteria{}, failure.BadRequestFromString("start_date and end_date must be provided together")
	}

	if a.StartDate != "" {
		var err error

		startDate, err = time.Parse(constant.DateOnlyFormat, a.StartDate)
		if err != nil {
			return repository.AvailabilityCriteria{}, failure.BadRequestFromString("invalid start_date format, expected YYYY-MM-DD")
		}

		endDate, err = time.Parse(constant.DateOnlyFormat, a.EndDate)
		if err != nil {
			return repository.AvailabilityCriteria{}, failure.BadRequestFromString("invalid end_date format, expected YYYY-MM-DD")
		}

		if !endDate.After(startDate) {
			return repository.AvailabilityCriteria{}, failure.BadRequestFromString("end_date must be after start_date")
		}
	}

	return repository.AvailabilityCriteria{
		StartDate:   startDate,
		EndDate:     endDate,
		Capacity:    a.Capacity,
		City:        a.City,
		CompanyName: a.CompanyName,
		Category:    a.Category,
		TotalRooms:  a.TotalRooms,
		MinPrice:    a.MinPrice,
		MaxPrice:    a.MaxPrice,
	}, nil
}

type RoomResponse struct {
	RoomNumber  int     `json:"room_number"`
	HotelID     int     `json:"hotel_id"`
	CompanyName string  `json:"company_name"`
	Price       float64 `json:"price"`
	Capacity    string  `json:"capacity"`
	ViewType    string  `json:"view_type"`
	Expandable  bool    `json:"expandable"`
	gDto.Metadata
}

func (r *RoomResponse) FromModel(model model.Room) {
	r.RoomNumber = model.RoomNumber
	r.HotelID = model.HotelID
	r.CompanyName = model.CompanyName
	r.Price = model.Price
	r.Capacity = model.Capacity
	r.ViewType = model.ViewType
	r.Expandable = model.Expandable
	r.Metadata.FromModel(model.Metadata)
}

type GetRoomsResponse struct {
	Rooms     []RoomResponse `json:"rooms"`
	TotalPage int            `json:"total_page"`
	TotalData int            `json:"total_data"`
}

func (r *GetRoomsResponse) FromModels(models []model.Room, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Rooms = make([]RoomResponse, len(models))
	for i, mod := range models {
		r.Rooms[i].FromModel(mod)
	}
}

type AvailableRoomResponse struct {
	RoomNumber    int     `json:"room_number"`
	HotelID       int     `json:"hotel_id"`
	CompanyName   string  `json:"company_name"`
	Price         float64 `json:"price"`
	Capacity      string  `json:"capacity"`
	ViewType      string  `json:"view_type"`
	Expandable    bool    `json:"expandable"`
	City          string  `json:"city"`
	Category      int     `json:"category"`
	NumberOfRooms int     `json:"number_of_rooms"`
}

func (r *AvailableRoomResponse) FromModel(model model.AvailableRoom) {
	r.RoomNumber = model.RoomNumber
	r.HotelID = model.HotelID
	r.CompanyName = model.CompanyName
	r.Price = model.Price
	r.Capacity = model.Capacity
	r.ViewType = model.ViewType
	r.Expandable = model.Expandable
	r.City = model.City
	r.Category = model.Category
	r.NumberOfRooms = model.NumberOfRooms
}

type GetAvailableRoomsResponse struct {
	Rooms     []AvailableRoomResponse `json:"rooms"`
	TotalData int                     `json:"total_data"`
}

func (r *GetAvailableRoomsResponse) FromModels(models []model.AvailableRoom) {
	r.TotalData = len(models)

	r.Rooms = make([]AvailableRoomResponse, len(models))
	for i, mod := range models {
		r.Rooms[i].FromModel(mod)
	}
}
