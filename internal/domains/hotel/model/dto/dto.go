package dto

import (
	"hotelier/internal/domains/hotel/model"
	"hotelier/shared"
	gDto "hotelier/shared/dto"
	gModel "hotelier/shared/model"
	"hotelier/shared/timezone"
)

type CreateHotelRequest struct {
	HotelID       int    `json:"hotel_id"        validate:"required,gte=1"`
	CompanyName   string `json:"company_name"    validate:"required,max=100"`
	Category      int    `json:"category"        validate:"required,gte=1,lte=5"`
	NumberOfRooms int    `json:"number_of_rooms" validate:"required,gte=1"`
	StreetNumber  string `json:"street_number"   validate:"omitempty,max=20"`
	StreetName    string `json:"street_name"     validate:"omitempty,max=100"`
	AptNumber     string `json:"apt_number"      validate:"omitempty,max=20"`
	City          string `json:"city"            validate:"required,max=100"`
	State         string `json:"state"           validate:"omitempty,max=100"`
	PostalCode    string `json:"postal_code"     validate:"omitempty,max=20"`
}

func (c *CreateHotelRequest) ToModel(user string) model.Hotel {
	return model.Hotel{
		HotelID:       c.HotelID,
		CompanyName:   c.CompanyName,
		Category:      c.Category,
		NumberOfRooms: c.NumberOfRooms,
		StreetNumber:  c.StreetNumber,
		StreetName:    c.StreetName,
		AptNumber:     c.AptNumber,
		City:          c.City,
		State:         c.State,
		PostalCode:    c.PostalCode,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdateHotelCategoryRequest struct {
	HotelID     int    `json:"hotel_id"     validate:"required,gte=1"`
	CompanyName string `json:"company_name" validate:"required"`
	Category    int    `db:"category"       json:"category" validate:"required,gte=1,lte=5"`
}

type DeleteHotelRequest struct {
	HotelID     int    `json:"hotel_id"     validate:"required,gte=1"`
	CompanyName string `json:"company_name" validate:"required"`
}

type HotelResponse struct {
	HotelID       int    `json:"hotel_id"`
	CompanyName   string `json:"company_name"`
	Category      int    `json:"category"`
	NumberOfRooms int    `json:"number_of_rooms"`
	StreetNumber  string `json:"street_number"`
	StreetName    string `json:"street_name"`
	AptNumber     string `json:"apt_number"`
	City          string `json:"city"`
	State         string `json:"state"`
	PostalCode    string `json:"postal_code"`
	gDto.Metadata
}

func (r *HotelResponse) FromModel(model model.Hotel) {
	r.HotelID = model.HotelID
	r.CompanyName = model.CompanyName
	r.Category = model.Category
	r.NumberOfRooms = model.NumberOfRooms
	r.StreetNumber = model.StreetNumber
	r.StreetName = model.StreetName
	r.AptNumber = model.AptNumber
	r.City = model.City
	r.State = model.State
	r.PostalCode = model.PostalCode
	r.Metadata.FromModel(model.Metadata)
}

type GetHotelsResponse struct {
	Hotels    []HotelResponse `json:"hotels"`
	TotalPage int             `json:"total_page"`
	TotalData int             `json:"total_data"`
}

func (r *GetHotelsResponse) FromModels(models []model.Hotel, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Hotels = make([]HotelResponse, len(models))
	for i, mod := range models {
		r.Hotels[i].FromModel(mod)
	}
}
