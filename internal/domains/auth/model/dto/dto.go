package dto

import (
	"hotelier/infras/jwt"
	customerModel "hotelier/internal/domains/customer/model"
	employeeModel "hotelier/internal/domains/employee/model"
	gModel "hotelier/shared/model"
	"hotelier/shared/timezone"

	"github.com/google/uuid"
)

type SignupRequest struct {
	UserType  string `json:"user_type"  validate:"required,oneof=customer employee"`
	Email     string `json:"email"      validate:"required,email,max=100"`
	Password  string `json:"password"   validate:"required,min=8,max=72"`
	FirstName string `json:"first_name" validate:"required,max=100"`
	LastName  string `json:"last_name"  validate:"required,max=100"`
	Address   string `json:"address"    validate:"omitempty,max=200"`

	// Customer identification.
	IDType   string `json:"id_type"   validate:"omitempty,max=50"`
	IDNumber string `json:"id_number" validate:"omitempty,max=50"`

	// Employee fields.
	SIN         string `json:"sin"          validate:"omitempty,max=20"`
	HotelID     int    `json:"hotel_id"     validate:"omitempty,gte=1"`
	CompanyName string `json:"company_name" validate:"omitempty,max=100"`
}

func (r *SignupRequest) ToCustomerModel(hashedPassword string) customerModel.Customer {
	id := uuid.NewString()

	return customerModel.Customer{
		CustomerID:       id,
		FirstName:        r.FirstName,
		LastName:         r.LastName,
		Address:          r.Address,
		IDType:           r.IDType,
		IDNumber:         r.IDNumber,
		Email:            r.Email,
		Password:         hashedPassword,
		RegistrationDate: timezone.Now(),
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  id,
			ModifiedBy: id,
		},
	}
}

func (r *SignupRequest) ToEmployeeModel(hashedPassword string) employeeModel.Employee {
	id := uuid.NewString()

	return employeeModel.Employee{
		EmployeeID:  id,
		HotelID:     r.HotelID,
		CompanyName: r.CompanyName,
		FirstName:   r.FirstName,
		LastName:    r.LastName,
		Address:     r.Address,
		SIN:         r.SIN,
		Email:       r.Email,
		Password:    hashedPassword,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  id,
			ModifiedBy: id,
		},
	}
}

type LoginRequest struct {
	UserType string `json:"user_type" validate:"required,oneof=customer employee"`
	Email    string `json:"email"     validate:"required,email"`
	Password string `json:"password"  validate:"required"`
}

type LoginResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	TokenType    string `json:"token_type"`
	ExpiresIn    int64  `json:"expires_in"`
	UserType     string `json:"user_type"`
}

func (r *LoginResponse) FromTokenPair(pair *jwt.TokenPair, userType string) {
	r.AccessToken = pair.AccessToken
	r.RefreshToken = pair.RefreshToken
	r.TokenType = pair.TokenType
	r.ExpiresIn = pair.ExpiresIn
	r.UserType = userType
}

type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

type RefreshTokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	TokenType    string `json:"token_type"`
	ExpiresIn    int64  `json:"expires_in"`
}

func (r *RefreshTokenResponse) FromTokenPair(pair *jwt.TokenPair) {
	r.AccessToken = pair.AccessToken
	r.RefreshToken = pair.RefreshToken
	r.TokenType = pair.TokenType
	r.ExpiresIn = pair.ExpiresIn
}
