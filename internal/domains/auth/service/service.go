package service

import (
	"context"
	"fmt"

	"hotelier/config"
	"hotelier/infras/jwt"
	"hotelier/infras/otel"
	"hotelier/internal/domains/auth/model/dto"
	customerModel "hotelier/internal/domains/customer/model"
	customerRepo "hotelier/internal/domains/customer/repository"
	employeeModel "hotelier/internal/domains/employee/model"
	employeeRepo "hotelier/internal/domains/employee/repository"
	hotelModel "hotelier/internal/domains/hotel/model"
	hotelRepo "hotelier/internal/domains/hotel/repository"
	"hotelier/shared"
	"hotelier/shared/constant"
	gDto "hotelier/shared/dto"
	"hotelier/shared/failure"
	"hotelier/shared/password"

	"github.com/rs/zerolog/log"
)

type Auth interface {
	Signup(ctx context.Context, req dto.SignupRequest) error
	Login(ctx context.Context, req dto.LoginRequest) (dto.LoginResponse, error)
	RefreshToken(ctx context.Context, req dto.RefreshTokenRequest) (dto.RefreshTokenResponse, error)
}

type serviceImpl struct {
	customerRepo customerRepo.Customer
	employeeRepo employeeRepo.Employee
	hotelRepo    hotelRepo.Hotel
	cfg          *config.Config
	otel         otel.Otel
	jwtService   jwt.JWT
}

func New(customerRepo customerRepo.Customer, employeeRepo employeeRepo.Employee, hotelRepo hotelRepo.Hotel, cfg *config.Config, otel otel.Otel, jwtService jwt.JWT) Auth {
	return &serviceImpl{
		customerRepo: customerRepo,
		employeeRepo: employeeRepo,
		hotelRepo:    hotelRepo,
		cfg:          cfg,
		otel:         otel,
		jwtService:   jwtService,
	}
}

func (s *serviceImpl) Signup(ctx context.Context, req dto.SignupRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Signup")
	defer scope.End()
	defer scope.TraceIfError(err)

	switch req.UserType {
	case constant.RoleCustomer:
		return s.signupCustomer(ctx, req)
	case constant.RoleEmployee:
		return s.signupEmployee(ctx, req)
	default:
		return failure.BadRequestFromString("user_type must be customer or employee") // nolint:wrapcheck
	}
}

func (s *serviceImpl) signupCustomer(ctx context.Context, req dto.SignupRequest) error {
	emailFilter := emailFilter(req.Email, customerModel.FieldEmail, customerModel.TableName)

	exists, err := s.customerRepo.Exist(ctx, emailFilter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if customer exists")

		return fmt.Errorf("failed to check if customer exists: %w", err)
	}

	if exists {
		return failure.BadRequestFromString("email already registered") // nolint:wrapcheck
	}

	hashedPassword, err := password.Hash(req.Password)
	if err != nil {
		log.Error().Err(err).Msg("failed to hash password")

		return fmt.Errorf("failed to hash password: %w", err)
	}

	if err = s.customerRepo.Insert(ctx, req.ToCustomerModel(hashedPassword)); err != nil {
		log.Error().Err(err).Msg("failed to create customer")

		return fmt.Errorf("failed to create customer: %w", err)
	}

	return nil
}

func (s *serviceImpl) signupEmployee(ctx context.Context, req dto.SignupRequest) error {
	if req.HotelID == 0 || req.CompanyName == "" {
		return failure.BadRequestFromString("hotel_id and company_name are required for employees") // nolint:wrapcheck
	}

	hotelExists, err := s.hotelRepo.Exist(ctx, shared.FilterByHotelKey(req.HotelID, req.CompanyName, hotelModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if hotel exists")

		return fmt.Errorf("failed to check if hotel exists: %w", err)
	}

	if !hotelExists {
		return failure.BadRequestFromString("hotel does not exist") // nolint:wrapcheck
	}

	emailFilter := emailFilter(req.Email, employeeModel.FieldEmail, employeeModel.TableName)

	exists, err := s.employeeRepo.Exist(ctx, emailFilter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if employee exists")

		return fmt.Errorf("failed to check if employee exists: %w", err)
	}

	if exists {
		return failure.BadRequestFromString("email already registered") // nolint:wrapcheck
	}

	hashedPassword, err := password.Hash(req.Password)
	if err != nil {
		log.Error().Err(err).Msg("failed to hash password")

		return fmt.Errorf("failed to hash password: %w", err)
	}

	if err = s.employeeRepo.Insert(ctx, req.ToEmployeeModel(hashedPassword)); err != nil {
		log.Error().Err(err).Msg("failed to create employee")

		return fmt.Errorf("failed to create employee: %w", err)
	}

	return nil
}

func (s *serviceImpl) Login(ctx context.Context, req dto.LoginRequest) (res dto.LoginResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Login")
	defer scope.End()
	defer scope.TraceIfError(err)

	var identity jwt.Identity

	switch req.UserType {
	case constant.RoleCustomer:
		customer, err := s.customerRepo.Get(ctx, emailFilter(req.Email, customerModel.FieldEmail, customerModel.TableName))
		if err != nil {
			log.Error().Err(err).Msg("failed to get customer")

			return res, fmt.Errorf("failed to get customer: %w", err)
		}

		if customer.CustomerID == constant.Empty {
			log.Warn().Str("email", req.Email).Msg("login attempt with non-existent email")

			return res, failure.Unauthorized("invalid email or password") // nolint:wrapcheck
		}

		if err := password.Verify(req.Password, customer.Password); err != nil {
			log.Warn().Str("email", req.Email).Msg("login attempt with wrong password")

			return res, failure.Unauthorized("invalid email or password") // nolint:wrapcheck
		}

		identity = jwt.Identity{
			UserID: customer.CustomerID,
			Email:  customer.Email,
			Role:   constant.RoleCustomer,
		}
	case constant.RoleEmployee:
		employee, err := s.employeeRepo.Get(ctx, emailFilter(req.Email, employeeModel.FieldEmail, employeeModel.TableName))
		if err != nil {
			log.Error().Err(err).Msg("failed to get employee")

			return res, fmt.Errorf("failed to get employee: %w", err)
		}

		if employee.EmployeeID == constant.Empty {
			log.Warn().Str("email", req.Email).Msg("login attempt with non-existent email")

			return res, failure.Unauthorized("invalid email or password") // nolint:wrapcheck
		}

		if err := password.Verify(req.Password, employee.Password); err != nil {
			log.Warn().Str("email", req.Email).Msg("login attempt with wrong password")

			return res, failure.Unauthorized("invalid email or password") // nolint:wrapcheck
		}

		identity = jwt.Identity{
			UserID:      employee.EmployeeID,
			Email:       employee.Email,
			Role:        constant.RoleEmployee,
			HotelID:     employee.HotelID,
			CompanyName: employee.CompanyName,
		}
	default:
		return res, failure.BadRequestFromString("user_type must be customer or employee") // nolint:wrapcheck
	}

	tokenPair, err := s.jwtService.GenerateTokenPair(identity)
	if err != nil {
		log.Error().Err(err).Msg("failed to generate tokens")

		return res, fmt.Errorf("failed to generate tokens: %w", err)
	}

	res.FromTokenPair(tokenPair, req.UserType)

	return res, nil
}

func (s *serviceImpl) RefreshToken(ctx context.Context, req dto.RefreshTokenRequest) (res dto.RefreshTokenResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".RefreshToken")
	defer scope.End()
	defer scope.TraceIfError(err)

	tokenPair, err := s.jwtService.RefreshTokens(req.RefreshToken)
	if err != nil {
		log.Warn().Err(err).Msg("failed to refresh tokens")

		return res, failure.Unauthorized("invalid refresh token") // nolint:wrapcheck
	}

	res.FromTokenPair(tokenPair)

	return res, nil
}

func emailFilter(email, field, table string) gDto.FilterGroup {
	return gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    field,
				Operator: gDto.FilterOperatorEq,
				Value:    email,
				Table:    table,
			},
		},
	}
}
