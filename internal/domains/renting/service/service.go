package service

import (
	"context"
	"fmt"

	"hotelier/infras/otel"
	"hotelier/internal/domains/renting/model/dto"
	"hotelier/internal/domains/renting/repository"
	"hotelier/shared/constant"
	"hotelier/shared/failure"

	"github.com/rs/zerolog/log"
)

type Renting interface {
	ListForEmployee(ctx context.Context) (dto.GetEmployeeRentalsResponse, error)
}

type serviceImpl struct {
	repo repository.Renting
	otel otel.Otel
}

func New(repo repository.Renting, otel otel.Otel) Renting {
	return &serviceImpl{
		repo: repo,
		otel: otel,
	}
}

// ListForEmployee returns the rentals processed by the calling employee,
// newest first.
func (s *serviceImpl) ListForEmployee(ctx context.Context) (res dto.GetEmployeeRentalsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ListForEmployee")
	defer scope.End()
	defer scope.TraceIfError(err)

	employeeID, ok := ctx.Value(constant.ContextKeyUserID).(string)
	if !ok || employeeID == "" {
		return res, failure.Unauthorized("missing employee identity") // nolint:wrapcheck
	}

	rentals, err := s.repo.ListForEmployee(ctx, employeeID)
	if err != nil {
		log.Error().Err(err).Msg("failed to list rentals for employee")

		return res, fmt.Errorf("failed to list rentals for employee: %w", err)
	}

	res.FromModels(rentals)

	return res, nil
}
