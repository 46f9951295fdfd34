package dto_test

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"hotelier/internal/domains/room/model/dto"
	"hotelier/shared/failure"
	"hotelier/shared/validator"
)

func TestAvailabilityRequest_ToCriteria(t *testing.T) {
	tests := []struct {
		name    string
		req     dto.AvailabilityRequest
		wantErr bool
	}{
		{
			name: "dates only",
			req: dto.AvailabilityRequest{
				StartDate: "2026-09-01",
				EndDate:   "2026-09-04",
			},
		},
		{
			name: "all filters",
			req: dto.AvailabilityRequest{
				StartDate:   "2026-09-01",
				EndDate:     "2026-09-04",
				Capacity:    "double",
				City:        "Ottawa",
				CompanyName: "Marriott",
				Category:    4,
				TotalRooms:  50,
				MinPrice:    100,
				MaxPrice:    400,
			},
		},
		{
			name: "malformed start date",
			req: dto.AvailabilityRequest{
				StartDate: "next tuesday",
				EndDate:   "2026-09-04",
			},
			wantErr: true,
		},
		{
			name: "end date not after start date",
			req: dto.AvailabilityRequest{
				StartDate: "2026-09-04",
				EndDate:   "2026-09-04",
			},
			wantErr: true,
		},
		{
			name: "start date without end date",
			req: dto.AvailabilityRequest{
				StartDate: "2026-09-01",
			},
			wantErr: true,
		},
		{
			name: "end date without start date",
			req: dto.AvailabilityRequest{
				EndDate: "2026-09-04",
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			criteria, err := tt.req.ToCriteria()

			if tt.wantErr {
				assert.Error(t, err)
				assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC), criteria.StartDate)
			assert.Equal(t, time.Date(2026, 9, 4, 0, 0, 0, 0, time.UTC), criteria.EndDate)
			assert.Equal(t, tt.req.City, criteria.City)
			assert.Equal(t, tt.req.Category, criteria.Category)
		})
	}

	t.Run("no dates imposes no window", func(t *testing.T) {
		criteria, err := (&dto.AvailabilityRequest{City: "Ottawa"}).ToCriteria()

		assert.NoError(t, err)
		assert.True(t, criteria.StartDate.IsZero())
		assert.True(t, criteria.EndDate.IsZero())
		assert.Equal(t, "Ottawa", criteria.City)
	})
}

func TestAvailabilityRequest_Validation(t *testing.T) {
	// Every filter is optional; a city-only search must pass validation.
	req := dto.AvailabilityRequest{City: "Ottawa"}
	assert.NoError(t, validator.ValidateStruct(&req))

	empty := dto.AvailabilityRequest{}
	assert.NoError(t, validator.ValidateStruct(&empty))
}
