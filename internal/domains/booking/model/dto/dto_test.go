package dto_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"hotelier/internal/domains/booking/model/dto"
	"hotelier/shared/constant"
	"hotelier/shared/failure"
	"hotelier/shared/validator"
)

func floatPtr(f float64) *float64 {
	return &f
}

func TestCreateBookingRequest_ToModel(t *testing.T) {
	tests := []struct {
		name      string
		req       dto.CreateBookingRequest
		wantErr   bool
	}{
		{
			name: "valid range",
			req: dto.CreateBookingRequest{
				RoomNumber:  101,
				HotelID:     3,
				CompanyName: "Marriott",
				StartDate:   "2026-09-01",
				EndDate:     "2026-09-04",
			},
		},
		{
			name: "malformed start date",
			req: dto.CreateBookingRequest{
				StartDate: "01-09-2026",
				EndDate:   "2026-09-04",
			},
			wantErr: true,
		},
		{
			name: "malformed end date",
			req: dto.CreateBookingRequest{
				StartDate: "2026-09-01",
				EndDate:   "September 4th",
			},
			wantErr: true,
		},
		{
			name: "zero length range",
			req: dto.CreateBookingRequest{
				StartDate: "2026-09-01",
				EndDate:   "2026-09-01",
			},
			wantErr: true,
		},
		{
			name: "end before start",
			req: dto.CreateBookingRequest{
				StartDate: "2026-09-04",
				EndDate:   "2026-09-01",
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			booking, err := tt.req.ToModel("customer-1", "customer-1")

			if tt.wantErr {
				assert.Error(t, err)
				assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))

				return
			}

			assert.NoError(t, err)
			assert.NotEmpty(t, booking.BookingID)
			assert.Equal(t, constant.BookingStatusReserved, booking.Status)
			assert.Equal(t, "customer-1", booking.CustomerID)
			assert.True(t, booking.EndDate.After(booking.StartDate))
		})
	}
}

func TestPaymentDetails(t *testing.T) {
	tests := []struct {
		name         string
		details      dto.PaymentDetails
		wantProvided bool
		wantPartial  bool
	}{
		{
			name:    "neither field set",
			details: dto.PaymentDetails{},
		},
		{
			name: "both fields set",
			details: dto.PaymentDetails{
				PaymentAmount: floatPtr(450),
				PaymentMethod: constant.PaymentMethodCredit,
			},
			wantProvided: true,
		},
		{
			name: "amount only",
			details: dto.PaymentDetails{
				PaymentAmount: floatPtr(450),
			},
			wantPartial: true,
		},
		{
			name: "method only",
			details: dto.PaymentDetails{
				PaymentMethod: constant.PaymentMethodCash,
			},
			wantPartial: true,
		},
		{
			name: "zero amount with method still counts",
			details: dto.PaymentDetails{
				PaymentAmount: floatPtr(0),
				PaymentMethod: constant.PaymentMethodDebit,
			},
			wantProvided: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantProvided, tt.details.Provided())
			assert.Equal(t, tt.wantPartial, tt.details.Partial())
		})
	}
}

func TestWalkInRentingRequest_Validation(t *testing.T) {
	// The hotel key is resolved from the calling employee, so a body
	// without one must validate.
	req := dto.WalkInRentingRequest{
		RoomNumber: 101,
		CustomerID: "7b8a1c9e-2f3d-4e5a-9b6c-1d2e3f4a5b6c",
		StartDate:  "2026-09-01",
		EndDate:    "2026-09-03",
	}

	assert.NoError(t, validator.ValidateStruct(&req))
}

func TestWalkInRentingRequest_ParseDates(t *testing.T) {
	req := dto.WalkInRentingRequest{
		StartDate: "2026-09-01",
		EndDate:   "2026-09-03",
	}

	start, end, err := req.ParseDates()

	assert.NoError(t, err)
	assert.Equal(t, "2026-09-01", start.Format(constant.DateOnlyFormat))
	assert.Equal(t, "2026-09-03", end.Format(constant.DateOnlyFormat))

	req.EndDate = "2026-09-01"

	_, _, err = req.ParseDates()

	assert.Error(t, err)
	assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
}
