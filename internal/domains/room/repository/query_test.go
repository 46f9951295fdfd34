package repository

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestBuildAvailabilityQuery(t *testing.T) {
	window := AvailabilityCriteria{
		StartDate: time.Date(2026, 6, 3, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2026, 6, 10, 0, 0, 0, 0, time.UTC),
	}

	t.Run("date window applies the half-open overlap predicate", func(t *testing.T) {
		query, args := buildAvailabilityQuery(window)

		// end_date <= start means the booking is over before the stay
		// begins; start_date >= end means it begins after checkout.
		// Everything else blocks the room.
		assert.Contains(t, query, "NOT (b.end_date <= :start_date OR b.start_date >= :end_date)")
		assert.Equal(t, window.StartDate, args["start_date"])
		assert.Equal(t, window.EndDate, args["end_date"])
	})

	t.Run("absent dates impose no booking constraint", func(t *testing.T) {
		query, args := buildAvailabilityQuery(AvailabilityCriteria{City: "Ottawa"})

		assert.NotContains(t, query, "bookings")
		assert.NotContains(t, args, "start_date")
		assert.Contains(t, query, "h.city ILIKE :city")
	})

	t.Run("no filters at all selects every room", func(t *testing.T) {
		query, args := buildAvailabilityQuery(AvailabilityCriteria{})

		assert.Contains(t, query, "WHERE TRUE")
		assert.Empty(t, args)
	})

	t.Run("filters are conjunctive", func(t *testing.T) {
		criteria := window
		criteria.City = "Ottawa"
		criteria.Category = 4
		criteria.MinPrice = 100

		query, args := buildAvailabilityQuery(criteria)

		assert.Contains(t, query, "h.city ILIKE :city")
		assert.Contains(t, query, "h.category = :category")
		assert.Contains(t, query, "r.price >= :min_price")
		assert.Equal(t, "%Ottawa%", args["city"])
		assert.Equal(t, 4, args["category"])
	})
}

// TestOverlapBoundaries walks the predicate's comparisons over a booking
// of room 101 for 2026-06-01 through 2026-06-05: a stay starting the day
// that booking ends must not conflict.
func TestOverlapBoundaries(t *testing.T) {
	bookingStart := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)
	bookingEnd := time.Date(2026, 6, 5, 0, 0, 0, 0, time.UTC)

	// Same comparisons the SQL predicate performs, expressed over
	// time.Time: blocked unless the booking ends on or before the
	// requested start, or starts on or after the requested end.
	blocks := func(start, end time.Time) bool {
		return !(!bookingEnd.After(start) || !bookingStart.Before(end))
	}

	tests := []struct {
		name    string
		start   string
		end     string
		blocked bool
	}{
		{name: "window overlapping the middle", start: "2026-06-03", end: "2026-06-10", blocked: true},
		{name: "window starting at checkout", start: "2026-06-05", end: "2026-06-10", blocked: false},
		{name: "window ending at check-in", start: "2026-05-20", end: "2026-06-01", blocked: false},
		{name: "window inside the booking", start: "2026-06-02", end: "2026-06-04", blocked: true},
		{name: "window containing the booking", start: "2026-05-30", end: "2026-06-08", blocked: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, err := time.Parse(time.DateOnly, tt.start)
			assert.NoError(t, err)
			end, err := time.Parse(time.DateOnly, tt.end)
			assert.NoError(t, err)

			assert.Equal(t, tt.blocked, blocks(start, end))
		})
	}
}
