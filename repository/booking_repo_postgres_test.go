package repository

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestBuildBookingQueryNoFilter(t *testing.T) {
	query, args := buildBookingQuery(BookingFilter{})
	assert.NotContains(t, query, "WHERE")
	assert.True(t, strings.HasSuffix(query, "ORDER BY b.id"))
	assert.Empty(t, args)
}

func TestBuildBookingQueryNumbersPlaceholders(t *testing.T) {
	from := time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, 4, 30, 0, 0, 0, 0, time.UTC)
	query, args := buildBookingQuery(BookingFilter{
		LDMNo:      "LDM-7",
		ToBranchID: 4,
		From:       from,
		To:         to,
	})

	assert.Contains(t, query, "l.ldm_no = $1")
	assert.Contains(t, query, "b.to_branch_id = $2")
	assert.Contains(t, query, "b.booking_date >= $3")
	assert.Contains(t, query, "b.booking_date <= $4")
	assert.NotContains(t, query, "from_branch_id = $")
	assert.Equal(t, []any{"LDM-7", int64(4), from, to}, args)
}
