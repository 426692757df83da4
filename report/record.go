package report

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"transportreports/models"
)

// Record is a booking prepared for reporting: a stable sequence number used to
// correlate row selection with bookings, and the LR number parsed once.
type Record struct {
	*models.Booking
	Seq int   `json:"seq"`
	LR  int64 `json:"lr"`
}

// Articles is the article count over the record's detail lines.
func (r Record) Articles() int {
	n := 0
	for _, d := range r.Details {
		n += d.Article
	}
	return n
}

func (r Record) Weight() decimal.Decimal {
	sum := decimal.Zero
	for _, d := range r.Details {
		sum = sum.Add(d.Weight)
	}
	return sum
}

func (r Record) ChargeWeight() decimal.Decimal {
	sum := decimal.Zero
	for _, d := range r.Details {
		sum = sum.Add(d.ChargeWeight)
	}
	return sum
}

// InvalidLRError lists the bookings whose LR number is not an integer.
type InvalidLRError struct {
	LRNumbers []string
}

func (e *InvalidLRError) Error() string {
	quoted := make([]string, len(e.LRNumbers))
	for i, lr := range e.LRNumbers {
		quoted[i] = strconv.Quote(lr)
	}
	return fmt.Sprintf("invalid LR number(s): %s", strings.Join(quoted, ", "))
}

// IndexRecords assigns sequence numbers starting at base (0 or 1) in input order
// and parses every LR number. All malformed LR numbers are reported together.
func IndexRecords(bookings []models.Booking, base int) ([]Record, error) {
	records := make([]Record, 0, len(bookings))
	var bad []string
	for i := range bookings {
		lr, err := ParseLRNumber(bookings[i].LRNumber)
		if err != nil {
			bad = append(bad, bookings[i].LRNumber)
			continue
		}
		records = append(records, Record{Booking: &bookings[i], Seq: base + i, LR: lr})
	}
	if len(bad) > 0 {
		return nil, &InvalidLRError{LRNumbers: bad}
	}
	return records, nil
}

// ParseLRNumber parses a document number that may arrive as text.
func ParseLRNumber(s string) (int64, error) {
	return strconv.ParseInt(strings.TrimSpace(s), 10, 64)
}
