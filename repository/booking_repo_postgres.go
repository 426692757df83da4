package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/lib/pq"

	"transportreports/models"
)

type PostgresBookingRepo struct {
	DB *sql.DB
}

func NewPostgresBookingRepo(db *sql.DB) *PostgresBookingRepo {
	return &PostgresBookingRepo{DB: db}
}

const bookingSelect = `
	SELECT
		b.id, b.lr_number,
		b.from_branch_id, fb.name,
		b.to_branch_id, tb.name,
		b.booking_date, b.private_mark, b.payment_type, b.grand_total, b.eway_bill_no
	FROM booking b
	JOIN branch fb ON fb.id = b.from_branch_id
	JOIN branch tb ON tb.id = b.to_branch_id
`

// buildBookingQuery turns a filter into SQL and its positional arguments.
func buildBookingQuery(f BookingFilter) (string, []any) {
	var where []string
	var args []any
	add := func(cond string, v any) {
		args = append(args, v)
		where = append(where, fmt.Sprintf(cond, len(args)))
	}

	if f.LDMNo != "" {
		add(`b.id IN (
			SELECT lb.booking_id FROM loading_memo_booking lb
			JOIN loading_memo l ON l.id = lb.loading_memo_id
			WHERE l.ldm_no = $%d)`, f.LDMNo)
	}
	if f.FromBranchID != 0 {
		add("b.from_branch_id = $%d", f.FromBranchID)
	}
	if f.ToBranchID != 0 {
		add("b.to_branch_id = $%d", f.ToBranchID)
	}
	if !f.From.IsZero() {
		add("b.booking_date >= $%d", f.From)
	}
	if !f.To.IsZero() {
		add("b.booking_date <= $%d", f.To)
	}

	query := bookingSelect
	if len(where) > 0 {
		query += " WHERE " + strings.Join(where, " AND ")
	}
	return query + " ORDER BY b.id", args
}

func (r *PostgresBookingRepo) GetBookings(ctx context.Context, filter BookingFilter) ([]models.Booking, error) {
	query, args := buildBookingQuery(filter)
	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []models.Booking
	for rows.Next() {
		var b models.Booking
		if err := rows.Scan(
			&b.ID, &b.LRNumber,
			&b.FromBranchID, &b.FromBranchName,
			&b.ToBranchID, &b.ToBranchName,
			&b.BookingDate, &b.PrivateMark, &b.PaymentType, &b.GrandTotal, &b.EwayBillNo,
		); err != nil {
			return nil, err
		}
		result = append(result, b)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(result) == 0 {
		return result, nil
	}

	// Load all details in one go (to avoid N+1)
	ids := make([]int64, len(result))
	for i, b := range result {
		ids[i] = b.ID
	}
	details, err := r.getDetails(ctx, ids)
	if err != nil {
		return nil, err
	}
	for i := range result {
		result[i].Details = details[result[i].ID]
	}
	return result, nil
}

func (r *PostgresBookingRepo) getDetails(ctx context.Context, bookingIDs []int64) (map[int64][]models.BookingDetail, error) {
	rows, err := r.DB.QueryContext(ctx, `
		SELECT id, booking_id, article, weight, charge_weight, goods_type, shape
		FROM booking_detail
		WHERE booking_id = ANY($1)
		ORDER BY id
	`, pq.Array(bookingIDs))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make(map[int64][]models.BookingDetail)
	for rows.Next() {
		var d models.BookingDetail
		if err := rows.Scan(&d.ID, &d.BookingID, &d.Article, &d.Weight, &d.ChargeWeight, &d.GoodsType, &d.Shape); err != nil {
			return nil, err
		}
		out[d.BookingID] = append(out[d.BookingID], d)
	}
	return out, rows.Err()
}
