package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/lib/pq"

	"transportreports/models"
)

type PostgresLoadingMemoRepo struct {
	DB *sql.DB
}

func NewPostgresLoadingMemoRepo(db *sql.DB) *PostgresLoadingMemoRepo {
	return &PostgresLoadingMemoRepo{DB: db}
}

func (r *PostgresLoadingMemoRepo) GetLoadingMemo(ctx context.Context, ldmNo string) (*models.LoadingMemo, error) {
	var m models.LoadingMemo
	var bookingIDs pq.Int64Array
	err := r.DB.QueryRowContext(ctx, `
		SELECT l.id, l.ldm_no, l.vehicle_no, l.driver_name, l.driver_mobile,
			l.from_branch, l.from_state_code, l.to_branch, l.date,
			l.consolidated_eway_bill_no, l.created_at,
			COALESCE(ARRAY(
				SELECT lb.booking_id FROM loading_memo_booking lb
				WHERE lb.loading_memo_id = l.id ORDER BY lb.booking_id
			), '{}')
		FROM loading_memo l
		WHERE l.ldm_no = $1
	`, ldmNo).Scan(
		&m.ID, &m.LDMNo, &m.VehicleNo, &m.DriverName, &m.DriverMobile,
		&m.FromBranch, &m.FromStateCode, &m.ToBranch, &m.Date,
		&m.ConsolidatedEwayBillNo, &m.CreatedAt, &bookingIDs,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	m.BookingIDs = bookingIDs
	return &m, nil
}
