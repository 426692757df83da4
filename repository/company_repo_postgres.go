package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	"transportreports/models"
)

type PostgresCompanyRepo struct {
	DB *sql.DB
}

func NewPostgresCompanyRepo(db *sql.DB) *PostgresCompanyRepo {
	return &PostgresCompanyRepo{DB: db}
}

// SaveCompany inserts or updates the letterhead
func (r *PostgresCompanyRepo) SaveCompany(ctx context.Context, c *models.Company) error {
	if c.CreatedAt.IsZero() {
		c.CreatedAt = time.Now().UTC()
	}

	// mobile is stored as JSONB
	mobileJSON, err := json.Marshal(c.Mobile)
	if err != nil {
		return err
	}

	// If ID is passed → UPDATE, else INSERT
	if c.ID > 0 {
		_, err = r.DB.ExecContext(ctx, `
			UPDATE company
			SET name=$1, gstin=$2, address=$3, city=$4, state=$5,
				pincode=$6, mobile=$7, footnote=$8
			WHERE id=$9
		`, c.Name, c.GSTIN, c.Address, c.City, c.State,
			c.Pincode, mobileJSON, c.Footnote, c.ID)
		return err
	}
	return r.DB.QueryRowContext(ctx, `
		INSERT INTO company (name, gstin, address, city, state, pincode, mobile, footnote, created_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)
		RETURNING id
	`, c.Name, c.GSTIN, c.Address, c.City, c.State,
		c.Pincode, mobileJSON, c.Footnote, c.CreatedAt).Scan(&c.ID)
}

// GetCompany fetches the latest letterhead
func (r *PostgresCompanyRepo) GetCompany(ctx context.Context) (*models.Company, error) {
	c := &models.Company{}
	var mobileJSON []byte

	err := r.DB.QueryRowContext(ctx, `
		SELECT id, name, address, city, state, pincode, gstin, footnote, mobile, created_at
		FROM company
		ORDER BY id DESC LIMIT 1
	`).Scan(&c.ID, &c.Name, &c.Address, &c.City, &c.State,
		&c.Pincode, &c.GSTIN, &c.Footnote, &mobileJSON, &c.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	if len(mobileJSON) > 0 {
		if err := json.Unmarshal(mobileJSON, &c.Mobile); err != nil {
			return nil, err
		}
	}
	return c, nil
}
