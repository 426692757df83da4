package repository

import (
	"context"

	"transportreports/models"
)

type CompanyRepository interface {
	SaveCompany(ctx context.Context, company *models.Company) error
	GetCompany(ctx context.Context) (*models.Company, error)
}
