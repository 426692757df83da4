package repository

import (
	"context"

	"transportreports/models"
)

// ReportRepository provides methods to fetch everything a printed report needs
type ReportRepository struct {
	Bookings BookingRepository
	Memos    LoadingMemoRepository
	Company  CompanyRepository
}

func NewReportRepository(bookings BookingRepository, memos LoadingMemoRepository, company CompanyRepository) *ReportRepository {
	return &ReportRepository{
		Bookings: bookings,
		Memos:    memos,
		Company:  company,
	}
}

// GetReportInput fetches the bookings for filter, the memo header when the
// filter names one, and the letterhead.
func (r *ReportRepository) GetReportInput(ctx context.Context, filter BookingFilter) ([]models.Booking, *models.LoadingMemo, *models.Company, error) {
	var memo *models.LoadingMemo
	if filter.LDMNo != "" {
		var err error
		memo, err = r.Memos.GetLoadingMemo(ctx, filter.LDMNo)
		if err != nil {
			return nil, nil, nil, err
		}
	}

	bookings, err := r.Bookings.GetBookings(ctx, filter)
	if err != nil {
		return nil, nil, nil, err
	}

	company, err := r.Company.GetCompany(ctx)
	if err != nil {
		return nil, nil, nil, err
	}
	return bookings, memo, company, nil
}
