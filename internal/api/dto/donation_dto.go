package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/spec-kit/adoptafacil/internal/domain"
)

// DonationSaveRequest payload for POST /Donation/save. donationDate is optional and
// defaults to the time of registration.
type DonationSaveRequest struct {
	DonorID             *int64           `json:"idDonor" validate:"required,gt=0"`
	ShelterID           *int64           `json:"idShelter" validate:"required,gt=0"`
	Amount              *decimal.Decimal `json:"amount" validate:"required"`
	DonationType        string           `json:"donationType" validate:"required"`
	DonationDate        *time.Time       `json:"donationDate"`
	DonationDescription string           `json:"donationDescription"`
}

func (r DonationSaveRequest) ToDomain() (*domain.Donation, error) {
	if err := Validate(r); err != nil {
		return nil, err
	}
	donationType, err := domain.ParseDonationType(r.DonationType)
	if err != nil {
		return nil, err
	}
	donation, err := domain.NewDonation(*r.DonorID, *r.ShelterID, *r.Amount, donationType, r.DonationDescription)
	if err != nil {
		return nil, err
	}
	if r.DonationDate != nil {
		donation.DonationDate = *r.DonationDate
	}
	return donation, nil
}

type DonationResponse struct {
	ID                  int64     `json:"idDonation"`
	DonorID             int64     `json:"idDonor"`
	ShelterID           int64     `json:"idShelter"`
	Amount              string    `json:"amount"`
	DonationType        string    `json:"donationType"`
	DonationDate        time.Time `json:"donationDate"`
	DonationDescription *string   `json:"donationDescription"`
}

func NewDonationResponse(d domain.Donation) DonationResponse {
	resp := DonationResponse{
		ID:           d.ID,
		DonorID:      d.DonorID,
		ShelterID:    d.ShelterID,
		Amount:       domain.FormatMoney(d.Amount),
		DonationType: d.DonationType.String(),
		DonationDate: d.DonationDate,
	}
	if d.DonationDescription != "" {
		description := d.DonationDescription
		resp.DonationDescription = &description
	}
	return resp
}

func NewDonationResponses(donations []domain.Donation) []DonationResponse {
	out := make([]DonationResponse, 0, len(donations))
	for _, d := range donations {
		out = append(out, NewDonationResponse(d))
	}
	return out
}

// DonationTypeStatsResponse is one entry of DonationStatsResponse.ByType.
type DonationTypeStatsResponse struct {
	Count       int    `json:"count"`
	TotalAmount string `json:"totalAmount"`
}

type MonthlyDonationResponse struct {
	Month       int    `json:"month"`
	TotalAmount string `json:"totalAmount"`
}

type DonationStatsResponse struct {
	Count            int                                  `json:"count"`
	TotalAmount      string                               `json:"totalAmount"`
	ByType           map[string]DonationTypeStatsResponse `json:"byType"`
	RecentDonations  []DonationResponse                   `json:"recentDonations"`
	MonthlyDonations []MonthlyDonationResponse            `json:"monthlyDonations"`
}

func NewDonationStatsResponse(s domain.DonationStats) DonationStatsResponse {
	byType := make(map[string]DonationTypeStatsResponse, len(s.ByType))
	for t, ts := range s.ByType {
		byType[t.String()] = DonationTypeStatsResponse{Count: ts.Count, TotalAmount: domain.FormatMoney(ts.TotalAmount)}
	}
	monthly := make([]MonthlyDonationResponse, 0, len(s.Monthly))
	for _, m := range s.Monthly {
		monthly = append(monthly, MonthlyDonationResponse{Month: int(m.Month), TotalAmount: domain.FormatMoney(m.TotalAmount)})
	}
	return DonationStatsResponse{
		Count:            s.Count,
		TotalAmount:      domain.FormatMoney(s.TotalAmount),
		ByType:           byType,
		RecentDonations:  NewDonationResponses(s.Recent),
		MonthlyDonations: monthly,
	}
}
