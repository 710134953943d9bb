package domain

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	apperrors "github.com/spec-kit/adoptafacil/pkg/util/errorutil"
)

// Donation is an immutable contribution from a user to a shelter.
// DonationDate is written once on insert.
type Donation struct {
	ID                  int64
	DonorID             int64
	ShelterID           int64
	Amount              decimal.Decimal
	DonationType        DonationType
	DonationDate        time.Time
	DonationDescription string
}

// NewDonation builds a Donation dated now unless a date is set later.
func NewDonation(donorID, shelterID int64, amount decimal.Decimal, donationType DonationType, description string) (*Donation, error) {
	d := &Donation{
		DonorID:             donorID,
		ShelterID:           shelterID,
		Amount:              amount,
		DonationType:        donationType,
		DonationDescription: description,
	}
	if err := d.CheckRequired(); err != nil {
		return nil, err
	}
	return d, nil
}

func (d *Donation) CheckRequired() error {
	var missing []string
	if d.DonorID == 0 {
		missing = append(missing, "idDonor")
	}
	if d.ShelterID == 0 {
		missing = append(missing, "idShelter")
	}
	if d.DonationType == "" {
		missing = append(missing, "donationType")
	}
	if len(missing) > 0 {
		return apperrors.NewMissingRequiredField(missing...)
	}
	if !d.DonationType.IsValid() {
		return apperrors.NewInvalidEnumValue("donationType", string(d.DonationType), names(DonationTypes))
	}
	if d.DonorID < 0 || d.ShelterID < 0 {
		return apperrors.NewInvalidValue("idDonor and idShelter must be positive", nil)
	}
	if d.Amount.IsNegative() {
		return apperrors.NewInvalidValue("amount must not be negative",
			map[string]any{"field": "amount", "value": d.Amount.String()})
	}
	return ValidateMoney("amount", d.Amount)
}

// RecentDonationsLimit caps DonationStats.Recent.
const RecentDonationsLimit = 5

// DonationStats summarizes stored donations. Recent holds the latest
// donations, newest first; Monthly holds the totals of the current year's
// months that received donations, in calendar order.
type DonationStats struct {
	Count       int
	TotalAmount decimal.Decimal
	ByType      map[DonationType]DonationTypeStats
	Recent      []Donation
	Monthly     []MonthlyDonationTotal
}

type MonthlyDonationTotal struct {
	Month       time.Month
	TotalAmount decimal.Decimal
}

type DonationTypeStats struct {
	Count       int
	TotalAmount decimal.Decimal
}

// SummarizeDonations aggregates donations with exact decimal sums. now fixes
// the year used for the monthly breakdown.
func SummarizeDonations(donations []Donation, now time.Time) DonationStats {
	stats := DonationStats{
		TotalAmount: decimal.Zero,
		ByType:      make(map[DonationType]DonationTypeStats, len(DonationTypes)),
	}
	for _, t := range DonationTypes {
		stats.ByType[t] = DonationTypeStats{TotalAmount: decimal.Zero}
	}
	for _, d := range donations {
		stats.Count++
		stats.TotalAmount = stats.TotalAmount.Add(d.Amount)
		ts := stats.ByType[d.DonationType]
		ts.Count++
		ts.TotalAmount = ts.TotalAmount.Add(d.Amount)
		stats.ByType[d.DonationType] = ts
	}
	stats.Recent = recentDonations(donations, RecentDonationsLimit)
	stats.Monthly = monthlyTotals(donations, now.UTC().Year())
	return stats
}

// recentDonations orders newest first, higher id first on equal dates.
func recentDonations(donations []Donation, limit int) []Donation {
	sorted := make([]Donation, len(donations))
	copy(sorted, donations)
	sort.SliceStable(sorted, func(i, j int) bool {
		a, b := sorted[i], sorted[j]
		if !a.DonationDate.Equal(b.DonationDate) {
			return a.DonationDate.After(b.DonationDate)
		}
		return a.ID > b.ID
	})
	if len(sorted) > limit {
		sorted = sorted[:limit]
	}
	return sorted
}

func monthlyTotals(donations []Donation, year int) []MonthlyDonationTotal {
	var (
		sums [12]decimal.Decimal
		seen [12]bool
	)
	for _, d := range donations {
		date := d.DonationDate.UTC()
		if date.Year() != year {
			continue
		}
		idx := int(date.Month()) - 1
		sums[idx] = sums[idx].Add(d.Amount)
		seen[idx] = true
	}
	totals := []MonthlyDonationTotal{}
	for i := range sums {
		if seen[i] {
			totals = append(totals, MonthlyDonationTotal{Month: time.Month(i + 1), TotalAmount: sums[i]})
		}
	}
	return totals
}
