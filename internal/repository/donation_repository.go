package repository

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/adoptafacil/internal/domain"
	apperrors "github.com/spec-kit/adoptafacil/pkg/util/errorutil"
)

//go:generate mockgen -package mockrepository -source=donation_repository.go -destination=mock/donation_repository.go

// DonationRepository manages donation persistence. donation_date is never rewritten.
type DonationRepository interface {
	Save(ctx context.Context, donation *domain.Donation) error
	FindAll(ctx context.Context) ([]domain.Donation, error)
	FindByID(ctx context.Context, id int64) (*domain.Donation, error)
}

type donationRepository struct {
	pool *pgxpool.Pool
}

// NewDonationRepository builds the repository.
func NewDonationRepository(pool *pgxpool.Pool) DonationRepository {
	return &donationRepository{pool: pool}
}

func (r *donationRepository) Save(ctx context.Context, donation *domain.Donation) error {
	if donation.ID == 0 {
		const query = `
            INSERT INTO donation (id_donor, id_shelter, amount, donation_type, donation_date, donation_description)
            VALUES ($1,$2,$3,$4,COALESCE($5::timestamptz, NOW()),$6)
            RETURNING id_donation, donation_date`

		var donated *time.Time
		if !donation.DonationDate.IsZero() {
			donated = &donation.DonationDate
		}
		err := r.pool.QueryRow(ctx, query,
			donation.DonorID,
			donation.ShelterID,
			donation.Amount,
			donation.DonationType.String(),
			donated,
			nullableText(donation.DonationDescription),
		).Scan(&donation.ID, &donation.DonationDate)
		if err != nil {
			return mapError(err, "donation")
		}
		donation.DonationDate = donation.DonationDate.UTC()
		return nil
	}

	const query = `
        UPDATE donation SET id_donor=$1, id_shelter=$2, amount=$3, donation_type=$4, donation_description=$5
        WHERE id_donation=$6
        RETURNING donation_date`
	err := r.pool.QueryRow(ctx, query,
		donation.DonorID,
		donation.ShelterID,
		donation.Amount,
		donation.DonationType.String(),
		nullableText(donation.DonationDescription),
		donation.ID,
	).Scan(&donation.DonationDate)
	if errors.Is(err, pgx.ErrNoRows) {
		return apperrors.NewNotFound("donation", map[string]any{"id": donation.ID})
	}
	if err != nil {
		return mapError(err, "donation")
	}
	donation.DonationDate = donation.DonationDate.UTC()
	return nil
}

func (r *donationRepository) FindAll(ctx context.Context) ([]domain.Donation, error) {
	const query = `
        SELECT id_donation, id_donor, id_shelter, amount, donation_type, donation_date, donation_description
        FROM donation ORDER BY id_donation`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, mapError(err, "donation")
	}
	defer rows.Close()

	result := make([]domain.Donation, 0)
	for rows.Next() {
		donation, err := scanDonation(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *donation)
	}
	return result, mapError(rows.Err(), "donation")
}

func (r *donationRepository) FindByID(ctx context.Context, id int64) (*domain.Donation, error) {
	const query = `
        SELECT id_donation, id_donor, id_shelter, amount, donation_type, donation_date, donation_description
        FROM donation WHERE id_donation=$1`
	return scanDonation(r.pool.QueryRow(ctx, query, id))
}

func scanDonation(row rowScanner) (*domain.Donation, error) {
	var (
		donation    domain.Donation
		kind        string
		description *string
	)
	if err := row.Scan(
		&donation.ID,
		&donation.DonorID,
		&donation.ShelterID,
		&donation.Amount,
		&kind,
		&donation.DonationDate,
		&description,
	); err != nil {
		return nil, mapError(err, "donation")
	}
	parsed, err := domain.ParseDonationType(kind)
	if err != nil {
		return nil, err
	}
	donation.DonationType = parsed
	donation.DonationDate = donation.DonationDate.UTC()
	if description != nil {
		donation.DonationDescription = *description
	}
	return &donation, nil
}
