package repository

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/spec-kit/adoptafacil/internal/domain"
	apperrors "github.com/spec-kit/adoptafacil/pkg/util/errorutil"
)

//go:generate mockgen -package mockrepository -source=adopter_repository.go -destination=mock/adopter_repository.go

// AdopterRepository manages adopter persistence.
type AdopterRepository interface {
	Save(ctx context.Context, adopter *domain.Adopter) error
	FindAll(ctx context.Context) ([]domain.Adopter, error)
	FindByID(ctx context.Context, id int64) (*domain.Adopter, error)
}

type adopterRepository struct {
	pool *pgxpool.Pool
}

// NewAdopterRepository builds the repository.
func NewAdopterRepository(pool *pgxpool.Pool) AdopterRepository {
	return &adopterRepository{pool: pool}
}

func (r *adopterRepository) Save(ctx context.Context, adopter *domain.Adopter) error {
	if adopter.ID == 0 {
		const query = `
            INSERT INTO adopter (id_user, document_type, document_number, birth_date, occupation, monthly_income, validated)
            VALUES ($1,$2,$3,$4,$5,$6,$7)
            RETURNING id_adopter`
		err := r.pool.QueryRow(ctx, query,
			adopter.UserID,
			adopter.DocumentType.String(),
			adopter.DocumentNumber,
			adopter.BirthDate.Time,
			nullableText(adopter.Occupation),
			adopter.MonthlyIncome,
			adopter.Validated,
		).Scan(&adopter.ID)
		return mapError(err, "adopter")
	}

	const query = `
        UPDATE adopter SET id_user=$1, document_type=$2, document_number=$3, birth_date=$4,
            occupation=$5, monthly_income=$6, validated=$7
        WHERE id_adopter=$8`
	cmd, err := r.pool.Exec(ctx, query,
		adopter.UserID,
		adopter.DocumentType.String(),
		adopter.DocumentNumber,
		adopter.BirthDate.Time,
		nullableText(adopter.Occupation),
		adopter.MonthlyIncome,
		adopter.Validated,
		adopter.ID,
	)
	if err != nil {
		return mapError(err, "adopter")
	}
	if cmd.RowsAffected() == 0 {
		return apperrors.NewNotFound("adopter", map[string]any{"id": adopter.ID})
	}
	return nil
}

func (r *adopterRepository) FindAll(ctx context.Context) ([]domain.Adopter, error) {
	const query = `
        SELECT id_adopter, id_user, document_type, document_number, birth_date, occupation, monthly_income, validated
        FROM adopter ORDER BY id_adopter`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, mapError(err, "adopter")
	}
	defer rows.Close()

	result := make([]domain.Adopter, 0)
	for rows.Next() {
		adopter, err := scanAdopter(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *adopter)
	}
	return result, mapError(rows.Err(), "adopter")
}

func (r *adopterRepository) FindByID(ctx context.Context, id int64) (*domain.Adopter, error) {
	const query = `
        SELECT id_adopter, id_user, document_type, document_number, birth_date, occupation, monthly_income, validated
        FROM adopter WHERE id_adopter=$1`
	return scanAdopter(r.pool.QueryRow(ctx, query, id))
}

func scanAdopter(row rowScanner) (*domain.Adopter, error) {
	var (
		adopter    domain.Adopter
		docType    string
		birthDate  time.Time
		occupation *string
		income     decimal.Decimal
	)
	if err := row.Scan(
		&adopter.ID,
		&adopter.UserID,
		&docType,
		&adopter.DocumentNumber,
		&birthDate,
		&occupation,
		&income,
		&adopter.Validated,
	); err != nil {
		return nil, mapError(err, "adopter")
	}
	parsed, err := domain.ParseDocumentType(docType)
	if err != nil {
		return nil, err
	}
	adopter.DocumentType = parsed
	adopter.BirthDate = domain.NewDate(birthDate)
	if occupation != nil {
		adopter.Occupation = *occupation
	}
	adopter.MonthlyIncome = income
	return &adopter, nil
}

func nullableText(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
