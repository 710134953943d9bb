package repository_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.uber.org/zap"

	"github.com/spec-kit/adoptafacil/internal/config"
	"github.com/spec-kit/adoptafacil/internal/domain"
	"github.com/spec-kit/adoptafacil/internal/persistence"
	"github.com/spec-kit/adoptafacil/internal/repository"
	apperrors "github.com/spec-kit/adoptafacil/pkg/util/errorutil"
)

const (
	testUser     = "postgres"
	testPassword = "postgres"
	testDB       = "adoptafacil"
)

func setupPostgres(t *testing.T) *persistence.Postgres {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping postgres integration test in short mode")
	}
	testcontainers.SkipIfProviderIsNotHealthy(t)
	ctx := context.Background()

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "postgres:17",
			ExposedPorts: []string{"5432/tcp"},
			Env: map[string]string{
				"POSTGRES_USER":     testUser,
				"POSTGRES_PASSWORD": testPassword,
				"POSTGRES_DB":       testDB,
			},
			WaitingFor: wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(time.Minute),
		},
		Started: true,
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = container.Terminate(ctx) })

	host, err := container.Host(ctx)
	require.NoError(t, err)
	port, err := container.MappedPort(ctx, "5432")
	require.NoError(t, err)

	pg, err := persistence.NewPostgres(ctx, config.PostgresConfig{
		DSN:            fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable", testUser, testPassword, host, port.Int(), testDB),
		MaxConns:       5,
		MinConns:       1,
		ConnMaxIdleSec: 60,
		ConnMaxLifeSec: 300,
	}, zap.NewNop())
	require.NoError(t, err)
	t.Cleanup(pg.Close)

	require.NoError(t, persistence.RunMigrations(ctx, pg.PoolHandle(), zap.NewNop()))
	return pg
}

func TestPostgres_Repositories(t *testing.T) {
	pg := setupPostgres(t)
	ctx := context.Background()
	pool := pg.PoolHandle()
	users := repository.NewUserRepository(pool)
	adopters := repository.NewAdopterRepository(pool)
	donations := repository.NewDonationRepository(pool)

	t.Run("users", func(t *testing.T) {
		u := &domain.User{Email: "a@x.com", Password: "hash", FullName: "Ana", Status: domain.UserStatusActive}
		require.NoError(t, users.Save(ctx, u))
		require.NotZero(t, u.ID)
		require.False(t, u.RegistrationDate.IsZero())

		dup := &domain.User{Email: "a@x.com", Password: "hash", FullName: "Other", Status: domain.UserStatusInactive}
		require.ErrorIs(t, users.Save(ctx, dup), apperrors.ErrConstraintViolation)

		all, err := users.FindAll(ctx)
		require.NoError(t, err)
		require.Len(t, all, 1)
		require.Equal(t, domain.UserStatusActive, all[0].Status)
		require.Nil(t, all[0].LastLogin)

		_, err = users.FindByID(ctx, 9999)
		require.ErrorIs(t, err, apperrors.ErrNotFound)
	})

	t.Run("adopters", func(t *testing.T) {
		all, err := users.FindAll(ctx)
		require.NoError(t, err)
		userID := all[0].ID

		a := &domain.Adopter{
			UserID:         userID,
			DocumentType:   domain.DocumentTypePassport,
			DocumentNumber: 5551234,
			BirthDate:      domain.NewDate(time.Date(1988, 3, 14, 0, 0, 0, 0, time.UTC)),
			Occupation:     "nurse",
			MonthlyIncome:  decimal.RequireFromString("123.45"),
		}
		require.NoError(t, adopters.Save(ctx, a))

		clash := *a
		clash.ID = 0
		require.ErrorIs(t, adopters.Save(ctx, &clash), apperrors.ErrConstraintViolation)

		orphan := *a
		orphan.ID = 0
		orphan.DocumentNumber = 1
		orphan.UserID = 424242
		require.ErrorIs(t, adopters.Save(ctx, &orphan), apperrors.ErrReferentialIntegrity)

		got, err := adopters.FindByID(ctx, a.ID)
		require.NoError(t, err)
		require.Equal(t, "123.45", got.MonthlyIncome.String())
		require.Equal(t, "1988-03-14", got.BirthDate.String())
		require.Equal(t, "nurse", got.Occupation)
		require.False(t, got.Validated)
	})

	t.Run("donations", func(t *testing.T) {
		all, err := users.FindAll(ctx)
		require.NoError(t, err)
		donorID := all[0].ID

		d := &domain.Donation{
			DonorID:      donorID,
			ShelterID:    12,
			Amount:       decimal.RequireFromString("0.10"),
			DonationType: domain.DonationTypeMonetary,
		}
		require.NoError(t, donations.Save(ctx, d))
		created := d.DonationDate
		require.False(t, created.IsZero())

		d.DonationDescription = "thanks"
		d.DonationDate = created.Add(-time.Hour)
		require.NoError(t, donations.Save(ctx, d))
		require.True(t, created.Equal(d.DonationDate))

		got, err := donations.FindByID(ctx, d.ID)
		require.NoError(t, err)
		require.True(t, created.Equal(got.DonationDate))
		require.Equal(t, "thanks", got.DonationDescription)
		require.True(t, decimal.RequireFromString("0.10").Equal(got.Amount))

		orphan := &domain.Donation{DonorID: 424242, ShelterID: 1, Amount: decimal.Zero, DonationType: domain.DonationTypeInKind}
		require.ErrorIs(t, donations.Save(ctx, orphan), apperrors.ErrReferentialIntegrity)
	})

	t.Run("unavailable after close", func(t *testing.T) {
		closed := setupPostgres(t)
		closed.Close()
		_, err := repository.NewUserRepository(closed.PoolHandle()).FindAll(ctx)
		require.ErrorIs(t, err, apperrors.ErrStorageUnavailable)
	})
}
