package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/adoptafacil/internal/domain"
	"github.com/spec-kit/adoptafacil/internal/repository/memory"
	"github.com/spec-kit/adoptafacil/internal/service"
	apperrors "github.com/spec-kit/adoptafacil/pkg/util/errorutil"
)

func newAdopter(userID, doc int64) *domain.Adopter {
	return &domain.Adopter{
		UserID:         userID,
		DocumentType:   domain.DocumentTypePassport,
		DocumentNumber: doc,
		BirthDate:      domain.NewDate(time.Date(1990, 5, 17, 0, 0, 0, 0, time.UTC)),
		Occupation:     "vet",
		MonthlyIncome:  decimal.RequireFromString("2500.75"),
	}
}

func seedUser(t *testing.T, store *memory.Store, email string) int64 {
	t.Helper()
	svc := service.NewUserService(testConfig(), service.UserDependencies{UserRepo: store.Users()})
	user := &domain.User{Email: email, Password: "pw", FullName: "Ana", Status: domain.UserStatusActive}
	require.NoError(t, svc.Register(context.Background(), user))
	return user.ID
}

func TestAdopterService_Register(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	userID := seedUser(t, store, "a@x.com")
	svc := service.NewAdopterService(service.AdopterDependencies{AdopterRepo: store.Adopters()})

	adopter := newAdopter(userID, 1001)
	adopter.Validated = true
	require.NoError(t, svc.Register(ctx, adopter))
	require.NotZero(t, adopter.ID)

	list, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	require.False(t, list[0].Validated)
	require.Equal(t, "2500.75", list[0].MonthlyIncome.String())
	require.Equal(t, "1990-05-17", list[0].BirthDate.String())
}

func TestAdopterService_DuplicateDocumentNumber(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	userID := seedUser(t, store, "a@x.com")
	svc := service.NewAdopterService(service.AdopterDependencies{AdopterRepo: store.Adopters()})

	require.NoError(t, svc.Register(ctx, newAdopter(userID, 1001)))
	err := svc.Register(ctx, newAdopter(userID, 1001))
	require.ErrorIs(t, err, apperrors.ErrConstraintViolation)
}

func TestAdopterService_UnknownUser(t *testing.T) {
	svc := service.NewAdopterService(service.AdopterDependencies{AdopterRepo: memory.NewStore().Adopters()})

	err := svc.Register(context.Background(), newAdopter(99, 1001))
	require.ErrorIs(t, err, apperrors.ErrReferentialIntegrity)
}

func TestAdopterService_InvalidIncome(t *testing.T) {
	store := memory.NewStore()
	userID := seedUser(t, store, "a@x.com")
	svc := service.NewAdopterService(service.AdopterDependencies{AdopterRepo: store.Adopters()})

	adopter := newAdopter(userID, 1)
	adopter.MonthlyIncome = decimal.RequireFromString("-0.01")
	require.ErrorIs(t, svc.Register(context.Background(), adopter), apperrors.ErrInvalidValue)
}
