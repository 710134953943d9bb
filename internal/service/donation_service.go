package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/spec-kit/adoptafacil/internal/domain"
	"github.com/spec-kit/adoptafacil/internal/events"
	"github.com/spec-kit/adoptafacil/internal/repository"
	apperrors "github.com/spec-kit/adoptafacil/pkg/util/errorutil"
)

// DonationService registers, lists and summarizes donations.
type DonationService struct {
	donations  repository.DonationRepository
	dispatcher events.Dispatcher
	logger     *zap.Logger
	clock      Clock
}

// DonationDependencies encapsulates collaborators of DonationService.
type DonationDependencies struct {
	DonationRepo repository.DonationRepository
	Dispatcher   events.Dispatcher
	Logger       *zap.Logger
	Clock        Clock
}

func NewDonationService(deps DonationDependencies) *DonationService {
	return &DonationService{
		donations:  deps.DonationRepo,
		dispatcher: deps.Dispatcher,
		logger:     orNop(deps.Logger),
		clock:      orSystem(deps.Clock),
	}
}

// Register stores a new donation, dated now unless the caller supplied a date.
func (s *DonationService) Register(ctx context.Context, donation *domain.Donation) error {
	if donation == nil {
		return apperrors.NewMissingRequiredField("donation")
	}
	donation.ID = 0
	if err := donation.CheckRequired(); err != nil {
		return err
	}
	if donation.DonationDate.IsZero() {
		donation.DonationDate = s.clock()
	} else {
		donation.DonationDate = donation.DonationDate.UTC().Truncate(time.Microsecond)
	}

	if err := s.donations.Save(ctx, donation); err != nil {
		return err
	}

	publish(ctx, s.dispatcher, s.logger, events.New(events.EventDonationReceived, donation.ID, events.DonationReceivedPayload{
		DonorID:      donation.DonorID,
		ShelterID:    donation.ShelterID,
		Amount:       domain.FormatMoney(donation.Amount),
		DonationType: donation.DonationType,
	}))
	return nil
}

func (s *DonationService) List(ctx context.Context) ([]domain.Donation, error) {
	return s.donations.FindAll(ctx)
}

func (s *DonationService) Get(ctx context.Context, id int64) (*domain.Donation, error) {
	return s.donations.FindByID(ctx, id)
}

// Stats aggregates all stored donations; the monthly breakdown covers the clock's current year.
func (s *DonationService) Stats(ctx context.Context) (domain.DonationStats, error) {
	donations, err := s.donations.FindAll(ctx)
	if err != nil {
		return domain.DonationStats{}, err
	}
	return domain.SummarizeDonations(donations, s.clock()), nil
}
