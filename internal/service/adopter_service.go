package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/spec-kit/adoptafacil/internal/domain"
	"github.com/spec-kit/adoptafacil/internal/events"
	"github.com/spec-kit/adoptafacil/internal/repository"
	apperrors "github.com/spec-kit/adoptafacil/pkg/util/errorutil"
)

// AdopterService registers and lists adopters.
type AdopterService struct {
	adopters   repository.AdopterRepository
	dispatcher events.Dispatcher
	logger     *zap.Logger
}

// AdopterDependencies encapsulates collaborators of AdopterService.
type AdopterDependencies struct {
	AdopterRepo repository.AdopterRepository
	Dispatcher  events.Dispatcher
	Logger      *zap.Logger
}

func NewAdopterService(deps AdopterDependencies) *AdopterService {
	return &AdopterService{
		adopters:   deps.AdopterRepo,
		dispatcher: deps.Dispatcher,
		logger:     orNop(deps.Logger),
	}
}

// Register stores a new adopter. New adopters always start unvalidated; the
// referenced user's existence is enforced by the store.
func (s *AdopterService) Register(ctx context.Context, adopter *domain.Adopter) error {
	if adopter == nil {
		return apperrors.NewMissingRequiredField("adopter")
	}
	adopter.ID = 0
	adopter.Validated = false
	if err := adopter.CheckRequired(); err != nil {
		return err
	}

	if err := s.adopters.Save(ctx, adopter); err != nil {
		return err
	}

	publish(ctx, s.dispatcher, s.logger, events.New(events.EventAdopterRegistered, adopter.ID, events.AdopterRegisteredPayload{
		UserID:       adopter.UserID,
		DocumentType: adopter.DocumentType,
	}))
	return nil
}

func (s *AdopterService) List(ctx context.Context) ([]domain.Adopter, error) {
	return s.adopters.FindAll(ctx)
}

func (s *AdopterService) Get(ctx context.Context, id int64) (*domain.Adopter, error) {
	return s.adopters.FindByID(ctx, id)
}
