package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/spec-kit/adoptafacil/internal/auth"
	"github.com/spec-kit/adoptafacil/internal/config"
	"github.com/spec-kit/adoptafacil/internal/domain"
	"github.com/spec-kit/adoptafacil/internal/events"
	"github.com/spec-kit/adoptafacil/internal/repository"
	apperrors "github.com/spec-kit/adoptafacil/pkg/util/errorutil"
)

// UserService registers and lists platform users.
type UserService struct {
	users      repository.UserRepository
	dispatcher events.Dispatcher
	logger     *zap.Logger
	clock      Clock
	bcryptCost int
}

// UserDependencies encapsulates collaborators of UserService.
type UserDependencies struct {
	UserRepo   repository.UserRepository
	Dispatcher events.Dispatcher
	Logger     *zap.Logger
	Clock      Clock
}

// NewUserService constructs the service.
func NewUserService(cfg config.Config, deps UserDependencies) *UserService {
	return &UserService{
		users:      deps.UserRepo,
		dispatcher: deps.Dispatcher,
		logger:     orNop(deps.Logger),
		clock:      orSystem(deps.Clock),
		bcryptCost: cfg.Auth.BcryptCost,
	}
}

// Register stores a new user. The password is replaced by its bcrypt hash and the
// registration date is stamped here; repository errors are returned unchanged.
func (s *UserService) Register(ctx context.Context, user *domain.User) error {
	if user == nil {
		return apperrors.NewMissingRequiredField("user")
	}
	user.ID = 0
	if err := user.CheckRequired(); err != nil {
		return err
	}

	hashed, err := auth.HashPassword(user.Password, s.bcryptCost)
	if err != nil {
		return err
	}
	user.Password = hashed
	user.RegistrationDate = s.clock()

	if err := s.users.Save(ctx, user); err != nil {
		return err
	}

	publish(ctx, s.dispatcher, s.logger, events.New(events.EventUserRegistered, user.ID, events.UserRegisteredPayload{
		Email:    user.Email,
		FullName: user.FullName,
		Status:   user.Status,
	}))
	return nil
}

// List returns every user in insertion order.
func (s *UserService) List(ctx context.Context) ([]domain.User, error) {
	return s.users.FindAll(ctx)
}

// Get returns one user by id.
func (s *UserService) Get(ctx context.Context, id int64) (*domain.User, error) {
	return s.users.FindByID(ctx, id)
}
