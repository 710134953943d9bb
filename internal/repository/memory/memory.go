// Package memory provides repository implementations held in process memory.
// They enforce the same uniqueness and reference rules as the Postgres schema
// and back the service when no database is configured.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/spec-kit/adoptafacil/internal/domain"
	"github.com/spec-kit/adoptafacil/internal/repository"
	apperrors "github.com/spec-kit/adoptafacil/pkg/util/errorutil"
)

// Store holds all three tables behind one lock so reference checks are consistent.
type Store struct {
	mu        sync.RWMutex
	users     map[int64]domain.User
	adopters  map[int64]domain.Adopter
	donations map[int64]domain.Donation
	nextID    map[string]int64
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{
		users:     make(map[int64]domain.User),
		adopters:  make(map[int64]domain.Adopter),
		donations: make(map[int64]domain.Donation),
		nextID:    make(map[string]int64),
	}
}

func (s *Store) Users() repository.UserRepository         { return &userRepository{s: s} }
func (s *Store) Adopters() repository.AdopterRepository   { return &adopterRepository{s: s} }
func (s *Store) Donations() repository.DonationRepository { return &donationRepository{s: s} }

func (s *Store) allocate(table string) int64 {
	s.nextID[table]++
	return s.nextID[table]
}

// now matches the microsecond resolution of Postgres timestamps.
func now() time.Time {
	return time.Now().UTC().Truncate(time.Microsecond)
}

func sortedKeys[V any](m map[int64]V) []int64 {
	keys := make([]int64, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}

type userRepository struct{ s *Store }

func (r *userRepository) Save(ctx context.Context, user *domain.User) error {
	if err := ctx.Err(); err != nil {
		return apperrors.NewStorageUnavailable(err)
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if user.ID != 0 {
		if _, ok := r.s.users[user.ID]; !ok {
			return apperrors.NewNotFound("user", map[string]any{"id": user.ID})
		}
	}
	for id, existing := range r.s.users {
		if id != user.ID && existing.Email == user.Email {
			return apperrors.NewConstraintViolation(repository.ConstraintUserEmail, nil)
		}
	}

	stored := copyUser(*user)
	if user.ID == 0 {
		stored.ID = r.s.allocate("user")
		if stored.RegistrationDate.IsZero() {
			stored.RegistrationDate = now()
		}
	} else {
		stored.RegistrationDate = r.s.users[user.ID].RegistrationDate
	}
	r.s.users[stored.ID] = stored
	user.ID = stored.ID
	user.RegistrationDate = stored.RegistrationDate
	return nil
}

func (r *userRepository) FindAll(ctx context.Context) ([]domain.User, error) {
	if err := ctx.Err(); err != nil {
		return nil, apperrors.NewStorageUnavailable(err)
	}
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	result := make([]domain.User, 0, len(r.s.users))
	for _, id := range sortedKeys(r.s.users) {
		result = append(result, copyUser(r.s.users[id]))
	}
	return result, nil
}

func (r *userRepository) FindByID(ctx context.Context, id int64) (*domain.User, error) {
	if err := ctx.Err(); err != nil {
		return nil, apperrors.NewStorageUnavailable(err)
	}
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	user, ok := r.s.users[id]
	if !ok {
		return nil, apperrors.NewNotFound("user", map[string]any{"id": id})
	}
	out := copyUser(user)
	return &out, nil
}

func copyUser(u domain.User) domain.User {
	if u.LastLogin != nil {
		t := *u.LastLogin
		u.LastLogin = &t
	}
	return u
}

type adopterRepository struct{ s *Store }

func (r *adopterRepository) Save(ctx context.Context, adopter *domain.Adopter) error {
	if err := ctx.Err(); err != nil {
		return apperrors.NewStorageUnavailable(err)
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if adopter.ID != 0 {
		if _, ok := r.s.adopters[adopter.ID]; !ok {
			return apperrors.NewNotFound("adopter", map[string]any{"id": adopter.ID})
		}
	}
	if _, ok := r.s.users[adopter.UserID]; !ok {
		return apperrors.NewReferentialIntegrity(repository.ConstraintAdopterUser, nil)
	}
	for id, existing := range r.s.adopters {
		if id != adopter.ID && existing.DocumentNumber == adopter.DocumentNumber {
			return apperrors.NewConstraintViolation(repository.ConstraintAdopterDocumentNumber, nil)
		}
	}

	stored := *adopter
	if stored.ID == 0 {
		stored.ID = r.s.allocate("adopter")
	}
	r.s.adopters[stored.ID] = stored
	adopter.ID = stored.ID
	return nil
}

func (r *adopterRepository) FindAll(ctx context.Context) ([]domain.Adopter, error) {
	if err := ctx.Err(); err != nil {
		return nil, apperrors.NewStorageUnavailable(err)
	}
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	result := make([]domain.Adopter, 0, len(r.s.adopters))
	for _, id := range sortedKeys(r.s.adopters) {
		result = append(result, r.s.adopters[id])
	}
	return result, nil
}

func (r *adopterRepository) FindByID(ctx context.Context, id int64) (*domain.Adopter, error) {
	if err := ctx.Err(); err != nil {
		return nil, apperrors.NewStorageUnavailable(err)
	}
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	adopter, ok := r.s.adopters[id]
	if !ok {
		return nil, apperrors.NewNotFound("adopter", map[string]any{"id": id})
	}
	return &adopter, nil
}

type donationRepository struct{ s *Store }

func (r *donationRepository) Save(ctx context.Context, donation *domain.Donation) error {
	if err := ctx.Err(); err != nil {
		return apperrors.NewStorageUnavailable(err)
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	var existing domain.Donation
	if donation.ID != 0 {
		var ok bool
		if existing, ok = r.s.donations[donation.ID]; !ok {
			return apperrors.NewNotFound("donation", map[string]any{"id": donation.ID})
		}
	}
	if _, ok := r.s.users[donation.DonorID]; !ok {
		return apperrors.NewReferentialIntegrity(repository.ConstraintDonationDonor, nil)
	}

	stored := *donation
	if stored.ID == 0 {
		stored.ID = r.s.allocate("donation")
		if stored.DonationDate.IsZero() {
			stored.DonationDate = now()
		}
	} else {
		stored.DonationDate = existing.DonationDate
	}
	r.s.donations[stored.ID] = stored
	donation.ID = stored.ID
	donation.DonationDate = stored.DonationDate
	return nil
}

func (r *donationRepository) FindAll(ctx context.Context) ([]domain.Donation, error) {
	if err := ctx.Err(); err != nil {
		return nil, apperrors.NewStorageUnavailable(err)
	}
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	result := make([]domain.Donation, 0, len(r.s.donations))
	for _, id := range sortedKeys(r.s.donations) {
		result = append(result, r.s.donations[id])
	}
	return result, nil
}

func (r *donationRepository) FindByID(ctx context.Context, id int64) (*domain.Donation, error) {
	if err := ctx.Err(); err != nil {
		return nil, apperrors.NewStorageUnavailable(err)
	}
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	donation, ok := r.s.donations[id]
	if !ok {
		return nil, apperrors.NewNotFound("donation", map[string]any{"id": id})
	}
	return &donation, nil
}
