package repository_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/spec-kit/adoptafacil/internal/domain"
	"github.com/spec-kit/adoptafacil/internal/repository"
	"github.com/spec-kit/adoptafacil/internal/repository/memory"
	mockrepository "github.com/spec-kit/adoptafacil/internal/repository/mock"
)

type fakeCache struct {
	mu      sync.Mutex
	entries map[string][]byte
	gens    map[string]int64
	failGet bool
	failSet bool
}

func newFakeCache() *fakeCache {
	return &fakeCache{entries: map[string][]byte{}, gens: map[string]int64{}}
}

func (c *fakeCache) Get(_ context.Context, key string) ([]byte, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.failGet {
		return nil, false, errors.New("cache down")
	}
	v, ok := c.entries[key]
	return v, ok, nil
}

func (c *fakeCache) Generation(_ context.Context, genKey string) (int64, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.failGet {
		return 0, errors.New("cache down")
	}
	return c.gens[genKey], nil
}

func (c *fakeCache) SetIfGeneration(_ context.Context, key, genKey string, gen int64, value []byte, _ time.Duration) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.failSet {
		return false, errors.New("cache down")
	}
	if c.gens[genKey] != gen {
		return false, nil
	}
	c.entries[key] = value
	return true, nil
}

func (c *fakeCache) Invalidate(_ context.Context, key, genKey string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.gens[genKey]++
	delete(c.entries, key)
	return nil
}

func (c *fakeCache) raw(key string) []byte {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.entries[key]
}

// pausingUsers blocks the first FindAll after it has read the store, until release is closed.
type pausingUsers struct {
	repository.UserRepository
	once    sync.Once
	read    chan struct{}
	release chan struct{}
}

func (p *pausingUsers) FindAll(ctx context.Context) ([]domain.User, error) {
	users, err := p.UserRepository.FindAll(ctx)
	p.once.Do(func() {
		close(p.read)
		<-p.release
	})
	return users, err
}

func TestCachedRepository_ServesSecondListFromCache(t *testing.T) {
	ctrl := gomock.NewController(t)
	next := mockrepository.NewMockUserRepository(ctrl)
	cache := newFakeCache()
	repo := repository.NewCachedUserRepository(next, cache, time.Minute, nil)

	users := []domain.User{{ID: 1, Email: "a@x.com", FullName: "Ana", Status: domain.UserStatusActive}}
	next.EXPECT().FindAll(gomock.Any()).Return(users, nil).Times(1)

	first, err := repo.FindAll(context.Background())
	require.NoError(t, err)
	second, err := repo.FindAll(context.Background())
	require.NoError(t, err)
	require.Equal(t, first, second)
	require.Equal(t, "a@x.com", second[0].Email)
}

func TestCachedRepository_SaveInvalidates(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	cache := newFakeCache()
	users := repository.NewCachedUserRepository(store.Users(), cache, time.Minute, nil)

	require.NoError(t, users.Save(ctx, &domain.User{Email: "a@x.com", Password: "h", FullName: "Ana", Status: domain.UserStatusActive}))
	list, err := users.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)

	require.NoError(t, users.Save(ctx, &domain.User{Email: "b@x.com", Password: "h", FullName: "Bo", Status: domain.UserStatusActive}))
	list, err = users.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
}

func TestCachedRepository_RoundTripsDecimalsAndDates(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	cache := newFakeCache()
	require.NoError(t, store.Users().Save(ctx, &domain.User{Email: "a@x.com", Password: "h", FullName: "Ana", Status: domain.UserStatusActive}))

	adopters := repository.NewCachedAdopterRepository(store.Adopters(), cache, time.Minute, nil)
	require.NoError(t, adopters.Save(ctx, &domain.Adopter{
		UserID:         1,
		DocumentType:   domain.DocumentTypeID,
		DocumentNumber: 77,
		BirthDate:      domain.NewDate(time.Date(2000, 2, 29, 0, 0, 0, 0, time.UTC)),
		MonthlyIncome:  decimal.RequireFromString("123.45"),
	}))

	_, err := adopters.FindAll(ctx)
	require.NoError(t, err)
	cached, err := adopters.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, cached, 1)
	require.Equal(t, "123.45", cached[0].MonthlyIncome.String())
	require.Equal(t, "2000-02-29", cached[0].BirthDate.String())
}

func TestCachedRepository_CacheFailuresFallThrough(t *testing.T) {
	ctrl := gomock.NewController(t)
	next := mockrepository.NewMockDonationRepository(ctrl)
	cache := newFakeCache()
	cache.failGet = true
	cache.failSet = true
	repo := repository.NewCachedDonationRepository(next, cache, time.Minute, nil)

	next.EXPECT().FindAll(gomock.Any()).Return([]domain.Donation{{ID: 1}}, nil).Times(2)

	for i := 0; i < 2; i++ {
		list, err := repo.FindAll(context.Background())
		require.NoError(t, err)
		require.Len(t, list, 1)
	}
}

func TestCachedRepository_DoesNotCacheErrors(t *testing.T) {
	ctrl := gomock.NewController(t)
	next := mockrepository.NewMockUserRepository(ctrl)
	cache := newFakeCache()
	repo := repository.NewCachedUserRepository(next, cache, time.Minute, nil)

	boom := errors.New("boom")
	gomock.InOrder(
		next.EXPECT().FindAll(gomock.Any()).Return(nil, boom),
		next.EXPECT().FindAll(gomock.Any()).Return([]domain.User{}, nil),
	)

	_, err := repo.FindAll(context.Background())
	require.ErrorIs(t, err, boom)
	list, err := repo.FindAll(context.Background())
	require.NoError(t, err)
	require.Empty(t, list)
}

func TestCachedRepository_InFlightListDoesNotHideConcurrentSave(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	inner := &pausingUsers{
		UserRepository: store.Users(),
		read:           make(chan struct{}),
		release:        make(chan struct{}),
	}
	cache := newFakeCache()
	users := repository.NewCachedUserRepository(inner, cache, time.Minute, nil)

	var (
		stale    []domain.User
		staleErr error
	)
	done := make(chan struct{})
	go func() {
		defer close(done)
		stale, staleErr = users.FindAll(ctx)
	}()

	<-inner.read
	require.NoError(t, users.Save(ctx, &domain.User{Email: "a@x.com", Password: "h", FullName: "Ana", Status: domain.UserStatusActive}))
	close(inner.release)
	<-done
	require.NoError(t, staleErr)
	require.Empty(t, stale)

	persisted, err := store.Users().FindAll(ctx)
	require.NoError(t, err)
	listed, err := users.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, persisted, 1)
	require.Len(t, listed, 1)
	require.Equal(t, "a@x.com", listed[0].Email)
}

func TestCachedRepository_NeverCachesPasswordHashes(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	cache := newFakeCache()
	users := repository.NewCachedUserRepository(store.Users(), cache, time.Minute, nil)

	hash := "$2a$04$abcdefghijklmnopqrstuv"
	require.NoError(t, users.Save(ctx, &domain.User{Email: "a@x.com", Password: hash, FullName: "Ana", Status: domain.UserStatusActive}))

	fromStore, err := users.FindAll(ctx)
	require.NoError(t, err)
	require.Equal(t, hash, fromStore[0].Password)

	raw := cache.raw("adoptafacil:list:user")
	require.NotEmpty(t, raw)
	require.NotContains(t, string(raw), hash)

	fromCache, err := users.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, fromCache, 1)
	require.Empty(t, fromCache[0].Password)
	require.Equal(t, "a@x.com", fromCache[0].Email)
}
