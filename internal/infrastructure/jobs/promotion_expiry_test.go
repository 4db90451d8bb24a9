package jobs

import (
	"context"
	"sync"
	"testing"
	"time"

	"feastly.backend/internal/domain/entities"
	"feastly.backend/pkg/logger"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

type stubRestaurantRepo struct {
	mu     sync.Mutex
	sweeps int
}

func (s *stubRestaurantRepo) Create(ctx context.Context, r *entities.Restaurant) error { return nil }
func (s *stubRestaurantRepo) GetByID(ctx context.Context, id uuid.UUID) (*entities.Restaurant, error) {
	return nil, nil
}
func (s *stubRestaurantRepo) GetByOwner(ctx context.Context, ownerID uuid.UUID) (*entities.Restaurant, error) {
	return nil, nil
}
func (s *stubRestaurantRepo) List(ctx context.Context) ([]*entities.Restaurant, error) {
	return nil, nil
}
func (s *stubRestaurantRepo) Save(ctx context.Context, r *entities.Restaurant) error { return nil }
func (s *stubRestaurantRepo) ExpirePromotions(ctx context.Context, now time.Time) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sweeps++
	return 1, nil
}

func (s *stubRestaurantRepo) sweepCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sweeps
}

func TestPromotionExpiryJob_SweepsUntilStopped(t *testing.T) {
	logger.Init("test")
	repo := &stubRestaurantRepo{}
	job := NewPromotionExpiryJob(repo, 10*time.Millisecond)

	done := make(chan struct{})
	go func() {
		job.Start(context.Background())
		close(done)
	}()

	assert.Eventually(t, func() bool { return repo.sweepCount() >= 2 }, time.Second, 5*time.Millisecond)

	job.Stop()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("job did not stop")
	}
}

func TestPromotionExpiryJob_StopsOnContextCancel(t *testing.T) {
	logger.Init("test")
	repo := &stubRestaurantRepo{}
	job := NewPromotionExpiryJob(repo, time.Hour)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		job.Start(ctx)
		close(done)
	}()

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("job did not stop on context cancel")
	}
}
