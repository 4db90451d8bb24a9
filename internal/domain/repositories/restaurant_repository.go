package repositories

import (
	"context"
	"time"

	"feastly.backend/internal/domain/entities"
	"github.com/google/uuid"
)

// RestaurantRepository defines restaurant persistence operations
type RestaurantRepository interface {
	Create(ctx context.Context, restaurant *entities.Restaurant) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.Restaurant, error)
	GetByOwner(ctx context.Context, ownerID uuid.UUID) (*entities.Restaurant, error)
	List(ctx context.Context) ([]*entities.Restaurant, error)
	Save(ctx context.Context, restaurant *entities.Restaurant) error
	ExpirePromotions(ctx context.Context, now time.Time) (int64, error)
}
