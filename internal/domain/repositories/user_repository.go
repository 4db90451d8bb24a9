package repositories

import (
	"context"

	"feastly.backend/internal/domain/entities"
	"github.com/google/uuid"
)

// UserRepository defines account persistence operations
type UserRepository interface {
	Create(ctx context.Context, account *entities.Account) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.Account, error)
	GetByEmail(ctx context.Context, email string) (*entities.Account, error)
	Save(ctx context.Context, account *entities.Account) error
}
