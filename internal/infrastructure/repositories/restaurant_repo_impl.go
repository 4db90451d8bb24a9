package repositories

import (
	"context"
	"errors"
	"time"

	"feastly.backend/internal/domain/entities"
	domainerrors "feastly.backend/internal/domain/errors"
	"feastly.backend/internal/infrastructure/models"
	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
	"gorm.io/gorm"
)

// RestaurantRepository implements restaurant data operations
type RestaurantRepository struct {
	db *gorm.DB
}

// NewRestaurantRepository creates a new restaurant repository
func NewRestaurantRepository(db *gorm.DB) *RestaurantRepository {
	return &RestaurantRepository{db: db}
}

// Create creates a new restaurant
func (r *RestaurantRepository) Create(ctx context.Context, restaurant *entities.Restaurant) error {
	m := toRestaurantModel(restaurant)

	if err := r.db.WithContext(ctx).Omit("Owner").Create(m).Error; err != nil {
		return err
	}

	restaurant.ID = m.ID
	restaurant.CreatedAt = m.CreatedAt
	restaurant.UpdatedAt = m.UpdatedAt
	return nil
}

// GetByID gets a restaurant by ID
func (r *RestaurantRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Restaurant, error) {
	var m models.Restaurant
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return toRestaurantEntity(&m), nil
}

// GetByOwner gets the restaurant owned by the given account
func (r *RestaurantRepository) GetByOwner(ctx context.Context, ownerID uuid.UUID) (*entities.Restaurant, error) {
	var m models.Restaurant
	if err := r.db.WithContext(ctx).Where("owner_id = ?", ownerID).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return toRestaurantEntity(&m), nil
}

// List lists all restaurants, newest first
func (r *RestaurantRepository) List(ctx context.Context) ([]*entities.Restaurant, error) {
	var restaurantModels []models.Restaurant
	if err := r.db.WithContext(ctx).Order("created_at DESC").Find(&restaurantModels).Error; err != nil {
		return nil, err
	}

	restaurants := make([]*entities.Restaurant, 0, len(restaurantModels))
	for i := range restaurantModels {
		restaurants = append(restaurants, toRestaurantEntity(&restaurantModels[i]))
	}
	return restaurants, nil
}

// Save persists the current state of a restaurant
func (r *RestaurantRepository) Save(ctx context.Context, restaurant *entities.Restaurant) error {
	m := toRestaurantModel(restaurant)

	updates := map[string]interface{}{
		"name":           m.Name,
		"cover_img":      m.CoverImg,
		"address":        m.Address,
		"category_name":  m.CategoryName,
		"is_promoted":    m.IsPromoted,
		"promoted_until": m.PromotedUntil,
		"updated_at":     time.Now(),
	}

	result := r.db.WithContext(ctx).Model(&models.Restaurant{}).Where("id = ?", m.ID).Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

// ExpirePromotions clears the promoted flag on restaurants whose
// promotion window has lapsed and reports how many were touched.
func (r *RestaurantRepository) ExpirePromotions(ctx context.Context, now time.Time) (int64, error) {
	result := r.db.WithContext(ctx).
		Model(&models.Restaurant{}).
		Where("is_promoted = ? AND promoted_until IS NOT NULL AND promoted_until < ?", true, now).
		Updates(map[string]interface{}{
			"is_promoted":    false,
			"promoted_until": nil,
		})
	return result.RowsAffected, result.Error
}

func toRestaurantModel(e *entities.Restaurant) *models.Restaurant {
	m := &models.Restaurant{
		ID:           e.ID,
		Name:         e.Name,
		CoverImg:     e.CoverImg,
		Address:      e.Address,
		CategoryName: e.CategoryName,
		OwnerID:      e.OwnerID,
		IsPromoted:   e.IsPromoted,
		CreatedAt:    e.CreatedAt,
		UpdatedAt:    e.UpdatedAt,
	}
	if e.PromotedUntil.Valid {
		t := e.PromotedUntil.Time
		m.PromotedUntil = &t
	}
	return m
}

func toRestaurantEntity(m *models.Restaurant) *entities.Restaurant {
	return &entities.Restaurant{
		ID:            m.ID,
		Name:          m.Name,
		CoverImg:      m.CoverImg,
		Address:       m.Address,
		CategoryName:  m.CategoryName,
		OwnerID:       m.OwnerID,
		IsPromoted:    m.IsPromoted,
		PromotedUntil: null.TimeFromPtr(m.PromotedUntil),
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}
