package usecases

import (
	"context"
	"errors"
	"time"

	"feastly.backend/internal/domain/entities"
	domainerrors "feastly.backend/internal/domain/errors"
	"feastly.backend/internal/domain/repositories"
	"feastly.backend/pkg/logger"
	"github.com/volatiletech/null/v8"
	"go.uber.org/zap"
)

// PromotionWindow is how long a promotion lasts before the expiry job
// clears it.
const PromotionWindow = 7 * 24 * time.Hour

// RestaurantUsecase handles restaurant operations for owner accounts
type RestaurantUsecase struct {
	restaurants repositories.RestaurantRepository
}

// NewRestaurantUsecase creates a new restaurant usecase
func NewRestaurantUsecase(restaurants repositories.RestaurantRepository) *RestaurantUsecase {
	return &RestaurantUsecase{restaurants: restaurants}
}

// CreateRestaurant registers a restaurant owned by the caller
func (u *RestaurantUsecase) CreateRestaurant(ctx context.Context, owner *entities.Account, input *entities.CreateRestaurantInput) *entities.CreateRestaurantOutput {
	restaurant := &entities.Restaurant{
		Name:         input.Name,
		CoverImg:     input.CoverImg,
		Address:      input.Address,
		CategoryName: input.CategoryName,
		OwnerID:      owner.ID,
	}

	if err := u.restaurants.Create(ctx, restaurant); err != nil {
		logger.Error(ctx, "Restaurant creation failed", zap.Error(err))
		return &entities.CreateRestaurantOutput{Error: entities.Reason(domainerrors.ReasonCreateRestaurantFailed)}
	}

	id := restaurant.ID.String()
	return &entities.CreateRestaurantOutput{Ok: true, RestaurantID: &id}
}

// Restaurants lists all restaurants
func (u *RestaurantUsecase) Restaurants(ctx context.Context) *entities.RestaurantsOutput {
	restaurants, err := u.restaurants.List(ctx)
	if err != nil {
		logger.Error(ctx, "Restaurant listing failed", zap.Error(err))
		return &entities.RestaurantsOutput{Error: entities.Reason(domainerrors.ReasonLoadRestaurantsFailed)}
	}
	return &entities.RestaurantsOutput{Ok: true, Restaurants: restaurants}
}

// MyRestaurant returns the caller's restaurant
func (u *RestaurantUsecase) MyRestaurant(ctx context.Context, owner *entities.Account) *entities.MyRestaurantOutput {
	restaurant, err := u.restaurants.GetByOwner(ctx, owner.ID)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return &entities.MyRestaurantOutput{Error: entities.Reason(domainerrors.ReasonRestaurantNotFound)}
		}
		logger.Error(ctx, "Restaurant lookup failed", zap.Error(err))
		return &entities.MyRestaurantOutput{Error: entities.Reason(domainerrors.ReasonRestaurantNotFound)}
	}
	return &entities.MyRestaurantOutput{Ok: true, Restaurant: restaurant}
}

// EditRestaurant updates restaurant attributes. Only the owner may edit.
func (u *RestaurantUsecase) EditRestaurant(ctx context.Context, owner *entities.Account, input *entities.EditRestaurantInput) *entities.EditRestaurantOutput {
	restaurant, err := u.restaurants.GetByID(ctx, input.RestaurantID)
	if err != nil {
		return &entities.EditRestaurantOutput{Error: entities.Reason(domainerrors.ReasonRestaurantNotFound)}
	}
	if restaurant.OwnerID != owner.ID {
		return &entities.EditRestaurantOutput{Error: entities.Reason(domainerrors.ReasonNotRestaurantOwner)}
	}

	if input.Name != nil {
		restaurant.Name = *input.Name
	}
	if input.CoverImg != nil {
		restaurant.CoverImg = *input.CoverImg
	}
	if input.Address != nil {
		restaurant.Address = *input.Address
	}
	if input.CategoryName != nil {
		restaurant.CategoryName = *input.CategoryName
	}

	if err := u.restaurants.Save(ctx, restaurant); err != nil {
		logger.Error(ctx, "Restaurant save failed", zap.Error(err))
		return &entities.EditRestaurantOutput{Error: entities.Reason(domainerrors.ReasonEditRestaurantFailed)}
	}
	return &entities.EditRestaurantOutput{Ok: true}
}

// PromoteRestaurant marks the caller's restaurant as promoted for the
// promotion window.
func (u *RestaurantUsecase) PromoteRestaurant(ctx context.Context, owner *entities.Account, input *entities.PromoteRestaurantInput) *entities.PromoteRestaurantOutput {
	restaurant, err := u.restaurants.GetByID(ctx, input.RestaurantID)
	if err != nil {
		return &entities.PromoteRestaurantOutput{Error: entities.Reason(domainerrors.ReasonRestaurantNotFound)}
	}
	if restaurant.OwnerID != owner.ID {
		return &entities.PromoteRestaurantOutput{Error: entities.Reason(domainerrors.ReasonNotRestaurantOwner)}
	}

	restaurant.IsPromoted = true
	restaurant.PromotedUntil = null.TimeFrom(time.Now().Add(PromotionWindow))

	if err := u.restaurants.Save(ctx, restaurant); err != nil {
		logger.Error(ctx, "Restaurant promotion failed", zap.Error(err))
		return &entities.PromoteRestaurantOutput{Error: entities.Reason(domainerrors.ReasonEditRestaurantFailed)}
	}
	return &entities.PromoteRestaurantOutput{Ok: true}
}
