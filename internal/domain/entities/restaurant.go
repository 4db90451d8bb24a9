package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
)

// Restaurant represents a restaurant owned by an Owner account.
type Restaurant struct {
	ID            uuid.UUID `json:"id"`
	Name          string    `json:"name"`
	CoverImg      string    `json:"coverImg"`
	Address       string    `json:"address"`
	CategoryName  string    `json:"categoryName"`
	OwnerID       uuid.UUID `json:"ownerId"`
	IsPromoted    bool      `json:"isPromoted"`
	PromotedUntil null.Time `json:"promotedUntil"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// CreateRestaurantInput represents input for restaurant creation
type CreateRestaurantInput struct {
	Name         string `json:"name"`
	CoverImg     string `json:"coverImg"`
	Address      string `json:"address"`
	CategoryName string `json:"categoryName"`
}

// EditRestaurantInput represents input for restaurant edit. Nil fields
// are left untouched.
type EditRestaurantInput struct {
	RestaurantID uuid.UUID `json:"restaurantId"`
	Name         *string   `json:"name"`
	CoverImg     *string   `json:"coverImg"`
	Address      *string   `json:"address"`
	CategoryName *string   `json:"categoryName"`
}

// PromoteRestaurantInput represents input for restaurant promotion
type PromoteRestaurantInput struct {
	RestaurantID uuid.UUID `json:"restaurantId"`
}

// CreateRestaurantOutput is the outcome of restaurant creation
type CreateRestaurantOutput struct {
	Ok           bool    `json:"ok"`
	Error        *string `json:"error"`
	RestaurantID *string `json:"restaurantId"`
}

// RestaurantsOutput is the outcome of the public restaurant listing
type RestaurantsOutput struct {
	Ok          bool          `json:"ok"`
	Error       *string       `json:"error"`
	Restaurants []*Restaurant `json:"restaurants"`
}

// MyRestaurantOutput is the outcome of an owner's restaurant lookup
type MyRestaurantOutput struct {
	Ok         bool        `json:"ok"`
	Error      *string     `json:"error"`
	Restaurant *Restaurant `json:"restaurant"`
}

// EditRestaurantOutput is the outcome of a restaurant edit
type EditRestaurantOutput struct {
	Ok    bool    `json:"ok"`
	Error *string `json:"error"`
}

// PromoteRestaurantOutput is the outcome of a restaurant promotion
type PromoteRestaurantOutput struct {
	Ok    bool    `json:"ok"`
	Error *string `json:"error"`
}
