package graphql

import (
	"feastly.backend/internal/domain/entities"
	domainerrors "feastly.backend/internal/domain/errors"
	"feastly.backend/internal/usecases"
	"github.com/google/uuid"
	gql "github.com/graphql-go/graphql"
)

// Resolver binds the usecase layer to the GraphQL schema.
type Resolver struct {
	users       *usecases.UserUsecase
	restaurants *usecases.RestaurantUsecase
	guard       *Guard
}

func NewResolver(users *usecases.UserUsecase, restaurants *usecases.RestaurantUsecase, guard *Guard) *Resolver {
	return &Resolver{
		users:       users,
		restaurants: restaurants,
		guard:       guard,
	}
}

// NewSchema assembles the executable schema. Every field resolver goes
// through the guard, which passes public operations straight through.
func NewSchema(r *Resolver) (gql.Schema, error) {
	query := gql.NewObject(gql.ObjectConfig{
		Name: "Query",
		Fields: gql.Fields{
			"hi": &gql.Field{
				Type:    gql.NewNonNull(gql.Boolean),
				Resolve: r.guard.Wrap("hi", r.resolveHi),
			},
			"me": &gql.Field{
				Type:    userType,
				Resolve: r.guard.Wrap("me", r.resolveMe),
			},
			"userProfile": &gql.Field{
				Type: gql.NewNonNull(userProfileOutputType),
				Args: gql.FieldConfigArgument{
					"userId": &gql.ArgumentConfig{Type: gql.NewNonNull(gql.ID)},
				},
				Resolve: r.guard.Wrap("userProfile", r.resolveUserProfile),
			},
			"restaurants": &gql.Field{
				Type:    gql.NewNonNull(restaurantsOutputType),
				Resolve: r.guard.Wrap("restaurants", r.resolveRestaurants),
			},
			"myRestaurant": &gql.Field{
				Type:    gql.NewNonNull(myRestaurantOutputType),
				Resolve: r.guard.Wrap("myRestaurant", r.resolveMyRestaurant),
			},
		},
	})

	mutation := gql.NewObject(gql.ObjectConfig{
		Name: "Mutation",
		Fields: gql.Fields{
			"createAccount": &gql.Field{
				Type: gql.NewNonNull(createAccountOutputType),
				Args: gql.FieldConfigArgument{
					"input": &gql.ArgumentConfig{Type: gql.NewNonNull(createAccountInputType)},
				},
				Resolve: r.guard.Wrap("createAccount", r.resolveCreateAccount),
			},
			"login": &gql.Field{
				Type: gql.NewNonNull(loginOutputType),
				Args: gql.FieldConfigArgument{
					"input": &gql.ArgumentConfig{Type: gql.NewNonNull(loginInputType)},
				},
				Resolve: r.guard.Wrap("login", r.resolveLogin),
			},
			"editProfile": &gql.Field{
				Type: gql.NewNonNull(editProfileOutputType),
				Args: gql.FieldConfigArgument{
					"input": &gql.ArgumentConfig{Type: gql.NewNonNull(editProfileInputType)},
				},
				Resolve: r.guard.Wrap("editProfile", r.resolveEditProfile),
			},
			"verifyEmail": &gql.Field{
				Type: gql.NewNonNull(verifyEmailOutputType),
				Args: gql.FieldConfigArgument{
					"input": &gql.ArgumentConfig{Type: gql.NewNonNull(verifyEmailInputType)},
				},
				Resolve: r.guard.Wrap("verifyEmail", r.resolveVerifyEmail),
			},
			"createRestaurant": &gql.Field{
				Type: gql.NewNonNull(createRestaurantOutputType),
				Args: gql.FieldConfigArgument{
					"input": &gql.ArgumentConfig{Type: gql.NewNonNull(createRestaurantInputType)},
				},
				Resolve: r.guard.Wrap("createRestaurant", r.resolveCreateRestaurant),
			},
			"editRestaurant": &gql.Field{
				Type: gql.NewNonNull(editRestaurantOutputType),
				Args: gql.FieldConfigArgument{
					"input": &gql.ArgumentConfig{Type: gql.NewNonNull(editRestaurantInputType)},
				},
				Resolve: r.guard.Wrap("editRestaurant", r.resolveEditRestaurant),
			},
			"promoteRestaurant": &gql.Field{
				Type: gql.NewNonNull(promoteRestaurantOutputType),
				Args: gql.FieldConfigArgument{
					"input": &gql.ArgumentConfig{Type: gql.NewNonNull(promoteRestaurantInputType)},
				},
				Resolve: r.guard.Wrap("promoteRestaurant", r.resolvePromoteRestaurant),
			},
		},
	})

	return gql.NewSchema(gql.SchemaConfig{
		Query:    query,
		Mutation: mutation,
	})
}

func (r *Resolver) resolveHi(p gql.ResolveParams) (interface{}, error) {
	return true, nil
}

func (r *Resolver) resolveMe(p gql.ResolveParams) (interface{}, error) {
	account, ok := AccountFrom(p.Context)
	if !ok {
		return nil, ErrAccessDenied
	}
	return account, nil
}

func (r *Resolver) resolveUserProfile(p gql.ResolveParams) (interface{}, error) {
	rawID, _ := p.Args["userId"].(string)
	userID, err := uuid.Parse(rawID)
	if err != nil {
		return &entities.UserProfileOutput{Error: entities.Reason(domainerrors.ReasonProfileNotFound)}, nil
	}
	return r.users.UserProfile(p.Context, userID), nil
}

func (r *Resolver) resolveRestaurants(p gql.ResolveParams) (interface{}, error) {
	return r.restaurants.Restaurants(p.Context), nil
}

func (r *Resolver) resolveMyRestaurant(p gql.ResolveParams) (interface{}, error) {
	account, ok := AccountFrom(p.Context)
	if !ok {
		return nil, ErrAccessDenied
	}
	return r.restaurants.MyRestaurant(p.Context, account), nil
}

func (r *Resolver) resolveCreateAccount(p gql.ResolveParams) (interface{}, error) {
	input := inputArg(p)
	return r.users.CreateAccount(p.Context, &entities.CreateAccountInput{
		Email:    stringArg(input, "email"),
		Password: stringArg(input, "password"),
		Role:     entities.UserRole(stringArg(input, "role")),
	}), nil
}

func (r *Resolver) resolveLogin(p gql.ResolveParams) (interface{}, error) {
	input := inputArg(p)
	return r.users.Login(p.Context, &entities.LoginInput{
		Email:    stringArg(input, "email"),
		Password: stringArg(input, "password"),
	}), nil
}

func (r *Resolver) resolveEditProfile(p gql.ResolveParams) (interface{}, error) {
	account, ok := AccountFrom(p.Context)
	if !ok {
		return nil, ErrAccessDenied
	}
	input := inputArg(p)
	return r.users.EditProfile(p.Context, account.ID, &entities.EditProfileInput{
		Email:    optionalStringArg(input, "email"),
		Password: optionalStringArg(input, "password"),
	}), nil
}

func (r *Resolver) resolveVerifyEmail(p gql.ResolveParams) (interface{}, error) {
	input := inputArg(p)
	return r.users.VerifyEmail(p.Context, stringArg(input, "code")), nil
}

func (r *Resolver) resolveCreateRestaurant(p gql.ResolveParams) (interface{}, error) {
	account, ok := AccountFrom(p.Context)
	if !ok {
		return nil, ErrAccessDenied
	}
	input := inputArg(p)
	return r.restaurants.CreateRestaurant(p.Context, account, &entities.CreateRestaurantInput{
		Name:         stringArg(input, "name"),
		CoverImg:     stringArg(input, "coverImg"),
		Address:      stringArg(input, "address"),
		CategoryName: stringArg(input, "categoryName"),
	}), nil
}

func (r *Resolver) resolveEditRestaurant(p gql.ResolveParams) (interface{}, error) {
	account, ok := AccountFrom(p.Context)
	if !ok {
		return nil, ErrAccessDenied
	}
	input := inputArg(p)
	restaurantID, err := uuid.Parse(stringArg(input, "restaurantId"))
	if err != nil {
		return &entities.EditRestaurantOutput{Error: entities.Reason(domainerrors.ReasonRestaurantNotFound)}, nil
	}
	return r.restaurants.EditRestaurant(p.Context, account, &entities.EditRestaurantInput{
		RestaurantID: restaurantID,
		Name:         optionalStringArg(input, "name"),
		CoverImg:     optionalStringArg(input, "coverImg"),
		Address:      optionalStringArg(input, "address"),
		CategoryName: optionalStringArg(input, "categoryName"),
	}), nil
}

func (r *Resolver) resolvePromoteRestaurant(p gql.ResolveParams) (interface{}, error) {
	account, ok := AccountFrom(p.Context)
	if !ok {
		return nil, ErrAccessDenied
	}
	input := inputArg(p)
	restaurantID, err := uuid.Parse(stringArg(input, "restaurantId"))
	if err != nil {
		return &entities.PromoteRestaurantOutput{Error: entities.Reason(domainerrors.ReasonRestaurantNotFound)}, nil
	}
	return r.restaurants.PromoteRestaurant(p.Context, account, &entities.PromoteRestaurantInput{
		RestaurantID: restaurantID,
	}), nil
}

func inputArg(p gql.ResolveParams) map[string]interface{} {
	input, _ := p.Args["input"].(map[string]interface{})
	return input
}

func stringArg(input map[string]interface{}, key string) string {
	value, _ := input[key].(string)
	return value
}

func optionalStringArg(input map[string]interface{}, key string) *string {
	value, ok := input[key].(string)
	if !ok || value == "" {
		return nil
	}
	return &value
}
