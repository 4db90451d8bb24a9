package graphql

import (
	"feastly.backend/internal/domain/entities"
	gql "github.com/graphql-go/graphql"
)

var roleEnum = gql.NewEnum(gql.EnumConfig{
	Name: "UserRole",
	Values: gql.EnumValueConfigMap{
		"Client":   &gql.EnumValueConfig{Value: string(entities.UserRoleClient)},
		"Owner":    &gql.EnumValueConfig{Value: string(entities.UserRoleOwner)},
		"Delivery": &gql.EnumValueConfig{Value: string(entities.UserRoleDelivery)},
	},
})

var userType = gql.NewObject(gql.ObjectConfig{
	Name: "User",
	Fields: gql.Fields{
		"id":    &gql.Field{Type: gql.NewNonNull(gql.ID)},
		"email": &gql.Field{Type: gql.NewNonNull(gql.String)},
		"role": &gql.Field{
			Type: gql.NewNonNull(roleEnum),
			// The enum lookup is keyed by plain strings, so the named
			// role type has to be unwrapped here.
			Resolve: func(p gql.ResolveParams) (interface{}, error) {
				account, ok := p.Source.(*entities.Account)
				if !ok {
					return nil, nil
				}
				return string(account.Role), nil
			},
		},
		"verified":  &gql.Field{Type: gql.NewNonNull(gql.Boolean)},
		"createdAt": &gql.Field{Type: gql.DateTime},
		"updatedAt": &gql.Field{Type: gql.DateTime},
	},
})

var restaurantType = gql.NewObject(gql.ObjectConfig{
	Name: "Restaurant",
	Fields: gql.Fields{
		"id":           &gql.Field{Type: gql.NewNonNull(gql.ID)},
		"name":         &gql.Field{Type: gql.NewNonNull(gql.String)},
		"coverImg":     &gql.Field{Type: gql.String},
		"address":      &gql.Field{Type: gql.String},
		"categoryName": &gql.Field{Type: gql.String},
		"ownerId":      &gql.Field{Type: gql.NewNonNull(gql.ID)},
		"isPromoted":   &gql.Field{Type: gql.NewNonNull(gql.Boolean)},
		"promotedUntil": &gql.Field{
			Type: gql.DateTime,
			// null.Time is opaque to the default resolver.
			Resolve: func(p gql.ResolveParams) (interface{}, error) {
				restaurant, ok := p.Source.(*entities.Restaurant)
				if !ok || !restaurant.PromotedUntil.Valid {
					return nil, nil
				}
				return restaurant.PromotedUntil.Time, nil
			},
		},
		"createdAt": &gql.Field{Type: gql.DateTime},
		"updatedAt": &gql.Field{Type: gql.DateTime},
	},
})

func outcomeFields(extra gql.Fields) gql.Fields {
	fields := gql.Fields{
		"ok":    &gql.Field{Type: gql.NewNonNull(gql.Boolean)},
		"error": &gql.Field{Type: gql.String},
	}
	for name, field := range extra {
		fields[name] = field
	}
	return fields
}

var createAccountOutputType = gql.NewObject(gql.ObjectConfig{
	Name:   "CreateAccountOutput",
	Fields: outcomeFields(nil),
})

var loginOutputType = gql.NewObject(gql.ObjectConfig{
	Name: "LoginOutput",
	Fields: outcomeFields(gql.Fields{
		"token": &gql.Field{Type: gql.String},
	}),
})

var userProfileOutputType = gql.NewObject(gql.ObjectConfig{
	Name: "UserProfileOutput",
	Fields: outcomeFields(gql.Fields{
		"user": &gql.Field{Type: userType},
	}),
})

var editProfileOutputType = gql.NewObject(gql.ObjectConfig{
	Name:   "EditProfileOutput",
	Fields: outcomeFields(nil),
})

var verifyEmailOutputType = gql.NewObject(gql.ObjectConfig{
	Name:   "VerifyEmailOutput",
	Fields: outcomeFields(nil),
})

var createRestaurantOutputType = gql.NewObject(gql.ObjectConfig{
	Name: "CreateRestaurantOutput",
	Fields: outcomeFields(gql.Fields{
		"restaurantId": &gql.Field{Type: gql.ID},
	}),
})

var restaurantsOutputType = gql.NewObject(gql.ObjectConfig{
	Name: "RestaurantsOutput",
	Fields: outcomeFields(gql.Fields{
		"restaurants": &gql.Field{Type: gql.NewList(restaurantType)},
	}),
})

var myRestaurantOutputType = gql.NewObject(gql.ObjectConfig{
	Name: "MyRestaurantOutput",
	Fields: outcomeFields(gql.Fields{
		"restaurant": &gql.Field{Type: restaurantType},
	}),
})

var editRestaurantOutputType = gql.NewObject(gql.ObjectConfig{
	Name:   "EditRestaurantOutput",
	Fields: outcomeFields(nil),
})

var promoteRestaurantOutputType = gql.NewObject(gql.ObjectConfig{
	Name:   "PromoteRestaurantOutput",
	Fields: outcomeFields(nil),
})

var createAccountInputType = gql.NewInputObject(gql.InputObjectConfig{
	Name: "CreateAccountInput",
	Fields: gql.InputObjectConfigFieldMap{
		"email":    &gql.InputObjectFieldConfig{Type: gql.NewNonNull(gql.String)},
		"password": &gql.InputObjectFieldConfig{Type: gql.NewNonNull(gql.String)},
		"role":     &gql.InputObjectFieldConfig{Type: gql.NewNonNull(roleEnum)},
	},
})

var loginInputType = gql.NewInputObject(gql.InputObjectConfig{
	Name: "LoginInput",
	Fields: gql.InputObjectConfigFieldMap{
		"email":    &gql.InputObjectFieldConfig{Type: gql.NewNonNull(gql.String)},
		"password": &gql.InputObjectFieldConfig{Type: gql.NewNonNull(gql.String)},
	},
})

var editProfileInputType = gql.NewInputObject(gql.InputObjectConfig{
	Name: "EditProfileInput",
	Fields: gql.InputObjectConfigFieldMap{
		"email":    &gql.InputObjectFieldConfig{Type: gql.String},
		"password": &gql.InputObjectFieldConfig{Type: gql.String},
	},
})

var verifyEmailInputType = gql.NewInputObject(gql.InputObjectConfig{
	Name: "VerifyEmailInput",
	Fields: gql.InputObjectConfigFieldMap{
		"code": &gql.InputObjectFieldConfig{Type: gql.NewNonNull(gql.String)},
	},
})

var createRestaurantInputType = gql.NewInputObject(gql.InputObjectConfig{
	Name: "CreateRestaurantInput",
	Fields: gql.InputObjectConfigFieldMap{
		"name":         &gql.InputObjectFieldConfig{Type: gql.NewNonNull(gql.String)},
		"coverImg":     &gql.InputObjectFieldConfig{Type: gql.String},
		"address":      &gql.InputObjectFieldConfig{Type: gql.String},
		"categoryName": &gql.InputObjectFieldConfig{Type: gql.String},
	},
})

var editRestaurantInputType = gql.NewInputObject(gql.InputObjectConfig{
	Name: "EditRestaurantInput",
	Fields: gql.InputObjectConfigFieldMap{
		"restaurantId": &gql.InputObjectFieldConfig{Type: gql.NewNonNull(gql.ID)},
		"name":         &gql.InputObjectFieldConfig{Type: gql.String},
		"coverImg":     &gql.InputObjectFieldConfig{Type: gql.String},
		"address":      &gql.InputObjectFieldConfig{Type: gql.String},
		"categoryName": &gql.InputObjectFieldConfig{Type: gql.String},
	},
})

var promoteRestaurantInputType = gql.NewInputObject(gql.InputObjectConfig{
	Name: "PromoteRestaurantInput",
	Fields: gql.InputObjectConfigFieldMap{
		"restaurantId": &gql.InputObjectFieldConfig{Type: gql.NewNonNull(gql.ID)},
	},
})
