package graphql

import (
	"context"
	"errors"

	"feastly.backend/internal/domain/entities"
	"feastly.backend/pkg/jwt"
	"github.com/google/uuid"
	gql "github.com/graphql-go/graphql"
)

// ErrAccessDenied is what every guard rejection surfaces as. The wire
// never distinguishes a missing token from a bad one.
var ErrAccessDenied = errors.New("access denied")

// AccountFinder resolves token claims to a live account.
type AccountFinder interface {
	FindByID(ctx context.Context, id uuid.UUID) (*entities.Account, error)
}

// Guard enforces the role policy table on guarded resolvers. Operations
// without a policy entry are public.
type Guard struct {
	tokens   *jwt.Service
	accounts AccountFinder
	policies map[string][]entities.UserRole
}

// DefaultPolicies maps operation names to the role sets allowed to call
// them.
func DefaultPolicies() map[string][]entities.UserRole {
	return map[string][]entities.UserRole{
		"me":                {entities.UserRoleAny},
		"userProfile":       {entities.UserRoleAny},
		"editProfile":       {entities.UserRoleAny},
		"myRestaurant":      {entities.UserRoleOwner},
		"createRestaurant":  {entities.UserRoleOwner},
		"editRestaurant":    {entities.UserRoleOwner},
		"promoteRestaurant": {entities.UserRoleOwner},
	}
}

func NewGuard(tokens *jwt.Service, accounts AccountFinder, policies map[string][]entities.UserRole) *Guard {
	return &Guard{
		tokens:   tokens,
		accounts: accounts,
		policies: policies,
	}
}

// Wrap returns resolve unchanged for public operations. For guarded
// ones it authenticates the caller, checks the role set and attaches
// the account to the resolver context before delegating.
func (g *Guard) Wrap(name string, resolve gql.FieldResolveFn) gql.FieldResolveFn {
	roles, guarded := g.policies[name]
	if !guarded {
		return resolve
	}
	return func(p gql.ResolveParams) (interface{}, error) {
		account, err := g.authenticate(p.Context)
		if err != nil {
			return nil, err
		}
		if !roleAllowed(roles, account.Role) {
			return nil, ErrAccessDenied
		}
		p.Context = WithAccount(p.Context, account)
		return resolve(p)
	}
}

func (g *Guard) authenticate(ctx context.Context) (*entities.Account, error) {
	token, ok := TokenFrom(ctx)
	if !ok {
		return nil, ErrAccessDenied
	}
	claims, err := g.tokens.Verify(token)
	if err != nil {
		return nil, ErrAccessDenied
	}
	account, err := g.accounts.FindByID(ctx, claims.AccountID)
	if err != nil {
		return nil, ErrAccessDenied
	}
	return account, nil
}

func roleAllowed(roles []entities.UserRole, role entities.UserRole) bool {
	for _, allowed := range roles {
		if allowed == entities.UserRoleAny || allowed == role {
			return true
		}
	}
	return false
}
