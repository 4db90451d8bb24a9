package graphql

import (
	"context"

	"feastly.backend/internal/domain/entities"
)

type contextKey string

const (
	tokenKey   contextKey = "token"
	accountKey contextKey = "account"
)

// WithToken stores the raw token extracted from the x-jwt header.
func WithToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, tokenKey, token)
}

// TokenFrom returns the raw token carried by the request context.
func TokenFrom(ctx context.Context) (string, bool) {
	token, ok := ctx.Value(tokenKey).(string)
	return token, ok && token != ""
}

// WithAccount stores the authenticated account resolved by the guard.
func WithAccount(ctx context.Context, account *entities.Account) context.Context {
	return context.WithValue(ctx, accountKey, account)
}

// AccountFrom returns the authenticated account, if the guard attached one.
func AccountFrom(ctx context.Context) (*entities.Account, bool) {
	account, ok := ctx.Value(accountKey).(*entities.Account)
	return account, ok && account != nil
}
