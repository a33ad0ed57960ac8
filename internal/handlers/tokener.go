package handlers

import (
	"context"
	"net/http"

	"github.com/ecotrack-team/ecotrack/internal/jwt"
)

// Tokener extracts and parses the bearer token carried by a request.
type Tokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
	GetClaims(ctx context.Context, tokenString string) (*jwt.Claims, error)
}

// userIDFromRequest resolves the authenticated user id from the request's
// bearer token.
func userIDFromRequest(ctx context.Context, r *http.Request, tokener Tokener) (int64, error) {
	tokenStr, err := tokener.GetTokenFromRequest(ctx, r)
	if err != nil {
		return 0, err
	}

	claims, err := tokener.GetClaims(ctx, tokenStr)
	if err != nil {
		return 0, err
	}

	return claims.UserID, nil
}
