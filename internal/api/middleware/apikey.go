package middleware

import (
	"errors"
	"fmt"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"

	"github.com/vietanh2810/cafe-api/internal/api/handler/v1/response"
)

const (
	APIKeyQueryParam = "api-key"

	msgWrongAPIKey = "Sorry, that's not allowed. Make sure you have the correct api_key."
)

var ErrNoAPIKey = errors.New("no api key configured")

// APIKeyGuard checks a shared secret. Only the bcrypt hash of the secret is
// kept in memory.
type APIKeyGuard struct {
	hash []byte
}

// NewAPIKeyGuard accepts either the plain key or a bcrypt hash of it. The
// hash wins when both are given.
func NewAPIKeyGuard(key, keyHash string) (*APIKeyGuard, error) {
	if keyHash != "" {
		if _, err := bcrypt.Cost([]byte(keyHash)); err != nil {
			return nil, fmt.Errorf("invalid api key hash -> %w", err)
		}

		return &APIKeyGuard{hash: []byte(keyHash)}, nil
	}

	if key == "" {
		return nil, ErrNoAPIKey
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(key), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("bcrypt.GenerateFromPassword -> %w", err)
	}

	return &APIKeyGuard{hash: hash}, nil
}

func (g *APIKeyGuard) Allow(key string) bool {
	if g == nil || key == "" {
		return false
	}

	return bcrypt.CompareHashAndPassword(g.hash, []byte(key)) == nil
}

// VerifyQueryKey rejects the request with 403 unless the api-key query
// parameter matches. A nil guard rejects everything.
func (g *APIKeyGuard) VerifyQueryKey() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		if !g.Allow(ctx.Query(APIKeyQueryParam)) {
			response.RenderErr(ctx, response.ErrPermissionDenied(msgWrongAPIKey))
			return
		}

		ctx.Next()
	}
}
