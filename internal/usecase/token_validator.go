package usecase

import (
	"tripmatch/internal/domain/identity"
	"tripmatch/internal/pkg/jwt"
)

// TokenValidator turns a bearer token into a verified Principal for middleware
type TokenValidator interface {
	ValidateToken(tokenString string) (identity.Principal, error)
}

type tokenValidatorImpl struct {
	jwtService *jwt.Service
}

func NewTokenValidator(jwtService *jwt.Service) TokenValidator {
	return &tokenValidatorImpl{
		jwtService: jwtService,
	}
}

func (t *tokenValidatorImpl) ValidateToken(tokenString string) (identity.Principal, error) {
	claims, err := t.jwtService.ValidateToken(tokenString)
	if err != nil {
		return identity.Principal{}, err
	}
	return identity.NewPrincipal(claims.Subject)
}
