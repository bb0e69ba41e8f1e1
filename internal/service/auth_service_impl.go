package service

import (
	"context"
	"crypto/subtle"

	"github.com/digimenu/catalog-service/config"
	"github.com/digimenu/catalog-service/internal/dto"
	"github.com/digimenu/catalog-service/pkg/errs"
	"github.com/digimenu/catalog-service/pkg/utils"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"
)

const adminRole = "admin"

// AuthServiceImpl verifies the single configured administrator identity.
// Swap in another AuthService implementation to back this with a user store.
type AuthServiceImpl struct {
	config config.Config
}

func CreateAuthService(config config.Config) AuthService {
	return &AuthServiceImpl{config: config}
}

func (s *AuthServiceImpl) Login(ctx context.Context, payload dto.LoginRequest) (respPayload dto.LoginResponse, err error) {
	usernameMatch := subtle.ConstantTimeCompare([]byte(payload.Username), []byte(s.config.AdminUsername)) == 1

	err = bcrypt.CompareHashAndPassword([]byte(s.config.AdminPasswordHash), []byte(payload.Password))
	if err != nil || !usernameMatch {
		log.Ctx(ctx).Error().Err(err).Str("component", "Login").Msg("")
		// Never reveal which credential was wrong
		return respPayload, errs.ErrInvalidCredentials
	}

	token, err := utils.CreateJWTToken(payload.Username, adminRole, s.config.JWTSecret, s.config.TokenExpiry)
	if err != nil {
		return
	}

	respPayload.Token = token
	respPayload.Role = adminRole

	return
}
