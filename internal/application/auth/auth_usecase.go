// Package auth implementa el caso de uso de autenticación. Es la frontera
// externa del núcleo: el resto de la aplicación solo consume la señal de
// "autenticado" que valida el middleware a partir del token emitido aquí.
package auth

import (
	"github.com/tu-usuario/almacen-pro/internal/application/dto"
	"github.com/tu-usuario/almacen-pro/internal/domain"
	"github.com/tu-usuario/almacen-pro/internal/domain/repository"
	"github.com/tu-usuario/almacen-pro/pkg/jwt"
	"github.com/tu-usuario/almacen-pro/pkg/logger"
	"golang.org/x/crypto/bcrypt"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase caso de uso de login.
type AuthUseCase struct {
	users  repository.UserRepository
	jwtCfg JWTConfig
	log    *logger.Logger
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(users repository.UserRepository, jwtCfg JWTConfig, log *logger.Logger) *AuthUseCase {
	return &AuthUseCase{users: users, jwtCfg: jwtCfg, log: log}
}

// Login verifica username/password, genera JWT y retorna token + usuario.
// Credenciales incorrectas retornan ErrUnauthorized sin distinguir si falló
// el usuario o el password.
func (uc *AuthUseCase) Login(in dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := uc.users.FindByUsername(in.Username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		uc.log.Warn().Str("username", in.Username).Msg("intento de login fallido")
		return nil, domain.ErrUnauthorized
	}

	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, user.Username, user.Role, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}

	uc.log.Info().Str("username", user.Username).Msg("login exitoso")
	return &dto.LoginResponse{
		Token:    token,
		UserID:   user.ID,
		Username: user.Username,
		Name:     user.Name,
		Role:     user.Role,
	}, nil
}
