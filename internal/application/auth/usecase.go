package auth

import (
	"fmt"
	"strings"
	"time"

	"github.com/jhoicas/feria-pos/internal/application/dto"
	"github.com/jhoicas/feria-pos/internal/domain"
	"github.com/jhoicas/feria-pos/internal/domain/entity"
	"github.com/jhoicas/feria-pos/pkg/jwt"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// displayNames nombre visible de cada rol en la barra lateral.
var displayNames = map[entity.Role]string{
	entity.RoleMaster:   "Master",
	entity.RoleAdmin:    "Auditor",
	entity.RoleOperator: "Ventas",
	entity.RolePromoter: "Preventa",
}

// AuthUseCase login por selección de rol. No hay contraseñas: la sesión se
// firma con JWT y el rol viaja en el token.
type AuthUseCase struct {
	jwtCfg JWTConfig
	now    func() time.Time
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{jwtCfg: jwtCfg, now: time.Now}
}

// Login abre una sesión para el rol elegido y emite el token.
func (uc *AuthUseCase) Login(in dto.LoginRequest) (*dto.LoginResponse, error) {
	if err := dto.Validate(&in); err != nil {
		return nil, err
	}
	role, err := entity.ParseRole(strings.ToUpper(strings.TrimSpace(in.Role)))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}
	user := entity.User{
		ID:       fmt.Sprintf("user-%s-%d", role, uc.now().UnixMilli()),
		Username: displayNames[role],
		Role:     role,
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, user.Username, string(user.Role), uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Token:     token,
		ExpiresIn: uc.jwtCfg.ExpMinutes * 60,
		User:      toUserResponse(user),
	}, nil
}

func toUserResponse(u entity.User) dto.UserResponse {
	return dto.UserResponse{ID: u.ID, Username: u.Username, Role: string(u.Role)}
}
