package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/tortas-api/internal/application/dto"
	"github.com/jhoicas/tortas-api/internal/domain"
	"github.com/jhoicas/tortas-api/internal/domain/entity"
	"github.com/jhoicas/tortas-api/internal/domain/repository"
	"github.com/jhoicas/tortas-api/pkg/idgen"
	"github.com/jhoicas/tortas-api/pkg/jwt"
	"github.com/jhoicas/tortas-api/pkg/logger"
)

// BootstrapAdminID id de sesión del administrador inicial cuando aún no existe en el store.
const BootstrapAdminID = "bootstrap-admin"

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AdminSeed credencial del administrador inicial (desde configuración).
type AdminSeed struct {
	Email    string
	Password string
	Name     string
}

// AuthUseCase casos de uso de autenticación y administración de usuarios.
type AuthUseCase struct {
	userRepo repository.UserRepository
	jwtCfg   JWTConfig
	log      *logger.Logger

	adminEmail string
	adminName  string
	adminHash  []byte // bcrypt de la contraseña semilla; nil si no hay admin configurado
}

// NewAuthUseCase construye el caso de uso. La contraseña del admin semilla se hashea una vez aquí
// y no se conserva en texto plano.
func NewAuthUseCase(userRepo repository.UserRepository, jwtCfg JWTConfig, admin AdminSeed, log *logger.Logger) (*AuthUseCase, error) {
	uc := &AuthUseCase{userRepo: userRepo, jwtCfg: jwtCfg, log: log.Named("auth")}
	if admin.Email != "" && admin.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(admin.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, fmt.Errorf("hash admin: %w", err)
		}
		uc.adminEmail = entity.NormalizeEmail(admin.Email)
		uc.adminName = admin.Name
		if uc.adminName == "" {
			uc.adminName = "Administrador"
		}
		uc.adminHash = hash
	}
	return uc, nil
}

// Register crea una cuenta con rol user. Email duplicado (sin distinguir mayúsculas) → ErrEmailAlreadyExists.
func (uc *AuthUseCase) Register(ctx context.Context, in dto.RegisterRequest) (*dto.AuthResponse, error) {
	email := entity.NormalizeEmail(in.Email)
	name := strings.TrimSpace(in.Name)
	if email == "" || name == "" || in.Password == "" {
		return nil, domain.ErrInvalidInput
	}
	existing, err := uc.userRepo.GetByEmail(ctx, email)
	if err != nil {
		uc.log.Error().Err(err).Str("email", email).Msg("buscar usuario")
		return nil, fmt.Errorf("buscar usuario: %w", err)
	}
	if existing != nil || (uc.adminHash != nil && email == uc.adminEmail) {
		return nil, domain.ErrEmailAlreadyExists
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	user := &entity.User{
		ID:           idgen.NewID(),
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
		Role:         entity.RoleUser,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, domain.ErrEmailAlreadyExists) {
			return nil, err
		}
		uc.log.Error().Err(err).Str("email", email).Msg("crear usuario")
		return nil, fmt.Errorf("crear usuario: %w", err)
	}
	uc.log.Info().Str("user_id", user.ID).Str("email", email).Msg("usuario registrado")
	return uc.session(user.ID, user.Email, user.Name, user.Role)
}

// Login verifica credenciales. El admin semilla entra aunque su cuenta no esté en el store.
// Cualquier fallo se reporta como ErrUnauthorized, sin revelar si el email existe.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.AuthResponse, error) {
	email := entity.NormalizeEmail(in.Email)
	if uc.adminHash != nil && email == uc.adminEmail &&
		bcrypt.CompareHashAndPassword(uc.adminHash, []byte(in.Password)) == nil {
		id, name := BootstrapAdminID, uc.adminName
		if u, err := uc.userRepo.GetByEmail(ctx, email); err == nil && u != nil {
			id, name = u.ID, u.Name
		}
		return uc.session(id, email, name, entity.RoleAdmin)
	}

	user, err := uc.userRepo.GetByEmail(ctx, email)
	if err != nil {
		uc.log.Error().Err(err).Str("email", email).Msg("buscar usuario")
		return nil, fmt.Errorf("buscar usuario: %w", err)
	}
	if user == nil {
		return nil, domain.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	return uc.session(user.ID, user.Email, user.Name, user.Role)
}

// IsAdmin comparación de rol sobre la sesión.
func (uc *AuthUseCase) IsAdmin(s *entity.Session) bool {
	return s.IsAdmin()
}

// CurrentRole rol vigente de la sesión según el store, no el del token. Devuelve "" si la
// cuenta ya no existe. El admin semilla conserva su rol como en Login.
func (uc *AuthUseCase) CurrentRole(ctx context.Context, s *entity.Session) (string, error) {
	if s == nil {
		return "", nil
	}
	if uc.adminHash != nil && entity.NormalizeEmail(s.Email) == uc.adminEmail {
		return entity.RoleAdmin, nil
	}
	if s.UserID == BootstrapAdminID {
		return "", nil
	}
	u, err := uc.userRepo.GetByID(ctx, s.UserID)
	if err != nil {
		uc.log.Error().Err(err).Str("user_id", s.UserID).Msg("rol vigente")
		return "", fmt.Errorf("buscar usuario: %w", err)
	}
	if u == nil {
		return "", nil
	}
	return u.Role, nil
}

// EnsureAdmin crea la cuenta del admin semilla si no existe, o la promueve a admin.
func (uc *AuthUseCase) EnsureAdmin(ctx context.Context) error {
	if uc.adminHash == nil {
		uc.log.Warn().Msg("sin administrador semilla configurado (ADMIN_EMAIL/ADMIN_PASSWORD)")
		return nil
	}
	existing, err := uc.userRepo.GetByEmail(ctx, uc.adminEmail)
	if err != nil {
		return fmt.Errorf("buscar admin: %w", err)
	}
	if existing != nil {
		if existing.Role != entity.RoleAdmin {
			if _, err := uc.userRepo.UpdateRole(ctx, existing.ID, entity.RoleAdmin); err != nil {
				return fmt.Errorf("promover admin: %w", err)
			}
			uc.log.Info().Str("email", uc.adminEmail).Msg("administrador semilla promovido")
		}
		return nil
	}
	now := time.Now()
	admin := &entity.User{
		ID:           idgen.NewID(),
		Name:         uc.adminName,
		Email:        uc.adminEmail,
		PasswordHash: string(uc.adminHash),
		Role:         entity.RoleAdmin,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.userRepo.Create(ctx, admin); err != nil && !errors.Is(err, domain.ErrEmailAlreadyExists) {
		return fmt.Errorf("crear admin: %w", err)
	}
	uc.log.Info().Str("email", uc.adminEmail).Msg("administrador semilla creado")
	return nil
}

func (uc *AuthUseCase) session(id, email, name, role string) (*dto.AuthResponse, error) {
	token, err := jwt.Generate(uc.jwtCfg.Secret, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes, jwt.Identity{
		UserID: id, Email: email, Name: name, Role: role,
	})
	if err != nil {
		return nil, fmt.Errorf("generar token: %w", err)
	}
	return &dto.AuthResponse{
		Success: true,
		User:    dto.SessionUser{ID: id, Email: email, Name: name, Role: role},
		Token:   token,
	}, nil
}
