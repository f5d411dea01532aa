package auth_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/tortas-api/internal/application/auth"
	"github.com/jhoicas/tortas-api/internal/application/dto"
	"github.com/jhoicas/tortas-api/internal/domain"
	"github.com/jhoicas/tortas-api/internal/domain/entity"
	"github.com/jhoicas/tortas-api/internal/infrastructure/memory"
	"github.com/jhoicas/tortas-api/pkg/jwt"
	"github.com/jhoicas/tortas-api/pkg/logger"
)

const testSecret = "test-secret"

func newAuth(t *testing.T) (*auth.AuthUseCase, *memory.UserRepo) {
	t.Helper()
	repo := memory.NewUserRepository()
	uc, err := auth.NewAuthUseCase(repo,
		auth.JWTConfig{Secret: testSecret, ExpMinutes: 60, Issuer: "test"},
		auth.AdminSeed{Email: "Admin@Tortas.pe", Password: "super-secreta-123", Name: "Admin"},
		logger.Nop())
	require.NoError(t, err)
	return uc, repo
}

func TestRegister_YLogin(t *testing.T) {
	uc, _ := newAuth(t)
	ctx := context.Background()

	out, err := uc.Register(ctx, dto.RegisterRequest{Name: "Ana", Email: "Ana@Mail.com", Password: "secreto1"})
	require.NoError(t, err)
	assert.True(t, out.Success)
	assert.Equal(t, "ana@mail.com", out.User.Email)
	assert.Equal(t, entity.RoleUser, out.User.Role)

	id, err := jwt.Parse(testSecret, out.Token)
	require.NoError(t, err)
	assert.Equal(t, out.User.ID, id.UserID)

	login, err := uc.Login(ctx, dto.LoginRequest{Email: "ANA@mail.com", Password: "secreto1"})
	require.NoError(t, err)
	assert.Equal(t, "Ana", login.User.Name)
}

func TestRegister_EmailDuplicadoNoModifica(t *testing.T) {
	uc, repo := newAuth(t)
	ctx := context.Background()
	_, err := uc.Register(ctx, dto.RegisterRequest{Name: "Ana", Email: "ana@mail.com", Password: "secreto1"})
	require.NoError(t, err)

	_, err = uc.Register(ctx, dto.RegisterRequest{Name: "Otra", Email: "ANA@MAIL.COM", Password: "otra-clave"})
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)

	u, _ := repo.GetByEmail(ctx, "ana@mail.com")
	require.NotNil(t, u)
	assert.Equal(t, "Ana", u.Name)

	_, err = uc.Register(ctx, dto.RegisterRequest{Name: "X", Email: "admin@tortas.pe", Password: "secreto1"})
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists, "el email del admin semilla está reservado")
}

func TestLogin_CredencialesInvalidas(t *testing.T) {
	uc, _ := newAuth(t)
	ctx := context.Background()
	_, err := uc.Register(ctx, dto.RegisterRequest{Name: "Ana", Email: "ana@mail.com", Password: "secreto1"})
	require.NoError(t, err)

	_, err = uc.Login(ctx, dto.LoginRequest{Email: "ana@mail.com", Password: "incorrecta"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	_, err = uc.Login(ctx, dto.LoginRequest{Email: "nadie@mail.com", Password: "secreto1"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestLogin_AdminSemillaSinCuenta(t *testing.T) {
	uc, _ := newAuth(t)
	out, err := uc.Login(context.Background(), dto.LoginRequest{Email: "admin@tortas.pe", Password: "super-secreta-123"})
	require.NoError(t, err)
	assert.Equal(t, entity.RoleAdmin, out.User.Role)
	assert.Equal(t, auth.BootstrapAdminID, out.User.ID)

	_, err = uc.Login(context.Background(), dto.LoginRequest{Email: "admin@tortas.pe", Password: "otra"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestEnsureAdmin(t *testing.T) {
	uc, repo := newAuth(t)
	ctx := context.Background()
	require.NoError(t, uc.EnsureAdmin(ctx))
	require.NoError(t, uc.EnsureAdmin(ctx), "idempotente")

	u, err := repo.GetByEmail(ctx, "admin@tortas.pe")
	require.NoError(t, err)
	require.NotNil(t, u)
	assert.Equal(t, entity.RoleAdmin, u.Role)

	out, err := uc.Login(ctx, dto.LoginRequest{Email: "admin@tortas.pe", Password: "super-secreta-123"})
	require.NoError(t, err)
	assert.Equal(t, u.ID, out.User.ID)
}

func TestIsAdmin(t *testing.T) {
	uc, _ := newAuth(t)
	assert.True(t, uc.IsAdmin(&entity.Session{Role: entity.RoleAdmin}))
	assert.False(t, uc.IsAdmin(&entity.Session{Role: entity.RoleUser}))
	assert.False(t, uc.IsAdmin(nil))
}

func TestAdministracionDeUsuarios(t *testing.T) {
	uc, _ := newAuth(t)
	ctx := context.Background()
	require.NoError(t, uc.EnsureAdmin(ctx))
	ana, err := uc.Register(ctx, dto.RegisterRequest{Name: "Ana", Email: "ana@mail.com", Password: "secreto1"})
	require.NoError(t, err)

	users, err := uc.ListUsers(ctx)
	require.NoError(t, err)
	assert.Len(t, users, 2)

	stats, err := uc.UserStats(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, stats.Total)
	assert.Equal(t, 1, stats.Admins)
	assert.Equal(t, 1, stats.Regular)

	updated, err := uc.UpdateRole(ctx, ana.User.ID, entity.RoleAdmin)
	require.NoError(t, err)
	assert.Equal(t, entity.RoleAdmin, updated.Role)

	_, err = uc.UpdateRole(ctx, ana.User.ID, "superuser")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.UpdateRole(ctx, "nope", entity.RoleUser)
	assert.ErrorIs(t, err, domain.ErrUserNotFound)

	require.NoError(t, uc.DeleteUser(ctx, ana.User.ID))
	assert.ErrorIs(t, uc.DeleteUser(ctx, ana.User.ID), domain.ErrUserNotFound)
}

func TestCurrentRole_SigueAlStore(t *testing.T) {
	uc, repo := newAuth(t)
	ctx := context.Background()
	out, err := uc.Register(ctx, dto.RegisterRequest{Name: "Ana", Email: "ana@mail.com", Password: "secreto1"})
	require.NoError(t, err)
	_, err = uc.UpdateRole(ctx, out.User.ID, entity.RoleAdmin)
	require.NoError(t, err)

	// token emitido como admin
	s := &entity.Session{UserID: out.User.ID, Email: "ana@mail.com", Role: entity.RoleAdmin}
	role, err := uc.CurrentRole(ctx, s)
	require.NoError(t, err)
	assert.Equal(t, entity.RoleAdmin, role)

	_, err = uc.UpdateRole(ctx, out.User.ID, entity.RoleUser)
	require.NoError(t, err)
	role, err = uc.CurrentRole(ctx, s)
	require.NoError(t, err)
	assert.Equal(t, entity.RoleUser, role, "la degradación aplica sin esperar a que expire el token")

	require.NoError(t, repo.Delete(ctx, out.User.ID))
	role, err = uc.CurrentRole(ctx, s)
	require.NoError(t, err)
	assert.Empty(t, role)
}

func TestCurrentRole_AdminSemilla(t *testing.T) {
	uc, _ := newAuth(t)
	ctx := context.Background()

	role, err := uc.CurrentRole(ctx, &entity.Session{UserID: auth.BootstrapAdminID, Email: "admin@tortas.pe"})
	require.NoError(t, err)
	assert.Equal(t, entity.RoleAdmin, role)

	role, err = uc.CurrentRole(ctx, &entity.Session{UserID: auth.BootstrapAdminID, Email: "otro@tortas.pe", Role: entity.RoleAdmin})
	require.NoError(t, err)
	assert.Empty(t, role)

	role, err = uc.CurrentRole(ctx, nil)
	require.NoError(t, err)
	assert.Empty(t, role)
}
