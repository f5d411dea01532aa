package memory_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/tortas-api/internal/domain"
	"github.com/jhoicas/tortas-api/internal/domain/entity"
	"github.com/jhoicas/tortas-api/internal/domain/repository"
	"github.com/jhoicas/tortas-api/internal/infrastructure/memory"
)

func newOrder(id, token, email string, status entity.OrderStatus, total string, created time.Time) *entity.Order {
	return &entity.Order{
		ID:            id,
		OrderNumber:   "TM000001",
		TrackingToken: token,
		Items: []entity.OrderItem{
			{ID: "1-8\"-no-date", ProductID: 1, Name: "Torta de Chocolate", Price: decimal.RequireFromString(total), Quantity: 1, Size: `8"`},
		},
		Total:     decimal.RequireFromString(total),
		Status:    status,
		Customer:  entity.CustomerInfo{Name: "Ana", Email: email, Phone: "987654321", Address: "Av. Sol 123", City: "Lima"},
		CreatedAt: created,
	}
}

func TestOrderRepo_CreateYBusquedas(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewOrderRepository()
	o := newOrder("o1", "ABCDEFGHIJ", "Ana@Mail.com", entity.StatusPending, "65", time.Now())
	require.NoError(t, repo.Create(ctx, o))

	got, err := repo.GetByTrackingToken(ctx, "ABCDEFGHIJ")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "o1", got.ID)

	got, err = repo.GetByTrackingToken(ctx, "abcdefghij")
	require.NoError(t, err)
	assert.Nil(t, got, "el token distingue mayúsculas")

	got, err = repo.GetByID(ctx, "nope")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestOrderRepo_TokenDuplicado(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewOrderRepository()
	require.NoError(t, repo.Create(ctx, newOrder("o1", "AAAAAAAAAA", "a@b.com", entity.StatusPending, "10", time.Now())))
	err := repo.Create(ctx, newOrder("o2", "AAAAAAAAAA", "a@b.com", entity.StatusPending, "10", time.Now()))
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestOrderRepo_CopiasIndependientes(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewOrderRepository()
	o := newOrder("o1", "AAAAAAAAAA", "a@b.com", entity.StatusPending, "10", time.Now())
	require.NoError(t, repo.Create(ctx, o))
	o.Items[0].Quantity = 99

	got, _ := repo.GetByID(ctx, "o1")
	assert.Equal(t, 1, got.Items[0].Quantity)
}

func TestOrderRepo_ListPorEmailYEstado(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewOrderRepository()
	base := time.Date(2026, 12, 1, 10, 0, 0, 0, time.UTC)
	require.NoError(t, repo.Create(ctx, newOrder("o1", "AAAAAAAAA1", "ana@mail.com", entity.StatusPending, "10", base)))
	require.NoError(t, repo.Create(ctx, newOrder("o2", "AAAAAAAAA2", "ANA@mail.com", entity.StatusDelivered, "20", base.Add(time.Hour))))
	require.NoError(t, repo.Create(ctx, newOrder("o3", "AAAAAAAAA3", "otro@mail.com", entity.StatusPending, "30", base.Add(2*time.Hour))))

	byUser, err := repo.List(ctx, repository.OrderFilter{CustomerEmail: "Ana@Mail.COM"})
	require.NoError(t, err)
	require.Len(t, byUser, 2)
	assert.Equal(t, "o2", byUser[0].ID, "más recientes primero")

	pending, err := repo.List(ctx, repository.OrderFilter{Statuses: []entity.OrderStatus{entity.StatusPending}})
	require.NoError(t, err)
	assert.Len(t, pending, 2)
}

func TestOrderRepo_UpdateStatusCAS(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewOrderRepository()
	require.NoError(t, repo.Create(ctx, newOrder("o1", "AAAAAAAAAA", "a@b.com", entity.StatusPending, "10", time.Now())))

	now := time.Now()
	got, err := repo.UpdateStatus(ctx, repository.StatusChange{OrderID: "o1", From: entity.StatusPending, To: entity.StatusConfirmed, AdminNotes: "ok", UpdatedAt: now})
	require.NoError(t, err)
	assert.Equal(t, entity.StatusConfirmed, got.Status)
	assert.Equal(t, "ok", got.AdminNotes)
	require.NotNil(t, got.UpdatedAt)

	_, err = repo.UpdateStatus(ctx, repository.StatusChange{OrderID: "o1", From: entity.StatusPending, To: entity.StatusCancelled, UpdatedAt: now})
	assert.ErrorIs(t, err, domain.ErrConflict)

	got, err = repo.UpdateStatus(ctx, repository.StatusChange{OrderID: "o1", From: entity.StatusConfirmed, To: entity.StatusPreparing, UpdatedAt: now})
	require.NoError(t, err)
	assert.Equal(t, "ok", got.AdminNotes, "nota vacía conserva la anterior")

	_, err = repo.UpdateStatus(ctx, repository.StatusChange{OrderID: "x", From: entity.StatusPending, To: entity.StatusConfirmed})
	assert.ErrorIs(t, err, domain.ErrOrderNotFound)
}

func TestOrderRepo_CreateConcurrenteNoPierdeRegistros(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewOrderRepository()
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			id := string(rune('A'+i%26)) + string(rune('A'+i/26))
			_ = repo.Create(ctx, newOrder(id, "TOKEN000"+id, "a@b.com", entity.StatusPending, "1", time.Now()))
		}(i)
	}
	wg.Wait()
	all, err := repo.List(ctx, repository.OrderFilter{})
	require.NoError(t, err)
	assert.Len(t, all, 50)
}

func TestOrderRepo_Stats(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewOrderRepository()
	require.NoError(t, repo.Create(ctx, newOrder("o1", "AAAAAAAAA1", "a@b.com", entity.StatusPending, "10.50", time.Now())))
	require.NoError(t, repo.Create(ctx, newOrder("o2", "AAAAAAAAA2", "a@b.com", entity.StatusCancelled, "20", time.Now())))
	require.NoError(t, repo.Create(ctx, newOrder("o3", "AAAAAAAAA3", "a@b.com", entity.StatusDelivered, "30", time.Now())))

	s, err := repo.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, s.Total)
	assert.Equal(t, 1, s.ByStatus[entity.StatusCancelled])
	assert.True(t, decimal.RequireFromString("40.50").Equal(s.Revenue))
}

func TestUserRepo(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewUserRepository()
	u := &entity.User{ID: "u1", Name: "Ana", Email: "ana@mail.com", Role: entity.RoleUser, CreatedAt: time.Now()}
	require.NoError(t, repo.Create(ctx, u))

	err := repo.Create(ctx, &entity.User{ID: "u2", Email: "ANA@mail.com"})
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)

	got, err := repo.GetByEmail(ctx, "Ana@Mail.com")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "u1", got.ID)

	updated, err := repo.UpdateRole(ctx, "u1", entity.RoleAdmin)
	require.NoError(t, err)
	assert.Equal(t, entity.RoleAdmin, updated.Role)

	_, err = repo.UpdateRole(ctx, "nope", entity.RoleAdmin)
	assert.ErrorIs(t, err, domain.ErrUserNotFound)

	require.NoError(t, repo.Delete(ctx, "u1"))
	assert.ErrorIs(t, repo.Delete(ctx, "u1"), domain.ErrUserNotFound)
	got, _ = repo.GetByEmail(ctx, "ana@mail.com")
	assert.Nil(t, got)
	list, _ := repo.List(ctx)
	assert.Empty(t, list)
}

func TestCustomCakeRepo(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewCustomCakeRepository()
	now := time.Now()
	require.NoError(t, repo.Create(ctx, &entity.CustomCake{ID: "c1", UserEmail: "ana@mail.com", CreatedAt: now}))
	require.NoError(t, repo.Create(ctx, &entity.CustomCake{ID: "c2", UserEmail: "ANA@mail.com", CreatedAt: now.Add(time.Minute)}))

	list, err := repo.ListByUserEmail(ctx, "ana@MAIL.com")
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "c2", list[0].ID)

	list, err = repo.ListByUserEmail(ctx, "otro@mail.com")
	require.NoError(t, err)
	assert.Empty(t, list)
}
