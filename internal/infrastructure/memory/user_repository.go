package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/jhoicas/tortas-api/internal/domain"
	"github.com/jhoicas/tortas-api/internal/domain/entity"
	"github.com/jhoicas/tortas-api/internal/domain/repository"
)

var _ repository.UserRepository = (*UserRepo)(nil)

// UserRepo usuarios indexados por id y por email normalizado.
type UserRepo struct {
	mu      sync.RWMutex
	byID    map[string]*entity.User
	byEmail map[string]string
}

// NewUserRepository construye el repositorio vacío.
func NewUserRepository() *UserRepo {
	return &UserRepo{
		byID:    make(map[string]*entity.User),
		byEmail: make(map[string]string),
	}
}

// Create falla con ErrEmailAlreadyExists si el email ya está registrado.
func (r *UserRepo) Create(_ context.Context, user *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	key := entity.NormalizeEmail(user.Email)
	if _, ok := r.byEmail[key]; ok {
		return domain.ErrEmailAlreadyExists
	}
	if _, ok := r.byID[user.ID]; ok {
		return domain.ErrDuplicate
	}
	u := *user
	r.byID[u.ID] = &u
	r.byEmail[key] = u.ID
	return nil
}

func (r *UserRepo) GetByID(_ context.Context, id string) (*entity.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if u, ok := r.byID[id]; ok {
		c := *u
		return &c, nil
	}
	return nil, nil
}

func (r *UserRepo) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	id, ok := r.byEmail[entity.NormalizeEmail(email)]
	if !ok {
		return nil, nil
	}
	c := *r.byID[id]
	return &c, nil
}

// List usuarios por fecha de alta (más antiguos primero).
func (r *UserRepo) List(_ context.Context) ([]*entity.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*entity.User, 0, len(r.byID))
	for _, u := range r.byID {
		c := *u
		out = append(out, &c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

func (r *UserRepo) UpdateRole(_ context.Context, id, role string) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	u.Role = role
	u.UpdatedAt = time.Now()
	c := *u
	return &c, nil
}

// Delete devuelve ErrUserNotFound si el id no existe.
func (r *UserRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.byID[id]
	if !ok {
		return domain.ErrUserNotFound
	}
	delete(r.byEmail, entity.NormalizeEmail(u.Email))
	delete(r.byID, id)
	return nil
}
