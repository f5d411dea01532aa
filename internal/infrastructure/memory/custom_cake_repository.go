package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/jhoicas/tortas-api/internal/domain/entity"
	"github.com/jhoicas/tortas-api/internal/domain/repository"
)

var _ repository.CustomCakeRepository = (*CustomCakeRepo)(nil)

// CustomCakeRepo diseños agrupados por email del cliente.
type CustomCakeRepo struct {
	mu      sync.RWMutex
	byEmail map[string][]entity.CustomCake
}

func NewCustomCakeRepository() *CustomCakeRepo {
	return &CustomCakeRepo{byEmail: make(map[string][]entity.CustomCake)}
}

func (r *CustomCakeRepo) Create(_ context.Context, cake *entity.CustomCake) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	key := entity.NormalizeEmail(cake.UserEmail)
	r.byEmail[key] = append(r.byEmail[key], *cake)
	return nil
}

// ListByUserEmail más recientes primero.
func (r *CustomCakeRepo) ListByUserEmail(_ context.Context, email string) ([]*entity.CustomCake, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	list := r.byEmail[entity.NormalizeEmail(email)]
	out := make([]*entity.CustomCake, 0, len(list))
	for i := range list {
		c := list[i]
		out = append(out, &c)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}
