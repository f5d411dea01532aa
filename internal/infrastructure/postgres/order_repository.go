package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/tortas-api/internal/domain"
	"github.com/jhoicas/tortas-api/internal/domain/entity"
	"github.com/jhoicas/tortas-api/internal/domain/repository"
)

var _ repository.OrderRepository = (*OrderRepo)(nil)

var orderColumns = []string{
	"id", "order_number", "tracking_token", "items", "total", "status",
	"customer_name", "customer_email", "customer_phone", "customer_address", "customer_city",
	"delivery_date", "payment_method", "admin_notes", "created_at", "updated_at",
}

// itemDoc forma de cada línea dentro de la columna JSONB items.
type itemDoc struct {
	ID              string          `json:"id"`
	ProductID       int             `json:"productId"`
	Name            string          `json:"name"`
	Price           decimal.Decimal `json:"price"`
	Quantity        int             `json:"quantity"`
	Size            string          `json:"size"`
	DeliveryDate    string          `json:"deliveryDate,omitempty"`
	CustomMessage   string          `json:"customMessage,omitempty"`
	IsSeasonalOffer bool            `json:"isSeasonalOffer,omitempty"`
}

// OrderRepo implementación del puerto OrderRepository sobre PostgreSQL: una fila por pedido.
type OrderRepo struct {
	pool *pgxpool.Pool
}

// NewOrderRepository construye el adaptador de persistencia para pedidos.
func NewOrderRepository(pool *pgxpool.Pool) *OrderRepo {
	return &OrderRepo{pool: pool}
}

// Create inserta el pedido. Token repetido → ErrDuplicate.
func (r *OrderRepo) Create(ctx context.Context, o *entity.Order) error {
	items, err := encodeItems(o.Items)
	if err != nil {
		return err
	}
	query, args, err := psql.Insert("orders").Columns(orderColumns...).Values(
		o.ID, o.OrderNumber, o.TrackingToken, items, o.Total, string(o.Status),
		o.Customer.Name, entity.NormalizeEmail(o.Customer.Email), o.Customer.Phone, o.Customer.Address, o.Customer.City,
		o.DeliveryDate, o.PaymentMethod, o.AdminNotes, o.CreatedAt, o.UpdatedAt,
	).ToSql()
	if err != nil {
		return fmt.Errorf("build insert order: %w", err)
	}
	if _, err := r.pool.Exec(ctx, query, args...); err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert order: %w", err)
	}
	return nil
}

// GetByID devuelve (nil, nil) si no existe.
func (r *OrderRepo) GetByID(ctx context.Context, id string) (*entity.Order, error) {
	return r.getOne(ctx, r.pool, sq.Eq{"id": id})
}

// GetByTrackingToken búsqueda exacta por token.
func (r *OrderRepo) GetByTrackingToken(ctx context.Context, token string) (*entity.Order, error) {
	return r.getOne(ctx, r.pool, sq.Eq{"tracking_token": token})
}

func (r *OrderRepo) getOne(ctx context.Context, conn Conn, where sq.Eq) (*entity.Order, error) {
	query, args, err := psql.Select(orderColumns...).From("orders").Where(where).Limit(1).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select order: %w", err)
	}
	o, err := scanOrder(conn.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get order: %w", err)
	}
	return o, nil
}

// List pedidos filtrados, más recientes primero.
func (r *OrderRepo) List(ctx context.Context, filter repository.OrderFilter) ([]*entity.Order, error) {
	query, args, err := buildListQuery(filter)
	if err != nil {
		return nil, fmt.Errorf("build list orders: %w", err)
	}
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	defer rows.Close()
	var list []*entity.Order
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, fmt.Errorf("scan order: %w", err)
		}
		list = append(list, o)
	}
	return list, rows.Err()
}

func buildListQuery(filter repository.OrderFilter) (string, []any, error) {
	q := psql.Select(orderColumns...).From("orders")
	if filter.CustomerEmail != "" {
		q = q.Where(sq.Eq{"customer_email": entity.NormalizeEmail(filter.CustomerEmail)})
	}
	if len(filter.Statuses) > 0 {
		statuses := make([]string, len(filter.Statuses))
		for i, s := range filter.Statuses {
			statuses[i] = string(s)
		}
		q = q.Where(sq.Eq{"status": statuses})
	}
	return q.OrderBy("created_at DESC", "id DESC").ToSql()
}

// UpdateStatus CAS: UPDATE ... WHERE id AND status = from. Si no afecta filas, distingue
// entre pedido inexistente y estado cambiado por otro administrador.
func (r *OrderRepo) UpdateStatus(ctx context.Context, change repository.StatusChange) (*entity.Order, error) {
	var updated *entity.Order
	err := inTx(ctx, r.pool, func(tx pgx.Tx) error {
		set := psql.Update("orders").
			Set("status", string(change.To)).
			Set("updated_at", change.UpdatedAt)
		if change.AdminNotes != "" {
			set = set.Set("admin_notes", change.AdminNotes)
		}
		query, args, err := set.Where(sq.Eq{"id": change.OrderID, "status": string(change.From)}).ToSql()
		if err != nil {
			return fmt.Errorf("build update status: %w", err)
		}
		tag, err := tx.Exec(ctx, query, args...)
		if err != nil {
			return fmt.Errorf("update order status: %w", err)
		}
		o, err := r.getOne(ctx, tx, sq.Eq{"id": change.OrderID})
		if err != nil {
			return err
		}
		if o == nil {
			return domain.ErrOrderNotFound
		}
		if tag.RowsAffected() == 0 {
			return domain.ErrConflict
		}
		updated = o
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// Stats agrega por estado en una sola consulta.
func (r *OrderRepo) Stats(ctx context.Context) (repository.OrderStats, error) {
	stats := repository.OrderStats{ByStatus: make(map[entity.OrderStatus]int), Revenue: decimal.Zero}
	query, args, err := psql.Select("status", "COUNT(*)", "COALESCE(SUM(total), 0)").
		From("orders").GroupBy("status").ToSql()
	if err != nil {
		return stats, fmt.Errorf("build stats: %w", err)
	}
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return stats, fmt.Errorf("order stats: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var (
			status string
			count  int
			sum    decimal.Decimal
		)
		if err := rows.Scan(&status, &count, &sum); err != nil {
			return stats, fmt.Errorf("scan stats: %w", err)
		}
		s := entity.OrderStatus(status)
		stats.ByStatus[s] = count
		stats.Total += count
		if s != entity.StatusCancelled {
			stats.Revenue = stats.Revenue.Add(sum)
		}
	}
	return stats, rows.Err()
}

func scanOrder(row pgx.Row) (*entity.Order, error) {
	var (
		o         entity.Order
		rawItems  []byte
		status    string
		updatedAt *time.Time
	)
	err := row.Scan(
		&o.ID, &o.OrderNumber, &o.TrackingToken, &rawItems, &o.Total, &status,
		&o.Customer.Name, &o.Customer.Email, &o.Customer.Phone, &o.Customer.Address, &o.Customer.City,
		&o.DeliveryDate, &o.PaymentMethod, &o.AdminNotes, &o.CreatedAt, &updatedAt,
	)
	if err != nil {
		return nil, err
	}
	o.Status = entity.OrderStatus(status)
	o.UpdatedAt = updatedAt
	if o.Items, err = decodeItems(rawItems); err != nil {
		return nil, err
	}
	return &o, nil
}

func encodeItems(items []entity.OrderItem) ([]byte, error) {
	docs := make([]itemDoc, len(items))
	for i, it := range items {
		docs[i] = itemDoc(it)
	}
	b, err := json.Marshal(docs)
	if err != nil {
		return nil, fmt.Errorf("encode items: %w", err)
	}
	return b, nil
}

func decodeItems(raw []byte) ([]entity.OrderItem, error) {
	var docs []itemDoc
	if err := json.Unmarshal(raw, &docs); err != nil {
		return nil, fmt.Errorf("decode items: %w", err)
	}
	items := make([]entity.OrderItem, len(docs))
	for i, d := range docs {
		items[i] = entity.OrderItem(d)
	}
	return items, nil
}
