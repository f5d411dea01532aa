// Package cart modela el carrito transitorio del cliente. No se persiste en el servidor:
// se usa para cotizar y para consolidar las líneas que llegan al checkout.
package cart

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/tortas-api/internal/domain/entity"
)

const noDate = "no-date"

// LineKey clave compuesta producto-tamaño-fecha de entrega.
func LineKey(productID int, size, deliveryDate string) string {
	if deliveryDate == "" {
		deliveryDate = noDate
	}
	return fmt.Sprintf("%d-%s-%s", productID, size, deliveryDate)
}

// CustomLineKey clave de una torta personalizada: el diseño completo reemplaza al producto.
func CustomLineKey(flavor, filling, decoration, size, deliveryDate string) string {
	if deliveryDate == "" {
		deliveryDate = noDate
	}
	return fmt.Sprintf("custom-%s-%s-%s-%s-%s", flavor, filling, decoration, size, deliveryDate)
}

// Cart colección ordenada de líneas, sin duplicados por clave.
type Cart struct {
	items []entity.OrderItem
}

// New crea un carrito vacío.
func New() *Cart {
	return &Cart{}
}

// FromItems reconstruye un carrito pasando cada línea por Add, de modo que las claves repetidas se consolidan.
func FromItems(items []entity.OrderItem) *Cart {
	c := New()
	for _, it := range items {
		c.Add(it)
	}
	return c
}

// Add agrega la línea o, si ya existe una con la misma clave, suma su cantidad.
// Cantidad menor a 1 se trata como 1. Sin clave previa se usa LineKey.
func (c *Cart) Add(item entity.OrderItem) {
	if item.Quantity < 1 {
		item.Quantity = 1
	}
	if item.ID == "" {
		item.ID = LineKey(item.ProductID, item.Size, item.DeliveryDate)
	}
	for i := range c.items {
		if c.items[i].ID == item.ID {
			c.items[i].Quantity += item.Quantity
			return
		}
	}
	c.items = append(c.items, item)
}

// AddProduct agrega una unidad de un producto del catálogo en el tamaño indicado.
func (c *Cart) AddProduct(p entity.Product, size entity.Size, price decimal.Decimal, deliveryDate, message string) {
	c.Add(entity.OrderItem{
		ProductID:       p.ID,
		Name:            p.Name + " - " + size.Name,
		Price:           price,
		Quantity:        1,
		Size:            size.Name,
		DeliveryDate:    deliveryDate,
		CustomMessage:   message,
		IsSeasonalOffer: p.IsSeasonal,
	})
}

// Remove elimina la línea con la clave dada.
func (c *Cart) Remove(key string) {
	out := c.items[:0]
	for _, it := range c.items {
		if it.ID != key {
			out = append(out, it)
		}
	}
	c.items = out
}

// UpdateQuantity fija la cantidad; con quantity <= 0 elimina la línea.
func (c *Cart) UpdateQuantity(key string, quantity int) {
	if quantity <= 0 {
		c.Remove(key)
		return
	}
	for i := range c.items {
		if c.items[i].ID == key {
			c.items[i].Quantity = quantity
			return
		}
	}
}

// Clear vacía el carrito (tras un checkout exitoso).
func (c *Cart) Clear() {
	c.items = nil
}

// Items copia de las líneas en orden de inserción.
func (c *Cart) Items() []entity.OrderItem {
	return append([]entity.OrderItem(nil), c.items...)
}

// Total suma de precio × cantidad.
func (c *Cart) Total() decimal.Decimal {
	total := decimal.Zero
	for _, it := range c.items {
		total = total.Add(it.Subtotal())
	}
	return total
}

// ItemCount unidades totales.
func (c *Cart) ItemCount() int {
	n := 0
	for _, it := range c.items {
		n += it.Quantity
	}
	return n
}

// Empty sin líneas.
func (c *Cart) Empty() bool {
	return len(c.items) == 0
}
