// Package lifecycle define la máquina de estados del pedido:
//
//	pending → confirmed → preparing → delivering → delivered
//	   └──────────┴───────────┴────────────┴──────→ cancelled
//
// pending es el estado inicial; delivered y cancelled son terminales.
// Los pasos para la vista de seguimiento se derivan del estado, nunca se persisten.
package lifecycle

import (
	"github.com/jhoicas/tortas-api/internal/domain"
	"github.com/jhoicas/tortas-api/internal/domain/entity"
)

// Forward progresión canónica (sin cancelled).
var Forward = []entity.OrderStatus{
	entity.StatusPending,
	entity.StatusConfirmed,
	entity.StatusPreparing,
	entity.StatusDelivering,
	entity.StatusDelivered,
}

// All los seis estados en orden de presentación.
var All = append(append([]entity.OrderStatus{}, Forward...), entity.StatusCancelled)

// Etiquetas de los pasos que ve el cliente.
const (
	StepReceived   = "Pedido recibido"
	StepConfirmed  = "Confirmado"
	StepPreparing  = "En preparación"
	StepDelivering = "En camino"
	StepDelivered  = "Entregado"
	StepCancelled  = "Cancelado"
)

var stepNames = [...]string{StepReceived, StepConfirmed, StepPreparing, StepDelivering, StepDelivered}

// Step paso de la línea de tiempo de seguimiento.
type Step struct {
	Name      string
	Completed bool
}

// ActionKind tipo de acción administrativa ofrecida para un estado.
type ActionKind string

const (
	ActionAdvance ActionKind = "advance"
	ActionCancel  ActionKind = "cancel"
)

// Action acción que el panel de administración puede ejecutar sobre un pedido.
type Action struct {
	Kind   ActionKind
	Target entity.OrderStatus
}

// Valid indica si s es uno de los seis estados.
func Valid(s entity.OrderStatus) bool {
	for _, st := range All {
		if st == s {
			return true
		}
	}
	return false
}

// Parse convierte un string en estado; ErrInvalidStatus si no es conocido.
func Parse(s string) (entity.OrderStatus, error) {
	st := entity.OrderStatus(s)
	if !Valid(st) {
		return "", domain.ErrInvalidStatus
	}
	return st, nil
}

// Index posición de s en Forward, -1 para cancelled o desconocido.
func Index(s entity.OrderStatus) int {
	for i, st := range Forward {
		if st == s {
			return i
		}
	}
	return -1
}

// IsTerminal delivered o cancelled.
func IsTerminal(s entity.OrderStatus) bool {
	return s == entity.StatusDelivered || s == entity.StatusCancelled
}

// IsActive pedido aún en curso (ni entregado ni cancelado).
func IsActive(s entity.OrderStatus) bool {
	return Valid(s) && !IsTerminal(s)
}

// Next estado siguiente en Forward; ok=false para delivered, cancelled o desconocido.
func Next(s entity.OrderStatus) (entity.OrderStatus, bool) {
	i := Index(s)
	if i < 0 || i+1 >= len(Forward) {
		return "", false
	}
	return Forward[i+1], true
}

// Steps deriva la línea de tiempo: cinco pasos con los primeros index(s)+1 completados,
// o dos pasos completados si el pedido fue cancelado.
func Steps(s entity.OrderStatus) []Step {
	if s == entity.StatusCancelled {
		return []Step{
			{Name: StepReceived, Completed: true},
			{Name: StepCancelled, Completed: true},
		}
	}
	current := Index(s)
	steps := make([]Step, len(stepNames))
	for i, name := range stepNames {
		steps[i] = Step{Name: name, Completed: i <= current}
	}
	return steps
}

// Actions acciones administrativas disponibles para s. Ninguna para estados terminales.
func Actions(s entity.OrderStatus) []Action {
	if !IsActive(s) {
		return nil
	}
	next, _ := Next(s)
	return []Action{
		{Kind: ActionAdvance, Target: next},
		{Kind: ActionCancel, Target: entity.StatusCancelled},
	}
}

// CanTransition solo permite avanzar al siguiente estado o cancelar un pedido no terminal.
func CanTransition(from, to entity.OrderStatus) bool {
	if !Valid(from) || !Valid(to) || IsTerminal(from) {
		return false
	}
	if to == entity.StatusCancelled {
		return true
	}
	next, ok := Next(from)
	return ok && next == to
}

// CheckTransition como CanTransition pero con el error de dominio correspondiente.
func CheckTransition(from, to entity.OrderStatus) error {
	if !Valid(to) {
		return domain.ErrInvalidStatus
	}
	if !CanTransition(from, to) {
		return domain.ErrInvalidTransition
	}
	return nil
}
