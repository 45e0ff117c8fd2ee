// Package filter compone consultas de listado a partir de parámetros opcionales.
//
// Un Builder acumula especificaciones (Predicate) y sólo agrega las que tienen
// valor. Build devuelve los predicados ordenados según el orden de campos
// declarado en New, de modo que el resultado no depende del orden de llamada.
// Los adaptadores de persistencia (postgres, memory) interpretan la Query.
package filter

import (
	"sort"
	"time"
)

// Op es el tipo de predicado.
type Op int

const (
	// OpContains coincidencia de subcadena sensible a mayúsculas.
	OpContains Op = iota + 1
	// OpEquals igualdad exacta (enum, id, texto).
	OpEquals
	// OpTextEquals compara un campo numérico convertido a su texto canónico.
	// "123.45" coincide con 123.45 pero "123.450" no.
	OpTextEquals
	// OpDateRange rango cerrado [Value, Upper] sobre un campo de fecha.
	OpDateRange
	// OpRelated igualdad sobre un atributo de una entidad asociada (vía tabla intermedia).
	OpRelated
	// OpPositive restringe a campo > 0.
	OpPositive
)

// Predicate es una especificación de filtro sobre un campo lógico.
type Predicate struct {
	Field string
	Op    Op
	Value any
	Upper any // sólo OpDateRange
}

// Page paginación opcional. nil significa "sin límite"; 0 es un valor explícito válido.
type Page struct {
	Offset *int
	Limit  *int
}

// Query es el resultado final: predicados en orden declarado (AND) y paginación.
type Query struct {
	Predicates []Predicate
	Page       Page
}

// Builder acumula predicados opcionales.
type Builder struct {
	rank  map[string]int
	preds []Predicate
	page  Page
}

// New crea un Builder. fields declara el orden estable de aplicación de los predicados.
func New(fields ...string) *Builder {
	rank := make(map[string]int, len(fields))
	for i, f := range fields {
		rank[f] = i
	}
	return &Builder{rank: rank}
}

// Contains agrega un filtro de subcadena si v no es nil ni vacío.
func (b *Builder) Contains(field string, v *string) *Builder {
	if v != nil && *v != "" {
		b.preds = append(b.preds, Predicate{Field: field, Op: OpContains, Value: *v})
	}
	return b
}

// Equals agrega igualdad exacta de texto si v no es nil ni vacío.
func (b *Builder) Equals(field string, v *string) *Builder {
	if v != nil && *v != "" {
		b.preds = append(b.preds, Predicate{Field: field, Op: OpEquals, Value: *v})
	}
	return b
}

// EqualsID agrega igualdad exacta sobre un identificador si v no es nil.
func (b *Builder) EqualsID(field string, v *int64) *Builder {
	if v != nil {
		b.preds = append(b.preds, Predicate{Field: field, Op: OpEquals, Value: *v})
	}
	return b
}

// TextEquals agrega la comparación numérico-como-texto si v no es nil ni vacío.
func (b *Builder) TextEquals(field string, v *string) *Builder {
	if v != nil && *v != "" {
		b.preds = append(b.preds, Predicate{Field: field, Op: OpTextEquals, Value: *v})
	}
	return b
}

// DateRange agrega el rango [start 00:00:00, end 23:59:59]. Si falta alguno de
// los dos extremos el rango se ignora por completo.
func (b *Builder) DateRange(field string, start, end *time.Time) *Builder {
	if start == nil || end == nil {
		return b
	}
	lower, upper := DayBounds(*start, *end)
	b.preds = append(b.preds, Predicate{Field: field, Op: OpDateRange, Value: lower, Upper: upper})
	return b
}

// Related agrega igualdad sobre un atributo de una entidad asociada si v no es nil ni vacío.
func (b *Builder) Related(field string, v *string) *Builder {
	if v != nil && *v != "" {
		b.preds = append(b.preds, Predicate{Field: field, Op: OpRelated, Value: *v})
	}
	return b
}

// Positive agrega field > 0 cuando on es true; false no filtra nada.
func (b *Builder) Positive(field string, on bool) *Builder {
	if on {
		b.preds = append(b.preds, Predicate{Field: field, Op: OpPositive})
	}
	return b
}

// Paginate fija offset y limit.
func (b *Builder) Paginate(p Page) *Builder {
	b.page = p
	return b
}

// Build devuelve la Query con los predicados en el orden declarado.
// Los campos no declarados van al final, en orden de llamada.
func (b *Builder) Build() Query {
	preds := make([]Predicate, len(b.preds))
	copy(preds, b.preds)
	sort.SliceStable(preds, func(i, j int) bool {
		return b.rankOf(preds[i].Field) < b.rankOf(preds[j].Field)
	})
	return Query{Predicates: preds, Page: b.page}
}

func (b *Builder) rankOf(field string) int {
	if r, ok := b.rank[field]; ok {
		return r
	}
	return len(b.rank)
}

// DayBounds devuelve el inicio del día de start y el último segundo del día de end.
func DayBounds(start, end time.Time) (time.Time, time.Time) {
	y, m, d := start.Date()
	lower := time.Date(y, m, d, 0, 0, 0, 0, start.Location())
	y, m, d = end.Date()
	upper := time.Date(y, m, d, 23, 59, 59, 0, end.Location())
	return lower, upper
}
