package memory

import (
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/comercio-api/internal/domain/filter"
)

// fieldFunc devuelve el valor de un campo lógico del registro.
type fieldFunc func(field string) (any, bool)

// relatedFunc evalúa un predicado OpRelated sobre el registro.
type relatedFunc func(field string, value any) bool

// match evalúa todos los predicados de q (AND) sobre un registro.
// Un campo desconocido nunca coincide.
func match(q filter.Query, get fieldFunc, related relatedFunc) bool {
	for _, p := range q.Predicates {
		if p.Op == filter.OpRelated {
			if related == nil || !related(p.Field, p.Value) {
				return false
			}
			continue
		}
		v, ok := get(p.Field)
		if !ok || !matchOne(p, v) {
			return false
		}
	}
	return true
}

func matchOne(p filter.Predicate, v any) bool {
	switch p.Op {
	case filter.OpContains:
		s, ok := v.(string)
		sub, _ := p.Value.(string)
		return ok && strings.Contains(s, sub)
	case filter.OpEquals:
		return v == p.Value
	case filter.OpTextEquals:
		want, _ := p.Value.(string)
		return canonicalText(v) == want
	case filter.OpDateRange:
		t, ok := v.(time.Time)
		if !ok {
			return false
		}
		lower, _ := p.Value.(time.Time)
		upper, _ := p.Upper.(time.Time)
		t = t.Truncate(time.Second)
		return !t.Before(lower) && !t.After(upper)
	case filter.OpPositive:
		switch n := v.(type) {
		case int:
			return n > 0
		case decimal.Decimal:
			return n.IsPositive()
		}
	}
	return false
}

// canonicalText reproduce CAST(col AS TEXT) de PostgreSQL para las columnas usadas.
func canonicalText(v any) string {
	switch x := v.(type) {
	case decimal.Decimal:
		return x.StringFixed(2) // NUMERIC(12,2)
	case int:
		return strconv.Itoa(x)
	case int64:
		return strconv.FormatInt(x, 10)
	case string:
		return x
	}
	return ""
}

// paginate ordena por id y aplica offset/limit cuando están presentes.
func paginate[T any](items []T, id func(T) int64, page filter.Page) []T {
	sort.Slice(items, func(i, j int) bool { return id(items[i]) < id(items[j]) })
	if page.Offset != nil {
		off := *page.Offset
		if off >= len(items) {
			return items[:0]
		}
		if off > 0 {
			items = items[off:]
		}
	}
	if page.Limit != nil && *page.Limit >= 0 && *page.Limit < len(items) {
		items = items[:*page.Limit]
	}
	return items
}
