package postgres

import (
	"fmt"
	"strings"

	"github.com/jhoicas/comercio-api/internal/domain/filter"
)

// selectSpec describe cómo traducir una filter.Query sobre una tabla.
type selectSpec struct {
	base    string            // SELECT ... FROM tabla alias
	orderBy string            // columna de orden estable (PK)
	columns map[string]string // campo lógico -> expresión SQL
	// related: campo lógico -> sub-consulta EXISTS con un %d para el placeholder.
	// EXISTS evita duplicar filas del principal en joins uno-a-muchos.
	related map[string]string
}

// render arma la consulta completa con WHERE (AND en el orden de la Query), ORDER BY y paginación.
// LIMIT/OFFSET sólo se emiten cuando la Page los trae.
func (s selectSpec) render(q filter.Query) (string, []any, error) {
	var (
		conds []string
		args  []any
	)
	pos := 1
	for _, p := range q.Predicates {
		if p.Op == filter.OpRelated {
			tpl, ok := s.related[p.Field]
			if !ok {
				return "", nil, fmt.Errorf("filtro relacionado desconocido %q", p.Field)
			}
			conds = append(conds, fmt.Sprintf(tpl, pos))
			args = append(args, p.Value)
			pos++
			continue
		}

		col, ok := s.columns[p.Field]
		if !ok {
			return "", nil, fmt.Errorf("campo de filtro desconocido %q", p.Field)
		}
		switch p.Op {
		case filter.OpContains:
			conds = append(conds, fmt.Sprintf("strpos(%s, $%d) > 0", col, pos))
			args = append(args, p.Value)
			pos++
		case filter.OpEquals:
			conds = append(conds, fmt.Sprintf("%s = $%d", col, pos))
			args = append(args, p.Value)
			pos++
		case filter.OpTextEquals:
			conds = append(conds, fmt.Sprintf("CAST(%s AS TEXT) = $%d", col, pos))
			args = append(args, p.Value)
			pos++
		case filter.OpDateRange:
			conds = append(conds, fmt.Sprintf("date_trunc('second', %s) BETWEEN $%d AND $%d", col, pos, pos+1))
			args = append(args, p.Value, p.Upper)
			pos += 2
		case filter.OpPositive:
			conds = append(conds, fmt.Sprintf("%s > 0", col))
		default:
			return "", nil, fmt.Errorf("operador de filtro no soportado %d", p.Op)
		}
	}

	var sb strings.Builder
	sb.WriteString(s.base)
	if len(conds) > 0 {
		sb.WriteString(" WHERE ")
		sb.WriteString(strings.Join(conds, " AND "))
	}
	sb.WriteString(" ORDER BY ")
	sb.WriteString(s.orderBy)
	if q.Page.Limit != nil {
		sb.WriteString(fmt.Sprintf(" LIMIT $%d", pos))
		args = append(args, *q.Page.Limit)
		pos++
	}
	if q.Page.Offset != nil {
		sb.WriteString(fmt.Sprintf(" OFFSET $%d", pos))
		args = append(args, *q.Page.Offset)
	}
	return sb.String(), args, nil
}
