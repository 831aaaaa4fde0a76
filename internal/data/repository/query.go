package repository

import (
	"fmt"
	"strconv"
	"strings"
)

// Where is a composable SQL predicate. Clauses use ? placeholders which
// Query.Build rebinds to $n in order.
type Where func() (string, []any)

func (w Where) Build() (string, []any) {
	if w == nil {
		return "", nil
	}
	return w()
}

func Raw(clause string, args ...any) Where {
	return func() (string, []any) { return clause, args }
}

func op(column, operator string, value any) Where {
	return func() (string, []any) {
		return fmt.Sprintf("%s %s ?", column, operator), []any{value}
	}
}

func Eq(column string, value any) Where  { return op(column, "=", value) }
func Gte(column string, value any) Where { return op(column, ">=", value) }
func Lte(column string, value any) Where { return op(column, "<=", value) }

// ContainsFold matches rows whose column contains s, ignoring case.
// LIKE metacharacters in s are matched literally.
func ContainsFold(column, s string) Where {
	return op(column, "ILIKE", "%"+escapeLike(s)+"%")
}

// NotDeleted is the visibility predicate every non-administrative read carries.
func NotDeleted(alias string) Where {
	return Raw(qualify(alias, "is_deleted") + " = FALSE")
}

func And(wheres ...Where) Where { return join(" AND ", wheres) }
func Or(wheres ...Where) Where  { return join(" OR ", wheres) }

func join(sep string, wheres []Where) Where {
	return func() (string, []any) {
		clauses := make([]string, 0, len(wheres))
		var allArgs []any
		for _, w := range wheres {
			clause, args := w.Build()
			if clause == "" {
				continue
			}
			clauses = append(clauses, clause)
			allArgs = append(allArgs, args...)
		}
		switch len(clauses) {
		case 0:
			return "", nil
		case 1:
			return clauses[0], allArgs
		}
		return "(" + strings.Join(clauses, sep) + ")", allArgs
	}
}

func escapeLike(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return r.Replace(s)
}

func qualify(alias, column string) string {
	if alias == "" {
		return column
	}
	return alias + "." + column
}

// Query is a SELECT statement under construction.
type Query struct {
	columns []string
	from    string
	where   Where
	orderBy string
	limit   int
	offset  int
}

func Select(columns ...string) *Query {
	return &Query{columns: columns}
}

func (q *Query) From(from string) *Query {
	q.from = from
	return q
}

func (q *Query) Where(w Where) *Query {
	q.where = w
	return q
}

func (q *Query) OrderBy(orderBy string) *Query {
	q.orderBy = orderBy
	return q
}

// Page limits the result to one page. Callers validate the arguments.
func (q *Query) Page(pageNumber, pageSize int) *Query {
	q.limit = pageSize
	q.offset = (pageNumber - 1) * pageSize
	return q
}

func (q *Query) Build() (string, []any) {
	var sb strings.Builder
	sb.WriteString("SELECT ")
	sb.WriteString(strings.Join(q.columns, ", "))
	sb.WriteString(" FROM ")
	sb.WriteString(q.from)

	clause, args := q.where.Build()
	if clause != "" {
		sb.WriteString(" WHERE ")
		sb.WriteString(clause)
	}
	if q.orderBy != "" {
		sb.WriteString(" ORDER BY ")
		sb.WriteString(q.orderBy)
	}
	if q.limit > 0 {
		sb.WriteString(" LIMIT ? OFFSET ?")
		args = append(args, q.limit, q.offset)
	}
	return rebind(sb.String()), args
}

// rebind turns ? placeholders into $1..$n.
func rebind(sql string) string {
	var sb strings.Builder
	sb.Grow(len(sql) + 8)
	n := 0
	for _, r := range sql {
		if r == '?' {
			n++
			sb.WriteByte('$')
			sb.WriteString(strconv.Itoa(n))
			continue
		}
		sb.WriteRune(r)
	}
	return sb.String()
}
