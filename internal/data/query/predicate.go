package query

import (
	"fmt"
	"strings"
)

// Clause is one strongly-typed predicate fragment. The closed set of clause
// shapes keeps filter fields from being silently dropped or passed through
// as raw SQL.
type Clause interface {
	// render appends the clause's SQL to b using numbered placeholders
	// starting at next, and returns the clause's arguments.
	render(b *strings.Builder, next int) []any
}

// Equality matches a column against a single value.
type Equality struct {
	Column string
	Value  any
}

func (c Equality) render(b *strings.Builder, next int) []any {
	fmt.Fprintf(b, "%s = $%d", c.Column, next)
	return []any{c.Value}
}

// Range matches a column against an inclusive range. A nil bound makes the
// range one-sided.
type Range struct {
	Column string
	Min    any
	Max    any
}

func (c Range) render(b *strings.Builder, next int) []any {
	var args []any
	if c.Min != nil {
		fmt.Fprintf(b, "%s >= $%d", c.Column, next)
		args = append(args, c.Min)
		next++
	}
	if c.Max != nil {
		if len(args) > 0 {
			b.WriteString(" AND ")
		}
		fmt.Fprintf(b, "%s <= $%d", c.Column, next)
		args = append(args, c.Max)
	}
	return args
}

// Substring matches a value as a case-insensitive substring of any of the
// given columns. Nullable columns simply fail the match for NULL rows.
type Substring struct {
	Columns []string
	Value   string
}

func (c Substring) render(b *strings.Builder, next int) []any {
	for i, col := range c.Columns {
		if i > 0 {
			b.WriteString(" OR ")
		}
		fmt.Fprintf(b, "%s ILIKE '%%' || $%d || '%%'", col, next)
	}
	return []any{c.Value}
}

// SetMembership matches rows whose array column contains the value.
type SetMembership struct {
	Column string
	Value  any
}

func (c SetMembership) render(b *strings.Builder, next int) []any {
	fmt.Fprintf(b, "$%d = ANY(%s)", next, c.Column)
	return []any{c.Value}
}

// Render conjoins the clauses into a WHERE body with numbered placeholders
// starting at firstArg. Multi-part clauses are parenthesized so the AND
// conjunction stays correct.
func Render(clauses []Clause, firstArg int) (string, []any) {
	var b strings.Builder
	var args []any
	next := firstArg

	for i, c := range clauses {
		if i > 0 {
			b.WriteString(" AND ")
		}
		var part strings.Builder
		clauseArgs := c.render(&part, next)
		if len(clauseArgs) > 1 || multiPart(c) {
			b.WriteString("(" + part.String() + ")")
		} else {
			b.WriteString(part.String())
		}
		args = append(args, clauseArgs...)
		next += len(clauseArgs)
	}

	return b.String(), args
}

func multiPart(c Clause) bool {
	switch v := c.(type) {
	case Substring:
		return len(v.Columns) > 1
	case Range:
		return v.Min != nil && v.Max != nil
	}
	return false
}
