package postgres

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gabo-rematch/RealEstateHub-sub000/internal/core/domain"
)

// queryBuilder renders native predicates into SQL conditions over the jsonb
// document column. Only the operations the DocumentStorePort advertises are
// supported; anything else is a programming error surfaced as an error, not
// silently skipped.
type queryBuilder struct {
	conditions []string
	args       []interface{}
	argID      int
}

func newQueryBuilder() *queryBuilder {
	return &queryBuilder{
		argID: 1,
		args:  make([]interface{}, 0),
	}
}

func (qb *queryBuilder) addArg(arg interface{}) int {
	qb.args = append(qb.args, arg)
	id := qb.argID
	qb.argID++
	return id
}

func (qb *queryBuilder) addCondition(condition string) {
	qb.conditions = append(qb.conditions, condition)
}

// addPredicate renders one predicate. Documents are dirty: numeric key paths
// can hold strings and boolean ones garbage, so every cast is guarded by a
// jsonb_typeof check instead of letting PostgreSQL abort the whole query.
func (qb *queryBuilder) addPredicate(p domain.NativePredicate) error {
	field := p.Field
	if !validFieldName(field) {
		return fmt.Errorf("invalid document field name %q", field)
	}

	switch p.Op {
	case domain.OpEq:
		switch v := p.Value.(type) {
		case string:
			qb.addCondition(fmt.Sprintf("doc->>'%s' = $%d", field, qb.addArg(v)))
		case bool:
			qb.addCondition(fmt.Sprintf(
				"(CASE WHEN jsonb_typeof(doc->'%s') = 'boolean' THEN (doc->>'%s')::boolean ELSE false END) = $%d",
				field, field, qb.addArg(v)))
		case float64:
			qb.addCondition(fmt.Sprintf(
				"(jsonb_typeof(doc->'%s') = 'number' AND (doc->>'%s')::numeric = $%d)",
				field, field, qb.addArg(v)))
		default:
			return fmt.Errorf("unsupported eq value type %T for field %q", p.Value, field)
		}

	case domain.OpGte, domain.OpLte:
		v, ok := p.Value.(float64)
		if !ok {
			return fmt.Errorf("range predicate on field %q requires a numeric value, got %T", field, p.Value)
		}
		op := ">="
		if p.Op == domain.OpLte {
			op = "<="
		}
		qb.addCondition(fmt.Sprintf(
			"(jsonb_typeof(doc->'%s') = 'number' AND (doc->>'%s')::numeric %s $%d)",
			field, field, op, qb.addArg(v)))

	case domain.OpSubstring:
		v, ok := p.Value.(string)
		if !ok {
			return fmt.Errorf("substring predicate on field %q requires a string value, got %T", field, p.Value)
		}
		qb.addCondition(fmt.Sprintf("doc->>'%s' ILIKE $%d", field, qb.addArg(likePattern(v))))

	case domain.OpContains:
		v, ok := p.Value.(float64)
		if !ok {
			return fmt.Errorf("containment predicate on field %q requires a numeric value, got %T", field, p.Value)
		}
		// The source field may be a number, a numeric string, or an array of
		// either; check all four shapes.
		numLit := strconv.FormatFloat(v, 'f', -1, 64)
		strLit := strconv.Quote(numLit)
		numID := qb.addArg(numLit)
		strID := qb.addArg(strLit)
		qb.addCondition(fmt.Sprintf(
			"(doc->'%s' @> $%d::jsonb OR doc->'%s' = $%d::jsonb OR doc->'%s' @> $%d::jsonb OR doc->'%s' = $%d::jsonb)",
			field, numID, field, numID, field, strID, field, strID))

	default:
		return fmt.Errorf("unsupported predicate operation %q", p.Op)
	}

	return nil
}

// build returns the final WHERE clause (empty string when there are no
// conditions) and the ordered argument list.
func (qb *queryBuilder) build() (string, []interface{}) {
	if len(qb.conditions) == 0 {
		return "", qb.args
	}
	return "WHERE " + strings.Join(qb.conditions, " AND "), qb.args
}

func buildWhereClause(preds []domain.NativePredicate) (string, []interface{}, *queryBuilder, error) {
	qb := newQueryBuilder()
	for _, p := range preds {
		if err := qb.addPredicate(p); err != nil {
			return "", nil, nil, err
		}
	}
	where, args := qb.build()
	return where, args, qb, nil
}

// validFieldName keeps interpolated key paths down to known-safe characters.
// Field names come from domain constants, never from user input.
func validFieldName(field string) bool {
	if field == "" {
		return false
	}
	for _, r := range field {
		if (r < 'a' || r > 'z') && (r < '0' || r > '9') && r != '_' {
			return false
		}
	}
	return true
}

// likePattern wraps the term for substring matching and escapes the LIKE
// metacharacters in user input.
func likePattern(term string) string {
	escaped := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(term)
	return "%" + escaped + "%"
}
