package querybuilder

import (
	"fmt"
	"reflect"
	"strings"
	"sync"
)

// modelPlan is the ordered list of db-tagged exported fields of a struct type.
type modelPlan struct {
	columns []string
	fields  []int
}

var plans sync.Map // reflect.Type -> *modelPlan

// InsertModel builds a single-row INSERT from the db tags of model.
func InsertModel(table string, model any, suffix string) (string, []any, error) {
	return InsertModels(table, []any{model}, suffix)
}

// InsertModels builds one multi-row INSERT. Every model must share the same struct type.
func InsertModels[T any](table string, models []T, suffix string) (string, []any, error) {
	if len(models) == 0 {
		return "", nil, fmt.Errorf("insert models are required")
	}

	builder := InsertInto(table).Suffix(suffix)
	var plan *modelPlan
	var planType reflect.Type
	for i, model := range models {
		value, err := structValue(model)
		if err != nil {
			return "", nil, fmt.Errorf("model %d: %w", i, err)
		}
		if plan == nil {
			planType = value.Type()
			if plan, err = planFor(planType); err != nil {
				return "", nil, err
			}
			builder.Columns(plan.columns...)
		} else if value.Type() != planType {
			return "", nil, fmt.Errorf("model %d has type %s, expected %s", i, value.Type(), planType)
		}

		row := make([]any, len(plan.fields))
		for j, idx := range plan.fields {
			row[j] = value.Field(idx).Interface()
		}
		builder.Values(row...)
	}
	return builder.ToSQL()
}

func structValue(model any) (reflect.Value, error) {
	value := reflect.ValueOf(model)
	for value.Kind() == reflect.Pointer || value.Kind() == reflect.Interface {
		if value.IsNil() {
			return reflect.Value{}, fmt.Errorf("model cannot be nil")
		}
		value = value.Elem()
	}
	if value.Kind() != reflect.Struct {
		return reflect.Value{}, fmt.Errorf("model must be struct, got %s", value.Kind())
	}
	return value, nil
}

func planFor(typ reflect.Type) (*modelPlan, error) {
	if cached, ok := plans.Load(typ); ok {
		return cached.(*modelPlan), nil
	}

	plan := &modelPlan{}
	for i := 0; i < typ.NumField(); i++ {
		field := typ.Field(i)
		if !field.IsExported() {
			continue
		}
		name, _, _ := strings.Cut(field.Tag.Get("db"), ",")
		name = strings.TrimSpace(name)
		if name == "" || name == "-" {
			continue
		}
		plan.columns = append(plan.columns, name)
		plan.fields = append(plan.fields, i)
	}
	if len(plan.columns) == 0 {
		return nil, fmt.Errorf("model %s has no db columns", typ)
	}

	actual, _ := plans.LoadOrStore(typ, plan)
	return actual.(*modelPlan), nil
}
