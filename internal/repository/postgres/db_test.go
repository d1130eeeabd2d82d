package postgres

import (
	"reflect"
	"testing"
)

func TestContainsPattern(t *testing.T) {
	tests := []struct {
		term string
		want string
	}{
		{"go", "%go%"},
		{"c++ developer", "%c++ developer%"},
		{"100%", `%100\%%`},
		{"snake_case", `%snake\_case%`},
		{`back\slash`, `%back\\slash%`},
	}
	for _, tt := range tests {
		if got := containsPattern(tt.term); got != tt.want {
			t.Errorf("containsPattern(%q) = %q, want %q", tt.term, got, tt.want)
		}
	}
}

func TestAppendFilters(t *testing.T) {
	cols := []filterColumn{
		{key: "location", column: "location"},
		{key: "company", column: "company"},
	}

	where := []string{"title ILIKE $1"}
	args := []any{"%go%"}

	where, args = appendFilters(where, args, map[string]string{
		"location": "Berlin",
		"company":  "Acme",
		"unknown":  "ignored",
	}, cols)

	wantWhere := []string{"title ILIKE $1", "location ILIKE $2", "company ILIKE $3"}
	if !reflect.DeepEqual(where, wantWhere) {
		t.Errorf("where = %v, want %v", where, wantWhere)
	}
	wantArgs := []any{"%go%", "%Berlin%", "%Acme%"}
	if !reflect.DeepEqual(args, wantArgs) {
		t.Errorf("args = %v, want %v", args, wantArgs)
	}
}

func TestAppendFilters_SkipsEmptyAndNil(t *testing.T) {
	cols := []filterColumn{{key: "location", column: "location"}}

	where, args := appendFilters(nil, nil, map[string]string{"location": ""}, cols)
	if len(where) != 0 || len(args) != 0 {
		t.Errorf("empty value produced predicates: %v / %v", where, args)
	}

	where, args = appendFilters(nil, nil, nil, cols)
	if len(where) != 0 || len(args) != 0 {
		t.Errorf("nil filters produced predicates: %v / %v", where, args)
	}
}
