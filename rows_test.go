package grid

import "testing"

type host struct {
	Name   string
	CPU    float64
	Uptime int
	secret string
}

func TestRowsFromStructs(t *testing.T) {
	data := []*host{{Name: "a", CPU: 0.5, Uptime: 3, secret: "x"}, {Name: "b", CPU: 1}}
	rows, err := RowsFromStructs(data)
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 2 {
		t.Fatalf("len = %d, want 2", len(rows))
	}
	if rows[0]["Name"] != "a" || rows[0]["CPU"] != 0.5 || rows[0]["Uptime"] != 3 {
		t.Errorf("row 0 = %v", rows[0])
	}
	if _, ok := rows[0]["secret"]; ok {
		t.Error("unexported field was copied")
	}

	byValue, err := RowsFromStructs(&[]host{{Name: "c"}})
	if err != nil || byValue[0].Value("Name") != "c" {
		t.Errorf("RowsFromStructs(*[]host) = %v, %v", byValue, err)
	}
}

func TestRowsFromStructsRejects(t *testing.T) {
	for _, data := range []any{42, []int{1}, []*host{nil}} {
		if _, err := RowsFromStructs(data); err == nil {
			t.Errorf("RowsFromStructs(%T) = nil error", data)
		}
	}
}

func TestIsPrimitive(t *testing.T) {
	tests := []struct {
		v    any
		want bool
	}{
		{nil, true},
		{"s", true},
		{3, true},
		{2.5, true},
		{false, true},
		{[]int{1}, false},
		{struct{}{}, false},
	}
	for _, tt := range tests {
		if got := isPrimitive(tt.v); got != tt.want {
			t.Errorf("isPrimitive(%v) = %v, want %v", tt.v, got, tt.want)
		}
	}
}
