package algebra

import (
	"reflect"
	"testing"
)

func TestMeasure(t *testing.T) {
	tests := []struct {
		input string
		want  Stats
	}{
		{"", Stats{Nodes: 1, Containers: 1, Implicit: 1, Empty: 1, UniNested: true}},
		{"J", Stats{
			Nodes: 4, Containers: 4, Implicit: 1, Round: 1, Square: 1, Angle: 1,
			Units: 1, Empty: 1, Depth: 3, Width: 1, UniNested: true,
		}},
		{"o B A B", Stats{
			Variables: []string{"A", "B"},
			Nodes:     5, Containers: 2, Implicit: 1, Round: 1,
			Units: 1, Empty: 1, Depth: 1, Width: 4,
		}},
		{"([oo] <[ooo]>)", Stats{
			Nodes: 10, Containers: 10, Implicit: 1, Round: 6, Square: 2, Angle: 1,
			Units: 5, Empty: 5, Depth: 4, Width: 1,
		}},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := Measure(mustParse(t, tt.input))
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Measure(%q) =\n%+v\nwant\n%+v", tt.input, got, tt.want)
			}
		})
	}
}

func TestStats_Env(t *testing.T) {
	env := Measure(J()).Env()

	if env["depth"] != 3 || env["uninested"] != true || env["width"] != 1 {
		t.Errorf("unexpected env: %v", env)
	}

	if vars, ok := env["variables"].([]string); !ok || vars == nil {
		t.Errorf("expected non-nil variables slice, got %#v", env["variables"])
	}
}
