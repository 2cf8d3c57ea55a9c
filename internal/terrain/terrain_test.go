package terrain

import (
	"errors"
	"strings"
	"testing"
)

const sampleMap = `3 3
1 2 3
4 X 6
7 8 9
0 0 0
2 2 8
`

func TestParseSampleMap(t *testing.T) {
	g, err := Parse(strings.NewReader(sampleMap))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if g.Rows() != 3 || g.Cols() != 3 {
		t.Fatalf("unexpected dimensions %dx%d", g.Rows(), g.Cols())
	}
	if g.Start() != (Pose{X: 0, Y: 0, O: 0}) {
		t.Fatalf("unexpected start %+v", g.Start())
	}
	if g.Goal() != (Pose{X: 2, Y: 2, O: 8}) {
		t.Fatalf("unexpected goal %+v", g.Goal())
	}
	if g.MinHardness() != 1 {
		t.Fatalf("unexpected min hardness %v", g.MinHardness())
	}
}

func TestHardnessAt(t *testing.T) {
	g, err := Parse(strings.NewReader(sampleMap))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}

	h, err := g.HardnessAt(Cell{X: 2, Y: 1})
	if err != nil {
		t.Fatalf("hardness: %v", err)
	}
	if h != 8 {
		t.Fatalf("unexpected hardness %v", h)
	}

	if _, err := g.HardnessAt(Cell{X: 1, Y: 1}); !errors.Is(err, ErrImpassable) {
		t.Fatalf("want ErrImpassable, got %v", err)
	}
	if _, err := g.HardnessAt(Cell{X: 3, Y: 0}); !errors.Is(err, ErrOutOfBounds) {
		t.Fatalf("want ErrOutOfBounds, got %v", err)
	}
	if _, err := g.HardnessAt(Cell{X: -1, Y: 0}); !errors.Is(err, ErrOutOfBounds) {
		t.Fatalf("want ErrOutOfBounds, got %v", err)
	}
}

func TestTraversable(t *testing.T) {
	g, err := Parse(strings.NewReader(sampleMap))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if !g.Traversable(Cell{X: 0, Y: 2}) {
		t.Fatal("expected (0,2) traversable")
	}
	if g.Traversable(Cell{X: 1, Y: 1}) {
		t.Fatal("expected (1,1) blocked")
	}
	if g.Traversable(Cell{X: 0, Y: 3}) {
		t.Fatal("expected (0,3) out of bounds")
	}
}

func TestParseRejectsMalformedMaps(t *testing.T) {
	cases := []struct {
		name string
		in   string
	}{
		{"empty", ""},
		{"short row", "2 2\n1\n1 1\n0 0 0\n1 1 8\n"},
		{"zero hardness", "1 2\n0 1\n0 0 0\n0 1 8\n"},
		{"missing goal", "1 2\n1 1\n0 0 0\n"},
		{"all impassable", "1 2\nX X\n0 0 0\n0 1 8\n"},
		{"bad start orientation", "1 2\n1 1\n0 0 9\n0 1 8\n"},
		{"bad goal orientation", "1 2\n1 1\n0 0 0\n0 1 9\n"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := Parse(strings.NewReader(tc.in)); err == nil {
				t.Fatal("expected parse error")
			}
		})
	}
}

func TestParseSkipsBlankLines(t *testing.T) {
	in := "2 2\n\n1 2\n\n3 4\n\n0 0 0\n\n1 1 8\n"
	g, err := Parse(strings.NewReader(in))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if g.Rows() != 2 || g.Cols() != 2 {
		t.Fatalf("unexpected dimensions %dx%d", g.Rows(), g.Cols())
	}
}
