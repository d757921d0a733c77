package snap

import (
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/vovakirdan/gridsnap/internal/core"
)

var shapes = []core.GridType{core.GridRectangular, core.GridIsometric}

func TestSnapEmptyGridIsIdentity(t *testing.T) {
	empties := []core.Rect{
		core.NewRect(0, 0, 0, 10),
		core.NewRect(4, 4, 10, 0),
		core.NewRect(-3, 8, 0, 0),
		core.NewRect(0, 0, -10, 10),
	}
	points := []core.Point{core.Pt(0, 0), core.Pt(7, 3), core.Pt(-13, 29)}
	snappers := []Snapper{{}, New(Options{SnapToVerticals: true})}

	for _, s := range snappers {
		for _, g := range empties {
			for _, p := range points {
				for _, pref := range Preferences() {
					for _, shape := range shapes {
						if got := s.Snap(g, p, pref, shape); got != p {
							t.Errorf("Snap(%v, %v, %v, %v) = %v, expected identity", g, p, pref, shape, got)
						}
					}
				}
			}
		}
	}
}

func TestSnapDispatch(t *testing.T) {
	grid := core.NewRect(0, 0, 32, 16)
	p := core.Pt(20, 9)

	tests := []struct {
		name  string
		shape core.GridType
		want  core.Point
	}{
		{"rectangular", core.GridRectangular, core.Pt(32, 16)},
		{"isometric", core.GridIsometric, core.Pt(16, 8)},
		{"unknown falls back to rectangular", core.GridType(9), core.Pt(32, 16)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := Snap(grid, p, ClosestVertex, tc.shape); got != tc.want {
				t.Errorf("Snap(..., %v) = %v, expected %v", tc.shape, got, tc.want)
			}
		})
	}
}

func TestSnapIdempotent(t *testing.T) {
	grids := []core.Rect{
		core.NewRect(0, 0, 10, 10),
		core.NewRect(-3, 7, 6, 4),
		core.NewRect(0, 0, 32, 16),
		core.NewRect(6, -2, 20, 12),
	}
	stable := []Preference{ClosestVertex, BoxOrigin, FloorGrid, CeilGrid}

	for _, g := range grids {
		for _, shape := range shapes {
			for x := -40; x <= 40; x += 3 {
				for y := -40; y <= 40; y += 3 {
					p := core.Pt(x, y)
					for _, pref := range stable {
						once := Snap(g, p, pref, shape)
						if twice := Snap(g, once, pref, shape); twice != once {
							t.Fatalf("%v %v %v: %v -> %v -> %v", shape, g, pref, p, once, twice)
						}
					}

					// BoxEnd always advances, but its result is on the grid.
					end := Snap(g, p, BoxEnd, shape)
					if again := Snap(g, end, FloorGrid, shape); again != end {
						t.Fatalf("%v %v: box end %v of %v is not a vertex (floor gives %v)", shape, g, end, p, again)
					}
				}
			}
		}
	}
}

func TestSnapTranslationCovariance(t *testing.T) {
	grids := []core.Rect{
		core.NewRect(0, 0, 10, 10),
		core.NewRect(3, -5, 6, 8),
		core.NewRect(0, 0, 32, 16),
	}
	points := []core.Point{core.Pt(7, 3), core.Pt(-11, 4), core.Pt(0, 0), core.Pt(23, -17)}

	for _, g := range grids {
		for k := -3; k <= 3; k++ {
			shift := core.Pt(k*g.W, k*g.H)
			moved := g.Offset(shift)
			for _, p := range points {
				for _, pref := range Preferences() {
					for _, shape := range shapes {
						base := Snap(g, p, pref, shape)
						got := Snap(moved, p.Add(shift), pref, shape)
						if got != base.Add(shift) {
							t.Errorf("%v %v k=%d %v: got %v, expected %v", shape, g, k, pref, got, base.Add(shift))
						}
					}
				}
			}
		}
	}
}

func TestSnapReferenceCases(t *testing.T) {
	rect := core.NewRect(0, 0, 10, 10)
	iso := core.NewRect(0, 0, 32, 16)

	got := []core.Point{
		Snap(rect, core.Pt(7, 3), ClosestVertex, core.GridRectangular),
		Snap(rect, core.Pt(7, 3), FloorGrid, core.GridRectangular),
		Snap(rect, core.Pt(10, 10), CeilGrid, core.GridRectangular),
		Snap(iso, core.Pt(16, 8), ClosestVertex, core.GridIsometric),
	}
	want := []core.Point{
		core.Pt(10, 0),
		core.Pt(0, 0),
		core.Pt(10, 10),
		core.Pt(16, 8),
	}

	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("reference cases mismatch (-want +got):\n%s", diff)
	}
}

func TestSnapConcurrent(t *testing.T) {
	grid := core.NewRect(0, 0, 32, 16)
	s := New(Options{SnapToVerticals: true})
	want := s.Snap(grid, core.Pt(20, 9), ClosestVertex, core.GridIsometric)

	var wg sync.WaitGroup
	errs := make(chan core.Point, 64)
	for i := 0; i < 64; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if got := s.Snap(grid, core.Pt(20, 9), ClosestVertex, core.GridIsometric); got != want {
				errs <- got
			}
		}()
	}
	wg.Wait()
	close(errs)

	for got := range errs {
		t.Errorf("concurrent Snap = %v, expected %v", got, want)
	}
}

func TestPreferenceNames(t *testing.T) {
	want := []string{"closest", "box-origin", "box-end", "floor", "ceil"}
	var got []string
	for _, p := range Preferences() {
		got = append(got, p.String())
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("preference names mismatch (-want +got):\n%s", diff)
	}

	for _, p := range Preferences() {
		parsed, err := ParsePreference(p.String())
		if err != nil || parsed != p {
			t.Errorf("ParsePreference(%q) = %v, %v", p.String(), parsed, err)
		}
	}

	aliases := map[string]Preference{
		"":           ClosestVertex,
		"BOX_END":    BoxEnd,
		" Floor ":    FloorGrid,
		"box_origin": BoxOrigin,
	}
	for in, want := range aliases {
		if got, err := ParsePreference(in); err != nil || got != want {
			t.Errorf("ParsePreference(%q) = %v, %v; expected %v", in, got, err, want)
		}
	}

	if _, err := ParsePreference("nearest"); err == nil {
		t.Error("ParsePreference(nearest) should fail")
	}
	if Preference(12).String() != "Preference(12)" {
		t.Errorf("String() for unknown = %q", Preference(12).String())
	}

	var p Preference
	if err := p.UnmarshalText([]byte("ceil")); err != nil || p != CeilGrid {
		t.Errorf("UnmarshalText(ceil) = %v, %v", p, err)
	}
}
