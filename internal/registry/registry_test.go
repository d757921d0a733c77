package registry

import (
	"testing"

	"github.com/vovakirdan/gridsnap/internal/core"
)

func TestRegisterAndGet(t *testing.T) {
	p := Preset{ID: "test-iso", Title: "Test iso", Grid: core.NewRect(0, 0, 32, 16), Type: core.GridIsometric}
	Register(p)
	t.Cleanup(func() { unregister(p.ID) })

	if !Exists("test-iso") {
		t.Fatal("Exists() = false after Register")
	}

	got, err := Get("test-iso")
	if err != nil {
		t.Fatalf("Get() failed: %v", err)
	}
	if got != p {
		t.Errorf("Get() = %+v, expected %+v", got, p)
	}

	if _, err := Get("missing"); err == nil {
		t.Error("Get(missing) should fail")
	}
}

func TestListSorted(t *testing.T) {
	for _, id := range []string{"test-c", "test-a", "test-b"} {
		Register(Preset{ID: id, Grid: core.NewRect(0, 0, 8, 8)})
		id := id
		t.Cleanup(func() { unregister(id) })
	}

	list := List()
	for i := 1; i < len(list); i++ {
		if list[i-1].ID >= list[i].ID {
			t.Fatalf("List() not sorted: %q before %q", list[i-1].ID, list[i].ID)
		}
	}
}

func TestRegisterPanics(t *testing.T) {
	Register(Preset{ID: "test-dup", Grid: core.NewRect(0, 0, 8, 8)})
	t.Cleanup(func() { unregister("test-dup") })

	tests := []struct {
		name string
		p    Preset
	}{
		{"duplicate id", Preset{ID: "test-dup", Grid: core.NewRect(0, 0, 8, 8)}},
		{"empty grid", Preset{ID: "test-empty", Grid: core.NewRect(0, 0, 0, 8)}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Errorf("Register(%+v) did not panic", tc.p)
				}
			}()
			Register(tc.p)
		})
	}
}
