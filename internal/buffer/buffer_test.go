package buffer_test

import (
	"testing"

	"github.com/mullion/mullion/internal/buffer"
)

func TestCreateUniquifiesNames(t *testing.T) {
	r := buffer.NewRegistry()
	a := r.Create("scratch", "")
	b := r.Create("scratch", "")
	c := r.Create("scratch", "")

	if a.Name() != "scratch" {
		t.Errorf("first name = %q, want scratch", a.Name())
	}
	if b.Name() != "scratch<2>" || c.Name() != "scratch<3>" {
		t.Errorf("later names = %q, %q, want scratch<2>, scratch<3>", b.Name(), c.Name())
	}
	if a.ID() == b.ID() {
		t.Error("distinct buffers share an ID")
	}
}

func TestKill(t *testing.T) {
	r := buffer.NewRegistry()
	b := r.Create("doomed", "")

	if err := r.Kill("doomed"); err != nil {
		t.Fatalf("kill: %v", err)
	}
	if b.Live() {
		t.Error("killed buffer still live")
	}
	if _, ok := r.Lookup("doomed"); ok {
		t.Error("killed buffer still registered")
	}
	if err := r.Kill("doomed"); err == nil {
		t.Error("second kill succeeded")
	}
}

func TestBuffersAreMRUOrdered(t *testing.T) {
	r := buffer.NewRegistry()
	a := r.Create("a", "")
	b := r.Create("b", "")
	c := r.Create("c", "")

	r.Touch(a)
	got := r.Buffers()
	want := []*buffer.Buffer{a, c, b}
	if len(got) != len(want) {
		t.Fatalf("registry holds %d buffers, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("order[%d] = %s, want %s", i, got[i].Name(), want[i].Name())
		}
	}
}

func TestMostSimilar(t *testing.T) {
	r := buffer.NewRegistry()
	r.Create("notes.txt", "file")
	main := r.Create("main.go", "file")
	shell := r.Create("shell", "shell")

	if got := r.MostSimilar("main.go.bak", "file"); got != main {
		t.Errorf("most similar to main.go.bak = %s, want main.go", got.Name())
	}
	// No shared prefix anywhere; kind decides.
	if got := r.MostSimilar("zsh", "shell"); got != shell {
		t.Errorf("most similar to zsh = %s, want shell", got.Name())
	}
	if got := buffer.NewRegistry().MostSimilar("anything", ""); got != nil {
		t.Errorf("empty registry returned %v", got)
	}
}

func TestMinDisplaySize(t *testing.T) {
	b := buffer.New("sized", "")
	if b.MinDisplayWidth() != 0 || b.MinDisplayHeight() != 0 {
		t.Error("fresh buffer carries a display constraint")
	}
	b.SetMinDisplaySize(12, 3)
	if b.MinDisplayWidth() != 12 || b.MinDisplayHeight() != 3 {
		t.Errorf("min size = %dx%d, want 12x3",
			b.MinDisplayWidth(), b.MinDisplayHeight())
	}
}
