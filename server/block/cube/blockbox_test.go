package cube

import "testing"

func TestBlockBox(t *testing.T) {
	b := NewBlockBox(5, 10, -3, 1, 0, 3)
	if b.Min != (Pos{1, 0, -3}) || b.Max != (Pos{5, 10, 3}) {
		t.Fatalf("expected corners to be ordered, got %v", b)
	}
	if !b.Contains(Pos{1, 10, 3}) || b.Contains(Pos{0, 5, 0}) {
		t.Fatalf("unexpected containment")
	}

	o := NewBlockBox(4, 4, 2, 20, 20, 20)
	in, ok := b.Intersection(o)
	if !ok || in != NewBlockBox(4, 4, 2, 5, 10, 3) {
		t.Fatalf("unexpected intersection %v (%v)", in, ok)
	}
	if _, ok := b.Intersection(NewBlockBox(6, 0, 0, 7, 0, 0)); ok {
		t.Fatalf("expected disjoint boxes not to intersect")
	}
}

func TestBlockBoxRange(t *testing.T) {
	var got []Pos
	NewBlockBox(0, 0, 0, 1, 1, 1).Range(func(pos Pos) {
		got = append(got, pos)
	})
	want := []Pos{{0, 0, 0}, {0, 0, 1}, {0, 1, 0}, {0, 1, 1}, {1, 0, 0}, {1, 0, 1}, {1, 1, 0}, {1, 1, 1}}
	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, got)
		}
	}
}
