package codeset

import "testing"

func TestFromDigitsRoundTrip(t *testing.T) {
	for t1 := 1; t1 <= 5; t1++ {
		for s := 1; s <= 5; s++ {
			for c := 1; c <= 5; c++ {
				code, err := FromDigits(t1, s, c)
				if err != nil {
					t.Fatalf("FromDigits(%d,%d,%d): %v", t1, s, c, err)
				}
				gotT, gotS, gotC := code.Digits()
				if gotT != t1 || gotS != s || gotC != c {
					t.Fatalf("Digits() = (%d,%d,%d), want (%d,%d,%d)", gotT, gotS, gotC, t1, s, c)
				}
			}
		}
	}
}

func TestFromDigitsInvalid(t *testing.T) {
	for _, bad := range []int{0, -1, 6, 100} {
		if _, err := FromDigits(bad, 1, 1); err == nil {
			t.Fatalf("FromDigits(%d,1,1): expected error", bad)
		}
	}
}

func TestAllAndEmptySize(t *testing.T) {
	if got := All().Size(); got != 125 {
		t.Fatalf("All().Size() = %d, want 125", got)
	}
	if got := Empty().Size(); got != 0 {
		t.Fatalf("Empty().Size() = %d, want 0", got)
	}
}

func TestIndexRoundTrip(t *testing.T) {
	seen := map[int]Code{}
	for idx := 0; idx < 125; idx++ {
		code := fromIndex(idx)
		if code.Index() != idx {
			t.Fatalf("fromIndex(%d).Index() = %d", idx, code.Index())
		}
		seen[idx] = code
	}
	if len(seen) != 125 {
		t.Fatalf("expected 125 distinct indices, got %d", len(seen))
	}
}

func TestInsertContains(t *testing.T) {
	code, _ := FromDigits(3, 2, 5)
	s := Empty().Insert(code)
	if !s.Contains(code) {
		t.Fatalf("expected set to contain inserted code")
	}
	other, _ := FromDigits(1, 1, 1)
	if s.Contains(other) {
		t.Fatalf("expected set to not contain unrelated code")
	}
}

func TestUnionIntersect(t *testing.T) {
	a, _ := FromDigits(1, 1, 1)
	b, _ := FromDigits(2, 2, 2)
	setA := Single(a)
	setB := Single(b)

	union := Union(setA, setB)
	if union.Size() != 2 || !union.Contains(a) || !union.Contains(b) {
		t.Fatalf("unexpected union: %+v", union)
	}

	if got := Intersect(setA, setB).Size(); got != 0 {
		t.Fatalf("Intersect of disjoint singletons = %d, want 0", got)
	}
	if got := Intersect(setA, setA).Size(); got != 1 {
		t.Fatalf("Intersect(a,a) = %d, want 1", got)
	}
}

func TestFromPredicate(t *testing.T) {
	evenTriangle := FromPredicate(func(c Code) bool { return c.Triangle()%2 == 0 })
	for code := range All().Iter() {
		want := code.Triangle()%2 == 0
		if got := evenTriangle.Contains(code); got != want {
			t.Fatalf("evenTriangle.Contains(%v) = %v, want %v", code, got, want)
		}
	}
}

func TestIterAscendingAndComplete(t *testing.T) {
	last := -1
	count := 0
	for code := range All().Iter() {
		if code.Index() <= last {
			t.Fatalf("Iter() not ascending at index %d", code.Index())
		}
		last = code.Index()
		count++
	}
	if count != 125 {
		t.Fatalf("iterated %d codes, want 125", count)
	}
}

func TestIterEmptyIsNoOp(t *testing.T) {
	for range Empty().Iter() {
		t.Fatalf("Empty().Iter() yielded a code")
	}
}

func TestOne(t *testing.T) {
	code, _ := FromDigits(4, 3, 2)
	s := Single(code)
	got, ok := s.One()
	if !ok || got != code {
		t.Fatalf("One() = (%v, %v), want (%v, true)", got, ok, code)
	}
	if _, ok := All().One(); ok {
		t.Fatalf("One() on a multi-element set should report false")
	}
}

func TestRepeats(t *testing.T) {
	triple, _ := FromDigits(2, 2, 2)
	pair, _ := FromDigits(2, 2, 3)
	distinct, _ := FromDigits(1, 2, 3)
	if got := triple.Repeats(); got != 2 {
		t.Fatalf("triple.Repeats() = %d, want 2", got)
	}
	if got := pair.Repeats(); got != 1 {
		t.Fatalf("pair.Repeats() = %d, want 1", got)
	}
	if got := distinct.Repeats(); got != 0 {
		t.Fatalf("distinct.Repeats() = %d, want 0", got)
	}
}

func TestOrder(t *testing.T) {
	asc, _ := FromDigits(1, 2, 3)
	desc, _ := FromDigits(3, 2, 1)
	none, _ := FromDigits(1, 3, 2)
	if asc.Order() != Ascending {
		t.Fatalf("ascending code misclassified as %v", asc.Order())
	}
	if desc.Order() != Descending {
		t.Fatalf("descending code misclassified as %v", desc.Order())
	}
	if none.Order() != NoOrder {
		t.Fatalf("unordered code misclassified as %v", none.Order())
	}
}
