package sumtree

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/sumtree/intitem"
)

func TestNewEmpty(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "sumtree")
	defer teardown()
	//
	tree := intitem.New()
	if !tree.IsEmpty() {
		t.Error("expected fresh tree to be empty")
	}
	if got := tree.Summary(); got.Count != 0 || got.Sum != 0 {
		t.Errorf("expected zero summary, got %+v", got)
	}
}

func TestPushOneAtATime(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "sumtree")
	defer teardown()
	//
	tree := intitem.New()
	for _, v := range []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10} {
		tree = tree.Push(intitem.Item(v))
	}
	if msg, ok := CheckInvariants(tree); !ok {
		t.Fatalf("invariant violated after pushes: %s", msg)
	}
	got := intitem.ToSlice(tree)
	want := []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}
	if !intSliceEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	if s := tree.Summary(); s.Count != 10 || s.Sum != 55 {
		t.Errorf("expected Count=10 Sum=55, got %+v", s)
	}
}

func TestExtendAndPushTree(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "sumtree")
	defer teardown()
	//
	left := intitem.FromSlice([]int{1, 2, 3, 4, 5})
	right := intitem.FromSlice([]int{6, 7, 8, 9, 10})
	combined := left.PushTree(right)
	if msg, ok := CheckInvariants(combined); !ok {
		t.Fatalf("invariant violated after PushTree: %s", msg)
	}
	got := intitem.ToSlice(combined)
	want := []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}
	if !intSliceEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestPushTreeEmptyOperands(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "sumtree")
	defer teardown()
	//
	empty := intitem.New()
	full := intitem.FromSlice([]int{1, 2, 3})

	if got := intitem.ToSlice(empty.PushTree(full)); !intSliceEqual(got, []int{1, 2, 3}) {
		t.Fatalf("empty.PushTree(full) = %v", got)
	}
	if got := intitem.ToSlice(full.PushTree(empty)); !intSliceEqual(got, []int{1, 2, 3}) {
		t.Fatalf("full.PushTree(empty) = %v", got)
	}
}

func TestStructuralSharing(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "sumtree")
	defer teardown()
	//
	base := intitem.FromSlice([]int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12})
	extended := base.Push(intitem.Item(13))

	baseItems := intitem.ToSlice(base)
	if !intSliceEqual(baseItems, []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12}) {
		t.Fatalf("pushing onto extended mutated base: %v", baseItems)
	}
	if msg, ok := CheckInvariants(base); !ok {
		t.Fatalf("base invariant violated: %s", msg)
	}
	if msg, ok := CheckInvariants(extended); !ok {
		t.Fatalf("extended invariant violated: %s", msg)
	}
}

func TestSpliceMiddle(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "sumtree")
	defer teardown()
	//
	tree := intitem.FromSlice([]int{1, 2, 3, 4, 5, 6, 7, 8})
	replaced, err := Splice[intitem.Count](tree, intitem.Count(2), intitem.Count(5), []intitem.Item{100, 200})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if msg, ok := CheckInvariants(replaced); !ok {
		t.Fatalf("invariant violated after splice: %s", msg)
	}
	got := intitem.ToSlice(replaced)
	want := []int{1, 2, 100, 200, 6, 7, 8}
	if !intSliceEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestSpliceAtEnds(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "sumtree")
	defer teardown()
	//
	tree := intitem.FromSlice([]int{1, 2, 3})

	prepended, err := Splice[intitem.Count](tree, intitem.Count(0), intitem.Count(0), []intitem.Item{0})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := intitem.ToSlice(prepended); !intSliceEqual(got, []int{0, 1, 2, 3}) {
		t.Fatalf("prepend: got %v", got)
	}

	appended, err := Splice[intitem.Count](tree, intitem.Count(3), intitem.Count(3), []intitem.Item{4})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := intitem.ToSlice(appended); !intSliceEqual(got, []int{1, 2, 3, 4}) {
		t.Fatalf("append: got %v", got)
	}
}

func TestSpliceInvertedRange(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "sumtree")
	defer teardown()
	//
	tree := intitem.FromSlice([]int{1, 2, 3})
	_, err := Splice[intitem.Count](tree, intitem.Count(2), intitem.Count(1), []intitem.Item{9})
	if err != ErrIllegalArguments {
		t.Fatalf("expected ErrIllegalArguments, got %v", err)
	}
}

func TestSpliceWholeRange(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "sumtree")
	defer teardown()
	//
	tree := intitem.FromSlice([]int{1, 2, 3, 4, 5})
	replaced, err := Splice[intitem.Count](tree, intitem.Count(0), intitem.Count(5), []intitem.Item{9})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := intitem.ToSlice(replaced); !intSliceEqual(got, []int{9}) {
		t.Fatalf("got %v, want [9]", got)
	}
}

func TestIteratorOrder(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "sumtree")
	defer teardown()
	//
	tree := intitem.FromSlice([]int{5, 4, 3, 2, 1})
	it := tree.Iter()
	var got []int
	for {
		item, ok := it.Next()
		if !ok {
			break
		}
		got = append(got, int(item))
	}
	if !intSliceEqual(got, []int{5, 4, 3, 2, 1}) {
		t.Fatalf("got %v", got)
	}
}

func TestGet(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "sumtree")
	defer teardown()
	//
	tree := intitem.FromSlice([]int{10, 20, 30})

	for i, want := range []int{10, 20, 30} {
		got, err := Get[intitem.Count](tree, intitem.Count(i))
		if err != nil {
			t.Fatalf("Get(%d): unexpected error %v", i, err)
		}
		if int(got) != want {
			t.Fatalf("Get(%d) = %v, want %d", i, got, want)
		}
	}

	if _, err := Get[intitem.Count](tree, intitem.Count(3)); err != ErrIndexOutOfBounds {
		t.Fatalf("Get(3): expected ErrIndexOutOfBounds, got %v", err)
	}
}

func intSliceEqual(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
