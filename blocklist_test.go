package blocklist

import (
	"errors"
	"testing"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func setupTracing(t *testing.T) func() {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	return teardown
}

func TestNewList(t *testing.T) {
	teardown := setupTracing(t)
	defer teardown()
	//
	l := New[int]()
	if !l.IsEmpty() || l.Len() != 0 {
		t.Errorf("expected new list to be empty, has %d elements", l.Len())
	}
	if l.NodeSize() != 4 {
		t.Errorf("expected default node size 4, got %d", l.NodeSize())
	}
}

func TestWithNodeSizeValidates(t *testing.T) {
	teardown := setupTracing(t)
	defer teardown()
	//
	for _, m := range []int{-4, 1, 3, 7} {
		if _, err := WithNodeSize[int](m); !errors.Is(err, ErrInvalidConfig) {
			t.Errorf("expected ErrInvalidConfig for node size %d, got %v", m, err)
		}
	}
	l, err := WithNodeSize[int](8)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if l.NodeSize() != 8 {
		t.Errorf("expected node size 8, got %d", l.NodeSize())
	}
}

func TestZeroValueListIsUsable(t *testing.T) {
	teardown := setupTracing(t)
	defer teardown()
	//
	var l List[string]
	if err := l.Append("hello"); err != nil {
		t.Fatalf("append to zero-value list failed: %v", err)
	}
	if got, _ := l.At(0); got != "hello" {
		t.Errorf("expected 'hello' at index 0, got %q", got)
	}
	if l.NodeSize() != 4 {
		t.Errorf("expected default node size, got %d", l.NodeSize())
	}
}

func TestAppendAndAt(t *testing.T) {
	teardown := setupTracing(t)
	defer teardown()
	//
	l := New[int]()
	for i := 0; i < 10; i++ {
		if err := l.Append(i * 2); err != nil {
			t.Fatalf("append failed: %v", err)
		}
	}
	if l.Len() != 10 {
		t.Fatalf("expected 10 elements, got %d", l.Len())
	}
	for i := 0; i < 10; i++ {
		got, err := l.At(i)
		if err != nil {
			t.Fatalf("At(%d) failed: %v", i, err)
		}
		if got != i*2 {
			t.Errorf("At(%d) = %d, want %d", i, got, i*2)
		}
	}
	if _, err := l.At(10); !errors.Is(err, ErrIndexOutOfBounds) {
		t.Errorf("expected bounds error, got %v", err)
	}
}

func TestInsertRemoveRoundTrip(t *testing.T) {
	teardown := setupTracing(t)
	defer teardown()
	//
	l := New[string]()
	for _, s := range []string{"a", "b", "d"} {
		if err := l.Append(s); err != nil {
			t.Fatalf("append failed: %v", err)
		}
	}
	if err := l.Insert(2, "c"); err != nil {
		t.Fatalf("insert failed: %v", err)
	}
	if got := l.Internal(); got != "[(a, b, c, d)]" {
		t.Errorf("unexpected layout: %s", got)
	}
	got, err := l.RemoveAt(2)
	if err != nil {
		t.Fatalf("remove failed: %v", err)
	}
	if got != "c" {
		t.Errorf("expected removed element 'c', got %q", got)
	}
	if l.Len() != 3 {
		t.Errorf("expected 3 elements after removal, got %d", l.Len())
	}
}

func TestValuesCollects(t *testing.T) {
	teardown := setupTracing(t)
	defer teardown()
	//
	l := New[int]()
	want := []int{3, 1, 4, 1, 5, 9, 2, 6}
	for _, v := range want {
		if err := l.Append(v); err != nil {
			t.Fatalf("append failed: %v", err)
		}
	}
	var got []int
	for v := range l.Values() {
		got = append(got, v)
	}
	if len(got) != len(want) {
		t.Fatalf("expected %d elements, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("element %d = %d, want %d", i, got[i], want[i])
		}
	}
}

func TestIteratorFacade(t *testing.T) {
	teardown := setupTracing(t)
	defer teardown()
	//
	l := New[int]()
	for i := 1; i <= 5; i++ {
		if err := l.Append(i); err != nil {
			t.Fatalf("append failed: %v", err)
		}
	}
	it, err := l.IteratorAt(3)
	if err != nil {
		t.Fatalf("IteratorAt failed: %v", err)
	}
	v, err := it.Next()
	if err != nil {
		t.Fatalf("Next failed: %v", err)
	}
	if v != 4 {
		t.Errorf("expected 4 at index 3, got %d", v)
	}
	if _, err := l.IteratorAt(6); !errors.Is(err, ErrIndexOutOfBounds) {
		t.Errorf("expected bounds error, got %v", err)
	}
}

func TestInsertNilPointerRejected(t *testing.T) {
	teardown := setupTracing(t)
	defer teardown()
	//
	l := New[*int]()
	if err := l.Append(nil); !errors.Is(err, ErrNilElement) {
		t.Errorf("expected ErrNilElement, got %v", err)
	}
	if l.Len() != 0 {
		t.Errorf("failed insert must not grow the list, len=%d", l.Len())
	}
}
