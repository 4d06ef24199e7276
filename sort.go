package blocklist

import (
	"cmp"

	"github.com/npillmayer/blocklist/chain"
)

// SortFunc sorts the list in non-decreasing order as determined by compare,
// which must return a negative number when a orders before b, zero when
// they order equally, and a positive number otherwise.
//
// The list is drained element by element through a cursor, the flat
// sequence is ordered with an insertion sort, and the elements are appended
// back through the same cursor. Because the rebuild appends only, every
// block except possibly the last one ends up completely full.
func (l *List[T]) SortFunc(compare func(a, b T) int) error {
	arr, it, err := l.drain()
	if err != nil {
		return err
	}
	insertionSort(arr, compare)
	return rebuild(it, arr)
}

// SortReverseFunc sorts the list in non-increasing order as determined by
// compare. The drain/rebuild cycle is the same as for SortFunc; the flat
// sequence is ordered with a bubble sort, largest first. The post-sort
// block packing guarantee of SortFunc holds here as well.
func (l *List[T]) SortReverseFunc(compare func(a, b T) int) error {
	arr, it, err := l.drain()
	if err != nil {
		return err
	}
	bubbleSort(arr, compare)
	return rebuild(it, arr)
}

// Sort sorts a list of naturally ordered elements in non-decreasing order.
func Sort[T cmp.Ordered](l *List[T]) error {
	return l.SortFunc(cmp.Compare[T])
}

// SortReverse sorts a list of naturally ordered elements in non-increasing
// order.
func SortReverse[T cmp.Ordered](l *List[T]) error {
	return l.SortReverseFunc(cmp.Compare[T])
}

// drain removes every element front to back through a cursor and returns
// them in original order, together with the cursor now parked on the empty
// chain.
func (l *List[T]) drain() ([]T, *chain.Cursor[T], error) {
	arr := make([]T, 0, l.Len())
	it := l.Iterator()
	for it.HasNext() {
		item, err := it.Next()
		if err != nil {
			return nil, nil, err
		}
		if err := it.Remove(); err != nil {
			return nil, nil, err
		}
		arr = append(arr, item)
	}
	tracer().Debugf("blocklist: drained %d elements for sorting", len(arr))
	return arr, it, nil
}

// rebuild appends the ordered elements back through the cursor.
func rebuild[T any](it *chain.Cursor[T], arr []T) error {
	for _, item := range arr {
		if err := it.Add(item); err != nil {
			return err
		}
	}
	tracer().Debugf("blocklist: rebuilt list with %d sorted elements", len(arr))
	return nil
}

// insertionSort orders arr in non-decreasing order, shifting elements right
// while the left neighbor compares greater or equal.
func insertionSort[T any](arr []T, compare func(a, b T) int) {
	for i := 1; i < len(arr); i++ {
		item := arr[i]
		j := i - 1
		for ; j >= 0 && compare(arr[j], item) >= 0; j-- {
			arr[j+1] = arr[j]
		}
		arr[j+1] = item
	}
}

// bubbleSort orders arr in non-increasing order by repeatedly swapping
// adjacent elements, sinking the smallest remaining element to the back.
func bubbleSort[T any](arr []T, compare func(a, b T) int) {
	for i := 0; i < len(arr); i++ {
		for j := 1; j < len(arr)-i; j++ {
			if compare(arr[j-1], arr[j]) < 0 {
				arr[j-1], arr[j] = arr[j], arr[j-1]
			}
		}
	}
}
