package kitchen

const DefaultCapacity = 100

// ArrayBag is a fixed capacity unordered multiset. Removal fills the vacated
// slot with the last item, so indexes are only stable between mutations.
type ArrayBag[T IEquatable[T]] struct {
	items    []T
	capacity int
}

var _ IBag[Dish] = (*ArrayBag[Dish])(nil)

func NewArrayBag[T IEquatable[T]](capacity int) *ArrayBag[T] {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &ArrayBag[T]{
		items:    make([]T, 0, capacity),
		capacity: capacity,
	}
}

func (b *ArrayBag[T]) Add(item T) bool {
	if len(b.items) >= b.capacity {
		return false
	}
	b.items = append(b.items, item)
	return true
}

func (b *ArrayBag[T]) Remove(item T) bool {
	idx := b.indexOf(item)
	if idx < 0 {
		return false
	}
	last := len(b.items) - 1
	b.items[idx] = b.items[last]
	var zero T
	b.items[last] = zero
	b.items = b.items[:last]
	return true
}

func (b *ArrayBag[T]) Contains(item T) bool {
	return b.indexOf(item) >= 0
}

func (b *ArrayBag[T]) FrequencyOf(item T) int {
	var cnt int
	for _, it := range b.items {
		if it.Equal(item) {
			cnt++
		}
	}
	return cnt
}

func (b *ArrayBag[T]) Clear() {
	clear(b.items)
	b.items = b.items[:0]
}

func (b ArrayBag[T]) CurrentSize() int {
	return len(b.items)
}

func (b ArrayBag[T]) Capacity() int {
	return b.capacity
}

func (b ArrayBag[T]) IsEmpty() bool {
	return len(b.items) == 0
}

func (b ArrayBag[T]) At(i int) T {
	return b.items[i]
}

// Items returns a copy, callers may keep it across mutations.
func (b ArrayBag[T]) Items() []T {
	res := make([]T, len(b.items))
	copy(res, b.items)
	return res
}

func (b ArrayBag[T]) indexOf(item T) int {
	for i, it := range b.items {
		if it.Equal(item) {
			return i
		}
	}
	return -1
}
