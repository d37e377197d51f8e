package turntimer

import "fmt"

// Rotation cycles through a fixed list of items forever.
// Every accessor except Push and Len panics on an empty rotation.
type Rotation[T any] struct {
	items []T
	index int
}

// Push appends an item at the end of the cycle.
func (r *Rotation[T]) Push(item T) {
	r.items = append(r.items, item)
}

// Len returns the number of items.
func (r *Rotation[T]) Len() int {
	return len(r.items)
}

func (r *Rotation[T]) check(op string) {
	if len(r.items) == 0 {
		panic(fmt.Sprintf("turntimer: %s on empty rotation", op))
	}
	if r.index >= len(r.items) {
		panic(fmt.Sprintf("turntimer: %s with index %d and len %d", op, r.index, len(r.items)))
	}
}

// Current returns a pointer to the active item.
func (r *Rotation[T]) Current() *T {
	r.check("Current")
	return &r.items[r.index]
}

// Advance moves the cursor to the next item, wrapping at the end.
func (r *Rotation[T]) Advance() {
	r.check("Advance")
	r.index = (r.index + 1) % len(r.items)
}

// Index returns the cursor position.
func (r *Rotation[T]) Index() int {
	r.check("Index")
	return r.index
}

// Items returns the underlying items. Callers must not append to it.
func (r *Rotation[T]) Items() []T {
	r.check("Items")
	return r.items
}
