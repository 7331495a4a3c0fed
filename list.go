/*
Package dlist implements a circular doubly linked list bounded by two sentinel elements.

Every forward link owns its successor and every back link is a weak reference.
Starting from the tail sentinel and following the forward links visits every
element from the back to the front of the list, reaches the head sentinel and
arrives back at the tail sentinel.
*/
package dlist

import (
	"fmt"
	"iter"
	"strings"
	"weak"
)

// List is a circular doubly linked list with head and tail sentinels.
//
// The zero value is a ready to use empty list.
type List[V any] struct {
	head *Element[V]
	tail *Element[V]
	opts listOptions[V]
	len  int
}

// New creates an empty list.
func New[V any](opts ...Option[V]) *List[V] {
	l := &List[V]{
		opts: newDefaultListOptions[V](),
	}

	for _, opt := range opts {
		opt.apply(&l.opts)
	}

	l.init()

	return l
}

func (l *List[V]) init() {
	head := &Element[V]{list: l}
	tail := &Element[V]{list: l}

	// The list owns both sentinels.
	head.refs++
	tail.refs++

	tail.setNext(head)
	head.setNext(tail)
	head.setPrev(tail)
	tail.setPrev(head)

	l.head = head
	l.tail = tail
	l.len = 0
}

func (l *List[V]) lazyInit() {
	if l.head == nil {
		l.init()
	}
}

// Len returns the number of elements in the list.
func (l *List[V]) Len() int {
	return l.len
}

// Front returns the first element of the list or nil.
func (l *List[V]) Front() *Element[V] {
	if l.len == 0 {
		return nil
	}
	return l.head.predecessor()
}

// Back returns the last element of the list or nil.
func (l *List[V]) Back() *Element[V] {
	if l.len == 0 {
		return nil
	}
	return l.tail.next
}

// PushBack inserts a value at the back of the list and returns the new element.
func (l *List[V]) PushBack(value V) *Element[V] {
	e := &Element[V]{Value: value}
	l.PushBackElem(e)
	return e
}

// PushBackElem inserts a detached element at the back of the list.
// If capacity is exceeded, the front element is popped.
func (l *List[V]) PushBackElem(e *Element[V]) {
	l.lazyInit()

	if e.list != nil {
		panic("dlist: element already in a list")
	}

	l.link(e, l.tail)
	l.shrink(l.PopFront)
}

// PushFront inserts a value at the front of the list and returns the new element.
func (l *List[V]) PushFront(value V) *Element[V] {
	e := &Element[V]{Value: value}
	l.PushFrontElem(e)
	return e
}

// PushFrontElem inserts a detached element at the front of the list.
// If capacity is exceeded, the back element is popped.
func (l *List[V]) PushFrontElem(e *Element[V]) {
	l.lazyInit()

	if e.list != nil {
		panic("dlist: element already in a list")
	}

	l.link(e, l.head.predecessor())
	l.shrink(l.PopBack)
}

// PopFront removes the front element and returns its value.
// It returns false if the list is empty.
func (l *List[V]) PopFront() (value V, ok bool) {
	if l.len == 0 {
		return value, false
	}
	return l.take(l.head.predecessor()), true
}

// PopBack removes the back element and returns its value.
// It returns false if the list is empty.
func (l *List[V]) PopBack() (value V, ok bool) {
	if l.len == 0 {
		return value, false
	}
	return l.take(l.tail.next), true
}

// SplitAt detaches an element from the list without clearing its value.
// The element may be inserted again with PushBackElem or PushFrontElem.
func (l *List[V]) SplitAt(e *Element[V]) {
	l.mustContain(e)
	l.unlink(e)
}

// Remove an element from the list and return its value.
func (l *List[V]) Remove(e *Element[V]) V {
	l.mustContain(e)
	return l.take(e)
}

// MoveToFront moves the element to the front of the list.
func (l *List[V]) MoveToFront(e *Element[V]) {
	l.mustContain(e)
	if e == l.Front() {
		return
	}
	l.SplitAt(e)
	l.link(e, l.head.predecessor())
}

// MoveToBack moves the element to the back of the list.
func (l *List[V]) MoveToBack(e *Element[V]) {
	l.mustContain(e)
	if e == l.Back() {
		return
	}
	l.SplitAt(e)
	l.link(e, l.tail)
}

// Do calls function f on each element of the list, from the back to the front.
// If f returns false, Do stops the iteration.
// f must not change l.
func (l *List[V]) Do(f func(e *Element[V]) bool) {
	if l.len == 0 {
		return
	}

	for e := l.tail.next; e != l.head; e = e.next {
		if !f(e) {
			return
		}
	}
}

// All returns an iterator over the values of the list, from the back to the front.
// This is the order in which repeated PopBack calls return them.
func (l *List[V]) All() iter.Seq[V] {
	return func(yield func(V) bool) {
		l.Do(func(e *Element[V]) bool {
			return yield(e.Value)
		})
	}
}

// Values returns the values of the list, from the back to the front.
func (l *List[V]) Values() []V {
	values := make([]V, 0, l.len)
	for v := range l.All() {
		values = append(values, v)
	}
	return values
}

// String renders the values from the back to the front.
func (l *List[V]) String() string {
	var b strings.Builder

	l.Do(func(e *Element[V]) bool {
		if b.Len() > 0 {
			b.WriteString(" -> ")
		}
		fmt.Fprint(&b, e.Value)
		return true
	})

	return b.String()
}

// Close releases every element of the list including the sentinels.
// Forward links are severed one at a time starting from the tail sentinel.
// Element values are not cleared. The list keeps its options and is ready
// to use again as an empty list.
func (l *List[V]) Close() {
	if l.head == nil {
		return
	}

	for cur := l.tail; cur.next != nil; {
		next := cur.next
		cur.setNext(nil)
		cur.prev = weak.Pointer[Element[V]]{}
		cur.list = nil
		cur = next
	}

	l.head.refs--
	l.tail.refs--

	*l = List[V]{opts: l.opts}
}

// mustContain panics if e is not a real element of l.
func (l *List[V]) mustContain(e *Element[V]) {
	if e == nil || e.list != l || e == l.head || e == l.tail {
		panic("dlist: invalid element")
	}
}

// link inserts t after p.
func (l *List[V]) link(t, p *Element[V]) {
	q := p.next

	// p -> t -> q
	t.setNext(q)
	p.setNext(t)
	q.setPrev(t)
	t.setPrev(p)

	t.list = l
	l.len++
}

// unlink detaches t from the chain and releases its links.
func (l *List[V]) unlink(t *Element[V]) {
	p := t.predecessor()
	q := t.next

	// p -> q
	p.setNext(q)
	q.setPrev(p)

	l.len--
	t.release()
}

// take unlinks t and moves its value out.
func (l *List[V]) take(t *Element[V]) V {
	l.unlink(t)

	value := t.Value
	var zero V
	t.Value = zero

	return value
}

func (l *List[V]) shrink(pop func() (V, bool)) {
	for l.opts.capacity > 0 && l.len > l.opts.capacity {
		value, _ := pop()
		if l.opts.evict != nil {
			l.opts.evict(value)
		}
	}
}
