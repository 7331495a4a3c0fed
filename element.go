package dlist

import "weak"

// Element is a list element.
//
// The next link owns the successor, the prev link is a weak reference
// to the predecessor and never keeps it alive.
type Element[V any] struct {
	next  *Element[V]
	prev  weak.Pointer[Element[V]]
	list  *List[V]
	refs  int
	Value V
}

// Next returns the element closer to the front of the list or nil.
func (e *Element[V]) Next() *Element[V] {
	if e.list == nil || e.next == e.list.head {
		return nil
	}
	return e.next
}

// Prev returns the element closer to the back of the list or nil.
func (e *Element[V]) Prev() *Element[V] {
	if e.list == nil {
		return nil
	}
	if p := e.prev.Value(); p != nil && p != e.list.tail {
		return p
	}
	return nil
}

// setNext replaces the owning forward link of e.
func (e *Element[V]) setNext(n *Element[V]) {
	if e.next != nil {
		e.next.refs--
	}
	e.next = n
	if n != nil {
		n.refs++
	}
}

// setPrev points the back reference of e to p.
func (e *Element[V]) setPrev(p *Element[V]) {
	e.prev = weak.Make(p)
}

// predecessor resolves the back reference of e.
func (e *Element[V]) predecessor() *Element[V] {
	p := e.prev.Value()
	if p == nil {
		panic("dlist: broken back reference")
	}
	return p
}

// release drops the remaining links of a node that is no longer in the chain.
func (e *Element[V]) release() {
	e.setNext(nil)
	e.prev = weak.Pointer[Element[V]]{}
	e.list = nil

	if e.refs != 0 {
		panic("dlist: element still referenced")
	}
}
