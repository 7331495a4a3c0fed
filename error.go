package dlist

import "errors"

// ErrEmpty indicates the list has no elements.
var ErrEmpty = errors.New("list is empty")
