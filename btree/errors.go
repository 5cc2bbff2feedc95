package btree

import "errors"

var (
	// ErrIndexOutOfBounds signals an invalid positional index.
	ErrIndexOutOfBounds = errors.New("btree: index out of bounds")
	// ErrStructure signals a violated structural invariant (fill, size, height).
	ErrStructure = errors.New("btree: structural invariant violated")
	// ErrOrder signals elements or separator keys that are out of order.
	ErrOrder = errors.New("btree: order invariant violated")
	// ErrRefCount signals a reachable node without a live reference.
	ErrRefCount = errors.New("btree: invalid reference count")
)
