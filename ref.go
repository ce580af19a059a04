package yew

import "sync"

// NodeRef is a reference to an element, set when the element is
// constructed with WithRef and read later, typically from a listener.
// Thread-safe.
type NodeRef struct {
	mu    sync.RWMutex
	value *VTag
}

// NewNodeRef creates a new empty NodeRef.
func NewNodeRef() *NodeRef {
	return &NodeRef{}
}

// Set stores the element in this ref.
func (r *NodeRef) Set(v *VTag) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.value = v
}

// Get returns the referenced element, or nil if not yet set.
func (r *NodeRef) Get() *VTag {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.value
}

// IsSet returns true if the ref has been set to a non-nil element.
func (r *NodeRef) IsSet() bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.value != nil
}

// NodeRefMap holds keyed references to elements created in a loop.
// Thread-safe.
type NodeRefMap[K comparable] struct {
	mu    sync.RWMutex
	elems map[K]*NodeRef
}

// NewNodeRefMap creates a new empty NodeRefMap.
func NewNodeRefMap[K comparable]() *NodeRefMap[K] {
	return &NodeRefMap[K]{elems: make(map[K]*NodeRef)}
}

// Ref returns the ref for key, creating it on first use, so it can be
// passed to WithRef while building a list.
func (r *NodeRefMap[K]) Ref(key K) *NodeRef {
	r.mu.Lock()
	defer r.mu.Unlock()
	ref, ok := r.elems[key]
	if !ok {
		ref = NewNodeRef()
		r.elems[key] = ref
	}
	return ref
}

// Get returns the element for the given key, or nil if not set.
func (r *NodeRefMap[K]) Get(key K) *VTag {
	r.mu.RLock()
	ref := r.elems[key]
	r.mu.RUnlock()
	if ref == nil {
		return nil
	}
	return ref.Get()
}

// Len returns the number of refs in this map.
func (r *NodeRefMap[K]) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.elems)
}
