// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package pool provides a generational arena: an owning container whose
// elements are referenced by [Handle]s instead of pointers. A handle is a
// (index, generation) pair; it stays cheap to copy, never keeps its target
// alive, and becomes detectably stale once the slot it points at is freed
// and reused. This is the identity layer for graph structures that need
// back-references (such as a child's parent link) without ownership cycles.
package pool

import (
	"fmt"
	"iter"
)

// Handle is a typed reference to a value of type T living in a [Pool].
// The zero value is the null handle, which is never valid. A handle does
// not own or keep alive the value it refers to; it must be resolved
// through the pool that issued it, which detects stale handles by
// comparing generations.
type Handle[T any] struct {
	index      int32
	generation uint32
}

// ErasedHandle is the type-independent form of a [Handle], used where the
// concrete element type is irrelevant, such as in UI-facing contracts.
// The zero value is the null handle.
type ErasedHandle struct {
	Index      int32
	Generation uint32
}

// Erase returns the type-erased form of the handle.
func (h Handle[T]) Erase() ErasedHandle {
	return ErasedHandle{Index: h.index, Generation: h.generation}
}

// Typed converts an erased handle back to a typed one. The conversion is
// purely nominal; validity is still decided by the pool it is resolved
// against.
func Typed[T any](e ErasedHandle) Handle[T] {
	return Handle[T]{index: e.Index, generation: e.Generation}
}

// IsNil reports whether the handle is the null handle.
func (h Handle[T]) IsNil() bool {
	return h.generation == 0
}

// IsSome reports whether the handle refers to something (it may still be
// stale; see [Pool.IsValidHandle]).
func (h Handle[T]) IsSome() bool {
	return h.generation != 0
}

// String implements [fmt.Stringer].
func (h Handle[T]) String() string {
	if h.IsNil() {
		return "nil"
	}
	return fmt.Sprintf("%d@%d", h.index, h.generation)
}

// IsNil reports whether the erased handle is the null handle.
func (e ErasedHandle) IsNil() bool {
	return e.Generation == 0
}

// IsSome reports whether the erased handle refers to something.
func (e ErasedHandle) IsSome() bool {
	return e.Generation != 0
}

// String implements [fmt.Stringer].
func (e ErasedHandle) String() string {
	if e.IsNil() {
		return "nil"
	}
	return fmt.Sprintf("%d@%d", e.Index, e.Generation)
}

// slot is one arena cell. A slot is live when value is non-nil, free when
// it is on the free list, and reserved when its value has been taken out
// temporarily (see [Pool.ReserveTake]) with the generation kept so the
// original handles become valid again on [Pool.Restore].
type slot[T any] struct {
	generation uint32
	value      *T
	reserved   bool
}

// Pool is a generational arena of T. The zero value is ready to use.
// Pool is not safe for concurrent use.
type Pool[T any] struct {
	slots []slot[T]
	free  []int32
	live  int
}

// Spawn places the given value into the pool and returns a handle to it.
// Freed slots are reused with a bumped generation, so handles issued for
// a slot's previous occupant remain detectably stale.
func (p *Pool[T]) Spawn(value *T) Handle[T] {
	if n := len(p.free); n > 0 {
		idx := p.free[n-1]
		p.free = p.free[:n-1]
		s := &p.slots[idx]
		s.value = value
		p.live++
		return Handle[T]{index: idx, generation: s.generation}
	}
	p.slots = append(p.slots, slot[T]{generation: 1, value: value})
	p.live++
	return Handle[T]{index: int32(len(p.slots) - 1), generation: 1}
}

// TryGet resolves the handle, returning nil and false if it is null,
// stale, reserved, or out of range. It never panics.
func (p *Pool[T]) TryGet(h Handle[T]) (*T, bool) {
	if h.IsNil() || int(h.index) >= len(p.slots) || h.index < 0 {
		return nil, false
	}
	s := &p.slots[h.index]
	if s.generation != h.generation || s.value == nil {
		return nil, false
	}
	return s.value, true
}

// IsValidHandle reports whether the handle resolves to a live value.
func (p *Pool[T]) IsValidHandle(h Handle[T]) bool {
	_, ok := p.TryGet(h)
	return ok
}

// Free removes the value at the given handle from the pool, returning it
// and true on success. The slot's generation is bumped so that any
// outstanding handles to it become stale, and the slot is made available
// for reuse.
func (p *Pool[T]) Free(h Handle[T]) (*T, bool) {
	v, ok := p.TryGet(h)
	if !ok {
		return nil, false
	}
	s := &p.slots[h.index]
	s.value = nil
	s.generation++
	p.free = append(p.free, h.index)
	p.live--
	return v, true
}

// ReserveTake removes the value at the given handle but keeps the slot
// reserved: the generation is not bumped and the slot is not reusable, so
// the same handle becomes valid again after [Pool.Restore]. This is the
// mechanism behind detaching a sub-graph without invalidating handles
// held elsewhere (selections, undo records).
func (p *Pool[T]) ReserveTake(h Handle[T]) (*T, bool) {
	v, ok := p.TryGet(h)
	if !ok {
		return nil, false
	}
	s := &p.slots[h.index]
	s.value = nil
	s.reserved = true
	p.live--
	return v, true
}

// Restore places a value back into a slot previously emptied by
// [Pool.ReserveTake]. It returns false if the handle does not name a
// reserved slot of matching generation.
func (p *Pool[T]) Restore(h Handle[T], value *T) bool {
	if h.IsNil() || int(h.index) >= len(p.slots) || h.index < 0 {
		return false
	}
	s := &p.slots[h.index]
	if !s.reserved || s.generation != h.generation {
		return false
	}
	s.value = value
	s.reserved = false
	p.live++
	return true
}

// Len returns the number of live values in the pool.
func (p *Pool[T]) Len() int {
	return p.live
}

// All returns an iterator over all live (handle, value) pairs in slot
// (arena) order. Reserved and free slots are skipped.
func (p *Pool[T]) All() iter.Seq2[Handle[T], *T] {
	return func(yield func(Handle[T], *T) bool) {
		for i := range p.slots {
			s := &p.slots[i]
			if s.value == nil {
				continue
			}
			if !yield(Handle[T]{index: int32(i), generation: s.generation}, s.value) {
				return
			}
		}
	}
}
