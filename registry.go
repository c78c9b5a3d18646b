// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package fbo

import "fmt"

// record is the registry entry for one render target. Non-window
// records own native objects; the window record has none of its own
// (its backing store is the window framebuffer, native name 0).
type record struct {
	isWindow bool
	size     Size

	// Native object names. Zero/unused for the window record.
	framebuffer     uint32
	colorTexture    uint32
	depthStencil    uint32
	hasDepthStencil bool

	// pressure is the advisory GPU memory footprint in bytes.
	pressure uint64
}

// registry maps handles to resource records. It is the single source
// of truth for which render targets exist. The registry is owned
// exclusively by the owning thread and carries no locking.
type registry struct {
	records map[Handle]*record
}

func newRegistry() *registry {
	return &registry{records: make(map[Handle]*record)}
}

// insert adds a record under a handle. Records are inserted fully
// constructed or not at all; the factory never exposes a partial one.
func (r *registry) insert(h Handle, rec *record) {
	r.records[h] = rec
}

// get returns the record for a handle. An unknown handle means a
// caller retained it past destruction, which is a contract breach the
// registry cannot recover from, so get panics rather than returning
// an error.
func (r *registry) get(h Handle) *record {
	rec, ok := r.records[h]
	if !ok {
		panic(fmt.Sprintf("fbo: unknown render target handle %d (stale handle held past destruction?)", h))
	}
	return rec
}

// lookup returns the record for a handle, reporting absence instead
// of panicking. Used by the destroy path, where absence is the
// expected second half of an idempotent dispose.
func (r *registry) lookup(h Handle) (*record, bool) {
	rec, ok := r.records[h]
	return rec, ok
}

// remove deletes a handle's record. Removing an absent handle is a
// no-op, never an error.
func (r *registry) remove(h Handle) {
	delete(r.records, h)
}

// len reports the number of live records, the window record included.
func (r *registry) len() int {
	return len(r.records)
}
