// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package compositor

import (
	"context"
	"crypto/sha256"
	"encoding/binary"
	"math"

	"github.com/gogpu/gg/cache"

	paint "github.com/gogpu/ggpaint"
)

// DefaultCacheEntries is the result cache size used by NewCached when
// given a non-positive size.
const DefaultCacheEntries = 64

type requestKey [sha256.Size]byte

// Cached memoizes a pure Compositor. Identical requests, including an
// identical base snapshot, return the stored result without calling the
// wrapped compositor. Failures are not cached.
type Cached struct {
	next    Compositor
	entries int
	results *cache.ShardedCache[requestKey, paint.Snapshot]
}

var _ Compositor = (*Cached)(nil)

// NewCached wraps next with a sharded LRU result cache holding about
// entries results. Eviction is per shard, so the bound is rounded up to a
// multiple of the shard count.
func NewCached(next Compositor, entries int) *Cached {
	if entries <= 0 {
		entries = DefaultCacheEntries
	}
	perShard := (entries + cache.DefaultShardCount - 1) / cache.DefaultShardCount
	return &Cached{
		next:    next,
		entries: entries,
		results: cache.NewSharded[requestKey, paint.Snapshot](perShard, keyHash),
	}
}

// Composite returns a cached result or delegates to the wrapped compositor.
func (c *Cached) Composite(ctx context.Context, req Request) (paint.Snapshot, error) {
	key := keyOf(req)
	if out, ok := c.results.Get(key); ok {
		paint.ComponentLogger("compositor").Debug("cache hit", "shape", req.Shape)
		return out, nil
	}
	out, err := c.next.Composite(ctx, req)
	if err != nil {
		return paint.Snapshot{}, err
	}
	c.results.Set(key, out)
	return out, nil
}

// Shapes forwards to the wrapped compositor when it can list its shapes.
func (c *Cached) Shapes() []string {
	if l, ok := c.next.(interface{ Shapes() []string }); ok {
		return l.Shapes()
	}
	return Shapes()
}

// Capacity returns the requested number of cached results.
func (c *Cached) Capacity() int { return c.entries }

// Stats returns cache counters.
func (c *Cached) Stats() cache.Stats {
	return c.results.Stats()
}

// keyHash picks a shard. The key is already a digest.
func keyHash(k requestKey) uint64 {
	return binary.LittleEndian.Uint64(k[:8])
}

func keyOf(req Request) requestKey {
	h := sha256.New()
	var buf [8]byte
	writeString := func(s string) {
		binary.LittleEndian.PutUint64(buf[:], uint64(len(s)))
		h.Write(buf[:])
		h.Write([]byte(s))
	}
	writeString(req.Shape)
	writeString(req.Color)
	for _, v := range []float64{req.StartX, req.StartY, req.EndX, req.EndY} {
		binary.LittleEndian.PutUint64(buf[:], math.Float64bits(v))
		h.Write(buf[:])
	}
	binary.LittleEndian.PutUint64(buf[:], uint64(req.LineWidth))
	h.Write(buf[:])
	_, _ = req.Base.WriteTo(h)

	var k requestKey
	h.Sum(k[:0])
	return k
}
