// SPDX-License-Identifier: Unlicense OR MIT

package flexbox

import (
	"fmt"

	"gioui.org/extra/host"
)

// Key identifies a child within its container: its position in the
// frame, or a stable ID supplied with Item.ID.
type Key struct {
	Index  int
	ID     host.ID
	Stable bool
}

func (k Key) String() string {
	if k.Stable {
		return fmt.Sprintf("id %v", k.ID)
	}
	return fmt.Sprintf("#%d", k.Index)
}

// Size is a size in container axes, in pixels.
type Size struct {
	Main, Cross int
	// Forced reports whether Cross was imposed by an exact cross
	// constraint during measurement rather than chosen by the child.
	Forced bool
	// Fills reports whether the child takes whatever main-axis space
	// it is offered. Its intrinsic main size is the available main
	// extent of the frame it is laid out in.
	Fills bool
}

// Cache remembers the intrinsic sizes of the children of one container
// across frames.
//
// An entry that is neither stored nor failed during a frame survives
// one more frame and is dropped at the end of the next one, so a child
// that disappears for a single frame keeps its size.
type Cache struct {
	entries map[Key]*cacheEntry
}

type cacheEntry struct {
	size   Size
	failed bool
	fresh  bool
	// idle counts consecutive frames without a store.
	idle int
}

// Get returns the cached size for key. Entries marked failed are
// reported as missing.
func (c *Cache) Get(key Key) (Size, bool) {
	e, ok := c.entries[key]
	if !ok || e.failed {
		return Size{}, false
	}
	return e.size, true
}

// Put records a size for key and marks the entry fresh. Put reports
// whether the stored size changed.
func (c *Cache) Put(key Key, sz Size) bool {
	if c.entries == nil {
		c.entries = make(map[Key]*cacheEntry)
	}
	e, ok := c.entries[key]
	if !ok {
		c.entries[key] = &cacheEntry{size: sz, fresh: true}
		return true
	}
	changed := e.failed || e.size != sz
	e.size = sz
	e.failed = false
	e.fresh = true
	return changed
}

// Fail marks the measurement of key as failed for this frame.
func (c *Cache) Fail(key Key) {
	if c.entries == nil {
		c.entries = make(map[Key]*cacheEntry)
	}
	c.entries[key] = &cacheEntry{failed: true, fresh: true}
}

// Failed reports whether key is marked failed.
func (c *Cache) Failed(key Key) bool {
	e, ok := c.entries[key]
	return ok && e.failed
}

// EndFrame clears the fresh marks and drops entries that were not
// fresh for two frames running.
func (c *Cache) EndFrame() {
	for k, e := range c.entries {
		if e.fresh {
			e.fresh = false
			e.idle = 0
			continue
		}
		e.idle++
		if e.idle >= 2 {
			delete(c.entries, k)
		}
	}
}

// Len returns the number of entries.
func (c *Cache) Len() int {
	return len(c.entries)
}

// Clear drops all entries.
func (c *Cache) Clear() {
	c.entries = nil
}
