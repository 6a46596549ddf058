package world

import (
	"math"
	"sync"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/voxelforge/voxeld/internal/gamedata"
	"github.com/voxelforge/voxeld/internal/world/gen"
)

// BlockPos is an absolute block position in world space.
type BlockPos struct {
	X, Y, Z int
}

// World owns the loaded chunk set, streams chunks around the observer,
// and is the single block query/edit surface for every other component.
//
// The chunk map is guarded by an RWMutex: mesh and generation workers
// read concurrently through GetBlock while all edits and load/evict
// steps happen on one coordinating goroutine.
type World struct {
	mu        sync.RWMutex
	chunks    map[gen.ChunkPos]*gen.Chunk
	generator gen.Generator

	renderDistance int
	observer       gen.ChunkPos
	hasObserver    bool

	// damage holds accumulated break damage for blocks currently being
	// broken; entries disappear when the block breaks or its chunk is
	// evicted. waterLevels holds flow levels 1-8 for non-source water;
	// absent means a full source block.
	damage      map[BlockPos]float32
	waterLevels map[BlockPos]uint8
}

// New creates a World streaming chunks within renderDistance (box
// metric) of the observer.
func New(generator gen.Generator, renderDistance int) *World {
	return &World{
		chunks:         make(map[gen.ChunkPos]*gen.Chunk),
		generator:      generator,
		renderDistance: renderDistance,
		damage:         make(map[BlockPos]float32),
		waterLevels:    make(map[BlockPos]uint8),
	}
}

// RenderDistance returns the streaming radius in chunks.
func (w *World) RenderDistance() int { return w.renderDistance }

// UpdateLoadedChunks converts the observer's world position to a chunk
// coordinate and, when it changed since the last call, loads every
// absent chunk within render distance and evicts chunks further than
// render distance + 1. The one-chunk slack keeps boundary movement from
// thrashing the same chunk in and out.
func (w *World) UpdateLoadedChunks(observer mgl32.Vec3) {
	bx := int(math.Floor(float64(observer.X())))
	bz := int(math.Floor(float64(observer.Z())))
	center := gen.ChunkPosAt(bx, bz)

	if w.hasObserver && center == w.observer {
		return
	}
	w.observer = center
	w.hasObserver = true

	r := w.renderDistance
	for cx := center.X - r; cx <= center.X+r; cx++ {
		for cz := center.Z - r; cz <= center.Z+r; cz++ {
			w.loadChunk(gen.ChunkPos{X: cx, Z: cz})
		}
	}

	w.mu.Lock()
	for pos := range w.chunks {
		if chebyshev(pos, center) > r+1 {
			delete(w.chunks, pos)
		}
	}
	for pos := range w.damage {
		if _, ok := w.chunks[gen.ChunkPosAt(pos.X, pos.Z)]; !ok {
			delete(w.damage, pos)
		}
	}
	for pos := range w.waterLevels {
		if _, ok := w.chunks[gen.ChunkPosAt(pos.X, pos.Z)]; !ok {
			delete(w.waterLevels, pos)
		}
	}
	w.mu.Unlock()
}

func (w *World) loadChunk(pos gen.ChunkPos) {
	w.mu.RLock()
	_, ok := w.chunks[pos]
	w.mu.RUnlock()
	if ok {
		return
	}

	c := w.generator.Generate(pos.X, pos.Z)
	w.generator.PlaceFeatures(c)

	w.mu.Lock()
	if _, ok := w.chunks[pos]; !ok {
		w.chunks[pos] = c
	}
	w.mu.Unlock()
}

func chebyshev(a, b gen.ChunkPos) int {
	dx := a.X - b.X
	if dx < 0 {
		dx = -dx
	}
	dz := a.Z - b.Z
	if dz < 0 {
		dz = -dz
	}
	if dx > dz {
		return dx
	}
	return dz
}

// Chunk returns the loaded chunk at pos, if present.
func (w *World) Chunk(pos gen.ChunkPos) (*gen.Chunk, bool) {
	w.mu.RLock()
	defer w.mu.RUnlock()
	c, ok := w.chunks[pos]
	return c, ok
}

// ForEachChunk calls fn for every loaded chunk. Iteration order is
// unspecified.
func (w *World) ForEachChunk(fn func(c *gen.Chunk)) {
	w.mu.RLock()
	defer w.mu.RUnlock()
	for _, c := range w.chunks {
		fn(c)
	}
}

// ChunkCount returns the number of loaded chunks.
func (w *World) ChunkCount() int {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return len(w.chunks)
}

// GetBlock returns the block at absolute coordinates, reporting false
// when y is outside [0, ChunkHeight) or the owning chunk is not loaded.
// Callers decide how to treat absence: collision treats it as non-solid,
// the mesher treats it as exposed.
func (w *World) GetBlock(x, y, z int) (gamedata.BlockType, bool) {
	if y < 0 || y >= gen.ChunkHeight {
		return gamedata.Air, false
	}
	w.mu.RLock()
	defer w.mu.RUnlock()
	c, ok := w.chunks[gen.ChunkPosAt(x, z)]
	if !ok {
		return gamedata.Air, false
	}
	lx, lz := gen.Local(x, z)
	return c.Get(lx, y, lz), true
}

// SetBlock overwrites the voxel and marks the owning chunk dirty. No-op
// outside vertical bounds or for an unloaded chunk.
func (w *World) SetBlock(x, y, z int, bt gamedata.BlockType) {
	if y < 0 || y >= gen.ChunkHeight {
		return
	}
	w.mu.Lock()
	defer w.mu.Unlock()
	c, ok := w.chunks[gen.ChunkPosAt(x, z)]
	if !ok {
		return
	}
	lx, lz := gen.Local(x, z)
	c.Set(lx, y, lz, bt)
	c.Dirty = true
}

// CanPlaceBlockAt reports whether a block may be placed: the target must
// be loaded air within vertical bounds, and the block immediately below
// must not be water, so nothing can rest on a liquid surface.
func (w *World) CanPlaceBlockAt(x, y, z int) bool {
	target, ok := w.GetBlock(x, y, z)
	if !ok || target != gamedata.Air {
		return false
	}
	if below, ok := w.GetBlock(x, y-1, z); ok && below == gamedata.Water {
		return false
	}
	return true
}

// PlaceBlock places a block if CanPlaceBlockAt allows it.
func (w *World) PlaceBlock(x, y, z int, bt gamedata.BlockType) bool {
	if !w.CanPlaceBlockAt(x, y, z) {
		return false
	}
	w.SetBlock(x, y, z, bt)
	return true
}

// CanDestroyBlockAt reports whether the block can be broken by damage.
func (w *World) CanDestroyBlockAt(x, y, z int) bool {
	bt, ok := w.GetBlock(x, y, z)
	return ok && gamedata.Breakable(bt)
}

// DamageBlock applies one damage unit to the block. Air, barrier and
// water targets are untouched. When accumulated damage reaches the
// block's hardness the voxel clears to air, its damage entry is removed,
// and the destroyed type is returned so collaborators can spawn drops;
// otherwise the chunk is only marked dirty so the crack overlay redraws.
func (w *World) DamageBlock(x, y, z int) (gamedata.BlockType, bool) {
	bt, ok := w.GetBlock(x, y, z)
	if !ok || !gamedata.Breakable(bt) {
		return gamedata.Air, false
	}

	pos := BlockPos{x, y, z}
	w.mu.Lock()
	dmg := w.damage[pos] + 1
	if dmg >= gamedata.Hardness(bt) {
		delete(w.damage, pos)
		w.mu.Unlock()
		w.SetBlock(x, y, z, gamedata.Air)
		return bt, true
	}
	w.damage[pos] = dmg
	w.mu.Unlock()

	w.markDirty(x, z)
	return gamedata.Air, false
}

// BlockDamage returns accumulated damage at the position, 0 by default.
func (w *World) BlockDamage(x, y, z int) float32 {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.damage[BlockPos{x, y, z}]
}

// WaterLevel returns the flow level at the position: 8 (a full source
// block) unless a lower level was recorded.
func (w *World) WaterLevel(x, y, z int) uint8 {
	w.mu.RLock()
	defer w.mu.RUnlock()
	if lvl, ok := w.waterLevels[BlockPos{x, y, z}]; ok {
		return lvl
	}
	return 8
}

// SetWaterLevel records a flow level 1-8 for a water voxel and marks the
// chunk dirty. Level 8 clears the entry back to the source default.
func (w *World) SetWaterLevel(x, y, z int, level uint8) {
	if level < 1 {
		level = 1
	}
	if level > 8 {
		level = 8
	}
	pos := BlockPos{x, y, z}
	w.mu.Lock()
	if level == 8 {
		delete(w.waterLevels, pos)
	} else {
		w.waterLevels[pos] = level
	}
	w.mu.Unlock()
	w.markDirty(x, z)
}

func (w *World) markDirty(x, z int) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if c, ok := w.chunks[gen.ChunkPosAt(x, z)]; ok {
		c.Dirty = true
	}
}
