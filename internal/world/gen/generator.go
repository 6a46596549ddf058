package gen

import "github.com/voxelforge/voxeld/internal/gamedata"

// World constants. Chunks are full-height columns; y is never part of a
// chunk coordinate.
const (
	ChunkSize   = 16
	ChunkHeight = 64
	SeaLevel    = 25
)

// ChunkPos identifies a chunk by its X and Z coordinates.
type ChunkPos struct{ X, Z int }

// ChunkPosAt converts absolute block coordinates to the owning chunk
// coordinate. Arithmetic shift keeps floor-division semantics for
// negative coordinates (x=-1 lands in chunk -1, not chunk 0).
func ChunkPosAt(bx, bz int) ChunkPos {
	return ChunkPos{X: bx >> 4, Z: bz >> 4}
}

// Local converts absolute block coordinates to chunk-local indices in
// [0, ChunkSize). The mask is the Euclidean remainder of division by 16.
func Local(bx, bz int) (int, int) {
	return bx & 0xF, bz & 0xF
}

// Chunk holds the voxel content of one 16×64×16 column.
// Index = y*256 + z*16 + x.
type Chunk struct {
	Pos    ChunkPos
	Blocks [ChunkSize * ChunkHeight * ChunkSize]gamedata.BlockType

	// Dirty means voxel content changed since the last geometry build.
	// MeshGenerated means geometry has been built at least once.
	Dirty         bool
	MeshGenerated bool
}

// NewChunk creates an all-air chunk at the given position, marked dirty
// so the first geometry build picks it up.
func NewChunk(pos ChunkPos) *Chunk {
	return &Chunk{Pos: pos, Dirty: true}
}

// Get returns the block at chunk-local coordinates. x, z must be in
// [0,16), y in [0,64).
func (c *Chunk) Get(x, y, z int) gamedata.BlockType {
	return c.Blocks[y*ChunkSize*ChunkSize+z*ChunkSize+x]
}

// Set overwrites the block at chunk-local coordinates.
func (c *Chunk) Set(x, y, z int, bt gamedata.BlockType) {
	c.Blocks[y*ChunkSize*ChunkSize+z*ChunkSize+x] = bt
}

// SetIfInBounds writes the block only when the coordinates fall inside
// the chunk volume. Feature stamping near chunk edges skips out-of-range
// voxels instead of clamping or wrapping them, so features never bleed
// into neighboring chunks.
func (c *Chunk) SetIfInBounds(x, y, z int, bt gamedata.BlockType) {
	if x >= 0 && x < ChunkSize && z >= 0 && z < ChunkSize && y >= 0 && y < ChunkHeight {
		c.Set(x, y, z, bt)
	}
}

// Generator produces chunk content deterministically from a seed.
// Generate builds raw terrain; PlaceFeatures stamps trees and structures
// into a freshly generated chunk, once.
type Generator interface {
	Generate(chunkX, chunkZ int) *Chunk
	PlaceFeatures(c *Chunk)
	HeightAt(blockX, blockZ int) int
}
