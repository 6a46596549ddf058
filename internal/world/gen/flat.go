package gen

import "github.com/voxelforge/voxeld/internal/gamedata"

// FlatGenerator generates a superflat world: stone y=0..2, dirt y=3,
// grass y=4. Useful for tests and controlled benchmarks.
type FlatGenerator struct{}

// NewFlatGenerator creates a FlatGenerator. The seed is ignored.
func NewFlatGenerator(_ int64) *FlatGenerator {
	return &FlatGenerator{}
}

func (g *FlatGenerator) Generate(chunkX, chunkZ int) *Chunk {
	c := NewChunk(ChunkPos{X: chunkX, Z: chunkZ})
	for x := 0; x < ChunkSize; x++ {
		for z := 0; z < ChunkSize; z++ {
			c.Set(x, 0, z, gamedata.Stone)
			c.Set(x, 1, z, gamedata.Stone)
			c.Set(x, 2, z, gamedata.Stone)
			c.Set(x, 3, z, gamedata.Dirt)
			c.Set(x, 4, z, gamedata.Grass)
		}
	}
	return c
}

func (g *FlatGenerator) PlaceFeatures(_ *Chunk) {}

func (g *FlatGenerator) HeightAt(_, _ int) int {
	return 4 // top solid block
}
