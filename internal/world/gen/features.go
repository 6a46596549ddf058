package gen

import "github.com/voxelforge/voxeld/internal/gamedata"

type featureParams struct {
	tree      float64 // tree noise must exceed this
	structure float64 // structure noise must exceed this
}

// Thresholds are compared against noise in [-1, 1]; 1.0 disables the
// feature for the biome.
var biomeFeatures = [biomeCount]featureParams{
	BiomePlains:    {tree: 0.75, structure: 0.9},
	BiomeForest:    {tree: 0.4, structure: 0.85},
	BiomeDesert:    {tree: 0.95, structure: 0.8},
	BiomeMountains: {tree: 0.8, structure: 0.9},
	BiomeTundra:    {tree: 0.85, structure: 0.9},
	BiomeOcean:     {tree: 1.0, structure: 1.0},
}

// PlaceFeatures stamps trees and structures into a freshly generated
// chunk. Runs once per chunk, right after Generate, never again. All
// writes stay chunk-local; anything that would land outside the chunk
// volume is skipped.
func (g *DefaultGenerator) PlaceFeatures(c *Chunk) {
	for x := 0; x < ChunkSize; x++ {
		for z := 0; z < ChunkSize; z++ {
			bx := c.Pos.X*ChunkSize + x
			bz := c.Pos.Z*ChunkSize + z
			biome := g.biomes.At(bx, bz)
			p := biomeFeatures[biome]

			sn := g.bank.Trees.Sample2D(float64(bx)*0.02, float64(bz)*0.02)
			if sn > p.structure && g.structureSite(c, x, z, biome) {
				g.placeStructure(c, x, z, biome)
				continue
			}

			tn := g.bank.Trees.Sample2D(float64(bx)*0.05, float64(bz)*0.05)
			if tn > p.tree {
				g.placeTree(c, x, z, bx, bz, biome, tn)
			}
		}
	}
}

// columnTop returns the highest non-air y in the column, or -1 for an
// all-air column.
func columnTop(c *Chunk, x, z int) int {
	for y := ChunkHeight - 1; y >= 0; y-- {
		if c.Get(x, y, z) != gamedata.Air {
			return y
		}
	}
	return -1
}

// treeSurface is the surface block a tree accepts, per biome.
var treeSurface = [biomeCount]gamedata.BlockType{
	BiomePlains:    gamedata.Grass,
	BiomeForest:    gamedata.Grass,
	BiomeDesert:    gamedata.Sand,
	BiomeMountains: gamedata.Grass,
	BiomeTundra:    gamedata.Snow,
	BiomeOcean:     gamedata.Air, // never matches
}

func (g *DefaultGenerator) placeTree(c *Chunk, x, z, bx, bz int, biome Biome, density float64) {
	top := columnTop(c, x, z)
	if top < 0 || top <= SeaLevel {
		return
	}
	if c.Get(x, top, z) != treeSurface[biome] {
		return
	}

	// Per-column jitter so tree shapes vary within one density band.
	jitter := g.bank.Trees.Sample2D(float64(bx)*0.7, float64(bz)*0.7)

	switch biome {
	case BiomeDesert:
		g.placeCactus(c, x, top+1, z, jitter)
	case BiomeMountains, BiomeTundra:
		g.placePine(c, x, top+1, z, jitter)
	default:
		g.placeOak(c, x, top+1, z, bx, bz, jitter)
	}
}

// hasClearance reports whether the column is air for h blocks starting
// at baseY, within the chunk volume.
func hasClearance(c *Chunk, x, baseY, z, h int) bool {
	for y := baseY; y < baseY+h && y < ChunkHeight; y++ {
		if c.Get(x, y, z) != gamedata.Air {
			return false
		}
	}
	return true
}

// placeOak stamps an oak: 3-6 block trunk with a roughly spherical leaf
// cluster, jittered by 3D noise so the sphere is not perfectly round.
func (g *DefaultGenerator) placeOak(c *Chunk, x, baseY, z, bx, bz int, jitter float64) {
	trunk := clampInt(4+int(jitter*2), 3, 6)
	if !hasClearance(c, x, baseY, z, trunk+2) {
		return
	}

	for y := baseY; y < baseY+trunk; y++ {
		c.SetIfInBounds(x, y, z, gamedata.Log)
	}

	center := baseY + trunk - 1
	const radius = 2
	for dy := -radius; dy <= radius; dy++ {
		for dx := -radius; dx <= radius; dx++ {
			for dz := -radius; dz <= radius; dz++ {
				if dx*dx+dy*dy+dz*dz > radius*radius+1 {
					continue
				}
				if dx == 0 && dz == 0 && dy <= 0 {
					continue // trunk
				}
				n := g.bank.Trees.Sample3D(
					float64(bx+dx)*0.3,
					float64(center+dy)*0.3,
					float64(bz+dz)*0.3,
				)
				if n < -0.3 {
					continue
				}
				lx, ly, lz := x+dx, center+dy, z+dz
				if inChunkBounds(lx, ly, lz) && c.Get(lx, ly, lz) == gamedata.Air {
					c.Set(lx, ly, lz, gamedata.Leaves)
				}
			}
		}
	}
}

// placePine stamps a pine: 5-8 block trunk with conical leaf layers.
func (g *DefaultGenerator) placePine(c *Chunk, x, baseY, z int, jitter float64) {
	trunk := clampInt(6+int(jitter*3), 5, 8)
	if !hasClearance(c, x, baseY, z, trunk+1) {
		return
	}

	for y := baseY; y < baseY+trunk; y++ {
		c.SetIfInBounds(x, y, z, gamedata.Log)
	}

	// Widest near the bottom, narrowing to a single top leaf.
	for layer := 0; layer < trunk-1; layer++ {
		y := baseY + trunk - 1 - layer
		radius := clampInt(layer/2+1, 1, 3)
		for dx := -radius; dx <= radius; dx++ {
			for dz := -radius; dz <= radius; dz++ {
				if dx == 0 && dz == 0 {
					continue
				}
				if abs(dx)+abs(dz) > radius+1 {
					continue
				}
				lx, lz := x+dx, z+dz
				if inChunkBounds(lx, y, lz) && c.Get(lx, y, lz) == gamedata.Air {
					c.Set(lx, y, lz, gamedata.Leaves)
				}
			}
		}
	}
	c.SetIfInBounds(x, baseY+trunk, z, gamedata.Leaves)
}

// placeCactus stamps a short cactus column.
func (g *DefaultGenerator) placeCactus(c *Chunk, x, baseY, z int, jitter float64) {
	h := clampInt(2+int(jitter*2), 1, 4)
	if !hasClearance(c, x, baseY, z, h) {
		return
	}
	for y := baseY; y < baseY+h; y++ {
		c.SetIfInBounds(x, y, z, gamedata.Cactus)
	}
}

// structureSurface is the set of surface blocks a structure may rest on.
func structureSurface(biome Biome, bt gamedata.BlockType) bool {
	switch biome {
	case BiomeDesert:
		return bt == gamedata.Sand
	case BiomeTundra:
		return bt == gamedata.Snow
	case BiomeMountains:
		return bt == gamedata.Grass || bt == gamedata.Stone
	default:
		return bt == gamedata.Grass || bt == gamedata.Dirt
	}
}

// structureSite checks the 5×5 neighborhood around the column: every
// column must resolve to a biome-appropriate solid surface at nearly the
// same height. Columns outside the chunk fail the check.
func (g *DefaultGenerator) structureSite(c *Chunk, x, z int, biome Biome) bool {
	if biome == BiomeOcean {
		return false
	}
	centerTop := columnTop(c, x, z)
	if centerTop <= SeaLevel || centerTop >= ChunkHeight-6 {
		return false
	}
	for dx := -2; dx <= 2; dx++ {
		for dz := -2; dz <= 2; dz++ {
			nx, nz := x+dx, z+dz
			if nx < 0 || nx >= ChunkSize || nz < 0 || nz >= ChunkSize {
				return false
			}
			top := columnTop(c, nx, nz)
			if top < centerTop-1 || top > centerTop+1 {
				return false
			}
			if !structureSurface(biome, c.Get(nx, top, nz)) {
				return false
			}
		}
	}
	return true
}

func (g *DefaultGenerator) placeStructure(c *Chunk, x, z int, biome Biome) {
	base := columnTop(c, x, z) + 1
	switch biome {
	case BiomeDesert:
		placeRuin(c, x, base, z)
	case BiomeMountains:
		placePillar(c, x, base, z)
	case BiomeTundra:
		placeSnowDome(c, x, base, z)
	default:
		placeHut(c, x, base, z)
	}
}

// placeHut stamps a 5×5 walled hut: log corners, plank walls with a door
// gap, a leaf roof, and a torch inside.
func placeHut(c *Chunk, x, baseY, z int) {
	for dy := 0; dy < 2; dy++ {
		for dx := -2; dx <= 2; dx++ {
			for dz := -2; dz <= 2; dz++ {
				if abs(dx) != 2 && abs(dz) != 2 {
					continue
				}
				if dx == 0 && dz == 2 {
					continue // door gap on the south wall
				}
				bt := gamedata.Planks
				if abs(dx) == 2 && abs(dz) == 2 {
					bt = gamedata.Log
				}
				c.SetIfInBounds(x+dx, baseY+dy, z+dz, bt)
			}
		}
	}
	for dx := -2; dx <= 2; dx++ {
		for dz := -2; dz <= 2; dz++ {
			c.SetIfInBounds(x+dx, baseY+2, z+dz, gamedata.Leaves)
		}
	}
	c.SetIfInBounds(x, baseY, z, gamedata.Torch)
}

// placeRuin stamps a broken ring of cobblestone, alternating cells for a
// crumbled look.
func placeRuin(c *Chunk, x, baseY, z int) {
	for dx := -2; dx <= 2; dx++ {
		for dz := -2; dz <= 2; dz++ {
			if abs(dx) != 2 && abs(dz) != 2 {
				continue
			}
			if (dx+dz)%2 != 0 {
				continue
			}
			c.SetIfInBounds(x+dx, baseY, z+dz, gamedata.Cobblestone)
			if (dx+2*dz)%3 == 0 {
				c.SetIfInBounds(x+dx, baseY+1, z+dz, gamedata.Cobblestone)
			}
		}
	}
}

// placePillar stamps a 4-high stone column capped with a slab.
func placePillar(c *Chunk, x, baseY, z int) {
	for dy := 0; dy < 4; dy++ {
		c.SetIfInBounds(x, baseY+dy, z, gamedata.Stone)
	}
	c.SetIfInBounds(x, baseY+4, z, gamedata.SlabBottom)
}

// placeSnowDome stamps a small hemispherical snow dome.
func placeSnowDome(c *Chunk, x, baseY, z int) {
	for dy := 0; dy <= 2; dy++ {
		for dx := -2; dx <= 2; dx++ {
			for dz := -2; dz <= 2; dz++ {
				if abs(dx)+abs(dz)+dy > 2 {
					continue
				}
				c.SetIfInBounds(x+dx, baseY+dy, z+dz, gamedata.Snow)
			}
		}
	}
}

func inChunkBounds(x, y, z int) bool {
	return x >= 0 && x < ChunkSize && z >= 0 && z < ChunkSize && y >= 0 && y < ChunkHeight
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
