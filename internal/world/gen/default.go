package gen

import (
	"math"

	"github.com/voxelforge/voxeld/internal/gamedata"
)

// DefaultGenerator produces the standard terrain: biome-shaped height
// curves, cave bands, depth-gated ores, water fill up to sea level, and
// rivers and lakes that carve their bed and fill to a fixed surface
// just above sea level.
type DefaultGenerator struct {
	seed   int64
	bank   *FieldBank
	biomes *Classifier
}

// NewDefaultGenerator creates a DefaultGenerator from a world seed.
func NewDefaultGenerator(seed int64) *DefaultGenerator {
	bank := NewFieldBank(seed)
	return &DefaultGenerator{
		seed:   seed,
		bank:   bank,
		biomes: NewClassifier(bank),
	}
}

// BiomeAt returns the biome at the given world column.
func (g *DefaultGenerator) BiomeAt(bx, bz int) Biome {
	return g.biomes.At(bx, bz)
}

type terrainParams struct {
	base      float64 // offset of the height curve
	amplitude float64 // scale of the low-frequency base noise
	detail    float64 // scale of the high-frequency detail term
}

var biomeTerrain = [biomeCount]terrainParams{
	BiomePlains:    {base: 28, amplitude: 6, detail: 2},
	BiomeForest:    {base: 30, amplitude: 8, detail: 2},
	BiomeDesert:    {base: 30, amplitude: 5, detail: 1.5},
	BiomeMountains: {base: 36, amplitude: 18, detail: 3},
	BiomeTundra:    {base: 28, amplitude: 7, detail: 2},
	BiomeOcean:     {base: 16, amplitude: 6, detail: 1},
}

// HeightAt returns the solid terrain height of a column, after river and
// lake beds are carved. Always in [1, ChunkHeight-4].
func (g *DefaultGenerator) HeightAt(bx, bz int) int {
	h, _, _ := g.columnShape(bx, bz)
	return h
}

// columnShape resolves a column's solid height and the water feature
// covering it, if any. Terrain standing above a river or lake surface
// is carved down to two blocks below that surface so the feature can
// fill; terrain already below it becomes the bed as-is.
func (g *DefaultGenerator) columnShape(bx, bz int) (height, waterLevel int, feature bool) {
	height = g.baseHeight(bx, bz)
	waterLevel, feature = g.waterSurfaceLevel(bx, bz, height)
	if feature && height > waterLevel {
		height = waterLevel - 2
	}
	if height < 1 {
		height = 1
	}
	if height > ChunkHeight-4 {
		height = ChunkHeight - 4
	}
	return height, waterLevel, feature
}

// waterSurfaceLevel returns the fixed fill level of a river or lake
// column. Rivers fill to just above sea level, lakes slightly higher,
// so connected feature water shares one flat surface.
func (g *DefaultGenerator) waterSurfaceLevel(bx, bz, terrain int) (int, bool) {
	if g.isRiver(bx, bz, terrain) {
		return SeaLevel + 3, true
	}
	if g.isLake(bx, bz, terrain) {
		return SeaLevel + 5, true
	}
	return 0, false
}

func (g *DefaultGenerator) baseHeight(bx, bz int) int {
	p := biomeTerrain[g.biomes.At(bx, bz)]
	base := g.bank.Terrain.Octave2D(float64(bx)/96.0, float64(bz)/96.0, 4, 0.5)
	detail := g.bank.Terrain.Sample2D(float64(bx)/18.0, float64(bz)/18.0)
	return int(p.base + base*p.amplitude + detail*p.detail)
}

// Rivers cut narrow contour bands where either river noise crosses
// zero, but only through the low band just above sea level.
func (g *DefaultGenerator) isRiver(bx, bz, height int) bool {
	if height < SeaLevel+2 || height > SeaLevel+8 {
		return false
	}
	n1 := g.bank.Rivers.Sample2D(float64(bx)*0.008, float64(bz)*0.008)
	n2 := g.bank.Rivers.Sample2D(float64(bx)*0.004+100, float64(bz)*0.004+100)
	return math.Abs(n1) < 0.03 || math.Abs(n2) < 0.045
}

// Lakes sit in noise depressions at low elevations, never in mountains.
func (g *DefaultGenerator) isLake(bx, bz, height int) bool {
	if height < SeaLevel || height > SeaLevel+10 {
		return false
	}
	return g.bank.Lakes.Sample2D(float64(bx)*0.01, float64(bz)*0.01) > 0.78
}

// Generate builds the raw terrain for one chunk. Feature stamping is a
// separate step; see PlaceFeatures.
func (g *DefaultGenerator) Generate(chunkX, chunkZ int) *Chunk {
	c := NewChunk(ChunkPos{X: chunkX, Z: chunkZ})
	for x := 0; x < ChunkSize; x++ {
		for z := 0; z < ChunkSize; z++ {
			g.fillColumn(c, x, z, chunkX*ChunkSize+x, chunkZ*ChunkSize+z)
		}
	}
	return c
}

func (g *DefaultGenerator) fillColumn(c *Chunk, x, z, bx, bz int) {
	biome := g.biomes.At(bx, bz)
	height, waterLevel, feature := g.columnShape(bx, bz)
	carved := g.caveLevels(bx, bz)
	sandy := height >= SeaLevel-2 && height <= SeaLevel+2 && g.nearWater(bx, bz)

	water := gamedata.Water
	if biome == BiomeTundra {
		water = gamedata.Ice
	}

	for y := 0; y < ChunkHeight; y++ {
		var bt gamedata.BlockType
		switch {
		case y > height:
			if y <= SeaLevel || (feature && y <= waterLevel) {
				bt = water
			} else {
				bt = gamedata.Air
			}
		// Caves win over surface classification but never open within
		// 4 blocks of the surface.
		case y > 0 && y < height-4 && carved[y]:
			bt = gamedata.Air
		default:
			// Ores only in deep stone, 8+ blocks under the surface.
			if y < height-8 {
				if ore := g.oreAt(bx, y, bz); ore != gamedata.Air {
					bt = ore
					break
				}
			}
			switch {
			case y == height:
				bt = g.surfaceBlock(biome, height, sandy, feature)
			case y >= height-3:
				bt = g.subsurfaceBlock(biome, sandy)
			default:
				bt = gamedata.Stone
			}
		}
		c.Set(x, y, z, bt)
	}
}

// Cave depth bands. Two samplings of the cave field at different
// frequencies; either one over its threshold carves a ±2 window around
// the band depth.
var caveBands = [3]int{15, 25, 35}

func (g *DefaultGenerator) caveLevels(bx, bz int) [ChunkHeight]bool {
	var carved [ChunkHeight]bool
	fx, fz := float64(bx), float64(bz)
	for _, band := range caveBands {
		fy := float64(band)
		n1 := g.bank.Caves.Sample3D(fx*0.03, fy*0.03, fz*0.03)
		n2 := g.bank.Caves.Sample3D(fx*0.06, fy*0.06, fz*0.06)
		if n1 > 0.55 || n2 > 0.6 {
			for y := band - 2; y <= band+2; y++ {
				carved[y] = true
			}
		}
	}
	return carved
}

type oreGate struct {
	block     gamedata.BlockType
	threshold float64 // minimum ore noise
	minDepth  float64 // minimum normalized depth (ChunkHeight-y)/ChunkHeight
}

// Rarest first: rarer ores need both stronger noise and greater depth.
var oreGates = [4]oreGate{
	{gamedata.DiamondOre, 0.85, 0.8},
	{gamedata.GoldOre, 0.75, 0.6},
	{gamedata.IronOre, 0.65, 0.4},
	{gamedata.CoalOre, 0.55, 0.2},
}

func (g *DefaultGenerator) oreAt(bx, y, bz int) gamedata.BlockType {
	if y <= 0 {
		return gamedata.Air
	}
	n := g.bank.Ores.Sample3D(float64(bx)*0.1, float64(y)*0.1, float64(bz)*0.1)
	depth := float64(ChunkHeight-y) / float64(ChunkHeight)
	for _, o := range oreGates {
		if n > o.threshold && depth > o.minDepth {
			return o.block
		}
	}
	return gamedata.Air
}

// nearWater reports whether any column within a 2-block radius dips
// below sea level or carries a river/lake. Drives the shoreline sand
// override.
func (g *DefaultGenerator) nearWater(bx, bz int) bool {
	for dx := -2; dx <= 2; dx++ {
		for dz := -2; dz <= 2; dz++ {
			if dx == 0 && dz == 0 {
				continue
			}
			nx, nz := bx+dx, bz+dz
			h := g.baseHeight(nx, nz)
			if h < SeaLevel {
				return true
			}
			if _, ok := g.waterSurfaceLevel(nx, nz, h); ok {
				return true
			}
		}
	}
	return false
}

func (g *DefaultGenerator) surfaceBlock(biome Biome, height int, sandy, bed bool) gamedata.BlockType {
	if bed {
		return gamedata.Sand // river and lake bottoms
	}
	if sandy {
		return gamedata.Sand
	}
	switch biome {
	case BiomeDesert:
		return gamedata.Sand
	case BiomeTundra:
		return gamedata.Snow
	case BiomeMountains:
		if height > 45 {
			return gamedata.Stone // bare peaks
		}
		return gamedata.Grass
	case BiomeOcean:
		return gamedata.Gravel
	default:
		if height < SeaLevel {
			return gamedata.Dirt // no grass underwater
		}
		return gamedata.Grass
	}
}

func (g *DefaultGenerator) subsurfaceBlock(biome Biome, sandy bool) gamedata.BlockType {
	if sandy || biome == BiomeDesert {
		return gamedata.Sand
	}
	if biome == BiomeOcean {
		return gamedata.Clay
	}
	return gamedata.Dirt
}
