package gen

import (
	"testing"

	"github.com/voxelforge/voxeld/internal/gamedata"
)

func TestDefaultGeneratorDeterministic(t *testing.T) {
	g1 := NewDefaultGenerator(42)
	g2 := NewDefaultGenerator(42)

	c1 := g1.Generate(3, -2)
	g1.PlaceFeatures(c1)
	c2 := g2.Generate(3, -2)
	g2.PlaceFeatures(c2)

	if c1.Blocks != c2.Blocks {
		t.Fatal("same seed produced different chunk content")
	}
}

func TestDefaultGeneratorOrderIndependent(t *testing.T) {
	g1 := NewDefaultGenerator(7)
	g2 := NewDefaultGenerator(7)

	// g2 generates unrelated chunks first; (0,0) must not change.
	for _, pos := range []ChunkPos{{5, 5}, {-3, 1}, {0, -9}} {
		c := g2.Generate(pos.X, pos.Z)
		g2.PlaceFeatures(c)
	}

	c1 := g1.Generate(0, 0)
	g1.PlaceFeatures(c1)
	c2 := g2.Generate(0, 0)
	g2.PlaceFeatures(c2)

	if c1.Blocks != c2.Blocks {
		t.Fatal("chunk content depends on generation order")
	}
}

func TestDefaultGeneratorDifferentSeeds(t *testing.T) {
	c1 := NewDefaultGenerator(1).Generate(0, 0)
	c2 := NewDefaultGenerator(2).Generate(0, 0)
	if c1.Blocks == c2.Blocks {
		t.Error("different seeds should produce different terrain")
	}
}

func TestDefaultGeneratorSolidFloor(t *testing.T) {
	g := NewDefaultGenerator(12345)
	c := g.Generate(0, 0)
	for x := 0; x < ChunkSize; x++ {
		for z := 0; z < ChunkSize; z++ {
			bt := c.Get(x, 0, z)
			if bt == gamedata.Air || bt == gamedata.Water {
				t.Errorf("block at (%d,0,%d) = %v, want solid", x, z, bt)
			}
		}
	}
}

func TestDefaultGeneratorWaterFill(t *testing.T) {
	g := NewDefaultGenerator(999)
	// Sweep a few chunks to make sure at least one has submerged columns.
	submerged := 0
	for cx := -2; cx <= 2; cx++ {
		c := g.Generate(cx, 0)
		for x := 0; x < ChunkSize; x++ {
			for z := 0; z < ChunkSize; z++ {
				h := g.HeightAt(cx*ChunkSize+x, z)
				for y := h + 1; y <= SeaLevel; y++ {
					submerged++
					bt := c.Get(x, y, z)
					if bt != gamedata.Water && bt != gamedata.Ice {
						t.Fatalf("block at local (%d,%d,%d) in chunk %d,0 = %v, want water or ice", x, y, z, cx, bt)
					}
				}
				// Above sea level only air and river/lake water or ice
				// may sit on top of the terrain.
				for y := maxInt(h, SeaLevel) + 1; y < ChunkHeight; y++ {
					bt := c.Get(x, y, z)
					if gamedata.Occludes(bt) && bt != gamedata.Ice {
						t.Fatalf("solid block %v above terrain at local (%d,%d,%d)", bt, x, y, z)
					}
				}
			}
		}
	}
	if submerged == 0 {
		t.Skip("no submerged columns in sweep; widen the sweep")
	}
}

func TestHeightAtBounds(t *testing.T) {
	g := NewDefaultGenerator(4242)
	for _, bx := range []int{-500, -33, -1, 0, 1, 17, 250} {
		for _, bz := range []int{-411, -16, 0, 3, 128} {
			h := g.HeightAt(bx, bz)
			if h < 1 || h > ChunkHeight-4 {
				t.Errorf("HeightAt(%d,%d) = %d, want 1..%d", bx, bz, h, ChunkHeight-4)
			}
		}
	}
}

func TestNoAirBelowCaveBands(t *testing.T) {
	g := NewDefaultGenerator(31337)
	c := g.Generate(1, 1)
	for x := 0; x < ChunkSize; x++ {
		for z := 0; z < ChunkSize; z++ {
			for y := 0; y < caveBands[0]-2; y++ {
				if c.Get(x, y, z) == gamedata.Air {
					t.Fatalf("air at (%d,%d,%d), below the lowest cave band", x, y, z)
				}
			}
		}
	}
}

func TestCavesStayBelowSurface(t *testing.T) {
	g := NewDefaultGenerator(1)
	for cx := -2; cx <= 2; cx++ {
		for cz := -2; cz <= 2; cz++ {
			c := g.Generate(cx, cz)
			for x := 0; x < ChunkSize; x++ {
				for z := 0; z < ChunkSize; z++ {
					bx, bz := cx*ChunkSize+x, cz*ChunkSize+z
					h := g.HeightAt(bx, bz)
					for y := maxInt(1, h-4); y <= h; y++ {
						if c.Get(x, y, z) == gamedata.Air {
							t.Fatalf("cave air at (%d,%d,%d), within 4 blocks of surface height %d", bx, y, bz, h)
						}
					}
				}
			}
		}
	}
}

func TestOresStayDeep(t *testing.T) {
	isOre := func(bt gamedata.BlockType) bool {
		switch bt {
		case gamedata.CoalOre, gamedata.IronOre, gamedata.GoldOre, gamedata.DiamondOre:
			return true
		}
		return false
	}

	g := NewDefaultGenerator(1)
	for cx := -2; cx <= 2; cx++ {
		for cz := -2; cz <= 2; cz++ {
			c := g.Generate(cx, cz)
			for x := 0; x < ChunkSize; x++ {
				for z := 0; z < ChunkSize; z++ {
					bx, bz := cx*ChunkSize+x, cz*ChunkSize+z
					h := g.HeightAt(bx, bz)
					for y := maxInt(0, h-8); y <= h; y++ {
						if bt := c.Get(x, y, z); isOre(bt) {
							t.Fatalf("%v at (%d,%d,%d), within 8 blocks of surface height %d", bt, bx, y, bz, h)
						}
					}
				}
			}
		}
	}
}

func TestTundraWaterFreezes(t *testing.T) {
	g := NewDefaultGenerator(1)
	frozen := 0
	for cx := -3; cx <= 3; cx++ {
		for cz := -3; cz <= 3; cz++ {
			c := g.Generate(cx, cz)
			for x := 0; x < ChunkSize; x++ {
				for z := 0; z < ChunkSize; z++ {
					if g.BiomeAt(cx*ChunkSize+x, cz*ChunkSize+z) != BiomeTundra {
						continue
					}
					for y := 0; y < ChunkHeight; y++ {
						switch c.Get(x, y, z) {
						case gamedata.Water:
							t.Fatalf("liquid water at local (%d,%d,%d) in a tundra column", x, y, z)
						case gamedata.Ice:
							frozen++
						}
					}
				}
			}
		}
	}
	if frozen == 0 {
		t.Skip("no submerged tundra columns in sweep; widen the sweep")
	}
}

func TestRiverBedCarvedBelowWaterSurface(t *testing.T) {
	g := NewDefaultGenerator(1)
	for bx := -400; bx < 400; bx += 3 {
		for bz := -400; bz < 400; bz += 3 {
			terrain := g.baseHeight(bx, bz)
			wl, ok := g.waterSurfaceLevel(bx, bz, terrain)
			if !ok || terrain <= wl {
				continue
			}

			if h := g.HeightAt(bx, bz); h != wl-2 {
				t.Fatalf("HeightAt(%d,%d) = %d, want bed carved to %d", bx, bz, h, wl-2)
			}

			cp := ChunkPosAt(bx, bz)
			c := g.Generate(cp.X, cp.Z)
			lx, lz := Local(bx, bz)
			for y := wl - 1; y <= wl; y++ {
				bt := c.Get(lx, y, lz)
				if bt != gamedata.Water && bt != gamedata.Ice {
					t.Fatalf("block at (%d,%d,%d) over a carved bed = %v, want water or ice", bx, y, bz, bt)
				}
			}
			if bt := c.Get(lx, wl+1, lz); bt != gamedata.Air {
				t.Fatalf("block above the fixed water surface = %v, want air", bt)
			}
			return
		}
	}
	t.Skip("no carved river or lake column in sweep; widen the sweep")
}

func TestOreGatesDepthOrdering(t *testing.T) {
	// Rarer ores must demand both a higher threshold and more depth.
	for i := 1; i < len(oreGates); i++ {
		if oreGates[i].threshold >= oreGates[i-1].threshold {
			t.Errorf("ore %v threshold %v not below %v", oreGates[i].block, oreGates[i].threshold, oreGates[i-1].threshold)
		}
		if oreGates[i].minDepth >= oreGates[i-1].minDepth {
			t.Errorf("ore %v minDepth %v not below %v", oreGates[i].block, oreGates[i].minDepth, oreGates[i-1].minDepth)
		}
	}
}

func TestFeaturesOnlyAddBlocks(t *testing.T) {
	g := NewDefaultGenerator(55)
	raw := g.Generate(-4, 6)
	placed := g.Generate(-4, 6)
	g.PlaceFeatures(placed)

	// Feature stamping writes into air (and replaces nothing solid except
	// by explicit stamp shapes); it must never remove terrain.
	for i, bt := range raw.Blocks {
		if bt == gamedata.Air || bt == gamedata.Water {
			continue
		}
		if placed.Blocks[i] == gamedata.Air {
			t.Fatalf("feature placement cleared terrain block at index %d", i)
		}
	}
}

func TestClassifierDeterministic(t *testing.T) {
	g := NewDefaultGenerator(8)
	for _, p := range []struct{ x, z int }{{0, 0}, {-100, 250}, {4096, -4096}} {
		b1 := g.BiomeAt(p.x, p.z)
		b2 := g.BiomeAt(p.x, p.z)
		if b1 != b2 {
			t.Errorf("BiomeAt(%d,%d) unstable: %v then %v", p.x, p.z, b1, b2)
		}
		if b1 >= biomeCount {
			t.Errorf("BiomeAt(%d,%d) = %d, out of range", p.x, p.z, b1)
		}
	}
}

func TestFlatGeneratorLayers(t *testing.T) {
	g := NewFlatGenerator(0)
	c := g.Generate(0, 0)

	tests := []struct {
		y    int
		want gamedata.BlockType
	}{
		{0, gamedata.Stone},
		{1, gamedata.Stone},
		{2, gamedata.Stone},
		{3, gamedata.Dirt},
		{4, gamedata.Grass},
		{5, gamedata.Air},
	}
	for _, tt := range tests {
		if got := c.Get(8, tt.y, 8); got != tt.want {
			t.Errorf("block at y=%d = %v, want %v", tt.y, got, tt.want)
		}
	}
	if h := g.HeightAt(100, -100); h != 4 {
		t.Errorf("HeightAt = %d, want 4", h)
	}
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
