package mesh

import (
	"testing"

	"github.com/voxelforge/voxeld/internal/gamedata"
)

func TestTorchGeometryInOpaqueBuffer(t *testing.T) {
	s := newStubSource()
	s.chunk.Set(8, 8, 8, gamedata.Torch)

	opaque, transparent := BuildChunkGeometry(s, s.chunk)
	if opaque.Empty() {
		t.Fatal("torch emitted no opaque geometry")
	}
	if !transparent.Empty() {
		t.Error("torch geometry landed in the transparent buffer")
	}

	// Stick and flame are two boxes, 12 quads total, all inside the cell.
	if got := quadCount(&opaque); got != 12 {
		t.Errorf("torch quads = %d, want 12", got)
	}
	for _, v := range opaque.Vertices {
		p := v.Position
		if p.X() < 8 || p.X() > 9 || p.Y() < 8 || p.Y() > 9 || p.Z() < 8 || p.Z() > 9 {
			t.Fatalf("torch vertex %v escapes its cell", p)
		}
	}
}

func TestWallTorchLeansIntoCell(t *testing.T) {
	s := newStubSource()
	s.chunk.Set(8, 8, 8, gamedata.WallTorch(gamedata.FacingSouth))

	opaque, _ := BuildChunkGeometry(s, s.chunk)
	if got := quadCount(&opaque); got != 12 {
		t.Fatalf("wall torch quads = %d, want 12", got)
	}
	// A south wall torch hangs off the -Z wall of its cell; the stick
	// base sits near that wall and the tip leans toward +Z.
	var minZ, maxZ float32 = 100, -100
	for _, v := range opaque.Vertices {
		minZ = min(minZ, v.Position.Z())
		maxZ = max(maxZ, v.Position.Z())
	}
	if minZ < 8 || maxZ > 9 {
		t.Errorf("wall torch spans z [%v, %v], want inside [8, 9]", minZ, maxZ)
	}
	if maxZ-minZ <= 0.2 {
		t.Errorf("wall torch z span %v shows no lean", maxZ-minZ)
	}
}

func TestSlabFaces(t *testing.T) {
	s := newStubSource()
	s.chunk.Set(4, 4, 4, gamedata.SlabBottom)

	opaque, _ := BuildChunkGeometry(s, s.chunk)
	if got := quadCount(&opaque); got != 6 {
		t.Fatalf("lone slab quads = %d, want 6", got)
	}
	// Top surface of a bottom slab sits at the half height.
	var maxY float32
	for _, v := range opaque.Vertices {
		maxY = max(maxY, v.Position.Y())
	}
	if maxY != 4.5 {
		t.Errorf("bottom slab top at %v, want 4.5", maxY)
	}

	// A full block underneath hides the slab's bottom face.
	s.chunk.Set(4, 3, 4, gamedata.Stone)
	opaque, _ = BuildChunkGeometry(s, s.chunk)
	slabQuads := 0
	for q := 0; q < len(opaque.Vertices); q += 4 {
		if gamedata.BlockType(opaque.Vertices[q].BlockType) == gamedata.SlabBottom {
			slabQuads++
		}
	}
	if slabQuads != 5 {
		t.Errorf("slab quads over stone = %d, want 5", slabQuads)
	}
}

func TestStairsQuadCount(t *testing.T) {
	s := newStubSource()
	s.chunk.Set(6, 6, 6, gamedata.Stairs(gamedata.FacingNorth))

	opaque, _ := BuildChunkGeometry(s, s.chunk)
	if got := quadCount(&opaque); got != 8 {
		t.Errorf("stairs quads = %d, want 8", got)
	}
	for _, v := range opaque.Vertices {
		p := v.Position
		if p.X() < 6 || p.X() > 7 || p.Y() < 6 || p.Y() > 7 || p.Z() < 6 || p.Z() > 7 {
			t.Fatalf("stairs vertex %v escapes its cell", p)
		}
	}
}

func TestStairsFacingRotation(t *testing.T) {
	s := newStubSource()
	s.chunk.Set(6, 6, 6, gamedata.Stairs(gamedata.FacingEast))

	opaque, _ := BuildChunkGeometry(s, s.chunk)
	// East-facing stairs keep their tall half at the +X side: the
	// full-height top cap covers only the back half of the cell.
	for _, v := range opaque.Vertices {
		if v.Normal.Y() > 0.5 && v.Position.Y() == 7 && v.Position.X() < 6.5 {
			t.Fatalf("full-height top vertex %v on the open side of east stairs", v.Position)
		}
	}
}

func TestLadderThinBox(t *testing.T) {
	s := newStubSource()
	s.chunk.Set(2, 5, 2, gamedata.Ladder(gamedata.FacingNorth))

	opaque, transparent := BuildChunkGeometry(s, s.chunk)
	if !transparent.Empty() {
		t.Error("ladder geometry landed in the transparent buffer")
	}
	if got := quadCount(&opaque); got != 6 {
		t.Fatalf("ladder quads = %d, want 6", got)
	}
	// A north ladder hugs the -Z wall.
	for _, v := range opaque.Vertices {
		if v.Position.Z() > 2.1 {
			t.Errorf("ladder vertex %v too far from its wall", v.Position)
		}
	}
}

func TestTrapdoorOpenStandsUp(t *testing.T) {
	s := newStubSource()
	s.chunk.Set(3, 3, 3, gamedata.TrapdoorBottom)
	s.chunk.Set(5, 3, 3, gamedata.TrapdoorOpen(gamedata.FacingNorth))

	opaque, _ := BuildChunkGeometry(s, s.chunk)

	var closedMaxY, openMaxY float32
	for _, v := range opaque.Vertices {
		switch gamedata.BlockType(v.BlockType) {
		case gamedata.TrapdoorBottom:
			closedMaxY = max(closedMaxY, v.Position.Y())
		default:
			openMaxY = max(openMaxY, v.Position.Y())
		}
	}
	if closedMaxY >= 3.5 {
		t.Errorf("closed trapdoor reaches %v, want a thin slab near the floor", closedMaxY)
	}
	if openMaxY != 4 {
		t.Errorf("open trapdoor reaches %v, want full cell height 4", openMaxY)
	}
}

func TestFenceConnections(t *testing.T) {
	s := newStubSource()
	s.chunk.Set(8, 4, 8, gamedata.Fence)

	opaque, _ := BuildChunkGeometry(s, s.chunk)
	// Lone fence: just the post.
	if got := quadCount(&opaque); got != 6 {
		t.Fatalf("lone fence quads = %d, want 6", got)
	}

	// A solid neighbor grows two bars toward it.
	s.chunk.Set(9, 4, 8, gamedata.Stone)
	opaque, _ = BuildChunkGeometry(s, s.chunk)
	fenceQuads := 0
	for q := 0; q < len(opaque.Vertices); q += 4 {
		if gamedata.BlockType(opaque.Vertices[q].BlockType) == gamedata.Fence {
			fenceQuads++
		}
	}
	if fenceQuads != 18 {
		t.Errorf("connected fence quads = %d, want 18 (post + two bars)", fenceQuads)
	}
}

func TestPaneTransparentAndConnecting(t *testing.T) {
	s := newStubSource()
	s.chunk.Set(8, 4, 8, gamedata.GlassPane)
	s.chunk.Set(8, 4, 9, gamedata.GlassPane)

	opaque, transparent := BuildChunkGeometry(s, s.chunk)
	if !opaque.Empty() {
		t.Errorf("pane geometry landed in the opaque buffer: %d quads", quadCount(&opaque))
	}
	if transparent.Empty() {
		t.Fatal("panes emitted no geometry")
	}
	// Each pane grows a panel toward the other: post plus one panel,
	// per pane.
	if got := quadCount(&transparent); got != 24 {
		t.Errorf("pane quads = %d, want 24", got)
	}
}

func TestGlassInTransparentBuffer(t *testing.T) {
	s := newStubSource()
	s.chunk.Set(1, 1, 1, gamedata.Glass)

	opaque, transparent := BuildChunkGeometry(s, s.chunk)
	if !opaque.Empty() {
		t.Errorf("glass landed in the opaque buffer: %d quads", quadCount(&opaque))
	}
	if got := quadCount(&transparent); got != 6 {
		t.Errorf("glass quads = %d, want 6", got)
	}
}
