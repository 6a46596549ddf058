package sim

import (
	"io"
	"log/slog"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/voxelforge/voxeld/internal/gamedata"
	"github.com/voxelforge/voxeld/internal/sim/config"
	"github.com/voxelforge/voxeld/internal/world/gen"
)

func testSim(t *testing.T) *Simulation {
	t.Helper()
	cfg := config.DefaultConfig()
	cfg.GeneratorType = "flat"
	cfg.RenderDistance = 2
	cfg.MeshBudget = 2
	cfg.Workers = 2

	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	s := New(cfg, log, prometheus.NewRegistry())
	t.Cleanup(s.Close)
	return s
}

func TestBuildAllMeshesEveryChunk(t *testing.T) {
	s := testSim(t)
	s.BuildAll(mgl32.Vec3{0, 10, 0})

	loaded := s.World().ChunkCount()
	if want := 25; loaded != want { // (2*2+1)^2
		t.Fatalf("loaded chunks = %d, want %d", loaded, want)
	}
	if got := s.MeshCount(); got != loaded {
		t.Errorf("meshed chunks = %d, want %d", got, loaded)
	}
	s.World().ForEachChunk(func(c *gen.Chunk) {
		if c.Dirty {
			t.Errorf("chunk %v still dirty after BuildAll", c.Pos)
		}
		if !c.MeshGenerated {
			t.Errorf("chunk %v has no mesh after BuildAll", c.Pos)
		}
	})
}

func TestTickBudgetBoundsRebuilds(t *testing.T) {
	s := testSim(t)
	obs := mgl32.Vec3{0, 10, 0}
	s.BuildAll(obs)

	// Dirty six loaded chunks; one tick may schedule at most MeshBudget
	// of them.
	for _, cp := range []gen.ChunkPos{
		{X: -2}, {X: -1}, {}, {X: 1}, {X: 2}, {Z: 1},
	} {
		s.World().SetBlock(cp.X*gen.ChunkSize+1, 10, cp.Z*gen.ChunkSize+1, gamedata.Stone)
	}
	s.Tick(obs)

	dirty := 0
	s.World().ForEachChunk(func(c *gen.Chunk) {
		if c.Dirty {
			dirty++
		}
	})
	if dirty != 4 {
		t.Errorf("dirty chunks after one tick = %d, want 4", dirty)
	}
}

func TestEditRebuildsMesh(t *testing.T) {
	s := testSim(t)
	obs := mgl32.Vec3{0, 10, 0}
	s.BuildAll(obs)

	s.World().SetBlock(3, 6, 3, gamedata.Planks)
	s.BuildAll(obs)

	res, ok := s.Mesh(gen.ChunkPos{})
	if !ok {
		t.Fatal("no mesh for edited chunk")
	}
	found := false
	for _, v := range res.Opaque.Vertices {
		if gamedata.BlockType(v.BlockType) == gamedata.Planks {
			found = true
			break
		}
	}
	if !found {
		t.Error("rebuilt mesh does not contain the placed block")
	}
}

func TestStaleMeshesDroppedOnEviction(t *testing.T) {
	s := testSim(t)
	s.BuildAll(mgl32.Vec3{0, 10, 0})

	// Schedule a rebuild, then move far enough that the chunk evicts
	// while (or after) the build runs.
	s.World().SetBlock(0, 10, 0, gamedata.Stone)
	s.Tick(mgl32.Vec3{0, 10, 0})

	far := mgl32.Vec3{320, 10, 320} // chunk (20, 20)
	s.BuildAll(far)

	if _, ok := s.Mesh(gen.ChunkPos{}); ok {
		t.Error("mesh for evicted chunk still cached")
	}
	if _, ok := s.World().Chunk(gen.ChunkPos{}); ok {
		t.Error("origin chunk still loaded after moving away")
	}
	if got := s.MeshCount(); got != 25 {
		t.Errorf("meshed chunks = %d, want 25", got)
	}
}

func TestPlaceAndDamageBlock(t *testing.T) {
	s := testSim(t)
	s.BuildAll(mgl32.Vec3{0, 10, 0})

	if !s.PlaceBlock(2, 5, 2, gamedata.Planks) {
		t.Fatal("placement on open ground refused")
	}
	if s.PlaceBlock(2, 5, 2, gamedata.Stone) {
		t.Fatal("placement into an occupied cell accepted")
	}

	// Planks take five hits.
	for i := 0; i < 4; i++ {
		if _, destroyed := s.DamageBlock(2, 5, 2); destroyed {
			t.Fatalf("destroyed after %d hits", i+1)
		}
	}
	bt, destroyed := s.DamageBlock(2, 5, 2)
	if !destroyed || bt != gamedata.Planks {
		t.Fatalf("final hit = (%v, %v), want (planks, true)", bt, destroyed)
	}
}
