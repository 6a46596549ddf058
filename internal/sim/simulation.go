package sim

import (
	"log/slog"
	"sync"
	"time"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/voxelforge/voxeld/internal/gamedata"
	"github.com/voxelforge/voxeld/internal/mesh"
	"github.com/voxelforge/voxeld/internal/sim/config"
	"github.com/voxelforge/voxeld/internal/world"
	"github.com/voxelforge/voxeld/internal/world/gen"
)

// MeshResult is one finished chunk mesh, tagged with the chunk it
// belongs to so late arrivals for evicted chunks can be discarded.
type MeshResult struct {
	Pos         gen.ChunkPos
	Opaque      mesh.Data
	Transparent mesh.Data
}

type buildJob struct {
	pos      gen.ChunkPos
	snapshot gen.Chunk
}

// Simulation drives the world: chunk streaming, block edits and the
// background mesh workers. Generation and meshing are pure and run on
// the worker pool; everything that mutates the world happens on the
// single goroutine calling Tick, BuildAll and the edit methods.
type Simulation struct {
	cfg     *config.Config
	log     *slog.Logger
	world   *world.World
	metrics *Metrics

	jobs    chan buildJob
	results chan MeshResult
	wg      sync.WaitGroup

	// pending tracks chunks with a build in flight: at most one per
	// chunk, and never more than cap(results) in total so workers can
	// always hand off without blocking forever.
	pending map[gen.ChunkPos]bool

	meshMu sync.RWMutex
	meshes map[gen.ChunkPos]*MeshResult
}

// New builds a Simulation from the config and starts the worker pool.
func New(cfg *config.Config, log *slog.Logger, reg prometheus.Registerer) *Simulation {
	var generator gen.Generator
	switch cfg.GeneratorType {
	case "flat":
		generator = gen.NewFlatGenerator(cfg.Seed)
	default:
		generator = gen.NewDefaultGenerator(cfg.Seed)
	}

	resultCap := maxChunksLoaded(cfg.RenderDistance)
	s := &Simulation{
		cfg:     cfg,
		log:     log,
		world:   world.New(generator, cfg.RenderDistance),
		metrics: NewMetrics(reg),
		jobs:    make(chan buildJob, resultCap),
		results: make(chan MeshResult, resultCap),
		pending: make(map[gen.ChunkPos]bool),
		meshes:  make(map[gen.ChunkPos]*MeshResult),
	}

	for i := 0; i < cfg.Workers; i++ {
		s.wg.Add(1)
		go s.worker()
	}
	return s
}

// maxChunksLoaded is the eviction-hysteresis footprint: everything
// within renderDistance+1 can stay resident.
func maxChunksLoaded(renderDistance int) int {
	side := 2*(renderDistance+1) + 1
	return side * side
}

// World exposes the chunk store for edits; call it only from the
// coordinating goroutine.
func (s *Simulation) World() *world.World { return s.world }

// Close stops the worker pool and waits for it to drain.
func (s *Simulation) Close() {
	close(s.jobs)
	go func() {
		for range s.results {
		}
	}()
	s.wg.Wait()
	close(s.results)
}

func (s *Simulation) worker() {
	defer s.wg.Done()
	for job := range s.jobs {
		start := time.Now()
		opaque, transparent := mesh.BuildChunkGeometry(s.world, &job.snapshot)
		s.metrics.MeshBuildSeconds.Observe(time.Since(start).Seconds())
		s.results <- MeshResult{Pos: job.pos, Opaque: opaque, Transparent: transparent}
	}
}

// Tick advances the simulation one step: stream chunks around the
// observer, absorb finished meshes, and hand out up to the configured
// budget of dirty-mesh rebuilds.
func (s *Simulation) Tick(observer mgl32.Vec3) {
	start := time.Now()

	s.world.UpdateLoadedChunks(observer)
	s.drainResults()
	s.pruneEvicted()
	s.enqueueDirty(s.cfg.MeshBudget)

	s.metrics.ChunksLoaded.Set(float64(s.world.ChunkCount()))
	s.metrics.MeshQueueDepth.Set(float64(len(s.pending)))
	s.metrics.TickSeconds.Observe(time.Since(start).Seconds())
}

// BuildAll streams chunks around the observer and blocks until every
// loaded chunk has an up-to-date mesh. Used for the initial load, where
// the per-tick budget would stretch warmup over many seconds.
func (s *Simulation) BuildAll(observer mgl32.Vec3) {
	s.world.UpdateLoadedChunks(observer)
	s.pruneEvicted()
	for {
		s.enqueueDirty(-1)
		if len(s.pending) == 0 {
			break
		}
		s.applyResult(<-s.results)
	}
	s.metrics.ChunksLoaded.Set(float64(s.world.ChunkCount()))
}

// drainResults absorbs every finished mesh without blocking.
func (s *Simulation) drainResults() {
	for {
		select {
		case res := <-s.results:
			s.applyResult(res)
		default:
			return
		}
	}
}

func (s *Simulation) applyResult(res MeshResult) {
	delete(s.pending, res.Pos)
	s.metrics.MeshBuilds.Inc()

	c, ok := s.world.Chunk(res.Pos)
	if !ok {
		// Chunk was evicted while the build ran.
		s.metrics.MeshResultsStale.Inc()
		return
	}
	c.MeshGenerated = true

	s.meshMu.Lock()
	s.meshes[res.Pos] = &res
	s.meshMu.Unlock()
}

// enqueueDirty schedules builds for dirty chunks without one in flight.
// budget < 0 means unbounded.
func (s *Simulation) enqueueDirty(budget int) {
	var picked []*gen.Chunk
	s.world.ForEachChunk(func(c *gen.Chunk) {
		if !c.Dirty || s.pending[c.Pos] {
			return
		}
		if budget >= 0 && len(picked) >= budget {
			return
		}
		if len(s.pending)+len(picked) >= cap(s.results) {
			return
		}
		picked = append(picked, c)
	})

	for _, c := range picked {
		c.Dirty = false
		s.pending[c.Pos] = true
		s.jobs <- buildJob{pos: c.Pos, snapshot: *c}
	}
}

// pruneEvicted drops cached meshes for chunks no longer resident.
func (s *Simulation) pruneEvicted() {
	s.meshMu.Lock()
	defer s.meshMu.Unlock()
	for pos := range s.meshes {
		if _, ok := s.world.Chunk(pos); !ok {
			delete(s.meshes, pos)
		}
	}
}

// Mesh returns the most recent finished mesh for a chunk.
func (s *Simulation) Mesh(pos gen.ChunkPos) (*MeshResult, bool) {
	s.meshMu.RLock()
	defer s.meshMu.RUnlock()
	res, ok := s.meshes[pos]
	return res, ok
}

// MeshCount returns the number of chunks with a finished mesh.
func (s *Simulation) MeshCount() int {
	s.meshMu.RLock()
	defer s.meshMu.RUnlock()
	return len(s.meshes)
}

// PlaceBlock validates and applies a block placement.
func (s *Simulation) PlaceBlock(x, y, z int, bt gamedata.BlockType) bool {
	if !s.world.PlaceBlock(x, y, z, bt) {
		return false
	}
	s.log.Debug("block placed", "x", x, "y", y, "z", z, "block", gamedata.Get(bt).Name)
	return true
}

// DamageBlock applies one hit of break damage and reports whether the
// block was destroyed.
func (s *Simulation) DamageBlock(x, y, z int) (gamedata.BlockType, bool) {
	bt, destroyed := s.world.DamageBlock(x, y, z)
	if destroyed {
		s.log.Debug("block destroyed", "x", x, "y", y, "z", z, "block", gamedata.Get(bt).Name)
	}
	return bt, destroyed
}
