package world

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/voxelforge/voxeld/internal/world/gen"
)

// FindSpawnPosition searches outward from the origin in expanding rings
// for dry ground comfortably above sea level and returns a position
// centered on that column with headroom. Falls back to a position above
// the origin column when the search radius is exhausted.
func (w *World) FindSpawnPosition() mgl32.Vec3 {
	const maxRadius = 48

	if p, ok := w.trySpawnColumn(0, 0); ok {
		return p
	}
	for r := 1; r <= maxRadius; r++ {
		for dx := -r; dx <= r; dx++ {
			for _, dz := range ringEdges(dx, r) {
				if p, ok := w.trySpawnColumn(dx*4, dz*4); ok {
					return p
				}
			}
		}
	}

	h := w.generator.HeightAt(0, 0)
	return mgl32.Vec3{0.5, float32(h + 2), 0.5}
}

// ringEdges yields the dz offsets that put (dx,dz) on the ring border.
func ringEdges(dx, r int) []int {
	if dx == -r || dx == r {
		edges := make([]int, 0, 2*r+1)
		for dz := -r; dz <= r; dz++ {
			edges = append(edges, dz)
		}
		return edges
	}
	return []int{-r, r}
}

func (w *World) trySpawnColumn(bx, bz int) (mgl32.Vec3, bool) {
	h := w.generator.HeightAt(bx, bz)
	if h <= gen.SeaLevel+1 || h >= gen.ChunkHeight-4 {
		return mgl32.Vec3{}, false
	}
	return mgl32.Vec3{float32(bx) + 0.5, float32(h + 2), float32(bz) + 0.5}, true
}
