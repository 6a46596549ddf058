package mesh

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/voxelforge/voxeld/internal/gamedata"
	"github.com/voxelforge/voxeld/internal/world/gen"
)

// waterPass emits every water cell as its own 1×1 quads, never merged:
// the visual height depends on the per-voxel flow level and the damage
// slot carries the water-column depth, both of which must be sampled per
// cell. A water face is exposed against anything that is not water.
func (m *mesher) waterPass() {
	for x := 0; x < gen.ChunkSize; x++ {
		for z := 0; z < gen.ChunkSize; z++ {
			for y := 0; y < gen.ChunkHeight; y++ {
				if m.chunk.Get(x, y, z) != gamedata.Water {
					continue
				}
				m.emitWaterCell(x, y, z)
			}
		}
	}
}

func (m *mesher) waterExposed(x, y, z int, dir faceDir) bool {
	off := dirOffsets[dir]
	nx, ny, nz := x+off[0], y+off[1], z+off[2]
	if ny < 0 || ny >= gen.ChunkHeight {
		return true
	}
	var nb gamedata.BlockType
	if nx >= 0 && nx < gen.ChunkSize && nz >= 0 && nz < gen.ChunkSize {
		nb = m.chunk.Get(nx, ny, nz)
	} else {
		var ok bool
		nb, ok = m.src.GetBlock(m.baseX+nx, ny, m.baseZ+nz)
		if !ok {
			return true
		}
	}
	return nb != gamedata.Water
}

// columnDepth counts the contiguous run of water at and below the cell.
func (m *mesher) columnDepth(x, y, z int) float32 {
	depth := 0
	for yy := y; yy >= 0 && m.chunk.Get(x, yy, z) == gamedata.Water; yy-- {
		depth++
	}
	return float32(depth)
}

func (m *mesher) emitWaterCell(x, y, z int) {
	level := m.src.WaterLevel(m.baseX+x, y, m.baseZ+z)
	top := float32(level) / 8 * 0.875
	depth := m.columnDepth(x, y, z)

	x0 := float32(m.baseX + x)
	y0 := float32(y)
	z0 := float32(m.baseZ + z)
	x1, y1, z1 := x0+1, y0+top, z0+1

	buf := &m.transparent
	emit := func(dir faceDir, corners [4]mgl32.Vec3) {
		buf.addQuad(corners, quadUVs, dirNormals[dir], gamedata.Water, depth)
	}

	if m.waterExposed(x, y, z, dirUp) {
		emit(dirUp, [4]mgl32.Vec3{{x0, y1, z0}, {x0, y1, z1}, {x1, y1, z1}, {x1, y1, z0}})
	}
	if m.waterExposed(x, y, z, dirDown) {
		emit(dirDown, [4]mgl32.Vec3{{x0, y0, z0}, {x1, y0, z0}, {x1, y0, z1}, {x0, y0, z1}})
	}
	if m.waterExposed(x, y, z, dirEast) {
		emit(dirEast, [4]mgl32.Vec3{{x1, y0, z0}, {x1, y1, z0}, {x1, y1, z1}, {x1, y0, z1}})
	}
	if m.waterExposed(x, y, z, dirWest) {
		emit(dirWest, [4]mgl32.Vec3{{x0, y0, z0}, {x0, y0, z1}, {x0, y1, z1}, {x0, y1, z0}})
	}
	if m.waterExposed(x, y, z, dirSouth) {
		emit(dirSouth, [4]mgl32.Vec3{{x0, y0, z1}, {x1, y0, z1}, {x1, y1, z1}, {x0, y1, z1}})
	}
	if m.waterExposed(x, y, z, dirNorth) {
		emit(dirNorth, [4]mgl32.Vec3{{x0, y0, z0}, {x0, y1, z0}, {x1, y1, z0}, {x1, y0, z0}})
	}
}
