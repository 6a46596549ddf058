package mesh

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/voxelforge/voxeld/internal/gamedata"
	"github.com/voxelforge/voxeld/internal/world/gen"
)

// BlockSource is the world-side query surface the mesher reads through
// for neighbor lookups across chunk borders, live damage values and
// water flow levels. Implemented by the chunk store.
type BlockSource interface {
	GetBlock(x, y, z int) (gamedata.BlockType, bool)
	BlockDamage(x, y, z int) float32
	WaterLevel(x, y, z int) uint8
}

// BuildChunkGeometry turns one chunk into an opaque and a transparent
// triangle buffer. Positions are in world space. Full cubes go through
// per-direction greedy merging; water, damaged blocks and the special
// block shapes each get their own unmerged pass.
func BuildChunkGeometry(src BlockSource, c *gen.Chunk) (opaque, transparent Data) {
	m := &mesher{
		src:   src,
		chunk: c,
		baseX: c.Pos.X * gen.ChunkSize,
		baseZ: c.Pos.Z * gen.ChunkSize,
	}

	for _, dir := range allFaces {
		m.greedyPass(dir)
	}
	m.waterPass()
	m.damagedPass()
	m.specialPass()

	return m.opaque, m.transparent
}

type mesher struct {
	src         BlockSource
	chunk       *gen.Chunk
	baseX       int
	baseZ       int
	opaque      Data
	transparent Data
}

func (m *mesher) buffer(bt gamedata.BlockType) *Data {
	if gamedata.Get(bt).Transparent {
		return &m.transparent
	}
	return &m.opaque
}

// damageAt returns accumulated break damage for a chunk-local cell.
func (m *mesher) damageAt(x, y, z int) float32 {
	return m.src.BlockDamage(m.baseX+x, y, m.baseZ+z)
}

// mergeable reports whether the cell participates in greedy merging:
// plain cubes only, and never while damaged (damaged faces are emitted
// unmerged so each carries its own crack value).
func (m *mesher) mergeable(x, y, z int, bt gamedata.BlockType) bool {
	if gamedata.Get(bt).Shape != gamedata.ShapeCube {
		return false
	}
	return m.damageAt(x, y, z) == 0
}

// exposed reports whether a cube face at (x,y,z) toward the neighbor
// cell is visible: only against a missing neighbor chunk (so the
// boundary renders until it arrives), air, or a torch occupant, which
// never occludes anything. Every other neighbor hides the face.
func (m *mesher) exposed(x, y, z int, dir faceDir) bool {
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
	return nb == gamedata.Air || gamedata.IsTorch(nb)
}

// greedyPass runs 2D greedy merging for one face direction: sweep layers
// along the direction's axis, build a mask of exposed mergeable cells
// over the two in-plane axes, then grow rectangles row-major: width
// along the second axis first, then height while every cell in the row
// still matches.
func (m *mesher) greedyPass(dir faceDir) {
	uSize, vSize, layers := planeDims(dir)
	mask := make([]gamedata.BlockType, uSize*vSize)

	for layer := 0; layer < layers; layer++ {
		clear(mask)
		for u := 0; u < uSize; u++ {
			for v := 0; v < vSize; v++ {
				x, y, z := cellCoords(dir, layer, u, v)
				bt := m.chunk.Get(x, y, z)
				if bt == gamedata.Air || bt == gamedata.Water {
					continue
				}
				if !m.mergeable(x, y, z, bt) {
					continue
				}
				if m.exposed(x, y, z, dir) {
					mask[u*vSize+v] = bt
				}
			}
		}

		for i := 0; i < len(mask); i++ {
			bt := mask[i]
			if bt == gamedata.Air {
				continue
			}
			u0 := i / vSize
			v0 := i % vSize

			width := 1
			for v1 := v0 + 1; v1 < vSize && mask[u0*vSize+v1] == bt; v1++ {
				width++
			}

			height := 1
		grow:
			for u1 := u0 + 1; u1 < uSize; u1++ {
				for v1 := v0; v1 < v0+width; v1++ {
					if mask[u1*vSize+v1] != bt {
						break grow
					}
				}
				height++
			}

			m.emitMergedQuad(dir, layer, u0, v0, height, width, bt)

			for u1 := u0; u1 < u0+height; u1++ {
				for v1 := v0; v1 < v0+width; v1++ {
					mask[u1*vSize+v1] = gamedata.Air
				}
			}
		}
	}
}

// planeDims returns the in-plane sizes (u, v) and layer count for a
// direction. X faces sweep X layers over a Y×Z plane, Y faces sweep Y
// over X×Z, Z faces sweep Z over Y×X.
func planeDims(dir faceDir) (uSize, vSize, layers int) {
	switch dir {
	case dirEast, dirWest:
		return gen.ChunkHeight, gen.ChunkSize, gen.ChunkSize
	case dirUp, dirDown:
		return gen.ChunkSize, gen.ChunkSize, gen.ChunkHeight
	default:
		return gen.ChunkHeight, gen.ChunkSize, gen.ChunkSize
	}
}

// cellCoords maps (layer, u, v) back to chunk-local coordinates.
func cellCoords(dir faceDir, layer, u, v int) (x, y, z int) {
	switch dir {
	case dirEast, dirWest:
		return layer, u, v
	case dirUp, dirDown:
		return u, layer, v
	default:
		return v, u, layer
	}
}

// emitMergedQuad emits one merged rectangle in world space. du spans the
// u axis, dv the v axis.
func (m *mesher) emitMergedQuad(dir faceDir, layer, u0, v0, du, dv int, bt gamedata.BlockType) {
	wx := float32(m.baseX)
	wz := float32(m.baseZ)
	fu0, fv0 := float32(u0), float32(v0)
	fu1, fv1 := float32(u0+du), float32(v0+dv)
	uvs := [4]mgl32.Vec2{}

	var corners [4]mgl32.Vec3
	switch dir {
	case dirEast, dirWest:
		// u=y, v=z, layer=x
		fx := wx + float32(layer)
		if dir == dirEast {
			fx++
			corners = [4]mgl32.Vec3{
				{fx, fu0, wz + fv0},
				{fx, fu1, wz + fv0},
				{fx, fu1, wz + fv1},
				{fx, fu0, wz + fv1},
			}
			uvs = [4]mgl32.Vec2{{0, 0}, {0, float32(du)}, {float32(dv), float32(du)}, {float32(dv), 0}}
		} else {
			corners = [4]mgl32.Vec3{
				{fx, fu0, wz + fv0},
				{fx, fu0, wz + fv1},
				{fx, fu1, wz + fv1},
				{fx, fu1, wz + fv0},
			}
			uvs = [4]mgl32.Vec2{{0, 0}, {float32(dv), 0}, {float32(dv), float32(du)}, {0, float32(du)}}
		}
	case dirUp, dirDown:
		// u=x, v=z, layer=y
		fy := float32(layer)
		if dir == dirUp {
			fy++
			corners = [4]mgl32.Vec3{
				{wx + fu0, fy, wz + fv0},
				{wx + fu0, fy, wz + fv1},
				{wx + fu1, fy, wz + fv1},
				{wx + fu1, fy, wz + fv0},
			}
			uvs = [4]mgl32.Vec2{{0, 0}, {0, float32(dv)}, {float32(du), float32(dv)}, {float32(du), 0}}
		} else {
			corners = [4]mgl32.Vec3{
				{wx + fu0, fy, wz + fv0},
				{wx + fu1, fy, wz + fv0},
				{wx + fu1, fy, wz + fv1},
				{wx + fu0, fy, wz + fv1},
			}
			uvs = [4]mgl32.Vec2{{0, 0}, {float32(du), 0}, {float32(du), float32(dv)}, {0, float32(dv)}}
		}
	default:
		// u=y, v=x, layer=z
		fz := wz + float32(layer)
		if dir == dirSouth {
			fz++
			corners = [4]mgl32.Vec3{
				{wx + fv0, fu0, fz},
				{wx + fv1, fu0, fz},
				{wx + fv1, fu1, fz},
				{wx + fv0, fu1, fz},
			}
			uvs = [4]mgl32.Vec2{{0, 0}, {float32(dv), 0}, {float32(dv), float32(du)}, {0, float32(du)}}
		} else {
			corners = [4]mgl32.Vec3{
				{wx + fv0, fu0, fz},
				{wx + fv0, fu1, fz},
				{wx + fv1, fu1, fz},
				{wx + fv1, fu0, fz},
			}
			uvs = [4]mgl32.Vec2{{0, 0}, {0, float32(du)}, {float32(dv), float32(du)}, {float32(dv), 0}}
		}
	}

	m.buffer(bt).addQuad(corners, uvs, dirNormals[dir], bt, 0)
}

// damagedPass re-emits every damaged cube individually so each face can
// carry the live crack intensity.
func (m *mesher) damagedPass() {
	for x := 0; x < gen.ChunkSize; x++ {
		for z := 0; z < gen.ChunkSize; z++ {
			for y := 0; y < gen.ChunkHeight; y++ {
				bt := m.chunk.Get(x, y, z)
				if bt == gamedata.Air || gamedata.Get(bt).Shape != gamedata.ShapeCube {
					continue
				}
				dmg := m.damageAt(x, y, z)
				if dmg <= 0 {
					continue
				}
				intensity := dmg / gamedata.Hardness(bt)
				if intensity > 1 {
					intensity = 1
				}
				min := mgl32.Vec3{float32(m.baseX + x), float32(y), float32(m.baseZ + z)}
				max := min.Add(mgl32.Vec3{1, 1, 1})
				corners := boxCorners(min, max)
				for _, dir := range allFaces {
					if m.exposed(x, y, z, dir) {
						emitCorners(m.buffer(bt), corners, []faceDir{dir}, bt, intensity)
					}
				}
			}
		}
	}
}
