package mesh

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/voxelforge/voxeld/internal/gamedata"
)

// PreviewDamage is the sentinel carried in the damage slot of placement
// preview geometry so the renderer can draw it as a translucent ghost.
const PreviewDamage = -1

// Vertex is the layout handed to the rendering collaborator. The Damage
// slot is overloaded by convention: crack intensity in [0,1) for damaged
// solids, water-column depth for water quads, PreviewDamage for
// placement previews, 0 otherwise.
type Vertex struct {
	Position  mgl32.Vec3
	UV        mgl32.Vec2
	Normal    mgl32.Vec3
	BlockType float32
	Damage    float32
}

// Data is one indexed triangle list.
type Data struct {
	Vertices []Vertex
	Indices  []uint32
}

// Empty reports whether the buffer holds no geometry.
func (d *Data) Empty() bool { return len(d.Indices) == 0 }

var quadUVs = [4]mgl32.Vec2{{0, 0}, {1, 0}, {1, 1}, {0, 1}}

// addQuad appends four vertices in counter-clockwise order plus the two
// triangles covering them.
func (d *Data) addQuad(corners [4]mgl32.Vec3, uvs [4]mgl32.Vec2, normal mgl32.Vec3, bt gamedata.BlockType, damage float32) {
	base := uint32(len(d.Vertices))
	for i := range corners {
		d.Vertices = append(d.Vertices, Vertex{
			Position:  corners[i],
			UV:        uvs[i],
			Normal:    normal,
			BlockType: float32(bt),
			Damage:    damage,
		})
	}
	d.Indices = append(d.Indices, base, base+1, base+2, base+2, base+3, base)
}

// faceDir enumerates the six face directions.
type faceDir int

const (
	dirEast  faceDir = iota // +X
	dirWest                 // -X
	dirUp                   // +Y
	dirDown                 // -Y
	dirSouth                // +Z
	dirNorth                // -Z
)

var dirOffsets = [6][3]int{
	dirEast:  {1, 0, 0},
	dirWest:  {-1, 0, 0},
	dirUp:    {0, 1, 0},
	dirDown:  {0, -1, 0},
	dirSouth: {0, 0, 1},
	dirNorth: {0, 0, -1},
}

var dirNormals = [6]mgl32.Vec3{
	dirEast:  {1, 0, 0},
	dirWest:  {-1, 0, 0},
	dirUp:    {0, 1, 0},
	dirDown:  {0, -1, 0},
	dirSouth: {0, 0, 1},
	dirNorth: {0, 0, -1},
}

// boxCorners returns the 8 corners of an axis-aligned box; corner index
// bit 0 selects max x, bit 1 max y, bit 2 max z.
func boxCorners(min, max mgl32.Vec3) [8]mgl32.Vec3 {
	var c [8]mgl32.Vec3
	for i := range c {
		p := min
		if i&1 != 0 {
			p[0] = max.X()
		}
		if i&2 != 0 {
			p[1] = max.Y()
		}
		if i&4 != 0 {
			p[2] = max.Z()
		}
		c[i] = p
	}
	return c
}

// boxFaces lists, per direction, the 4 corner indices of that face in
// counter-clockwise order for an outward normal.
var boxFaces = [6][4]int{
	dirEast:  {1, 3, 7, 5},
	dirWest:  {0, 4, 6, 2},
	dirUp:    {2, 6, 7, 3},
	dirDown:  {0, 1, 5, 4},
	dirSouth: {4, 5, 7, 6},
	dirNorth: {0, 2, 3, 1},
}

// emitCorners emits the requested faces of a (possibly sheared) box
// described by its 8 corners.
func emitCorners(buf *Data, corners [8]mgl32.Vec3, faces []faceDir, bt gamedata.BlockType, damage float32) {
	for _, dir := range faces {
		idx := boxFaces[dir]
		buf.addQuad(
			[4]mgl32.Vec3{corners[idx[0]], corners[idx[1]], corners[idx[2]], corners[idx[3]]},
			quadUVs,
			dirNormals[dir],
			bt,
			damage,
		)
	}
}

var allFaces = []faceDir{dirEast, dirWest, dirUp, dirDown, dirSouth, dirNorth}

// emitBox emits all six faces of an axis-aligned box.
func emitBox(buf *Data, min, max mgl32.Vec3, bt gamedata.BlockType, damage float32) {
	emitCorners(buf, boxCorners(min, max), allFaces, bt, damage)
}

// shearCorners leans a box: every corner is displaced in x/z
// proportionally to its height above the box base.
func shearCorners(corners [8]mgl32.Vec3, shearX, shearZ float32) [8]mgl32.Vec3 {
	baseY := corners[0].Y()
	for i, p := range corners {
		dy := p.Y() - baseY
		corners[i] = mgl32.Vec3{p.X() + shearX*dy, p.Y(), p.Z() + shearZ*dy}
	}
	return corners
}

// rotateInCell rotates a point around the vertical axis of its unit
// cell, mapping north-frame geometry to the given facing. cellX/Y/Z is
// the cell origin.
func rotateInCell(p mgl32.Vec3, facing gamedata.Facing, cellX, cellY, cellZ float32) mgl32.Vec3 {
	lx := p.X() - cellX
	lz := p.Z() - cellZ
	var rx, rz float32
	switch facing {
	case gamedata.FacingSouth:
		rx, rz = 1-lx, 1-lz
	case gamedata.FacingWest:
		rx, rz = lz, 1-lx
	case gamedata.FacingEast:
		rx, rz = 1-lz, lx
	default: // north frame
		rx, rz = lx, lz
	}
	return mgl32.Vec3{cellX + rx, p.Y(), cellZ + rz}
}

// rotateDir rotates a direction vector the same way rotateInCell rotates
// points.
func rotateDir(n mgl32.Vec3, facing gamedata.Facing) mgl32.Vec3 {
	switch facing {
	case gamedata.FacingSouth:
		return mgl32.Vec3{-n.X(), n.Y(), -n.Z()}
	case gamedata.FacingWest:
		return mgl32.Vec3{n.Z(), n.Y(), -n.X()}
	case gamedata.FacingEast:
		return mgl32.Vec3{-n.Z(), n.Y(), n.X()}
	default:
		return n
	}
}
