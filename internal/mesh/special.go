package mesh

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/voxelforge/voxeld/internal/gamedata"
	"github.com/voxelforge/voxeld/internal/world/gen"
)

// specialPass emits the non-cubic shapes. Runs after the greedy passes;
// everything lands in the opaque buffer except glass panes.
func (m *mesher) specialPass() {
	for x := 0; x < gen.ChunkSize; x++ {
		for z := 0; z < gen.ChunkSize; z++ {
			for y := 0; y < gen.ChunkHeight; y++ {
				bt := m.chunk.Get(x, y, z)
				switch gamedata.Get(bt).Shape {
				case gamedata.ShapeTorch:
					m.emitTorch(x, y, z, bt)
				case gamedata.ShapeSlab:
					m.emitSlab(x, y, z, bt)
				case gamedata.ShapeStairs:
					m.emitStairs(x, y, z, bt)
				case gamedata.ShapeLadder:
					m.emitLadder(x, y, z, bt)
				case gamedata.ShapeTrapdoor:
					m.emitTrapdoor(x, y, z, bt)
				case gamedata.ShapeFence:
					m.emitFence(x, y, z, bt)
				case gamedata.ShapePane:
					m.emitPane(x, y, z, bt)
				}
			}
		}
	}
}

func (m *mesher) cellOrigin(x, y, z int) mgl32.Vec3 {
	return mgl32.Vec3{float32(m.baseX + x), float32(y), float32(m.baseZ + z)}
}

// neighbor resolves the adjacent block through the local chunk when
// possible, falling back to the store across chunk borders.
func (m *mesher) neighbor(x, y, z int, dir faceDir) (gamedata.BlockType, bool) {
	off := dirOffsets[dir]
	nx, ny, nz := x+off[0], y+off[1], z+off[2]
	if ny < 0 || ny >= gen.ChunkHeight {
		return gamedata.Air, false
	}
	if nx >= 0 && nx < gen.ChunkSize && nz >= 0 && nz < gen.ChunkSize {
		return m.chunk.Get(nx, ny, nz), true
	}
	return m.src.GetBlock(m.baseX+nx, ny, m.baseZ+nz)
}

// Torch: a thin vertical stick with a small tapered flame cap. Wall
// variants lean out of the wall they hang on.
func (m *mesher) emitTorch(x, y, z int, bt gamedata.BlockType) {
	o := m.cellOrigin(x, y, z)
	facing := gamedata.Get(bt).Facing
	buf := m.buffer(bt)

	if facing == gamedata.FacingNone {
		stick := boxCorners(
			o.Add(mgl32.Vec3{0.4375, 0, 0.4375}),
			o.Add(mgl32.Vec3{0.5625, 0.625, 0.5625}),
		)
		flame := boxCorners(
			o.Add(mgl32.Vec3{0.45, 0.625, 0.45}),
			o.Add(mgl32.Vec3{0.55, 0.75, 0.55}),
		)
		emitCorners(buf, stick, allFaces, bt, 0)
		emitCorners(buf, flame, allFaces, bt, 0)
		return
	}

	// North frame: hangs on the -Z wall and leans toward +Z.
	const lean = 0.4
	stick := shearCorners(boxCorners(
		o.Add(mgl32.Vec3{0.4375, 0.2, 0}),
		o.Add(mgl32.Vec3{0.5625, 0.8, 0.125}),
	), 0, lean)
	flame := shearCorners(boxCorners(
		o.Add(mgl32.Vec3{0.45, 0.8, 0.02}),
		o.Add(mgl32.Vec3{0.55, 0.92, 0.145}),
	), 0, lean*0.5)
	// The flame sits on the sheared stick top.
	flameShift := mgl32.Vec3{0, 0, lean * 0.6}
	for i := range flame {
		flame[i] = flame[i].Add(flameShift)
	}

	for i := range stick {
		stick[i] = rotateInCell(stick[i], facing, o.X(), o.Y(), o.Z())
	}
	for i := range flame {
		flame[i] = rotateInCell(flame[i], facing, o.X(), o.Y(), o.Z())
	}
	emitCorners(buf, stick, allFaces, bt, 0)
	emitCorners(buf, flame, allFaces, bt, 0)
}

// Slab: half-height box with context-sensitive exposure against the
// matching slab half.
func (m *mesher) emitSlab(x, y, z int, bt gamedata.BlockType) {
	o := m.cellOrigin(x, y, z)
	buf := m.buffer(bt)
	topHalf := bt == gamedata.SlabTop

	var min, max mgl32.Vec3
	if topHalf {
		min, max = o.Add(mgl32.Vec3{0, 0.5, 0}), o.Add(mgl32.Vec3{1, 1, 1})
	} else {
		min, max = o, o.Add(mgl32.Vec3{1, 0.5, 1})
	}
	corners := boxCorners(min, max)

	occludedBy := func(dir faceDir) bool {
		nb, ok := m.neighbor(x, y, z, dir)
		if !ok {
			return false // missing neighbor: draw the face
		}
		if gamedata.Occludes(nb) {
			return true
		}
		switch dir {
		case dirUp:
			// Only a full cube (or a bottom slab resting on this cell's
			// ceiling) hides the cell-top face of a top slab.
			return topHalf && nb == gamedata.SlabBottom
		case dirDown:
			return !topHalf && nb == gamedata.SlabTop
		default:
			// Side faces hide against the same slab half next door.
			return nb == bt
		}
	}

	for _, dir := range allFaces {
		// The half-boundary face (top of a bottom slab, bottom of a top
		// slab) is interior to the cell and always drawn.
		if bt == gamedata.SlabBottom && dir == dirUp {
			emitCorners(buf, corners, []faceDir{dir}, bt, 0)
			continue
		}
		if bt == gamedata.SlabTop && dir == dirDown {
			emitCorners(buf, corners, []faceDir{dir}, bt, 0)
			continue
		}
		if !occludedBy(dir) {
			emitCorners(buf, corners, []faceDir{dir}, bt, 0)
		}
	}
}

// Stairs: full height at the back, half height at the front. Built in
// the north frame (full step against -Z) and rotated into place. Side
// faces are simplified full rectangles rather than true L-cutouts.
func (m *mesher) emitStairs(x, y, z int, bt gamedata.BlockType) {
	o := m.cellOrigin(x, y, z)
	facing := gamedata.Get(bt).Facing
	buf := m.buffer(bt)

	normal := func(dir faceDir) mgl32.Vec3 {
		return rotateDir(dirNormals[dir], facing)
	}
	quad := func(dir faceDir, corners [4]mgl32.Vec3) {
		for i := range corners {
			corners[i] = rotateInCell(corners[i], facing, o.X(), o.Y(), o.Z())
		}
		buf.addQuad(corners, quadUVs, normal(dir), bt, 0)
	}

	x0, y0, z0 := o.X(), o.Y(), o.Z()
	x1, y1, z1 := x0+1, y0+1, z0+1
	ym := y0 + 0.5 // half height
	zm := z0 + 0.5 // step boundary

	// Bottom cap, full.
	quad(dirDown, [4]mgl32.Vec3{{x0, y0, z0}, {x1, y0, z0}, {x1, y0, z1}, {x0, y0, z1}})
	// Top cap, back half at full height.
	quad(dirUp, [4]mgl32.Vec3{{x0, y1, z0}, {x0, y1, zm}, {x1, y1, zm}, {x1, y1, z0}})
	// Top cap, front half at step height.
	quad(dirUp, [4]mgl32.Vec3{{x0, ym, zm}, {x0, ym, z1}, {x1, ym, z1}, {x1, ym, zm}})
	// Vertical step face looking front (+Z in the north frame).
	quad(dirSouth, [4]mgl32.Vec3{{x0, ym, zm}, {x1, ym, zm}, {x1, y1, zm}, {x0, y1, zm}})
	// Front face, lower half.
	quad(dirSouth, [4]mgl32.Vec3{{x0, y0, z1}, {x1, y0, z1}, {x1, ym, z1}, {x0, ym, z1}})
	// Back face, full.
	quad(dirNorth, [4]mgl32.Vec3{{x0, y0, z0}, {x0, y1, z0}, {x1, y1, z0}, {x1, y0, z0}})
	// Sides, simplified full rectangles.
	quad(dirEast, [4]mgl32.Vec3{{x1, y0, z0}, {x1, y1, z0}, {x1, y1, z1}, {x1, y0, z1}})
	quad(dirWest, [4]mgl32.Vec3{{x0, y0, z0}, {x0, y0, z1}, {x0, y1, z1}, {x0, y1, z0}})
}

// Ladder: a thin double-sided panel offset from the wall it hangs on.
func (m *mesher) emitLadder(x, y, z int, bt gamedata.BlockType) {
	o := m.cellOrigin(x, y, z)
	corners := boxCorners(
		o.Add(mgl32.Vec3{0, 0, 0.0}),
		o.Add(mgl32.Vec3{1, 1, 0.0625}),
	)
	facing := gamedata.Get(bt).Facing
	for i := range corners {
		corners[i] = rotateInCell(corners[i], facing, o.X(), o.Y(), o.Z())
	}
	emitCorners(m.buffer(bt), corners, allFaces, bt, 0)
}

// Trapdoor: closed it is a thin horizontal slab flush to the top or
// bottom of the cell; open it stands vertically against the hinge wall.
func (m *mesher) emitTrapdoor(x, y, z int, bt gamedata.BlockType) {
	o := m.cellOrigin(x, y, z)
	const thick = 0.1875
	buf := m.buffer(bt)

	switch bt {
	case gamedata.TrapdoorBottom:
		emitBox(buf, o, o.Add(mgl32.Vec3{1, thick, 1}), bt, 0)
	case gamedata.TrapdoorTop:
		emitBox(buf, o.Add(mgl32.Vec3{0, 1 - thick, 0}), o.Add(mgl32.Vec3{1, 1, 1}), bt, 0)
	default: // open, hinged on the facing wall
		corners := boxCorners(o, o.Add(mgl32.Vec3{1, 1, thick}))
		facing := gamedata.Get(bt).Facing
		for i := range corners {
			corners[i] = rotateInCell(corners[i], facing, o.X(), o.Y(), o.Z())
		}
		emitCorners(buf, corners, allFaces, bt, 0)
	}
}

// fenceConnects reports whether a fence bar should reach toward the
// neighbor: another fence or any full cube accepts the connection.
func (m *mesher) fenceConnects(x, y, z int, dir faceDir) bool {
	nb, ok := m.neighbor(x, y, z, dir)
	if !ok {
		return false
	}
	return nb == gamedata.Fence || gamedata.Occludes(nb)
}

// Fence: central post plus up to four pairs of horizontal bars.
func (m *mesher) emitFence(x, y, z int, bt gamedata.BlockType) {
	o := m.cellOrigin(x, y, z)
	buf := m.buffer(bt)

	emitBox(buf,
		o.Add(mgl32.Vec3{0.375, 0, 0.375}),
		o.Add(mgl32.Vec3{0.625, 1, 0.625}),
		bt, 0)

	// Two bar heights per connected side.
	bars := [2][2]float32{{0.375, 0.5625}, {0.75, 0.9375}}
	sides := []struct {
		dir      faceDir
		min, max mgl32.Vec3
	}{
		{dirNorth, mgl32.Vec3{0.4375, 0, 0}, mgl32.Vec3{0.5625, 0, 0.375}},
		{dirSouth, mgl32.Vec3{0.4375, 0, 0.625}, mgl32.Vec3{0.5625, 0, 1}},
		{dirWest, mgl32.Vec3{0, 0, 0.4375}, mgl32.Vec3{0.375, 0, 0.5625}},
		{dirEast, mgl32.Vec3{0.625, 0, 0.4375}, mgl32.Vec3{1, 0, 0.5625}},
	}
	for _, s := range sides {
		if !m.fenceConnects(x, y, z, s.dir) {
			continue
		}
		for _, bar := range bars {
			min := o.Add(mgl32.Vec3{s.min.X(), bar[0], s.min.Z()})
			max := o.Add(mgl32.Vec3{s.max.X(), bar[1], s.max.Z()})
			emitBox(buf, min, max, bt, 0)
		}
	}
}

// paneConnects: panes join other panes, glass, and full cubes.
func (m *mesher) paneConnects(x, y, z int, dir faceDir) bool {
	nb, ok := m.neighbor(x, y, z, dir)
	if !ok {
		return false
	}
	return nb == gamedata.GlassPane || nb == gamedata.Glass || gamedata.Occludes(nb)
}

// Glass pane: thin central post plus full-height panels toward connected
// neighbors. Goes in the transparent buffer.
func (m *mesher) emitPane(x, y, z int, bt gamedata.BlockType) {
	o := m.cellOrigin(x, y, z)
	buf := m.buffer(bt)

	emitBox(buf,
		o.Add(mgl32.Vec3{0.4375, 0, 0.4375}),
		o.Add(mgl32.Vec3{0.5625, 1, 0.5625}),
		bt, 0)

	panels := []struct {
		dir      faceDir
		min, max mgl32.Vec3
	}{
		{dirNorth, mgl32.Vec3{0.4375, 0, 0}, mgl32.Vec3{0.5625, 1, 0.4375}},
		{dirSouth, mgl32.Vec3{0.4375, 0, 0.5625}, mgl32.Vec3{0.5625, 1, 1}},
		{dirWest, mgl32.Vec3{0, 0, 0.4375}, mgl32.Vec3{0.4375, 1, 0.5625}},
		{dirEast, mgl32.Vec3{0.5625, 0, 0.4375}, mgl32.Vec3{1, 1, 0.5625}},
	}
	for _, p := range panels {
		if m.paneConnects(x, y, z, p.dir) {
			emitBox(buf, o.Add(p.min), o.Add(p.max), bt, 0)
		}
	}
}
