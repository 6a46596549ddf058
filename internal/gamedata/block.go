package gamedata

// BlockType identifies a voxel kind. Voxels carry no extra payload, so
// orientation and half-block variants get their own enum values.
type BlockType uint8

const (
	Air BlockType = iota
	Barrier
	Grass
	Dirt
	Stone
	Cobblestone
	Sand
	Gravel
	Clay
	Snow
	Ice
	Water
	Log
	Leaves
	Cactus
	Planks
	Glass
	CoalOre
	IronOre
	GoldOre
	DiamondOre
	Torch
	TorchWallNorth
	TorchWallSouth
	TorchWallWest
	TorchWallEast
	SlabBottom
	SlabTop
	StairsNorth
	StairsSouth
	StairsWest
	StairsEast
	LadderNorth
	LadderSouth
	LadderWest
	LadderEast
	TrapdoorBottom
	TrapdoorTop
	TrapdoorOpenNorth
	TrapdoorOpenSouth
	TrapdoorOpenWest
	TrapdoorOpenEast
	Fence
	GlassPane

	blockTypeCount
)

// Shape selects how a block is turned into geometry.
type Shape uint8

const (
	ShapeNone Shape = iota // no geometry at all
	ShapeCube
	ShapeLiquid
	ShapeTorch
	ShapeSlab
	ShapeStairs
	ShapeLadder
	ShapeTrapdoor
	ShapeFence
	ShapePane
)

// Facing is the horizontal orientation baked into directional block kinds.
type Facing uint8

const (
	FacingNone Facing = iota
	FacingNorth        // -Z
	FacingSouth        // +Z
	FacingWest         // -X
	FacingEast         // +X
)

// Block is one row of the registry: everything the engine needs to know
// about a block kind, so behavior stays in data rather than per-kind code.
type Block struct {
	Name        string
	Hardness    float32 // damage required to break; <0 = unbreakable
	Transparent bool    // rendered in the transparent buffer
	Occludes    bool    // full opaque cube that hides neighboring faces
	Shape       Shape
	Facing      Facing
}

func (b BlockType) String() string {
	return Get(b).Name
}

// Get returns the registry row for bt. Unknown values resolve to a plain
// breakable placeholder so lookups never need an error path.
func Get(bt BlockType) Block {
	if int(bt) >= len(Registry) {
		return Block{Name: "unknown", Hardness: defaultHardness, Shape: ShapeCube, Occludes: true}
	}
	return Registry[bt]
}

// Hardness returns the damage a block absorbs before breaking, negative
// for unbreakable kinds.
func Hardness(bt BlockType) float32 {
	return Get(bt).Hardness
}

// Breakable reports whether bt can be destroyed by applying damage.
func Breakable(bt BlockType) bool {
	return Get(bt).Hardness >= 0 && bt != Air
}

// Occludes reports whether bt is a full opaque cube hiding adjacent faces.
func Occludes(bt BlockType) bool {
	return Get(bt).Occludes
}

// IsTorch reports whether bt is a torch in any mounting.
func IsTorch(bt BlockType) bool {
	return Get(bt).Shape == ShapeTorch
}

// WallTorch returns the torch variant mounted on the given wall, or the
// floor torch for FacingNone.
func WallTorch(f Facing) BlockType {
	switch f {
	case FacingNorth:
		return TorchWallNorth
	case FacingSouth:
		return TorchWallSouth
	case FacingWest:
		return TorchWallWest
	case FacingEast:
		return TorchWallEast
	}
	return Torch
}

// Stairs returns the stairs variant whose full step rests against f.
func Stairs(f Facing) BlockType {
	switch f {
	case FacingSouth:
		return StairsSouth
	case FacingWest:
		return StairsWest
	case FacingEast:
		return StairsEast
	}
	return StairsNorth
}

// Ladder returns the ladder variant mounted on the given wall.
func Ladder(f Facing) BlockType {
	switch f {
	case FacingSouth:
		return LadderSouth
	case FacingWest:
		return LadderWest
	case FacingEast:
		return LadderEast
	}
	return LadderNorth
}

// TrapdoorOpen returns the open trapdoor variant hinged on the given wall.
func TrapdoorOpen(f Facing) BlockType {
	switch f {
	case FacingSouth:
		return TrapdoorOpenSouth
	case FacingWest:
		return TrapdoorOpenWest
	case FacingEast:
		return TrapdoorOpenEast
	}
	return TrapdoorOpenNorth
}
