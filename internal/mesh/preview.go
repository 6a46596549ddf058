package mesh

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/voxelforge/voxeld/internal/gamedata"
)

// BuildPlacementPreview emits a ghost cube for the block about to be
// placed at the given world position. Every vertex carries the
// PreviewDamage sentinel in its damage slot; the renderer keys its
// translucent preview path off that value.
func BuildPlacementPreview(bt gamedata.BlockType, x, y, z int) Data {
	var d Data
	min := mgl32.Vec3{float32(x), float32(y), float32(z)}
	emitBox(&d, min, min.Add(mgl32.Vec3{1, 1, 1}), bt, PreviewDamage)
	return d
}
