package gamedata

import "testing"

func TestRegistryRows(t *testing.T) {
	tests := []struct {
		bt        BlockType
		hardness  float32
		occludes  bool
		shape     Shape
		breakable bool
	}{
		{Grass, 3, true, ShapeCube, true},
		{Dirt, 3, true, ShapeCube, true},
		{Stone, 10, true, ShapeCube, true},
		{Log, 5, true, ShapeCube, true},
		{Leaves, 1, true, ShapeCube, true},
		{Water, -1, false, ShapeLiquid, false},
		{Barrier, -1, false, ShapeNone, false},
		{Air, -1, false, ShapeNone, false},
		{Torch, 1, false, ShapeTorch, true},
		{Fence, 5, false, ShapeFence, true},
		{GlassPane, 1, false, ShapePane, true},
	}
	for _, tt := range tests {
		if got := Hardness(tt.bt); got != tt.hardness {
			t.Errorf("Hardness(%v) = %v, want %v", tt.bt, got, tt.hardness)
		}
		if got := Occludes(tt.bt); got != tt.occludes {
			t.Errorf("Occludes(%v) = %v, want %v", tt.bt, got, tt.occludes)
		}
		if got := Get(tt.bt).Shape; got != tt.shape {
			t.Errorf("Get(%v).Shape = %v, want %v", tt.bt, got, tt.shape)
		}
		if got := Breakable(tt.bt); got != tt.breakable {
			t.Errorf("Breakable(%v) = %v, want %v", tt.bt, got, tt.breakable)
		}
	}
}

func TestUnknownBlockDefaults(t *testing.T) {
	bt := BlockType(250)
	b := Get(bt)
	if b.Name != "unknown" {
		t.Errorf("Get(250).Name = %q, want %q", b.Name, "unknown")
	}
	if b.Hardness != 1 {
		t.Errorf("Get(250).Hardness = %v, want 1", b.Hardness)
	}
	if !Breakable(bt) {
		t.Error("unknown block should be breakable")
	}
}

func TestFacingVariants(t *testing.T) {
	tests := []struct {
		bt     BlockType
		facing Facing
	}{
		{TorchWallNorth, FacingNorth},
		{TorchWallEast, FacingEast},
		{StairsSouth, FacingSouth},
		{LadderWest, FacingWest},
		{TrapdoorOpenNorth, FacingNorth},
		{Torch, FacingNone},
		{SlabBottom, FacingNone},
	}
	for _, tt := range tests {
		if got := Get(tt.bt).Facing; got != tt.facing {
			t.Errorf("Get(%v).Facing = %v, want %v", tt.bt, got, tt.facing)
		}
	}
}

func TestTorchDetection(t *testing.T) {
	for _, bt := range []BlockType{Torch, TorchWallNorth, TorchWallSouth, TorchWallWest, TorchWallEast} {
		if !IsTorch(bt) {
			t.Errorf("IsTorch(%v) = false, want true", bt)
		}
	}
	if IsTorch(Ladder(FacingNorth)) {
		t.Error("ladder should not register as torch")
	}
}
