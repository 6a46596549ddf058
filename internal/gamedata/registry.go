package gamedata

const defaultHardness = 1

// Registry maps every BlockType to its behavior row. For mounted kinds
// (torches, ladders, open trapdoors) Facing is the side of the cell the
// block is attached to; for stairs it is the side the full-height step
// rests against.
var Registry = [blockTypeCount]Block{
	Air:         {Name: "air", Hardness: -1, Transparent: true, Shape: ShapeNone},
	Barrier:     {Name: "barrier", Hardness: -1, Transparent: true, Shape: ShapeNone},
	Grass:       {Name: "grass", Hardness: 3, Occludes: true, Shape: ShapeCube},
	Dirt:        {Name: "dirt", Hardness: 3, Occludes: true, Shape: ShapeCube},
	Stone:       {Name: "stone", Hardness: 10, Occludes: true, Shape: ShapeCube},
	Cobblestone: {Name: "cobblestone", Hardness: 10, Occludes: true, Shape: ShapeCube},
	Sand:        {Name: "sand", Hardness: 3, Occludes: true, Shape: ShapeCube},
	Gravel:      {Name: "gravel", Hardness: 3, Occludes: true, Shape: ShapeCube},
	Clay:        {Name: "clay", Hardness: 3, Occludes: true, Shape: ShapeCube},
	Snow:        {Name: "snow", Hardness: 1, Occludes: true, Shape: ShapeCube},
	Ice:         {Name: "ice", Hardness: 1, Occludes: true, Shape: ShapeCube},
	Water:       {Name: "water", Hardness: -1, Transparent: true, Shape: ShapeLiquid},
	Log:         {Name: "log", Hardness: 5, Occludes: true, Shape: ShapeCube},
	Leaves:      {Name: "leaves", Hardness: 1, Occludes: true, Shape: ShapeCube},
	Cactus:      {Name: "cactus", Hardness: 1, Occludes: true, Shape: ShapeCube},
	Planks:      {Name: "planks", Hardness: 5, Occludes: true, Shape: ShapeCube},
	Glass:       {Name: "glass", Hardness: 1, Transparent: true, Shape: ShapeCube},
	CoalOre:     {Name: "coal_ore", Hardness: 10, Occludes: true, Shape: ShapeCube},
	IronOre:     {Name: "iron_ore", Hardness: 10, Occludes: true, Shape: ShapeCube},
	GoldOre:     {Name: "gold_ore", Hardness: 10, Occludes: true, Shape: ShapeCube},
	DiamondOre:  {Name: "diamond_ore", Hardness: 10, Occludes: true, Shape: ShapeCube},

	Torch:          {Name: "torch", Hardness: 1, Shape: ShapeTorch},
	TorchWallNorth: {Name: "torch_wall_north", Hardness: 1, Shape: ShapeTorch, Facing: FacingNorth},
	TorchWallSouth: {Name: "torch_wall_south", Hardness: 1, Shape: ShapeTorch, Facing: FacingSouth},
	TorchWallWest:  {Name: "torch_wall_west", Hardness: 1, Shape: ShapeTorch, Facing: FacingWest},
	TorchWallEast:  {Name: "torch_wall_east", Hardness: 1, Shape: ShapeTorch, Facing: FacingEast},

	SlabBottom: {Name: "slab_bottom", Hardness: 5, Shape: ShapeSlab},
	SlabTop:    {Name: "slab_top", Hardness: 5, Shape: ShapeSlab},

	StairsNorth: {Name: "stairs_north", Hardness: 5, Shape: ShapeStairs, Facing: FacingNorth},
	StairsSouth: {Name: "stairs_south", Hardness: 5, Shape: ShapeStairs, Facing: FacingSouth},
	StairsWest:  {Name: "stairs_west", Hardness: 5, Shape: ShapeStairs, Facing: FacingWest},
	StairsEast:  {Name: "stairs_east", Hardness: 5, Shape: ShapeStairs, Facing: FacingEast},

	LadderNorth: {Name: "ladder_north", Hardness: 1, Shape: ShapeLadder, Facing: FacingNorth},
	LadderSouth: {Name: "ladder_south", Hardness: 1, Shape: ShapeLadder, Facing: FacingSouth},
	LadderWest:  {Name: "ladder_west", Hardness: 1, Shape: ShapeLadder, Facing: FacingWest},
	LadderEast:  {Name: "ladder_east", Hardness: 1, Shape: ShapeLadder, Facing: FacingEast},

	TrapdoorBottom:    {Name: "trapdoor_bottom", Hardness: 5, Shape: ShapeTrapdoor},
	TrapdoorTop:       {Name: "trapdoor_top", Hardness: 5, Shape: ShapeTrapdoor},
	TrapdoorOpenNorth: {Name: "trapdoor_open_north", Hardness: 5, Shape: ShapeTrapdoor, Facing: FacingNorth},
	TrapdoorOpenSouth: {Name: "trapdoor_open_south", Hardness: 5, Shape: ShapeTrapdoor, Facing: FacingSouth},
	TrapdoorOpenWest:  {Name: "trapdoor_open_west", Hardness: 5, Shape: ShapeTrapdoor, Facing: FacingWest},
	TrapdoorOpenEast:  {Name: "trapdoor_open_east", Hardness: 5, Shape: ShapeTrapdoor, Facing: FacingEast},

	Fence:     {Name: "fence", Hardness: 5, Shape: ShapeFence},
	GlassPane: {Name: "glass_pane", Hardness: 1, Transparent: true, Shape: ShapePane},
}
