package gen

// Biome classifies a world column's climate. It drives the terrain height
// curve, surface block choice, and feature density.
type Biome uint8

const (
	BiomePlains Biome = iota
	BiomeForest
	BiomeDesert
	BiomeMountains
	BiomeTundra
	BiomeOcean

	biomeCount
)

func (b Biome) String() string {
	switch b {
	case BiomePlains:
		return "plains"
	case BiomeForest:
		return "forest"
	case BiomeDesert:
		return "desert"
	case BiomeMountains:
		return "mountains"
	case BiomeTundra:
		return "tundra"
	case BiomeOcean:
		return "ocean"
	}
	return "unknown"
}

// Classifier selects biomes using temperature, humidity and a coarse
// biome noise field. Pure; generation and later feature queries must go
// through the same instance to agree on every column.
type Classifier struct {
	temp  *NoiseField
	humid *NoiseField
	biome *NoiseField
}

// NewClassifier creates a Classifier over a field bank.
func NewClassifier(bank *FieldBank) *Classifier {
	return &Classifier{
		temp:  bank.Temperature,
		humid: bank.Humidity,
		biome: bank.Biome,
	}
}

// At returns the biome at the given world column. Rules are ordered;
// the first match wins.
func (cl *Classifier) At(bx, bz int) Biome {
	t := cl.temp.Sample2D(float64(bx)*0.003, float64(bz)*0.003)
	h := cl.humid.Sample2D(float64(bx)*0.004, float64(bz)*0.004)
	n := cl.biome.Sample2D(float64(bx)*0.002, float64(bz)*0.002)

	switch {
	case t < -0.35:
		return BiomeTundra
	case t > 0.35 && h < -0.1:
		return BiomeDesert
	case h > 0.25:
		return BiomeForest
	case t > 0.1 && n > 0.3:
		return BiomeMountains
	case n < -0.5:
		return BiomeOcean
	default:
		return BiomePlains
	}
}
