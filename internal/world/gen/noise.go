package gen

import opensimplex "github.com/ojrac/opensimplex-go"

// NoiseField wraps one seeded simplex noise instance. Output is a smooth
// pseudo-random scalar in roughly [-1, 1]; the same input always yields
// the same output for the lifetime of the field.
type NoiseField struct {
	noise opensimplex.Noise
}

// NewNoiseField creates a field from a seed.
func NewNoiseField(seed int64) *NoiseField {
	return &NoiseField{noise: opensimplex.New(seed)}
}

// Sample2D evaluates the field at a 2D point.
func (f *NoiseField) Sample2D(x, z float64) float64 {
	return f.noise.Eval2(x, z)
}

// Sample3D evaluates the field at a 3D point.
func (f *NoiseField) Sample3D(x, y, z float64) float64 {
	return f.noise.Eval3(x, y, z)
}

// Octave2D sums octaves of 2D noise with the given persistence,
// normalized back to [-1, 1].
func (f *NoiseField) Octave2D(x, z float64, octaves int, persistence float64) float64 {
	total := 0.0
	freq := 1.0
	amp := 1.0
	max := 0.0
	for i := 0; i < octaves; i++ {
		total += f.noise.Eval2(x*freq, z*freq) * amp
		max += amp
		amp *= persistence
		freq *= 2
	}
	return total / max
}

// Octave3D sums octaves of 3D noise, normalized to [-1, 1].
func (f *NoiseField) Octave3D(x, y, z float64, octaves int, persistence float64) float64 {
	total := 0.0
	freq := 1.0
	amp := 1.0
	max := 0.0
	for i := 0; i < octaves; i++ {
		total += f.noise.Eval3(x*freq, y*freq, z*freq) * amp
		max += amp
		amp *= persistence
		freq *= 2
	}
	return total / max
}

// FieldBank holds every noise field the generator samples. Each field
// gets its own seed offset so the fields stay independent while the
// whole bank derives from one world seed.
type FieldBank struct {
	Terrain     *NoiseField
	Trees       *NoiseField // shared by tree and structure density at different frequencies
	Biome       *NoiseField
	Temperature *NoiseField
	Humidity    *NoiseField
	Caves       *NoiseField // sampled at two frequencies for cave shapes
	Ores        *NoiseField
	Rivers      *NoiseField
	Lakes       *NoiseField
}

// NewFieldBank seeds all fields from a single world seed.
func NewFieldBank(seed int64) *FieldBank {
	return &FieldBank{
		Terrain:     NewNoiseField(seed),
		Trees:       NewNoiseField(seed + 1),
		Biome:       NewNoiseField(seed + 2),
		Temperature: NewNoiseField(seed + 3),
		Humidity:    NewNoiseField(seed + 4),
		Caves:       NewNoiseField(seed + 5),
		Ores:        NewNoiseField(seed + 6),
		Rivers:      NewNoiseField(seed + 7),
		Lakes:       NewNoiseField(seed + 8),
	}
}
