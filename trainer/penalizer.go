package trainer

import "math"

// Penalizer selects the monotonic decay applied to the smoothness
// strength as the distance between two endpoint features grows.
// Every penalizer equals 1 at zero distance and decreases toward 0.
type Penalizer int

const (
	// PenalizerExp is exp(−d²/(2λ²)) — the Gaussian kernel.
	PenalizerExp Penalizer = iota
	// PenalizerCharbonnier is 1/√(1+(d/λ)²) — heavy-tailed, gentle decay.
	PenalizerCharbonnier
	// PenalizerPeronaMalik is 1/(1+(d/λ)²) — the Perona–Malik diffusivity.
	PenalizerPeronaMalik
)

// Attenuate returns the decay factor for feature distance dist under
// scale lambda. lambda must be > 0 (validated by the calling model).
// Complexity: O(1).
func (p Penalizer) Attenuate(dist, lambda float64) float64 {
	r := dist / lambda
	switch p {
	case PenalizerCharbonnier:
		return 1 / math.Sqrt(1+r*r)
	case PenalizerPeronaMalik:
		return 1 / (1 + r*r)
	default:
		return math.Exp(-r * r / 2)
	}
}
