package signal

// NumComponents is the number of sinusoidal components in a Source.
const NumComponents = 3

// nyquistMargin is the fraction of Nyquist a component is clamped to when
// the sample rate drops below twice its frequency.
const nyquistMargin = 0.95

// Component is one sinusoid: Amplitude * sin(2*pi*Frequency*t + Phase).
type Component struct {
	Frequency float64 // Hz
	Amplitude float64
	Phase     float64 // radians
}

// ComponentIndex addresses one of the NumComponents components.
// Build it with NewComponentIndex; operations given an index outside
// [0, NumComponents) do nothing.
type ComponentIndex int

// NewComponentIndex validates i and reports whether it addresses a component.
func NewComponentIndex(i int) (ComponentIndex, bool) {
	idx := ComponentIndex(i)
	return idx, idx.Valid()
}

// Valid reports whether idx is in [0, NumComponents).
func (idx ComponentIndex) Valid() bool {
	return idx >= 0 && idx < NumComponents
}

// ComponentOption updates a single field of a Component.
type ComponentOption func(*Component)

// WithFrequency sets the component frequency in Hz.
func WithFrequency(hz float64) ComponentOption {
	return func(c *Component) { c.Frequency = hz }
}

// WithAmplitude sets the component amplitude.
func WithAmplitude(a float64) ComponentOption {
	return func(c *Component) { c.Amplitude = a }
}

// WithPhase sets the component phase in radians.
func WithPhase(rad float64) ComponentOption {
	return func(c *Component) { c.Phase = rad }
}

// defaultComponents are voice-range presets.
func defaultComponents() [NumComponents]Component {
	return [NumComponents]Component{
		{Frequency: 5, Amplitude: 1.0},
		{Frequency: 15, Amplitude: 0.7},
		{Frequency: 30, Amplitude: 0.5},
	}
}
