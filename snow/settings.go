package snow

import "strings"

// Settings is the fully resolved configuration in force for an effect
type Settings struct {
	Speed       float64 `json:"speed"`       // Nominal fall rate
	Interaction float64 `json:"interaction"` // Pointer repulsion strength, 0 disables
	Count       int     `json:"count"`       // Initial particle count
	Size        float64 `json:"size"`        // Nominal glyph scale
	Opacity     float64 `json:"opacity"`     // Nominal opacity 0..1
	Color       string  `json:"color"`
	Wind        bool    `json:"wind"`
	WindSpeed   float64 `json:"windSpeed"`
	Twinkle     bool    `json:"twinkle"`
	Shape       string  `json:"shape"` // Glyph drawn for each flake
}

// DefaultSettings returns the base parameter set every resolution starts from
func DefaultSettings() Settings {
	return Settings{
		Speed:       5,
		Interaction: 15,
		Count:       50,
		Size:        1,
		Opacity:     0.8,
		Color:       "#ffffff",
		Wind:        false,
		WindSpeed:   1,
		Twinkle:     false,
		Shape:       "•",
	}
}

// Options is a partial Settings, nil fields are absent and leave the target untouched
type Options struct {
	Speed       *float64 `json:"speed,omitempty"`
	Interaction *float64 `json:"interaction,omitempty"`
	Count       *int     `json:"count,omitempty"`
	Size        *float64 `json:"size,omitempty"`
	Opacity     *float64 `json:"opacity,omitempty"`
	Color       *string  `json:"color,omitempty"`
	Wind        *bool    `json:"wind,omitempty"`
	WindSpeed   *float64 `json:"windSpeed,omitempty"`
	Twinkle     *bool    `json:"twinkle,omitempty"`
	Shape       *string  `json:"shape,omitempty"`
}

// Ptr returns a pointer to v, for building Options literals
func Ptr[T any](v T) *T {
	return &v
}

// Input is accepted wherever settings are supplied: either Options or a PresetName
type Input interface {
	overrides() Options
}

// PresetName selects a preset by name, case-insensitive
// An unknown name resolves to no overrides without signalling; UsePreset is the checked path
type PresetName string

func (p PresetName) overrides() Options {
	if s, ok := LookupPreset(string(p)); ok {
		return s.Options()
	}
	return Options{}
}

func (o Options) overrides() Options {
	return o
}

// Options returns s as a fully populated Options
func (s Settings) Options() Options {
	return Options{
		Speed:       Ptr(s.Speed),
		Interaction: Ptr(s.Interaction),
		Count:       Ptr(s.Count),
		Size:        Ptr(s.Size),
		Opacity:     Ptr(s.Opacity),
		Color:       Ptr(s.Color),
		Wind:        Ptr(s.Wind),
		WindSpeed:   Ptr(s.WindSpeed),
		Twinkle:     Ptr(s.Twinkle),
		Shape:       Ptr(s.Shape),
	}
}

// IsZero reports whether no field is set
func (o Options) IsZero() bool {
	return o == Options{}
}

// apply overlays every present field of o onto s
func (s *Settings) apply(o Options) {
	if o.Speed != nil {
		s.Speed = *o.Speed
	}
	if o.Interaction != nil {
		s.Interaction = *o.Interaction
	}
	if o.Count != nil {
		s.Count = *o.Count
	}
	if o.Size != nil {
		s.Size = *o.Size
	}
	if o.Opacity != nil {
		s.Opacity = *o.Opacity
	}
	if o.Color != nil {
		s.Color = *o.Color
	}
	if o.Wind != nil {
		s.Wind = *o.Wind
	}
	if o.WindSpeed != nil {
		s.WindSpeed = *o.WindSpeed
	}
	if o.Twinkle != nil {
		s.Twinkle = *o.Twinkle
	}
	if o.Shape != nil {
		s.Shape = *o.Shape
	}
}

// Merge returns a copy of o with every field present in next overriding it
func (o Options) Merge(next Options) Options {
	if next.Speed != nil {
		o.Speed = next.Speed
	}
	if next.Interaction != nil {
		o.Interaction = next.Interaction
	}
	if next.Count != nil {
		o.Count = next.Count
	}
	if next.Size != nil {
		o.Size = next.Size
	}
	if next.Opacity != nil {
		o.Opacity = next.Opacity
	}
	if next.Color != nil {
		o.Color = next.Color
	}
	if next.Wind != nil {
		o.Wind = next.Wind
	}
	if next.WindSpeed != nil {
		o.WindSpeed = next.WindSpeed
	}
	if next.Twinkle != nil {
		o.Twinkle = next.Twinkle
	}
	if next.Shape != nil {
		o.Shape = next.Shape
	}
	return o
}

// Resolve merges defaults with in, in winning per field; nil in yields the defaults
func Resolve(in Input) Settings {
	s := DefaultSettings()
	if in != nil {
		s.apply(in.overrides())
	}
	return s
}

// normalizeName folds preset names for lookup
func normalizeName(name string) string {
	return strings.ToLower(name)
}
