package snow

// presetOrder fixes the listing order of the preset table
var presetOrder = []string{
	"winter",
	"blizzard",
	"frosty",
	"enchanted",
	"avalanche",
	"whisper",
	"snowdance",
	"northpole",
}

// presets is the immutable preset table; read through LookupPreset which returns copies
var presets = map[string]Settings{
	// Gentle winter snowfall
	"winter": {
		Speed: 4, Interaction: 10, Count: 60, Size: 0.8, Opacity: 0.7,
		Color: "#ffffff", Wind: false, WindSpeed: 0, Twinkle: true, Shape: "•",
	},
	// Heavy snowstorm
	"blizzard": {
		Speed: 15, Interaction: 5, Count: 200, Size: 1.2, Opacity: 0.9,
		Color: "#ffffff", Wind: true, WindSpeed: 3, Twinkle: false, Shape: "❄",
	},
	// Light playful snow
	"frosty": {
		Speed: 6, Interaction: 20, Count: 80, Size: 0.6, Opacity: 0.8,
		Color: "#e6f7ff", Wind: true, WindSpeed: 1.5, Twinkle: true, Shape: "❅",
	},
	// Fairy-tale sparkle
	"enchanted": {
		Speed: 3, Interaction: 25, Count: 100, Size: 1, Opacity: 0.9,
		Color: "#f0f8ff", Wind: false, WindSpeed: 0, Twinkle: true, Shape: "✦",
	},
	// Fast, intense snowfall
	"avalanche": {
		Speed: 18, Interaction: 2, Count: 150, Size: 1.5, Opacity: 0.95,
		Color: "#ffffff", Wind: true, WindSpeed: 4, Twinkle: false, Shape: "❆",
	},
	// Barely-there snow
	"whisper": {
		Speed: 2, Interaction: 15, Count: 40, Size: 0.5, Opacity: 0.4,
		Color: "#f8f8f8", Wind: false, WindSpeed: 0, Twinkle: true, Shape: "·",
	},
	// Swirling snowstorm
	"snowdance": {
		Speed: 8, Interaction: 30, Count: 120, Size: 1, Opacity: 0.8,
		Color: "#ffffff", Wind: true, WindSpeed: 2.5, Twinkle: false, Shape: "❉",
	},
	// Christmas-themed snow
	"northpole": {
		Speed: 5, Interaction: 15, Count: 90, Size: 1.1, Opacity: 0.85,
		Color: "#fffafa", Wind: true, WindSpeed: 1, Twinkle: true, Shape: "❄",
	},
}

// PresetNames returns the preset names in table order
func PresetNames() []string {
	names := make([]string, len(presetOrder))
	copy(names, presetOrder)
	return names
}

// LookupPreset returns the named preset, case-insensitive
func LookupPreset(name string) (Settings, bool) {
	s, ok := presets[normalizeName(name)]
	return s, ok
}
