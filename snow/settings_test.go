package snow

import (
	"reflect"
	"testing"
)

// TestResolve verifies merge order and preset substitution
func TestResolve(t *testing.T) {
	blizzard, _ := LookupPreset("blizzard")

	withSpeed := DefaultSettings()
	withSpeed.Speed = 9

	withWind := DefaultSettings()
	withWind.Wind = true
	withWind.Shape = "*"

	tests := []struct {
		name string
		in   Input
		want Settings
	}{
		{"nil input", nil, DefaultSettings()},
		{"empty options", Options{}, DefaultSettings()},
		{"preset name", PresetName("blizzard"), blizzard},
		{"preset name mixed case", PresetName("BlIzZaRd"), blizzard},
		{"unknown preset falls back silently", PresetName("sunshine"), DefaultSettings()},
		{"single override", Options{Speed: Ptr(9.0)}, withSpeed},
		{"two overrides", Options{Wind: Ptr(true), Shape: Ptr("*")}, withWind},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Resolve(tt.in)
			if got != tt.want {
				t.Errorf("Resolve() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

// TestResolveAlwaysPopulated verifies fields absent from the input keep their default values
func TestResolveAlwaysPopulated(t *testing.T) {
	inputs := []Input{
		nil,
		Options{},
		Options{Count: Ptr(3)},
		Options{Color: Ptr("#000000"), Twinkle: Ptr(true)},
		PresetName("whisper"),
		PresetName("nope"),
	}

	for i, in := range inputs {
		s := Resolve(in)
		if s.Speed <= 0 || s.Size <= 0 || s.Opacity <= 0 || s.Count <= 0 {
			t.Errorf("input %d: numeric field left empty: %+v", i, s)
		}
		if s.Color == "" || s.Shape == "" {
			t.Errorf("input %d: string field left empty: %+v", i, s)
		}
	}
}

// TestResolveDoesNotMutateDefaults verifies resolution works on copies
func TestResolveDoesNotMutateDefaults(t *testing.T) {
	_ = Resolve(Options{Speed: Ptr(100.0)})
	if DefaultSettings().Speed != 5 {
		t.Error("Defaults mutated by Resolve")
	}
}

// TestOptionsRoundTrip verifies Settings.Options sets every field
func TestOptionsRoundTrip(t *testing.T) {
	s, _ := LookupPreset("frosty")
	o := s.Options()

	v := reflect.ValueOf(o)
	for i := 0; i < v.NumField(); i++ {
		if v.Field(i).IsNil() {
			t.Errorf("Field %s not set", v.Type().Field(i).Name)
		}
	}

	var target Settings
	target.apply(o)
	if target != s {
		t.Errorf("apply(Options()) = %+v, want %+v", target, s)
	}
}

// TestOptionsMerge verifies later fields win and absent ones are kept
func TestOptionsMerge(t *testing.T) {
	base := Options{Speed: Ptr(1.0), Shape: Ptr("a")}
	merged := base.Merge(Options{Speed: Ptr(2.0), Wind: Ptr(true)})

	if *merged.Speed != 2.0 {
		t.Errorf("Expected speed 2.0, got %v", *merged.Speed)
	}
	if *merged.Shape != "a" {
		t.Errorf("Expected shape kept, got %q", *merged.Shape)
	}
	if merged.Wind == nil || !*merged.Wind {
		t.Error("Expected wind set")
	}
	if *base.Speed != 1.0 {
		t.Error("Merge mutated receiver")
	}
	if !(Options{}).IsZero() || merged.IsZero() {
		t.Error("IsZero misreports")
	}
}

// TestPresetTable verifies the table is complete and ordered
func TestPresetTable(t *testing.T) {
	want := []string{"winter", "blizzard", "frosty", "enchanted", "avalanche", "whisper", "snowdance", "northpole"}
	names := PresetNames()
	if !reflect.DeepEqual(names, want) {
		t.Fatalf("PresetNames() = %v, want %v", names, want)
	}

	for _, name := range names {
		s, ok := LookupPreset(name)
		if !ok {
			t.Errorf("Preset %q missing", name)
			continue
		}
		if s.Speed <= 0 || s.Count <= 0 || s.Size <= 0 || s.Opacity <= 0 || s.Color == "" || s.Shape == "" {
			t.Errorf("Preset %q incomplete: %+v", name, s)
		}
	}

	// Returned names and settings are copies
	names[0] = "mutated"
	if PresetNames()[0] != "winter" {
		t.Error("PresetNames exposed internal slice")
	}
	s, _ := LookupPreset("winter")
	s.Speed = 999
	if again, _ := LookupPreset("WINTER"); again.Speed != 4 {
		t.Error("LookupPreset exposed internal entry")
	}
}

// TestPresetValues spot-checks table entries
func TestPresetValues(t *testing.T) {
	tests := []struct {
		name  string
		shape string
		count int
		wind  bool
	}{
		{"winter", "•", 60, false},
		{"blizzard", "❄", 200, true},
		{"avalanche", "❆", 150, true},
		{"whisper", "·", 40, false},
	}

	for _, tt := range tests {
		s, _ := LookupPreset(tt.name)
		if s.Shape != tt.shape || s.Count != tt.count || s.Wind != tt.wind {
			t.Errorf("%s: got shape=%q count=%d wind=%v", tt.name, s.Shape, s.Count, s.Wind)
		}
	}
}
