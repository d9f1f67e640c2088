package config

// Presets are textbook open-loop systems, keyed by name.
var Presets = map[string]SystemConfig{
	"textbook": {
		Poles: []string{"0", "-2", "-4"},
		Zeros: []string{"-1"},
	},
	"two_pole": {
		Poles: []string{"0", "-1"},
	},
	"three_pole": {
		Poles: []string{"0", "-1", "-2"},
	},
	"complex_pair": {
		Poles: []string{"-1+1i", "-1-1i", "-3"},
	},
	"break_in": {
		Poles: []string{"0", "-1"},
		Zeros: []string{"-3", "-4"},
	},
	"lead_compensated": {
		Poles: []string{"0", "-2", "-10"},
		Zeros: []string{"-3"},
	},
	"oscillatory_plant": {
		Poles: []string{"-1+4i", "-1-4i", "-6"},
		Zeros: []string{"-3"},
	},
}

// GetPreset returns a default study for the named system, or nil.
func GetPreset(name string) *Config {
	sys, ok := Presets[name]
	if !ok {
		return nil
	}
	cfg := DefaultConfig()
	cfg.Name = name
	cfg.System = SystemConfig{
		Poles: append([]string(nil), sys.Poles...),
		Zeros: append([]string(nil), sys.Zeros...),
	}
	return cfg
}

// ListPresets returns the preset names in no particular order.
func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	return names
}
