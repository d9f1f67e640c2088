package analysis

import (
	"errors"
	"math"
	"testing"

	"github.com/san-kum/rlocus/internal/config"
	"github.com/san-kum/rlocus/internal/locus"
)

func runPreset(t *testing.T, name string, resolution int) *Report {
	t.Helper()
	cfg := config.GetPreset(name)
	if cfg == nil {
		t.Fatalf("unknown preset %s", name)
	}
	cfg.Scan.Resolution = resolution
	set, err := cfg.PoleZeroSet()
	if err != nil {
		t.Fatalf("preset %s does not parse: %v", name, err)
	}
	report, err := Run(cfg.Name, set, OptionsFrom(cfg))
	if err != nil {
		t.Fatalf("Run(%s) error: %v", name, err)
	}
	return report
}

func TestRun_Textbook(t *testing.T) {
	r := runPreset(t, "textbook", 100)

	if r.Centroid == nil || r.Centroid.Re != -2.5 || r.Centroid.Im != 0 {
		t.Errorf("centroid = %v, want -2.5", r.Centroid)
	}
	if len(r.Asymptotes) != 2 || math.Abs(r.Asymptotes[0]-90) > 1e-9 || math.Abs(r.Asymptotes[1]-270) > 1e-9 {
		t.Errorf("asymptotes = %v, want [90 270]", r.Asymptotes)
	}
	if len(r.Segments) != 2 {
		t.Errorf("segments = %v, want two", r.Segments)
	}
	if len(r.Breakaway) != 1 || math.Abs(r.Breakaway[0]+2.91082) > 1e-4 {
		t.Errorf("breakaway = %v, want [-2.91082]", r.Breakaway)
	}
	if r.Probes[locus.ProbeFound] != 1 {
		t.Errorf("probe counts = %v, want one found", r.Probes)
	}
	if len(r.Departures) != 0 || len(r.Arrivals) != 0 {
		t.Errorf("real poles and zeros have no departure/arrival entries: %v %v", r.Departures, r.Arrivals)
	}
	if len(r.Locus) == 0 {
		t.Error("expected locus samples")
	}
	if len(r.Poles) != 3 || len(r.Zeros) != 1 {
		t.Errorf("poles/zeros = %v / %v", r.Poles, r.Zeros)
	}
}

func TestRun_ComplexPair(t *testing.T) {
	r := runPreset(t, "complex_pair", 60)

	if len(r.Departures) != 2 {
		t.Fatalf("departures = %v, want two", r.Departures)
	}
	if math.Abs(r.Departures[0].Degrees-63.43494882) > 1e-6 {
		t.Errorf("departure at %v = %v°, want 63.435°", r.Departures[0].At, r.Departures[0].Degrees)
	}
	if math.Abs(r.Departures[0].Degrees+r.Departures[1].Degrees) > 1e-9 {
		t.Errorf("conjugate departures should mirror: %v", r.Departures)
	}
}

func TestRun_DegenerateHasNoAsymptotes(t *testing.T) {
	set := locus.New([]complex128{-1, -2}, []complex128{-3, -4})
	cfg := config.DefaultConfig()
	cfg.Scan.Resolution = 30

	r, err := Run("balanced", set, OptionsFrom(cfg))
	if err != nil {
		t.Fatalf("Run() error: %v", err)
	}
	if r.Centroid != nil || len(r.Asymptotes) != 0 {
		t.Errorf("n == m must not report asymptotes: %v %v", r.Centroid, r.Asymptotes)
	}
}

func TestRun_InvalidOptions(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Breakaway.Samples = 1
	set, _ := cfg.PoleZeroSet()

	if _, err := Run("bad", set, OptionsFrom(cfg)); !errors.Is(err, locus.ErrInvalidArgument) {
		t.Errorf("Run() error = %v, want ErrInvalidArgument", err)
	}
}

func TestGainProfile(t *testing.T) {
	set := locus.New([]complex128{0, -1}, nil)
	profile, err := GainProfile(set, locus.Interval{Min: -2, Max: 1}, 7)
	if err != nil {
		t.Fatalf("GainProfile() error: %v", err)
	}
	if len(profile) != 7 {
		t.Fatalf("expected 7 points, got %d", len(profile))
	}

	// K(σ) = -σ(σ+1): zero at both poles, peak 0.25 at the breakaway point.
	byS := map[float64]ProfilePoint{}
	for _, p := range profile {
		byS[p.Sigma] = p
	}
	if p := byS[-0.5]; p.Err != nil || math.Abs(p.Gain-0.25) > 1e-12 || !p.OnLocus {
		t.Errorf("profile at -0.5 = %+v", p)
	}
	if p := byS[0]; !errors.Is(p.Err, locus.ErrPoleCollision) {
		t.Errorf("profile at the pole should carry ErrPoleCollision, got %+v", p)
	}
	if p := byS[1]; p.OnLocus || p.Gain >= 0 {
		t.Errorf("profile at 1 = %+v, want negative gain off the locus", p)
	}

	if _, err := GainProfile(set, locus.Interval{Min: 1, Max: -1}, 10); !errors.Is(err, locus.ErrInvalidArgument) {
		t.Errorf("GainProfile() with reversed span: %v", err)
	}
}
