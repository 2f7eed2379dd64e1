package ballet

import "testing"

func TestFromEnvDefaults(t *testing.T) {
	t.Setenv("MIN_DANCE_RADIUS_MM", "")
	t.Setenv("MAX_DANCE_RADIUS_MM", "")
	t.Setenv("DEFAULT_CENTER_X", "")
	t.Setenv("DEFAULT_CENTER_Y", "")

	cfg := FromEnv()
	if cfg.MinRadiusMM != DefaultMinRadiusMM || cfg.MaxRadiusMM != DefaultMaxRadiusMM {
		t.Errorf("got clamp [%g, %g], want [%d, %d]",
			cfg.MinRadiusMM, cfg.MaxRadiusMM, DefaultMinRadiusMM, DefaultMaxRadiusMM)
	}
	if cfg.DefaultCenter != nil {
		t.Errorf("got default center %+v, want none", cfg.DefaultCenter)
	}
}

func TestFromEnvOverrides(t *testing.T) {
	t.Setenv("MIN_DANCE_RADIUS_MM", "300")
	t.Setenv("MAX_DANCE_RADIUS_MM", "1000")
	t.Setenv("DEFAULT_CENTER_X", "5000")
	t.Setenv("DEFAULT_CENTER_Y", "6000")

	cfg := FromEnv()
	if cfg.MinRadiusMM != 300 || cfg.MaxRadiusMM != 1000 {
		t.Errorf("got clamp [%g, %g], want [300, 1000]", cfg.MinRadiusMM, cfg.MaxRadiusMM)
	}
	if cfg.DefaultCenter == nil || *cfg.DefaultCenter != (Point{X: 5000, Y: 6000}) {
		t.Errorf("got default center %+v, want (5000, 6000)", cfg.DefaultCenter)
	}
}

func TestClampRadius(t *testing.T) {
	cfg := testConfig()
	tests := []struct {
		in      float64
		want    float64
		clamped bool
	}{
		{-100, 200, true},
		{0, 200, true},
		{100, 200, true},
		{500, 500, false},
		{1500, 1200, true},
	}
	for _, tt := range tests {
		got, clamped := cfg.ClampRadius(tt.in)
		if got != tt.want || clamped != tt.clamped {
			t.Errorf("ClampRadius(%g) = (%g, %v), want (%g, %v)",
				tt.in, got, clamped, tt.want, tt.clamped)
		}
	}
}
