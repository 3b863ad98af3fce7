package termcap

import "testing"

func TestFromEnv(t *testing.T) {
	tests := []struct {
		value string
		want  bool
	}{
		{"truecolor", true},
		{"24bit", true},
		{"TRUECOLOR", true},
		{"xterm-truecolor", true},
		{"24-bit", false},
		{"256color", false},
		{"yes", false},
		{"", false},
	}
	for _, tt := range tests {
		t.Run("value "+tt.value, func(t *testing.T) {
			if got := FromEnv(tt.value).TrueColor; got != tt.want {
				t.Errorf("FromEnv(%q).TrueColor = %v, want %v", tt.value, got, tt.want)
			}
		})
	}
}

func TestDetectReadsFreshEachCall(t *testing.T) {
	t.Setenv(EnvVar, "truecolor")
	if !Detect().TrueColor {
		t.Fatal("truecolor not detected")
	}
	t.Setenv(EnvVar, "")
	if Detect().TrueColor {
		t.Fatal("stale capability after COLORTERM cleared")
	}
}
