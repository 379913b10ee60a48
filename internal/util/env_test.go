package util

import "testing"

func TestParseBoolEnv(t *testing.T) {
	cases := []struct {
		value string
		def   bool
		want  bool
	}{
		{"true", false, true},
		{"1", false, true},
		{"YES", false, true},
		{"on", false, true},
		{"false", true, false},
		{"0", true, false},
		{"No", true, false},
		{"off", true, false},
		{"definitely", false, false},
		{"definitely", true, true},
	}
	for _, tc := range cases {
		t.Setenv("SUNSHINE_TEST_BOOL", tc.value)
		if got := ParseBoolEnv("SUNSHINE_TEST_BOOL", tc.def); got != tc.want {
			t.Errorf("ParseBoolEnv(%q, %v) = %v, want %v", tc.value, tc.def, got, tc.want)
		}
	}
}

func TestParseBoolEnvUnset(t *testing.T) {
	if got := ParseBoolEnv("SUNSHINE_TEST_BOOL_MISSING", true); !got {
		t.Error("unset variable should return the default")
	}
}
