package fonts

import (
	"testing"

	"github.com/piposter/piposter/pkg/errors"
)

func TestNames(t *testing.T) {
	names := Names()
	want := []string{"inter", "jetbrains-mono", "sans"}
	if len(names) != len(want) {
		t.Fatalf("Names() = %v, want %v", names, want)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Errorf("Names()[%d] = %s, want %s", i, names[i], want[i])
		}
	}
}

func TestIsPreset(t *testing.T) {
	tests := []struct {
		name string
		want bool
	}{
		{name: "inter", want: true},
		{name: "jetbrains-mono", want: true},
		{name: "sans", want: true},
		{name: "comic-sans", want: false},
		{name: "", want: false},
	}
	for _, tt := range tests {
		if got := IsPreset(tt.name); got != tt.want {
			t.Errorf("IsPreset(%q) = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestGetUnknown(t *testing.T) {
	_, err := Get("wingdings")
	if err == nil {
		t.Fatal("Get(wingdings) succeeded")
	}
	if !errors.Is(err, errors.ErrCodeInvalidFont) {
		t.Errorf("error code = %v, want INVALID_FONT", errors.GetCode(err))
	}
}

func TestDefaultIsKnown(t *testing.T) {
	if !IsPreset(Default) {
		t.Errorf("default preset %q is not registered", Default)
	}
}

func TestPresetFamilies(t *testing.T) {
	for _, name := range Names() {
		p, err := Get(name)
		if err != nil {
			t.Fatalf("Get(%s) error: %v", name, err)
		}
		if p.Family == "" {
			t.Errorf("preset %s has empty family", name)
		}
		if len(p.Candidates) == 0 {
			t.Errorf("preset %s has no candidates", name)
		}
	}
}
