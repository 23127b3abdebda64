package assets

import (
	"errors"
	"testing"
)

func TestLoadStyle(t *testing.T) {
	css, err := LoadStyle(DefaultStyleName)
	if err != nil {
		t.Fatalf("LoadStyle(%q): %v", DefaultStyleName, err)
	}
	if css == "" {
		t.Error("default style is empty")
	}
}

func TestLoadStyleUnknown(t *testing.T) {
	_, err := LoadStyle("nope")
	if !errors.Is(err, ErrStyleNotFound) {
		t.Errorf("error = %v, want ErrStyleNotFound", err)
	}
}

func TestStyleNames(t *testing.T) {
	names := StyleNames()
	found := false
	for _, name := range names {
		if name == DefaultStyleName {
			found = true
		}
	}
	if !found {
		t.Errorf("StyleNames() = %v, missing %q", names, DefaultStyleName)
	}
}
