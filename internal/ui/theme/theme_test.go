package theme

import (
	"reflect"
	"testing"
)

func restoreTheme(t *testing.T) {
	t.Helper()
	prev := CurrentName()
	t.Cleanup(func() { Set(prev) })
}

func TestAvailableIsSorted(t *testing.T) {
	want := []string{"dracula", "gruvbox", "nord", "tokyonight"}
	if got := Available(); !reflect.DeepEqual(got, want) {
		t.Fatalf("Available() = %v, want %v", got, want)
	}
}

func TestDefaultThemeIsFirstRegistered(t *testing.T) {
	restoreTheme(t)
	if CurrentName() == "" {
		t.Fatal("expected a current theme")
	}
	if Current().Name != CurrentName() {
		t.Fatalf("Current().Name = %q, CurrentName() = %q", Current().Name, CurrentName())
	}
}

func TestSet(t *testing.T) {
	restoreTheme(t)
	if !Set("nord") {
		t.Fatal("Set(nord) should succeed")
	}
	if Current().Name != "nord" {
		t.Fatalf("current theme = %q", Current().Name)
	}
	if Set("no-such-theme") {
		t.Fatal("unknown theme should be rejected")
	}
	if CurrentName() != "nord" {
		t.Fatal("failed Set must not change the current theme")
	}
}

func TestCycleWrapsAround(t *testing.T) {
	restoreTheme(t)
	names := Available()
	Set(names[len(names)-1])
	if got := Cycle(); got != names[0] {
		t.Fatalf("Cycle from last = %q, want %q", got, names[0])
	}
	if got := Cycle(); got != names[1] {
		t.Fatalf("second Cycle = %q, want %q", got, names[1])
	}
}

func TestPalettesDefineEveryRole(t *testing.T) {
	for _, name := range Available() {
		restoreTheme(t)
		Set(name)
		th := Current()
		v := reflect.ValueOf(th)
		for i := 0; i < v.NumField(); i++ {
			field := v.Type().Field(i)
			if field.Name == "Name" {
				continue
			}
			c := v.Field(i).Interface()
			if reflect.ValueOf(c).IsZero() {
				t.Errorf("theme %s leaves %s unset", name, field.Name)
			}
		}
	}
}
