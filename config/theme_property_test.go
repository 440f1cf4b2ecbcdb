package config

import (
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"testing/quick"
	"time"
)

// generateRandomHexColor generates a random "#RRGGBB" string in mixed case.
func generateRandomHexColor(r *rand.Rand) string {
	const digits = "0123456789abcdefABCDEF"
	b := make([]byte, 6)
	for i := range b {
		b[i] = digits[r.Intn(len(digits))]
	}
	return "#" + string(b)
}

// Feature: theme-config, Property 2: Theme colour round-trip
func TestProperty2_ThemeColorRoundTrip(t *testing.T) {
	dir := t.TempDir()
	cfg := &quick.Config{
		MaxCount: 100,
		Rand:     rand.New(rand.NewSource(time.Now().UnixNano())),
	}

	f := func(seed int64) bool {
		r := rand.New(rand.NewSource(seed))
		primary := generateRandomHexColor(r)
		secondary := generateRandomHexColor(r)

		path := filepath.Join(dir, fmt.Sprintf("theme_%d.yaml", seed))
		body := fmt.Sprintf("primary_color: %q\nsecondary_color: %q\n", primary, secondary)
		if err := os.WriteFile(path, []byte(body), 0644); err != nil {
			t.Logf("seed=%d: write failed: %v", seed, err)
			return false
		}

		theme, err := LoadTheme(path)
		if err != nil {
			t.Logf("seed=%d: load failed: %v", seed, err)
			return false
		}

		// Property: colours survive the YAML overlay unchanged
		if theme.PrimaryColor != primary || theme.SecondaryColor != secondary {
			t.Logf("seed=%d: colour mismatch: got %q/%q, want %q/%q",
				seed, theme.PrimaryColor, theme.SecondaryColor, primary, secondary)
			return false
		}

		// Property: fields the file does not name keep their defaults
		if theme.TextColor != DefaultTextColor || theme.MaxFallbackRows != DefaultTheme().MaxFallbackRows {
			t.Logf("seed=%d: defaults lost", seed)
			return false
		}
		return true
	}

	if err := quick.Check(f, cfg); err != nil {
		t.Errorf("Property 2 (Theme colour round-trip) failed: %v", err)
	}
}

// Feature: theme-config, Property 3: Non-hex colours are rejected
func TestProperty3_ThemeRejectsMalformedColor(t *testing.T) {
	cfg := &quick.Config{MaxCount: 100}

	f := func(s string) bool {
		if hexColor.MatchString(s) {
			return true
		}
		theme := DefaultTheme()
		theme.PrimaryColor = s
		err := theme.Validate()
		return err != nil && strings.Contains(err.Error(), "primary_color")
	}

	if err := quick.Check(f, cfg); err != nil {
		t.Errorf("Property 3 (malformed colours rejected) failed: %v", err)
	}
}
