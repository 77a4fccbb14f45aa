package pipeline

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/piposter/piposter/pkg/cache"
	"github.com/piposter/piposter/pkg/config"
)

// smallConfig keeps digit counts low so runs finish fast.
func smallConfig() config.Config {
	cfg := config.Default()
	cfg.Page.WidthMM = 60
	cfg.Page.HeightMM = 90
	cfg.Page.DPI = 50
	cfg.Page.BottomFadeCM = 0
	cfg.Grid.Cols = 6
	cfg.Grid.Rows = 8
	cfg.Grid.PerspectiveRows = 2
	cfg.Grid.PerspectiveStartOffset = 1
	cfg.Grid.MinRowHeight = 2
	cfg.Labels.Draw = false
	return cfg
}

func TestExecuteSVG(t *testing.T) {
	r := NewRunner(nil, nil)
	res, err := r.Execute(context.Background(), Options{Config: smallConfig()})
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}

	if res.RunID == "" {
		t.Error("empty run ID")
	}
	if res.Stats.CellCount == 0 || res.Stats.CellCount != len(res.Cells) {
		t.Errorf("cell count %d, cells %d", res.Stats.CellCount, len(res.Cells))
	}
	if res.Stats.DigitCount != res.Stats.CellCount {
		t.Errorf("digit count %d, want %d", res.Stats.DigitCount, res.Stats.CellCount)
	}

	svg, ok := res.Artifacts[FormatSVG]
	if !ok {
		t.Fatal("no svg artifact")
	}
	if !strings.HasPrefix(string(svg), "<svg") {
		t.Error("artifact is not SVG")
	}
}

func TestExecuteDeterministicSVG(t *testing.T) {
	r := NewRunner(nil, nil)
	opts := Options{Config: smallConfig()}

	a, err := r.Execute(context.Background(), opts)
	if err != nil {
		t.Fatalf("first run: %v", err)
	}
	b, err := r.Execute(context.Background(), Options{Config: smallConfig()})
	if err != nil {
		t.Fatalf("second run: %v", err)
	}
	if !bytes.Equal(a.Artifacts[FormatSVG], b.Artifacts[FormatSVG]) {
		t.Error("identical options produced different SVG")
	}
}

func TestExecuteDigitCache(t *testing.T) {
	fc, err := cache.NewFileCache(t.TempDir())
	if err != nil {
		t.Fatalf("file cache: %v", err)
	}
	r := NewRunner(fc, nil)
	defer r.Close()

	first, err := r.Execute(context.Background(), Options{Config: smallConfig()})
	if err != nil {
		t.Fatalf("first run: %v", err)
	}
	if first.CacheInfo.DigitsHit {
		t.Error("first run reported a cache hit")
	}

	second, err := r.Execute(context.Background(), Options{Config: smallConfig()})
	if err != nil {
		t.Fatalf("second run: %v", err)
	}
	if !second.CacheInfo.DigitsHit {
		t.Error("second run missed the digit cache")
	}

	// Refresh bypasses the cache.
	third, err := r.Execute(context.Background(), Options{Config: smallConfig(), Refresh: true})
	if err != nil {
		t.Fatalf("refresh run: %v", err)
	}
	if third.CacheInfo.DigitsHit {
		t.Error("refresh run reported a cache hit")
	}
}

func TestDigitsLeadingDigits(t *testing.T) {
	r := NewRunner(nil, nil)
	digits, err := r.Digits(context.Background(), 5)
	if err != nil {
		t.Fatalf("Digits: %v", err)
	}
	if !bytes.Equal(digits, []byte{1, 4, 1, 5, 9}) {
		t.Errorf("digits = %v, want 1 4 1 5 9", digits)
	}
}

func TestDigitsRejectsNonPositive(t *testing.T) {
	r := NewRunner(nil, nil)
	if _, err := r.Digits(context.Background(), 0); err == nil {
		t.Error("zero count accepted")
	}
	if _, err := r.Digits(context.Background(), -3); err == nil {
		t.Error("negative count accepted")
	}
}
