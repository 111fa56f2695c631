package telemetry

import (
	"testing"

	"github.com/pthm-cable/logistic/config"
	"github.com/pthm-cable/logistic/population"
)

func init() {
	config.MustInit("")
}

func findBookmark(bookmarks []Bookmark, typ BookmarkType) (Bookmark, bool) {
	for _, b := range bookmarks {
		if b.Type == typ {
			return b, true
		}
	}
	return Bookmark{}, false
}

func TestBookmarkDetector_CapacityReached(t *testing.T) {
	tr := run(t, population.Params{InitialPopulation: 10, CarryingCapacity: 100, GrowthRate: 0.9, TimeSteps: 60})
	bookmarks := NewBookmarkDetectorFromConfig(100).Scan(tr)

	b, ok := findBookmark(bookmarks, BookmarkCapacityReached)
	if !ok {
		t.Fatal("expected capacity_reached bookmark")
	}
	if b.Time == 0 || b.Population < 99 {
		t.Errorf("capacity_reached at t=%d pop=%v", b.Time, b.Population)
	}
	if _, ok := findBookmark(bookmarks, BookmarkExtinction); ok {
		t.Error("unexpected extinction bookmark")
	}
}

func TestBookmarkDetector_Overshoot(t *testing.T) {
	// r = 1.8 oscillates around K before settling.
	tr := run(t, population.Params{InitialPopulation: 60, CarryingCapacity: 100, GrowthRate: 1.8, TimeSteps: 10})
	if _, ok := findBookmark(NewBookmarkDetector(100, 0.01, 0.5).Scan(tr), BookmarkOvershoot); !ok {
		t.Error("expected overshoot bookmark")
	}
}

func TestBookmarkDetector_ExtinctionAndCollapse(t *testing.T) {
	tr := run(t, population.Params{
		InitialPopulation: 20, CarryingCapacity: 100, GrowthRate: 0.1,
		TimeSteps: 10, Policy: population.HarvestConstant, HarvestAmount: 15,
	})
	bookmarks := NewBookmarkDetector(100, 0.01, 0.5).Scan(tr)

	ext, ok := findBookmark(bookmarks, BookmarkExtinction)
	if !ok {
		t.Fatal("expected extinction bookmark")
	}
	if ext.Time != 2 {
		t.Errorf("extinction at t=%d, want 2", ext.Time)
	}
	col, ok := findBookmark(bookmarks, BookmarkCollapse)
	if !ok {
		t.Fatal("expected collapse bookmark")
	}
	if col.Time != 1 {
		t.Errorf("collapse at t=%d, want 1", col.Time)
	}
}

func TestBookmarkDetector_FiresOnce(t *testing.T) {
	bd := NewBookmarkDetector(100, 0.01, 0.5)
	total := 0
	for i := 0; i < 10; i++ {
		total += len(bd.Check(i, 100))
	}
	if total != 1 {
		t.Errorf("got %d bookmarks at steady capacity, want 1", total)
	}
}

func TestBookmarkDetector_ZeroStartIsNotExtinction(t *testing.T) {
	tr := run(t, population.Params{InitialPopulation: 0, CarryingCapacity: 100, GrowthRate: 0.5, TimeSteps: 5})
	if _, ok := findBookmark(NewBookmarkDetector(100, 0.01, 0.5).Scan(tr), BookmarkExtinction); ok {
		t.Error("population that starts at zero should not produce an extinction bookmark")
	}
}

func TestBookmarkDetector_CollapseDropIsUsedAsGiven(t *testing.T) {
	bd := NewBookmarkDetector(100, 0.01, 0.9)
	bd.Check(0, 50)
	// An 80% drop stays under the 90% threshold.
	if _, ok := findBookmark(bd.Check(1, 10), BookmarkCollapse); ok {
		t.Fatal("collapse fired below the configured drop fraction")
	}
	b, ok := findBookmark(bd.Check(2, 4), BookmarkCollapse)
	if !ok {
		t.Fatal("expected collapse once the drop exceeds 90%")
	}
	if b.Time != 2 {
		t.Errorf("collapse at t=%d, want 2", b.Time)
	}
}

func TestBookmarkDetector_FromConfigUsesCollapseDropFraction(t *testing.T) {
	cfg := config.Cfg()
	saved := cfg.Telemetry.CollapseDropFraction
	cfg.Telemetry.CollapseDropFraction = 0.9
	defer func() { cfg.Telemetry.CollapseDropFraction = saved }()

	bd := NewBookmarkDetectorFromConfig(100)
	bd.Check(0, 50)
	if _, ok := findBookmark(bd.Check(1, 10), BookmarkCollapse); ok {
		t.Error("collapse fired with the default fraction instead of the configured one")
	}
}
