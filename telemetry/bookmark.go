package telemetry

import (
	"fmt"
	"log/slog"
	"math"

	"github.com/pthm-cable/logistic/config"
	"github.com/pthm-cable/logistic/population"
)

// BookmarkType identifies the type of bookmark.
type BookmarkType string

const (
	BookmarkExtinction      BookmarkType = "extinction"
	BookmarkCapacityReached BookmarkType = "capacity_reached"
	BookmarkOvershoot       BookmarkType = "overshoot"
	BookmarkCollapse        BookmarkType = "collapse"
)

// Bookmark marks the first step at which a notable condition held.
type Bookmark struct {
	Run         string       `csv:"run"`
	Type        BookmarkType `csv:"type"`
	Time        int          `csv:"time"`
	Population  float64      `csv:"population"`
	Description string       `csv:"description"`
}

// LogBookmark logs the bookmark using slog.
func (b Bookmark) LogBookmark() {
	slog.Info("bookmark",
		"run", b.Run,
		"type", string(b.Type),
		"time", b.Time,
		"population", b.Population,
		"description", b.Description,
	)
}

// BookmarkDetector watches a trajectory step by step. Each bookmark type
// fires at most once per detector.
type BookmarkDetector struct {
	capacity          float64
	capacityTolerance float64
	collapseDrop      float64

	// State tracking
	prev    float64
	started bool
	peak    float64
	fired   map[BookmarkType]bool
}

// NewBookmarkDetector creates a detector for a run with carrying capacity k.
// tolerance (>= 0) is relative to k; collapseDrop, in (0, 1], is the fraction
// lost from the running peak that counts as a collapse. The thresholds are
// used as given; config.Load rejects values outside those ranges.
func NewBookmarkDetector(k, tolerance, collapseDrop float64) *BookmarkDetector {
	return &BookmarkDetector{
		capacity:          k,
		capacityTolerance: tolerance,
		collapseDrop:      collapseDrop,
		fired:             make(map[BookmarkType]bool),
	}
}

// NewBookmarkDetectorFromConfig uses the thresholds of the global config.
func NewBookmarkDetectorFromConfig(k float64) *BookmarkDetector {
	tc := config.Cfg().Telemetry
	return NewBookmarkDetector(k, tc.CapacityTolerance, tc.CollapseDropFraction)
}

// Check analyzes the population at step t and returns any triggered bookmarks.
func (bd *BookmarkDetector) Check(t int, pop float64) []Bookmark {
	var bookmarks []Bookmark

	if b := bd.checkCapacityReached(t, pop); b != nil {
		bookmarks = append(bookmarks, *b)
	}
	if b := bd.checkOvershoot(t, pop); b != nil {
		bookmarks = append(bookmarks, *b)
	}
	if bd.started {
		if b := bd.checkCollapse(t, pop); b != nil {
			bookmarks = append(bookmarks, *b)
		}
		if b := bd.checkExtinction(t, pop); b != nil {
			bookmarks = append(bookmarks, *b)
		}
	}

	bd.prev = pop
	bd.started = true
	if pop > bd.peak {
		bd.peak = pop
	}

	return bookmarks
}

// Scan runs the detector over a whole trajectory.
func (bd *BookmarkDetector) Scan(tr population.Trajectory) []Bookmark {
	var out []Bookmark
	for _, p := range tr.Points() {
		out = append(out, bd.Check(p.Time, p.Population)...)
	}
	return out
}

func (bd *BookmarkDetector) fire(typ BookmarkType, t int, pop float64, desc string) *Bookmark {
	if bd.fired[typ] {
		return nil
	}
	bd.fired[typ] = true
	return &Bookmark{Type: typ, Time: t, Population: pop, Description: desc}
}

func (bd *BookmarkDetector) checkCapacityReached(t int, pop float64) *Bookmark {
	if math.Abs(pop-bd.capacity) > bd.capacityTolerance*bd.capacity {
		return nil
	}
	return bd.fire(BookmarkCapacityReached, t, pop,
		fmt.Sprintf("population %.2f within %.1f%% of carrying capacity %.2f", pop, bd.capacityTolerance*100, bd.capacity))
}

func (bd *BookmarkDetector) checkOvershoot(t int, pop float64) *Bookmark {
	if pop <= bd.capacity*(1+bd.capacityTolerance) {
		return nil
	}
	return bd.fire(BookmarkOvershoot, t, pop,
		fmt.Sprintf("population %.2f above carrying capacity %.2f", pop, bd.capacity))
}

func (bd *BookmarkDetector) checkCollapse(t int, pop float64) *Bookmark {
	if bd.peak <= 0 || pop >= bd.peak*(1-bd.collapseDrop) {
		return nil
	}
	return bd.fire(BookmarkCollapse, t, pop,
		fmt.Sprintf("population fell %.0f%% from peak %.2f", (1-pop/bd.peak)*100, bd.peak))
}

func (bd *BookmarkDetector) checkExtinction(t int, pop float64) *Bookmark {
	if pop != 0 || bd.prev <= 0 {
		return nil
	}
	return bd.fire(BookmarkExtinction, t, pop,
		fmt.Sprintf("population went extinct (was %.2f)", bd.prev))
}
