// Package quiz implements the allocation engine: the workday is cut
// into a fixed number of hour slots, each painted with one task, and
// submission folds the painted slots into per-task hour totals.
package quiz

import (
	"math"

	"github.com/mrenard/pointage/internal/model"
)

// SlotCount is the number of hour slots in a workday.
const SlotCount = 8

// DragExtent describes the horizontal geometry of the painting
// surface, supplied by the presentation layer on layout changes. The
// engine is agnostic to the unit (pixels, terminal cells): a position
// normalized against the extent maps linearly onto the slots.
type DragExtent struct {
	// Origin is the leading offset of the surface.
	Origin int

	// Width is the total surface width. Zero disables painting until
	// the first layout event arrives.
	Width int
}

// Normalize maps an absolute position to [0,1) over the surface.
// Positions outside the surface yield values outside that range.
func (d DragExtent) Normalize(pos int) float64 {
	if d.Width <= 0 {
		return -1
	}
	return float64(pos-d.Origin) / float64(d.Width)
}

// Engine holds the mutable state of one in-progress quiz: the slot
// allocation, the armed task, and the painting surface geometry.
//
// Slots are keyed by task index, never by task id: configurations may
// reuse an id across tasks, and index keeping keeps those distinct
// until the aggregation boundary.
type Engine struct {
	tasks  []model.Task
	slots  [SlotCount]int
	active int
	extent DragExtent
}

// NewEngine creates an engine for the given configuration and seeds
// the default allocation from the tasks' percent declarations. It
// refuses an empty task set.
func NewEngine(cfg *model.Config) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	e := &Engine{tasks: cfg.Tasks}
	e.seed()
	return e, nil
}

// seed pre-fills the slots: each task with a percent claims
// round(percent*SlotCount) slots left to right, in configuration
// order, truncated at the slot bound. Unclaimed slots stay on task 0,
// conventionally the "not worked" task.
func (e *Engine) seed() {
	next := 0
	for index, t := range e.tasks {
		if t.Percent <= 0 {
			continue
		}
		n := int(math.Round(t.Percent * SlotCount))
		for i := 0; i < n && next < SlotCount; i++ {
			e.slots[next] = index
			next++
		}
	}
}

// Tasks returns the configured tasks in display order.
func (e *Engine) Tasks() []model.Task {
	return e.tasks
}

// Slots returns a copy of the current slot allocation.
func (e *Engine) Slots() [SlotCount]int {
	return e.slots
}

// ActiveTask returns the index of the task currently armed for
// painting.
func (e *Engine) ActiveTask() int {
	return e.active
}

// SelectTask arms the given task for painting. Out-of-range indices
// are ignored.
func (e *Engine) SelectTask(index int) {
	if index >= 0 && index < len(e.tasks) {
		e.active = index
	}
}

// SetExtent records the painting surface geometry.
func (e *Engine) SetExtent(extent DragExtent) {
	e.extent = extent
}

// Paint handles one movement sample at an absolute position over the
// painting surface, assigning the armed task to the slot under it.
// Samples outside the surface are ignored; repeated samples over the
// same slot are no-ops, and repainting with another task later simply
// overwrites (last write wins).
func (e *Engine) Paint(pos int) {
	e.PaintNormalized(e.extent.Normalize(pos))
}

// PaintNormalized paints the slot under a position already normalized
// to [0,1) over the surface.
func (e *Engine) PaintNormalized(pos float64) {
	index := int(math.Floor(pos * SlotCount))
	if index >= 0 && index < SlotCount {
		e.slots[index] = e.active
	}
}

// PaintSlot paints one slot directly with the armed task, for discrete
// (keyboard) input paths.
func (e *Engine) PaintSlot(index int) {
	if index >= 0 && index < SlotCount {
		e.slots[index] = e.active
	}
}

// Result folds the slots into the final per-task totals for the given
// day: one entry per task with at least one slot, hours equal to its
// slot count, in task-configuration order.
func (e *Engine) Result(date model.QuizzDate) model.TimeResult {
	var times []model.Time
	for index, t := range e.tasks {
		count := 0
		for _, s := range e.slots {
			if s == index {
				count++
			}
		}
		if count > 0 {
			times = append(times, model.Time{ID: t.ID, Title: t.Title, Time: count})
		}
	}
	return model.TimeResult{Date: date, Times: times}
}
