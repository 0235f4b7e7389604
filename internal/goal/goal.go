// Package goal tracks progress toward a word-count goal.
package goal

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/verte-zerg/wordlens/internal/model"
)

// Default is the goal used when none is configured.
const Default = 250

// nearThreshold is the percentage from which a goal counts as nearly met.
const nearThreshold = 75.0

// Presets are the goals offered by the editor, in cycling order.
var Presets = []Preset{
	{Name: "Short Article", Words: 250},
	{Name: "Blog Post", Words: 500},
	{Name: "Long Article", Words: 1000},
	{Name: "Essay", Words: 2000},
}

// Preset is a named word-count goal.
type Preset struct {
	Name  string
	Words int
}

// ErrInvalidGoal is returned for goals that are not positive integers.
var ErrInvalidGoal = errors.New("goal must be a positive whole number")

// Parse reads a custom goal.
func Parse(value string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil || n <= 0 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidGoal, value)
	}
	return n, nil
}

// Next returns the preset following current. Goals that are not presets
// move to the first preset.
func Next(current int) int {
	for i, p := range Presets {
		if p.Words == current {
			return Presets[(i+1)%len(Presets)].Words
		}
	}
	return Presets[0].Words
}

// Name returns the preset name for words, or "Custom Goal".
func Name(words int) string {
	for _, p := range Presets {
		if p.Words == words {
			return p.Name
		}
	}
	return "Custom Goal"
}

// Progress computes how far words is from goal. Percent is capped at 100.
func Progress(words, goal int) model.GoalProgress {
	if goal <= 0 {
		goal = Default
	}
	percent := math.Min(float64(words)/float64(goal)*100, 100)
	level := model.GoalStarted
	switch {
	case percent >= 100:
		level = model.GoalDone
	case percent >= nearThreshold:
		level = model.GoalNear
	}
	return model.GoalProgress{Words: words, Goal: goal, Percent: percent, Level: level}
}

// Describe renders progress as "<words> / <goal> words (<pct>%)".
func Describe(p model.GoalProgress) string {
	return fmt.Sprintf("%d / %d words (%d%%)", p.Words, p.Goal, int(math.Floor(p.Percent+0.5)))
}
