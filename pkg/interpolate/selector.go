package interpolate

import (
	"cmp"
	"fmt"
	"slices"

	"github.com/yorrLorenz/eggprice/pkg/core"
)

// Selector picks the n observations of a series nearest to target,
// returned sorted by ascending coordinate.
type Selector func(series *core.Series, target float64, n int) (core.Selection, error)

const (
	SelectorExpand = "expand"
	SelectorWindow = "window"
)

var selectors = map[string]Selector{
	SelectorExpand: Select,
	SelectorWindow: SelectWindow,
}

// SelectorByName returns the selector registered under name.
// An empty name resolves to the canonical expand selector.
func SelectorByName(name string) (Selector, error) {
	if name == "" {
		return Select, nil
	}

	selector, ok := selectors[name]
	if !ok {
		return nil, fmt.Errorf("unknown selector %q", name)
	}
	return selector, nil
}

// Select picks points by symmetric expansion around the insertion position of target.
// On equal distances the left (earlier) neighbour wins. Once a cursor leaves the
// series, the remaining points come from the other side.
func Select(series *core.Series, target float64, n int) (core.Selection, error) {
	if err := validateCount(series, n); err != nil {
		return nil, err
	}

	size := series.Size()
	pos := series.Search(target)
	left, right := pos-1, pos

	selection := make(core.Selection, 0, n)
	for len(selection) < n {
		var next int
		switch {
		case left < 1:
			next, right = right, right+1
		case right > size:
			next, left = left, left-1
		default:
			l, _ := series.At(left)
			r, _ := series.At(right)
			if core.Distance(l.X, target) <= core.Distance(r.X, target) {
				next, left = left, left-1
			} else {
				next, right = right, right+1
			}
		}

		observation, err := series.At(next)
		if err != nil {
			return nil, err
		}
		selection = append(selection, observation)
	}

	slices.SortFunc(selection, byCoordinate)
	return selection, nil
}

// SelectWindow takes the 2n observations around the insertion position of target,
// keeps the n nearest (stable on ties, so the earlier point wins) and sorts them
// by coordinate.
func SelectWindow(series *core.Series, target float64, n int) (core.Selection, error) {
	if err := validateCount(series, n); err != nil {
		return nil, err
	}

	observations := series.Observations()
	pos := series.Search(target) - 1
	lo := max(0, pos-n)
	hi := min(len(observations), pos+n)

	candidates := slices.Clone(observations[lo:hi])
	slices.SortStableFunc(candidates, func(a, b core.Observation) int {
		return cmp.Compare(core.Distance(a.X, target), core.Distance(b.X, target))
	})

	selection := core.Selection(candidates[:n])
	slices.SortFunc(selection, byCoordinate)
	return selection, nil
}

func validateCount(series *core.Series, n int) error {
	if n < 2 || n > series.Size() {
		return fmt.Errorf("%w: %d not in [2, %d]", core.ErrInvalidPointCount, n, series.Size())
	}
	return nil
}

func byCoordinate(a, b core.Observation) int {
	return cmp.Compare(a.X, b.X)
}
