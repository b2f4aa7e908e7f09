package expr

import (
	"errors"
	"fmt"

	"github.com/alecthomas/participle/v2"

	"github.com/alexisbeaulieu97/bentogrid/internal/grid"
	bentoerrors "github.com/alexisbeaulieu97/bentogrid/pkg/errors"
)

// Apply parses src and applies every statement to s in order. A statement
// that is rejected is reported and skipped; the remaining statements still
// apply. A syntax error rejects the whole script and returns s unchanged.
func Apply(s grid.Settings, src string) (grid.Settings, []error) {
	script, err := Parse(src)
	if err != nil {
		return s, []error{bentoerrors.NewParseError("expression", parseLine(err), err)}
	}
	return script.Apply(s)
}

// ApplyAll applies several sources in order, as given by repeated --set flags.
func ApplyAll(s grid.Settings, sources []string) (grid.Settings, []error) {
	var errs []error
	for _, src := range sources {
		next, applyErrs := Apply(s, src)
		s = next
		errs = append(errs, applyErrs...)
	}
	return s, errs
}

// Apply applies the parsed statements to s.
func (sc *Script) Apply(s grid.Settings) (grid.Settings, []error) {
	if sc == nil {
		return s, nil
	}

	var errs []error
	for _, stmt := range sc.Statements {
		next, err := stmt.apply(s)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", stmt.Pos, err))
			continue
		}
		s = next
	}
	return s, errs
}

func (st *Statement) apply(s grid.Settings) (grid.Settings, error) {
	switch {
	case st.Reset != nil:
		index, err := checkIndex(st.Reset.Item.Index)
		if err != nil {
			return s, err
		}
		return grid.UpdateItem(s, index, grid.ResetItem(s)), nil
	case st.Assign != nil:
		return st.Assign.apply(s)
	default:
		return s, nil
	}
}

func (a *Assignment) apply(s grid.Settings) (grid.Settings, error) {
	value := a.Value.Interface()

	if a.Item == nil {
		field, ok := grid.ParseField(a.Field)
		if !ok {
			return s, bentoerrors.NewInputError(a.Field, a.Value.String(), "unknown field", nil)
		}
		return grid.UpdateField(s, field, value)
	}

	index, err := checkIndex(a.Item.Index)
	if err != nil {
		return s, err
	}

	field, ok := grid.ParseItemField(a.Field)
	if !ok {
		return s, bentoerrors.NewInputError(a.Field, a.Value.String(), "unknown item field", nil)
	}

	update, err := grid.NewItemUpdate(field, value)
	if err != nil {
		return s, err
	}
	return grid.UpdateItem(s, index, update), nil
}

func checkIndex(index int) (int, error) {
	if index < 0 || index >= grid.MaxItems {
		return 0, bentoerrors.NewInputError(
			"item",
			fmt.Sprint(index),
			fmt.Sprintf("index must be between 0 and %d", grid.MaxItems-1),
			nil,
		)
	}
	return index, nil
}

func parseLine(err error) int {
	var perr participle.Error
	if errors.As(err, &perr) {
		return perr.Position().Line
	}
	return 0
}
