package grid

import "github.com/olekukonko/errors"

func errInvalidSpan(row int, sp ColumnSpan) error {
	return errors.Newf("row %d: column span %q [%d,%d] is outside the column set", row, sp.Field, sp.From, sp.To)
}

func errParse(row int, field string, err error) error {
	return errors.Newf("row %d: parse %q", row, field).Wrap(err)
}
