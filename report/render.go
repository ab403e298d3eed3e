// SPDX-License-Identifier: MIT

package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"text/tabwriter"
)

const notApplicable = "N.A."

// WriteTable renders rows as an aligned text table, with a rule between
// method blocks.
func WriteTable(w io.Writer, rows []Row) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.Debug)
	rule := "\t\t\t\t"
	fmt.Fprintln(tw, "METHOD\tOPTION TYPE\tOPTION VALUE\tERROR\t")
	fmt.Fprintln(tw, rule)

	prev := ""
	for i, r := range rows {
		if i > 0 && r.Method != prev {
			fmt.Fprintln(tw, rule)
		}
		prev = r.Method
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t\n", r.Method, r.Option, valueCell(r), errorCell(r))
	}

	return tw.Flush()
}

// WriteCSV renders rows with a header; value and error cells are empty when
// unset.
func WriteCSV(w io.Writer, rows []Row) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"method", "option", "value", "error_pct"}); err != nil {
		return err
	}
	for _, r := range rows {
		errPct := ""
		if r.ErrorPct.Valid {
			errPct = r.ErrorPct.Decimal.StringFixed(ErrorPlaces)
		}
		value := ""
		if r.Value.Valid {
			value = r.Value.Decimal.StringFixed(ValuePlaces)
		}
		if err := cw.Write([]string{r.Method, r.Option, value, errPct}); err != nil {
			return err
		}
	}
	cw.Flush()

	return cw.Error()
}

func valueCell(r Row) string {
	if !r.Value.Valid {
		return notApplicable
	}

	return r.Value.Decimal.StringFixed(ValuePlaces)
}

func errorCell(r Row) string {
	if !r.ErrorPct.Valid {
		return notApplicable
	}

	return r.ErrorPct.Decimal.StringFixed(ErrorPlaces) + "%"
}
