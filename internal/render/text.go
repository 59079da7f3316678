package render

import (
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"

	"github.com/nikmy/meowcal/pkg/calendar"
)

// Text prints the grid for a terminal. Today is [d], days of other months
// are (d) and days with host content get a trailing *.
func Text(w io.Writer, v calendar.View) error {
	if _, err := fmt.Fprintf(w, "%s\n", v.Title); err != nil {
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 0, 1, ' ', tabwriter.AlignRight)
	for _, wd := range v.Weekdays {
		fmt.Fprintf(tw, "%s\t", wd)
	}
	fmt.Fprintln(tw)

	for _, week := range v.Weeks() {
		for _, c := range week {
			label := DayLabel(c)
			if c.Extra != "" {
				label += "*"
			}
			fmt.Fprintf(tw, "%s\t", label)
		}
		fmt.Fprintln(tw)
	}

	return tw.Flush()
}

// DayLabel is the day number for surfaces without styling: [d] for today,
// (d) for days outside the anchor's month.
func DayLabel(c calendar.DayCell) string {
	s := strconv.Itoa(c.Date.Day())
	switch {
	case c.IsToday:
		return "[" + s + "]"
	case !c.IsCurrentMonth:
		return "(" + s + ")"
	default:
		return s
	}
}
