package bench

import (
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/dustin/go-humanize"
)

// Write renders the report as one aligned table per run.
func (r *Report) Write(w io.Writer) error {
	if _, err := fmt.Fprintf(w, "seed %d, %d repeat(s), %d run(s) in %s\n",
		r.Seed, r.Repeats, len(r.Runs), r.Elapsed.Round(time.Microsecond)); err != nil {
		return err
	}
	for _, run := range r.Runs {
		if _, err := fmt.Fprintf(w, "\n%s  %dx%d  run %s\n",
			run.Generator, run.Run.Width, run.Run.Height, run.ID); err != nil {
			return err
		}
		tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
		fmt.Fprintln(tw, "solver\tfound\tmean µs\tmedian µs\tp95 µs\tmax µs\tnodes\tpath\t")
		for _, s := range run.Summaries {
			fmt.Fprintf(tw, "%s\t%d/%d\t%s\t%s\t%s\t%s\t%s\t%s\t\n",
				s.Solver,
				s.Found, s.Samples,
				humanize.FtoaWithDigits(s.MeanMicros, 1),
				humanize.FtoaWithDigits(s.MedianMicros, 1),
				humanize.FtoaWithDigits(s.P95Micros, 1),
				humanize.FtoaWithDigits(s.MaxMicros, 1),
				humanize.Comma(int64(s.MeanNodes+0.5)),
				humanize.Comma(int64(s.MeanPath+0.5)),
			)
		}
		if err := tw.Flush(); err != nil {
			return err
		}
	}
	return nil
}
