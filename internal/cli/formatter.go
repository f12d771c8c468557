package cli

import (
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/idelchi/filesum/internal/filesum"
)

const (
	// TabSpacing is the number of spaces between tabwriter columns.
	TabSpacing = 2
	// KiB is the divisor for sizes shown in kilobytes.
	KiB = 1024
)

// Report writes the extension counts, the largest files and the oldest files,
// followed by scan totals.
//
//nolint:forbidigo // This function prints output to the console.
func Report(writer io.Writer, summary *filesum.Summary) error {
	w := tabwriter.NewWriter(writer, 0, 4, TabSpacing, ' ', 0)

	fmt.Fprintf(w, "Scanning directory: %s\n", summary.Root)

	fmt.Fprintln(w, "\nFile types:")
	if len(summary.Extensions) == 0 {
		fmt.Fprintln(w, "  (none)")
	}
	for _, ext := range summary.Extensions {
		fmt.Fprintf(w, "  ▸ %s:\t%d\n", ext.Extension, ext.Count)
	}

	fmt.Fprintf(w, "\nTop %d largest files:\n", summary.TopN)
	if len(summary.Largest) == 0 {
		fmt.Fprintln(w, "  (none)")
	}
	for _, f := range summary.Largest {
		fmt.Fprintf(w, "  ▸ %s\t– %d KB\n", f.Name(), f.Size/KiB)
	}

	fmt.Fprintf(w, "\nTop %d oldest files:\n", summary.TopN)
	if len(summary.Oldest) == 0 {
		fmt.Fprintln(w, "  (none)")
	}
	for _, f := range summary.Oldest {
		fmt.Fprintf(w, "  ▸ %s\t– %s\t(%s)\n",
			f.Name(), f.ModTime.Local().Format(time.ANSIC), humanize.Time(f.ModTime))
	}

	fmt.Fprintln(w, "\nStats:")
	fmt.Fprintf(w, "Total files:\t%d\n", summary.FileCount)
	fmt.Fprintf(w, "Total size:\t%s (%d bytes)\n",
		humanize.IBytes(uint64(summary.TotalBytes)), summary.TotalBytes) //nolint:gosec // Sizes are never negative
	if summary.ErrorCount > 0 {
		fmt.Fprintf(w, "Skipped entries:\t%d\n", summary.ErrorCount)
	}
	fmt.Fprintf(w, "Elapsed:\t%v\n", summary.Elapsed.Round(time.Millisecond))

	return w.Flush()
}
