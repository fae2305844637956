package registry

import (
	"fmt"
	"io"
	"text/tabwriter"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var countPrinter = message.NewPrinter(language.English)

// PrintResults renders search hits as an aligned table followed by a count
// line. An empty hit list prints a "no packages" message instead.
func PrintResults(w io.Writer, hits []Hit) error {
	if len(hits) == 0 {
		_, err := fmt.Fprintln(w, "No matching packages found.")
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 0, 3, ' ', 0)
	fmt.Fprintln(tw, "NAME\tVERSION\tSUMMARY")
	for _, hit := range hits {
		version := hit.Version
		if version == "" {
			version = "-"
		}
		summary := hit.Summary
		if len(summary) > 60 {
			summary = summary[:57] + "..."
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\n", hit.Name, version, summary)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	_, err := countPrinter.Fprintf(w, "\nFound %d matching packages.\n", len(hits))
	return err
}
