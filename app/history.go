package app

import (
	"fmt"
	"io"

	"github.com/pterm/pterm"

	"github.com/ayoisaiah/pomo/internal/models"
	"github.com/ayoisaiah/pomo/internal/session"
	"github.com/ayoisaiah/pomo/internal/timeutil"
	"github.com/ayoisaiah/pomo/internal/ui"
)

const (
	noRecordsMsg = "No sessions found for the specified time range"
)

func dateLayout(twentyFourHour bool) string {
	if twentyFourHour {
		return "Jan 02, 2006 15:04"
	}

	return "Jan 02, 2006 03:04 PM"
}

// recordsTable builds the rows of the history table, header first.
func recordsTable(records []*models.Record, twentyFourHour bool) [][]string {
	rows := make([][]string, 0, len(records)+1)

	rows = append(rows, []string{"#", "ENDED", "SESSION", "LENGTH", "NEXT", "STATUS"})

	for i, r := range records {
		statusText := ui.Green("completed")
		if r.Skipped {
			statusText = ui.Red("skipped")
		}

		rows = append(rows, []string{
			fmt.Sprintf("%d", i+1),
			r.EndedAt.Local().Format(dateLayout(twentyFourHour)),
			r.Mode.Label(),
			timeutil.FormatDuration(r.ElapsedSeconds),
			r.Next.Label(),
			statusText,
		})
	}

	return rows
}

// filterRecords keeps the records of mode. An empty mode keeps everything.
func filterRecords(records []*models.Record, mode session.Mode) []*models.Record {
	if mode == "" {
		return records
	}

	filtered := make([]*models.Record, 0, len(records))

	for _, r := range records {
		if r.Mode == mode {
			filtered = append(filtered, r)
		}
	}

	return filtered
}

// summary totals the completed focus sessions in records.
func summary(records []*models.Record) (completed, focusedSecs int) {
	for _, r := range records {
		if r.Mode != session.Focus {
			continue
		}

		focusedSecs += r.ElapsedSeconds

		if !r.Skipped {
			completed++
		}
	}

	return completed, focusedSecs
}

// listRecords prints a table of records followed by a focus summary.
func listRecords(w io.Writer, records []*models.Record, twentyFourHour bool) error {
	if len(records) == 0 {
		pterm.Info.Println(noRecordsMsg)
		return nil
	}

	ui.PrintTable(recordsTable(records, twentyFourHour), w)

	completed, focused := summary(records)

	_, err := fmt.Fprintf(
		w,
		"%s focus sessions completed, %s spent focusing\n",
		ui.Highlight(completed),
		ui.Highlight(timeutil.FormatDuration(focused)),
	)

	return err
}
