package cli

import (
	"fmt"
	"io"
	"strconv"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"github.com/dmitrijs2005/gophfit/internal/tracker/models"
	"github.com/dmitrijs2005/gophfit/internal/tracker/progress"
)

var bold = color.New(color.Bold)

func kg(v float64) string {
	return humanize.FtoaWithDigits(v, 2) + " kg"
}

func renderSummary(w io.Writer, s progress.Snapshot) {
	v := s.View
	_, _ = fmt.Fprintf(w, "%s  %d entries, %d exercises, max %s, volume %s kg, %s / %s kcal (%d%%)\n",
		bold.Sprint(s.CurrentDate.String()),
		v.TotalEntries, v.TotalExercises, kg(v.MaxWeight), humanize.Commaf(v.TotalVolume),
		humanize.Commaf(v.CaloriesConsumed), humanize.Commaf(v.CalorieGoal), v.CaloriePercentage)
}

// renderEntries prints the visible slice of entries for the current mode.
func renderEntries(w io.Writer, s progress.Snapshot) {
	v := s.View
	if s.Mode == progress.ModeInfinite {
		rows := v.InfiniteScrollItems
		if len(rows) == 0 {
			_, _ = fmt.Fprintln(w, "No entries loaded")
			return
		}
		_, _ = fmt.Fprintln(w, entryTable(rows))
		more := ""
		if s.HasMore {
			more = ", 'more' for next"
		}
		_, _ = fmt.Fprintf(w, "%d loaded%s\n", len(rows), more)
		return
	}

	switch {
	case v.IsEmpty:
		_, _ = fmt.Fprintln(w, "No progress recorded yet")
	case !v.HasResults && s.SearchTerm == "":
		_, _ = fmt.Fprintln(w, "No entries")
	case !v.HasResults:
		_, _ = fmt.Fprintf(w, "No entries match %q\n", s.SearchTerm)
	default:
		_, _ = fmt.Fprintln(w, entryTable(v.PaginatedEntries))
		_, _ = fmt.Fprintf(w, "Page %d of %d (%d matching)\n", s.CurrentPage, v.TotalPages, len(v.FilteredEntries))
	}
}

func entryTable(rows []models.ProgressEntry) *uitable.Table {
	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.MaxColWidth = 40
	tbl.AddRow(bold.Sprint("ID"), bold.Sprint("Date"), bold.Sprint("Exercise"),
		bold.Sprint("Weight"), bold.Sprint("Reps"), bold.Sprint("Sets"), bold.Sprint("Notes"))
	for _, e := range rows {
		tbl.AddRow(shortID(e.ID), e.Date.String(), e.ExerciseName, kg(e.Weight),
			strconv.Itoa(e.Reps), strconv.Itoa(e.Sets), e.NoteText())
	}
	tbl.RightAlign(3)
	return tbl
}

func renderStats(w io.Writer, s progress.Snapshot) {
	v := s.View
	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow(bold.Sprint("Date"), s.CurrentDate.String())
	tbl.AddRow(bold.Sprint("Entries"), strconv.Itoa(v.TotalEntries))
	tbl.AddRow(bold.Sprint("Exercises"), strconv.Itoa(v.TotalExercises))
	tbl.AddRow(bold.Sprint("Max weight"), kg(v.MaxWeight))
	tbl.AddRow(bold.Sprint("Total volume"), humanize.Commaf(v.TotalVolume)+" kg")
	tbl.AddRow(bold.Sprint("Calories"), fmt.Sprintf("%s / %s kcal (%d%%)",
		humanize.Commaf(v.CaloriesConsumed), humanize.Commaf(v.CalorieGoal), v.CaloriePercentage))
	if n := s.Nutrients; n != nil {
		tbl.AddRow(bold.Sprint("Macros"), fmt.Sprintf("protein %sg, carbs %sg, fat %sg, fiber %sg",
			humanize.Ftoa(n.Protein), humanize.Ftoa(n.Carbs), humanize.Ftoa(n.Fat), humanize.Ftoa(n.Fiber)))
		tbl.AddRow(bold.Sprint("Water"), humanize.Commaf(n.Water)+" ml")
	}
	_, _ = fmt.Fprintln(w, tbl)
}

func renderStrength(w io.Writer, series *models.StrengthSeries) {
	if series == nil || len(series.Points) == 0 {
		name := ""
		if series != nil {
			name = series.ExerciseName
		}
		_, _ = fmt.Fprintf(w, "No strength history for %q\n", name)
		return
	}
	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow(bold.Sprint("Date"), bold.Sprint("Max weight"), bold.Sprint("Volume"))
	for _, p := range series.Points {
		tbl.AddRow(p.Date.String(), kg(p.MaxWeight), humanize.Commaf(p.TotalVolume)+" kg")
	}
	tbl.RightAlign(1)
	tbl.RightAlign(2)
	_, _ = fmt.Fprintln(w, bold.Sprint(series.ExerciseName))
	_, _ = fmt.Fprintln(w, tbl)
}
