package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/gophfit/internal/timex"
	"github.com/dmitrijs2005/gophfit/internal/tracker/models"
	"github.com/dmitrijs2005/gophfit/internal/tracker/progress"
	"github.com/dmitrijs2005/gophfit/internal/tracker/services"
)

var errUsage = errors.New("usage")

func usage(format string) error {
	return fmt.Errorf("%w: %s", errUsage, format)
}

func (a *App) Login(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return usage("login <user>")
	}
	if err := a.sessions.Login(ctx, args[0]); err != nil {
		return err
	}
	a.userID = strings.TrimSpace(args[0])
	a.store.Clear()
	a.store.Load(ctx, a.userID, nil)
	printlnFn("Logged in as", a.userID)
	return nil
}

func (a *App) Logout(ctx context.Context) error {
	if err := a.sessions.Logout(ctx); err != nil {
		return err
	}
	a.userID = ""
	a.store.Clear()
	printlnFn("Logged out")
	return nil
}

func (a *App) Load(ctx context.Context, args []string) error {
	var day *timex.Day
	if len(args) > 0 {
		d, err := timex.ParseDay(args[0])
		if err != nil {
			return err
		}
		day = &d
	}
	a.store.Load(ctx, a.userID, day)
	return a.afterLoad()
}

func (a *App) Refresh(ctx context.Context) error {
	a.store.Refresh(ctx, a.userID)
	return a.afterLoad()
}

func (a *App) PrevDay(ctx context.Context) error {
	a.store.PreviousDay(ctx, a.userID)
	return a.afterLoad()
}

func (a *App) NextDay(ctx context.Context) error {
	a.store.NextDay(ctx, a.userID)
	return a.afterLoad()
}

// SetDate changes the current date without loading it.
func (a *App) SetDate(_ context.Context, args []string) error {
	if len(args) != 1 {
		return usage("date <YYYY-MM-DD>")
	}
	d, err := timex.ParseDay(args[0])
	if err != nil {
		return err
	}
	a.store.SetDate(d)
	printlnFn("Date set to", d.String(), "(run 'load' to fetch it)")
	return nil
}

// afterLoad reports a load error held by the store, then shows the summary.
func (a *App) afterLoad() error {
	if msg := a.store.ErrorMessage(); msg != "" {
		a.store.ClearError()
		return errors.New(msg)
	}
	renderSummary(a.out, a.store.Snapshot())
	return nil
}

func (a *App) List(_ context.Context) error {
	renderEntries(a.out, a.store.Snapshot())
	return nil
}

func (a *App) Add(ctx context.Context, args []string) error {
	if len(args) < 4 {
		return usage("add <exercise> <weight> <reps> <sets> [note...]")
	}
	in := services.RecordInput{ExerciseName: args[0], Notes: strings.Join(args[4:], " ")}
	var err error
	if in.Weight, err = parseFloatArg("weight", args[1]); err != nil {
		return err
	}
	if in.Reps, err = parseIntArg("reps", args[2]); err != nil {
		return err
	}
	if in.Sets, err = parseIntArg("sets", args[3]); err != nil {
		return err
	}

	e, err := a.progress.Record(ctx, a.userID, in)
	if err != nil {
		return err
	}
	printlnFn("Added", shortID(e.ID))
	return nil
}

func (a *App) Edit(ctx context.Context, args []string) error {
	if len(args) < 2 {
		return usage("edit <id> [exercise=..] [weight=..] [reps=..] [sets=..] [note=..] [date=..]")
	}
	e, err := a.findEntry(args[0])
	if err != nil {
		return err
	}
	kv, err := parseKV(args[1:])
	if err != nil {
		return err
	}
	for k, v := range kv {
		switch k {
		case "exercise":
			e.ExerciseName = v
		case "weight":
			if e.Weight, err = parseFloatArg(k, v); err != nil {
				return err
			}
		case "reps":
			if e.Reps, err = parseIntArg(k, v); err != nil {
				return err
			}
		case "sets":
			if e.Sets, err = parseIntArg(k, v); err != nil {
				return err
			}
		case "note", "notes":
			if v == "" {
				e.Notes = nil
			} else {
				e.Notes = models.Note(v)
			}
		case "date":
			if e.Date, err = timex.ParseDay(v); err != nil {
				return err
			}
		default:
			return fmt.Errorf("unknown field %q", k)
		}
	}
	return a.progress.Edit(ctx, a.userID, e)
}

func (a *App) Remove(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return usage("rm <id>")
	}
	e, err := a.findEntry(args[0])
	if err != nil {
		return err
	}
	return a.progress.Delete(ctx, a.userID, e.ID)
}

// findEntry resolves a full id or a unique id prefix against loaded entries.
func (a *App) findEntry(ref string) (models.ProgressEntry, error) {
	var (
		found models.ProgressEntry
		n     int
	)
	for _, e := range a.store.Entries() {
		if e.ID == ref {
			return e, nil
		}
		if strings.HasPrefix(e.ID, ref) {
			found = e
			n++
		}
	}
	switch n {
	case 0:
		return models.ProgressEntry{}, fmt.Errorf("no entry %q", ref)
	case 1:
		return found, nil
	default:
		return models.ProgressEntry{}, fmt.Errorf("id prefix %q is ambiguous", ref)
	}
}

func (a *App) Search(ctx context.Context, args []string) error {
	a.store.SetSearchTerm(strings.Join(args, " "))
	return a.List(ctx)
}

func (a *App) ClearSearch(ctx context.Context) error {
	a.store.ClearSearch()
	return a.List(ctx)
}

func (a *App) Page(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return usage("page <n> | pg next|prev")
	}
	switch args[0] {
	case "next", "n":
		a.store.NextPage()
	case "prev", "p":
		a.store.PreviousPage()
	default:
		n, err := parseIntArg("page", args[0])
		if err != nil {
			return err
		}
		before := a.store.CurrentPage()
		a.store.GoToPage(n)
		if a.store.CurrentPage() == before && n != before {
			return fmt.Errorf("page %d is out of range", n)
		}
	}
	return a.List(ctx)
}

func (a *App) Mode(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return usage("mode pagination|infinite")
	}
	mode := progress.ViewMode(strings.ToLower(args[0]))
	if !mode.Valid() {
		return fmt.Errorf("unknown mode %q", args[0])
	}
	a.store.SetViewMode(ctx, mode)
	return a.List(ctx)
}

func (a *App) More(ctx context.Context) error {
	if a.store.ViewMode() != progress.ModeInfinite {
		return errors.New("'more' works in infinite mode, switch with: mode infinite")
	}
	if !a.store.HasMore() {
		printlnFn("No more entries")
		return nil
	}
	a.store.LoadMore(ctx)
	return a.List(ctx)
}

func (a *App) Stats(_ context.Context) error {
	renderStats(a.out, a.store.Snapshot())
	return nil
}

func (a *App) Strength(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return usage("strength <exercise>")
	}
	a.store.LoadStrengthProgress(ctx, a.userID, args[0])
	renderStrength(a.out, a.store.StrengthProgress())
	return nil
}

func (a *App) Exercises(_ context.Context) error {
	names := a.store.Exercises()
	if len(names) == 0 {
		printlnFn("No exercises yet")
		return nil
	}
	for _, n := range names {
		fmt.Fprintln(a.out, " -", n)
	}
	return nil
}

func (a *App) AddExercise(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return usage(`addexercise <name> (quote names with spaces)`)
	}
	return a.progress.AddExercise(ctx, a.userID, args[0])
}

func (a *App) Meal(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return usage("meal [cal=..] [protein=..] [carbs=..] [fat=..] [fiber=..] [water=..]")
	}
	kv, err := parseKV(args)
	if err != nil {
		return err
	}
	var m services.Meal
	fields := map[string]*float64{
		"cal": &m.Calories, "calories": &m.Calories,
		"protein": &m.Protein, "carbs": &m.Carbs, "fat": &m.Fat,
		"fiber": &m.Fiber, "water": &m.Water,
	}
	for k, v := range kv {
		dst, ok := fields[k]
		if !ok {
			return fmt.Errorf("unknown field %q", k)
		}
		if *dst, err = parseFloatArg(k, v); err != nil {
			return err
		}
	}

	_, err = a.nutrition.LogMeal(ctx, a.userID, timex.Day{}, m)
	return err
}

func (a *App) Goal(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return usage("goal <calories>")
	}
	goal, err := parseFloatArg("goal", args[0])
	if err != nil {
		return err
	}
	return a.nutrition.SetGoal(ctx, a.userID, timex.Day{}, goal)
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
