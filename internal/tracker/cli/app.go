package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"golang.org/x/term"

	"github.com/dmitrijs2005/gophfit/internal/common"
	"github.com/dmitrijs2005/gophfit/internal/logging"
	"github.com/dmitrijs2005/gophfit/internal/tracker/config"
	"github.com/dmitrijs2005/gophfit/internal/tracker/datasource"
	"github.com/dmitrijs2005/gophfit/internal/tracker/notify"
	"github.com/dmitrijs2005/gophfit/internal/tracker/progress"
	"github.com/dmitrijs2005/gophfit/internal/tracker/services"
	"github.com/dmitrijs2005/gophfit/internal/tracker/session"
)

// isTerminal is a test seam for term.IsTerminal.
var isTerminal = term.IsTerminal

type App struct {
	config    *config.Config
	log       logging.Logger
	db        *datasource.Database
	store     *progress.Store
	sessions  *session.Manager
	progress  services.ProgressService
	nutrition services.NutritionService
	out       io.Writer
	userID    string
}

// NewApp opens the database and wires the store, services and session
// manager. Output goes to out.
func NewApp(ctx context.Context, c *config.Config, log logging.Logger, out io.Writer) (*App, error) {
	db, err := datasource.InitDatabase(ctx, c.DatabaseDSN)
	if err != nil {
		log.Error(ctx, "error initializing database", "err", err)
		return nil, err
	}

	notifier := notify.Multi{notify.NewConsoleNotifier(out), notify.NewLogNotifier(log)}
	source := datasource.NewSQLSource(db, c.QueryTimeout, log.With("component", "datasource"))

	store := progress.New(source, notifier,
		progress.WithLogger(log.With("component", "store")),
		progress.WithPager(source),
		progress.WithInfinitePageSize(c.InfinitePageSize),
	)

	return &App{
		config:    c,
		log:       log,
		db:        db,
		store:     store,
		sessions:  session.NewManager(db.Metadata(db.Conn()), c.SecretKey, c.SessionTTL),
		progress:  services.NewProgressService(db, store, notifier, log),
		nutrition: services.NewNutritionService(db, store, notifier, log),
		out:       out,
	}, nil
}

func (a *App) Close() error {
	return a.db.Close()
}

func (a *App) isLoggedIn() bool {
	return a.userID != ""
}

func (a *App) status() string {
	if !a.isLoggedIn() {
		return "(guest)"
	}
	return fmt.Sprintf("(%s %s %s)", a.userID, a.store.CurrentDate(), a.store.ViewMode())
}

// Run resumes a saved session, if any, and runs the REPL on in until EOF
// or exit.
func (a *App) Run(ctx context.Context, in io.Reader) {
	a.resume(ctx)

	interactive := false
	if f, ok := in.(*os.File); ok {
		interactive = isTerminal(int(f.Fd()))
	}
	prompt := func() string {
		if !interactive {
			return ""
		}
		return "fit " + a.status() + ">"
	}

	printlnFn("Welcome to gophfit (type 'help' for commands)")
	runREPL(ctx, a, prompt, bufio.NewScanner(in))
}

func (a *App) resume(ctx context.Context) {
	userID, err := a.sessions.CurrentUser(ctx)
	switch {
	case err == nil:
		a.userID = userID
		a.store.Load(ctx, userID, nil)
		printlnFn("Welcome back,", userID)
	case errors.Is(err, common.ErrTokenExpired):
		printlnFn("Session expired, please log in again")
	case errors.Is(err, common.ErrNoIdentity):
	default:
		a.log.Warn(ctx, "could not resume session", "err", err)
	}
}
