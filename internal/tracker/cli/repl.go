package cli

import (
	"bufio"
	"context"
	"fmt"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface is the command surface the REPL dispatches to. The real App
// satisfies it; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Login(ctx context.Context, args []string) error
	Logout(ctx context.Context) error
	Load(ctx context.Context, args []string) error
	Refresh(ctx context.Context) error
	PrevDay(ctx context.Context) error
	NextDay(ctx context.Context) error
	SetDate(ctx context.Context, args []string) error
	List(ctx context.Context) error
	Add(ctx context.Context, args []string) error
	Edit(ctx context.Context, args []string) error
	Remove(ctx context.Context, args []string) error
	Search(ctx context.Context, args []string) error
	ClearSearch(ctx context.Context) error
	Page(ctx context.Context, args []string) error
	Mode(ctx context.Context, args []string) error
	More(ctx context.Context) error
	Stats(ctx context.Context) error
	Strength(ctx context.Context, args []string) error
	Exercises(ctx context.Context) error
	AddExercise(ctx context.Context, args []string) error
	Meal(ctx context.Context, args []string) error
	Goal(ctx context.Context, args []string) error
}

const (
	helpLoggedOut = "Available commands: login <user>, help, exit"
	helpLoggedIn  = "Available commands: load, refresh, prev, next, date, (l)ist, add, edit, rm, search, clear-search, " +
		"page, pg, mode, more, stats, strength, exercises, addexercise, meal, goal, logout, exit"
)

// runREPL reads commands from scanner until EOF or "exit"/"quit" and
// dispatches them to a. promptFn returns the prompt to print before each
// read, or "" to print none.
//
// Handler errors are printed and the loop continues.
func runREPL(ctx context.Context, a execIface, promptFn func() string, scanner *bufio.Scanner) {
	for {
		if p := promptFn(); p != "" {
			printlnFn(p)
		}
		if !scanner.Scan() {
			return
		}
		parts := splitArgs(scanner.Text())
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		if cmd == "exit" || cmd == "quit" {
			printlnFn("Bye!")
			return
		}
		if err := dispatch(ctx, a, cmd, args); err != nil {
			printlnFn("Error:", err)
		}
	}
}

func dispatch(ctx context.Context, a execIface, cmd string, args []string) error {
	switch cmd {
	case "help":
		if a.isLoggedIn() {
			printlnFn(helpLoggedIn)
		} else {
			printlnFn(helpLoggedOut)
		}
		return nil
	case "login":
		return a.Login(ctx, args)
	}

	if !a.isLoggedIn() {
		if isKnown(cmd) {
			printlnFn("Please log in first: login <user>")
		} else {
			printlnFn("Unknown command:", cmd)
		}
		return nil
	}

	switch cmd {
	case "logout":
		return a.Logout(ctx)
	case "load":
		return a.Load(ctx, args)
	case "refresh":
		return a.Refresh(ctx)
	case "prev":
		return a.PrevDay(ctx)
	case "next":
		return a.NextDay(ctx)
	case "date":
		return a.SetDate(ctx, args)
	case "l", "list":
		return a.List(ctx)
	case "add":
		return a.Add(ctx, args)
	case "edit":
		return a.Edit(ctx, args)
	case "rm":
		return a.Remove(ctx, args)
	case "search":
		return a.Search(ctx, args)
	case "clear-search":
		return a.ClearSearch(ctx)
	case "page", "pg":
		return a.Page(ctx, args)
	case "mode":
		return a.Mode(ctx, args)
	case "more":
		return a.More(ctx)
	case "stats":
		return a.Stats(ctx)
	case "strength":
		return a.Strength(ctx, args)
	case "exercises":
		return a.Exercises(ctx)
	case "addexercise":
		return a.AddExercise(ctx, args)
	case "meal":
		return a.Meal(ctx, args)
	case "goal":
		return a.Goal(ctx, args)
	default:
		printlnFn("Unknown command:", cmd)
		return nil
	}
}

var knownCommands = map[string]struct{}{
	"logout": {}, "load": {}, "refresh": {}, "prev": {}, "next": {}, "date": {}, "l": {}, "list": {},
	"add": {}, "edit": {}, "rm": {}, "search": {}, "clear-search": {}, "page": {}, "pg": {}, "mode": {},
	"more": {}, "stats": {}, "strength": {}, "exercises": {}, "addexercise": {}, "meal": {}, "goal": {},
}

func isKnown(cmd string) bool {
	_, ok := knownCommands[cmd]
	return ok
}
