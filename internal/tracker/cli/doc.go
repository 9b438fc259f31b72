// Package cli implements the interactive gophfit command line.
//
// The REPL reads one command per line. Arguments are separated by spaces;
// double quotes group words, so `add "Back Squat" 100 5 3 felt good` records
// a "Back Squat" entry with the note "felt good".
//
// Commands
//
//	help                         show available commands
//	login <user> | logout        start or end the local session
//	load [YYYY-MM-DD] | refresh  load the day (default: current date)
//	prev | next | date <day>     move between days
//	list                         show the current page or scroll window
//	add <exercise> <weight> <reps> <sets> [note...]
//	edit <id> [exercise=..] [weight=..] [reps=..] [sets=..] [note=..] [date=..]
//	rm <id>                      remove an entry
//	search <term...> | clear-search
//	page <n> | pg next|prev      pagination
//	mode pagination|infinite     browsing mode
//	more                         extend the infinite window
//	stats                        totals and nutrition for the day
//	strength <exercise>          per-day strength progression
//	exercises | addexercise <name>
//	meal [cal=..] [protein=..] [carbs=..] [fat=..] [fiber=..] [water=..]
//	goal <calories>              calorie goal for the current day
//	exit | quit
package cli
