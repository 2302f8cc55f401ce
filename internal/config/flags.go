package config

import (
	"flag"
	"os"

	"github.com/astrogid/astrogid/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-d string   path to the SQLite database file (default from Config)
//	-e string   contact email feedback messages are composed for (default from Config)
//	-r int      feedback message retention count (default from Config)
//
// Note: The function filters os.Args to only include the flags it knows about,
// using flagx.FilterArgs, to avoid interference with other components.
func parseFlags(cfg *Config) {
	// Filter args to include only those handled here.
	args := flagx.FilterArgs(os.Args[1:], []string{"-d", "-e", "-r"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.DatabasePath, "d", cfg.DatabasePath, "path to the SQLite database file")
	fs.StringVar(&cfg.ContactEmail, "e", cfg.ContactEmail, "contact email for feedback messages")
	fs.IntVar(&cfg.FeedbackRetention, "r", cfg.FeedbackRetention, "feedback message retention count")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}
