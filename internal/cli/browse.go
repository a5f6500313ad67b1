package cli

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/charmbracelet/lipgloss"
	"gorm.io/gorm/logger"

	"github.com/mrlokans/bookshelf/internal/config"
	"github.com/mrlokans/bookshelf/internal/database"
	"github.com/mrlokans/bookshelf/internal/entrypoint"
	"github.com/mrlokans/bookshelf/internal/theme"
	"github.com/mrlokans/bookshelf/internal/tui"
)

// BrowseCommand opens the catalog in the terminal browser.
type BrowseCommand struct {
	DatabasePath string
	DatasetPath  string
	PageSize     int
	Theme        string
	Reload       bool
}

// hasDarkBackground is replaced in tests.
var hasDarkBackground = lipgloss.HasDarkBackground

// NewBrowseCommand starts from the environment configuration so flags only
// override what is passed explicitly.
func NewBrowseCommand(cfg *config.Config) *BrowseCommand {
	initial := cfg.Theme.Default
	if _, ok := theme.Parse(initial); !ok && initial != config.ThemeSystem {
		initial = string(theme.Day)
	}
	return &BrowseCommand{
		DatabasePath: cfg.Database.Path,
		DatasetPath:  cfg.Catalog.DatasetPath,
		PageSize:     cfg.Catalog.PageSize,
		Theme:        initial,
		Reload:       cfg.Catalog.ReloadOnStart,
	}
}

func (cmd *BrowseCommand) ParseFlags(args []string) error {
	fs := flag.NewFlagSet("browse", flag.ContinueOnError)

	fs.StringVar(&cmd.DatabasePath, "db", cmd.DatabasePath, "Path to the local database file")
	fs.StringVar(&cmd.DatasetPath, "file", cmd.DatasetPath, "Dataset to import when the database is empty")
	fs.IntVar(&cmd.PageSize, "page-size", cmd.PageSize, "Books revealed per 'show more'")
	fs.StringVar(&cmd.Theme, "theme", cmd.Theme, "Initial theme: day, night or system")
	fs.BoolVar(&cmd.Reload, "reload", cmd.Reload, "Re-import the dataset before browsing")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s browse [options]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Browse the catalog in the terminal.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return err
	}

	if _, ok := theme.Parse(cmd.Theme); !ok && cmd.Theme != config.ThemeSystem {
		return fmt.Errorf("unknown theme %q (expected day, night or system)", cmd.Theme)
	}
	return nil
}

// initialTheme resolves "system" from the terminal's background color.
func (cmd *BrowseCommand) initialTheme() theme.Name {
	if cmd.Theme == config.ThemeSystem {
		return theme.FromPreference(hasDarkBackground())
	}
	name, _ := theme.Parse(cmd.Theme)
	return name
}

func (cmd *BrowseCommand) Run() error {
	// Log lines would corrupt the alternate screen
	log.SetOutput(io.Discard)
	defer log.SetOutput(os.Stderr)

	db, cat, err := entrypoint.OpenCatalog(cmd.DatabasePath, cmd.DatasetPath, cmd.Reload, database.WithLogLevel(logger.Silent))
	if err != nil {
		return err
	}
	defer db.Close()

	return tui.Browse(cat, cmd.PageSize, cmd.initialTheme())
}
