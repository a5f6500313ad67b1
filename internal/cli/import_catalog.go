package cli

import (
	"flag"
	"fmt"
	"os"

	"github.com/mrlokans/bookshelf/internal/config"
	"github.com/mrlokans/bookshelf/internal/database"
	"github.com/mrlokans/bookshelf/internal/dataset"
	"github.com/mrlokans/bookshelf/internal/importers"
)

// ImportCommand replaces the stored catalog with a JSON or YAML dataset.
type ImportCommand struct {
	DatasetPath  string
	DatabasePath string
	DryRun       bool
}

func NewImportCommand() *ImportCommand {
	return &ImportCommand{}
}

func (cmd *ImportCommand) ParseFlags(args []string) error {
	fs := flag.NewFlagSet("import", flag.ContinueOnError)

	fs.StringVar(&cmd.DatasetPath, "file", "", "Path to a .json, .yaml or .yml dataset (default: the embedded sample catalog)")
	fs.StringVar(&cmd.DatabasePath, "db", config.DefaultDatabasePath, "Path to the local database file")
	fs.BoolVar(&cmd.DryRun, "dry-run", false, "Validate the dataset without storing it")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s import [-file <path>] [options]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Replace the stored catalog with a dataset file.\n\n")
		fmt.Fprintf(os.Stderr, "A dataset has three top-level keys: books, authors and genres.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		fs.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  %s import -file catalog.yaml\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s import -file catalog.json -dry-run\n", os.Args[0])
	}

	return fs.Parse(args)
}

func (cmd *ImportCommand) Run() error {
	converter := dataset.Converter(cmd.DatasetPath)

	if cmd.DryRun {
		ds, source, err := converter.Convert()
		if err != nil {
			return err
		}
		if err := importers.Validate(ds); err != nil {
			return err
		}
		fmt.Printf("%s is valid: %d books, %d authors, %d genres\n", source, len(ds.Books), len(ds.Authors), len(ds.Genres))
		return nil
	}

	db, err := database.NewDatabase(cmd.DatabasePath)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close()

	result, err := importers.NewPipeline(db).Import(converter)
	if err != nil {
		return err
	}

	fmt.Printf("Imported %d books, %d authors, %d genres from %s\n", result.Books, result.Authors, result.Genres, result.Source)
	return nil
}
