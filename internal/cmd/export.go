package cmd

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/imagecheck/qcreview/internal/domain"
	"github.com/imagecheck/qcreview/internal/logging"
	"github.com/imagecheck/qcreview/internal/services"
)

// ExportCmd rewrites the CSV of a saved review
type ExportCmd struct {
	Dir    string `arg:"" help:"Reviewed directory" type:"existingdir"`
	Output string `help:"CSV path (defaults to the review's CSV in the directory)" short:"o" type:"path"`
}

// Run executes the export command
func (e *ExportCmd) Run(cli *CLI) error {
	saved, err := cli.Container.PersistenceService.LoadSaved(e.Dir)
	if err != nil {
		return err
	}

	output := e.Output
	if output == "" {
		csvFilename := saved.CSVFilename
		if csvFilename == "" {
			csvFilename = domain.GenerateCSVFilename(saved.QCName, cli.Container.clock.Now())
		}
		output = filepath.Join(e.Dir, csvFilename)
	}

	logging.Logger.Info("Exporting review", "dir", e.Dir, "output", output, "records", len(saved.Records))

	result, err := cli.Container.PersistenceService.SaveCSV(output, saved.Records, saved.CustomCards)
	if err != nil {
		var saveErr *services.CSVSaveError
		if errors.As(err, &saveErr) {
			return fmt.Errorf("%w\n%s", err, saveErr.Hint())
		}
		return err
	}
	printCSV(result)
	if result.Rows < len(saved.Records) {
		fmt.Printf("%d undecided records were skipped\n", len(saved.Records)-result.Rows)
	}
	return nil
}
