package cmd

import (
	"context"

	"github.com/imagecheck/qcreview/internal/logging"
	"github.com/imagecheck/qcreview/internal/services"
)

// OrganizeCmd copies the flagged images of a saved review without opening
// the TUI
type OrganizeCmd struct {
	Dir string `arg:"" help:"Reviewed directory" type:"existingdir"`
}

// Run executes the organize command
func (o *OrganizeCmd) Run(cli *CLI) error {
	saved, err := cli.Container.PersistenceService.LoadSaved(o.Dir)
	if err != nil {
		return err
	}

	imageList := saved.ImageList
	if len(imageList) == 0 {
		imageList, err = cli.Container.FileSystem.ListImageFiles(o.Dir)
		if err != nil {
			return err
		}
	}

	logging.Logger.Info("Organizing saved review", "dir", o.Dir, "reviewer", saved.QCName)

	result, err := cli.Container.OrganizerService.Organize(context.Background(), services.OrganizeParams{
		CustomCards: saved.CustomCards,
		Directory:   o.Dir,
		ImageList:   imageList,
		Records:     saved.Records,
		Reviewer:    saved.QCName,
	})
	if err != nil {
		return err
	}
	printOrganize(result)
	return nil
}
