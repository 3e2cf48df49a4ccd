package cmd

import (
	"context"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/goccy/go-json"

	"github.com/imagecheck/qcreview/internal/domain"
	"github.com/imagecheck/qcreview/internal/logging"
)

// CardsCmd manages the custom cards stored in the analytics database
type CardsCmd struct {
	List   CardsListCmd   `cmd:"list" help:"List custom cards" default:"1"`
	Add    CardsAddCmd    `cmd:"add" help:"Add a custom card"`
	Update CardsUpdateCmd `cmd:"update" help:"Change the options of a custom card"`
	Move   CardsMoveCmd   `cmd:"move" help:"Move a custom card to a new position"`
	Remove CardsRemoveCmd `cmd:"remove" help:"Remove a custom card"`
}

// CardsListCmd lists custom cards
type CardsListCmd struct {
	Format string `help:"Output format: table or json" enum:"table,json" default:"table"`
}

// CardsAddCmd adds a custom card
type CardsAddCmd struct {
	Title              string   `arg:"" help:"Card title; the CSV column is derived from it"`
	Mandatory          bool     `help:"Require a value before moving to the next image"`
	ObservationOptions []string `help:"Observation options of a decision_observation card" sep:","`
	Options            []string `help:"Comma-separated options (not used by text cards)" sep:","`
	Type               string   `help:"Card type" enum:"select,multiselect,decision_observation,text" default:"select"`
}

// CardsUpdateCmd changes an existing card
type CardsUpdateCmd struct {
	Card               string   `arg:"" help:"Card id or field name"`
	Mandatory          bool     `help:"Make the card mandatory" xor:"mandatory"`
	ObservationOptions []string `help:"Replace the observation options" sep:","`
	Optional           bool     `help:"Make the card optional" xor:"mandatory"`
	Options            []string `help:"Replace the options" sep:","`
	Title              string   `help:"Replace the title (the field name is kept)"`
}

// CardsMoveCmd reorders a card
type CardsMoveCmd struct {
	Card     string `arg:"" help:"Card id or field name"`
	Position int    `arg:"" help:"New position, starting at 1"`
}

// CardsRemoveCmd removes a card
type CardsRemoveCmd struct {
	Card string `arg:"" help:"Card id or field name"`
}

// loadCards returns the saved cards in order
func loadCards(ctx context.Context, cli *CLI) ([]domain.CustomCard, error) {
	settings, err := cli.Container.SettingsService.Load(ctx)
	if err != nil {
		return nil, err
	}
	return domain.SortCards(settings.CustomCards), nil
}

func findCard(cards []domain.CustomCard, key string) (domain.CustomCard, error) {
	card, ok := domain.FindCard(cards, key)
	if !ok {
		return domain.CustomCard{}, fmt.Errorf("%w: %s", domain.ErrCardNotFound, key)
	}
	return card, nil
}

// Run executes the list command
func (c *CardsListCmd) Run(cli *CLI) error {
	cards, err := loadCards(context.Background(), cli)
	if err != nil {
		return err
	}

	if c.Format == "json" {
		if cards == nil {
			cards = []domain.CustomCard{}
		}
		data, err := json.MarshalIndent(cards, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal JSON: %w", err)
		}
		fmt.Println(string(data))
		return nil
	}

	if len(cards) == 0 {
		fmt.Println("No custom cards. Use 'qcreview cards add <title>' to create one.")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "#\tField\tType\tMandatory\tOptions")
	fmt.Fprintln(w, "─\t─────\t────\t─────────\t───────")
	for i, card := range cards {
		options := strings.Join(card.Options, ", ")
		if len(card.ObservationOptions) > 0 {
			options += " | " + strings.Join(card.ObservationOptions, ", ")
		}
		if options == "" {
			options = "-"
		}
		fmt.Fprintf(w, "%d\t%s\t%s\t%t\t%s\n", i+1, card.FieldName, card.Type, card.Mandatory, options)
	}
	w.Flush()
	return nil
}

// Run executes the add command
func (c *CardsAddCmd) Run(cli *CLI) error {
	ctx := context.Background()
	cards, err := loadCards(ctx, cli)
	if err != nil {
		return err
	}

	card := domain.NewCustomCard(c.Title, domain.CardType(c.Type), c.Options, c.Mandatory)
	if card.Type == domain.CardDecisionObservation {
		card.ObservationOptions = trimAll(c.ObservationOptions)
	}

	cards, err = domain.AddCard(cards, card)
	if err != nil {
		return err
	}
	if err := cli.Container.SettingsService.SaveCustomCards(ctx, cards); err != nil {
		return err
	}

	logging.Logger.Info("Custom card added", "field", card.FieldName, "type", card.Type)
	fmt.Printf("Added card '%s' (column %s)\n", card.Title, strings.Join(card.Columns(), ", "))
	return nil
}

// Run executes the update command
func (c *CardsUpdateCmd) Run(cli *CLI) error {
	ctx := context.Background()
	cards, err := loadCards(ctx, cli)
	if err != nil {
		return err
	}
	card, err := findCard(cards, c.Card)
	if err != nil {
		return err
	}

	if c.Title != "" {
		card.Title = strings.TrimSpace(c.Title)
	}
	if len(c.Options) > 0 && card.Type != domain.CardText {
		card.Options = trimAll(c.Options)
	}
	if len(c.ObservationOptions) > 0 && card.Type == domain.CardDecisionObservation {
		card.ObservationOptions = trimAll(c.ObservationOptions)
	}
	switch {
	case c.Mandatory:
		card.Mandatory = true
	case c.Optional:
		card.Mandatory = false
	}

	cards, err = domain.UpdateCard(cards, card)
	if err != nil {
		return err
	}
	if err := cli.Container.SettingsService.SaveCustomCards(ctx, cards); err != nil {
		return err
	}

	fmt.Printf("Updated card '%s'\n", card.Title)
	return nil
}

// Run executes the move command
func (c *CardsMoveCmd) Run(cli *CLI) error {
	ctx := context.Background()
	cards, err := loadCards(ctx, cli)
	if err != nil {
		return err
	}
	card, err := findCard(cards, c.Card)
	if err != nil {
		return err
	}

	cards, err = domain.MoveCard(cards, card.ID, c.Position-1)
	if err != nil {
		return err
	}
	if err := cli.Container.SettingsService.SaveCustomCards(ctx, cards); err != nil {
		return err
	}

	fmt.Printf("Moved card '%s'. New order: %s\n", card.Title, strings.Join(domain.CustomColumns(cards), ", "))
	return nil
}

// Run executes the remove command
func (c *CardsRemoveCmd) Run(cli *CLI) error {
	ctx := context.Background()
	cards, err := loadCards(ctx, cli)
	if err != nil {
		return err
	}
	card, err := findCard(cards, c.Card)
	if err != nil {
		return err
	}

	cards, err = domain.RemoveCard(cards, card.ID)
	if err != nil {
		return err
	}
	if err := cli.Container.SettingsService.SaveCustomCards(ctx, cards); err != nil {
		return err
	}

	logging.Logger.Info("Custom card removed", "field", card.FieldName)
	fmt.Printf("Removed card '%s'. Existing CSV files keep the column.\n", card.Title)
	return nil
}

func trimAll(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}
