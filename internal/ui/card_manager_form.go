package ui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/imagecheck/qcreview/internal/domain"
	"github.com/imagecheck/qcreview/internal/logging"
	"github.com/imagecheck/qcreview/internal/services"
	"github.com/imagecheck/qcreview/internal/theme"
)

// cardsSavedMsg is sent when the card change has been stored
type cardsSavedMsg struct {
	cards []domain.CustomCard
	err   error
}

type cardManagerMode string

const (
	cardModeAdd    cardManagerMode = "add"
	cardModeRemove cardManagerMode = "remove"
)

// CardManagerResult contains the result of the card manager form
type CardManagerResult struct {
	Cancelled bool
	Cards     []domain.CustomCard
	Error     error
	Message   string
}

// CardManagerForm is a Bubble Tea component for adding or removing custom
// cards of the open review
type CardManagerForm struct {
	Completed bool

	cardType           string
	form               *huh.Form
	mandatory          bool
	mode               string
	observationOptions string
	options            string
	removeID           string
	result             CardManagerResult
	review             *services.Review
	reviewService      *services.ReviewService
	saving             bool
	spinner            spinner.Model
	title              string
}

// NewCardManagerForm creates the add/remove card form
func NewCardManagerForm(reviewService *services.ReviewService, review *services.Review) *CardManagerForm {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(theme.ColorPrimary)

	cm := &CardManagerForm{
		cardType:      string(domain.CardSelect),
		mode:          string(cardModeAdd),
		review:        review,
		reviewService: reviewService,
		spinner:       s,
	}

	cards := review.Navigator.CustomCards()
	modes := []huh.Option[string]{huh.NewOption("Add a card", string(cardModeAdd))}
	if len(cards) > 0 {
		modes = append(modes, huh.NewOption("Remove a card", string(cardModeRemove)))
	}

	removeOptions := make([]huh.Option[string], 0, len(cards))
	for _, card := range domain.SortCards(cards) {
		removeOptions = append(removeOptions, huh.NewOption(describeCard(card), card.ID))
	}

	adding := func() bool { return cm.mode != string(cardModeAdd) }
	removing := func() bool { return cm.mode != string(cardModeRemove) }

	cm.form = huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Custom cards").
				Options(modes...).
				Value(&cm.mode),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("Card title").
				Description("The field name is derived from the title").
				Value(&cm.title).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("title required")
					}
					return nil
				}),
			huh.NewSelect[string]().
				Title("Card type").
				Options(
					huh.NewOption("Text", string(domain.CardText)),
					huh.NewOption("Select", string(domain.CardSelect)),
					huh.NewOption("Multi select", string(domain.CardMultiSelect)),
					huh.NewOption("Decision with observations", string(domain.CardDecisionObservation)),
				).
				Value(&cm.cardType),
			huh.NewInput().
				Title("Options").
				Description("Comma separated, not used by text cards").
				Value(&cm.options),
			huh.NewConfirm().
				Title("Mandatory?").
				Description("Mandatory cards must be filled before moving on").
				Value(&cm.mandatory).
				Affirmative("Yes").
				Negative("No"),
		).WithHideFunc(adding),
		huh.NewGroup(
			huh.NewInput().
				Title("Observation options").
				Description("Comma separated, optional").
				Value(&cm.observationOptions),
		).WithHideFunc(func() bool {
			return adding() || cm.cardType != string(domain.CardDecisionObservation)
		}),
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Card to remove").
				Options(removeOptions...).
				Value(&cm.removeID),
		).WithHideFunc(removing),
	)

	return cm
}

func (cm *CardManagerForm) Init() tea.Cmd {
	return cm.form.Init()
}

func (cm *CardManagerForm) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(cardsSavedMsg); ok {
		cm.saving = false
		cm.Completed = true
		cm.result.Cards = msg.cards
		if msg.err != nil {
			logging.Logger.Error("Failed to update custom cards", "error", msg.err)
			cm.result.Error = msg.err
		}
		return cm, nil
	}

	if cm.saving {
		var cmd tea.Cmd
		cm.spinner, cmd = cm.spinner.Update(msg)
		return cm, cmd
	}

	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if keyMsg.String() == "esc" || keyMsg.String() == "ctrl+c" {
			cm.Completed = true
			cm.result.Cancelled = true
			return cm, nil
		}
	}

	form, cmd := cm.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		cm.form = f
	}

	if cm.form.State == huh.StateCompleted && !cm.saving {
		cm.saving = true
		return cm, tea.Batch(cm.saveCmd(), cm.spinner.Tick)
	}

	return cm, cmd
}

func (cm *CardManagerForm) View() string {
	if cm.saving {
		return fmt.Sprintf("\n%s Saving cards...\n", cm.spinner.View())
	}
	if cm.form != nil {
		return cm.form.View()
	}
	return ""
}

// Result returns the form result
func (cm *CardManagerForm) Result() CardManagerResult {
	return cm.result
}

func (cm *CardManagerForm) saveCmd() tea.Cmd {
	return func() tea.Msg {
		cards, err := cm.apply(context.Background())
		return cardsSavedMsg{cards: cards, err: err}
	}
}

// apply adds or removes the card chosen in the form
func (cm *CardManagerForm) apply(ctx context.Context) ([]domain.CustomCard, error) {
	if cm.mode == string(cardModeRemove) {
		card, ok := domain.FindCard(cm.review.Navigator.CustomCards(), cm.removeID)
		if !ok {
			return nil, domain.ErrCardNotFound
		}
		cm.result.Message = fmt.Sprintf("Card %q removed", card.Title)
		return cm.reviewService.RemoveCustomCard(ctx, cm.review, cm.removeID)
	}

	card := domain.NewCustomCard(cm.title, domain.CardType(cm.cardType), splitList(cm.options), cm.mandatory)
	if card.Type == domain.CardDecisionObservation {
		card.ObservationOptions = splitList(cm.observationOptions)
	}

	cm.result.Message = fmt.Sprintf("Card %q added", card.Title)
	return cm.reviewService.AddCustomCard(ctx, cm.review, card)
}

// splitList parses a comma separated list, dropping blanks
func splitList(s string) []string {
	var items []string
	for item := range strings.SplitSeq(s, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}
