package ui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/imagecheck/qcreview/internal/domain"
	"github.com/imagecheck/qcreview/internal/logging"
	"github.com/imagecheck/qcreview/internal/services"
)

// CardFormResult contains the result of filling the custom cards
type CardFormResult struct {
	Cancelled bool
	Filename  string
	Record    domain.QCRecord
}

// cardValue holds the form state of one card
type cardValue struct {
	card        domain.CustomCard
	observation []string
	selected    []string
	value       string
}

// CardForm is a Bubble Tea component for filling the custom card fields of
// one image
type CardForm struct {
	Completed bool
	filename  string
	form      *huh.Form
	result    CardFormResult
	store     *services.RecordStore
	values    []*cardValue
}

// NewCardForm creates a form with one field per card, two for
// decision_observation cards, preloaded from the record
func NewCardForm(store *services.RecordStore, filename string, cards []domain.CustomCard) *CardForm {
	cf := &CardForm{
		filename: filename,
		result:   CardFormResult{Filename: filename},
		store:    store,
	}

	record, _ := store.Get(filename)

	var fields []huh.Field
	for _, card := range domain.SortCards(cards) {
		v := &cardValue{card: card, value: record.Field(card.FieldName)}
		cf.values = append(cf.values, v)

		title := card.Title
		if card.Mandatory {
			title += " *"
		}

		switch card.Type {
		case domain.CardText:
			fields = append(fields, huh.NewInput().
				Title(title).
				Value(&v.value).
				CharLimit(commentCharLimit))

		case domain.CardMultiSelect:
			v.selected = domain.SplitObservations(v.value)
			fields = append(fields, huh.NewMultiSelect[string]().
				Title(title).
				Options(huh.NewOptions(card.Options...)...).
				Value(&v.selected))

		case domain.CardDecisionObservation:
			fields = append(fields, selectField(title, card.Options, &v.value))
			if len(card.ObservationOptions) > 0 {
				v.observation = domain.SplitObservations(record.Field(card.ObservationField()))
				fields = append(fields, huh.NewMultiSelect[string]().
					Title(card.Title+" observations").
					Options(huh.NewOptions(card.ObservationOptions...)...).
					Value(&v.observation))
			}

		default:
			fields = append(fields, selectField(title, card.Options, &v.value))
		}
	}

	cf.form = huh.NewForm(huh.NewGroup(fields...))
	return cf
}

// selectField is a single choice over options with an explicit empty choice
func selectField(title string, options []string, value *string) huh.Field {
	opts := []huh.Option[string]{huh.NewOption("(none)", "")}
	opts = append(opts, huh.NewOptions(options...)...)
	return huh.NewSelect[string]().
		Title(title).
		Options(opts...).
		Value(value)
}

func (cf *CardForm) Init() tea.Cmd {
	return cf.form.Init()
}

func (cf *CardForm) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if keyMsg.String() == "esc" || keyMsg.String() == "ctrl+c" {
			cf.result.Cancelled = true
			cf.Completed = true
			return cf, nil
		}
	}

	form, cmd := cf.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		cf.form = f
	}

	if cf.form.State == huh.StateCompleted {
		cf.Completed = true
		cf.result.Record = cf.store.Update(cf.filename, cf.Patch())
		logging.Logger.Info("Custom card fields updated", "filename", cf.filename, "cards", len(cf.values))
		return cf, nil
	}

	return cf, cmd
}

func (cf *CardForm) View() string {
	if cf.form != nil {
		return cf.form.View()
	}
	return ""
}

// Result returns the form result
func (cf *CardForm) Result() CardFormResult {
	return cf.result
}

// Patch returns the record fields the form currently holds
func (cf *CardForm) Patch() domain.RecordPatch {
	patch := make(domain.RecordPatch, len(cf.values))
	for _, v := range cf.values {
		switch v.card.Type {
		case domain.CardMultiSelect:
			patch[v.card.FieldName] = domain.JoinObservations(v.selected)
		case domain.CardDecisionObservation:
			patch[v.card.FieldName] = v.value
			if field := v.card.ObservationField(); field != "" {
				patch[field] = domain.JoinObservations(v.observation)
			}
		default:
			patch[v.card.FieldName] = v.value
		}
	}
	return patch
}

// describeCard summarizes a card for lists
func describeCard(card domain.CustomCard) string {
	desc := fmt.Sprintf("%s (%s)", card.Title, card.Type)
	if card.Mandatory {
		desc += " *"
	}
	return desc
}
