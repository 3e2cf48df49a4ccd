package domain

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"slices"
	"strings"
	"sync"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	enTranslations "github.com/go-playground/validator/v10/translations/en"
	"github.com/google/uuid"
)

// CardType is the kind of control a custom card renders.
type CardType string

const (
	CardDecisionObservation CardType = "decision_observation"
	CardMultiSelect         CardType = "multiselect"
	CardSelect              CardType = "select"
	CardText                CardType = "text"
)

// ObservationSuffix is appended to a decision card's field name to form
// its companion observation field.
const ObservationSuffix = "_Observations"

// CustomCard is a user-defined annotation control that contributes one
// field to each record, or two for decision_observation cards.
type CustomCard struct {
	FieldName            string   `json:"fieldName" validate:"required,excludesall=0x2C"`
	ID                   string   `json:"id" validate:"required"`
	Mandatory            bool     `json:"mandatory"`
	ObservationFieldName string   `json:"observationFieldName,omitempty"`
	ObservationOptions   []string `json:"observationOptions,omitempty"`
	Options              []string `json:"options,omitempty" validate:"required_unless=Type text,dive,required"`
	Order                int      `json:"order" validate:"gte=0"`
	Title                string   `json:"title" validate:"required"`
	Type                 CardType `json:"type" validate:"required,oneof=text select multiselect decision_observation"`
}

var (
	fieldNameStrip = regexp.MustCompile(`[^a-zA-Z0-9_]`)
	whitespaceRun  = regexp.MustCompile(`\s+`)

	cardValidatorOnce sync.Once
	cardValidator     *validator.Validate
	cardTranslator    ut.Translator
	cardValidatorErr  error
)

func newCardValidator() (*validator.Validate, ut.Translator, error) {
	validate := validator.New(validator.WithRequiredStructEnabled())

	enLocale := en.New()
	uni := ut.New(enLocale, enLocale)
	trans, _ := uni.GetTranslator("en")
	if err := enTranslations.RegisterDefaultTranslations(validate, trans); err != nil {
		return nil, nil, fmt.Errorf("failed to register default translations: %w", err)
	}

	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return validate, trans, nil
}

// Validate checks the card definition. Field names may not shadow built-in
// record fields.
func (c CustomCard) Validate() error {
	cardValidatorOnce.Do(func() {
		cardValidator, cardTranslator, cardValidatorErr = newCardValidator()
	})
	if cardValidatorErr != nil {
		return cardValidatorErr
	}

	if err := cardValidator.Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			msgs := make([]string, 0, len(verrs))
			for _, fe := range verrs {
				msgs = append(msgs, fe.Translate(cardTranslator))
			}
			return fmt.Errorf("%w: %s", ErrInvalidCard, strings.Join(msgs, "; "))
		}
		return fmt.Errorf("%w: %w", ErrInvalidCard, err)
	}

	for _, col := range c.Columns() {
		if IsCoreField(col) {
			return fmt.Errorf("%w: %q is a built-in field", ErrInvalidCard, col)
		}
	}
	return nil
}

// ObservationField returns the companion observation field name, or "" for
// cards that only contribute one field.
func (c CustomCard) ObservationField() string {
	if c.Type != CardDecisionObservation {
		return ""
	}
	if c.ObservationFieldName != "" {
		return c.ObservationFieldName
	}
	return c.FieldName + ObservationSuffix
}

// Columns returns the record fields this card writes, in CSV order.
func (c CustomCard) Columns() []string {
	if obs := c.ObservationField(); obs != "" {
		return []string{c.FieldName, obs}
	}
	return []string{c.FieldName}
}

// CustomColumns returns the custom CSV columns for cards, in card order.
func CustomColumns(cards []CustomCard) []string {
	var cols []string
	for _, card := range SortCards(cards) {
		cols = append(cols, card.Columns()...)
	}
	return cols
}

// FieldNameFromTitle derives a field name: whitespace runs become
// underscores and anything else outside [a-zA-Z0-9_] is dropped.
func FieldNameFromTitle(title string) string {
	name := whitespaceRun.ReplaceAllString(strings.TrimSpace(title), "_")
	return fieldNameStrip.ReplaceAllString(name, "")
}

// NewCustomCard builds a card with a generated id and field name.
func NewCustomCard(title string, cardType CardType, options []string, mandatory bool) CustomCard {
	card := CustomCard{
		ID:        "custom_" + uuid.New().String(),
		Title:     strings.TrimSpace(title),
		FieldName: FieldNameFromTitle(title),
		Type:      cardType,
		Mandatory: mandatory,
	}
	if cardType != CardText {
		card.Options = cleanOptions(options)
	}
	if cardType == CardDecisionObservation {
		card.ObservationFieldName = card.FieldName + ObservationSuffix
	}
	return card
}

func cleanOptions(options []string) []string {
	var out []string
	for _, o := range options {
		if o = strings.TrimSpace(o); o != "" {
			out = append(out, o)
		}
	}
	return out
}

// SortCards returns a copy of cards ordered by Order, stable on ties.
func SortCards(cards []CustomCard) []CustomCard {
	sorted := slices.Clone(cards)
	slices.SortStableFunc(sorted, func(a, b CustomCard) int {
		return a.Order - b.Order
	})
	return sorted
}

// AddCard validates card and appends it with the next order slot.
func AddCard(cards []CustomCard, card CustomCard) ([]CustomCard, error) {
	card.Order = len(cards)
	if err := card.Validate(); err != nil {
		return cards, err
	}
	for _, existing := range cards {
		if slices.ContainsFunc(existing.Columns(), func(col string) bool {
			return slices.Contains(card.Columns(), col)
		}) {
			return cards, fmt.Errorf("%w: %s", ErrDuplicateField, card.FieldName)
		}
	}
	return append(slices.Clone(cards), card), nil
}

// RemoveCard drops the card with id and renumbers the rest.
func RemoveCard(cards []CustomCard, id string) ([]CustomCard, error) {
	idx := slices.IndexFunc(cards, func(c CustomCard) bool { return c.ID == id })
	if idx < 0 {
		return cards, fmt.Errorf("%w: %s", ErrCardNotFound, id)
	}
	out := SortCards(slices.Delete(slices.Clone(cards), idx, idx+1))
	for i := range out {
		out[i].Order = i
	}
	return out, nil
}

// UpdateCard replaces the card sharing card.ID, keeping its order slot.
func UpdateCard(cards []CustomCard, card CustomCard) ([]CustomCard, error) {
	idx := slices.IndexFunc(cards, func(c CustomCard) bool { return c.ID == card.ID })
	if idx < 0 {
		return cards, fmt.Errorf("%w: %s", ErrCardNotFound, card.ID)
	}
	card.Order = cards[idx].Order
	if err := card.Validate(); err != nil {
		return cards, err
	}
	for i, existing := range cards {
		if i == idx {
			continue
		}
		if slices.ContainsFunc(existing.Columns(), func(col string) bool {
			return slices.Contains(card.Columns(), col)
		}) {
			return cards, fmt.Errorf("%w: %s", ErrDuplicateField, card.FieldName)
		}
	}
	out := slices.Clone(cards)
	out[idx] = card
	return out, nil
}

// MoveCard places the card with id at position (0-based, clamped) and
// renumbers every card.
func MoveCard(cards []CustomCard, id string, position int) ([]CustomCard, error) {
	sorted := SortCards(cards)
	idx := slices.IndexFunc(sorted, func(c CustomCard) bool { return c.ID == id })
	if idx < 0 {
		return cards, fmt.Errorf("%w: %s", ErrCardNotFound, id)
	}
	card := sorted[idx]
	sorted = slices.Delete(sorted, idx, idx+1)
	position = min(max(position, 0), len(sorted))
	sorted = slices.Insert(sorted, position, card)
	for i := range sorted {
		sorted[i].Order = i
	}
	return sorted, nil
}

// FindCard returns the card with the given id or field name.
func FindCard(cards []CustomCard, key string) (CustomCard, bool) {
	for _, c := range cards {
		if c.ID == key || c.FieldName == key {
			return c, true
		}
	}
	return CustomCard{}, false
}
