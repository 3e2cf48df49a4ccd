package ui

import (
	"fmt"
	"slices"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/imagecheck/qcreview/internal/domain"
	"github.com/imagecheck/qcreview/internal/services"
	"github.com/imagecheck/qcreview/internal/theme"
)

const (
	selectedMarker   = "●"
	unselectedMarker = "○"
	minPanelWidth    = 24
)

// reviewView holds what the review screen renders
type reviewView struct {
	errText string
	focus   Panel
	notice  string
	review  *services.Review
	tip     string
	width   int
}

func (v reviewView) render() string {
	nav := v.review.Navigator
	record, ok := nav.CurrentRecord()
	path, _ := nav.Current()

	var sb strings.Builder
	sb.WriteString(v.renderImageHeader(path))
	sb.WriteString("\n")
	sb.WriteString(renderStatistics(nav.Statistics(), nav.IncompleteOnly()))
	sb.WriteString("\n\n")

	if !ok {
		sb.WriteString(theme.HelpStyle.Render("No images to review"))
		if nav.IncompleteOnly() {
			sb.WriteString(theme.HelpStyle.Render(" (every image is complete, toggle the incomplete filter to see them all)"))
		}
		sb.WriteString("\n")
		sb.WriteString(v.renderStatusLine())
		return sb.String()
	}

	sb.WriteString(v.renderPanels(record))
	sb.WriteString("\n")

	if cards := v.renderCards(record, nav.CustomCards()); cards != "" {
		sb.WriteString(cards)
		sb.WriteString("\n")
	}

	if missing := nav.Missing(); len(missing) > 0 {
		sb.WriteString(theme.MissingStyle.Render("Missing: " + strings.Join(missing, ", ")))
	} else {
		sb.WriteString(theme.CompletedStyle.Render("✓ Complete"))
	}
	sb.WriteString("\n")
	sb.WriteString(v.renderStatusLine())
	return sb.String()
}

func (v reviewView) renderImageHeader(path string) string {
	nav := v.review.Navigator
	if path == "" {
		return theme.PanelTitleStyle.Render(domain.FolderName(nav.Directory()))
	}

	parsed := domain.ParseFilename(path)
	header := theme.PanelTitleStyle.Render(fmt.Sprintf("Image %d/%d", nav.Index()+1, nav.Len())) +
		"  " + theme.NormalStyle.Render(parsed.Filename)

	var details []string
	if parsed.Namespace != "" {
		details = append(details, "Namespace: "+parsed.Namespace)
	}
	if parsed.ReceivedDate != "" {
		details = append(details, "Received: "+parsed.ReceivedDate)
	}
	details = append(details, "Reviewer: "+nav.Reviewer())
	return header + "\n" + theme.HelpStyle.Render(strings.Join(details, "  "))
}

func renderStatistics(stats domain.Statistics, incompleteOnly bool) string {
	parts := []string{
		theme.CompletedStyle.Render(fmt.Sprintf("Completed %d/%d", stats.Completed, stats.Total)),
		theme.RetouchStyle.Render(fmt.Sprintf("Retouch %d", stats.Retouch)),
		theme.RetakeStyle.Render(fmt.Sprintf("Retake %d", stats.Retake)),
		theme.WrongStyle.Render(fmt.Sprintf("Wrong %d", stats.Wrong)),
	}
	line := strings.Join(parts, "  ")
	if incompleteOnly {
		line += "  " + theme.BadgeStyle.Render("incomplete only")
	}
	return line
}

func (v reviewView) renderPanels(record domain.QCRecord) string {
	settings := v.review.Settings
	options := v.review.Store.Options()
	wrong := record.QCDecision == domain.DecisionWrong

	qc := v.optionList(settings.QCDecisionOptions, func(o domain.Option) bool {
		return record.QCDecision == o.Label
	}, false)
	qc += "\n\n" + theme.LabelStyle.Render("Observations") + "\n"
	qc += v.observationList(options.QC, record.QCObservations, wrong)

	retouch := v.optionList(settings.RetouchDecisionOptions, func(o domain.Option) bool {
		return record.RetouchQuality == o.Label
	}, false)
	retouch += "\n\n" + theme.LabelStyle.Render("Observations") + "\n"
	retouch += v.observationList(options.Retouch, record.RetouchObservations, false)

	next := v.optionList(settings.NextActionOptions, func(o domain.Option) bool {
		return record.NextAction == o.Label
	}, false)
	if record.NextActionComment != "" {
		next += "\n\n" + theme.CommentStyle.Render(record.NextActionComment)
	}

	width := max((v.width-6)/3-2, minPanelWidth)
	return lipgloss.JoinHorizontal(lipgloss.Top,
		v.panel("QC Decision", qc, v.focus == PanelQC, width),
		v.panel("Retouch Quality", retouch, v.focus == PanelRetouch, width),
		v.panel("Next Action", next, false, width),
	)
}

func (v reviewView) panel(title, body string, focused bool, width int) string {
	style := theme.PanelStyle.Width(width)
	if focused {
		primary := theme.HexStyle(v.review.Settings.ColorSettings.PrimaryColor, theme.ColorPrimary)
		style = style.BorderForeground(primary.GetForeground())
		title = "▸ " + title
	}
	return style.Render(theme.PanelTitleStyle.Render(title) + "\n" + body)
}

// optionList renders one line per option with its shortcut
func (v reviewView) optionList(options []domain.Option, selected func(domain.Option) bool, disabled bool) string {
	active := theme.HexStyle(v.review.Settings.ColorSettings.ActiveColor, theme.DefaultActiveColor)
	lines := make([]string, 0, len(options))
	for _, o := range options {
		lines = append(lines, renderOption(o, selected(o), disabled, active))
	}
	return strings.Join(lines, "\n")
}

func (v reviewView) observationList(options []domain.Option, current string, disabled bool) string {
	tokens := domain.SplitObservations(current)
	list := v.optionList(options, func(o domain.Option) bool {
		return slices.Contains(tokens, o.Label)
	}, disabled)
	if comment := domain.ObservationComment(current, options); comment != "" {
		list += "\n" + theme.CommentStyle.Render("“"+comment+"”")
	}
	return list
}

func renderOption(o domain.Option, selected, disabled bool, active lipgloss.Style) string {
	key := "   "
	if o.Shortcut != "" {
		key = theme.ShortcutStyle.Render("[" + o.Shortcut + "]")
	}
	switch {
	case disabled:
		return key + " " + theme.OptionDisabledStyle.Render(unselectedMarker+" "+o.Label)
	case selected:
		return key + " " + active.Render(selectedMarker+" "+o.Label)
	default:
		return key + " " + theme.OptionStyle.Render(unselectedMarker+" "+o.Label)
	}
}

// renderCards summarizes the custom card values of record
func (v reviewView) renderCards(record domain.QCRecord, cards []domain.CustomCard) string {
	if len(cards) == 0 {
		return ""
	}

	var lines []string
	for _, card := range domain.SortCards(cards) {
		title := card.Title
		if card.Mandatory {
			title += theme.MandatoryStyle.Render("*")
		}
		value := record.Field(card.FieldName)
		if obs := card.ObservationField(); obs != "" {
			if o := record.Field(obs); o != "" {
				value += " (" + strings.ReplaceAll(o, ";", ", ") + ")"
			}
		}
		if value == "" {
			value = theme.HelpStyle.Render("-")
		}
		lines = append(lines, theme.LabelStyle.Render(title+": ")+theme.NormalStyle.Render(value))
	}
	return strings.Join(lines, "\n")
}

func (v reviewView) renderStatusLine() string {
	switch {
	case v.errText != "":
		return theme.ErrorStyle.Render(v.errText)
	case v.notice != "":
		return theme.SuccessStyle.Render(v.notice)
	default:
		return v.tip
	}
}
