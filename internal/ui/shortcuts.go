package ui

import (
	"fmt"
	"slices"

	"github.com/imagecheck/qcreview/internal/domain"
	"github.com/imagecheck/qcreview/internal/services"
)

type shortcutKind int

const (
	shortcutConsumed shortcutKind = iota
	shortcutQCObservation
	shortcutRetouchObservation
	shortcutQCDecision
	shortcutRetouchQuality
	shortcutNextAction
)

// shortcut is an option key resolved against the focused panel
type shortcut struct {
	kind   shortcutKind
	option domain.Option
}

// resolveShortcut maps a key to an option. Observations of the focused
// panel win, then its decision set, then next actions. A key bound in the
// decision set of the other panel is swallowed so it never falls through
// to a next action.
func resolveShortcut(key string, focus Panel, settings services.AppSettings) (shortcut, bool) {
	observations, decisions := settings.QCObservations, settings.QCDecisionOptions
	obsKind, decisionKind := shortcutQCObservation, shortcutQCDecision
	other := settings.RetouchDecisionOptions
	if focus == PanelRetouch {
		observations, decisions = settings.RetouchObservations, settings.RetouchDecisionOptions
		obsKind, decisionKind = shortcutRetouchObservation, shortcutRetouchQuality
		other = settings.QCDecisionOptions
	}

	if opt, ok := domain.FindByShortcut(observations, key); ok {
		return shortcut{kind: obsKind, option: opt}, true
	}
	if opt, ok := domain.FindByShortcut(decisions, key); ok {
		return shortcut{kind: decisionKind, option: opt}, true
	}
	if opt, ok := domain.FindByShortcut(other, key); ok {
		return shortcut{kind: shortcutConsumed, option: opt}, true
	}

	actions := slices.DeleteFunc(slices.Clone(settings.NextActionOptions), func(o domain.Option) bool {
		return domain.IsCommentLabel(o.Label)
	})
	if opt, ok := domain.FindByShortcut(actions, key); ok {
		return shortcut{kind: shortcutNextAction, option: opt}, true
	}
	return shortcut{}, false
}

// shortcutOutcome is the effect of applying a shortcut
type shortcutOutcome struct {
	Comment     CommentTarget
	OpenComment bool // a comment observation was just selected
	Record      domain.QCRecord
}

// applyShortcut writes sc onto the record of filename
func applyShortcut(store *services.RecordStore, filename string, sc shortcut) (shortcutOutcome, error) {
	label := sc.option.Label
	var out shortcutOutcome

	switch sc.kind {
	case shortcutQCObservation:
		record, ok := store.ToggleQCObservation(filename, label)
		if !ok {
			return out, fmt.Errorf("QC observations are disabled while the decision is %s", domain.DecisionWrong)
		}
		out.Record = record
		if domain.IsCommentLabel(label) && slices.Contains(domain.SplitObservations(record.QCObservations), label) {
			out.Comment, out.OpenComment = CommentQC, true
		}

	case shortcutRetouchObservation:
		out.Record = store.ToggleRetouchObservation(filename, label)
		if domain.IsCommentLabel(label) && slices.Contains(domain.SplitObservations(out.Record.RetouchObservations), label) {
			out.Comment, out.OpenComment = CommentRetouch, true
		}

	case shortcutQCDecision:
		out.Record = store.SetQCDecision(filename, label)

	case shortcutRetouchQuality:
		out.Record = store.SetRetouchQuality(filename, label)

	case shortcutNextAction:
		out.Record = store.ToggleNextAction(filename, label)

	default:
		out.Record, _ = store.Get(filename)
	}

	return out, nil
}
