package domain

import (
	"slices"
	"strings"
)

// SplitObservations splits a semicolon-joined observation string, trimming
// tokens and dropping blanks.
func SplitObservations(s string) []string {
	var out []string
	for _, tok := range strings.Split(s, ";") {
		if tok = strings.TrimSpace(tok); tok != "" {
			out = append(out, tok)
		}
	}
	return out
}

// JoinObservations is the inverse of SplitObservations.
func JoinObservations(tokens []string) string {
	var kept []string
	for _, tok := range tokens {
		if tok = strings.TrimSpace(tok); tok != "" {
			kept = append(kept, tok)
		}
	}
	return strings.Join(kept, ";")
}

// StripCommentFlag removes the bare "Comment" label token, keeping any
// accompanying free text. Other tokens are kept exactly as written.
func StripCommentFlag(s string) string {
	if s == "" {
		return s
	}
	tokens := strings.Split(s, ";")
	kept := slices.DeleteFunc(tokens, func(tok string) bool {
		return strings.TrimSpace(tok) == "Comment"
	})
	return strings.Join(kept, ";")
}

// ToggleObservation adds or removes label from the observation string.
// Selecting a comment label deselects any other comment label, and
// deselecting one drops the free text with it.
func ToggleObservation(current, label string, options []Option) string {
	tokens := SplitObservations(current)
	known := optionLabels(options)

	if slices.Contains(tokens, label) {
		tokens = slices.DeleteFunc(tokens, func(tok string) bool { return tok == label })
		if IsCommentLabel(label) {
			tokens = slices.DeleteFunc(tokens, func(tok string) bool { return !slices.Contains(known, tok) })
		}
		return JoinObservations(tokens)
	}

	if IsCommentLabel(label) {
		tokens = slices.DeleteFunc(tokens, func(tok string) bool {
			return IsCommentLabel(tok) && slices.Contains(known, tok)
		})
	}
	return JoinObservations(insertBeforeFreeText(tokens, label, known))
}

// ObservationComment returns the free-text part of an observation string:
// every token that is not a configured label.
func ObservationComment(current string, options []Option) string {
	known := optionLabels(options)
	var free []string
	for _, tok := range SplitObservations(current) {
		if !slices.Contains(known, tok) {
			free = append(free, tok)
		}
	}
	return strings.Join(free, "; ")
}

// SetObservationComment replaces the free-text part, keeping labels. The
// comment is only stored while a comment label is selected.
func SetObservationComment(current, comment string, options []Option) string {
	known := optionLabels(options)
	labels := slices.DeleteFunc(SplitObservations(current), func(tok string) bool {
		return !slices.Contains(known, tok)
	})
	if !slices.ContainsFunc(labels, IsCommentLabel) {
		return JoinObservations(labels)
	}
	return JoinObservations(append(labels, strings.ReplaceAll(comment, ";", ",")))
}

func insertBeforeFreeText(tokens []string, label string, known []string) []string {
	idx := slices.IndexFunc(tokens, func(tok string) bool { return !slices.Contains(known, tok) })
	if idx < 0 {
		return append(tokens, label)
	}
	return slices.Insert(tokens, idx, label)
}

func optionLabels(options []Option) []string {
	labels := make([]string, 0, len(options))
	for _, o := range options {
		labels = append(labels, o.Label)
	}
	return labels
}
