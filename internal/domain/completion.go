package domain

import "strings"

// MissingFields lists the mandatory fields record does not satisfy, in a
// stable order. Observations are only required to justify a Right decision
// or a Bad retouch quality.
func MissingFields(record QCRecord, cards []CustomCard) []string {
	var missing []string

	if record.QCDecision != DecisionRight && record.QCDecision != DecisionWrong {
		missing = append(missing, FieldQCDecision)
	}
	if record.QCDecision == DecisionRight && isBlank(record.QCObservations) {
		missing = append(missing, FieldQCObservations)
	}

	if record.RetouchQuality != QualityGood && record.RetouchQuality != QualityBad {
		missing = append(missing, FieldRetouchQuality)
	}
	if record.RetouchQuality == QualityBad && isBlank(record.RetouchObservations) {
		missing = append(missing, FieldRetouchObservations)
	}

	if isBlank(record.NextAction) {
		missing = append(missing, FieldNextAction)
	}

	for _, card := range cards {
		if card.Mandatory && isBlank(record.Field(card.FieldName)) {
			missing = append(missing, card.FieldName)
		}
	}

	return missing
}

// IsComplete reports whether record has every mandatory field.
func IsComplete(record QCRecord, cards []CustomCard) bool {
	return len(MissingFields(record, cards)) == 0
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
