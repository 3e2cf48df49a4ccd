package services

import (
	"maps"
	"slices"

	"github.com/imagecheck/qcreview/internal/domain"
	"github.com/imagecheck/qcreview/internal/logging"
	"github.com/imagecheck/qcreview/internal/ports"
)

// RecordStore owns the QC records of one review, keyed by base filename.
// Callers receive copies; all mutation goes through the store.
type RecordStore struct {
	clock   ports.Clock
	options ObservationOptions
	records map[string]domain.QCRecord
}

// ObservationOptions are the option sets the store consults when editing
// observation strings
type ObservationOptions struct {
	QC      []domain.Option
	Retouch []domain.Option
}

// DefaultObservationOptions returns the built-in observation sets
func DefaultObservationOptions() ObservationOptions {
	return ObservationOptions{
		QC:      domain.DefaultObservations(),
		Retouch: domain.DefaultObservations(),
	}
}

// NewRecordStore creates an empty RecordStore
func NewRecordStore(clock ports.Clock, options ObservationOptions) *RecordStore {
	return &RecordStore{
		clock:   clock,
		options: options,
		records: make(map[string]domain.QCRecord),
	}
}

// SetObservationOptions replaces the option sets used by the toggle helpers
func (s *RecordStore) SetObservationOptions(options ObservationOptions) {
	s.options = options
}

// Options returns the observation option sets in use
func (s *RecordStore) Options() ObservationOptions {
	return s.options
}

// Get returns a copy of the record stored for filename
func (s *RecordStore) Get(filename string) (domain.QCRecord, bool) {
	record, ok := s.records[domain.BaseFilename(filename)]
	if !ok {
		return domain.QCRecord{}, false
	}
	return record.Clone(), true
}

// Len returns the number of records
func (s *RecordStore) Len() int {
	return len(s.records)
}

// Update merges patch into the record for filename, creating an empty record
// when none exists. Filename always ends up as the normalized key.
func (s *RecordStore) Update(filename string, patch domain.RecordPatch) domain.QCRecord {
	key := domain.BaseFilename(filename)
	record := s.records[key].Clone()
	record.Apply(patch)
	record.Filename = key
	s.records[key] = record
	return record.Clone()
}

// EnsureRecord seeds a record for filename when none exists. It reports
// whether a record was created.
func (s *RecordStore) EnsureRecord(filename, reviewer string) (domain.QCRecord, bool) {
	key := domain.BaseFilename(filename)
	if record, ok := s.records[key]; ok {
		return record.Clone(), false
	}

	record := domain.NewRecord(key, reviewer, s.clock.Now())
	s.records[key] = record
	logging.Logger.Info("Record created",
		"filename", key,
		"week", record.WeekNumber,
		"qcDate", record.QCDate,
		"receivedDate", record.ReceivedDate,
		"namespace", record.Namespace)
	return record.Clone(), true
}

// Snapshot returns a deep copy of every record
func (s *RecordStore) Snapshot() map[string]domain.QCRecord {
	out := make(map[string]domain.QCRecord, len(s.records))
	for key, record := range s.records {
		out[key] = record.Clone()
	}
	return out
}

// Replace swaps the whole record set, normalizing keys and Filename
func (s *RecordStore) Replace(records map[string]domain.QCRecord) {
	s.records = make(map[string]domain.QCRecord, len(records))
	for _, key := range slices.Sorted(maps.Keys(records)) {
		normalized := domain.BaseFilename(key)
		record := records[key].Clone()
		record.Filename = normalized
		s.records[normalized] = record
	}
}

// SetQCDecision sets the QC decision. Wrong clears the QC observations.
func (s *RecordStore) SetQCDecision(filename, decision string) domain.QCRecord {
	patch := domain.RecordPatch{domain.FieldQCDecision: decision}
	if decision == domain.DecisionWrong {
		patch[domain.FieldQCObservations] = ""
	}
	return s.Update(filename, patch)
}

// ToggleQCDecision sets decision, or clears it when it is already selected
func (s *RecordStore) ToggleQCDecision(filename, decision string) domain.QCRecord {
	current, _ := s.Get(filename)
	if current.QCDecision == decision {
		return s.Update(filename, domain.RecordPatch{domain.FieldQCDecision: ""})
	}
	return s.SetQCDecision(filename, decision)
}

// SetRetouchQuality sets the retouch quality. Good also sets the next
// action to Ignore.
func (s *RecordStore) SetRetouchQuality(filename, quality string) domain.QCRecord {
	patch := domain.RecordPatch{domain.FieldRetouchQuality: quality}
	if quality == domain.QualityGood {
		patch[domain.FieldNextAction] = domain.NextActionIgnore
	}
	return s.Update(filename, patch)
}

// ToggleNextAction sets action, or clears it when it is already selected
func (s *RecordStore) ToggleNextAction(filename, action string) domain.QCRecord {
	current, _ := s.Get(filename)
	if current.NextAction == action {
		action = ""
	}
	return s.Update(filename, domain.RecordPatch{domain.FieldNextAction: action})
}

// SetNextActionComment stores the free-text next action comment
func (s *RecordStore) SetNextActionComment(filename, comment string) domain.QCRecord {
	return s.Update(filename, domain.RecordPatch{domain.FieldNextActionComment: comment})
}

// ToggleQCObservation toggles label on the QC observations. It reports false
// and leaves the record alone while the decision is Wrong.
func (s *RecordStore) ToggleQCObservation(filename, label string) (domain.QCRecord, bool) {
	current, _ := s.Get(filename)
	if current.QCDecision == domain.DecisionWrong {
		return current, false
	}
	value := domain.ToggleObservation(current.QCObservations, label, s.options.QC)
	return s.Update(filename, domain.RecordPatch{domain.FieldQCObservations: value}), true
}

// ToggleRetouchObservation toggles label on the retouch observations
func (s *RecordStore) ToggleRetouchObservation(filename, label string) domain.QCRecord {
	current, _ := s.Get(filename)
	value := domain.ToggleObservation(current.RetouchObservations, label, s.options.Retouch)
	return s.Update(filename, domain.RecordPatch{domain.FieldRetouchObservations: value})
}

// SetQCComment replaces the free-text part of the QC observations
func (s *RecordStore) SetQCComment(filename, comment string) (domain.QCRecord, bool) {
	current, _ := s.Get(filename)
	if current.QCDecision == domain.DecisionWrong {
		return current, false
	}
	value := domain.SetObservationComment(current.QCObservations, comment, s.options.QC)
	return s.Update(filename, domain.RecordPatch{domain.FieldQCObservations: value}), true
}

// SetRetouchComment replaces the free-text part of the retouch observations
func (s *RecordStore) SetRetouchComment(filename, comment string) domain.QCRecord {
	current, _ := s.Get(filename)
	value := domain.SetObservationComment(current.RetouchObservations, comment, s.options.Retouch)
	return s.Update(filename, domain.RecordPatch{domain.FieldRetouchObservations: value})
}

// SetCardText stores a text card value
func (s *RecordStore) SetCardText(filename string, card domain.CustomCard, value string) domain.QCRecord {
	return s.Update(filename, domain.RecordPatch{card.FieldName: value})
}

// ToggleCardOption updates a select-like card. Select and decision cards hold
// one option and clear it when chosen again; multiselect cards hold a
// semicolon-joined set.
func (s *RecordStore) ToggleCardOption(filename string, card domain.CustomCard, option string) domain.QCRecord {
	current, _ := s.Get(filename)
	value := current.Field(card.FieldName)

	switch card.Type {
	case domain.CardMultiSelect:
		tokens := domain.SplitObservations(value)
		if slices.Contains(tokens, option) {
			tokens = slices.DeleteFunc(tokens, func(tok string) bool { return tok == option })
		} else {
			tokens = append(tokens, option)
		}
		value = domain.JoinObservations(tokens)
	default:
		if value == option {
			value = ""
		} else {
			value = option
		}
	}
	return s.Update(filename, domain.RecordPatch{card.FieldName: value})
}

// ToggleCardObservation toggles label on the companion observation field of
// a decision_observation card
func (s *RecordStore) ToggleCardObservation(filename string, card domain.CustomCard, label string) domain.QCRecord {
	current, _ := s.Get(filename)
	field := card.ObservationField()
	if field == "" {
		return current
	}
	tokens := domain.SplitObservations(current.Field(field))
	if slices.Contains(tokens, label) {
		tokens = slices.DeleteFunc(tokens, func(tok string) bool { return tok == label })
	} else {
		tokens = append(tokens, label)
	}
	return s.Update(filename, domain.RecordPatch{field: domain.JoinObservations(tokens)})
}

// ApplyTags copies the annotation fields of source onto filename. A Wrong
// decision carries no QC observations.
func (s *RecordStore) ApplyTags(filename string, source domain.QCRecord) domain.QCRecord {
	qcObservations := source.QCObservations
	if source.QCDecision == domain.DecisionWrong {
		qcObservations = ""
	}
	return s.Update(filename, domain.RecordPatch{
		domain.FieldQCDecision:          source.QCDecision,
		domain.FieldQCObservations:      qcObservations,
		domain.FieldRetouchQuality:      source.RetouchQuality,
		domain.FieldRetouchObservations: source.RetouchObservations,
		domain.FieldNextAction:          source.NextAction,
		domain.FieldNextActionComment:   source.NextActionComment,
	})
}
