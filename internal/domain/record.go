package domain

import (
	"fmt"
	"maps"
	"slices"
	"strconv"
	"time"

	"github.com/goccy/go-json"
)

// Record field names. These are also the CSV column headers and the keys
// used in the JSON session state.
const (
	FieldWeekNumber          = "Week Number"
	FieldQCDate              = "QC Date"
	FieldReceivedDate        = "Received Date"
	FieldNamespace           = "Namespace"
	FieldFilename            = "Filename"
	FieldQCName              = "QC Name"
	FieldQCDecision          = "QC Decision"
	FieldQCObservations      = "QC Observations"
	FieldRetouchQuality      = "Retouch Quality"
	FieldRetouchObservations = "Retouch Observations"
	FieldNextAction          = "Next Action"
	FieldNextActionComment   = "Next Action Comment"
)

// BaseColumns is the fixed CSV column order. Custom card fields follow.
var BaseColumns = []string{
	FieldWeekNumber,
	FieldQCDate,
	FieldReceivedDate,
	FieldNamespace,
	FieldFilename,
	FieldQCName,
	FieldQCDecision,
	FieldQCObservations,
	FieldRetouchQuality,
	FieldRetouchObservations,
	FieldNextAction,
}

// coreFields lists every field stored on the struct itself.
var coreFields = append(slices.Clone(BaseColumns), FieldNextActionComment)

// QC decision values
const (
	DecisionRight = "Right"
	DecisionWrong = "Wrong"
)

// Retouch quality values
const (
	QualityGood = "Good"
	QualityBad  = "Bad"
)

// Built-in next actions. Custom labels are also accepted.
const (
	NextActionBlunder = "Blunder"
	NextActionIgnore  = "Ignore"
	NextActionRetake  = "Retake"
	NextActionRetouch = "Retouch"
)

// QCRecord is the annotation data for one image, keyed by base filename.
// Values contributed by custom cards live in Custom.
type QCRecord struct {
	Custom              map[string]string
	Filename            string
	Namespace           string
	NextAction          string
	NextActionComment   string
	QCDate              string
	QCDecision          string
	QCName              string
	QCObservations      string
	ReceivedDate        string
	RetouchObservations string
	RetouchQuality      string
	WeekNumber          string
}

// RecordPatch is a partial update keyed by field name.
type RecordPatch map[string]string

// NewRecord seeds a blank record for filename from its parsed identity.
func NewRecord(filename, reviewer string, now time.Time) QCRecord {
	parsed := ParseFilename(filename)
	return QCRecord{
		WeekNumber:   strconv.Itoa(ISOWeek(now)),
		QCDate:       FormatQCDate(now),
		ReceivedDate: parsed.ReceivedDate,
		Namespace:    parsed.Namespace,
		Filename:     parsed.Filename,
		QCName:       reviewer,
	}
}

// IsCoreField reports whether name is one of the built-in record fields.
func IsCoreField(name string) bool {
	return slices.Contains(coreFields, name)
}

// Field returns the value of the named field, or "" when unset.
func (r *QCRecord) Field(name string) string {
	switch name {
	case FieldWeekNumber:
		return r.WeekNumber
	case FieldQCDate:
		return r.QCDate
	case FieldReceivedDate:
		return r.ReceivedDate
	case FieldNamespace:
		return r.Namespace
	case FieldFilename:
		return r.Filename
	case FieldQCName:
		return r.QCName
	case FieldQCDecision:
		return r.QCDecision
	case FieldQCObservations:
		return r.QCObservations
	case FieldRetouchQuality:
		return r.RetouchQuality
	case FieldRetouchObservations:
		return r.RetouchObservations
	case FieldNextAction:
		return r.NextAction
	case FieldNextActionComment:
		return r.NextActionComment
	}
	return r.Custom[name]
}

// SetField sets the named field. Unknown names go to Custom.
func (r *QCRecord) SetField(name, value string) {
	switch name {
	case FieldWeekNumber:
		r.WeekNumber = value
	case FieldQCDate:
		r.QCDate = value
	case FieldReceivedDate:
		r.ReceivedDate = value
	case FieldNamespace:
		r.Namespace = value
	case FieldFilename:
		r.Filename = value
	case FieldQCName:
		r.QCName = value
	case FieldQCDecision:
		r.QCDecision = value
	case FieldQCObservations:
		r.QCObservations = value
	case FieldRetouchQuality:
		r.RetouchQuality = value
	case FieldRetouchObservations:
		r.RetouchObservations = value
	case FieldNextAction:
		r.NextAction = value
	case FieldNextActionComment:
		r.NextActionComment = value
	default:
		if r.Custom == nil {
			r.Custom = make(map[string]string)
		}
		r.Custom[name] = value
	}
}

// Apply merges patch into the record. Fields absent from patch are kept.
func (r *QCRecord) Apply(patch RecordPatch) {
	for name, value := range patch {
		r.SetField(name, value)
	}
}

// Fields returns a flat copy of every field, core and custom.
func (r *QCRecord) Fields() map[string]string {
	out := make(map[string]string, len(coreFields)+len(r.Custom))
	maps.Copy(out, r.Custom)
	for _, name := range coreFields {
		out[name] = r.Field(name)
	}
	return out
}

// Clone returns a deep copy.
func (r QCRecord) Clone() QCRecord {
	c := r
	if r.Custom != nil {
		c.Custom = maps.Clone(r.Custom)
	}
	return c
}

// MarshalJSON writes the record as a flat object keyed by field name.
func (r QCRecord) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.Fields())
}

// UnmarshalJSON reads a flat object. Non-string values are stringified so
// hand-edited state files still load.
func (r *QCRecord) UnmarshalJSON(data []byte) error {
	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	*r = QCRecord{}
	for name, value := range raw {
		switch v := value.(type) {
		case nil:
			r.SetField(name, "")
		case string:
			r.SetField(name, v)
		default:
			r.SetField(name, fmt.Sprint(v))
		}
	}
	return nil
}
