package domain

import (
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQCRecord_FieldRouting(t *testing.T) {
	var r QCRecord

	r.SetField(FieldQCDecision, DecisionWrong)
	r.SetField(FieldNextActionComment, "call client")
	r.SetField("Lighting", "Dim")

	assert.Equal(t, DecisionWrong, r.QCDecision)
	assert.Equal(t, "call client", r.NextActionComment)
	assert.Equal(t, map[string]string{"Lighting": "Dim"}, r.Custom)
	assert.Equal(t, "Dim", r.Field("Lighting"))
	assert.Equal(t, "", r.Field("Unknown"))
}

func TestQCRecord_Apply(t *testing.T) {
	r := QCRecord{Filename: "a.jpg", QCDecision: DecisionRight, QCObservations: "Outline"}

	r.Apply(RecordPatch{FieldRetouchQuality: QualityGood, "Extra": "1"})

	assert.Equal(t, DecisionRight, r.QCDecision)
	assert.Equal(t, "Outline", r.QCObservations)
	assert.Equal(t, QualityGood, r.RetouchQuality)
	assert.Equal(t, "1", r.Custom["Extra"])
}

func TestQCRecord_CloneIsDeep(t *testing.T) {
	r := QCRecord{Custom: map[string]string{"a": "1"}}

	c := r.Clone()
	c.Custom["a"] = "2"

	assert.Equal(t, "1", r.Custom["a"])
}

func TestQCRecord_JSONIsFlat(t *testing.T) {
	r := QCRecord{Filename: "a.jpg", QCDecision: DecisionRight, Custom: map[string]string{"Lighting": "Dim"}}

	data, err := json.Marshal(r)
	require.NoError(t, err)

	var flat map[string]string
	require.NoError(t, json.Unmarshal(data, &flat))
	assert.Equal(t, "a.jpg", flat["Filename"])
	assert.Equal(t, "Right", flat["QC Decision"])
	assert.Equal(t, "Dim", flat["Lighting"])
	assert.Contains(t, flat, "Next Action Comment")

	var back QCRecord
	require.NoError(t, json.Unmarshal(data, &back))
	assert.Equal(t, r, back)
}

func TestQCRecord_UnmarshalTolerant(t *testing.T) {
	var r QCRecord

	err := json.Unmarshal([]byte(`{"Filename":"a.jpg","Week Number":12,"Score":null,"Flag":true}`), &r)

	require.NoError(t, err)
	assert.Equal(t, "12", r.WeekNumber)
	assert.Equal(t, "", r.Custom["Score"])
	assert.Equal(t, "true", r.Custom["Flag"])
}

func TestNewRecord(t *testing.T) {
	now := time.Date(2024, 3, 5, 7, 8, 9, 0, time.Local)

	r := NewRecord("/imgs/cmp-42-20240301-front-x.jpg", "Alice", now)

	assert.Equal(t, QCRecord{
		WeekNumber:   "10",
		QCDate:       "05/03/2024 07:08:09",
		ReceivedDate: "01/03/2024",
		Namespace:    "front",
		Filename:     "cmp-42-20240301-front-x.jpg",
		QCName:       "Alice",
	}, r)
}
