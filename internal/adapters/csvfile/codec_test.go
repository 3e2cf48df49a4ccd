package csvfile

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/imagecheck/qcreview/internal/domain"
)

const baseHeader = "Week Number,QC Date,Received Date,Namespace,Filename,QC Name,QC Decision,QC Observations,Retouch Quality,Retouch Observations,Next Action"

func TestEncode_HeaderAndFilter(t *testing.T) {
	cards := []domain.CustomCard{
		{FieldName: "Tone", Type: domain.CardDecisionObservation, Order: 1},
		{FieldName: "Lighting", Type: domain.CardSelect, Order: 0},
	}
	records := map[string]domain.QCRecord{
		"b.jpg": {Filename: "b.jpg", QCDecision: domain.DecisionWrong, QCName: "Alice"},
		"a.jpg": {
			Filename:       "/full/path/a.jpg",
			QCDecision:     domain.DecisionRight,
			QCObservations: "Outline;Comment;halo",
			Custom:         map[string]string{"Lighting": "Dim", "Tone_Observations": "Warm"},
		},
		"c.jpg": {Filename: "c.jpg", QCName: "Alice", NextAction: domain.NextActionRetake},
	}

	content, n, err := Encode(records, cards)

	require.NoError(t, err)
	assert.Equal(t, 2, n)
	lines := strings.Split(content, "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, baseHeader+",Lighting,Tone,Tone_Observations", lines[0])
	assert.Equal(t, ",,,,a.jpg,,Right,Outline;halo,,,,Dim,,Warm", lines[1])
	assert.Equal(t, ",,,,b.jpg,Alice,Wrong,,,,,,,", lines[2])
	assert.Equal(t, "", lines[3])
}

func TestEncode_DecisionFilterIsLooserThanCompletion(t *testing.T) {
	incomplete := domain.QCRecord{Filename: "a.jpg", QCDecision: domain.DecisionRight}
	require.False(t, domain.IsComplete(incomplete, nil))

	_, n, err := Encode(map[string]domain.QCRecord{"a.jpg": incomplete}, nil)

	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestEncode_QuotesOnlyWhenNeeded(t *testing.T) {
	records := map[string]domain.QCRecord{
		"a.jpg": {Filename: "a.jpg", QCDecision: domain.DecisionRight, QCObservations: `Comment;too dark, "grainy"`},
	}

	content, _, err := Encode(records, nil)

	require.NoError(t, err)
	assert.Contains(t, content, `,"too dark, ""grainy""",`)
	assert.NotContains(t, content, `"a.jpg"`)
}

func TestEncode_KeepsObservationSpacing(t *testing.T) {
	records := map[string]domain.QCRecord{
		"a.jpg": {Filename: "a.jpg", QCDecision: domain.DecisionWrong, RetouchObservations: "Outline; Shadow"},
		"b.jpg": {Filename: "b.jpg", QCDecision: domain.DecisionRight, QCObservations: "Outline; Comment; soft edge"},
	}

	content, _, err := Encode(records, nil)
	require.NoError(t, err)
	loaded, err := Decode(content)
	require.NoError(t, err)

	assert.Equal(t, "Outline; Shadow", loaded["a.jpg"].RetouchObservations)
	assert.Equal(t, "Outline; soft edge", loaded["b.jpg"].QCObservations)
}

func TestEncode_EmptyWritesHeader(t *testing.T) {
	content, n, err := Encode(nil, nil)

	require.NoError(t, err)
	assert.Equal(t, 0, n)
	assert.Equal(t, baseHeader+"\n", content)
}

func TestDecode(t *testing.T) {
	content := "\ufeff" + baseHeader + ",Lighting\n" +
		"10,05/03/2024 10:00:00,,front,C:\\shots\\a.jpg,Alice,Right,Outline,Good,,Ignore,Dim\n" +
		",,,,,Bob,Wrong,,,,,\n" +
		"\n" +
		"11,,,,b.jpg,Bob,Wrong\n"

	records, err := Decode(content)

	require.NoError(t, err)
	require.Len(t, records, 2)
	a := records["a.jpg"]
	assert.Equal(t, "a.jpg", a.Filename)
	assert.Equal(t, "10", a.WeekNumber)
	assert.Equal(t, domain.DecisionRight, a.QCDecision)
	assert.Equal(t, "Dim", a.Field("Lighting"))
	b := records["b.jpg"]
	assert.Equal(t, domain.DecisionWrong, b.QCDecision)
	assert.Equal(t, "", b.NextAction)
}

func TestDecode_Empty(t *testing.T) {
	records, err := Decode("")

	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestRoundTrip_Property(t *testing.T) {
	cell := rapid.StringMatching(`[A-Za-z0-9 ,"./:]{0,12}`)
	token := rapid.SampledFrom([]string{"Outline", "Shadow", "Comment", "dark edge", " Shadow", "Outline ", " Comment ", " dark edge"})
	obs := rapid.Custom(func(t *rapid.T) string {
		return strings.Join(rapid.SliceOfN(token, 0, 3).Draw(t, "tokens"), ";")
	})
	cards := []domain.CustomCard{
		{FieldName: "Lighting", Type: domain.CardText, Order: 0},
		{FieldName: "Tone", Type: domain.CardDecisionObservation, Order: 1},
	}

	rapid.Check(t, func(t *rapid.T) {
		n := rapid.IntRange(0, 6).Draw(t, "n")
		records := make(map[string]domain.QCRecord)
		for i := 0; i < n; i++ {
			name := rapid.StringMatching(`[a-z]{1,6}-[0-9]{1,3}\.jpg`).Draw(t, "name")
			dir := rapid.SampledFrom([]string{"", "/imgs/", `C:\imgs\`}).Draw(t, "dir")
			r := domain.QCRecord{
				WeekNumber:          cell.Draw(t, "week"),
				QCDate:              cell.Draw(t, "date"),
				ReceivedDate:        cell.Draw(t, "received"),
				Namespace:           cell.Draw(t, "namespace"),
				Filename:            dir + name,
				QCName:              cell.Draw(t, "qc_name"),
				QCDecision:          rapid.SampledFrom([]string{"", domain.DecisionRight, domain.DecisionWrong}).Draw(t, "decision"),
				QCObservations:      obs.Draw(t, "qc_obs"),
				RetouchQuality:      rapid.SampledFrom([]string{"", domain.QualityGood, domain.QualityBad}).Draw(t, "quality"),
				RetouchObservations: obs.Draw(t, "retouch_obs"),
				NextAction:          cell.Draw(t, "next_action"),
			}
			r.SetField("Lighting", cell.Draw(t, "lighting"))
			r.SetField("Tone", cell.Draw(t, "tone"))
			r.SetField("Tone_Observations", cell.Draw(t, "tone_obs"))
			records[name] = r
		}

		content, _, err := Encode(records, cards)
		if err != nil {
			t.Fatalf("encode: %v", err)
		}
		loaded, err := Decode(content)
		if err != nil {
			t.Fatalf("decode: %v", err)
		}

		expected := 0
		for key, original := range records {
			if original.QCDecision == "" {
				if _, ok := loaded[key]; ok {
					t.Fatalf("record %s without decision was exported", key)
				}
				continue
			}
			expected++
			got, ok := loaded[key]
			if !ok {
				t.Fatalf("record %s missing after round trip", key)
			}
			for _, col := range Columns(cards) {
				want := original.Field(col)
				switch col {
				case domain.FieldFilename:
					want = key
				case domain.FieldQCObservations, domain.FieldRetouchObservations:
					want = domain.StripCommentFlag(want)
				}
				if got.Field(col) != want {
					t.Fatalf("%s/%s: got %q want %q", key, col, got.Field(col), want)
				}
			}
		}
		if len(loaded) != expected {
			t.Fatalf("loaded %d records, want %d", len(loaded), expected)
		}
	})
}
