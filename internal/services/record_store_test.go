package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/imagecheck/qcreview/internal/domain"
)

func newTestStore() (*RecordStore, *fixedClock) {
	clock := newFixedClock()
	return NewRecordStore(clock, DefaultObservationOptions()), clock
}

func TestRecordStore_EnsureRecord(t *testing.T) {
	store, _ := newTestStore()

	record, created := store.EnsureRecord("/photos/batch/IMG-ABC123-20250301-acme-front.jpg", "Alice")

	require.True(t, created)
	assert.Equal(t, "IMG-ABC123-20250301-acme-front.jpg", record.Filename)
	assert.Equal(t, "Alice", record.QCName)
	assert.Equal(t, "14/03/2025 09:30:00", record.QCDate)
	assert.Equal(t, "11", record.WeekNumber)
	assert.Equal(t, "01/03/2025", record.ReceivedDate)
	assert.Equal(t, "acme", record.Namespace)
	assert.Empty(t, record.QCDecision)
	assert.Empty(t, record.QCObservations)
	assert.Empty(t, record.RetouchQuality)
	assert.Empty(t, record.RetouchObservations)
	assert.Empty(t, record.NextAction)

	again, created := store.EnsureRecord(`C:\photos\IMG-ABC123-20250301-acme-front.jpg`, "Bob")
	assert.False(t, created)
	assert.Equal(t, "Alice", again.QCName)
	assert.Equal(t, 1, store.Len())
}

func TestRecordStore_GetReturnsCopy(t *testing.T) {
	store, _ := newTestStore()
	store.Update("a.jpg", domain.RecordPatch{"Angle": "front"})

	record, ok := store.Get("a.jpg")
	require.True(t, ok)
	record.Custom["Angle"] = "rear"
	record.QCDecision = domain.DecisionWrong

	stored, _ := store.Get("a.jpg")
	assert.Equal(t, "front", stored.Custom["Angle"])
	assert.Empty(t, stored.QCDecision)
}

func TestRecordStore_UpdateKeepsFieldsAndNormalizesFilename(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		store, _ := newTestStore()
		name := rapid.StringMatching(`[A-Za-z0-9_-]{1,12}\.jpg`).Draw(t, "name")
		dir := rapid.SampledFrom([]string{"", "/srv/qc/", `D:\qc\`, "batch/"}).Draw(t, "dir")

		first := domain.RecordPatch{
			domain.FieldQCDecision: rapid.SampledFrom([]string{"", domain.DecisionRight, domain.DecisionWrong}).Draw(t, "decision"),
			domain.FieldNextAction: rapid.SampledFrom([]string{"", domain.NextActionRetake, "Custom"}).Draw(t, "action"),
			"Angle":                rapid.StringMatching(`[a-z]{0,6}`).Draw(t, "angle"),
		}
		store.Update(dir+name, first)

		second := domain.RecordPatch{
			domain.FieldRetouchQuality: rapid.SampledFrom([]string{domain.QualityGood, domain.QualityBad}).Draw(t, "quality"),
			domain.FieldFilename:       "/elsewhere/" + rapid.StringMatching(`[a-z]{1,5}`).Draw(t, "bogus"),
		}
		updated := store.Update(dir+name, second)

		if updated.Filename != name {
			t.Fatalf("Filename = %q, want %q", updated.Filename, name)
		}
		for field, value := range first {
			if got := updated.Field(field); got != value {
				t.Fatalf("field %q = %q, want %q", field, got, value)
			}
		}
		if got := updated.RetouchQuality; got != second[domain.FieldRetouchQuality] {
			t.Fatalf("Retouch Quality = %q", got)
		}
		stored, ok := store.Get(name)
		if !ok || stored.Filename != name {
			t.Fatalf("record not stored under %q", name)
		}
	})
}

func TestRecordStore_Replace(t *testing.T) {
	store, _ := newTestStore()
	store.Update("old.jpg", domain.RecordPatch{domain.FieldQCDecision: domain.DecisionRight})

	store.Replace(map[string]domain.QCRecord{
		"/full/path/a.jpg": {Filename: "/full/path/a.jpg", QCDecision: domain.DecisionWrong},
		`b.jpg`:            {Filename: "b.jpg"},
	})

	assert.Equal(t, 2, store.Len())
	_, ok := store.Get("old.jpg")
	assert.False(t, ok)

	a, ok := store.Get("a.jpg")
	require.True(t, ok)
	assert.Equal(t, "a.jpg", a.Filename)
	assert.Equal(t, domain.DecisionWrong, a.QCDecision)
}

func TestRecordStore_SnapshotIsDeep(t *testing.T) {
	store, _ := newTestStore()
	store.Update("a.jpg", domain.RecordPatch{"Angle": "front"})

	snap := store.Snapshot()
	snap["a.jpg"].Custom["Angle"] = "rear"

	stored, _ := store.Get("a.jpg")
	assert.Equal(t, "front", stored.Custom["Angle"])
}

func TestRecordStore_WrongClearsObservations(t *testing.T) {
	store, _ := newTestStore()
	store.EnsureRecord("a.jpg", "Alice")
	store.Update("a.jpg", domain.RecordPatch{
		domain.FieldQCDecision:     domain.DecisionRight,
		domain.FieldQCObservations: "Outline;Shadow",
	})

	record := store.SetQCDecision("a.jpg", domain.DecisionWrong)

	assert.Equal(t, domain.DecisionWrong, record.QCDecision)
	assert.Empty(t, record.QCObservations)
	assert.NotContains(t, domain.MissingFields(record, nil), domain.FieldQCObservations)
}

func TestRecordStore_RightKeepsObservations(t *testing.T) {
	store, _ := newTestStore()
	store.Update("a.jpg", domain.RecordPatch{domain.FieldQCObservations: "Outline"})

	record := store.SetQCDecision("a.jpg", domain.DecisionRight)

	assert.Equal(t, "Outline", record.QCObservations)
}

func TestRecordStore_ToggleQCDecision(t *testing.T) {
	store, _ := newTestStore()

	record := store.ToggleQCDecision("a.jpg", domain.DecisionRight)
	assert.Equal(t, domain.DecisionRight, record.QCDecision)

	record = store.ToggleQCDecision("a.jpg", domain.DecisionRight)
	assert.Empty(t, record.QCDecision)
}

func TestRecordStore_QCObservationsLockedWhileWrong(t *testing.T) {
	store, _ := newTestStore()
	store.SetQCDecision("a.jpg", domain.DecisionWrong)

	record, changed := store.ToggleQCObservation("a.jpg", "Outline")
	assert.False(t, changed)
	assert.Empty(t, record.QCObservations)

	record, changed = store.SetQCComment("a.jpg", "note")
	assert.False(t, changed)
	assert.Empty(t, record.QCObservations)

	store.SetQCDecision("a.jpg", domain.DecisionRight)
	record, changed = store.ToggleQCObservation("a.jpg", "Outline")
	assert.True(t, changed)
	assert.Equal(t, "Outline", record.QCObservations)
}

func TestRecordStore_ObservationComment(t *testing.T) {
	store, _ := newTestStore()
	store.SetQCDecision("a.jpg", domain.DecisionRight)

	store.ToggleQCObservation("a.jpg", "Shadow")
	store.ToggleQCObservation("a.jpg", "Comment")
	record, changed := store.SetQCComment("a.jpg", "edge halo")
	require.True(t, changed)
	assert.Equal(t, "Shadow;Comment;edge halo", record.QCObservations)

	record, _ = store.ToggleQCObservation("a.jpg", "Comment")
	assert.Equal(t, "Shadow", record.QCObservations)
}

func TestRecordStore_RetouchObservations(t *testing.T) {
	store, _ := newTestStore()

	store.ToggleRetouchObservation("a.jpg", "Background")
	record := store.ToggleRetouchObservation("a.jpg", "Outline")
	assert.Equal(t, "Background;Outline", record.RetouchObservations)

	store.ToggleRetouchObservation("a.jpg", "Comment")
	record = store.SetRetouchComment("a.jpg", "soft mask")
	assert.Equal(t, "Background;Outline;Comment;soft mask", record.RetouchObservations)

	record = store.ToggleRetouchObservation("a.jpg", "Background")
	assert.Equal(t, "Outline;Comment;soft mask", record.RetouchObservations)
}

func TestRecordStore_GoodQualitySetsIgnore(t *testing.T) {
	store, _ := newTestStore()

	record := store.SetRetouchQuality("a.jpg", domain.QualityGood)
	assert.Equal(t, domain.NextActionIgnore, record.NextAction)

	store.ToggleNextAction("a.jpg", domain.NextActionRetouch)
	record = store.SetRetouchQuality("a.jpg", domain.QualityBad)
	assert.Equal(t, domain.QualityBad, record.RetouchQuality)
	assert.Equal(t, domain.NextActionRetouch, record.NextAction)
}

func TestRecordStore_ToggleNextAction(t *testing.T) {
	store, _ := newTestStore()

	record := store.ToggleNextAction("a.jpg", domain.NextActionRetake)
	assert.Equal(t, domain.NextActionRetake, record.NextAction)

	record = store.ToggleNextAction("a.jpg", domain.NextActionBlunder)
	assert.Equal(t, domain.NextActionBlunder, record.NextAction)

	record = store.ToggleNextAction("a.jpg", domain.NextActionBlunder)
	assert.Empty(t, record.NextAction)
}

func TestRecordStore_CustomCards(t *testing.T) {
	store, _ := newTestStore()
	text := domain.NewCustomCard("Plate Number", domain.CardText, nil, false)
	sel := domain.NewCustomCard("Angle", domain.CardSelect, []string{"Front", "Rear"}, true)
	multi := domain.NewCustomCard("Damage", domain.CardMultiSelect, []string{"Dent", "Scratch"}, false)
	decision := domain.NewCustomCard("Wheels", domain.CardDecisionObservation, []string{"OK", "Bad"}, false)

	record := store.SetCardText("a.jpg", text, "KA01")
	assert.Equal(t, "KA01", record.Field("Plate_Number"))

	store.ToggleCardOption("a.jpg", sel, "Front")
	record = store.ToggleCardOption("a.jpg", sel, "Rear")
	assert.Equal(t, "Rear", record.Field("Angle"))
	record = store.ToggleCardOption("a.jpg", sel, "Rear")
	assert.Empty(t, record.Field("Angle"))

	store.ToggleCardOption("a.jpg", multi, "Dent")
	record = store.ToggleCardOption("a.jpg", multi, "Scratch")
	assert.Equal(t, "Dent;Scratch", record.Field("Damage"))
	record = store.ToggleCardOption("a.jpg", multi, "Dent")
	assert.Equal(t, "Scratch", record.Field("Damage"))

	store.ToggleCardOption("a.jpg", decision, "Bad")
	record = store.ToggleCardObservation("a.jpg", decision, "Rim scuff")
	assert.Equal(t, "Bad", record.Field("Wheels"))
	assert.Equal(t, "Rim scuff", record.Field("Wheels_Observations"))

	before := store.ToggleCardObservation("a.jpg", text, "ignored")
	assert.Equal(t, "KA01", before.Field("Plate_Number"))
	assert.NotContains(t, before.Custom, "Plate_Number_Observations")
}

func TestRecordStore_ApplyTags(t *testing.T) {
	store, _ := newTestStore()
	source := domain.QCRecord{
		QCDecision:          domain.DecisionWrong,
		QCObservations:      "Outline",
		RetouchQuality:      domain.QualityBad,
		RetouchObservations: "Shadow",
		NextAction:          domain.NextActionRetouch,
		NextActionComment:   "redo mask",
	}
	store.EnsureRecord("b.jpg", "Alice")

	record := store.ApplyTags("b.jpg", source)

	assert.Equal(t, "b.jpg", record.Filename)
	assert.Equal(t, "Alice", record.QCName)
	assert.Equal(t, domain.DecisionWrong, record.QCDecision)
	assert.Empty(t, record.QCObservations)
	assert.Equal(t, domain.QualityBad, record.RetouchQuality)
	assert.Equal(t, "Shadow", record.RetouchObservations)
	assert.Equal(t, domain.NextActionRetouch, record.NextAction)
	assert.Equal(t, "redo mask", record.NextActionComment)
}
