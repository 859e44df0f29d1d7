package firestore

import "testing"

func TestMergeFields(t *testing.T) {
	if got := mergeFields(Match{}); len(got) != 0 {
		t.Errorf("expected no fields for a zero match, got %v", got)
	}

	got := mergeFields(Match{Team1: "Alpha"})
	if len(got) != 1 {
		t.Errorf("expected 1 field, got %v", got)
	}
	if got["team1"] != "Alpha" {
		t.Errorf("expected team1 \"Alpha\", got %v", got["team1"])
	}

	got = mergeFields(Match{DateTime: "2026-09-01T18:00", Team1: "Alpha", Team2: "Bravo"})
	if len(got) != 3 {
		t.Errorf("expected 3 fields, got %v", got)
	}
	if got["matchDateTime"] != "2026-09-01T18:00" {
		t.Errorf("expected matchDateTime set, got %v", got["matchDateTime"])
	}
}

func TestSeedScheduleField(t *testing.T) {
	// A merge creating a new document must carry matchDateTime, or
	// schedule-ordered reads will never return the document.
	merge := map[string]interface{}{"team1": "Alpha"}
	seedScheduleField(merge)
	v, ok := merge["matchDateTime"]
	if !ok {
		t.Error("expected matchDateTime to be seeded")
	}
	if v != "" {
		t.Errorf("expected empty matchDateTime, got %v", v)
	}

	merge = map[string]interface{}{"matchDateTime": "2026-09-01T18:00"}
	seedScheduleField(merge)
	if merge["matchDateTime"] != "2026-09-01T18:00" {
		t.Errorf("expected supplied matchDateTime kept, got %v", merge["matchDateTime"])
	}
}
