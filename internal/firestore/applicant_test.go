package firestore

import (
	"testing"
)

func TestApplicantUnmarshalText(t *testing.T) {
	var a Applicant
	err := a.UnmarshalText([]byte("Kim MinA:010-1234-5678:2-3:MinA#KR1:Gold 2:Platinum 1"))
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if a.Name != "Kim MinA" {
		t.Errorf("expected %v, got %v", "Kim MinA", a.Name)
	}
	if a.Contact != "010-1234-5678" {
		t.Errorf("expected %v, got %v", "010-1234-5678", a.Contact)
	}
	if a.Class != "2-3" {
		t.Errorf("expected %v, got %v", "2-3", a.Class)
	}
	if a.RiotID != "MinA#KR1" {
		t.Errorf("expected %v, got %v", "MinA#KR1", a.RiotID)
	}
	if a.CurrentTier != "Gold 2" {
		t.Errorf("expected %v, got %v", "Gold 2", a.CurrentTier)
	}
	if a.PeakTier != "Platinum 1" {
		t.Errorf("expected %v, got %v", "Platinum 1", a.PeakTier)
	}

	// too few fields
	err = a.UnmarshalText([]byte("name:contact"))
	if err == nil {
		t.Error("expected error for 2 fields, got nil")
	}

	// too many fields
	err = a.UnmarshalText([]byte("a:b:c:d:e:f:g"))
	if err == nil {
		t.Error("expected error for 7 fields, got nil")
	}
}

func TestApplicantValidate(t *testing.T) {
	complete := Applicant{
		Name:        "Lee Jun",
		Contact:     "junbug",
		Class:       "1-2",
		RiotID:      "Jun#KR2",
		CurrentTier: "Silver 1",
		PeakTier:    "Gold 4",
	}
	if err := complete.Validate(); err != nil {
		t.Errorf("expected nil error, got %v", err)
	}

	fields := []struct {
		name  string
		blank func(Applicant) Applicant
	}{
		{"applicantName", func(a Applicant) Applicant { a.Name = ""; return a }},
		{"contact", func(a Applicant) Applicant { a.Contact = ""; return a }},
		{"class", func(a Applicant) Applicant { a.Class = ""; return a }},
		{"riotId", func(a Applicant) Applicant { a.RiotID = ""; return a }},
		{"currentTier", func(a Applicant) Applicant { a.CurrentTier = ""; return a }},
		{"peakTier", func(a Applicant) Applicant { a.PeakTier = ""; return a }},
	}
	for _, f := range fields {
		err := f.blank(complete).Validate()
		if err == nil {
			t.Errorf("expected error for missing %s, got nil", f.name)
			continue
		}
		ve, ok := err.(ValidationError)
		if !ok {
			t.Errorf("expected ValidationError for missing %s, got %T", f.name, err)
			continue
		}
		if ve.Field != f.name {
			t.Errorf("expected field %v, got %v", f.name, ve.Field)
		}
	}
}

func TestValidGrade(t *testing.T) {
	for g := MinGrade; g <= MaxGrade; g++ {
		if !ValidGrade(g) {
			t.Errorf("expected grade %d to be valid", g)
		}
	}
	for _, g := range []int{-1, 0, 6, 100} {
		if ValidGrade(g) {
			t.Errorf("expected grade %d to be invalid", g)
		}
	}
}
