package stats

import (
	"math"
	"testing"

	"github.com/dpsevent/eventreg/internal/firestore"
)

func TestAggregate(t *testing.T) {
	applicants := []firestore.Applicant{
		{Name: "a", Class: "1-1", CurrentTier: "Gold 2", PeakTier: "Platinum 1", Grade: 3},
		{Name: "b", Class: "1-1", CurrentTier: "Silver 4", PeakTier: "Gold 3", Grade: 3},
		{Name: "c", Class: "2-3", CurrentTier: "Gold 2", PeakTier: ""},
		{Name: "d", Class: "", CurrentTier: "", PeakTier: "Gold 3", Grade: 5},
	}

	s := Aggregate(applicants)

	if s.Total != 4 {
		t.Errorf("expected %v, got %v", 4, s.Total)
	}
	if s.ByClass["1-1"] != 2 {
		t.Errorf("expected %v, got %v", 2, s.ByClass["1-1"])
	}
	if s.ByClass["2-3"] != 1 {
		t.Errorf("expected %v, got %v", 1, s.ByClass["2-3"])
	}
	if s.ByClass[UnspecifiedBucket] != 1 {
		t.Errorf("expected %v, got %v", 1, s.ByClass[UnspecifiedBucket])
	}
	if s.ByCurrentTier["Gold 2"] != 2 {
		t.Errorf("expected %v, got %v", 2, s.ByCurrentTier["Gold 2"])
	}
	if s.ByCurrentTier[UnspecifiedBucket] != 1 {
		t.Errorf("expected %v, got %v", 1, s.ByCurrentTier[UnspecifiedBucket])
	}
	if s.ByPeakTier[UnspecifiedBucket] != 1 {
		t.Errorf("expected %v, got %v", 1, s.ByPeakTier[UnspecifiedBucket])
	}
	if s.ByGrade[3] != 2 {
		t.Errorf("expected %v, got %v", 2, s.ByGrade[3])
	}
	if s.ByGrade[5] != 1 {
		t.Errorf("expected %v, got %v", 1, s.ByGrade[5])
	}
	if _, ok := s.ByGrade[0]; ok {
		t.Error("expected ungraded applicants to be excluded from ByGrade")
	}
}

func TestAggregateEmpty(t *testing.T) {
	s := Aggregate(nil)
	if s.Total != 0 {
		t.Errorf("expected %v, got %v", 0, s.Total)
	}
	if len(s.ByClass) != 0 {
		t.Errorf("expected empty ByClass, got %v", s.ByClass)
	}
}

func TestGrades(t *testing.T) {
	applicants := []firestore.Applicant{
		{Name: "a", Grade: 2},
		{Name: "b", Grade: 4},
		{Name: "c"},
	}
	gs := Grades(applicants)
	if gs.Graded != 2 {
		t.Errorf("expected %v, got %v", 2, gs.Graded)
	}
	if gs.Mean != 3.0 {
		t.Errorf("expected %v, got %v", 3.0, gs.Mean)
	}
	// sample stddev of {2, 4}
	if math.Abs(gs.StdDev-math.Sqrt2) > 1e-12 {
		t.Errorf("expected %v, got %v", math.Sqrt2, gs.StdDev)
	}
}

func TestGradesDegenerate(t *testing.T) {
	gs := Grades(nil)
	if gs.Graded != 0 || gs.Mean != 0 || gs.StdDev != 0 {
		t.Errorf("expected zero summary, got %+v", gs)
	}

	gs = Grades([]firestore.Applicant{{Name: "a", Grade: 5}})
	if gs.Graded != 1 {
		t.Errorf("expected %v, got %v", 1, gs.Graded)
	}
	if gs.Mean != 5.0 {
		t.Errorf("expected %v, got %v", 5.0, gs.Mean)
	}
	if gs.StdDev != 0 {
		t.Errorf("expected %v, got %v", 0.0, gs.StdDev)
	}
}

func TestSortedKeys(t *testing.T) {
	m := map[string]int{"b": 1, "a": 2, "c": 3}
	keys := SortedKeys(m)
	want := []string{"a", "b", "c"}
	for i := range want {
		if keys[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, keys)
		}
	}
}
