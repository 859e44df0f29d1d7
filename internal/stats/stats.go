// Package stats computes display distributions over the applicant list.
// Everything is pure: no I/O, no side effects, deterministic for a given input.
package stats

import (
	"golang.org/x/exp/constraints"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
	"gonum.org/v1/gonum/stat"

	"github.com/dpsevent/eventreg/internal/firestore"
)

// UnspecifiedBucket is the label applicants with an absent or empty field are counted under.
const UnspecifiedBucket = "unspecified"

// Summary holds occurrence counts per distinct value, feeding the admin charts.
type Summary struct {
	Total         int
	ByClass       map[string]int
	ByCurrentTier map[string]int
	ByPeakTier    map[string]int

	// ByGrade counts only assigned grades; ungraded applicants are excluded,
	// matching the public grade-tier page.
	ByGrade map[int]int
}

// Aggregate counts the applicant distributions.
func Aggregate(applicants []firestore.Applicant) Summary {
	s := Summary{
		Total:         len(applicants),
		ByClass:       make(map[string]int),
		ByCurrentTier: make(map[string]int),
		ByPeakTier:    make(map[string]int),
		ByGrade:       make(map[int]int),
	}
	for _, a := range applicants {
		s.ByClass[bucket(a.Class)]++
		s.ByCurrentTier[bucket(a.CurrentTier)]++
		s.ByPeakTier[bucket(a.PeakTier)]++
		if firestore.ValidGrade(a.Grade) {
			s.ByGrade[a.Grade]++
		}
	}
	return s
}

func bucket(value string) string {
	if value == "" {
		return UnspecifiedBucket
	}
	return value
}

// GradeSummary describes the assigned-grade distribution.
type GradeSummary struct {
	Graded int
	Mean   float64
	StdDev float64
}

// Grades summarizes the assigned grades of the applicant list. With fewer than
// two graded applicants the standard deviation is reported as zero.
func Grades(applicants []firestore.Applicant) GradeSummary {
	grades := make([]float64, 0, len(applicants))
	for _, a := range applicants {
		if firestore.ValidGrade(a.Grade) {
			grades = append(grades, float64(a.Grade))
		}
	}
	gs := GradeSummary{Graded: len(grades)}
	if len(grades) == 0 {
		return gs
	}
	gs.Mean = stat.Mean(grades, nil)
	if len(grades) > 1 {
		gs.StdDev = stat.StdDev(grades, nil)
	}
	return gs
}

// SortedKeys returns the keys of m in ascending order, for deterministic rendering.
func SortedKeys[K constraints.Ordered, V any](m map[K]V) []K {
	keys := maps.Keys(m)
	slices.Sort(keys)
	return keys
}
