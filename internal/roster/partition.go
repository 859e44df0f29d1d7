// Package roster holds the team formation core: selecting the eligible
// applicant pool and partitioning it into fixed-size teams. Everything here is
// pure so the formation properties can be tested without a datastore.
package roster

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/segmentio/fasthash/jody"

	"github.com/dpsevent/eventreg/internal/firestore"
)

// TeamSize is the fixed roster size of every formed team.
const TeamSize = 5

// InsufficientApplicantsError is returned when automatic formation is asked to
// run over a pool smaller than one team.
type InsufficientApplicantsError struct {
	Eligible int
	Required int
}

func (e InsufficientApplicantsError) Error() string {
	return fmt.Sprintf("not enough ungrouped graded applicants to form a team: have %d, need %d", e.Eligible, e.Required)
}

// Eligible reports whether an applicant can be placed on a team: graded, and
// not already assigned.
func Eligible(a firestore.Applicant) bool {
	return firestore.ValidGrade(a.Grade) && a.Team == ""
}

// EligibleIndices returns the indices of the eligible applicants, in input order.
func EligibleIndices(applicants []firestore.Applicant) []int {
	out := make([]int, 0, len(applicants))
	for i, a := range applicants {
		if Eligible(a) {
			out = append(out, i)
		}
	}
	return out
}

// Partition shuffles indices with rng and splits the result into consecutive
// groups of TeamSize. The shuffle is an unbiased Fisher-Yates permutation, so
// every assignment of applicants to teams is equally likely. Up to TeamSize-1
// leftover indices are discarded and stay ungrouped. The input slice is not
// modified.
func Partition(indices []int, rng *rand.Rand) [][]int {
	shuffled := make([]int, len(indices))
	copy(shuffled, indices)
	rng.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})

	n := len(shuffled) / TeamSize
	groups := make([][]int, n)
	for i := 0; i < n; i++ {
		groups[i] = shuffled[i*TeamSize : (i+1)*TeamSize]
	}
	return groups
}

// TeamName returns the generated label for the i-th partition (1-based).
// The names are arbitrary labels: a collision with a manually formed team of
// the same name must fail that team's creation, not overwrite it.
func TeamName(i int) string {
	return fmt.Sprintf("Team %d", i)
}

// SeedFromString derives a shuffle seed from a seed phrase so runs can be
// reproduced from the command line. An empty phrase seeds from the clock.
func SeedFromString(s string) int64 {
	if s == "" {
		return time.Now().UnixNano()
	}
	return int64(jody.HashString64(s))
}
