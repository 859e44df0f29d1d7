package roster

import (
	"math/rand"
	"testing"

	"github.com/dpsevent/eventreg/internal/firestore"
)

func intRange(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}
	return out
}

func samePartition(p1, p2 [][]int) bool {
	if len(p1) != len(p2) {
		return false
	}
	for i := range p1 {
		for j := range p1[i] {
			if p1[i][j] != p2[i][j] {
				return false
			}
		}
	}
	return true
}

func TestEligible(t *testing.T) {
	graded := firestore.Applicant{Name: "a", Grade: 3}
	if !Eligible(graded) {
		t.Error("expected graded unassigned applicant to be eligible")
	}
	ungraded := firestore.Applicant{Name: "b"}
	if Eligible(ungraded) {
		t.Error("expected ungraded applicant to be ineligible")
	}
	assigned := firestore.Applicant{Name: "c", Grade: 2, Team: "Team 1"}
	if Eligible(assigned) {
		t.Error("expected assigned applicant to be ineligible")
	}
}

func TestEligibleIndices(t *testing.T) {
	applicants := []firestore.Applicant{
		{Name: "a", Grade: 1},
		{Name: "b"},
		{Name: "c", Grade: 5, Team: "Alpha"},
		{Name: "d", Grade: 4},
	}
	got := EligibleIndices(applicants)
	want := []int{0, 3}
	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("expected %v, got %v", want, got)
		}
	}
}

func TestPartitionSizes(t *testing.T) {
	for _, n := range []int{5, 6, 9, 10, 23} {
		rng := rand.New(rand.NewSource(1))
		groups := Partition(intRange(n), rng)

		if len(groups) != n/TeamSize {
			t.Errorf("n=%d: expected %d groups, got %d", n, n/TeamSize, len(groups))
		}
		seen := make(map[int]bool)
		for _, g := range groups {
			if len(g) != TeamSize {
				t.Errorf("n=%d: expected group of %d, got %d", n, TeamSize, len(g))
			}
			for _, idx := range g {
				if seen[idx] {
					t.Errorf("n=%d: index %d appears in two groups", n, idx)
				}
				seen[idx] = true
			}
		}
		if len(seen) != (n/TeamSize)*TeamSize {
			t.Errorf("n=%d: expected %d grouped indices, got %d", n, (n/TeamSize)*TeamSize, len(seen))
		}
	}
}

func TestPartitionTooFew(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	groups := Partition(intRange(4), rng)
	if len(groups) != 0 {
		t.Errorf("expected 0 groups from 4 indices, got %d", len(groups))
	}
}

func TestPartitionDoesNotModifyInput(t *testing.T) {
	in := intRange(10)
	rng := rand.New(rand.NewSource(99))
	Partition(in, rng)
	for i, v := range in {
		if v != i {
			t.Fatalf("input modified at %d: got %d", i, v)
		}
	}
}

func TestPartitionSeedDeterminism(t *testing.T) {
	in := intRange(20)

	p1 := Partition(in, rand.New(rand.NewSource(42)))
	p2 := Partition(in, rand.New(rand.NewSource(42)))
	if !samePartition(p1, p2) {
		t.Error("expected identical partitions from identical seeds")
	}

	// With 20 indices, two seeds agreeing on all 20 positions is vanishingly
	// unlikely; check a handful of seeds against seed 42.
	different := false
	for seed := int64(43); seed < 48; seed++ {
		p3 := Partition(in, rand.New(rand.NewSource(seed)))
		if !samePartition(p1, p3) {
			different = true
			break
		}
	}
	if !different {
		t.Error("expected at least one differing partition from differing seeds")
	}
}

func TestTeamName(t *testing.T) {
	if got := TeamName(1); got != "Team 1" {
		t.Errorf("expected %v, got %v", "Team 1", got)
	}
	if got := TeamName(12); got != "Team 12" {
		t.Errorf("expected %v, got %v", "Team 12", got)
	}
}

func TestSeedFromString(t *testing.T) {
	s1 := SeedFromString("valorant")
	s2 := SeedFromString("valorant")
	if s1 != s2 {
		t.Errorf("expected identical seeds, got %d and %d", s1, s2)
	}
	s3 := SeedFromString("valorant2")
	if s1 == s3 {
		t.Error("expected differing seeds for differing phrases")
	}
}

func BenchmarkPartition100(b *testing.B) {
	in := intRange(100)
	rng := rand.New(rand.NewSource(1))
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		Partition(in, rng)
	}
}
