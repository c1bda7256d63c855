package entities

import "encoding/json"

// Rank is the prize tier of one ticket against the winning numbers and bonus
type Rank int

const (
	RankNone Rank = iota
	RankMatch3
	RankMatch4
	RankMatch5
	RankMatch5Bonus
	RankMatch6
)

type rankInfo struct {
	name       string
	matchCount int
	bonus      bool
	prize      int64
}

var rankTable = map[Rank]rankInfo{
	RankNone:        {name: "NONE"},
	RankMatch3:      {name: "MATCH_3", matchCount: 3, prize: 5_000},
	RankMatch4:      {name: "MATCH_4", matchCount: 4, prize: 50_000},
	RankMatch5:      {name: "MATCH_5", matchCount: 5, prize: 1_500_000},
	RankMatch5Bonus: {name: "MATCH_5_BONUS", matchCount: 5, bonus: true, prize: 30_000_000},
	RankMatch6:      {name: "MATCH_6", matchCount: 6, prize: 2_000_000_000},
}

// PrizeRanks lists the prize-bearing ranks from the lowest tier to the jackpot
func PrizeRanks() []Rank {
	return []Rank{RankMatch3, RankMatch4, RankMatch5, RankMatch5Bonus, RankMatch6}
}

// Prize returns the fixed prize for the rank, 0 for RankNone
func (r Rank) Prize() int64 {
	return rankTable[r].prize
}

// MatchCount returns how many winning numbers the rank requires
func (r Rank) MatchCount() int {
	return rankTable[r].matchCount
}

// RequiresBonus is true only for the 5-match plus bonus tier
func (r Rank) RequiresBonus() bool {
	return rankTable[r].bonus
}

// IsWinning reports whether the rank pays a prize
func (r Rank) IsWinning() bool {
	return r != RankNone && r.Prize() > 0
}

func (r Rank) String() string {
	if info, ok := rankTable[r]; ok {
		return info.name
	}
	return "UNKNOWN"
}

// MarshalText lets ranks be used as JSON object keys
func (r Rank) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}

// ResultTally counts tickets per prize-bearing rank
type ResultTally struct {
	counts map[Rank]int
}

// NewResultTally creates a tally with every prize-bearing rank at zero
func NewResultTally() ResultTally {
	counts := make(map[Rank]int, len(rankTable))
	for _, r := range PrizeRanks() {
		counts[r] = 0
	}
	return ResultTally{counts: counts}
}

// Add records one ticket of the given rank; RankNone is not reported
func (t ResultTally) Add(r Rank) {
	if !r.IsWinning() {
		return
	}
	t.counts[r]++
}

// Count returns how many tickets landed on the rank
func (t ResultTally) Count(r Rank) int {
	return t.counts[r]
}

// Total returns the number of winning tickets
func (t ResultTally) Total() int {
	total := 0
	for _, c := range t.counts {
		total += c
	}
	return total
}

// MarshalJSON encodes the tally as {"MATCH_3": n, ...}
func (t ResultTally) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.counts)
}
