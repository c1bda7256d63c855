package services

import "lotto/domain/entities"

// Tally counts tickets per prize-bearing rank
func Tally(ranks []entities.Rank) entities.ResultTally {
	tally := entities.NewResultTally()
	for _, r := range ranks {
		tally.Add(r)
	}
	return tally
}

// TotalWinnings sums the prize of every ticket; non-winning tickets add nothing
func TotalWinnings(ranks []entities.Rank) int64 {
	var total int64
	for _, r := range ranks {
		total += r.Prize()
	}
	return total
}
