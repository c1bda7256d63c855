package services

import "lotto/domain/entities"

// RankTicket scores one ticket. The bonus number only separates the two 5-match tiers.
func RankTicket(ticket entities.Ticket, winning entities.NumberSet, bonus entities.BonusNumber) entities.Rank {
	numbers := ticket.Numbers()
	matchCount := numbers.MatchCount(winning)
	bonusMatch := numbers.Contains(bonus.Int())

	switch {
	case matchCount == 6:
		return entities.RankMatch6
	case matchCount == 5 && bonusMatch:
		return entities.RankMatch5Bonus
	case matchCount == 5:
		return entities.RankMatch5
	case matchCount == 4:
		return entities.RankMatch4
	case matchCount == 3:
		return entities.RankMatch3
	default:
		return entities.RankNone
	}
}

// RankTickets scores every ticket, keeping the input order
func RankTickets(tickets []entities.Ticket, winning entities.NumberSet, bonus entities.BonusNumber) []entities.Rank {
	ranks := make([]entities.Rank, len(tickets))
	for i, ticket := range tickets {
		ranks[i] = RankTicket(ticket, winning, bonus)
	}
	return ranks
}
