package game

import (
	"cmp"
	"slices"

	"github.com/lox/holdemcore/poker"
)

// contender is a seat still in the hand at showdown.
type contender struct {
	seat  int
	bet   float64
	value poker.HandValue
}

// finishGame pays out every pot.
//
// Contenders are ordered strongest hand first and, among equal hands, smallest
// contribution first. Each contender in turn caps a pot at its remaining
// contribution: every seat pays min(remaining bet, cap) into it and the pot is
// split between that contender and every following contender holding the same
// hand. A short all-in winner therefore only collects what it covered, and the
// excess flows to the next pot.
func (rs *RoundState) finishGame() {
	contenders := make([]contender, 0, rs.PlayerCount)
	for seat := 0; seat < rs.PlayerCount; seat++ {
		if rs.HasFolded(seat) {
			continue
		}
		contenders = append(contenders, contender{
			seat:  seat,
			bet:   rs.BetChips[seat],
			value: rs.HandValue(seat),
		})
	}
	slices.SortStableFunc(contenders, func(a, b contender) int {
		if c := cmp.Compare(b.value, a.value); c != 0 {
			return c
		}
		return cmp.Compare(a.bet, b.bet)
	})

	if len(rs.Winnings) != rs.PlayerCount {
		rs.Winnings = make([]float64, rs.PlayerCount)
	}

	for i, ref := range contenders {
		capAmount := rs.BetChips[ref.seat]
		if capAmount <= 0 {
			continue
		}

		winners := 1
		for j := i + 1; j < len(contenders) && contenders[j].value == ref.value; j++ {
			winners++
		}

		var pot float64
		chipsLeft := false
		for seat := range rs.BetChips {
			amount := min(rs.BetChips[seat], capAmount)
			rs.BetChips[seat] -= amount
			pot += amount
			if rs.BetChips[seat] != 0 {
				chipsLeft = true
			}
		}

		rs.awardPot(contenders[i:i+winners], pot)
		if !chipsLeft {
			break
		}
	}

	// Only reachable when the largest contributor folded: nobody can claim the
	// excess, so it goes back to whoever put it in.
	for seat, left := range rs.BetChips {
		if left != 0 {
			rs.log().Debug("Returning uncalled chips", "seat", seat, "amount", left)
			rs.FreeChips[seat] += left
			rs.BetChips[seat] = 0
		}
	}
}

// awardPot splits pot evenly between winners. The last winner takes whatever
// is left after the equal shares so the full pot is always paid out.
func (rs *RoundState) awardPot(winners []contender, pot float64) {
	share := pot / float64(len(winners))
	seats := make([]int, len(winners))
	for i, w := range winners {
		amount := share
		if i == len(winners)-1 {
			amount = pot - share*float64(len(winners)-1)
		}
		rs.FreeChips[w.seat] += amount
		rs.Winnings[w.seat] += amount
		seats[i] = w.seat
	}
	rs.log().Debug("Pot awarded", "amount", pot, "winners", seats, "hand", winners[0].value)
}
