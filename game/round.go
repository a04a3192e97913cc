package game

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/lox/holdemcore/internal/randutil"
	"github.com/lox/holdemcore/poker"
)

// Table size limits. Folded is a uint16 bitmask, one bit per seat.
const (
	MinPlayers = 2
	MaxPlayers = 16
)

// ErrRoundFinished is returned by DoAction once the round has reached Finished.
var ErrRoundFinished = errors.New("round is finished")

// RoundState is the state of one hand of no-limit Hold'em.
//
// Chips are never created or destroyed: for every seat, BetChips + FreeChips
// (plus whatever has already been paid out of BetChips at showdown) stays equal
// to its starting stack.
type RoundState struct {
	PlayerCount    int
	CommunityCards poker.CardSet // All five, revealed according to Stage
	PlayerCards    [][2]poker.Card
	BetChips       []float64 // Chips committed this hand
	FreeChips      []float64 // Chips behind
	StartChips     []float64
	Winnings       []float64 // Pot winnings per seat, filled in at showdown

	Stage       Stage
	Turn        int
	Button      int
	LastRaiseBy int // Seat whose turn ends the street when action returns to it
	MinRaise    float64
	BigBlind    float64
	Folded      uint16 // Bit i set when seat i has folded

	logger *log.Logger
}

// NewRoundState shuffles a deck, deals the board and hole cards and posts the
// blinds. Each entry of stacks is one seat's starting chips.
//
// It panics with fewer than MinPlayers or more than MaxPlayers seats, or with a
// button outside the table.
func NewRoundState(stacks []float64, opts ...Option) *RoundState {
	n := len(stacks)
	if n < MinPlayers {
		panic(fmt.Sprintf("at least %d players required, got %d", MinPlayers, n))
	}
	if n > MaxPlayers {
		panic(fmt.Sprintf("at most %d players supported, got %d", MaxPlayers, n))
	}

	cfg := defaultRoundConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	if cfg.button < 0 || cfg.button >= n {
		panic("button position out of range")
	}
	if cfg.logger == nil {
		cfg.logger = discardLogger()
	}

	deck := cfg.deck
	if deck == nil {
		rng := cfg.rng
		if rng == nil {
			var seed int64
			if cfg.seed != nil {
				seed = *cfg.seed
			} else {
				seed = randutil.SeedFromClock(cfg.clock)
			}
			cfg.logger.Debug("Shuffling deck", "seed", seed)
			rng = randutil.New(seed)
		}
		deck = poker.NewDeck(rng)
	}
	if deck.CardsRemaining() < 5+2*n {
		panic(fmt.Sprintf("deck has %d cards, need %d", deck.CardsRemaining(), 5+2*n))
	}

	rs := &RoundState{
		PlayerCount:    n,
		CommunityCards: poker.NewCardSet(deck.Deal(5)...),
		PlayerCards:    make([][2]poker.Card, n),
		BetChips:       make([]float64, n),
		FreeChips:      append([]float64(nil), stacks...),
		StartChips:     append([]float64(nil), stacks...),
		Winnings:       make([]float64, n),
		Stage:          PreFlop,
		Button:         cfg.button,
		MinRaise:       cfg.bigBlind,
		BigBlind:       cfg.bigBlind,
		logger:         cfg.logger.WithPrefix("round"),
	}
	for i := range rs.PlayerCards {
		cards := deck.Deal(2)
		rs.PlayerCards[i] = [2]poker.Card{cards[0], cards[1]}
	}

	var sbPos, bbPos int
	if n == 2 {
		// Heads-up: button posts the small blind and acts first preflop
		sbPos = rs.Button
		bbPos = (rs.Button + 1) % n
		rs.Turn = sbPos
	} else {
		sbPos = (rs.Button + 1) % n
		bbPos = (rs.Button + 2) % n
		rs.Turn = (rs.Button + 3) % n
	}
	rs.postBlind(sbPos, cfg.smallBlind)
	rs.postBlind(bbPos, cfg.bigBlind)

	// Action returning to the first actor without a raise closes the street,
	// which leaves the big blind its option.
	rs.LastRaiseBy = rs.Turn

	rs.log().Debug("Round started", "players", n, "button", rs.Button, "sb", sbPos, "bb", bbPos, "turn", rs.Turn)

	if !rs.CanAct(rs.Turn) {
		rs.advance()
	}
	return rs
}

func (rs *RoundState) postBlind(seat int, blind float64) {
	amount := min(blind, rs.FreeChips[seat])
	rs.BetChips[seat] += amount
	rs.FreeChips[seat] -= amount
}

func (rs *RoundState) log() *log.Logger {
	if rs.logger == nil {
		rs.logger = discardLogger()
	}
	return rs.logger
}

// DoAction applies the current player's decision.
//
//	bet < 0                      fold
//	0 <= bet <= amount owed      check or call (capped at the stack)
//	bet > amount owed            raise by max(bet-owed, MinRaise), capped at the stack
//
// Turn then moves to the next seat that can act. When action gets back to
// LastRaiseBy the street ends; after the river the showdown is resolved before
// DoAction returns.
func (rs *RoundState) DoAction(bet float64) error {
	if rs.IsFinished() {
		return ErrRoundFinished
	}

	seat := rs.Turn
	if bet < 0 {
		rs.Folded |= 1 << seat
		rs.log().Debug("Fold", "seat", seat, "stage", rs.Stage)
	} else {
		owed := min(rs.CurrentBet()-rs.BetChips[seat], rs.FreeChips[seat])
		var raise float64
		if bet > owed {
			// Short all-in raises are allowed but never lower MinRaise
			raise = min(max(bet-owed, rs.MinRaise), rs.FreeChips[seat]-owed)
			rs.MinRaise = max(rs.MinRaise, raise)
		}
		committed := owed + raise
		rs.BetChips[seat] += committed
		rs.FreeChips[seat] -= committed
		if raise > 0 {
			rs.LastRaiseBy = seat
			rs.log().Debug("Raise", "seat", seat, "stage", rs.Stage, "by", raise, "total", rs.BetChips[seat])
		} else {
			rs.log().Debug("Check/call", "seat", seat, "stage", rs.Stage, "amount", committed)
		}
	}

	rs.advance()
	return nil
}

// advance moves Turn to the next seat that can act, closing streets (and
// finally the round) whenever action returns to LastRaiseBy.
func (rs *RoundState) advance() {
	for {
		rs.Turn = (rs.Turn + 1) % rs.PlayerCount
		if rs.Turn == rs.LastRaiseBy {
			rs.Stage = rs.Stage.Next()
			rs.log().Debug("Street complete", "stage", rs.Stage)
			if rs.IsFinished() {
				rs.finishGame()
				return
			}
			rs.startStreet()
		}
		if rs.CanAct(rs.Turn) {
			return
		}
	}
}

func (rs *RoundState) startStreet() {
	rs.Turn = (rs.Button + 1) % rs.PlayerCount
	rs.LastRaiseBy = rs.Turn
	if rs.BigBlind > 0 {
		rs.MinRaise = rs.BigBlind
	}
}

// IsFinished reports whether the round has reached the terminal stage.
func (rs *RoundState) IsFinished() bool {
	return rs.Stage == Finished
}

// HasFolded reports whether seat has folded.
func (rs *RoundState) HasFolded(seat int) bool {
	return rs.Folded&(1<<seat) != 0
}

// CanAct reports whether seat has a decision to make: it has not folded, has
// chips behind, and either owes chips or has an opponent who can still bet.
func (rs *RoundState) CanAct(seat int) bool {
	if rs.HasFolded(seat) || rs.FreeChips[seat] <= 0 {
		return false
	}
	if rs.BetChips[seat] < rs.CurrentBet() {
		return true
	}
	for i := 0; i < rs.PlayerCount; i++ {
		if i != seat && !rs.HasFolded(i) && rs.FreeChips[i] > 0 {
			return true
		}
	}
	return false
}

// CurrentBet returns the largest amount any seat has committed this hand.
func (rs *RoundState) CurrentBet() float64 {
	var highest float64
	for _, b := range rs.BetChips {
		highest = max(highest, b)
	}
	return highest
}

// TotalChips returns the chips on the table, committed and behind.
func (rs *RoundState) TotalChips() float64 {
	var total float64
	for i := range rs.FreeChips {
		total += rs.FreeChips[i] + rs.BetChips[i]
	}
	return total
}

// RevealedCommunityCards returns the community cards visible at the current stage.
func (rs *RoundState) RevealedCommunityCards() []poker.Card {
	cards := rs.CommunityCards.Cards()
	return cards[:min(rs.Stage.Revealed(), len(cards))]
}

// HandValue evaluates seat's best hand from its hole cards and all five community cards.
func (rs *RoundState) HandValue(seat int) poker.HandValue {
	cs := rs.CommunityCards
	cs.SetCardsPartial(rs.PlayerCards[seat][:], 5)
	return cs.Strength()
}

func (rs *RoundState) String() string {
	var b strings.Builder
	revealed := poker.NewCardSet(rs.RevealedCommunityCards()...)
	fmt.Fprintf(&b, "RoundState(board: '%s', stage: %s, min_raise: %g", revealed, rs.Stage, rs.MinRaise)
	for i := 0; i < rs.PlayerCount; i++ {
		flags := [4]string{"  ", "  ", "  ", "  "}
		if rs.HasFolded(i) {
			flags[0] = "FO"
		}
		if i == rs.Button {
			flags[1] = "BU"
		}
		if i == rs.Turn {
			flags[2] = "TU"
		}
		if i == rs.LastRaiseBy {
			flags[3] = "LR"
		}
		fmt.Fprintf(&b, "\n  [seat %d, '%s %s', %.3f/%.3f] [%s]",
			i, rs.PlayerCards[i][0], rs.PlayerCards[i][1], rs.BetChips[i], rs.FreeChips[i], strings.Join(flags[:], "|"))
	}
	b.WriteString("\n)")
	return b.String()
}
