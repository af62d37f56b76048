package poker

import (
	"fmt"
	"strconv"
	"strings"
)

// NumCards is the size of the deck cards are numbered from (1 through 52).
const NumCards = 52

// Suit identifies one of the four suits. Cards 1-13 are Clubs, 14-26 Diamonds,
// 27-39 Hearts and 40-52 Spades.
type Suit uint8

const (
	Clubs Suit = iota
	Diamonds
	Hearts
	Spades
)

const suitLetters = "CDHS"

// String returns the single uppercase letter used in card labels.
func (s Suit) String() string {
	if s > Spades {
		return "?"
	}
	return suitLetters[s : s+1]
}

// Name returns the full suit name.
func (s Suit) Name() string {
	switch s {
	case Clubs:
		return "Clubs"
	case Diamonds:
		return "Diamonds"
	case Hearts:
		return "Hearts"
	case Spades:
		return "Spades"
	default:
		return "Unknown"
	}
}

// Rank is a card rank from 1 (Ace) to 13 (King).
type Rank uint8

const (
	Ace Rank = iota + 1
	Two
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
)

// high returns the rank's value with the Ace counted above the King.
func (r Rank) high() int {
	if r == Ace {
		return int(King) + 1
	}
	return int(r)
}

// String returns the unpadded decimal rank used in card labels.
func (r Rank) String() string {
	return strconv.Itoa(int(r))
}

// Card is a card number in [1,52].
type Card uint8

// NewCard validates v and returns it as a Card.
func NewCard(v int) (Card, error) {
	if v < 1 || v > NumCards {
		return 0, fmt.Errorf("%w: %d", ErrInvalidCardValue, v)
	}
	return Card(v), nil
}

// Valid reports whether c is inside [1,52].
func (c Card) Valid() bool {
	return c >= 1 && c <= NumCards
}

// Rank returns the card's rank; multiples of 13 are Kings.
func (c Card) Rank() Rank {
	r := Rank(c % 13)
	if r == 0 {
		return King
	}
	return r
}

// Suit returns the card's suit. Out-of-range cards yield an invalid suit
// whose String is "?".
func (c Card) Suit() Suit {
	if c == 0 {
		return Suit(0xff)
	}
	return Suit((c - 1) / 13)
}

// String returns the card label, e.g. "10C" or "1S".
func (c Card) String() string {
	return c.Rank().String() + c.Suit().String()
}

// ParseCard converts a label such as "12H" back into its card number.
func ParseCard(label string) (Card, error) {
	label = strings.TrimSpace(label)
	if len(label) < 2 || len(label) > 3 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidLabel, label)
	}

	suit := strings.IndexByte(suitLetters, strings.ToUpper(label[len(label)-1:])[0])
	if suit < 0 {
		return 0, fmt.Errorf("%w: unknown suit in %q", ErrInvalidLabel, label)
	}

	// Labels never pad the rank or carry a sign.
	digits := label[:len(label)-1]
	if digits[0] < '1' || digits[0] > '9' {
		return 0, fmt.Errorf("%w: unknown rank in %q", ErrInvalidLabel, label)
	}
	rank, err := strconv.Atoi(digits)
	if err != nil || rank < int(Ace) || rank > int(King) {
		return 0, fmt.Errorf("%w: unknown rank in %q", ErrInvalidLabel, label)
	}

	return Card(suit*13 + rank), nil
}
