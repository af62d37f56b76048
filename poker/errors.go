package poker

import "errors"

var (
	// ErrMalformedDeal is returned when a deal does not hold exactly nine cards.
	ErrMalformedDeal = errors.New("poker: malformed deal")

	// ErrInvalidCardValue is returned for card numbers outside [1,52].
	ErrInvalidCardValue = errors.New("poker: invalid card value")

	// ErrDuplicateCard is returned when a deal repeats a card.
	ErrDuplicateCard = errors.New("poker: duplicate card")

	// ErrInvalidLabel is returned by ParseCard for unrecognised labels.
	ErrInvalidLabel = errors.New("poker: invalid card label")
)
