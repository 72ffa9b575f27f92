package review

import "strings"

const MaxMessageLength = 2000

type Rating struct {
	value int
}

func NewRating(v int) (Rating, error) {
	if v < 1 || v > 5 {
		return Rating{}, ErrInvalidRating
	}
	return Rating{value: v}, nil
}

func (r Rating) Value() int { return r.value }

// Message is optional review text. Empty is fine; buyers can leave a
// rating-only review.
type Message struct {
	text string
}

func NewMessage(s string) (Message, error) {
	t := strings.TrimSpace(s)
	if len(t) > MaxMessageLength {
		return Message{}, ErrMessageTooLong
	}
	return Message{text: t}, nil
}

func (m Message) String() string { return m.text }
