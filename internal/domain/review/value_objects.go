package review

import "unicode/utf8"

const (
	MinContentLength = 10
	MaxContentLength = 500
)

type Rating struct {
	value int
}

// NewRating bounds the rating to 1..5. The booking form never offered
// anything outside that range, so the bound is enforced here as well.
func NewRating(v int) (Rating, error) {
	if v < 1 || v > 5 {
		return Rating{}, ErrInvalidRating
	}
	return Rating{value: v}, nil
}

func (r Rating) Value() int { return r.value }

type Content struct {
	text string
}

func NewContent(s string) (Content, error) {
	n := utf8.RuneCountInString(s)
	if n < MinContentLength {
		return Content{}, ErrContentTooShort
	}
	if n > MaxContentLength {
		return Content{}, ErrContentTooLong
	}
	return Content{text: s}, nil
}

func (c Content) String() string { return c.text }
