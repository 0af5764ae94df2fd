package media

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/samber/mo"
)

var ratingValues = map[string]int{
	"G": 0, "PG": 10, "PG-13": 13, "R": 16, "NC-17": 18,
	"TV-Y": 0, "TV-Y7": 7, "TV-G": 0, "TV-PG": 0, "TV-14": 14, "TV-MA": 17,
}

var numericRatingRe = regexp.MustCompile(`^(\d{1,2})\+?$`)

// ParseAgeLimit normalizes a vendor rating tag to a minimum age. Unknown
// tags yield no value rather than a guess.
func ParseAgeLimit(rating string) mo.Option[int] {
	rating = strings.ToUpper(strings.TrimSpace(rating))

	if m := numericRatingRe.FindStringSubmatch(rating); m != nil {
		age, _ := strconv.Atoi(m[1])
		return mo.Some(age)
	}

	if age, ok := ratingValues[rating]; ok {
		return mo.Some(age)
	}

	return mo.None[int]()
}
