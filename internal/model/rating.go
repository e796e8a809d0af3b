package model

// Rating is the three-tier traffic-light classification of a food.
type Rating string

const (
	RatingGreen  Rating = "green"
	RatingYellow Rating = "yellow"
	RatingRed    Rating = "red"
)

// IsValid reports whether r is green, yellow or red.
func (r Rating) IsValid() bool {
	switch r {
	case RatingGreen, RatingYellow, RatingRed:
		return true
	}
	return false
}

// Classification is the derived, never persisted, result of classifying a food.
type Classification struct {
	Rating    Rating `json:"rating"`
	Color     string `json:"color"`
	Rationale string `json:"rationale"`
	Score     int    `json:"score"`
}
