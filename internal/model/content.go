package model

// ContentType is the presentation format of an education entry.
type ContentType string

const (
	ContentArticle     ContentType = "article"
	ContentInteractive ContentType = "interactive"
	ContentVideo       ContentType = "video"
)

// IsValid reports whether t is a known content type.
func (t ContentType) IsValid() bool {
	switch t {
	case ContentArticle, ContentInteractive, ContentVideo:
		return true
	}
	return false
}

// Level is the difficulty of an education entry.
type Level string

const (
	LevelBasic        Level = "basic"
	LevelIntermediate Level = "intermediate"
	LevelAdvanced     Level = "advanced"
)

// Levels lists every education level from easiest to hardest.
func Levels() []Level {
	return []Level{LevelBasic, LevelIntermediate, LevelAdvanced}
}

// IsValid reports whether l is a known level.
func (l Level) IsValid() bool {
	for _, known := range Levels() {
		if l == known {
			return true
		}
	}
	return false
}

// EducationContent is an educational article, exercise or video.
// Content uses **text** to mark emphasized spans.
type EducationContent struct {
	ID       string      `json:"id" db:"id"`
	Title    string      `json:"title" db:"title"`
	Content  string      `json:"content" db:"content"`
	Type     ContentType `json:"type" db:"type"`
	Duration string      `json:"duration" db:"duration"`
	Level    Level       `json:"level" db:"level"`
	Tags     []string    `json:"tags" db:"tags"`
}
