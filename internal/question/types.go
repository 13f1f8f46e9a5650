package question

// Category identifies a question topic area.
type Category string

const (
	CategoryBasics   Category = "basics"
	CategoryRoasting Category = "roasting"
	CategoryBrewing  Category = "brewing"
	CategoryHistory  Category = "history"
)

// AllCategories returns every category in display order.
func AllCategories() []Category {
	return []Category{CategoryBasics, CategoryRoasting, CategoryBrewing, CategoryHistory}
}

// Valid reports whether the category is one of the known values.
func (c Category) Valid() bool {
	switch c {
	case CategoryBasics, CategoryRoasting, CategoryBrewing, CategoryHistory:
		return true
	}
	return false
}

// Label returns the display name for the category.
func (c Category) Label() string {
	switch c {
	case CategoryBasics:
		return "基礎知識"
	case CategoryRoasting:
		return "焙煎理論"
	case CategoryBrewing:
		return "抽出理論"
	case CategoryHistory:
		return "歴史と文化"
	default:
		return string(c)
	}
}

// Difficulty identifies a question difficulty tier.
type Difficulty string

const (
	DifficultyBeginner     Difficulty = "beginner"
	DifficultyIntermediate Difficulty = "intermediate"
	DifficultyAdvanced     Difficulty = "advanced"
)

// AllDifficulties returns every difficulty in ascending order.
func AllDifficulties() []Difficulty {
	return []Difficulty{DifficultyBeginner, DifficultyIntermediate, DifficultyAdvanced}
}

// Label returns the display name for the difficulty.
func (d Difficulty) Label() string {
	switch d {
	case DifficultyBeginner:
		return "初級"
	case DifficultyIntermediate:
		return "中級"
	case DifficultyAdvanced:
		return "上級"
	default:
		return string(d)
	}
}

// Option is a single answer choice. Correctness travels with the option
// object, never by position.
type Option struct {
	ID      string `json:"id"`
	Text    string `json:"text"`
	Correct bool   `json:"isCorrect"`
}

// Question is an immutable quiz question loaded from static data.
type Question struct {
	ID          string     `json:"id"`
	Category    Category   `json:"category"`
	Difficulty  Difficulty `json:"difficulty"`
	Prompt      string     `json:"question"`
	Options     []Option   `json:"options"`
	Explanation string     `json:"explanation"`
	ImageURL    string     `json:"imageUrl,omitempty"`
}

// CorrectOption returns the correct option, or nil if the question has none.
func (q *Question) CorrectOption() *Option {
	for i := range q.Options {
		if q.Options[i].Correct {
			return &q.Options[i]
		}
	}
	return nil
}

// File is the on-disk shape of one category's question set.
type File struct {
	Category  Category   `json:"category"`
	Questions []Question `json:"questions"`
}

// Counts summarizes the loaded pool by category and difficulty.
type Counts struct {
	Total        int
	ByCategory   map[Category]int
	ByDifficulty map[Difficulty]int
}
