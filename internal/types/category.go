// Package types defines the data structures shared between the segmentation
// engine, the classification gateway, and the rule-adjustment engine.
package types

// Category is one of the six Bloom's taxonomy cognitive levels. The rule engine
// treats the set as unordered labels; any iteration order is supplied by the
// locale profile, never by the type itself.
type Category string

// The six fixed categories
const (
	C1 Category = "C1" // Remember
	C2 Category = "C2" // Understand
	C3 Category = "C3" // Apply
	C4 Category = "C4" // Analyze
	C5 Category = "C5" // Evaluate
	C6 Category = "C6" // Create
)

// Labels lists the gateway's output labels in canonical order (index i maps to C(i+1))
var Labels = []string{"Remember", "Understand", "Apply", "Analyze", "Evaluate", "Create"}

// categoryNames maps category codes to human-readable names
var categoryNames = map[Category]string{
	C1: "Remember",
	C2: "Understand",
	C3: "Apply",
	C4: "Analyze",
	C5: "Evaluate",
	C6: "Create",
}

// labelCategories maps gateway label names back to category codes
var labelCategories = map[string]Category{
	"Remember":   C1,
	"Understand": C2,
	"Apply":      C3,
	"Analyze":    C4,
	"Evaluate":   C5,
	"Create":     C6,
}

// Name returns the human-readable name for a category, or the raw code if unknown
func (c Category) Name() string {
	if name, ok := categoryNames[c]; ok {
		return name
	}
	return string(c)
}

// IsValid reports whether c is one of the six fixed categories
func (c Category) IsValid() bool {
	_, ok := categoryNames[c]
	return ok
}

// CategoryForLabel returns the category code for a gateway label name.
// The second return value is false for unknown labels.
func CategoryForLabel(label string) (Category, bool) {
	c, ok := labelCategories[label]
	return c, ok
}

// AllCategories returns the six categories in code order (C1..C6).
// This is a presentation convenience only; the rule engine does not use it.
func AllCategories() []Category {
	return []Category{C1, C2, C3, C4, C5, C6}
}
