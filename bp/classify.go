package bp

import "fmt"

// Category is a clinical blood pressure category. Values are ordered by
// severity, so categories can be compared with < and >.
type Category int

const (
	Normal Category = iota
	Elevated
	Stage1
	Stage2
	Crisis
)

// Thresholds in mmHg
const (
	CrisisSystolic   = 180
	CrisisDiastolic  = 120
	Stage2Systolic   = 140
	Stage2Diastolic  = 90
	Stage1Systolic   = 130
	Stage1Diastolic  = 80
	ElevatedSystolic = 120
)

// Classification is the presentation data associated with a category
type Classification struct {
	Category    Category `json:"category"`
	Label       string   `json:"label"`
	Description string   `json:"description"`
	Color       string   `json:"color"`
}

var classifications = [...]Classification{
	Normal: {
		Category:    Normal,
		Label:       "Normal",
		Description: "Your blood pressure is within a healthy range",
		Color:       "green",
	},
	Elevated: {
		Category:    Elevated,
		Label:       "Elevated",
		Description: "Risk of developing high blood pressure; lifestyle changes advised",
		Color:       "yellow",
	},
	Stage1: {
		Category:    Stage1,
		Label:       "High BP Stage 1",
		Description: "Lifestyle changes recommended; medication may be needed",
		Color:       "amber",
	},
	Stage2: {
		Category:    Stage2,
		Label:       "High BP Stage 2",
		Description: "Consult your doctor about medication and lifestyle changes",
		Color:       "orange",
	},
	Crisis: {
		Category:    Crisis,
		Label:       "Hypertensive Crisis",
		Description: "Seek emergency medical attention immediately",
		Color:       "red",
	},
}

var categoryNames = [...]string{
	Normal:   "normal",
	Elevated: "elevated",
	Stage1:   "stage1",
	Stage2:   "stage2",
	Crisis:   "crisis",
}

func (c Category) String() string {
	if c < Normal || c > Crisis {
		return "unknown"
	}
	return categoryNames[c]
}

func (c Category) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

func (c *Category) UnmarshalText(text []byte) error {
	for i, name := range categoryNames {
		if name == string(text) {
			*c = Category(i)
			return nil
		}
	}
	return fmt.Errorf("unknown blood pressure category %q", text)
}

// High reports whether the category is one of the hypertension stages,
// excluding crisis.
func (c Category) High() bool {
	return c == Stage1 || c == Stage2
}

// Info returns the presentation data of a category
func (c Category) Info() Classification {
	if c < Normal || c > Crisis {
		return classifications[Normal]
	}
	return classifications[c]
}

// ClassifyAverage categorises a pair of possibly fractional values, such as
// averages over a window. Rules are evaluated in priority order and the first
// match wins.
func ClassifyAverage(systolic, diastolic float64) Category {
	switch {
	case systolic >= CrisisSystolic || diastolic >= CrisisDiastolic:
		return Crisis
	case systolic >= Stage2Systolic || diastolic >= Stage2Diastolic:
		return Stage2
	case systolic >= Stage1Systolic || diastolic >= Stage1Diastolic:
		return Stage1
	case systolic >= ElevatedSystolic:
		return Elevated
	default:
		return Normal
	}
}

// Classify returns the category of a single reading
func Classify(systolic, diastolic int) Classification {
	return ClassifyAverage(float64(systolic), float64(diastolic)).Info()
}
