package content

// SectionKeys are the ten fixed report sections, in render order.
var SectionKeys = []string{
	"intro", "personality", "transits", "career", "finance",
	"health", "love", "lucky", "kundli", "conclusion",
}

// ReportContent is the normalized payload handed to the renderer. Every
// field is a plain string by the time it leaves this package.
type ReportContent struct {
	Intro       string `json:"intro"`
	Personality string `json:"personality"`
	Transits    string `json:"transits"`
	Career      string `json:"career"`
	Finance     string `json:"finance"`
	Health      string `json:"health"`
	Love        string `json:"love"`
	Lucky       string `json:"lucky"`
	Kundli      string `json:"kundli"`
	Conclusion  string `json:"conclusion"`

	IsTarot       bool     `json:"isTarot"`
	TarotQuestion string   `json:"tarotQuestion,omitempty"`
	TarotCards    []string `json:"tarotCards,omitempty"`
	TarotAnalysis string   `json:"tarotAnalysis,omitempty"`
}

// TarotReading is a three-card spread with its analysis.
type TarotReading struct {
	Question string
	Cards    []string
	Analysis string
	Fallback bool
}

// BirthDetails personalizes generated content.
type BirthDetails struct {
	Name  string
	DOB   string
	Time  string
	Place string
}

func (c *ReportContent) section(key string) *string {
	switch key {
	case "intro":
		return &c.Intro
	case "personality":
		return &c.Personality
	case "transits":
		return &c.Transits
	case "career":
		return &c.Career
	case "finance":
		return &c.Finance
	case "health":
		return &c.Health
	case "love":
		return &c.Love
	case "lucky":
		return &c.Lucky
	case "kundli":
		return &c.Kundli
	case "conclusion":
		return &c.Conclusion
	}
	return nil
}

// Section returns the prose for one of the ten fixed keys.
func (c *ReportContent) Section(key string) string {
	if ptr := c.section(key); ptr != nil {
		return *ptr
	}
	return ""
}
