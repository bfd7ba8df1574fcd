package models

// CompanyProfile holds the static company information served by the
// chatbot. Loaded once at startup and immutable for the process lifetime.
type CompanyProfile struct {
	Name        string  `yaml:"name" json:"name"`
	Tagline     string  `yaml:"tagline" json:"tagline,omitempty"`
	Description string  `yaml:"description" json:"description,omitempty"`
	Founded     string  `yaml:"founded" json:"founded,omitempty"`
	TeamSize    string  `yaml:"team_size" json:"team_size,omitempty"`
	Clients     string  `yaml:"clients" json:"clients,omitempty"`
	Contact     Contact `yaml:"contact" json:"contact"`
}

// Contact holds the company contact fields.
type Contact struct {
	Email   string `yaml:"email" json:"email,omitempty"`
	Phone   string `yaml:"phone" json:"phone,omitempty"`
	Address string `yaml:"address" json:"address,omitempty"`
	Website string `yaml:"website" json:"website,omitempty"`
}

// ServiceEntry describes one service offering in one locale. Entries for
// the same service in different locales are independent records; each is
// matched on its own against queries in its locale.
type ServiceEntry struct {
	Name        string   `yaml:"name" json:"name"`
	Description string   `yaml:"description" json:"description"`
	Keywords    []string `yaml:"keywords" json:"keywords"`
	Locale      Locale   `yaml:"locale" json:"locale"`
}

// FaqEntry is one curated question/answer pair in one locale. Questions
// holds the canonical phrasings; Keywords is the set the matcher scores
// against.
type FaqEntry struct {
	Questions []string `yaml:"questions" json:"questions"`
	Answer    string   `yaml:"answer" json:"answer"`
	Keywords  []string `yaml:"keywords" json:"keywords"`
	Locale    Locale   `yaml:"locale" json:"locale"`
}
