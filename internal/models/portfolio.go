package models

// Portfolio is the full static content of the site
type Portfolio struct {
	Hero       Hero         `json:"hero" yaml:"hero"`
	Nav        []NavLink    `json:"nav" yaml:"nav"`
	Skills     []SkillGroup `json:"skills" yaml:"skills"`
	Experience []Experience `json:"experience" yaml:"experience"`
	Projects   []Project    `json:"projects" yaml:"projects"`
	Education  []Education  `json:"education" yaml:"education"`
	Contacts   []Contact    `json:"contacts" yaml:"contacts"`
}

// Hero is the intro block at the top of the home view
type Hero struct {
	Name    string `json:"name" yaml:"name"`
	Badge   string `json:"badge" yaml:"badge"`
	Tagline string `json:"tagline" yaml:"tagline"`
	Focus   string `json:"focus" yaml:"focus"`
}

// NavLink is a header button that jumps to a home view section
type NavLink struct {
	Label   string `json:"label" yaml:"label"`
	Section string `json:"section" yaml:"section"`
}

// SkillGroup is one category of the skills grid
type SkillGroup struct {
	Category string   `json:"category" yaml:"category"`
	Skills   []string `json:"skills" yaml:"skills"`
}

// Experience is one entry of the experience timeline
type Experience struct {
	Role    string   `json:"role" yaml:"role"`
	Org     string   `json:"org" yaml:"org"`
	Time    string   `json:"time" yaml:"time"`
	Bullets []string `json:"bullets" yaml:"bullets"`
}

// Education is one line of the education section
type Education struct {
	Title  string `json:"title" yaml:"title"`
	Detail string `json:"detail" yaml:"detail"`
}

// Contact is a contact card
type Contact struct {
	Href  string `json:"href" yaml:"href"`
	Label string `json:"label" yaml:"label"`
	Icon  string `json:"icon" yaml:"icon"`
}
