package content

// Icon names the glyph drawn beside an experience entry.
type Icon string

const (
	IconCode  Icon = "code"
	IconZap   Icon = "zap"
	IconGlobe Icon = "globe"
)

var iconGlyphs = map[Icon]string{
	IconCode:  "</>",
	IconZap:   "ϟ",
	IconGlobe: "◍",
}

// Glyph returns the terminal rendition of the icon. Unknown icons draw a bullet.
func (i Icon) Glyph() string {
	if glyph, ok := iconGlyphs[i]; ok {
		return glyph
	}
	return "•"
}

// Highlighted is a run of text with one emphasised phrase, drawn as
// Lead, then Highlight in the brand gradient, then Trail.
type Highlighted struct {
	Lead      string `yaml:"lead,omitempty"`
	Highlight string `yaml:"highlight,omitempty"`
	Trail     string `yaml:"trail,omitempty"`
}

// String returns the text without emphasis.
func (h Highlighted) String() string {
	return h.Lead + h.Highlight + h.Trail
}

// Link is a labelled outbound reference.
type Link struct {
	Label string `yaml:"label" validate:"required"`
	Href  string `yaml:"href" validate:"required"`
}

// Owner describes the person the portfolio belongs to.
type Owner struct {
	Name     string `yaml:"name" validate:"required"`
	Initials string `yaml:"initials" validate:"required,max=4"`
	// Headline is the hero title; the first line carries the gradient and ring.
	Headline    []string    `yaml:"headline" validate:"required,min=1,dive,required"`
	Specialty   Highlighted `yaml:"specialty"`
	Intro       Highlighted `yaml:"intro"`
	Description string      `yaml:"description,omitempty"`
	Location    string      `yaml:"location,omitempty"`
	Email       string      `yaml:"email" validate:"omitempty,email"`
	Image       string      `yaml:"image,omitempty"`
	Resume      string      `yaml:"resume,omitempty"`
	Social      []Link      `yaml:"social,omitempty" validate:"dive"`
}

// About is the biography section.
type About struct {
	Lead       string      `yaml:"lead,omitempty"`
	Tenure     Highlighted `yaml:"tenure"`
	Paragraphs []string    `yaml:"paragraphs,omitempty"`
}

// Project is one entry of the featured projects grid.
type Project struct {
	Title       string   `yaml:"title" validate:"required"`
	Description string   `yaml:"description,omitempty"`
	Tech        []string `yaml:"tech,omitempty"`
	GitHub      string   `yaml:"github,omitempty"`
	Live        string   `yaml:"live,omitempty"`
	Image       string   `yaml:"image,omitempty"`
	// Accent is a gradient class list such as "from-orange-500 to-red-500".
	Accent string `yaml:"accent,omitempty"`
}

// Experience is one entry of the timeline.
type Experience struct {
	Title       string `yaml:"title" validate:"required"`
	Company     string `yaml:"company,omitempty"`
	Period      string `yaml:"period,omitempty"`
	Description string `yaml:"description,omitempty"`
	Icon        Icon   `yaml:"icon" validate:"required,oneof=code zap globe"`
}

// Contact is the closing call to action.
type Contact struct {
	Title     string `yaml:"title" validate:"required"`
	Lead      string `yaml:"lead,omitempty"`
	Primary   string `yaml:"primary,omitempty"`
	Secondary string `yaml:"secondary,omitempty"`
}

// Headings holds the section titles and their lead paragraphs.
type Headings struct {
	About          string `yaml:"about" validate:"required"`
	Projects       string `yaml:"projects" validate:"required"`
	ProjectsLead   string `yaml:"projects_lead,omitempty"`
	Experience     string `yaml:"experience" validate:"required"`
	ExperienceLead string `yaml:"experience_lead,omitempty"`
	Skills         string `yaml:"skills" validate:"required"`
}

// Portfolio is every piece of copy on the page.
type Portfolio struct {
	Owner      Owner        `yaml:"owner"`
	About      About        `yaml:"about"`
	Headings   Headings     `yaml:"headings"`
	Skills     []string     `yaml:"skills" validate:"dive,required"`
	Projects   []Project    `yaml:"projects" validate:"dive"`
	Experience []Experience `yaml:"experience" validate:"dive"`
	Contact    Contact      `yaml:"contact"`
	// Footer is the gradient tagline after the copyright line.
	Footer string `yaml:"footer,omitempty"`
}

// Clone returns a deep copy; the copy shares no slices with p.
func (p Portfolio) Clone() Portfolio {
	out := p
	out.Owner.Headline = cloneStrings(p.Owner.Headline)
	out.Owner.Social = append([]Link(nil), p.Owner.Social...)
	out.About.Paragraphs = cloneStrings(p.About.Paragraphs)
	out.Skills = cloneStrings(p.Skills)

	out.Projects = make([]Project, len(p.Projects))
	for i, project := range p.Projects {
		project.Tech = cloneStrings(project.Tech)
		out.Projects[i] = project
	}

	out.Experience = append([]Experience(nil), p.Experience...)
	return out
}

func cloneStrings(in []string) []string {
	if in == nil {
		return nil
	}
	return append([]string(nil), in...)
}
