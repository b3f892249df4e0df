package portfolio

import (
	"maps"
	"slices"
)

// Social platforms the front-end knows how to draw an icon for.
const (
	Instagram = "instagram"
	Twitter   = "twitter"
	LinkedIn  = "linkedin"
	GitHub    = "github"
)

// Profile is everything the portfolio page shows about its owner.
// An empty string field means the value was left out on purpose.
type Profile struct {
	GithubUsername string       `json:"githubUsername" yaml:"githubUsername" toml:"githubUsername"`
	Name           string       `json:"name" yaml:"name" toml:"name"`
	Designation    string       `json:"designation" yaml:"designation" toml:"designation"`
	AvatarURL      string       `json:"avatarUrl" yaml:"avatarUrl" toml:"avatarUrl"`
	Email          string       `json:"email" yaml:"email" toml:"email"`
	Phone          string       `json:"phone" yaml:"phone" toml:"phone"`
	Address        string       `json:"address" yaml:"address" toml:"address"`
	Projects       []Project    `json:"projects" yaml:"projects" toml:"projects"`
	About          About        `json:"about" yaml:"about" toml:"about"`
	Experience     []Experience `json:"experience" yaml:"experience" toml:"experience"`
	ResumeURL      string       `json:"resumeUrl" yaml:"resumeUrl" toml:"resumeUrl"`
	SocialLinks    SocialLinks  `json:"socialLinks" yaml:"socialLinks" toml:"socialLinks"`
}

type Project struct {
	Title  string `json:"title" yaml:"title" toml:"title"`
	Link   string `json:"link" yaml:"link" toml:"link"`
	ImgURL string `json:"imgUrl" yaml:"imgUrl" toml:"imgUrl"`
}

type About struct {
	Title             string   `json:"title" yaml:"title" toml:"title"`
	Description       []string `json:"description" yaml:"description" toml:"description"`
	CurrentProject    string   `json:"currentProject" yaml:"currentProject" toml:"currentProject"`
	CurrentProjectURL string   `json:"currentProjectUrl" yaml:"currentProjectUrl" toml:"currentProjectUrl"`
}

// Experience is one entry of the work/education timeline. Entries are listed
// newest first, but nothing checks that.
type Experience struct {
	Title       string `json:"title" yaml:"title" toml:"title"`
	Company     string `json:"company" yaml:"company" toml:"company"`
	Year        string `json:"year" yaml:"year" toml:"year"`
	CompanyLink string `json:"companyLink" yaml:"companyLink" toml:"companyLink"`
	Desc        string `json:"desc" yaml:"desc" toml:"desc"`
}

// SocialLinks maps a platform name to a profile URL. Platforms come and go
// without a schema change; a missing key and an empty URL both mean disabled.
type SocialLinks map[string]string

// SocialLink is a single enabled platform, used where display order matters.
type SocialLink struct {
	Platform string `json:"platform"`
	URL      string `json:"url"`
}

func (p Profile) HasPhone() bool   { return p.Phone != "" }
func (p Profile) HasAddress() bool { return p.Address != "" }

func (a About) HasCurrentProjectURL() bool { return a.CurrentProjectURL != "" }

func (e Experience) HasCompanyLink() bool { return e.CompanyLink != "" }
func (e Experience) HasDesc() bool        { return e.Desc != "" }

// Get returns the URL for platform. ok is false when the platform is absent
// or disabled.
func (s SocialLinks) Get(platform string) (url string, ok bool) {
	url = s[platform]
	return url, url != ""
}

// Platforms returns the enabled platforms sorted by name.
func (s SocialLinks) Platforms() []string {
	names := make([]string, 0, len(s))
	for name, url := range s {
		if url != "" {
			names = append(names, name)
		}
	}
	slices.Sort(names)
	return names
}

// Enabled returns the enabled links in Platforms order.
func (s SocialLinks) Enabled() []SocialLink {
	names := s.Platforms()
	links := make([]SocialLink, len(names))
	for i, name := range names {
		links[i] = SocialLink{Platform: name, URL: s[name]}
	}
	return links
}

// Clone returns a deep copy of p. Nothing reachable from the copy is shared
// with p.
func (p Profile) Clone() Profile {
	c := p
	c.Projects = slices.Clone(p.Projects)
	c.Experience = slices.Clone(p.Experience)
	c.About.Description = slices.Clone(p.About.Description)
	c.SocialLinks = maps.Clone(p.SocialLinks)
	return c
}
