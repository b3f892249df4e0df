// Package portfolio holds the content of Brian Semrau's portfolio site.
// Templates read it through UserData.
package portfolio

var userData = Profile{
	GithubUsername: "briansemrau",
	Name:           "Brian Semrau",
	Designation:    "Software Developer",
	AvatarURL:      "/avatar.png",
	Email:          "brian.semrau.dev@gmail.com",
	Phone:          "",
	Address:        "Detroit, Michigan, USA",
	Projects: []Project{
		{
			Title:  "Tailwind Master Kit",
			Link:   "https://tailwindmasterkit.com",
			ImgURL: "/tmk.jpg",
		},
		{
			Title:  "PlaceholderTech",
			Link:   "https://placeholdertech.in",
			ImgURL: "/placeholdertech.png",
		},
		{
			Title:  "Portfolio",
			Link:   "https://manuarora.in",
			ImgURL: "/portfolio.png",
		},
	},
	About: About{
		Title: "Software developer with a passion for problem solving, performant code, and applied math.",
		Description: []string{
			`I started to learn how to program when I was 11 years old. I started with an interest in making games and simulations, but expanded into robotics when I started high school.`,
			`In university I studied computer science. While still working on games, I also developed an interest in data science and machine learning.`,
			`These days, my main hobby is applying AI to creative applications such as writing, social chat bots, and music generation.`,
		},
		CurrentProject:    "MIDI Music Generation",
		CurrentProjectURL: "",
	},
	Experience: []Experience{
		{
			Title:       "Software Developer",
			Company:     "Winterpixel Games",
			Year:        "2021 - 2023",
			CompanyLink: "https://winterpixel.com",
			Desc:        "Developed and published two cross-platform, server-authoritative multiplayer games. Responsible for gameplay, performance optimization, backend infrastructure, community management, and more.",
		},
		{
			Title:       "Software Engineering Intern",
			Company:     "Robert Bosch LLC",
			Year:        "2020",
			CompanyLink: "",
			Desc:        "",
		},
		{
			Title:       "Software Engineering Intern",
			Company:     "Robert Bosch LLC",
			Year:        "2019",
			CompanyLink: "",
			Desc:        "Implemented software features and tests for driver assistance RADAR systems.",
		},
		{
			Title:       "Oakland University",
			Company:     "UPES, Dehradun.",
			Year:        "Sept. 2017 - Dec. 2021",
			CompanyLink: "https://oakland.edu",
			Desc:        "B.S. Computer Science, Computational Intelligence professional track. Graduated with departmental honors.",
		},
		{
			Title:       "High School",
			Company:     "West Bloomfield High School, Michigan.",
			Year:        "2013 - 2017",
			CompanyLink: "",
			Desc:        "Marching Band Drum Major, FIRST Robotics Team Captain, Member of the Jazz Band.",
		},
	},
	ResumeURL: "https://drive.google.com/file/d/1xmE3BOmgM7TAOOgVp36xQIQvYDntDYoo/view?usp=sharing",
	SocialLinks: SocialLinks{
		Instagram: "https://instagram.com/maninthere",
		// Twitter: "https://twitter.com/mannupaaji",
		LinkedIn: "https://www.linkedin.com/in/brian-s-0022b0123/",
		GitHub:   "https://github.com/briansemrau",
	},
}

// UserData returns the portfolio content. Each call gets its own copy, so
// callers are free to modify what they get back.
func UserData() Profile {
	return userData.Clone()
}
