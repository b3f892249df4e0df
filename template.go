package portfolio

import "github.com/gin-gonic/gin"

// TemplateData flattens p into the view map an index page template is
// rendered with, e.g. c.HTML(http.StatusOK, "index.html", TemplateData(p)).
func TemplateData(p Profile) gin.H {
	h := gin.H{
		"title":          p.Name + " | " + p.Designation,
		"githubUsername": p.GithubUsername,
		"name":           p.Name,
		"designation":    p.Designation,
		"avatarUrl":      p.AvatarURL,
		"email":          p.Email,
		"projects":       p.Projects,
		"about":          p.About,
		"experience":     p.Experience,
		"resumeUrl":      p.ResumeURL,
		"socialLinks":    p.SocialLinks.Enabled(),
	}

	// Leave empty contact details out so {{ if .phone }} reads as "not set"
	if p.HasPhone() {
		h["phone"] = p.Phone
	}
	if p.HasAddress() {
		h["address"] = p.Address
	}
	return h
}
