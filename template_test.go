package portfolio

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/goccy/go-json"
	"github.com/google/go-cmp/cmp"
)

func TestTemplateData(t *testing.T) {
	p := UserData()
	h := TemplateData(p)

	if h["title"] != "Brian Semrau | Software Developer" {
		t.Errorf("unexpected title %v", h["title"])
	}
	if _, ok := h["phone"]; ok {
		t.Errorf("did not expect empty phone in template data")
	}
	if h["address"] != "Detroit, Michigan, USA" {
		t.Errorf("expected address, got %v", h["address"])
	}

	links, ok := h["socialLinks"].([]SocialLink)
	if !ok {
		t.Fatalf("expected []SocialLink, got %T", h["socialLinks"])
	}
	want := []SocialLink{
		{Platform: GitHub, URL: "https://github.com/briansemrau"},
		{Platform: Instagram, URL: "https://instagram.com/maninthere"},
		{Platform: LinkedIn, URL: "https://www.linkedin.com/in/brian-s-0022b0123/"},
	}
	if diff := cmp.Diff(want, links); diff != "" {
		t.Errorf("social links mismatch (-want +got):\n%s", diff)
	}

	t.Run("Phone set", func(t *testing.T) {
		p := UserData()
		p.Phone = "555-0100"
		p.Address = ""
		h := TemplateData(p)
		if h["phone"] != "555-0100" {
			t.Errorf("expected phone in template data, got %v", h["phone"])
		}
		if _, ok := h["address"]; ok {
			t.Errorf("did not expect empty address in template data")
		}
	})
}

// Renders the view map through gin the way a handler would hand it to a
// template or an HTMX fragment endpoint.
func TestTemplateDataRendersThroughGin(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	c.JSON(http.StatusOK, TemplateData(UserData()))

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var body struct {
		Name        string       `json:"name"`
		Projects    []Project    `json:"projects"`
		Experience  []Experience `json:"experience"`
		About       About        `json:"about"`
		SocialLinks []SocialLink `json:"socialLinks"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode response: %v", err)
	}

	if body.Name != "Brian Semrau" {
		t.Errorf("expected name 'Brian Semrau', got '%s'", body.Name)
	}
	if len(body.Projects) != 3 || body.Projects[2].Title != "Portfolio" {
		t.Errorf("expected projects in display order, got %+v", body.Projects)
	}
	if len(body.Experience) == 0 || body.Experience[0].Company != "Winterpixel Games" {
		t.Errorf("expected Winterpixel Games first, got %+v", body.Experience)
	}
	if body.About.CurrentProject != "MIDI Music Generation" {
		t.Errorf("expected current project, got '%s'", body.About.CurrentProject)
	}
	if len(body.SocialLinks) != 3 {
		t.Errorf("expected 3 enabled social links, got %d", len(body.SocialLinks))
	}
}
