package handler

import (
	"encoding/xml"
	"log"
	"net/http"
	"time"

	"github.com/kebo-sukses/calius-digital/internal/domain/repository"
)

type SitemapHandler struct {
	services  repository.ServiceRepository
	templates repository.TemplateRepository
	blog      repository.BlogRepository
	baseURL   string
}

func NewSitemapHandler(
	services repository.ServiceRepository,
	templates repository.TemplateRepository,
	blog repository.BlogRepository,
	baseURL string,
) *SitemapHandler {
	return &SitemapHandler{services: services, templates: templates, blog: blog, baseURL: baseURL}
}

type sitemapURL struct {
	Loc        string `xml:"loc"`
	LastMod    string `xml:"lastmod,omitempty"`
	ChangeFreq string `xml:"changefreq,omitempty"`
	Priority   string `xml:"priority,omitempty"`
}

type sitemapURLSet struct {
	XMLName xml.Name     `xml:"urlset"`
	Xmlns   string       `xml:"xmlns,attr"`
	URLs    []sitemapURL `xml:"url"`
}

var sitemapStaticPaths = []struct {
	path     string
	priority string
}{
	{"", "1.0"},
	{"/services", "0.9"},
	{"/templates", "0.9"},
	{"/pricing", "0.8"},
	{"/portfolio", "0.7"},
	{"/blog", "0.7"},
	{"/about", "0.5"},
	{"/contact", "0.5"},
}

// Serve writes the sitemap built from the live content catalog. Lookup
// failures degrade to the static pages instead of failing the request.
func (h *SitemapHandler) Serve(w http.ResponseWriter, r *http.Request) {
	today := time.Now().UTC().Format("2006-01-02")

	set := sitemapURLSet{Xmlns: "http://www.sitemaps.org/schemas/sitemap/0.9"}
	for _, p := range sitemapStaticPaths {
		set.URLs = append(set.URLs, sitemapURL{
			Loc:        h.baseURL + p.path,
			LastMod:    today,
			ChangeFreq: "weekly",
			Priority:   p.priority,
		})
	}

	if services, err := h.services.List(r.Context()); err == nil {
		for _, s := range services {
			set.URLs = append(set.URLs, sitemapURL{Loc: h.baseURL + "/services/" + s.Slug, LastMod: today, ChangeFreq: "monthly", Priority: "0.8"})
		}
	} else {
		log.Printf("WARN: sitemap: failed to list services: %v", err)
	}

	if templates, err := h.templates.List(r.Context(), ""); err == nil {
		for _, t := range templates {
			set.URLs = append(set.URLs, sitemapURL{Loc: h.baseURL + "/templates/" + t.Slug, LastMod: today, ChangeFreq: "monthly", Priority: "0.8"})
		}
	} else {
		log.Printf("WARN: sitemap: failed to list templates: %v", err)
	}

	if posts, err := h.blog.List(r.Context(), "", 1000); err == nil {
		for _, p := range posts {
			u := sitemapURL{Loc: h.baseURL + "/blog/" + p.Slug, ChangeFreq: "monthly", Priority: "0.6"}
			if p.PublishedAt != "" {
				u.LastMod = p.PublishedAt
			}
			set.URLs = append(set.URLs, u)
		}
	} else {
		log.Printf("WARN: sitemap: failed to list blog posts: %v", err)
	}

	out, err := xml.MarshalIndent(set, "", "  ")
	if err != nil {
		http.Error(w, "failed to render sitemap", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/xml; charset=utf-8")
	w.Write([]byte(xml.Header))
	w.Write(out)
}
