package defaults

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestServiceDefaultsHaveUniqueIDsAndSlugs(t *testing.T) {
	services := Services()
	require.NotEmpty(t, services)

	ids := map[string]bool{}
	slugs := map[string]bool{}
	for _, s := range services {
		assert.NotEmpty(t, s.ID)
		assert.NotEmpty(t, s.Slug)
		assert.NotEmpty(t, s.NameEN)
		assert.NotEmpty(t, s.NameID)
		assert.False(t, ids[s.ID], "duplicate service id %s", s.ID)
		assert.False(t, slugs[s.Slug], "duplicate service slug %s", s.Slug)
		ids[s.ID] = true
		slugs[s.Slug] = true
	}
}

func TestTemplateDefaultsAreWellFormed(t *testing.T) {
	templates := Templates()
	require.NotEmpty(t, templates)

	slugs := map[string]bool{}
	for _, tpl := range templates {
		assert.NotEmpty(t, tpl.ID)
		assert.NotEmpty(t, tpl.Slug)
		assert.NotEmpty(t, tpl.Category)
		assert.Positive(t, tpl.Price)
		assert.False(t, slugs[tpl.Slug], "duplicate template slug %s", tpl.Slug)
		slugs[tpl.Slug] = true
	}
}

func TestBlogDefaultsHaveValidDates(t *testing.T) {
	posts := BlogPosts()
	require.NotEmpty(t, posts)

	for _, p := range posts {
		assert.NotEmpty(t, p.Slug)
		assert.Regexp(t, `^\d{4}-\d{2}-\d{2}$`, p.PublishedAt, "post %s", p.Slug)
	}
}

func TestDefaultsAreStableAcrossCalls(t *testing.T) {
	assert.Equal(t, Services(), Services())
	assert.Equal(t, Templates(), Templates())
	assert.Equal(t, Portfolio(), Portfolio())
	assert.Equal(t, Testimonials(), Testimonials())
	assert.Equal(t, BlogPosts(), BlogPosts())
	assert.Equal(t, Pricing(), Pricing())
}

func TestPricingDefaultsAreOrdered(t *testing.T) {
	packages := Pricing()
	require.NotEmpty(t, packages)

	for i := 1; i < len(packages); i++ {
		assert.LessOrEqual(t, packages[i-1].Order, packages[i].Order)
	}
}
