package content

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// asBundle mimics what the vault hands back: the result of unmarshalling
// arbitrary JSON into any.
func asBundle(t *testing.T, raw string) any {
	t.Helper()
	var bundle any
	require.NoError(t, json.Unmarshal([]byte(raw), &bundle))
	return bundle
}

func TestDecodeAbout(t *testing.T) {
	bundle := asBundle(t, `{
		"story": ["first paragraph", "second paragraph"],
		"interests": [{"id": "tennis", "icon": "🎾", "title": "Tennis", "description": "baseline game"}],
		"currently": ["learning"],
		"contact": {"description": "reach me", "links": [{"type": "email", "label": "Email", "url": "mailto:x"}]}
	}`)

	about, err := DecodeAbout(bundle)
	require.NoError(t, err)
	assert.Equal(t, []string{"first paragraph", "second paragraph"}, about.Story)
	require.Len(t, about.Interests, 1)
	assert.Equal(t, "tennis", about.Interests[0].ID)
	assert.Equal(t, "🎾", about.Interests[0].Icon)
	require.Len(t, about.Contact.Links, 1)
	assert.Equal(t, "mailto:x", about.Contact.Links[0].URL)
}

func TestDecodeJourney(t *testing.T) {
	bundle := asBundle(t, `{
		"journeyChapters": [
			{"id": "pivot", "title": "The Pivot", "icon": "🔄", "date": "2024", "description": "changed course", "fullStory": "the long version"}
		]
	}`)

	journey, err := DecodeJourney(bundle)
	require.NoError(t, err)
	require.Len(t, journey.Chapters, 1)
	assert.Equal(t, "pivot", journey.Chapters[0].ID)
	assert.Equal(t, "the long version", journey.Chapters[0].FullStory)
}

func TestDecodeEducation(t *testing.T) {
	bundle := asBundle(t, `[{
		"id": "gatech", "title": "Georgia Tech", "degree": "MS Analytics",
		"status": "In Progress", "date": "2025", "icon": "🐝",
		"color": "bg-yellow-50", "iconColor": "text-yellow-600",
		"description": "online masters",
		"courses": [{"id": "cs6400", "code": "CS 6400", "name": "Database Systems",
			"status": "In Progress", "semester": "Fall 2025", "description": "db design",
			"topics": ["SQL", "normalization"], "takeaways": "tbd"}]
	}]`)

	education, err := DecodeEducation(bundle)
	require.NoError(t, err)
	require.Len(t, education, 1)
	assert.Equal(t, "gatech", education[0].ID)
	require.Len(t, education[0].Courses, 1)
	assert.Equal(t, []string{"SQL", "normalization"}, education[0].Courses[0].Topics)
}

func TestDecodeProjects(t *testing.T) {
	bundle := asBundle(t, `[{
		"id": "hanzismith", "title": "Hanzismith", "icon": "汉",
		"color": "bg-red-50", "iconColor": "text-red-600",
		"summary": "language tool", "description": "longer text", "impact": "saved time",
		"skills": ["Python", "Flask"],
		"versions": [{"version": "v1.0", "title": "Full Stack", "date": "July 2024",
			"stack": ["Python"], "description": "web app",
			"highlights": ["hover translations"], "documentationFile": "hanzismith.md"}]
	}]`)

	projects, err := DecodeProjects(bundle)
	require.NoError(t, err)
	require.Len(t, projects, 1)
	assert.Equal(t, "hanzismith", projects[0].ID)
	require.Len(t, projects[0].Versions, 1)
	assert.Equal(t, "v1.0", projects[0].Versions[0].Version)
}

func TestDecodeShapeMismatch(t *testing.T) {
	// an education bundle is a list; handing it an object fails
	_, err := DecodeEducation(asBundle(t, `{"id": "gatech"}`))
	assert.Error(t, err)
}
