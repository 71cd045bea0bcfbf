// Package content defines the decrypted bundle shapes the site renders.
package content

import (
	"encoding/json"
	"fmt"
)

// About is the about-page bundle.
type About struct {
	Story     []string   `json:"story"`
	Interests []Interest `json:"interests"`
	Currently []string   `json:"currently"`
	Contact   Contact    `json:"contact"`
}

type Interest struct {
	ID          string `json:"id"`
	Icon        string `json:"icon"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

type Contact struct {
	Description string        `json:"description"`
	Links       []ContactLink `json:"links"`
}

type ContactLink struct {
	Type  string `json:"type"`
	Label string `json:"label"`
	URL   string `json:"url"`
}

// Education is one institution entry; the education bundle is a list of them.
type Education struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Degree      string   `json:"degree"`
	Status      string   `json:"status"`
	Date        string   `json:"date"`
	Icon        string   `json:"icon"`
	Color       string   `json:"color"`
	IconColor   string   `json:"iconColor"`
	Description string   `json:"description"`
	Courses     []Course `json:"courses"`
}

type Course struct {
	ID          string   `json:"id"`
	Code        string   `json:"code"`
	Name        string   `json:"name"`
	Status      string   `json:"status"`
	Semester    string   `json:"semester"`
	Description string   `json:"description"`
	Topics      []string `json:"topics"`
	Takeaways   string   `json:"takeaways"`
}

// Journey is the journey-page bundle.
type Journey struct {
	Chapters []JourneyChapter `json:"journeyChapters"`
}

type JourneyChapter struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Icon        string `json:"icon"`
	Date        string `json:"date"`
	Description string `json:"description"`
	FullStory   string `json:"fullStory"`
}

// Project is one project entry; the projects bundle is a list of them.
type Project struct {
	ID          string           `json:"id"`
	Title       string           `json:"title"`
	Icon        string           `json:"icon"`
	Color       string           `json:"color"`
	IconColor   string           `json:"iconColor"`
	Summary     string           `json:"summary"`
	Description string           `json:"description"`
	Impact      string           `json:"impact"`
	Skills      []string         `json:"skills"`
	Versions    []ProjectVersion `json:"versions"`
}

type ProjectVersion struct {
	Version           string   `json:"version"`
	Title             string   `json:"title"`
	Date              string   `json:"date"`
	Stack             []string `json:"stack"`
	Description       string   `json:"description"`
	Highlights        []string `json:"highlights"`
	DocumentationFile string   `json:"documentationFile"`
}

// decode converts a generic decrypted bundle into a typed value by a JSON
// round trip.
func decode(bundle any, out any) error {
	data, err := json.Marshal(bundle)
	if err != nil {
		return fmt.Errorf("failed to serialize bundle: %w", err)
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("failed to decode bundle: %w", err)
	}
	return nil
}

// DecodeAbout converts a decrypted about bundle into its typed form.
func DecodeAbout(bundle any) (*About, error) {
	var a About
	if err := decode(bundle, &a); err != nil {
		return nil, err
	}
	return &a, nil
}

// DecodeEducation converts a decrypted education bundle into its typed form.
func DecodeEducation(bundle any) ([]Education, error) {
	var e []Education
	if err := decode(bundle, &e); err != nil {
		return nil, err
	}
	return e, nil
}

// DecodeJourney converts a decrypted journey bundle into its typed form.
func DecodeJourney(bundle any) (*Journey, error) {
	var j Journey
	if err := decode(bundle, &j); err != nil {
		return nil, err
	}
	return &j, nil
}

// DecodeProjects converts a decrypted projects bundle into its typed form.
func DecodeProjects(bundle any) ([]Project, error) {
	var p []Project
	if err := decode(bundle, &p); err != nil {
		return nil, err
	}
	return p, nil
}
