package usecase

import (
	"strings"

	"course-compass/internal/servicecontext"
)

const fictionalNote = "(For academic use - fictional tutoring service identity.)"

var dashReplacer = strings.NewReplacer("—", "-", "–", "-")

// asciiSafe replaces em and en dashes with a plain hyphen.
func asciiSafe(s string) string {
	return dashReplacer.Replace(s)
}

func heading(title string) []string {
	return []string{title, strings.Repeat("-", len(title))}
}

// summaryLines renders the plain-text summary.
func summaryLines(p servicecontext.Profile) []string {
	lines := []string{p.Name + " - Summary", ""}

	lines = append(lines, heading("Mission")...)
	lines = append(lines, p.Mission, "")

	lines = append(lines, heading("What We Offer")...)
	for _, s := range p.Services {
		lines = append(lines, "- "+s)
	}
	lines = append(lines, "")

	lines = append(lines, heading("Team")...)
	for _, m := range p.Team {
		lines = append(lines, "- "+m.Name+": "+m.Bio)
	}
	lines = append(lines, "")

	lines = append(lines, heading("Value Proposition")...)
	for _, v := range p.ValueProps {
		lines = append(lines, "- "+v)
	}
	lines = append(lines, "")

	lines = append(lines, heading("Contact")...)
	lines = append(lines, p.Contact, "", fictionalNote)

	return mapLines(lines, asciiSafe)
}

// profileLines renders the extended variant that goes into the PDF.
func profileLines(p servicecontext.Profile) []string {
	lines := []string{
		p.Name + " - Service Profile",
		"",
		"Mission: " + p.Mission,
		"",
		"Services:",
	}
	for _, s := range p.Services {
		lines = append(lines, "* "+s)
	}
	lines = append(lines, "", "Team:")
	for _, m := range p.Team {
		lines = append(lines, "* "+m.Name+": "+m.Bio)
	}
	lines = append(lines, "", "Value Proposition:")
	for _, v := range p.ValueProps {
		lines = append(lines, "* "+v)
	}
	lines = append(lines, "", "Contact: "+p.Contact, p.Copyright)

	return mapLines(lines, asciiSafe)
}

func mapLines(lines []string, fn func(string) string) []string {
	for i, l := range lines {
		lines[i] = fn(l)
	}
	return lines
}
