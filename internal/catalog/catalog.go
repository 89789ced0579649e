// Package catalog holds the fixed course catalog the advisor answers from.
package catalog

import "strings"

// Course is a single catalog entry.
type Course struct {
	ID          string
	Description string
}

// Catalog is an ordered, read-only list of courses.
type Catalog struct {
	courses []Course
	byID    map[string]int
}

// New builds a catalog keeping the given order. A later course with the same
// identifier replaces the earlier one in place.
func New(courses ...Course) *Catalog {
	c := &Catalog{
		courses: make([]Course, 0, len(courses)),
		byID:    make(map[string]int, len(courses)),
	}
	for _, course := range courses {
		key := normalize(course.ID)
		if i, ok := c.byID[key]; ok {
			c.courses[i] = course
			continue
		}
		c.byID[key] = len(c.courses)
		c.courses = append(c.courses, course)
	}
	return c
}

// Default returns the AUB sample catalog.
func Default() *Catalog {
	return New(
		Course{ID: "CMPS 270", Description: "Machine Learning - Introduction to algorithms and model training. Prereq: CMPS 200."},
		Course{ID: "DATA 200", Description: "Introduction to Data Science - Fundamentals of data visualization and analysis."},
		Course{ID: "STAT 233", Description: "Probability and Statistics - Covers probability theory, random variables, and data analysis."},
		Course{ID: "ECON 222", Description: "Econometrics I - Quantitative methods for economics and social sciences."},
		Course{ID: "ENGL 203", Description: "Academic Writing - Advanced academic writing and research composition."},
		Course{ID: "BIOL 201", Description: "Cell and Molecular Biology - Core molecular and cellular biology principles."},
	)
}

// Courses returns a copy of the catalog entries in order.
func (c *Catalog) Courses() []Course {
	out := make([]Course, len(c.courses))
	copy(out, c.courses)
	return out
}

// Len returns the number of courses.
func (c *Catalog) Len() int {
	return len(c.courses)
}

// Lookup finds a course by identifier, ignoring case and surrounding spaces.
func (c *Catalog) Lookup(id string) (Course, bool) {
	i, ok := c.byID[normalize(id)]
	if !ok {
		return Course{}, false
	}
	return c.courses[i], true
}

// Render formats the catalog as the text block given to the model:
//
//	AUB Courses:
//	- CMPS 270: Machine Learning - ...
func (c *Catalog) Render() string {
	var b strings.Builder
	b.WriteString("AUB Courses:")
	for _, course := range c.courses {
		b.WriteString("\n- ")
		b.WriteString(course.ID)
		b.WriteString(": ")
		b.WriteString(course.Description)
	}
	return b.String()
}

func normalize(id string) string {
	return strings.ToUpper(strings.Join(strings.Fields(id), " "))
}
