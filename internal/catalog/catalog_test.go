package catalog_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"course-compass/internal/catalog"
)

func TestDefault(t *testing.T) {
	c := catalog.Default()
	require.Equal(t, 6, c.Len())

	ids := make([]string, 0, c.Len())
	for _, course := range c.Courses() {
		ids = append(ids, course.ID)
	}
	assert.Equal(t, []string{"CMPS 270", "DATA 200", "STAT 233", "ECON 222", "ENGL 203", "BIOL 201"}, ids)
}

func TestRender(t *testing.T) {
	out := catalog.Default().Render()
	lines := strings.Split(out, "\n")

	require.Len(t, lines, 7)
	assert.Equal(t, "AUB Courses:", lines[0])
	assert.Equal(t, "- CMPS 270: Machine Learning - Introduction to algorithms and model training. Prereq: CMPS 200.", lines[1])
	assert.Equal(t, "- BIOL 201: Cell and Molecular Biology - Core molecular and cellular biology principles.", lines[6])
}

func TestRender_Empty(t *testing.T) {
	assert.Equal(t, "AUB Courses:", catalog.New().Render())
}

func TestLookup(t *testing.T) {
	c := catalog.Default()

	got, ok := c.Lookup("  cmps   270 ")
	require.True(t, ok)
	assert.Equal(t, "CMPS 270", got.ID)

	_, ok = c.Lookup("CMPS 999")
	assert.False(t, ok)
}

func TestNew_DuplicateReplacesInPlace(t *testing.T) {
	c := catalog.New(
		catalog.Course{ID: "A 1", Description: "first"},
		catalog.Course{ID: "B 2", Description: "second"},
		catalog.Course{ID: "a 1", Description: "replaced"},
	)

	courses := c.Courses()
	require.Len(t, courses, 2)
	assert.Equal(t, "replaced", courses[0].Description)
	assert.Equal(t, "B 2", courses[1].ID)
}

func TestCourses_ReturnsCopy(t *testing.T) {
	c := catalog.Default()
	courses := c.Courses()
	courses[0].Description = "mutated"

	got, _ := c.Lookup("CMPS 270")
	assert.NotEqual(t, "mutated", got.Description)
}
