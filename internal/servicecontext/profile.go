package servicecontext

import (
	"fmt"
	"time"
)

// DefaultProfile returns the AUB Compass profile. The copyright line carries
// the UTC year of now.
func DefaultProfile(now time.Time) Profile {
	now = now.UTC()
	return Profile{
		Name:    "AUB Compass Tutoring Service",
		Mission: "Empower AUB students with personalized course recommendations and tutoring support to make confident academic decisions and excel in their studies.",
		Services: []string{
			"AI Course Advisor - answers questions about AUB courses, majors, electives, and prerequisites.",
			"Study Planner - helps organize semester schedules and balance workloads.",
			"Skill Path Finder - recommends electives and minors for goals like data science, writing, or communication.",
			"Tutoring Resource Hub - provides study tips and subject guidance.",
			"Feedback Tracker - records common questions to improve service quality.",
		},
		Team: []TeamMember{
			{Name: "Academic Director - Dr. Layla Haddad", Bio: "Oversees tutoring quality and curriculum alignment."},
			{Name: "Technical Lead - Rami Choueiri", Bio: "Responsible for the AUB Compass AI platform and integrations."},
			{Name: "Student Success Lead - Nour Mansour", Bio: "Coordinates tutoring sessions and student onboarding."},
		},
		ValueProps: []string{
			"Combines academic expertise with intelligent guidance for fast, accurate advice.",
			"Encourages students to verify choices with official AUB advisors before registration.",
			"Provides consistent, supportive, and ethical tutoring help.",
		},
		Contact:   "support@aubcompass.example (fictional)",
		Copyright: fmt.Sprintf("(c) %d AUB Compass Tutoring Service - Fictional service for coursework.", now.Year()),
		IssuedAt:  now,
	}
}
