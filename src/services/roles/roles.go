// Package roles maps classifier class ids to tech career names.
package roles

import (
	"sort"

	"Backend-Career-Advisor/src/models"
)

// Unknown is returned for class ids outside the table.
const Unknown = "Unknown Role"

var table = map[int]string{
	0:  "AI ML Specialist",
	1:  "API Specialist",
	2:  "Application Support Engineer",
	3:  "Business Analyst",
	4:  "Customer Service Executive",
	5:  "Cyber Security Specialist",
	6:  "Database Administrator",
	7:  "Graphics Designer",
	8:  "Hardware Engineer",
	9:  "Helpdesk Engineer",
	10: "Information Security Specialist",
	11: "Networking Engineer",
	12: "Project Manager",
	13: "Software Developer",
	14: "Software tester",
	15: "Technical Writer",
}

// featured is the homepage showcase.
var featured = []string{
	"AI/ML Specialist", "Software Developer", "Database Administrator",
	"Cyber Security Specialist", "Project Manager", "Business Analyst",
	"Graphics Designer", "Technical Writer", "Networking Engineer",
}

// Lookup maps a class id to its role name.
func Lookup(id int) string {
	if name, ok := table[id]; ok {
		return name
	}
	return Unknown
}

func Known(id int) bool {
	_, ok := table[id]
	return ok
}

// All returns the table ordered by class id.
func All() []models.Role {
	out := make([]models.Role, 0, len(table))
	for id, name := range table {
		out = append(out, models.Role{ID: id, Name: name})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func Featured() []string {
	out := make([]string, len(featured))
	copy(out, featured)
	return out
}
