package models

import (
	"strconv"
	"strings"
)

// BranchParam is the eligibility_param_name that carries a student's branch code.
const BranchParam = "branch"

// Codes outside this table are labelled "Branch N"; a new code in the eligibility
// taxonomy shows up that way until it is added here.
var branchNames = map[int]string{
	1: "Computer Science",
	2: "Information Technology",
	3: "Electronics & Communication",
	4: "Mechanical Engineering",
	5: "Civil Engineering",
	6: "Electrical Engineering",
}

func BranchName(code string) string {
	if n, err := strconv.Atoi(strings.TrimSpace(code)); err == nil {
		if name, ok := branchNames[n]; ok {
			return name
		}
	}
	return "Branch " + code
}
