package alumni

import (
	"fmt"
	"strings"
)

// User is a single alumni profile. Exactly one User per session is the
// current user; its record is replaced wholesale on profile save.
type User struct {
	ID             string   `json:"id"`
	Name           string   `json:"name"`
	Email          string   `json:"email"`
	Phone          string   `json:"phone,omitempty"`
	School         string   `json:"school"`
	GraduationYear int      `json:"graduationYear"`
	Occupation     string   `json:"occupation"`
	Bio            string   `json:"bio"`
	Avatar         string   `json:"avatar"`
	Location       string   `json:"location"`
	Skills         []string `json:"skills,omitempty"`
}

// FirstName returns the leading name component, used in chat prompts.
func (u User) FirstName() string {
	if parts := strings.Fields(u.Name); len(parts) > 0 {
		return parts[0]
	}
	return u.Name
}

// ClassOf renders the affiliation line shown on cards and profiles.
func (u User) ClassOf() string {
	return fmt.Sprintf("%s · Class of %d", u.School, u.GraduationYear)
}

// Row returns the table columns for terminal listings.
func (u User) Row() (string, string, string, string) {
	return u.Name, u.Occupation, u.School, fmt.Sprintf("%d", u.GraduationYear)
}

func (u User) String() string {
	return fmt.Sprintf("%s (%s)", u.Name, u.Occupation)
}
