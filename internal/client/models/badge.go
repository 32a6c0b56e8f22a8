// Package models defines the records exchanged with the badge API and the
// values the pages render from them.
package models

import (
	"fmt"
	"time"
)

// Credentials is the body of the signup and login requests.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// BadgeDetails is the body of the badge creation request.
type BadgeDetails struct {
	FullName       string `json:"full_name"`
	University     string `json:"university"`
	Major          string `json:"major"`
	GraduationDate int64  `json:"graduation_date"`
	GitHub         string `json:"github"`
}

// BadgeForm is what the user fills in on the create page.
type BadgeForm struct {
	FullName       string
	University     string
	Major          string
	GraduationDate time.Time
	GitHub         string
}

// Details converts the form into the request body. The graduation date is
// sent as seconds since the Unix epoch.
func (f BadgeForm) Details() BadgeDetails {
	return BadgeDetails{
		FullName:       f.FullName,
		University:     f.University,
		Major:          f.Major,
		GraduationDate: f.GraduationDate.Unix(),
		GitHub:         f.GitHub,
	}
}

// Badge is the server-owned badge record. The client only keeps a read-only
// copy for the page that displays it.
type Badge struct {
	ID             string `json:"id"`
	FullName       string `json:"full_name"`
	University     string `json:"university"`
	Major          string `json:"major"`
	GraduationDate int64  `json:"graduation_date"`
	GitHub         string `json:"github"`
}

// BadgeView holds the display fields of a badge.
type BadgeView struct {
	ID             string
	FullName       string
	University     string
	Major          string
	GraduationYear int
	GitHub         string
}

// GraduationYear is the UTC calendar year of an epoch-seconds timestamp.
func GraduationYear(epochSeconds int64) int {
	return time.Unix(epochSeconds, 0).UTC().Year()
}

// View projects the record for display. Only the graduation year is derived.
func (b *Badge) View() BadgeView {
	return BadgeView{
		ID:             b.ID,
		FullName:       b.FullName,
		University:     b.University,
		Major:          b.Major,
		GraduationYear: GraduationYear(b.GraduationDate),
		GitHub:         b.GitHub,
	}
}

// Subtitle is the "University | Year of YYYY" line of the badge card.
func (v BadgeView) Subtitle() string {
	return fmt.Sprintf("%s | Year of %d", v.University, v.GraduationYear)
}
