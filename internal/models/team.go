package models

import (
	"fmt"
	"regexp"
	"strings"
	"time"
	"unicode"
)

// Team groups members on the local teams screen
type Team struct {
	ID          string
	Name        string
	Description string
	Color       string
	Members     []*Member
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NamedColor is one entry of the team palette
type NamedColor struct {
	Hex  string
	Name string
}

// DefaultTeamColor is used when a team is created without a color
const DefaultTeamColor = "#EAB308"

// TeamColors is the palette offered when creating a team
var TeamColors = []NamedColor{
	{"#EAB308", "Dourado"},
	{"#3B82F6", "Azul"},
	{"#10B981", "Verde"},
	{"#F59E0B", "Laranja"},
	{"#8B5CF6", "Roxo"},
	{"#EC4899", "Rosa"},
}

var hexColor = regexp.MustCompile(`^#[0-9A-Fa-f]{6}$`)

// ValidateColor checks that color is in #RRGGBB form
func ValidateColor(color string) error {
	if !hexColor.MatchString(color) {
		return fmt.Errorf("%w: must be in hex format #RRGGBB (e.g., #FF0000), got: %s", ErrInvalidColor, color)
	}
	return nil
}

// Member is a person on the local users screen. A member belongs to at
// most one team.
type Member struct {
	ID        string
	Name      string
	Email     string
	Role      Role
	TeamID    string // empty when the member has no team
	TeamName  string // filled in by reads
	Status    MemberStatus
	JoinedAt  time.Time
	UpdatedAt time.Time
}

// Initials returns up to two capital letters from the first words of the
// name, as shown in member avatars
func (m *Member) Initials() string {
	var out []rune
	for _, word := range strings.Fields(m.Name) {
		r := []rune(word)[0]
		out = append(out, unicode.ToUpper(r))
		if len(out) == 2 {
			break
		}
	}
	return string(out)
}

// Active reports whether the member can be assigned work
func (m *Member) Active() bool {
	return m.Status == MemberActive
}

// Role is a member's job on the team
type Role string

const (
	RoleManager    Role = "gestor"
	RoleConsultant Role = "consultor"
	RoleSupport    Role = "suporte"
)

// Roles lists roles in display order
var Roles = []Role{RoleManager, RoleConsultant, RoleSupport}

// DefaultRole is given to members created without one
const DefaultRole = RoleConsultant

var roleTitles = map[Role]string{
	RoleManager:    "Gestor",
	RoleConsultant: "Consultor",
	RoleSupport:    "Suporte",
}

// Title returns the role as shown in listings
func (r Role) Title() string {
	if title, ok := roleTitles[r]; ok {
		return title
	}
	return string(r)
}

// Valid reports whether r is a known role
func (r Role) Valid() bool {
	_, ok := roleTitles[r]
	return ok
}

// ParseRole accepts a role key or its title, case-insensitively
func ParseRole(value string) (Role, error) {
	v := strings.TrimSpace(value)
	for _, r := range Roles {
		if strings.EqualFold(v, string(r)) {
			return r, nil
		}
	}
	return "", fmt.Errorf("%w: %q (must be: gestor, consultor, suporte)", ErrInvalidRole, value)
}

// MemberStatus tells active members from those who left
type MemberStatus string

const (
	MemberActive   MemberStatus = "ativo"
	MemberInactive MemberStatus = "inativo"
)

// DefaultMemberStatus is given to members created without one
const DefaultMemberStatus = MemberActive

// Title returns the status as shown in listings
func (s MemberStatus) Title() string {
	switch s {
	case MemberActive:
		return "Ativo"
	case MemberInactive:
		return "Inativo"
	}
	return string(s)
}

// Valid reports whether s is a known status
func (s MemberStatus) Valid() bool {
	return s == MemberActive || s == MemberInactive
}

// ParseMemberStatus accepts ativo or inativo, case-insensitively
func ParseMemberStatus(value string) (MemberStatus, error) {
	v := strings.TrimSpace(value)
	for _, s := range []MemberStatus{MemberActive, MemberInactive} {
		if strings.EqualFold(v, string(s)) {
			return s, nil
		}
	}
	return "", fmt.Errorf("%w: %q (must be: ativo, inativo)", ErrInvalidMemberStatus, value)
}
