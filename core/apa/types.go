package apa

import (
	"bytes"
	"encoding/json"

	"league-sync/core/utils"
)

// ID is an identifier the API sends as either a string or a number.
type ID string

// UnmarshalJSON accepts strings, numbers and null.
func (id *ID) UnmarshalJSON(b []byte) error {
	v, err := decodeScalar(b)
	if err != nil {
		return err
	}
	*id = ID(utils.ToString(v))
	return nil
}

func (id ID) String() string {
	return string(id)
}

// Number is an integer the API may send as a number, a numeric string or null.
type Number int

// UnmarshalJSON accepts numbers, numeric strings and null (zero).
func (n *Number) UnmarshalJSON(b []byte) error {
	v, err := decodeScalar(b)
	if err != nil {
		return err
	}
	*n = Number(utils.ToInt(v))
	return nil
}

func decodeScalar(b []byte) (any, error) {
	dec := json.NewDecoder(bytes.NewReader(b))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, err
	}
	return v, nil
}

// Division is the division object returned by both roster and schedule queries.
// Teams are always present; Schedule only on the schedule query.
type Division struct {
	ID       ID     `json:"id"`
	Teams    []Team `json:"teams"`
	Schedule []Week `json:"schedule,omitempty"`
}

// ActiveTeams returns the teams that are not bye placeholders.
func (d *Division) ActiveTeams() []Team {
	out := make([]Team, 0, len(d.Teams))
	for _, t := range d.Teams {
		if !t.IsBye {
			out = append(out, t)
		}
	}
	return out
}

// Team is a division team. Roster data is only populated by the roster query.
type Team struct {
	ID       ID            `json:"id"`
	Name     string        `json:"name"`
	Number   ID            `json:"number"`
	IsBye    bool          `json:"isBye"`
	League   *League       `json:"league,omitempty"`
	Division *TeamDivision `json:"division,omitempty"`
	Roster   []RosterEntry `json:"roster,omitempty"`
	Location *Location     `json:"location,omitempty"`
}

// DivisionType returns the team's division type (EIGHT, NINE) or "".
func (t Team) DivisionType() string {
	if t.Division == nil {
		return ""
	}
	return t.Division.Type
}

type League struct {
	ID   ID     `json:"id"`
	Slug string `json:"slug"`
}

type TeamDivision struct {
	ID   ID     `json:"id"`
	Type string `json:"type"`
}

type Location struct {
	ID      ID       `json:"id"`
	Name    string   `json:"name"`
	Address *Address `json:"address,omitempty"`
}

type Address struct {
	ID   ID     `json:"id"`
	Name string `json:"name"`
}

// RosterEntry is one rostered player.
type RosterEntry struct {
	ID            ID       `json:"id"`
	MemberNumber  ID       `json:"memberNumber"`
	DisplayName   string   `json:"displayName"`
	MatchesWon    Number   `json:"matchesWon"`
	MatchesPlayed Number   `json:"matchesPlayed"`
	PA            *float64 `json:"pa,omitempty"`
	PPM           *float64 `json:"ppm,omitempty"`
	SkillLevel    Number   `json:"skillLevel"`
	Member        *Member  `json:"member,omitempty"`
}

type Member struct {
	ID ID `json:"id"`
}

// Week is one scheduled week of play.
type Week struct {
	ID          ID      `json:"id"`
	Description string  `json:"description"`
	Date        string  `json:"date"`
	WeekOfPlay  *int    `json:"weekOfPlay"`
	Skip        bool    `json:"skip"`
	Matches     []Match `json:"matches"`
}

// Playable reports whether the week carries matches to import.
func (w Week) Playable() bool {
	return !w.Skip && w.WeekOfPlay != nil
}

// Match is one scheduled team match.
type Match struct {
	ID        ID            `json:"id"`
	IsBye     bool          `json:"isBye"`
	Status    string        `json:"status"`
	StartTime string        `json:"startTime"`
	Results   []MatchResult `json:"results"`
	Home      *MatchTeam    `json:"home"`
	Away      *MatchTeam    `json:"away"`
}

type MatchResult struct {
	HomeAway string `json:"homeAway"`
	Points   struct {
		Total Number `json:"total"`
	} `json:"points"`
}

type MatchTeam struct {
	ID     ID     `json:"id"`
	Name   string `json:"name"`
	Number ID     `json:"number"`
}
