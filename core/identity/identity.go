package identity

import (
	"regexp"
	"strconv"
	"strings"
	"unicode"
)

// space is the body of a character class matching Unicode whitespace.
// RE2's \s alone only covers ASCII tab, newline, form feed, carriage return and space.
const space = `\s\v\x{1c}-\x{1f}\x{85}\p{Z}`

var (
	nonSlugChars  = regexp.MustCompile(`[^\p{L}\p{N}_` + space + `-]`)
	slugSeparator = regexp.MustCompile(`[` + space + `_-]+`)
	teamNumberTag = regexp.MustCompile(`[` + space + `]*\(T[` + space + `]*#[` + space + `]*\d+\)[` + space + `]*$`)
)

// Slugify lowercases text, drops everything except word characters, whitespace
// and hyphens, and collapses separator runs into a single underscore.
func Slugify(text string) string {
	text = strings.ToLower(text)
	text = nonSlugChars.ReplaceAllString(text, "")
	text = slugSeparator.ReplaceAllString(text, "_")
	return strings.Trim(text, "_")
}

// CleanTeamName removes a trailing "(T # 3)" style annotation from a team name.
func CleanTeamName(name string) string {
	return strings.TrimSpace(teamNumberTag.ReplaceAllString(name, ""))
}

// SplitDisplayName splits "First Last Name" on the first whitespace run.
func SplitDisplayName(name string) (first, last string) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", ""
	}
	idx := strings.IndexFunc(name, isSpace)
	if idx < 0 {
		return name, ""
	}
	return name[:idx], strings.TrimLeftFunc(name[idx:], isSpace)
}

func isSpace(r rune) bool {
	return unicode.IsSpace(r) || (r >= 0x1c && r <= 0x1f)
}

// DivisionID returns the store key for an external division id.
func DivisionID(externalID string) string {
	return "div_" + externalID
}

// TeamID returns the store key for a team given its raw external name and number.
func TeamID(externalName, number string) string {
	return "team_" + Slugify(CleanTeamName(externalName)) + "_" + number
}

// TeamNumber extracts the external team number from a team id built by TeamID.
func TeamNumber(teamID string) string {
	idx := strings.LastIndex(teamID, "_")
	if idx < 0 {
		return teamID
	}
	return teamID[idx+1:]
}

// PlayerID returns the store key for a member number.
func PlayerID(memberNumber string) string {
	return "p_" + memberNumber
}

// MatchID returns the store key for a scheduled team match.
func MatchID(sessionID string, week int, homeTeamID, awayTeamID string) string {
	return "match_" + sessionID + "_" + strconv.Itoa(week) + "_" + homeTeamID + "_" + awayTeamID
}

// MembershipID returns the store key for a player's membership on a team.
func MembershipID(teamID, playerID string) string {
	return "m_" + teamID + "_" + playerID
}
