// Package identity derives the stable synthetic keys used by the league store
// from the natural business keys the external API exposes (team names and
// numbers, member numbers, division ids, schedule coordinates).
//
// Every function here is pure and total: no input causes a panic or an error.
//
// # Keys
//
//   - Division:   "div_" + external division id
//   - Team:       "team_" + Slugify(CleanTeamName(name)) + "_" + team number
//   - Player:     "p_" + member number
//   - Match:      "match_" + session + "_" + week + "_" + home team id + "_" + away team id
//   - Membership: "m_" + team id + "_" + player id
//
// A team name that slugifies to nothing produces "team__<number>". That id is
// valid and is kept as-is.
package identity
