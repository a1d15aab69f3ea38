package identity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"Simple", "We Dem Boyz", "we_dem_boyz"},
		{"Punctuation", "Rack 'Em & Stack 'Em!", "rack_em_stack_em"},
		{"Separators", "  Cue--Ball __ Wizards  ", "cue_ball_wizards"},
		{"Accents", "Café Shooters", "café_shooters"},
		{"NoBreakSpace", "A\u00a0B", "a_b"},
		{"VerticalTab", "Rack\vAttack", "rack_attack"},
		{"IdeographicSpace", "Cue\u3000Masters", "cue_masters"},
		{"OnlyPunctuation", "?!.", ""},
		{"Empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Slugify(tt.in))
		})
	}
}

func TestCleanTeamName(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"We Dem Boyz (T # 3)", "We Dem Boyz"},
		{"We Dem Boyz (T#12)", "We Dem Boyz"},
		{"We Dem Boyz(T  #  7)  ", "We Dem Boyz"},
		{"Just A Team", "Just A Team"},
		{"  Padded  ", "Padded"},
		{"(T # 3) Leading", "(T # 3) Leading"},
		{"Break Shot\u00a0(T\u00a0#\u00a09)", "Break Shot"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, CleanTeamName(tt.in))
		})
	}
}

func TestSplitDisplayName(t *testing.T) {
	tests := []struct {
		in    string
		first string
		last  string
	}{
		{"Michael Hayes", "Michael", "Hayes"},
		{"Prince", "Prince", ""},
		{"", "", ""},
		{"   ", "", ""},
		{"Mary Jo  Van Dyke", "Mary", "Jo  Van Dyke"},
		{" Tab\tSeparated ", "Tab", "Separated"},
		{"Ana\u00a0Cruz", "Ana", "Cruz"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			first, last := SplitDisplayName(tt.in)
			assert.Equal(t, tt.first, first)
			assert.Equal(t, tt.last, last)
		})
	}
}

func TestSyntheticIDs(t *testing.T) {
	assert.Equal(t, "div_418320", DivisionID("418320"))
	assert.Equal(t, "team_we_dem_boyz_03306", TeamID("We Dem Boyz (T # 3)", "03306"))
	assert.Equal(t, "p_12345", PlayerID("12345"))
	assert.Equal(t, "m_team_a_1_p_2", MembershipID("team_a_1", "p_2"))
	assert.Equal(t,
		"match_session_2025_fall_4_team_a_01_team_b_02",
		MatchID("session_2025_fall", 4, "team_a_01", "team_b_02"),
	)
}

func TestTeamID_EmptySlugIsKept(t *testing.T) {
	assert.Equal(t, "team__07", TeamID("!!! (T # 7)", "07"))
}

func TestTeamNumber(t *testing.T) {
	assert.Equal(t, "03306", TeamNumber("team_we_dem_boyz_03306"))
	assert.Equal(t, "07", TeamNumber(TeamID("???", "07")))
	assert.Equal(t, "bare", TeamNumber("bare"))
}
