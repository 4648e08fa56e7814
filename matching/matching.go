// matching/matching.go - skill overlap filtering and scoring
package matching

import (
	"sort"
	"strings"

	"hacknet/models"
)

// FilterBySkill returns the teams whose required-skill set contains skill,
// compared case-insensitively. Relative order is preserved. Teams with an
// empty required-skill set never match.
func FilterBySkill(teams []models.Team, skill string) []models.Team {
	want := strings.ToLower(strings.TrimSpace(skill))
	if want == "" {
		return teams
	}

	var out []models.Team
	for _, team := range teams {
		for _, s := range team.RequiredSkills {
			if strings.ToLower(s) == want {
				out = append(out, team)
				break
			}
		}
	}
	return out
}

// Overlap reports, for each of the team's required skills, whether it appears
// in the user's skill set. Keys keep the host's original casing so they can
// be displayed as-is. Presentation data only.
func Overlap(team models.Team, userSkills []string) map[string]bool {
	have := skillSet(userSkills)

	out := make(map[string]bool, len(team.RequiredSkills))
	for _, s := range team.RequiredSkills {
		out[s] = have[strings.ToLower(s)]
	}
	return out
}

// Score counts the case-insensitive intersection between a team's required
// skills and the user's skills, and returns the matched skills in lower case.
func Score(requiredSkills, userSkills []string) (int, []string) {
	have := skillSet(userSkills)
	seen := make(map[string]bool, len(requiredSkills))

	var matched []string
	for _, s := range requiredSkills {
		key := strings.ToLower(s)
		if have[key] && !seen[key] {
			seen[key] = true
			matched = append(matched, key)
		}
	}
	return len(matched), matched
}

// Rank scores every candidate team against the user's skills, drops teams
// with no overlap and returns the rest ordered best match first. Input teams
// are not mutated.
func Rank(teams []models.Team, userSkills []string) []models.Team {
	var ranked []models.Team
	for _, team := range teams {
		score, skills := Score(team.RequiredSkills, userSkills)
		if score == 0 {
			continue
		}
		team.Score = score
		team.MatchedSkills = skills
		ranked = append(ranked, team)
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score > ranked[j].Score
	})
	return ranked
}

func skillSet(skills []string) map[string]bool {
	set := make(map[string]bool, len(skills))
	for _, s := range skills {
		set[strings.ToLower(strings.TrimSpace(s))] = true
	}
	return set
}

// NormalizeSkills trims, lower-cases and de-duplicates a skill list, dropping
// empty entries. Used when persisting user profiles.
func NormalizeSkills(skills []string) []string {
	seen := make(map[string]bool, len(skills))
	var out []string
	for _, s := range skills {
		s = strings.ToLower(strings.TrimSpace(s))
		if s == "" || seen[s] {
			continue
		}
		seen[s] = true
		out = append(out, s)
	}
	return out
}
