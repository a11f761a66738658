package scoring

// SkillMatch returns the fraction of required skills the volunteer covers.
// No requirements is a full match; extra volunteer skills neither help nor hurt.
func SkillMatch(volunteerSkills, requiredSkills []string) float64 {
	required := toSet(requiredSkills)
	if len(required) == 0 {
		return 1.0
	}
	if len(volunteerSkills) == 0 {
		return 0.0
	}

	have := toSet(volunteerSkills)
	matched := 0
	for skill := range required {
		if _, ok := have[skill]; ok {
			matched++
		}
	}
	return float64(matched) / float64(len(required))
}

func toSet(tags []string) map[string]struct{} {
	set := make(map[string]struct{}, len(tags))
	for _, t := range tags {
		set[t] = struct{}{}
	}
	return set
}
