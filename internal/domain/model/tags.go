package model

// SkillTags is the closed vocabulary of volunteer skills.
var SkillTags = []string{
	"gardening",
	"cooking",
	"teaching",
	"medical",
	"construction",
	"cleaning",
	"driving",
	"event-planning",
	"fundraising",
	"marketing",
	"technology",
	"translation",
	"childcare",
	"elderly-care",
	"animal-care",
	"other",
}

// CategoryTags is the closed vocabulary of event types.
var CategoryTags = []string{
	"community-service",
	"environmental",
	"education",
	"healthcare",
	"disaster-relief",
	"animal-welfare",
	"elderly-care",
	"youth-programs",
	"food-service",
	"other",
}

// IsKnownSkill reports whether tag belongs to SkillTags.
func IsKnownSkill(tag string) bool { return contains(SkillTags, tag) }

// IsKnownCategory reports whether tag belongs to CategoryTags.
func IsKnownCategory(tag string) bool { return contains(CategoryTags, tag) }

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
