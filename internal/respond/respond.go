// Package respond maps a declared major to a canned response.
// Matching is exact and case-sensitive; anything unrecognized falls
// through to a default answer rather than an error.
package respond

// Responses for the known majors. Order matters only for Majors().
const (
	biologyResponse  = "Mmm, the study of life, fascinating."
	compSciResponse  = "I see you like computers. Do you like people too?"
	englishResponse  = "The written word! A noble pursuit."
	mathResponse     = "Ah, the universal language."
	defaultResponse  = "That sounds like a fine major."
)

var majors = []string{"Biology", "Computer Science", "English", "Math"}

// Majors returns the recognized major names in match order.
func Majors() []string {
	out := make([]string, len(majors))
	copy(out, majors)
	return out
}

// Respond returns the canned response for major, or the default
// response when major is not one of the known values.
func Respond(major string) string {
	switch major {
	case "Biology":
		return biologyResponse
	case "Computer Science":
		return compSciResponse
	case "English":
		return englishResponse
	case "Math":
		return mathResponse
	default:
		return defaultResponse
	}
}
