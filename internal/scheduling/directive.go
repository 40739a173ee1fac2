package scheduling

import (
	"regexp"
	"strings"
)

// Directive is an in-band instruction the model may embed in its reply, e.g.
// "[NAVIGATE:appointments]" or "[SHOW:risk_profile]". The host strips it
// from the displayed text and acts on it separately.
type Directive struct {
	Action string `json:"action"` // "NAVIGATE" or "SHOW"
	Target string `json:"target"`
}

var directivePattern = regexp.MustCompile(`\[(NAVIGATE|SHOW):([a-z_]+)\]`)

// ExtractDirectives returns the directives found in text along with the text
// with every directive removed. Running the strip on already-stripped text
// is a no-op.
func ExtractDirectives(text string) ([]Directive, string) {
	matches := directivePattern.FindAllStringSubmatch(text, -1)
	if len(matches) == 0 {
		return nil, text
	}

	directives := make([]Directive, 0, len(matches))
	for _, m := range matches {
		directives = append(directives, Directive{Action: m[1], Target: m[2]})
	}
	stripped := strings.TrimSpace(directivePattern.ReplaceAllString(text, ""))
	return directives, stripped
}
