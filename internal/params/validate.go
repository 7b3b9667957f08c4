package params

import (
	"fmt"
	"regexp"

	"github.com/vk/svchost/internal/errdefs"
)

// nameForm is the canonical identifier form for parameter and dataset
// names: a letter followed by letters, digits, or underscores.
var nameForm = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9_]*$`)

// ValidateName fails when name does not match the canonical identifier
// form. It guards every lookup: a raw, punctuation-laden or case-mangled
// string handed to an environment or config lookup would otherwise resolve
// silently and incorrectly.
func ValidateName(name string) error {
	if !nameForm.MatchString(name) {
		return errdefs.NewBadParameter(name, fmt.Sprintf("The parameter name %q is not a valid identifier", name))
	}
	return nil
}
