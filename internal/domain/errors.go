package domain

import (
	"fmt"

	appErrors "societies/internal/errors"
)

func invalidSocietyError(reason string, err error) error {
	return appErrors.New(appErrors.CodeInvalidSocietyData, reason, err)
}

// DuplicateSocietyError reports a second entry sharing an existing name.
func DuplicateSocietyError(name string) error {
	return appErrors.New(appErrors.CodeDuplicateSociety, fmt.Sprintf("duplicate society: %s", name), nil)
}
