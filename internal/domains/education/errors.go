package education

import "errors"

var ErrEducationNotFound = errors.New("education entry not found")
