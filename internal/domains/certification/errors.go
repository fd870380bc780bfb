package certification

import "errors"

var ErrCertificationNotFound = errors.New("certification not found")
