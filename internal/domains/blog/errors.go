package blog

import "errors"

var ErrPostNotFound = errors.New("blog post not found")
