package validation

import (
	"errors"
	"strings"
)

var ErrInvalidCategoryName = errors.New("invalid category name")

func BuildCategoryName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", ErrInvalidCategoryName
	}
	return name, nil
}
