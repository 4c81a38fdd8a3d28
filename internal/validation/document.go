package validation

import (
	"errors"
	"fmt"
	"regexp"
)

// DocumentIDPattern идентификатор документа: буквы, цифры, '-', '_', '.', до 128 символов
var DocumentIDPattern = regexp.MustCompile(`^[a-zA-Z0-9_.\-]{1,128}$`)

var ErrEmptyDocumentID = errors.New("document id cannot be empty")

// ValidateDocumentID проверяет идентификатор документа из URL и query параметров
func ValidateDocumentID(id string) error {
	if id == "" {
		return ErrEmptyDocumentID
	}
	if id == "." || id == ".." || !DocumentIDPattern.MatchString(id) {
		return fmt.Errorf("invalid document id %q: only letters, numbers, '-', '_' and '.' are allowed, up to 128 characters", id)
	}
	return nil
}
