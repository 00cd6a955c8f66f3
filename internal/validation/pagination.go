package validation

import (
	"errors"
)

// ValidatePagination rejects negative offsets and counts.
// A zero count is allowed and means "use the default page size".
func ValidatePagination(offset, count int64) error {
	if offset < 0 {
		return errors.New("offset must not be negative")
	}

	if count < 0 {
		return errors.New("count must not be negative")
	}

	return nil
}
