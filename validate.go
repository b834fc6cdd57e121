package pxfuri

import (
	"strings"
)

// VerifyNoDuplicateOptions fails if any option key appears more than once
// Keys are compared case-insensitively and reported upper cased, each once,
// in the order their repetition was first seen
func (u *PxfUri) VerifyNoDuplicateOptions() error {
	seen := make(map[string]bool, len(u.Options))
	reported := make(map[string]bool)
	var duplicates []string

	for _, opt := range u.Options {
		key := strings.ToUpper(opt.Key)
		if !seen[key] {
			seen[key] = true
			continue
		}
		if !reported[key] {
			reported[key] = true
			duplicates = append(duplicates, key)
		}
	}

	if len(duplicates) > 0 {
		return newError(ErrorDuplicateOptions, u.Raw,
			"Duplicate option(s): "+strings.Join(duplicates, ", "))
	}
	return nil
}

// VerifyCoreOptionsExist checks that either PROFILE or every required option is present
// Matching is case-insensitive. The error does not name the missing options.
func (u *PxfUri) VerifyCoreOptionsExist(required []string) error {
	if u.HasOption(ProfileOption) {
		return nil
	}

	for _, name := range required {
		if !u.HasOption(name) {
			return newError(ErrorMissingCoreOptions, u.Raw,
				"PROFILE or ACCESSOR and RESOLVER option(s) missing")
		}
	}
	return nil
}
