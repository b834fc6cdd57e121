package pxfuri

import (
	"fmt"
	"strings"
)

const (
	optionDelimiter = "&"
	keyValueDelim   = "="
)

// parseOptions splits the options section into ordered key/value pairs
// Every '&' separated token must hold exactly one '=' with a non-empty key
// and value; values may not contain '='
func parseOptions(s string) ([]Option, error) {
	tokens := strings.Split(s, optionDelimiter)
	options := make([]Option, 0, len(tokens))

	for _, token := range tokens {
		opt, err := parseOption(token)
		if err != nil {
			return nil, err
		}
		options = append(options, opt)
	}

	return options, nil
}

func parseOption(token string) (Option, error) {
	switch strings.Count(token, keyValueDelim) {
	case 0:
		return Option{}, &optionError{
			code:   ErrorMissingEqual,
			detail: fmt.Sprintf("option '%s' missing '='", token),
		}
	case 1:
	default:
		return Option{}, &optionError{
			code:   ErrorDuplicateEqual,
			detail: fmt.Sprintf("option '%s' contains duplicate '='", token),
		}
	}

	key, value, _ := strings.Cut(token, keyValueDelim)
	if key == "" {
		return Option{}, &optionError{
			code:   ErrorMissingKey,
			detail: fmt.Sprintf("option '%s' missing key before '='", token),
		}
	}
	if value == "" {
		return Option{}, &optionError{
			code:   ErrorMissingValue,
			detail: fmt.Sprintf("option '%s' missing value after '='", token),
		}
	}

	return Option{Key: key, Value: value}, nil
}
