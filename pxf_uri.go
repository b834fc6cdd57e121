// Package pxfuri parses and validates PXF external table locators of the form
// pxf://host:port/path?KEY=VALUE&KEY=VALUE.
package pxfuri

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/tliron/commonlog"
)

// Protocol is the only scheme accepted in a locator
const Protocol = "pxf"

const (
	protocolSeparator = "://"
	optionsSeparator  = "?"
)

var log = commonlog.GetLogger("pxfuri")

// PxfUri represents a parsed PXF locator
//
// Example:
// - pxf://namenode:51200/tmp/data.csv?PROFILE=HdfsTextSimple
// - pxf://1.2.3.4:5678/some/table?FRAGMENTER=HdfsDataFragmenter&ACCESSOR=a&RESOLVER=r
type PxfUri struct {
	// Raw is the original input, never modified
	Raw      string
	Protocol string
	Host     string
	Port     string
	// Path has no leading slash and excludes the options section
	Path string
	// Options keep their input order and original key casing
	Options []Option
	// Fragments is filled in by fragment enumeration; Parse leaves it nil
	Fragments []string
	// Warnings holds advisory diagnostics collected under the Warn policy
	Warnings []Warning
}

// Option is a single KEY=VALUE pair from the options section
type Option struct {
	Key   string
	Value string
}

// WarnPolicy controls whether non-fatal diagnostics are reported during parsing
type WarnPolicy int

const (
	// Warn records and logs advisory diagnostics
	Warn WarnPolicy = iota
	// DontWarn suppresses advisory diagnostics, used when a locator is re-parsed
	DontWarn
)

func (p WarnPolicy) String() string {
	switch p {
	case Warn:
		return "warn"
	case DontWarn:
		return "dont-warn"
	}
	return fmt.Sprintf("WarnPolicy(%d)", int(p))
}

// Warning is a non-fatal diagnostic produced while parsing
type Warning struct {
	Key      string
	Legacy   string
	Resolved string
	Message  string
}

func (w Warning) String() string {
	return w.Message
}

// Parse creates a PxfUri from a locator string
// Format: pxf://host:port/path?KEY1=VALUE1&KEY2=VALUE2
//
// Rules:
// - The scheme must be "pxf" followed by "://"
// - The options section after '?' is required
// - Host and port are split at the last ':' of the authority
// - The data path may be empty; leading slashes are dropped
// - Option keys keep their casing; duplicates are checked by VerifyNoDuplicateOptions
// - Deprecated short FRAGMENTER, ACCESSOR and RESOLVER names are fully qualified
func Parse(uri string, policy WarnPolicy) (*PxfUri, error) {
	// Protocol
	sepPos := strings.Index(uri, protocolSeparator)
	if sepPos == -1 {
		return nil, newError(ErrorInvalidUri, uri, "")
	}
	protocol := uri[:sepPos]
	if protocol != Protocol {
		return nil, newError(ErrorUnsupportedProtocol, uri,
			fmt.Sprintf("unsupported protocol '%s'", protocol))
	}
	rest := uri[sepPos+len(protocolSeparator):]

	// Options section is mandatory
	queryPos := strings.Index(rest, optionsSeparator)
	if queryPos == -1 {
		return nil, newError(ErrorMissingOptions, uri, "missing options section")
	}
	authorityAndPath := rest[:queryPos]
	optionsPart := rest[queryPos+1:]

	// Authority and data path
	hostPort, path, _ := strings.Cut(authorityAndPath, "/")
	path = strings.TrimLeft(path, "/")

	colonPos := strings.LastIndex(hostPort, ":")
	if colonPos == -1 || colonPos == len(hostPort)-1 {
		return nil, newError(ErrorMissingPort, uri, "missing port")
	}
	if colonPos == 0 {
		return nil, newError(ErrorMissingHost, uri, "missing host")
	}
	host := hostPort[:colonPos]
	port := hostPort[colonPos+1:]

	options, err := parseOptions(optionsPart)
	if err != nil {
		return nil, wrapOptionError(uri, err)
	}

	var warnings []Warning
	for i, opt := range options {
		resolved := ResolveLegacyName(opt)
		if resolved == opt.Value {
			continue
		}
		if policy == Warn {
			w := deprecationWarning(opt, resolved)
			log.Warning(w.Message, "uri", uri)
			warnings = append(warnings, w)
		}
		options[i].Value = resolved
	}

	return &PxfUri{
		Raw:      uri,
		Protocol: protocol,
		Host:     host,
		Port:     port,
		Path:     path,
		Options:  options,
		Warnings: warnings,
	}, nil
}

// Value returns the value of the first option whose key matches, ignoring case
func (u *PxfUri) Value(key string) (string, bool) {
	for _, opt := range u.Options {
		if strings.EqualFold(opt.Key, key) {
			return opt.Value, true
		}
	}
	return "", false
}

// HasOption checks whether an option with the given key exists, ignoring case
func (u *PxfUri) HasOption(key string) bool {
	_, exists := u.Value(key)
	return exists
}

// Profile returns the PROFILE option value, if any
func (u *PxfUri) Profile() (string, bool) {
	return u.Value(ProfileOption)
}

// String returns the locator exactly as it was given to Parse
func (u *PxfUri) String() string {
	return u.Raw
}

// MarshalJSON implements the json.Marshaler interface
func (u *PxfUri) MarshalJSON() ([]byte, error) {
	return json.Marshal(u.Raw)
}

// UnmarshalJSON implements the json.Unmarshaler interface
func (u *PxfUri) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("failed to unmarshal PxfUri: expected string, got: %s", string(data))
	}

	parsed, err := Parse(s, DontWarn)
	if err != nil {
		return err
	}

	*u = *parsed
	return nil
}
