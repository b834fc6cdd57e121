package pxfuri

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustParse(t *testing.T, uri string) *PxfUri {
	t.Helper()
	parsed, err := Parse(uri, DontWarn)
	require.NoError(t, err)
	return parsed
}

func TestVerifyNoDuplicateOptionsValid(t *testing.T) {
	parsed := mustParse(t, "pxf://1.2.3.4:5678/some/path/and/table.tbl?Profile=a&Analyzer=b")
	assert.NoError(t, parsed.VerifyNoDuplicateOptions())
}

func TestVerifyNoDuplicateOptions(t *testing.T) {
	uri := "pxf://1.2.3.4:5678/some/path/and/table.tbl?Profile=a&Analyzer=b&PROFILE=c"
	parsed := mustParse(t, uri)

	err := parsed.VerifyNoDuplicateOptions()
	require.Error(t, err)
	uriErr, ok := err.(*PxfUriError)
	require.True(t, ok)
	assert.Equal(t, ErrorDuplicateOptions, uriErr.Code)
	assert.Equal(t, SQLStateSyntaxError, uriErr.SQLState)
	assert.Equal(t, SeverityError, uriErr.Severity)
	assert.Equal(t, "Invalid URI pxf://1.2.3.4:5678/some/path/and/table.tbl?Profile=a&Analyzer=b&PROFILE=c: Duplicate option(s): PROFILE", uriErr.Message)
}

func TestVerifyNoDuplicateOptionsReportsEachKeyOnce(t *testing.T) {
	parsed := mustParse(t, "pxf://h:1/p?b=1&a=1&A=2&B=2&a=3&c=1&b=3")

	err := parsed.VerifyNoDuplicateOptions()
	require.Error(t, err)
	assert.Equal(t, "Invalid URI pxf://h:1/p?b=1&a=1&A=2&B=2&a=3&c=1&b=3: Duplicate option(s): A, B", err.Error())
}

func TestVerifyCoreOptionsExistValid(t *testing.T) {
	parsed := mustParse(t, "pxf://1.2.3.4:5678/some/path/and/table.tbl?Fragmenter=1&Accessor=2&Resolver=3")
	assert.NoError(t, parsed.VerifyCoreOptionsExist([]string{"FRAGMENTER", "ACCESSOR", "RESOLVER"}))
}

func TestVerifyCoreOptionsExistMissing(t *testing.T) {
	uri := "pxf://1.2.3.4:5678/some/path/and/table.tbl?FRAGMENTER=a"
	parsed := mustParse(t, uri)

	err := parsed.VerifyCoreOptionsExist(CoreOptions)
	require.Error(t, err)
	assert.True(t, IsSyntaxError(err))
	assert.Equal(t, ErrorMissingCoreOptions, ErrorCode(err))
	assert.Equal(t, "Invalid URI pxf://1.2.3.4:5678/some/path/and/table.tbl?FRAGMENTER=a: PROFILE or ACCESSOR and RESOLVER option(s) missing", err.Error())
}

func TestVerifyCoreOptionsExistMessageIsFixed(t *testing.T) {
	// missing only FRAGMENTER still yields the same text
	parsed := mustParse(t, "pxf://h:1/p?ACCESSOR=a&RESOLVER=r")
	err := parsed.VerifyCoreOptionsExist(CoreOptions)
	require.Error(t, err)
	assert.Equal(t, "Invalid URI pxf://h:1/p?ACCESSOR=a&RESOLVER=r: PROFILE or ACCESSOR and RESOLVER option(s) missing", err.Error())
}

func TestVerifyCoreOptionsExistProfileBypass(t *testing.T) {
	for _, uri := range []string{
		"pxf://h:1/p?PROFILE=HdfsTextSimple",
		"pxf://h:1/p?profile=Hive&ACCESSOR=a",
		"pxf://h:1/p?delimiter=,&ProFile=HBase",
	} {
		parsed := mustParse(t, uri)
		assert.NoError(t, parsed.VerifyCoreOptionsExist(CoreOptions), uri)
		assert.NoError(t, parsed.VerifyCoreOptionsExist([]string{"SOMETHING", "ELSE"}), uri)
	}
}

func TestVerifyCoreOptionsExistEmptyRequirement(t *testing.T) {
	parsed := mustParse(t, "pxf://h:1/p?delimiter=,")
	assert.NoError(t, parsed.VerifyCoreOptionsExist(nil))
}
