package pxfuri

import (
	"fmt"
	"strings"
)

// Option keys with special meaning
const (
	FragmenterOption = "FRAGMENTER"
	AccessorOption   = "ACCESSOR"
	ResolverOption   = "RESOLVER"
	AnalyzerOption   = "ANALYZER"
	ProfileOption    = "PROFILE"
)

// CoreOptions are required when no PROFILE option is given
var CoreOptions = []string{FragmenterOption, AccessorOption, ResolverOption}

const (
	hdfsPackage  = "com.pivotal.pxf.plugins.hdfs."
	hivePackage  = "com.pivotal.pxf.plugins.hive."
	hbasePackage = "com.pivotal.pxf.plugins.hbase."
)

// Deprecated short plugin names, matched case-sensitively
var legacyFragmenters = map[string]string{
	"HdfsDataFragmenter":  hdfsPackage + "HdfsDataFragmenter",
	"HiveDataFragmenter":  hivePackage + "HiveDataFragmenter",
	"HBaseDataFragmenter": hbasePackage + "HBaseDataFragmenter",
}

var legacyAccessors = map[string]string{
	"TextFileAccessor":        hdfsPackage + "LineBreakAccessor",
	"LineBreakAccessor":       hdfsPackage + "LineBreakAccessor",
	"LineReaderAccessor":      hdfsPackage + "LineBreakAccessor",
	"QuotedLineBreakAccessor": hdfsPackage + "QuotedLineBreakAccessor",
	"SequenceFileAccessor":    hdfsPackage + "SequenceFileAccessor",
	"AvroFileAccessor":        hdfsPackage + "AvroFileAccessor",
	"HiveAccessor":            hivePackage + "HiveAccessor",
	"HBaseAccessor":           hbasePackage + "HBaseAccessor",
}

var legacyResolvers = map[string]string{
	"TextResolver":       hdfsPackage + "StringPassResolver",
	"StringPassResolver": hdfsPackage + "StringPassResolver",
	"WritableResolver":   hdfsPackage + "WritableResolver",
	"AvroResolver":       hdfsPackage + "AvroResolver",
	"HiveResolver":       hivePackage + "HiveResolver",
	"HBaseResolver":      hbasePackage + "HBaseResolver",
}

func legacyTable(key string) map[string]string {
	switch strings.ToUpper(key) {
	case FragmenterOption:
		return legacyFragmenters
	case AccessorOption:
		return legacyAccessors
	case ResolverOption:
		return legacyResolvers
	}
	return nil
}

// ResolveLegacyName returns the fully qualified plugin name for a deprecated
// short FRAGMENTER, ACCESSOR or RESOLVER value
// Any other key or unknown value is returned unchanged
func ResolveLegacyName(opt Option) string {
	if resolved, ok := legacyTable(opt.Key)[opt.Value]; ok {
		return resolved
	}
	return opt.Value
}

// LegacyNames returns a copy of the deprecated name table for a core option key
// Returns nil for keys without a table
func LegacyNames(key string) map[string]string {
	table := legacyTable(key)
	if table == nil {
		return nil
	}
	result := make(map[string]string, len(table))
	for k, v := range table {
		result[k] = v
	}
	return result
}

func deprecationWarning(opt Option, resolved string) Warning {
	key := strings.ToUpper(opt.Key)
	return Warning{
		Key:      key,
		Legacy:   opt.Value,
		Resolved: resolved,
		Message:  fmt.Sprintf("%s option value '%s' is deprecated; use '%s'", key, opt.Value, resolved),
	}
}
