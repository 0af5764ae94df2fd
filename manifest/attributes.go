// Package manifest implements a massively simplified HLS manifest reader.
// It only understands the handful of directives the supported catalogs
// actually emit and makes no attempt at being a general m3u8 parser.
package manifest

import "strings"

// ParseAttributeList parses the attribute list of a single directive line:
// comma-separated KEY=VALUE pairs, values optionally double-quoted.
//
// Commas inside quoted values are not protected. Each comma-delimited token
// is partitioned on its first "=" and the value stripped of surrounding
// double quotes. The catalogs this targets never quote a comma, so the
// simpler split is kept on purpose. Tokens without "=" map to an empty value.
func ParseAttributeList(line string) map[string]string {
	attrs := make(map[string]string)
	for _, token := range strings.Split(line, ",") {
		key, value, _ := strings.Cut(token, "=")
		attrs[key] = strings.Trim(value, `"`)
	}
	return attrs
}
