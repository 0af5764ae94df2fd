package manifest

// ParseSessionData collects #EXT-X-SESSION-DATA directives into a
// DATA-ID keyed map of values. Legacy playlist endpoints carry their
// whole metadata record this way.
func ParseSessionData(doc string) map[string]string {
	metadata := make(map[string]string)
	for _, m := range sessionDataRe.FindAllStringSubmatch(doc, -1) {
		attrs := ParseAttributeList(m[1])
		metadata[attrs["DATA-ID"]] = attrs["VALUE"]
	}
	return metadata
}
