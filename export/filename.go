package export

import (
	"fmt"
	"hash/fnv"
	"path/filepath"
	"strings"
)

// DefaultName is used when no file name is given.
const DefaultName = "output"

// ResolveFilename returns a file name for format that does not exist yet
// according to exists. An empty name becomes DefaultName, the extension
// ".<format>" is appended unless name already ends with it, and taken names
// are numbered "<stem>_1<ext>", "<stem>_2<ext>", and so on.
func ResolveFilename(name, format string, exists func(string) bool) string {
	name = strings.TrimSpace(name)
	if name == "" {
		name = DefaultName
	}
	ext := "." + format
	if !strings.HasSuffix(name, ext) {
		name += ext
	}
	if exists == nil || !exists(name) {
		return name
	}

	stem := strings.TrimSuffix(name, filepath.Ext(name))
	suffix := filepath.Ext(name)
	for n := 1; ; n++ {
		candidate := fmt.Sprintf("%s_%d%s", stem, n, suffix)
		if !exists(candidate) {
			return candidate
		}
	}
}

// FallbackName returns "output_<n>.<format>", where n is derived from
// source and is below 10000.
func FallbackName(source, format string) string {
	h := fnv.New32a()
	h.Write([]byte(source))
	return fmt.Sprintf("%s_%d.%s", DefaultName, h.Sum32()%10000, format)
}
