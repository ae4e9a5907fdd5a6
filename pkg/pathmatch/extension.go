package pathmatch

import (
	"path"
	"slices"
	"strings"
)

// Extensions accepts paths by the extension of their base name.
// The zero value accepts every path.
type Extensions struct {
	allowed []string
	strip   string
}

// NewExtensions returns a matcher for names ending in one of allowed, such as ".txt".
// When strip is set it is removed from the name first, so with strip ".caesar"
// the name "notes.txt.caesar" counts as a ".txt" file.
func NewExtensions(allowed []string, strip string) Extensions {
	return Extensions{allowed: allowed, strip: strip}
}

// Match reports whether the slash-separated path carries an allowed extension.
// A name that is only an extension, such as ".txt", is rejected.
func (e Extensions) Match(p string) bool {
	if len(e.allowed) == 0 {
		return true
	}

	name := strings.TrimSuffix(path.Base(p), e.strip)

	ext := path.Ext(name)
	if ext == name {
		return false
	}

	return slices.Contains(e.allowed, ext)
}

// String lists the allowed extensions.
func (e Extensions) String() string {
	if len(e.allowed) == 0 {
		return "any"
	}

	return strings.Join(e.allowed, ", ")
}
