package gen

import (
	"strings"
	"unicode"

	"github.com/go-openapi/inflect"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var (
	rules = ruleset()
	title = cases.Title(language.English, cases.NoLower)
)

// ruleset returns the pluralization ruleset shared by all emitters.
func ruleset() *inflect.Ruleset {
	r := inflect.NewDefaultRuleset()
	for _, w := range []string{"API", "CSV", "DTO", "ID", "JSON", "SQL", "URL", "UUID", "XML"} {
		r.AddAcronym(w)
	}
	return r
}

// Pascal converts a name to PascalCase. Word boundaries are underscores,
// dashes and spaces.
func Pascal(s string) string {
	words := strings.FieldsFunc(s, isSeparator)
	for i, w := range words {
		words[i] = title.String(w)
	}
	return strings.Join(words, "")
}

// Camel converts a name to camelCase.
func Camel(s string) string {
	return LowerFirst(Pascal(s))
}

// Plural pluralizes a name using the shared ruleset.
func Plural(s string) string {
	return rules.Pluralize(s)
}

// LowerFirst lower-cases the first rune of s.
func LowerFirst(s string) string {
	for _, r := range s {
		return string(unicode.ToLower(r)) + s[len(string(r)):]
	}
	return s
}

// SubPath converts a qualified name to a target-relative sub-path: the
// first character is lower-cased, a dash is inserted before every internal
// upper-case letter unless it immediately follows a path separator, and
// namespace delimiters become directory separators. The result is stable
// across runs for unchanged names, which the custom region engine relies on
// to locate prior artifacts by path equality.
//
//	SubPath("Store.Orders.CustomerOrderItem") == "store/orders/customer-order-item"
func SubPath(qualified string) string {
	var b strings.Builder
	b.Grow(len(qualified) + 4)
	sep := true
	for _, r := range qualified {
		switch {
		case r == '.' || r == '\\' || r == '/':
			b.WriteByte('/')
			sep = true
		case unicode.IsUpper(r):
			if !sep {
				b.WriteByte('-')
			}
			b.WriteRune(unicode.ToLower(r))
			sep = false
		default:
			b.WriteRune(r)
			sep = false
		}
	}
	return b.String()
}

// RelImport computes the import path of target, relative to the directory
// of the importing sub-path. Both arguments are slash-separated sub-paths
// without extension. Same-directory targets are prefixed "./".
//
//	RelImport("store/orders/order.model", "store/status.enum") == "../status.enum"
func RelImport(from, target string) string {
	fromDir := ""
	if i := strings.LastIndexByte(from, '/'); i >= 0 {
		fromDir = from[:i]
	}
	fromParts := splitPath(fromDir)
	toParts := splitPath(target)
	common := 0
	for common < len(fromParts) && common < len(toParts)-1 && fromParts[common] == toParts[common] {
		common++
	}
	var b strings.Builder
	if len(fromParts) == common {
		b.WriteString("./")
	}
	for i := common; i < len(fromParts); i++ {
		b.WriteString("../")
	}
	b.WriteString(strings.Join(toParts[common:], "/"))
	return b.String()
}

func splitPath(p string) []string {
	if p == "" {
		return nil
	}
	return strings.Split(p, "/")
}

func isSeparator(r rune) bool {
	return r == '_' || r == '-' || r == ' '
}

// Unqualify strips the namespace from a qualified name.
func Unqualify(qualified string) string {
	if i := strings.LastIndexByte(qualified, '.'); i >= 0 {
		return qualified[i+1:]
	}
	return qualified
}
