package format

import (
	"regexp"
	"strings"

	"github.com/hashicorp/hcl/v2/hclwrite"
)

var multipleBlankLines = regexp.MustCompile(`\n{3,}`)
var blankLineAfterOpenBrace = regexp.MustCompile(`\{\n\s*\n`)
var blankLineBeforeCloseBrace = regexp.MustCompile(`\n\s*\n(\s*\})`)
var hexLiteral = regexp.MustCompile(`"#[0-9a-fA-F]{6}"`)

// Format rewrites a palette file in canonical HCL style: hclwrite
// indentation and alignment, at most one blank line in a row, no blank lines
// just inside braces, and quoted HEX colors such as "#ff6f61" uppercased to
// "#FF6F61". Other notations and short HEX strings are left as written.
//
// Partial or invalid HCL is formatted on a best-effort basis, so the
// language server can format while the user is still typing.
func Format(content string) (string, error) {
	formatted := hclwrite.Format([]byte(content))
	// Collapse multiple consecutive blank lines into a single blank line.
	collapsed := multipleBlankLines.ReplaceAllString(string(formatted), "\n\n")
	// Remove blank lines immediately after opening braces.
	collapsed = blankLineAfterOpenBrace.ReplaceAllString(collapsed, "{\n")
	// Remove blank lines immediately before closing braces.
	collapsed = blankLineBeforeCloseBrace.ReplaceAllString(collapsed, "\n${1}")
	return hexLiteral.ReplaceAllStringFunc(collapsed, strings.ToUpper), nil
}
