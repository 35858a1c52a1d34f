package content

import "strings"

// unsafeReplacer maps characters that cannot appear in a single path
// component to '_'.
var unsafeReplacer = strings.NewReplacer(
	"\n", "_",
	"\r", "_",
	"/", "_",
	"\\", "_",
	"\x00", "_",
)

// Sanitize makes free text usable as a file name. Double quotes are kept.
func Sanitize(text string) string {
	return unsafeReplacer.Replace(text)
}
