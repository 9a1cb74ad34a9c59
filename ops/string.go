package ops

import "strings"

func strLower(s string) string {
	return strings.ToLower(s)
}
