package core_test

import "strings"

func mustReader(s string) *strings.Reader {
	return strings.NewReader(s)
}
