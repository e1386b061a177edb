package keymap

import "regexp"

// leaderToken matches the <Leader> placeholder in any case.
var leaderToken = regexp.MustCompile(`(?i)<leader>`)

// ExpandLeader replaces every <Leader> placeholder in text with the given
// leader string. The match is case-insensitive. Pure; no other rewriting
// happens here.
func ExpandLeader(text, leader string) string {
	return leaderToken.ReplaceAllLiteralString(text, leader)
}
