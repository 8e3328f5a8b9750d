package style

import "regexp"

// emojiPattern matches a single code point from the emoji blocks counted by
// the descriptor: emoticons, misc symbols and pictographs, transport and map,
// regional indicators, misc symbols, dingbats.
var emojiPattern = regexp.MustCompile(`[\x{1F600}-\x{1F64F}\x{1F300}-\x{1F5FF}\x{1F680}-\x{1F6FF}\x{1F1E0}-\x{1F1FF}\x{2600}-\x{26FF}\x{2700}-\x{27BF}]`)

// countEmoji returns the number of emoji code points in text.
func countEmoji(text string) int {
	return len(emojiPattern.FindAllStringIndex(text, -1))
}
