package textnorm

import "strings"

// full-width punctuation commonly typed with a CJK input method
var symbolReplacer = strings.NewReplacer(
	"：", ":",
	"，", ",",
	"（", "(",
	"）", ")",
	"“", `"`,
	"”", `"`,
	"！", "!",
	"？", "?",
	"。", ".",
)

const (
	placeSuffix = "号"
)

var placeNoise = []string{"场地", "号场"}

func ConvertSymbols(text string) string {
	return symbolReplacer.Replace(text)
}

// PlaceTitle canonicalizes a place label to the "<n>号" form used as schedule key.
func PlaceTitle(label string) string {
	title := stripNoise(ConvertSymbols(label))
	title = strings.TrimSpace(title)
	if !strings.HasSuffix(title, placeSuffix) {
		title += placeSuffix
	}
	return title
}

// removing one token can splice a new one together ("场场地地"), so strip until stable
func stripNoise(s string) string {
	for {
		next := s
		for _, noise := range placeNoise {
			next = strings.ReplaceAll(next, noise, "")
		}
		if next == s {
			return s
		}
		s = next
	}
}
