package renderer

import "regexp"

// emojiPattern matches :shortcode: sequences in document text.
var emojiPattern = regexp.MustCompile(`:(\w+):`)

// emojify substitutes emoji shortcodes using the configured lookup.
// Unknown shortcodes are left in place.
func (r *Renderer) emojify(text string) string {
	lookup := r.opts.EmojiLookup
	if lookup == nil {
		lookup = builtinEmoji
	}
	return emojiPattern.ReplaceAllStringFunc(text, func(match string) string {
		if glyph, ok := lookup(match[1 : len(match)-1]); ok {
			return glyph
		}
		return match
	})
}

// builtinEmoji resolves the shortcodes that show up in README-style
// documents. Callers wanting the full gemoji set plug in their own
// lookup via Options.EmojiLookup.
func builtinEmoji(name string) (string, bool) {
	glyph, ok := emojiTable[name]
	return glyph, ok
}

var emojiTable = map[string]string{
	"smile":            "😄",
	"grin":             "😁",
	"laughing":         "😆",
	"wink":             "😉",
	"heart":            "❤️",
	"broken_heart":     "💔",
	"thumbsup":         "👍",
	"thumbsdown":       "👎",
	"clap":             "👏",
	"wave":             "👋",
	"eyes":             "👀",
	"fire":             "🔥",
	"tada":             "🎉",
	"rocket":           "🚀",
	"sparkles":         "✨",
	"star":             "⭐",
	"zap":              "⚡",
	"boom":             "💥",
	"bulb":             "💡",
	"warning":          "⚠️",
	"question":         "❓",
	"exclamation":      "❗",
	"heavy_check_mark": "✔️",
	"white_check_mark": "✅",
	"x":                "❌",
	"lock":             "🔒",
	"key":              "🔑",
	"mag":              "🔍",
	"memo":             "📝",
	"book":             "📖",
	"bug":              "🐛",
	"wrench":           "🔧",
	"hammer":           "🔨",
	"gear":             "⚙️",
	"package":          "📦",
	"link":             "🔗",
	"pencil":           "✏️",
	"calendar":         "📅",
	"chart":            "📊",
	"coffee":           "☕",
	"100":              "💯",
}
