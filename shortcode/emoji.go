package shortcode

import "sync"

// Emoji returns the built-in emoji table.
var Emoji = sync.OnceValue(func() *Table {
	return MustTable(
		// Faces
		Entry{"smile", "😄"}, Entry{"happy", "😃"}, Entry{"grin", "😁"}, Entry{"joy", "😂"}, Entry{"wink", "😉"},
		Entry{"cool", "😎"}, Entry{"love", "😍"}, Entry{"kiss", "😘"}, Entry{"thinking", "🤔"}, Entry{"neutral", "😐"},
		Entry{"sad", "😢"}, Entry{"cry", "😭"}, Entry{"angry", "😠"}, Entry{"rage", "😡"}, Entry{"mindblown", "🤯"},
		Entry{"sunglasses", "😎"}, Entry{"clown", "🤡"}, Entry{"ghost", "👻"}, Entry{"skull", "💀"}, Entry{"alien", "👽"},

		// Hands
		Entry{"thumbsup", "👍"}, Entry{"+1", "👍"}, Entry{"thumbsdown", "👎"}, Entry{"-1", "👎"},
		Entry{"ok", "👌"}, Entry{"clap", "👏"}, Entry{"wave", "👋"}, Entry{"pray", "🙏"}, Entry{"muscle", "💪"},
		Entry{"point_up", "☝️"}, Entry{"point_down", "👇"}, Entry{"point_left", "👈"}, Entry{"point_right", "👉"},

		// Animals
		Entry{"dog", "🐶"}, Entry{"cat", "🐱"}, Entry{"mouse", "🐭"}, Entry{"hamster", "🐹"}, Entry{"rabbit", "🐰"},
		Entry{"fox", "🦊"}, Entry{"bear", "🐻"}, Entry{"panda", "🐼"}, Entry{"tiger", "🐯"}, Entry{"lion", "🦁"},
		Entry{"chicken", "🐔"}, Entry{"penguin", "🐧"}, Entry{"frog", "🐸"}, Entry{"monkey", "🐵"}, Entry{"unicorn", "🦄"},

		// Nature
		Entry{"fire", "🔥"}, Entry{"star", "⭐"}, Entry{"sparkles", "✨"}, Entry{"sun", "☀️"}, Entry{"moon", "🌙"},
		Entry{"cloud", "☁️"}, Entry{"rain", "🌧️"}, Entry{"lightning", "⚡"}, Entry{"snowflake", "❄️"},
		Entry{"tree", "🌳"}, Entry{"flower", "🌺"}, Entry{"rose", "🌹"}, Entry{"earth", "🌍"},

		// Objects
		Entry{"computer", "💻"}, Entry{"desktop", "🖥️"}, Entry{"phone", "📱"}, Entry{"camera", "📷"},
		Entry{"book", "📖"}, Entry{"pencil", "✏️"}, Entry{"pen", "🖊️"}, Entry{"lock", "🔒"}, Entry{"key", "🔑"},
		Entry{"hammer", "🔨"}, Entry{"wrench", "🔧"}, Entry{"gear", "⚙️"}, Entry{"gem", "💎"}, Entry{"bell", "🔔"},
		Entry{"search", "🔍"}, Entry{"gift", "🎁"}, Entry{"balloon", "🎈"}, Entry{"tada", "🎉"}, Entry{"confetti", "🎊"},

		// Symbols
		Entry{"check", "✅"}, Entry{"x", "❌"}, Entry{"warning", "⚠️"}, Entry{"info", "ℹ️"}, Entry{"question", "❓"},
		Entry{"heart", "❤️"}, Entry{"blue_heart", "💙"}, Entry{"green_heart", "💚"}, Entry{"yellow_heart", "💛"},
		Entry{"purple_heart", "💜"}, Entry{"exclamation", "❗"}, Entry{"idea", "💡"}, Entry{"zzz", "💤"},

		// Dev
		Entry{"bug", "🐛"}, Entry{"rocket", "🚀"}, Entry{"chart", "📊"}, Entry{"calendar", "📅"}, Entry{"memo", "📝"},
	)
})
