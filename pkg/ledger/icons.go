package ledger

// DefaultIcon is used when a category has no dedicated glyph.
const DefaultIcon = "💳"

var icons = map[string]string{
	"ATM Fee":            "🏧",
	"Business":           "💼",
	"Cash Withdrawal":    "💳",
	"Clothing":           "👚",
	"Dining Out":         "🍽️",
	"Education":          "🎓",
	"Entertainment":      "🎭",
	"Fuel":               "⛽",
	"General":            "📦",
	"Gifts & Donations":  "🎁",
	"Groceries":          "🛒",
	"Health & Fitness":   "💪",
	"Home Maintenance":   "🛠️",
	"Insurance":          "🛡️",
	"Internet":           "🌐",
	"Investments":        "💹",
	"Kids":               "🧸",
	"Miscellaneous":      "✨",
	"Mobile Phone":       "📱",
	"Personal Care":      "🧴",
	"Pets":               "🐾",
	"Rent":               "🏠",
	"Savings":            "💰",
	"Shopping":           "🛍️",
	"Streaming Services": "📺",
	"Subscriptions":      "🔄",
	"Taxes":              "🧾",
	"Transportation":     "🚗",
	"Travel":             "✈️",
	"Utilities":          "💡",
}

// IconFor returns the glyph for a category name.
func IconFor(name string) string {
	if icon, ok := icons[name]; ok {
		return icon
	}
	return DefaultIcon
}
