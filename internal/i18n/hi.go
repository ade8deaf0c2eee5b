package i18n

var hiMessages = map[string]string{
	// Auth screen
	"auth.title":        "taskpad में साइन इन करें",
	"auth.signup_title": "अपना खाता बनाएं",
	"auth.reset_title":  "पासवर्ड रीसेट करें",
	"auth.email":        "ईमेल",
	"auth.password":     "पासवर्ड",
	"auth.signing_in":   "साइन इन हो रहा है...",
	"auth.invalid":      "अमान्य क्रेडेंशियल",
	"auth.reset_sent":   "पासवर्ड रीसेट लिंक %s पर भेजा गया",
	"auth.welcome":      "वापसी पर स्वागत है, %s",

	// Task list
	"tasks.empty":       "अभी कोई कार्य नहीं। नया जोड़ने के लिए a दबाएं।",
	"tasks.no_matches":  "वर्तमान फ़िल्टर और खोज से कोई कार्य मेल नहीं खाता।",
	"tasks.count":       "%d कार्य (कुल %d)",
	"tasks.added":       "कार्य जोड़ा गया",
	"tasks.updated":     "कार्य अपडेट किया गया",
	"tasks.deleted":     "कार्य हटाया गया",
	"tasks.loading":     "कार्य लोड हो रहे हैं...",
	"tasks.title_empty": "शीर्षक खाली नहीं हो सकता",

	// Dashboard summary
	"dashboard.done":     "%d पूर्ण",
	"dashboard.pending":  "%d लंबित",
	"dashboard.total":    "कुल %d",
	"dashboard.progress": "%d%% पूरा",

	// Task form
	"form.new_title":  "नया कार्य",
	"form.edit_title": "कार्य संपादित करें",
	"form.title":      "शीर्षक",
	"form.notes":      "टिप्पणियां",

	// AI goal modal
	"ai.title":      "लक्ष्य से कार्य बनाएं",
	"ai.goal":       "लक्ष्य",
	"ai.generating": "कार्य बन रहे हैं...",
	"ai.accepted":   "%d बनाए गए कार्य जोड़े गए",
	"ai.discarded":  "सुझाव हटा दिए गए",
	"ai.failed":     "कार्य बनाने में विफल। कृपया अपनी API कुंजी जांचें और पुनः प्रयास करें।",

	// Misc
	"palette.lang": "भाषा बदलकर %s की गई",
	"logout.done":  "लॉग आउट हो गया",
}
