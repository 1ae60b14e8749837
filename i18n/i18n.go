package i18n

import (
	"log"
	"strings"
	"sync"

	"github.com/jeandeaual/go-locale"
)

var (
	mu   sync.RWMutex
	lang = "en"
)

var translations = map[string]map[string]string{
	"Countdown Timer": {
		"id": "Timer Hitung Mundur",
	},
	"Hours": {
		"id": "Jam",
	},
	"Minutes": {
		"id": "Menit",
	},
	"Seconds": {
		"id": "Detik",
	},
	"Start": {
		"id": "Mulai",
	},
	"Pause": {
		"id": "Jeda",
	},
	"Resume": {
		"id": "Lanjut",
	},
	"Reset": {
		"id": "Reset",
	},
	"Timer started.": {
		"id": "Timer dimulai.",
	},
	"Paused.": {
		"id": "Dijeda.",
	},
	"Resumed.": {
		"id": "Dilanjutkan.",
	},
	"Reset.": {
		"id": "Direset.",
	},
	"Time's up!": {
		"id": "Waktu habis!",
	},
	"Timer": {
		"id": "Timer",
	},
	"Invalid input": {
		"id": "Input tidak valid",
	},
	"Enter valid numbers for hours, minutes and seconds.": {
		"id": "Masukkan angka yang valid untuk jam, menit, dan detik.",
	},
	"Empty": {
		"id": "Kosong",
	},
	"Enter a time greater than 0 seconds.": {
		"id": "Masukkan waktu lebih dari 0 detik.",
	},
	"Failed to play the alarm sound: %v": {
		"id": "Gagal memutar suara alarm: %v",
	},
}

// Setup picks the display language. A non-empty forced value wins, otherwise
// the first system locale decides.
func Setup(forced string) {
	if forced = strings.TrimSpace(forced); forced != "" {
		log.Printf("Language forced to: '%s'", forced)
		SetLang(forced)
		return
	}

	userLocales, err := locale.GetLocales()
	if err != nil {
		log.Println("Could not get user locale, defaulting to english")
		SetLang("en")
		return
	}
	if len(userLocales) == 0 {
		log.Println("No user locale detected, defaulting to english")
		SetLang("en")
		return
	}

	log.Printf("Detected user locale: %s", userLocales[0])
	SetLang(FromLocale(userLocales[0]))
	log.Printf("Language set to: %s", GetLang())
}

// FromLocale maps a locale tag such as "id-ID" to a supported language.
func FromLocale(tag string) string {
	tag = strings.ToLower(tag)
	if strings.HasPrefix(tag, "id") || strings.HasPrefix(tag, "in") {
		return "id"
	}
	return "en"
}

func SetLang(l string) {
	mu.Lock()
	lang = strings.ToLower(l)
	mu.Unlock()
}

func T(key string) string {
	mu.RLock()
	defer mu.RUnlock()
	if translated, ok := translations[key][lang]; ok {
		return translated
	}
	return key
}

func GetLang() string {
	mu.RLock()
	defer mu.RUnlock()
	return lang
}
