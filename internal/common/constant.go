package common

// SessionCookieName is the cookie that carries the signed workspace token.
const SessionCookieName = "careadmin_session"

// LanguageEnglish and LanguageGerman are the languages of the display table.
const (
	LanguageEnglish = "en"
	LanguageGerman  = "de"
)
