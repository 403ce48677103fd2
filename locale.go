package bidifmt

import (
	jj "github.com/cloudfoundry/jibber_jabber"
	"golang.org/x/text/language"
)

// IsRtlScript reports whether an ISO 15924 script is written right-to-left.
func IsRtlScript(script language.Script) bool {
	switch script.String() {
	case
		"Adlm", "Arab", "Hebr", "Mand",
		"Mend", "Nkoo", "Rohg", "Samr",
		"Syrc", "Thaa", "Yezi":
		return true
	}
	return false
}

// IsRtlLanguage reports whether text in the given language is written
// right-to-left. The locale is an ISO 639/3166 string such as "ar", "he-IL"
// or "az-Arab"; the deciding script is either given explicitly in the tag or
// inferred as the language's most likely script.
func IsRtlLanguage(locale string) bool {
	lang := language.Make(locale)
	script, conf := lang.Script()
	if conf == language.No {
		return false
	}
	return IsRtlScript(script)
}

// ContextFromEnvironment determines a context direction from the user's
// locale. Clients rendering into a surrounding of unknown directionality,
// e.g. a terminal, may use this as a default context for a formatter.
//
// If no locale can be detected, "en-US" is assumed.
func ContextFromEnvironment() Direction {
	userLocale, err := jj.DetectIETF()
	if err != nil {
		tracer().Errorf(err.Error())
		userLocale = "en-US"
		tracer().Infof("bidifmt sets default user locale %v", userLocale)
	} else {
		tracer().Infof("bidifmt detected user locale %v", userLocale)
	}
	return FromBool(IsRtlLanguage(userLocale))
}
