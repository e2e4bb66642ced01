package bidi

import (
	jj "github.com/cloudfoundry/jibber_jabber"
	"github.com/emirpasic/gods/sets/hashset"
	"golang.org/x/text/language"
)

// ISO 15924 codes of scripts written right-to-left.
var rtlScripts = hashset.New(
	"Adlm", "Arab", "Hebr", "Mand", "Nkoo", "Rohg", "Syrc", "Thaa",
)

// ISO 639 codes of languages written right-to-left in their default script.
var rtlLanguages = hashset.New(
	"ar", "ckb", "dv", "fa", "he", "iw", "ps", "sd", "ug", "ur", "yi",
)

// DefaultLocale is assumed if the user locale cannot be detected.
const DefaultLocale = "en-US"

// LocaleDirection returns the direction of the script of a BCP 47
// language tag. An explicit script subtag takes precedence over the
// language, e.g. "az-Arab" is RTL while "az" is LTR. Tags which cannot
// be parsed return Unknown.
func LocaleDirection(locale string) Direction {
	tag, err := language.Parse(locale)
	if err != nil && tag == language.Und {
		T().Errorf("bidi cannot parse locale %q: %v", locale, err)
		return Unknown
	}
	script, conf := tag.Script()
	if conf == language.Exact {
		return scriptDirection(script)
	}
	if base, _ := tag.Base(); rtlLanguages.Contains(base.String()) {
		return RTL
	}
	if conf == language.No {
		return Unknown
	}
	return scriptDirection(script)
}

func scriptDirection(script language.Script) Direction {
	if rtlScripts.Contains(script.String()) {
		return RTL
	}
	return LTR
}

// EnvironmentLocale returns the IETF locale of the user environment, or
// DefaultLocale if none can be detected.
func EnvironmentLocale() string {
	userLocale, err := jj.DetectIETF()
	if err != nil {
		T().Infof("bidi sets default user locale %v: %v", DefaultLocale, err)
		return DefaultLocale
	}
	T().Debugf("bidi detected user locale %v", userLocale)
	return userLocale
}

// EnvironmentDirection returns the direction of the user's locale.
func EnvironmentDirection() Direction {
	return LocaleDirection(EnvironmentLocale())
}
