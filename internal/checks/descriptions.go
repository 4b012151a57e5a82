package checks

import (
	"golang.org/x/text/language"
)

// Supported lists the locales descriptions are shipped for. The first one is the default.
var Supported = []language.Tag{language.Spanish, language.English}

var matcher = language.NewMatcher(Supported)

var descriptions = map[language.Tag]map[ID]string{
	language.Spanish: {
		CSVExtension:       "El archivo debe tener extensión .csv",
		NotEmpty:           "El archivo no debe estar vacío",
		NoEmptyRows:        "El archivo no debe tener filas vacías",
		SemicolonSeparator: "El archivo debe estar separado por punto y coma (;)",
	},
	language.English: {
		CSVExtension:       "The file must have a .csv extension",
		NotEmpty:           "The file must not be empty",
		NoEmptyRows:        "The file must not contain empty rows",
		SemicolonSeparator: "The file must be separated by semicolons (;)",
	},
}

// ResolveLocale maps any BCP 47 string onto one of the Supported tags.
// Unparsable or unknown input falls back to the default locale.
func ResolveLocale(s string) language.Tag {
	tag, err := language.Parse(s)
	if err != nil {
		return Supported[0]
	}
	return MatchLocale(tag)
}

func MatchLocale(tag language.Tag) language.Tag {
	_, idx, conf := matcher.Match(tag)
	if conf == language.No {
		return Supported[0]
	}
	return Supported[idx]
}

// Describe returns the fixed human-readable description of a check.
func Describe(id ID, locale language.Tag) string {
	d, ok := descriptions[MatchLocale(locale)]
	if !ok {
		d = descriptions[Supported[0]]
	}
	if s, ok := d[id]; ok {
		return s
	}
	return string(id)
}
