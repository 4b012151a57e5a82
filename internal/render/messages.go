package render

import (
	"golang.org/x/text/language"

	"github.com/bodrovis/csv-import-guard/internal/checks"
)

// Messages are the user-facing strings around the checklist.
type Messages struct {
	Title        string
	Requirements string
	Validating   string
	Valid        string
	Invalid      string
	Imported     string
	NoFile       string
}

var messages = map[language.Tag]Messages{
	language.Spanish: {
		Title:        "Selecciona un archivo CSV para importar",
		Requirements: "Requisitos del archivo",
		Validating:   "Validando archivo...",
		Valid:        "Archivo válido",
		Invalid:      "Archivo inválido, revisa los requisitos",
		Imported:     "Archivo importado correctamente",
		NoFile:       "Ningún archivo seleccionado",
	},
	language.English: {
		Title:        "Select a CSV file to import",
		Requirements: "File requirements",
		Validating:   "Validating file...",
		Valid:        "Valid file",
		Invalid:      "Invalid file, check the requirements",
		Imported:     "File imported successfully",
		NoFile:       "No file selected",
	},
}

func MessagesFor(locale language.Tag) Messages {
	if m, ok := messages[checks.MatchLocale(locale)]; ok {
		return m
	}
	return messages[checks.Supported[0]]
}
