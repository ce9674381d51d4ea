// Package translate renders user-facing messages in the user's locale.
//
// Keys are en-US Sprintf formats. A Spanish catalog is registered for the
// messages an interpreter session can produce.
package translate

import (
	"log"

	"github.com/jeandeaual/go-locale"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer *message.Printer

// supported languages; the first is the fallback.
var supported = language.NewMatcher([]language.Tag{
	language.English,
	language.Spanish,
})

func es(key string, msg string) {
	err := message.SetString(language.Spanish, key, msg)
	if err != nil {
		log.Printf("urm: translate: %v", err)
	}
}

func init() {
	// Diagnostics
	es("empty file %v", "El archivo proporcionado está vacío: %v")
	es("unclosed parenthesis at line %d (column %d)", "Paréntesis sin cerrar en línea %d (columna %d)")
	es("invalid numeric value '%v' at line %d", "Valor numérico inválido '%v' en línea %d")
	es("value %v below %d at line %d", "Valor %v menor a %d en línea %d")
	es("no initial configuration", "No se encontró una configuración inicial. Asegúrate de incluir una en el archivo, o especificarla al correr este programa.")
	es("invalid instruction \"%v\"", "Instrucción inválida \"%v\"")
	es("line %d, instruction %d: %v", "línea %d, instrucción %d: %v")
	es("register %v above %v at line %d", "Registro %v mayor a %v en línea %d")
	es("register %v above %v", "Registro %v mayor a %v")
	es("'%v' is not a valid configuration", "'%v' no es una configuración válida")
	es("'%v' is not a non-negative integer", "'%v' no es un entero no negativo")

	// Session output
	es("===== Program start =====", "===== Inicio del programa =====")
	es("======= Program end ======", "======= Fin del programa ======")
	es("<- initial", "<- Conf. inicial")
	es("<- result", "<- Resultado")
	es("maximum iterations reached", "Cantidad máxima de iteraciones alcanzada.")
	es("Result: %v", "Resultado: %v")
	es("Iterations: %v", "Iteraciones: %v")
	es("no programs found; create a .urm file in %v", "No se encontró ningún programa. Para iniciar, crea un archivo .urm en la carpeta %v")
	es("choose a program:", "Tienes varios programas. Escoge uno:")
	es("the program has no initial configuration; you must provide one", "El programa no incluye una configuración inicial. Deberás proporcionar una.")
	es("enter the value of each register, separated by commas (e.g. 1, 3, 5)", "Ingresa los valores para cada registro, separados por comas: (ej.: 1, 3, 5)")
	es("you must provide an initial configuration (set use_file_config to use the one in the file)", "Necesitas proporcionar una configuración inicial. (Para usar la que incluye el programa, cambia \"use_file_config\" a \"true\")")
	es("'%v' is not a program number", "'%v' no es un número de programa")

	// Configuration
	es("space %v is negative", "El espaciado %v es negativo")
	es("search_in is empty", "search_in está vacío")
	es("config %v: %v", "configuración %v: %v")

	locales, err := locale.GetLocales()
	if err != nil {
		log.Printf("urm: locale: %v", err)
	}

	if len(locales) == 0 {
		locales = []string{"en-US"}
	}

	tag, _ := language.MatchStrings(supported, locales...)
	printer = message.NewPrinter(tag)
}

// SetLanguage overrides the detected locale.
func SetLanguage(tag language.Tag) {
	printer = message.NewPrinter(tag)
}

// From an en-US Sprintf() format, translate to string.
func From(key message.Reference, args ...any) string {
	return printer.Sprintf(key, args...)
}
