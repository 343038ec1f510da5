// Package ui formats envdrop's terminal output.
//
// Formatters colour values by kind (paths, commands, secret names) and fall
// back to plain decorations when NO_COLOR is set or the terminal has no
// colour support:
//
//	ui.Code.Sprint("envdrop config init")   // `envdrop config init`
//	ui.Highlight.Sprint("APP_API_KEY")      // 'APP_API_KEY'
//	ui.Muted.Sprint(".envdrop.toml")        // (.envdrop.toml)
//
// Status lines prefix a message with a coloured mark:
//
//	ui.StatusLine(ui.StatusSuccess, "Wrote .env")   // ✓ Wrote .env
//
// A Printer writes status lines through a Redactor, which is how the console
// host keeps masked secret values out of everything it prints.
package ui
