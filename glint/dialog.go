package glint

import (
	"log/slog"

	"github.com/ncruces/zenity"
)

// ShowError blocks on a modal error dialog so failures reach the user even
// when no terminal is attached. Falls back to the log when no dialog can be
// shown, headless test runs never hang here.
func ShowError(title, text string) {
	err := zenity.Error(text, zenity.Title(title), zenity.ErrorIcon)
	if err != nil {
		slog.Warn("Cannot show error dialog",
			slog.String("title", title),
			slog.Any("error", err),
		)
	}
}
