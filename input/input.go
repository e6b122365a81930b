// Package input translates terminal events into editor intents.
// Cursor movement follows the vi home row, the shifted home row pans
// the camera, tools bind to mnemonic letters
package input

import (
	"github.com/gdamore/tcell/v2"
)

// Intent is one user-level action
type Intent int

const (
	IntentNone Intent = iota
	IntentQuit
	IntentPrimary // place/pin/select at cursor
	IntentCommit
	IntentCancel
	IntentDelete

	IntentMoveLeft
	IntentMoveDown
	IntentMoveUp
	IntentMoveRight

	IntentPanLeft
	IntentPanDown
	IntentPanUp
	IntentPanRight

	IntentToolSelect
	IntentToolPoint
	IntentToolLine
	IntentToolBbox
	IntentToolCircle
	IntentToolPolygon

	IntentTogglePause
	IntentToggleMinkowski
	IntentMakeDynamic
	IntentSave
	IntentLoad

	IntentZoomIn
	IntentZoomOut
)

// Map converts a tcell event to an intent. Unmapped events return
// IntentNone
func Map(ev tcell.Event) Intent {
	key, ok := ev.(*tcell.EventKey)
	if !ok {
		return IntentNone
	}

	switch key.Key() {
	case tcell.KeyEscape:
		return IntentCancel
	case tcell.KeyEnter:
		return IntentCommit
	case tcell.KeyCtrlC:
		return IntentQuit
	case tcell.KeyDelete, tcell.KeyBackspace2:
		return IntentDelete
	case tcell.KeyLeft:
		return IntentMoveLeft
	case tcell.KeyDown:
		return IntentMoveDown
	case tcell.KeyUp:
		return IntentMoveUp
	case tcell.KeyRight:
		return IntentMoveRight
	}

	if key.Key() != tcell.KeyRune {
		return IntentNone
	}

	switch key.Rune() {
	case 'q':
		return IntentQuit
	case ' ':
		return IntentPrimary
	case 'h':
		return IntentMoveLeft
	case 'j':
		return IntentMoveDown
	case 'k':
		return IntentMoveUp
	case 'l':
		return IntentMoveRight
	case 'H':
		return IntentPanLeft
	case 'J':
		return IntentPanDown
	case 'K':
		return IntentPanUp
	case 'L':
		return IntentPanRight
	case 's':
		return IntentToolSelect
	case 'p':
		return IntentToolPoint
	case 'n':
		return IntentToolLine
	case 'b':
		return IntentToolBbox
	case 'c':
		return IntentToolCircle
	case 'g':
		return IntentToolPolygon
	case 'P':
		return IntentTogglePause
	case 'm':
		return IntentToggleMinkowski
	case 'd':
		return IntentMakeDynamic
	case 'w':
		return IntentSave
	case 'o':
		return IntentLoad
	case '+':
		return IntentZoomIn
	case '-':
		return IntentZoomOut
	}
	return IntentNone
}
