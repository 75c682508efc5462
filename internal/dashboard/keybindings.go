package dashboard

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/erwinh22/free-coding-models-sub000/internal/catalog"
	"github.com/erwinh22/free-coding-models-sub000/internal/engine"
)

// Key bindings as constants for consistency.
const (
	KeyQuit          = "q"
	KeyQuitAlt       = "ctrl+c"
	KeyRefresh       = "r"
	KeyCycleSort     = "s"
	KeyReverseSort   = "o"
	KeySelectPrev    = "up"
	KeySelectPrevK   = "k"
	KeySelectNext    = "down"
	KeySelectNextJ   = "j"
	KeySelectFirst   = "home"
	KeySelectLast    = "end"
	KeyExpand        = "enter"
	KeyCollapse      = "esc"
	KeyToggleHelp    = "?"
	KeyFavorite      = "f"
	KeyUse           = "u"
	KeyTierS         = "1"
	KeyTierA         = "2"
	KeyTierB         = "3"
	KeyTierC         = "4"
	KeyTierClear     = "0"
)

// tierFilterKeys maps number keys to capability tier letters.
var tierFilterKeys = map[string]string{
	KeyTierS: "S",
	KeyTierA: "A",
	KeyTierB: "B",
	KeyTierC: "C",
}

// HandleKeyMsg processes keyboard input and returns updated model state and
// command. Returns true if the key was handled, false otherwise.
func (m *Model) HandleKeyMsg(msg tea.KeyMsg) (bool, tea.Cmd) {
	key := msg.String()

	// Help toggle takes priority
	if key == KeyToggleHelp {
		m.showHelp = !m.showHelp
		return true, nil
	}

	// If help is showing, Esc closes it
	if m.showHelp && key == KeyCollapse {
		m.showHelp = false
		return true, nil
	}

	// Detail view: Esc returns to list
	if m.viewMode == ViewDetail && key == KeyCollapse {
		m.viewMode = ViewList
		return true, nil
	}

	if letter, ok := tierFilterKeys[key]; ok {
		if len(catalog.TierGroup(letter)) > 0 {
			m.tierLetter = letter
			m.resortEndpoints()
		}
		return true, nil
	}

	switch key {
	case KeyQuit, KeyQuitAlt:
		m.quitting = true
		return true, tea.Quit

	case KeyRefresh:
		if m.probing {
			return true, nil
		}
		m.probing = true
		return true, m.startProbeCmd()

	case KeyCycleSort:
		m.column = m.column.Next()
		m.resortEndpoints()
		return true, nil

	case KeyReverseSort:
		if m.direction == engine.Ascending {
			m.direction = engine.Descending
		} else {
			m.direction = engine.Ascending
		}
		m.resortEndpoints()
		return true, nil

	case KeyTierClear:
		m.tierLetter = ""
		m.resortEndpoints()
		return true, nil

	case KeySelectPrev, KeySelectPrevK:
		if m.selected > 0 {
			m.selected--
		}
		return true, nil

	case KeySelectNext, KeySelectNextJ:
		if m.selected < len(m.visible)-1 {
			m.selected++
		}
		return true, nil

	case KeySelectFirst:
		if len(m.visible) > 0 {
			m.selected = 0
		}
		return true, nil

	case KeySelectLast:
		if len(m.visible) > 0 {
			m.selected = len(m.visible) - 1
		}
		return true, nil

	case KeyFavorite:
		m.ToggleFavorite()
		return true, nil

	case KeyUse:
		if e := m.Selected(); e != nil {
			m.chosen = e
			m.quitting = true
			return true, tea.Quit
		}
		return true, nil

	case KeyExpand:
		if m.viewMode == ViewList && len(m.visible) > 0 {
			m.viewMode = ViewDetail
			m.updateDetailViewportContent()
		}
		return true, nil

	case KeyCollapse:
		m.viewMode = ViewList
		return true, nil
	}

	return false, nil
}
