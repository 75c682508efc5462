package dashboard

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/erwinh22/free-coding-models-sub000/internal/endpoint"
	"github.com/erwinh22/free-coding-models-sub000/internal/engine"
	"github.com/erwinh22/free-coding-models-sub000/internal/probe"
)

// DefaultInterval is the default delay between probe cycles.
const DefaultInterval = 3 * time.Second

// spinnerInterval is the animation frame rate for the probing spinner.
const spinnerInterval = 150 * time.Millisecond

// ViewMode defines the current display mode of the dashboard.
type ViewMode int

const (
	ViewList ViewMode = iota
	ViewDetail
)

// Model is the Bubble Tea model for the endpoint dashboard. It owns the
// mutable endpoint records; every probe result is recorded here and the
// display order is recomputed from the engine package.
type Model struct {
	endpoints  []*endpoint.Endpoint // full roster, probe results land here
	visible    []*endpoint.Endpoint // filtered and sorted display order
	prober     *probe.Prober
	favorites  map[string]bool
	selected   int
	column     engine.Column
	direction  engine.Direction
	tierLetter string // "" shows every tier
	width      int
	height     int
	lastUpdate time.Time
	interval   time.Duration
	quitting   bool
	showHelp   bool
	viewMode   ViewMode
	chosen     *endpoint.Endpoint // set by the use key, read back after Run

	// True while a probe cycle is draining; guards against overlap
	probing bool

	// Animation state
	spinnerFrame int

	// Detail view viewport for scrollable content
	detailViewport viewport.Model
	viewportReady  bool
}

// tickMsg signals the start of a new probe cycle.
type tickMsg time.Time

// spinnerTickMsg signals a spinner animation frame update.
type spinnerTickMsg time.Time

// probeResultMsg carries the result of a single endpoint probe. The model
// is copied between updates, so the cycle's stream travels in the message
// rather than on the model.
type probeResultMsg struct {
	updates <-chan probe.Update
	update  probe.Update
	time    time.Time
}

// probeDoneMsg signals that the current probe cycle has drained.
type probeDoneMsg struct{}

// NewModel creates a dashboard model over the given endpoints. The tier
// letter pre-filters the visible list; favorites marks starred endpoint IDs.
func NewModel(endpoints []*endpoint.Endpoint, prober *probe.Prober, interval time.Duration, tierLetter string, favorites []string) Model {
	if interval <= 0 {
		interval = DefaultInterval
	}

	fav := make(map[string]bool, len(favorites))
	for _, id := range favorites {
		fav[id] = true
	}

	m := Model{
		endpoints:  endpoints,
		prober:     prober,
		favorites:  fav,
		selected:   -1,
		column:     engine.ColumnRank,
		direction:  engine.Ascending,
		tierLetter: tierLetter,
		interval:   interval,
		probing:    true, // Init launches the first cycle immediately
	}

	m.resortEndpoints()
	if len(m.visible) > 0 {
		m.selected = 0
	}

	return m
}

// Init starts the tick timer and triggers the first probe cycle.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		m.tickCmd(),
		m.startProbeCmd(),
		m.spinnerTickCmd(),
	)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		handled, cmd := m.HandleKeyMsg(msg)
		if handled {
			return m, cmd
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		headerHeight := 3
		footerHeight := 2
		viewportHeight := m.height - headerHeight - footerHeight
		if viewportHeight < 1 {
			viewportHeight = 1
		}

		if !m.viewportReady {
			m.detailViewport = viewport.New(m.width, viewportHeight)
			m.detailViewport.YPosition = headerHeight
			m.viewportReady = true
		} else {
			m.detailViewport.Width = m.width
			m.detailViewport.Height = viewportHeight
		}

		if m.viewMode == ViewDetail {
			m.updateDetailViewportContent()
		}

	case tickMsg:
		cmds := []tea.Cmd{m.tickCmd()}
		// Skip overlapping cycles when the previous one is still draining
		if !m.probing {
			m.probing = true
			cmds = append(cmds, m.startProbeCmd())
		}
		return m, tea.Batch(cmds...)

	case spinnerTickMsg:
		m.spinnerFrame = (m.spinnerFrame + 1) % 10000
		return m, m.spinnerTickCmd()

	case probeResultMsg:
		m.lastUpdate = msg.time
		m.applyUpdate(msg.update)
		if m.viewMode == ViewDetail {
			m.updateDetailViewportContent()
		}
		// Keep polling the same cycle's stream
		return m, pollUpdatesCmd(msg.updates)

	case probeDoneMsg:
		m.probing = false
	}

	return m, nil
}

// View renders the dashboard.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	return m.renderDashboard()
}

// tickCmd returns a command that sends a tick after the refresh interval.
func (m Model) tickCmd() tea.Cmd {
	return tea.Tick(m.interval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// spinnerTickCmd returns a command that sends a spinner animation tick.
func (m Model) spinnerTickCmd() tea.Cmd {
	return tea.Tick(spinnerInterval, func(t time.Time) tea.Msg {
		return spinnerTickMsg(t)
	})
}

// startProbeCmd returns a command that starts a streaming probe cycle and
// waits for its first result. Results arrive one endpoint at a time via
// probeResultMsg; probeDoneMsg follows once the cycle drains.
func (m Model) startProbeCmd() tea.Cmd {
	prober := m.prober
	count := len(m.endpoints)
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(),
			probe.DefaultTimeout*time.Duration(count+1))

		updates := prober.Run(ctx)
		// Context expires on its own once the cycle finishes
		_ = cancel

		return receiveUpdate(updates)
	}
}

// pollUpdatesCmd returns a command that receives the next streaming result
// from the given cycle's channel.
func pollUpdatesCmd(updates <-chan probe.Update) tea.Cmd {
	return func() tea.Msg {
		return receiveUpdate(updates)
	}
}

// receiveUpdate blocks for the next result on the cycle's channel.
func receiveUpdate(updates <-chan probe.Update) tea.Msg {
	update, ok := <-updates
	if !ok {
		return probeDoneMsg{}
	}
	return probeResultMsg{updates: updates, update: update, time: time.Now()}
}

// applyUpdate records a single probe result on its endpoint and re-sorts.
func (m *Model) applyUpdate(u probe.Update) {
	for _, e := range m.endpoints {
		if e.ID == u.EndpointID {
			e.Record(u.Result.Ping(), u.Result.ErrorCode)
			break
		}
	}
	m.resortEndpoints()
}

// resortEndpoints recomputes the visible list from the tier filter and the
// active sort, keeping the current selection on the same endpoint.
func (m *Model) resortEndpoints() {
	var prev *endpoint.Endpoint
	if m.selected >= 0 && m.selected < len(m.visible) {
		prev = m.visible[m.selected]
	}

	filtered := m.endpoints
	if m.tierLetter != "" {
		filtered = engine.FilterByTierLetter(m.endpoints, m.tierLetter)
	}
	m.visible = engine.Sort(filtered, m.column, m.direction)

	if prev == nil {
		return
	}
	for i, e := range m.visible {
		if e == prev {
			m.selected = i
			return
		}
	}
	// Previous selection filtered out, clamp to the list
	if m.selected >= len(m.visible) {
		m.selected = len(m.visible) - 1
	}
}

// Selected returns the currently selected endpoint, or nil.
func (m Model) Selected() *endpoint.Endpoint {
	if m.selected >= 0 && m.selected < len(m.visible) {
		return m.visible[m.selected]
	}
	return nil
}

// Chosen returns the endpoint the user handed off with the use key, or nil
// when the dashboard was quit without choosing.
func (m Model) Chosen() *endpoint.Endpoint {
	return m.chosen
}

// ReachableCount returns the number of endpoints currently reachable.
func (m Model) ReachableCount() int {
	count := 0
	for _, e := range m.endpoints {
		if e.Status == endpoint.StatusReachable {
			count++
		}
	}
	return count
}

// SecondsSinceUpdate returns how many seconds passed since the last result.
func (m Model) SecondsSinceUpdate() int {
	if m.lastUpdate.IsZero() {
		return 0
	}
	return int(time.Since(m.lastUpdate).Seconds())
}

// ToggleFavorite flips the favorite mark on the selected endpoint and
// reports the endpoint ID and new state so the caller can persist it.
func (m *Model) ToggleFavorite() (string, bool) {
	e := m.Selected()
	if e == nil {
		return "", false
	}
	m.favorites[e.ID] = !m.favorites[e.ID]
	return e.ID, m.favorites[e.ID]
}

// IsFavorite reports whether the endpoint is starred.
func (m Model) IsFavorite(id string) bool {
	return m.favorites[id]
}

// Favorites returns the starred endpoint IDs so the caller can persist
// them once the dashboard exits.
func (m Model) Favorites() []string {
	var ids []string
	for id, on := range m.favorites {
		if on {
			ids = append(ids, id)
		}
	}
	return ids
}
