package ui

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/five82/devicedeck/internal/catalog"
	"github.com/five82/devicedeck/internal/compare"
	"github.com/five82/devicedeck/internal/prefs"
	"github.com/five82/devicedeck/internal/state"
)

// View represents the current active view.
type View int

const (
	ViewCatalog View = iota
	ViewCompare
)

// Options configures the UI.
type Options struct {
	Context        context.Context
	Catalog        *catalog.Store
	Compare        *compare.Manager
	Sync           *state.Store
	Logger         *zap.Logger
	CurrencySymbol string
	PollTick       time.Duration
	Prefs          prefs.Prefs
	PrefsPath      string
}

// Model is the root application state for Bubble Tea.
type Model struct {
	// Configuration
	catalog        *catalog.Store
	compare        *compare.Manager
	sync           *state.Store
	logger         *zap.Logger
	currencySymbol string
	prefsPath      string
	pollTick       time.Duration

	// UI state
	keys        keyMap
	theme       Theme
	fixedSlots  bool
	currentView View
	width       int
	height      int
	ready       bool

	// Catalog state
	listNames   []string
	listIdx     int
	filter      *catalog.Criteria
	filterLabel string
	rows        []catalog.Product
	selectedRow int

	// Data state
	snapshot state.Snapshot

	// flash is a one-line notice cleared by the next key press.
	flash string
	modal Modal
}

// New creates a new Bubble Tea model.
func New(opts Options) Model {
	pollTick := opts.PollTick
	if pollTick <= 0 {
		pollTick = time.Second
	}

	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	symbol := strings.TrimSpace(opts.CurrencySymbol)
	if symbol == "" {
		symbol = catalog.DefaultCurrencySymbol
	}

	p := opts.Prefs
	if p.Theme == "" {
		p = prefs.Defaults()
	}

	m := Model{
		catalog:        opts.Catalog,
		compare:        opts.Compare,
		sync:           opts.Sync,
		logger:         logger.Named("ui"),
		currencySymbol: symbol,
		prefsPath:      opts.PrefsPath,
		pollTick:       pollTick,
		keys:           DefaultKeyMap(),
		theme:          GetTheme(p.Theme),
		fixedSlots:     p.UseFixedSlots(),
		currentView:    ViewCatalog,
	}
	if m.sync != nil {
		m.snapshot = m.sync.Snapshot()
	}
	m.refreshRows()
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{tickCmd(m.pollTick)}
	if m.sync != nil {
		cmds = append(cmds, fetchSnapshotCmd(m.sync))
	}
	return tea.Batch(cmds...)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.modal != nil {
			return m.updateModal(msg)
		}
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		return m, nil

	case tickMsg:
		return m.handleTick()

	case snapshotMsg:
		m.snapshot = state.Snapshot(msg)
		return m, nil

	case searchAppliedMsg:
		m.applySearch(msg)
		return m, nil
	}

	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}
	if m.modal != nil {
		return m.modal.View(m.theme, m.width, m.height)
	}
	return m.renderMain()
}

func (m Model) updateModal(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd, done := m.modal.Update(msg, m.keys)
	if done {
		m.modal = nil
	} else {
		m.modal = next
	}
	return m, cmd
}

// handleKey processes keyboard input outside of modals.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.flash = ""

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.modal = helpModal{}
		return m, nil

	case key.Matches(msg, m.keys.CycleTheme):
		m.theme = GetTheme(NextTheme(m.theme.Name))
		m.savePrefs()
		return m, nil

	case key.Matches(msg, m.keys.SlotLayout):
		m.fixedSlots = !m.fixedSlots
		m.savePrefs()
		return m, nil

	case key.Matches(msg, m.keys.SwitchView):
		if m.currentView == ViewCatalog {
			m.currentView = ViewCompare
		} else {
			m.currentView = ViewCatalog
		}
		return m, nil

	case key.Matches(msg, m.keys.ClearSet):
		if m.compare.Snapshot().Len() > 0 {
			m.compare.Clear()
			m.flash = "Compare list cleared"
		}
		return m, nil

	case key.Matches(msg, m.keys.OpenCompare):
		// The trigger is disabled below two items.
		if m.compare.Snapshot().CanCompare() {
			m.currentView = ViewCompare
		}
		return m, nil

	case key.Matches(msg, m.keys.Escape):
		if m.currentView == ViewCompare {
			m.currentView = ViewCatalog
			return m, nil
		}
		if m.filter != nil {
			m.filter = nil
			m.filterLabel = ""
			m.selectedRow = 0
			m.refreshRows()
		}
		return m, nil
	}

	switch m.currentView {
	case ViewCatalog:
		return m.handleCatalogKey(msg)
	case ViewCompare:
		return m.handleCompareKey(msg)
	}
	return m, nil
}

// handleCatalogKey processes keyboard input for the catalog view.
func (m Model) handleCatalogKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Search):
		current := catalog.Criteria{}
		if m.filter != nil {
			current = *m.filter
		}
		m.modal = newSearchModal(current)
		return m, textinput.Blink

	case key.Matches(msg, m.keys.NextList):
		m.cycleList(1)
		return m, nil

	case key.Matches(msg, m.keys.PrevList):
		m.cycleList(-1)
		return m, nil

	case key.Matches(msg, m.keys.ToggleCompare):
		if p, ok := m.selectedProduct(); ok {
			outcome, err := m.compare.Toggle(p)
			m.reportOutcome(p, outcome, err)
		}
		return m, nil

	case key.Matches(msg, m.keys.AddCompare):
		if p, ok := m.selectedProduct(); ok {
			outcome, err := m.compare.Add(p)
			m.reportOutcome(p, outcome, err)
		}
		return m, nil

	case key.Matches(msg, m.keys.RemoveSlot):
		// The floating bar numbers its chips; the digits remove them.
		m.removeSlot(msg)
		return m, nil
	}

	count := len(m.rows)
	if count == 0 {
		return m, nil
	}
	switch {
	case key.Matches(msg, m.keys.Down):
		if m.selectedRow < count-1 {
			m.selectedRow++
		}
	case key.Matches(msg, m.keys.Up):
		if m.selectedRow > 0 {
			m.selectedRow--
		}
	case key.Matches(msg, m.keys.Top):
		m.selectedRow = 0
	case key.Matches(msg, m.keys.Bottom):
		m.selectedRow = count - 1
	}
	return m, nil
}

// handleCompareKey processes keyboard input for the comparison page.
func (m Model) handleCompareKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.RemoveSlot) {
		m.removeSlot(msg)
	}
	return m, nil
}

// removeSlot removes the member at the 1-based position typed. Positions
// past the end of the set are ignored.
func (m *Model) removeSlot(msg tea.KeyMsg) {
	slot := int(msg.String()[0] - '1')
	set := m.compare.Snapshot()
	if slot < 0 || slot >= set.Len() {
		return
	}
	p := set.Items[slot]
	if m.compare.Remove(p.ID) {
		m.flash = "Removed " + p.Name
	}
}

// reportOutcome turns a compare mutation result into user feedback.
func (m *Model) reportOutcome(p catalog.Product, outcome compare.Outcome, err error) {
	if errors.Is(err, compare.ErrCapacityExceeded) {
		m.modal = newNotice(
			"Compare list full",
			fmt.Sprintf("You can compare up to %d products. Remove one before adding %s.", compare.Capacity, p.Name),
			true,
		)
		return
	}
	if err != nil {
		m.logger.Error("compare update failed", zap.String("id", p.ID), zap.Error(err))
		return
	}
	switch outcome {
	case compare.OutcomeAdded:
		m.flash = fmt.Sprintf("Added %s (%d/%d)", p.Name, m.compare.Snapshot().Len(), compare.Capacity)
	case compare.OutcomeDuplicate:
		m.flash = p.Name + " is already in compare"
	case compare.OutcomeRemoved:
		m.flash = "Removed " + p.Name
	}
}

func (m *Model) savePrefs() {
	if m.prefsPath == "" {
		return
	}
	p := prefs.Prefs{Theme: m.theme.Name}.WithFixedSlots(m.fixedSlots)
	if err := prefs.Save(m.prefsPath, p); err != nil {
		m.logger.Warn("save prefs failed", zap.Error(err))
	}
}

// handleTick processes the refresh tick.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	m.refreshRows()

	var cmds []tea.Cmd
	if m.sync != nil {
		cmds = append(cmds, fetchSnapshotCmd(m.sync))
	}
	cmds = append(cmds, tickCmd(m.pollTick))
	return m, tea.Batch(cmds...)
}

// Messages

type tickMsg time.Time

type snapshotMsg state.Snapshot

// Commands

func tickCmd(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func fetchSnapshotCmd(store *state.Store) tea.Cmd {
	return func() tea.Msg {
		return snapshotMsg(store.Snapshot())
	}
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	if opts.Catalog == nil {
		return fmt.Errorf("ui requires a catalog store")
	}
	if opts.Compare == nil {
		return fmt.Errorf("ui requires a compare manager")
	}
	m := New(opts)
	teaOpts := []tea.ProgramOption{tea.WithAltScreen()}
	if opts.Context != nil {
		teaOpts = append(teaOpts, tea.WithContext(opts.Context))
	}
	p := tea.NewProgram(m, teaOpts...)
	_, err := p.Run()
	if errors.Is(err, tea.ErrProgramKilled) && opts.Context != nil && opts.Context.Err() != nil {
		return nil
	}
	return err
}
