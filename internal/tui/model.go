// Package tui provides the terminal timeline editor for lanes.
package tui

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/javiermolinar/lanes/internal/config"
	"github.com/javiermolinar/lanes/internal/interact"
	"github.com/javiermolinar/lanes/internal/scroll"
	"github.com/javiermolinar/lanes/internal/timeline"
	"github.com/javiermolinar/lanes/internal/tui/commands"
	"github.com/javiermolinar/lanes/internal/tui/theme"
)

// Mode represents the current interaction mode.
type Mode int

const (
	ModeNormal Mode = iota
	ModePrompt      // Rename prompt open in the footer
)

func (m Mode) String() string {
	if m == ModePrompt {
		return "prompt"
	}
	return "normal"
}

// renameKind tells what the rename prompt applies to.
type renameKind int

const (
	renameClip renameKind = iota
	renameTrack
)

// pointer is the last mouse position seen while a gesture is active.
type pointer struct {
	x, y int
}

// changeLog counts change notifications from the timeline.
type changeLog struct {
	count int
	clips int
}

// Model is the main TUI model.
type Model struct {
	// Dependencies
	config *config.Config
	logger *log.Logger

	// Theme and styles
	theme  *theme.Theme
	styles *Styles

	// Editor state. The pointers are shared by every copy of the model.
	timeline *timeline.Timeline
	zoom     *timeline.Zoom
	core     *interact.Core
	main     *scroll.Pane
	header   *scroll.Pane
	sidebar  *scroll.Pane
	layoutQ  *scroll.Queue
	sync     *scroll.Synchronizer
	changes  *changeLog

	autoscroll    interact.AutoscrollConfig
	autoscrolling bool
	pointer       pointer

	mode         Mode
	track        int // Focused track index
	renameKind   renameKind
	renameClipID timeline.ClipID
	renameTrack  int

	// Components
	prompt  textinput.Model
	overlay OverlayModel

	// Terminal dimensions and layout
	width  int
	height int
	layout LayoutCache

	// Messages
	statusMsg   string
	statusError bool
	statusTime  time.Time

	clipboard commands.ClipboardWriter
	now       func() time.Time
}

// ModelOption configures optional model behavior.
type ModelOption func(*Model)

// WithLogger sets the logger used for gestures, mutations and zoom events.
func WithLogger(l *log.Logger) ModelOption {
	return func(m *Model) {
		if l != nil {
			m.logger = l
		}
	}
}

// WithClipboard replaces the system clipboard.
func WithClipboard(w commands.ClipboardWriter) ModelOption {
	return func(m *Model) {
		m.clipboard = w
	}
}

// WithNow sets the clock used for status message expiry.
func WithNow(now func() time.Time) ModelOption {
	return func(m *Model) {
		if now != nil {
			m.now = now
		}
	}
}

// New creates a new TUI model editing tl.
func New(cfg *config.Config, tl *timeline.Timeline, opts ...ModelOption) Model {
	// Load theme from config
	t, err := theme.Load(cfg.UI.Theme)
	if err != nil {
		// Fallback to mocha on error
		t, _ = theme.Load(theme.DefaultName)
	}
	styles := NewStyles(t)

	prompt := textinput.New()
	prompt.CharLimit = 128
	prompt.PromptStyle = styles.PromptLabelStyle
	prompt.TextStyle = styles.PromptTextStyle
	prompt.Cursor.Style = styles.PromptCursorStyle

	zoom := cfg.Zoom()

	m := Model{
		config:     cfg,
		logger:     log.New(io.Discard),
		theme:      t,
		styles:     styles,
		timeline:   tl,
		zoom:       &zoom,
		main:       scroll.NewPane(),
		header:     scroll.NewPane(),
		sidebar:    scroll.NewPane(),
		layoutQ:    &scroll.Queue{},
		changes:    &changeLog{clips: len(tl.Clips())},
		autoscroll: cfg.Autoscroll(),
		mode:       ModeNormal,
		prompt:     prompt,
		overlay:    NewOverlayModel(),
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(&m)
	}

	m.overlay.SetBackground(styles.Palette().Modal.Bg)
	m.sync = scroll.NewSynchronizer(m.main, m.header, m.sidebar, m.zoom, m.layoutQ, scroll.WithLogger(m.logger))
	m.core = interact.NewCore(tl, m.zoom, m.main, interact.NewState(), interact.WithLogger(m.logger))

	changes, logger := m.changes, m.logger
	tl.OnChange(func(clips []*timeline.Clip) {
		changes.count++
		changes.clips = len(clips)
		logger.Debug("clips changed", "clips", len(clips), "changes", changes.count)
	})

	m.reflow()
	return m
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Run starts the TUI on the timeline described by cfg.
func Run(cfg *config.Config, debug bool) error {
	dl, err := OpenDebugLog(debug, cfg.Logging)
	if err != nil {
		return err
	}
	defer func() { _ = dl.Close() }()

	tl, err := cfg.BuildTimeline(time.Now())
	if err != nil {
		return fmt.Errorf("building timeline: %w", err)
	}

	model := New(cfg, tl, WithLogger(dl.Logger))
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion())
	_, err = p.Run()
	return err
}

// Timeline returns the edited timeline.
func (m Model) Timeline() *timeline.Timeline {
	return m.timeline
}

// reflow recomputes the layout and the pane sizes from the window size and
// the current zoom, then re-syncs the secondary panes.
func (m *Model) reflow() {
	m.layout = buildLayoutCache(m.width, m.height)
	mapper := m.mapper()
	contentW, contentH := mapper.ContentWidth(), mapper.ContentHeight()
	l := m.layout

	m.main.SetClientSize(float64(l.GridW), float64(l.GridH))
	m.main.SetContentSize(contentW, contentH)
	m.header.SetClientSize(float64(l.GridW), float64(l.GridY-l.RulerY))
	m.header.SetContentSize(contentW, float64(l.GridY-l.RulerY))
	m.sidebar.SetClientSize(float64(l.SidebarW), float64(l.GridH))
	m.sidebar.SetContentSize(float64(l.SidebarW), contentH)

	m.sync.Sync()
	m.clampTrackFocus()
}

func (m Model) mapper() timeline.Mapper {
	return m.timeline.Mapper(*m.zoom)
}

func (m *Model) clampTrackFocus() {
	n := m.timeline.TrackCount()
	m.track = max(0, min(m.track, n-1))
}

func (m *Model) setStatus(msg string) tea.Cmd {
	m.statusMsg = msg
	m.statusError = false
	m.statusTime = m.now().Add(3 * time.Second)
	return commands.ClearStatusAfter(3 * time.Second)
}

func (m *Model) setError(err error) tea.Cmd {
	m.statusMsg = fmt.Sprintf("Error: %v", err)
	m.statusError = true
	m.statusTime = m.now().Add(5 * time.Second)
	return commands.ClearStatusAfter(5 * time.Second)
}
