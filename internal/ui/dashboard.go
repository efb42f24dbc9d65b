package ui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"vpndeck/internal/config"
	"vpndeck/internal/fleet"
	"vpndeck/internal/focus"
	"vpndeck/internal/lazy"
)

// DashboardScreen shows the fleet summary and a bandwidth snapshot, each
// behind its own lazy section.
type DashboardScreen struct {
	summary   *lazy.Section[fleet.Summary]
	bandwidth *lazy.Section[fleet.BandwidthSnapshot]

	summaryBody   string
	bandwidthBody string

	group *focus.Group
	spin  spinner.Model
	width int
}

// Ensure DashboardScreen implements Screen.
var _ Screen = (*DashboardScreen)(nil)

// NewDashboardScreen creates the dashboard with auto-loading sections.
func NewDashboardScreen(svc fleet.Service, defaults config.SectionConfig) *DashboardScreen {
	d := &DashboardScreen{spin: newSpinner()}

	d.summary = lazy.NewSection("dashboard/summary", lazy.Config{
		AutoLoad:      true,
		ShowSpinner:   true,
		Timeout:       defaults.Timeout,
		Debounce:      defaults.Debounce,
		CacheDuration: defaults.Cache,
		LoadingText:   "Loading fleet summary",
		Placeholder:   "No fleet data yet",
		RetryOnError:  true,
	}, svc.Summary)
	d.summary.SetHooks(lazy.Hooks[fleet.Summary]{
		Loading: func() { d.summaryBody = renderLoading(d.summary) },
		Content: func(s fleet.Summary) { d.summaryBody = renderSummary(s) },
		Error:   func(msg string) { d.summaryBody = renderSectionError(msg, d.summary.Err()) },
	})

	d.bandwidth = lazy.NewSection("dashboard/bandwidth", lazy.Config{
		AutoLoad:      true,
		ShowSpinner:   true,
		Timeout:       defaults.Timeout,
		Debounce:      defaults.Debounce,
		CacheDuration: defaults.Cache,
		LoadingText:   "Sampling bandwidth",
		Placeholder:   "No samples yet",
		ShowProgress:  true,
		RetryOnError:  true,
	}, svc.Bandwidth)
	d.bandwidth.SetHooks(lazy.Hooks[fleet.BandwidthSnapshot]{
		Loading: func() { d.bandwidthBody = renderLoading(d.bandwidth) },
		Content: func(s fleet.BandwidthSnapshot) { d.bandwidthBody = renderBandwidth(s) },
		Error:   func(msg string) { d.bandwidthBody = renderSectionError(msg, d.bandwidth.Err()) },
	})

	g := focus.NewGroup("dashboard", focus.ModeOrdinal)
	g.Join(focus.NewComponent("panel-summary").WithTabIndex(0))
	g.Join(focus.NewComponent("panel-bandwidth").WithTabIndex(1))
	g.First()
	d.group = g

	return d
}

// ID implements Screen.
func (d *DashboardScreen) ID() ScreenID { return ScreenDashboard }

// Group implements Screen.
func (d *DashboardScreen) Group() *focus.Group { return d.group }

// Mount implements Screen: hydrate fresh caches, fetch the rest.
func (d *DashboardScreen) Mount() tea.Cmd {
	return tea.Batch(mountSection(d.summary), mountSection(d.bandwidth), d.spin.Tick)
}

// Unmount implements Screen.
func (d *DashboardScreen) Unmount() {
	d.summary.Close()
	d.bandwidth.Close()
}

// ApplyResult implements Screen.
func (d *DashboardScreen) ApplyResult(msg lazy.ResultMsg) bool {
	if d.summary.Apply(msg) {
		return true
	}
	return d.bandwidth.Apply(msg)
}

// Reload implements Screen.
func (d *DashboardScreen) Reload() tea.Cmd {
	return tea.Batch(d.summary.Reload(), d.bandwidth.Reload())
}

// Retry implements Screen.
func (d *DashboardScreen) Retry() tea.Cmd {
	var cmds []tea.Cmd
	if d.summary.CanRetry() {
		cmds = append(cmds, d.summary.Load())
	}
	if d.bandwidth.CanRetry() {
		cmds = append(cmds, d.bandwidth.Load())
	}
	return tea.Batch(cmds...)
}

func (d *DashboardScreen) loading() bool {
	return sectionSpinning(d.summary) || sectionSpinning(d.bandwidth)
}

// Init implements View.
func (d *DashboardScreen) Init() tea.Cmd {
	return d.spin.Tick
}

// Update implements View.
func (d *DashboardScreen) Update(msg tea.Msg) (View, tea.Cmd) {
	if tick, ok := msg.(spinner.TickMsg); ok && d.loading() {
		var cmd tea.Cmd
		d.spin, cmd = d.spin.Update(tick)
		return d, cmd
	}
	if size, ok := msg.(tea.WindowSizeMsg); ok {
		d.width = size.Width
	}
	return d, nil
}

// View implements View.
func (d *DashboardScreen) View() string {
	title := Styles.Title.Render("Fleet overview")
	if d.loading() {
		title += " " + d.spin.View()
	}
	summaryBody := d.summaryBody
	if sectionBusy(d.summary.State()) {
		summaryBody = renderLoading(d.summary)
	}
	bandwidthBody := d.bandwidthBody
	if sectionBusy(d.bandwidth.State()) {
		// Recomputed per redraw so the timeout bar advances.
		bandwidthBody = renderLoading(d.bandwidth)
	}
	summary := d.panel("panel-summary", "Summary", summaryBody, sectionPlaceholder(d.summary, "No data yet"))
	bandwidth := d.panel("panel-bandwidth", "Bandwidth", bandwidthBody, sectionPlaceholder(d.bandwidth, "No data yet"))
	return title + "\n" + lipgloss.JoinHorizontal(lipgloss.Top, summary, bandwidth)
}

func (d *DashboardScreen) panel(id, title, body, placeholder string) string {
	if body == "" {
		body = Styles.Empty.Render(placeholder)
	}
	box := Styles.Box
	if cur := d.group.Current(); cur != nil && cur.ID == id {
		box = Styles.BoxFocused
	}
	return box.Render(Styles.Status.Render(title) + "\n" + body)
}

func renderSummary(s fleet.Summary) string {
	return fmt.Sprintf("Users    %d (%d active)\nServers  %d (%d online)",
		s.Users, s.ActiveUsers, s.Servers, s.OnlineServers)
}

func renderBandwidth(s fleet.BandwidthSnapshot) string {
	return fmt.Sprintf("Rx  %.1f MB/s\nTx  %.1f MB/s\nPeers  %d", s.RxMBps, s.TxMBps, s.Peers)
}
