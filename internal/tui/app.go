// ABOUTME: Root bubbletea model for the TUI application
// ABOUTME: Manages screen state, guarded navigation, and routes keyboard input

package tui

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/osamaqaseem39/strikersgear-dashboard/internal/bootstrap"
	"github.com/osamaqaseem39/strikersgear-dashboard/internal/catalog"
	"github.com/osamaqaseem39/strikersgear-dashboard/internal/client"
	"github.com/osamaqaseem39/strikersgear-dashboard/internal/guard"
	"github.com/osamaqaseem39/strikersgear-dashboard/internal/route"
	"github.com/osamaqaseem39/strikersgear-dashboard/internal/session"
	"github.com/osamaqaseem39/strikersgear-dashboard/internal/tui/authform"
	"github.com/osamaqaseem39/strikersgear-dashboard/internal/tui/dashboard"
	"github.com/osamaqaseem39/strikersgear-dashboard/internal/tui/editform"
	"github.com/osamaqaseem39/strikersgear-dashboard/internal/tui/icons"
	"github.com/osamaqaseem39/strikersgear-dashboard/internal/tui/menu"
	"github.com/osamaqaseem39/strikersgear-dashboard/internal/tui/resource"
	"github.com/osamaqaseem39/strikersgear-dashboard/internal/tui/stock"
	"github.com/osamaqaseem39/strikersgear-dashboard/internal/tui/styles"
)

// Screen represents the current TUI screen
type Screen int

const (
	ScreenLoading Screen = iota
	ScreenAuth
	ScreenAdminUnknown
	ScreenDashboard
	ScreenResource
	ScreenStock
	ScreenEdit
)

// String returns the string representation of a Screen
func (s Screen) String() string {
	switch s {
	case ScreenLoading:
		return "loading"
	case ScreenAuth:
		return "auth"
	case ScreenAdminUnknown:
		return "admin-unknown"
	case ScreenDashboard:
		return "dashboard"
	case ScreenResource:
		return "resource"
	case ScreenStock:
		return "stock"
	case ScreenEdit:
		return "edit"
	default:
		return "unknown"
	}
}

// Layout constants
const (
	minTerminalWidth = 80 // Minimum width before using single-column layout
	panelPadding     = 4  // Total horizontal padding from panel borders (2 each side)
)

// navigateMsg asks the app to move to a screen path
type navigateMsg struct {
	path string
}

// Results of background work. Each carries the generation of the screen that
// started it; results for a screen that is no longer shown are dropped.
type (
	sessionReadyMsg struct {
		gen  uint64
		path string
	}

	adminStatusMsg struct {
		gen    uint64
		status bootstrap.AdminStatus
		err    error
	}

	authDoneMsg struct {
		gen uint64
		err error
	}

	overviewLoadedMsg struct {
		gen      uint64
		overview dashboard.Overview
		err      error
	}

	listingLoadedMsg struct {
		gen     uint64
		listing resource.Listing
		orders  []catalog.Order
		err     error
	}

	stockLoadedMsg struct {
		gen    uint64
		ticket uint64
		rows   []catalog.Stock
		err    error
	}

	stockWrittenMsg struct {
		gen uint64
		key catalog.StockKey
		qty int
		err error
	}

	actionDoneMsg struct {
		gen    uint64
		notice string
		err    error
	}

	editorLoadedMsg struct {
		gen     uint64
		editor  catalog.Editor
		id      string
		current map[string]string
		options map[string][]catalog.Option
		err     error
	}

	savedMsg struct {
		gen    uint64
		notice string
		err    error
	}
)

// App is the root model for the TUI
type App struct {
	session *session.Store
	catalog *catalog.Catalog
	logger  *slog.Logger

	screen Screen
	path   string
	width  int
	height int

	// Screen lifetime. Leaving a screen cancels ctx and bumps gen.
	gen    uint64
	ctx    context.Context
	cancel context.CancelFunc

	err           error
	notice        string
	loadingText   string
	confirmDelete bool
	lastUpdate    time.Time

	// Child models
	spinner   spinner.Model
	menu      *menu.Menu
	form      *authform.Form
	editor    *editform.Form
	dashboard *dashboard.Dashboard
	table     *resource.View
	board     *stock.Board

	stockRows   []catalog.Stock
	orderStatus map[string]string
}

// New creates a new TUI application
func New(store *session.Store, cat *catalog.Catalog) *App {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(styles.Primary)

	return &App{
		session: store,
		catalog: cat,
		logger:  slog.Default(),
		screen:  ScreenLoading,
		ctx:     context.Background(),
		spinner: s,
		menu:    menu.New(),
	}
}

// WithLogger returns a using logger
func (a *App) WithLogger(logger *slog.Logger) *App {
	a.logger = logger
	return a
}

// Init implements tea.Model
func (a *App) Init() tea.Cmd {
	return tea.Batch(a.spinner.Tick, a.navigate(route.Dashboard))
}

// navigate moves to path through the route guards. Every screen change
// goes through here.
func (a *App) navigate(path string) tea.Cmd {
	snap := a.session.Snapshot()
	d := guard.Resolve(path, snap)
	for hops := 0; d.Kind == guard.Redirect && hops < 2; hops++ {
		a.logger.Debug("Guard redirect", "from", path, "to", d.To)
		path = d.To
		d = guard.Resolve(path, snap)
	}

	a.leave()
	a.path = path

	if d.Kind == guard.Loading {
		a.screen = ScreenLoading
		a.loadingText = "Restoring session..."
		return a.initSession(path)
	}
	return a.enter(path)
}

// leave tears down the current screen
func (a *App) leave() {
	if a.cancel != nil {
		a.cancel()
	}
	a.gen++
	a.ctx, a.cancel = context.WithCancel(context.Background())

	a.err = nil
	a.notice = ""
	a.confirmDelete = false
	a.form = nil
	a.editor = nil
	a.dashboard = nil
	a.table = nil
	a.board = nil
	a.stockRows = nil
	a.orderStatus = nil
}

// enter builds the screen for an already-guarded path
func (a *App) enter(path string) tea.Cmd {
	switch {
	case route.IsGuest(path):
		a.screen = ScreenLoading
		a.loadingText = "Checking admin status..."
		return a.checkAdmin()

	case path == route.Dashboard:
		a.screen = ScreenDashboard
		a.dashboard = dashboard.New(nil, a.dashboardWidth(), a.contentHeight())
		return a.loadOverview()

	case path == route.Stock:
		a.screen = ScreenStock
		a.board = stock.NewBoard()
		a.table = resource.NewView(resource.Stock(nil), a.tableHeight())
		return a.refreshStock()

	case slices.Contains(route.Resources, path):
		a.screen = ScreenResource
		a.table = resource.NewView(resource.Listing{Path: path}, a.tableHeight())
		return a.loadListing(path)
	}

	a.logger.Warn("Unknown screen, showing dashboard", "path", path)
	a.path = route.Dashboard
	return a.enter(route.Dashboard)
}

// shutdown cancels in-flight work before the program exits
func (a *App) shutdown() {
	if a.cancel != nil {
		a.cancel()
	}
}

// Update implements tea.Model
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		if a.dashboard != nil {
			a.dashboard.SetSize(a.dashboardWidth(), a.contentHeight())
		}
		if a.table != nil {
			a.table.SetHeight(a.tableHeight())
		}
		if a.form != nil {
			return a.updateForm(msg)
		}
		if a.editor != nil {
			return a.updateEditor(msg)
		}
		return a, nil

	case tea.KeyMsg:
		// Handle global quit
		if msg.String() == "ctrl+c" {
			a.shutdown()
			return a, tea.Quit
		}
		return a.handleKey(msg)

	case spinner.TickMsg:
		var cmd tea.Cmd
		a.spinner, cmd = a.spinner.Update(msg)
		return a, cmd

	case navigateMsg:
		// A redirect to login while already headed there (form up, or the
		// admin check from an earlier redirect in flight) is a no-op
		if route.IsGuest(msg.path) && (a.screen == ScreenAuth || a.path == route.Login) {
			return a, nil
		}
		return a, a.navigate(msg.path)

	case menu.SelectedMsg:
		return a, a.navigate(msg.Path)

	case authform.SubmittedMsg:
		return a, a.submitAuth(msg)

	case authform.CancelledMsg:
		a.shutdown()
		return a, tea.Quit

	case editform.SubmittedMsg:
		return a, a.saveDocument(msg)

	case editform.CancelledMsg:
		return a, a.navigate(a.path)

	case sessionReadyMsg:
		if msg.gen != a.gen {
			return a, nil
		}
		return a, a.navigate(msg.path)

	case adminStatusMsg:
		if msg.gen != a.gen {
			return a, nil
		}
		return a.handleAdminStatus(msg)

	case authDoneMsg:
		if msg.gen != a.gen || a.form == nil {
			return a, nil
		}
		if msg.err != nil {
			a.logger.Info("Authentication failed", "mode", a.form.Mode(), "error", msg.err)
			return a, a.form.Fail(client.Message(msg.err))
		}
		return a, a.navigate(route.Dashboard)

	case overviewLoadedMsg:
		if msg.gen != a.gen || a.dashboard == nil {
			return a, nil
		}
		if msg.err != nil {
			a.err = msg.err
			return a, nil
		}
		overview := msg.overview
		a.dashboard.Update(&overview)
		a.lastUpdate = time.Now()
		return a, nil

	case listingLoadedMsg:
		if msg.gen != a.gen || a.table == nil {
			return a, nil
		}
		if msg.err != nil {
			a.err = msg.err
			return a, nil
		}
		a.table.SetListing(msg.listing)
		if msg.orders != nil {
			a.orderStatus = make(map[string]string, len(msg.orders))
			for _, o := range msg.orders {
				a.orderStatus[o.ID] = o.Status
			}
		}
		a.lastUpdate = time.Now()
		return a, nil

	case stockLoadedMsg:
		if msg.gen != a.gen || a.board == nil {
			return a, nil
		}
		if msg.err != nil {
			a.err = msg.err
			return a, nil
		}
		if !a.board.ApplyRefresh(msg.ticket, msg.rows) {
			a.logger.Debug("Dropped out-of-order stock refresh", "ticket", msg.ticket)
			return a, nil
		}
		a.syncStockTable()
		a.lastUpdate = time.Now()
		return a, nil

	case stockWrittenMsg:
		if msg.gen != a.gen || a.board == nil {
			return a, nil
		}
		if msg.err != nil {
			a.err = msg.err
			return a, nil
		}
		a.board.ApplyWrite(msg.key, msg.qty)
		a.syncStockTable()
		a.err = nil
		a.notice = fmt.Sprintf("Stock set to %d", msg.qty)
		return a, nil

	case actionDoneMsg:
		if msg.gen != a.gen {
			return a, nil
		}
		if msg.err != nil {
			a.err = msg.err
			return a, nil
		}
		a.err = nil
		a.notice = msg.notice
		return a, a.reload()

	case editorLoadedMsg:
		if msg.gen != a.gen {
			return a, nil
		}
		if msg.err != nil {
			cmd := a.navigate(a.path)
			a.err = msg.err
			return a, cmd
		}
		a.editor = editform.New(msg.editor.Resource(), msg.id, msg.editor.Fields(), msg.current, msg.options)
		a.screen = ScreenEdit
		cmd := a.editor.Init()
		if a.width > 0 {
			a.editor.Update(tea.WindowSizeMsg{Width: a.width - panelPadding, Height: a.contentHeight()})
		}
		return a, cmd

	case savedMsg:
		if msg.gen != a.gen || a.editor == nil {
			return a, nil
		}
		if msg.err != nil {
			a.logger.Info("Save rejected", "resource", a.editor.Resource(), "error", msg.err)
			return a, a.editor.Fail(client.Message(msg.err))
		}
		cmd := a.navigate(a.path)
		a.notice = msg.notice
		return a, cmd

	default:
		// Forward unknown messages to the form when active (needed for huh form internals)
		if a.form != nil {
			return a.updateForm(msg)
		}
		if a.editor != nil {
			return a.updateEditor(msg)
		}
	}

	return a, nil
}

func (a *App) handleAdminStatus(msg adminStatusMsg) (tea.Model, tea.Cmd) {
	switch msg.status {
	case bootstrap.StatusUnknown:
		a.screen = ScreenAdminUnknown
		a.err = msg.err
		return a, nil
	case bootstrap.NoAdminYet:
		a.form = authform.New(authform.ModeCreateAdmin)
	default:
		a.form = authform.New(authform.ModeLogin)
	}
	a.screen = ScreenAuth
	return a, a.form.Init()
}

func (a *App) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if a.form == nil {
		return a, nil
	}
	model, cmd := a.form.Update(msg)
	a.form = model.(*authform.Form)
	return a, cmd
}

func (a *App) updateEditor(msg tea.Msg) (tea.Model, tea.Cmd) {
	if a.editor == nil {
		return a, nil
	}
	model, cmd := a.editor.Update(msg)
	a.editor = model.(*editform.Form)
	return a, cmd
}

func (a *App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch a.screen {
	case ScreenAuth:
		return a.updateForm(msg)
	case ScreenEdit:
		return a.updateEditor(msg)
	case ScreenAdminUnknown:
		switch msg.String() {
		case "r":
			return a, a.navigate(a.path)
		case "q":
			a.shutdown()
			return a, tea.Quit
		}
	case ScreenLoading:
		if msg.String() == "q" {
			a.shutdown()
			return a, tea.Quit
		}
	case ScreenDashboard:
		return a.updateDashboard(msg)
	case ScreenResource:
		return a.updateResource(msg)
	case ScreenStock:
		return a.updateStock(msg)
	}
	return a, nil
}

// handleCommonKey processes keys shared by every signed-in screen
func (a *App) handleCommonKey(key string) (tea.Cmd, bool) {
	switch key {
	case "q":
		a.shutdown()
		return tea.Quit, true
	case "x":
		return a.logout(), true
	case "r":
		a.err = nil
		a.notice = ""
		return a.reload(), true
	}
	return nil, false
}

func (a *App) updateDashboard(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if cmd, ok := a.handleCommonKey(msg.String()); ok {
		return a, cmd
	}
	model, cmd := a.menu.Update(msg)
	a.menu = model.(*menu.Menu)
	return a, cmd
}

func (a *App) updateResource(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if a.confirmDelete {
		return a, a.answerDelete(msg.String())
	}

	key := msg.String()
	if cmd, ok := a.handleCommonKey(key); ok {
		return a, cmd
	}

	switch key {
	case "b", "esc":
		return a, a.navigate(route.Dashboard)
	case "d":
		a.armDelete()
		return a, nil
	case "n":
		return a, a.openEditor("")
	case "e":
		if id := a.table.SelectedID(); id != "" {
			return a, a.openEditor(id)
		}
		return a, nil
	case "s":
		if a.path == route.Orders {
			return a, a.advanceOrder()
		}
	case "c":
		if a.path == route.Orders {
			return a, a.setOrderStatus(catalog.OrderCancelled)
		}
	}
	return a, a.table.Update(msg)
}

func (a *App) updateStock(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if a.confirmDelete {
		return a, a.answerDelete(msg.String())
	}

	key := msg.String()
	if cmd, ok := a.handleCommonKey(key); ok {
		return a, cmd
	}

	switch key {
	case "b", "esc":
		return a, a.navigate(route.Dashboard)
	case "+", "=":
		return a, a.adjustStock(1)
	case "-", "_":
		return a, a.adjustStock(-1)
	case "d":
		a.armDelete()
		return a, nil
	case "n":
		return a, a.openEditor("")
	case "e":
		if row, ok := a.selectedStock(); ok {
			return a, a.openEditor(row.ID)
		}
		return a, nil
	}
	return a, a.table.Update(msg)
}

func (a *App) armDelete() {
	if a.table == nil || a.table.SelectedID() == "" {
		return
	}
	a.confirmDelete = true
	a.notice = ""
}

func (a *App) answerDelete(key string) tea.Cmd {
	a.confirmDelete = false
	if key != "y" {
		a.notice = "Delete cancelled"
		return nil
	}
	return a.deleteSelected()
}

func (a *App) advanceOrder() tea.Cmd {
	id := a.table.SelectedID()
	next, ok := catalog.NextOrderStatus(a.orderStatus[id])
	if !ok {
		a.notice = "Order has no further status"
		return nil
	}
	return a.setOrderStatus(next)
}

// selectedStock returns the stock row under the cursor
func (a *App) selectedStock() (catalog.Stock, bool) {
	if a.table == nil {
		return catalog.Stock{}, false
	}
	i := a.table.Cursor()
	if i < 0 || i >= len(a.stockRows) {
		return catalog.Stock{}, false
	}
	return a.stockRows[i], true
}

func (a *App) syncStockTable() {
	a.stockRows = a.board.Rows()
	a.table.SetListing(resource.Stock(a.stockRows))
}

func (a *App) logout() tea.Cmd {
	if err := a.session.Logout(); err != nil {
		a.logger.Warn("Clearing session failed", "error", err)
	}
	return a.navigate(route.Login)
}

// reload refetches the data behind the current screen
func (a *App) reload() tea.Cmd {
	switch a.screen {
	case ScreenDashboard:
		return a.loadOverview()
	case ScreenStock:
		return a.refreshStock()
	case ScreenResource:
		return a.loadListing(a.path)
	}
	return nil
}

// View implements tea.Model
func (a *App) View() string {
	var content string

	switch a.screen {
	case ScreenAuth:
		content = a.viewAuth()
	case ScreenAdminUnknown:
		content = a.viewAdminUnknown()
	case ScreenDashboard:
		content = a.viewDashboard()
	case ScreenResource, ScreenStock:
		content = a.viewTable()
	case ScreenEdit:
		content = a.viewEditor()
	default:
		content = a.viewLoading()
	}

	return a.wrapWithFrame(content)
}

func (a *App) viewLoading() string {
	text := a.loadingText
	if text == "" {
		text = "Loading..."
	}
	return styles.Panel.Render(a.spinner.View() + " " + text)
}

func (a *App) viewAuth() string {
	if a.form == nil {
		return ""
	}
	return styles.ActivePanel.Render(a.form.View())
}

func (a *App) viewEditor() string {
	if a.editor == nil {
		return ""
	}
	return styles.ActivePanel.Width(a.width - panelPadding).Render(a.editor.View())
}

func (a *App) viewAdminUnknown() string {
	var sb strings.Builder
	sb.WriteString(styles.StatusCritical.Render(icons.Critical.String() + " Could not check whether an admin account exists"))
	sb.WriteString("\n\n")
	if a.err != nil {
		sb.WriteString(client.Message(a.err))
		sb.WriteString("\n\n")
	}
	sb.WriteString(styles.KeyStyle.Render("r") + " Retry   " + styles.KeyStyle.Render("q") + " Quit")
	return styles.Panel.Render(sb.String())
}

// viewDashboard renders the overview with the resource menu on the right
func (a *App) viewDashboard() string {
	leftPane := ""
	if a.dashboard != nil {
		leftPane = styles.ActivePanel.Width(a.dashboardWidth()).Render(a.dashboard.View())
	} else {
		leftPane = styles.Panel.Width(a.dashboardWidth()).Render("Loading...")
	}

	rightContent := a.menu.View() + "\n"
	rightContent += icons.Refresh.String() + " Refresh data\n"
	rightContent += icons.Logout.String() + " Log out\n"
	rightContent += icons.Quit.String() + " Quit application\n"
	rightPane := styles.Panel.Width(a.actionsWidth()).Render(rightContent)

	view := lipgloss.JoinHorizontal(lipgloss.Top, leftPane, rightPane)
	if status := a.statusLine(); status != "" {
		view += "\n" + status
	}
	return view
}

func (a *App) viewTable() string {
	if a.table == nil {
		return ""
	}
	view := styles.ActivePanel.Width(a.width - panelPadding).Render(a.table.View())
	if status := a.statusLine(); status != "" {
		view += "\n" + status
	}
	return view
}

// statusLine shows the delete prompt, the last error, or the last notice
func (a *App) statusLine() string {
	switch {
	case a.confirmDelete:
		return styles.StatusWarning.Render(icons.Delete.String() + " Delete selected item? (y/n)")
	case a.err != nil:
		return styles.StatusCritical.Render("Error: " + client.Message(a.err))
	case a.notice != "":
		return styles.StatusOK.Render(icons.CheckOK.String() + " " + a.notice)
	}
	return ""
}

// dashboardWidth calculates the width for the dashboard pane
func (a *App) dashboardWidth() int {
	if a.width < minTerminalWidth {
		return a.width - panelPadding
	}
	return (a.width - panelPadding) * 3 / 5
}

// actionsWidth calculates the width for the menu pane
func (a *App) actionsWidth() int {
	return a.width - a.dashboardWidth() - 4
}

// contentHeight calculates the height available for dashboard content
func (a *App) contentHeight() int {
	// Total overhead:
	// - Header: 1 line
	// - Newline after header: 1 line
	// - ActivePanel border+padding: 4 lines (top border, top padding, bottom padding, bottom border)
	// - Newline before footer: 1 line
	// - Footer: 1 line
	// Total: 8 lines overhead
	return a.height - 8
}

// tableHeight leaves room for the frame, panel, title, and status line
func (a *App) tableHeight() int {
	return a.contentHeight() - 4
}
