// Package tui provides the terminal user interface for chatbridge.
package tui

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/harmonica"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog/log"

	"github.com/xonecas/chatbridge/internal/api"
	"github.com/xonecas/chatbridge/internal/config"
	"github.com/xonecas/chatbridge/internal/constants"
	"github.com/xonecas/chatbridge/internal/content"
	"github.com/xonecas/chatbridge/internal/feed"
	"github.com/xonecas/chatbridge/internal/palette"
	"github.com/xonecas/chatbridge/internal/session"
	"github.com/xonecas/chatbridge/internal/store"
	"github.com/xonecas/chatbridge/internal/telemetry"
	"github.com/xonecas/chatbridge/internal/timefmt"
	"github.com/xonecas/chatbridge/internal/video"
)

// View represents the current screen.
type View int

const (
	ViewLogin View = iota
	ViewChat
)

// Layout: title bar, banner, input box (3 lines) and status bar around the feed.
const chromeHeight = 1 + 1 + 3 + 1

// Options wires the model to its collaborators.
type Options struct {
	Config   *config.Config
	Service  api.Service
	Store    *store.Store // optional; nil disables persistence
	Resolver video.Resolver
	Session  session.Context // zero value starts at the login view
}

// Model is the main TUI model.
type Model struct {
	cfg      *config.Config
	svc      api.Service
	store    *store.Store
	resolver video.Resolver
	session  session.Context

	view     View
	width    int
	height   int
	showHelp bool

	login   LoginModel
	input   InputModel
	picker  *EmojiPicker
	overlay *videoOverlay

	// feedGen changes on every reset; results from an earlier feed are dropped.
	feedGen int
	state   *feed.State
	coord   *feed.Coordinator
	sched  *feed.Scheduler
	poll   feed.Handle
	anchor feed.Anchor
	colors *palette.Assigner
	times  timefmt.Formatter

	viewport     viewport.Model
	links        []linkRef
	selectedLink int

	// Forced scrolls animate toward the bottom on a spring.
	spring       harmonica.Spring
	scrollPos    float64
	scrollVel    float64
	scrollTarget float64
	animating    bool
	settleGen    int

	spinner spinner.Model
	net     NetIndicator

	warning  string // session-level notice, e.g. expired token
	status   string // transient notice, e.g. "link copied"
	sendFrom time.Time

	now     func() time.Time
	openURL func(string) error
	copy    func(string) error
}

// New creates a new TUI model.
func New(opts Options) Model {
	sp := spinner.New()
	sp.Spinner = spinner.Spinner{
		Frames: []string{"⬡", "⬢", "⬡", "⬢", "⬦", "⬥", "⬦", "⬥"},
		FPS:    time.Second / 8,
	}
	sp.Style = lipgloss.NewStyle().Foreground(colorBrand)

	resolver := opts.Resolver
	if resolver == nil {
		resolver = video.Static{}
	}

	m := Model{
		cfg:          opts.Config,
		svc:          opts.Service,
		store:        opts.Store,
		resolver:     resolver,
		session:      opts.Session,
		view:         ViewLogin,
		login:        NewLoginModel(),
		sched:        feed.NewScheduler(opts.Config.Feed.PollInterval),
		anchor:       feed.Anchor{Threshold: opts.Config.Feed.BottomThreshold},
		times:        timefmt.Formatter{DateLayout: opts.Config.Feed.DateLayout},
		viewport:     viewport.New(80, 10),
		selectedLink: -1,
		spring:       harmonica.NewSpring(harmonica.FPS(60), 6.0, 0.8),
		spinner:      sp,
		net:          NewNetIndicator(),
		now:          time.Now,
		openURL:      openURL,
		copy:         copyToClipboard,
	}
	m.resetFeed()
	m.input = NewInputModel(m.loadHistory())

	if m.session.Valid() {
		m.view = ViewChat
	}
	return m
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{m.spinner.Tick, m.net.Init()}
	if m.view == ViewChat {
		// Init cannot mutate the model, so the chat starts on the next Update.
		cmds = append(cmds, func() tea.Msg { return startChatMsg{} })
	} else {
		cmds = append(cmds, textinput.Blink)
	}
	return tea.Batch(cmds...)
}

// Update handles messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resize()
		return m, nil

	case tea.KeyMsg:
		if key.Matches(msg, keys.Quit) {
			return m, tea.Quit
		}
		if m.view == ViewLogin {
			return m.handleLoginKey(msg)
		}
		return m.handleChatKey(msg)

	case tea.MouseMsg:
		if m.view == ViewChat {
			var cmd tea.Cmd
			m.viewport, cmd = m.viewport.Update(msg)
			m.animating = false
			return m, cmd
		}

	case startChatMsg:
		cmd := m.startChat()
		return m, cmd

	case loginDoneMsg:
		return m.handleLoginDone(msg)

	case pollTickMsg:
		tick := feed.Tick(msg)
		if !m.sched.Live(tick) {
			return m, nil
		}
		fetch := m.fetch()
		return m, tea.Batch(fetch, m.schedulePoll(tick.Handle))

	case feedFetchedMsg:
		cmd := m.handleFetched(msg)
		return m, cmd

	case sendDoneMsg:
		cmd := m.handleSendDone(msg)
		return m, cmd

	case settleScrollMsg:
		if msg.gen == m.settleGen {
			cmd := m.beginScrollAnimation()
			return m, cmd
		}
		return m, nil

	case scrollFrameMsg:
		cmd := m.stepScrollAnimation()
		return m, cmd

	case videoInfoMsg:
		if m.overlay != nil && m.overlay.info.ID == msg.info.ID {
			m.overlay.resolved(msg.info, msg.err)
		}
		return m, nil

	case statusMsg:
		m.status = string(msg)
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		cmds = append(cmds, cmd)

	case NetIndicatorTickMsg:
		var cmd tea.Cmd
		m.net, cmd = m.net.Update(msg)
		cmds = append(cmds, cmd)

	default:
		if m.view == ViewLogin {
			var cmd tea.Cmd
			m.login, cmd = m.login.Update(msg)
			cmds = append(cmds, cmd)
		} else if m.view == ViewChat {
			var cmd tea.Cmd
			m.input, cmd = m.input.Update(msg)
			cmds = append(cmds, cmd)
		}
	}

	return m, tea.Batch(cmds...)
}

// View renders the UI.
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}
	if m.showHelp {
		return RenderHelp(m.width, m.height)
	}
	if m.view == ViewLogin {
		return m.login.View(m.width, m.height, m.spinner.View())
	}
	if m.overlay != nil {
		return m.overlay.View(m.width, m.height, m.spinner.View())
	}
	if m.picker != nil {
		return m.picker.View(m.width, m.height)
	}
	return m.renderChat()
}

func (m Model) renderChat() string {
	var sections []string

	title := "CHATBRIDGE · " + m.session.Identity()
	sections = append(sections, renderSectionTitleWithSuffix(title, "", m.width))
	sections = append(sections, m.renderBanner())

	feedView := m.viewport.View()
	if !m.state.InitialLoadDone {
		feedView = lipgloss.Place(m.viewport.Width, m.viewport.Height, lipgloss.Center, lipgloss.Center,
			m.spinner.View()+" "+dimmedStyle.Render("Loading messages..."))
	}
	sections = append(sections, lipgloss.JoinHorizontal(lipgloss.Top, feedView, renderScrollbar(m.viewport)))

	sections = append(sections, m.input.View(m.width, m.state.PendingSend(), m.spinner.View()))
	sections = append(sections, m.renderStatusBar())

	return strings.Join(sections, "\n")
}

// renderBanner shows the last error, else a warning, else a transient status.
func (m Model) renderBanner() string {
	switch {
	case m.state.LastError != "":
		return errorBannerStyle.Render(truncateWithEllipsis("✖ "+m.state.LastError, m.width))
	case m.warning != "":
		return warningStyle.Render(truncateWithEllipsis("⚠ "+m.warning, m.width))
	case m.status != "":
		return statusStyle.Render(truncateWithEllipsis(m.status, m.width))
	}
	return ""
}

func (m Model) renderStatusBar() string {
	left := m.net.View()
	hints := "f1 help · ctrl+n links · ctrl+x logout"
	if m.selectedLink >= 0 {
		hints = "enter open · esc clear · ctrl+n/p next/prev"
	}
	right := dimmedStyle.Render(fmt.Sprintf("%d msgs · %s", len(m.state.Messages), hints))

	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		return left
	}
	return left + strings.Repeat(" ", gap) + right
}

func (m *Model) resize() {
	m.viewport.Width = max(1, m.width-1) // scrollbar column
	m.viewport.Height = max(1, m.height-chromeHeight)
	m.input.SetWidth(m.width)
	m.refreshContent()
}

// Chat lifecycle

func (m *Model) startChat() tea.Cmd {
	m.view = ViewChat
	m.login = NewLoginModel()
	m.resetFeed()
	m.warning = ""
	if m.session.Expired(m.now()) {
		exp, _ := m.session.ExpiresAt()
		log.Warn().Time("exp", exp).Msg("Session credential has expired")
		m.warning = constants.SessionExpiredWarning
	}

	m.poll = m.sched.Start()
	log.Info().Str("user", m.session.Identity()).Dur("interval", m.sched.Interval).Msg("Chat started")
	return tea.Batch(m.fetch(), m.schedulePoll(m.poll), m.input.Focus())
}

func (m *Model) logout() tea.Cmd {
	m.sched.Cancel(m.poll)
	if m.store != nil {
		if err := m.store.ClearSession(); err != nil {
			log.Warn().Err(err).Msg("Failed to clear session")
		}
	}
	log.Info().Str("user", m.session.Identity()).Msg("Logged out")

	m.session = session.Context{}
	m.view = ViewLogin
	m.login = NewLoginModel()
	m.overlay = nil
	m.picker = nil
	m.warning = ""
	m.status = ""
	m.input.Clear()
	m.resetFeed()
	return textinput.Blink
}

// resetFeed starts a fresh feed state for the current session.
func (m *Model) resetFeed() {
	m.feedGen++
	m.state = &feed.State{}
	m.coord = feed.NewCoordinator(m.state)
	m.colors = palette.New(m.session.Identity(), nil)
	m.links = nil
	m.selectedLink = -1
	m.animating = false
	m.viewport.SetContent("")
	m.viewport.GotoTop()
	telemetry.SetFeedSize(0)
}

func (m Model) loadHistory() []string {
	if m.store == nil {
		return nil
	}
	history, err := m.store.RecentHistory(constants.MaxHistorySize)
	if err != nil {
		log.Warn().Err(err).Msg("Failed to load draft history")
		return nil
	}
	return history
}

// Login

func (m Model) handleLoginKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.login.Loading() {
		return m, nil
	}

	switch {
	case key.Matches(msg, keys.Help):
		m.showHelp = !m.showHelp
		return m, nil

	case key.Matches(msg, keys.Escape):
		m.showHelp = false
		m.login.err = ""
		return m, nil

	case key.Matches(msg, keys.Enter):
		ready, cmd := m.login.Ready()
		if !ready {
			return m, cmd
		}
		username, password := m.login.Credentials()
		m.login.SetLoading(true)
		m.net.Begin(NetActivityAuth)
		return m, m.authenticate(username, password)
	}

	var cmd tea.Cmd
	m.login, cmd = m.login.Update(msg)
	return m, cmd
}

func (m Model) handleLoginDone(msg loginDoneMsg) (tea.Model, tea.Cmd) {
	m.net.End(NetActivityAuth)
	if msg.err != nil {
		log.Warn().Err(msg.err).Str("class", api.Classify(msg.err).String()).Msg("Login failed")
		m.login.SetError(api.LoginErrorText(msg.err))
		return m, nil
	}

	m.session = session.New(msg.username, msg.token)
	if m.store != nil {
		if err := m.store.SaveSession(msg.token, msg.username); err != nil {
			log.Warn().Err(err).Msg("Failed to persist session")
		}
	}
	cmd := m.startChat()
	return m, cmd
}

func (m Model) authenticate(username, password string) tea.Cmd {
	svc := m.svc
	timeout := m.cfg.API.Timeout
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		token, err := svc.Authenticate(ctx, username, password)
		return loginDoneMsg{username: username, token: token, err: err}
	}
}

// Chat keys

func (m Model) handleChatKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.showHelp {
		m.showHelp = false
		return m, nil
	}
	if m.overlay != nil {
		return m.handleOverlayKey(msg)
	}
	if m.picker != nil {
		return m.handlePickerKey(msg)
	}

	m.status = ""
	switch {
	case key.Matches(msg, keys.Help):
		m.showHelp = true
		return m, nil

	case key.Matches(msg, keys.Logout):
		cmd := m.logout()
		return m, cmd

	case key.Matches(msg, keys.Escape):
		m.selectLink(-1)
		return m, nil

	case key.Matches(msg, keys.Enter):
		if m.selectedLink >= 0 && m.selectedLink < len(m.links) {
			cmd := m.activateLink(m.links[m.selectedLink].Segment)
			return m, cmd
		}
		cmd := m.submit()
		return m, cmd

	case key.Matches(msg, keys.NextLink):
		m.cycleLink(1)
		return m, nil

	case key.Matches(msg, keys.PrevLink):
		m.cycleLink(-1)
		return m, nil

	case key.Matches(msg, keys.Emoji):
		p := NewEmojiPicker()
		m.picker = &p
		return m, nil

	case key.Matches(msg, keys.Refresh):
		cmd := m.fetch()
		return m, cmd

	case key.Matches(msg, keys.PageUp):
		m.animating = false
		m.viewport.LineUp(m.viewport.Height)
		return m, nil

	case key.Matches(msg, keys.PageDown):
		m.animating = false
		m.viewport.LineDown(m.viewport.Height)
		return m, nil

	case key.Matches(msg, keys.Bottom):
		m.animating = false
		m.viewport.GotoBottom()
		return m, nil
	}

	// The draft is frozen while its send is pending.
	if m.state.PendingSend() {
		return m, nil
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) handleOverlayKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	info := m.overlay.info
	switch {
	case key.Matches(msg, keys.Escape):
		m.overlay = nil
	case key.Matches(msg, keys.Open):
		return m, m.open(info.WatchURL())
	case key.Matches(msg, keys.Copy):
		return m, m.copyLink(info.WatchURL())
	}
	return m, nil
}

func (m Model) handlePickerKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Escape):
		m.picker = nil
	case key.Matches(msg, keys.Enter):
		m.input.Insert(m.picker.Selected().Emoji)
		m.picker = nil
	default:
		p, cmd := m.picker.Update(msg)
		m.picker = &p
		return m, cmd
	}
	return m, nil
}

// Sending

func (m *Model) submit() tea.Cmd {
	draft := content.ExpandShortcodes(m.input.Value())
	sub, ok := m.coord.Begin(draft)
	if !ok {
		return nil
	}
	if draft != m.input.Value() {
		m.input.SetValue(draft)
	}

	m.net.Begin(NetActivitySend)
	m.sendFrom = m.now()

	svc := m.svc
	credential := m.session.Credential()
	out := api.Outgoing{Sender: m.session.Identity(), Content: sub.Content}
	timeout := m.cfg.API.Timeout
	gen := m.feedGen
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		return sendDoneMsg{gen: gen, content: out.Content, err: svc.SendMessage(ctx, credential, out)}
	}
}

func (m *Model) handleSendDone(msg sendDoneMsg) tea.Cmd {
	m.net.End(NetActivitySend)
	if msg.gen != m.feedGen {
		log.Debug().Err(msg.err).Msg("Dropping send result from a previous session")
		return nil
	}
	res := m.coord.Finish(msg.err)
	telemetry.ObserveSend(api.Classify(msg.err).String(), m.now().Sub(m.sendFrom))

	if res.State == feed.SendFailed {
		log.Warn().Err(msg.err).Str("class", api.Classify(msg.err).String()).Msg("Send failed")
		return nil
	}

	m.input.AddToHistory(msg.content)
	if m.store != nil {
		if err := m.store.AddHistory(msg.content, constants.MaxHistorySize); err != nil {
			log.Warn().Err(err).Msg("Failed to record draft history")
		}
	}
	if res.ClearDraft {
		m.input.Clear()
	}

	var cmds []tea.Cmd
	if res.Refresh {
		cmds = append(cmds, m.fetch())
	}
	if res.ForceScroll {
		cmds = append(cmds, m.forceScroll())
	}
	return tea.Batch(cmds...)
}

// Polling

func (m Model) schedulePoll(h feed.Handle) tea.Cmd {
	return tea.Tick(m.sched.Interval, func(t time.Time) tea.Msg {
		return pollTickMsg(feed.Tick{Handle: h, Time: t})
	})
}

func (m *Model) fetch() tea.Cmd {
	seq := m.sched.NextSeq()
	m.net.Begin(NetActivityPoll)

	svc := m.svc
	timeout := m.cfg.API.Timeout
	gen := m.feedGen
	return func() tea.Msg {
		start := time.Now()
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		msgs, err := svc.FetchMessages(ctx)
		return feedFetchedMsg{gen: gen, seq: seq, msgs: msgs, err: err, elapsed: time.Since(start)}
	}
}

func (m *Model) handleFetched(msg feedFetchedMsg) tea.Cmd {
	m.net.End(NetActivityPoll)
	if m.view != ViewChat || msg.gen != m.feedGen {
		return nil
	}

	// Responses are applied in arrival order, even when an older request resolves last.
	if m.sched.Applied(msg.seq) {
		telemetry.StaleResponses.Inc()
		log.Debug().Uint64("seq", msg.seq).Msg("Applying poll response out of issue order")
	}

	if msg.err != nil {
		telemetry.ObservePoll(api.Classify(msg.err).String(), msg.elapsed)
		log.Warn().Err(msg.err).Uint64("seq", msg.seq).Msg("Poll failed")
		m.state.Fail(feed.FetchErrorText(msg.err))
		return nil
	}
	telemetry.ObservePoll(api.Classify(nil).String(), msg.elapsed)

	before := m.geometry()
	r := feed.Reconcile(m.state, msg.msgs)
	m.refreshContent()
	if !r.Adopted {
		return nil
	}

	telemetry.SetFeedSize(len(m.state.Messages))
	action := m.anchor.Decide(before, r.ForceScroll)
	log.Debug().
		Uint64("seq", msg.seq).
		Int("count", len(m.state.Messages)).
		Stringer("scroll", action).
		Msg("Feed adopted")

	switch action {
	case feed.ScrollToBottom:
		m.animating = false
		m.viewport.GotoBottom()
	case feed.ScrollToBottomDeferred:
		return m.forceScroll()
	}
	return nil
}

// geometry reports the viewport in display units.
func (m Model) geometry() feed.Viewport {
	cell := m.cfg.Feed.CellHeight
	return feed.Viewport{
		ScrollHeight: m.viewport.TotalLineCount() * cell,
		ScrollTop:    m.viewport.YOffset * cell,
		ClientHeight: m.viewport.Height * cell,
	}
}

// refreshContent re-renders the feed; relative labels age on every call.
func (m *Model) refreshContent() {
	r := feedRenderer{
		self:     m.session,
		colors:   m.colors,
		times:    m.times,
		now:      m.now(),
		width:    m.viewport.Width,
		selected: m.selectedLink,
	}
	body, links := r.render(m.state.Messages)
	m.links = links
	if m.selectedLink >= len(links) {
		m.selectedLink = -1
	}
	m.viewport.SetContent(body)
}

// Scrolling

// forceScroll snaps to the bottom once the new content has settled.
func (m *Model) forceScroll() tea.Cmd {
	m.settleGen++
	gen := m.settleGen
	return tea.Tick(m.cfg.Feed.SettleDelay, func(time.Time) tea.Msg {
		return settleScrollMsg{gen: gen}
	})
}

func (m *Model) beginScrollAnimation() tea.Cmd {
	bottom := max(0, m.viewport.TotalLineCount()-m.viewport.Height)
	m.scrollPos = float64(m.viewport.YOffset)
	m.scrollVel = 0
	m.scrollTarget = float64(bottom)
	if m.viewport.YOffset == bottom {
		return nil
	}
	m.animating = true
	return scrollFrame()
}

func (m *Model) stepScrollAnimation() tea.Cmd {
	if !m.animating {
		return nil
	}
	// Content may have grown mid-animation.
	m.scrollTarget = float64(max(0, m.viewport.TotalLineCount()-m.viewport.Height))
	m.scrollPos, m.scrollVel = m.spring.Update(m.scrollPos, m.scrollVel, m.scrollTarget)

	if math.Abs(m.scrollPos-m.scrollTarget) < 0.5 {
		m.animating = false
		m.viewport.GotoBottom()
		return nil
	}
	m.viewport.SetYOffset(int(math.Round(m.scrollPos)))
	return scrollFrame()
}

func scrollFrame() tea.Cmd {
	return tea.Tick(time.Second/60, func(time.Time) tea.Msg {
		return scrollFrameMsg{}
	})
}

// Links

func (m *Model) cycleLink(direction int) {
	if len(m.links) == 0 {
		return
	}
	next := m.selectedLink + direction
	switch {
	case m.selectedLink < 0 && direction < 0:
		next = len(m.links) - 1
	case next < 0:
		next = len(m.links) - 1
	case next >= len(m.links):
		next = 0
	}
	m.selectLink(next)
}

func (m *Model) selectLink(i int) {
	m.selectedLink = i
	m.refreshContent()
	if i < 0 || i >= len(m.links) {
		return
	}
	m.animating = false
	line := m.links[i].Line
	if line < m.viewport.YOffset || line >= m.viewport.YOffset+m.viewport.Height {
		m.viewport.SetYOffset(line)
	}
}

func (m *Model) activateLink(seg content.Segment) tea.Cmd {
	if seg.Kind == content.KindVideo {
		m.overlay = newVideoOverlay(seg.VideoID, seg.Text)
		resolver := m.resolver
		id := seg.VideoID
		timeout := m.cfg.API.Timeout
		return func() tea.Msg {
			ctx, cancel := context.WithTimeout(context.Background(), timeout)
			defer cancel()
			info, err := resolver.Lookup(ctx, id)
			return videoInfoMsg{info: info, err: err}
		}
	}
	return m.open(seg.URL)
}

// open launches the browser, falling back to the clipboard.
func (m Model) open(url string) tea.Cmd {
	opener, copier := m.openURL, m.copy
	return func() tea.Msg {
		if err := opener(url); err != nil {
			log.Debug().Err(err).Str("url", url).Msg("Browser unavailable")
			if err := copier(url); err != nil {
				return statusMsg("Could not open or copy " + url)
			}
			return statusMsg("No browser available; link copied to clipboard")
		}
		return statusMsg("Opened " + url)
	}
}

func (m Model) copyLink(url string) tea.Cmd {
	copier := m.copy
	return func() tea.Msg {
		if err := copier(url); err != nil {
			return statusMsg("Could not copy " + url)
		}
		return statusMsg("Link copied to clipboard")
	}
}

// Messages

type startChatMsg struct{}

type loginDoneMsg struct {
	username string
	token    string
	err      error
}

type pollTickMsg feed.Tick

type feedFetchedMsg struct {
	gen     int
	seq     uint64
	msgs    []feed.Message
	err     error
	elapsed time.Duration
}

type sendDoneMsg struct {
	gen     int
	content string
	err     error
}

type settleScrollMsg struct {
	gen int
}

type scrollFrameMsg struct{}

type videoInfoMsg struct {
	info video.Info
	err  error
}

type statusMsg string

// Key bindings
var keys = struct {
	Quit     key.Binding
	Help     key.Binding
	Escape   key.Binding
	Enter    key.Binding
	Logout   key.Binding
	NextLink key.Binding
	PrevLink key.Binding
	Emoji    key.Binding
	Refresh  key.Binding
	PageUp   key.Binding
	PageDown key.Binding
	Bottom   key.Binding
	Open     key.Binding
	Copy     key.Binding
}{
	Quit:     key.NewBinding(key.WithKeys("ctrl+c")),
	Help:     key.NewBinding(key.WithKeys("f1")),
	Escape:   key.NewBinding(key.WithKeys("esc")),
	Enter:    key.NewBinding(key.WithKeys("enter")),
	Logout:   key.NewBinding(key.WithKeys("ctrl+x")),
	NextLink: key.NewBinding(key.WithKeys("ctrl+n")),
	PrevLink: key.NewBinding(key.WithKeys("ctrl+p")),
	Emoji:    key.NewBinding(key.WithKeys("ctrl+e")),
	Refresh:  key.NewBinding(key.WithKeys("ctrl+r")),
	PageUp:   key.NewBinding(key.WithKeys("pgup")),
	PageDown: key.NewBinding(key.WithKeys("pgdown")),
	Bottom:   key.NewBinding(key.WithKeys("ctrl+end")),
	Open:     key.NewBinding(key.WithKeys("o")),
	Copy:     key.NewBinding(key.WithKeys("y")),
}
