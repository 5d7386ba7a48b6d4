// Command navdemo is a terminal walkthrough of the navigation engine: a
// root stack holding a three-tab group, driven entirely by tree
// operations. It plays the navigator role: it owns the current root,
// serializes intents from key presses, and diffs consecutive roots to
// fire lifecycle teardown.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"navtree"
)

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212"))
	tabStyle      = lipgloss.NewStyle().Padding(0, 2).Foreground(lipgloss.Color("244"))
	activeTab     = lipgloss.NewStyle().Padding(0, 2).Bold(true).Foreground(lipgloss.Color("229")).Background(lipgloss.Color("57"))
	screenStyle   = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(1, 3).Width(44)
	treeStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	statusStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("35"))
	helpStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	gestureStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("208"))
	delegateStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
)

type model struct {
	root        navtree.Node
	gen         navtree.KeyGenerator
	scopes      navtree.ScopeRegistry
	screens     navtree.ScreenLookup
	containers  navtree.ContainerLookup
	transitions *navtree.TransitionManager
	logger      *slog.Logger

	detailSeq    int
	lastStrategy string
	status       string
}

func newModel(logger *slog.Logger) *model {
	m := &model{
		gen:    navtree.NewKeyGenerator(),
		logger: logger,
	}

	m.scopes = navtree.NewScopeRegistry().
		Bind("feed", "main").
		Bind("search", "main").
		Bind("profile", "main").
		Bind("detail", "main")

	base := navtree.NewScreenRegistry().
		Register("feed", func(d navtree.Destination) string { return "Latest posts from everyone you follow." }).
		Register("search", func(d navtree.Destination) string { return "Type to search. (Not really: this is a demo.)" }).
		Register("profile", func(d navtree.Destination) string { return "Your profile. Looking good today." })
	extra := navtree.NewScreenRegistry().
		Register("settings", func(d navtree.Destination) string { return "Settings live above the tab scope." })
	m.screens = navtree.Merge[string, navtree.ScreenRenderer](base, extra)

	m.containers = navtree.NewContainerRegistry().
		Register("main", mainTabGroup)

	m.transitions = navtree.NewTransitionManager(func() {
		m.applyBack()
	})

	m.root = m.buildTree()
	if scr, ok := navtree.ActiveScreen(m.root); ok {
		scr.Lifecycle().AttachToUI()
	}
	return m
}

// mainTabGroup is the container factory for the "main" scope: the
// three-tab group every session starts in.
func mainTabGroup(gen navtree.KeyGenerator, parentKey navtree.NodeKey, _ navtree.Destination) (navtree.Node, error) {
	tabs := []struct{ route, label string }{
		{"feed", "Feed"},
		{"search", "Search"},
		{"profile", "Profile"},
	}
	stacks := make([]*navtree.StackNode, len(tabs))
	meta := make([]navtree.TabMetadata, len(tabs))
	for i, tb := range tabs {
		screen := navtree.NewScreenNode(gen(), "", navtree.Destination{Route: tb.route})
		stacks[i] = navtree.NewStackNode(gen(), "", screen)
		meta[i] = navtree.TabMetadata{Label: tb.label, Route: tb.route}
	}
	tab, err := navtree.NewTabNode(gen(), parentKey, 0, stacks...)
	if err != nil {
		return nil, err
	}
	return tab.WithScope("main").WithMetadata(meta...), nil
}

func (m *model) buildTree() navtree.Node {
	factory, ok := m.containers.Get("main")
	if !ok {
		m.logger.Error("no container factory for the main scope")
		os.Exit(1)
	}
	group, err := factory(m.gen, "", navtree.Destination{Route: "feed"})
	if err != nil {
		m.logger.Error("building tab group", "err", err)
		os.Exit(1)
	}
	return navtree.NewStackNode(m.gen(), "", group)
}

func (m *model) Init() tea.Cmd {
	return nil
}

// apply installs a new root, diffing against the old one so removed
// nodes are detached and destroyed, and moves the displayed flag from
// the outgoing active screen to the incoming one.
func (m *model) apply(next navtree.Node) {
	if next == nil || next == m.root {
		return
	}
	prev, hadPrev := navtree.ActiveScreen(m.root)
	navtree.ComputeDiff(m.root, next).DetachRemoved()
	m.root = next
	cur, ok := navtree.ActiveScreen(m.root)
	if hadPrev && (!ok || prev.Key() != cur.Key()) &&
		prev.Lifecycle().State() == navtree.LifecycleDisplayed {
		prev.Lifecycle().DetachFromUI()
	}
	if ok {
		cur.Lifecycle().AttachToUI()
	}
}

func (m *model) applyBack() bool {
	res := navtree.HandleBack(m.root, false)
	switch res.Status {
	case navtree.BackHandled:
		m.apply(res.Tree)
		m.status = "back handled in tree"
		return true
	case navtree.BackDelegateToSystem:
		m.status = delegateStyle.Render("back delegated to system")
		return false
	default:
		m.status = "back: nothing to do"
		return false
	}
}

func (m *model) push(route string) {
	dest := navtree.Destination{Route: route}
	next, strategy, err := navtree.PushWithOptions(m.root, dest, m.gen, navtree.PushOptions{Scopes: m.scopes})
	if err != nil {
		m.logger.Error("push failed", "route", route, "err", err)
		m.status = "push failed: " + err.Error()
		return
	}
	m.apply(next)
	m.lastStrategy = strategy.String()
	m.status = fmt.Sprintf("pushed %s (%s)", route, strategy)
	m.logger.Info("pushed", "route", route, "strategy", strategy.String())
}

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	state := m.transitions.State()
	if state.Phase == navtree.TransitionPredictiveBack {
		switch key.String() {
		case "]":
			m.transitions.UpdatePredictiveBack(state.Progress+0.1, 0.5, 0.5)
		case "[":
			m.transitions.UpdatePredictiveBack(state.Progress-0.1, 0.5, 0.5)
		case "enter", "y":
			m.transitions.CommitPredictiveBack()
		default:
			m.transitions.CancelPredictiveBack()
			m.status = "gesture cancelled, nothing changed"
		}
		return m, nil
	}

	switch key.String() {
	case "q", "ctrl+c":
		return m, tea.Quit

	case "1", "2", "3":
		idx := int(key.String()[0] - '1')
		next, err := navtree.SwitchActiveTab(m.root, idx)
		if err != nil {
			m.status = err.Error()
			return m, nil
		}
		m.apply(next)
		m.status = fmt.Sprintf("switched to tab %d", idx+1)

	case "enter":
		m.detailSeq++
		m.push(fmt.Sprintf("detail/%d", m.detailSeq))

	case "s":
		// "settings" has no binding in the "main" scope, so the push
		// escapes the tab group and lands on the root stack.
		m.push("settings")

	case "r":
		next, err := navtree.ReplaceCurrent(m.root, navtree.Destination{Route: "feed"}, m.gen)
		if err != nil {
			m.status = err.Error()
			return m, nil
		}
		m.apply(next)
		m.status = "replaced top entry"

	case "c":
		next, err := navtree.ClearAndPush(m.root, navtree.Destination{Route: "feed"}, m.gen)
		if err != nil {
			m.status = err.Error()
			return m, nil
		}
		m.apply(next)
		m.status = "cleared active stack"

	case "g":
		if !navtree.CanGoBack(m.root) {
			m.status = "nothing behind the current screen"
			return m, nil
		}
		m.transitions.StartPredictiveBack(m.root)
		m.status = "gesture started: ]/[ drag, enter commit, any other key cancels"

	case "esc", "backspace":
		m.applyBack()
	}
	return m, nil
}

func (m *model) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("navtree demo"))
	b.WriteString("\n\n")
	b.WriteString(m.renderTabBar())
	b.WriteString("\n")
	b.WriteString(m.renderActiveScreen())
	b.WriteString("\n")
	b.WriteString(treeStyle.Render(renderOutline(m.root, 0)))
	b.WriteString("\n")

	if state := m.transitions.State(); state.Phase == navtree.TransitionPredictiveBack {
		bar := int(state.Progress * 20)
		b.WriteString(gestureStyle.Render(fmt.Sprintf("predictive back [%-20s] %.0f%%",
			strings.Repeat("=", bar), state.Progress*100)))
		b.WriteString("\n")
	}
	if m.status != "" {
		b.WriteString(statusStyle.Render(m.status))
		b.WriteString("\n")
	}
	b.WriteString(helpStyle.Render("1-3 tabs · enter push · s settings · r replace · c clear · esc back · g gesture · q quit"))
	b.WriteString("\n")
	return b.String()
}

func (m *model) renderTabBar() string {
	tab, ok := activeTabNode(m.root)
	if !ok {
		return ""
	}
	parts := make([]string, 0, len(tab.Stacks()))
	meta := tab.Metadata()
	for i := range tab.Stacks() {
		label := fmt.Sprintf("tab %d", i+1)
		if i < len(meta) {
			label = meta[i].Label
		}
		if i == tab.ActiveStackIndex() {
			parts = append(parts, activeTab.Render(label))
		} else {
			parts = append(parts, tabStyle.Render(label))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

func (m *model) renderActiveScreen() string {
	scr, ok := navtree.ActiveScreen(m.root)
	if !ok {
		return screenStyle.Render("(empty stack)")
	}
	dest := scr.Destination()
	body := "No renderer registered for " + dest.Route
	if render, ok := m.screens.Get(dest.Kind()); ok {
		body = render(dest)
	}
	header := titleStyle.Render(dest.Route)
	back := ""
	if navtree.CanGoBack(m.root) {
		back = helpStyle.Render("\n\n← back available")
	}
	return screenStyle.Render(header + "\n\n" + body + back)
}

// activeTabNode finds the tab group on the active path, if any.
func activeTabNode(root navtree.Node) (*navtree.TabNode, bool) {
	var found *navtree.TabNode
	for _, n := range navtree.ActivePath(root) {
		if tab, ok := n.(*navtree.TabNode); ok {
			found = tab
		}
	}
	return found, found != nil
}

// renderOutline draws the tree shape for the side readout.
func renderOutline(n navtree.Node, depth int) string {
	if n == nil {
		return ""
	}
	indent := strings.Repeat("  ", depth)
	var b strings.Builder
	switch t := n.(type) {
	case *navtree.ScreenNode:
		fmt.Fprintf(&b, "%s· %s\n", indent, t.Destination().Route)
	case *navtree.StackNode:
		fmt.Fprintf(&b, "%sstack (%d)\n", indent, t.Len())
		for _, child := range t.Children() {
			b.WriteString(renderOutline(child, depth+1))
		}
	case *navtree.TabNode:
		fmt.Fprintf(&b, "%stabs (active %d)\n", indent, t.ActiveStackIndex())
		for _, st := range t.Stacks() {
			b.WriteString(renderOutline(st, depth+1))
		}
	case *navtree.PaneNode:
		fmt.Fprintf(&b, "%spanes (active %s)\n", indent, t.ActivePaneRole())
		for role, cfg := range t.Configurations() {
			fmt.Fprintf(&b, "%s  [%s]\n", indent, role)
			b.WriteString(renderOutline(cfg.Content, depth+2))
		}
	}
	return b.String()
}

func main() {
	logFile, err := os.OpenFile("navdemo.log", os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer logFile.Close()
	logger := slog.New(slog.NewTextHandler(logFile, nil))

	if _, err := tea.NewProgram(newModel(logger), tea.WithAltScreen()).Run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
