// Command panedemo is an adaptive two-pane recipe browser. A pane node
// holds the recipe list (primary) and a reader stack (supporting); the
// window can be flipped between expanded and compact to watch back
// handling collapse the supporting pane instead of popping it.
package main

import (
	_ "embed"
	"fmt"
	"log/slog"
	"os"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"navtree"
)

//go:embed recipes.toml
var recipesTOML []byte

type catalog struct {
	Title   string            `toml:"title"`
	Recipes []recipe          `toml:"recipe"`
	Tags    map[string]string `toml:"tags"`
}

type recipe struct {
	ID      string `toml:"id"`
	Name    string `toml:"name"`
	Minutes int    `toml:"minutes"`
	Summary string `toml:"summary"`
	Tag     string `toml:"tag"`
}

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212"))
	paneStyle     = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 2).Width(36)
	focusedPane   = paneStyle.BorderForeground(lipgloss.Color("212"))
	selectedStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	dimStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	statusStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("35"))
	helpStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

const paneKey navtree.NodeKey = "recipes-pane"

type model struct {
	catalog catalog
	root    navtree.Node
	gen     navtree.KeyGenerator
	results *navtree.ResultManager
	logger  *slog.Logger

	listScreenKey navtree.NodeKey
	pendingTag    <-chan any
	isCompact     bool
	cursor        int
	tagFilter     string
	status        string
}

func newModel(cat catalog, logger *slog.Logger) *model {
	m := &model{
		catalog: cat,
		gen:     navtree.NewKeyGenerator(),
		results: navtree.NewResultManager(),
		logger:  logger,
	}
	m.root = m.buildTree()
	return m
}

func (m *model) buildTree() navtree.Node {
	list := navtree.NewScreenNode(m.gen(), "", navtree.Destination{Route: "list"})
	m.listScreenKey = list.Key()
	configs := map[navtree.PaneRole]navtree.PaneConfiguration{
		navtree.PaneRolePrimary: {
			Content: navtree.NewStackNode(m.gen(), "", list),
			Adapt:   navtree.AdaptStrategyReflow,
		},
		navtree.PaneRoleSupporting: {
			Content: navtree.NewStackNode(m.gen(), ""),
			Adapt:   navtree.AdaptStrategyHide,
		},
	}
	pane, err := navtree.NewPaneNode(paneKey, "", navtree.PaneRolePrimary, configs)
	if err != nil {
		m.logger.Error("building pane node", "err", err)
		os.Exit(1)
	}
	return navtree.NewStackNode(m.gen(), "", pane.WithBackBehavior(navtree.BackBehaviorPopUntilScaffoldChange))
}

func (m *model) Init() tea.Cmd {
	return nil
}

func (m *model) apply(next navtree.Node) {
	if next == nil || next == m.root {
		return
	}
	navtree.ComputeDiff(m.root, next).DetachRemoved()
	m.root = next
}

func (m *model) pane() *navtree.PaneNode {
	n, _ := navtree.FindNode(m.root, paneKey)
	pane, _ := n.(*navtree.PaneNode)
	return pane
}

func (m *model) filtered() []recipe {
	if m.tagFilter == "" {
		return m.catalog.Recipes
	}
	out := make([]recipe, 0, len(m.catalog.Recipes))
	for _, r := range m.catalog.Recipes {
		if r.Tag == m.tagFilter {
			out = append(out, r)
		}
	}
	return out
}

func (m *model) openRecipe(r recipe) {
	next, err := navtree.NavigateToPane(m.root, paneKey, navtree.PaneRoleSupporting,
		navtree.Destination{Route: "recipe/" + r.ID}, m.isCompact, m.gen)
	if err != nil {
		m.status = err.Error()
		return
	}
	m.apply(next)
	m.status = "opened " + r.Name
	m.logger.Info("opened recipe", "id", r.ID, "compact", m.isCompact)
}

// openTagPicker pushes the picker screen and registers a pending result
// for the list screen. The picker delivers a tag (or nil) back via the
// result manager when it closes.
func (m *model) openTagPicker() {
	if m.results.HasPending(m.listScreenKey) {
		return
	}
	ch := m.results.RequestResult(m.listScreenKey)
	next, err := navtree.NavigateToPane(m.root, paneKey, navtree.PaneRoleSupporting,
		navtree.Destination{Route: "tags"}, true, m.gen)
	if err != nil {
		m.results.CancelResult(m.listScreenKey)
		<-ch
		m.status = err.Error()
		return
	}
	m.pendingTag = ch
	m.apply(next)
	m.status = "pick a tag"
}

// closeTagPicker completes the pending result slot held since the picker
// opened, pops the picker screen, and consumes the delivered tag. The
// slot's channel is buffered, so the receive never blocks once the slot
// has been completed or cancelled.
func (m *model) closeTagPicker(tag string, cancelled bool) {
	if m.pendingTag == nil {
		return
	}
	if cancelled {
		m.results.CancelResult(m.listScreenKey)
	} else {
		m.results.CompleteResult(m.listScreenKey, tag)
	}
	res, err := navtree.PopPaneAdaptive(m.root, paneKey, m.isCompact)
	if err == nil && res.Tree != nil {
		m.apply(res.Tree)
	}

	got := <-m.pendingTag
	m.pendingTag = nil
	if got == nil {
		m.status = "filter unchanged"
		return
	}
	m.tagFilter = got.(string)
	m.cursor = 0
	m.status = "filtering by " + m.catalog.Tags[m.tagFilter]
}

func (m *model) back() (tea.Model, tea.Cmd) {
	res := navtree.HandleBack(m.root, m.isCompact)
	switch res.Status {
	case navtree.BackHandled:
		m.apply(res.Tree)
		m.status = "back handled"
	case navtree.BackDelegateToSystem:
		return m, tea.Quit
	default:
		m.status = "back: nothing to do"
	}
	return m, nil
}

func (m *model) activeRoute() string {
	scr, ok := navtree.ActiveScreen(m.root)
	if !ok {
		return ""
	}
	return scr.Destination().Route
}

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	if m.activeRoute() == "tags" {
		switch s := key.String(); s {
		case "esc", "q":
			m.closeTagPicker("", true)
		case "0":
			m.tagFilter = ""
			m.closeTagPicker("", true)
			m.status = "filter cleared"
		default:
			tags := sortedTags(m.catalog.Tags)
			if i := int(s[0] - '1'); len(s) == 1 && i >= 0 && i < len(tags) {
				m.closeTagPicker(tags[i], false)
			}
		}
		return m, nil
	}

	switch key.String() {
	case "q", "ctrl+c":
		return m, tea.Quit

	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.filtered())-1 {
			m.cursor++
		}

	case "enter":
		if rs := m.filtered(); m.cursor < len(rs) {
			m.openRecipe(rs[m.cursor])
		}

	case "tab":
		pane := m.pane()
		if pane == nil {
			return m, nil
		}
		role := navtree.PaneRoleSupporting
		if pane.ActivePaneRole() == navtree.PaneRoleSupporting {
			role = navtree.PaneRolePrimary
		}
		next, err := navtree.SwitchActivePane(m.root, paneKey, role)
		if err != nil {
			m.status = err.Error()
			return m, nil
		}
		m.apply(next)
		m.status = "focused " + string(role)

	case "t":
		m.openTagPicker()

	case "w":
		m.isCompact = !m.isCompact
		if m.isCompact {
			m.status = "compact window: only the focused pane shows"
		} else {
			m.status = "expanded window: panes sit side by side"
		}

	case "esc", "backspace":
		return m.back()
	}
	return m, nil
}

func (m *model) View() string {
	pane := m.pane()
	if pane == nil {
		return "pane layout dismissed\n"
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render(m.catalog.Title))
	if m.tagFilter != "" {
		b.WriteString(dimStyle.Render("  · " + m.catalog.Tags[m.tagFilter]))
	}
	b.WriteString("\n\n")

	list := m.renderList(pane.ActivePaneRole() == navtree.PaneRolePrimary)
	reader := m.renderReader(pane, pane.ActivePaneRole() == navtree.PaneRoleSupporting)
	if m.isCompact {
		if pane.ActivePaneRole() == navtree.PaneRoleSupporting {
			b.WriteString(reader)
		} else {
			b.WriteString(list)
		}
	} else {
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, list, " ", reader))
	}
	b.WriteString("\n")

	if m.status != "" {
		b.WriteString(statusStyle.Render(m.status))
		b.WriteString("\n")
	}
	b.WriteString(helpStyle.Render("j/k move · enter open · tab focus · t filter · w compact · esc back · q quit"))
	b.WriteString("\n")
	return b.String()
}

func (m *model) renderList(focused bool) string {
	var b strings.Builder
	for i, r := range m.filtered() {
		line := fmt.Sprintf("%s  %dm", r.Name, r.Minutes)
		if i == m.cursor {
			line = selectedStyle.Render("> " + line)
		} else {
			line = "  " + line
		}
		b.WriteString(line)
		b.WriteString("\n")
	}
	if b.Len() == 0 {
		b.WriteString(dimStyle.Render("no recipes match"))
	}
	style := paneStyle
	if focused {
		style = focusedPane
	}
	return style.Render(strings.TrimRight(b.String(), "\n"))
}

func (m *model) renderReader(pane *navtree.PaneNode, focused bool) string {
	style := paneStyle
	if focused {
		style = focusedPane
	}
	cfg, _ := pane.Configuration(navtree.PaneRoleSupporting)
	st := cfg.Content.(*navtree.StackNode)
	top, ok := st.ActiveChild()
	if !ok {
		return style.Render(dimStyle.Render("select a recipe"))
	}
	scr, ok := navtree.AsScreen(top)
	if !ok {
		return style.Render(dimStyle.Render("(non-screen content)"))
	}

	route := scr.Destination().Route
	if route == "tags" {
		var b strings.Builder
		b.WriteString(titleStyle.Render("Filter by tag"))
		b.WriteString("\n\n")
		for i, tag := range sortedTags(m.catalog.Tags) {
			fmt.Fprintf(&b, "%d  %s\n", i+1, m.catalog.Tags[tag])
		}
		b.WriteString(dimStyle.Render("0 clear · esc cancel"))
		return style.Render(b.String())
	}

	id := strings.TrimPrefix(route, "recipe/")
	for _, r := range m.catalog.Recipes {
		if r.ID == id {
			depth := ""
			if st.Len() > 1 {
				depth = dimStyle.Render(fmt.Sprintf("\n\nreader depth %d", st.Len()))
			}
			return style.Render(titleStyle.Render(r.Name) + "\n\n" + r.Summary +
				"\n\n" + dimStyle.Render(fmt.Sprintf("%d minutes · %s", r.Minutes, m.catalog.Tags[r.Tag])) + depth)
		}
	}
	return style.Render(dimStyle.Render("unknown recipe " + id))
}

func sortedTags(tags map[string]string) []string {
	keys := make([]string, 0, len(tags))
	for k := range tags {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func main() {
	logFile, err := os.OpenFile("panedemo.log", os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer logFile.Close()
	logger := slog.New(slog.NewTextHandler(logFile, nil))

	var cat catalog
	if err := toml.Unmarshal(recipesTOML, &cat); err != nil {
		fmt.Fprintln(os.Stderr, "parsing recipe catalog:", err)
		os.Exit(1)
	}

	if _, err := tea.NewProgram(newModel(cat, logger), tea.WithAltScreen()).Run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
