package tui

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/lynplan/lynplan/internal/config"
	"github.com/lynplan/lynplan/internal/course"
	"github.com/lynplan/lynplan/internal/match"
	"github.com/lynplan/lynplan/internal/normalize"
	"github.com/lynplan/lynplan/internal/requirements"
	"github.com/lynplan/lynplan/internal/service"
)

// App ties together views.
type App struct {
	ctx          context.Context
	services     Services
	cfg          config.Config
	state        appState
	courses      []course.Resolved
	progress     *requirements.AllProgress
	system       int // index into systems
	courseCursor int
	status       string
	modal        modalState
	inputBuffer  string
	suggestions  []match.Candidate
	pickCursor   int
	yearCursor   int
	editingName  string
	scanPath     string
	lastScan     *service.ScanResult
	apiKeyCached string
	showAPIKey   bool
}

type Services struct {
	Plan *service.PlanService
	Scan *service.ScanService
}

type appState string

const (
	viewPlan         appState = "plan"
	viewRequirements appState = "requirements"
	viewScan         appState = "scan"
	viewSettings     appState = "settings"
)

type modalState string

const (
	modalNone         modalState = ""
	modalAddCourse    modalState = "addCourse"
	modalYearPicker   modalState = "yearPicker"
	modalConfirmClear modalState = "confirmClear"
	modalEditAPIKey   modalState = "editAPIKey"
)

var systems = []string{"Lynbrook", "UC A-G", "CSU A-G"}

var years = []int{9, 10, 11, 12}

func New(ctx context.Context, cfg config.Config, services Services) *App {
	return &App{
		ctx:          ctx,
		services:     services,
		cfg:          cfg,
		state:        viewPlan,
		scanPath:     "plan.jpg",
		apiKeyCached: cfg.LLM.ResolveAPIKey(),
	}
}

func (a *App) Init() tea.Cmd {
	return tea.Batch(a.loadPlan(), a.loadProgress())
}

func (a *App) loadPlan() tea.Cmd {
	return func() tea.Msg {
		list, err := a.services.Plan.List(a.ctx)
		if err != nil {
			return errMsg{err}
		}
		return planMsg(list)
	}
}

func (a *App) loadProgress() tea.Cmd {
	return func() tea.Msg {
		all, err := a.services.Plan.Progress(a.ctx)
		if err != nil {
			return errMsg{err}
		}
		return progressMsg(all)
	}
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch m := msg.(type) {
	case tea.KeyMsg:
		if a.modal != modalNone {
			return a.handleModalKey(m)
		}
		if a.state == viewScan {
			return a.handleScanKey(m)
		}
		if a.state == viewSettings {
			return a.handleSettingsKey(m)
		}
		switch m.String() {
		case "q", "ctrl+c":
			return a, tea.Quit
		case "c":
			a.state = viewPlan
		case "r":
			a.state = viewRequirements
		case "s":
			a.state = viewScan
			a.status = ""
		case "p":
			a.state = viewSettings
			a.status = ""
		case "tab":
			if a.state == viewRequirements {
				a.system = (a.system + 1) % len(systems)
			}
		case "up", "k":
			if a.state == viewPlan && a.courseCursor > 0 {
				a.courseCursor--
			}
		case "down", "j":
			if a.state == viewPlan && a.courseCursor < len(a.courses)-1 {
				a.courseCursor++
			}
		case "a":
			if a.state == viewPlan {
				a.modal = modalAddCourse
				a.inputBuffer = ""
				a.suggestions = nil
				a.pickCursor = -1
			}
		case "y":
			if a.state == viewPlan && len(a.courses) > 0 {
				a.modal = modalYearPicker
				a.editingName = a.courses[a.courseCursor].Name
				a.yearCursor = 0
			}
		case "backspace", "delete":
			if a.state == viewPlan && len(a.courses) > 0 {
				return a, a.removeCourseCmd(a.courses[a.courseCursor].Name)
			}
		case "x":
			if a.state == viewPlan {
				a.modal = modalConfirmClear
			}
		}
	case planMsg:
		a.courses = []course.Resolved(m)
		if a.courseCursor >= len(a.courses) {
			a.courseCursor = 0
		}
	case progressMsg:
		all := requirements.AllProgress(m)
		a.progress = &all
	case statusMsg:
		a.status = string(m)
	case errMsg:
		a.status = "error: " + m.Error()
	case scanDoneMsg:
		a.lastScan = &m.Result
		a.status = fmt.Sprintf("scan found %d courses", len(m.Result.Courses))
		a.state = viewPlan
		return a, tea.Batch(a.loadPlan(), a.loadProgress())
	}
	return a, nil
}

func (a *App) View() string {
	var body string
	switch a.state {
	case viewRequirements:
		body = a.renderRequirements()
	case viewScan:
		body = a.renderScan()
	case viewSettings:
		body = a.renderSettings()
	default:
		body = a.renderPlan()
	}
	if a.modal != modalNone {
		body += "\n\n" + a.renderModal()
	}
	return body
}

// commands

func (a *App) addCourseCmd(name string) tea.Cmd {
	return tea.Batch(
		func() tea.Msg {
			added, err := a.services.Plan.Add(a.ctx, name, 0, 0)
			if err != nil {
				return errMsg{err}
			}
			return statusMsg(fmt.Sprintf("added %s (%d credits, %s)", added.Name, added.Credits, added.Category))
		},
		a.loadPlan(),
		a.loadProgress(),
	)
}

func (a *App) removeCourseCmd(name string) tea.Cmd {
	return tea.Batch(
		func() tea.Msg {
			removed, err := a.services.Plan.Remove(a.ctx, name)
			if err != nil {
				return errMsg{err}
			}
			if !removed {
				return statusMsg("course not in plan")
			}
			return statusMsg("removed " + name)
		},
		a.loadPlan(),
		a.loadProgress(),
	)
}

func (a *App) setYearCmd(name string, year int) tea.Cmd {
	return tea.Batch(
		func() tea.Msg {
			moved, err := a.services.Plan.SetYear(a.ctx, name, year)
			if err != nil {
				return errMsg{err}
			}
			if !moved {
				return statusMsg("course not in plan")
			}
			return statusMsg(fmt.Sprintf("%s moved to grade %d", name, year))
		},
		a.loadPlan(),
		a.loadProgress(),
	)
}

func (a *App) clearPlanCmd() tea.Cmd {
	return tea.Batch(
		func() tea.Msg {
			if err := a.services.Plan.Clear(a.ctx); err != nil {
				return errMsg{err}
			}
			a.courseCursor = 0
			return statusMsg("plan cleared")
		},
		a.loadPlan(),
		a.loadProgress(),
	)
}

func (a *App) scanCmd(path string) tea.Cmd {
	abs := path
	if !filepath.IsAbs(path) {
		if p, err := filepath.Abs(path); err == nil {
			abs = p
		}
	}
	a.status = "scanning..."
	if a.services.Scan == nil {
		return func() tea.Msg { return errMsg{fmt.Errorf("scan service not configured")} }
	}
	return tea.Batch(
		func() tea.Msg {
			data, err := os.ReadFile(abs)
			if err != nil {
				return errMsg{fmt.Errorf("read %s: %w", abs, err)}
			}
			res, err := a.services.Scan.Scan(a.ctx, data, mimeFor(abs))
			if err != nil {
				return errMsg{err}
			}
			if err := a.services.Plan.ReplaceFromScan(a.ctx, res.Courses); err != nil {
				return errMsg{err}
			}
			return scanDoneMsg{Result: res}
		},
	)
}

func mimeFor(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		return "image/png"
	case ".webp":
		return "image/webp"
	default:
		return "image/jpeg"
	}
}

func (a *App) saveAPIKeyCmd(key string) tea.Cmd {
	return func() tea.Msg {
		a.cfg.LLM.APIKey = strings.TrimSpace(key)
		if err := config.Save(a.cfg); err != nil {
			return errMsg{err}
		}
		a.apiKeyCached = a.cfg.LLM.APIKey
		return statusMsg("API key saved to config (restart to apply)")
	}
}

// key handling

func (a *App) handleScanKey(m tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.String() {
	case "q", "ctrl+c":
		return a, tea.Quit
	}
	switch m.Type {
	case tea.KeyEsc:
		a.state = viewPlan
		a.status = ""
	case tea.KeyEnter:
		path := strings.TrimSpace(a.scanPath)
		if path == "" {
			a.status = "enter an image path"
			return a, nil
		}
		return a, a.scanCmd(path)
	case tea.KeyBackspace, tea.KeyCtrlH, tea.KeyDelete:
		if len(a.scanPath) > 0 {
			a.scanPath = a.scanPath[:len(a.scanPath)-1]
		}
	case tea.KeySpace:
		a.scanPath += " "
	case tea.KeyRunes:
		a.scanPath += string(m.Runes)
	}
	return a, nil
}

func (a *App) handleModalKey(m tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch a.modal {
	case modalYearPicker:
		switch m.String() {
		case "esc":
			a.modal = modalNone
		case "up", "k":
			if a.yearCursor > 0 {
				a.yearCursor--
			}
		case "down", "j":
			if a.yearCursor < len(years)-1 {
				a.yearCursor++
			}
		case "enter":
			name := a.editingName
			a.modal = modalNone
			a.editingName = ""
			return a, a.setYearCmd(name, years[a.yearCursor])
		}
	case modalConfirmClear:
		switch m.String() {
		case "y", "Y":
			a.modal = modalNone
			return a, a.clearPlanCmd()
		case "n", "N", "esc":
			a.modal = modalNone
		}
	case modalAddCourse:
		switch m.String() {
		case "up":
			if a.pickCursor > -1 {
				a.pickCursor--
			}
			return a, nil
		case "down":
			if a.pickCursor < len(a.suggestions)-1 {
				a.pickCursor++
			}
			return a, nil
		}
		switch m.Type {
		case tea.KeyEsc:
			a.modal = modalNone
			a.inputBuffer = ""
			a.suggestions = nil
		case tea.KeyEnter:
			text := strings.TrimSpace(a.inputBuffer)
			if a.pickCursor >= 0 && a.pickCursor < len(a.suggestions) {
				text = a.suggestions[a.pickCursor].Course.Name
			}
			if text == "" {
				a.status = "type a course name"
				return a, nil
			}
			a.modal = modalNone
			a.inputBuffer = ""
			a.suggestions = nil
			return a, a.addCourseCmd(text)
		case tea.KeyBackspace, tea.KeyCtrlH, tea.KeyDelete:
			if len(a.inputBuffer) > 0 {
				a.inputBuffer = a.inputBuffer[:len(a.inputBuffer)-1]
			}
			a.refreshSuggestions()
		case tea.KeySpace:
			a.inputBuffer += " "
			a.refreshSuggestions()
		case tea.KeyRunes:
			a.inputBuffer += string(m.Runes)
			a.refreshSuggestions()
		}
	case modalEditAPIKey:
		switch m.Type {
		case tea.KeyEsc:
			a.modal = modalNone
			a.inputBuffer = ""
		case tea.KeyEnter:
			text := strings.TrimSpace(a.inputBuffer)
			if text == "" {
				a.status = "enter a value"
				return a, nil
			}
			a.modal = modalNone
			a.inputBuffer = ""
			return a, a.saveAPIKeyCmd(text)
		case tea.KeyBackspace, tea.KeyCtrlH, tea.KeyDelete:
			if len(a.inputBuffer) > 0 {
				a.inputBuffer = a.inputBuffer[:len(a.inputBuffer)-1]
			}
		case tea.KeySpace:
			a.inputBuffer += " "
		case tea.KeyRunes:
			a.inputBuffer += string(m.Runes)
		}
	}
	return a, nil
}

// refreshSuggestions recomputes the picker list from the current query.
func (a *App) refreshSuggestions() {
	a.pickCursor = -1
	query := strings.TrimSpace(a.inputBuffer)
	if len(query) < 2 {
		a.suggestions = nil
		return
	}
	a.suggestions = a.services.Plan.Resolver.Matcher.FindTop(normalize.Normalize(query), 5)
}

func (a *App) handleSettingsKey(m tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.String() {
	case "q", "ctrl+c":
		return a, tea.Quit
	case "esc", "c":
		a.state = viewPlan
		a.status = ""
	case "r":
		a.state = viewRequirements
	case "e":
		a.modal = modalEditAPIKey
		a.inputBuffer = a.apiKeyCached
	case "v":
		a.showAPIKey = !a.showAPIKey
	}
	return a, nil
}

// messages

type planMsg []course.Resolved

type progressMsg requirements.AllProgress

type statusMsg string

type errMsg struct{ error }

type scanDoneMsg struct {
	Result service.ScanResult
}

// styles
var (
	titleStyle = lipgloss.NewStyle().Bold(true).Underline(true)
	doneStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	warnStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
)

func (a *App) renderPlan() string {
	title := titleStyle.Render("4-Year Plan")
	out := title + "\n"
	if len(a.courses) == 0 {
		out += "(no courses yet - scan a planning sheet or add manually)\n"
	}
	lastYear := -1
	for i, c := range a.courses {
		if c.Year != lastYear {
			lastYear = c.Year
			out += yearHeading(c.Year) + "\n"
		}
		marker := " "
		if i == a.courseCursor {
			marker = "▶"
		}
		flags := ""
		if c.AGDesignator != "" {
			flags = " (" + c.AGDesignator + ")"
		}
		if c.ManuallyAdded {
			flags += " +"
		}
		out += fmt.Sprintf("%s %-40s %3d cr  %s%s\n", marker, c.Name, c.Credits, c.Category, flags)
	}
	out += "[a] Add  [y] Set year  [del] Remove  [x] Clear  [r] Requirements  [s] Scan  [p] Settings  [q] Quit"
	if a.status != "" {
		out += "\n" + a.status
	}
	return out
}

func yearHeading(year int) string {
	if year == 0 {
		return "Unassigned:"
	}
	return fmt.Sprintf("Grade %d:", year)
}

func (a *App) renderRequirements() string {
	title := titleStyle.Render("Graduation Requirements - " + systems[a.system])
	if a.progress == nil {
		return title + "\n(loading)"
	}
	var p requirements.Progress
	switch a.system {
	case 1:
		p = a.progress.UC
	case 2:
		p = a.progress.CSU
	default:
		p = a.progress.Lynbrook
	}

	out := title + "\n"
	verdict := warnStyle.Render("NOT MET")
	if p.MeetsRequirements {
		verdict = doneStyle.Render("MET")
	}
	out += fmt.Sprintf("Total: %.1f / %.0f %s  [%s]\n\n", p.TotalEarned, p.TotalRequired, p.Unit, verdict)
	for _, cat := range p.Categories {
		mark := " "
		if cat.Earned >= cat.Required {
			mark = doneStyle.Render("✓")
		}
		out += fmt.Sprintf("%s %-34s %6.1f / %-5.1f", mark, cat.Name, cat.Earned, cat.Required)
		if cat.Note != "" {
			out += "  " + cat.Note
		}
		out += "\n"
	}
	for _, w := range p.Warnings {
		out += warnStyle.Render("! "+w) + "\n"
	}
	out += "\n[tab] Next system  [c] Plan  [s] Scan  [p] Settings  [q] Quit"
	if a.status != "" {
		out += "\n" + a.status
	}
	return out
}

func (a *App) renderScan() string {
	title := titleStyle.Render("Scan Planning Sheet")
	body := fmt.Sprintf("Image path: %s\nType a path to a photo of the 4-year planning sheet and press Enter.\nThe scan REPLACES the stored plan.\n[enter] Scan  [esc] Back  [q] Quit", a.scanPath)
	if a.apiKeyCached == "" {
		body += "\n" + warnStyle.Render("! no API key configured - set one in Settings or via "+a.cfg.LLM.APIKeyEnv)
	}
	if a.lastScan != nil {
		body += fmt.Sprintf("\nLast scan: %d courses", len(a.lastScan.Courses))
		dropped := 0
		for _, d := range a.lastScan.Diagnostics {
			if d.Outcome == service.OutcomeDropped {
				dropped++
			}
		}
		if dropped > 0 {
			body += fmt.Sprintf(", %d entries unmatched", dropped)
		}
	}
	if a.status != "" {
		body += "\n" + a.status
	}
	return fmt.Sprintf("%s\n%s", title, body)
}

func (a *App) renderSettings() string {
	title := titleStyle.Render("Settings")
	out := title + "\n"
	apiValue := "(not set)"
	if a.apiKeyCached != "" {
		if a.showAPIKey {
			apiValue = a.apiKeyCached
		} else {
			apiValue = strings.Repeat("*", len(a.apiKeyCached))
		}
	}
	out += fmt.Sprintf("OpenAI API key (%s): %s\n", a.cfg.LLM.APIKeyEnv, apiValue)
	out += "[e] Edit API key (stored in config)  [v] Toggle visibility\n"
	out += fmt.Sprintf("Database: %s\n", a.cfg.Database.Path)
	out += "\n[c] Plan  [r] Requirements  [q] Quit"
	if a.status != "" {
		out += "\n" + a.status
	}
	return out
}

func (a *App) renderModal() string {
	switch a.modal {
	case modalAddCourse:
		out := titleStyle.Render("Add course") + fmt.Sprintf("\n> %s\n", a.inputBuffer)
		for i, cand := range a.suggestions {
			marker := " "
			if i == a.pickCursor {
				marker = "▶"
			}
			out += fmt.Sprintf("%s %-40s %.2f\n", marker, cand.Course.Name, cand.Score)
		}
		out += "[↑/↓] Pick  [enter] Add  [esc] Cancel"
		return out
	case modalYearPicker:
		out := titleStyle.Render("Move "+a.editingName+" to grade") + "\n"
		for i, y := range years {
			marker := " "
			if i == a.yearCursor {
				marker = "▶"
			}
			out += fmt.Sprintf("%s Grade %d\n", marker, y)
		}
		out += "[enter] Select  [esc] Cancel"
		return out
	case modalConfirmClear:
		return titleStyle.Render("Clear plan?") + "\nThis removes every course.\n[y] Yes  [n] No"
	case modalEditAPIKey:
		return titleStyle.Render("Set OpenAI API key (stored in config.toml)") + fmt.Sprintf("\n%s\n[enter] Save  [esc] Cancel", a.inputBuffer)
	default:
		return ""
	}
}
