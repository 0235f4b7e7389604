// Package tui provides the Bubble Tea editor with live text statistics.
package tui

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog"

	"github.com/verte-zerg/wordlens/internal/analyzer"
	"github.com/verte-zerg/wordlens/internal/clipboard"
	"github.com/verte-zerg/wordlens/internal/export"
	"github.com/verte-zerg/wordlens/internal/goal"
	"github.com/verte-zerg/wordlens/internal/model"
	"github.com/verte-zerg/wordlens/internal/textfmt"
)

const (
	noticeTTL    = 3 * time.Second
	barWidth     = 24
	minEditorH   = 3
	editorMargin = 2
)

// Store persists the draft, theme, and snapshots.
type Store interface {
	LoadDraft(ctx context.Context) (model.Draft, error)
	SaveDraft(ctx context.Context, text string) error
	ClearDraft(ctx context.Context) error
	Theme(ctx context.Context, fallback model.Theme) (model.Theme, error)
	SetTheme(ctx context.Context, theme model.Theme) error
	SaveDraftWithSnapshot(ctx context.Context, text string, res model.AnalysisResult) (int64, error)
}

type autosaveMsg struct {
	seq int
}

type noticeExpiredMsg struct {
	id int
}

type notice struct {
	text  string
	isErr bool
}

// Model implements the Bubble Tea editor.
type Model struct {
	config   model.EditorConfig
	store    Store
	analyzer *analyzer.Analyzer
	clip     clipboard.Clipboard
	logger   zerolog.Logger

	editor textarea.Model
	help   help.Model
	keys   keyMap
	styles styles

	width  int
	height int

	result model.AnalysisResult
	goal   int
	theme  model.Theme

	editSeq  int
	savedSeq int

	confirmClear bool
	notice       notice
	noticeID     int
}

// NewModel constructs the editor and restores the saved draft and theme.
func NewModel(cfg model.EditorConfig, st Store, an *analyzer.Analyzer, clip clipboard.Clipboard, logger zerolog.Logger) *Model {
	if cfg.Goal <= 0 {
		cfg.Goal = goal.Default
	}
	if cfg.Theme == "" {
		cfg.Theme = model.ThemeDark
	}
	if cfg.ExportWidth <= 0 {
		cfg.ExportWidth = export.DefaultWidth
	}
	editor := textarea.New()
	editor.Placeholder = "Start typing or paste your text here..."
	editor.ShowLineNumbers = false
	editor.Prompt = ""
	editor.CharLimit = 0
	editor.MaxHeight = 0
	editor.Focus()

	m := &Model{
		config:   cfg,
		store:    st,
		analyzer: an,
		clip:     clip,
		logger:   logger,
		editor:   editor,
		help:     help.New(),
		keys:     defaultKeyMap(),
		goal:     cfg.Goal,
		theme:    cfg.Theme,
	}
	m.restore()
	m.applyTheme()
	m.result = m.analyzer.Analyze(m.editor.Value())
	return m
}

func (m *Model) restore() {
	ctx := context.Background()
	draft, err := m.store.LoadDraft(ctx)
	if err != nil {
		m.logger.Error().Err(err).Msg("failed to load draft")
	} else if draft.Text != "" {
		m.editor.SetValue(draft.Text)
		m.logger.Debug().Time("updated_at", draft.UpdatedAt).Msg("restored draft")
	}
	theme, err := m.store.Theme(ctx, m.theme)
	if err != nil {
		m.logger.Error().Err(err).Msg("failed to load theme")
		return
	}
	m.theme = theme
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return textarea.Blink
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmd := m.update(msg)
	m.layout()
	return m, cmd
}

func (m *Model) update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.editor.SetWidth(max(msg.Width-editorMargin, 1))
		return nil
	case autosaveMsg:
		if msg.seq == m.editSeq && m.savedSeq != m.editSeq {
			m.autosave()
		}
		return nil
	case noticeExpiredMsg:
		if msg.id == m.noticeID && !m.confirmClear {
			m.notice = notice{}
		}
		return nil
	case tea.KeyMsg:
		if m.confirmClear {
			return m.handleConfirm(msg)
		}
		return m.handleKey(msg)
	default:
		var cmd tea.Cmd
		m.editor, cmd = m.editor.Update(msg)
		return cmd
	}
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.saveDraft()
		return tea.Quit
	case key.Matches(msg, m.keys.Save):
		return m.saveSnapshot()
	case key.Matches(msg, m.keys.Clear):
		if m.isBlank() {
			return m.notify("Nothing to clear", true)
		}
		m.confirmClear = true
		return m.notify("Clear all text? (y/n)", false)
	case key.Matches(msg, m.keys.Theme):
		return m.toggleTheme()
	case key.Matches(msg, m.keys.Goal):
		m.goal = goal.Next(m.goal)
		return m.notify(fmt.Sprintf("Goal: %s (%d words)", goal.Name(m.goal), m.goal), false)
	case key.Matches(msg, m.keys.Upper):
		return m.format(textfmt.CaseUpper)
	case key.Matches(msg, m.keys.Lower):
		return m.format(textfmt.CaseLower)
	case key.Matches(msg, m.keys.Title):
		return m.format(textfmt.CaseTitle)
	case key.Matches(msg, m.keys.Squeeze):
		return m.squeeze()
	case key.Matches(msg, m.keys.Export):
		return m.exportReport()
	case key.Matches(msg, m.keys.Copy):
		return m.copyReport()
	}

	before := m.editor.Value()
	var cmd tea.Cmd
	m.editor, cmd = m.editor.Update(msg)
	if m.editor.Value() == before {
		return cmd
	}
	return tea.Batch(cmd, m.textChanged())
}

func (m *Model) handleConfirm(msg tea.KeyMsg) tea.Cmd {
	m.confirmClear = false
	if msg.String() != "y" && msg.String() != "Y" {
		return m.notify("Clear cancelled", false)
	}
	m.editor.Reset()
	m.result = m.analyzer.Analyze("")
	m.editSeq++
	if err := m.store.ClearDraft(context.Background()); err != nil {
		m.logger.Error().Err(err).Msg("failed to clear draft")
		return m.notify("Failed to clear saved draft", true)
	}
	m.savedSeq = m.editSeq
	return m.notify("Text cleared", false)
}

// setText replaces the editor content as one edit.
func (m *Model) setText(text string) tea.Cmd {
	m.editor.SetValue(text)
	return m.textChanged()
}

func (m *Model) textChanged() tea.Cmd {
	m.result = m.analyzer.Analyze(m.editor.Value())
	m.editSeq++
	if m.config.AutosaveSeconds <= 0 {
		return nil
	}
	seq := m.editSeq
	return tea.Tick(time.Duration(m.config.AutosaveSeconds)*time.Second, func(time.Time) tea.Msg {
		return autosaveMsg{seq: seq}
	})
}

func (m *Model) autosave() {
	if err := m.store.SaveDraft(context.Background(), m.editor.Value()); err != nil {
		m.logger.Error().Err(err).Msg("failed to autosave draft")
		return
	}
	m.savedSeq = m.editSeq
	m.logger.Debug().Int("seq", m.editSeq).Msg("autosaved draft")
}

func (m *Model) saveDraft() {
	if m.savedSeq == m.editSeq {
		return
	}
	if err := m.store.SaveDraft(context.Background(), m.editor.Value()); err != nil {
		m.logger.Error().Err(err).Msg("failed to save draft")
		return
	}
	m.savedSeq = m.editSeq
}

func (m *Model) saveSnapshot() tea.Cmd {
	if m.isBlank() {
		return m.notify("Nothing to save", true)
	}
	id, err := m.store.SaveDraftWithSnapshot(context.Background(), m.editor.Value(), m.result)
	if err != nil {
		m.logger.Error().Err(err).Msg("failed to save snapshot")
		return m.notify("Failed to save draft", true)
	}
	m.savedSeq = m.editSeq
	return m.notify(fmt.Sprintf("Draft saved (snapshot #%d)", id), false)
}

func (m *Model) toggleTheme() tea.Cmd {
	m.theme = m.theme.Toggle()
	m.applyTheme()
	if err := m.store.SetTheme(context.Background(), m.theme); err != nil {
		m.logger.Error().Err(err).Msg("failed to save theme")
		return m.notify("Failed to save theme", true)
	}
	return m.notify(fmt.Sprintf("Theme: %s", m.theme), false)
}

func (m *Model) applyTheme() {
	m.styles = newStyles(m.theme)
	focused, blurred := textarea.DefaultStyles()
	focused.Text = m.styles.text
	focused.Placeholder = m.styles.muted
	focused.CursorLine = m.styles.text
	m.editor.FocusedStyle = focused
	m.editor.BlurredStyle = blurred
}

func (m *Model) format(c textfmt.Case) tea.Cmd {
	if m.isBlank() {
		return m.notify("No text to format", true)
	}
	formatted, ok := textfmt.Apply(c, m.editor.Value())
	if !ok {
		return nil
	}
	return tea.Batch(m.setText(formatted), m.notify(fmt.Sprintf("Converted to %s case", c), false))
}

func (m *Model) squeeze() tea.Cmd {
	if m.isBlank() {
		return m.notify("No text to format", true)
	}
	return tea.Batch(m.setText(textfmt.SqueezeSpaces(m.editor.Value())), m.notify("Extra spaces removed", false))
}

func (m *Model) exportReport() tea.Cmd {
	path := m.config.ExportPath
	err := export.ToFile(path, export.FormatReport, m.editor.Value(), m.result, m.config.ExportWidth)
	switch {
	case errors.Is(err, export.ErrEmptyText):
		return m.notify("No text to export!", true)
	case err != nil:
		m.logger.Error().Err(err).Str("path", path).Msg("export failed")
		return m.notify("Export failed", true)
	}
	return m.notify("Report exported to "+path, false)
}

func (m *Model) copyReport() tea.Cmd {
	var b strings.Builder
	if err := export.WriteReport(&b, m.editor.Value(), m.result, m.config.ExportWidth); err != nil {
		if errors.Is(err, export.ErrEmptyText) {
			return m.notify("No text to copy", true)
		}
		return m.notify("Copy failed", true)
	}
	if err := clipboard.Copy(m.clip, b.String()); err != nil {
		m.logger.Error().Err(err).Msg("copy failed")
		return m.notify("Copy failed", true)
	}
	return m.notify("Report copied to clipboard", false)
}

func (m *Model) notify(text string, isErr bool) tea.Cmd {
	m.noticeID++
	m.notice = notice{text: text, isErr: isErr}
	id := m.noticeID
	return tea.Tick(noticeTTL, func(time.Time) tea.Msg {
		return noticeExpiredMsg{id: id}
	})
}

func (m *Model) isBlank() bool {
	return strings.TrimFunc(m.editor.Value(), analyzer.IsSpace) == ""
}

func (m *Model) layout() {
	if m.height == 0 {
		return
	}
	chrome := lipgloss.Height(m.renderHeader()) + lipgloss.Height(m.renderPanel()) + lipgloss.Height(m.renderFooter())
	m.editor.SetHeight(max(m.height-chrome, minEditorH))
}

// View implements tea.Model.
func (m *Model) View() string {
	return lipgloss.JoinVertical(lipgloss.Left,
		m.renderHeader(),
		m.editor.View(),
		m.renderPanel(),
		m.renderFooter(),
	)
}

func (m *Model) renderHeader() string {
	return m.styles.title.Render("wordlens") + " " + m.styles.muted.Render(string(m.theme))
}

func (m *Model) renderPanel() string {
	return lipgloss.JoinVertical(lipgloss.Left,
		m.renderCards(),
		m.renderGoal(),
		m.renderKeywords(),
	)
}

func (m *Model) renderCards() string {
	r := m.result
	cards := []struct {
		label string
		value string
	}{
		{"Words", strconv.Itoa(r.WordCount)},
		{"Characters", strconv.Itoa(r.CharCount)},
		{"No spaces", strconv.Itoa(r.CharCountNoSpaces)},
		{"Sentences", strconv.Itoa(r.SentenceCount)},
		{"Paragraphs", strconv.Itoa(r.ParagraphCount)},
		{"Reading", r.ReadingTime},
		{"Speaking", r.SpeakingTime},
		{"Readability", fmt.Sprintf("%d %s", r.ReadabilityScore, r.ReadabilityLabel)},
	}
	blocks := make([]string, len(cards))
	for i, c := range cards {
		blocks[i] = m.styles.card.Render(m.styles.cardValue.Render(c.value) + "\n" + m.styles.muted.Render(c.label))
	}
	return flowBlocks(blocks, m.width, 0)
}

func (m *Model) renderGoal() string {
	progress := goal.Progress(m.result.WordCount, m.goal)
	filled, empty := progressBar(progress.Percent, barWidth)
	return m.styles.muted.Render(goal.Name(m.goal)+" ") +
		m.styles.bar(progress.Level).Render(filled) +
		m.styles.barEmpty.Render(empty) + " " +
		m.styles.text.Render(goal.Describe(progress))
}

func (m *Model) renderKeywords() string {
	if len(m.result.Keywords) == 0 {
		return m.styles.muted.Render("No keywords found")
	}
	chips := make([]string, len(m.result.Keywords))
	for i, kw := range m.result.Keywords {
		chips[i] = m.styles.chip.Render(fmt.Sprintf("%s (%d)", kw.Word, kw.Count))
	}
	return flowBlocks(chips, m.width, 1)
}

func (m *Model) renderFooter() string {
	if m.notice.text != "" {
		if m.notice.isErr {
			return m.styles.errNotice.Render(m.notice.text)
		}
		return m.styles.notice.Render(m.notice.text)
	}
	return m.help.View(m.keys)
}
