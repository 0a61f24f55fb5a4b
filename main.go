package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"
	"strconv"
	"strings"
	"time"

	"go-match/internal/board"
	"go-match/internal/game"
	"go-match/internal/state"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

var (
	titleStyle     = lipgloss.NewStyle().Bold(true)
	scoreStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("11")) // Color for the counters
	greenStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	highlightStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true)
	buttonStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("14"))
	disabledStyle  = lipgloss.NewStyle().Faint(true)
	hintStyle      = lipgloss.NewStyle().Faint(true)

	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Width(game.CardInnerWidth).
			MaxHeight(game.CardHeight).
			Align(lipgloss.Center)
	faceDownStyle = cardStyle.BorderForeground(lipgloss.Color("8")).Foreground(lipgloss.Color("8"))
	flippedStyle  = cardStyle.BorderForeground(lipgloss.Color("11")).Foreground(lipgloss.Color("11")).Bold(true)
	matchedStyle  = cardStyle.BorderForeground(lipgloss.Color("10")).Foreground(lipgloss.Color("10"))

	bannerStyle = lipgloss.NewStyle().
			Border(lipgloss.ThickBorder()).
			BorderForeground(lipgloss.Color("10")).
			Padding(1, 4)
)

type keyMap struct {
	Quit key.Binding
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Quit}}
}

var keys = keyMap{
	Quit: key.NewBinding(
		key.WithKeys("q", "esc", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

type LocalState struct {
	Session *game.Session
	help    help.Model
}

type TickMsg struct {
	ID   int
	Time time.Time
}

type FlipBackMsg struct{}

type WinMsg struct{}

func tickCmd(id int) tea.Cmd {
	return tea.Tick(game.TickInterval, func(t time.Time) tea.Msg {
		return TickMsg{ID: id, Time: t}
	})
}

func delayCmd(d time.Duration, msg tea.Msg) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return msg
	})
}

// effectCmds turns queued game effects into timers.
func effectCmds(effects []state.Effect) tea.Cmd {
	var cmds []tea.Cmd
	for _, e := range effects {
		switch e.Kind {
		case state.StartTimer:
			cmds = append(cmds, tickCmd(e.TimerID))
		case state.FlipBack:
			cmds = append(cmds, delayCmd(game.FlipBackDelay, FlipBackMsg{}))
		case state.RevealWin:
			cmds = append(cmds, delayCmd(game.WinDelay, WinMsg{}))
		}
	}
	return tea.Batch(cmds...)
}

func initialModel(cfg game.Config, seed int64) (*LocalState, error) {
	sess, err := game.NewSession(cfg, rand.New(rand.NewSource(seed)))
	if err != nil {
		return nil, err
	}

	return &LocalState{
		Session: sess,
		help:    help.New(),
	}, nil
}

func (s *LocalState) Init() tea.Cmd {
	// The clock starts with the first card or the start control.
	return nil
}

func (s *LocalState) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case TickMsg:
		if s.Session.Tick(msg.ID) {
			return s, tickCmd(msg.ID)
		}
	case FlipBackMsg:
		s.Session.FlipBack()
	case WinMsg:
		s.Session.RevealWin()
	case tea.MouseMsg:
		if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
			return s, nil
		}
		if s.Session.IsFinished() {
			return s, nil
		}
		return s, effectCmds(s.Session.Click(msg.X, msg.Y))
	case tea.WindowSizeMsg:
		s.help.Width = msg.Width
	case tea.KeyMsg:
		if key.Matches(msg, keys.Quit) {
			return s, tea.Quit
		}
		// Any key after the banner quits
		if s.Session.IsFinished() {
			return s, tea.Quit
		}
	}

	return s, nil
}

// fitSymbol trims a symbol to the inner card width in terminal cells.
func fitSymbol(sym string) string {
	return ansi.Truncate(sym, game.CardInnerWidth, "")
}

func renderCard(c board.Card) string {
	switch c.State() {
	case board.Matched:
		return matchedStyle.Render(fitSymbol(c.Symbol))
	case board.Flipped:
		return flippedStyle.Render(fitSymbol(c.Symbol))
	default:
		return faceDownStyle.Render("?")
	}
}

func (s *LocalState) RenderBoard() string {
	gap := strings.Repeat(" ", game.CardGap)

	var rows []string
	for _, row := range s.Session.Board.Rows() {
		var cells []string
		for i, c := range row {
			if i > 0 {
				cells = append(cells, gap)
			}
			cells = append(cells, renderCard(c))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func (s *LocalState) RenderBanner() string {
	b := s.Session.CurrentGame.State.Banner
	text := greenStyle.Render("You won!") + "\n" +
		"with " + highlightStyle.Render(fmt.Sprint(b.Moves)) + " moves\n" +
		"under " + highlightStyle.Render(fmt.Sprint(b.Seconds)) + " seconds\n" +
		"score " + highlightStyle.Render(fmt.Sprint(b.Score)) + "\n" +
		"accuracy " + highlightStyle.Render(fmt.Sprintf("%d%%", b.Accuracy))
	return bannerStyle.Render(text) + "\n\n" + hintStyle.Render("press any key to quit")
}

func (s *LocalState) View() string {
	st := s.Session.CurrentGame.State

	if st.Won {
		return s.RenderBanner()
	}

	// Line positions must stay in sync with game.Layout.
	var b strings.Builder
	b.WriteString(titleStyle.Render("MEMORY") + "\n")

	statusLine := st.MovesReadout + " | " + st.TimerReadout + " | " +
		"score: " + fmt.Sprint(st.Score.DisplayScore())
	b.WriteString(scoreStyle.Render(statusLine) + "\n")

	if st.StartDisabled() {
		b.WriteString(disabledStyle.Render(game.StartLabel))
	} else {
		b.WriteString(buttonStyle.Render(game.StartLabel))
	}
	b.WriteString("\n\n")

	b.WriteString(s.RenderBoard() + "\n\n")
	b.WriteString(hintStyle.Render("click a card to flip it") + "  " + s.help.View(keys))

	return b.String()
}

func getEnv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

// setupLogging points the global logger at path. The terminal belongs to
// the game, so without a path nothing is logged.
func setupLogging(path, level string) (func(), error) {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}

	if path == "" {
		log.Logger = zerolog.Nop()
		return func() {}, nil
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file %s: %w", path, err)
	}

	zerolog.SetGlobalLevel(lvl)
	log.Logger = zerolog.New(f).With().Timestamp().Logger()

	return func() { f.Close() }, nil
}

func main() {
	_ = godotenv.Load()

	defaultDimension, err := strconv.Atoi(getEnv("GO_MATCH_DIMENSION", "4"))
	if err != nil {
		fmt.Printf("Error initializing model: invalid GO_MATCH_DIMENSION: %v\n", err)
		os.Exit(1)
	}

	var dimension int
	var seed int64
	var logPath string

	flag.IntVar(&dimension, "dimension", defaultDimension, "Side length of the grid (even)")
	flag.IntVar(&dimension, "d", defaultDimension, "Side length of the grid (shorthand)")

	flag.Int64Var(&seed, "seed", time.Now().UnixNano(), "Seed for the board layout")

	flag.StringVar(&logPath, "log", getEnv("GO_MATCH_LOG", ""), "Write debug logs to this file")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [options] [symbol files or directories...]\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "\nOptions:\n")
		fmt.Fprintf(os.Stderr, "   -d, --dimension=N       Side length of the grid, must be even (default %d)\n", defaultDimension)
		fmt.Fprintf(os.Stderr, "       --seed=N            Seed for the board layout\n")
		fmt.Fprintf(os.Stderr, "       --log=PATH          Write debug logs to PATH\n")
		fmt.Fprintf(os.Stderr, "   -h, --help              Show this help message\n")
		fmt.Fprintf(os.Stderr, "\nWithout symbol files the symbols 1..10 are used (largest board: 4x4).\n")
	}

	flag.Parse()

	closeLog, err := setupLogging(logPath, getEnv("GO_MATCH_LOG_LEVEL", "info"))
	if err != nil {
		fmt.Printf("Error initializing model: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	pool := board.DefaultPool()
	if args := flag.Args(); len(args) > 0 {
		pool, err = game.LoadSymbols(args)
		if err != nil {
			fmt.Printf("Error initializing model: %v\n", err)
			closeLog()
			os.Exit(1)
		}
	}

	model, err := initialModel(game.Config{Dimension: dimension, Pool: pool}, seed)
	if err != nil {
		log.Error().Err(err).Int("dimension", dimension).Int("symbols", len(pool)).Msg("invalid configuration")
		fmt.Printf("Error initializing model: %v\n", err)
		if maxDim := board.MaxDimension(pool); maxDim > 0 {
			fmt.Printf("The symbol pool supports dimensions up to %d.\n", maxDim)
		}
		closeLog()
		os.Exit(1)
	}
	log.Info().Int("dimension", dimension).Int64("seed", seed).Msg("starting game")

	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		fmt.Printf("Error starting the program: %v\n", err)
	}

	// Final output
	if model.Session.IsFinished() {
		b := model.Session.CurrentGame.State.Banner
		fmt.Println(greenStyle.Render(fmt.Sprintf("You won with %d moves in %d seconds (score %d).", b.Moves, b.Seconds, b.Score)))
	}
}
