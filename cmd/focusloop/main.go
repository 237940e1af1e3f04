package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/alecthomas/kong"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/focusloop/focusloop/internal/ambient"
	"github.com/focusloop/focusloop/internal/cli"
	"github.com/focusloop/focusloop/internal/config"
	"github.com/focusloop/focusloop/internal/noise"
	"github.com/focusloop/focusloop/internal/session"
	"github.com/focusloop/focusloop/internal/stats"
	"github.com/focusloop/focusloop/internal/ui"
)

var (
	version = "0.0.1"
)

// CLI defines the command-line interface
type CLI struct {
	Version bool `short:"v" help:"Show version information"`
	Debug   bool `help:"Write a debug log to the current directory"`

	Start      StartCmd   `cmd:"" help:"Start a focus session"`
	Break      BreakCmd   `cmd:"" help:"Take a break"`
	Stats      StatsCmd   `cmd:"" help:"Show productivity statistics"`
	History    HistoryCmd `cmd:"" help:"List recent sessions"`
	Config     ConfigCmd  `cmd:"" help:"Show or change settings"`
	VersionCmd VersionCmd `cmd:"" name:"version" help:"Show version information"`
}

// appEnv carries shared state into command Run methods
type appEnv struct {
	cfg    *config.Settings
	cfgDir string
	store  *session.Store
	log    func(format string, args ...interface{})
}

func main() {
	cliArgs := &CLI{}
	ctx := kong.Parse(cliArgs,
		kong.Name("focusloop"),
		kong.Description("Pomodoro timer with ambient sound"),
		kong.UsageOnError(),
		kong.Vars{
			"version": version,
		},
		kong.Help(cli.StyledHelpPrinter(kong.HelpOptions{Compact: true})),
	)

	// Handle version flag
	if cliArgs.Version {
		cli.PrintVersion(version)
		os.Exit(0)
	}

	// Open debug log file
	var debugLog *os.File
	if cliArgs.Debug {
		debugLog, _ = os.Create("focusloop-debug.log")
		defer debugLog.Close()
	}
	log := func(format string, args ...interface{}) {
		if debugLog != nil {
			fmt.Fprintf(debugLog, format+"\n", args...)
		}
	}

	env, err := newAppEnv(log)
	if err != nil {
		cli.PrintError(err.Error())
		os.Exit(1)
	}

	if err := ctx.Run(env); err != nil {
		cli.PrintError(err.Error())
		os.Exit(1)
	}
}

func newAppEnv(log func(string, ...interface{})) (*appEnv, error) {
	dir, err := config.Dir()
	if err != nil {
		return nil, err
	}
	cfg, err := config.Load(dir)
	if err != nil {
		return nil, err
	}
	path, err := session.DefaultPath()
	if err != nil {
		return nil, err
	}
	return &appEnv{
		cfg:    cfg,
		cfgDir: dir,
		store:  session.NewStore(path),
		log:    log,
	}, nil
}

// StartCmd runs a focus session
type StartCmd struct {
	Duration int    `short:"d" default:"0" help:"Session length in minutes (default from config)"`
	Note     string `short:"n" help:"What you're working on"`
	Sound    string `help:"Ambient sound: white-noise, rain, coffee-shop, nature, none"`
	Volume   int    `default:"-1" help:"Sound volume 0-100 (default from config)"`
}

func (c *StartCmd) Run(env *appEnv) error {
	minutes := c.Duration
	if minutes <= 0 {
		minutes = env.cfg.DefaultDuration
	}
	soundName := c.Sound
	if soundName == "" {
		soundName = env.cfg.Sound
	}
	tex, err := noise.ParseTexture(soundName)
	if err != nil {
		return err
	}
	volume := c.Volume
	if volume < 0 {
		volume = env.cfg.Volume
	}

	model, err := runTimer(env, ui.KindFocus, minutes, c.Note, tex, volume)
	if err != nil {
		return err
	}

	if model.Cancelled {
		return finishCancelled(env, session.TypeFocus, model, c.Note)
	}

	ring()
	cli.PrintSuccess("✨ Focus session complete!")
	if err := env.store.Append(session.Session{
		Timestamp: model.StartTime,
		Duration:  minutes,
		Note:      c.Note,
		Type:      session.TypeFocus,
	}); err != nil {
		return err
	}

	printQuickStats(env)

	if env.cfg.AutoBreak {
		return offerNext(env, tex, volume)
	}
	return nil
}

// BreakCmd runs a break timer
type BreakCmd struct {
	Duration int `short:"d" default:"0" help:"Break length in minutes (default from config)"`
}

func (c *BreakCmd) Run(env *appEnv) error {
	minutes := c.Duration
	if minutes <= 0 {
		minutes = env.cfg.BreakDuration
	}
	return runBreak(env, minutes)
}

func runBreak(env *appEnv, minutes int) error {
	model, err := runTimer(env, ui.KindBreak, minutes, "", noise.TextureNone, 0)
	if err != nil {
		return err
	}

	if model.Cancelled {
		return finishCancelled(env, session.TypeBreak, model, "")
	}

	ring()
	cli.PrintSuccess("☕ Break complete - back to it!")
	return env.store.Append(session.Session{
		Timestamp: model.StartTime,
		Duration:  minutes,
		Type:      session.TypeBreak,
	})
}

// StatsCmd prints the full statistics view
type StatsCmd struct{}

func (c *StatsCmd) Run(env *appEnv) error {
	sessions, err := env.store.Load()
	if err != nil {
		return err
	}
	fmt.Print(stats.RenderFull(sessions, time.Now()))
	return nil
}

// HistoryCmd lists recent sessions
type HistoryCmd struct {
	Limit int `short:"l" default:"10" help:"Number of sessions to show"`
}

func (c *HistoryCmd) Run(env *appEnv) error {
	sessions, err := env.store.Load()
	if err != nil {
		return err
	}
	fmt.Print(stats.RenderHistory(sessions, c.Limit))
	return nil
}

// ConfigCmd shows or updates settings; with no flags it prints the current
// configuration
type ConfigCmd struct {
	Duration      *int    `help:"Default focus length in minutes"`
	BreakDuration *int    `help:"Default break length in minutes"`
	Sound         *string `help:"Default ambient sound"`
	Volume        *int    `help:"Default sound volume 0-100"`
	AutoBreak     *bool   `help:"Offer a break after each focus session"`
}

func (c *ConfigCmd) Run(env *appEnv) error {
	changed := false

	if c.Duration != nil {
		if *c.Duration <= 0 {
			return fmt.Errorf("duration must be positive, got %d", *c.Duration)
		}
		env.cfg.DefaultDuration = *c.Duration
		changed = true
	}
	if c.BreakDuration != nil {
		if *c.BreakDuration <= 0 {
			return fmt.Errorf("break duration must be positive, got %d", *c.BreakDuration)
		}
		env.cfg.BreakDuration = *c.BreakDuration
		changed = true
	}
	if c.Sound != nil {
		// on/off shortcuts match the original CLI; on picks white noise
		// when no texture was configured before
		switch strings.ToLower(strings.TrimSpace(*c.Sound)) {
		case "off":
			env.cfg.Sound = string(noise.TextureNone)
		case "on":
			if env.cfg.Sound == string(noise.TextureNone) {
				env.cfg.Sound = string(noise.TextureWhiteNoise)
			}
		default:
			tex, err := noise.ParseTexture(*c.Sound)
			if err != nil {
				return err
			}
			env.cfg.Sound = string(tex)
		}
		changed = true
	}
	if c.Volume != nil {
		if *c.Volume < 0 || *c.Volume > 100 {
			return fmt.Errorf("volume must be 0-100, got %d", *c.Volume)
		}
		env.cfg.Volume = *c.Volume
		changed = true
	}
	if c.AutoBreak != nil {
		env.cfg.AutoBreak = *c.AutoBreak
		changed = true
	}

	if changed {
		if err := config.Save(env.cfgDir, env.cfg); err != nil {
			return err
		}
		cli.PrintSuccess("Settings saved")
	}

	fmt.Println(cli.TitleStyle.Render("Focusloop 🍅 settings"))
	printSetting("Focus duration", fmt.Sprintf("%d min", env.cfg.DefaultDuration))
	printSetting("Break duration", fmt.Sprintf("%d min", env.cfg.BreakDuration))
	printSetting("Sound", env.cfg.Sound)
	printSetting("Volume", fmt.Sprintf("%d", env.cfg.Volume))
	printSetting("Auto break", fmt.Sprintf("%v", env.cfg.AutoBreak))
	return nil
}

func printSetting(key, value string) {
	fmt.Printf("%s %s\n", cli.KeyStyle.Render(key+":"), cli.ValueStyle.Render(value))
}

// VersionCmd prints version information
type VersionCmd struct{}

func (c *VersionCmd) Run(env *appEnv) error {
	cli.PrintVersion(version)
	return nil
}

// runTimer starts ambient playback, runs the countdown TUI to completion and
// stops playback before returning the final model
func runTimer(env *appEnv, kind ui.Kind, minutes int, note string, tex noise.Texture, volume int) (ui.Model, error) {
	var player *ambient.Player
	if tex != noise.TextureNone {
		player = ambient.NewPlayer(ambient.NewDriver(), ambient.WithLogf(env.log))
		if !player.Start(tex.Category(), volume) {
			env.log("[MAIN] Ambient playback unavailable, continuing silently")
			player = nil
		}
	}
	if player != nil {
		defer func() {
			if err := player.Stop(); err != nil {
				env.log("[MAIN] Ambient stop: %v", err)
			}
		}()
	}

	model := ui.NewModel(kind, time.Duration(minutes)*time.Minute, note, tex, player, volume)
	p := tea.NewProgram(model, tea.WithAltScreen())

	final, err := p.Run()
	if err != nil {
		return ui.Model{}, fmt.Errorf("UI error: %w", err)
	}
	return final.(ui.Model), nil
}

// finishCancelled records a partial session when at least a full minute
// elapsed before the cancel
func finishCancelled(env *appEnv, typ session.Type, model ui.Model, note string) error {
	elapsed := int(time.Since(model.StartTime).Minutes())
	if elapsed < 1 {
		fmt.Println(cli.KeyStyle.Render("Cancelled - nothing recorded"))
		return nil
	}

	fmt.Println(cli.KeyStyle.Render(fmt.Sprintf("Cancelled - recording %d min", elapsed)))
	return env.store.Append(session.Session{
		Timestamp: model.StartTime,
		Duration:  elapsed,
		Note:      note,
		Type:      typ,
	})
}

func printQuickStats(env *appEnv) {
	sessions, err := env.store.Load()
	if err != nil {
		env.log("[MAIN] Load sessions for quick stats: %v", err)
		return
	}
	fmt.Println()
	fmt.Print(stats.RenderQuick(sessions, time.Now()))
}

// offerNext prompts for what to do after a completed focus session
func offerNext(env *appEnv, tex noise.Texture, volume int) error {
	fmt.Println()
	fmt.Println(cli.KeyStyle.Render("[b]reak · [f]ocus again · [e]xtend 5 min · [s]top"))

	reader := bufio.NewReader(os.Stdin)
	for {
		fmt.Print("> ")
		line, err := reader.ReadString('\n')
		if err != nil {
			return nil
		}

		switch strings.ToLower(strings.TrimSpace(line)) {
		case "b":
			return runBreak(env, env.cfg.BreakDuration)
		case "f":
			next := &StartCmd{Sound: string(tex), Volume: volume}
			return next.Run(env)
		case "e":
			next := &StartCmd{Duration: 5, Sound: string(tex), Volume: volume}
			return next.Run(env)
		case "s", "":
			return nil
		default:
			fmt.Println(cli.KeyStyle.Render("b, f, e or s"))
		}
	}
}

// ring sounds the terminal bell
func ring() {
	fmt.Print("\a")
}
