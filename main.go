package main

import (
	"bufio"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"strconv"
	"strings"

	"example.com/office/companion"
	"example.com/office/config"
	"example.com/office/input"
	"example.com/office/lua_runtime"
	"example.com/office/metrics"
	"example.com/office/world"
	"example.com/office/world/entities"
	"example.com/office/world/scheduler"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const maxRepeat = 10000

func newLogger(cfg config.LoggingConfig) (*zap.Logger, error) {
	var level zapcore.Level
	if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
		level = zapcore.InfoLevel
	}

	var zapCfg zap.Config
	if cfg.Format == "json" {
		zapCfg = zap.NewProductionConfig()
	} else {
		zapCfg = zap.NewDevelopmentConfig()
		zapCfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		zapCfg.EncoderConfig.EncodeTime = zapcore.TimeEncoderOfLayout("15:04:05")
		zapCfg.EncoderConfig.ConsoleSeparator = "  "
		zapCfg.DisableCaller = true
		zapCfg.DisableStacktrace = true
	}
	zapCfg.Level = zap.NewAtomicLevelAt(level)

	return zapCfg.Build()
}

// parseFrame splits a line into the keys held for a frame and how many
// frames to hold them, given by a trailing xN token.
func parseFrame(line string) ([]string, int, error) {
	fields := strings.Fields(line)
	repeat := 1

	if n := len(fields); n > 0 {
		last := strings.ToLower(fields[n-1])
		if len(last) > 1 && last[0] == 'x' {
			if r, err := strconv.Atoi(last[1:]); err == nil {
				if r < 1 || r > maxRepeat {
					return nil, 0, fmt.Errorf("repeat must be between 1 and %d, got %d", maxRepeat, r)
				}
				repeat = r
				fields = fields[:n-1]
			}
		}
	}

	return fields, repeat, nil
}

func main() {
	cfgPath := flag.String("config", "", "path to the YAML config (defaults to $"+config.EnvPath+")")
	flag.Parse()

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	logger, err := newLogger(cfg.Logging)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to build logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	if err := run(cfg, logger, os.Stdin, os.Stdout); err != nil {
		logger.Error("office host failed", zap.Error(err))
		os.Exit(1)
	}
}

func run(cfg *config.Config, logger *zap.Logger, in io.Reader, out io.Writer) error {
	bindings := input.NewBindings()
	if err := bindings.Register(cfg.Bindings); err != nil {
		return fmt.Errorf("bindings: %w", err)
	}

	collector := metrics.NewCollector()

	office := world.New(world.Params{SpawnTarget: cfg.SpawnTarget},
		world.WithSpeed(cfg.Player.Speed),
		world.WithSprite(cfg.Player.SpriteWidth, cfg.Player.SpriteHeight),
		world.WithDoorRadius(cfg.Interaction.DoorRadius),
		world.WithChairRadius(cfg.Interaction.ChairRadius),
		world.WithLogger(logger.Named("world")),
		world.WithRecorder(collector),
	)
	defer office.Teardown()
	collector.WatchDropped(office.Dropped)

	// the lua state is closed after the scheduler stops, since jobs use it
	lr := lua_runtime.NewLuaRuntime(logger.Named("lua"))
	defer lr.Close()

	sched := scheduler.NewScheduler(logger.Named("scheduler"))
	defer sched.Stop()

	script := companion.DefaultScript()
	if cfg.Script != "" {
		loaded, err := lr.LoadFile(cfg.Script)
		if err != nil {
			return fmt.Errorf("companion script: %w", err)
		}
		script = loaded
	}
	comp := companion.New(script, sched, logger.Named("companion"))

	inbox := make(chan entities.Event, 64)
	office.Subscribe(inbox)

	if cfg.MetricsAddr != "" {
		mux := http.NewServeMux()
		mux.Handle("/metrics", collector.Handler())
		srv := &http.Server{Addr: cfg.MetricsAddr, Handler: mux}
		go func() {
			logger.Info("metrics listening", zap.String("addr", cfg.MetricsAddr))
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				logger.Error("metrics server failed", zap.Error(err))
			}
		}()
		defer srv.Close()
	}

	dt := cfg.FrameSeconds()
	printHelp(out, bindings)
	fmt.Fprintln(out, describe(office.Snapshot()))

	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if strings.ToLower(line) == "quit" {
			break
		}
		if strings.ToLower(line) == "help" {
			printHelp(out, bindings)
			continue
		}

		keys, repeat, err := parseFrame(line)
		if err != nil {
			fmt.Fprintln(out, err.Error())
			continue
		}

		state, unknown := bindings.Sample(keys)
		if len(unknown) > 0 {
			fmt.Fprintf(out, "unknown keys: %s\n", strings.Join(unknown, ", "))
		}

		for i := 0; i < repeat; i++ {
			for _, ev := range office.Step(state, dt) {
				fmt.Fprintln(out, formatEvent(ev))
			}
			comp.Drain(inbox)
		}
		// let go of the keys so the next line registers a fresh press
		office.Step(input.State{}, 0)
		comp.Drain(inbox)
		// scripted reactions run on the scheduler; wait for the ones due now
		sched.Flush()

		fmt.Fprintln(out, describe(office.Snapshot()))
		if visible := comp.Overlay().Visible(); len(visible) > 0 {
			fmt.Fprintf(out, "companion: %s\n", strings.Join(visible, ", "))
		}
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read input: %w", err)
	}
	return nil
}

var helpOrder = []input.Action{
	input.ActionUp, input.ActionDown, input.ActionLeft, input.ActionRight,
	input.ActionInteract, input.ActionSit,
}

func printHelp(out io.Writer, b input.Bindings) {
	fmt.Fprintln(out, input.HelpText)
	for _, action := range helpOrder {
		fmt.Fprintf(out, "  %-8s %s\n", action, strings.Join(b.Keys(action), ", "))
	}
}

func describe(s world.Snapshot) string {
	p := s.Player
	return fmt.Sprintf("tick %d  pos (%.1f, %.1f)  %s", s.Tick, p.Position.X, p.Position.Y, p.State)
}

func formatEvent(ev entities.Event) string {
	raw, err := json.Marshal(ev)
	if err != nil {
		return ev.Type
	}
	return "event " + string(raw)
}
