package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"runtime/debug"
	"strings"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	pflag "github.com/spf13/pflag"

	"github.com/sparques/irhid"
	"github.com/sparques/irhid/dispatch"
	"github.com/sparques/irhid/internal/cliconfig"
	"github.com/sparques/irhid/internal/logging"
	"github.com/sparques/irhid/nec"
)

const longHelp = `Decode an NEC infrared remote on a GPIO line and replay it as a USB keyboard,
mouse or media controller.

The receiver (a TSOP38238 or similar) is polled every 100µs. Decoded commands
are mapped through the media, mouse or presenter keymap, optionally amended by
a YAML keymap file, and written to a Linux USB gadget, a Modbus server or the
log.`

var exampleUsage = strings.TrimSpace(`
  irhid --variant presenter --gpio-chip gpiochip0 --gpio-line 17
  irhid --input periph --gpio-pin GPIO27 --output modbus --modbus-endpoint 10.0.0.5:502
  irhid replay --variant mouse capture.mode2
  irhid encode --command 0x05 --repeat 3 | ir-ctl --send=/dev/stdin
  irhid descriptor --kind mouse > functions/hid.usb1/report_desc
`)

func getVersion() string {
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" {
		return info.Main.Version
	}
	return "dev"
}

// app carries the configuration shared by every subcommand.
type app struct {
	cfg     cliconfig.Config
	cfgPath string
	log     zerolog.Logger
}

// load applies config file, environment and flags in that order of
// precedence, then sets up logging.
func (a *app) load(cmd *cobra.Command) error {
	cfgFile := a.cfgPath
	if cfgFile == "" {
		cfgFile = cliconfig.DefaultConfigPath()
	}

	changed := map[string]bool{}
	cmd.Flags().Visit(func(f *pflag.Flag) { changed[f.Name] = true })

	if cfgFile != "" && cliconfig.FileExists(cfgFile) {
		fc, err := cliconfig.LoadFileConfig(cfgFile)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		if err := cliconfig.ApplyFileConfig(&a.cfg, fc, changed); err != nil {
			return err
		}
	}
	if err := cliconfig.ApplyEnvConfig(&a.cfg, changed); err != nil {
		return err
	}

	level, err := logging.ParseLevel(a.cfg.LogLevel)
	if err != nil {
		return err
	}
	a.log = logging.New(os.Stderr, level, a.cfg.LogJSON)
	return nil
}

// keymap returns the keymap file if one is configured, otherwise the variant.
func (a *app) keymap() (dispatch.Keymap, error) {
	speed := int8(a.cfg.MouseSpeed)
	if a.cfg.Keymap != "" {
		return dispatch.LoadKeymap(a.cfg.Keymap, speed)
	}
	return dispatch.VariantKeymap(a.cfg.Variant, speed)
}

func (a *app) run(cmd *cobra.Command, args []string) error {
	if err := a.load(cmd); err != nil {
		return err
	}
	if err := a.cfg.Validate(); err != nil {
		return err
	}
	a.log.Info().Interface("config", a.cfg).Msg("configuration")

	keymap, err := a.keymap()
	if err != nil {
		return err
	}

	line, closeLine, err := openLine(a.cfg)
	if err != nil {
		return err
	}
	defer closeLine()

	dev, closeDev, err := openOutput(a.cfg, a.log)
	if err != nil {
		return err
	}
	defer closeDev()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	dec := nec.NewDecoder(irhid.NewSampler(line, irhid.SpinClock{}), a.cfg.Address)
	d := dispatch.New(dev, keymap,
		dispatch.WithLogger(a.log),
		dispatch.WithClock(irhid.SleepClock{}),
		dispatch.WithPollInterval(a.cfg.PollInterval),
	)

	if a.cfg.WatchKeymap {
		w := dispatch.NewKeymapWatcher(d, a.cfg.Keymap, int8(a.cfg.MouseSpeed), a.log)
		go func() {
			if err := w.Run(ctx); err != nil {
				a.log.Error().Err(err).Msg("keymap watcher stopped")
			}
		}()
	}

	a.log.Info().
		Str("variant", a.cfg.Variant).
		Str("address", fmt.Sprintf("0x%02X", dec.Address())).
		Msg("listening")

	if err := d.Run(ctx, dec); err != nil && ctx.Err() == nil {
		return err
	}
	a.log.Info().Msg("received signal, stopping...")
	return nil
}

func main() {
	a := &app{cfg: cliconfig.DefaultConfig(), log: logging.New(os.Stderr, zerolog.InfoLevel, false)}

	root := &cobra.Command{
		Use:           "irhid",
		Short:         "Turn an NEC IR remote into a USB keyboard, mouse or media controller",
		Long:          longHelp,
		Example:       exampleUsage,
		Version:       fmt.Sprintf("%s %s/%s", getVersion(), runtime.GOOS, runtime.GOARCH),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          a.run,
	}

	cfg := &a.cfg
	flags := root.PersistentFlags()
	flags.StringVar(&a.cfgPath, "config", "", "path to config file (default: $HOME/.irhid/config.toml)")
	flags.StringVar(&cfg.Variant, "variant", cfg.Variant, "built-in keymap: media, mouse or presenter")
	flags.Uint16Var(&cfg.Address, "address", cfg.Address, "remote address; 8-bit for standard remotes, 16-bit for extended ones")
	flags.StringVar(&cfg.Keymap, "keymap", cfg.Keymap, "YAML keymap file (overrides --variant)")
	flags.IntVar(&cfg.MouseSpeed, "mouse-speed", cfg.MouseSpeed, "pointer step per mouse command")
	flags.StringVar(&cfg.OutputBackend, "output", cfg.OutputBackend, "output backend: gadget, log or modbus")
	flags.StringVar(&cfg.KeyboardDevice, "keyboard-device", cfg.KeyboardDevice, "gadget keyboard report device")
	flags.StringVar(&cfg.MouseDevice, "mouse-device", cfg.MouseDevice, "gadget mouse report device")
	flags.StringVar(&cfg.ConsumerDevice, "consumer-device", cfg.ConsumerDevice, "gadget consumer control report device")
	flags.StringVar(&cfg.ModbusEndpoint, "modbus-endpoint", cfg.ModbusEndpoint, "Modbus TCP server host:port")
	flags.IntVar(&cfg.ModbusUnitID, "modbus-unit", cfg.ModbusUnitID, "Modbus unit id")
	flags.IntVar(&cfg.ModbusRegister, "modbus-register", cfg.ModbusRegister, "first holding register of the report block")
	flags.DurationVar(&cfg.ModbusTimeout, "modbus-timeout", cfg.ModbusTimeout, "Modbus request timeout")
	flags.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level: debug, info, warn or error")
	flags.BoolVar(&cfg.LogJSON, "log-json", cfg.LogJSON, "log JSON lines instead of console output")

	root.Flags().BoolVar(&cfg.WatchKeymap, "watch-keymap", cfg.WatchKeymap, "reload the keymap file when it changes")
	root.Flags().DurationVar(&cfg.PollInterval, "poll", cfg.PollInterval, "idle line poll interval")
	root.Flags().StringVar(&cfg.InputBackend, "input", cfg.InputBackend, "input backend: gpiocdev or periph")
	root.Flags().StringVar(&cfg.GPIOChip, "gpio-chip", cfg.GPIOChip, "GPIO chip for the gpiocdev input")
	root.Flags().IntVar(&cfg.GPIOLine, "gpio-line", cfg.GPIOLine, "GPIO line offset for the gpiocdev input")
	root.Flags().StringVar(&cfg.GPIOPin, "gpio-pin", cfg.GPIOPin, "pin name for the periph input")

	root.AddCommand(newReplayCmd(a), newEncodeCmd(a), newDescriptorCmd())

	if err := root.Execute(); err != nil {
		a.log.Error().Err(err).Msg("irhid")
		os.Exit(1)
	}
}
