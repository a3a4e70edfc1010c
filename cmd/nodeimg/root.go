package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/gogpu/nodeimg"
	"github.com/gogpu/nodeimg/internal/document"
)

// Version is set at build time with
// -ldflags "-X main.Version=1.2.3".
var Version = "dev"

type contextKey string

const configKey contextKey = "config"

// newRootCmd builds the command tree around its own viper instance, so
// tests can run many invocations in one process.
func newRootCmd() *cobra.Command {
	v := viper.New()
	var cfgFile string

	root := &cobra.Command{
		Use:           "nodeimg",
		Short:         "Render JSON node documents to PNG, JPEG and WebP images",
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			SetDefaults(v)
			if err := initializeConfig(cmd, v, cfgFile); err != nil {
				return err
			}
			cfg, err := NewConfigFromViper(v)
			if err != nil {
				return err
			}
			level, _ := cfg.Log.level()
			nodeimg.SetLogger(slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level})))
			nodeimg.Logger().Debug("configuration loaded", "file", v.ConfigFileUsed(), "version", Version)

			cmd.SetContext(context.WithValue(cmd.Context(), configKey, cfg))
			return nil
		},
	}
	root.SetVersionTemplate(`{{printf "%s\n" .Version}}`)

	pf := root.PersistentFlags()
	pf.StringVarP(&cfgFile, "config", "c", "", "config file (default is ./nodeimg.yaml)")
	pf.String("log-level", "warn", "log level: debug, info, warn or error")
	pf.StringSlice("font", nil, "font file to load, optionally as Family=path (repeatable)")
	pf.Duration("fetch-timeout", 0, "bound on fetching network images")
	pf.Int("fetch-concurrency", 0, "network images fetched at once")
	pf.Int("cache-capacity", 0, "network images kept in the cache")

	root.AddCommand(newRenderCmd(), newMeasureCmd(), newAnimateCmd())
	return root
}

// initializeConfig reads the config file and environment, then binds the
// flags of the running command so they take precedence.
func initializeConfig(cmd *cobra.Command, v *viper.Viper, cfgFile string) error {
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.AddConfigPath(".")
		v.SetConfigName("nodeimg")
		v.SetConfigType("yaml")
	}

	v.SetEnvPrefix("NODEIMG")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return fmt.Errorf("error reading config file: %w", err)
		}
	}

	bindings := map[string]string{
		"log.level":          "log-level",
		"fonts":              "font",
		"fetch.timeout":      "fetch-timeout",
		"quality":            "quality",
		"viewport.width":     "width",
		"viewport.height":    "height",
		"viewport.dpr":       "dpr",
		"viewport.font_size": "font-size",
		"fetch.concurrency":  "fetch-concurrency",
		"cache.capacity":     "cache-capacity",
	}
	for key, name := range bindings {
		f := cmd.Flags().Lookup(name)
		if f == nil || !f.Changed {
			continue
		}
		if err := v.BindPFlag(key, f); err != nil {
			return err
		}
	}
	return nil
}

func configFrom(cmd *cobra.Command) *Config {
	cfg, ok := cmd.Context().Value(configKey).(*Config)
	if !ok {
		panic("nodeimg: command run without configuration")
	}
	return cfg
}

// addViewportFlags registers the flags that override a document's
// viewport.
func addViewportFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.Uint32("width", 0, "output width in device pixels (0 keeps the document's)")
	f.Uint32("height", 0, "output height in device pixels (0 keeps the document's)")
	f.Float32("dpr", 0, "device pixel ratio")
	f.Float32("font-size", 0, "root font size in CSS pixels")
	f.Bool("debug-border", false, "outline border and content boxes")
}

// newGlobal creates the library context and loads the configured fonts.
func newGlobal(cfg *Config) (*nodeimg.GlobalContext, error) {
	g, err := nodeimg.NewGlobalContext(cfg.globalOptions()...)
	if err != nil {
		return nil, err
	}
	for _, entry := range cfg.Fonts {
		var opts nodeimg.FontOptions
		path := entry
		if family, p, ok := strings.Cut(entry, "="); ok {
			opts.Family, path = family, p
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("font %s: %w", path, err)
		}
		n, err := g.LoadFont(data, opts)
		if err != nil {
			return nil, fmt.Errorf("font %s: %w", path, err)
		}
		nodeimg.Logger().Debug("font loaded", "path", path, "faces", n)
	}
	return g, nil
}

// readDocument reads the document named by arg; "-" reads stdin.
func readDocument(cmd *cobra.Command, arg string) (*document.Document, error) {
	var r io.Reader = cmd.InOrStdin()
	if arg != "-" {
		f, err := os.Open(arg)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	}
	doc, err := document.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", arg, err)
	}
	return doc, nil
}

// outputFormat picks the format from the --format flag, then from the
// extension of out, then fallback.
func outputFormat(flag, out string, fallback nodeimg.Format) (nodeimg.Format, error) {
	if flag != "" {
		return nodeimg.ParseFormat(flag)
	}
	if ext := filepath.Ext(out); ext != "" && out != "-" {
		return nodeimg.ParseFormat(ext)
	}
	return fallback, nil
}

// writeOutput calls write with the file at out, or stdout when out is
// empty or "-". A file is only created once write succeeds.
func writeOutput(cmd *cobra.Command, out string, write func(io.Writer) error) error {
	if out == "" || out == "-" {
		return write(cmd.OutOrStdout())
	}
	tmp, err := os.CreateTemp(filepath.Dir(out), ".nodeimg-*")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())
	if err := write(tmp); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), out)
}
