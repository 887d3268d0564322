// Package main provides the entry point for the htmlmin CLI.
package main

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	htmlmin "github.com/magiclen/html-minifier/html"
)

// Options holds the document-shaping flags, resolved through viper so the
// precedence is CLI flag > environment variable > config file > default.
type Options struct {
	NoComments   bool
	NoCodeMinify bool
	CodeAsHTML   bool
	Output       string
}

// RuntimeConfig holds settings that have no CLI flag equivalent, read
// straight from the environment. It exists alongside Options rather than
// merged into it: these are operational knobs, not document-shaping ones.
type RuntimeConfig struct {
	ReadBufferSize int  `env:"READ_BUFFER_SIZE" envDefault:"65536"`
	Debug          bool `env:"DEBUG"`
}

var (
	configFile   string
	noComments   bool
	noCodeMinify bool
	codeAsHTML   bool
	output       string
)

var rootCmd = &cobra.Command{
	Use:   "htmlmin [file]",
	Short: "Minify HTML from a file or stdin",
	Long: "htmlmin streams HTML through a byte-level minifier: whitespace is collapsed, " +
		"comments are stripped, and embedded <script>/<style>/<code> bodies are minified, " +
		"all without ever building a DOM.",
	Args: cobra.MaximumNArgs(1),
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		return bindFlags(cmd)
	},
	RunE: runHTMLMin,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file (default $XDG_CONFIG_HOME/htmlmin/config.yml)")
	rootCmd.Flags().BoolVar(&noComments, "no-comments", false, "keep HTML comments instead of removing them")
	rootCmd.Flags().BoolVar(&noCodeMinify, "no-code-minify", false, "leave <script>/<style>/<code> bodies untouched")
	rootCmd.Flags().BoolVar(&codeAsHTML, "code-as-html", false, "minify <code> bodies as nested HTML instead of JavaScript")
	rootCmd.Flags().StringVarP(&output, "output", "o", "", "write to file instead of stdout")

	rootCmd.AddCommand(configCmd)
}

func bindFlags(cmd *cobra.Command) error {
	_ = viper.BindPFlag("noComments", cmd.Flags().Lookup("no-comments"))
	_ = viper.BindPFlag("noCodeMinify", cmd.Flags().Lookup("no-code-minify"))
	_ = viper.BindPFlag("codeAsHTML", cmd.Flags().Lookup("code-as-html"))
	_ = viper.BindPFlag("output", cmd.Flags().Lookup("output"))

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.SetEnvPrefix("htmlmin")
	viper.AutomaticEnv()
	if configFile != "" {
		viper.SetConfigFile(configFile)
	} else {
		if dir, err := os.UserConfigDir(); err == nil {
			viper.AddConfigPath(dir + "/htmlmin")
		}
	}
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			log.Warn("could not parse configuration file", "err", err)
		}
	} else {
		log.Debug("using configuration file", "path", viper.ConfigFileUsed())
	}
	return nil
}

func runHTMLMin(cmd *cobra.Command, args []string) error {
	opts := resolveOptions()

	rt := RuntimeConfig{}
	if err := env.Parse(&rt); err != nil {
		return fmt.Errorf("parse runtime environment: %w", err)
	}
	if rt.Debug {
		log.SetLevel(log.DebugLevel)
	}

	var in io.Reader = os.Stdin
	if len(args) == 1 && args[0] != "-" {
		f, err := os.Open(args[0])
		if err != nil {
			return fmt.Errorf("unable to open input: %w", err)
		}
		defer func() { _ = f.Close() }()
		in = f
	}

	var out io.Writer = os.Stdout
	if opts.Output != "" {
		f, err := os.Create(opts.Output)
		if err != nil {
			return fmt.Errorf("unable to create output: %w", err)
		}
		defer func() { _ = f.Close() }()
		out = f
	}
	bw := bufio.NewWriter(out)
	defer func() { _ = bw.Flush() }()

	m := htmlmin.New()
	m.SetRemoveComments(!opts.NoComments)
	m.SetMinifyCode(!opts.NoCodeMinify)
	m.SetCodeAsHTML(opts.CodeAsHTML)

	buf := make([]byte, rt.ReadBufferSize)
	for {
		n, readErr := in.Read(buf)
		if n > 0 {
			if err := m.Digest(buf[:n], bw); err != nil {
				return fmt.Errorf("minify: %w", err)
			}
		}
		if readErr == io.EOF {
			break
		}
		if readErr != nil {
			return fmt.Errorf("read input: %w", readErr)
		}
	}
	if err := m.Finalize(bw); err != nil {
		return fmt.Errorf("minify: %w", err)
	}
	return bw.Flush()
}

// resolveOptions reads the document-shaping flags back out of viper, which
// was bound to the flag set (and, via AutomaticEnv, to HTMLMIN_* environment
// variables and the config file) in bindFlags.
func resolveOptions() Options {
	return Options{
		NoComments:   viper.GetBool("noComments"),
		NoCodeMinify: viper.GetBool("noCodeMinify"),
		CodeAsHTML:   viper.GetBool("codeAsHTML"),
		Output:       viper.GetString("output"),
	}
}

func main() {
	closeLog, err := setupLog()
	if err != nil {
		fmt.Fprintln(os.Stderr, "warning: logging disabled:", err)
	} else {
		defer func() { _ = closeLog() }()
	}

	if err := rootCmd.Execute(); err != nil {
		log.Error("htmlmin failed", "err", err)
		os.Exit(1)
	}
}
