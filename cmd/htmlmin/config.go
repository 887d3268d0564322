package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"os/exec"
	"path"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const defaultConfigYAML = `# remove HTML comments (default true)
noComments: false
# minify <script>/<style>/<code> bodies (default true)
noCodeMinify: false
# minify <code> bodies as nested HTML instead of JavaScript
codeAsHTML: false
`

var configCmd = &cobra.Command{
	Use:     "config",
	Short:   "Edit the htmlmin config file",
	Long:    "Edit the htmlmin config file. We'll use $EDITOR to determine which editor to use. If the config file doesn't exist, it will be created.",
	Example: "htmlmin config\nhtmlmin config --config path/to/config.yml",
	Args:    cobra.NoArgs,
	RunE: func(*cobra.Command, []string) error {
		if err := ensureConfigFile(); err != nil {
			return err
		}

		editor := os.Getenv("EDITOR")
		if editor == "" {
			editor = "vi"
		}
		c := exec.Command(editor, configFile)
		c.Stdin = os.Stdin
		c.Stdout = os.Stdout
		c.Stderr = os.Stderr
		if err := c.Run(); err != nil {
			return fmt.Errorf("unable to run editor: %w", err)
		}

		fmt.Println("Wrote config file to:", configFile)
		return nil
	},
}

func ensureConfigFile() error {
	if configFile == "" {
		configFile = viper.GetViper().ConfigFileUsed()
	}
	if configFile == "" {
		dir, err := os.UserConfigDir()
		if err != nil {
			return fmt.Errorf("could not determine config directory: %w", err)
		}
		configFile = filepath.Join(dir, "htmlmin", "config.yml")
	}

	if ext := path.Ext(configFile); ext != ".yaml" && ext != ".yml" {
		return fmt.Errorf("%q is not a supported configuration type: use %q or %q", ext, ".yaml", ".yml")
	}

	if _, err := os.Stat(configFile); errors.Is(err, fs.ErrNotExist) {
		if err := os.MkdirAll(filepath.Dir(configFile), 0o700); err != nil {
			return fmt.Errorf("unable to create directory: %w", err)
		}
		f, err := os.Create(configFile)
		if err != nil {
			return fmt.Errorf("unable to create config file: %w", err)
		}
		defer func() { _ = f.Close() }()
		if _, err := f.WriteString(defaultConfigYAML); err != nil {
			return fmt.Errorf("unable to write config file: %w", err)
		}
	} else if err != nil {
		return fmt.Errorf("unable to stat config file: %w", err)
	}
	return nil
}
