package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/mdtext/mdtext"
	"github.com/mdtext/mdtext/internal/config"
	"github.com/mdtext/mdtext/internal/render"
)

// Sentinel errors for CLI operations.
var (
	ErrReadInput    = errors.New("failed to read input")
	ErrInvalidWidth = errors.New("invalid width")
)

// run executes the CLI with the given arguments and environment.
func run(args []string, env *Environment) error {
	flags, positional, err := parseFlags(args[1:])
	if err != nil {
		return err
	}

	if flags.version {
		fmt.Fprintf(env.Stdout, "md2term %s\n", Version)
		return nil
	}

	if flags.width < 0 {
		return fmt.Errorf("%w: %d (must not be negative)", ErrInvalidWidth, flags.width)
	}

	cfg := &config.Config{}
	if flags.config != "" {
		cfg, err = config.Load(flags.config)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
	}

	source, err := readInput(positional, env)
	if err != nil {
		return err
	}

	doc, err := mdtext.ConvertString(string(source), resolveOptions(flags, cfg))
	if err != nil {
		return fmt.Errorf("converting markdown: %w", err)
	}

	renderer := render.New(resolveRenderConfig(flags, cfg, env))
	return renderer.RenderTo(env.Stdout, doc)
}

// readInput reads the markdown source from the positional file argument,
// or from stdin when none is given.
func readInput(positional []string, env *Environment) ([]byte, error) {
	if len(positional) == 0 {
		data, err := io.ReadAll(env.Stdin)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrReadInput, err)
		}
		return data, nil
	}

	data, err := os.ReadFile(positional[0]) // #nosec G304 -- path comes from the user's own argument
	if err != nil {
		if errors.Is(err, os.ErrNotExist) || errors.Is(err, os.ErrPermission) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %v", ErrReadInput, err)
	}
	return data, nil
}

// resolveOptions merges CLI flags into config-derived options. CLI wins.
func resolveOptions(flags *cliFlags, cfg *config.Config) mdtext.Options {
	opts := cfg.Options()
	if flags.linksBold != nil {
		opts.LinkStyle.Bold = flags.linksBold
	}
	if flags.linksItalic != nil {
		opts.LinkStyle.Italic = flags.linksItalic
	}
	if flags.linksStrikeout != nil {
		opts.LinkStyle.Strikeout = flags.linksStrikeout
	}
	return opts
}

// resolveRenderConfig merges flags, config, and terminal state into renderer
// settings. Width: flag, then config, then the detected terminal width.
// Color: --no-color, then NO_COLOR, then config, then TTY detection.
func resolveRenderConfig(flags *cliFlags, cfg *config.Config, env *Environment) render.Config {
	termWidth, isTTY := env.TermWidth()

	width := flags.width
	if width == 0 {
		width = cfg.Render.Width
	}
	if width == 0 && isTTY {
		width = termWidth
	}

	color := isTTY
	if cfg.Render.Color != nil {
		color = *cfg.Render.Color
	}
	if flags.noColor || env.Getenv("NO_COLOR") != "" {
		color = false
	}

	codeStyle := flags.codeStyle
	if codeStyle == "" {
		codeStyle = cfg.Render.CodeStyle
	}

	return render.Config{
		Width:     width,
		Color:     color,
		CodeStyle: codeStyle,
	}
}
