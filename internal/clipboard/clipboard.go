// Package clipboard copies text to the user's clipboard, trying several
// mechanisms in order.
package clipboard

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	sysclip "github.com/atotto/clipboard"
	osc52 "github.com/aymanbagabas/go-osc52/v2"

	"github.com/alexisbeaulieu97/palettegen/internal/logger"
)

// Strategy names accepted in configuration.
const (
	StrategySystem = "system"
	StrategyOSC52  = "osc52"
	StrategyFile   = "file"
)

// ErrUnsupported is returned by strategies that cannot run on this host.
var ErrUnsupported = errors.New("clipboard unsupported")

// Strategy is a single way of placing text on the clipboard.
type Strategy interface {
	Name() string
	Copy(text string) error
}

// Chain tries strategies in order until one succeeds.
type Chain struct {
	strategies []Strategy
	log        *logger.Logger
}

// NewChain returns a chain over strategies.
func NewChain(log *logger.Logger, strategies ...Strategy) *Chain {
	return &Chain{strategies: strategies, log: log.With("component", "clipboard")}
}

// Copy reports whether any strategy accepted the text. Failures are never
// surfaced to the caller.
func (c *Chain) Copy(text string) bool {
	if c == nil {
		return false
	}
	for _, s := range c.strategies {
		if err := s.Copy(text); err != nil {
			c.log.With("strategy", s.Name()).Debug(fmt.Sprintf("copy failed: %v", err))
			continue
		}
		c.log.With("strategy", s.Name()).Debug("copied")
		return true
	}
	return false
}

// Names lists the strategies in the order they are tried.
func (c *Chain) Names() []string {
	names := make([]string, len(c.strategies))
	for i, s := range c.strategies {
		names[i] = s.Name()
	}
	return names
}

// System uses the platform clipboard utilities.
type System struct{}

func (System) Name() string { return StrategySystem }

func (System) Copy(text string) error {
	if sysclip.Unsupported {
		return ErrUnsupported
	}
	return sysclip.WriteAll(text)
}

// OSC52 asks the terminal emulator to set the clipboard via an escape
// sequence. It works over SSH where no system clipboard is reachable.
type OSC52 struct {
	Out  io.Writer
	Tmux bool
}

func (OSC52) Name() string { return StrategyOSC52 }

func (o OSC52) Copy(text string) error {
	if o.Out == nil {
		return ErrUnsupported
	}
	seq := osc52.New(text)
	if o.Tmux {
		seq = seq.Tmux()
	}
	_, err := seq.WriteTo(o.Out)
	return err
}

// File writes the copied text to a file, replacing previous contents.
type File struct {
	Path string
}

func (File) Name() string { return StrategyFile }

func (f File) Copy(text string) error {
	if f.Path == "" {
		return ErrUnsupported
	}
	if err := os.MkdirAll(filepath.Dir(f.Path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(f.Path, []byte(text), 0o644)
}

// Options configures FromNames.
type Options struct {
	Names    []string
	File     string
	Terminal io.Writer
	Logger   *logger.Logger
}

// FromNames builds a chain from configured strategy names. A configured
// file path is always tried first so scripted runs are deterministic.
func FromNames(opts Options) (*Chain, error) {
	var strategies []Strategy
	seen := map[string]bool{}

	add := func(name string) error {
		if seen[name] {
			return nil
		}
		seen[name] = true
		switch name {
		case StrategySystem:
			strategies = append(strategies, System{})
		case StrategyOSC52:
			strategies = append(strategies, OSC52{Out: opts.Terminal, Tmux: os.Getenv("TMUX") != ""})
		case StrategyFile:
			if opts.File == "" {
				return fmt.Errorf("clipboard strategy %q needs a file path", name)
			}
			strategies = append(strategies, File{Path: opts.File})
		default:
			return fmt.Errorf("unknown clipboard strategy %q", name)
		}
		return nil
	}

	if opts.File != "" {
		if err := add(StrategyFile); err != nil {
			return nil, err
		}
	}
	for _, name := range opts.Names {
		if err := add(name); err != nil {
			return nil, err
		}
	}

	return NewChain(opts.Logger, strategies...), nil
}
