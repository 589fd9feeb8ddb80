// Package app hosts the Controller, the single owner of generator state.
// User interfaces send it intents and re-render from the notifications it
// returns.
package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/alexisbeaulieu97/palettegen/internal/format"
	"github.com/alexisbeaulieu97/palettegen/internal/harmony"
	"github.com/alexisbeaulieu97/palettegen/internal/i18n"
	"github.com/alexisbeaulieu97/palettegen/internal/logger"
	"github.com/alexisbeaulieu97/palettegen/internal/palette"
	"github.com/alexisbeaulieu97/palettegen/internal/store"
	palerrors "github.com/alexisbeaulieu97/palettegen/pkg/errors"
)

// Clipboard copies text, reporting success. Failures are not errors.
type Clipboard interface {
	Copy(text string) bool
}

// Defaults seed the state when nothing was saved.
type Defaults struct {
	Mode     harmony.Mode
	Format   format.CodeFormat
	Language string
}

// Options configures a Controller.
type Options struct {
	Store     store.Store
	Sampler   palette.Sampler
	Clipboard Clipboard
	Logger    *logger.Logger
	Now       func() time.Time
	Defaults  Defaults
}

// Controller applies intents to the generator state and persists it.
type Controller struct {
	state      *palette.State
	store      store.Store
	sampler    palette.Sampler
	clip       Clipboard
	log        *logger.Logger
	now        func() time.Time
	translator i18n.Translator
	restored   bool
}

// NewController restores saved state from the store, or starts from the
// configured defaults.
func NewController(opts Options) (*Controller, error) {
	c := &Controller{
		store:   opts.Store,
		sampler: opts.Sampler,
		clip:    opts.Clipboard,
		log:     opts.Logger.With("component", "controller"),
		now:     opts.Now,
	}
	if c.store == nil {
		c.store = store.NewMemory()
	}
	if c.sampler == nil {
		c.sampler = harmony.NewRandomSampler()
	}
	if c.now == nil {
		c.now = time.Now
	}

	c.state = defaultState(opts.Defaults)
	if snap, ok := c.store.Load(); ok {
		st, err := snap.State()
		if err != nil {
			c.log.Warn(fmt.Sprintf("saved state unusable, starting fresh: %v", err))
		} else {
			c.state = st
			c.restored = true
		}
	}
	c.state.Language = i18n.Normalize(c.state.Language)

	tr, err := i18n.New(c.state.Language)
	if err != nil {
		return nil, fmt.Errorf("load translations: %w", err)
	}
	c.translator = tr

	return c, nil
}

func defaultState(d Defaults) *palette.State {
	st := palette.NewState()
	if d.Mode.Valid() {
		st.Mode = d.Mode
	}
	if d.Format.Valid() {
		st.Format = d.Format
	}
	if d.Language != "" {
		st.Language = d.Language
	}
	return st
}

// Start generates the first palette of a session.
func (c *Controller) Start(ctx context.Context) (Result, error) {
	return c.Dispatch(ctx, Generate{})
}

// Dispatch applies one intent. Persistence failures are logged, never
// returned; errors report invalid intents only.
func (c *Controller) Dispatch(ctx context.Context, in Intent) (Result, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	if logger.CorrelationID(ctx) == "" {
		ctx = logger.WithCorrelationID(ctx, logger.NewCorrelationID())
	}
	if in == nil {
		return Result{}, palerrors.NewValidationError("intent", "no intent given", nil)
	}
	log := c.log.ForContext(ctx).With("intent", in.intentName())

	res, save, err := c.apply(in)
	if err != nil {
		log.Debug(fmt.Sprintf("intent rejected: %v", err))
		return Result{}, err
	}
	if save {
		c.persist(log)
	}
	log.Debug("intent handled")
	return res, nil
}

func (c *Controller) apply(in Intent) (Result, bool, error) {
	switch in := in.(type) {
	case Generate:
		c.state.Generate(c.sampler)
		return notify(PaletteChanged, HistoryChanged, InfoChanged), true, nil

	case ToggleLock:
		if _, err := c.state.ToggleLock(in.Index); err != nil {
			return Result{}, false, palerrors.NewValidationError("slot",
				fmt.Sprintf("slot %d does not exist, use 1-%d", in.Index+1, palette.Size), err)
		}
		return notify(PaletteChanged), true, nil

	case ChangeMode:
		if err := c.state.SetMode(in.Mode); err != nil {
			return Result{}, false, palerrors.NewValidationError("mode", err.Error(), err)
		}
		c.state.Generate(c.sampler)
		return notify(PaletteChanged, HistoryChanged, InfoChanged), true, nil

	case ChangeFormat:
		if err := c.state.SetFormat(in.Format); err != nil {
			return Result{}, false, palerrors.NewValidationError("format", err.Error(), err)
		}
		return notify(PaletteChanged), true, nil

	case Export:
		payload, err := c.export(in.Kind)
		if err != nil {
			return Result{}, false, err
		}
		return Result{Export: &payload}, false, nil

	case ClearHistory:
		c.state.ClearHistory()
		return notify(HistoryChanged), true, nil

	case LoadHistory:
		if _, err := c.state.LoadHistory(in.Index); err != nil {
			if errors.Is(err, palette.ErrIndexOutOfRange) {
				return Result{}, false, palerrors.NewValidationError("history",
					fmt.Sprintf("entry %d does not exist", in.Index+1), err)
			}
			return Result{}, false, err
		}
		return notify(PaletteChanged, InfoChanged), false, nil

	case SetLanguage:
		tr, err := i18n.New(in.Tag)
		if err != nil {
			return Result{}, false, err
		}
		c.translator = tr
		c.state.Language = tr.Lang()
		return notify(PaletteChanged, HistoryChanged, InfoChanged), true, nil

	case Copy:
		if in.Index < 0 || in.Index >= len(c.state.Palette) {
			return Result{}, false, palerrors.NewValidationError("slot",
				fmt.Sprintf("slot %d has no color", in.Index+1), palette.ErrIndexOutOfRange)
		}
		return Result{Copied: c.copy(c.state.Palette[in.Index].Hex())}, false, nil

	case CopyExport:
		payload, err := c.export(in.Kind)
		if err != nil {
			return Result{}, false, err
		}
		return Result{Export: &payload, Copied: c.copy(payload.Body)}, false, nil

	default:
		return Result{}, false, palerrors.NewValidationError("intent", fmt.Sprintf("unsupported intent %T", in), nil)
	}
}

func (c *Controller) export(kind format.ExportKind) (format.Payload, error) {
	payload, err := format.Export(kind, c.state.Palette, c.state.Mode, c.now())
	if err != nil {
		return format.Payload{}, palerrors.NewValidationError("export", err.Error(), err)
	}
	payload.Title = c.translator.T("export." + kind.String())
	return payload, nil
}

func (c *Controller) copy(text string) bool {
	if c.clip == nil {
		return false
	}
	return c.clip.Copy(text)
}

func (c *Controller) persist(log *logger.Logger) {
	if err := c.store.Save(store.FromState(c.state)); err != nil {
		log.Error(err, "save state")
	}
}

// State returns a copy of the current state.
func (c *Controller) State() *palette.State {
	return c.state.Clone()
}

// Palette returns a copy of the current palette.
func (c *Controller) Palette() palette.Palette {
	return c.state.Palette.Clone()
}

// Codes renders the palette in the active code format.
func (c *Controller) Codes() []string {
	return c.state.Codes()
}

// Info describes the palette; ok is false before the first generation.
func (c *Controller) Info() (format.Info, bool) {
	return c.state.Info()
}

// Mode returns the active harmony mode.
func (c *Controller) Mode() harmony.Mode {
	return c.state.Mode
}

// Format returns the active code format.
func (c *Controller) Format() format.CodeFormat {
	return c.state.Format
}

// Locked reports whether slot i is locked.
func (c *Controller) Locked(i int) bool {
	return c.state.Locks.Has(i)
}

// History returns past palettes, newest first.
func (c *Controller) History() []palette.Entry {
	return c.state.History.Entries()
}

// Translator returns the translator for the active language.
func (c *Controller) Translator() i18n.Translator {
	return c.translator
}

// Restored reports whether state was loaded from the store.
func (c *Controller) Restored() bool {
	return c.restored
}
