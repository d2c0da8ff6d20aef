package pipeline

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/automata/pkg/cache"
	"github.com/matzehuels/automata/pkg/errors"
	"github.com/matzehuels/automata/pkg/fa"
	"github.com/matzehuels/automata/pkg/fa/definition"
	"github.com/matzehuels/automata/pkg/observability"
)

// Runner applies operations with caching.
//
// The Runner is stateless except for the cache and logger. Multiple
// goroutines can use the same Runner with different options.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger
}

// NewRunner creates a runner. A nil cache disables caching, a nil keyer
// uses [cache.DefaultKeyer] and a nil logger uses the charm default logger.
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if c == nil {
		c = cache.NewNullCache()
	}
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{Cache: c, Keyer: keyer, Logger: logger}
}

// Loaded is a decoded definition file.
type Loaded struct {
	Path string
	// Hash is the SHA-256 of the file contents.
	Hash string
	*definition.Definition
}

// Load reads and decodes the definition at path. A missing file is
// reported as FILE_NOT_FOUND.
func (r *Runner) Load(ctx context.Context, path string) (*Loaded, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	hooks := observability.Operations()
	hooks.OnLoadStart(ctx, path)
	start := time.Now()

	loaded, err := load(path)

	states := 0
	if loaded != nil {
		states = loaded.Automaton.CountStates()
	}
	hooks.OnLoadComplete(ctx, path, states, time.Since(start), err)
	if err != nil {
		return nil, err
	}

	r.Logger.Debug("loaded definition",
		"path", path,
		"states", states,
		"transitions", loaded.Automaton.CountTransitions())
	return loaded, nil
}

func load(path string) (*Loaded, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "definition %s", path)
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	def, err := definition.ParseAs(data, definition.FormatOf(path))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return &Loaded{Path: path, Hash: cache.Hash(data), Definition: def}, nil
}

// Apply loads the inputs, applies the operation and renders the listing.
// Listings are cached under the operation name and the input hashes; a
// cache hit skips the computation and leaves Result.Automaton nil.
func (r *Runner) Apply(ctx context.Context, opts Options) (*Result, error) {
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}
	start := time.Now()

	inputs := make([]*Loaded, len(opts.Inputs))
	hashes := make([]string, len(opts.Inputs))
	for i, path := range opts.Inputs {
		l, err := r.Load(ctx, path)
		if err != nil {
			return nil, fmt.Errorf("load: %w", err)
		}
		inputs[i], hashes[i] = l, l.Hash
	}

	op := string(opts.Operation)
	key := r.Keyer.ResultKey(op, hashes...)
	if !opts.Refresh {
		data, hit, err := r.Cache.Get(ctx, key)
		if err != nil {
			r.Logger.Warn("cache read failed", "op", op, "err", err)
		}
		if hit {
			observability.Cache().OnCacheHit(ctx, op)
			r.Logger.Debug("cache hit", "op", op)
			return &Result{Listing: string(data), Cached: true, Duration: time.Since(start)}, nil
		}
		observability.Cache().OnCacheMiss(ctx, op)
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	res, err := r.apply(ctx, opts.Operation, inputs)
	if err != nil {
		return nil, err
	}

	listing := res.String()
	if err := r.Cache.Set(ctx, key, []byte(listing), cache.DefaultTTL); err != nil {
		r.Logger.Warn("cache write failed", "op", op, "err", err)
	} else {
		observability.Cache().OnCacheSet(ctx, op, len(listing))
	}

	return &Result{Automaton: res, Listing: listing, Duration: time.Since(start)}, nil
}

func (r *Runner) apply(ctx context.Context, op Operation, inputs []*Loaded) (res *fa.Automaton, err error) {
	in := make([]*fa.Automaton, len(inputs))
	states := 0
	for i, l := range inputs {
		in[i] = l.Automaton
		states += l.Automaton.CountStates()
	}

	hooks := observability.Operations()
	hooks.OnApplyStart(ctx, string(op), states)
	start := time.Now()
	defer func() {
		n := 0
		if res != nil {
			n = res.CountStates()
		}
		hooks.OnApplyComplete(ctx, string(op), n, time.Since(start), err)
	}()

	res = operations[op].apply(in)
	if !res.IsValid() {
		return nil, errors.New(errors.ErrCodeInternal, "%s produced an invalid automaton", op)
	}

	r.Logger.Info("applied operation",
		"op", op,
		"states", res.CountStates(),
		"transitions", res.CountTransitions(),
		"duration", time.Since(start))
	return res, nil
}
