package beanvalidation

import (
	"log/slog"
	"maps"
	"reflect"
	"sync/atomic"

	"github.com/dmitrymomot/beanform/pkg/constraint"
	"github.com/dmitrymomot/beanform/pkg/logger"
)

// ConstraintEngine exposes constraint metadata and single value validation.
// *constraint.Engine implements it.
type ConstraintEngine interface {
	ConstraintsForProperty(ownerType reflect.Type, field string) ([]constraint.Descriptor, error)
	ValidateValue(owner any, field string, value any, groups ...constraint.Group) ([]constraint.Violation, error)
}

// Context is an immutable snapshot of the validation configuration.
type Context struct {
	engine     ConstraintEngine
	resolvers  []PropertyResolver
	modifiers  map[constraint.Kind]TagModifier
	translator ViolationTranslator
	logger     *slog.Logger
}

// Option configures a Context.
type Option func(*Context)

// WithEngine sets the constraint engine. Required.
func WithEngine(engine ConstraintEngine) Option {
	return func(c *Context) {
		c.engine = engine
	}
}

// WithResolvers replaces the resolver chain. Nil resolvers are skipped.
func WithResolvers(resolvers ...PropertyResolver) Option {
	return func(c *Context) {
		c.resolvers = c.resolvers[:0:0]
		AddResolver(resolvers...)(c)
	}
}

// AddResolver appends resolvers to the chain.
func AddResolver(resolvers ...PropertyResolver) Option {
	return func(c *Context) {
		for _, r := range resolvers {
			if r != nil {
				c.resolvers = append(c.resolvers, r)
			}
		}
	}
}

// WithTagModifier registers the modifier for a constraint kind, replacing any
// modifier registered for the same kind. A nil modifier unregisters the kind.
func WithTagModifier(kind constraint.Kind, m TagModifier) Option {
	return func(c *Context) {
		if m == nil {
			delete(c.modifiers, kind)
			return
		}
		c.modifiers[kind] = m
	}
}

// WithoutTagModifiers removes every registered modifier, including the built-ins.
func WithoutTagModifiers() Option {
	return func(c *Context) {
		clear(c.modifiers)
	}
}

// WithViolationTranslator sets the violation translator. Nil is ignored.
func WithViolationTranslator(t ViolationTranslator) Option {
	return func(c *Context) {
		if t != nil {
			c.translator = t
		}
	}
}

// WithLogger sets the logger. Nil is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(c *Context) {
		if l != nil {
			c.logger = l
		}
	}
}

// NewContext creates a Context. Without options affecting them, the chain
// holds DefaultPropertyResolver, the built-in tag modifiers are registered and
// violations are translated to their default messages.
func NewContext(opts ...Option) (*Context, error) {
	c := &Context{
		resolvers:  []PropertyResolver{DefaultPropertyResolver{}},
		modifiers:  DefaultTagModifiers(),
		translator: MessageViolationTranslator{},
		logger:     logger.Discard(),
	}
	for _, opt := range opts {
		opt(c)
	}

	if c.engine == nil {
		return nil, ErrNoEngine
	}
	return c, nil
}

func (c *Context) Engine() ConstraintEngine { return c.engine }

func (c *Context) ViolationTranslator() ViolationTranslator { return c.translator }

func (c *Context) Logger() *slog.Logger { return c.logger }

// Resolvers returns a copy of the resolver chain.
func (c *Context) Resolvers() []PropertyResolver {
	return append([]PropertyResolver(nil), c.resolvers...)
}

// TagModifiers returns a copy of the kind to modifier mapping.
func (c *Context) TagModifiers() map[constraint.Kind]TagModifier {
	return maps.Clone(c.modifiers)
}

// TagModifier returns the modifier registered for exactly kind.
func (c *Context) TagModifier(kind constraint.Kind) (TagModifier, bool) {
	m, ok := c.modifiers[kind]
	return m, ok
}

// ResolveProperty asks each resolver in registration order and returns the
// first property resolved.
func (c *Context) ResolveProperty(fc FormComponent) (Property, bool) {
	for i, r := range c.resolvers {
		if p, ok := r.ResolveProperty(fc); ok {
			c.logger.Debug("property resolved",
				logger.Component(fc.ID()),
				logger.Property(p),
				logger.Resolver(i),
			)
			return p, true
		}
	}
	return Property{}, false
}

// Configuration is the startup handle for the active Context. It is written
// once at startup and read by every validator afterwards.
type Configuration struct {
	current atomic.Pointer[Context]
}

// NewConfiguration creates a Configuration holding a Context built from opts.
func NewConfiguration(opts ...Option) (*Configuration, error) {
	cfg := &Configuration{}
	if err := cfg.Reconfigure(opts...); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Context returns the active Context.
func (cfg *Configuration) Context() *Context {
	return cfg.current.Load()
}

// Reconfigure replaces the active Context with one built from opts. The
// previous Context is left untouched on error.
func (cfg *Configuration) Reconfigure(opts ...Option) error {
	c, err := NewContext(opts...)
	if err != nil {
		return err
	}
	cfg.current.Store(c)
	return nil
}
