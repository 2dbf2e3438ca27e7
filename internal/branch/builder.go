package branch

import (
	"fmt"

	"branch-builder/internal/adapter"
	"branch-builder/internal/conflict"
	"branch-builder/internal/directive"
	"branch-builder/internal/experiment"
	"branch-builder/internal/logger"
	"branch-builder/internal/space"
)

// Builder is one branch resolution session. It owns the conflict set and
// the operation log; neither is safe for concurrent use.
type Builder struct {
	parent *experiment.Config
	child  *experiment.Config

	parentSpace *space.Space
	childSpace  *space.Space

	conflicts  []conflict.Conflict
	log        *OperationLog
	directives []directive.Directive

	config       Config
	lggr         logger.Logger
	factory      adapter.Factory
	spaceBuilder space.Builder
}

// Option configures a Builder.
type Option func(*Builder)

// WithConfig sets the session configuration.
func WithConfig(cfg Config) Option {
	return func(b *Builder) { b.config = cfg }
}

// WithLogger sets the logger. The default discards everything.
func WithLogger(lggr logger.Logger) Option {
	return func(b *Builder) { b.lggr = lggr.Named("Branch") }
}

// WithFactory replaces the adapter factory.
func WithFactory(f adapter.Factory) Option {
	return func(b *Builder) { b.factory = f }
}

// WithSpaceBuilder replaces the space builder used for both configurations.
func WithSpaceBuilder(sb space.Builder) Option {
	return func(b *Builder) { b.spaceBuilder = sb }
}

// NewBuilder detects the conflicts between parent and child and replays the
// directives found in the child's arguments.
//
// On success the child's arguments are replaced by the corrected list and a
// non-empty branch key is consumed as the new experiment name. On failure
// child is left untouched.
func NewBuilder(parent, child *experiment.Config, opts ...Option) (*Builder, error) {
	if parent == nil || child == nil {
		return nil, fmt.Errorf("%w: parent and child configurations are required", space.ErrInvalidArgument)
	}

	b := &Builder{
		parent:       parent,
		child:        child,
		log:          newOperationLog(),
		config:       DefaultConfig(),
		lggr:         logger.Nop(),
		factory:      adapter.DefaultFactory{},
		spaceBuilder: space.ArgBuilder{},
	}

	for _, opt := range opts {
		opt(b)
	}

	corrected, directives, err := directive.Parse(child.Metadata.UserArgs)
	if err != nil {
		return nil, fmt.Errorf("child %s: %w", child.Name, err)
	}

	b.directives = directives

	b.parentSpace, err = b.spaceBuilder.BuildFrom(parent.Metadata.UserArgs)
	if err != nil {
		return nil, fmt.Errorf("parent %s: %w", parent.Name, err)
	}

	b.childSpace, err = b.spaceBuilder.BuildFrom(corrected)
	if err != nil {
		return nil, fmt.Errorf("child %s: %w", child.Name, err)
	}

	b.conflicts = conflict.Detect(b.parentSpace, b.childSpace)

	b.lggr.Debugw("Detected conflicts",
		"parent", parent.Name,
		"child", child.Name,
		"conflicts", len(b.conflicts),
		"directives", len(directives),
	)

	for _, d := range directives {
		if err := b.replay(d); err != nil {
			return nil, fmt.Errorf("directive %q: %w", d.Arg, err)
		}
	}

	child.Metadata.UserArgs = corrected

	if child.Branch != "" {
		b.ChangeExperimentName(child.Branch)
		child.Branch = ""
	}

	return b, nil
}

// replay applies a directive by literal name. Keywords and wildcards are not
// expanded here: a dimension may legitimately be called "anyNew".
func (b *Builder) replay(d directive.Directive) error {
	b.lggr.Debugw("Replaying directive", "kind", d.Kind.String(), "name", d.Name, "target", d.Target)

	switch d.Kind {
	case directive.KindAppend:
		idx, err := b.lookup(d.Name, addStatuses)
		if err != nil {
			return err
		}

		return b.add([]int{idx})

	case directive.KindDrop:
		idx, err := b.lookup(d.Name, removeStatuses)
		if err != nil {
			return err
		}

		return b.remove([]int{idx})

	case directive.KindRename:
		return b.RenameDimension(d.Name, d.Target)

	default:
		return fmt.Errorf("%w: unknown directive kind %d", directive.ErrDirectiveParse, d.Kind)
	}
}

// Directives returns the directives parsed from the child's arguments, in
// replay order.
func (b *Builder) Directives() []directive.Directive {
	return b.directives
}

// ParentSpace returns the space built from the parent's arguments.
func (b *Builder) ParentSpace() *space.Space {
	return b.parentSpace
}

// ChildSpace returns the space built from the child's corrected arguments.
func (b *Builder) ChildSpace() *space.Space {
	return b.childSpace
}

// Config returns the session configuration.
func (b *Builder) Config() Config {
	return b.config
}

// Log returns the operation log.
func (b *Builder) Log() *OperationLog {
	return b.log
}
