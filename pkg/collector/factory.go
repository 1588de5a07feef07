package collector

import (
	"github.com/buildstamp/buildstamp/pkg/defaults"
	"github.com/buildstamp/buildstamp/pkg/sysenv"
)

// Factory creates collectors with their dependencies.
// This interface enables dependency injection for testing.
type Factory interface {
	CreateBuildToolCollector(profiles []string) Collector
	CreateArtifactCollector(id, groupID, version string) Collector
	CreateSystemPropsCollector() Collector
	CreatePrefixedCollector(source map[string]string) Collector
}

// DefaultFactory creates collectors with production dependencies.
type DefaultFactory struct {
	prefix   string
	lookup   VersionLookup
	sysProps sysenv.Snapshot
}

// Option configures a DefaultFactory.
type Option func(*DefaultFactory)

// WithPrefix sets the property key prefix.
func WithPrefix(prefix string) Option {
	return func(f *DefaultFactory) {
		f.prefix = prefix
	}
}

// WithVersionLookup sets the build tool version lookup capability.
func WithVersionLookup(lookup VersionLookup) Option {
	return func(f *DefaultFactory) {
		f.lookup = lookup
	}
}

// WithSystemProperties replaces the runtime-identity snapshot, mainly for
// tests that need deterministic values.
func WithSystemProperties(snap sysenv.Snapshot) Option {
	return func(f *DefaultFactory) {
		f.sysProps = snap
	}
}

// NewDefaultFactory creates a factory with default settings: the shared
// prefix and a snapshot of the current runtime identity.
func NewDefaultFactory(opts ...Option) *DefaultFactory {
	f := &DefaultFactory{
		prefix:   defaults.Prefix,
		sysProps: sysenv.SystemProperties(),
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Prefix returns the configured property key prefix.
func (f *DefaultFactory) Prefix() string {
	return f.prefix
}

// CreateBuildToolCollector creates the build-tool identity collector.
func (f *DefaultFactory) CreateBuildToolCollector(profiles []string) Collector {
	return &BuildToolCollector{
		Prefix:         f.prefix,
		Lookup:         f.lookup,
		ActiveProfiles: profiles,
	}
}

// CreateArtifactCollector creates the artifact identity collector.
func (f *DefaultFactory) CreateArtifactCollector(id, groupID, version string) Collector {
	return &ArtifactCollector{
		ID:      id,
		GroupID: groupID,
		Version: version,
	}
}

// CreateSystemPropsCollector creates the default system properties collector.
func (f *DefaultFactory) CreateSystemPropsCollector() Collector {
	return &SystemPropsCollector{
		Prefix: f.prefix,
		Props:  f.sysProps,
	}
}

// CreatePrefixedCollector creates a prefixed-properties collector over the
// given source set.
func (f *DefaultFactory) CreatePrefixedCollector(source map[string]string) Collector {
	return &PrefixedCollector{
		Prefix: f.prefix,
		Source: source,
	}
}
