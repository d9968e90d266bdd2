package fetch

import (
	"context"
	"fmt"
	"sync"

	"github.com/lotto-tools/report-center/pkg/services/registry"
)

// SourceFactory builds a Source from one bank profile.
type SourceFactory func(ctx context.Context, profile registry.BankProfile) (Source, error)

// FactoryRegistry maps driver names to source factories.
type FactoryRegistry interface {
	Register(driver string, factory SourceFactory) error
	Create(ctx context.Context, profile registry.BankProfile) (Source, error)
	ListDrivers() []string
}

type factoryRegistry struct {
	mu        sync.RWMutex
	factories map[string]SourceFactory
}

// NewFactoryRegistry creates a registry pre-loaded with the given factories.
func NewFactoryRegistry(factories map[string]SourceFactory) FactoryRegistry {
	r := &factoryRegistry{factories: make(map[string]SourceFactory)}
	for driver, factory := range factories {
		_ = r.Register(driver, factory)
	}
	return r
}

func (r *factoryRegistry) Register(driver string, factory SourceFactory) error {
	if driver == "" {
		return fmt.Errorf("driver name cannot be empty")
	}
	if factory == nil {
		return fmt.Errorf("factory cannot be nil")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.factories[driver]; exists {
		return fmt.Errorf("driver %q is already registered", driver)
	}
	r.factories[driver] = factory
	return nil
}

func (r *factoryRegistry) Create(ctx context.Context, profile registry.BankProfile) (Source, error) {
	r.mu.RLock()
	factory, exists := r.factories[profile.Driver]
	r.mu.RUnlock()

	if !exists {
		return nil, fmt.Errorf("driver %q is not registered", profile.Driver)
	}
	return factory(ctx, profile)
}

func (r *factoryRegistry) ListDrivers() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	drivers := make([]string, 0, len(r.factories))
	for driver := range r.factories {
		drivers = append(drivers, driver)
	}
	return drivers
}

// BuildSources instantiates a Source per configured bank profile.
func BuildSources(
	ctx context.Context,
	factories FactoryRegistry,
	profiles []registry.BankProfile,
) ([]Source, error) {
	sources := make([]Source, 0, len(profiles))
	for _, profile := range profiles {
		src, err := factories.Create(ctx, profile)
		if err != nil {
			return nil, fmt.Errorf("bank %q: %w", profile.Name, err)
		}
		sources = append(sources, src)
	}
	return sources, nil
}
