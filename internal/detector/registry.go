package detector

import (
	"sync"

	"github.com/rxtech-lab/argo-signals/internal/indicator"
	"github.com/rxtech-lab/argo-signals/pkg/errors"
)

// Registry holds the detectors a scan runs, in registration order.
type Registry interface {
	Register(detector Detector) error
	Get(name string) (Detector, error)
	List() []string
	Remove(name string) error
	// Detectors returns the registered detectors in registration order.
	Detectors() []Detector
}

// RegistryV1 is the default Registry.
type RegistryV1 struct {
	detectors map[string]Detector
	order     []string
	mu        sync.RWMutex
}

// NewRegistry creates an empty detector registry.
func NewRegistry() *RegistryV1 {
	return &RegistryV1{
		detectors: make(map[string]Detector),
		order:     nil,
		mu:        sync.RWMutex{},
	}
}

// Register adds a detector to the registry.
func (r *RegistryV1) Register(detector Detector) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	name := detector.Name()
	if _, exists := r.detectors[name]; exists {
		return errors.Newf(errors.ErrCodeDetectorAlreadyExists, "detector %s already registered", name)
	}

	r.detectors[name] = detector
	r.order = append(r.order, name)

	return nil
}

// Get retrieves a detector by name.
func (r *RegistryV1) Get(name string) (Detector, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	detector, exists := r.detectors[name]
	if !exists {
		return nil, errors.Newf(errors.ErrCodeDetectorNotFound, "detector %s not found", name)
	}

	return detector, nil
}

// List returns the registered detector names in registration order.
func (r *RegistryV1) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, len(r.order))
	copy(names, r.order)

	return names
}

// Remove removes a detector from the registry.
func (r *RegistryV1) Remove(name string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.detectors[name]; !exists {
		return errors.Newf(errors.ErrCodeDetectorNotFound, "detector %s not found", name)
	}

	delete(r.detectors, name)

	for i, n := range r.order {
		if n == name {
			r.order = append(r.order[:i:i], r.order[i+1:]...)
			break
		}
	}

	return nil
}

func (r *RegistryV1) Detectors() []Detector {
	r.mu.RLock()
	defer r.mu.RUnlock()

	detectors := make([]Detector, 0, len(r.order))
	for _, name := range r.order {
		detectors = append(detectors, r.detectors[name])
	}

	return detectors
}

// Settings selects the detectors of a scan.
type Settings struct {
	BreakoutSystems    []int
	Ichimoku           bool
	MACDCross          bool
	Divergence         bool
	DivergenceLookback int
}

// DefaultSettings enables every detector with both Turtle systems.
func DefaultSettings() Settings {
	return Settings{
		BreakoutSystems:    []int{1, 2},
		Ichimoku:           true,
		MACDCross:          true,
		Divergence:         true,
		DivergenceLookback: defaultLookback,
	}
}

// Build registers the detectors enabled by settings. All detectors share
// cache, which may be nil.
func Build(settings Settings, cache *indicator.Cache) (*RegistryV1, error) {
	registry := NewRegistry()
	opts := []Option{WithCache(cache)}

	var detectors []Detector
	for _, system := range settings.BreakoutSystems {
		detectors = append(detectors, NewBreakout(system, opts...))
	}

	if settings.Ichimoku {
		detectors = append(detectors, NewIchimoku(opts...))
	}

	if settings.MACDCross {
		detectors = append(detectors, NewMACDCross(opts...))
	}

	if settings.Divergence {
		detectors = append(detectors, NewDivergence(settings.DivergenceLookback, opts...))
	}

	for _, d := range detectors {
		if err := registry.Register(d); err != nil {
			return nil, err
		}
	}

	return registry, nil
}
