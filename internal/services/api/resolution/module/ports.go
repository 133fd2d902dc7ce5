package module

import (
	resolvedom "lingo/internal/services/resolve/domain"
)

// Ports carries the resolve service surfaces this module serves over HTTP
type Ports struct {
	Resolver    resolvedom.ResolverPort
	Maintenance resolvedom.MaintenancePort
}

// Ports returns the module ports
func (m *Module) Ports() any { return m.ports }
