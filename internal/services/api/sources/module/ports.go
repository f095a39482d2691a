package module

import sourcesdom "netmatch/internal/services/api/sources/domain"

// Ports is the port set of the sources module
type Ports struct {
	Searcher sourcesdom.ServicePort
}

// Ports returns the module ports
func (m *Module) Ports() any { return Ports{Searcher: m.svc} }
