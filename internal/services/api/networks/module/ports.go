package module

import netsdom "netmatch/internal/services/api/networks/domain"

// Ports is the port set other modules and the CLI can resolve by name
type Ports struct {
	Finder netsdom.ServicePort
}

// Ports returns the module ports
func (m *Module) Ports() any { return Ports{Finder: m.svc} }
