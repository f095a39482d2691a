package module

import groupsdom "netmatch/internal/services/api/groups/domain"

// Ports is the port set of the groups module
type Ports struct {
	Searcher groupsdom.ServicePort
}

// Ports returns the module ports
func (m *Module) Ports() any { return Ports{Searcher: m.svc} }
