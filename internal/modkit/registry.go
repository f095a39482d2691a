package modkit

import (
	"fmt"
	"reflect"
	"sync"
)

// ports of every mounted module, by module name
var registry sync.Map

// Register publishes ports under name; a later call for the same name wins
func Register(name string, ports any) { registry.Store(name, ports) }

// PortsAs looks up the ports published under name and asserts them to T
func PortsAs[T any](name string) (T, bool) {
	v, _ := registry.Load(name)
	out, ok := v.(T)
	return out, ok
}

// Reset forgets every published port set
func Reset() { registry.Clear() }

// PortsOf finds a T among m's ports
// the port set matches itself first, then each exported field in order
func PortsOf[T any](m Module) (T, bool) {
	p := m.Ports()
	if out, ok := p.(T); ok {
		return out, true
	}
	var zero T
	if p == nil {
		return zero, false
	}
	rv := reflect.ValueOf(p)
	if rv.Kind() != reflect.Struct {
		return zero, false
	}
	for i := range rv.NumField() {
		f := rv.Field(i)
		if !f.CanInterface() {
			continue
		}
		if out, ok := f.Interface().(T); ok {
			return out, true
		}
	}
	return zero, false
}

// MustPortsOf panics when m has no T
func MustPortsOf[T any](m Module) T {
	out, ok := PortsOf[T](m)
	if !ok {
		panic(fmt.Sprintf("modkit: requested port not found on module %s", m.Name()))
	}
	return out
}
