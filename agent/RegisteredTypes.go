package agent

import (
	"fmt"
	"reflect"
)

// Type represents a specific type of an agent Config. Config's with
// this type can create Agents of the corresponding type.
type Type string

// Registered types with the package. Once a Type has been registered
// with this map, a TypedConfig with that type can be deserialized.
//
// No Type's are registered with this package upon initialization.
// Each separate package is in charge of registering its Type with
// the package separately to avoid circular imports.
var registeredTypes map[Type]reflect.Type

func init() {
	registeredTypes = make(map[Type]reflect.Type)
}

// Register registers an agent's Type with a concrete Config type so
// that upon deserialization of a TypedConfig, Configs of type agentType
// are deserialized into the concrete type of config.
func Register(agentType Type, config Config) {
	registeredTypes[agentType] = reflect.TypeOf(config)
}

// Registered returns whether agentType has been registered
func Registered(agentType Type) bool {
	_, ok := registeredTypes[agentType]
	return ok
}

// newConfig returns a pointer to a new zero Config of the concrete
// type registered for agentType
func newConfig(agentType Type) (interface{}, error) {
	ty, ok := registeredTypes[agentType]
	if !ok {
		return nil, fmt.Errorf("newConfig: agent type %v not registered",
			agentType)
	}
	return reflect.New(ty).Interface(), nil
}
