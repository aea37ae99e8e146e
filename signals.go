package pluck

import (
	"context"

	"github.com/zoobzio/capitan"
)

// Signals for engine events.
var (
	SignalEngineCreated     = capitan.NewSignal("pluck.engine.created", "Engine instantiated")
	SignalAccessorResolved  = capitan.NewSignal("pluck.accessor.resolved", "Accessor method resolved for a type and field")
	SignalInjectPartial     = capitan.NewSignal("pluck.inject.partial", "Assignment left fields unresolved")
	SignalExtensionRejected = capitan.NewSignal("pluck.extension.rejected", "Dynamic setter rejected a field")
)

// Keys for typed event data.
var (
	KeyTypeName   = capitan.NewStringKey("type_name")
	KeyField      = capitan.NewStringKey("field")
	KeyMethod     = capitan.NewStringKey("method")
	KeyExtractors = capitan.NewIntKey("extractors")
	KeyInjectors  = capitan.NewIntKey("injectors")
	KeyCount      = capitan.NewIntKey("count")
	KeyError      = capitan.NewErrorKey("error")
)

// emitEngineCreated emits an event when an engine is built.
func emitEngineCreated(ctx context.Context, extractors, injectors int) {
	capitan.Emit(ctx, SignalEngineCreated,
		KeyExtractors.Field(extractors),
		KeyInjectors.Field(injectors),
	)
}

// emitAccessorResolved emits an event when an accessor resolution is cached.
// An empty method means no accessor exists for the field.
func emitAccessorResolved(ctx context.Context, typeName, field, method string) {
	capitan.Emit(ctx, SignalAccessorResolved,
		KeyTypeName.Field(typeName),
		KeyField.Field(field),
		KeyMethod.Field(method),
	)
}

// emitInjectPartial emits an event when SetMany leaves names unresolved.
func emitInjectPartial(ctx context.Context, typeName string, unresolved int) {
	capitan.Emit(ctx, SignalInjectPartial,
		KeyTypeName.Field(typeName),
		KeyCount.Field(unresolved),
	)
}

// emitExtensionRejected emits an error event when a DynamicSetter refuses a value.
func emitExtensionRejected(ctx context.Context, typeName, field string, err error) {
	capitan.Error(ctx, SignalExtensionRejected,
		KeyTypeName.Field(typeName),
		KeyField.Field(field),
		KeyError.Field(err),
	)
}
