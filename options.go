package enumeration

// DefaultSizeHint is used by Collect for its initial allocation when the
// enumeration is not fast and so cannot cheaply report its size.
var DefaultSizeHint uint = 100

type enumOptions struct {
	description    string
	tracer         TraceFunc
	tracing        bool
	inheritOptions bool
}

// EnumOption customizes an enumeration at construction time.
type EnumOption func(o *enumOptions)

// WithDescription names the enumeration in trace output and in the
// NoMoreElementsError raised by Init.
func WithDescription(description string) EnumOption {
	return func(o *enumOptions) {
		o.description = description
	}
}

// WithTraceFunc sets the trace function for the enumeration.  Use
// WithTracing to enable/disable tracing.
func WithTraceFunc(f TraceFunc) EnumOption {
	return func(o *enumOptions) {
		o.tracer = f
	}
}

// WithTracing enables tracing for the enumeration.  If a custom trace
// function has not been set using WithTraceFunc, trace messages go to
// DefaultTracer.
func WithTracing(enable bool) EnumOption {
	return func(o *enumOptions) {
		o.tracing = enable
	}
}

// InheritOptions causes this enumeration's options to be inherited by
// enumerations derived from it with Map, Filter or WithIndex.  Options passed
// to the derivation override inherited ones.  Clones always share the
// options of their original.
//
// The default is no inheritance.
func InheritOptions(inherit bool) EnumOption {
	return func(o *enumOptions) {
		o.inheritOptions = inherit
	}
}

func (o *enumOptions) processOptions(opts ...EnumOption) {
	for _, f := range opts {
		f(o)
	}
}

func newOptions(opts ...EnumOption) enumOptions {
	var o enumOptions
	o.processOptions(opts...)
	return o
}

// derivedOptions returns the options for an enumeration derived from one
// configured with parent.
func derivedOptions(parent enumOptions, opts ...EnumOption) enumOptions {
	var o enumOptions
	if parent.inheritOptions {
		o = parent
		o.description = ""
	}

	o.processOptions(opts...)
	return o
}
