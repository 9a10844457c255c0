// Package enginetest provides scripted engine-process fakes and a
// compliance test suite for enginehost adapters.
//
// [Proc] stands in for the external engine-process capability: it decodes
// queued UCI move strings against the searched position, records every
// Configure, Play, and SendLine call, and can park a search until a stop
// line arrives. [Dialer] scripts construction, failing a configurable
// number of times before handing out processes.
//
// [RunEngineTests] is the adapter compliance suite; adapter packages call
// it from their own tests with a factory wrapping their constructor.
package enginetest
