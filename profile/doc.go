// Package profile provides optional runtime profiling for jalg.
//
// Profiling is backed by [github.com/pkg/profile] and is compiled in only
// when the "pprof" build tag is set. Without the tag, [Modes] is empty and
// [Profiler.Start] returns a no-op.
//
// # Modes
//
//   - allocs:    memory allocation profiling (all allocations)
//   - block:     synchronization blocking profiling
//   - clock:     wall-clock profiling
//   - cpu:       CPU profiling
//   - goroutine: goroutine profiling
//   - heap:      live heap profiling
//   - mem:       general memory profiling
//   - mutex:     mutex contention profiling
//   - thread:    thread creation profiling
//   - trace:     execution trace
//
// # Usage
//
//	p := profile.Make(
//		profile.WithMode("cpu"),
//		profile.WithPath(filepath.Join(pkg.CacheDir(), profile.Tag)),
//		profile.WithQuiet(true))
//	defer p.Start().Stop()
//
// From the command line, a binary built with -tags pprof accepts:
//
//	jalg --pprof-mode cpu svg -e '(<[o]>)' -o out.svg
//	go tool pprof -http=: ~/.cache/jalg/pprof/cpu.pprof
//
// Parsing a large document is dominated by allocation of children slices, so
// the allocs and heap modes are usually the most informative.
package profile

// Tag is the build tag required to enable pprof profiling.
const Tag = `pprof`
