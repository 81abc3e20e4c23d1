// Package hwcap reports which instruction-set features the running CPU
// supports.
//
// From the raw hardware feature vector (the auxiliary vector published by
// the kernel, or a direct CPUID query) it derives the set of named
// capabilities, the highest architecture level they satisfy, and a minimal
// compiler flag line that enables them. Build tooling can use it to decide
// at run time which optimized code paths or -march settings are safe.
//
// # API Model
//
//   - [Probe] reads the raw vector once and returns a [Detection]
//   - [Arch.Match] and [Arch.SelectAll] fill a [Registry] from a capability table
//   - [Arch.Level] resolves the architecture level, [Arch.CFlags] renders flags
//   - [Detection.Check] and [Require] gate on named capabilities
//
// One binary targets one instruction-set family. [Native] returns it; the
// other tables ([AArch64], [X86_64], [RISCV64]) are exported as data so
// that registries can be built for them from synthetic vectors.
//
// # Quick Check
//
//	if err := hwcap.Require("asimd", "crc32"); err != nil {
//	    var ce *hwcap.CapabilityError
//	    if errors.As(err, &ce) {
//	        log.Fatalf("cpu not supported: %s: %s", ce.Capability, ce.Reason)
//	    }
//	    log.Fatal(err)
//	}
//
// # Compiler Flags
//
//	d, err := hwcap.Probe()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(d.CFlags()) // e.g. -march=armv8.2-a+sha2+fp16+rcpc
//
// # Flag Synthesis Rules
//
// When an architecture level is detected the line starts with
// -march=<level> and every other capability with a compiler flag is
// appended as +<flag>, unless the level already implies all of its bits or
// the same flag was already appended. Without a level each capability
// contributes a separate -m<flag>. The output depends only on the registry.
package hwcap
