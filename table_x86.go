package hwcap

// CPUID leaf 1 EDX bits.
const (
	cpuidFPU   = 1 << 0
	cpuidVME   = 1 << 1
	cpuidDE    = 1 << 2
	cpuidPSE   = 1 << 3
	cpuidTSC   = 1 << 4
	cpuidMSR   = 1 << 5
	cpuidPAE   = 1 << 6
	cpuidMCE   = 1 << 7
	cpuidCX8   = 1 << 8
	cpuidAPIC  = 1 << 9
	cpuidSEP   = 1 << 11
	cpuidMTRR  = 1 << 12
	cpuidPGE   = 1 << 13
	cpuidMCA   = 1 << 14
	cpuidCMOV  = 1 << 15
	cpuidPAT   = 1 << 16
	cpuidPSE36 = 1 << 17
	cpuidPSN   = 1 << 18
	cpuidCLFSH = 1 << 19
	cpuidDS    = 1 << 21
	cpuidACPI  = 1 << 22
	cpuidMMX   = 1 << 23
	cpuidFXSR  = 1 << 24
	cpuidSSE   = 1 << 25
	cpuidSSE2  = 1 << 26
	cpuidSS    = 1 << 27
	cpuidHTT   = 1 << 28
	cpuidTM    = 1 << 29
	cpuidIA64  = 1 << 30
	cpuidPBE   = 1 << 31
)

// CPUID leaf 1 ECX bits.
const (
	cpuid2SSE3      = 1 << 0
	cpuid2PCLMULQDQ = 1 << 1
	cpuid2DTES64    = 1 << 2
	cpuid2MON       = 1 << 3
	cpuid2DSCPL     = 1 << 4
	cpuid2VMX       = 1 << 5
	cpuid2SMX       = 1 << 6
	cpuid2EST       = 1 << 7
	cpuid2TM2       = 1 << 8
	cpuid2SSSE3     = 1 << 9
	cpuid2CNXTID    = 1 << 10
	cpuid2SDBG      = 1 << 11
	cpuid2FMA       = 1 << 12
	cpuid2CX16      = 1 << 13
	cpuid2XTPR      = 1 << 14
	cpuid2PDCM      = 1 << 15
	cpuid2PCID      = 1 << 17
	cpuid2DCA       = 1 << 18
	cpuid2SSE41     = 1 << 19
	cpuid2SSE42     = 1 << 20
	cpuid2X2APIC    = 1 << 21
	cpuid2MOVBE     = 1 << 22
	cpuid2POPCNT    = 1 << 23
	cpuid2TSCDLT    = 1 << 24
	cpuid2AESNI     = 1 << 25
	cpuid2XSAVE     = 1 << 26
	cpuid2OSXSAVE   = 1 << 27
	cpuid2AVX       = 1 << 28
	cpuid2F16C      = 1 << 29
	cpuid2RDRAND    = 1 << 30
	cpuid2HV        = 1 << 31
)

// X86_64 is the x86-64 family. Names follow Linux
// arch/x86/include/asm/cpufeatures.h. The family declares no levels, so
// compiler flags are always per-feature -m options.
var X86_64 = &Arch{
	Name:          "x86_64",
	LevelPrefix:   "x86-64",
	DefaultSource: SourceCPUID,
	Table: []Capability{
		{"fpu", "", "x87 floating point unit", Vector{cpuidFPU, 0}},
		{"vme", "", "virtual 8086 mode enhancements", Vector{cpuidVME, 0}},
		{"de", "", "debugging extensions", Vector{cpuidDE, 0}},
		{"pse", "", "page size extensions", Vector{cpuidPSE, 0}},
		{"tsc", "", "time stamp counter", Vector{cpuidTSC, 0}},
		{"msr", "", "model-specific registers", Vector{cpuidMSR, 0}},
		{"pae", "", "physical address extension", Vector{cpuidPAE, 0}},
		{"mce", "", "machine check exception", Vector{cpuidMCE, 0}},
		{"cx8", "", "compare-and-exchange 8 bytes", Vector{cpuidCX8, 0}},
		{"apic", "", "on-chip APIC", Vector{cpuidAPIC, 0}},
		{"sep", "", "sysenter and sysexit", Vector{cpuidSEP, 0}},
		{"mtrr", "", "memory type range registers", Vector{cpuidMTRR, 0}},
		{"pge", "", "page global bit", Vector{cpuidPGE, 0}},
		{"mca", "", "machine check architecture", Vector{cpuidMCA, 0}},
		{"cmov", "", "conditional move instructions", Vector{cpuidCMOV, 0}},
		{"pat", "", "page attribute table", Vector{cpuidPAT, 0}},
		{"pse36", "", "36-bit page size extension", Vector{cpuidPSE36, 0}},
		{"pn", "", "processor serial number", Vector{cpuidPSN, 0}},
		{"clflush", "", "cache-line flush instruction", Vector{cpuidCLFSH, 0}},
		{"dts", "", "debug store", Vector{cpuidDS, 0}},
		{"acpi", "", "thermal monitor and software-controlled clock", Vector{cpuidACPI, 0}},
		{"mmx", "mmx", "multimedia extensions", Vector{cpuidMMX, 0}},
		{"fxsr", "fxsr", "fxsave and fxrstor", Vector{cpuidFXSR, 0}},
		{"sse", "sse", "streaming SIMD extensions", Vector{cpuidSSE, 0}},
		{"sse2", "sse2", "streaming SIMD extensions 2", Vector{cpuidSSE2, 0}},
		{"ss", "", "self snoop", Vector{cpuidSS, 0}},
		{"ht", "", "hyper-threading", Vector{cpuidHTT, 0}},
		{"tm", "", "thermal monitor automatic thermal control circuitry", Vector{cpuidTM, 0}},
		{"ia64", "", "IA-64 (Itanium) processor", Vector{cpuidIA64, 0}},
		{"pbe", "", "pending break enable", Vector{cpuidPBE, 0}},

		{"pni", "sse3", "streaming SIMD extensions 3", Vector{0, cpuid2SSE3}},
		{"pclmulqdq", "pclmul", "carryless multiply quadword", Vector{0, cpuid2PCLMULQDQ}},
		{"dtes64", "", "64-bit debug store area", Vector{0, cpuid2DTES64}},
		{"monitor", "", "monitor and mwait", Vector{0, cpuid2MON}},
		{"ds_cpl", "", "CPL-qualified debug store", Vector{0, cpuid2DSCPL}},
		{"vmx", "", "virtual machine extensions", Vector{0, cpuid2VMX}},
		{"smx", "", "safer mode extensions", Vector{0, cpuid2SMX}},
		{"est", "", "enhanced SpeedStep", Vector{0, cpuid2EST}},
		{"tm2", "", "thermal monitor 2", Vector{0, cpuid2TM2}},
		{"ssse3", "ssse3", "supplemental streaming SIMD extensions 3", Vector{0, cpuid2SSSE3}},
		{"cid", "", "L1 data cache context ID", Vector{0, cpuid2CNXTID}},
		{"sdbg", "", "silicon debug", Vector{0, cpuid2SDBG}},
		{"fma", "fma", "fused multiply-add", Vector{0, cpuid2FMA}},
		{"cx16", "cx16", "compare-and-exchange 16 bytes", Vector{0, cpuid2CX16}},
		{"xtpr", "", "xTPR update control", Vector{0, cpuid2XTPR}},
		{"pdcm", "", "perfmon and debug capability", Vector{0, cpuid2PDCM}},
		{"pcid", "", "process-context identifiers", Vector{0, cpuid2PCID}},
		{"dca", "", "direct cache access", Vector{0, cpuid2DCA}},
		{"sse4_1", "sse4.1", "streaming SIMD extensions 4.1", Vector{0, cpuid2SSE41}},
		{"sse4_2", "sse4.2", "streaming SIMD extensions 4.2", Vector{0, cpuid2SSE42}},
		{"x2apic", "", "x2APIC", Vector{0, cpuid2X2APIC}},
		{"movbe", "movbe", "move big-endian", Vector{0, cpuid2MOVBE}},
		{"popcnt", "popcnt", "population count", Vector{0, cpuid2POPCNT}},
		{"tsc_deadline_timer", "", "APIC supports TSC deadline one-shot operation", Vector{0, cpuid2TSCDLT}},
		{"aes", "aes", "advanced encryption standard new instructions", Vector{0, cpuid2AESNI}},
		{"xsave", "xsave", "xsave/xrstor/xsetbv/xgetbv instructions", Vector{0, cpuid2XSAVE}},
		{"osxsave", "", "xsave enabled by OS", Vector{0, cpuid2OSXSAVE}},
		{"avx", "avx", "advanced vector extensions", Vector{0, cpuid2AVX}},
		{"f16c", "f16c", "16-bit floating point conversion", Vector{0, cpuid2F16C}},
		{"rdrand", "rdrnd", "read random instruction", Vector{0, cpuid2RDRAND}},
		{"hypervisor", "", "running on a hypervisor", Vector{0, cpuid2HV}},
	},
}
