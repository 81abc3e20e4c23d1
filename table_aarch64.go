package hwcap

// Linux arm64 AT_HWCAP bits (arch/arm64/include/uapi/asm/hwcap.h).
const (
	hwcapFP       = 1 << 0
	hwcapASIMD    = 1 << 1
	hwcapEVTSTRM  = 1 << 2
	hwcapAES      = 1 << 3
	hwcapPMULL    = 1 << 4
	hwcapSHA1     = 1 << 5
	hwcapSHA2     = 1 << 6
	hwcapCRC32    = 1 << 7
	hwcapATOMICS  = 1 << 8
	hwcapFPHP     = 1 << 9
	hwcapASIMDHP  = 1 << 10
	hwcapCPUID    = 1 << 11
	hwcapASIMDRDM = 1 << 12
	hwcapJSCVT    = 1 << 13
	hwcapFCMA     = 1 << 14
	hwcapLRCPC    = 1 << 15
	hwcapDCPOP    = 1 << 16
	hwcapSHA3     = 1 << 17
	hwcapSM3      = 1 << 18
	hwcapSM4      = 1 << 19
	hwcapASIMDDP  = 1 << 20
	hwcapSHA512   = 1 << 21
	hwcapSVE      = 1 << 22
	hwcapASIMDFHM = 1 << 23
	hwcapDIT      = 1 << 24
	hwcapUSCAT    = 1 << 25
	hwcapILRCPC   = 1 << 26
	hwcapFLAGM    = 1 << 27
	hwcapSSBS     = 1 << 28
	hwcapSB       = 1 << 29
	hwcapPACA     = 1 << 30
	hwcapPACG     = 1 << 31
)

// Linux arm64 AT_HWCAP2 bits.
const (
	hwcap2DCPODP     = 1 << 0
	hwcap2SVE2       = 1 << 1
	hwcap2SVEAES     = 1 << 2
	hwcap2SVEPMULL   = 1 << 3
	hwcap2SVEBITPERM = 1 << 4
	hwcap2SVESHA3    = 1 << 5
	hwcap2SVESM4     = 1 << 6
	hwcap2FLAGM2     = 1 << 7
	hwcap2FRINT      = 1 << 8
	hwcap2SVEI8MM    = 1 << 9
	hwcap2SVEF32MM   = 1 << 10
	hwcap2SVEF64MM   = 1 << 11
	hwcap2SVEBF16    = 1 << 12
	hwcap2I8MM       = 1 << 13
	hwcap2BF16       = 1 << 14
	hwcap2DGH        = 1 << 15
	hwcap2RNG        = 1 << 16
	hwcap2BTI        = 1 << 17
	hwcap2MTE        = 1 << 18
	hwcap2ECV        = 1 << 19
	hwcap2AFP        = 1 << 20
	hwcap2RPRES      = 1 << 21
	hwcap2MTE3       = 1 << 22
	hwcap2SME        = 1 << 23
	hwcap2SMEI16I64  = 1 << 24
	hwcap2SMEF64F64  = 1 << 25
	hwcap2SMEI8I32   = 1 << 26
	hwcap2SMEF16F32  = 1 << 27
	hwcap2SMEB16F32  = 1 << 28
	hwcap2SMEF32F32  = 1 << 29
	hwcap2SMEFA64    = 1 << 30
	hwcap2WFXT       = 1 << 31
	hwcap2EBF16      = 1 << 32
	hwcap2SVEEBF16   = 1 << 33
	hwcap2CSSC       = 1 << 34
	hwcap2RPRFM      = 1 << 35
	hwcap2SVE2P1     = 1 << 36
	hwcap2SME2       = 1 << 37
	hwcap2SME2P1     = 1 << 38
	hwcap2SMEI16I32  = 1 << 39
	hwcap2SMEBI32I32 = 1 << 40
	hwcap2SMEB16B16  = 1 << 41
	hwcap2SMEF16F16  = 1 << 42
	hwcap2MOPS       = 1 << 43
	hwcap2HBC        = 1 << 44
)

// Architecture level prerequisites. Each level extends its predecessor in
// the same major line; Armv9.N extends both Armv9.(N-1) and Armv8.(N+5).
// Armv8.3 is not listed because pointer authentication is not a prerequisite
// of any detected level.
const (
	armv80Hwcap = hwcapFP | hwcapASIMD
	armv81Hwcap = armv80Hwcap | hwcapCRC32 | hwcapATOMICS | hwcapASIMDRDM
	armv82Hwcap = armv81Hwcap | hwcapDCPOP
	armv84Hwcap = armv82Hwcap | hwcapFLAGM | hwcapASIMDFHM | hwcapASIMDDP |
		hwcapDIT | hwcapILRCPC | hwcapUSCAT
	armv85Hwcap  = armv84Hwcap | hwcapSB
	armv85Hwcap2 = hwcap2BTI | hwcap2DCPODP
	armv86Hwcap2 = armv85Hwcap2 | hwcap2I8MM | hwcap2BF16 | hwcap2ECV
	armv87Hwcap2 = armv86Hwcap2 | hwcap2WFXT
	armv88Hwcap2 = armv87Hwcap2 | hwcap2MOPS | hwcap2HBC
	armv89Hwcap2 = armv88Hwcap2 | hwcap2CSSC

	armv90Hwcap  = armv85Hwcap | hwcapSVE
	armv90Hwcap2 = armv85Hwcap2 | hwcap2SVE2
	armv91Hwcap2 = armv90Hwcap2 | armv86Hwcap2 | hwcap2SVEBF16 | hwcap2SVEI8MM
	armv92Hwcap2 = armv91Hwcap2 | armv87Hwcap2
	armv93Hwcap2 = armv92Hwcap2 | armv88Hwcap2
	armv94Hwcap2 = armv93Hwcap2 | armv89Hwcap2 | hwcap2SVE2P1
)

// AArch64 is the 64-bit Arm family. See https://docs.kernel.org/arch/arm64/elf_hwcaps.html.
// Capability names follow the /proc/cpuinfo spelling, without underscores
// (smei16i64, sveebf16).
var AArch64 = &Arch{
	Name:          "aarch64",
	LevelPrefix:   "armv",
	DefaultSource: SourceHWCAP,
	Table: []Capability{
		{"fp", "", "floating point", Vector{hwcapFP, 0}},
		{"asimd", "", "advanced SIMD", Vector{hwcapASIMD, 0}},
		{"evtstrm", "", "generic timer configured to 10 kHz", Vector{hwcapEVTSTRM, 0}},
		{"aes", "", "advanced encryption standard", Vector{hwcapAES, 0}},
		{"pmull", "aes", "polynomial multiply long", Vector{hwcapPMULL, 0}},
		{"sha1", "", "secure hashing algorithm 1", Vector{hwcapSHA1, 0}},
		{"sha2", "sha2", "secure hashing algorithm 2 (SHA-224/256)", Vector{hwcapSHA2, 0}},
		{"crc32", "crc", "cyclic redundancy check", Vector{hwcapCRC32, 0}},
		{"atomics", "lse", "large system extensions (atomics)", Vector{hwcapATOMICS, 0}},
		{"fphp", "fp16", "half-precision floating-point arithmetic", Vector{hwcapFPHP, 0}},
		{"asimdhp", "", "ASIMD half-precision floating-point arithmetic", Vector{hwcapASIMDHP, 0}},
		{"cpuid", "", "user-space access to ID registers", Vector{hwcapCPUID, 0}},
		{"asimdrdm", "rdma", "ASIMD rounding double multiply-accumulate", Vector{hwcapASIMDRDM, 0}},
		{"jscvt", "", "JavaScript conversion from double to integer", Vector{hwcapJSCVT, 0}},
		{"fcma", "", "floating-point complex arithmetic", Vector{hwcapFCMA, 0}},
		{"lrcpc", "rcpc", "load-acquire RCpc instructions", Vector{hwcapLRCPC, 0}},
		{"dcpop", "", "data persistence writeback", Vector{hwcapDCPOP, 0}},
		{"sha3", "sha3", "secure hashing algorithm 3", Vector{hwcapSHA3, 0}},
		{"sm3", "", "SM3 cryptographic hash algorithm", Vector{hwcapSM3, 0}},
		{"sm4", "sm4", "SM4 block cipher", Vector{hwcapSM4, 0}},
		{"asimddp", "dotprod", "ASIMD dot product", Vector{hwcapASIMDDP, 0}},
		{"sha512", "", "secure hashing algorithm 2 (SHA-384/512)", Vector{hwcapSHA512, 0}},
		{"sve", "sve", "scalable vector extensions", Vector{hwcapSVE, 0}},
		{"asimdfhm", "fp16fml", "ASIMD half-precision multiply-accumulate", Vector{hwcapASIMDFHM, 0}},
		{"dit", "", "data-independent timing", Vector{hwcapDIT, 0}},
		{"uscat", "", "large system extensions 2 (unaligned single-copy atomicity)", Vector{hwcapUSCAT, 0}},
		{"ilrcpc", "", "load-acquire RCpc instructions 2", Vector{hwcapILRCPC, 0}},
		{"flagm", "flagm", "flag manipulation", Vector{hwcapFLAGM, 0}},
		{"ssbs", "ssbs", "speculative store bypass safe", Vector{hwcapSSBS, 0}},
		{"sb", "sb", "speculation barrier", Vector{hwcapSB, 0}},
		{"paca", "pauth", "pointer authentication (address)", Vector{hwcapPACA, 0}},
		{"pacg", "pauth", "pointer authentication (generic)", Vector{hwcapPACG, 0}},

		{"dcpodp", "", "data persistence writeback 2", Vector{0, hwcap2DCPODP}},
		{"sve2", "sve2", "scalable vector extensions 2", Vector{0, hwcap2SVE2}},
		{"sveaes", "sve2-aes", "SVE advanced encryption standard", Vector{0, hwcap2SVEAES}},
		{"svepmull", "sve2-aes", "SVE polynomial multiply long", Vector{0, hwcap2SVEPMULL}},
		{"svebitperm", "sve2-bitperm", "SVE bit permute", Vector{0, hwcap2SVEBITPERM}},
		{"svesha3", "sve2-sha3", "SVE secure hashing algorithm 3", Vector{0, hwcap2SVESHA3}},
		{"svesm4", "sve2-sm4", "SVE SM4 block cipher", Vector{0, hwcap2SVESM4}},
		{"flagm2", "", "flag manipulation 2", Vector{0, hwcap2FLAGM2}},
		{"frint", "", "floating-point round to 32/64-bit integer", Vector{0, hwcap2FRINT}},
		{"svei8mm", "i8mm", "SVE int8 matrix multiplication", Vector{0, hwcap2SVEI8MM}},
		{"svef32mm", "f32mm", "SVE FP32 matrix multiplication", Vector{0, hwcap2SVEF32MM}},
		{"svef64mm", "f64mm", "SVE FP64 matrix multiplication", Vector{0, hwcap2SVEF64MM}},
		{"svebf16", "bf16", "SVE bfloat16 arithmetic", Vector{0, hwcap2SVEBF16}},
		{"i8mm", "i8mm", "int8 matrix multiplication", Vector{0, hwcap2I8MM}},
		{"bf16", "bf16", "bfloat16 arithmetic", Vector{0, hwcap2BF16}},
		{"dgh", "", "data gathering hint", Vector{0, hwcap2DGH}},
		{"rng", "rng", "random number generation", Vector{0, hwcap2RNG}},
		{"bti", "", "branch target identification", Vector{0, hwcap2BTI}},
		{"mte", "", "memory tagging extension", Vector{0, hwcap2MTE}},
		{"ecv", "", "enhanced counter virtualization", Vector{0, hwcap2ECV}},
		{"afp", "", "alternate floating-point behavior", Vector{0, hwcap2AFP}},
		{"rpres", "", "12 bits reciprocal estimate/sqrt mantissa", Vector{0, hwcap2RPRES}},
		{"mte3", "", "memory tagging extension 3", Vector{0, hwcap2MTE3}},
		{"sme", "sme", "scalable matrix extension", Vector{0, hwcap2SME}},
		{"smei16i64", "sme-i16i64", "SME accumulate int16 into int64", Vector{0, hwcap2SMEI16I64}},
		{"smef64f64", "sme-f64f64", "SME accumulate FP64 into FP64", Vector{0, hwcap2SMEF64F64}},
		{"smei8i32", "", "SME accumulate int8 into int32", Vector{0, hwcap2SMEI8I32}},
		{"smef16f32", "", "SME accumulate FP16 into FP32", Vector{0, hwcap2SMEF16F32}},
		{"smeb16f32", "", "SME accumulate BF16 into FP32", Vector{0, hwcap2SMEB16F32}},
		{"smef32f32", "", "SME accumulate FP32 into FP32", Vector{0, hwcap2SMEF32F32}},
		{"smefa64", "", "all instructions supported in streaming SVE mode", Vector{0, hwcap2SMEFA64}},
		{"wfxt", "", "wait for event/interrupt with timeout", Vector{0, hwcap2WFXT}},
		{"ebf16", "", "bfloat16 arithmetic 2", Vector{0, hwcap2EBF16}},
		{"sveebf16", "", "SVE bfloat16 arithmetic 2", Vector{0, hwcap2SVEEBF16}},
		{"cssc", "cssc", "common short sequence compression", Vector{0, hwcap2CSSC}},
		{"rprfm", "", "range prefetch memory", Vector{0, hwcap2RPRFM}},
		{"sve2p1", "", "scalable vector extension 2.1", Vector{0, hwcap2SVE2P1}},
		{"sme2", "sme2", "scalable matrix extension 2", Vector{0, hwcap2SME2}},
		{"sme2p1", "", "scalable matrix extension 2.1", Vector{0, hwcap2SME2P1}},
		{"smei16i32", "", "SME accumulate int16 into int32", Vector{0, hwcap2SMEI16I32}},
		{"smebi32i32", "", "SME accumulate 32 bits into int32", Vector{0, hwcap2SMEBI32I32}},
		{"smeb16b16", "", "SME accumulate BF16 into BF16", Vector{0, hwcap2SMEB16B16}},
		{"smef16f16", "", "SME accumulate FP16 into FP16", Vector{0, hwcap2SMEF16F16}},
		{"mops", "mops", "memory copy and memory set", Vector{0, hwcap2MOPS}},
		{"hbc", "", "branch consistently", Vector{0, hwcap2HBC}},

		{"armv8.0-a", "armv8-a", "architecture level Armv8.0", Vector{armv80Hwcap, 0}},
		{"armv8.1-a", "armv8.1-a", "architecture level Armv8.1", Vector{armv81Hwcap, 0}},
		{"armv8.2-a", "armv8.2-a", "architecture level Armv8.2", Vector{armv82Hwcap, 0}},
		{"armv8.4-a", "armv8.4-a", "architecture level Armv8.4", Vector{armv84Hwcap, 0}},
		{"armv8.5-a", "armv8.5-a", "architecture level Armv8.5", Vector{armv85Hwcap, armv85Hwcap2}},
		{"armv8.6-a", "armv8.6-a", "architecture level Armv8.6", Vector{armv85Hwcap, armv86Hwcap2}},
		{"armv8.7-a", "armv8.7-a", "architecture level Armv8.7", Vector{armv85Hwcap, armv87Hwcap2}},
		{"armv8.8-a", "armv8.8-a", "architecture level Armv8.8", Vector{armv85Hwcap, armv88Hwcap2}},
		{"armv8.9-a", "armv8.9-a", "architecture level Armv8.9", Vector{armv85Hwcap, armv89Hwcap2}},
		{"armv9.0-a", "armv9-a", "architecture level Armv9.0", Vector{armv90Hwcap, armv90Hwcap2}},
		{"armv9.1-a", "armv9.1-a", "architecture level Armv9.1", Vector{armv90Hwcap, armv91Hwcap2}},
		{"armv9.2-a", "armv9.2-a", "architecture level Armv9.2", Vector{armv90Hwcap, armv92Hwcap2}},
		{"armv9.3-a", "armv9.3-a", "architecture level Armv9.3", Vector{armv90Hwcap, armv93Hwcap2}},
		{"armv9.4-a", "armv9.4-a", "architecture level Armv9.4", Vector{armv90Hwcap, armv94Hwcap2}},
	},
}
