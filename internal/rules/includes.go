package rules

// includeEntries maps CUDA header filenames to their HIP/ROC
// equivalents. ConvIncludeMain entries are the primary per-category
// headers that are inserted at most once per file; ConvInclude entries
// are rewritten (or deleted, when the target name is empty) every time.
var includeEntries = []Entry{
	{CudaName: "cuda.h", HipName: "hip/hip_runtime.h", Kind: ConvIncludeMain, API: APIDriver},
	{CudaName: "cuda_runtime.h", HipName: "hip/hip_runtime.h", Kind: ConvIncludeMain, API: APIRuntime},
	{CudaName: "cuda_runtime_api.h", HipName: "hip/hip_runtime_api.h", Kind: ConvInclude, API: APIRuntime},

	{CudaName: "cublas.h", HipName: "hipblas.h", RocName: "rocblas.h", Kind: ConvIncludeMain, API: APIBlas},
	{CudaName: "cublas_v2.h", HipName: "hipblas.h", RocName: "rocblas.h", Kind: ConvIncludeMain, API: APIBlas},

	// The host and device RNG headers are distinct targets with their
	// own insertion flags.
	{CudaName: "curand.h", HipName: "hiprand.h", Kind: ConvIncludeMain, API: APIRand},
	{CudaName: "curand_kernel.h", HipName: "hiprand_kernel.h", Kind: ConvIncludeMain, API: APIRand},

	{CudaName: "cudnn.h", HipName: "hipDNN.h", RocName: "miopen/miopen.h", Kind: ConvIncludeMain, API: APIDnn},
	{CudaName: "cufft.h", HipName: "hipfft.h", Kind: ConvIncludeMain, API: APIFft},
	{CudaName: "cuComplex.h", HipName: "hip/hip_complex.h", Kind: ConvIncludeMain, API: APIComplex},
	{CudaName: "cusparse.h", HipName: "hipsparse.h", Kind: ConvIncludeMain, API: APISparse},

	// Helper headers that have no HIP counterpart are deleted: the
	// empty target name always excludes the directive.
	{CudaName: "device_launch_parameters.h", HipName: "", Kind: ConvInclude, API: APIRuntime},
	{CudaName: "device_functions.h", HipName: "hip/device_functions.h", Kind: ConvInclude, API: APIRuntime},
	{CudaName: "math_functions.h", HipName: "hip/math_functions.h", Kind: ConvInclude, API: APIRuntime},
	{CudaName: "cuda_profiler_api.h", HipName: "hip/hip_profile.h", Kind: ConvInclude, API: APIRuntime},

	{CudaName: "cooperative_groups.h", HipName: "", Kind: ConvInclude, API: APIRuntime, Support: Unsupported},
}
