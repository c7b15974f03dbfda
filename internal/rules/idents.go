package rules

// identEntries maps CUDA identifiers (types, functions, enumerators)
// to their HIP/ROC spellings. This is the table consulted by the raw
// token pass, so it also covers names that occur in macro bodies and
// preprocessor-disabled regions.
var identEntries = []Entry{
	// Runtime API: memory.
	{CudaName: "cudaMalloc", HipName: "hipMalloc", Kind: ConvIdent, API: APIRuntime},
	{CudaName: "cudaMallocHost", HipName: "hipHostMalloc", Kind: ConvIdent, API: APIRuntime},
	{CudaName: "cudaMallocManaged", HipName: "hipMallocManaged", Kind: ConvIdent, API: APIRuntime},
	{CudaName: "cudaMallocPitch", HipName: "hipMallocPitch", Kind: ConvIdent, API: APIRuntime},
	{CudaName: "cudaFree", HipName: "hipFree", Kind: ConvIdent, API: APIRuntime},
	{CudaName: "cudaFreeHost", HipName: "hipHostFree", Kind: ConvIdent, API: APIRuntime},
	{CudaName: "cudaMemcpy", HipName: "hipMemcpy", Kind: ConvIdent, API: APIRuntime},
	{CudaName: "cudaMemcpyAsync", HipName: "hipMemcpyAsync", Kind: ConvIdent, API: APIRuntime},
	{CudaName: "cudaMemcpyToSymbol", HipName: "hipMemcpyToSymbol", Kind: ConvIdent, API: APIRuntime},
	{CudaName: "cudaMemset", HipName: "hipMemset", Kind: ConvIdent, API: APIRuntime},
	{CudaName: "cudaMemsetAsync", HipName: "hipMemsetAsync", Kind: ConvIdent, API: APIRuntime},
	{CudaName: "cudaMemGetInfo", HipName: "hipMemGetInfo", Kind: ConvIdent, API: APIRuntime},
	{CudaName: "cudaMemcpyKind", HipName: "hipMemcpyKind", Kind: ConvIdent, API: APIRuntime},
	{CudaName: "cudaMemcpyHostToHost", HipName: "hipMemcpyHostToHost", Kind: ConvIdent, API: APIRuntime},
	{CudaName: "cudaMemcpyHostToDevice", HipName: "hipMemcpyHostToDevice", Kind: ConvIdent, API: APIRuntime},
	{CudaName: "cudaMemcpyDeviceToHost", HipName: "hipMemcpyDeviceToHost", Kind: ConvIdent, API: APIRuntime},
	{CudaName: "cudaMemcpyDeviceToDevice", HipName: "hipMemcpyDeviceToDevice", Kind: ConvIdent, API: APIRuntime},
	{CudaName: "cudaMemcpyDefault", HipName: "hipMemcpyDefault", Kind: ConvIdent, API: APIRuntime},

	// Runtime API: errors.
	{CudaName: "cudaError_t", HipName: "hipError_t", Kind: ConvIdent, API: APIRuntime},
	{CudaName: "cudaError", HipName: "hipError_t", Kind: ConvIdent, API: APIRuntime},
	{CudaName: "cudaSuccess", HipName: "hipSuccess", Kind: ConvIdent, API: APIRuntime},
	{CudaName: "cudaErrorMemoryAllocation", HipName: "hipErrorOutOfMemory", Kind: ConvIdent, API: APIRuntime},
	{CudaName: "cudaErrorInvalidValue", HipName: "hipErrorInvalidValue", Kind: ConvIdent, API: APIRuntime},
	{CudaName: "cudaGetLastError", HipName: "hipGetLastError", Kind: ConvIdent, API: APIRuntime},
	{CudaName: "cudaPeekAtLastError", HipName: "hipPeekAtLastError", Kind: ConvIdent, API: APIRuntime},
	{CudaName: "cudaGetErrorString", HipName: "hipGetErrorString", Kind: ConvIdent, API: APIRuntime},
	{CudaName: "cudaGetErrorName", HipName: "hipGetErrorName", Kind: ConvIdent, API: APIRuntime},

	// Runtime API: device management.
	{CudaName: "cudaDeviceSynchronize", HipName: "hipDeviceSynchronize", Kind: ConvIdent, API: APIRuntime},
	{CudaName: "cudaDeviceReset", HipName: "hipDeviceReset", Kind: ConvIdent, API: APIRuntime},
	{CudaName: "cudaSetDevice", HipName: "hipSetDevice", Kind: ConvIdent, API: APIRuntime},
	{CudaName: "cudaGetDevice", HipName: "hipGetDevice", Kind: ConvIdent, API: APIRuntime},
	{CudaName: "cudaGetDeviceCount", HipName: "hipGetDeviceCount", Kind: ConvIdent, API: APIRuntime},
	{CudaName: "cudaGetDeviceProperties", HipName: "hipGetDeviceProperties", Kind: ConvIdent, API: APIRuntime},
	{CudaName: "cudaDeviceProp", HipName: "hipDeviceProp_t", Kind: ConvIdent, API: APIRuntime},
	{CudaName: "cudaDeviceGetAttribute", HipName: "hipDeviceGetAttribute", Kind: ConvIdent, API: APIRuntime},
	// The cudaThread* family was deprecated in CUDA in favour of cudaDevice*.
	{CudaName: "cudaThreadSynchronize", HipName: "hipDeviceSynchronize", Kind: ConvIdent, API: APIRuntime, Support: Deprecated},
	{CudaName: "cudaThreadExit", HipName: "hipDeviceReset", Kind: ConvIdent, API: APIRuntime, Support: Deprecated},

	// Runtime API: streams and events.
	{CudaName: "cudaStream_t", HipName: "hipStream_t", Kind: ConvIdent, API: APIRuntime},
	{CudaName: "cudaStreamCreate", HipName: "hipStreamCreate", Kind: ConvIdent, API: APIRuntime},
	{CudaName: "cudaStreamCreateWithFlags", HipName: "hipStreamCreateWithFlags", Kind: ConvIdent, API: APIRuntime},
	{CudaName: "cudaStreamDestroy", HipName: "hipStreamDestroy", Kind: ConvIdent, API: APIRuntime},
	{CudaName: "cudaStreamSynchronize", HipName: "hipStreamSynchronize", Kind: ConvIdent, API: APIRuntime},
	{CudaName: "cudaStreamWaitEvent", HipName: "hipStreamWaitEvent", Kind: ConvIdent, API: APIRuntime},
	{CudaName: "cudaEvent_t", HipName: "hipEvent_t", Kind: ConvIdent, API: APIRuntime},
	{CudaName: "cudaEventCreate", HipName: "hipEventCreate", Kind: ConvIdent, API: APIRuntime},
	{CudaName: "cudaEventRecord", HipName: "hipEventRecord", Kind: ConvIdent, API: APIRuntime},
	{CudaName: "cudaEventSynchronize", HipName: "hipEventSynchronize", Kind: ConvIdent, API: APIRuntime},
	{CudaName: "cudaEventElapsedTime", HipName: "hipEventElapsedTime", Kind: ConvIdent, API: APIRuntime},
	{CudaName: "cudaEventDestroy", HipName: "hipEventDestroy", Kind: ConvIdent, API: APIRuntime},
	{CudaName: "cudaEventQuery", HipName: "hipEventQuery", Kind: ConvIdent, API: APIRuntime},

	// Runtime API: execution.
	{CudaName: "cudaLaunchKernel", HipName: "hipLaunchKernel", Kind: ConvIdent, API: APIRuntime},
	{CudaName: "cudaFuncAttributes", HipName: "hipFuncAttributes", Kind: ConvIdent, API: APIRuntime},
	{CudaName: "cudaOccupancyMaxActiveBlocksPerMultiprocessor", HipName: "hipOccupancyMaxActiveBlocksPerMultiprocessor", Kind: ConvIdent, API: APIRuntime},

	// Runtime API: graphs are not available in the target runtime.
	{CudaName: "cudaGraph_t", HipName: "", Kind: ConvIdent, API: APIRuntime, Support: Unsupported},
	{CudaName: "cudaGraphExec_t", HipName: "", Kind: ConvIdent, API: APIRuntime, Support: Unsupported},
	{CudaName: "cudaGraphLaunch", HipName: "", Kind: ConvIdent, API: APIRuntime, Support: Unsupported},
	{CudaName: "cudaStreamBeginCapture", HipName: "", Kind: ConvIdent, API: APIRuntime, Support: Unsupported},
	{CudaName: "cudaStreamEndCapture", HipName: "", Kind: ConvIdent, API: APIRuntime, Support: Unsupported},

	// Driver API.
	{CudaName: "cuInit", HipName: "hipInit", Kind: ConvIdent, API: APIDriver},
	{CudaName: "CUresult", HipName: "hipError_t", Kind: ConvIdent, API: APIDriver},
	{CudaName: "CUDA_SUCCESS", HipName: "hipSuccess", Kind: ConvIdent, API: APIDriver},
	{CudaName: "CUdevice", HipName: "hipDevice_t", Kind: ConvIdent, API: APIDriver},
	{CudaName: "cuDeviceGet", HipName: "hipDeviceGet", Kind: ConvIdent, API: APIDriver},
	{CudaName: "cuDeviceGetCount", HipName: "hipGetDeviceCount", Kind: ConvIdent, API: APIDriver},
	{CudaName: "cuDeviceGetName", HipName: "hipDeviceGetName", Kind: ConvIdent, API: APIDriver},
	{CudaName: "CUcontext", HipName: "hipCtx_t", Kind: ConvIdent, API: APIDriver},
	{CudaName: "cuCtxCreate", HipName: "hipCtxCreate", Kind: ConvIdent, API: APIDriver, Support: Deprecated},
	{CudaName: "cuCtxDestroy", HipName: "hipCtxDestroy", Kind: ConvIdent, API: APIDriver, Support: Deprecated},
	{CudaName: "CUmodule", HipName: "hipModule_t", Kind: ConvIdent, API: APIDriver},
	{CudaName: "cuModuleLoad", HipName: "hipModuleLoad", Kind: ConvIdent, API: APIDriver},
	{CudaName: "cuModuleUnload", HipName: "hipModuleUnload", Kind: ConvIdent, API: APIDriver},
	{CudaName: "CUfunction", HipName: "hipFunction_t", Kind: ConvIdent, API: APIDriver},
	{CudaName: "cuModuleGetFunction", HipName: "hipModuleGetFunction", Kind: ConvIdent, API: APIDriver},
	{CudaName: "cuLaunchKernel", HipName: "hipModuleLaunchKernel", Kind: ConvIdent, API: APIDriver},
	{CudaName: "CUstream", HipName: "hipStream_t", Kind: ConvIdent, API: APIDriver},
	{CudaName: "CUdeviceptr", HipName: "hipDeviceptr_t", Kind: ConvIdent, API: APIDriver},
	{CudaName: "cuMemAlloc", HipName: "hipMalloc", Kind: ConvIdent, API: APIDriver},
	{CudaName: "cuMemFree", HipName: "hipFree", Kind: ConvIdent, API: APIDriver},
	{CudaName: "cuMemcpyHtoD", HipName: "hipMemcpyHtoD", Kind: ConvIdent, API: APIDriver},
	{CudaName: "cuMemcpyDtoH", HipName: "hipMemcpyDtoH", Kind: ConvIdent, API: APIDriver},

	// BLAS.
	{CudaName: "cublasHandle_t", HipName: "hipblasHandle_t", RocName: "rocblas_handle", Kind: ConvIdent, API: APIBlas},
	{CudaName: "cublasCreate", HipName: "hipblasCreate", RocName: "rocblas_create_handle", Kind: ConvIdent, API: APIBlas},
	{CudaName: "cublasDestroy", HipName: "hipblasDestroy", RocName: "rocblas_destroy_handle", Kind: ConvIdent, API: APIBlas},
	{CudaName: "cublasStatus_t", HipName: "hipblasStatus_t", RocName: "rocblas_status", Kind: ConvIdent, API: APIBlas},
	{CudaName: "CUBLAS_STATUS_SUCCESS", HipName: "HIPBLAS_STATUS_SUCCESS", RocName: "rocblas_status_success", Kind: ConvIdent, API: APIBlas},
	{CudaName: "cublasOperation_t", HipName: "hipblasOperation_t", RocName: "rocblas_operation", Kind: ConvIdent, API: APIBlas},
	{CudaName: "CUBLAS_OP_N", HipName: "HIPBLAS_OP_N", RocName: "rocblas_operation_none", Kind: ConvIdent, API: APIBlas},
	{CudaName: "CUBLAS_OP_T", HipName: "HIPBLAS_OP_T", RocName: "rocblas_operation_transpose", Kind: ConvIdent, API: APIBlas},
	{CudaName: "cublasSgemm", HipName: "hipblasSgemm", RocName: "rocblas_sgemm", Kind: ConvIdent, API: APIBlas},
	{CudaName: "cublasDgemm", HipName: "hipblasDgemm", RocName: "rocblas_dgemm", Kind: ConvIdent, API: APIBlas},
	{CudaName: "cublasSaxpy", HipName: "hipblasSaxpy", RocName: "rocblas_saxpy", Kind: ConvIdent, API: APIBlas},
	{CudaName: "cublasSetVector", HipName: "hipblasSetVector", RocName: "rocblas_set_vector", Kind: ConvIdent, API: APIBlas},
	{CudaName: "cublasGetVector", HipName: "hipblasGetVector", RocName: "rocblas_get_vector", Kind: ConvIdent, API: APIBlas},

	// RAND.
	{CudaName: "curandGenerator_t", HipName: "hiprandGenerator_t", Kind: ConvIdent, API: APIRand},
	{CudaName: "curandCreateGenerator", HipName: "hiprandCreateGenerator", Kind: ConvIdent, API: APIRand},
	{CudaName: "curandDestroyGenerator", HipName: "hiprandDestroyGenerator", Kind: ConvIdent, API: APIRand},
	{CudaName: "curandGenerateUniform", HipName: "hiprandGenerateUniform", Kind: ConvIdent, API: APIRand},
	{CudaName: "curandSetPseudoRandomGeneratorSeed", HipName: "hiprandSetPseudoRandomGeneratorSeed", Kind: ConvIdent, API: APIRand},
	{CudaName: "curandStatus_t", HipName: "hiprandStatus_t", Kind: ConvIdent, API: APIRand},
	{CudaName: "CURAND_STATUS_SUCCESS", HipName: "HIPRAND_STATUS_SUCCESS", Kind: ConvIdent, API: APIRand},
	{CudaName: "CURAND_RNG_PSEUDO_DEFAULT", HipName: "HIPRAND_RNG_PSEUDO_DEFAULT", Kind: ConvIdent, API: APIRand},
	{CudaName: "curandState", HipName: "hiprandState_t", Kind: ConvIdent, API: APIRand},
	{CudaName: "curandState_t", HipName: "hiprandState_t", Kind: ConvIdent, API: APIRand},

	// DNN.
	{CudaName: "cudnnHandle_t", HipName: "hipdnnHandle_t", RocName: "miopenHandle_t", Kind: ConvIdent, API: APIDnn},
	{CudaName: "cudnnCreate", HipName: "hipdnnCreate", RocName: "miopenCreate", Kind: ConvIdent, API: APIDnn},
	{CudaName: "cudnnDestroy", HipName: "hipdnnDestroy", RocName: "miopenDestroy", Kind: ConvIdent, API: APIDnn},
	{CudaName: "cudnnStatus_t", HipName: "hipdnnStatus_t", RocName: "miopenStatus_t", Kind: ConvIdent, API: APIDnn},
	{CudaName: "CUDNN_STATUS_SUCCESS", HipName: "HIPDNN_STATUS_SUCCESS", RocName: "miopenStatusSuccess", Kind: ConvIdent, API: APIDnn},
	{CudaName: "cudnnTensorDescriptor_t", HipName: "hipdnnTensorDescriptor_t", RocName: "miopenTensorDescriptor_t", Kind: ConvIdent, API: APIDnn},

	// FFT.
	{CudaName: "cufftHandle", HipName: "hipfftHandle", Kind: ConvIdent, API: APIFft},
	{CudaName: "cufftPlan1d", HipName: "hipfftPlan1d", Kind: ConvIdent, API: APIFft},
	{CudaName: "cufftPlan2d", HipName: "hipfftPlan2d", Kind: ConvIdent, API: APIFft},
	{CudaName: "cufftExecC2C", HipName: "hipfftExecC2C", Kind: ConvIdent, API: APIFft},
	{CudaName: "cufftExecR2C", HipName: "hipfftExecR2C", Kind: ConvIdent, API: APIFft},
	{CudaName: "cufftDestroy", HipName: "hipfftDestroy", Kind: ConvIdent, API: APIFft},
	{CudaName: "cufftComplex", HipName: "hipfftComplex", Kind: ConvIdent, API: APIFft},
	{CudaName: "cufftResult", HipName: "hipfftResult", Kind: ConvIdent, API: APIFft},
	{CudaName: "CUFFT_SUCCESS", HipName: "HIPFFT_SUCCESS", Kind: ConvIdent, API: APIFft},
	{CudaName: "CUFFT_FORWARD", HipName: "HIPFFT_FORWARD", Kind: ConvIdent, API: APIFft},
	{CudaName: "CUFFT_INVERSE", HipName: "HIPFFT_BACKWARD", Kind: ConvIdent, API: APIFft},

	// Complex numbers.
	{CudaName: "cuComplex", HipName: "hipComplex", Kind: ConvIdent, API: APIComplex},
	{CudaName: "cuFloatComplex", HipName: "hipFloatComplex", Kind: ConvIdent, API: APIComplex},
	{CudaName: "cuDoubleComplex", HipName: "hipDoubleComplex", Kind: ConvIdent, API: APIComplex},
	{CudaName: "make_cuComplex", HipName: "make_hipComplex", Kind: ConvIdent, API: APIComplex},
	{CudaName: "make_cuDoubleComplex", HipName: "make_hipDoubleComplex", Kind: ConvIdent, API: APIComplex},
	{CudaName: "cuCrealf", HipName: "hipCrealf", Kind: ConvIdent, API: APIComplex},
	{CudaName: "cuCimagf", HipName: "hipCimagf", Kind: ConvIdent, API: APIComplex},
	{CudaName: "cuCaddf", HipName: "hipCaddf", Kind: ConvIdent, API: APIComplex},
	{CudaName: "cuCmulf", HipName: "hipCmulf", Kind: ConvIdent, API: APIComplex},

	// Sparse.
	{CudaName: "cusparseHandle_t", HipName: "hipsparseHandle_t", Kind: ConvIdent, API: APISparse},
	{CudaName: "cusparseCreate", HipName: "hipsparseCreate", Kind: ConvIdent, API: APISparse},
	{CudaName: "cusparseDestroy", HipName: "hipsparseDestroy", Kind: ConvIdent, API: APISparse},
	{CudaName: "cusparseStatus_t", HipName: "hipsparseStatus_t", Kind: ConvIdent, API: APISparse},
	{CudaName: "CUSPARSE_STATUS_SUCCESS", HipName: "HIPSPARSE_STATUS_SUCCESS", Kind: ConvIdent, API: APISparse},
	{CudaName: "cusparseMatDescr_t", HipName: "hipsparseMatDescr_t", Kind: ConvIdent, API: APISparse},
}
