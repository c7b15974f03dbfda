package rules

// deviceFuncEntries is the separate table for device-side function
// calls. It is consulted only by the structural pass, for calls whose
// callee carries a device or kernel attribute (and not a host one).
// The *_sync warp intrinsics lose their suffix: the target runtime
// operates on the full wavefront and takes no member mask.
var deviceFuncEntries = []Entry{
	{CudaName: "__shfl_sync", HipName: "__shfl", Kind: ConvDevice, API: APIRuntime},
	{CudaName: "__shfl_up_sync", HipName: "__shfl_up", Kind: ConvDevice, API: APIRuntime},
	{CudaName: "__shfl_down_sync", HipName: "__shfl_down", Kind: ConvDevice, API: APIRuntime},
	{CudaName: "__shfl_xor_sync", HipName: "__shfl_xor", Kind: ConvDevice, API: APIRuntime},
	{CudaName: "__ballot_sync", HipName: "__ballot", Kind: ConvDevice, API: APIRuntime},
	{CudaName: "__any_sync", HipName: "__any", Kind: ConvDevice, API: APIRuntime},
	{CudaName: "__all_sync", HipName: "__all", Kind: ConvDevice, API: APIRuntime},
	{CudaName: "__activemask", HipName: "", Kind: ConvDevice, API: APIRuntime, Support: Unsupported},

	// Identity renames: the names match, but the calls still have to be
	// counted as translated device intrinsics.
	{CudaName: "__syncthreads", HipName: "__syncthreads", Kind: ConvDevice, API: APIRuntime},
	{CudaName: "__threadfence", HipName: "__threadfence", Kind: ConvDevice, API: APIRuntime},
	{CudaName: "__threadfence_block", HipName: "__threadfence_block", Kind: ConvDevice, API: APIRuntime},
	{CudaName: "__popc", HipName: "__popc", Kind: ConvDevice, API: APIRuntime},
	{CudaName: "__clz", HipName: "__clz", Kind: ConvDevice, API: APIRuntime},
	{CudaName: "__ffs", HipName: "__ffs", Kind: ConvDevice, API: APIRuntime},
	{CudaName: "__brev", HipName: "__brev", Kind: ConvDevice, API: APIRuntime},
}
