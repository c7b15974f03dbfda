package rules_test

import (
	"strings"
	"testing"

	"hipify/internal/rules"
)

func TestDefault_IdentLookups(t *testing.T) {
	set := rules.Default()

	tests := []struct {
		name    string
		hip     string
		support rules.SupportDegree
	}{
		{"cudaMalloc", "hipMalloc", rules.Supported},
		{"cudaMemcpyDeviceToHost", "hipMemcpyDeviceToHost", rules.Supported},
		{"cudaThreadSynchronize", "hipDeviceSynchronize", rules.Deprecated},
		{"cudaGraph_t", "", rules.Unsupported},
	}
	for _, tt := range tests {
		entry, ok := set.Lookup(tt.name)
		if !ok {
			t.Errorf("Lookup(%q) missing", tt.name)
			continue
		}
		if entry.Support != tt.support {
			t.Errorf("Lookup(%q).Support = %v, want %v", tt.name, entry.Support, tt.support)
		}
		if tt.support != rules.Unsupported && entry.HipName != tt.hip {
			t.Errorf("Lookup(%q).HipName = %q, want %q", tt.name, entry.HipName, tt.hip)
		}
	}

	if _, ok := set.Lookup("myOwnFunction"); ok {
		t.Error("Lookup matched a non-CUDA name")
	}
}

func TestEntry_Target(t *testing.T) {
	withRoc := rules.Entry{CudaName: "cublasSgemm", HipName: "hipblasSgemm", RocName: "rocblas_sgemm"}
	if got := withRoc.Target(false); got != "hipblasSgemm" {
		t.Errorf("Target(false) = %q", got)
	}
	if got := withRoc.Target(true); got != "rocblas_sgemm" {
		t.Errorf("Target(true) = %q", got)
	}
	if got := withRoc.TargetDialect(true); got != "ROC" {
		t.Errorf("TargetDialect(true) = %q", got)
	}

	// ROC mode falls back to HIP when no ROC variant exists.
	hipOnly := rules.Entry{CudaName: "cudaMalloc", HipName: "hipMalloc"}
	if got := hipOnly.Target(true); got != "hipMalloc" {
		t.Errorf("fallback Target(true) = %q", got)
	}
	if got := hipOnly.TargetDialect(true); got != "HIP" {
		t.Errorf("fallback TargetDialect(true) = %q", got)
	}
}

func TestDefault_IncludeLookups(t *testing.T) {
	set := rules.Default()

	tests := []struct {
		filename string
		target   string
		kind     rules.ConvKind
		support  rules.SupportDegree
	}{
		{"cuda.h", "hip/hip_runtime.h", rules.ConvIncludeMain, rules.Supported},
		{"cuda_runtime.h", "hip/hip_runtime.h", rules.ConvIncludeMain, rules.Supported},
		{"curand.h", "hiprand.h", rules.ConvIncludeMain, rules.Supported},
		{"curand_kernel.h", "hiprand_kernel.h", rules.ConvIncludeMain, rules.Supported},
		{"device_launch_parameters.h", "", rules.ConvInclude, rules.Supported},
		{"cooperative_groups.h", "", rules.ConvInclude, rules.Unsupported},
	}
	for _, tt := range tests {
		entry, ok := set.LookupInclude(tt.filename)
		if !ok {
			t.Errorf("LookupInclude(%q) missing", tt.filename)
			continue
		}
		if entry.Kind != tt.kind || entry.Support != tt.support {
			t.Errorf("LookupInclude(%q) = kind %v support %v, want %v/%v",
				tt.filename, entry.Kind, entry.Support, tt.kind, tt.support)
		}
		if entry.Support == rules.Supported && entry.HipName != tt.target {
			t.Errorf("LookupInclude(%q).HipName = %q, want %q", tt.filename, entry.HipName, tt.target)
		}
	}
}

func TestDefault_DeviceFuncLookups(t *testing.T) {
	set := rules.Default()

	if !set.IsDeviceFunc("__syncthreads") {
		t.Error("IsDeviceFunc(__syncthreads) = false")
	}
	entry, ok := set.LookupDeviceFunc("__shfl_down_sync")
	if !ok || entry.HipName != "__shfl_down" {
		t.Errorf("LookupDeviceFunc(__shfl_down_sync) = %+v, %v", entry, ok)
	}
	entry, ok = set.LookupDeviceFunc("__activemask")
	if !ok || entry.Support != rules.Unsupported {
		t.Errorf("LookupDeviceFunc(__activemask) = %+v, %v", entry, ok)
	}
	if set.IsDeviceFunc("printf") {
		t.Error("IsDeviceFunc(printf) = true")
	}
}

func TestFingerprint_Stable(t *testing.T) {
	a := rules.Default().Fingerprint()
	b := rules.Default().Fingerprint()
	if a == "" {
		t.Fatal("empty fingerprint")
	}
	if a != b {
		t.Errorf("fingerprint not stable: %q vs %q", a, b)
	}
	if strings.ContainsAny(a, " \n") {
		t.Errorf("fingerprint has whitespace: %q", a)
	}
}
