package match_test

import (
	"testing"

	"hipify/internal/lexer"
	"hipify/internal/match"
	"hipify/internal/source"
)

func scanSource(t *testing.T, input string, opts match.Options) ([]match.Match, *source.File) {
	t.Helper()
	fs := source.NewFileSet()
	id := fs.AddVirtual("test.cu", []byte(input))
	file := fs.Get(id)
	lx := lexer.New(file, lexer.Options{})
	return match.Scan(file, lx.Tokens(), opts), file
}

func rangeText(file *source.File, r match.Range) string {
	return file.Text(match.ReadRange(r))
}

func onlyLaunch(t *testing.T, matches []match.Match) *match.Launch {
	t.Helper()
	if len(matches) != 1 || matches[0].Kind != match.KindLaunch {
		t.Fatalf("matches = %+v, want one launch", matches)
	}
	return matches[0].Launch
}

func TestScan_LaunchBasic(t *testing.T) {
	matches, file := scanSource(t, "kern<<<grid, block>>>(a, b);", match.Options{})
	l := onlyLaunch(t, matches)

	if got := rangeText(file, l.Callee); got != "kern" {
		t.Errorf("callee = %q", got)
	}
	if got := rangeText(file, l.Head); got != "kern<<<grid, block>>>(" {
		t.Errorf("head = %q", got)
	}
	if got := rangeText(file, l.Expr); got != "kern<<<grid, block>>>(a, b)" {
		t.Errorf("expr = %q", got)
	}
	if l.CalleeIsTemplate {
		t.Error("CalleeIsTemplate = true")
	}
	if got := rangeText(file, l.Config[0].Range); got != "grid" || l.Config[0].Defaulted {
		t.Errorf("config 0 = %q defaulted=%v", got, l.Config[0].Defaulted)
	}
	if got := rangeText(file, l.Config[1].Range); got != "block" {
		t.Errorf("config 1 = %q", got)
	}
	if !l.Config[2].Defaulted || !l.Config[3].Defaulted {
		t.Error("config 2/3 not defaulted")
	}
	if !l.HasArgs {
		t.Fatal("HasArgs = false")
	}
	if got := rangeText(file, l.Args); got != "a, b" {
		t.Errorf("args = %q", got)
	}
}

func TestScan_LaunchFullConfig(t *testing.T) {
	matches, file := scanSource(t, "kern<<<g, b, shmem, stream>>>();", match.Options{})
	l := onlyLaunch(t, matches)

	for k, want := range []string{"g", "b", "shmem", "stream"} {
		if l.Config[k].Defaulted {
			t.Errorf("config %d defaulted", k)
		}
		if got := rangeText(file, l.Config[k].Range); got != want {
			t.Errorf("config %d = %q, want %q", k, got, want)
		}
	}
	if l.HasArgs {
		t.Error("HasArgs = true for empty argument list")
	}
}

func TestScan_LaunchNestedCommas(t *testing.T) {
	// Commas inside parentheses must not split configuration arguments.
	matches, file := scanSource(t, "kern<<<dim3(gx, gy), dim3(bx, by)>>>(p);", match.Options{})
	l := onlyLaunch(t, matches)
	if got := rangeText(file, l.Config[0].Range); got != "dim3(gx, gy)" {
		t.Errorf("config 0 = %q", got)
	}
	if got := rangeText(file, l.Config[1].Range); got != "dim3(bx, by)" {
		t.Errorf("config 1 = %q", got)
	}
}

func TestScan_LaunchTemplateCallee(t *testing.T) {
	matches, file := scanSource(t, "reduce<float, 4><<<g, b>>>(in, out);", match.Options{})
	l := onlyLaunch(t, matches)
	if !l.CalleeIsTemplate {
		t.Error("CalleeIsTemplate = false")
	}
	if got := rangeText(file, l.Callee); got != "reduce<float, 4>" {
		t.Errorf("callee = %q", got)
	}
}

func TestScan_LaunchQualifiedCallee(t *testing.T) {
	matches, file := scanSource(t, "kernels::detail::scale<<<g, b>>>(x);", match.Options{})
	l := onlyLaunch(t, matches)
	if got := rangeText(file, l.Callee); got != "kernels::detail::scale" {
		t.Errorf("callee = %q", got)
	}
}

func TestScan_NotALaunch(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"shift operators", "x = a << b << c;"},
		{"single config argument", "kern<<<g>>>(x);"},
		{"five config arguments", "kern<<<a, b, c, d, e>>>(x);"},
		{"no closing angle", "kern<<<g, b;"},
		{"no argument list", "kern<<<g, b>>>;"},
		{"no callee", "<<<g, b>>>(x);"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			matches, _ := scanSource(t, tt.input, match.Options{})
			if len(matches) != 0 {
				t.Errorf("matches = %+v, want none", matches)
			}
		})
	}
}

func TestScan_SharedArray(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		extTypes bool
		typeName string
		varName  string
		prefix   string
	}{
		{
			name:     "plain float",
			input:    "extern __shared__ float sdata[];",
			typeName: "float",
			varName:  "sdata",
			prefix:   "extern __shared__ float sdata[]",
		},
		{
			name:     "unsigned canonicalized",
			input:    "extern __shared__ unsigned bins[];",
			typeName: "unsigned int",
			varName:  "bins",
			prefix:   "extern __shared__ unsigned bins[]",
		},
		{
			name:     "multi word builtin",
			input:    "extern __shared__ long long acc[];",
			typeName: "long long",
			varName:  "acc",
			prefix:   "extern __shared__ long long acc[]",
		},
		{
			name:     "user type keeps spelling",
			input:    "extern __shared__ MyPayload buf[];",
			typeName: "MyPayload",
			varName:  "buf",
			prefix:   "extern __shared__ MyPayload buf[]",
		},
		{
			name:     "extension type enabled",
			input:    "extern __shared__ __half h[];",
			extTypes: true,
			typeName: "__half",
			varName:  "h",
			prefix:   "extern __shared__ __half h[]",
		},
		{
			name:     "extension type disabled declines",
			input:    "extern __shared__ __half h[];",
			typeName: "",
			varName:  "h",
			prefix:   "extern __shared__ __half h[]",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			matches, file := scanSource(t, tt.input, match.Options{ExtTypes: tt.extTypes})
			if len(matches) != 1 || matches[0].Kind != match.KindSharedArray {
				t.Fatalf("matches = %+v, want one shared array", matches)
			}
			sh := matches[0].Shared
			if sh.TypeName != tt.typeName || sh.VarName != tt.varName {
				t.Errorf("type/var = %q/%q, want %q/%q", sh.TypeName, sh.VarName, tt.typeName, tt.varName)
			}
			if got := file.Text(sh.Prefix); got != tt.prefix {
				t.Errorf("prefix = %q, want %q", got, tt.prefix)
			}
		})
	}
}

func TestScan_SharedArrayOnlyIncomplete(t *testing.T) {
	// A sized array is a regular declaration; it stays untouched.
	matches, _ := scanSource(t, "extern __shared__ float s[64];", match.Options{})
	if len(matches) != 0 {
		t.Errorf("matches = %+v, want none", matches)
	}
}

func TestScan_DeviceCallLocal(t *testing.T) {
	input := "__device__ float warpMax(float v);\n" +
		"__global__ void kern(float* x) {\n" +
		"  float m = warpMax(x[0]);\n" +
		"}\n"
	matches, _ := scanSource(t, input, match.Options{})
	if len(matches) != 1 || matches[0].Kind != match.KindDeviceCall {
		t.Fatalf("matches = %+v, want one device call", matches)
	}
	if matches[0].DeviceCall.Name != "warpMax" {
		t.Errorf("name = %q", matches[0].DeviceCall.Name)
	}
}

func TestScan_DeviceCallHostOverloadIgnored(t *testing.T) {
	input := "__host__ __device__ float clampf(float v);\n" +
		"void f() { float y = clampf(2.0f); }\n"
	matches, _ := scanSource(t, input, match.Options{})
	if len(matches) != 0 {
		t.Errorf("matches = %+v, want none", matches)
	}
}

func TestScan_DeviceCallBuiltin(t *testing.T) {
	isBuiltin := func(name string) bool { return name == "__shfl_down_sync" }
	input := "__global__ void kern(float v) { v = __shfl_down_sync(mask, v, 1); }\n"
	matches, _ := scanSource(t, input, match.Options{IsBuiltinDevice: isBuiltin})
	if len(matches) != 1 || matches[0].Kind != match.KindDeviceCall {
		t.Fatalf("matches = %+v, want one device call", matches)
	}
	if matches[0].DeviceCall.Name != "__shfl_down_sync" {
		t.Errorf("name = %q", matches[0].DeviceCall.Name)
	}
}

func TestScan_DeviceCallInsideLaunchArgs(t *testing.T) {
	// The launch rewrite only replaces the head, so calls inside the
	// argument list must still be matched.
	isBuiltin := func(name string) bool { return name == "__ldg" }
	matches, _ := scanSource(t, "kern<<<g, b>>>(__ldg(p));", match.Options{IsBuiltinDevice: isBuiltin})
	if len(matches) != 2 {
		t.Fatalf("matches = %d, want launch + device call", len(matches))
	}
	if matches[0].Kind != match.KindLaunch || matches[1].Kind != match.KindDeviceCall {
		t.Errorf("kinds = %v, %v", matches[0].Kind, matches[1].Kind)
	}
	if matches[1].DeviceCall.Name != "__ldg" {
		t.Errorf("device call = %q", matches[1].DeviceCall.Name)
	}
}

func TestScan_DeclarationIsNotACall(t *testing.T) {
	input := "__device__ float helper(float v);\n"
	matches, _ := scanSource(t, input, match.Options{})
	if len(matches) != 0 {
		t.Errorf("matches = %+v, want none", matches)
	}
}

func TestScan_CommentsIgnored(t *testing.T) {
	input := "kern/*cfg*/<<<g, b>>>(x);"
	matches, file := scanSource(t, input, match.Options{})
	l := onlyLaunch(t, matches)
	if got := rangeText(file, l.Callee); got != "kern" {
		t.Errorf("callee = %q", got)
	}
}
