package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestKind_String(t *testing.T) {
	tests := []struct {
		kind     Kind
		expected string
	}{
		{KindUnknown, "unknown error"},
		{KindNotFound, "not found"},
		{KindInvalid, "invalid"},
		{KindIO, "I/O error"},
		{KindConfig, "configuration error"},
		{KindCredentialMissing, "credential missing"},
		{KindProvider, "provider error"},
		{KindEmptyResponse, "empty response"},
		{KindTimeout, "timeout"},
		{KindExport, "export error"},
		{Kind(999), "unknown error"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			if got := tt.kind.String(); got != tt.expected {
				t.Errorf("Kind.String() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestError_Error(t *testing.T) {
	diskFull := errors.New("no space left on device")
	tests := []struct {
		name string
		err  *Error
		want string
	}{
		{"op, context and cause", &Error{Op: "export.WriteWordFile", Context: "memo.doc", Err: diskFull}, "export.WriteWordFile: memo.doc: no space left on device"},
		{"op and cause", &Error{Op: "export.WriteWordFile", Err: diskFull}, "export.WriteWordFile: no space left on device"},
		{"cause only", &Error{Err: diskFull}, "no space left on device"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestE(t *testing.T) {
	refused := errors.New("connection refused")
	tests := []struct {
		name     string
		args     []interface{}
		wantOp   Op
		wantKind Kind
		wantMsg  string
	}{
		{
			name:     "op kind context and cause",
			args:     []interface{}{Op("generation.Refine"), KindProvider, "gemini", refused},
			wantOp:   "generation.Refine",
			wantKind: KindProvider,
			wantMsg:  "generation.Refine: gemini: connection refused",
		},
		{
			// A lone string becomes the cause
			name:     "op kind and message",
			args:     []interface{}{Op("layout.Move"), KindInvalid, "width out of range"},
			wantOp:   "layout.Move",
			wantKind: KindInvalid,
			wantMsg:  "layout.Move: width out of range",
		},
		{
			name:     "bare cause",
			args:     []interface{}{refused},
			wantKind: KindUnknown,
			wantMsg:  "connection refused",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := E(tt.args...)
			e, ok := err.(*Error)
			if !ok {
				t.Fatalf("E() returned %T, want *Error", err)
			}
			if e.Op != tt.wantOp || e.Kind != tt.wantKind {
				t.Errorf("E() = {Op: %q, Kind: %v}, want {Op: %q, Kind: %v}", e.Op, e.Kind, tt.wantOp, tt.wantKind)
			}
			if e.Err == nil {
				t.Error("E() should always carry a cause")
			}
			if got := err.Error(); got != tt.wantMsg {
				t.Errorf("Error() = %q, want %q", got, tt.wantMsg)
			}
		})
	}
}

func TestIsAndGetKind(t *testing.T) {
	timeout := ProviderTimeout(Op("generation.Generate"), errors.New("deadline exceeded"))
	tests := []struct {
		name     string
		err      error
		kind     Kind
		wantIs   bool
		wantKind Kind
	}{
		{"matching kind", timeout, KindTimeout, true, KindTimeout},
		{"other kind", timeout, KindProvider, false, KindTimeout},
		{"wrapped", fmt.Errorf("send: %w", timeout), KindTimeout, true, KindTimeout},
		{"foreign error", errors.New("plain"), KindTimeout, false, KindUnknown},
		{"nil", nil, KindTimeout, false, KindUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Is(tt.err, tt.kind); got != tt.wantIs {
				t.Errorf("Is() = %v, want %v", got, tt.wantIs)
			}
			if got := GetKind(tt.err); got != tt.wantKind {
				t.Errorf("GetKind() = %v, want %v", got, tt.wantKind)
			}
		})
	}
}

func TestSessionNotFound(t *testing.T) {
	err := SessionNotFound(42)

	if !Is(err, KindNotFound) {
		t.Error("SessionNotFound should return KindNotFound error")
	}

	if e, ok := err.(*Error); ok {
		if e.Op != "session.Get" {
			t.Errorf("Op = %q, want %q", e.Op, "session.Get")
		}
	} else {
		t.Error("SessionNotFound should return *Error")
	}
}

func TestProviderConstructors(t *testing.T) {
	underlying := errors.New("connection refused")
	op := Op("generation.Generate")

	tests := []struct {
		name string
		err  error
		kind Kind
	}{
		{"credential missing", CredentialMissing(op), KindCredentialMissing},
		{"provider failed", ProviderFailed(op, underlying), KindProvider},
		{"provider timeout", ProviderTimeout(op, underlying), KindTimeout},
		{"empty response", EmptyResponse(op), KindEmptyResponse},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !Is(tt.err, tt.kind) {
				t.Errorf("expected kind %v, got %v", tt.kind, GetKind(tt.err))
			}
			if e, ok := tt.err.(*Error); !ok || e.Op != op {
				t.Errorf("expected Op %q on %v", op, tt.err)
			}
		})
	}

	if !errors.Is(ProviderFailed(op, underlying), underlying) {
		t.Error("ProviderFailed should wrap the underlying error")
	}
}

func TestConfigLoadFailed(t *testing.T) {
	underlying := errors.New("file not found")
	err := ConfigLoadFailed("/path/to/config", underlying)

	if !Is(err, KindConfig) {
		t.Error("ConfigLoadFailed should return KindConfig error")
	}
	if !errors.Is(err, underlying) {
		t.Error("ConfigLoadFailed should wrap the underlying error")
	}
}

func TestConfigSaveFailed(t *testing.T) {
	err := ConfigSaveFailed("/path/to/config", errors.New("permission denied"))

	if !Is(err, KindConfig) {
		t.Error("ConfigSaveFailed should return KindConfig error")
	}
}

func TestConfigInvalid(t *testing.T) {
	err := ConfigInvalid("unknown language")

	if !Is(err, KindInvalid) {
		t.Error("ConfigInvalid should return KindInvalid error")
	}
}

func TestExportFailed(t *testing.T) {
	underlying := errors.New("read-only file system")
	err := ExportFailed("/tmp/out.doc", underlying)

	if !Is(err, KindExport) {
		t.Error("ExportFailed should return KindExport error")
	}
	if !errors.Is(err, underlying) {
		t.Error("ExportFailed should wrap the underlying error")
	}
}

func TestErrorChaining(t *testing.T) {
	perm := errors.New("permission denied")
	save := ConfigSaveFailed("/home/u/.docdraft/config.json", perm)
	outer := E(Op("app.saveConfig"), KindIO, save)

	if !errors.Is(outer, perm) {
		t.Error("the root cause should be reachable through the chain")
	}
	if GetKind(outer) != KindIO {
		t.Errorf("GetKind() = %v, want the outermost kind", GetKind(outer))
	}

	var inner *Error
	if !errors.As(save, &inner) || inner.Unwrap() != perm {
		t.Error("Unwrap() should return the cause")
	}
}
