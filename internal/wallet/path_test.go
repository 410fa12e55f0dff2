package wallet

import (
	"errors"
	"testing"
)

func TestParseDerivationPath(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    DerivationPath
		wantErr bool
	}{
		{
			name:  "master only",
			input: "m",
			want:  DerivationPath{},
		},
		{
			name:  "fixed account path",
			input: "m/44'/60'/0'/0/0",
			want:  DerivationPath{PurposeBIP44, CoinTypeEthereum, AccountDefault, 0, 0},
		},
		{
			name:  "non-zero address index",
			input: "m/44'/60'/0'/0/42",
			want:  DerivationPath{PurposeBIP44, CoinTypeEthereum, AccountDefault, 0, 42},
		},
		{
			name:  "max non-hardened index",
			input: "m/2147483647",
			want:  DerivationPath{HardenedKeyStart - 1},
		},
		{
			name:    "missing m",
			input:   "44'/60'/0'/0/0",
			wantErr: true,
		},
		{
			name:    "empty string",
			input:   "",
			wantErr: true,
		},
		{
			name:    "empty segment",
			input:   "m//0",
			wantErr: true,
		},
		{
			name:    "trailing slash",
			input:   "m/44'/",
			wantErr: true,
		},
		{
			name:    "non-numeric segment",
			input:   "m/44'/abc",
			wantErr: true,
		},
		{
			name:    "apostrophe in the middle",
			input:   "m/4'4/60",
			wantErr: true,
		},
		{
			name:    "index out of range",
			input:   "m/2147483648",
			wantErr: true,
		},
		{
			name:    "negative index",
			input:   "m/-1",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseDerivationPath(tt.input)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidPath) {
					t.Errorf("error = %v, want ErrInvalidPath", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseDerivationPath(%q) error: %v", tt.input, err)
			}
			if len(got) != len(tt.want) {
				t.Fatalf("path length = %d, want %d", len(got), len(tt.want))
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("segment %d = %d, want %d", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestDerivationPath_String(t *testing.T) {
	tests := []struct {
		name string
		path DerivationPath
		want string
	}{
		{
			name: "master",
			path: DerivationPath{},
			want: "m",
		},
		{
			name: "fixed account path",
			path: DerivationPath{PurposeBIP44, CoinTypeEthereum, AccountDefault, 0, 7},
			want: "m/44'/60'/0'/0/7",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.path.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestDerivationPath_StringRoundtrip(t *testing.T) {
	in := "m/44'/60'/0'/0/99"
	path, err := ParseDerivationPath(in)
	if err != nil {
		t.Fatalf("ParseDerivationPath() error: %v", err)
	}
	if path.String() != in {
		t.Errorf("roundtrip: got %q, want %q", path.String(), in)
	}
}

func TestPathForIndex(t *testing.T) {
	path, err := PathForIndex(5)
	if err != nil {
		t.Fatalf("PathForIndex() error: %v", err)
	}

	want := DerivationPath{PurposeBIP44, CoinTypeEthereum, AccountDefault, ChangeExternal, 5}
	if len(path) != len(want) {
		t.Fatalf("path length = %d, want %d", len(path), len(want))
	}
	for i := range path {
		if path[i] != want[i] {
			t.Errorf("segment %d = %d, want %d", i, path[i], want[i])
		}
	}

	// Purpose, coin type and account are hardened; change and index are not.
	for i, hardened := range []bool{true, true, true, false, false} {
		if got := path[i] >= HardenedKeyStart; got != hardened {
			t.Errorf("segment %d hardened = %v, want %v", i, got, hardened)
		}
	}
}
