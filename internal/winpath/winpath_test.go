package winpath

import "testing"

func TestToWindowsPath(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "forward slashes converted",
			in:   "some/random/folder",
			want: `some\random\folder`,
		},
		{
			name: "absolute path with drive",
			in:   "C:/Users/test/log",
			want: `C:\Users\test\log`,
		},
		{
			name: "already native is unchanged",
			in:   `some\random\folder`,
			want: `some\random\folder`,
		},
		{
			name: "empty path",
			in:   "",
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ToWindowsPath(tt.in); got != tt.want {
				t.Errorf("ToWindowsPath(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestToWindowsPathIdempotent(t *testing.T) {
	in := "mixed/separator\\path/form"

	once := ToWindowsPath(in)
	twice := ToWindowsPath(once)

	if once != twice {
		t.Errorf("normalization not idempotent: %q != %q", once, twice)
	}
}

func TestToUncPath(t *testing.T) {
	tests := []struct {
		name   string
		server string
		path   string
		want   string
	}{
		{
			name:   "relative share path",
			server: "server",
			path:   "some/path/to/a/log",
			want:   `\\server\some\path\to\a\log`,
		},
		{
			name:   "leading slash dropped",
			server: "nas",
			path:   "/backup",
			want:   `\\nas\backup`,
		},
		{
			name:   "already native share path",
			server: "host",
			path:   `share\sub`,
			want:   `\\host\share\sub`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ToUncPath(tt.server, tt.path); got != tt.want {
				t.Errorf("ToUncPath(%q, %q) = %q, want %q", tt.server, tt.path, got, tt.want)
			}
		})
	}
}

func TestDriveRoot(t *testing.T) {
	for in, want := range map[string]string{
		"Z":  `Z:\`,
		"z:": `Z:\`,
		"c":  `C:\`,
	} {
		if got := DriveRoot(in); got != want {
			t.Errorf("DriveRoot(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestIsDriveLetter(t *testing.T) {
	for in, want := range map[string]bool{
		"Z":   true,
		"z":   true,
		"Z:":  true,
		"":    false,
		":":   false,
		"ZZ":  false,
		"1:":  false,
		"Z:/": false,
	} {
		if got := IsDriveLetter(in); got != want {
			t.Errorf("IsDriveLetter(%q) = %t, want %t", in, got, want)
		}
	}
}
