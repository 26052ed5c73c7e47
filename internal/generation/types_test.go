package generation

import (
	"strings"
	"testing"
)

func TestSettingsNormalize(t *testing.T) {
	cases := []struct {
		name string
		in   Settings
		want Settings
	}{
		{
			name: "defaults",
			in:   Settings{},
			want: Settings{Resolution: "1K", AspectRatio: "1:1", ImageCount: 1},
		},
		{
			name: "uppercases resolution",
			in:   Settings{Resolution: "2k", AspectRatio: "16:9", ImageCount: 3},
			want: Settings{Resolution: "2K", AspectRatio: "16:9", ImageCount: 3},
		},
		{
			name: "trims whitespace",
			in:   Settings{Resolution: " 4K ", AspectRatio: " 9:16 ", ImageCount: 2},
			want: Settings{Resolution: "4K", AspectRatio: "9:16", ImageCount: 2},
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := tc.in
			got.Normalize()
			if got != tc.want {
				t.Fatalf("normalize = %+v, want %+v", got, tc.want)
			}
		})
	}
}

func TestSettingsValidate(t *testing.T) {
	valid := Settings{Resolution: "2K", AspectRatio: "21:9", ImageCount: 4}
	if err := valid.Validate(); err != nil {
		t.Fatalf("valid settings rejected: %v", err)
	}

	cases := []struct {
		name    string
		in      Settings
		wantMsg string
	}{
		{"bad resolution", Settings{Resolution: "8K", AspectRatio: "1:1", ImageCount: 1}, "resolution"},
		{"bad aspect ratio", Settings{Resolution: "1K", AspectRatio: "2:1", ImageCount: 1}, "aspectRatio"},
		{"count too low", Settings{Resolution: "1K", AspectRatio: "1:1", ImageCount: 0}, "imageCount"},
		{"count too high", Settings{Resolution: "1K", AspectRatio: "1:1", ImageCount: 5}, "imageCount"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.in.Validate()
			if err == nil {
				t.Fatalf("expected error")
			}
			if !strings.Contains(err.Error(), tc.wantMsg) {
				t.Fatalf("error = %q, want mention of %s", err, tc.wantMsg)
			}
		})
	}
}

func TestNormalizeAvatarType(t *testing.T) {
	if got := NormalizeAvatarType("OBJECT"); got != AvatarObject {
		t.Fatalf("OBJECT = %s, want object", got)
	}
	if got := NormalizeAvatarType("human"); got != AvatarHuman {
		t.Fatalf("human = %s, want human", got)
	}
	if got := NormalizeAvatarType(""); got != AvatarHuman {
		t.Fatalf("empty = %s, want human default", got)
	}
	if got := NormalizeAvatarType("robot"); got != AvatarHuman {
		t.Fatalf("unknown = %s, want human default", got)
	}
}
