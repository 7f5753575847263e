package strconvx

import "testing"

func TestFormat(t *testing.T) {
	cases := []struct {
		got, want string
	}{
		{Itoa(0), "0"},
		{Itoa(-42), "-42"},
		{FormatInt(300000, 10), "300000"},
		{FormatUint(255, 16), "ff"},
		{FormatUint(4<<20, 10), "4194304"},
	}
	for i, c := range cases {
		if c.got != c.want {
			t.Fatalf("case %d: got %q, want %q", i, c.got, c.want)
		}
	}
}
