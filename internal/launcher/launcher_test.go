package launcher

import "testing"

func TestExpandHome(t *testing.T) {
	t.Setenv("HOME", "/home/tester")

	cases := []struct {
		in   string
		want string
	}{
		{"~/docs", "/home/tester/docs"},
		{"~", "/home/tester"},
		{"/srv/media/", "/srv/media/"},
		{"relative/path", "relative/path"},
		{"~user/docs", "~user/docs"},
	}
	for _, c := range cases {
		if got := ExpandHome(c.in); got != c.want {
			t.Fatalf("ExpandHome(%q) = %q want %q", c.in, got, c.want)
		}
	}
}
