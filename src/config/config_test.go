package config

import "testing"

func TestCleanDatabaseURL(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"plain url", "postgres://user:pw@host/db", "postgres://user:pw@host/db"},
		{"psql launcher prefix", `psql 'postgres://user:pw@host/db'`, "postgres://user:pw@host/db"},
		{"double quoted", `"postgres://user:pw@host/db"`, "postgres://user:pw@host/db"},
		{"empty", "", ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := cleanDatabaseURL(tc.in); got != tc.want {
				t.Fatalf("cleanDatabaseURL(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}

func TestGetEnv(t *testing.T) {
	t.Setenv("BZ_TEST_PORT", "9000")
	if got := getEnv("BZ_TEST_PORT", "8080"); got != "9000" {
		t.Fatalf("expected env value, got %q", got)
	}
	if got := getEnv("BZ_TEST_MISSING", "8080"); got != "8080" {
		t.Fatalf("expected fallback, got %q", got)
	}
}

func TestGetEnvInt(t *testing.T) {
	t.Setenv("BZ_TEST_LIMIT", "250")
	if got := getEnvInt("BZ_TEST_LIMIT", 100); got != 250 {
		t.Fatalf("expected 250, got %d", got)
	}
	if got := getEnvInt("BZ_TEST_LIMIT_MISSING", 100); got != 100 {
		t.Fatalf("expected fallback 100, got %d", got)
	}
}
