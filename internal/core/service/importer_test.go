package service

import (
	"strings"
	"testing"

	"github.com/klorpe/accountpool/internal/core/domain"
)

func TestParseAccounts_ValidLines(t *testing.T) {
	accounts := ParseAccounts("a@b.com:secret\nc@d.com:hunter2")
	if len(accounts) != 2 {
		t.Fatalf("expected 2 accounts, got %d", len(accounts))
	}
	if accounts[0].Email != "a@b.com" || accounts[0].Password != "secret" {
		t.Fatalf("unexpected first record: %+v", accounts[0])
	}
	if accounts[1].Email != "c@d.com" || accounts[1].Password != "hunter2" {
		t.Fatalf("unexpected second record: %+v", accounts[1])
	}
	for _, a := range accounts {
		if a.Status != domain.StatusAvailable {
			t.Fatalf("expected status available, got %s", a.Status)
		}
		if !strings.HasPrefix(a.ID, "acc_") {
			t.Fatalf("expected acc_ id prefix, got %s", a.ID)
		}
		if a.CreatedAt.IsZero() {
			t.Fatalf("expected creation timestamp to be set")
		}
	}
	if accounts[0].ID == accounts[1].ID {
		t.Fatalf("ids must be unique")
	}
}

func TestParseAccounts_TrimsWhitespace(t *testing.T) {
	accounts := ParseAccounts("  a@b.com : secret  \r\n")
	if len(accounts) != 1 {
		t.Fatalf("expected 1 account, got %d", len(accounts))
	}
	if accounts[0].Email != "a@b.com" || accounts[0].Password != "secret" {
		t.Fatalf("fields not trimmed: %+v", accounts[0])
	}
}

func TestParseAccounts_SplitsAtFirstColon(t *testing.T) {
	accounts := ParseAccounts("a@b.com:pass:with:colons")
	if len(accounts) != 1 {
		t.Fatalf("expected 1 account, got %d", len(accounts))
	}
	if accounts[0].Password != "pass:with:colons" {
		t.Fatalf("expected password to keep trailing colons, got %q", accounts[0].Password)
	}
}

func TestParseAccounts_DropsInvalidLines(t *testing.T) {
	cases := []struct {
		name string
		in   string
	}{
		{"no colon", "not-a-credential"},
		{"empty email", ":password"},
		{"empty password", "a@b.com:"},
		{"whitespace email", "   :password"},
		{"whitespace password", "a@b.com:   "},
		{"blank line", "   "},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := ParseAccounts(tc.in); len(got) != 0 {
				t.Fatalf("expected line to be dropped, got %+v", got)
			}
		})
	}
}

func TestParseAccounts_MixedInput(t *testing.T) {
	accounts := ParseAccounts("x@y.com:pw1\nbad-line\nz@q.com:pw2")
	if len(accounts) != 2 {
		t.Fatalf("expected 2 accounts, got %d", len(accounts))
	}
	if accounts[0].Email != "x@y.com" || accounts[1].Email != "z@q.com" {
		t.Fatalf("expected input order preserved, got %s then %s", accounts[0].Email, accounts[1].Email)
	}
}

func TestParseAccounts_WindowsNewlines(t *testing.T) {
	accounts := ParseAccounts("a@b.com:one\r\nc@d.com:two\r\n")
	if len(accounts) != 2 {
		t.Fatalf("expected 2 accounts, got %d", len(accounts))
	}
}
