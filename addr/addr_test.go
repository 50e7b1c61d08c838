package addr_test

import (
	"runtime"
	"testing"

	"github.com/creachadair/replink/addr"
)

func TestResolve(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("skipping Unix-domain resolution tests on windows")
	}

	t.Run("Default", func(t *testing.T) {
		network, address := addr.Resolve("")
		if network != "unix" || address != "/tmp/replink-server-default.sock" {
			t.Errorf("Resolve(\"\"): got %q, %q", network, address)
		}
	})
	t.Run("Named", func(t *testing.T) {
		network, address := addr.Resolve("x2")
		if network != "unix" || address != "/tmp/replink-server-x2.sock" {
			t.Errorf(`Resolve("x2"): got %q, %q`, network, address)
		}
	})
	t.Run("EnvOverride", func(t *testing.T) {
		t.Setenv(addr.EnvSockFile, "/run/user/1000/repl.sock")
		network, address := addr.Resolve("x2")
		if network != "unix" || address != "/run/user/1000/repl.sock" {
			t.Errorf(`Resolve("x2"): got %q, %q`, network, address)
		}
	})
}
