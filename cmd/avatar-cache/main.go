package main

import (
	"net"
	"os"
	"path/filepath"

	"github.com/Stephen-Psaradellis/avatarforge/internal/cache"
)

// Daemon owning the bbolt store: bbolt allows one opener per file, so every
// process that wants the persistent avatar tier talks to this socket.
func main() {
	sock := defaultString(os.Getenv("AVATARFORGE_CACHE_SOCK"), defaultSocketPath())
	db := defaultString(os.Getenv("AVATARFORGE_CACHE_DB"), defaultDBPath())

	// Ensure socket dir exists and remove stale socket
	_ = os.MkdirAll(filepath.Dir(sock), 0o755)
	_ = os.Remove(sock)

	l, err := net.Listen("unix", sock)
	if err != nil {
		panic(err)
	}
	defer l.Close()
	_ = os.Chmod(sock, 0o600)

	store, err := cache.Open(db, cache.Options{Bucket: "avatars"})
	if err != nil {
		panic(err)
	}
	defer store.Close()

	cache.Serve(l, store)
}

func defaultSocketPath() string {
	home, _ := os.UserHomeDir()
	if home == "" {
		home = "."
	}
	return filepath.Join(home, ".cache", "avatarforge", "cache.sock")
}

func defaultDBPath() string {
	home, _ := os.UserHomeDir()
	if home == "" {
		home = "."
	}
	return filepath.Join(home, ".cache", "avatarforge", "cache.bbolt")
}

func defaultString(v, d string) string {
	if v == "" {
		return d
	}
	return v
}
