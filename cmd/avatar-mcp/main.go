package main

import (
	"net"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/Stephen-Psaradellis/avatarforge/internal/cache"
	"github.com/Stephen-Psaradellis/avatarforge/internal/compose"
	"github.com/Stephen-Psaradellis/avatarforge/internal/logger"
	"github.com/Stephen-Psaradellis/avatarforge/internal/registry"
	tools "github.com/Stephen-Psaradellis/avatarforge/internal/tools"
)

func main() {
	if err := logger.InitFromEnv(); err != nil {
		panic(err)
	}
	defer logger.Close()

	logger.Infof("Starting Avatarforge MCP server")

	// Connect to cache daemon; start it if needed, then connect.
	sock := defaultSocketPath()
	logger.Infof("Attempting to connect to cache daemon at %s", sock)
	kv, err := connectCache(sock)
	if err != nil {
		logger.Warnf("Failed to connect to cache daemon: %v, attempting to start daemon", err)
		if startErr := startCacheDaemon(); startErr != nil {
			logger.Errorf("Failed to start cache daemon: %v", startErr)
		} else {
			logger.Infof("Cache daemon started successfully")
		}
		// wait for socket to appear
		deadline := time.Now().Add(5 * time.Second)
		for time.Now().Before(deadline) {
			if kv2, err2 := connectCache(sock); err2 == nil {
				kv = kv2
				err = nil
				break
			}
			time.Sleep(200 * time.Millisecond)
		}
		if kv == nil {
			logger.Errorf("Failed to connect to cache daemon after startup attempt: %v", err)
			panic(err)
		}
	}
	logger.Infof("Successfully connected to cache daemon")

	avatarCache := cache.NewAvatarCache(kv, cache.AvatarOptions{})
	svc := compose.NewService(registry.NewSeeded(), avatarCache)
	logger.Infof("Initialized avatar composer with seeded part registry")

	s := server.NewMCPServer(
		"Avatarforge MCP",
		"0.1.0",
		server.WithRecovery(),
		server.WithToolCapabilities(false),
	)

	toolRender := mcp.NewTool("avatar-render",
		mcp.WithDescription(multiline(
			"Renders a procedural avatar from an appearance configuration",
			"\nFunctionality:",
			"- Builds a multi-shade color palette from the named base colors",
			"- Composes layered SVG parts for the requested view",
			"- Returns the composed SVG, or a PNG when format is \"png\"",
			"\nUsage notes:",
			"- All color and part parameters are optional; unknown names fall back to defaults",
			"- Results are cached in memory and on disk keyed by the full configuration",
		)),
		mcp.WithString("view", mcp.Description("Rendering mode: \"portrait\" (default) or \"fullBody\"")),
		mcp.WithString("format", mcp.Description("Output format: \"svg\" (default) or \"png\"")),
		mcp.WithString("skin_tone", mcp.Description("Named skin tone, e.g. Light, Fair, Medium, Tan, Brown, Deep")),
		mcp.WithString("hair_color", mcp.Description("Named hair color, e.g. Black, Brown, Blonde, Red, Gray")),
		mcp.WithString("eye_color", mcp.Description("Named eye color, e.g. Brown, Blue, Green, Hazel")),
		mcp.WithString("top_color", mcp.Description("Named clothing color for the top")),
		mcp.WithString("bottom_color", mcp.Description("Named clothing color for the bottom")),
		mcp.WithString("facial_hair_color", mcp.Description("Named facial hair color")),
		mcp.WithString("head_shape", mcp.Description("Part id for the head shape layer")),
		mcp.WithString("eyes", mcp.Description("Part id for the eyes layer")),
		mcp.WithString("eyebrows", mcp.Description("Part id for the eyebrows layer")),
		mcp.WithString("nose", mcp.Description("Part id for the nose layer")),
		mcp.WithString("mouth", mcp.Description("Part id for the mouth layer")),
		mcp.WithString("hair_front", mcp.Description("Part id for the front hair layer")),
		mcp.WithString("body", mcp.Description("Part id for the body layer")),
		mcp.WithString("top", mcp.Description("Part id for the top clothing layer")),
		mcp.WithString("bottom", mcp.Description("Part id for the bottom clothing layer")),
		mcp.WithString("glasses", mcp.Description("Part id for the glasses layer")),
		mcp.WithString("ears", mcp.Description("Part id for the ears layer")),
		mcp.WithString("neck", mcp.Description("Part id for the neck layer")),
		mcp.WithString("headwear", mcp.Description("Part id for the headwear layer")),
	)
	s.AddTool(toolRender, tools.AvatarRenderHandler(svc))
	logger.Infof("Registered avatar-render tool")

	toolStats := mcp.NewTool("avatar-cache-stats",
		mcp.WithDescription("Reports avatar cache effectiveness counters (hits, misses, promotions, evictions)"),
	)
	s.AddTool(toolStats, tools.CacheStatsHandler(avatarCache))

	toolPrune := mcp.NewTool("avatar-cache-prune",
		mcp.WithDescription("Deletes expired or corrupt persisted avatars and reports how many were removed"),
	)
	s.AddTool(toolPrune, tools.CachePruneHandler(avatarCache))
	logger.Infof("Registered cache maintenance tools")

	logger.Infof("Starting MCP server on stdio")
	if err := server.ServeStdio(s); err != nil {
		logger.Errorf("server error: %v", err)
	}
}

// multiline joins lines with newlines for tool descriptions.
func multiline(lines ...string) string { return strings.Join(lines, "\n") }

func defaultSocketPath() string {
	if s := os.Getenv("AVATARFORGE_CACHE_SOCK"); s != "" {
		return s
	}
	home, _ := os.UserHomeDir()
	if home == "" {
		home = "."
	}
	return filepath.Join(home, ".cache", "avatarforge", "cache.sock")
}

func connectCache(sock string) (cache.KV, error) {
	// quick probe
	conn, err := net.DialTimeout("unix", sock, 200*time.Millisecond)
	if err != nil {
		return nil, err
	}
	_ = conn.Close()
	return cache.NewClient(sock), nil
}

func startCacheDaemon() error {
	// 1) Try cache binary next to this server executable (works with absolute invocation)
	if exePath, err := os.Executable(); err == nil {
		exeDir := filepath.Dir(exePath)
		sibling := filepath.Join(exeDir, "avatar-cache")
		if _, statErr := os.Stat(sibling); statErr == nil {
			cmd := exec.Command(sibling)
			cmd.Stdout = nil
			cmd.Stderr = nil
			cmd.Env = os.Environ()
			return cmd.Start()
		}
	}

	// 2) Try PATH binary
	if path, err := exec.LookPath("avatar-cache"); err == nil {
		cmd := exec.Command(path)
		cmd.Stdout = nil
		cmd.Stderr = nil
		cmd.Env = os.Environ()
		return cmd.Start()
	}

	// 3) Try local binary in current working directory (best-effort)
	if _, err := os.Stat("./avatar-cache"); err == nil {
		cmd := exec.Command("./avatar-cache")
		cmd.Stdout = nil
		cmd.Stderr = nil
		cmd.Env = os.Environ()
		return cmd.Start()
	}

	return exec.ErrNotFound
}
