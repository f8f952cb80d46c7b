package tools

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/Stephen-Psaradellis/avatarforge/internal/cache"
)

// CacheStatsHandler returns the MCP tool handler for "avatar-cache-stats".
func CacheStatsHandler(c *cache.AvatarCache) func(context.Context, mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		if ctx.Err() != nil {
			return mcp.NewToolResultError(ctx.Err().Error()), nil
		}
		s := c.Stats()
		return mcp.NewToolResultText(formatStats(s)), nil
	}
}

// CachePruneHandler returns the MCP tool handler for "avatar-cache-prune".
func CachePruneHandler(c *cache.AvatarCache) func(context.Context, mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		if ctx.Err() != nil {
			return mcp.NewToolResultError(ctx.Err().Error()), nil
		}
		removed, err := c.PruneExpired()
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return mcp.NewToolResultText(fmt.Sprintf("pruned %d expired avatar(s)", removed)), nil
	}
}

func formatStats(s cache.Stats) string {
	total := s.Hits + s.StorageHits + s.Misses
	ratio := 0.0
	if total > 0 {
		ratio = float64(s.Hits+s.StorageHits) / float64(total)
	}
	return fmt.Sprintf(
		"memory entries: %d\nmemory hits: %d\nstorage hits: %d\nmisses: %d\npromotions: %d\nevictions: %d\nhit ratio: %.2f",
		s.MemoryLen, s.Hits, s.StorageHits, s.Misses, s.Promotions, s.Evictions, ratio,
	)
}
