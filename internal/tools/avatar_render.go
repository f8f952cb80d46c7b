package tools

import (
	"context"
	"encoding/base64"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/Stephen-Psaradellis/avatarforge/internal/avatar"
	"github.com/Stephen-Psaradellis/avatarforge/internal/compose"
	"github.com/Stephen-Psaradellis/avatarforge/internal/raster"
)

// pngSize is the edge length for rasterized tool output.
const pngSize = 256

// AvatarRenderHandler returns the MCP tool handler for "avatar-render".
func AvatarRenderHandler(svc *compose.Service) func(context.Context, mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		if ctx.Err() != nil {
			return mcp.NewToolResultError(ctx.Err().Error()), nil
		}

		cfg := avatar.Configuration{
			SkinTone:        req.GetString("skin_tone", ""),
			HairColor:       req.GetString("hair_color", ""),
			EyeColor:        req.GetString("eye_color", ""),
			TopColor:        req.GetString("top_color", ""),
			BottomColor:     req.GetString("bottom_color", ""),
			FacialHairColor: req.GetString("facial_hair_color", ""),
			HeadShape:       req.GetString("head_shape", ""),
			Eyes:            req.GetString("eyes", ""),
			Eyebrows:        req.GetString("eyebrows", ""),
			Nose:            req.GetString("nose", ""),
			Mouth:           req.GetString("mouth", ""),
			HairFront:       req.GetString("hair_front", ""),
			Body:            req.GetString("body", ""),
			Top:             req.GetString("top", ""),
			Bottom:          req.GetString("bottom", ""),
			Glasses:         req.GetString("glasses", ""),
			Ears:            req.GetString("ears", ""),
			Neck:            req.GetString("neck", ""),
			Headwear:        req.GetString("headwear", ""),
		}

		view := avatar.View(req.GetString("view", string(avatar.ViewPortrait)))
		if !view.Valid() {
			return mcp.NewToolResultError("view must be \"portrait\" or \"fullBody\""), nil
		}

		svg, _ := svc.Avatar(cfg, view)

		if req.GetString("format", "svg") == "png" {
			data, err := raster.PNG(svg, pngSize)
			if err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}
			return mcp.NewToolResultImage("rendered avatar", base64.StdEncoding.EncodeToString(data), "image/png"), nil
		}
		return mcp.NewToolResultText(svg), nil
	}
}
