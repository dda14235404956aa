package mcpsrv

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/qyinm/modeldeck/browse"
	"github.com/qyinm/modeldeck/mcpsrv/dto"
	"github.com/qyinm/modeldeck/types"
	"github.com/rs/zerolog"
)

const (
	defaultLimit = 25
	maxLimit     = 100
)

type modelsListArgs struct {
	Query    string `json:"query,omitempty" jsonschema:"Optional search term matched against name, developer, tags and description"`
	Category string `json:"category,omitempty" jsonschema:"Optional category: all, multimodal, image, video, audio"`
	Sort     string `json:"sort,omitempty" jsonschema:"Optional sort: newest, price-low, price-high, name"`
	Offset   int    `json:"offset,omitempty" jsonschema:"Optional pagination offset"`
	Limit    int    `json:"limit,omitempty" jsonschema:"Optional page size limit"`
}

type modelGetArgs struct {
	ID string `json:"id" jsonschema:"Model id"`
}

type modelsCompareArgs struct {
	IDs []string `json:"ids" jsonschema:"Ids of up to 4 models to compare"`
}

type modelsListOutput struct {
	Query      string      `json:"query"`
	Category   string      `json:"category"`
	Sort       string      `json:"sort"`
	Offset     int         `json:"offset"`
	Limit      int         `json:"limit"`
	NextOffset int         `json:"next_offset"`
	HasMore    bool        `json:"has_more"`
	Total      int         `json:"total"`
	Items      []dto.Model `json:"items"`
}

type modelGetOutput struct {
	Item dto.Model `json:"item"`
}

type categoryListOutput struct {
	Total int            `json:"total"`
	Items []dto.Category `json:"items"`
}

type catalogStatsOutput struct {
	Total      int            `json:"total"`
	ByCategory map[string]int `json:"by_category"`
}

type modelsCompareOutput struct {
	Count int         `json:"count"`
	Items []dto.Model `json:"items"`
}

type cacheClearOutput struct {
	Status  string `json:"status"`
	Cleared int    `json:"cleared"`
}

type ServerOptions struct {
	EnableAdmin bool
	Logger      *zerolog.Logger
}

func NewServer(engine *browse.Engine, version string, opts *ServerOptions) *mcp.Server {
	if strings.TrimSpace(version) == "" {
		version = "dev"
	}
	if opts == nil {
		opts = &ServerOptions{}
	}
	log := zerolog.Nop()
	if opts.Logger != nil {
		log = *opts.Logger
	}

	server := mcp.NewServer(&mcp.Implementation{Name: "modeldeck", Version: version}, nil)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "models_list",
		Description: "List catalog models filtered by search term and category, in sort order.",
	}, func(ctx context.Context, req *mcp.CallToolRequest, args modelsListArgs) (*mcp.CallToolResult, modelsListOutput, error) {
		return logged[modelsListOutput](log, "models_list")(modelsListHandler(ctx, req, args, engine))
	})

	mcp.AddTool(server, &mcp.Tool{
		Name:        "model_get",
		Description: "Get one model by id.",
	}, func(ctx context.Context, req *mcp.CallToolRequest, args modelGetArgs) (*mcp.CallToolResult, modelGetOutput, error) {
		return logged[modelGetOutput](log, "model_get")(modelGetHandler(ctx, req, args, engine))
	})

	mcp.AddTool(server, &mcp.Tool{
		Name:        "category_list",
		Description: "List model categories with their model counts.",
	}, func(ctx context.Context, req *mcp.CallToolRequest, _ struct{}) (*mcp.CallToolResult, categoryListOutput, error) {
		return categoryListHandler(ctx, req, engine)
	})

	mcp.AddTool(server, &mcp.Tool{
		Name:        "catalog_stats",
		Description: "Get whole-catalog model counts, overall and per category.",
	}, func(ctx context.Context, req *mcp.CallToolRequest, _ struct{}) (*mcp.CallToolResult, catalogStatsOutput, error) {
		return catalogStatsHandler(ctx, req, engine)
	})

	mcp.AddTool(server, &mcp.Tool{
		Name:        "models_compare",
		Description: "Compare up to 4 models side by side.",
	}, func(ctx context.Context, req *mcp.CallToolRequest, args modelsCompareArgs) (*mcp.CallToolResult, modelsCompareOutput, error) {
		return logged[modelsCompareOutput](log, "models_compare")(modelsCompareHandler(ctx, req, args, engine))
	})

	if opts.EnableAdmin {
		mcp.AddTool(server, &mcp.Tool{
			Name:        "cache_clear",
			Description: "Clear memoized filter results (admin).",
		}, func(ctx context.Context, req *mcp.CallToolRequest, _ struct{}) (*mcp.CallToolResult, cacheClearOutput, error) {
			return cacheClearHandler(ctx, req, engine)
		})
	}

	return server
}

// logged returns a pass-through that records tool calls ending in an error result.
func logged[Out any](log zerolog.Logger, tool string) func(*mcp.CallToolResult, Out, error) (*mcp.CallToolResult, Out, error) {
	return func(result *mcp.CallToolResult, out Out, err error) (*mcp.CallToolResult, Out, error) {
		if result != nil && result.IsError {
			msg := ""
			if len(result.Content) > 0 {
				if text, ok := result.Content[0].(*mcp.TextContent); ok {
					msg = text.Text
				}
			}
			log.Warn().Str("tool", tool).Str("reason", msg).Msg("tool call failed")
		}
		return result, out, err
	}
}

func modelsListHandler(_ context.Context, _ *mcp.CallToolRequest, args modelsListArgs, engine *browse.Engine) (*mcp.CallToolResult, modelsListOutput, error) {
	category, err := types.ParseCategory(args.Category)
	if err != nil {
		return errorToolResult(err.Error()), modelsListOutput{}, nil
	}
	sort, err := types.ParseSortKey(args.Sort)
	if err != nil {
		return errorToolResult(err.Error()), modelsListOutput{}, nil
	}

	state := types.FilterState{
		SearchTerm: strings.TrimSpace(args.Query),
		Category:   category,
		Sort:       sort,
	}
	records := engine.Visible(state)

	limit := args.Limit
	if limit <= 0 {
		limit = defaultLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}
	offset := args.Offset
	if offset < 0 {
		offset = 0
	}
	if offset > len(records) {
		offset = len(records)
	}

	end := offset + limit
	if end > len(records) {
		end = len(records)
	}
	page := records[offset:end]
	nextOffset := end
	hasMore := end < len(records)
	if !hasMore {
		nextOffset = -1
	}

	return nil, modelsListOutput{
		Query:      state.SearchTerm,
		Category:   category.String(),
		Sort:       sort.String(),
		Offset:     offset,
		Limit:      limit,
		NextOffset: nextOffset,
		HasMore:    hasMore,
		Total:      len(records),
		Items:      dto.FromModels(page),
	}, nil
}

func modelGetHandler(_ context.Context, _ *mcp.CallToolRequest, args modelGetArgs, engine *browse.Engine) (*mcp.CallToolResult, modelGetOutput, error) {
	id := strings.TrimSpace(args.ID)
	if id == "" {
		return errorToolResult("id is required"), modelGetOutput{}, nil
	}

	record, ok := engine.Lookup(id)
	if !ok {
		return errorToolResult(fmt.Sprintf("model %q not found", id)), modelGetOutput{}, nil
	}

	return nil, modelGetOutput{Item: dto.FromModel(record)}, nil
}

func categoryListHandler(_ context.Context, _ *mcp.CallToolRequest, engine *browse.Engine) (*mcp.CallToolResult, categoryListOutput, error) {
	stats := engine.Stats()
	items := make([]dto.Category, 0, len(types.Categories))
	for _, c := range types.Categories {
		items = append(items, dto.FromCategory(c, stats.Count(c)))
	}
	return nil, categoryListOutput{Total: stats.Total, Items: items}, nil
}

func catalogStatsHandler(_ context.Context, _ *mcp.CallToolRequest, engine *browse.Engine) (*mcp.CallToolResult, catalogStatsOutput, error) {
	stats := dto.FromStats(engine.Stats())
	return nil, catalogStatsOutput{Total: stats.Total, ByCategory: stats.ByCategory}, nil
}

func modelsCompareHandler(_ context.Context, _ *mcp.CallToolRequest, args modelsCompareArgs, engine *browse.Engine) (*mcp.CallToolResult, modelsCompareOutput, error) {
	if len(args.IDs) == 0 {
		return errorToolResult("ids is required"), modelsCompareOutput{}, nil
	}

	ids := make([]string, 0, len(args.IDs))
	for _, raw := range args.IDs {
		if id := strings.TrimSpace(raw); !slices.Contains(ids, id) {
			ids = append(ids, id)
		}
	}

	selection := browse.NewSelection()
	for _, id := range ids {
		record, ok := engine.Lookup(id)
		if !ok {
			return errorToolResult(fmt.Sprintf("model %q not found", id)), modelsCompareOutput{}, nil
		}
		if _, err := selection.Toggle(record); err != nil {
			return errorToolResult(fmt.Sprintf("%s; got %d models", err, len(ids))), modelsCompareOutput{}, nil
		}
	}

	records := selection.Records()
	return nil, modelsCompareOutput{Count: len(records), Items: dto.FromModels(records)}, nil
}

func cacheClearHandler(_ context.Context, _ *mcp.CallToolRequest, engine *browse.Engine) (*mcp.CallToolResult, cacheClearOutput, error) {
	cleared := engine.CacheSize()
	engine.ClearCache()
	return nil, cacheClearOutput{Status: "ok", Cleared: cleared}, nil
}

func errorToolResult(msg string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		IsError: true,
		Content: []mcp.Content{&mcp.TextContent{Text: msg}},
	}
}
