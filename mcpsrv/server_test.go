package mcpsrv

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/qyinm/modeldeck/browse"
	"github.com/qyinm/modeldeck/catalog"
	"github.com/qyinm/modeldeck/types"
	"github.com/rs/zerolog"
)

func newTestEngine(t *testing.T) *browse.Engine {
	t.Helper()
	cat, err := catalog.Builtin()
	if err != nil {
		t.Fatalf("builtin catalog: %v", err)
	}
	return browse.NewEngine(cat)
}

func TestToolModelsListInvalidArgs(t *testing.T) {
	engine := newTestEngine(t)
	for _, args := range []modelsListArgs{{Category: "text"}, {Sort: "oldest"}} {
		result, _, err := modelsListHandler(context.Background(), nil, args, engine)
		if err != nil {
			t.Fatalf("unexpected handler error: %v", err)
		}
		if result == nil || !result.IsError {
			t.Fatalf("expected IsError result for %+v", args)
		}
	}
}

func TestToolModelsListPaging(t *testing.T) {
	engine := newTestEngine(t)
	_, out, err := modelsListHandler(context.Background(), nil, modelsListArgs{Offset: 0, Limit: 10}, engine)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Total != engine.Len() {
		t.Fatalf("unexpected total: got %d want %d", out.Total, engine.Len())
	}
	if len(out.Items) != 10 {
		t.Fatalf("unexpected items len: %d", len(out.Items))
	}
	if out.NextOffset != 10 || !out.HasMore {
		t.Fatalf("unexpected next offset: %d", out.NextOffset)
	}

	_, last, _ := modelsListHandler(context.Background(), nil, modelsListArgs{Offset: 10, Limit: 100}, engine)
	if last.HasMore || last.NextOffset != -1 || len(last.Items) != engine.Len()-10 {
		t.Fatalf("unexpected last page: %+v", last)
	}
}

func TestToolModelsListFilters(t *testing.T) {
	engine := newTestEngine(t)
	_, out, err := modelsListHandler(context.Background(), nil, modelsListArgs{Category: "video", Sort: "price-low"}, engine)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Category != "Video" || out.Sort != "price-low" {
		t.Fatalf("unexpected echo: %s %s", out.Category, out.Sort)
	}
	want := engine.Visible(types.FilterState{Category: types.Video, Sort: types.PriceLow})
	if len(out.Items) != len(want) {
		t.Fatalf("got %d items, want %d", len(out.Items), len(want))
	}
	for i, item := range out.Items {
		if item.ID != want[i].ID() {
			t.Fatalf("item %d = %s, want %s", i, item.ID, want[i].ID())
		}
	}
}

func TestToolModelGet(t *testing.T) {
	engine := newTestEngine(t)

	result, _, _ := modelGetHandler(context.Background(), nil, modelGetArgs{ID: "  "}, engine)
	if result == nil || !result.IsError {
		t.Fatal("expected IsError for empty id")
	}
	result, _, _ = modelGetHandler(context.Background(), nil, modelGetArgs{ID: "nope"}, engine)
	if result == nil || !result.IsError {
		t.Fatal("expected IsError for unknown id")
	}

	result, out, err := modelGetHandler(context.Background(), nil, modelGetArgs{ID: "sora-2"}, engine)
	if err != nil || result != nil {
		t.Fatalf("unexpected failure: %v %v", err, result)
	}
	if out.Item.Category != "Video" || out.Item.Link == "" {
		t.Fatalf("unexpected item: %+v", out.Item)
	}
}

func TestToolModelsCompare(t *testing.T) {
	engine := newTestEngine(t)

	_, out, err := modelsCompareHandler(context.Background(), nil, modelsCompareArgs{IDs: []string{"gpt-5", "sora-2", "gpt-5"}}, engine)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Count != 2 || out.Items[0].ID != "gpt-5" || out.Items[1].ID != "sora-2" {
		t.Fatalf("unexpected comparison: %+v", out)
	}

	five := []string{"gpt-5", "sora-2", "veo-3", "imagen-4", "suno-v4-5"}
	result, _, _ := modelsCompareHandler(context.Background(), nil, modelsCompareArgs{IDs: five}, engine)
	if result == nil || !result.IsError {
		t.Fatal("expected IsError for five models")
	}
	text := result.Content[0].(*mcp.TextContent).Text
	if !strings.Contains(text, "up to 4") || !strings.Contains(text, "got 5 models") {
		t.Fatalf("unexpected message: %q", text)
	}

	repeated := append([]string{"gpt-5", " gpt-5 "}, five[1:]...)
	result, _, _ = modelsCompareHandler(context.Background(), nil, modelsCompareArgs{IDs: repeated}, engine)
	if result == nil || !result.IsError {
		t.Fatal("expected IsError for five distinct models")
	}
	if text := result.Content[0].(*mcp.TextContent).Text; !strings.Contains(text, "got 5 models") {
		t.Fatalf("duplicates counted in message: %q", text)
	}

	result, _, _ = modelsCompareHandler(context.Background(), nil, modelsCompareArgs{}, engine)
	if result == nil || !result.IsError {
		t.Fatal("expected IsError for no ids")
	}
}

func TestToolCategoryListAndStats(t *testing.T) {
	engine := newTestEngine(t)

	_, cats, _ := categoryListHandler(context.Background(), nil, engine)
	if len(cats.Items) != len(types.Categories) {
		t.Fatalf("got %d categories", len(cats.Items))
	}
	sum := 0
	for _, c := range cats.Items {
		sum += c.Count
	}
	if sum != cats.Total || cats.Total != engine.Len() {
		t.Fatalf("category counts %d do not add up to %d", sum, cats.Total)
	}

	_, stats, _ := catalogStatsHandler(context.Background(), nil, engine)
	if stats.Total != engine.Len() || stats.ByCategory["Image"] != engine.Stats().Count(types.Image) {
		t.Fatalf("unexpected stats: %+v", stats)
	}
}

func TestMCPListTools(t *testing.T) {
	ctx := context.Background()
	session := connectTestClient(t, ctx, NewServer(newTestEngine(t), "test", &ServerOptions{}))

	tools, err := session.ListTools(ctx, nil)
	if err != nil {
		t.Fatalf("list tools: %v", err)
	}
	for _, name := range []string{"models_list", "model_get", "category_list", "catalog_stats", "models_compare"} {
		if !containsTool(tools.Tools, name) {
			t.Fatalf("missing tool %q", name)
		}
	}
	if containsTool(tools.Tools, "cache_clear") {
		t.Fatal("cache_clear exposed without admin")
	}
}

func TestMCPCoreTools(t *testing.T) {
	ctx := context.Background()
	session := connectTestClient(t, ctx, NewServer(newTestEngine(t), "test", nil))

	cases := []mcp.CallToolParams{
		{Name: "models_list", Arguments: map[string]any{"category": "audio", "limit": 2}},
		{Name: "model_get", Arguments: map[string]any{"id": "veo-3"}},
		{Name: "category_list", Arguments: map[string]any{}},
		{Name: "catalog_stats", Arguments: map[string]any{}},
		{Name: "models_compare", Arguments: map[string]any{"ids": []string{"gpt-5", "veo-3"}}},
	}

	for _, tc := range cases {
		result, err := session.CallTool(ctx, &tc)
		if err != nil {
			t.Fatalf("call tool %s failed: %v", tc.Name, err)
		}
		if result.IsError {
			t.Fatalf("tool %s returned IsError=true", tc.Name)
		}
	}
}

func TestMCPModelsListStructuredOutput(t *testing.T) {
	ctx := context.Background()
	session := connectTestClient(t, ctx, NewServer(newTestEngine(t), "test", nil))

	result, err := session.CallTool(ctx, &mcp.CallToolParams{
		Name:      "models_list",
		Arguments: map[string]any{"query": "openai", "sort": "name"},
	})
	if err != nil {
		t.Fatalf("call models_list: %v", err)
	}

	var out modelsListOutput
	decodeStructured(t, result, &out)
	if out.Total == 0 {
		t.Fatal("no OpenAI models found")
	}
	for i := 1; i < len(out.Items); i++ {
		if strings.ToLower(out.Items[i-1].Name) > strings.ToLower(out.Items[i].Name) {
			t.Fatalf("items not sorted by name: %s before %s", out.Items[i-1].Name, out.Items[i].Name)
		}
	}
}

func TestMCPFailedToolIsLogged(t *testing.T) {
	ctx := context.Background()
	var buf bytes.Buffer
	log := zerolog.New(&buf)
	session := connectTestClient(t, ctx, NewServer(newTestEngine(t), "test", &ServerOptions{Logger: &log}))

	result, err := session.CallTool(ctx, &mcp.CallToolParams{Name: "model_get", Arguments: map[string]any{"id": "missing"}})
	if err != nil {
		t.Fatalf("call model_get: %v", err)
	}
	if !result.IsError {
		t.Fatal("expected IsError for unknown id")
	}
	if !strings.Contains(buf.String(), `"tool":"model_get"`) {
		t.Fatalf("failure not logged: %q", buf.String())
	}
}

func TestAdminCacheClear(t *testing.T) {
	ctx := context.Background()
	engine := newTestEngine(t)
	engine.Visible(types.DefaultFilterState())
	engine.Visible(types.FilterState{Category: types.Audio})

	session := connectTestClient(t, ctx, NewServer(engine, "test", &ServerOptions{EnableAdmin: true}))

	tools, err := session.ListTools(ctx, nil)
	if err != nil {
		t.Fatalf("list tools: %v", err)
	}
	if !containsTool(tools.Tools, "cache_clear") {
		t.Fatal("cache_clear missing with admin enabled")
	}

	result, err := session.CallTool(ctx, &mcp.CallToolParams{Name: "cache_clear", Arguments: map[string]any{}})
	if err != nil {
		t.Fatalf("call cache_clear: %v", err)
	}
	if result.IsError {
		t.Fatal("cache_clear returned IsError=true")
	}

	var out cacheClearOutput
	decodeStructured(t, result, &out)
	if out.Status != "ok" || out.Cleared != 2 {
		t.Fatalf("unexpected output: %+v", out)
	}
	if engine.CacheSize() != 0 {
		t.Fatalf("cache still holds %d entries", engine.CacheSize())
	}
}

func connectTestClient(t *testing.T, ctx context.Context, server *mcp.Server) *mcp.ClientSession {
	t.Helper()
	serverTransport, clientTransport := mcp.NewInMemoryTransports()
	serverSession, err := server.Connect(ctx, serverTransport, nil)
	if err != nil {
		t.Fatalf("connect server: %v", err)
	}
	client := mcp.NewClient(&mcp.Implementation{Name: "test-client", Version: "1.0.0"}, nil)
	session, err := client.Connect(ctx, clientTransport, nil)
	if err != nil {
		t.Fatalf("connect client: %v", err)
	}
	t.Cleanup(func() {
		session.Close()
		serverSession.Wait()
	})
	return session
}

func decodeStructured(t *testing.T, result *mcp.CallToolResult, out any) {
	t.Helper()
	b, err := json.Marshal(result.StructuredContent)
	if err != nil {
		t.Fatalf("marshal structured content: %v", err)
	}
	if err := json.Unmarshal(b, out); err != nil {
		t.Fatalf("decode structured content: %v", err)
	}
}

func containsTool(tools []*mcp.Tool, name string) bool {
	for _, tool := range tools {
		if tool != nil && tool.Name == name {
			return true
		}
	}
	return false
}
