package browse

import (
	"fmt"
	"slices"
	"testing"

	"github.com/qyinm/modeldeck/types"
)

func rec(id, name, developer, date string, category types.Category, price, description string, tags ...string) types.ModelRecord {
	return types.NewModelRecord(types.RecordData{
		ID:          id,
		Name:        name,
		Developer:   developer,
		ReleaseDate: date,
		Category:    category,
		Price:       price,
		Description: description,
		Tags:        tags,
	})
}

func ids(records []types.ModelRecord) []string {
	out := make([]string, len(records))
	for i, r := range records {
		out[i] = r.ID()
	}
	return out
}

func sampleRecords() []types.ModelRecord {
	return []types.ModelRecord{
		rec("gpt", "GPT Omni", "OpenAI", "2025-08-07", types.Multimodal, "$20/month", "Reasons over text and images", "assistants"),
		rec("sora", "Sora", "OpenAI", "2025-09-30", types.Video, "$0.10 per second", "Generates video with audio", "film"),
		rec("veo", "Veo", "Google", "2025-05-20", types.Video, "$249.99/month", "Text to video model", "advertising"),
		rec("mj", "Midjourney", "Midjourney", "2025-04-03", types.Image, "$10/month", "Aesthetic images", "art"),
		rec("sd", "Stable Diffusion", "Stability AI", "2024-10-22", types.Image, "Free", "Open weights diffusion", "open source"),
		rec("flux", "FLUX", "Black Forest Labs", "2024-10-02", types.Image, "$0.04 per image", "Fast image model", "photorealism"),
		rec("eleven", "Eleven", "ElevenLabs", "2025-06-05", types.Audio, "Free tier", "Expressive speech", "voiceover", "VIDEO dubbing"),
		rec("suno", "Suno", "Suno", "2025-05-01", types.Audio, "$10/month", "Song generation", "music"),
		rec("hailuo", "Hailuo", "MiniMax", "not-a-date", types.Video, "Contact sales", "Complex motion", "action"),
		rec("llama", "Llama", "Meta", "2025-04-05", types.Multimodal, "Free (open weights)", "Open model", "self-hosted"),
	}
}

func TestApplyDoesNotMutateInput(t *testing.T) {
	records := sampleRecords()
	before := ids(records)

	for _, key := range types.SortKeys {
		got := Apply(records, types.FilterState{Sort: key})
		if len(got) > 0 {
			got[0] = types.ModelRecord{}
		}
	}

	if !slices.Equal(ids(records), before) {
		t.Fatalf("Apply reordered or modified its input: %v", ids(records))
	}
}

func TestApplyOutputIsSubset(t *testing.T) {
	records := sampleRecords()
	known := make(map[string]bool, len(records))
	for _, r := range records {
		known[r.ID()] = true
	}

	for _, cat := range types.FilterCategories {
		for _, term := range []string{"", "o", "video", "zzz"} {
			for _, key := range types.SortKeys {
				state := types.FilterState{SearchTerm: term, Category: cat, Sort: key}
				got := Apply(records, state)
				seen := make(map[string]bool, len(got))
				for _, r := range got {
					if !known[r.ID()] {
						t.Fatalf("%+v: fabricated record %q", state, r.ID())
					}
					if seen[r.ID()] {
						t.Fatalf("%+v: duplicated record %q", state, r.ID())
					}
					seen[r.ID()] = true
					if cat != types.All && r.Category() != cat {
						t.Fatalf("%+v: record %q has category %v", state, r.ID(), r.Category())
					}
				}
			}
		}
	}
}

func TestCategoryFilterKeepsOriginalOrder(t *testing.T) {
	// Ten records, three of them Image, all released the same day.
	var records []types.ModelRecord
	for i := 0; i < 10; i++ {
		cat := types.Video
		if i == 1 || i == 4 || i == 8 {
			cat = types.Image
		}
		records = append(records, rec(fmt.Sprintf("m%d", i), fmt.Sprintf("Model %d", i), "Dev", "2025-01-01", cat, "$1", "desc"))
	}

	got := Apply(records, types.FilterState{Category: types.Image, Sort: types.Newest})
	if want := []string{"m1", "m4", "m8"}; !slices.Equal(ids(got), want) {
		t.Fatalf("Image filter = %v, want %v", ids(got), want)
	}
}

func TestSearchIsCaseInsensitive(t *testing.T) {
	records := sampleRecords()
	lower := Apply(records, types.FilterState{SearchTerm: "sora"})
	upper := Apply(records, types.FilterState{SearchTerm: "SORA"})
	if !slices.Equal(ids(lower), ids(upper)) {
		t.Fatalf("search differs by case: %v vs %v", ids(lower), ids(upper))
	}
	if !slices.Equal(ids(lower), []string{"sora"}) {
		t.Fatalf("search sora = %v", ids(lower))
	}
}

func TestSearchMatchesEveryField(t *testing.T) {
	records := sampleRecords()
	got := Apply(records, types.FilterState{SearchTerm: "video"})

	// sora: description, veo: description, eleven: tag.
	want := []string{"sora", "eleven", "veo"}
	if !slices.Equal(ids(got), want) {
		t.Fatalf("search video = %v, want %v", ids(got), want)
	}

	for _, r := range records {
		matched := slices.Contains(ids(got), r.ID())
		if matched != MatchesSearch(r, "video") {
			t.Fatalf("record %q: Apply and MatchesSearch disagree", r.ID())
		}
	}

	if got := Apply(records, types.FilterState{SearchTerm: "openai"}); len(got) != 2 {
		t.Fatalf("developer search = %v", ids(got))
	}
}

func TestSortNewest(t *testing.T) {
	got := Apply(sampleRecords(), types.FilterState{Sort: types.Newest})

	var prev string
	for _, r := range got {
		d, ok := ParseReleaseDate(r.ReleaseDate())
		if !ok {
			continue
		}
		if prev != "" {
			p, _ := ParseReleaseDate(prev)
			if d.After(p) {
				t.Fatalf("dates increase: %s after %s in %v", r.ReleaseDate(), prev, ids(got))
			}
		}
		prev = r.ReleaseDate()
	}
	if got[0].ID() != "sora" {
		t.Fatalf("newest first = %q", got[0].ID())
	}
}

func TestSortNewestKeepsUnparsableSlot(t *testing.T) {
	records := []types.ModelRecord{
		rec("old", "Old", "d", "2023-01-01", types.Image, "", ""),
		rec("bad", "Bad", "d", "someday", types.Image, "", ""),
		rec("new", "New", "d", "2025-01-01", types.Image, "", ""),
		rec("tie-a", "Tie A", "d", "2024-06-01", types.Image, "", ""),
		rec("tie-b", "Tie B", "d", "2024-06-01", types.Image, "", ""),
	}
	got := Apply(records, types.FilterState{Sort: types.Newest})
	want := []string{"new", "bad", "tie-a", "tie-b", "old"}
	if !slices.Equal(ids(got), want) {
		t.Fatalf("newest = %v, want %v", ids(got), want)
	}
}

func TestSortPriceLow(t *testing.T) {
	records := []types.ModelRecord{
		rec("two", "Two", "d", "", types.Image, "$2.00", ""),
		rec("free", "Free", "d", "", types.Image, "Free", ""),
		rec("dime", "Dime", "d", "", types.Image, "$0.10", ""),
		rec("contact", "Contact", "d", "", types.Image, "ContactUs", ""),
	}
	got := Apply(records, types.FilterState{Sort: types.PriceLow})
	if want := []string{"free", "dime", "two", "contact"}; !slices.Equal(ids(got), want) {
		t.Fatalf("price-low = %v, want %v", ids(got), want)
	}
}

func TestSortPriceUnknownAfterLargeAmounts(t *testing.T) {
	records := []types.ModelRecord{
		rec("contact", "Contact", "d", "", types.Video, "Contact sales", ""),
		rec("pricey", "Pricey", "d", "", types.Video, "$1200/year", ""),
		rec("cheap", "Cheap", "d", "", types.Video, "$5", ""),
		rec("nines", "Nines", "d", "", types.Video, "$999", ""),
	}
	tests := []struct {
		sort types.SortKey
		want []string
	}{
		{types.PriceLow, []string{"cheap", "nines", "pricey", "contact"}},
		{types.PriceHigh, []string{"pricey", "nines", "cheap", "contact"}},
	}
	for _, tt := range tests {
		t.Run(tt.sort.String(), func(t *testing.T) {
			got := Apply(records, types.FilterState{Sort: tt.sort})
			if !slices.Equal(ids(got), tt.want) {
				t.Fatalf("%s = %v, want %v", tt.sort, ids(got), tt.want)
			}
		})
	}
}

func TestSortPriceLowFreeBeforeCheap(t *testing.T) {
	records := []types.ModelRecord{
		rec("cheap", "Cheap", "d", "", types.Audio, "$0.05", ""),
		rec("free", "Free", "d", "", types.Audio, "free for personal use", ""),
	}
	got := Apply(records, types.FilterState{Sort: types.PriceLow})
	if got[0].ID() != "free" {
		t.Fatalf("Free must sort before $0.05, got %v", ids(got))
	}
}

func TestSortPriceHighKeepsUnknownLast(t *testing.T) {
	records := []types.ModelRecord{
		rec("contact", "Contact", "d", "", types.Image, "Contact sales", ""),
		rec("dime", "Dime", "d", "", types.Image, "$0.10", ""),
		rec("two", "Two", "d", "", types.Image, "$2.00", ""),
		rec("free", "Free", "d", "", types.Image, "Free", ""),
	}
	got := Apply(records, types.FilterState{Sort: types.PriceHigh})
	if want := []string{"two", "dime", "free", "contact"}; !slices.Equal(ids(got), want) {
		t.Fatalf("price-high = %v, want %v", ids(got), want)
	}
}

func TestSortName(t *testing.T) {
	records := []types.ModelRecord{
		rec("b", "beta", "d", "", types.Image, "", ""),
		rec("c", "Charlie", "d", "", types.Image, "", ""),
		rec("a", "Alpha", "d", "", types.Image, "", ""),
	}
	got := Apply(records, types.FilterState{Sort: types.Name})
	if want := []string{"a", "b", "c"}; !slices.Equal(ids(got), want) {
		t.Fatalf("name = %v, want %v", ids(got), want)
	}
}

func TestPriceValue(t *testing.T) {
	tests := []struct {
		price string
		want  float64
	}{
		{"Free", 0},
		{"FREE tier, $5/month", 0},
		{"$0.05", 0.05},
		{"$20/month (Plus)", 20},
		{"12 credits", 12},
		{"From $1.25 / 1M tokens", 1.25},
		{"ContactUs", UnknownPrice},
		{"", UnknownPrice},
	}
	for _, tt := range tests {
		t.Run(tt.price, func(t *testing.T) {
			if got := PriceValue(tt.price); got != tt.want {
				t.Fatalf("PriceValue(%q) = %v, want %v", tt.price, got, tt.want)
			}
		})
	}
	if PriceKnown("Contact sales") || !PriceKnown("$3") || !PriceKnown("free") {
		t.Fatalf("PriceKnown disagrees with PriceValue")
	}
}

func TestParseReleaseDate(t *testing.T) {
	for _, raw := range []string{"2025-09-30", "2025-09-30T10:00:00Z", "2025-09", "2025"} {
		if _, ok := ParseReleaseDate(raw); !ok {
			t.Errorf("ParseReleaseDate(%q) failed", raw)
		}
	}
	for _, raw := range []string{"", "soon", "30/09/2025"} {
		if _, ok := ParseReleaseDate(raw); ok {
			t.Errorf("ParseReleaseDate(%q) should fail", raw)
		}
	}
}
