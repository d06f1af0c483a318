package service

import (
	"testing"

	"twi_edu_backend/internal/model"
)

func wordsOf(names ...string) []model.Word {
	words := make([]model.Word, 0, len(names))
	for _, n := range names {
		words = append(words, model.Word{Word: n})
	}
	return words
}

func TestRankSearchResults(t *testing.T) {
	// LIKE 匹配把 "papa" 排在 "akwaaba papa" 之后时，完全一致的词条要浮到最前
	ranked := rankSearchResults(wordsOf("akwaaba papa", "Papa", "papaye"), "papa")

	if len(ranked) != 3 {
		t.Fatalf("got %d words, want 3", len(ranked))
	}
	if ranked[0].Word != "Papa" {
		t.Errorf("exact match should rank first, got %q", ranked[0].Word)
	}
	// 其余词条保持原有顺序
	if ranked[1].Word != "akwaaba papa" || ranked[2].Word != "papaye" {
		t.Errorf("relative order of partial matches changed: %v", ranked)
	}
}

func TestRankSearchResultsNoExactMatch(t *testing.T) {
	ranked := rankSearchResults(wordsOf("papaye", "akwaaba papa"), "papa")
	if ranked[0].Word != "papaye" || ranked[1].Word != "akwaaba papa" {
		t.Errorf("order must be unchanged without an exact match: %v", ranked)
	}
}
