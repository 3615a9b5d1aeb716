package recipe

import (
	"strings"

	"recipe-recommender/internal/core/corpus"
)

// Predicate 레코드 하나에 대한 불리언 조건
type Predicate func(*corpus.RecipeRecord) bool

// Tier 폴백 순서가 있는 (라벨, 조건) 쌍. 순서대로 평가해
// 처음으로 후보를 낸 계층만 사용한다.
type Tier struct {
	Label string
	Match Predicate
}

// 계층 라벨
const (
	TierStrict       = "strict"        // 속성/재료 AND 계층
	TierInventoryAll = "inventory_all" // 냉장고 재료 전부 포함
	TierInventoryAny = "inventory_any" // 냉장고 재료 하나 이상 포함 (부분 일치)
)

// veganCategory 이 리터럴 카테고리에는 육류/계란 제외 규칙이 추가된다.
const veganCategory = "비건"

// veganExclusions 비건 카테고리에서 제외할 재료
var veganExclusions = []string{"닭", "소고기", "돼지고기", "계란"}

// difficultySynonyms 사용자 난이도 표현 → 코퍼스 표준 라벨.
// 코퍼스에서 확인된 라벨(아무나/초급/중급/고급/신의경지)만 대상으로 확장한다.
var difficultySynonyms = map[string]string{
	"초보":  "초급",
	"초보용": "초급",
	"쉬움":  "초급",
	"쉬운":  "초급",
	"보통":  "중급",
	"중간":  "중급",
	"어려움": "고급",
	"어려운": "고급",
}

func containsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}

// And 조건들의 논리곱. 조건이 없으면 항상 참.
func And(preds ...Predicate) Predicate {
	return func(rec *corpus.RecipeRecord) bool {
		for _, p := range preds {
			if !p(rec) {
				return false
			}
		}
		return true
	}
}

// ContainsAllTokens 재료 필드가 주어진 토큰을 전부 부분 문자열로
// 포함해야 하는 엄격 AND 조건.
func ContainsAllTokens(tokens []string) Predicate {
	return func(rec *corpus.RecipeRecord) bool {
		for _, tok := range tokens {
			if !containsFold(rec.Ingredients, tok) {
				return false
			}
		}
		return true
	}
}

// ContainsAnyToken 재료 필드가 토큰 중 하나라도 포함하면 참.
func ContainsAnyToken(tokens []string) Predicate {
	return func(rec *corpus.RecipeRecord) bool {
		for _, tok := range tokens {
			if containsFold(rec.Ingredients, tok) {
				return true
			}
		}
		return false
	}
}

// CategoryPredicate 네 개 카테고리 필드 중 하나라도 부분 일치하면 만족.
// 카테고리가 "비건" 이면 육류/계란이 든 레코드를 추가로 제외한다.
func CategoryPredicate(category string) Predicate {
	return func(rec *corpus.RecipeRecord) bool {
		matched := containsFold(rec.Situation, category) ||
			containsFold(rec.Kind, category) ||
			containsFold(rec.Method, category) ||
			containsFold(rec.Material, category)
		if !matched {
			return false
		}
		if category == veganCategory {
			for _, banned := range veganExclusions {
				if containsFold(rec.Ingredients, banned) {
					return false
				}
			}
		}
		return true
	}
}

// CanonicalDifficulty 난이도 동의어를 코퍼스 표준 라벨로 바꾼다.
// 표에 없는 표현은 그대로 통과시켜 난이도 필드와 직접 대조한다.
func CanonicalDifficulty(term string) string {
	if canonical, ok := difficultySynonyms[term]; ok {
		return canonical
	}
	return term
}

// DifficultyPredicate 동의어 변환 후 난이도 필드 부분 일치.
func DifficultyPredicate(term string) Predicate {
	canonical := CanonicalDifficulty(term)
	return func(rec *corpus.RecipeRecord) bool {
		return containsFold(rec.Difficulty, canonical)
	}
}

// TimeCeilingPredicate 요청 시간 표현을 코퍼스와 동일한 규칙으로 파싱해
// 소요 시간이 상한 이하인 레코드만 남긴다. 파싱 불가 표현은 상한 없음으로 본다.
func TimeCeilingPredicate(expr string) Predicate {
	ceiling := corpus.ParseTimeMinutes(expr)
	return func(rec *corpus.RecipeRecord) bool {
		return rec.TimeMinutes <= ceiling
	}
}

// BuildAttributePredicate 속성 요청을 하나의 조건으로 조립한다.
// 비어 있는 항목은 항상 참으로 취급된다.
func BuildAttributePredicate(req *RecommendationRequest, tokens []string) Predicate {
	var preds []Predicate
	if len(tokens) > 0 {
		preds = append(preds, ContainsAllTokens(tokens))
	}
	if req.Category != "" {
		preds = append(preds, CategoryPredicate(req.Category))
	}
	if req.Difficulty != "" {
		preds = append(preds, DifficultyPredicate(req.Difficulty))
	}
	if req.TimeLimit != "" {
		preds = append(preds, TimeCeilingPredicate(req.TimeLimit))
	}
	return And(preds...)
}

// InventoryTiers 냉장고 모드의 폴백 계층.
// 1계층(전부 포함)이 비었을 때만 2계층(하나 이상 포함)으로 내려간다.
func InventoryTiers(items []string) []Tier {
	return []Tier{
		{Label: TierInventoryAll, Match: ContainsAllTokens(items)},
		{Label: TierInventoryAny, Match: ContainsAnyToken(items)},
	}
}

// Evaluate 계층을 순서대로 평가해 처음으로 후보를 낸 계층의
// 레코드와 라벨을 반환한다. 모든 계층이 비면 nil 과 빈 라벨.
func Evaluate(store *corpus.Store, tiers []Tier) ([]*corpus.RecipeRecord, string) {
	records := store.All()
	for _, tier := range tiers {
		var candidates []*corpus.RecipeRecord
		for i := range records {
			if tier.Match(&records[i]) {
				candidates = append(candidates, &records[i])
			}
		}
		if len(candidates) > 0 {
			return candidates, tier.Label
		}
	}
	return nil, ""
}
