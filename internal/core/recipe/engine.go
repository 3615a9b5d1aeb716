package recipe

import (
	"context"
	"fmt"
	"math/rand"
	"strings"
	"sync"
	"time"

	"recipe-recommender/internal/core/corpus"
	"recipe-recommender/internal/pkg/common"

	"go.uber.org/zap"
)

// 사용자 안내 문구
const (
	noteNoVocabularyMatch  = "입력하신 재료를 이해하지 못했어요 😢 다시 한 번 말씀해 주세요."
	noteNoInventory        = "냉장고에 등록된 재료가 없습니다. 재료를 먼저 등록해 주세요."
	noteNoInventoryOverlap = "냉장고 재료로 만들 수 있는 메뉴를 찾지 못했어요."
	notePartialMatch       = "재료가 부족합니다! 최대한 가능한 메뉴 알려드릴게요."
)

// maxMissingHints 부분 일치 시 레코드당 알려줄 부족 재료 수
const maxMissingHints = 5

// EngineConfig 추천 엔진 설정
type EngineConfig struct {
	SampleSize         int        // 한 번에 추천할 최대 레시피 수
	MaxIngredientLines int        // 표시용 재료 목록 줄 수 제한
	Rand               *rand.Rand // nil 이면 시간 기반 시드
}

// SnapshotProvider 현재 코퍼스 스냅샷을 내주는 포트.
// 운영에서는 corpus.Catalog 가 들어온다.
type SnapshotProvider interface {
	Snapshot() *corpus.Snapshot
}

// Engine 추천 엔진. 요청을 조건으로 해석하고 계층 폴백을 거쳐
// 후보를 샘플링한 뒤 표시용 레코드로 완성한다.
type Engine struct {
	catalog  SnapshotProvider
	matcher  *Matcher
	enricher Enricher

	sampleSize int
	maxLines   int

	mu  sync.Mutex
	rng *rand.Rand
}

// NewEngine 추천 엔진 생성
func NewEngine(catalog SnapshotProvider, matcher *Matcher, enricher Enricher, cfg EngineConfig) *Engine {
	rng := cfg.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Engine{
		catalog:    catalog,
		matcher:    matcher,
		enricher:   enricher,
		sampleSize: cfg.SampleSize,
		maxLines:   cfg.MaxIngredientLines,
		rng:        rng,
	}
}

// Recommend 속성 필터 또는 자유 발화 요청을 처리한다.
// 속성 필터가 하나라도 있으면 발화 추출보다 우선한다.
func (e *Engine) Recommend(ctx context.Context, req *RecommendationRequest) *Recommendation {
	snap := e.catalog.Snapshot()

	var tokens []string
	if req.HasAttributeFilter() {
		tokens = splitIngredientText(req.IngredientText)
	} else {
		matched, err := e.matcher.MatchIngredients(ctx, req.Utterance, snap.Vocabulary)
		if err != nil {
			common.LogWarn("명사 추출 실패, 빈 결과로 처리",
				zap.Error(err),
			)
		}
		if len(matched) == 0 {
			return &Recommendation{
				Outcome: OutcomeEmpty,
				Reason:  ReasonNoVocabularyMatch,
				Note:    noteNoVocabularyMatch,
			}
		}
		tokens = matched
	}

	predicate := BuildAttributePredicate(req, tokens)
	candidates, tier := Evaluate(snap.Store, []Tier{{Label: TierStrict, Match: predicate}})
	if len(candidates) == 0 {
		return &Recommendation{
			Outcome: OutcomeEmpty,
			Reason:  ReasonNoCandidates,
			Note:    noCandidatesNote(req, tokens),
		}
	}

	sampled := e.sample(candidates)
	records := e.buildRecords(ctx, sampled, nil)

	common.LogInfo("추천 완료",
		zap.String("tier", tier),
		zap.Int("candidates", len(candidates)),
		zap.Int("sampled", len(records)),
	)

	return &Recommendation{
		Outcome: OutcomeResults,
		Tier:    tier,
		Records: records,
	}
}

// RecommendFromInventory 냉장고 재료 기반 추천.
// 전부 포함 계층이 비면 하나 이상 포함 계층으로 완화하고 그 사실을 알린다.
func (e *Engine) RecommendFromInventory(ctx context.Context, items []string) *Recommendation {
	if len(items) == 0 {
		return &Recommendation{
			Outcome: OutcomeEmpty,
			Reason:  ReasonNoInventory,
			Note:    noteNoInventory,
		}
	}

	snap := e.catalog.Snapshot()
	candidates, tier := Evaluate(snap.Store, InventoryTiers(items))
	if len(candidates) == 0 {
		return &Recommendation{
			Outcome: OutcomeEmpty,
			Reason:  ReasonNoInventoryOverlap,
			Note:    noteNoInventoryOverlap,
		}
	}

	sampled := e.sample(candidates)

	// 완화 계층에서는 레코드별 부족 재료 힌트를 함께 만든다
	var missingFrom []string
	var note string
	if tier == TierInventoryAny {
		missingFrom = items
		note = notePartialMatch
	}

	records := e.buildRecords(ctx, sampled, missingFrom)

	common.LogInfo("냉장고 추천 완료",
		zap.String("tier", tier),
		zap.Int("items", len(items)),
		zap.Int("candidates", len(candidates)),
		zap.Int("sampled", len(records)),
	)

	return &Recommendation{
		Outcome: OutcomeResults,
		Tier:    tier,
		Note:    note,
		Records: records,
	}
}

// sample 후보에서 복원 없이 균등 샘플링한다. 후보가 적으면 전부 반환.
func (e *Engine) sample(candidates []*corpus.RecipeRecord) []*corpus.RecipeRecord {
	n := e.sampleSize
	if len(candidates) < n {
		n = len(candidates)
	}

	e.mu.Lock()
	perm := e.rng.Perm(len(candidates))
	e.mu.Unlock()

	sampled := make([]*corpus.RecipeRecord, 0, n)
	for _, idx := range perm[:n] {
		sampled = append(sampled, candidates[idx])
	}
	return sampled
}

// buildRecords 샘플된 레코드를 표시용으로 완성한다.
// 레코드마다 독립적으로 조리법을 가져오므로 하나의 실패가
// 나머지를 막지 않는다.
func (e *Engine) buildRecords(ctx context.Context, sampled []*corpus.RecipeRecord, missingFrom []string) []DisplayRecord {
	records := make([]DisplayRecord, 0, len(sampled))
	for _, rec := range sampled {
		instructions, sourceURL := e.enricher.Fetch(ctx, rec.ID)

		display := DisplayRecord{
			ID:           rec.ID,
			Title:        rec.Title,
			Category:     rec.Situation,
			TimeLabel:    rec.TimeLabel,
			Ingredients:  FormatIngredients(rec.Ingredients, e.maxLines),
			Instructions: instructions,
			SourceURL:    sourceURL,
		}
		if missingFrom != nil {
			display.Missing = missingIngredients(rec.Ingredients, missingFrom)
		}
		records = append(records, display)
	}
	return records
}

// missingIngredients 레시피 재료 중 냉장고에 없는 것을 추려낸다.
func missingIngredients(raw string, items []string) []string {
	var missing []string
	for _, entry := range ParseEntries(raw) {
		if entry.Name == "" {
			continue
		}
		covered := false
		for _, item := range items {
			if strings.Contains(entry.Name, item) || strings.Contains(item, entry.Name) {
				covered = true
				break
			}
		}
		if !covered {
			missing = append(missing, entry.Name)
			if len(missing) >= maxMissingHints {
				break
			}
		}
	}
	return missing
}

// splitIngredientText 재료 텍스트를 공백/쉼표 기준 토큰으로 나눈다.
func splitIngredientText(text string) []string {
	return strings.FieldsFunc(text, func(r rune) bool {
		return r == ' ' || r == ',' || r == '\t' || r == '\n'
	})
}

// noCandidatesNote 빈 결과의 안내 문구를 요청 형태에 맞춰 만든다.
func noCandidatesNote(req *RecommendationRequest, tokens []string) string {
	if req.Category != "" {
		return fmt.Sprintf("'%s' 카테고리에 맞는 레시피를 찾지 못했어요.", req.Category)
	}
	if len(tokens) > 0 {
		return fmt.Sprintf("%s이(가) 모두 들어간 레시피를 찾지 못했어요.", strings.Join(tokens, ", "))
	}
	return "조건에 맞는 레시피를 찾지 못했어요."
}
