package recipe

import (
	"context"

	"recipe-recommender/internal/core/corpus"
	"recipe-recommender/internal/pkg/common"

	"go.uber.org/zap"
)

// measurementUnits 재료가 아닌 계량 단위 명사 제외 목록
var measurementUnits = map[string]struct{}{
	"컵":    {},
	"큰술":   {},
	"작은술":  {},
	"티스푼":  {},
	"스푼":   {},
	"g":    {},
	"ml":   {},
	"개":    {},
}

// Matcher 자유 발화에서 코퍼스가 아는 재료를 골라내는 매처
type Matcher struct {
	extractor NounExtractor
}

// NewMatcher 매처 생성
func NewMatcher(extractor NounExtractor) *Matcher {
	return &Matcher{extractor: extractor}
}

// MatchIngredients 발화에서 명사를 추출하고 계량 단위를 제외한 뒤
// 어휘 토큰의 부분 문자열로 등장하는 명사만 남긴다.
// 최초 등장 순서를 유지하며 중복은 제거한다. 빈 발화는 빈 결과를 낳는다.
func (m *Matcher) MatchIngredients(ctx context.Context, utterance string, vocab *corpus.Vocabulary) ([]string, error) {
	if utterance == "" {
		return nil, nil
	}

	nouns, err := m.extractor.Nouns(ctx, utterance)
	if err != nil {
		return nil, err
	}

	var matched []string
	seen := make(map[string]struct{}, len(nouns))
	for _, noun := range nouns {
		if noun == "" {
			continue
		}
		if _, unit := measurementUnits[noun]; unit {
			continue
		}
		if _, dup := seen[noun]; dup {
			continue
		}
		if vocab.ContainsSubstring(noun) {
			seen[noun] = struct{}{}
			matched = append(matched, noun)
		}
	}

	common.LogDebug("재료 매칭 결과",
		zap.Int("nouns", len(nouns)),
		zap.Strings("matched", matched),
	)

	return matched, nil
}
