package corpus

import (
	"regexp"
	"strings"
)

var hangulRun = regexp.MustCompile(`[가-힣]+`)

// Vocabulary 코퍼스의 패킹된 재료 필드에서 추출한 한글 토큰 집합.
// 코퍼스 로드 시 1회 구축되며 이후 읽기 전용이다.
type Vocabulary struct {
	tokens map[string]struct{}
}

// BuildVocabulary 전체 레코드의 재료 필드를 한글 연속 문자열 단위로
// 스캔해 어휘 집합을 만든다. 비어 있는 필드는 아무것도 더하지 않는다.
func BuildVocabulary(store *Store) *Vocabulary {
	tokens := make(map[string]struct{})
	for i := range store.records {
		raw := store.records[i].Ingredients
		if raw == "" {
			continue
		}
		for _, run := range hangulRun.FindAllString(raw, -1) {
			tokens[run] = struct{}{}
		}
	}
	return &Vocabulary{tokens: tokens}
}

// Contains 토큰이 어휘에 정확히 존재하는지 확인한다.
func (v *Vocabulary) Contains(token string) bool {
	_, ok := v.tokens[token]
	return ok
}

// ContainsSubstring noun 이 어휘 토큰 중 하나의 부분 문자열인지 확인한다.
// 코퍼스 토큰이 발화 명사보다 긴 복합 재료명("감자" ⊂ "감자채")을 잡는다.
func (v *Vocabulary) ContainsSubstring(noun string) bool {
	if noun == "" {
		return false
	}
	for token := range v.tokens {
		if strings.Contains(token, noun) {
			return true
		}
	}
	return false
}

// Size 어휘 토큰 수를 반환한다.
func (v *Vocabulary) Size() int {
	return len(v.tokens)
}

// Tokens 어휘 토큰 목록을 반환한다. 순서는 보장하지 않는다.
func (v *Vocabulary) Tokens() []string {
	out := make([]string, 0, len(v.tokens))
	for token := range v.tokens {
		out = append(out, token)
	}
	return out
}
