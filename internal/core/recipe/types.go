package recipe

import "context"

// Outcome 추천 결과 구분
type Outcome string

const (
	OutcomeResults Outcome = "RESULTS"
	OutcomeEmpty   Outcome = "EMPTY"
)

// Reason 빈 결과의 사유 코드. 호출자가 정확한 안내 문구를 고를 수 있도록
// 일반 "없음" 으로 뭉개지 않고 구분해 전달한다.
type Reason string

const (
	ReasonNoVocabularyMatch  Reason = "NO_VOCABULARY_MATCH"  // 발화에서 아는 재료를 찾지 못함
	ReasonNoCandidates       Reason = "NO_CANDIDATES"        // 조건에 맞는 레시피 없음
	ReasonNoInventoryOverlap Reason = "NO_INVENTORY_OVERLAP" // 냉장고 재료로 만들 수 있는 메뉴 없음
	ReasonNoInventory        Reason = "NO_INVENTORY"         // 냉장고에 등록된 재료 없음
)

// RecommendationRequest 추천 요청.
// 속성 필터(카테고리/난이도/시간/재료 텍스트)가 하나라도 있으면 속성 모드,
// 없으면 Utterance 를 자유 발화로 해석한다.
type RecommendationRequest struct {
	Category       string `json:"category,omitempty"`
	Difficulty     string `json:"difficulty,omitempty"`
	TimeLimit      string `json:"time_limit,omitempty"` // 예: "1시간 30분"
	IngredientText string `json:"ingredient_text,omitempty"`
	Utterance      string `json:"utterance,omitempty"`
}

// HasAttributeFilter 속성 필터 필드가 하나라도 있는지 확인한다.
func (r *RecommendationRequest) HasAttributeFilter() bool {
	return r.Category != "" || r.Difficulty != "" || r.TimeLimit != "" || r.IngredientText != ""
}

// IngredientEntry 패킹된 재료 필드의 한 항목
type IngredientEntry struct {
	Name     string `json:"name"`
	Quantity string `json:"quantity,omitempty"`
	Unit     string `json:"unit,omitempty"`
}

// DisplayRecord 추천 결과 한 건의 표시용 레코드
type DisplayRecord struct {
	ID           int      `json:"id"`
	Title        string   `json:"title"`
	Category     string   `json:"category"`
	TimeLabel    string   `json:"time_label"`
	Ingredients  string   `json:"ingredients"`  // 줄바꿈으로 연결된 재료 목록
	Instructions string   `json:"instructions"` // 크롤링 실패 시 고정 안내 문구
	SourceURL    string   `json:"source_url"`
	Missing      []string `json:"missing,omitempty"` // 부분 일치 시 부족한 재료
}

// Recommendation 추천 호출의 최종 결과
type Recommendation struct {
	Outcome Outcome         `json:"outcome"`
	Reason  Reason          `json:"reason,omitempty"`
	Note    string          `json:"note,omitempty"`
	Tier    string          `json:"tier,omitempty"`
	Records []DisplayRecord `json:"records,omitempty"`
}

// NounExtractor 형태소 분석기 포트. 자유 발화에서 명사 후보를 추출한다.
type NounExtractor interface {
	Nouns(ctx context.Context, text string) ([]string, error)
}

// Enricher 상세 조리법 조회 포트. 실패해도 에러 대신
// 고정 안내 문구와 URL 을 반환한다 (URL 생성은 실패하지 않는다).
type Enricher interface {
	Fetch(ctx context.Context, recipeID int) (instructions string, sourceURL string)
}
