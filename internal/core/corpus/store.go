package corpus

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"math"
	"os"
	"regexp"
	"strconv"

	"recipe-recommender/internal/pkg/common"

	"github.com/gocarina/gocsv"
	"go.uber.org/zap"
)

// NoTimeLimit 시간 라벨을 파싱할 수 없는 레코드의 TimeMinutes 값
const NoTimeLimit = math.MaxInt32

// RecipeRecord 코퍼스 한 행. 로드 이후 불변이다.
type RecipeRecord struct {
	ID           int    `csv:"RCP_SNO" json:"id"`
	Title        string `csv:"RCP_TTL" json:"title"`
	Name         string `csv:"CKG_NM" json:"name"`
	Ingredients  string `csv:"CKG_MTRL_CN" json:"ingredients"`  // 패킹된 재료 필드
	Situation    string `csv:"CKG_STA_ACTO_NM" json:"situation"` // 요리 상황
	Kind         string `csv:"CKG_KND_ACTO_NM" json:"kind"`      // 요리 종류
	Method       string `csv:"CKG_MTH_ACTO_NM" json:"method"`    // 조리 방법
	Material     string `csv:"CKG_MTRL_ACTO_NM" json:"material"` // 재료 분류
	Difficulty   string `csv:"CKG_DODF_NM" json:"difficulty"`
	TimeLabel    string `csv:"CKG_TIME_NM" json:"time_label"`
	RegisteredAt string `csv:"FIRST_REG_DT" json:"registered_at"`

	// TimeLabel 에서 1회 파싱. 파싱 불가 시 NoTimeLimit.
	TimeMinutes int `csv:"-" json:"-"`
}

// 로드 시 반드시 존재해야 하는 컬럼
var requiredColumns = []string{
	"RCP_SNO",
	"RCP_TTL",
	"CKG_MTRL_CN",
	"CKG_STA_ACTO_NM",
	"CKG_KND_ACTO_NM",
	"CKG_MTH_ACTO_NM",
	"CKG_MTRL_ACTO_NM",
	"CKG_DODF_NM",
	"CKG_TIME_NM",
}

// Store 인메모리 레시피 코퍼스. 로드 이후 읽기 전용이며
// 레코드 순서는 원본 CSV 의 행 순서를 따른다.
type Store struct {
	records []RecipeRecord
	byID    map[int]*RecipeRecord
}

// Load CSV 코퍼스를 읽어 Store 를 생성한다.
// 파일을 읽을 수 없거나 필수 컬럼이 빠진 경우 DataSourceError 를 반환한다.
func Load(path string) (*Store, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, common.NewDataSourceError("코퍼스 파일을 읽을 수 없습니다", err)
	}

	if err := checkHeader(data); err != nil {
		return nil, err
	}

	var records []RecipeRecord
	if err := gocsv.UnmarshalBytes(data, &records); err != nil {
		return nil, common.NewDataSourceError("코퍼스 파싱에 실패했습니다", err)
	}

	store, err := NewStore(records)
	if err != nil {
		return nil, err
	}

	common.LogInfo("코퍼스 로드 완료",
		zap.String("path", path),
		zap.Int("records", store.Len()),
	)

	return store, nil
}

// NewStore 레코드 목록으로 Store 를 구성한다. ID 유일성을 검증하고
// 시간 라벨을 분 단위로 파싱해 둔다.
func NewStore(records []RecipeRecord) (*Store, error) {
	byID := make(map[int]*RecipeRecord, len(records))
	for i := range records {
		rec := &records[i]
		if _, dup := byID[rec.ID]; dup {
			return nil, common.NewDataSourceError(
				fmt.Sprintf("레시피 ID 가 중복되었습니다: %d", rec.ID), nil)
		}
		rec.TimeMinutes = ParseTimeMinutes(rec.TimeLabel)
		byID[rec.ID] = rec
	}
	return &Store{records: records, byID: byID}, nil
}

// checkHeader 첫 행에서 필수 컬럼 존재 여부를 검증한다.
func checkHeader(data []byte) error {
	r := csv.NewReader(bytes.NewReader(data))
	header, err := r.Read()
	if err != nil {
		return common.NewDataSourceError("코퍼스 헤더를 읽을 수 없습니다", err)
	}

	seen := make(map[string]bool, len(header))
	for _, col := range header {
		seen[col] = true
	}
	for _, col := range requiredColumns {
		if !seen[col] {
			return common.NewDataSourceError(
				fmt.Sprintf("필수 컬럼이 없습니다: %s", col), nil)
		}
	}
	return nil
}

// All 원본 행 순서 그대로 전체 레코드를 반환한다.
func (s *Store) All() []RecipeRecord {
	return s.records
}

// Get ID 로 레코드를 조회한다.
func (s *Store) Get(id int) (*RecipeRecord, bool) {
	rec, ok := s.byID[id]
	return rec, ok
}

// Len 레코드 수를 반환한다.
func (s *Store) Len() int {
	return len(s.records)
}

var (
	hourPattern   = regexp.MustCompile(`(\d+)\s*시간`)
	minutePattern = regexp.MustCompile(`(\d+)\s*분`)
)

// ParseTimeMinutes "1시간 30분 이내" 류의 시간 라벨을 분 단위로 변환한다.
// 시간/분 표현이 전혀 없으면 NoTimeLimit 을 반환한다.
// 요청 측 시간 상한도 같은 함수로 파싱해 코퍼스와 의미를 맞춘다.
func ParseTimeMinutes(label string) int {
	total := 0
	found := false

	if m := hourPattern.FindStringSubmatch(label); m != nil {
		if h, err := strconv.Atoi(m[1]); err == nil {
			total += h * 60
			found = true
		}
	}
	if m := minutePattern.FindStringSubmatch(label); m != nil {
		if min, err := strconv.Atoi(m[1]); err == nil {
			total += min
			found = true
		}
	}

	if !found {
		return NoTimeLimit
	}
	return total
}
