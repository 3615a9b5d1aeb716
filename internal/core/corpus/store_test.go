package corpus

import (
	"os"
	"path/filepath"
	"testing"

	"recipe-recommender/internal/pkg/common"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testHeader = "RCP_SNO,RCP_TTL,CKG_NM,CKG_MTRL_CN,CKG_STA_ACTO_NM,CKG_KND_ACTO_NM,CKG_MTH_ACTO_NM,CKG_MTRL_ACTO_NM,CKG_DODF_NM,CKG_TIME_NM,FIRST_REG_DT"

func writeCSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "corpus.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoad(t *testing.T) {
	csv := testHeader + "\n" +
		"1,감자볶음 만들기,감자볶음,감자\a2\a개|양파\a1\a개,일상,밑반찬,볶음,채소류,초급,30분 이내,2024-01-01\n" +
		"2,계란찜,계란찜,계란\a3\a개,일상,찜,찜,달걀/유제품,아무나,1시간 30분 이내,2024-01-02\n"

	store, err := Load(writeCSV(t, csv))
	require.NoError(t, err)
	require.Equal(t, 2, store.Len())

	records := store.All()
	assert.Equal(t, 1, records[0].ID)
	assert.Equal(t, "감자볶음 만들기", records[0].Title)
	assert.Equal(t, "감자\a2\a개|양파\a1\a개", records[0].Ingredients)
	assert.Equal(t, "일상", records[0].Situation)
	assert.Equal(t, "초급", records[0].Difficulty)
	assert.Equal(t, 30, records[0].TimeMinutes)
	assert.Equal(t, 90, records[1].TimeMinutes)

	rec, ok := store.Get(2)
	require.True(t, ok)
	assert.Equal(t, "계란찜", rec.Title)

	_, ok = store.Get(99)
	assert.False(t, ok)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.csv"))
	require.Error(t, err)
	assert.True(t, common.IsDataSourceError(err))
}

func TestLoadMissingColumn(t *testing.T) {
	// CKG_MTRL_CN 컬럼이 빠진 헤더
	csv := "RCP_SNO,RCP_TTL,CKG_STA_ACTO_NM,CKG_KND_ACTO_NM,CKG_MTH_ACTO_NM,CKG_MTRL_ACTO_NM,CKG_DODF_NM,CKG_TIME_NM\n" +
		"1,감자볶음,일상,밑반찬,볶음,채소류,초급,30분 이내\n"

	_, err := Load(writeCSV(t, csv))
	require.Error(t, err)
	assert.True(t, common.IsDataSourceError(err))
	assert.Contains(t, err.Error(), "CKG_MTRL_CN")
}

func TestLoadDuplicateID(t *testing.T) {
	csv := testHeader + "\n" +
		"1,감자볶음,감자볶음,감자\a2\a개,일상,밑반찬,볶음,채소류,초급,30분 이내,2024-01-01\n" +
		"1,양파볶음,양파볶음,양파\a1\a개,일상,밑반찬,볶음,채소류,초급,30분 이내,2024-01-01\n"

	_, err := Load(writeCSV(t, csv))
	require.Error(t, err)
	assert.True(t, common.IsDataSourceError(err))
}

func TestParseTimeMinutes(t *testing.T) {
	tests := []struct {
		label string
		want  int
	}{
		{"30분 이내", 30},
		{"1시간 이내", 60},
		{"1시간 30분 이내", 90},
		{"2시간", 120},
		{"90분 이내", 90},
		{"아무때나", NoTimeLimit},
		{"", NoTimeLimit},
	}

	for _, tt := range tests {
		t.Run(tt.label, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseTimeMinutes(tt.label))
		})
	}
}

func TestParseTimeMinutesMatchesCorpusOrder(t *testing.T) {
	// 라벨 의미상 더 긴 시간이 더 큰 값으로 파싱되어야 한다
	labels := []string{"10분 이내", "30분 이내", "1시간 이내", "1시간 30분 이내", "2시간 이내"}
	prev := 0
	for _, label := range labels {
		cur := ParseTimeMinutes(label)
		assert.Greater(t, cur, prev, label)
		prev = cur
	}
}
