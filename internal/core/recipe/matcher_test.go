package recipe

import (
	"context"
	"errors"
	"testing"

	"recipe-recommender/internal/core/corpus"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeExtractor 고정된 명사 목록을 돌려주는 형태소 분석기 대역
type fakeExtractor struct {
	nouns []string
	err   error
}

func (f *fakeExtractor) Nouns(ctx context.Context, text string) ([]string, error) {
	return f.nouns, f.err
}

func testVocabulary(t *testing.T, ingredients ...string) *corpus.Vocabulary {
	t.Helper()
	records := make([]corpus.RecipeRecord, len(ingredients))
	for i, ing := range ingredients {
		records[i] = corpus.RecipeRecord{ID: i + 1, Ingredients: ing}
	}
	store, err := corpus.NewStore(records)
	require.NoError(t, err)
	return corpus.BuildVocabulary(store)
}

func TestMatchIngredients(t *testing.T) {
	vocab := testVocabulary(t, "감자\a2\a개|양파\a1\a개", "계란\a3\a개")
	m := NewMatcher(&fakeExtractor{nouns: []string{"감자", "계란", "요리"}})

	matched, err := m.MatchIngredients(context.Background(), "감자랑 계란으로 요리 추천해줘", vocab)
	require.NoError(t, err)
	assert.Equal(t, []string{"감자", "계란"}, matched)
}

func TestMatchIngredientsExcludesMeasurementUnits(t *testing.T) {
	// "컵" 이 코퍼스 토큰에 있어도 계량 단위라서 제외된다
	vocab := testVocabulary(t, "감자\a1\a컵|밀가루\a2\a컵")
	m := NewMatcher(&fakeExtractor{nouns: []string{"감자", "컵", "개", "큰술"}})

	matched, err := m.MatchIngredients(context.Background(), "감자 한 컵", vocab)
	require.NoError(t, err)
	assert.Equal(t, []string{"감자"}, matched)
}

func TestMatchIngredientsSubstringDirection(t *testing.T) {
	// 발화 명사 "감자" 가 코퍼스 토큰 "감자채" 의 부분 문자열이면 매칭된다
	vocab := testVocabulary(t, "감자채\a100\ag")
	m := NewMatcher(&fakeExtractor{nouns: []string{"감자"}})

	matched, err := m.MatchIngredients(context.Background(), "감자 요리", vocab)
	require.NoError(t, err)
	assert.Equal(t, []string{"감자"}, matched)
}

func TestMatchIngredientsDeduplicatesKeepingOrder(t *testing.T) {
	vocab := testVocabulary(t, "감자\a1\a개|양파\a1\a개")
	m := NewMatcher(&fakeExtractor{nouns: []string{"양파", "감자", "양파", "감자"}})

	matched, err := m.MatchIngredients(context.Background(), "양파 감자 양파 감자", vocab)
	require.NoError(t, err)
	assert.Equal(t, []string{"양파", "감자"}, matched)
}

func TestMatchIngredientsEmptyUtterance(t *testing.T) {
	vocab := testVocabulary(t, "감자\a1\a개")
	m := NewMatcher(&fakeExtractor{nouns: []string{"감자"}})

	matched, err := m.MatchIngredients(context.Background(), "", vocab)
	require.NoError(t, err)
	assert.Empty(t, matched)
}

func TestMatchIngredientsExtractorError(t *testing.T) {
	vocab := testVocabulary(t, "감자\a1\a개")
	m := NewMatcher(&fakeExtractor{err: errors.New("tokenizer down")})

	_, err := m.MatchIngredients(context.Background(), "감자 요리", vocab)
	require.Error(t, err)
}

func TestMatchIngredientsNoVocabularyHit(t *testing.T) {
	vocab := testVocabulary(t, "감자\a1\a개")
	m := NewMatcher(&fakeExtractor{nouns: []string{"드래곤후르츠"}})

	matched, err := m.MatchIngredients(context.Background(), "드래곤후르츠 요리", vocab)
	require.NoError(t, err)
	assert.Empty(t, matched)
}
