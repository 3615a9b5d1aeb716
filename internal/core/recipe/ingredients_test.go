package recipe

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEntries(t *testing.T) {
	entries := ParseEntries("감자\a2\a개|양파\a1\a개")
	require.Len(t, entries, 2)
	assert.Equal(t, IngredientEntry{Name: "감자", Quantity: "2", Unit: "개"}, entries[0])
	assert.Equal(t, IngredientEntry{Name: "양파", Quantity: "1", Unit: "개"}, entries[1])
}

func TestParseEntriesPartialFields(t *testing.T) {
	entries := ParseEntries("소금\a약간|후추")
	require.Len(t, entries, 2)
	assert.Equal(t, IngredientEntry{Name: "소금", Quantity: "약간"}, entries[0])
	assert.Equal(t, IngredientEntry{Name: "후추"}, entries[1])
}

func TestParseEntriesStripsBracketNotes(t *testing.T) {
	entries := ParseEntries("[주재료] 감자\a2\a개|[양념]간장\a1\a큰술")
	require.Len(t, entries, 2)
	assert.Equal(t, "감자", entries[0].Name)
	assert.Equal(t, "간장", entries[1].Name)
}

func TestParseEntriesEmptyAndBroken(t *testing.T) {
	assert.Empty(t, ParseEntries(""))
	assert.Empty(t, ParseEntries("||"))
	assert.Empty(t, ParseEntries("[재료]"))

	// 이름 없이 수량만 있는 항목도 버리지 않는다
	entries := ParseEntries("\a2\a개")
	require.Len(t, entries, 1)
	assert.Equal(t, IngredientEntry{Quantity: "2", Unit: "개"}, entries[0])
}

func TestFormatIngredients(t *testing.T) {
	got := FormatIngredients("감자\a2\a개|양파\a1\a개", 3)
	assert.Equal(t, "감자 2 개\n양파 1 개", got)
}

func TestFormatIngredientsOmitsEmptySubfields(t *testing.T) {
	// 빈 부분은 공백을 남기지 않고 생략한다
	got := FormatIngredients("소금\a약간|후추", 3)
	assert.Equal(t, "소금 약간\n후추", got)
}

func TestFormatIngredientsTruncates(t *testing.T) {
	raw := "감자\a2\a개|양파\a1\a개|당근\a1\a개|대파\a1\a대"
	got := FormatIngredients(raw, 3)

	lines := strings.Split(got, "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, "감자 2 개", lines[0])
	assert.Equal(t, "양파 1 개", lines[1])
	assert.Equal(t, "당근 1 개", lines[2])
	assert.Equal(t, TruncationNotice, lines[3])
}

func TestFormatIngredientsExactLimitNoNotice(t *testing.T) {
	raw := "감자\a2\a개|양파\a1\a개|당근\a1\a개"
	got := FormatIngredients(raw, 3)
	assert.NotContains(t, got, TruncationNotice)
	assert.Len(t, strings.Split(got, "\n"), 3)
}

func TestFormatIngredientsEmpty(t *testing.T) {
	assert.Equal(t, "", FormatIngredients("", 3))
}
