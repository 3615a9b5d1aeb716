package recipe

import (
	"regexp"
	"strings"
)

const (
	// itemDelimiter 재료 항목 구분자
	itemDelimiter = "|"
	// subFieldDelimiter 항목 내 이름/수량/단위 구분자 (제어 문자 \a)
	subFieldDelimiter = "\a"
	// TruncationNotice 재료 목록이 잘렸을 때 붙는 고정 안내
	TruncationNotice = "... 그 외 재료는 링크에서 확인해보세요!"
)

// bracketNote "[재료]" 같은 대괄호 주석 구간
var bracketNote = regexp.MustCompile(`\[[^\]]*\]`)

// ParseEntries 패킹된 재료 문자열을 구조화된 항목으로 분해한다.
// 완전히 비었거나 형식이 깨진 입력은 빈 결과를 낳을 뿐 실패하지 않는다.
func ParseEntries(raw string) []IngredientEntry {
	cleaned := bracketNote.ReplaceAllString(raw, "")

	var entries []IngredientEntry
	for _, item := range strings.Split(cleaned, itemDelimiter) {
		parts := strings.SplitN(item, subFieldDelimiter, 3)

		entry := IngredientEntry{Name: strings.TrimSpace(parts[0])}
		if len(parts) > 1 {
			entry.Quantity = strings.TrimSpace(parts[1])
		}
		if len(parts) > 2 {
			entry.Unit = strings.TrimSpace(parts[2])
		}

		if entry.Name == "" && entry.Quantity == "" && entry.Unit == "" {
			continue
		}
		entries = append(entries, entry)
	}
	return entries
}

// render "이름 수량 단위" 형태로 출력. 빈 부분은 공백 없이 생략한다.
func (e IngredientEntry) render() string {
	parts := make([]string, 0, 3)
	for _, p := range []string{e.Name, e.Quantity, e.Unit} {
		if p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, " ")
}

// FormatIngredients 패킹된 재료 문자열을 표시용 여러 줄 텍스트로 만든다.
// 항목이 maxItems 를 넘으면 원래 순서의 앞 maxItems 개만 남기고
// 고정 안내 문구를 덧붙인다.
func FormatIngredients(raw string, maxItems int) string {
	entries := ParseEntries(raw)

	lines := make([]string, 0, len(entries))
	for _, e := range entries {
		if line := e.render(); line != "" {
			lines = append(lines, line)
		}
	}

	if len(lines) > maxItems {
		return strings.Join(lines[:maxItems], "\n") + "\n" + TruncationNotice
	}
	return strings.Join(lines, "\n")
}
