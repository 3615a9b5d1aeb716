package inventory

// commonIngredients 자주 쓰이는 기본 재료. 장보기 제안의 기준이 된다.
var commonIngredients = []string{"양파", "감자", "당근", "두부", "토마토", "대파", "버섯", "계란"}

// maxSuggestions 한 번에 제안할 최대 구매 재료 수
const maxSuggestions = 5

// ShoppingSuggestion 장보기 제안 결과
type ShoppingSuggestion struct {
	Items   []string `json:"items"`             // 현재 냉장고 재료
	Missing []string `json:"missing,omitempty"` // 구매를 제안하는 재료
	Note    string   `json:"note"`
}

// SuggestShopping 냉장고에 없는 기본 재료를 추려 구매를 제안한다.
func SuggestShopping(items []string) *ShoppingSuggestion {
	if len(items) == 0 {
		return &ShoppingSuggestion{
			Note: "냉장고에 등록된 재료가 없습니다. 먼저 재료를 등록해 주세요.",
		}
	}

	have := make(map[string]struct{}, len(items))
	for _, item := range items {
		have[item] = struct{}{}
	}

	var missing []string
	for _, ing := range commonIngredients {
		if _, ok := have[ing]; !ok {
			missing = append(missing, ing)
			if len(missing) >= maxSuggestions {
				break
			}
		}
	}

	if len(missing) == 0 {
		return &ShoppingSuggestion{
			Items: items,
			Note:  "냉장고에 흔히 쓰이는 재료는 충분히 있으시네요. 바로 요리해 보세요!",
		}
	}

	return &ShoppingSuggestion{
		Items:   items,
		Missing: missing,
		Note:    "아래 재료를 구매하면 더 다양한 레시피를 시도해볼 수 있어요.",
	}
}
