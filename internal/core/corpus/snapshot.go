package corpus

import (
	"sync/atomic"

	"recipe-recommender/internal/pkg/common"

	"go.uber.org/zap"
)

// Snapshot 코퍼스와 어휘의 불변 쌍. 리로드 시 쌍 단위로 교체되므로
// 읽는 쪽은 항상 완전히 이전 것이거나 완전히 새 것만 본다.
type Snapshot struct {
	Store      *Store
	Vocabulary *Vocabulary
}

// Catalog 현재 스냅샷을 보관하고 원자적 리로드를 제공한다.
type Catalog struct {
	path string
	cur  atomic.Pointer[Snapshot]
}

// OpenCatalog 코퍼스를 로드하고 어휘를 구축해 카탈로그를 연다.
func OpenCatalog(path string) (*Catalog, error) {
	c := &Catalog{path: path}
	if err := c.Reload(); err != nil {
		return nil, err
	}
	return c, nil
}

// Reload 코퍼스를 새로 로드하고 스냅샷을 통째로 교체한다.
// 실패하면 기존 스냅샷이 그대로 유지된다.
func (c *Catalog) Reload() error {
	store, err := Load(c.path)
	if err != nil {
		return err
	}
	vocab := BuildVocabulary(store)
	c.cur.Store(&Snapshot{Store: store, Vocabulary: vocab})

	common.LogInfo("코퍼스 스냅샷 교체",
		zap.Int("records", store.Len()),
		zap.Int("vocabulary", vocab.Size()),
	)
	return nil
}

// Snapshot 현재 스냅샷을 반환한다. 요청 처리 중에는 한 번만 가져와 써야 한다.
func (c *Catalog) Snapshot() *Snapshot {
	return c.cur.Load()
}
