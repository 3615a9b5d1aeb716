package inventory

import (
	"context"
	"fmt"

	"recipe-recommender/internal/pkg/common"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// Store 냉장고 재료 조회 포트. 재료 CRUD 는 별도 서브시스템 소관이고
// 추천 엔진은 현재 등록된 재료 집합만 읽는다.
type Store interface {
	ItemsFor(ctx context.Context, userID string) ([]string, error)
}

// RedisStore Redis set 기반 냉장고 재료 저장소 어댑터.
// 키 형식: fridge:items:<user_id>
type RedisStore struct {
	client *redis.Client
}

// NewRedisStore Redis 연결을 확인하고 어댑터를 생성한다.
func NewRedisStore(addr string) (*RedisStore, error) {
	client := redis.NewClient(&redis.Options{
		Addr: addr,
	})

	if err := client.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	common.LogInfo("냉장고 저장소 연결", zap.String("addr", addr))

	return &RedisStore{client: client}, nil
}

// ItemsFor 사용자의 현재 냉장고 재료 집합을 반환한다.
func (s *RedisStore) ItemsFor(ctx context.Context, userID string) ([]string, error) {
	items, err := s.client.SMembers(ctx, itemsKey(userID)).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to load fridge items: %w", err)
	}
	return items, nil
}

func itemsKey(userID string) string {
	return fmt.Sprintf("fridge:items:%s", userID)
}

// Close Redis 연결 종료
func (s *RedisStore) Close() error {
	return s.client.Close()
}
