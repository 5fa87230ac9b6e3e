package repository

import (
	"context"

	"MeshiDoko-App/internal/domain/model"
)

// RestaurantCacheRepository 抽選候補一覧のスナップショットを保存するリポジトリ
// キャッシュは書き込み後に変更されず、次回の抽選で削除される
type RestaurantCacheRepository interface {
	// Store 候補一覧を新規キャッシュIDで保存し、そのIDを返す
	Store(ctx context.Context, restaurants []model.Restaurant) (string, error)

	// Retrieve キャッシュIDに対応する候補一覧を取得する
	// キャッシュが存在しない、または内容が不正な場合は (nil, nil) を返す
	Retrieve(ctx context.Context, cacheID string) ([]model.Restaurant, error)

	// Clear キャッシュを削除する（存在しない場合もエラーとしない）
	Clear(ctx context.Context, cacheID string) error
}
