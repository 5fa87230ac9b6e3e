package repository

import (
	"context"
	"time"

	"MeshiDoko-App/internal/domain/model"
)

// PickStatusRepository ユーザーごとの抽選ステータスを管理するリポジトリ
type PickStatusRepository interface {
	// Get 抽選ステータスを取得する
	// データが存在しない、または保存形式が不正な場合は (nil, nil) を返す
	Get(ctx context.Context, uid string) (*model.PickStatus, error)

	// Set 抽選ステータスをリワードなしの新規ステータスで上書きし、保存した内容を返す
	Set(ctx context.Context, uid, cacheID string, now time.Time) (*model.PickStatus, error)
}
