package repository

import (
	"context"

	"MeshiDoko-App/internal/domain/model"
)

// PlacesProvider 周辺レストラン検索APIへの1回分の問い合わせを行うプロバイダ
// ページネーションやステータス判定は呼び出し側の責務
type PlacesProvider interface {
	NearbySearch(ctx context.Context, req *model.PlacesNearbyRequest) (*model.PlacesNearbyResponse, error)
}
