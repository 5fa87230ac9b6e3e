package service

import (
	"math/rand"
	"time"

	"MeshiDoko-App/internal/domain/apperror"
	"MeshiDoko-App/internal/domain/model"
)

// RestaurantPicker 候補一覧から1件を無作為に選出する
type RestaurantPicker struct {
	rng *rand.Rand
}

// NewRestaurantPicker 新しいRestaurantPickerを生成する
// rngがnilの場合は現在時刻シードの乱数源を使用する（テストでは固定シードを注入する）
func NewRestaurantPicker(rng *rand.Rand) *RestaurantPicker {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &RestaurantPicker{rng: rng}
}

// Pick 候補の中から一様乱数で1件を選出する
func (p *RestaurantPicker) Pick(candidates []model.Restaurant) (*model.Restaurant, error) {
	if len(candidates) == 0 {
		return nil, apperror.NewInvalidArgument(map[string]interface{}{"candidates": candidates})
	}
	index := p.rng.Intn(len(candidates))
	return &candidates[index], nil
}
