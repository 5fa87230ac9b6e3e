package model

import "time"

// PickRestaurantRequest 抽選APIのリクエストボディ
type PickRestaurantRequest struct {
	Location *Location         `json:"location"`
	Distance float64           `json:"distance"`
	Alcohol  *AlcoholCondition `json:"alcohol,omitempty"`
	Prices   []PriceCondition  `json:"prices,omitempty"`
}

// ToCondition リクエストを検索条件に変換する
func (r *PickRestaurantRequest) ToCondition() *PickCondition {
	return &PickCondition{
		Location: *r.Location,
		Distance: r.Distance,
		Alcohol:  r.Alcohol,
		Prices:   r.Prices,
	}
}

// PickRestaurantResponse 抽選APIのレスポンスボディ
type PickRestaurantResponse struct {
	Data                 Restaurant `json:"data"`
	NextAvailableAt      time.Time  `json:"nextAvailableAt"`
	RewardRemainingCount int        `json:"rewardRemainingCount"`
}
