package model

// Location 緯度経度を表す基本的な型
type Location struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// AlcoholCondition アルコール提供条件
type AlcoholCondition string

const (
	AlcoholNotRequired AlcoholCondition = "notRequired"
	AlcoholRequired    AlcoholCondition = "required"
)

// Valid 定義済みの値であるか判定する
func (a AlcoholCondition) Valid() bool {
	return a == AlcoholNotRequired || a == AlcoholRequired
}

// PriceCondition 価格帯条件
type PriceCondition string

const (
	PriceInexpensive   PriceCondition = "inexpensive"
	PriceModerate      PriceCondition = "moderate"
	PriceExpensive     PriceCondition = "expensive"
	PriceVeryExpensive PriceCondition = "veryExpensive"
)

// Valid 定義済みの値であるか判定する
func (p PriceCondition) Valid() bool {
	switch p {
	case PriceInexpensive, PriceModerate, PriceExpensive, PriceVeryExpensive:
		return true
	}
	return false
}

// 距離条件の許容範囲（メートル）
const (
	MinPickDistanceMeters = 100
	MaxPickDistanceMeters = 10000
)

// PickCondition 1回の抽選リクエストに対する検索条件
// alcohol / prices は受け付けるが検索クエリには未反映（フィルタ実装は未完）
type PickCondition struct {
	Location Location
	Distance float64
	Alcohol  *AlcoholCondition
	Prices   []PriceCondition
}
