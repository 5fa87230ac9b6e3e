package model

import (
	"encoding/json"
	"net/url"
)

// Restaurant 抽選対象となるレストラン情報
// 外部APIの生データ変換かキャッシュの復元のみで生成される
type Restaurant struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	MapURL    string   `json:"mapUrl"`
	ImageURL  *string  `json:"imageUrl,omitempty"`
	Latitude  float64  `json:"latitude"`
	Longitude float64  `json:"longitude"`
	Distance  float64  `json:"distance"`
	PriceMin  *float64 `json:"priceMin,omitempty"`
	PriceMax  *float64 `json:"priceMax,omitempty"`
}

// Validate スキーマレベルの不変条件を検証する
func (r *Restaurant) Validate() bool {
	if r.ID == "" || r.Name == "" {
		return false
	}
	if !isValidURL(r.MapURL) {
		return false
	}
	if r.ImageURL != nil && !isValidURL(*r.ImageURL) {
		return false
	}
	if r.Distance < 0 {
		return false
	}
	return true
}

// ParseRestaurantCache キャッシュファイルの内容をレストラン一覧として厳密にパースする
// JSONとして不正、または1件でも検証に失敗した場合はnil（全件無効扱い）を返す
func ParseRestaurantCache(data []byte) []Restaurant {
	var restaurants []Restaurant
	if err := json.Unmarshal(data, &restaurants); err != nil {
		return nil
	}
	if restaurants == nil {
		return nil
	}
	for i := range restaurants {
		if !restaurants[i].Validate() {
			return nil
		}
	}
	return restaurants
}

func isValidURL(raw string) bool {
	if raw == "" {
		return false
	}
	u, err := url.Parse(raw)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}
