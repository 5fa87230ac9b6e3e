package model

// PlacesNearbyRequest Places Nearby Search APIへのリクエストパラメータ
// 初回はRadius/Keyword/RankBy/Languageを、継続ページはPageTokenのみを指定する
type PlacesNearbyRequest struct {
	Key       string
	Location  Location
	Radius    float64
	Keyword   string
	RankBy    string
	Language  string
	PageToken string
}

// Redacted APIキーを秘匿したコピーを返す（ログ・エラー詳細用）
func (r PlacesNearbyRequest) Redacted() PlacesNearbyRequest {
	redacted := r
	redacted.Key = "HIDDEN BY API"
	return redacted
}

// PlaceLatLng APIレスポンス中の座標
type PlaceLatLng struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// PlaceGeometry APIレスポンス中の位置情報
type PlaceGeometry struct {
	Location *PlaceLatLng `json:"location"`
}

// PlacePhoto APIレスポンス中の写真参照
type PlacePhoto struct {
	PhotoReference string `json:"photo_reference"`
}

// Place 検索結果の1件分
// 外部データのため全フィールドが欠落しうる
type Place struct {
	PlaceID    string         `json:"place_id"`
	Name       string         `json:"name"`
	Geometry   *PlaceGeometry `json:"geometry"`
	Photos     []PlacePhoto   `json:"photos"`
	PriceLevel *int           `json:"price_level"`
}

// PlacesNearbyResponse Places Nearby Search APIのレスポンス
type PlacesNearbyResponse struct {
	Status        string  `json:"status"`
	ErrorMessage  string  `json:"error_message,omitempty"`
	NextPageToken string  `json:"next_page_token,omitempty"`
	Results       []Place `json:"results"`
}

// PlacesStatusOK 検索成功を表すステータス値
const PlacesStatusOK = "OK"
