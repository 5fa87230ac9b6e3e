package service

import (
	"context"
	"fmt"
	"time"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"
	"golang.org/x/time/rate"

	"MeshiDoko-App/internal/domain/apperror"
	"MeshiDoko-App/internal/domain/model"
	"MeshiDoko-App/internal/domain/repository"
)

// RestaurantCandidatesService 周辺のレストラン候補を外部検索APIから取得するサービス
type RestaurantCandidatesService interface {
	// GetCandidates 検索条件に合致する検証済みレストラン候補の一覧を取得する
	GetCandidates(ctx context.Context, cond *model.PickCondition) ([]model.Restaurant, error)
}

// restaurantCandidatesServiceImpl はRestaurantCandidatesServiceの実装
type restaurantCandidatesServiceImpl struct {
	apiKey   string
	provider repository.PlacesProvider
	cooldown time.Duration
}

// NewRestaurantCandidatesService 新しいRestaurantCandidatesServiceインスタンスを作成
func NewRestaurantCandidatesService(apiKey string, provider repository.PlacesProvider) RestaurantCandidatesService {
	return &restaurantCandidatesServiceImpl{
		apiKey:   apiKey,
		provider: provider,
		cooldown: model.PlacesPageCooldown,
	}
}

// GetCandidates 初回検索とページネーションを繰り返し、変換に成功した候補を到着順に蓄積して返す
func (s *restaurantCandidatesServiceImpl) GetCandidates(ctx context.Context, cond *model.PickCondition) ([]model.Restaurant, error) {
	// APIキーの環境変数チェック
	if s.apiKey == "" {
		return nil, apperror.NewInvalidEnvironment(map[string]string{"PLACES_API_KEY": s.apiKey})
	}

	// クールダウンは1回の取得処理内のページ送りにのみ適用する
	// リクエスト間でリミッターを共有すると無関係な抽選の初回コールまで待たされてしまう
	limiter := rate.NewLimiter(rate.Every(s.cooldown), 1)

	// 初回コール
	request := &model.PlacesNearbyRequest{
		Key:      s.apiKey,
		Location: cond.Location,
		Radius:   cond.Distance,
		Keyword:  model.PlacesKeyword,
		RankBy:   model.PlacesRankBy,
		Language: model.PlacesLanguage,
	}
	response, err := s.search(ctx, limiter, request)
	if err != nil {
		return nil, err
	}
	candidates := s.convertAll(response.Results, cond.Location)

	// 最大回数に達するまで次ページをリクエストする
	// 上限到達時にトークンが残っていても打ち切りであってエラーではない
	pagetoken := response.NextPageToken
	for count := 1; count < model.PlacesPageLimit && pagetoken != ""; count++ {
		request := &model.PlacesNearbyRequest{
			Key:       s.apiKey,
			Location:  cond.Location,
			PageToken: pagetoken,
		}
		response, err := s.search(ctx, limiter, request)
		if err != nil {
			return nil, err
		}
		candidates = append(candidates, s.convertAll(response.Results, cond.Location)...)
		pagetoken = response.NextPageToken
	}

	return candidates, nil
}

// search クールダウンを挟んで1ページ分の検索を実行し、ステータスを検証する
// リミッターの初回トークンにより最初のコールは待機しない
func (s *restaurantCandidatesServiceImpl) search(ctx context.Context, limiter *rate.Limiter, request *model.PlacesNearbyRequest) (*model.PlacesNearbyResponse, error) {
	if err := limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("ページネーション待機に失敗: %w", err)
	}
	response, err := s.provider.NearbySearch(ctx, request)
	if err != nil {
		return nil, fmt.Errorf("レストラン検索リクエストに失敗: %w", err)
	}
	if response.Status != model.PlacesStatusOK {
		return nil, apperror.NewFailedToFetchRestaurants(response.Status, response.ErrorMessage, *request)
	}
	return response, nil
}

// convertAll 生レコードを変換し、検証に失敗したものは黙って破棄する
// 部分的な成功が正常系であり、不正レコードはエラーにしない
func (s *restaurantCandidatesServiceImpl) convertAll(places []model.Place, currentLocation model.Location) []model.Restaurant {
	candidates := make([]model.Restaurant, 0, len(places))
	for i := range places {
		if restaurant := convertRestaurant(&places[i], currentLocation); restaurant != nil {
			candidates = append(candidates, *restaurant)
		}
	}
	return candidates
}

// convertRestaurant 検索結果の1件をレストラン情報に変換する
// 必須フィールドの欠落や検証失敗はnil（破棄）を返す
func convertRestaurant(place *model.Place, currentLocation model.Location) *model.Restaurant {
	// 位置情報がない場合は距離を計算できないため破棄する
	if place.Geometry == nil || place.Geometry.Location == nil {
		return nil
	}
	location := place.Geometry.Location

	restaurant := model.Restaurant{
		ID:        place.PlaceID,
		Name:      place.Name,
		MapURL:    convertMapURL(place.Name),
		ImageURL:  convertImageURL(place.Photos),
		Latitude:  location.Lat,
		Longitude: location.Lng,
		Distance: geo.DistanceHaversine(
			orb.Point{location.Lng, location.Lat},
			orb.Point{currentLocation.Longitude, currentLocation.Latitude},
		),
	}
	restaurant.PriceMin, restaurant.PriceMax = convertPrice(place.PriceLevel)

	if !restaurant.Validate() {
		return nil
	}
	return &restaurant
}

// convertMapURL 店名から地図検索URLに変換する
func convertMapURL(name string) string {
	if name == "" {
		return ""
	}
	return fmt.Sprintf("https://www.google.com/maps/search/?api=1&query=%s", name)
}

// convertImageURL 先頭の写真リファレンスから画像URLに変換する
func convertImageURL(photos []model.PlacePhoto) *string {
	if len(photos) == 0 || photos[0].PhotoReference == "" {
		return nil
	}
	url := fmt.Sprintf("https://maps.googleapis.com/maps/api/place/photo?maxwidth=400&photo_reference=%s", photos[0].PhotoReference)
	return &url
}

// convertPrice 価格レベル（0〜4）を予算下限値・上限値に変換する
// 範囲外の値はすべて価格情報なしとして扱う
func convertPrice(priceLevel *int) (*float64, *float64) {
	if priceLevel == nil {
		return nil, nil
	}
	price := func(v float64) *float64 { return &v }
	switch *priceLevel {
	case 1:
		return nil, price(1000)
	case 2:
		return price(1000), price(2000)
	case 3:
		return price(2000), price(5000)
	case 4:
		return price(5000), nil
	default:
		return nil, nil
	}
}
