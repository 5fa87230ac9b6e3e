package maps

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"MeshiDoko-App/internal/domain/model"
)

const placesNearbyBaseURL = "https://maps.googleapis.com/maps/api/place/nearbysearch/json"

// GooglePlacesProvider はGoogle Places Nearby Search APIを使用したレストラン検索の実装
type GooglePlacesProvider struct {
	baseURL     string
	httpClient  *http.Client
	maxAttempts int
	retryDelay  time.Duration
}

// NewGooglePlacesProvider は新しいプロバイダを生成する
// 接続レベルの失敗は固定間隔で3回までリトライする（APIステータスはリトライ対象外）
func NewGooglePlacesProvider() *GooglePlacesProvider {
	return &GooglePlacesProvider{
		baseURL:     placesNearbyBaseURL,
		httpClient:  &http.Client{Timeout: 10 * time.Second},
		maxAttempts: 3,
		retryDelay:  300 * time.Millisecond,
	}
}

// NearbySearch はPlaces Nearby Search APIを1回呼び出し、レスポンスをパースして返す
// レスポンス中のstatusフィールドの判定は行わない
func (g *GooglePlacesProvider) NearbySearch(ctx context.Context, req *model.PlacesNearbyRequest) (*model.PlacesNearbyResponse, error) {
	reqURL := g.buildURL(req)

	var lastErr error
	for attempt := 0; attempt < g.maxAttempts; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(g.retryDelay):
			}
		}

		response, err := g.doRequest(ctx, reqURL)
		if err != nil {
			lastErr = err
			continue
		}
		return response, nil
	}
	return nil, fmt.Errorf("APIリクエストのリトライ上限に到達: %w", lastErr)
}

func (g *GooglePlacesProvider) doRequest(ctx context.Context, reqURL string) (*model.PlacesNearbyResponse, error) {
	httpReq, err := http.NewRequestWithContext(ctx, "GET", reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("リクエストの作成に失敗: %w", err)
	}

	resp, err := g.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("APIリクエストに失敗: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("APIからエラーステータスが返されました: %s", resp.Status)
	}

	var apiResp model.PlacesNearbyResponse
	if err := json.NewDecoder(resp.Body).Decode(&apiResp); err != nil {
		return nil, fmt.Errorf("JSONのパースに失敗: %w", err)
	}
	return &apiResp, nil
}

func (g *GooglePlacesProvider) buildURL(req *model.PlacesNearbyRequest) string {
	params := url.Values{}
	params.Set("key", req.Key)
	params.Set("location", fmt.Sprintf("%f,%f", req.Location.Latitude, req.Location.Longitude))

	// 継続ページはトークンのみを指定する（その他の条件はAPI側が初回リクエストから引き継ぐ）
	if req.PageToken != "" {
		params.Set("pagetoken", req.PageToken)
		return fmt.Sprintf("%s?%s", g.baseURL, params.Encode())
	}

	params.Set("radius", strconv.FormatFloat(req.Radius, 'f', -1, 64))
	params.Set("keyword", req.Keyword)
	params.Set("rankby", req.RankBy)
	params.Set("language", req.Language)
	return fmt.Sprintf("%s?%s", g.baseURL, params.Encode())
}
