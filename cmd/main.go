package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"MeshiDoko-App/internal/domain/service"
	"MeshiDoko-App/internal/handler"
	"MeshiDoko-App/internal/infrastructure/database"
	"MeshiDoko-App/internal/infrastructure/firestore"
	"MeshiDoko-App/internal/infrastructure/maps"
	"MeshiDoko-App/internal/repository"
	"MeshiDoko-App/internal/usecase"
)

func main() {
	if err := godotenv.Load(); err != nil {
		fmt.Println("Warning: .env file not found, using system environment variables")
	}

	// 必須環境変数のチェック
	placesAPIKey := os.Getenv("PLACES_API_KEY")
	projectID := os.Getenv("FIRESTORE_PROJECT_ID")
	supabaseURL := os.Getenv("SUPABASE_URL")
	supabaseAnonKey := os.Getenv("SUPABASE_ANON_KEY")

	if placesAPIKey == "" || projectID == "" || supabaseURL == "" || supabaseAnonKey == "" {
		fmt.Println("⚠️  環境変数が設定されていません:")
		fmt.Println("必要な環境変数: PLACES_API_KEY, FIRESTORE_PROJECT_ID, SUPABASE_URL, SUPABASE_ANON_KEY")
		fmt.Println("\n.envファイルを作成するか、環境変数を設定してください")
		log.Fatal("Environment variables not set")
	}

	ctx := context.Background()

	fmt.Println("Initializing Firestore client...")
	firestoreClient, err := firestore.NewFirestoreClient(ctx, projectID)
	if err != nil {
		log.Fatalf("Firestoreクライアント初期化失敗: %v", err)
	}
	defer firestoreClient.Close()

	fmt.Println("Initializing Supabase client...")
	supabaseClient, err := database.NewSupabaseClient()
	if err != nil {
		log.Fatalf("Supabaseクライアント初期化失敗: %v", err)
	}
	if err := supabaseClient.HealthCheck(); err != nil {
		log.Fatalf("Supabaseヘルスチェック失敗: %v", err)
	}

	cacheBucket := os.Getenv("SUPABASE_STORAGE_BUCKET")
	if cacheBucket == "" {
		cacheBucket = "restaurant-caches"
	}

	// 依存関係の組み立て
	statusRepo := repository.NewFirestorePickStatusRepository(firestoreClient.GetClient())
	cacheRepo := repository.NewSupabaseRestaurantCacheRepository(supabaseClient.GetStorage(), cacheBucket, nil)
	placesProvider := maps.NewGooglePlacesProvider()
	candidatesService := service.NewRestaurantCandidatesService(placesAPIKey, placesProvider)
	picker := service.NewRestaurantPicker(nil)
	pickUseCase := usecase.NewPickRestaurantUseCase(statusRepo, cacheRepo, candidatesService, picker)
	pickHandler := handler.NewPickRestaurantHandler(pickUseCase)

	// ルーティングの設定
	r := gin.Default()
	r.Use(handler.RequestIDMiddleware())

	r.GET("/api/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy", "service": "MeshiDoko-App"})
	})

	v1 := r.Group("/api/v1")
	v1.Use(handler.AuthMiddleware())
	v1.POST("/restaurants/pick", pickHandler.PostPickRestaurant)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	fmt.Printf("MeshiDoko-App server starting on :%s...\n", port)
	log.Fatal(r.Run(":" + port))
}
