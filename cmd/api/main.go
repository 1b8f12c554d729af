package main

import (
	"log"

	"app/internal/config"
	"app/internal/domain/model"
	"app/internal/handler"
	"app/internal/infra/db"
	infraRepo "app/internal/infra/repository"
	"app/internal/server"
	"app/internal/usecase"

	"github.com/joho/godotenv"
)

func main() {
	// .envは任意。無ければ環境変数だけで動く。
	_ = godotenv.Load()

	cfg := config.Load()

	//DB接続
	gormDB, err := db.Connect(cfg)
	if err != nil {
		log.Fatalf("db connect failed: %v", err)
	}

	// テーブルが無ければ作る（初回のみ）
	if err := gormDB.AutoMigrate(&model.Item{}); err != nil {
		log.Fatalf("auto migrate failed: %v", err)
	}

	//Repository（GORM実装）生成
	itemRepo := infraRepo.NewItemGormRepository(gormDB)

	//Usecase生成
	itemUC := usecase.NewItemUsecase(itemRepo)

	//Handler生成
	webH := handler.NewWebItemHandler(itemUC)
	apiH := handler.NewAPIItemHandler(itemUC)

	//Server起動
	if err := server.Start(":"+cfg.Port, webH, apiH); err != nil {
		log.Fatal(err)
	}
}
