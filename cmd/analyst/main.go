package main

import (
	"context"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"stock_analyst/pkg/core/agent"
	"stock_analyst/pkg/core/pipeline"
)

func main() {
	godotenv.Load()

	if len(os.Args) < 2 {
		fmt.Println("사용법: analyst <종목명 또는 티커>")
		fmt.Println("예: analyst 삼성전자")
		fmt.Println("    analyst AAPL")
		fmt.Println("    analyst 005930")
		os.Exit(1)
	}

	logger := newLogger()
	defer logger.Sync()

	cfg := agent.LoadConfig("config/models.yaml")
	manager := agent.NewManager(cfg)

	p := pipeline.New(manager, os.Getenv("STOCK_LISTING_CSV"), logger)
	p.Run(context.Background(), os.Args[1])
}

// newLogger keeps diagnostics out of the console report unless DEBUG is set.
func newLogger() *zap.Logger {
	if os.Getenv("DEBUG") != "" {
		l, err := zap.NewDevelopment()
		if err == nil {
			return l
		}
	}
	return zap.NewNop()
}
