package main

import (
	"context"

	"github.com/aws/aws-lambda-go/lambda"
	"github.com/mlziade/lambda-cloudfront-invalidation-front/pkg/cdn"
	"github.com/mlziade/lambda-cloudfront-invalidation-front/pkg/invalidation"
	"go.uber.org/zap"
)

func Invalidate(ctx context.Context, request *invalidation.Request) (*invalidation.Response, error) {
	// Setup structured logging
	logger, _ := zap.NewProduction()
	defer logger.Sync()
	log := logger.Sugar()

	log.Infow("Invalidate()", "Request", request)

	handler := &invalidation.Handler{
		CDN: cdn.NewClient(log),
		Log: log,
	}

	return handler.Handle(ctx, request), nil
}

func main() {
	lambda.Start(Invalidate)
}
