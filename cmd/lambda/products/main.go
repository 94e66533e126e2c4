package main

import (
	"context"

	"magento-commerce-actions/internal/config"
	"magento-commerce-actions/internal/handlers"
	"magento-commerce-actions/pkg/lambda"

	"github.com/aws/aws-lambda-go/events"
	awslambda "github.com/aws/aws-lambda-go/lambda"
)

var router *handlers.LambdaRouter

func init() {
	cfg, err := config.GetOptimizedConfig()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	manager := lambda.GetContainerManager()
	if err := manager.Initialize(cfg); err != nil {
		panic("Failed to initialize container: " + err.Error())
	}

	container, err := manager.GetContainer(context.Background())
	if err != nil {
		panic("Failed to initialize container: " + err.Error())
	}

	router = handlers.NewLambdaRouter(container, handlers.DomainProducts, container.Logger)
}

func handler(ctx context.Context, event events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	return router.Handle(ctx, event)
}

func main() {
	awslambda.Start(handler)
}
