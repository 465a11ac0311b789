package main

import (
	"os"

	"github.com/aws/aws-lambda-go/lambda"
	"github.com/reaandrew/keywordsearch/utils"
	log "github.com/sirupsen/logrus"
)

var Version string

func main() {
	if _, exists := os.LookupEnv("AWS_LAMBDA_FUNCTION_NAME"); exists {
		logger, _, err := utils.SetupLogging(os.Getenv("LOG_LEVEL"), "")
		if err != nil {
			log.Fatalf("Failed to set up logging: %v", err)
		}
		logger.Println("Starting in Lambda mode")
		handler := LambdaHandler{Logger: logger}
		lambda.Start(handler.Handle)
	} else {
		cli := NewCli(os.Stdout)
		if err := cli.Execute(); err != nil {
			log.Fatalf("Error executing command: %v", err)
		}
	}
}
