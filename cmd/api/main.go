package main

import (
	_ "quanngon_payments/docs"
	"quanngon_payments/internal/adapter/http/routes"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Payment Confirmation Service API
// @version         1.0
// @description     Receives MoMo IPN callbacks and confirms pending payments stored in DynamoDB.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /v1

func main() {
	routes.Run()
}
