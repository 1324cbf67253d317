// @title           IMMO TN API
// @version         1.0
// @description     Сообщения, избранное и уведомления площадки объявлений.
// @host            localhost:4000
// @BasePath        /api/v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

package main

import (
	"flag"
	"fmt"
	"log"

	"immo_backend/internal/app"
)

func main() {
	issueToken := flag.Uint("issue-token", 0, "выпустить JWT для пользователя с этим ID и выйти")
	flag.Parse()

	if *issueToken != 0 {
		token, err := app.IssueToken(*issueToken)
		if err != nil {
			log.Fatalf("issue token: %v", err)
		}
		fmt.Println(token)
		return
	}

	app.Run()
}
