package main

import (
	"os"

	"annapurna-backend/config"
	"annapurna-backend/routes"
	"annapurna-backend/utils"
)

func main() {
	config.InitDB()
	utils.InitS3()
	utils.InitSES()

	r := routes.SetupRouter(config.DB)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	r.Run(":" + port)
}
