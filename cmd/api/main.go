package main

import (
	"foliocast/cmd"
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, using environment")
	}

	apiHandler, err := cmd.InitializeDependencies()
	if err != nil {
		log.Fatal(err)
	}

	port := 3009
	if p := os.Getenv("PORT"); p != "" {
		port, err = strconv.Atoi(p)
		if err != nil {
			log.Fatal(err)
		}
	}

	if err := apiHandler.StartApi(port); err != nil {
		log.Fatal(err)
	}
}
