package main

import "iceai_backend/internal/app"

func main() {
	app.Run()
}
