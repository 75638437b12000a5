package main

import "home-connect-api/app"

func main() {
	app.Run()
}
