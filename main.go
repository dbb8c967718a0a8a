package main

import (
	"github.com/typinglab/bigram-backend/cmd/app"
)

func main() {
	app.Run()
}
