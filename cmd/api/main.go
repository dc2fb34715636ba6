package main

// @title Tic-tac-toe chat bot APIs
// @version 1.0
// @description Slash command and LINE webhook endpoints for per-channel tic-tac-toe games.

// @license.name Apache 2.0
// @license.url http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:9089
// @BasePath /
// @schemes http
import (
	_ "golang-tictactoe/docs"
	protocol "golang-tictactoe/protocal"

	"github.com/sirupsen/logrus"
)

func main() {
	err := protocol.ServeHTTP()
	if err != nil {
		logrus.Println(err)
	}
}
